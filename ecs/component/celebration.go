package component

type CelebrationPhase int

const (
	CelebrationActive CelebrationPhase = iota
	CelebrationStopping
	CelebrationRemoved
)

// Celebration is the win effect. It emits bursts while Active, lets the last
// particles settle while Stopping, then removes itself.
type Celebration struct {
	Phase         CelebrationPhase
	Remaining     int
	StopFrames    int
	EmitEvery     int
	SinceEmission int
}

var CelebrationComponent = NewComponent[Celebration]()
