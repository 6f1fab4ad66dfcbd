package component

type PlatformAxis string

const (
	AxisHorizontal PlatformAxis = "horizontal"
	AxisVertical   PlatformAxis = "vertical"
)

// MovingPlatform oscillates along Axis, reversing once its displacement from
// the recorded start exceeds Distance.
type MovingPlatform struct {
	Axis        PlatformAxis
	Distance    float64
	Speed       float64
	Direction   float64
	StartX      float64
	StartY      float64
	DelayFrames int
}

var MovingPlatformComponent = NewComponent[MovingPlatform]()
