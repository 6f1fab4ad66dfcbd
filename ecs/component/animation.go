package component

type AnimationDef struct {
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation tracks the playing clip. Rendering derives the pose from Current
// and Frame.
type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()

// Play switches to name, restarting only when the clip changes.
func (a *Animation) Play(name string) {
	if a == nil {
		return
	}
	if a.Current == name && a.Playing {
		return
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
}

func (a *Animation) Stop() {
	if a == nil {
		return
	}
	a.Playing = false
}
