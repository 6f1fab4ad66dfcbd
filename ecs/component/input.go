package component

// Input is the per-frame input snapshot. The *Pressed fields are edge
// triggered and true for exactly one frame.
type Input struct {
	Left            bool
	Right           bool
	Up              bool
	UpPressed       bool
	Dash            bool
	DashPressed     bool
	EnterPressed    bool
	SettingsPressed bool
	DebugPressed    bool
}

var InputComponent = NewComponent[Input]()

// MoveX resolves left and right into -1, 0 or +1. Left wins a tie, matching
// the order the keys are checked in.
func (in *Input) MoveX() float64 {
	switch {
	case in.Left:
		return -1
	case in.Right:
		return 1
	}
	return 0
}
