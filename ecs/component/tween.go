package component

type Ease int

const (
	EaseLinear Ease = iota
	// EasePower1 is a quadratic ease-out.
	EasePower1
)

// Tween animates an entity's transform and sprite alpha by fixed deltas over
// Frames ticks. The start values are captured on the first update.
type Tween struct {
	DX       float64
	DY       float64
	DRot     float64
	ToAlpha  float64
	Frames   int
	Ease     Ease
	Elapsed  int
	Started  bool
	FromX    float64
	FromY    float64
	FromRot  float64
	FromA    float64
	Finished bool

	DestroyOnComplete bool
}

var TweenComponent = NewComponent[Tween]()
