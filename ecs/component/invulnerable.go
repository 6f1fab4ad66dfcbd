package component

// Invulnerable suppresses damage and hazards. Frames counts down a timed grace
// window; Shield is held by the shield power-up. The component is removed once
// neither source holds it.
type Invulnerable struct {
	Frames int
	Shield bool
}

var InvulnerableComponent = NewComponent[Invulnerable]()
