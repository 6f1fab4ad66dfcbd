package component

// PlayerCollision stores ground contact derived from the player's foot sensor.
// GroundVX and GroundVY are the velocity of whatever the player stands on.
type PlayerCollision struct {
	Grounded bool
	GroundVX float64
	GroundVY float64
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
