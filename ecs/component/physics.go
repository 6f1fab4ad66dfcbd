package component

import "github.com/jakecoffman/cp"

type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyStatic
	BodyKinematic
)

// BodyLayer selects the collision rules applied to a body.
type BodyLayer int

const (
	LayerSolid BodyLayer = iota
	LayerPlayer
	LayerEnemy
	LayerProjectile
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are filled in by the physics system.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Kind       BodyKind
	Layer      BodyLayer
	NoGravity  bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
