package component

// PlayerState defines the interface for player state machine states.
// Each state owns its own enter/exit, input handling, and update logic.
type PlayerState interface {
	Name() string
	Enter(ctx *PlayerStateContext)
	Exit(ctx *PlayerStateContext)
	HandleInput(ctx *PlayerStateContext)
	Update(ctx *PlayerStateContext)
}

// PlayerStateContext gives a state access to the player without coupling the
// states to the ECS package.
type PlayerStateContext struct {
	Input           *Input
	Player          *Player
	Status          *PlayerStatus
	Session         *GameSession
	GetVelocity     func() (x, y float64)
	SetVelocity     func(x, y float64)
	GetPosition     func() (x, y float64)
	IsGrounded      func() bool
	GroundVelocity  func() (x, y float64)
	ChangeState     func(state PlayerState)
	ChangeAnimation func(animation string)
	StopAnimation   func()
	FacingLeft      func(facingLeft bool)
	Freeze          func()
	StartTween      func(t Tween)
	Emit            func(event any)
	Celebrate       func()
	RandomInt       func(n int) int
}

// PlayerStateMachine stores the active and pending states for the player.
type PlayerStateMachine struct {
	State   PlayerState
	Pending PlayerState
}

var PlayerStateMachineComponent = NewComponent[PlayerStateMachine]()
