package component

// Player holds movement tuning in pixels and seconds. Power-ups scale
// Acceleration, MaxSpeed and JumpSpeed in place; Buffs keeps the baselines.
type Player struct {
	Acceleration       float64
	Drag               float64
	MaxSpeed           float64
	JumpSpeed          float64
	BounceSpeed        float64
	DashSpeed          float64
	DashFrames         int
	DashCooldownFrames int
	FootstepFrames     int

	DrownFrames           int
	DeathFadeFrames       int
	LandShakeFrames       int
	LandShakeIntensity    float64
	CelebrationFrames     int
	CelebrationStopFrames int
}

var PlayerComponent = NewComponent[Player]()

// PlayerStatus is the mutable per-attempt state of the player.
type PlayerStatus struct {
	// Facing is +1 for right and -1 for left.
	Facing float64
	// MoveVX is the horizontal velocity the player drives, before any
	// platform carry is added.
	MoveVX float64

	Drowning bool
	Dead     bool

	Dashing       bool
	CanDash       bool
	DashRemaining int
	DashCooldown  int

	WasAirborne      bool
	FootstepCooldown int

	// DrownTimer counts frames spent sinking before the player is dead.
	DrownTimer int
}

var PlayerStatusComponent = NewComponent[PlayerStatus]()

// CanStartDash reports whether a dash may begin this frame.
func (s *PlayerStatus) CanStartDash() bool {
	return s.CanDash && !s.Dashing && !s.Drowning && !s.Dead
}
