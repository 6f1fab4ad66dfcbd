package component

import "image/color"

type EnemyKind string

const (
	EnemyPatrol EnemyKind = "patrol"
	EnemyTurret EnemyKind = "turret"
)

type PatrolPhase int

const (
	PatrolMoving PatrolPhase = iota
	PatrolTurning
)

// PatrolState walks back and forth, turning after Distance pixels of
// accumulated travel and pausing for TurnFrames at each turn.
type PatrolState struct {
	Distance      float64
	Traveled      float64
	LastX         float64
	Tracking      bool
	Phase         PatrolPhase
	TurnFrames    int
	TurnRemaining int
	Turns         int
}

// TurretState fires a projectile every IntervalFrames.
// Script optionally names a tengo file that picks the next shot direction.
type TurretState struct {
	IntervalFrames   int
	SinceShot        int
	ProjectileSpeed  float64
	ProjectileFrames int
	ProjectileSize   float64
	ProjectileColor  color.RGBA
	SpawnOffset      float64
	Shots            int
	Script           string
}

// Enemy is a tagged union over the enemy variants. Only the state matching
// Kind is meaningful.
type Enemy struct {
	Kind      EnemyKind
	Health    int
	Dead      bool
	Direction float64
	Speed     float64

	// StompTolerance is how far below the enemy's top edge the player's feet
	// may be for a contact to count as a stomp.
	StompTolerance float64
	DeathFrames    int
	DeathRise      float64

	Patrol PatrolState
	Turret TurretState
}

var EnemyComponent = NewComponent[Enemy]()

// TakeDamage removes n health. It returns true only on the call that kills
// the enemy; hits on a dead enemy do nothing.
func (e *Enemy) TakeDamage(n int) bool {
	if e == nil || e.Dead || n <= 0 {
		return false
	}
	e.Health -= n
	if e.Health > 0 {
		return false
	}
	e.Health = 0
	e.Dead = true
	return true
}
