package system

import (
	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// ContactResult is the outcome of the player touching an enemy.
type ContactResult int

const (
	ContactNone ContactResult = iota
	ContactStomp
	ContactKill
)

// ResolveEnemyContact applies the vertical tie-break. Feet at or above the
// enemy's top edge, within tolerance, are a stomp; anything else is a side hit
// that kills unless the player is invulnerable.
func ResolveEnemyContact(playerBottom, enemyTop, tolerance float64, invulnerable bool) ContactResult {
	if playerBottom <= enemyTop+tolerance {
		return ContactStomp
	}
	if invulnerable {
		return ContactNone
	}
	return ContactKill
}

// EnemyContactSystem resolves player and enemy overlaps after the physics step.
type EnemyContactSystem struct{}

func NewEnemyContactSystem() *EnemyContactSystem {
	return &EnemyContactSystem{}
}

func (s *EnemyContactSystem) Update(w *ecs.World) {
	if w == nil || !playing(w) {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	playerBox, ok := entityBox(w, player)
	if !ok {
		return
	}
	tuning, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}

	// A frame's worth of fall is allowed below the top edge; fast falls
	// otherwise tunnel past the tolerance in one step.
	vy := 0.0
	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		vy = body.Body.Velocity().Y
	}

	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy) {
		if enemy.Dead || !playing(w) {
			return
		}
		enemyBox, ok := entityBox(w, e)
		if !ok || !playerBox.overlaps(enemyBox) {
			return
		}

		tolerance := enemy.StompTolerance + max(0, vy)*common.DeltaTime
		switch ResolveEnemyContact(playerBox.maxY, enemyBox.minY, tolerance, isInvulnerable(w, player)) {
		case ContactStomp:
			if enemy.TakeDamage(1) {
				KillEnemy(w, e)
			} else {
				emitSound(w, component.SoundEnemyHit, 1)
			}
			bounce(w, player, tuning.BounceSpeed)
		case ContactKill:
			interruptPlayer(w, player, component.PhaseDead, component.CauseKilled, component.InterruptDead)
		}
	})
}

func bounce(w *ecs.World, player ecs.Entity, speed float64) {
	body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil {
		return
	}
	v := body.Body.Velocity()
	body.Body.SetVelocity(v.X, -speed)
}
