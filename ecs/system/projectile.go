package system

import (
	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// ProjectileSystem removes projectiles that hit terrain and resolves hits on
// the player. The timeout is owned by TTL.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, hasPlayer := playerEntity(w)
	var playerBox aabb
	if hasPlayer {
		playerBox, hasPlayer = entityBox(w, player)
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, proj *component.Projectile, t *component.Transform) {
		if proj.HitTerrain {
			ecs.DestroyEntity(w, e)
			return
		}
		if !setBodyVelocity(w, e, proj.VelocityX, 0) {
			t.X += proj.VelocityX * common.DeltaTime
		}

		if !hasPlayer || !playing(w) || isInvulnerable(w, player) {
			return
		}
		box, ok := entityBox(w, e)
		if !ok || !box.overlaps(playerBox) {
			return
		}
		ecs.DestroyEntity(w, e)
		interruptPlayer(w, player, component.PhaseDead, component.CauseKilled, component.InterruptDead)
	})
}
