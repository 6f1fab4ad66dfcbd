package system

import (
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// PickupCollectSystem collects coins and power-ups the player overlaps. Each
// pickup is destroyed on collection, so it can only apply once.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem {
	return &PickupCollectSystem{}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
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

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		width, height := pickup.CollisionWidth, pickup.CollisionHeight
		if width <= 0 || height <= 0 {
			box, ok := entityBox(w, e)
			if !ok || !box.overlaps(playerBox) {
				return
			}
		} else if !centeredBox(t.X, t.Y, width, height).overlaps(playerBox) {
			return
		}

		switch pickup.Kind {
		case component.PickupCoin:
			if sess := session(w); sess != nil {
				sess.Score += pickup.Value
			}
			emitSound(w, component.SoundCoin, 0.5)
			emitEffect(w, component.EffectCoin, t.X, t.Y)
		case component.PickupPowerUp:
			ApplyPowerUp(w, player, pickup.PowerUp, pickup.Multiplier, pickup.DurationFrames)
			emitSound(w, component.SoundPowerUp, 1)
			emitEffect(w, component.EffectPowerUp, t.X, t.Y)
		}
		ecs.DestroyEntity(w, e)
	})
}
