package system

import (
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// aabb is an axis-aligned box in world space.
type aabb struct {
	minX, minY, maxX, maxY float64
}

func centeredBox(x, y, w, h float64) aabb {
	return aabb{minX: x - w/2, minY: y - h/2, maxX: x + w/2, maxY: y + h/2}
}

// overlaps is inclusive on every edge, so boxes that only touch count.
func (a aabb) overlaps(b aabb) bool {
	return a.minX <= b.maxX && b.minX <= a.maxX && a.minY <= b.maxY && b.minY <= a.maxY
}

// entityBox returns the collision box of e, preferring the physics collider
// and falling back to the sprite size.
func entityBox(w *ecs.World, e ecs.Entity) (aabb, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return aabb{}, false
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Width > 0 && body.Height > 0 {
		return centeredBox(t.X, t.Y, body.Width, body.Height), true
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite.Width > 0 && sprite.Height > 0 {
		return centeredBox(t.X, t.Y, sprite.Width, sprite.Height), true
	}
	return aabb{}, false
}

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return w.First(component.PlayerTagComponent.Kind())
}

func session(w *ecs.World) *component.GameSession {
	_, s, ok := ecs.First(w, component.GameSessionComponent.Kind())
	if !ok {
		return nil
	}
	return s
}

// playing reports whether the session accepts gameplay transitions. A world
// without a session is treated as playing so systems can be tested alone.
func playing(w *ecs.World) bool {
	s := session(w)
	return s == nil || !s.Terminal()
}

func isInvulnerable(w *ecs.World, e ecs.Entity) bool {
	inv, ok := ecs.Get(w, e, component.InvulnerableComponent.Kind())
	return ok && (inv.Frames > 0 || inv.Shield)
}

// interruptPlayer finishes the session and queues the matching player state.
// It does nothing if the session already left Playing.
func interruptPlayer(w *ecs.World, player ecs.Entity, phase component.GamePhase, cause component.DeathCause, state string) bool {
	if s := session(w); s != nil && !s.Finish(phase, cause) {
		return false
	}
	_ = ecs.Add(w, player, component.PlayerStateInterruptComponent.Kind(), &component.PlayerStateInterrupt{State: state})
	return true
}

func emitSound(w *ecs.World, key string, volume float64) {
	w.Events().Push(component.SoundRequest{Key: key, Volume: volume})
}

func emitEffect(w *ecs.World, kind string, x, y float64) {
	w.Events().Push(component.EffectRequest{Kind: kind, X: x, Y: y})
}

// setBodyVelocity writes v to the body when one is attached. It reports
// whether a body took the value.
func setBodyVelocity(w *ecs.World, e ecs.Entity, vx, vy float64) bool {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil {
		return false
	}
	body.Body.SetVelocity(vx, vy)
	return true
}
