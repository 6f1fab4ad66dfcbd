package system

import (
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// ShouldDrown is the hazard gate. Touching a hazardous tile starts drowning
// only while the attempt is still being played and nothing protects the
// player.
func ShouldDrown(hazardous bool, status component.PlayerStatus, phase component.GamePhase, invulnerable bool) bool {
	if !hazardous || invulnerable {
		return false
	}
	if status.Drowning || status.Dead {
		return false
	}
	return phase == component.PhasePlaying
}

// HazardSystem checks the player against hazard regions built from the level's
// hazard layer.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem {
	return &HazardSystem{}
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	status, ok := ecs.Get(w, player, component.PlayerStatusComponent.Kind())
	if !ok {
		return
	}
	playerBox, ok := entityBox(w, player)
	if !ok {
		return
	}

	phase := component.PhasePlaying
	if sess := session(w); sess != nil {
		phase = sess.Phase
	}

	for _, e := range w.Query(component.HazardComponent.Kind(), component.TransformComponent.Kind()) {
		hazard, _ := ecs.Get(w, e, component.HazardComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if hazard == nil || t == nil {
			continue
		}
		if !playerBox.overlaps(centeredBox(t.X, t.Y, hazard.Width, hazard.Height)) {
			continue
		}
		if !ShouldDrown(hazard.Kind == component.HazardWater, *status, phase, isInvulnerable(w, player)) {
			return
		}
		if interruptPlayer(w, player, component.PhaseDead, component.CauseDrowned, component.InterruptDrown) {
			status.Drowning = true
		}
		return
	}
}
