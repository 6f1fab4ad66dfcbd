package system

import (
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// InvulnerableSystem counts down timed invulnerability and drops the component
// once no source holds it.
type InvulnerableSystem struct{}

func NewInvulnerableSystem() *InvulnerableSystem {
	return &InvulnerableSystem{}
}

func (s *InvulnerableSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		if inv.Frames > 0 {
			inv.Frames--
		}
		if inv.Frames <= 0 && !inv.Shield {
			ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})
}
