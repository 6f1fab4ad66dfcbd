package system

import (
	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// ParticleSystem moves cosmetic particles and fades them over their life.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform) {
		p.VY += p.Gravity * common.DeltaTime
		t.X += p.VX * common.DeltaTime
		t.Y += p.VY * common.DeltaTime
		p.Life++

		if p.MaxLife <= 0 {
			return
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Alpha = common.Clamp(1-float64(p.Life)/float64(p.MaxLife), 0, 1)
		}
	})
}
