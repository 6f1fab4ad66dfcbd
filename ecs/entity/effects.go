package entity

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
	"github.com/milk9111/alienswim/prefabs"
)

const particleLayer = 5

// NewEffectSpawner returns a function that bursts particles for an effect
// kind. Kinds missing from the spec spawn nothing.
func NewEffectSpawner(spec *prefabs.EffectsSpec) func(w *ecs.World, kind string, x, y float64) {
	return newEffectSpawner(spec, rand.Float64)
}

func newEffectSpawner(spec *prefabs.EffectsSpec, random func() float64) func(w *ecs.World, kind string, x, y float64) {
	var effects map[string]prefabs.EffectSpec
	if spec != nil {
		effects = spec.Effects
	}

	return func(w *ecs.World, kind string, x, y float64) {
		fx, ok := effects[kind]
		if !ok || fx.Count <= 0 || w == nil {
			return
		}
		life := common.FramesMS(fx.LifeMS)
		if life <= 0 {
			life = 1
		}
		size := orDefault(fx.Size, 4)
		c := fx.Color.Or(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

		for i := 0; i < fx.Count; i++ {
			// Bursts point up and fan out by Spread radians.
			angle := -math.Pi/2 + (random()-0.5)*fx.Spread
			speed := fx.Speed * (0.5 + random()*0.5)

			e := ecs.CreateEntity(w)
			_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
			_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{
				VX:      math.Cos(angle) * speed,
				VY:      math.Sin(angle) * speed,
				Gravity: fx.Gravity,
				MaxLife: life,
			})
			_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: life})
			_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
				Color:  c,
				Width:  size,
				Height: size,
				Alpha:  1,
				Layer:  particleLayer,
			})
		}
	}
}
