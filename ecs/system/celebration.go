package system

import (
	"math/rand/v2"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

const celebrationEmitEvery = 3

// SpawnCelebration creates the win effect centered on the camera view, or on
// the player when there is no camera.
func SpawnCelebration(w *ecs.World, activeFrames, stopFrames int) ecs.Entity {
	x, y := 0.0, 0.0
	if _, cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		x = cam.X + cam.Width/2
		y = cam.Y + cam.Height/2
	} else if player, ok := playerEntity(w); ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			x, y = t.X, t.Y
		}
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.CelebrationComponent.Kind(), &component.Celebration{
		Phase:      component.CelebrationActive,
		Remaining:  activeFrames,
		StopFrames: stopFrames,
		EmitEvery:  celebrationEmitEvery,
	})
	return e
}

// CelebrationSystem advances each celebration through Active, Stopping and
// Removed. Bursts are only emitted while Active.
type CelebrationSystem struct {
	randomFloat func() float64
}

func NewCelebrationSystem() *CelebrationSystem {
	return &CelebrationSystem{randomFloat: rand.Float64}
}

func (s *CelebrationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var spreadX, spreadY float64
	if _, cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		spreadX = max(0, cam.Width/2-50)
		spreadY = max(0, cam.Height/2-50)
	}

	ecs.ForEach2(w, component.CelebrationComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Celebration, t *component.Transform) {
		switch c.Phase {
		case component.CelebrationActive:
			c.SinceEmission++
			if c.EmitEvery <= 0 || c.SinceEmission >= c.EmitEvery {
				c.SinceEmission = 0
				x := t.X + (s.randomFloat()*2-1)*spreadX
				y := t.Y + (s.randomFloat()*2-1)*spreadY
				emitEffect(w, component.EffectCelebration, x, y)
			}
			c.Remaining--
			if c.Remaining <= 0 {
				c.Phase = component.CelebrationStopping
				c.Remaining = c.StopFrames
			}
		case component.CelebrationStopping:
			c.Remaining--
			if c.Remaining <= 0 {
				c.Phase = component.CelebrationRemoved
			}
		case component.CelebrationRemoved:
			ecs.DestroyEntity(w, e)
		}
	})
}
