package system

import (
	"math/rand/v2"

	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// CameraSystem centers the view on the player, clamps it to the level bounds
// and applies any pending shake.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
	randomFloat  func() float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{randomFloat: rand.Float64}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	if !w.IsAlive(cs.targetEntity) {
		if target, ok := playerEntity(w); ok {
			cs.targetEntity = target
		}
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if req, ok := ecs.Get(w, cs.camEntity, component.CameraShakeRequestComponent.Kind()); ok {
		cam.ShakeFrames = req.Frames
		cam.ShakeIntensity = req.Intensity
		ecs.Remove(w, cs.camEntity, component.CameraShakeRequestComponent.Kind())
	}

	if target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind()); ok {
		goalX := target.X - cam.Width/2
		goalY := target.Y - cam.Height/2
		if _, bounds, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
			goalX = common.Clamp(goalX, 0, max(0, bounds.Width-cam.Width))
			goalY = common.Clamp(goalY, 0, max(0, bounds.Height-cam.Height))
		}
		if cam.Smoothness <= 0 || cam.Smoothness >= 1 {
			cam.X, cam.Y = goalX, goalY
		} else {
			cam.X = common.Lerp(cam.X, goalX, cam.Smoothness)
			cam.Y = common.Lerp(cam.Y, goalY, cam.Smoothness)
		}
	}

	if cam.ShakeFrames > 0 {
		cam.ShakeFrames--
		cam.ShakeX = (cs.randomFloat()*2 - 1) * cam.ShakeIntensity * cam.Width
		cam.ShakeY = (cs.randomFloat()*2 - 1) * cam.ShakeIntensity * cam.Height
	} else {
		cam.ShakeX, cam.ShakeY = 0, 0
	}
}
