package entity

import (
	"fmt"

	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

const cameraSmoothness = 0.1

// NewCameraAt creates the view centered on x, y, along with the level bounds
// the camera clamps to.
func NewCameraAt(w *ecs.World, x, y, levelWidth, levelHeight float64) (ecs.Entity, error) {
	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  levelWidth,
		Height: levelHeight,
	}); err != nil {
		return 0, fmt.Errorf("camera: add level bounds: %w", err)
	}

	camera := ecs.CreateEntity(w)
	cam := &component.Camera{
		Width:      common.BaseWidth,
		Height:     common.BaseHeight,
		Smoothness: cameraSmoothness,
	}
	cam.X = common.Clamp(x-cam.Width/2, 0, max(0, levelWidth-cam.Width))
	cam.Y = common.Clamp(y-cam.Height/2, 0, max(0, levelHeight-cam.Height))
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
