package system

import (
	"math"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

type PickupBobSystem struct{}

func NewPickupBobSystem() *PickupBobSystem { return &PickupBobSystem{} }

func (s *PickupBobSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		if !pickup.Initialized {
			pickup.BaseY = t.Y
			pickup.Initialized = true
		}
		if pickup.BobAmplitude == 0 || pickup.BobSpeed == 0 {
			return
		}

		pickup.BobPhase += pickup.BobSpeed
		t.Y = pickup.BaseY + math.Sin(pickup.BobPhase)*pickup.BobAmplitude
	})
}
