package system

import (
	"math"

	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// PlatformSystem drives moving platforms. Platforms with a kinematic body are
// moved by the physics step; bare platforms move their transform directly.
type PlatformSystem struct{}

func NewPlatformSystem() *PlatformSystem {
	return &PlatformSystem{}
}

func (s *PlatformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.MovingPlatformComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.MovingPlatform, t *component.Transform) {
		if p.DelayFrames > 0 {
			p.DelayFrames--
			setBodyVelocity(w, e, 0, 0)
			return
		}
		if p.Direction == 0 {
			p.Direction = 1
		}

		offset := t.X - p.StartX
		if p.Axis == component.AxisVertical {
			offset = t.Y - p.StartY
		}
		// Only reverse while still heading away, so an overshoot cannot flip
		// the platform back and forth.
		if math.Abs(offset) > p.Distance && math.Signbit(offset) == math.Signbit(p.Direction) {
			p.Direction = -p.Direction
		}

		vx, vy := p.Speed*p.Direction, 0.0
		if p.Axis == component.AxisVertical {
			vx, vy = 0, p.Speed*p.Direction
		}
		if !setBodyVelocity(w, e, vx, vy) {
			t.X += vx * common.DeltaTime
			t.Y += vy * common.DeltaTime
		}
	})
}
