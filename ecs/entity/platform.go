package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
	"github.com/milk9111/alienswim/levels"
	"github.com/milk9111/alienswim/prefabs"
)

var platformColor = color.RGBA{R: 0x8b, G: 0x6b, B: 0x4a, A: 0xff}

// NewPlatformFromMarker reads axis, distance, speed and delay (milliseconds)
// from the marker, falling back to the prefab for anything left out.
func NewPlatformFromMarker(w *ecs.World, spec *prefabs.PlatformSpec, marker levels.Entity) (ecs.Entity, error) {
	var base prefabs.PlatformSpec
	if spec != nil {
		base = *spec
	}

	axis := component.PlatformAxis(marker.StringProp("axis", string(component.AxisHorizontal)))
	if axis != component.AxisHorizontal && axis != component.AxisVertical {
		return 0, fmt.Errorf("platform: unknown axis %q", axis)
	}

	mp := &component.MovingPlatform{
		Axis:        axis,
		Distance:    marker.FloatProp("distance", orDefault(base.Distance, 200)),
		Speed:       marker.FloatProp("speed", orDefault(base.Speed, 100)),
		Direction:   1,
		StartX:      marker.X,
		StartY:      marker.Y,
		DelayFrames: common.FramesMS(int(marker.FloatProp("delay", float64(base.DelayMS)))),
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MovingPlatformComponent.Kind(), mp); err != nil {
		return 0, fmt.Errorf("platform: add moving platform: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: marker.X, Y: marker.Y}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    orDefault(base.Collider.Width, 108),
		Height:   orDefault(base.Collider.Height, 18),
		Friction: orDefault(base.Collider.Friction, 1),
		Kind:     component.BodyKinematic,
		Layer:    component.LayerSolid,
	}); err != nil {
		return 0, fmt.Errorf("platform: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  base.Sprite.Color.Or(platformColor),
		Width:  orDefault(base.Sprite.Width, 108),
		Height: orDefault(base.Sprite.Height, 18),
		Alpha:  1,
		Layer:  base.Sprite.Layer,
	}); err != nil {
		return 0, fmt.Errorf("platform: add sprite: %w", err)
	}

	return e, nil
}
