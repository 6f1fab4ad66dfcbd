package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
	"github.com/milk9111/alienswim/levels"
)

var (
	flagPoleColor = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	flagColor     = color.RGBA{R: 0xff, G: 0xd2, B: 0x3f, A: 0xff}
)

// NewGoalFromMarker builds the invisible win trigger plus a flag decoration
// standing on its bottom edge.
func NewGoalFromMarker(w *ecs.World, marker levels.Entity) (ecs.Entity, error) {
	width := marker.FloatProp("width", 72)
	height := marker.FloatProp("height", 108)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GoalComponent.Kind(), &component.Goal{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("goal: add goal: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: marker.X, Y: marker.Y}); err != nil {
		return 0, fmt.Errorf("goal: add transform: %w", err)
	}

	bottom := marker.Y + height/2
	if err := addDecoration(w, marker.X, bottom-height/2, 6, height, flagPoleColor, 1); err != nil {
		return 0, fmt.Errorf("goal: add pole: %w", err)
	}
	if err := addDecoration(w, marker.X+18, bottom-height+12, 30, 22, flagColor, 1); err != nil {
		return 0, fmt.Errorf("goal: add flag: %w", err)
	}

	return e, nil
}

func addDecoration(w *ecs.World, x, y, width, height float64, c color.RGBA, layer int) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  c,
		Width:  width,
		Height: height,
		Alpha:  1,
		Layer:  layer,
	})
}
