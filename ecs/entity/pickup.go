package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
	"github.com/milk9111/alienswim/prefabs"
)

var coinColor = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}

const pickupLayer = 2

func NewCoinAt(w *ecs.World, spec *prefabs.PickupsSpec, x, y float64) (ecs.Entity, error) {
	var base prefabs.PickupsSpec
	if spec != nil {
		base = *spec
	}
	value := base.CoinValue
	if value == 0 {
		value = 10
	}
	size := orDefault(base.CoinSize, 24)

	return newPickup(w, &component.Pickup{
		Kind:            component.PickupCoin,
		Value:           value,
		BobAmplitude:    base.BobAmplitude,
		BobSpeed:        base.BobSpeed,
		CollisionWidth:  size,
		CollisionHeight: size,
	}, x, y, base.CoinColor.Or(coinColor))
}

// NewPowerUpAt builds a power-up of the named type. Types missing from the
// prefab are an error so a typo in a level does not silently do nothing.
func NewPowerUpAt(w *ecs.World, spec *prefabs.PickupsSpec, kind string, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("powerup: no spec for %q", kind)
	}
	pu, ok := spec.PowerUps[kind]
	if !ok {
		return 0, fmt.Errorf("powerup: unknown type %q", kind)
	}
	switch component.BuffKind(kind) {
	case component.BuffSpeed, component.BuffJump, component.BuffShield:
	default:
		return 0, fmt.Errorf("powerup: type %q has no effect", kind)
	}

	mult := pu.Multiplier
	if mult <= 0 {
		mult = 1
	}
	durationMS := pu.DurationMS
	if durationMS <= 0 {
		durationMS = 5000
	}
	size := orDefault(spec.PowerUpSize, 28)

	return newPickup(w, &component.Pickup{
		Kind:            component.PickupPowerUp,
		PowerUp:         component.BuffKind(kind),
		Multiplier:      mult,
		DurationFrames:  common.FramesMS(durationMS),
		BobAmplitude:    spec.BobAmplitude,
		BobSpeed:        spec.BobSpeed,
		CollisionWidth:  size,
		CollisionHeight: size,
	}, x, y, pu.Color.Or(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
}

func newPickup(w *ecs.World, pickup *component.Pickup, x, y float64, c color.RGBA) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), pickup); err != nil {
		return 0, fmt.Errorf("%s: add pickup: %w", pickup.Kind, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", pickup.Kind, err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  c,
		Width:  pickup.CollisionWidth,
		Height: pickup.CollisionHeight,
		Alpha:  1,
		Layer:  pickupLayer,
	}); err != nil {
		return 0, fmt.Errorf("%s: add sprite: %w", pickup.Kind, err)
	}
	return e, nil
}
