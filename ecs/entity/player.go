package entity

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
	"github.com/milk9111/alienswim/prefabs"
)

var playerColor = color.RGBA{R: 0x7f, G: 0xd3, B: 0x5b, A: 0xff}

func NewPlayerAt(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, errors.New("player: nil spec")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}

	tuning := &component.Player{
		Acceleration:          spec.Acceleration,
		Drag:                  spec.Drag,
		MaxSpeed:              spec.MaxSpeed,
		JumpSpeed:             spec.JumpSpeed,
		BounceSpeed:           spec.BounceSpeed,
		DashSpeed:             spec.DashSpeed,
		DashFrames:            common.FramesMS(spec.DashMS),
		DashCooldownFrames:    common.FramesMS(spec.DashCooldownMS),
		FootstepFrames:        common.FramesMS(spec.FootstepMS),
		DrownFrames:           common.FramesMS(spec.DrownMS),
		DeathFadeFrames:       common.FramesMS(spec.DeathFadeMS),
		LandShakeFrames:       common.FramesMS(spec.LandShakeMS),
		LandShakeIntensity:    spec.LandShakeAmount,
		CelebrationFrames:     common.FramesMS(spec.CelebrationMS),
		CelebrationStopFrames: common.FramesMS(spec.CelebrationStopMS),
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), tuning); err != nil {
		return 0, fmt.Errorf("player: add tuning: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerStatusComponent.Kind(), &component.PlayerStatus{Facing: 1, CanDash: true}); err != nil {
		return 0, fmt.Errorf("player: add status: %w", err)
	}
	// The controller enters idle on its first frame.
	if err := ecs.Add(w, e, component.PlayerStateMachineComponent.Kind(), &component.PlayerStateMachine{}); err != nil {
		return 0, fmt.Errorf("player: add state machine: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}); err != nil {
		return 0, fmt.Errorf("player: add collision: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	mass := spec.Collider.Mass
	if mass <= 0 {
		mass = 1
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    orDefault(spec.Collider.Width, 28),
		Height:   orDefault(spec.Collider.Height, 40),
		Mass:     mass,
		Friction: spec.Collider.Friction,
		Kind:     component.BodyDynamic,
		Layer:    component.LayerPlayer,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  spec.Sprite.Color.Or(playerColor),
		Width:  orDefault(spec.Sprite.Width, 32),
		Height: orDefault(spec.Sprite.Height, 44),
		Alpha:  1,
		Layer:  spec.Sprite.Layer,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}

	anim := animationFromSpec(spec.Animation)
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}

	if grace := common.FramesMS(spec.SpawnGraceMS); grace > 0 {
		if err := ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: grace}); err != nil {
			return 0, fmt.Errorf("player: add spawn grace: %w", err)
		}
	}

	return e, nil
}

func animationFromSpec(spec prefabs.AnimationSpec) *component.Animation {
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	anim := &component.Animation{Defs: defs}
	if spec.Current != "" {
		anim.Play(spec.Current)
	}
	return anim
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
