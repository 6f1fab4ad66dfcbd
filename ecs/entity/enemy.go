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

var (
	patrolColor     = color.RGBA{R: 0xc8, G: 0x45, B: 0x3c, A: 0xff}
	turretColor     = color.RGBA{R: 0x8a, G: 0x3f, B: 0xc8, A: 0xff}
	projectileColor = color.RGBA{R: 0xff, G: 0xd2, B: 0x3f, A: 0xff}
)

// NewEnemyFromMarker builds the enemy named by the marker's kind prop.
// patrol_distance on the marker overrides the prefab value.
func NewEnemyFromMarker(w *ecs.World, specs *prefabs.EnemiesSpec, marker levels.Entity) (ecs.Entity, error) {
	kind := component.EnemyKind(marker.StringProp("kind", string(component.EnemyPatrol)))
	if specs == nil {
		return 0, fmt.Errorf("enemy: no specs for %q", kind)
	}
	spec, ok := specs.Enemies[string(kind)]
	if !ok {
		return 0, fmt.Errorf("enemy: unknown kind %q", kind)
	}
	if kind == component.EnemyPatrol {
		spec.PatrolDistance = marker.FloatProp("patrol_distance", spec.PatrolDistance)
	}
	return NewEnemyAt(w, kind, spec, marker.X, marker.Y)
}

func NewEnemyAt(w *ecs.World, kind component.EnemyKind, spec prefabs.EnemySpec, x, y float64) (ecs.Entity, error) {
	dir := spec.InitialDirection
	if dir == 0 {
		dir = 1
	}
	health := spec.Health
	if health <= 0 {
		health = 1
	}

	enemy := &component.Enemy{
		Kind:           kind,
		Health:         health,
		Direction:      dir,
		Speed:          spec.Speed,
		StompTolerance: spec.StompTolerancePx,
		DeathFrames:    common.FramesMS(spec.DeathFadeMS),
		DeathRise:      spec.DeathRise,
	}

	fallbackColor := patrolColor
	switch kind {
	case component.EnemyPatrol:
		enemy.Patrol = component.PatrolState{
			Distance:   orDefault(spec.PatrolDistance, 200),
			TurnFrames: common.FramesMS(spec.TurnMS),
		}
	case component.EnemyTurret:
		fallbackColor = turretColor
		enemy.Turret = component.TurretState{
			IntervalFrames:   common.FramesMS(spec.ShootIntervalMS),
			ProjectileSpeed:  orDefault(spec.ProjectileSpeed, 200),
			ProjectileFrames: common.FramesMS(spec.ProjectileMS),
			ProjectileSize:   spec.ProjectileSize,
			ProjectileColor:  spec.ProjectileColor.Or(projectileColor),
			SpawnOffset:      spec.SpawnOffset,
			Script:           spec.Script,
		}
	default:
		return 0, fmt.Errorf("enemy: unknown kind %q", kind)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), enemy); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	mass := spec.Collider.Mass
	if mass <= 0 {
		mass = 1
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    orDefault(spec.Collider.Width, 32),
		Height:   orDefault(spec.Collider.Height, 28),
		Mass:     mass,
		Friction: spec.Collider.Friction,
		Kind:     component.BodyDynamic,
		Layer:    component.LayerEnemy,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add physics body: %w", err)
	}

	layer := spec.Sprite.Layer
	if layer == 0 {
		layer = 2
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:      spec.Sprite.Color.Or(fallbackColor),
		Width:      orDefault(spec.Sprite.Width, 36),
		Height:     orDefault(spec.Sprite.Height, 30),
		Alpha:      1,
		FacingLeft: dir < 0,
		Layer:      layer,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add sprite: %w", err)
	}

	if spec.AnimationFrameCnt > 1 && spec.AnimationFPS > 0 {
		anim := &component.Animation{Defs: map[string]component.AnimationDef{
			"walk": {FrameCount: spec.AnimationFrameCnt, FPS: spec.AnimationFPS, Loop: true},
		}}
		anim.Play("walk")
		if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
			return 0, fmt.Errorf("enemy: add animation: %w", err)
		}
	}

	return e, nil
}
