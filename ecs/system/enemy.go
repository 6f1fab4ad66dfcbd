package system

import (
	"math"

	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// EnemySystem advances each living enemy's behavior: patrol walkers pace and
// pause at each turn, turrets fire on a fixed cadence.
type EnemySystem struct {
	scripts *TurretScripts
}

func NewEnemySystem(scripts *TurretScripts) *EnemySystem {
	if scripts == nil {
		scripts = NewTurretScripts()
	}
	return &EnemySystem{scripts: scripts}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		if enemy.Dead {
			return
		}
		if enemy.Direction == 0 {
			enemy.Direction = 1
		}
		switch enemy.Kind {
		case component.EnemyPatrol:
			s.updatePatrol(w, e, enemy, t)
		case component.EnemyTurret:
			s.updateTurret(w, e, enemy, t)
		}
	})
}

// updatePatrol turns after Distance pixels of travel since the last turn,
// measured from the transform so pushes and slopes count too.
func (s *EnemySystem) updatePatrol(w *ecs.World, e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
	p := &enemy.Patrol
	if !p.Tracking {
		p.LastX = t.X
		p.Tracking = true
	}
	p.Traveled += math.Abs(t.X - p.LastX)
	p.LastX = t.X

	switch p.Phase {
	case component.PatrolTurning:
		p.TurnRemaining--
		if p.TurnRemaining <= 0 {
			p.Phase = component.PatrolMoving
			p.Traveled = 0
		}
		driveEnemy(w, e, t, 0)
	default:
		if p.Traveled >= p.Distance {
			enemy.Direction = -enemy.Direction
			p.Traveled = 0
			p.Turns++
			p.Phase = component.PatrolTurning
			p.TurnRemaining = p.TurnFrames
			faceEnemy(w, e, enemy)
			driveEnemy(w, e, t, 0)
			return
		}
		driveEnemy(w, e, t, enemy.Direction*enemy.Speed)
	}
}

func (s *EnemySystem) updateTurret(w *ecs.World, e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
	tu := &enemy.Turret
	driveEnemy(w, e, t, 0)

	tu.SinceShot++
	if tu.SinceShot < tu.IntervalFrames {
		return
	}
	tu.SinceShot = 0

	SpawnProjectile(w, e, enemy, t)
	tu.Shots++

	playerDX := 0.0
	if player, ok := playerEntity(w); ok {
		if pt, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			playerDX = pt.X - t.X
		}
	}
	enemy.Direction = s.scripts.NextDirection(tu.Script, tu.Shots, enemy.Direction, playerDX)
	faceEnemy(w, e, enemy)
}

// SpawnProjectile fires one shot from a turret in its current direction.
func SpawnProjectile(w *ecs.World, source ecs.Entity, enemy *component.Enemy, t *component.Transform) ecs.Entity {
	tu := &enemy.Turret
	size := tu.ProjectileSize
	if size <= 0 {
		size = 10
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: t.X + enemy.Direction*tu.SpawnOffset,
		Y: t.Y,
	})
	_ = ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		VelocityX: enemy.Direction * tu.ProjectileSpeed,
		Source:    uint64(source),
	})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:     size,
		Height:    size,
		Mass:      0.1,
		Kind:      component.BodyDynamic,
		Layer:     component.LayerProjectile,
		NoGravity: true,
	})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: tu.ProjectileFrames})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:      tu.ProjectileColor,
		Width:      size,
		Height:     size,
		Alpha:      1,
		FacingLeft: enemy.Direction < 0,
		Layer:      2,
	})
	return e
}

// KillEnemy runs the death sequence: the body leaves the physics space, the
// animation stops and the entity rises while fading, then is destroyed.
func KillEnemy(w *ecs.World, e ecs.Entity) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	ecs.Remove(w, e, component.PhysicsBodyComponent.Kind())
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Stop()
	}

	emitSound(w, component.SoundEnemyDie, 1)
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		emitEffect(w, component.EffectEnemyDie, t.X, t.Y)
	}

	_ = ecs.Add(w, e, component.TweenComponent.Kind(), &component.Tween{
		DY:                -enemy.DeathRise,
		ToAlpha:           0,
		Frames:            enemy.DeathFrames,
		DestroyOnComplete: true,
	})
}

func driveEnemy(w *ecs.World, e ecs.Entity, t *component.Transform, vx float64) {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if ok && body.Body != nil {
		body.Body.SetVelocity(vx, body.Body.Velocity().Y)
		return
	}
	t.X += vx * common.DeltaTime
}

func faceEnemy(w *ecs.World, e ecs.Entity, enemy *component.Enemy) {
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.FacingLeft = enemy.Direction < 0
	}
}
