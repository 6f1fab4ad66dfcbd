package system

import (
	"testing"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

func addTerrain(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TerrainComponent.Kind(), &component.Terrain{})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    width,
		Height:   height,
		Friction: 1,
		Kind:     component.BodyStatic,
	}); err != nil {
		t.Fatalf("add terrain body: %v", err)
	}
	return e
}

func TestPlayerLandsOnTerrain(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 100, 120, true)
	addTerrain(t, w, 100, 200, 400, 36)
	ps := NewPhysicsSystem()
	contact := mustGet(t, w, player, component.PlayerCollisionComponent.Kind())

	ps.Update(w)
	if contact.Grounded {
		t.Fatal("player grounded while still in the air")
	}

	grounded := false
	for i := 0; i < 120 && !grounded; i++ {
		ps.Update(w)
		grounded = contact.Grounded
	}
	if !grounded {
		t.Fatal("player never touched the ground")
	}

	tr := mustGet(t, w, player, component.TransformComponent.Kind())
	// Ground top is 182; the 40px collider rests with its center about 20px above.
	if tr.Y < 150 || tr.Y > 170 {
		t.Fatalf("player resting at y=%v, expected on top of the ground", tr.Y)
	}
}

func TestProjectileFlagsTerrainHit(t *testing.T) {
	w := ecs.NewWorld()
	addTerrain(t, w, 60, 0, 36, 200)
	shot := spawnTestProjectile(t, w, 0, 0, 1, 600)
	ps := NewPhysicsSystem()
	projectiles := NewProjectileSystem()

	for i := 0; i < 60 && w.IsAlive(shot); i++ {
		ps.Update(w)
		projectiles.Update(w)
	}
	if w.IsAlive(shot) {
		t.Fatal("projectile passed through terrain")
	}
}

func TestRemovedBodiesLeaveTheSpace(t *testing.T) {
	w := ecs.NewWorld()
	e := addEnemy(t, w, 0, 0, component.Enemy{Kind: component.EnemyPatrol})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 10, Height: 10, Layer: component.LayerEnemy})
	ps := NewPhysicsSystem()
	ps.Update(w)
	if _, ok := ps.entities[e]; !ok {
		t.Fatal("body was not created")
	}

	ecs.Remove(w, e, component.PhysicsBodyComponent.Kind())
	ps.Update(w)
	if _, ok := ps.entities[e]; ok {
		t.Fatal("removed body still tracked")
	}
	tr := mustGet(t, w, e, component.TransformComponent.Kind())
	before := tr.Y
	ps.Update(w)
	if tr.Y != before {
		t.Fatalf("transform still driven by physics: %v -> %v", before, tr.Y)
	}
}
