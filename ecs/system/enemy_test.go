package system

import (
	"errors"
	"testing"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

func addEnemy(t *testing.T, w *ecs.World, x, y float64, enemy component.Enemy) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &enemy); err != nil {
		t.Fatalf("add enemy: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Width: 32, Height: 28, Alpha: 1}); err != nil {
		t.Fatalf("add sprite: %v", err)
	}
	return e
}

func TestPatrolTurnsAfterDistanceAndPauses(t *testing.T) {
	w := ecs.NewWorld()
	e := addEnemy(t, w, 100, 100, component.Enemy{
		Kind:      component.EnemyPatrol,
		Health:    1,
		Direction: 1,
		Speed:     60,
		Patrol:    component.PatrolState{Distance: 9.5, TurnFrames: 5},
	})
	sys := NewEnemySystem(nil)
	enemy := mustGet(t, w, e, component.EnemyComponent.Kind())
	tr := mustGet(t, w, e, component.TransformComponent.Kind())

	for i := 0; i < 10; i++ {
		sys.Update(w)
	}
	if enemy.Direction != 1 {
		t.Fatalf("turned early at x=%v", tr.X)
	}
	sys.Update(w)
	if enemy.Direction != -1 || enemy.Patrol.Turns != 1 {
		t.Fatalf("expected one turn, got direction %v turns %d", enemy.Direction, enemy.Patrol.Turns)
	}
	if !approx(tr.X, 110) {
		t.Fatalf("expected to stop at x=110, got %v", tr.X)
	}
	if sprite := mustGet(t, w, e, component.SpriteComponent.Kind()); !sprite.FacingLeft {
		t.Fatal("sprite should face the new direction")
	}

	for i := 0; i < 5; i++ {
		sys.Update(w)
		if !approx(tr.X, 110) {
			t.Fatalf("moved during the turn pause: x=%v", tr.X)
		}
	}
	if enemy.Patrol.Phase != component.PatrolMoving {
		t.Fatal("pause should be over")
	}
	sys.Update(w)
	if !approx(tr.X, 109) {
		t.Fatalf("expected to walk back to x=109, got %v", tr.X)
	}
}

func TestDeadEnemiesDoNothing(t *testing.T) {
	w := ecs.NewWorld()
	e := addEnemy(t, w, 0, 0, component.Enemy{
		Kind:   component.EnemyTurret,
		Dead:   true,
		Turret: component.TurretState{IntervalFrames: 1},
	})
	NewEnemySystem(nil).Update(w)
	if n := len(w.Query(component.ProjectileComponent.Kind())); n != 0 {
		t.Fatalf("dead turret fired %d shots", n)
	}
	if tr := mustGet(t, w, e, component.TransformComponent.Kind()); tr.X != 0 {
		t.Fatalf("dead enemy moved to %v", tr.X)
	}
}

func TestTurretAlternatesOnCadence(t *testing.T) {
	w := ecs.NewWorld()
	e := addEnemy(t, w, 200, 100, component.Enemy{
		Kind:      component.EnemyTurret,
		Health:    1,
		Direction: -1,
		Turret: component.TurretState{
			IntervalFrames:   3,
			ProjectileSpeed:  200,
			ProjectileFrames: 120,
			SpawnOffset:      20,
		},
	})
	sys := NewEnemySystem(nil)

	shots := func() (left, right int) {
		ecs.ForEach(w, component.ProjectileComponent.Kind(), func(_ ecs.Entity, p *component.Projectile) {
			if p.VelocityX < 0 {
				left++
			} else {
				right++
			}
		})
		return left, right
	}

	sys.Update(w)
	sys.Update(w)
	if l, r := shots(); l+r != 0 {
		t.Fatalf("fired before the interval: %d shots", l+r)
	}
	sys.Update(w)
	if l, r := shots(); l != 1 || r != 0 {
		t.Fatalf("first shot should go left, got left=%d right=%d", l, r)
	}
	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	if l, r := shots(); l != 1 || r != 1 {
		t.Fatalf("second shot should go right, got left=%d right=%d", l, r)
	}

	enemy := mustGet(t, w, e, component.EnemyComponent.Kind())
	if enemy.Turret.Shots != 2 || enemy.Direction != -1 {
		t.Fatalf("expected 2 shots and direction -1, got %d and %v", enemy.Turret.Shots, enemy.Direction)
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Projectile, tr *component.Transform) {
		want := 180.0
		if p.VelocityX > 0 {
			want = 220
		}
		if !approx(tr.X, want) {
			t.Fatalf("projectile spawned at %v, want %v", tr.X, want)
		}
		if p.Source != uint64(e) {
			t.Fatalf("projectile source = %d, want %d", p.Source, uint64(e))
		}
	})
}

func TestTurretScriptDirection(t *testing.T) {
	scripts := NewTurretScripts()
	tests := []struct {
		name      string
		path      string
		shots     int
		direction float64
		playerDX  float64
		want      float64
	}{
		{"no_script_alternates", "", 1, 1, 0, -1},
		{"alternate_script", "turret_alternate.tengo", 1, -1, 0, 1},
		{"track_before_warmup", "turret_track.tengo", 1, 1, 300, -1},
		{"track_aims_right", "turret_track.tengo", 2, 1, 300, 1},
		{"track_aims_left", "turret_track.tengo", 4, 1, -300, -1},
		{"track_without_player", "turret_track.tengo", 4, 1, 0, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := scripts.NextDirection(tc.path, tc.shots, tc.direction, tc.playerDX); got != tc.want {
				t.Fatalf("NextDirection = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTurretScriptFailuresFallBack(t *testing.T) {
	sources := map[string]string{
		"broken.tengo":  "next_direction := ",
		"unset.tengo":   "x := 1",
		"zero.tengo":    "next_direction := 0",
		"runtime.tengo": "next_direction := undefined_thing + 1",
	}
	loads := 0
	scripts := NewTurretScripts()
	scripts.load = func(name string) ([]byte, error) {
		loads++
		src, ok := sources[name]
		if !ok {
			return nil, errors.New("not found")
		}
		return []byte(src), nil
	}

	for _, path := range []string{"broken.tengo", "unset.tengo", "zero.tengo", "runtime.tengo", "missing.tengo"} {
		t.Run(path, func(t *testing.T) {
			before := loads
			for i := 0; i < 3; i++ {
				if got := scripts.NextDirection(path, i, 1, 0); got != -1 {
					t.Fatalf("call %d: expected fallback -1, got %v", i, got)
				}
			}
			if loads-before > 1 {
				t.Fatalf("failing script loaded %d times", loads-before)
			}
		})
	}
}

func TestResolveEnemyContact(t *testing.T) {
	tests := []struct {
		name         string
		playerBottom float64
		invulnerable bool
		want         ContactResult
	}{
		{"well_above", 80, false, ContactStomp},
		{"exactly_on_tolerance", 110, false, ContactStomp},
		{"just_past_tolerance", 110.01, false, ContactKill},
		{"side_hit_invulnerable", 130, true, ContactNone},
		{"stomp_while_invulnerable", 105, true, ContactStomp},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveEnemyContact(tc.playerBottom, 100, 10, tc.invulnerable); got != tc.want {
				t.Fatalf("ResolveEnemyContact = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStompKillsAndBounces(t *testing.T) {
	w := ecs.NewWorld()
	sess := addSession(t, w)
	player := addPlayer(t, w, 100, 0, true)
	enemyEntity := addEnemy(t, w, 100, 200, component.Enemy{
		Kind:           component.EnemyPatrol,
		Health:         1,
		Direction:      1,
		StompTolerance: 10,
		DeathFrames:    30,
		DeathRise:      20,
	})
	if err := ecs.Add(w, enemyEntity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width: 32, Height: 28, Mass: 1, Layer: component.LayerEnemy,
	}); err != nil {
		t.Fatalf("add enemy body: %v", err)
	}

	physics := NewPhysicsSystem()
	physics.Update(w)

	// Feet 5px into the enemy's top edge (186).
	playerT := mustGet(t, w, player, component.TransformComponent.Kind())
	playerT.X, playerT.Y = 100, 186+5-20
	enemyT := mustGet(t, w, enemyEntity, component.TransformComponent.Kind())
	enemyT.X, enemyT.Y = 100, 200

	NewEnemyContactSystem().Update(w)

	enemy := mustGet(t, w, enemyEntity, component.EnemyComponent.Kind())
	if !enemy.Dead {
		t.Fatal("stomp should kill a one-health enemy")
	}
	if ecs.Has(w, enemyEntity, component.PhysicsBodyComponent.Kind()) {
		t.Fatal("dead enemy should leave the physics space")
	}
	tween := mustGet(t, w, enemyEntity, component.TweenComponent.Kind())
	if !tween.DestroyOnComplete || tween.DY != -20 {
		t.Fatalf("unexpected death tween %+v", tween)
	}
	body := mustGet(t, w, player, component.PhysicsBodyComponent.Kind())
	if vy := body.Body.Velocity().Y; !approx(vy, -450) {
		t.Fatalf("expected bounce velocity -450, got %v", vy)
	}
	if sess.Terminal() {
		t.Fatalf("stomp ended the session: %v", sess.Phase)
	}
	if got := drainSounds(w, component.SoundEnemyDie); got != 1 {
		t.Fatalf("expected one death sound, got %d", got)
	}

	// A second pass over the dead enemy does nothing.
	NewEnemyContactSystem().Update(w)
	if sess.Terminal() || enemy.Health != 0 {
		t.Fatalf("dead enemy still interacts: phase %v health %d", sess.Phase, enemy.Health)
	}
}

func TestSideContact(t *testing.T) {
	tests := []struct {
		name         string
		invulnerable bool
		wantPhase    component.GamePhase
	}{
		{"vulnerable", false, component.PhaseDead},
		{"invulnerable", true, component.PhasePlaying},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			sess := addSession(t, w)
			player := addPlayer(t, w, 90, 200, true)
			if tc.invulnerable {
				_ = ecs.Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 30})
			}
			addEnemy(t, w, 100, 200, component.Enemy{Kind: component.EnemyPatrol, Health: 1, StompTolerance: 10})

			NewEnemyContactSystem().Update(w)

			if sess.Phase != tc.wantPhase {
				t.Fatalf("phase = %v, want %v", sess.Phase, tc.wantPhase)
			}
			interrupted := ecs.Has(w, player, component.PlayerStateInterruptComponent.Kind())
			if interrupted != (tc.wantPhase == component.PhaseDead) {
				t.Fatalf("interrupt queued = %v", interrupted)
			}
			if tc.wantPhase == component.PhaseDead && sess.Cause != component.CauseKilled {
				t.Fatalf("cause = %v, want killed", sess.Cause)
			}
		})
	}
}
