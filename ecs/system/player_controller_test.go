package system

import (
	"testing"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

func newTestController() *PlayerControllerSystem {
	return &PlayerControllerSystem{randomInt: func(n int) int { return 0 }}
}

func TestDashCooldownWindow(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 100, 100, false)
	ctrl := newTestController()
	input := mustGet(t, w, player, component.InputComponent.Kind())
	status := mustGet(t, w, player, component.PlayerStatusComponent.Kind())
	tuning := mustGet(t, w, player, component.PlayerComponent.Kind())

	input.DashPressed = true
	ctrl.Update(w)
	input.DashPressed = false

	if !status.Dashing || status.CanDash {
		t.Fatalf("expected an active dash, got dashing=%v canDash=%v", status.Dashing, status.CanDash)
	}
	if !approx(status.MoveVX, -tuning.DashSpeed) {
		t.Fatalf("dash facing right should push left, got vx %v", status.MoveVX)
	}
	if got := drainSounds(w, component.SoundDash); got != 1 {
		t.Fatalf("expected one dash sound, got %d", got)
	}

	window := tuning.DashFrames + tuning.DashCooldownFrames
	for frame := 1; frame < window; frame++ {
		input.DashPressed = true
		ctrl.Update(w)
		if status.CanDash {
			t.Fatalf("dash became available after %d frames, want %d", frame, window)
		}
		if frame == tuning.DashFrames && status.Dashing {
			t.Fatalf("dash still active after %d frames", frame)
		}
	}
	input.DashPressed = false
	ctrl.Update(w)
	if !status.CanDash {
		t.Fatalf("dash should be available %d frames after it started", window)
	}
	if got := drainSounds(w, component.SoundDash); got != 0 {
		t.Fatalf("presses during cooldown started %d dashes", got)
	}
}

func TestDashDirectionFollowsFacing(t *testing.T) {
	tests := []struct {
		name   string
		facing float64
		want   float64
	}{
		{"facing_right", 1, -600},
		{"facing_left", -1, 600},
		{"unset_facing", 0, -600},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := addPlayer(t, w, 0, 0, false)
			status := mustGet(t, w, player, component.PlayerStatusComponent.Kind())
			status.Facing = tc.facing
			mustGet(t, w, player, component.InputComponent.Kind()).DashPressed = true

			newTestController().Update(w)
			if !approx(status.MoveVX, tc.want) {
				t.Fatalf("vx = %v, want %v", status.MoveVX, tc.want)
			}
		})
	}
}

func TestJumpRequiresGround(t *testing.T) {
	tests := []struct {
		name      string
		grounded  bool
		wantState string
		wantSound int
	}{
		{"grounded", true, "jump", 1},
		{"airborne", false, "fall", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := addPlayer(t, w, 0, 0, false)
			mustGet(t, w, player, component.PlayerCollisionComponent.Kind()).Grounded = tc.grounded
			mustGet(t, w, player, component.InputComponent.Kind()).UpPressed = true

			newTestController().Update(w)

			sm := mustGet(t, w, player, component.PlayerStateMachineComponent.Kind())
			if sm.State.Name() != tc.wantState {
				t.Fatalf("state = %s, want %s", sm.State.Name(), tc.wantState)
			}
			if got := drainSounds(w, component.SoundJump); got != tc.wantSound {
				t.Fatalf("jump sounds = %d, want %d", got, tc.wantSound)
			}
		})
	}
}

func TestLandingFiresOncePerTouchdown(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 0, 0, false)
	ctrl := newTestController()
	contact := mustGet(t, w, player, component.PlayerCollisionComponent.Kind())

	for i := 0; i < 3; i++ {
		ctrl.Update(w)
	}
	w.Events().Drain()

	contact.Grounded = true
	ctrl.Update(w)
	events := w.Events().Drain()
	lands, shakes := 0, 0
	for _, evt := range events {
		switch evt := evt.(type) {
		case component.SoundRequest:
			if evt.Key == component.SoundLand {
				lands++
			}
		case component.CameraShakeRequest:
			shakes++
		}
	}
	if lands != 1 || shakes != 1 {
		t.Fatalf("touchdown produced %d land sounds and %d shakes, want 1 and 1", lands, shakes)
	}

	for i := 0; i < 5; i++ {
		ctrl.Update(w)
	}
	if got := drainSounds(w, component.SoundLand); got != 0 {
		t.Fatalf("standing still replayed the landing %d times", got)
	}
}

func TestWalkAcceleratesToMaxSpeed(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 0, 0, false)
	mustGet(t, w, player, component.PlayerCollisionComponent.Kind()).Grounded = true
	input := mustGet(t, w, player, component.InputComponent.Kind())
	status := mustGet(t, w, player, component.PlayerStatusComponent.Kind())
	ctrl := newTestController()

	input.Left = true
	for i := 0; i < 120; i++ {
		ctrl.Update(w)
	}
	if !approx(status.MoveVX, -350) {
		t.Fatalf("expected vx clamped to -350, got %v", status.MoveVX)
	}
	if status.Facing != -1 {
		t.Fatalf("expected facing left, got %v", status.Facing)
	}
	if name := mustGet(t, w, player, component.PlayerStateMachineComponent.Kind()).State.Name(); name != "walk" {
		t.Fatalf("state = %s, want walk", name)
	}

	input.Left = false
	for i := 0; i < 30; i++ {
		ctrl.Update(w)
	}
	if status.MoveVX != 0 {
		t.Fatalf("drag should stop the player, got vx %v", status.MoveVX)
	}
}

func TestDrownSequence(t *testing.T) {
	w := ecs.NewWorld()
	sess := addSession(t, w)
	player := addPlayer(t, w, 50, 50, false)
	ctrl := newTestController()
	ctrl.Update(w)

	if !interruptPlayer(w, player, component.PhaseDead, component.CauseDrowned, component.InterruptDrown) {
		t.Fatal("interrupt rejected")
	}
	w.Events().Drain()
	ctrl.Update(w)

	sm := mustGet(t, w, player, component.PlayerStateMachineComponent.Kind())
	if sm.State.Name() != "drown" {
		t.Fatalf("state = %s, want drown", sm.State.Name())
	}
	tween := mustGet(t, w, player, component.TweenComponent.Kind())
	if tween.DY != 30 || tween.ToAlpha != 0.5 || tween.Ease != component.EasePower1 {
		t.Fatalf("unexpected sink tween %+v", tween)
	}
	var panel *component.PanelRequest
	for _, evt := range w.Events().Drain() {
		if p, ok := evt.(component.PanelRequest); ok {
			panel = &p
		}
	}
	if panel == nil || panel.Message != "You Drowned!" {
		t.Fatalf("expected drown panel, got %+v", panel)
	}

	status := mustGet(t, w, player, component.PlayerStatusComponent.Kind())
	tuning := mustGet(t, w, player, component.PlayerComponent.Kind())
	// The frame that entered the drown state already counted.
	for i := 0; i < tuning.DrownFrames-2; i++ {
		ctrl.Update(w)
	}
	if status.Dead {
		t.Fatal("player died before the sink finished")
	}
	ctrl.Update(w)
	if !status.Dead {
		t.Fatal("player should be dead once the sink finishes")
	}
	if sess.Phase != component.PhaseDead || sess.Cause != component.CauseDrowned {
		t.Fatalf("session = %v/%v", sess.Phase, sess.Cause)
	}
}

func TestTerminalStatesIgnoreInput(t *testing.T) {
	w := ecs.NewWorld()
	addSession(t, w)
	player := addPlayer(t, w, 0, 0, false)
	ctrl := newTestController()
	ctrl.Update(w)

	interruptPlayer(w, player, component.PhaseDead, component.CauseKilled, component.InterruptDead)
	ctrl.Update(w)

	input := mustGet(t, w, player, component.InputComponent.Kind())
	input.DashPressed = true
	input.UpPressed = true
	input.Right = true
	mustGet(t, w, player, component.PlayerCollisionComponent.Kind()).Grounded = true
	ctrl.Update(w)

	status := mustGet(t, w, player, component.PlayerStatusComponent.Kind())
	if status.Dashing || status.MoveVX != 0 {
		t.Fatalf("dead player moved: dashing=%v vx=%v", status.Dashing, status.MoveVX)
	}
	if name := mustGet(t, w, player, component.PlayerStateMachineComponent.Kind()).State.Name(); name != "dead" {
		t.Fatalf("state = %s, want dead", name)
	}
}

func TestJumpFromRisingPlatform(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 100, 100, true)
	platform := addPlatform(t, w, component.MovingPlatform{
		Axis:      component.AxisVertical,
		Distance:  1000,
		Speed:     80,
		Direction: -1,
		StartX:    100,
		StartY:    150,
	})
	if err := ecs.Add(w, platform, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    200,
		Height:   18,
		Friction: 1,
		Kind:     component.BodyKinematic,
		Layer:    component.LayerSolid,
	}); err != nil {
		t.Fatalf("add platform body: %v", err)
	}

	ctrl := newTestController()
	platforms := NewPlatformSystem()
	ps := NewPhysicsSystem()
	step := func() {
		ctrl.Update(w)
		platforms.Update(w)
		ps.Update(w)
	}
	for i := 0; i < 120; i++ {
		step()
	}

	contact := mustGet(t, w, player, component.PlayerCollisionComponent.Kind())
	sm := mustGet(t, w, player, component.PlayerStateMachineComponent.Kind())
	if !contact.Grounded || contact.GroundVY >= 0 {
		t.Fatalf("expected to ride the rising platform, grounded=%v groundVY=%v", contact.Grounded, contact.GroundVY)
	}
	step()
	if name := sm.State.Name(); name != "idle" && name != "walk" {
		t.Fatalf("riding a rising platform left the player in %s", name)
	}
	w.Events().Drain()

	mustGet(t, w, player, component.InputComponent.Kind()).UpPressed = true
	ctrl.Update(w)
	if sm.State.Name() != "jump" {
		t.Fatalf("jump press on a rising platform gave state %s", sm.State.Name())
	}
	if got := drainSounds(w, component.SoundJump); got != 1 {
		t.Fatalf("jump sounds = %d, want 1", got)
	}
}

func TestFallingPlayerJumpsOnceGrounded(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 0, 0, false)
	ctrl := newTestController()
	ctrl.Update(w)
	sm := mustGet(t, w, player, component.PlayerStateMachineComponent.Kind())
	if sm.State.Name() != "fall" {
		t.Fatalf("state = %s, want fall", sm.State.Name())
	}

	// Still rising relative to the ground, so the fall state is not left on
	// its own; the jump press must still be honoured.
	contact := mustGet(t, w, player, component.PlayerCollisionComponent.Kind())
	contact.Grounded = true
	contact.GroundVY = 200
	mustGet(t, w, player, component.InputComponent.Kind()).UpPressed = true
	ctrl.Update(w)
	if sm.State.Name() != "jump" {
		t.Fatalf("grounded jump press from fall gave state %s", sm.State.Name())
	}
}

func TestDashIgnoresPlatformCarry(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 100, 100, true)
	ps := NewPhysicsSystem()
	ps.Update(w)

	contact := mustGet(t, w, player, component.PlayerCollisionComponent.Kind())
	tuning := mustGet(t, w, player, component.PlayerComponent.Kind())
	body := mustGet(t, w, player, component.PhysicsBodyComponent.Kind())
	input := mustGet(t, w, player, component.InputComponent.Kind())
	ctrl := newTestController()

	contact.Grounded = true
	contact.GroundVX = 80
	input.DashPressed = true
	ctrl.Update(w)
	input.DashPressed = false
	if got := body.Body.Velocity().X; !approx(got, -tuning.DashSpeed) {
		t.Fatalf("dash vx on a moving platform = %v, want %v", got, -tuning.DashSpeed)
	}

	for i := 0; i < tuning.DashFrames; i++ {
		ctrl.Update(w)
	}
	if got := body.Body.Velocity().X; !approx(got, 80) {
		t.Fatalf("after the dash vx = %v, want the platform carry 80", got)
	}
}
