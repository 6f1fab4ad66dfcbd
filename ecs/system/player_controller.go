package system

import (
	"math/rand/v2"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// PlayerControllerSystem runs the player state machine and the dash overlay.
// Horizontal speed is kept on PlayerStatus.MoveVX so platform carry can be
// added on top without feeding back into acceleration.
type PlayerControllerSystem struct {
	randomInt func(n int) int
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{randomInt: rand.IntN}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	sess := session(w)
	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.PlayerStatusComponent.Kind(),
		component.PlayerStateMachineComponent.Kind(),
		component.InputComponent.Kind(),
	)
	for _, e := range entities {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		status, _ := ecs.Get(w, e, component.PlayerStatusComponent.Kind())
		sm, _ := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind())
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		if player == nil || status == nil || sm == nil || input == nil {
			continue
		}
		p.updatePlayer(w, e, sess, player, status, sm, input)
	}
}

func (p *PlayerControllerSystem) updatePlayer(w *ecs.World, e ecs.Entity, sess *component.GameSession, player *component.Player, status *component.PlayerStatus, sm *component.PlayerStateMachine, input *component.Input) {
	contact, _ := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())

	vy := 0.0
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		vy = body.Body.Velocity().Y
	}
	frozen := false

	ctx := &component.PlayerStateContext{
		Input:   input,
		Player:  player,
		Status:  status,
		Session: sess,
		GetVelocity: func() (float64, float64) {
			return status.MoveVX, vy
		},
		SetVelocity: func(x, y float64) {
			status.MoveVX = x
			vy = y
		},
		GetPosition: func() (float64, float64) {
			t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok {
				return 0, 0
			}
			return t.X, t.Y
		},
		IsGrounded: func() bool {
			return contact != nil && contact.Grounded
		},
		GroundVelocity: func() (float64, float64) {
			if contact == nil || !contact.Grounded {
				return 0, 0
			}
			return contact.GroundVX, contact.GroundVY
		},
		ChangeState: func(state component.PlayerState) {
			sm.Pending = state
		},
		ChangeAnimation: func(name string) {
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				anim.Play(name)
			}
		},
		StopAnimation: func() {
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				anim.Stop()
			}
		},
		FacingLeft: func(left bool) {
			if left {
				status.Facing = -1
			} else {
				status.Facing = 1
			}
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				sprite.FacingLeft = left
			}
		},
		Freeze: func() {
			status.MoveVX = 0
			vy = 0
			frozen = true
			// Without a body the physics system drops the player from the
			// space and tweens own the transform.
			ecs.Remove(w, e, component.PhysicsBodyComponent.Kind())
		},
		StartTween: func(t component.Tween) {
			tween := t
			_ = ecs.Add(w, e, component.TweenComponent.Kind(), &tween)
		},
		Emit: w.Events().Push,
		Celebrate: func() {
			SpawnCelebration(w, player.CelebrationFrames, player.CelebrationStopFrames)
		},
		RandomInt: p.randomInt,
	}

	if interrupt, ok := ecs.Get(w, e, component.PlayerStateInterruptComponent.Kind()); ok {
		if next, ok := interruptStates[interrupt.State]; ok {
			transitionPlayer(ctx, sm, next)
		}
		ecs.Remove(w, e, component.PlayerStateInterruptComponent.Kind())
	}
	if sm.State == nil {
		transitionPlayer(ctx, sm, playerStateIdle)
	}

	if controllable(sm.State) {
		tickDash(ctx)
		if status.FootstepCooldown > 0 {
			status.FootstepCooldown--
		}
		if input.DashPressed && status.CanStartDash() {
			startDash(ctx)
		}
	}

	sm.State.HandleInput(ctx)
	applyPendingState(ctx, sm)
	sm.State.Update(ctx)
	applyPendingState(ctx, sm)

	if controllable(sm.State) {
		detectLanding(w, ctx, player, status)
	}

	if frozen || !controllable(sm.State) {
		return
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		// A dash moves at exactly DashSpeed, so it ignores platform carry.
		carry := 0.0
		if contact != nil && contact.Grounded && !status.Dashing {
			carry = contact.GroundVX
		}
		body.Body.SetVelocity(status.MoveVX+carry, vy)
	}
}

func transitionPlayer(ctx *component.PlayerStateContext, sm *component.PlayerStateMachine, next component.PlayerState) {
	if next == nil || sm.State == next {
		return
	}
	if sm.State != nil {
		sm.State.Exit(ctx)
	}
	sm.State = next
	sm.Pending = nil
	next.Enter(ctx)
}

func applyPendingState(ctx *component.PlayerStateContext, sm *component.PlayerStateMachine) {
	// Enter may queue a follow-up state, so drain until stable.
	for i := 0; i < 4 && sm.Pending != nil; i++ {
		next := sm.Pending
		sm.Pending = nil
		transitionPlayer(ctx, sm, next)
	}
}

// tickDash advances the dash window and then the cooldown. CanDash stays false
// from the dash frame until DashFrames+DashCooldownFrames frames later.
func tickDash(ctx *component.PlayerStateContext) {
	status := ctx.Status
	switch {
	case status.Dashing:
		status.DashRemaining--
		if status.DashRemaining > 0 {
			return
		}
		status.Dashing = false
		status.DashRemaining = 0
		status.MoveVX = 0
		status.DashCooldown = ctx.Player.DashCooldownFrames
		if status.DashCooldown <= 0 {
			status.CanDash = true
		}
	case !status.CanDash:
		if status.DashCooldown > 0 {
			status.DashCooldown--
		}
		if status.DashCooldown <= 0 {
			status.CanDash = true
		}
	}
}

// startDash launches the player opposite to the facing direction.
func startDash(ctx *component.PlayerStateContext) {
	status := ctx.Status
	facing := status.Facing
	if facing == 0 {
		facing = 1
	}
	status.Dashing = true
	status.CanDash = false
	status.DashRemaining = ctx.Player.DashFrames
	status.MoveVX = -facing * ctx.Player.DashSpeed

	emit(ctx, component.SoundRequest{Key: component.SoundDash, Volume: 0.5})
	if ctx.GetPosition != nil {
		x, y := ctx.GetPosition()
		emit(ctx, component.EffectRequest{Kind: component.EffectDash, X: x, Y: y})
	}
}

// detectLanding fires the landing feedback once per airborne to grounded edge.
func detectLanding(w *ecs.World, ctx *component.PlayerStateContext, player *component.Player, status *component.PlayerStatus) {
	grounded := ctx.IsGrounded()
	if grounded && status.WasAirborne {
		emitSound(w, component.SoundLand, 0.5)
		x, y := ctx.GetPosition()
		emitEffect(w, component.EffectLand, x, y)
		if player.LandShakeFrames > 0 {
			w.Events().Push(component.CameraShakeRequest{Frames: player.LandShakeFrames, Intensity: player.LandShakeIntensity})
		}
	}
	status.WasAirborne = !grounded
}
