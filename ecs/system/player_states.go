package system

import (
	"fmt"
	"math"

	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs/component"
)

// Player state singletons (avoid allocations on transitions).
var (
	playerStateIdle  component.PlayerState = &playerIdleState{}
	playerStateWalk  component.PlayerState = &playerWalkState{}
	playerStateJump  component.PlayerState = &playerJumpState{}
	playerStateFall  component.PlayerState = &playerFallState{}
	playerStateDrown component.PlayerState = &playerDrownState{}
	playerStateDead  component.PlayerState = &playerDeadState{}
	playerStateWin   component.PlayerState = &playerWinState{}
)

// interruptStates maps PlayerStateInterrupt names to states.
var interruptStates = map[string]component.PlayerState{
	component.InterruptDrown: playerStateDrown,
	component.InterruptDead:  playerStateDead,
	component.InterruptWin:   playerStateWin,
}

const (
	drownSink     = 30.0
	drownAlpha    = 0.5
	drownMaxAngle = 15

	// landingSlack is how fast the player may still rise relative to the
	// ground and count as landed. It absorbs one frame of gravity.
	landingSlack = 60.0
)

type playerIdleState struct{}

type playerWalkState struct{}

type playerJumpState struct{}

type playerFallState struct{}

type playerDrownState struct{}

type playerDeadState struct{}

type playerWinState struct{}

// controllable reports whether input still drives the player in state.
func controllable(state component.PlayerState) bool {
	switch state {
	case playerStateDrown, playerStateDead, playerStateWin:
		return false
	}
	return true
}

func (playerIdleState) Name() string { return "idle" }
func (playerIdleState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("idle")
}
func (playerIdleState) Exit(ctx *component.PlayerStateContext) {}
func (playerIdleState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.ChangeState == nil {
		return
	}
	if tryJump(ctx) {
		return
	}
	if ctx.Input.MoveX() != 0 {
		ctx.ChangeState(playerStateWalk)
	}
}
func (playerIdleState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.SetVelocity == nil || ctx.GetVelocity == nil {
		return
	}
	steer(ctx)
	if ctx.IsGrounded != nil && !ctx.IsGrounded() && ctx.ChangeState != nil {
		ctx.ChangeState(playerStateFall)
	}
}

func (playerWalkState) Name() string { return "walk" }
func (playerWalkState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("walk")
}
func (playerWalkState) Exit(ctx *component.PlayerStateContext) {}
func (playerWalkState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.ChangeState == nil {
		return
	}
	if tryJump(ctx) {
		return
	}
	if ctx.Input.MoveX() == 0 {
		ctx.ChangeState(playerStateIdle)
	}
}
func (playerWalkState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.SetVelocity == nil || ctx.GetVelocity == nil {
		return
	}
	steer(ctx)
	if ctx.IsGrounded != nil && !ctx.IsGrounded() {
		if ctx.ChangeState != nil {
			ctx.ChangeState(playerStateFall)
		}
		return
	}
	footstep(ctx)
}

func (playerJumpState) Name() string { return "jump" }
func (playerJumpState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("jump")

	if ctx == nil || ctx.SetVelocity == nil || ctx.GetVelocity == nil {
		return
	}
	x, _ := ctx.GetVelocity()
	ctx.SetVelocity(x, -ctx.Player.JumpSpeed)
	emit(ctx, component.SoundRequest{Key: component.SoundJump, Volume: 0.6})
	if ctx.GetPosition != nil {
		px, py := ctx.GetPosition()
		emit(ctx, component.EffectRequest{Kind: component.EffectJump, X: px, Y: py})
	}
}
func (playerJumpState) Exit(ctx *component.PlayerStateContext)        {}
func (playerJumpState) HandleInput(ctx *component.PlayerStateContext) {}
func (playerJumpState) Update(ctx *component.PlayerStateContext) {
	airborne(ctx)
}

func (playerFallState) Name() string { return "fall" }
func (playerFallState) Enter(ctx *component.PlayerStateContext) {
	if ctx == nil {
		return
	}
	ctx.ChangeAnimation("jump")
}
func (playerFallState) Exit(ctx *component.PlayerStateContext)        {}
func (playerFallState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.ChangeState == nil {
		return
	}
	tryJump(ctx)
}
func (playerFallState) Update(ctx *component.PlayerStateContext) {
	airborne(ctx)
}

func (playerDrownState) Name() string { return "drown" }
func (playerDrownState) Enter(ctx *component.PlayerStateContext) {
	if ctx == nil {
		return
	}
	freeze(ctx)
	stopAnimation(ctx)
	ctx.Status.Drowning = true
	ctx.Status.DrownTimer = 0

	emit(ctx, component.SoundRequest{Key: component.SoundDrown, Volume: 1})
	if ctx.GetPosition != nil {
		x, y := ctx.GetPosition()
		emit(ctx, component.EffectRequest{Kind: component.EffectDrown, X: x, Y: y})
	}
	emit(ctx, component.PanelRequest{Kind: component.PanelDeath, Message: "You Drowned!"})

	angle := 0
	if ctx.RandomInt != nil {
		angle = ctx.RandomInt(2*drownMaxAngle+1) - drownMaxAngle
	}
	if ctx.StartTween != nil {
		ctx.StartTween(component.Tween{
			DY:      drownSink,
			DRot:    float64(angle) * math.Pi / 180,
			ToAlpha: drownAlpha,
			Frames:  ctx.Player.DrownFrames,
			Ease:    component.EasePower1,
		})
	}
}
func (playerDrownState) Exit(ctx *component.PlayerStateContext)        {}
func (playerDrownState) HandleInput(ctx *component.PlayerStateContext) {}
func (playerDrownState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Status.Dead {
		return
	}
	ctx.Status.DrownTimer++
	if ctx.Status.DrownTimer >= ctx.Player.DrownFrames {
		ctx.Status.Dead = true
	}
}

func (playerDeadState) Name() string { return "dead" }
func (playerDeadState) Enter(ctx *component.PlayerStateContext) {
	if ctx == nil {
		return
	}
	freeze(ctx)
	stopAnimation(ctx)
	ctx.Status.Dead = true

	if ctx.StartTween != nil {
		ctx.StartTween(component.Tween{
			ToAlpha: 0,
			Frames:  ctx.Player.DeathFadeFrames,
		})
	}
	emit(ctx, component.PanelRequest{Kind: component.PanelDeath, Message: "You Died!"})
}
func (playerDeadState) Exit(ctx *component.PlayerStateContext)        {}
func (playerDeadState) HandleInput(ctx *component.PlayerStateContext) {}
func (playerDeadState) Update(ctx *component.PlayerStateContext)      {}

func (playerWinState) Name() string { return "win" }
func (playerWinState) Enter(ctx *component.PlayerStateContext) {
	if ctx == nil {
		return
	}
	freeze(ctx)
	ctx.ChangeAnimation("idle")

	score := 0
	if ctx.Session != nil {
		score = ctx.Session.Score
	}
	emit(ctx, component.PanelRequest{Kind: component.PanelWin, Message: fmt.Sprintf("Level Complete!\nScore: %d", score)})
	if ctx.Celebrate != nil {
		ctx.Celebrate()
	}
}
func (playerWinState) Exit(ctx *component.PlayerStateContext)        {}
func (playerWinState) HandleInput(ctx *component.PlayerStateContext) {}
func (playerWinState) Update(ctx *component.PlayerStateContext)      {}

// tryJump starts a jump on the frame the jump key goes down while grounded.
func tryJump(ctx *component.PlayerStateContext) bool {
	if !ctx.Input.UpPressed || ctx.IsGrounded == nil || !ctx.IsGrounded() {
		return false
	}
	ctx.ChangeState(playerStateJump)
	return true
}

func airborne(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.SetVelocity == nil || ctx.GetVelocity == nil {
		return
	}
	steer(ctx)
	if ctx.IsGrounded == nil || !ctx.IsGrounded() || ctx.ChangeState == nil {
		return
	}
	// Compare against the ground so a rising platform still counts as a
	// landing, while the frame a jump leaves the ground does not.
	_, vy := ctx.GetVelocity()
	groundVY := 0.0
	if ctx.GroundVelocity != nil {
		_, groundVY = ctx.GroundVelocity()
	}
	if vy-groundVY < -landingSlack {
		return
	}
	if ctx.Input != nil && ctx.Input.MoveX() != 0 {
		ctx.ChangeState(playerStateWalk)
	} else {
		ctx.ChangeState(playerStateIdle)
	}
}

// steer accelerates toward the input direction up to MaxSpeed, and applies
// drag when there is no input. A dash owns the horizontal velocity.
func steer(ctx *component.PlayerStateContext) {
	if ctx.Status != nil && ctx.Status.Dashing {
		return
	}
	vx, vy := ctx.GetVelocity()
	dir := 0.0
	if ctx.Input != nil {
		dir = ctx.Input.MoveX()
	}

	if dir != 0 {
		vx += dir * ctx.Player.Acceleration * common.DeltaTime
		if ctx.Player.MaxSpeed > 0 {
			vx = common.Clamp(vx, -ctx.Player.MaxSpeed, ctx.Player.MaxSpeed)
		}
		if ctx.FacingLeft != nil {
			ctx.FacingLeft(dir < 0)
		}
	} else {
		drag := ctx.Player.Drag * common.DeltaTime
		switch {
		case vx > drag:
			vx -= drag
		case vx < -drag:
			vx += drag
		default:
			vx = 0
		}
	}
	ctx.SetVelocity(vx, vy)
}

// footstep plays one of the grass steps at most once per FootstepFrames.
func footstep(ctx *component.PlayerStateContext) {
	if ctx.Status == nil || ctx.Status.FootstepCooldown > 0 {
		return
	}
	vx, _ := ctx.GetVelocity()
	if vx == 0 {
		return
	}
	variation := 0
	if ctx.RandomInt != nil {
		variation = ctx.RandomInt(component.FootstepVariations)
	}
	emit(ctx, component.SoundRequest{Key: fmt.Sprintf("%s%d", component.SoundFootstepStem, variation), Volume: 0.3})
	if ctx.GetPosition != nil {
		x, y := ctx.GetPosition()
		emit(ctx, component.EffectRequest{Kind: component.EffectFootstep, X: x, Y: y})
	}
	ctx.Status.FootstepCooldown = ctx.Player.FootstepFrames
}

func freeze(ctx *component.PlayerStateContext) {
	ctx.Status.Dashing = false
	ctx.Status.DashRemaining = 0
	if ctx.Freeze != nil {
		ctx.Freeze()
	}
}

func stopAnimation(ctx *component.PlayerStateContext) {
	if ctx.StopAnimation != nil {
		ctx.StopAnimation()
	}
}

func emit(ctx *component.PlayerStateContext, evt any) {
	if ctx.Emit != nil {
		ctx.Emit(evt)
	}
}
