package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// InputSource produces one input snapshot per frame.
type InputSource interface {
	Poll() component.Input
}

// KeyboardInput reads the keyboard and the first standard gamepad.
type KeyboardInput struct{}

func (KeyboardInput) Poll() component.Input {
	const stickDeadzone = 0.2

	in := component.Input{
		Left:            ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:           ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:              ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeySpace),
		UpPressed:       inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Dash:            ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		DashPressed:     inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight),
		EnterPressed:    inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		SettingsPressed: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		DebugPressed:    inpututil.IsKeyJustPressed(ebiten.KeyF1),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			in.Left = true
		} else if leftX > stickDeadzone {
			in.Right = true
		}
		in.Up = in.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.UpPressed = in.UpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Dash = in.Dash || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.DashPressed = in.DashPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.EnterPressed = in.EnterPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		in.SettingsPressed = in.SettingsPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
	}

	return in
}

// InputSystem copies the current snapshot into every Input component.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = KeyboardInput{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	snapshot := i.source.Poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = snapshot
	})
}
