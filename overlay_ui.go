package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs/component"
	"github.com/milk9111/alienswim/settings"
)

var (
	panelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	winPanelColor   = color.NRGBA{R: 0x1e, G: 0x5a, B: 0x1e, A: 210}
	deathPanelColor = color.NRGBA{R: 0x5a, G: 0x10, B: 0x10, A: 210}
)

type endPanel struct {
	container *widget.Container
	title     *widget.Text
	hint      *widget.Text
}

func (p endPanel) setVisible(on bool) {
	if on {
		p.container.GetWidget().Visibility = widget.Visibility_Show
		return
	}
	p.container.GetWidget().Visibility = widget.Visibility_Hide
}

// overlayActions are the game callbacks behind the settings buttons.
type overlayActions struct {
	StepVolume  func(steps int)
	ToggleMute  func()
	ToggleDebug func()
	Resume      func()
}

// overlay holds the end-of-attempt panel and the settings panel. Both start
// hidden; at most one is shown at a time.
type overlay struct {
	ui *ebitenui.UI

	winPanel   endPanel
	deathPanel endPanel

	settingsPanel *widget.Container
	volumeText    *widget.Text
	muteText      *widget.Text
	debugText     *widget.Text
	storageText   *widget.Text
}

func newOverlay(actions overlayActions) *overlay {
	o := &overlay{}

	title := newFace(40)
	body := newFace(22)

	btnImg := imageui.NewNineSliceColor(buttonColor)
	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	newText := func(label string, face *ebtext.Face, c color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(label, face, c),
			widget.TextOpts.WidgetOpts(center),
		)
	}
	newButton := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &body, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(260, 40)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
	}

	newEndPanel := func(bg color.NRGBA) endPanel {
		p := endPanel{
			container: newPanel(bg),
			title:     newText("", &title, textColor),
			hint:      newText("", &body, textColor),
		}
		p.container.AddChild(p.title)
		p.container.AddChild(p.hint)
		return p
	}
	o.winPanel = newEndPanel(winPanelColor)
	o.deathPanel = newEndPanel(deathPanelColor)

	o.volumeText = newText("", &body, textColor)
	o.muteText = newText("", &body, textColor)
	o.debugText = newText("", &body, textColor)
	o.storageText = newText("", &body, textColor)

	o.settingsPanel = newPanel(panelColor)
	o.settingsPanel.AddChild(newText("Settings", &title, textColor))
	o.settingsPanel.AddChild(o.volumeText)
	o.settingsPanel.AddChild(newButton("Volume -", func() { actions.StepVolume(-1) }))
	o.settingsPanel.AddChild(newButton("Volume +", func() { actions.StepVolume(1) }))
	o.settingsPanel.AddChild(o.muteText)
	o.settingsPanel.AddChild(newButton("Mute (M)", actions.ToggleMute))
	o.settingsPanel.AddChild(o.debugText)
	o.settingsPanel.AddChild(newButton("Debug overlay (F1)", actions.ToggleDebug))
	o.settingsPanel.AddChild(o.storageText)
	o.settingsPanel.AddChild(newButton("Resume (ESC)", actions.Resume))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(o.winPanel.container)
	root.AddChild(o.deathPanel.container)
	root.AddChild(o.settingsPanel)
	o.ui = &ebitenui.UI{Container: root}

	o.Hide()
	return o
}

func newPanel(bg color.NRGBA) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 30, Bottom: 30, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

// ShowEnd shows the win or death panel. hint tells the player what ENTER
// does next.
func (o *overlay) ShowEnd(kind component.PanelKind, message, hint string) {
	panel, other := o.deathPanel, o.winPanel
	if kind == component.PanelWin {
		panel, other = o.winPanel, o.deathPanel
	}
	panel.title.Label = message
	panel.hint.Label = hint
	panel.setVisible(true)
	other.setVisible(false)
	o.HideSettings()
}

func (o *overlay) ShowSettings(s settings.Settings, persistent bool) {
	o.RefreshSettings(s, persistent)
	o.settingsPanel.GetWidget().Visibility = widget.Visibility_Show
}

func (o *overlay) HideSettings() {
	o.settingsPanel.GetWidget().Visibility = widget.Visibility_Hide
}

func (o *overlay) RefreshSettings(s settings.Settings, persistent bool) {
	o.volumeText.Label = fmt.Sprintf("Master volume: %d%%", int(s.Volume*100+0.5))
	o.muteText.Label = "Sound: on"
	if s.Muted {
		o.muteText.Label = "Sound: muted"
	}
	o.debugText.Label = "Debug overlay: off"
	if s.Debug {
		o.debugText.Label = "Debug overlay: on"
	}
	o.storageText.Label = "Settings are saved"
	if !persistent {
		o.storageText.Label = "Settings last until you quit"
	}
}

func (o *overlay) Hide() {
	o.winPanel.setVisible(false)
	o.deathPanel.setVisible(false)
	o.settingsPanel.GetWidget().Visibility = widget.Visibility_Hide
}

func (o *overlay) Update() {
	o.ui.Update()
}

func (o *overlay) Draw(screen *ebiten.Image) {
	o.ui.Draw(screen)
}
