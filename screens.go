package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

var shadowColor = color.RGBA{A: 0xc0}

const (
	titleLines  = "Alien can't swim,\na journey on Earth"
	subtitle    = "an alien's runaway adventure"
	howToPlay   = "HOW TO PLAY:"
	rules       = "Use ARROW KEYS or WASD to move, UP or SPACE to jump\n" +
		"Press SHIFT to dash\n" +
		"Jump on enemies to defeat them\n" +
		"Stay out of the water\n" +
		"Collect coins for points\n" +
		"Reach the flag to complete the level\n" +
		"ESC opens the settings"
	creditLines = "Game Design: Ella Fontenot\n" +
		"Sound effects are synthesized at startup\n" +
		"Built with Ebitengine, Chipmunk2D and ebitenui"
)

// screens draws the title, the credits and the in-game HUD.
type screens struct {
	large  text.Face
	medium text.Face
	small  text.Face
}

func newScreens() *screens {
	return &screens{
		large:  newFace(64),
		medium: newFace(32),
		small:  newFace(24),
	}
}

func (s *screens) drawTitle(screen *ebiten.Image) {
	cx := float64(common.BaseWidth) / 2
	drawText(screen, titleLines, s.large, cx, 120, text.AlignCenter)
	drawText(screen, subtitle, s.medium, cx, 290, text.AlignCenter)
	drawText(screen, howToPlay, s.medium, cx, 380, text.AlignCenter)
	drawText(screen, rules, s.small, cx, 430, text.AlignCenter)
	drawText(screen, "Press SPACE to Start", s.medium, cx, common.BaseHeight-90, text.AlignCenter)
}

func (s *screens) drawCredits(screen *ebiten.Image) {
	cx := float64(common.BaseWidth) / 2
	drawText(screen, "CREDITS", s.large, cx, 80, text.AlignCenter)
	drawText(screen, creditLines, s.small, cx, 260, text.AlignCenter)
	drawText(screen, "Press SPACE to return", s.medium, cx, common.BaseHeight-100, text.AlignCenter)
}

func (s *screens) drawHUD(screen *ebiten.Image, w *ecs.World, levelName string) {
	score := 0
	if _, sess, ok := ecs.First(w, component.GameSessionComponent.Kind()); ok {
		score = sess.Score
	}
	drawText(screen, fmt.Sprintf("Score: %d", score), s.medium, 24, 16, text.AlignStart)
	drawText(screen, levelName, s.small, common.BaseWidth-24, 20, text.AlignEnd)
}

// drawText draws white text with a drop shadow. y is the top of the first
// line.
func drawText(screen *ebiten.Image, str string, face text.Face, x, y float64, align text.Align) {
	m := face.Metrics()
	lineSpacing := (m.HAscent + m.HDescent + m.HLineGap) * 1.2

	for _, pass := range []struct {
		offset float64
		clr    color.Color
	}{
		{2, shadowColor},
		{0, color.White},
	} {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+pass.offset, y+pass.offset)
		op.ColorScale.ScaleWithColor(pass.clr)
		op.LineSpacing = lineSpacing
		op.PrimaryAlign = align
		text.Draw(screen, str, face, op)
	}
}
