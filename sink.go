package main

import (
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// gameSink plays sounds and shows end panels.
type gameSink struct {
	game *Game
}

func (s *gameSink) PlaySound(key string, volume float64) {
	s.game.sounds.Play(key, volume)
}

func (s *gameSink) ShowPanel(kind component.PanelKind, message string) {
	s.game.overlay.ShowEnd(kind, message, s.game.endHint(kind))
}

// menuToggleSystem handles the settings and debug keys. It runs while the
// scheduler is paused so ESC can close the panel it opened.
type menuToggleSystem struct {
	game *Game
}

func (m *menuToggleSystem) Update(w *ecs.World) {
	_, in, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return
	}
	if in.SettingsPressed {
		m.game.setPaused(!m.game.paused)
	}
	if in.DebugPressed {
		m.game.setDebug(!m.game.debug)
	}
}
