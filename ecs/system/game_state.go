package system

import (
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// GameStateSystem keeps the restart control live once the attempt has ended.
// The game polls GameSession.RestartRequested after each frame and rebuilds
// the world.
type GameStateSystem struct{}

func NewGameStateSystem() *GameStateSystem {
	return &GameStateSystem{}
}

func (s *GameStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess := session(w)
	if sess == nil || !sess.Terminal() || sess.RestartRequested {
		return
	}
	_, input, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return
	}
	if input.EnterPressed {
		sess.RestartRequested = true
	}
}
