package entity

import (
	"fmt"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

func NewSession(w *ecs.World, levelName string) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameSessionComponent.Kind(), &component.GameSession{
		Phase:     component.PhasePlaying,
		LevelName: levelName,
	}); err != nil {
		return 0, fmt.Errorf("session: add game session: %w", err)
	}
	return e, nil
}
