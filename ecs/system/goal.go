package system

import (
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// GoalSystem wins the attempt when the player enters a goal region while the
// session is still playing.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem {
	return &GoalSystem{}
}

func (s *GoalSystem) Update(w *ecs.World) {
	if w == nil || !playing(w) {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	playerBox, ok := entityBox(w, player)
	if !ok {
		return
	}

	for _, e := range w.Query(component.GoalComponent.Kind(), component.TransformComponent.Kind()) {
		goal, _ := ecs.Get(w, e, component.GoalComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if goal == nil || t == nil {
			continue
		}
		if centeredBox(t.X, t.Y, goal.Width, goal.Height).overlaps(playerBox) {
			interruptPlayer(w, player, component.PhaseWon, component.CauseNone, component.InterruptWin)
			return
		}
	}
}
