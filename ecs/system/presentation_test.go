package system

import (
	"testing"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

func TestPresentationRoutesEvents(t *testing.T) {
	w := ecs.NewWorld()
	cam := ecs.CreateEntity(w)
	_ = ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Width: 400, Height: 300})

	sink := &recordingSink{}
	var spawned []component.EffectRequest
	sys := NewPresentationSystem(sink, func(w *ecs.World, kind string, x, y float64) {
		spawned = append(spawned, component.EffectRequest{Kind: kind, X: x, Y: y})
	})

	w.Events().Push(component.SoundRequest{Key: component.SoundCoin, Volume: 0.5})
	w.Events().Push(component.EffectRequest{Kind: component.EffectCoin, X: 1, Y: 2})
	w.Events().Push(component.CameraShakeRequest{Frames: 6, Intensity: 0.01})
	w.Events().Push(component.PanelRequest{Kind: component.PanelDeath, Message: "You Died!"})
	w.Events().Push("ignored")
	sys.Update(w)

	if len(sink.sounds) != 1 || sink.sounds[0].Volume != 0.5 {
		t.Fatalf("sounds = %+v", sink.sounds)
	}
	if len(spawned) != 1 || spawned[0].Kind != component.EffectCoin || spawned[0].X != 1 || spawned[0].Y != 2 {
		t.Fatalf("spawned effects = %+v", spawned)
	}
	if len(sink.panels) != 1 || sink.panels[0].Message != "You Died!" {
		t.Fatalf("panels = %+v", sink.panels)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue not drained: %d left", w.Events().Len())
	}

	req := mustGet(t, w, cam, component.CameraShakeRequestComponent.Kind())
	if req.Frames != 6 {
		t.Fatalf("camera shake request frames = %d", req.Frames)
	}
}

func TestPresentationWithoutSink(t *testing.T) {
	w := ecs.NewWorld()
	w.Events().Push(component.SoundRequest{Key: component.SoundJump})
	w.Events().Push(component.PanelRequest{Kind: component.PanelWin})
	NewPresentationSystem(nil, nil).Update(w)
	if w.Events().Len() != 0 {
		t.Fatal("events should be dropped without a sink")
	}
}

func TestCameraFollowsClampsAndShakes(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 1000, 100, false)
	bounds := ecs.CreateEntity(w)
	_ = ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 1200, Height: 900})
	cam := ecs.CreateEntity(w)
	_ = ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Width: 400, Height: 300})
	_ = ecs.Add(w, cam, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{Frames: 2, Intensity: 0.01})

	sys := &CameraSystem{randomFloat: func() float64 { return 1 }}
	sys.Update(w)

	c := mustGet(t, w, cam, component.CameraComponent.Kind())
	if c.X != 800 || c.Y != 0 {
		t.Fatalf("camera at (%v,%v), want clamped (800,0)", c.X, c.Y)
	}
	if ecs.Has(w, cam, component.CameraShakeRequestComponent.Kind()) {
		t.Fatal("shake request should be consumed")
	}
	if !approx(c.ShakeX, 4) || !approx(c.ShakeY, 3) {
		t.Fatalf("shake offset (%v,%v), want (4,3)", c.ShakeX, c.ShakeY)
	}

	mustGet(t, w, player, component.TransformComponent.Kind()).X = 500
	sys.Update(w)
	sys.Update(w)
	if c.X != 300 {
		t.Fatalf("camera x = %v, want 300", c.X)
	}
	if c.ShakeX != 0 || c.ShakeY != 0 {
		t.Fatalf("shake should settle, got (%v,%v)", c.ShakeX, c.ShakeY)
	}
}
