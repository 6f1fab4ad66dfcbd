package system

import (
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// Sink receives the presentation requests that live outside the world.
// Effects and camera shakes are applied to the world directly.
type Sink interface {
	PlaySound(key string, volume float64)
	ShowPanel(kind component.PanelKind, message string)
}

// EffectSpawner turns an effect request into particle entities.
type EffectSpawner func(w *ecs.World, kind string, x, y float64)

// PresentationSystem drains the world event queue once per frame. Effects
// become particle entities and shakes a request on the camera entity; sounds
// and panels go to the sink.
type PresentationSystem struct {
	sink    Sink
	effects EffectSpawner
}

func NewPresentationSystem(sink Sink, effects EffectSpawner) *PresentationSystem {
	return &PresentationSystem{sink: sink, effects: effects}
}

func (s *PresentationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Drain() {
		switch evt := evt.(type) {
		case component.SoundRequest:
			if s.sink != nil {
				s.sink.PlaySound(evt.Key, evt.Volume)
			}
		case component.EffectRequest:
			if s.effects != nil {
				s.effects(w, evt.Kind, evt.X, evt.Y)
			}
		case component.CameraShakeRequest:
			if cam, ok := w.First(component.CameraComponent.Kind()); ok {
				req := evt
				_ = ecs.Add(w, cam, component.CameraShakeRequestComponent.Kind(), &req)
			}
		case component.PanelRequest:
			if s.sink != nil {
				s.sink.ShowPanel(evt.Kind, evt.Message)
			}
		}
	}
}
