package system

import (
	"testing"

	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

func addPlatform(t *testing.T, w *ecs.World, p component.MovingPlatform) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MovingPlatformComponent.Kind(), &p); err != nil {
		t.Fatalf("add platform: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.StartX, Y: p.StartY}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	return e
}

func TestPlatformDelayThenReverse(t *testing.T) {
	tests := []struct {
		name string
		axis component.PlatformAxis
	}{
		{"horizontal", component.AxisHorizontal},
		{"vertical", component.AxisVertical},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := addPlatform(t, w, component.MovingPlatform{
				Axis:        tc.axis,
				Distance:    2.5,
				Speed:       60,
				Direction:   1,
				DelayFrames: 2,
			})
			sys := NewPlatformSystem()
			tr := mustGet(t, w, e, component.TransformComponent.Kind())
			p := mustGet(t, w, e, component.MovingPlatformComponent.Kind())
			pos := func() float64 {
				if tc.axis == component.AxisVertical {
					return tr.Y
				}
				return tr.X
			}

			sys.Update(w)
			sys.Update(w)
			if pos() != 0 {
				t.Fatalf("moved during the start delay: %v", pos())
			}
			for i := 0; i < 3; i++ {
				sys.Update(w)
			}
			if !approx(pos(), 3) || p.Direction != 1 {
				t.Fatalf("expected x=3 heading out, got %v dir %v", pos(), p.Direction)
			}
			sys.Update(w)
			if p.Direction != -1 || !approx(pos(), 2) {
				t.Fatalf("expected reversal back to 2, got %v dir %v", pos(), p.Direction)
			}
			if tc.axis == component.AxisHorizontal && tr.Y != 0 {
				t.Fatalf("horizontal platform drifted to y=%v", tr.Y)
			}
		})
	}
}

func TestPlatformOvershootDoesNotFlipTwice(t *testing.T) {
	w := ecs.NewWorld()
	e := addPlatform(t, w, component.MovingPlatform{
		Axis:      component.AxisHorizontal,
		Distance:  10,
		Speed:     60,
		Direction: -1,
	})
	tr := mustGet(t, w, e, component.TransformComponent.Kind())
	tr.X = 30

	sys := NewPlatformSystem()
	sys.Update(w)
	p := mustGet(t, w, e, component.MovingPlatformComponent.Kind())
	if p.Direction != -1 {
		t.Fatal("platform already heading home must not reverse")
	}
	if !approx(tr.X, 29) {
		t.Fatalf("x = %v, want 29", tr.X)
	}
}
