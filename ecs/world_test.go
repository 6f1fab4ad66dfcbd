package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/alienswim/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_destroy_middle", 3, 1, 2},
		{"none_destroyed", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
			if got := len(Entities(w)); got != c.wantAlive {
				t.Fatalf("expected %d entities, got %d", c.wantAlive, got)
			}
		})
	}
}

func TestRecycledSlotInvalidatesStaleHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v and %v", old, fresh)
	}
	if fresh == old {
		t.Fatalf("recycled entity must carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle must not be alive")
	}
	if _, ok := Get(w, fresh, h.Kind()); ok {
		t.Fatalf("components of the destroyed entity must not leak to the new one")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	h := component.NewComponent[int]()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"nil_value", func() error { return Add(w, e, h.Kind(), nil) }, component.ErrNilComponent},
		{"zero_kind", func() error { return Add(w, e, component.ComponentKind[int]{}, intPtr(1)) }, component.ErrInvalidComponentKind},
		{"dead_entity", func() error { return Add(w, Entity(0), h.Kind(), intPtr(1)) }, component.ErrEntityNotAlive},
		{"ok", func() error { return Add(w, e, h.Kind(), intPtr(1)) }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "get_returns_stored_pointer",
			setup: func() error { return Add(w, e1, hInt.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hInt.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				*v = 11
				again, _ := Get(w, e1, hInt.Kind())
				if *again != 11 {
					t.Fatalf("mutation through pointer lost, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e1, hInt.Kind()) },
		},
		{
			name: "query_intersects_and_sorts",
			setup: func() error {
				for _, e := range []Entity{e3, e1, e2} {
					if err := Add(w, e, hInt.Kind(), intPtr(1)); err != nil {
						return err
					}
				}
				if err := Add(w, e3, hStr.Kind(), stringPtr("c")); err != nil {
					return err
				}
				return Add(w, e1, hStr.Kind(), stringPtr("a"))
			},
			check: func(t *testing.T) {
				got := w.Query(hInt.Kind(), hStr.Kind())
				if len(got) != 2 || got[0] != e1 || got[1] != e3 {
					t.Fatalf("expected [e1 e3], got %v", got)
				}
				first, ok := w.First(hInt.Kind())
				if !ok || first != e1 {
					t.Fatalf("expected First to return e1, got %v", first)
				}
			},
			teardown: func() bool { return Remove(w, e3, hStr.Kind()) && Remove(w, e1, hStr.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEachToleratesDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
		if err := Add(w, ents[i], h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visited++
		if *v == 0 {
			DestroyEntity(w, ents[1])
		}
	})
	if visited != 3 {
		t.Fatalf("expected 3 visits after destroying one mid-pass, got %d", visited)
	}
}

func TestForEachIntersections(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "three_way",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				e1, e2, e3 := CreateEntity(w), CreateEntity(w), CreateEntity(w)

				for _, add := range []error{
					Add(w, e1, ka, intPtr(1)),
					Add(w, e2, ka, intPtr(2)),
					Add(w, e2, kb, intPtr(3)),
					Add(w, e2, kc, intPtr(4)),
					Add(w, e3, kb, intPtr(5)),
				} {
					if add != nil {
						t.Fatal(add)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "four_way_ignores_dead",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				kd := component.NewComponentKind[int]()
				e := CreateEntity(w)
				for _, k := range []component.ComponentKind[int]{ka, kb, kc, kd} {
					if err := Add(w, e, k, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}
				DestroyEntity(w, e)

				var res []Entity
				ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *int, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[string]()
				e := CreateEntity(w)
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *string) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type countingSystem struct{ n int }

func (c *countingSystem) Update(*World) { c.n++ }

func TestSchedulerPause(t *testing.T) {
	w := NewWorld()
	sim := &countingSystem{}
	always := &countingSystem{}

	s := NewScheduler(sim)
	s.AddAlways(always)

	s.Update(w)
	s.SetPaused(true)
	s.Update(w)
	s.Update(w)
	s.SetPaused(false)
	s.Update(w)

	if sim.n != 2 {
		t.Fatalf("expected simulation system to run twice, ran %d", sim.n)
	}
	if always.n != 4 {
		t.Fatalf("expected always system to run four times, ran %d", always.n)
	}
	if w.Tick() != 2 {
		t.Fatalf("expected tick 2, got %d", w.Tick())
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push("a")
	q.Push(nil)
	q.Push(2)

	got := q.Drain()
	if len(got) != 2 || got[0] != "a" || got[1] != 2 {
		t.Fatalf("unexpected drain result %v", got)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}
}
