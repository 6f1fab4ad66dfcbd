package ecs

import (
	"sort"

	"github.com/milk9111/alienswim/ecs/component"
)

// Kind is satisfied by every component.ComponentKind regardless of its type
// parameter, which lets queries mix component types.
type Kind interface {
	ID() component.ComponentID
	Valid() bool
}

// World owns entities, their components and the per-level event queue.
// A world is discarded wholesale on level restart.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
	tick     uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and retires its id. It reports
// whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, st := range w.stores {
		st.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether e refers to a live entity of the current generation.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in slot order.
func (w *World) Entities() []Entity {
	return w.entities.all()
}

// Events returns the world's event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

// Tick is the number of completed simulation frames.
func (w *World) Tick() uint64 {
	return w.tick
}

// Advance increments the frame counter.
func (w *World) Advance() {
	w.tick++
}

// Query returns the live entities that have every listed component, sorted by
// slot id so iteration order is stable across runs.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		st, ok := w.stores[k.ID()]
		if !ok || st.len() == 0 {
			return nil
		}
		sets = append(sets, st)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].len() < sets[j].len() })

	out := make([]Entity, 0, sets[0].len())
	for _, id := range sets[0].ids() {
		match := true
		for _, st := range sets[1:] {
			if !st.has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-id live entity carrying kind.
func (w *World) First(kind Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	st, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil
		}
		s := newSparseSet[T]()
		w.stores[kind.ID()] = s
		return s
	}
	s, _ := st.(*sparseSet[T])
	return s
}
