package ecs

// EventQueue is a FIFO of typed event values. Producers push during a frame and
// a single consumer drains it.
type EventQueue struct {
	items []any
}

func (q *EventQueue) Push(evt any) {
	if q == nil || evt == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events in push order and clears the queue.
func (q *EventQueue) Drain() []any {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
