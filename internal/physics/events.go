package physics

// Phase tags whether an overlap began or ended during a step.
type Phase uint8

const (
	Started Phase = iota
	Stopped
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case Started:
		return "started"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// CollisionEvent reports a change in the overlap state of two bodies.
// A is always a sensor; B may be a sensor or a static body.
type CollisionEvent struct {
	A, B  Handle
	Phase Phase
}

// Involves reports whether h is one of the two participants.
func (e CollisionEvent) Involves(h Handle) bool {
	return e.A == h || e.B == h
}

// EventQueue is a FIFO buffer of collision events, drained once per tick.
type EventQueue struct {
	items []CollisionEvent
}

// Push appends an event.
func (q *EventQueue) Push(evt CollisionEvent) {
	q.items = append(q.items, evt)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.items)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *EventQueue) Drain() []CollisionEvent {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
