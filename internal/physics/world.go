// Package physics is a small 2D collision substrate: an entity table of
// axis-aligned bodies addressed by generational handles, a spatial hash for
// static bodies, and a per-step queue of Started/Stopped overlap events.
//
// It renders nothing and integrates no motion; callers move sensor bodies
// themselves and call Step once per tick to refresh overlap state.
package physics

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/cyber-cycle/internal/core"
)

// DefaultCellSize is the spatial hash bucket edge in world units.
const DefaultCellSize = 64.0

// Handle is an opaque generational reference to a body.
// The zero Handle never refers to a live body.
type Handle struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.Gen == 0
}

// String formats the handle as index:generation.
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.Index, h.Gen)
}

func (h Handle) key() uint64 {
	return uint64(h.Index)<<32 | uint64(h.Gen)
}

// Kind distinguishes immovable walls from moving detectors.
type Kind uint8

const (
	// KindStatic bodies never move on their own and never collide with each other.
	KindStatic Kind = iota
	// KindSensor bodies report overlaps with every other body.
	KindSensor
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	if k == KindSensor {
		return "sensor"
	}
	return "static"
}

// Body is an axis-aligned box.
type Body struct {
	Kind   Kind
	Center core.Vec2
	Half   core.Vec2 // Half extents of the collision box
}

// Bounds returns the collision rectangle of the body.
func (b Body) Bounds() core.Rect {
	return core.RectAround(b.Center, b.Half)
}

type slot struct {
	body  Body
	gen   uint32
	alive bool
	seen  uint64 // query stamp used to dedupe grid hits
}

type pair struct {
	a, b Handle
}

// World owns every body and the overlap state between them.
// It is not safe for concurrent use; the game loop is its only caller.
type World struct {
	slots   []slot
	free    []uint32
	sensors []uint32 // slot indices of live sensors, in spawn order
	grid    *grid
	active  map[[2]uint64]pair
	queue   EventQueue
	stamp   uint64
	live    int
}

// NewWorld creates an empty world whose spatial hash uses the given cell
// size. A non-positive size selects DefaultCellSize.
func NewWorld(cellSize float64) *World {
	return &World{
		grid:   newGrid(cellSize),
		active: make(map[[2]uint64]pair),
	}
}

// Spawn inserts a body and returns its handle.
func (w *World) Spawn(b Body) Handle {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[idx]
	s.gen++
	s.body = b
	s.alive = true
	w.live++

	if b.Kind == KindSensor {
		w.sensors = append(w.sensors, idx)
	} else {
		w.grid.insert(idx, b.Bounds())
	}
	return Handle{Index: idx, Gen: s.gen}
}

// Despawn removes a body. Stale or zero handles are ignored.
// Overlaps involving the body are dropped without a Stopped event.
func (w *World) Despawn(h Handle) {
	if !w.Alive(h) {
		return
	}
	s := &w.slots[h.Index]
	if s.body.Kind == KindSensor {
		for i, idx := range w.sensors {
			if idx == h.Index {
				w.sensors = append(w.sensors[:i], w.sensors[i+1:]...)
				break
			}
		}
	} else {
		w.grid.remove(h.Index, s.body.Bounds())
	}
	for k, p := range w.active {
		if p.a == h || p.b == h {
			delete(w.active, k)
		}
	}
	s.alive = false
	s.body = Body{}
	w.free = append(w.free, h.Index)
	w.live--
}

// Alive reports whether h refers to a live body.
func (w *World) Alive(h Handle) bool {
	if h.IsZero() || int(h.Index) >= len(w.slots) {
		return false
	}
	s := w.slots[h.Index]
	return s.alive && s.gen == h.Gen
}

// Body returns the body for h and whether it is alive.
func (w *World) Body(h Handle) (Body, bool) {
	if !w.Alive(h) {
		return Body{}, false
	}
	return w.slots[h.Index].body, true
}

// Move repositions a body and updates its half extents.
func (w *World) Move(h Handle, center, half core.Vec2) {
	if !w.Alive(h) {
		return
	}
	s := &w.slots[h.Index]
	if s.body.Kind == KindStatic {
		w.grid.remove(h.Index, s.body.Bounds())
		s.body.Center, s.body.Half = center, half
		w.grid.insert(h.Index, s.body.Bounds())
		return
	}
	s.body.Center, s.body.Half = center, half
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return w.live
}

// Step recomputes overlaps between sensors and all other bodies and queues
// Started events for new overlaps and Stopped events for ended ones.
func (w *World) Step() {
	current := make(map[[2]uint64]pair, len(w.active))

	for si, sIdx := range w.sensors {
		s := &w.slots[sIdx]
		sh := Handle{Index: sIdx, Gen: s.gen}
		bounds := s.body.Bounds()

		w.stamp++
		stamp := w.stamp
		w.grid.query(bounds, func(idx uint32) {
			o := &w.slots[idx]
			if o.seen == stamp || !o.alive {
				return
			}
			o.seen = stamp
			if bounds.Intersects(o.body.Bounds()) {
				w.touch(current, sh, Handle{Index: idx, Gen: o.gen})
			}
		})

		for _, oIdx := range w.sensors[si+1:] {
			o := &w.slots[oIdx]
			if bounds.Intersects(o.body.Bounds()) {
				w.touch(current, sh, Handle{Index: oIdx, Gen: o.gen})
			}
		}
	}

	var ended [][2]uint64
	for k := range w.active {
		if _, ok := current[k]; !ok {
			ended = append(ended, k)
		}
	}
	sort.Slice(ended, func(i, j int) bool {
		if ended[i][0] != ended[j][0] {
			return ended[i][0] < ended[j][0]
		}
		return ended[i][1] < ended[j][1]
	})
	for _, k := range ended {
		p := w.active[k]
		w.queue.Push(CollisionEvent{A: p.a, B: p.b, Phase: Stopped})
	}

	w.active = current
}

// touch records an overlap, queueing Started if it is new this step.
func (w *World) touch(current map[[2]uint64]pair, a, b Handle) {
	k := pairKey(a, b)
	current[k] = pair{a: a, b: b}
	if _, ok := w.active[k]; !ok {
		w.queue.Push(CollisionEvent{A: a, B: b, Phase: Started})
	}
}

// Occupied reports whether any live body other than those in ignore
// overlaps r. It does not touch overlap state or the event queue.
func (w *World) Occupied(r core.Rect, ignore ...Handle) bool {
	skip := func(h Handle) bool {
		for _, i := range ignore {
			if i == h {
				return true
			}
		}
		return false
	}

	hit := false
	w.grid.query(r, func(idx uint32) {
		if hit {
			return
		}
		o := w.slots[idx]
		if o.alive && !skip(Handle{Index: idx, Gen: o.gen}) && r.Intersects(o.body.Bounds()) {
			hit = true
		}
	})
	if hit {
		return true
	}
	for _, idx := range w.sensors {
		o := w.slots[idx]
		if !skip(Handle{Index: idx, Gen: o.gen}) && r.Intersects(o.body.Bounds()) {
			return true
		}
	}
	return false
}

// Drain returns queued events in arrival order and clears the queue.
func (w *World) Drain() []CollisionEvent {
	return w.queue.Drain()
}

// Overlapping reports whether a and b currently overlap. Valid after Step.
func (w *World) Overlapping(a, b Handle) bool {
	_, ok := w.active[pairKey(a, b)]
	return ok
}

func pairKey(a, b Handle) [2]uint64 {
	ka, kb := a.key(), b.key()
	if ka > kb {
		ka, kb = kb, ka
	}
	return [2]uint64{ka, kb}
}
