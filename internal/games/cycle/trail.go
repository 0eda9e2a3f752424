package cycle

import (
	"github.com/vovakirdan/cyber-cycle/internal/core"
	"github.com/vovakirdan/cyber-cycle/internal/physics"
)

// Spawner creates and destroys bodies in the physics world.
type Spawner interface {
	Spawn(b physics.Body) physics.Handle
	Despawn(h physics.Handle)
}

// Segment is one static wall block of a trail.
type Segment struct {
	Handle   physics.Handle
	Position core.Vec2
}

// TrailGeometry fixes where and how large each new block is.
type TrailGeometry struct {
	Delta     float64   // Per-tick displacement of the owning cycle
	Margin    float64   // Shrink applied to each side of the collision box
	Footprint Footprint // Owning cycle's footprint
}

// Offset returns the block centre relative to the cycle centre for a heading.
// The block sits one displacement plus half a body length behind the
// centre, shifted half a body width across travel.
func (g TrailGeometry) Offset(d Direction) core.Vec2 {
	back := g.Delta + g.Footprint.HalfW()
	across := g.Footprint.HalfH()
	switch d {
	case DirRight:
		return core.V(-back, across)
	case DirLeft:
		return core.V(back, across)
	case DirDown:
		return core.V(across, -back)
	default:
		return core.V(across, back)
	}
}

// Half returns the collision half extent of a block.
func (g TrailGeometry) Half() core.Vec2 {
	h := g.Delta/2 - g.Margin
	if h < 0 {
		h = 0
	}
	return core.V(h, h)
}

// Trail is a bounded ring of segments, newest at the head and oldest at
// the tail. Growing a full trail evicts the tail before inserting, so
// Len never exceeds Capacity.
type Trail struct {
	geom  TrailGeometry
	ring  []Segment
	head  int // Ring index of the newest segment
	count int

	grown   int
	evicted int
}

// NewTrail creates an empty trail retaining at most capacity segments.
func NewTrail(capacity int, geom TrailGeometry) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		geom: geom,
		ring: make([]Segment, capacity),
	}
}

// Capacity returns the maximum number of retained segments.
func (t *Trail) Capacity() int {
	return len(t.ring)
}

// Len returns the number of live segments.
func (t *Trail) Len() int {
	return t.count
}

// Grown returns the total number of segments ever spawned.
func (t *Trail) Grown() int {
	return t.grown
}

// Evicted returns the total number of segments removed by eviction.
func (t *Trail) Evicted() int {
	return t.evicted
}

// Grow lays a new block behind a cycle now centred at pos heading dir.
func (t *Trail) Grow(sp Spawner, pos core.Vec2, dir Direction) Segment {
	if t.count == len(t.ring) {
		tail := t.popBack()
		sp.Despawn(tail.Handle)
		t.evicted++
	}

	center := pos.Add(t.geom.Offset(dir))
	h := sp.Spawn(physics.Body{
		Kind:   physics.KindStatic,
		Center: center,
		Half:   t.geom.Half(),
	})
	seg := Segment{Handle: h, Position: center}
	t.pushFront(seg)
	t.grown++
	return seg
}

// At returns the i-th segment counting from the newest (0).
func (t *Trail) At(i int) Segment {
	if i < 0 || i >= t.count {
		return Segment{}
	}
	return t.ring[(t.head+i)%len(t.ring)]
}

// Head returns the newest segment.
func (t *Trail) Head() (Segment, bool) {
	if t.count == 0 {
		return Segment{}, false
	}
	return t.At(0), true
}

// Tail returns the oldest segment.
func (t *Trail) Tail() (Segment, bool) {
	if t.count == 0 {
		return Segment{}, false
	}
	return t.At(t.count - 1), true
}

// Each calls fn for every segment from newest to oldest.
func (t *Trail) Each(fn func(Segment)) {
	for i := 0; i < t.count; i++ {
		fn(t.At(i))
	}
}

// Owns reports whether h is one of this trail's live segments.
func (t *Trail) Owns(h physics.Handle) bool {
	for i := 0; i < t.count; i++ {
		if t.At(i).Handle == h {
			return true
		}
	}
	return false
}

// Clear despawns every remaining segment.
func (t *Trail) Clear(sp Spawner) {
	for t.count > 0 {
		sp.Despawn(t.popBack().Handle)
	}
}

func (t *Trail) pushFront(s Segment) {
	t.head = (t.head - 1 + len(t.ring)) % len(t.ring)
	t.ring[t.head] = s
	t.count++
}

func (t *Trail) popBack() Segment {
	idx := (t.head + t.count - 1) % len(t.ring)
	s := t.ring[idx]
	t.ring[idx] = Segment{}
	t.count--
	return s
}
