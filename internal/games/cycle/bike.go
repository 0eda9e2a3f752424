package cycle

import (
	"github.com/vovakirdan/cyber-cycle/internal/core"
	"github.com/vovakirdan/cyber-cycle/internal/physics"
)

// Footprint is the rectangular extent of a cycle at spawn orientation:
// Width along the direction of travel, Height across it.
type Footprint struct {
	Width, Height float64
}

// HalfW returns half the length along travel.
func (f Footprint) HalfW() float64 { return f.Width / 2 }

// HalfH returns half the length across travel.
func (f Footprint) HalfH() float64 { return f.Height / 2 }

// Half returns the collision half extents for the given orientation.
func (f Footprint) Half(o Orientation) core.Vec2 {
	if o.Transposed() {
		return core.V(f.HalfH(), f.HalfW())
	}
	return core.V(f.HalfW(), f.HalfH())
}

// Bike is a light cycle: a sensor body that leaves a trail behind it.
type Bike struct {
	ID          int
	Player      bool
	Direction   Direction
	Position    core.Vec2
	Orientation Orientation
	Handle      physics.Handle
	Trail       *Trail
	Color       core.Color
	Frame       int // Current sprite animation frame
	Destroyed   bool

	animElapsed float64
}

// Bounds returns the cycle's current collision rectangle.
func (b *Bike) Bounds(fp Footprint) core.Rect {
	return core.RectAround(b.Position, fp.Half(b.Orientation))
}

// Fleet indexes live cycles by physics handle. The player, if any, is
// tracked separately so lookups stay O(1).
type Fleet struct {
	bikes    []*Bike
	byHandle map[physics.Handle]*Bike
	player   *Bike
}

// NewFleet creates an empty fleet.
func NewFleet() *Fleet {
	return &Fleet{byHandle: make(map[physics.Handle]*Bike)}
}

// Add registers a cycle.
func (f *Fleet) Add(b *Bike) {
	f.bikes = append(f.bikes, b)
	f.byHandle[b.Handle] = b
	if b.Player {
		f.player = b
	}
}

// Lookup returns the live cycle owning h.
func (f *Fleet) Lookup(h physics.Handle) (*Bike, bool) {
	b, ok := f.byHandle[h]
	return b, ok
}

// Remove unregisters a cycle.
func (f *Fleet) Remove(b *Bike) {
	delete(f.byHandle, b.Handle)
	for i, o := range f.bikes {
		if o == b {
			f.bikes = append(f.bikes[:i], f.bikes[i+1:]...)
			break
		}
	}
	if f.player == b {
		f.player = nil
	}
}

// Player returns the player's cycle, or nil once it has been destroyed.
func (f *Fleet) Player() *Bike {
	return f.player
}

// Bikes returns live cycles in spawn order. The slice must not be modified.
func (f *Fleet) Bikes() []*Bike {
	return f.bikes
}

// Rivals returns the number of live CPU cycles.
func (f *Fleet) Rivals() int {
	n := len(f.bikes)
	if f.player != nil {
		n--
	}
	return n
}
