package cycle

import (
	"github.com/vovakirdan/cyber-cycle/internal/core"
	"github.com/vovakirdan/cyber-cycle/internal/physics"
)

// Substrate is the part of the physics world the game drives directly.
type Substrate interface {
	Spawner
	Move(h physics.Handle, center, half core.Vec2)
}

// Steer picks the heading requested by a held input.
// Priority is Left > Right > Down > Up; the first request that does not
// reverse the current heading wins, otherwise the heading is kept.
func Steer(current Direction, in core.InputFrame) Direction {
	for _, d := range Directions {
		if in.Has(d.Action()) && d != current.Opposite() {
			return d
		}
	}
	return current
}

// Motion moves cycles one fixed tick at a time.
type Motion struct {
	Delta     float64
	Footprint Footprint
}

// Advance steers b from the held input, applies the turn transform if the
// heading changed, translates by one displacement, grows the trail and
// syncs the sensor body. It reports whether the cycle turned.
// A destroyed or nil cycle is left alone.
func (m Motion) Advance(sub Substrate, b *Bike, in core.InputFrame) bool {
	if b == nil || b.Destroyed {
		return false
	}

	prev := b.Direction
	b.Direction = Steer(prev, in)

	turn := TurnFor(prev, b.Direction, m.Footprint)
	b.Position, b.Orientation = turn.Apply(b.Position, b.Orientation)
	b.Position = b.Position.Add(b.Direction.Unit().Scale(m.Delta))

	if b.Trail != nil {
		b.Trail.Grow(sub, b.Position, b.Direction)
	}
	sub.Move(b.Handle, b.Position, m.Footprint.Half(b.Orientation))
	return !turn.None()
}

// Project returns where b would be after one tick heading dir, without
// touching any state.
func (m Motion) Project(b *Bike, dir Direction) (core.Vec2, Orientation) {
	if dir == b.Direction.Opposite() {
		dir = b.Direction
	}
	pos, o := TurnFor(b.Direction, dir, m.Footprint).Apply(b.Position, b.Orientation)
	return pos.Add(dir.Unit().Scale(m.Delta)), o
}
