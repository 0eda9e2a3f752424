package cycle

import "github.com/vovakirdan/cyber-cycle/internal/core"

// Orientation is the in-plane part of a cycle's rotation: a 2x2 integer
// matrix [[A B] [C D]] built from quarter turns and half-turn flips about
// the x or y axis. Flips only mirror the sprite (the renderer moves the
// flank stripe to the other side); they never change the collision box.
type Orientation struct {
	A, B, C, D int
}

var (
	// Identity is the spawn orientation: long side along x.
	Identity = Orientation{1, 0, 0, 1}

	// FlipX mirrors across the y axis (half turn about y).
	FlipX = Orientation{-1, 0, 0, 1}

	// FlipY mirrors across the x axis (half turn about x).
	FlipY = Orientation{1, 0, 0, -1}
)

// QuarterTurn returns a 90 degree rotation. sign > 0 rotates from +x
// towards +y (clockwise on screen), sign < 0 the other way.
func QuarterTurn(sign int) Orientation {
	if sign > 0 {
		return Orientation{0, -1, 1, 0}
	}
	return Orientation{0, 1, -1, 0}
}

// Mul returns o·p, i.e. p applied first.
func (o Orientation) Mul(p Orientation) Orientation {
	return Orientation{
		A: o.A*p.A + o.B*p.C,
		B: o.A*p.B + o.B*p.D,
		C: o.C*p.A + o.D*p.C,
		D: o.C*p.B + o.D*p.D,
	}
}

// Apply transforms v.
func (o Orientation) Apply(v core.Vec2) core.Vec2 {
	return core.V(
		float64(o.A)*v.X+float64(o.B)*v.Y,
		float64(o.C)*v.X+float64(o.D)*v.Y,
	)
}

// Transposed reports whether the long side now lies along y.
func (o Orientation) Transposed() bool {
	return o.A == 0
}

// Mirrored reports whether the orientation includes an odd number of flips.
func (o Orientation) Mirrored() bool {
	return o.A*o.D-o.B*o.C < 0
}
