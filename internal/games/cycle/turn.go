package cycle

import "github.com/vovakirdan/cyber-cycle/internal/core"

// Turn describes how a cycle's transform changes when its heading changes.
// The cycle is flipped by Pre, rotated a quarter turn (sign Rotate) about
// the point centre+Pivot, then flipped by Post.
type Turn struct {
	Pivot  core.Vec2
	Rotate int
	Pre    Orientation
	Post   Orientation
}

// None reports whether the turn leaves the transform untouched.
func (t Turn) None() bool {
	return t.Rotate == 0
}

// Apply returns the transformed centre and orientation.
// Rotating about pivot p moves centre c to p + R(c - p).
func (t Turn) Apply(center core.Vec2, o Orientation) (core.Vec2, Orientation) {
	if t.None() {
		return center, o
	}
	r := QuarterTurn(t.Rotate)
	o = t.Pre.Mul(o)
	center = center.Add(t.Pivot).Sub(r.Apply(t.Pivot))
	o = r.Mul(o)
	o = t.Post.Mul(o)
	return center, o
}

// TurnFor returns the transform change for the heading change prev -> next.
// Same-direction and reversal pairs return the zero Turn. Offsets are
// multiples of the half footprint W (along travel) and H (across travel),
// chosen so the trail laid after the turn continues exactly one
// displacement from the last block laid before it.
func TurnFor(prev, next Direction, fp Footprint) Turn {
	w, h := fp.HalfW(), fp.HalfH()
	id := Identity

	switch next {
	case DirLeft:
		switch prev {
		case DirUp:
			return Turn{Pivot: core.V(0, w-h), Rotate: -1, Pre: id, Post: FlipY}
		case DirDown:
			return Turn{Pivot: core.V(h, -w), Rotate: 1, Pre: id, Post: id}
		}
	case DirRight:
		switch prev {
		case DirUp:
			return Turn{Pivot: core.V(h, w), Rotate: 1, Pre: id, Post: id}
		case DirDown:
			return Turn{Pivot: core.V(0, -(w + h)), Rotate: -1, Pre: id, Post: FlipY}
		}
	case DirDown:
		switch prev {
		case DirLeft:
			return Turn{Pivot: core.V(w, h), Rotate: -1, Pre: id, Post: id}
		case DirRight:
			return Turn{Pivot: core.V(-(w + h), 0), Rotate: 1, Pre: id, Post: FlipX}
		}
	case DirUp:
		switch prev {
		case DirLeft:
			return Turn{Pivot: core.V(w-h, 0), Rotate: 1, Pre: FlipY, Post: id}
		case DirRight:
			return Turn{Pivot: core.V(-w, h), Rotate: -1, Pre: id, Post: id}
		}
	}
	return Turn{}
}
