package cycle

import "github.com/vovakirdan/cyber-cycle/internal/core"

// Direction is one of the four axis-aligned headings.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every heading in steering priority order.
var Directions = [...]Direction{DirLeft, DirRight, DirDown, DirUp}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Unit returns the unit step for the heading in render space (y down).
func (d Direction) Unit() core.Vec2 {
	switch d {
	case DirLeft:
		return core.V(-1, 0)
	case DirRight:
		return core.V(1, 0)
	case DirUp:
		return core.V(0, -1)
	default:
		return core.V(0, 1)
	}
}

// Horizontal reports whether the heading moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Action returns the input action that requests this heading.
func (d Direction) Action() core.Action {
	switch d {
	case DirLeft:
		return core.ActionLeft
	case DirRight:
		return core.ActionRight
	case DirUp:
		return core.ActionUp
	default:
		return core.ActionDown
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
