package physics

import (
	"math"

	"github.com/vovakirdan/cyber-cycle/internal/core"
)

// cellKey addresses one bucket of the spatial hash.
type cellKey struct {
	X, Y int32
}

// grid is a sparse uniform spatial hash over static bodies.
// Buckets hold slot indices; removal is swap-remove so order inside a
// bucket is deterministic for a given spawn/despawn history.
type grid struct {
	size    float64
	buckets map[cellKey][]uint32
}

func newGrid(size float64) *grid {
	if size <= 0 {
		size = DefaultCellSize
	}
	return &grid{
		size:    size,
		buckets: make(map[cellKey][]uint32),
	}
}

// span returns the inclusive cell range covered by r.
func (g *grid) span(r core.Rect) (x0, y0, x1, y1 int32) {
	x0 = int32(math.Floor(r.X / g.size))
	y0 = int32(math.Floor(r.Y / g.size))
	x1 = int32(math.Floor(r.Right() / g.size))
	y1 = int32(math.Floor(r.Bottom() / g.size))
	return x0, y0, x1, y1
}

func (g *grid) insert(idx uint32, r core.Rect) {
	x0, y0, x1, y1 := g.span(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			k := cellKey{x, y}
			g.buckets[k] = append(g.buckets[k], idx)
		}
	}
}

func (g *grid) remove(idx uint32, r core.Rect) {
	x0, y0, x1, y1 := g.span(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			k := cellKey{x, y}
			bucket := g.buckets[k]
			for i, v := range bucket {
				if v != idx {
					continue
				}
				last := len(bucket) - 1
				bucket[i] = bucket[last]
				bucket = bucket[:last]
				break
			}
			if len(bucket) == 0 {
				delete(g.buckets, k)
			} else {
				g.buckets[k] = bucket
			}
		}
	}
}

// query calls fn for every slot index stored in a cell overlapping r.
// An index may be reported more than once if it spans several cells.
func (g *grid) query(r core.Rect, fn func(idx uint32)) {
	x0, y0, x1, y1 := g.span(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for _, idx := range g.buckets[cellKey{x, y}] {
				fn(idx)
			}
		}
	}
}
