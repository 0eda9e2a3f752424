package cycle

import (
	"math/rand"

	"github.com/vovakirdan/cyber-cycle/internal/core"
	"github.com/vovakirdan/cyber-cycle/internal/physics"
)

// Prober answers whether a region of the world is free.
type Prober interface {
	Occupied(r core.Rect, ignore ...physics.Handle) bool
}

// RivalSteering drives CPU cycles. Each tick it looks a few displacements
// ahead and turns when the way is blocked, or at random with TurnChance.
type RivalSteering struct {
	Motion     Motion
	Lookahead  int
	TurnChance float64
	rng        *rand.Rand
}

// NewRivalSteering creates a steering routine seeded for determinism.
func NewRivalSteering(m Motion, lookahead int, turnChance float64, seed int64) *RivalSteering {
	if lookahead < 1 {
		lookahead = 1
	}
	return &RivalSteering{
		Motion:     m,
		Lookahead:  lookahead,
		TurnChance: turnChance,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Decide returns the input frame a CPU cycle holds this tick.
func (r *RivalSteering) Decide(b *Bike, p Prober) core.InputFrame {
	if b == nil || b.Destroyed {
		return core.NewInputFrame()
	}

	ahead := r.clear(b, b.Direction, p)
	wantTurn := !ahead || r.rng.Float64() < r.TurnChance
	if !wantTurn {
		return core.NewInputFrame()
	}

	left, right := perpendicular(b.Direction)
	options := make([]Direction, 0, 2)
	for _, d := range [...]Direction{left, right} {
		if r.clear(b, d, p) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		return core.NewInputFrame()
	}
	pick := options[r.rng.Intn(len(options))]
	return core.FrameOf(pick.Action())
}

// clear sweeps the cycle's box along dir for Lookahead ticks.
func (r *RivalSteering) clear(b *Bike, dir Direction, p Prober) bool {
	pos, o := r.Motion.Project(b, dir)
	half := r.Motion.Footprint.Half(o)
	step := dir.Unit().Scale(r.Motion.Delta)
	for k := 0; k < r.Lookahead; k++ {
		box := core.RectAround(pos.Add(step.Scale(float64(k))), half)
		if p.Occupied(box, b.Handle) {
			return false
		}
	}
	return true
}

func perpendicular(d Direction) (Direction, Direction) {
	if d.Horizontal() {
		return DirUp, DirDown
	}
	return DirLeft, DirRight
}
