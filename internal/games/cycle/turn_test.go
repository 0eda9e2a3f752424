package cycle

import (
	"math"
	"testing"

	"github.com/vovakirdan/cyber-cycle/internal/core"
	"github.com/vovakirdan/cyber-cycle/internal/physics"
)

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite is not an involution", d)
		}
		if d.Opposite() == d {
			t.Errorf("%v: opposite of itself", d)
		}
		if sum := d.Unit().Add(d.Opposite().Unit()); sum != (core.Vec2{}) {
			t.Errorf("%v: unit vectors of opposites should cancel, got %v", d, sum)
		}
	}
}

func TestOrientationAlgebra(t *testing.T) {
	cw, ccw := QuarterTurn(1), QuarterTurn(-1)
	if cw.Mul(ccw) != Identity {
		t.Error("opposite quarter turns should cancel")
	}
	if cw.Mul(cw).Mul(cw).Mul(cw) != Identity {
		t.Error("four quarter turns should return to identity")
	}
	if FlipX.Mul(FlipX) != Identity || FlipY.Mul(FlipY) != Identity {
		t.Error("flips should be involutions")
	}
	if got := cw.Apply(core.V(1, 0)); got != core.V(0, 1) {
		t.Errorf("positive quarter turn should map +x to +y, got %v", got)
	}
	if !cw.Transposed() || Identity.Transposed() || FlipX.Transposed() {
		t.Error("only odd quarter turns transpose")
	}
	if !FlipY.Mirrored() || cw.Mirrored() {
		t.Error("mirrored should track flip parity")
	}
}

func TestTurnTableCompleteness(t *testing.T) {
	all := [...]Direction{DirLeft, DirRight, DirUp, DirDown}
	turns := 0
	for _, prev := range all {
		for _, next := range all {
			turn := TurnFor(prev, next, testFootprint)
			quarter := prev.Horizontal() != next.Horizontal()
			if quarter {
				turns++
				if turn.None() {
					t.Errorf("%v -> %v: expected a rotation", prev, next)
				}
				if turn.Rotate != 1 && turn.Rotate != -1 {
					t.Errorf("%v -> %v: rotation must be a single quarter turn, got %d", prev, next, turn.Rotate)
				}
				continue
			}
			if !turn.None() {
				t.Errorf("%v -> %v: same-axis pair must be identity, got %+v", prev, next, turn)
			}
			pos, o := turn.Apply(core.V(3, 4), Identity)
			if pos != core.V(3, 4) || o != Identity {
				t.Errorf("%v -> %v: identity turn moved the cycle", prev, next)
			}
		}
	}
	if turns != 8 {
		t.Errorf("expected 8 quarter turns, got %d", turns)
	}
}

func TestTurnTransposesCollisionBox(t *testing.T) {
	o := Identity
	for _, step := range []struct{ prev, next Direction }{
		{DirRight, DirDown},
		{DirDown, DirLeft},
		{DirLeft, DirUp},
		{DirUp, DirRight},
	} {
		_, o = TurnFor(step.prev, step.next, testFootprint).Apply(core.Vec2{}, o)
		half := testFootprint.Half(o)
		if step.next.Horizontal() && half != core.V(25, 20.5) {
			t.Errorf("heading %v: expected long side along x, got %v", step.next, half)
		}
		if !step.next.Horizontal() && half != core.V(20.5, 25) {
			t.Errorf("heading %v: expected long side along y, got %v", step.next, half)
		}
	}
}

// quarterTurns lists every heading change that rotates the cycle.
func quarterTurns() [][2]Direction {
	var out [][2]Direction
	for _, prev := range Directions {
		for _, next := range Directions {
			if prev.Horizontal() != next.Horizontal() {
				out = append(out, [2]Direction{prev, next})
			}
		}
	}
	return out
}

func TestTrailContiguityAcrossTurns(t *testing.T) {
	const delta = 10.0
	m := Motion{Delta: delta, Footprint: testFootprint}

	for _, pair := range quarterTurns() {
		prev, next := pair[0], pair[1]
		t.Run(prev.String()+"_to_"+next.String(), func(t *testing.T) {
			sub := newFakeSubstrate()
			b := newTestBike(sub, core.Vec2{}, prev, testFootprint, delta, 100)

			for range 4 {
				m.Advance(sub, b, core.NewInputFrame())
			}
			if !m.Advance(sub, b, hold(next.Action())) {
				t.Fatal("expected the heading change to turn the cycle")
			}
			for range 4 {
				m.Advance(sub, b, core.NewInputFrame())
			}

			if b.Direction != next {
				t.Fatalf("direction = %v, expected %v", b.Direction, next)
			}
			for i := 0; i+1 < b.Trail.Len(); i++ {
				d := b.Trail.At(i).Position.Dist(b.Trail.At(i + 1).Position)
				if math.Abs(d-delta) > 1e-9 {
					t.Errorf("segments %d and %d are %.4f apart, expected %.1f", i, i+1, d, delta)
				}
			}
		})
	}
}

func TestSingleTurnNeverHitsOwnTrail(t *testing.T) {
	const delta = 10.0
	m := Motion{Delta: delta, Footprint: testFootprint}

	for _, pair := range quarterTurns() {
		prev, next := pair[0], pair[1]
		t.Run(prev.String()+"_to_"+next.String(), func(t *testing.T) {
			w := physics.NewWorld(0)
			b := newTestBike(w, core.Vec2{}, prev, testFootprint, delta, 100)

			for tick := range 30 {
				in := core.NewInputFrame()
				if tick == 10 {
					in = hold(next.Action())
				}
				m.Advance(w, b, in)
				w.Step()
				for _, evt := range w.Drain() {
					if evt.Involves(b.Handle) {
						t.Fatalf("tick %d: cycle touched %v", tick, evt)
					}
				}
			}
		})
	}
}
