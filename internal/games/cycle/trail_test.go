package cycle

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/cyber-cycle/internal/core"
	"github.com/vovakirdan/cyber-cycle/internal/physics"
)

func TestTrailScenarioStraightRun(t *testing.T) {
	// Capacity 3, displacement 10, five ticks heading right from the origin.
	sub := newFakeSubstrate()
	fp := Footprint{}
	m := Motion{Delta: 10, Footprint: fp}
	b := newTestBike(sub, core.Vec2{}, DirRight, fp, 10, 3)

	for range 5 {
		m.Advance(sub, b, core.NewInputFrame())
	}

	if b.Position != core.V(50, 0) {
		t.Fatalf("position = %v, expected (50, 0)", b.Position)
	}
	if b.Trail.Len() != 3 {
		t.Fatalf("trail len = %d, expected 3", b.Trail.Len())
	}
	if b.Trail.Evicted() != 2 || len(sub.despawned) != 2 {
		t.Errorf("expected the two earliest segments evicted, got %d (%d despawned)", b.Trail.Evicted(), len(sub.despawned))
	}
	for i, rel := range []float64{-10, -20, -30} {
		got := b.Trail.At(i).Position.X - b.Position.X
		if got != rel {
			t.Errorf("segment %d at relative x %.0f, expected %.0f", i, got, rel)
		}
	}
}

func TestTrailOffsetsWithFootprint(t *testing.T) {
	g := TrailGeometry{Delta: 10, Margin: 1, Footprint: testFootprint}
	pos := core.V(100, 200)

	tests := []struct {
		dir      Direction
		expected core.Vec2
	}{
		{DirRight, core.V(100-10-25, 200+20.5)},
		{DirLeft, core.V(100+10+25, 200+20.5)},
		{DirDown, core.V(100+20.5, 200-10-25)},
		{DirUp, core.V(100+20.5, 200+10+25)},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := pos.Add(g.Offset(tc.dir)); got != tc.expected {
				t.Errorf("segment centre = %v, expected %v", got, tc.expected)
			}
		})
	}

	if g.Half() != core.V(4, 4) {
		t.Errorf("block half extent = %v, expected (4, 4)", g.Half())
	}
}

func TestTrailNeverExceedsCapacity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sub := newFakeSubstrate()
	m := Motion{Delta: 10, Footprint: testFootprint}
	b := newTestBike(sub, core.Vec2{}, DirRight, testFootprint, 10, 25)

	for tick := range 500 {
		in := core.NewInputFrame()
		if rng.Intn(8) == 0 {
			in = hold(Directions[rng.Intn(len(Directions))].Action())
		}
		beforeLen, beforeEvicted := b.Trail.Len(), b.Trail.Evicted()
		m.Advance(sub, b, in)

		if b.Trail.Len() > b.Trail.Capacity() {
			t.Fatalf("tick %d: len %d exceeds capacity %d", tick, b.Trail.Len(), b.Trail.Capacity())
		}
		if beforeLen == b.Trail.Capacity() {
			if b.Trail.Len() != beforeLen || b.Trail.Evicted() != beforeEvicted+1 {
				t.Fatalf("tick %d: a full trail must evict exactly one segment per growth", tick)
			}
		}
	}

	// Sensor plus exactly the retained segments remain.
	if len(sub.bodies) != b.Trail.Len()+1 {
		t.Errorf("live bodies = %d, expected %d", len(sub.bodies), b.Trail.Len()+1)
	}
	if b.Trail.Grown() != 500 {
		t.Errorf("grown = %d, expected one segment per tick", b.Trail.Grown())
	}
}

func TestTrailOrderAndClear(t *testing.T) {
	sub := newFakeSubstrate()
	tr := NewTrail(4, TrailGeometry{Delta: 10, Margin: 1})

	var handles []physics.Handle
	for i := range 6 {
		handles = append(handles, tr.Grow(sub, core.V(float64(i*10), 0), DirRight).Handle)
	}

	head, _ := tr.Head()
	tail, _ := tr.Tail()
	if head.Handle != handles[5] || tail.Handle != handles[2] {
		t.Errorf("head/tail = %v/%v, expected %v/%v", head.Handle, tail.Handle, handles[5], handles[2])
	}

	var order []physics.Handle
	tr.Each(func(s Segment) { order = append(order, s.Handle) })
	for i, h := range order {
		if h != handles[5-i] {
			t.Errorf("Each()[%d] = %v, expected newest first", i, h)
		}
	}
	if tr.Owns(handles[0]) || !tr.Owns(handles[3]) {
		t.Error("Owns should track only live segments")
	}

	tr.Clear(sub)
	if tr.Len() != 0 || len(sub.bodies) != 0 {
		t.Errorf("after Clear: len %d, bodies %d", tr.Len(), len(sub.bodies))
	}
	if _, ok := tr.Head(); ok {
		t.Error("empty trail should have no head")
	}
}
