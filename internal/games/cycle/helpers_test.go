package cycle

import (
	"github.com/vovakirdan/cyber-cycle/internal/config"
	"github.com/vovakirdan/cyber-cycle/internal/core"
	"github.com/vovakirdan/cyber-cycle/internal/physics"
)

// fakeSubstrate records bodies without detecting overlaps.
type fakeSubstrate struct {
	next      uint32
	bodies    map[physics.Handle]physics.Body
	despawned []physics.Handle
}

func newFakeSubstrate() *fakeSubstrate {
	return &fakeSubstrate{bodies: make(map[physics.Handle]physics.Body)}
}

func (f *fakeSubstrate) Spawn(b physics.Body) physics.Handle {
	f.next++
	h := physics.Handle{Index: f.next, Gen: 1}
	f.bodies[h] = b
	return h
}

func (f *fakeSubstrate) Despawn(h physics.Handle) {
	if _, ok := f.bodies[h]; !ok {
		return
	}
	delete(f.bodies, h)
	f.despawned = append(f.despawned, h)
}

func (f *fakeSubstrate) Move(h physics.Handle, center, half core.Vec2) {
	b, ok := f.bodies[h]
	if !ok {
		return
	}
	b.Center, b.Half = center, half
	f.bodies[h] = b
}

func (f *fakeSubstrate) Alive(h physics.Handle) bool {
	_, ok := f.bodies[h]
	return ok
}

// testFootprint matches the default bike footprint.
var testFootprint = Footprint{Width: 50, Height: 41}

// newTestBike spawns a cycle with an empty trail into sub.
func newTestBike(sub Spawner, pos core.Vec2, dir Direction, fp Footprint, delta float64, capacity int) *Bike {
	// Orientations a cycle spawned heading right would have after one turn.
	o := Identity
	switch dir {
	case DirLeft:
		o = FlipX
	case DirUp:
		o = QuarterTurn(-1)
	case DirDown:
		o = FlipX.Mul(QuarterTurn(1))
	}
	b := &Bike{
		Direction:   dir,
		Position:    pos,
		Orientation: o,
	}
	b.Handle = sub.Spawn(physics.Body{Kind: physics.KindSensor, Center: pos, Half: fp.Half(o)})
	b.Trail = NewTrail(capacity, TrailGeometry{Delta: delta, Margin: 1, Footprint: fp})
	return b
}

// testConfig returns a small deterministic configuration: 10 units per tick,
// unbounded plane, no rivals, fixed difficulty.
func testConfig() config.CycleConfig {
	cfg := config.DefaultCycleConfig()
	cfg.Physics.TickRate = 60
	cfg.Physics.Speed = 600
	cfg.Arena = config.CycleArena{}
	cfg.Rivals.Count = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

func hold(actions ...core.Action) core.InputFrame {
	return core.FrameOf(actions...)
}
