package cycle

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyber-cycle/internal/physics"
)

// BikePolicy selects what happens when two cycles touch.
type BikePolicy string

const (
	// BikeIgnore leaves both cycles alive.
	BikeIgnore BikePolicy = "ignore"
	// BikeMutual destroys both cycles.
	BikeMutual BikePolicy = "mutual"
)

// BodyTable is the part of the physics world collision resolution needs.
type BodyTable interface {
	Spawner
	Alive(h physics.Handle) bool
}

// Outcome summarises one resolution pass.
type Outcome struct {
	Destroyed  []*Bike
	PlayerDied bool
}

// Resolver applies the consequences of collision events.
type Resolver struct {
	Policy        BikePolicy
	PersistTrails bool // Keep a destroyed cycle's trail as walls
	Logger        *log.Logger
}

// Resolve drains one tick of events in arrival order. A cycle touching a
// non-cycle body is destroyed; if it is the player the machine moves to
// Dead and the remaining events are dropped. Events naming a body that is
// no longer alive are skipped. Nothing happens when there is no player.
func (r Resolver) Resolve(events []physics.CollisionEvent, fleet *Fleet, bodies BodyTable, m *Machine) Outcome {
	var out Outcome
	if fleet.Player() == nil || !m.Running() {
		return out
	}

	for _, evt := range events {
		if !bodies.Alive(evt.A) || !bodies.Alive(evt.B) {
			continue
		}

		a, aIsBike := fleet.Lookup(evt.A)
		b, bIsBike := fleet.Lookup(evt.B)

		var fatal bool
		switch {
		case aIsBike && bIsBike:
			if r.Policy != BikeMutual {
				continue
			}
			r.destroy(a, evt, fleet, bodies, &out)
			r.destroy(b, evt, fleet, bodies, &out)
			fatal = a.Player || b.Player
		case aIsBike:
			r.destroy(a, evt, fleet, bodies, &out)
			fatal = a.Player
		case bIsBike:
			r.destroy(b, evt, fleet, bodies, &out)
			fatal = b.Player
		default:
			continue
		}

		if fatal {
			out.PlayerDied = m.Kill()
			if out.PlayerDied && r.Logger != nil {
				r.Logger.Info("player destroyed", "phase", m.Phase())
			}
			break
		}
	}
	return out
}

func (r Resolver) destroy(b *Bike, evt physics.CollisionEvent, fleet *Fleet, bodies BodyTable, out *Outcome) {
	if r.Logger != nil {
		other := evt.B
		if b.Handle == evt.B {
			other = evt.A
		}
		selfHit := b.Trail != nil && b.Trail.Owns(other)
		r.Logger.Debug("cycle destroyed",
			"id", b.ID,
			"player", b.Player,
			"hit", other,
			"own_trail", selfHit,
			"phase", evt.Phase,
		)
	}

	bodies.Despawn(b.Handle)
	if b.Trail != nil && !r.PersistTrails {
		b.Trail.Clear(bodies)
	}
	b.Destroyed = true
	fleet.Remove(b)
	out.Destroyed = append(out.Destroyed, b)
}
