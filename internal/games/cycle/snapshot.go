package cycle

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Score       int
	Kills       int
	PlayerAlive bool
	PlayerX     float64
	PlayerY     float64
	Dir         Direction
	Orientation Orientation
	TrailLen    int
	TrailGrown  int
	Rivals      int
	Bodies      int // Live physics bodies
	CameraX     float64
	CameraY     float64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Phase:   g.Phase(),
		Score:   g.score,
		Kills:   g.kills,
		Rivals:  g.fleet.Rivals(),
		Bodies:  g.world.Len(),
		CameraX: g.camera.Position.X,
		CameraY: g.camera.Position.Y,
	}

	// The player's record outlives its cycle so a dead round still reports
	// where it ended.
	for _, b := range g.bikes {
		if !b.Player {
			continue
		}
		s.PlayerAlive = !b.Destroyed
		s.PlayerX = b.Position.X
		s.PlayerY = b.Position.Y
		s.Dir = b.Direction
		s.Orientation = b.Orientation
		if b.Trail != nil {
			s.TrailLen = b.Trail.Len()
			s.TrailGrown = b.Trail.Grown()
		}
		break
	}
	return s
}
