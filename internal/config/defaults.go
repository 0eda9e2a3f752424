package config

import (
	_ "embed"
)

//go:embed defaults/cycle.yaml
var defaultCycleYAML []byte

// DefaultCycleConfig returns the default light cycle configuration.
func DefaultCycleConfig() CycleConfig {
	return CycleConfig{
		Physics: CyclePhysics{
			TickRate: 60,
			Speed:    400,
			CellSize: 64,
		},
		Bike: CycleBike{
			Width:  50,
			Height: 41,
		},
		Trail: CycleTrail{
			Capacity:          1000,
			Margin:            1,
			PersistAfterDeath: true,
		},
		Arena: CycleArena{
			Width:         4000,
			Height:        3000,
			WallThickness: 20,
		},
		Rivals: CycleRivals{
			Count:      3,
			Spacing:    300,
			Lookahead:  12,
			TurnChance: 0.01,
		},
		Collisions: CycleCollisions{
			BikeVsBike: "ignore",
		},
		Animation: CycleAnimation{
			FrameSeconds: 0.1,
			Frames:       2,
		},
		View: CycleView{
			CellWidth:  20,
			CellHeight: 40,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800, // 3 minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				ExtraRivals: 3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "cycle", "cycle_solo":
		return defaultCycleYAML
	default:
		return nil
	}
}
