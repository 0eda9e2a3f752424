// Package config provides YAML-based game configuration loading and
// difficulty management for the cycle arena.
package config

import "time"

// CycleConfig contains all configuration for the light cycle game.
type CycleConfig struct {
	Physics    CyclePhysics     `yaml:"physics"`
	Bike       CycleBike        `yaml:"bike"`
	Trail      CycleTrail       `yaml:"trail"`
	Arena      CycleArena       `yaml:"arena"`
	Rivals     CycleRivals      `yaml:"rivals"`
	Collisions CycleCollisions  `yaml:"collisions"`
	Animation  CycleAnimation   `yaml:"animation"`
	View       CycleView        `yaml:"view"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CyclePhysics defines the fixed timestep and cycle speed.
type CyclePhysics struct {
	TickRate int     `yaml:"tick_rate"` // Fixed ticks per second
	Speed    float64 `yaml:"speed"`     // World units per second
	CellSize float64 `yaml:"cell_size"` // Spatial hash bucket size in world units
}

// Delta returns the constant per-tick displacement.
func (p CyclePhysics) Delta() float64 {
	if p.TickRate <= 0 {
		return 0
	}
	return p.Speed / float64(p.TickRate)
}

// TimeStep returns the fixed tick duration.
func (p CyclePhysics) TimeStep() time.Duration {
	if p.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(p.TickRate)
}

// CycleBike defines the cycle footprint.
type CycleBike struct {
	Width  float64 `yaml:"width"`  // Along the direction of travel
	Height float64 `yaml:"height"` // Across the direction of travel
}

// CycleTrail defines trail retention and block sizing.
type CycleTrail struct {
	Capacity          int     `yaml:"capacity"`            // Max segments retained per cycle
	Margin            float64 `yaml:"margin"`              // Collision box shrink per side
	PersistAfterDeath bool    `yaml:"persist_after_death"` // Keep a destroyed cycle's walls
}

// CycleArena defines the optional bounded play field. Zero size means an
// unbounded plane.
type CycleArena struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// Bounded reports whether boundary walls should be spawned.
func (a CycleArena) Bounded() bool {
	return a.Width > 0 && a.Height > 0
}

// CycleRivals defines CPU opponents.
type CycleRivals struct {
	Count      int     `yaml:"count"`       // Rivals spawned at round start
	Spacing    float64 `yaml:"spacing"`     // Distance between spawn lanes
	Lookahead  int     `yaml:"lookahead"`   // Ticks swept when probing ahead
	TurnChance float64 `yaml:"turn_chance"` // Per-tick chance of a voluntary turn
}

// CycleCollisions defines collision policy.
type CycleCollisions struct {
	BikeVsBike string `yaml:"bike_vs_bike"` // "ignore" or "mutual"
}

// CycleAnimation defines sprite animation timing.
type CycleAnimation struct {
	FrameSeconds float64 `yaml:"frame_seconds"`
	Frames       int     `yaml:"frames"`
}

// CycleView defines how world units map to terminal cells.
type CycleView struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per column
	CellHeight float64 `yaml:"cell_height"` // World units per row
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraRivals int `yaml:"extra_rivals"` // Rivals added on top of the base count at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
