package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadCycle loads light cycle configuration.
// Search order: customPath -> ~/.cyber-cycle/configs/cycle.yaml -> ./configs/cycle.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadCycle(customPath string) (CycleConfig, error) {
	cfg := DefaultCycleConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, Validate(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cycle.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "cycle.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCycleYAML, &cfg); err != nil {
		return DefaultCycleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next source in the search order applies.
func tryLoad(path string) (CycleConfig, bool) {
	cfg := DefaultCycleConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if Validate(cfg) != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cyber-cycle", "configs", filename)
}

// Validate checks the tunables the simulation depends on.
func Validate(cfg CycleConfig) error {
	switch {
	case cfg.Physics.TickRate <= 0:
		return fmt.Errorf("%w: physics.tick_rate must be positive, got %d", ErrInvalid, cfg.Physics.TickRate)
	case cfg.Physics.Speed <= 0:
		return fmt.Errorf("%w: physics.speed must be positive, got %g", ErrInvalid, cfg.Physics.Speed)
	case cfg.Bike.Width <= 0 || cfg.Bike.Height <= 0:
		return fmt.Errorf("%w: bike footprint must be positive, got %gx%g", ErrInvalid, cfg.Bike.Width, cfg.Bike.Height)
	case cfg.Trail.Capacity <= 0:
		return fmt.Errorf("%w: trail.capacity must be positive, got %d", ErrInvalid, cfg.Trail.Capacity)
	case cfg.Trail.Margin < 0 || cfg.Trail.Margin*2 >= cfg.Physics.Delta():
		return fmt.Errorf("%w: trail.margin %g leaves no collision box for displacement %g", ErrInvalid, cfg.Trail.Margin, cfg.Physics.Delta())
	case cfg.Rivals.Count < 0:
		return fmt.Errorf("%w: rivals.count must not be negative, got %d", ErrInvalid, cfg.Rivals.Count)
	case cfg.Collisions.BikeVsBike != "ignore" && cfg.Collisions.BikeVsBike != "mutual":
		return fmt.Errorf("%w: collisions.bike_vs_bike must be ignore or mutual, got %q", ErrInvalid, cfg.Collisions.BikeVsBike)
	case cfg.View.CellWidth <= 0 || cfg.View.CellHeight <= 0:
		return fmt.Errorf("%w: view cell size must be positive", ErrInvalid)
	}
	return nil
}

// ApplyCyclePreset modifies the config based on a difficulty preset.
func ApplyCyclePreset(cfg *CycleConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rivals.Count = 1
		cfg.Physics.Speed = 300
	case DifficultyHard:
		cfg.Rivals.Count = 5
		cfg.Physics.Speed = 500
		cfg.Collisions.BikeVsBike = "mutual"
	}
}
