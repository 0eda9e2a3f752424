package core

// RuntimeConfig is what the platform hands a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Columns available to the game
	ScreenH  int   // Rows available to the game
	TickRate int   // Fixed ticks per second; 0 keeps the game's own rate
	Seed     int64 // Spawn RNG seed; 0 asks the platform for a time seed
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	Kills    int // Rivals destroyed this round
	GameOver bool
	Paused   bool
}

// StepResult is returned by every Game.Step call.
type StepResult struct {
	State GameState

	// Tick is the number of simulated ticks in the current round.
	Tick uint64

	// Destroyed counts cycles destroyed during this tick.
	Destroyed int
}
