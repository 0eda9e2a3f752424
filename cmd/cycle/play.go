package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cyber-cycle/internal/core"
	"github.com/vovakirdan/cyber-cycle/internal/games/cycle"
	"github.com/vovakirdan/cyber-cycle/internal/platform/tui"
	"github.com/vovakirdan/cyber-cycle/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

// modeAliases maps friendly mode names to registry IDs.
var modeAliases = map[string]string{
	"rivals": "cycle",
	"solo":   "cycle_solo",
}

var playCmd = &cobra.Command{
	Use:   "play [solo|rivals]",
	Short: "Play a round",
	Long: `Start a round. Without a mode a menu asks for mode and difficulty.

Controls:
  Arrows/WASD/HJKL - Steer (no reversing)
  P/Esc            - Pause
  R                - Restart (after the round ends)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - One slow rival, rivals added over time
  normal - Start at 30% difficulty, progresses to max
  hard   - Five fast rivals, cycle collisions are mutual
  fixed  - No progression, stays at config's initial level

Examples:
  cycle play
  cycle play solo
  cycle play rivals --difficulty hard
  cycle play rivals --config ./my-cycle.yaml --log-file cycle.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := checkDifficulty(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	difficulty := flagDifficulty
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if id, ok := modeAliases[gameID]; ok {
			gameID = id
		}
	} else {
		selection, err := tui.RunCycleMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User pressed back or quit
		if selection == nil {
			return
		}
		gameID = selection.GameID
		if difficulty == "" {
			difficulty = selection.Difficulty
		}
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cycle list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set config path, difficulty and logger before creation
	cycle.SetConfigPath(flagConfig)
	cycle.SetDifficultyPreset(difficulty)
	cycle.SetLogger(logger)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "game", gameID, "difficulty", difficulty, "fps", flagFPS, "seed", flagSeed)

	// Run the game
	runErr := tui.Run(game, cfg, logger)

	// Close the log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
