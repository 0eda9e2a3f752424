// cycle is a light cycle arena for the terminal.
//
// Usage:
//
//	cycle list               - List available modes
//	cycle play [solo|rivals] - Play a round (menu when no mode is given)
//	cycle defaults           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Override physics.tick_rate (default: keep config)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write diagnostics to a file
//	--debug            - Include debug-level diagnostics
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/cyber-cycle/internal/games/cycle"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Cyber Cycle - light cycles in your terminal",
	Long: `Cyber Cycle is a terminal light cycle arena. Steer your cycle, leave
a solid trail behind you and outlast the rivals. Touching any trail or the
arena wall ends the round.

Available commands:
  list      - Show all available modes
  play      - Play a round
  defaults  - Print the default configuration

Examples:
  cycle list
  cycle play
  cycle play solo --seed 42
  cycle play rivals --difficulty hard
  cycle defaults > ~/.cyber-cycle/configs/cycle.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = physics.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug-level diagnostics")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger builds the diagnostics logger. The terminal belongs to the
// game, so output goes to --log-file or nowhere. The returned func closes
// the log file, if any.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	cleanup := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		cleanup = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cycle",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, cleanup, nil
}
