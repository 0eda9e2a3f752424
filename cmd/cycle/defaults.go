package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cyber-cycle/internal/config"
)

var flagResolved bool

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Prints the embedded default configuration as YAML. With --resolved the
configuration the next round would use (after the config search order,
--config and --difficulty) is printed instead.`,
	Args: cobra.NoArgs,
	Run:  runDefaults,
}

func init() {
	defaultsCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration instead of the embedded file")
	defaultsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	defaultsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runDefaults(cmd *cobra.Command, args []string) {
	if !flagResolved {
		fmt.Print(string(config.GetDefaultYAML("cycle")))
		return
	}

	cfg, err := config.LoadCycle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := checkDifficulty(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyCyclePreset(&cfg, config.DifficultyPreset(flagDifficulty))

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

// checkDifficulty rejects unknown preset names. Empty means none.
func checkDifficulty(name string) error {
	switch config.DifficultyPreset(name) {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		return nil
	}
	return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}
