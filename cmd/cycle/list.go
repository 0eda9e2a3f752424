package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyber-cycle/internal/config"
	"github.com/vovakirdan/cyber-cycle/internal/games/cycle"
	"github.com/vovakirdan/cyber-cycle/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long: `Shows every registered game mode with the rivals, bike contact rule and
arena it would start with under the resolved configuration (--config and
--difficulty apply).`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	listCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

var listHeader = []string{"ID", "Title", "Rivals", "Contact", "Arena"}

// modeRows describes each registered mode under cfg.
func modeRows(cfg config.CycleConfig) [][]string {
	var rows [][]string
	for _, info := range registry.List() {
		rivals, contact := "-", "-"
		if g, err := registry.Create(info.ID); err == nil {
			if cg, ok := g.(*cycle.Game); ok && cg.Mode() == cycle.ModeRivals {
				rivals = rivalRange(cfg)
				contact = cfg.Collisions.BikeVsBike
			}
		}
		rows = append(rows, []string{info.ID, info.Title, rivals, contact, arenaSize(cfg.Arena)})
	}
	return rows
}

// rivalRange shows the starting rival count and, when the difficulty curve
// adds more, the count at its peak.
func rivalRange(cfg config.CycleConfig) string {
	base := cfg.Rivals.Count
	end := max(cfg.Difficulty.Progression.MaxAt, 1)
	peak := config.NewDifficultyManager(cfg.Difficulty).Rivals(base, end, end)
	if peak > base {
		return fmt.Sprintf("%d -> %d", base, peak)
	}
	return fmt.Sprint(base)
}

func arenaSize(a config.CycleArena) string {
	if !a.Bounded() {
		return "open"
	}
	return fmt.Sprintf("%gx%g", a.Width, a.Height)
}

// formatTable left-aligns columns, each padded to its widest cell.
func formatTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], len(c))
		}
	}

	var b strings.Builder
	line := func(cells []string) {
		b.WriteString(" ")
		for i, c := range cells {
			fmt.Fprintf(&b, " %-*s", widths[i], c)
		}
		b.WriteString("\n")
	}
	line(header)
	rule := make([]string, len(header))
	for i := range header {
		rule[i] = strings.Repeat("-", len(header[i]))
	}
	line(rule)
	for _, r := range rows {
		line(r)
	}
	return b.String()
}

func runList(cmd *cobra.Command, args []string) {
	if err := checkDifficulty(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadCycle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyCyclePreset(&cfg, config.DifficultyPreset(flagDifficulty))

	rows := modeRows(cfg)
	if len(rows) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Print(formatTable(listHeader, rows))
	fmt.Println()
	fmt.Println("Run 'cycle play <id>' (or 'solo' / 'rivals') to play.")
}
