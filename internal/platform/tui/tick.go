// Package tui runs a cycle game inside a Bubble Tea program.
// Bubble Tea owns the clock; every TickMsg advances the game one fixed step.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyber-cycle/internal/core"
)

// TickMsg carries the wall time at which a simulation tick fired.
type TickMsg time.Time

// tickInterval converts a tick rate into the fixed step between ticks.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next TickMsg one step from now.
func tickCmd(step time.Duration) tea.Cmd {
	return tea.Tick(step, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
