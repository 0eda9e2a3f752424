package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyber-cycle/internal/config"
	"github.com/vovakirdan/cyber-cycle/internal/core"
	"github.com/vovakirdan/cyber-cycle/internal/games/cycle"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultCycleConfig()
	cfg.Rivals.Count = 0
	g := cycle.NewWithConfig(cycle.ModeSolo, cfg)
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m
}

func TestModelKeyHeldForOneTick(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if !m.inputFrame.Has(core.ActionDown) {
		t.Fatal("key press should be queued for the next tick")
	}

	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.inputFrame.Has(core.ActionDown) {
		t.Error("input should be cleared after the tick")
	}
	if p := m.game.(*cycle.Game).Player(); p == nil || p.Direction != cycle.DirDown {
		t.Error("tick should have steered the player down")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(Model).quitting {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m := newTestModel(t)
	for range 5 {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if m.screen.Width() != 100 || m.screen.Height() != 30-footerHeight {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 30-footerHeight)
	}
	if m.game.(*cycle.Game).Snapshot().Tick != 5 {
		t.Error("resize should not restart the round")
	}
	if !strings.Contains(m.View(), "quit") {
		t.Error("help footer missing")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.expected {
			t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}

func TestModelTicksAtGameRate(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		cfgRate   int
		expected  time.Duration
	}{
		{"override accepted", 30, 60, time.Second / 30},
		{"override rejected by margin", 400, 60, time.Second / 60},
		{"no override keeps config", 0, 30, time.Second / 30},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultCycleConfig()
			cfg.Rivals.Count = 0
			cfg.Physics.TickRate = tc.cfgRate
			g := cycle.NewWithConfig(cycle.ModeSolo, cfg)
			m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tc.requested, Seed: 1}, nil)
			m.Init()

			if got := m.tickStep(); got != tc.expected {
				t.Errorf("tick step = %v, expected %v", got, tc.expected)
			}
			if got := g.TimeStep(); got != m.tickStep() {
				t.Errorf("game step %v and clock step %v disagree", got, m.tickStep())
			}
		})
	}
}
