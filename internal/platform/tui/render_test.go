package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cyber-cycle/internal/core"
)

func TestRowRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.SetColored(1, 0, '▒', core.ColorOrange)
	s.SetColored(2, 0, '▒', core.ColorOrange)
	s.SetColored(3, 0, '►', core.ColorWhite)

	runs := rowRuns(s, 0)
	expected := []colorRun{
		{core.ColorDefault, " "},
		{core.ColorOrange, "▒▒"},
		{core.ColorWhite, "►"},
		{core.ColorDefault, "  "},
	}
	if len(runs) != len(expected) {
		t.Fatalf("runs = %+v, expected %+v", runs, expected)
	}
	for i := range expected {
		if runs[i] != expected[i] {
			t.Errorf("run %d = %+v, expected %+v", i, runs[i], expected[i])
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorBrightCyan)
	s.Set(3, 1, 'z')

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	for _, want := range []string{"ab", "z"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}
