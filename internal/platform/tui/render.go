package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cyber-cycle/internal/core"
)

// footerStyle dims the help bar below the arena.
var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightCyan: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// colorRun is a stretch of one row sharing a single colour.
type colorRun struct {
	color core.Color
	text  string
}

// rowRuns splits row y into maximal same-colour runs.
func rowRuns(s *core.Screen, y int) []colorRun {
	var runs []colorRun
	var text strings.Builder
	current := s.GetCell(0, y).Color
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			runs = append(runs, colorRun{current, text.String()})
			text.Reset()
			current = cell.Color
		}
		text.WriteRune(cell.Rune)
	}
	if text.Len() > 0 {
		runs = append(runs, colorRun{current, text.String()})
	}
	return runs
}

// RenderScreen converts a Screen buffer to a styled string, one escape
// sequence per colour run rather than per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range rowRuns(s, y) {
			sb.WriteString(styleFor(run.color).Render(run.text))
		}
	}
	return sb.String()
}
