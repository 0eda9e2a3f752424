package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cyber-cycle/internal/core"
)

// CycleSelection holds the user's choice from the pre-game menu.
type CycleSelection struct {
	GameID     string // Registry ID: "cycle" or "cycle_solo"
	Difficulty string // Preset name, empty for the config's own curve
}

type menuOption struct {
	label string
	value string
}

var cycleModes = []menuOption{
	{"Arena with rivals", "cycle"},
	{"Solo run", "cycle_solo"},
}

var cycleDifficulties = []menuOption{
	{"Config default", ""},
	{"Easy", "easy"},
	{"Normal", "normal"},
	{"Hard", "hard"},
	{"Fixed (no progression)", "fixed"},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// CycleMenuModel lets users choose a mode and then a difficulty preset.
type CycleMenuModel struct {
	cursor       int
	inDifficulty bool
	width        int
	height       int
	keys         MenuKeyMap
	help         help.Model
	selection    CycleSelection
	choosing     bool
	quitting     bool
}

// NewCycleMenuModel creates a new mode selection model.
func NewCycleMenuModel(width, height int) CycleMenuModel {
	return CycleMenuModel{
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		choosing: true,
	}
}

// Init initializes the model.
func (m CycleMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CycleMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keys.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m CycleMenuModel) options() []menuOption {
	if m.inDifficulty {
		return cycleDifficulties
	}
	return cycleModes
}

func (m CycleMenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options())-1 {
			m.cursor++
		}
	case MenuActionSelect:
		choice := m.options()[m.cursor].value
		if !m.inDifficulty {
			m.selection.GameID = choice
			m.inDifficulty = true
			m.cursor = 0
			return m, nil
		}
		m.selection.Difficulty = choice
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		if m.inDifficulty {
			m.inDifficulty = false
			m.cursor = 0
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the current selection step.
func (m CycleMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C Y B E R   C Y C L E"), m.width))
	b.WriteString("\n\n")
	prompt := "Select game mode:"
	if m.inDifficulty {
		prompt = "Select difficulty:"
	}
	b.WriteString(centerText(prompt, m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options() {
		line := "  " + opt.label
		if i == m.cursor {
			line = cursorStyle.Render("> " + opt.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m CycleMenuModel) Selected() *CycleSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m CycleMenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunCycleMenu runs the pre-game menu and returns the selection, or nil
// if the user backed out.
func RunCycleMenu(cfg core.RuntimeConfig) (*CycleSelection, error) {
	model := NewCycleMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(CycleMenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
