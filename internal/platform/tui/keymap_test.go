package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyber-cycle/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"wasd a", runeKey('a'), core.ActionLeft, false},
		{"wasd d", runeKey('d'), core.ActionRight, false},
		{"wasd w", runeKey('w'), core.ActionUp, false},
		{"wasd s", runeKey('s'), core.ActionDown, false},
		{"vim h", runeKey('h'), core.ActionLeft, false},
		{"vim l", runeKey('l'), core.ActionRight, false},
		{"vim k", runeKey('k'), core.ActionUp, false},
		{"vim j", runeKey('j'), core.ActionDown, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"escape pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyDown}, &frame)
	km.MapKeyToFrame(runeKey('a'), &frame)
	if !frame.Has(core.ActionDown) || !frame.Has(core.ActionLeft) {
		t.Error("frame should hold every key pressed since the last tick")
	}
	if km.MapKeyToFrame(runeKey('x'), &frame) {
		t.Error("unbound key reported as quit")
	}
}

func TestMenuKeys(t *testing.T) {
	km := DefaultMenuKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestCycleMenuFlow(t *testing.T) {
	var m tea.Model = NewCycleMenuModel(80, 24)

	press := func(msg tea.KeyMsg) {
		m, _ = m.Update(msg)
	}
	press(tea.KeyMsg{Type: tea.KeyDown})  // solo
	press(tea.KeyMsg{Type: tea.KeyEnter}) // difficulty step
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyDown}) // hard
	press(tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.(CycleMenuModel).Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.GameID != "cycle_solo" || sel.Difficulty != "hard" {
		t.Errorf("selection = %+v, expected solo/hard", sel)
	}
}

func TestCycleMenuBack(t *testing.T) {
	var m tea.Model = NewCycleMenuModel(80, 24)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if mm := m.(CycleMenuModel); mm.inDifficulty || mm.IsQuitting() {
		t.Fatal("esc on the difficulty step should return to mode selection")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(CycleMenuModel).IsQuitting() {
		t.Error("esc on the first step should leave the menu")
	}
}
