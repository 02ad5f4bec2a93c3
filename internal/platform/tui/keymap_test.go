package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/UnfriendlySpider/minigames/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{runeKey('w'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionBackspace},
		{runeKey('p'), core.ActionPause},
		{runeKey('e'), core.ActionInteract},
		{runeKey('i'), core.ActionInventory},
		{runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(tc.msg)
		if action != tc.action {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), action, tc.action)
		}
		if isQuit {
			t.Errorf("MapKey(%q) should not be a hard quit", tc.msg.String())
		}
	}
}

func TestMapKeyCtrlCQuits(t *testing.T) {
	km := NewKeyMapper()

	action, isQuit := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit {
		t.Error("Ctrl+C should be a hard quit")
	}
	if action != core.ActionQuit {
		t.Errorf("Ctrl+C action = %v, expected ActionQuit", action)
	}
}

func TestMapKeyToFramePassesRunes(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	// Letters map to actions and still arrive as typed runes, so the text
	// adventure sees the same keys the action games interpret as movement.
	km.MapKeyToFrame(runeKey('w'), &frame)
	km.MapKeyToFrame(runeKey('x'), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)

	if !frame.Has(core.ActionUp) {
		t.Error("'w' should set the up action")
	}
	if string(frame.Runes) != "wx " {
		t.Errorf("Typed runes = %q, expected \"wx \"", string(frame.Runes))
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.action)
		}
	}
}
