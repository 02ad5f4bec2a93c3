package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/UnfriendlySpider/minigames/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Returns the action (may be
// ActionNone) and whether it's a hard quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "backspace":
		return core.ActionBackspace, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "e":
		return core.ActionInteract, false
	case "i":
		return core.ActionInventory, false
	case "q":
		return core.ActionQuit, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message. Printable
// runes are always passed through alongside the mapped action so that text
// games can maintain their own input line while action games see the same
// keys as semantic intents. Returns true if the key was a hard quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	switch {
	case msg.Type == tea.KeyRunes:
		frame.Type(msg.Runes...)
	case msg.Type == tea.KeySpace:
		frame.Type(' ')
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
