package core

// Action is a semantic game action, abstracted from physical key presses.
// Games work with high-level intents rather than raw terminal input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionJump             // Space - flap/jump
	ActionConfirm          // Enter - confirm selection
	ActionBack             // Escape - back out of a submenu
	ActionPause            // P - pause/unpause
	ActionRestart          // R - restart after game over
	ActionInteract         // E - interact (doors, items)
	ActionInventory        // I - open/close inventory
	ActionBackspace        // Backspace - line editing in text games
	ActionQuit             // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionInteract:
		return "Interact"
	case ActionInventory:
		return "Inventory"
	case ActionBackspace:
		return "Backspace"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame carries everything the player did during one simulation tick:
// the set of triggered actions plus any printable runes typed. Typed runes
// exist for the text adventure, which maintains its own input line.
type InputFrame struct {
	Actions map[Action]bool
	Runes   []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends printable runes to the frame.
func (f *InputFrame) Type(rs ...rune) {
	f.Runes = append(f.Runes, rs...)
}

// Clear resets all actions and typed runes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
}
