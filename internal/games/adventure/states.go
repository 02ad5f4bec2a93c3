package adventure

import "github.com/UnfriendlySpider/minigames/internal/fsm"

// State enumerates the adventure session's modes. Saving and Loading are
// transient: their enter callbacks perform the save-file I/O and their scenes
// immediately hand control back.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateInventory
	StatePaused
	StateSaving
	StateLoading
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateInventory:
		return "inventory"
	case StatePaused:
		return "paused"
	case StateSaving:
		return "saving"
	case StateLoading:
		return "loading"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Transitions returns the legal state graph. Loading is reachable from the
// menu only; saving from play only.
func Transitions() fsm.Table[State] {
	return fsm.Table[State]{
		StateMenu:      {StatePlaying, StateLoading, StateQuit},
		StatePlaying:   {StateInventory, StatePaused, StateSaving, StateMenu, StateQuit},
		StateInventory: {StatePlaying},
		StatePaused:    {StatePlaying, StateMenu, StateQuit},
		StateSaving:    {StatePlaying},
		StateLoading:   {StatePlaying, StateMenu},
		StateQuit:      {},
	}
}
