package zelda

import "github.com/UnfriendlySpider/minigames/internal/fsm"

// State enumerates the movement demo's screens.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateInventory
	StateGameOver
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateInventory:
		return "inventory"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Transitions returns the legal state graph. The inventory is a strict
// overlay: it can only return to playing.
func Transitions() fsm.Table[State] {
	return fsm.Table[State]{
		StateMenu:      {StatePlaying, StateQuit},
		StatePlaying:   {StatePaused, StateInventory, StateGameOver, StateMenu, StateQuit},
		StatePaused:    {StatePlaying, StateMenu, StateQuit},
		StateInventory: {StatePlaying},
		StateGameOver:  {StateMenu, StatePlaying},
		StateQuit:      {},
	}
}
