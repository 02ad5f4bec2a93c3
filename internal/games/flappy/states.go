package flappy

import "github.com/UnfriendlySpider/minigames/internal/fsm"

// State enumerates the flappy session's screens.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateSettings
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
	case StateGameOver:
		return "game_over"
	case StateSettings:
		return "settings"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Transitions returns the legal state graph for a flappy session. Quit is a
// sink: once reached, the session is over.
func Transitions() fsm.Table[State] {
	return fsm.Table[State]{
		StateMenu:     {StatePlaying, StateSettings, StateQuit},
		StatePlaying:  {StatePaused, StateGameOver, StateMenu, StateQuit},
		StatePaused:   {StatePlaying, StateMenu, StateQuit},
		StateGameOver: {StateMenu, StatePlaying, StateQuit},
		StateSettings: {StateMenu},
		StateQuit:     {},
	}
}
