package core

// RuntimeConfig is passed to games at initialization. Games use it to adapt
// to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState communicates a game's status to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the current run has ended
	Paused   bool // Whether the game is paused
	Done     bool // Whether the game reached its terminal state and wants out
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
