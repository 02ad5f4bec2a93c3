// Package registry provides a global registry for game factories. Games
// register themselves in init() functions, so the platform can discover and
// instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/UnfriendlySpider/minigames/internal/core"
)

// Game is the interface every game in the collection implements. Games
// contain pure logic with no terminal dependencies; the platform handles
// input mapping, timing, and display. Internally each game drives its own
// scene state machine; the platform only sees ticks and GameState.
type Game interface {
	// ID returns a unique identifier (e.g. "flappy", "zelda", "adventure").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or reinitializes the game. Called once before the
	// first tick. The RuntimeConfig provides screen size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the screen buffer.
	// The buffer is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused, done).
	State() core.GameState
}

// Info contains metadata about a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory to the registry, typically from a game's
// init() function. It panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(factories))
	for id := range factories {
		out = append(out, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates a new game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
