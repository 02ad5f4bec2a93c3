// Package adventure implements a text adventure: five rooms, portable items,
// a dark pantry and a locked study, typed commands, and JSON save slots. It
// plays inside the shared tick-based platform by keeping a transcript and an
// input line, both rendered into the screen buffer.
package adventure

import (
	"fmt"
	"strings"

	"github.com/UnfriendlySpider/minigames/internal/config"
	"github.com/UnfriendlySpider/minigames/internal/core"
	"github.com/UnfriendlySpider/minigames/internal/fsm"
	"github.com/UnfriendlySpider/minigames/internal/registry"
	"github.com/UnfriendlySpider/minigames/internal/scene"
)

// maxTranscript bounds the kept output history.
const maxTranscript = 200

// Game implements the text adventure.
type Game struct {
	cfg    core.RuntimeConfig
	advCfg config.AdventureConfig

	machine *fsm.Machine[State]
	stage   *scene.Stage[State]
	console *consoleScene
	engine  *Engine

	transcript  []string
	worldReady  bool
	pendingSlot int // Slot for the next load, set from the menu
	loadErr     error
}

// New creates a new text adventure instance.
func New() *Game {
	cfg, _ := config.LoadAdventure("")
	return &Game{advCfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "adventure"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Text Adventure"
}

// Reset initializes or restarts the session at the menu. The world itself is
// built lazily when play begins, by the playing state's enter callback.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.transcript = nil
	g.worldReady = false
	g.engine = nil
	g.loadErr = nil

	g.machine = fsm.New(StateMenu, Transitions())
	g.stage = scene.NewStage(g.machine)
	g.console = newConsoleScene(g)

	// World and save-file I/O runs in enter callbacks, registered before the
	// scenes so it completes before scene activation.
	g.machine.OnEnter(StatePlaying, g.onEnterPlaying)
	g.machine.OnEnter(StateInventory, g.onEnterInventory)
	g.machine.OnEnter(StateSaving, g.onEnterSaving)
	g.machine.OnEnter(StateLoading, g.onEnterLoading)

	g.stage.Register(StateMenu, newMenuScene(g))
	for _, st := range []State{StatePlaying, StateInventory, StatePaused, StateSaving, StateLoading} {
		g.stage.Register(st, g.console)
	}
}

// ensureEngine creates the command engine on first use.
func (g *Game) ensureEngine() *Engine {
	if g.engine == nil {
		g.engine = NewEngine(g.advCfg, g.print, func(s State) { g.console.req.set(s) })
	}
	return g.engine
}

func (g *Game) onEnterPlaying() {
	e := g.ensureEngine()
	if !g.worldReady {
		e.InitWorld()
		g.worldReady = true
	}
}

func (g *Game) onEnterInventory() {
	g.print(g.engine.Player().InventoryLines()...)
}

func (g *Game) onEnterSaving() {
	slot := g.engine.pendingSlot
	if err := g.engine.Save(slot); err != nil {
		g.print("Error saving game: " + err.Error())
		return
	}
	g.print(fmt.Sprintf("Game saved to slot %d.", slot))
}

func (g *Game) onEnterLoading() {
	e := g.ensureEngine()
	if err := e.Load(g.pendingSlot); err != nil {
		g.loadErr = err
		return
	}
	g.worldReady = true
	g.print(fmt.Sprintf("Game loaded from slot %d.", g.pendingSlot), "")
	e.describeCurrent()
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.machine.IsInState(StateQuit) {
		return core.StepResult{State: g.State()}
	}

	g.stage.HandleInput(in)
	g.stage.Update(1.0 / float64(g.cfg.TickRate))

	return core.StepResult{State: g.State()}
}

// Render draws the active scene.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.stage.Render(dst)
}

// State reports the session status. The score is the number of distinct
// rooms visited.
func (g *Game) State() core.GameState {
	score := 0
	if g.engine != nil && g.engine.Player() != nil {
		score = len(g.engine.Player().RoomsVisited)
	}
	return core.GameState{
		Score:  score,
		Paused: g.machine.IsInState(StatePaused),
		Done:   g.machine.IsInState(StateQuit),
	}
}

// print appends lines to the transcript, wrapping to the screen width and
// trimming old history.
func (g *Game) print(lines ...string) {
	width := g.cfg.ScreenW - 2
	if width < 20 {
		width = 20
	}
	for _, line := range lines {
		for _, part := range strings.Split(line, "\n") {
			g.transcript = append(g.transcript, wrap(part, width)...)
		}
	}
	if len(g.transcript) > maxTranscript {
		g.transcript = g.transcript[len(g.transcript)-maxTranscript:]
	}
}

// wrap breaks a line into width-sized pieces on word boundaries.
func wrap(line string, width int) []string {
	if len(line) <= width {
		return []string{line}
	}
	var out []string
	words := strings.Fields(line)
	cur := ""
	for _, w := range words {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= width:
			cur += " " + w
		default:
			out = append(out, cur)
			cur = w
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

// drawConsole renders the transcript tail, an optional mode banner, and the
// prompt with the current input line.
func (g *Game) drawConsole(dst *core.Screen, input, banner string) {
	h := dst.Height()

	visible := h - 2
	if banner != "" {
		visible--
	}
	start := 0
	if len(g.transcript) > visible {
		start = len(g.transcript) - visible
	}
	y := 0
	for _, line := range g.transcript[start:] {
		dst.DrawText(1, y, line)
		y++
	}

	if banner != "" {
		dst.DrawTextColored(1, h-2, banner, core.ColorCyan)
	}

	prompt := g.advCfg.Prompt + input
	dst.DrawTextColored(1, h-1, prompt, core.ColorBrightWhite)
	dst.SetColored(1+len(prompt), h-1, '█', core.ColorBrightWhite)
}

// Register the game with the registry
func init() {
	registry.Register("adventure", func() registry.Game {
		return New()
	})
}
