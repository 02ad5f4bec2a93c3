// Package zelda implements a top-down movement demo: a walled building
// interior with smooth 8-direction movement, wall sliding, and a timed door
// exit. The session is driven by a scene state machine (menu, playing,
// paused, inventory, game over, quit).
package zelda

import (
	"fmt"

	"github.com/UnfriendlySpider/minigames/internal/config"
	"github.com/UnfriendlySpider/minigames/internal/core"
	"github.com/UnfriendlySpider/minigames/internal/fsm"
	"github.com/UnfriendlySpider/minigames/internal/registry"
	"github.com/UnfriendlySpider/minigames/internal/scene"
)

const (
	wallChar     = '█'
	exitChar     = '▒'
	entranceChar = '░'
)

// Game implements the top-down movement demo.
type Game struct {
	cfg      core.RuntimeConfig
	zeldaCfg config.ZeldaConfig

	machine *fsm.Machine[State]
	stage   *scene.Stage[State]

	player *Player
	room   *Room
	score  int // Rooms completed
}

// New creates a new movement demo instance.
func New() *Game {
	cfg, _ := config.LoadZelda("")
	return &Game{zeldaCfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "zelda"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Building Explorer"
}

// Reset initializes or restarts the session at the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.score = 0
	g.player = nil

	g.machine = fsm.New(StateMenu, Transitions())
	g.stage = scene.NewStage(g.machine)
	g.stage.Register(StateMenu, newMenuScene(g))

	building := newBuildingScene(g)
	g.stage.Register(StatePlaying, building)
	g.stage.Register(StatePaused, building)

	g.stage.Register(StateInventory, newInventoryScene(g))
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

// State reports the session status to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.machine.IsInState(StateGameOver),
		Paused:   g.machine.IsInState(StatePaused),
		Done:     g.machine.IsInState(StateQuit),
	}
}

// drawRoom renders the walls, door markers, player, and HUD. Shared by the
// building and inventory scenes.
func (g *Game) drawRoom(dst *core.Screen) {
	for _, w := range g.room.Walls {
		dst.DrawRectColored(w, wallChar, core.ColorGray)
	}
	dst.DrawRectColored(g.room.Entrance, entranceChar, core.ColorOrange)
	dst.DrawRectColored(g.room.Exit, exitChar, core.ColorGreen)

	p := g.player
	for dy := 0; dy < p.H; dy++ {
		for dx := 0; dx < p.W; dx++ {
			dst.SetColored(int(p.X)+dx, int(p.Y)+dy, g.playerChar(), core.ColorBrightYellow)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Rooms: %d ", g.score))
}

func (g *Game) playerChar() rune {
	switch g.player.Facing {
	case FacingUp:
		return '▲'
	case FacingLeft:
		return '◀'
	case FacingRight:
		return '▶'
	default:
		return '▼'
	}
}

// Register the game with the registry
func init() {
	registry.Register("zelda", func() registry.Game {
		return New()
	})
}
