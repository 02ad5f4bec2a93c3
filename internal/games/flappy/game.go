// Package flappy implements a Flappy Bird-style game: a bird under gravity
// must flap through gaps in scrolling pipes. The session is driven by a scene
// state machine (menu, playing, paused, game over, settings, quit).
package flappy

import (
	"fmt"

	"github.com/UnfriendlySpider/minigames/internal/config"
	"github.com/UnfriendlySpider/minigames/internal/core"
	"github.com/UnfriendlySpider/minigames/internal/fsm"
	"github.com/UnfriendlySpider/minigames/internal/registry"
	"github.com/UnfriendlySpider/minigames/internal/scene"
)

// Visual characters for rendering
const (
	birdChar      = '●'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

// Difficulty selects a preset that scales pipe speed and gap size.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// String returns the preset name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

func (d Difficulty) next() Difficulty {
	if d >= DifficultyHard {
		return DifficultyEasy
	}
	return d + 1
}

func (d Difficulty) prev() Difficulty {
	if d <= DifficultyEasy {
		return DifficultyHard
	}
	return d - 1
}

func (d Difficulty) speedScale() float64 {
	switch d {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

func (d Difficulty) gapDelta() int {
	switch d {
	case DifficultyEasy:
		return 2
	case DifficultyHard:
		return -2
	default:
		return 0
	}
}

// Game implements the Flappy Bird game.
type Game struct {
	cfg     core.RuntimeConfig
	flapCfg config.FlappyConfig

	machine *fsm.Machine[State]
	stage   *scene.Stage[State]

	bird       *Bird
	pipes      *PipeField
	score      int
	difficulty Difficulty
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	cfg, _ := config.LoadFlappy("")
	return &Game{
		flapCfg:    cfg,
		difficulty: DifficultyNormal,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game session at the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.score = 0

	g.machine = fsm.New(StateMenu, Transitions())
	g.stage = scene.NewStage(g.machine)
	g.stage.Register(StateMenu, newMenuScene(g))

	play := newPlayScene(g)
	g.stage.Register(StatePlaying, play)
	g.stage.Register(StatePaused, play)

	g.stage.Register(StateGameOver, newGameOverScene(g))
	g.stage.Register(StateSettings, newSettingsScene(g))
}

// resetRun rebuilds the world for a fresh run. Called by the play scene on
// entry.
func (g *Game) resetRun() {
	g.score = 0
	g.bird = NewBird(g.flapCfg, g.cfg.ScreenH)
	if g.pipes == nil {
		g.pipes = NewPipeField(g.cfg.Seed, g.cfg.ScreenW, g.cfg.ScreenH, g.flapCfg)
	} else {
		g.pipes.Reset(g.cfg.Seed)
	}
	g.pipes.SetDifficulty(g.difficulty.speedScale(), g.difficulty.gapDelta())
}

// Step advances the session by one tick: input to the active scene, then a
// fixed-dt update that may move the state machine.
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

// drawWorld renders the ground, pipes, bird, and HUD shared by the play and
// game over scenes.
func (g *Game) drawWorld(dst *core.Screen) {
	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), groundChar)

	width := g.flapCfg.Pipes.Width
	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, p, width, groundY)
	}

	b := g.bird
	dst.SetColored(b.X, int(b.Y), birdChar, core.ColorYellow)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
}

// drawPipe renders one pipe pair with caps at the gap edges.
func (g *Game) drawPipe(dst *core.Screen, p Pipe, width, groundY int) {
	px := int(p.X)

	for y := 0; y < p.GapY; y++ {
		for x := 0; x < width; x++ {
			dst.SetColored(px+x, y, pipeChar, core.ColorGreen)
		}
	}
	if p.GapY > 0 {
		for x := 0; x < width; x++ {
			dst.SetColored(px+x, p.GapY-1, pipeCapTop, core.ColorGreen)
		}
	}

	bottomY := p.GapY + p.GapHeight
	for y := bottomY; y < groundY; y++ {
		for x := 0; x < width; x++ {
			dst.SetColored(px+x, y, pipeChar, core.ColorGreen)
		}
	}
	if bottomY < groundY {
		for x := 0; x < width; x++ {
			dst.SetColored(px+x, bottomY, pipeCapBottom, core.ColorGreen)
		}
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
