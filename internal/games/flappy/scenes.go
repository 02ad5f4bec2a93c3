package flappy

import (
	"fmt"

	"github.com/UnfriendlySpider/minigames/internal/core"
)

// transitionRequest latches a state requested during input handling until the
// next Update drains it. Scenes report transitions from Update, not from
// HandleInput, so the machine sees at most one request per tick.
type transitionRequest struct {
	target State
	armed  bool
}

func (r *transitionRequest) set(s State) {
	r.target = s
	r.armed = true
}

func (r *transitionRequest) take() (State, bool) {
	if !r.armed {
		var zero State
		return zero, false
	}
	r.armed = false
	return r.target, true
}

// menuScene is the title screen with a cursor-driven option list.
type menuScene struct {
	game    *Game
	options []string
	cursor  int
	req     transitionRequest
}

func newMenuScene(g *Game) *menuScene {
	return &menuScene{
		game:    g,
		options: []string{"Play", "Settings", "Quit"},
	}
}

func (s *menuScene) Enter() { s.cursor = 0 }
func (s *menuScene) Exit()  {}

func (s *menuScene) HandleInput(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionUp):
		if s.cursor > 0 {
			s.cursor--
		}
	case in.Has(core.ActionDown):
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case in.Has(core.ActionConfirm):
		switch s.cursor {
		case 0:
			s.req.set(StatePlaying)
		case 1:
			s.req.set(StateSettings)
		case 2:
			s.req.set(StateQuit)
		}
	case in.Has(core.ActionQuit):
		s.req.set(StateQuit)
	default:
		return false
	}
	return true
}

func (s *menuScene) Update(dt float64) (State, bool) {
	return s.req.take()
}

func (s *menuScene) Render(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-4, "F L A P P Y")
	for i, opt := range s.options {
		line := "  " + opt
		if i == s.cursor {
			line = "> " + opt
		}
		x := (dst.Width() - len(line)) / 2
		if i == s.cursor {
			dst.DrawTextColored(x, h/2-1+i, line, core.ColorYellow)
		} else {
			dst.DrawText(x, h/2-1+i, line)
		}
	}
	dst.DrawTextCentered(h-2, "arrows: move  enter: select")
}

// playScene runs the simulation. It serves both the playing and paused
// states; when the machine sits in paused, physics stop and an overlay is
// drawn, but the world is kept intact.
type playScene struct {
	game *Game
	req  transitionRequest
}

func newPlayScene(g *Game) *playScene {
	return &playScene{game: g}
}

// Enter starts a fresh run. Entering from the pause state never happens:
// playing and paused share this scene, so the stage does not re-enter it.
func (s *playScene) Enter() {
	s.game.resetRun()
}

func (s *playScene) Exit() {}

func (s *playScene) HandleInput(in core.InputFrame) bool {
	g := s.game
	if g.machine.IsInState(StatePaused) {
		switch {
		case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
			s.req.set(StatePlaying)
		case in.Has(core.ActionBack):
			s.req.set(StateMenu)
		case in.Has(core.ActionQuit):
			s.req.set(StateQuit)
		default:
			return false
		}
		return true
	}

	switch {
	case in.Has(core.ActionJump), in.Has(core.ActionUp):
		g.bird.Flap()
	case in.Has(core.ActionPause):
		s.req.set(StatePaused)
	case in.Has(core.ActionBack):
		s.req.set(StateMenu)
	case in.Has(core.ActionQuit):
		s.req.set(StateQuit)
	default:
		return false
	}
	return true
}

func (s *playScene) Update(dt float64) (State, bool) {
	if next, ok := s.req.take(); ok {
		return next, true
	}
	g := s.game
	if g.machine.IsInState(StatePaused) {
		return 0, false
	}

	g.bird.Update(dt)
	g.score += g.pipes.Update(dt, g.bird.X+g.bird.Radius)

	groundY := g.cfg.ScreenH - 1

	// Ceiling stops the bird, ground and pipes end the run.
	if g.bird.Y-float64(g.bird.Radius) < 0 {
		g.bird.Y = float64(g.bird.Radius)
		g.bird.Vel = 0
	}
	if g.bird.Y+float64(g.bird.Radius) >= float64(groundY) {
		g.bird.Y = float64(groundY - g.bird.Radius)
		return StateGameOver, true
	}
	if g.pipes.Collides(g.bird.Hitbox(), groundY) {
		return StateGameOver, true
	}
	return 0, false
}

func (s *playScene) Render(dst *core.Screen) {
	s.game.drawWorld(dst)
	if s.game.machine.IsInState(StatePaused) {
		drawMessageBox(dst, "PAUSED", "p: resume  esc: menu")
	}
}

// gameOverScene shows the final run over the frozen world.
type gameOverScene struct {
	game *Game
	req  transitionRequest
}

func newGameOverScene(g *Game) *gameOverScene {
	return &gameOverScene{game: g}
}

func (s *gameOverScene) Enter() {}
func (s *gameOverScene) Exit()  {}

func (s *gameOverScene) HandleInput(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
		s.req.set(StatePlaying)
	case in.Has(core.ActionBack):
		s.req.set(StateMenu)
	case in.Has(core.ActionQuit):
		s.req.set(StateQuit)
	default:
		return false
	}
	return true
}

func (s *gameOverScene) Update(dt float64) (State, bool) {
	return s.req.take()
}

func (s *gameOverScene) Render(dst *core.Screen) {
	s.game.drawWorld(dst)
	drawMessageBox(dst, "GAME OVER",
		fmt.Sprintf("score: %d  |  r: retry  esc: menu", s.game.score))
}

// settingsScene cycles through difficulty presets.
type settingsScene struct {
	game *Game
	req  transitionRequest
}

func newSettingsScene(g *Game) *settingsScene {
	return &settingsScene{game: g}
}

func (s *settingsScene) Enter() {}
func (s *settingsScene) Exit()  {}

func (s *settingsScene) HandleInput(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionLeft), in.Has(core.ActionUp):
		s.game.difficulty = s.game.difficulty.prev()
	case in.Has(core.ActionRight), in.Has(core.ActionDown):
		s.game.difficulty = s.game.difficulty.next()
	case in.Has(core.ActionConfirm), in.Has(core.ActionBack):
		s.req.set(StateMenu)
	default:
		return false
	}
	return true
}

func (s *settingsScene) Update(dt float64) (State, bool) {
	return s.req.take()
}

func (s *settingsScene) Render(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-3, "SETTINGS")
	line := fmt.Sprintf("difficulty: < %s >", s.game.difficulty)
	x := (dst.Width() - len(line)) / 2
	dst.DrawTextColored(x, h/2-1, line, core.ColorCyan)
	dst.DrawTextCentered(h-2, "arrows: change  enter: back")
}

// drawMessageBox draws a bordered two-line message centered on the screen.
func drawMessageBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
