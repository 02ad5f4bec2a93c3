package zelda

import (
	"github.com/UnfriendlySpider/minigames/internal/core"
)

// transitionRequest latches a state requested during input handling until the
// next Update drains it.
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
		return 0, false
	}
	r.armed = false
	return r.target, true
}

// menuScene is the title screen.
type menuScene struct {
	game    *Game
	options []string
	cursor  int
	req     transitionRequest
}

func newMenuScene(g *Game) *menuScene {
	return &menuScene{
		game:    g,
		options: []string{"Enter Building", "Quit"},
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
		if s.cursor == 0 {
			s.req.set(StatePlaying)
		} else {
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
	dst.DrawTextCentered(h/2-4, "T O P - D O W N")
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
	dst.DrawTextCentered(h-2, "wasd/arrows: move  e: interact  i: inventory")
}

// buildingScene is the walled interior. It serves both the playing and
// paused states; when paused, movement stops and an overlay is drawn.
type buildingScene struct {
	game *Game
	req  transitionRequest

	up, down, left, right bool
	interact              bool
	exitTimer             float64
}

func newBuildingScene(g *Game) *buildingScene {
	return &buildingScene{game: g}
}

// Enter rebuilds the room and spawns the player at the entrance. Returning
// from the inventory overlay must not reset the room, so that path is
// excepted.
func (s *buildingScene) Enter() {
	g := s.game
	if prev, ok := g.machine.Previous(); ok && prev == StateInventory && g.room != nil {
		return
	}
	g.room = NewRoom(g.cfg.ScreenW, g.cfg.ScreenH, g.zeldaCfg.Room)
	x, y := g.room.SpawnPoint()
	if g.player == nil {
		g.player = NewPlayer(x, y, g.zeldaCfg.Player.Width, g.zeldaCfg.Player.Height, g.zeldaCfg.Player.Speed)
	} else {
		g.player.SetPosition(x, y)
	}
	s.exitTimer = 0
}

func (s *buildingScene) Exit() {
	s.up, s.down, s.left, s.right = false, false, false, false
	s.interact = false
}

func (s *buildingScene) HandleInput(in core.InputFrame) bool {
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
	case in.Has(core.ActionPause):
		s.req.set(StatePaused)
		return true
	case in.Has(core.ActionInventory):
		s.req.set(StateInventory)
		return true
	case in.Has(core.ActionBack):
		s.req.set(StateMenu)
		return true
	case in.Has(core.ActionQuit):
		s.req.set(StateQuit)
		return true
	}

	s.up = in.Has(core.ActionUp)
	s.down = in.Has(core.ActionDown)
	s.left = in.Has(core.ActionLeft)
	s.right = in.Has(core.ActionRight)
	s.interact = in.Has(core.ActionInteract)
	return s.up || s.down || s.left || s.right || s.interact
}

func (s *buildingScene) Update(dt float64) (State, bool) {
	if next, ok := s.req.take(); ok {
		return next, true
	}
	g := s.game
	if g.machine.IsInState(StatePaused) {
		return 0, false
	}

	g.player.SetDirection(s.up, s.down, s.left, s.right)
	g.player.Update(dt, g.room.Walls)

	// Holding position in the exit area (or pressing interact there) leaves
	// the building back to the menu.
	inExit := g.player.Rect().Intersects(g.room.Exit)
	if inExit {
		s.exitTimer += dt
		if s.interact {
			s.exitTimer = g.zeldaCfg.Room.ExitHoldSeconds
		}
	} else {
		s.exitTimer = 0
	}
	s.interact = false

	if s.exitTimer >= g.zeldaCfg.Room.ExitHoldSeconds {
		g.score++ // Each completed room counts
		return StateMenu, true
	}
	return 0, false
}

func (s *buildingScene) Render(dst *core.Screen) {
	s.game.drawRoom(dst)
	if s.game.machine.IsInState(StatePaused) {
		drawMessageBox(dst, "PAUSED", "p: resume  esc: menu")
	}
}

// inventoryScene is a modal overlay on top of the frozen room.
type inventoryScene struct {
	game *Game
	req  transitionRequest
}

func newInventoryScene(g *Game) *inventoryScene {
	return &inventoryScene{game: g}
}

func (s *inventoryScene) Enter() {}
func (s *inventoryScene) Exit()  {}

func (s *inventoryScene) HandleInput(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionInventory), in.Has(core.ActionBack), in.Has(core.ActionConfirm):
		s.req.set(StatePlaying)
	default:
		return false
	}
	return true
}

func (s *inventoryScene) Update(dt float64) (State, bool) {
	return s.req.take()
}

func (s *inventoryScene) Render(dst *core.Screen) {
	s.game.drawRoom(dst)

	w := dst.Width()
	h := dst.Height()
	boxW := w / 2
	boxH := h / 2
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+2, box.Y+1, "INVENTORY")
	dst.DrawTextColored(box.X+2, box.Y+3, "(empty)", core.ColorGray)
	dst.DrawText(box.X+2, box.Bottom()-2, "i/esc: close")
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
