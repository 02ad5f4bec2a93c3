package adventure

import (
	"strconv"
	"strings"

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

// lineEditor accumulates typed runes into an input line. Enter submits,
// backspace deletes.
type lineEditor struct {
	buf []rune
}

// Feed consumes one input frame and reports a submitted line, if any.
func (ed *lineEditor) Feed(in core.InputFrame) (string, bool) {
	for _, r := range in.Runes {
		if r >= ' ' {
			ed.buf = append(ed.buf, r)
		}
	}
	if in.Has(core.ActionBackspace) && len(ed.buf) > 0 {
		ed.buf = ed.buf[:len(ed.buf)-1]
	}
	if in.Has(core.ActionConfirm) {
		line := strings.TrimSpace(string(ed.buf))
		ed.buf = ed.buf[:0]
		return line, true
	}
	return "", false
}

// Line returns the current unsubmitted input.
func (ed *lineEditor) Line() string {
	return string(ed.buf)
}

// menuScene is the typed main menu: new game, load, help, quit.
type menuScene struct {
	game   *Game
	editor lineEditor
	req    transitionRequest
}

func newMenuScene(g *Game) *menuScene {
	return &menuScene{game: g}
}

func (s *menuScene) Enter() {
	s.game.print(
		"=== Text Adventure ===",
		"",
		"  1. Start New Game",
		"  2. Load Game       (load [slot])",
		"  3. Help",
		"  4. Quit",
		"",
		"Type a number or command name.",
	)
}

func (s *menuScene) Exit() {}

func (s *menuScene) HandleInput(in core.InputFrame) bool {
	line, ok := s.editor.Feed(in)
	if !ok {
		return len(in.Runes) > 0 || in.Has(core.ActionBackspace)
	}
	if line == "" {
		return true
	}
	s.game.print("> " + line)
	s.handleLine(strings.ToLower(line))
	return true
}

func (s *menuScene) handleLine(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "1", "new", "start":
		s.req.set(StatePlaying)
	case "2", "load":
		slot := 1
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > s.game.advCfg.MaxSaveSlots {
				s.game.print("Save slots are 1-" + strconv.Itoa(s.game.advCfg.MaxSaveSlots) + ".")
				return
			}
			slot = n
		}
		s.game.pendingSlot = slot
		s.req.set(StateLoading)
	case "3", "help", "h", "?":
		s.game.print(helpText)
	case "4", "quit", "q", "exit":
		s.game.print("Thanks for playing! Your adventure ends here... for now.")
		s.req.set(StateQuit)
	default:
		s.game.print("Invalid option. Please choose 1-4 or type a command name.")
	}
}

func (s *menuScene) Update(dt float64) (State, bool) {
	return s.req.take()
}

func (s *menuScene) Render(dst *core.Screen) {
	s.game.drawConsole(dst, s.editor.Line(), "")
}

// consoleScene is the in-game terminal. It serves the playing, inventory,
// paused, saving, and loading states: the transient saving/loading states
// hand control straight back from Update, and paused/inventory change only
// how typed lines are interpreted.
type consoleScene struct {
	game   *Game
	editor lineEditor
	req    transitionRequest
}

func newConsoleScene(g *Game) *consoleScene {
	return &consoleScene{game: g}
}

func (s *consoleScene) Enter() {}
func (s *consoleScene) Exit()  {}

func (s *consoleScene) HandleInput(in core.InputFrame) bool {
	g := s.game
	if g.machine.IsInState(StateSaving) || g.machine.IsInState(StateLoading) {
		return false
	}

	line, ok := s.editor.Feed(in)
	if !ok {
		return len(in.Runes) > 0 || in.Has(core.ActionBackspace)
	}

	switch {
	case g.machine.IsInState(StateInventory):
		// Any entry closes the inventory
		s.req.set(StatePlaying)
	case g.machine.IsInState(StatePaused):
		s.handlePausedLine(strings.ToLower(line))
	default:
		if line != "" {
			g.print("> " + line)
			g.engine.Execute(line)
		}
	}
	return true
}

func (s *consoleScene) handlePausedLine(line string) {
	switch line {
	case "", "resume", "continue":
		s.req.set(StatePlaying)
	case "menu":
		s.req.set(StateMenu)
	case "quit", "q":
		s.req.set(StateQuit)
	default:
		s.game.print("Paused. Type 'resume', 'menu', or 'quit'.")
	}
}

func (s *consoleScene) Update(dt float64) (State, bool) {
	if next, ok := s.req.take(); ok {
		return next, ok
	}

	g := s.game
	switch {
	case g.machine.IsInState(StateSaving):
		// The save ran in the enter callback; hand control back
		return StatePlaying, true
	case g.machine.IsInState(StateLoading):
		if g.loadErr != nil {
			g.print("Error loading game: " + g.loadErr.Error())
			g.loadErr = nil
			// Error recovery: force the machine back to the menu
			g.machine.Reset(StateMenu)
			return 0, false
		}
		return StatePlaying, true
	}
	return 0, false
}

func (s *consoleScene) Render(dst *core.Screen) {
	banner := ""
	switch {
	case s.game.machine.IsInState(StatePaused):
		banner = "[ PAUSED - resume / menu / quit ]"
	case s.game.machine.IsInState(StateInventory):
		banner = "[ INVENTORY - press enter to close ]"
	}
	s.game.drawConsole(dst, s.editor.Line(), banner)
}
