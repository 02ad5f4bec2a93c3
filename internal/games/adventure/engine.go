package adventure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UnfriendlySpider/minigames/internal/config"
)

// Engine holds the game world and dispatches typed commands against it. It
// reports output through the out sink and state changes through request, so
// it stays independent of the scene layer.
type Engine struct {
	cfg     config.AdventureConfig
	out     func(lines ...string)
	request func(s State)

	player  *Player
	rooms   map[string]*Room
	current *Room

	pendingSlot int // Slot for the next save, set by the save command

	commands map[string]*command
	aliases  map[string]string
}

// command is one dispatchable verb.
type command struct {
	name    string
	aliases []string
	minArgs int
	usage   string
	run     func(e *Engine, args []string)
}

// NewEngine creates an engine with an empty world. Call InitWorld (or Load)
// before executing commands.
func NewEngine(cfg config.AdventureConfig, out func(lines ...string), request func(s State)) *Engine {
	e := &Engine{
		cfg:     cfg,
		out:     out,
		request: request,
	}
	e.registerCommands()
	return e
}

func (e *Engine) registerCommands() {
	e.commands = make(map[string]*command)
	e.aliases = make(map[string]string)

	for _, c := range []*command{
		{name: "go", aliases: []string{"move", "walk", "travel"}, minArgs: 1,
			usage: "go <direction>", run: (*Engine).cmdGo},
		{name: "look", aliases: []string{"l", "observe"}, run: (*Engine).cmdLook},
		{name: "examine", aliases: []string{"inspect", "check"}, minArgs: 1,
			usage: "examine <item>", run: (*Engine).cmdExamine},
		{name: "get", aliases: []string{"take", "grab"}, minArgs: 1,
			usage: "get <item>", run: (*Engine).cmdGet},
		{name: "drop", minArgs: 1, usage: "drop <item>", run: (*Engine).cmdDrop},
		{name: "inventory", aliases: []string{"i", "inv", "items"}, run: (*Engine).cmdInventory},
		{name: "use", aliases: []string{"activate"}, minArgs: 1,
			usage: "use <item>", run: (*Engine).cmdUse},
		{name: "help", aliases: []string{"h", "?", "commands"}, run: (*Engine).cmdHelp},
		{name: "save", aliases: []string{"savegame"}, run: (*Engine).cmdSave},
		{name: "pause", run: (*Engine).cmdPause},
		{name: "menu", run: (*Engine).cmdMenu},
		{name: "quit", aliases: []string{"q", "exit", "bye"}, run: (*Engine).cmdQuit},
	} {
		e.commands[c.name] = c
		for _, a := range c.aliases {
			e.aliases[a] = c.name
		}
	}
}

// InitWorld builds a fresh world and prints the welcome text.
func (e *Engine) InitWorld() {
	e.rooms = make(map[string]*Room)
	for id := range roomDefs {
		e.rooms[id] = NewRoom(id)
	}
	e.player = NewPlayer(e.cfg.StartRoom, e.cfg.StartHealth, e.cfg.MaxInventory)
	e.current = e.rooms[e.cfg.StartRoom]

	e.out(
		"Welcome to the Text Adventure!",
		"Type 'help' for a list of available commands.",
		"",
	)
	e.describeCurrent()
}

// Player returns the current player.
func (e *Engine) Player() *Player {
	return e.player
}

// CurrentRoom returns the room the player is in.
func (e *Engine) CurrentRoom() *Room {
	return e.current
}

// Execute parses one input line and runs the matching command. Bare
// directions ("north", "n") are shortcuts for "go".
func (e *Engine) Execute(line string) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return
	}

	verb := fields[0]
	args := fields[1:]

	// Bare direction shortcut
	if full, ok := directionAliases[verb]; ok {
		verb = full
	}
	if directions[verb] {
		e.cmdGo([]string{verb})
		return
	}

	if canonical, ok := e.aliases[verb]; ok {
		verb = canonical
	}
	cmd, ok := e.commands[verb]
	if !ok {
		e.out("I don't understand that command. Type 'help' for available commands.")
		return
	}
	if len(args) < cmd.minArgs {
		e.out(fmt.Sprintf("Usage: %s", cmd.usage))
		return
	}
	cmd.run(e, args)
}

// describeCurrent prints the room heading and description, then marks the
// room visited so later visits get the short form.
func (e *Engine) describeCurrent() {
	e.out("== " + e.current.Name + " ==")
	e.out(e.current.Describe(e.player.HasLight))
	e.current.Visited = true
}

func (e *Engine) cmdGo(args []string) {
	dir := args[0]
	if full, ok := directionAliases[dir]; ok {
		dir = full
	}
	if !directions[dir] {
		e.out(fmt.Sprintf("'%s' is not a valid direction.", dir))
		return
	}

	nextID := e.current.Exit(dir)
	if nextID == "" {
		e.out("You can't go that way.")
		return
	}
	next := e.rooms[nextID]

	if ok, reason := next.CanEnter(e.player.Inventory); !ok {
		e.out(reason)
		return
	}
	// Having the key in hand opens the lock on the way in
	if next.Locked && !next.Unlocked {
		if key := e.player.FindItem(next.UnlockItem); key != nil && next.Unlock(key) {
			e.out(next.UnlockMsg)
		}
	}

	e.player.MoveTo(nextID)
	e.current = next

	if next.Dark && !next.Lit && e.player.HasLight {
		next.Light()
		if next.EnterLitMsg != "" {
			e.out(next.EnterLitMsg)
		}
	}
	e.describeCurrent()
}

func (e *Engine) cmdLook(args []string) {
	if len(args) == 0 {
		e.describeCurrent()
		return
	}

	target := strings.Join(args, " ")

	// Looking at an exit direction
	dir := target
	if full, ok := directionAliases[dir]; ok {
		dir = full
	}
	if directions[dir] {
		if e.current.Exit(dir) != "" {
			e.out(fmt.Sprintf("To the %s, you see a passage leading to another area.", dir))
		} else {
			e.out(fmt.Sprintf("There's nothing to the %s but solid wall.", dir))
		}
		return
	}

	e.examineTarget(target)
}

func (e *Engine) cmdExamine(args []string) {
	e.examineTarget(strings.Join(args, " "))
}

func (e *Engine) examineTarget(target string) {
	if it := e.current.FindItem(target); it != nil {
		e.out(it.Examine())
		return
	}
	if it := e.player.FindItem(target); it != nil {
		e.out(it.Examine())
		return
	}
	e.out(fmt.Sprintf("You don't see '%s' here.", target))
}

func (e *Engine) cmdGet(args []string) {
	target := strings.Join(args, " ")

	it := e.current.FindItem(target)
	if it == nil {
		e.out("I don't see that item here.")
		return
	}
	if !e.player.Take(it) {
		e.out("Your inventory is full. You need to drop something first.")
		return
	}
	e.current.RemoveItem(it)
	e.out(fmt.Sprintf("You take the %s.", it.Name))
}

func (e *Engine) cmdDrop(args []string) {
	target := strings.Join(args, " ")

	it := e.player.FindItem(target)
	if it == nil {
		e.out("You're not carrying that.")
		return
	}
	e.player.Drop(it)
	e.current.AddItem(it)
	e.out(fmt.Sprintf("You drop the %s.", it.Name))
}

func (e *Engine) cmdInventory(args []string) {
	e.request(StateInventory)
}

func (e *Engine) cmdUse(args []string) {
	target := strings.Join(args, " ")

	it := e.player.FindItem(target)
	if it == nil {
		e.out("You're not carrying that.")
		return
	}

	res, ok := it.Use()
	e.out(res.Message)
	if !ok {
		return
	}

	if res.Heal > 0 {
		gained := e.player.Heal(res.Heal)
		if gained > 0 {
			e.out(fmt.Sprintf("You gain %d health.", gained))
		}
	}
	if res.ProvidesLight {
		e.player.HasLight = true
		if e.current.Dark && !e.current.Lit {
			e.current.Light()
			if e.current.EnterLitMsg != "" {
				e.out(e.current.EnterLitMsg)
			}
			e.describeCurrent()
		}
	}
	if res.Consumed {
		e.player.Drop(it)
	}
}

func (e *Engine) cmdHelp(args []string) {
	e.out(helpText)
}

func (e *Engine) cmdSave(args []string) {
	slot := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > e.cfg.MaxSaveSlots {
			e.out(fmt.Sprintf("Save slots are 1-%d.", e.cfg.MaxSaveSlots))
			return
		}
		slot = n
	}
	e.pendingSlot = slot
	e.request(StateSaving)
}

func (e *Engine) cmdPause(args []string) {
	e.request(StatePaused)
}

func (e *Engine) cmdMenu(args []string) {
	e.request(StateMenu)
}

func (e *Engine) cmdQuit(args []string) {
	e.out("Thanks for playing! Your adventure ends here... for now.")
	e.request(StateQuit)
}
