package adventure

// ItemDef is the static definition of an item type.
type ItemDef struct {
	ID          string
	Name        string
	Description string
	Weight      int
	Value       int
	Usable      bool
	Consumable  bool
	Heal        int // Health restored when consumed
	Weapon      bool
	Damage      int
	Light       bool // Provides light when used
	Keywords    []string
}

// RoomDef is the static definition of a room.
type RoomDef struct {
	ID            string
	Name          string
	Description   string
	LongDesc      string
	Exits         map[string]string // direction -> room ID
	Items         []string
	Dark          bool
	Locked        bool
	UnlockItem    string
	EnterLitMsg   string // Shown when entering the dark room with light
	UnlockMsg     string // Shown when the room is unlocked
}

var itemDefs = map[string]ItemDef{
	"key": {
		ID:          "key",
		Name:        "rusty key",
		Description: "An old, rusty key that looks like it might open something important.",
		Weight:      1,
		Value:       10,
		Usable:      true,
		Keywords:    []string{"key", "rusty", "old"},
	},
	"lamp": {
		ID:          "lamp",
		Name:        "oil lamp",
		Description: "A brass oil lamp that provides light in dark places.",
		Weight:      2,
		Value:       25,
		Usable:      true,
		Light:       true,
		Keywords:    []string{"lamp", "oil", "brass", "light"},
	},
	"book": {
		ID:          "book",
		Name:        "ancient tome",
		Description: "A leather-bound book filled with mysterious symbols and arcane knowledge.",
		Weight:      3,
		Value:       50,
		Usable:      true,
		Keywords:    []string{"book", "tome", "ancient", "leather"},
	},
	"potion": {
		ID:          "potion",
		Name:        "health potion",
		Description: "A small vial containing a red liquid that glows faintly.",
		Weight:      1,
		Value:       30,
		Usable:      true,
		Consumable:  true,
		Heal:        25,
		Keywords:    []string{"potion", "vial", "health", "red"},
	},
	"sword": {
		ID:          "sword",
		Name:        "iron sword",
		Description: "A well-balanced iron sword with a sharp edge.",
		Weight:      5,
		Value:       100,
		Usable:      true,
		Weapon:      true,
		Damage:      15,
		Keywords:    []string{"sword", "iron", "weapon", "blade"},
	},
}

var roomDefs = map[string]RoomDef{
	"start_room": {
		ID:          "start_room",
		Name:        "Starting Chamber",
		Description: "You find yourself in a dimly lit stone chamber. Ancient torches flicker on the walls, casting dancing shadows.",
		LongDesc:    "This appears to be some kind of ancient chamber, carved from solid stone. The walls are adorned with faded murals depicting scenes of adventure and mystery. A few old torches provide flickering light, and you can hear the distant sound of dripping water echoing through unseen passages.",
		Exits:       map[string]string{"north": "kitchen", "east": "library"},
		Items:       []string{"lamp"},
	},
	"kitchen": {
		ID:          "kitchen",
		Name:        "Ancient Kitchen",
		Description: "You are in what appears to be an old kitchen. Cobwebs hang from the ceiling, and dust covers every surface.",
		LongDesc:    "This kitchen hasn't been used in decades, perhaps centuries. Rusty pots and pans hang from hooks on the walls, and a massive stone hearth takes up most of the north wall. A wooden table in the center is covered with a thick layer of dust.",
		Exits:       map[string]string{"south": "start_room", "west": "pantry"},
		Items:       []string{"key", "potion"},
	},
	"library": {
		ID:          "library",
		Name:        "Forgotten Library",
		Description: "Towering bookshelves stretch from floor to ceiling, filled with ancient tomes and scrolls.",
		LongDesc:    "This magnificent library must have once been the pride of whoever built this place. Countless books line the shelves, their leather bindings cracked with age. A reading desk sits in the center, with an ornate chair that looks surprisingly comfortable.",
		Exits:       map[string]string{"west": "start_room", "north": "study"},
		Items:       []string{"book"},
	},
	"pantry": {
		ID:          "pantry",
		Name:        "Storage Pantry",
		Description: "A small storage room with empty shelves lining the walls.",
		LongDesc:    "This cramped pantry shows signs of having once been well-stocked with provisions. Empty barrels and sacks lie scattered about, and the shelves that line the walls are bare except for a few forgotten items.",
		Exits:       map[string]string{"east": "kitchen"},
		Dark:        true,
		EnterLitMsg: "The lamp illuminates dusty shelves and forgotten supplies.",
	},
	"study": {
		ID:          "study",
		Name:        "Scholar's Study",
		Description: "A cozy study with a large desk covered in papers and writing implements.",
		LongDesc:    "This intimate study belongs to someone who clearly valued learning and knowledge. The desk is covered with half-finished manuscripts, quill pens, and bottles of dried ink. Personal touches suggest this was someone's private sanctuary.",
		Exits:       map[string]string{"south": "library"},
		Items:       []string{"sword"},
		Locked:      true,
		UnlockItem:  "key",
		UnlockMsg:   "The key turns with a satisfying click, and the door swings open.",
	},
}

// directionAliases maps shortcuts to canonical directions.
var directionAliases = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
	"u": "up", "d": "down",
}

var directions = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"up": true, "down": true,
}

const helpText = `Available commands:
  movement:  go <direction>, north, south, east, west (or n, s, e, w)
  actions:   look, examine <item>, get <item>, drop <item>, use <item>
  inventory: inventory (or i)
  game:      save [slot], load [slot], pause, menu, quit, help`
