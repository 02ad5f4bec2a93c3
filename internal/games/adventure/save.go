package adventure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// saveData is the JSON save-file layout: the player plus the dynamic state
// of every room. Static definitions are rebuilt from the data tables.
type saveData struct {
	Version     int                 `json:"version"`
	SavedAt     time.Time           `json:"saved_at"`
	CurrentRoom string              `json:"current_room"`
	Player      playerSave          `json:"player"`
	Rooms       map[string]roomSave `json:"rooms"`
}

type playerSave struct {
	Health       int      `json:"health"`
	MaxHealth    int      `json:"max_health"`
	HasLight     bool     `json:"has_light"`
	Inventory    []string `json:"inventory"`
	RoomsVisited []string `json:"rooms_visited"`
	ActionsTaken int      `json:"actions_taken"`
}

type roomSave struct {
	Items    []string `json:"items"`
	Visited  bool     `json:"visited"`
	Lit      bool     `json:"lit"`
	Unlocked bool     `json:"unlocked"`
}

const saveVersion = 1

// savePath returns the file path for a slot.
func (e *Engine) savePath(slot int) string {
	return filepath.Join(e.cfg.SaveDir, fmt.Sprintf("slot_%d.json", slot))
}

// Save writes the current world state to the given slot.
func (e *Engine) Save(slot int) error {
	if e.player == nil {
		return fmt.Errorf("adventure: no game in progress")
	}

	data := saveData{
		Version:     saveVersion,
		SavedAt:     time.Now(),
		CurrentRoom: e.player.CurrentRoom,
		Player: playerSave{
			Health:       e.player.Health,
			MaxHealth:    e.player.MaxHealth,
			HasLight:     e.player.HasLight,
			Inventory:    itemIDs(e.player.Inventory),
			RoomsVisited: keys(e.player.RoomsVisited),
			ActionsTaken: e.player.ActionsTaken,
		},
		Rooms: make(map[string]roomSave, len(e.rooms)),
	}
	for id, r := range e.rooms {
		data.Rooms[id] = roomSave{
			Items:    itemIDs(r.Items),
			Visited:  r.Visited,
			Lit:      r.Lit,
			Unlocked: r.Unlocked,
		}
	}

	if err := os.MkdirAll(e.cfg.SaveDir, 0o755); err != nil {
		return fmt.Errorf("adventure: cannot create save directory: %w", err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("adventure: cannot encode save: %w", err)
	}
	if err := os.WriteFile(e.savePath(slot), raw, 0o644); err != nil {
		return fmt.Errorf("adventure: cannot write save: %w", err)
	}
	return nil
}

// Load replaces the world with the state stored in the given slot. On error
// the engine's world is left untouched.
func (e *Engine) Load(slot int) error {
	raw, err := os.ReadFile(e.savePath(slot))
	if err != nil {
		return fmt.Errorf("adventure: cannot read save slot %d: %w", slot, err)
	}
	var data saveData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("adventure: corrupt save slot %d: %w", slot, err)
	}
	if data.Version != saveVersion {
		return fmt.Errorf("adventure: unsupported save version %d", data.Version)
	}
	if _, ok := roomDefs[data.CurrentRoom]; !ok {
		return fmt.Errorf("adventure: save references unknown room %q", data.CurrentRoom)
	}

	rooms := make(map[string]*Room, len(roomDefs))
	for id := range roomDefs {
		r := NewRoom(id)
		if rs, ok := data.Rooms[id]; ok {
			r.Items = itemsFromIDs(rs.Items)
			r.Visited = rs.Visited
			r.Lit = rs.Lit
			r.Unlocked = rs.Unlocked
		}
		rooms[id] = r
	}

	player := NewPlayer(data.CurrentRoom, e.cfg.StartHealth, e.cfg.MaxInventory)
	player.Health = data.Player.Health
	player.MaxHealth = data.Player.MaxHealth
	player.HasLight = data.Player.HasLight
	player.Inventory = itemsFromIDs(data.Player.Inventory)
	player.ActionsTaken = data.Player.ActionsTaken
	for _, id := range data.Player.RoomsVisited {
		player.RoomsVisited[id] = true
	}

	e.rooms = rooms
	e.player = player
	e.current = rooms[data.CurrentRoom]
	return nil
}

func itemIDs(items []*Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func itemsFromIDs(ids []string) []*Item {
	var items []*Item
	for _, id := range ids {
		if it := NewItem(id); it != nil {
			items = append(items, it)
		}
	}
	return items
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
