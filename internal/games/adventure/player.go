package adventure

import "fmt"

// Player is the adventurer: current location, inventory, and health.
type Player struct {
	CurrentRoom  string
	Inventory    []*Item
	Health       int
	MaxHealth    int
	MaxInventory int
	HasLight     bool

	RoomsVisited map[string]bool
	ActionsTaken int
}

// NewPlayer creates a player in the given starting room.
func NewPlayer(startRoom string, health, maxInventory int) *Player {
	return &Player{
		CurrentRoom:  startRoom,
		Health:       health,
		MaxHealth:    health,
		MaxInventory: maxInventory,
		RoomsVisited: map[string]bool{startRoom: true},
	}
}

// MoveTo relocates the player and tracks progress.
func (p *Player) MoveTo(roomID string) {
	p.CurrentRoom = roomID
	p.RoomsVisited[roomID] = true
	p.ActionsTaken++
}

// Take adds an item to the inventory, honoring the slot limit.
func (p *Player) Take(it *Item) bool {
	if len(p.Inventory) >= p.MaxInventory {
		return false
	}
	p.Inventory = append(p.Inventory, it)
	p.ActionsTaken++
	return true
}

// Drop removes an item from the inventory.
func (p *Player) Drop(it *Item) bool {
	for i, cur := range p.Inventory {
		if cur == it {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			p.ActionsTaken++
			return true
		}
	}
	return false
}

// FindItem returns the first carried item matching the keyword.
func (p *Player) FindItem(keyword string) *Item {
	return findItem(p.Inventory, keyword)
}

// HasItem reports whether an item with the given ID is carried.
func (p *Player) HasItem(id string) bool {
	for _, it := range p.Inventory {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Heal restores health up to the maximum and returns the amount gained.
func (p *Player) Heal(amount int) int {
	old := p.Health
	p.Health = min(p.MaxHealth, p.Health+amount)
	return p.Health - old
}

// InventoryLines formats the inventory for display.
func (p *Player) InventoryLines() []string {
	if len(p.Inventory) == 0 {
		return []string{"Your inventory is empty."}
	}
	lines := []string{"Your inventory contains:"}
	for i, it := range p.Inventory {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, it.Name))
	}
	lines = append(lines, fmt.Sprintf("Slots: %d/%d", len(p.Inventory), p.MaxInventory))
	return lines
}
