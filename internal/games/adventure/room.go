package adventure

import (
	"fmt"
	"sort"
	"strings"
)

// Room is a runtime location: static definition plus mutable state (items on
// the floor, visited/lit/unlocked flags).
type Room struct {
	RoomDef

	Items    []*Item
	Visited  bool
	Lit      bool
	Unlocked bool
}

// NewRoom instantiates a room by ID, or nil for unknown IDs.
func NewRoom(id string) *Room {
	def, ok := roomDefs[id]
	if !ok {
		return nil
	}
	r := &Room{
		RoomDef:  def,
		Lit:      !def.Dark,
		Unlocked: !def.Locked,
	}
	for _, itemID := range def.Items {
		if it := NewItem(itemID); it != nil {
			r.Items = append(r.Items, it)
		}
	}
	return r
}

// Exit returns the destination room ID for a direction, or "".
func (r *Room) Exit(direction string) string {
	return r.Exits[strings.ToLower(direction)]
}

// CanEnter checks lock state against the player's inventory.
func (r *Room) CanEnter(inventory []*Item) (bool, string) {
	if r.Locked && !r.Unlocked {
		for _, it := range inventory {
			if it.ID == r.UnlockItem {
				return true, ""
			}
		}
		return false, fmt.Sprintf("This room is locked. You need a %s to enter.", r.UnlockItem)
	}
	return true, ""
}

// Unlock opens the room if the item matches its lock.
func (r *Room) Unlock(it *Item) bool {
	if !r.Locked || r.Unlocked || it.ID != r.UnlockItem {
		return false
	}
	r.Unlocked = true
	return true
}

// Light lights a dark room.
func (r *Room) Light() {
	if r.Dark {
		r.Lit = true
	}
}

// FindItem returns the first floor item matching the keyword.
func (r *Room) FindItem(keyword string) *Item {
	return findItem(r.Items, keyword)
}

// RemoveItem takes an item off the floor.
func (r *Room) RemoveItem(it *Item) bool {
	for i, cur := range r.Items {
		if cur == it {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// AddItem puts an item on the floor.
func (r *Room) AddItem(it *Item) {
	r.Items = append(r.Items, it)
}

// Describe builds the full room description: darkness check, long form on
// first visit, then items and exits.
func (r *Room) Describe(playerHasLight bool) string {
	if r.Dark && !r.Lit && !playerHasLight {
		return "It's too dark to see anything clearly. You need a source of light."
	}

	var b strings.Builder
	if !r.Visited {
		b.WriteString(r.LongDesc)
	} else {
		b.WriteString(r.Description)
	}

	if len(r.Items) > 0 {
		names := make([]string, len(r.Items))
		for i, it := range r.Items {
			names[i] = it.Name
		}
		if len(names) == 1 {
			fmt.Fprintf(&b, "\nYou see %s here.", names[0])
		} else {
			fmt.Fprintf(&b, "\nYou see the following items: %s.", strings.Join(names, ", "))
		}
	}

	if len(r.Exits) > 0 {
		dirs := make([]string, 0, len(r.Exits))
		for d := range r.Exits {
			dirs = append(dirs, d)
		}
		sort.Strings(dirs)
		if len(dirs) == 1 {
			fmt.Fprintf(&b, "\nThere is an exit to the %s.", dirs[0])
		} else {
			fmt.Fprintf(&b, "\nExits are: %s.", strings.Join(dirs, ", "))
		}
	}
	return b.String()
}
