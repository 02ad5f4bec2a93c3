package adventure

import "fmt"

// Item is a runtime instance of an item definition.
type Item struct {
	ItemDef
}

// NewItem instantiates an item by ID, or nil for unknown IDs.
func NewItem(id string) *Item {
	def, ok := itemDefs[id]
	if !ok {
		return nil
	}
	return &Item{ItemDef: def}
}

// Matches reports whether the keyword refers to this item.
func (it *Item) Matches(keyword string) bool {
	if keyword == it.ID || keyword == it.Name {
		return true
	}
	for _, k := range it.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// Examine returns the detailed description.
func (it *Item) Examine() string {
	out := it.Description
	if it.Weapon {
		out += fmt.Sprintf(" It appears to be a weapon that could deal %d damage.", it.Damage)
	}
	if it.Heal > 0 {
		out += " It seems to have special properties."
	}
	return out
}

// UseResult describes what happened when an item was used.
type UseResult struct {
	Message       string
	Consumed      bool
	Heal          int
	ProvidesLight bool
}

// Use applies the item's effect. Flavor text follows the item identity.
func (it *Item) Use() (UseResult, bool) {
	if !it.Usable {
		return UseResult{Message: fmt.Sprintf("You can't use the %s right now.", it.Name)}, false
	}

	res := UseResult{
		Message:  fmt.Sprintf("You use the %s.", it.Name),
		Consumed: it.Consumable,
		Heal:     it.Heal,
	}

	switch it.ID {
	case "lamp":
		res.Message = fmt.Sprintf("You light the %s. It casts a warm glow around you.", it.Name)
		res.ProvidesLight = true
	case "potion":
		res.Message = fmt.Sprintf("You drink the %s. You feel refreshed!", it.Name)
	case "book":
		res.Message = fmt.Sprintf("You read from the %s. Ancient knowledge fills your mind.", it.Name)
	case "key":
		res.Message = fmt.Sprintf("You hold the %s, ready to unlock something.", it.Name)
	case "sword":
		res.Message = fmt.Sprintf("You brandish the %s. You feel more confident.", it.Name)
	}
	return res, true
}

// findItem returns the first item in the list matching the keyword.
func findItem(items []*Item, keyword string) *Item {
	for _, it := range items {
		if it.Matches(keyword) {
			return it
		}
	}
	return nil
}
