package component

import "aether-roguelike/internal/ecs"

const CEquipment ecs.ComponentType = 8

// Equipment holds the five worn slots. A nil slot is empty.
type Equipment struct {
	Weapon    *Item
	Armor     *Item
	RingLeft  *Item
	RingRight *Item
	Charm     *Item
}

func (*Equipment) Type() ecs.ComponentType { return CEquipment }

// SlotNames lists the equipment slots in display order.
var SlotNames = []string{"weapon", "armor", "ring_left", "ring_right", "charm"}

// Slot returns a pointer to the named slot, or nil for an unknown name.
func (e *Equipment) Slot(name string) **Item {
	switch name {
	case "weapon":
		return &e.Weapon
	case "armor":
		return &e.Armor
	case "ring_left":
		return &e.RingLeft
	case "ring_right":
		return &e.RingRight
	case "charm":
		return &e.Charm
	}
	return nil
}
