package component

import "aether-roguelike/internal/ecs"

// Slot is where an item can be worn. SlotNone marks items that cannot be equipped.
type Slot string

const (
	SlotNone   Slot = ""
	SlotWeapon Slot = "weapon"
	SlotArmor  Slot = "armor"
	SlotRing   Slot = "ring"
	SlotCharm  Slot = "charm"
)

// Item is a plain value describing one item. It lives as a component on floor
// entities and by pointer inside Inventory and Equipment once picked up.
type Item struct {
	Name        string
	Slot        Slot
	Stackable   bool
	Quantity    int
	Identified  bool
	Cursed      bool
	Durability  *int
	Power       int
	Element     Element
	Description string
}

const CItem ecs.ComponentType = 6

func (*Item) Type() ecs.ComponentType { return CItem }

// Clone returns an independent copy of the item.
func (i *Item) Clone() *Item {
	c := *i
	if i.Durability != nil {
		d := *i.Durability
		c.Durability = &d
	}
	return &c
}

// StacksWith reports whether other merges into i on pickup.
func (i *Item) StacksWith(other *Item) bool {
	return i.Stackable && other.Stackable && i.Name == other.Name && i.Identified == other.Identified
}
