package component

import (
	"slices"

	"aether-roguelike/internal/ecs"
)

const CInventory ecs.ComponentType = 7

// Inventory is a grid-sized bag of items kept in pickup order.
type Inventory struct {
	Width, Height int
	Items         []*Item
}

func (*Inventory) Type() ecs.ComponentType { return CInventory }

func (inv *Inventory) Capacity() int { return inv.Width * inv.Height }

// Add merges item into a matching stack or appends it while there is room.
func (inv *Inventory) Add(item *Item) bool {
	if item.Stackable {
		for _, held := range inv.Items {
			if held.StacksWith(item) {
				held.Quantity += item.Quantity
				return true
			}
		}
	}
	if len(inv.Items) >= inv.Capacity() {
		return false
	}
	inv.Items = append(inv.Items, item)
	return true
}

// Remove takes one unit of item out of the bag. Stacks shrink by one;
// everything else leaves the list.
func (inv *Inventory) Remove(item *Item) {
	i := slices.Index(inv.Items, item)
	if i < 0 {
		return
	}
	if item.Stackable && item.Quantity > 1 {
		item.Quantity--
		return
	}
	inv.Items = slices.Delete(inv.Items, i, i+1)
}

// Find returns the first held item with the given name.
func (inv *Inventory) Find(name string) *Item {
	for _, it := range inv.Items {
		if it.Name == name {
			return it
		}
	}
	return nil
}
