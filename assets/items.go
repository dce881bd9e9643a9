package assets

import (
	"strconv"
	"strings"

	"aether-roguelike/internal/component"
)

// Special item names the game logic recognises.
const (
	AetherCore   = "Aether Core"
	KeyPrefix    = "Key-"
	PotionPrefix = "Potion"
)

// LootEntry is one weighted name in a loot table.
type LootEntry struct {
	Name   string
	Weight int
}

var (
	WeaponTable = []LootEntry{
		{Name: "Rusty Dagger", Weight: 5},
		{Name: "Iron Sword", Weight: 8},
		{Name: "Glacial Shortsword of Haste", Weight: 1},
	}
	ArmorTable = []LootEntry{
		{Name: "Tattered Robe", Weight: 6},
		{Name: "Chainmail", Weight: 4},
		{Name: "Aetheric Aegis", Weight: 1},
	}
	ConsumableTable = []LootEntry{
		{Name: "Potion of Healing", Weight: 8},
		{Name: "Scroll of Firebolt", Weight: 4},
		{Name: "Scroll of Blink", Weight: 4},
		{Name: "Scroll of Reveal", Weight: 3},
		{Name: "Scroll of Silence", Weight: 2},
	}
)

// ItemFromName builds the item a loot name stands for. Names are matched by
// the keyword they contain; "Glacial" gear deals ice damage.
func ItemFromName(name string) *component.Item {
	item := &component.Item{Name: name, Quantity: 1, Element: component.Physical}
	if strings.HasPrefix(name, "Glacial") {
		item.Element = component.Ice
	}
	switch {
	case strings.Contains(strings.ToLower(name), "sword"):
		item.Slot, item.Power, item.Description = component.SlotWeapon, 6, "A reliable blade."
	case strings.Contains(name, "Dagger"):
		item.Slot, item.Power, item.Description = component.SlotWeapon, 4, "Light but weak."
	case strings.Contains(name, "Chainmail"), strings.Contains(name, "Robe"), strings.Contains(name, "Aegis"):
		item.Slot, item.Power, item.Description = component.SlotArmor, 2, "Protective garb."
	case strings.HasPrefix(name, PotionPrefix):
		item.Stackable, item.Description = true, "Restores HP."
	case strings.Contains(name, "Scroll"):
		item.Stackable, item.Description = true, "Casts a spell."
	}
	return item
}

// KeyItem returns the key that opens the locked door on floor.
func KeyItem(floor int) *component.Item {
	return &component.Item{
		Name:       KeyName(floor),
		Stackable:  true,
		Quantity:   1,
		Identified: true,
		Element:    component.Physical,
	}
}

// KeyName is the item name of the key for floor.
func KeyName(floor int) string {
	return KeyPrefix + strconv.Itoa(floor)
}

// CoreItem returns the end-game item.
func CoreItem() *component.Item {
	return &component.Item{
		Name:        AetherCore,
		Quantity:    1,
		Identified:  true,
		Element:     component.Physical,
		Description: "The legendary core.",
	}
}
