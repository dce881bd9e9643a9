package generate

import (
	"aether-roguelike/assets"
	"aether-roguelike/internal/component"
	"aether-roguelike/internal/rng"
)

// weightedChoice rolls against the summed weights and returns the first
// entry whose running total reaches the roll.
func weightedChoice(src rng.Source, table []assets.LootEntry) string {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	roll := src.Float64() * float64(total)
	upto := 0.0
	for _, e := range table {
		upto += float64(e.Weight)
		if roll <= upto {
			return e.Name
		}
	}
	return table[len(table)-1].Name
}

// RollLoot picks a loot category weighted by floor depth, then an item from
// that category's table.
func RollLoot(src rng.Source, floor int) *component.Item {
	kind := weightedChoice(src, []assets.LootEntry{
		{Name: "weapon", Weight: 3 + floor},
		{Name: "armor", Weight: 2 + floor},
		{Name: "consumable", Weight: 6 + floor*2},
	})
	table := assets.ConsumableTable
	switch kind {
	case "weapon":
		table = assets.WeaponTable
	case "armor":
		table = assets.ArmorTable
	}
	return assets.ItemFromName(weightedChoice(src, table))
}
