package game

import (
	"fmt"

	"aether-roguelike/internal/component"
	"aether-roguelike/internal/ecs"
	"aether-roguelike/internal/system"
)

// InventoryLines lists the carried items, one per line, numbered from 1.
func (g *Game) InventoryLines() []string {
	inv := ecs.MustGet[*component.Inventory](g.world, g.player)
	if len(inv.Items) == 0 {
		return []string{tr("Your pack is empty.")}
	}
	lines := make([]string, 0, len(inv.Items))
	for i, it := range inv.Items {
		line := fmt.Sprintf("%d. %s", i+1, it.Name)
		if it.Stackable && it.Quantity > 1 {
			line += fmt.Sprintf(" x%d", it.Quantity)
		}
		if it.Slot != component.SlotNone {
			line += fmt.Sprintf(" [%s +%d]", it.Slot, it.Power)
		}
		lines = append(lines, line)
	}
	return lines
}

// EquipmentLines lists every slot and what is worn there.
func (g *Game) EquipmentLines() []string {
	eq := ecs.MustGet[*component.Equipment](g.world, g.player)
	lines := make([]string, 0, len(component.SlotNames))
	for _, name := range component.SlotNames {
		worn := "-"
		if it := *eq.Slot(name); it != nil {
			worn = it.Name
		}
		lines = append(lines, fmt.Sprintf("%-10s %s", name, worn))
	}
	return lines
}

func (g *Game) equip(index int) result {
	inv := ecs.MustGet[*component.Inventory](g.world, g.player)
	eq := ecs.MustGet[*component.Equipment](g.world, g.player)
	if index < 0 || index >= len(inv.Items) {
		g.say("You have no such item.")
		return rejected
	}
	item := inv.Items[index]
	if item.Slot == component.SlotNone {
		g.say("You cannot equip %s.", item.Name)
		return rejected
	}
	var displaced *component.Item
	if item.Slot != component.SlotRing {
		displaced = *eq.Slot(string(item.Slot))
	}
	if !system.Equip(eq, item) {
		g.say("Both ring fingers are taken.")
		return rejected
	}
	inv.Remove(item)
	if displaced != nil {
		inv.Add(displaced)
	}
	g.say("You equip %s.", item.Name)
	return acted
}

func (g *Game) unequip(slot string) result {
	inv := ecs.MustGet[*component.Inventory](g.world, g.player)
	eq := ecs.MustGet[*component.Equipment](g.world, g.player)
	if len(inv.Items) >= inv.Capacity() {
		g.say("Inventory full.")
		return rejected
	}
	item := system.Unequip(eq, slot)
	if item == nil {
		g.say("Nothing is worn there.")
		return rejected
	}
	inv.Add(item)
	g.say("You remove %s.", item.Name)
	return acted
}
