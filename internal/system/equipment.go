package system

import "aether-roguelike/internal/component"

// Equip puts item into its slot. Rings fill the left hand first and fail
// when both hands are full; other slots replace what was worn.
func Equip(eq *component.Equipment, item *component.Item) bool {
	switch item.Slot {
	case component.SlotWeapon:
		eq.Weapon = item
	case component.SlotArmor:
		eq.Armor = item
	case component.SlotCharm:
		eq.Charm = item
	case component.SlotRing:
		switch {
		case eq.RingLeft == nil:
			eq.RingLeft = item
		case eq.RingRight == nil:
			eq.RingRight = item
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Unequip empties slot and returns what was there. "ring" takes the right
// ring first, then the left.
func Unequip(eq *component.Equipment, slot string) *component.Item {
	var ref **component.Item
	if slot == string(component.SlotRing) {
		ref = &eq.RingRight
		if *ref == nil {
			ref = &eq.RingLeft
		}
	} else {
		ref = eq.Slot(slot)
	}
	if ref == nil {
		return nil
	}
	item := *ref
	*ref = nil
	return item
}

// ListEquipped returns the worn items in slot order.
func ListEquipped(eq *component.Equipment) []*component.Item {
	var out []*component.Item
	for _, name := range component.SlotNames {
		if it := *eq.Slot(name); it != nil {
			out = append(out, it)
		}
	}
	return out
}

// EquipmentBonuses returns the attack bonus of the weapon and the defense
// bonus of armor and charm. A nil Equipment has no bonuses.
func EquipmentBonuses(eq *component.Equipment) (atk, def int) {
	if eq == nil {
		return 0, 0
	}
	if eq.Weapon != nil {
		atk += eq.Weapon.Power
	}
	if eq.Armor != nil {
		def += eq.Armor.Power
	}
	if eq.Charm != nil {
		def += eq.Charm.Power
	}
	return atk, def
}
