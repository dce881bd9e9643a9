package game

import "github.com/gdamore/tcell/v2"

// quit is returned by keyToIntent for the keys that leave the game.
type quit struct{}

func (quit) intent() {}

// keyToIntent maps a tcell key event to a player intent, or nil for keys
// with no binding.
func keyToIntent(ev *tcell.EventKey) Intent {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return Move{DX: 0, DY: -1}
	case tcell.KeyDown:
		return Move{DX: 0, DY: 1}
	case tcell.KeyRight:
		return Move{DX: 1, DY: 0}
	case tcell.KeyLeft:
		return Move{DX: -1, DY: 0}
	case tcell.KeyEscape:
		return quit{}
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'w', '8':
		return Move{DX: 0, DY: -1}
	case 'j', 's', '2':
		return Move{DX: 0, DY: 1}
	case 'l', 'd', '6':
		return Move{DX: 1, DY: 0}
	case 'h', 'a', '4':
		return Move{DX: -1, DY: 0}
	case '.', ' ':
		return Wait{}
	case 'g', ',':
		return PickUp{}
	case 'i', 'I':
		return ViewInventory{}
	case 'e', 'q':
		return ViewEquipment{}
	case '>':
		return Descend{}
	case '<':
		return Ascend{}
	case 'Q':
		return quit{}
	}
	return nil
}

// panelKey maps a key pressed while a view panel is open. In the inventory
// a digit equips that item; in the equipment view a slot letter removes it.
func panelKey(ev *tcell.EventKey, inventory bool) Intent {
	r := ev.Rune()
	if inventory && r >= '1' && r <= '9' {
		return Equip{Index: int(r - '1')}
	}
	if !inventory {
		switch r {
		case 'w':
			return Unequip{Slot: "weapon"}
		case 'a':
			return Unequip{Slot: "armor"}
		case 'r':
			return Unequip{Slot: "ring"}
		case 'c':
			return Unequip{Slot: "charm"}
		}
	}
	return nil
}
