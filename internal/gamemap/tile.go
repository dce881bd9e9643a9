package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TileLockedDoor
	TileStairsUp
	TileStairsDown
	TileAcid
	TileLava
	TileTrap
)

var tileNames = [...]string{
	TileWall:       "wall",
	TileFloor:      "floor",
	TileDoor:       "door",
	TileLockedDoor: "locked_door",
	TileStairsUp:   "stairs_up",
	TileStairsDown: "stairs_down",
	TileAcid:       "acid",
	TileLava:       "lava",
	TileTrap:       "trap",
}

func (k TileKind) String() string {
	if int(k) < len(tileNames) {
		return tileNames[k]
	}
	return "unknown"
}

// Walkable reports whether the kind can be stood on. Locked doors count as
// walkable terrain; gating them is up to the caller.
func (k TileKind) Walkable() bool {
	return k != TileWall && int(k) < len(tileNames)
}

// Transparent reports whether light passes through the kind.
func (k TileKind) Transparent() bool { return k.Walkable() }

// Hazardous reports whether stepping onto the kind hurts.
func (k TileKind) Hazardous() bool {
	return k == TileAcid || k == TileLava || k == TileTrap
}
