package render

import (
	"aether-roguelike/assets"
	"aether-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// tileStyle is how one tile kind is drawn while in view.
type tileStyle struct {
	Glyph string
	Color tcell.Color
}

// tileStyles is indexed by TileKind. Trap tiles look like floor until
// they go off.
var tileStyles = [...]tileStyle{
	gamemap.TileWall:       {assets.GlyphWall, assets.ColorWall},
	gamemap.TileFloor:      {assets.GlyphFloor, assets.ColorFloor},
	gamemap.TileDoor:       {assets.GlyphDoor, assets.ColorDoor},
	gamemap.TileLockedDoor: {assets.GlyphLockedDoor, assets.ColorKey},
	gamemap.TileStairsUp:   {assets.GlyphStairsUp, assets.ColorStairs},
	gamemap.TileStairsDown: {assets.GlyphStairsDown, assets.ColorStairs},
	gamemap.TileAcid:       {assets.GlyphAcid, assets.ColorAcid},
	gamemap.TileLava:       {assets.GlyphLava, assets.ColorLava},
	gamemap.TileTrap:       {assets.GlyphFloor, assets.ColorFloor},
}

// styleFor returns the glyph and colour for k. Explored tiles out of view
// keep their glyph but are drawn in the dim explored colour.
func styleFor(k gamemap.TileKind, inView bool) (string, tcell.Color) {
	st := tileStyles[gamemap.TileFloor]
	if int(k) < len(tileStyles) {
		st = tileStyles[k]
	}
	if !inView {
		return st.Glyph, assets.ColorExplored
	}
	return st.Glyph, st.Color
}
