package assets

import "github.com/gdamore/tcell/v2"

// Glyphs used for actors, items and terrain.
const (
	GlyphPlayer     = "@"
	GlyphBrute      = "B"
	GlyphSkirmisher = "S"
	GlyphRanged     = "R"
	GlyphSummoner   = "Σ"
	GlyphSapper     = "τ"
	GlyphBoss       = "Ω"
	GlyphItem       = "!"
	GlyphKey        = "⚷"
	GlyphTrap       = "^"

	GlyphWall       = "#"
	GlyphFloor      = "."
	GlyphDoor       = "+"
	GlyphLockedDoor = "⊞"
	GlyphStairsUp   = "<"
	GlyphStairsDown = ">"
	GlyphAcid       = "~"
	GlyphLava       = "≈"
)

// Draw orders. Higher values draw on top.
const (
	OrderTrap    = 1
	OrderItem    = 2
	OrderMonster = 4
	OrderPlayer  = 5
)

// Palette colours.
var (
	ColorPlayer     = tcell.NewRGBColor(200, 240, 255)
	ColorBrute      = tcell.NewRGBColor(200, 40, 40)
	ColorSkirmisher = tcell.NewRGBColor(220, 180, 60)
	ColorRanged     = tcell.NewRGBColor(120, 200, 255)
	ColorSummoner   = tcell.NewRGBColor(180, 120, 200)
	ColorSapper     = tcell.NewRGBColor(90, 180, 90)
	ColorBoss       = tcell.NewRGBColor(255, 120, 40)
	ColorItem       = tcell.NewRGBColor(220, 220, 220)
	ColorKey        = tcell.NewRGBColor(255, 215, 0)
	ColorHazard     = tcell.NewRGBColor(140, 40, 40)
	ColorLava       = tcell.NewRGBColor(255, 80, 80)
	ColorAcid       = tcell.NewRGBColor(120, 220, 60)
	ColorWall       = tcell.NewRGBColor(110, 100, 130)
	ColorFloor      = tcell.NewRGBColor(70, 70, 90)
	ColorDoor       = tcell.NewRGBColor(180, 130, 70)
	ColorStairs     = tcell.NewRGBColor(255, 255, 255)
	ColorExplored   = tcell.NewRGBColor(45, 45, 60)
	ColorBackground = tcell.ColorBlack
)
