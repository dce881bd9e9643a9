package render

import (
	"aether-roguelike/assets"
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/spatial"
	"aether-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is how many rows at the bottom of the screen the HUD takes.
const hudRows = 5

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, max(1, h-hudRows)),
	}
}

// Resize refits the viewport after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, max(1, h-hudRows)
}

// Entity is one drawable thing in world coordinates.
type Entity struct {
	Point spatial.Point
	Glyph string
	FG    tcell.Color
}

// Scene is everything DrawFrame needs for one frame. Entities must be in
// draw order; later entries are drawn on top.
type Scene struct {
	Level    *gamemap.Level
	Vis      *system.Visibility
	Entities []Entity
	Focus    spatial.Point
}

// DrawFrame clears the screen and renders tiles and entities.
func (r *Renderer) DrawFrame(s Scene) {
	r.screen.Clear()
	r.camera.Center(s.Focus.X, s.Focus.Y, s.Level.Width, s.Level.Height)
	r.drawMap(s.Level, s.Vis)
	r.drawEntities(s.Entities, s.Vis)
}

// drawMap renders visible tiles in colour and explored ones dimmed.
func (r *Renderer) drawMap(level *gamemap.Level, vis *system.Visibility) {
	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			inView := vis.Visible.At(x, y)
			if !inView && !vis.Explored.At(x, y) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph, color := styleFor(level.At(x, y), inView)
			r.putGlyph(sx, sy, glyph, tcell.StyleDefault.Foreground(color).Background(assets.ColorBackground))
		}
	}
}

// drawEntities renders entities standing on visible tiles.
func (r *Renderer) drawEntities(entities []Entity, vis *system.Visibility) {
	for _, e := range entities {
		if !vis.Visible.InBounds(e.Point.X, e.Point.Y) || !vis.Visible.At(e.Point.X, e.Point.Y) {
			continue
		}
		sx, sy, onScreen := r.camera.WorldToScreen(e.Point.X, e.Point.Y)
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, e.Glyph, tcell.StyleDefault.Foreground(e.FG).Background(assets.ColorBackground))
	}
}

// putGlyph draws a single glyph at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
