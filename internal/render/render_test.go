package render

import (
	"strings"
	"testing"

	"aether-roguelike/assets"
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/spatial"
	"aether-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(w, h)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

func openLevel(w, h int) *gamemap.Level {
	l := gamemap.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			l.Set(x, y, gamemap.TileFloor)
		}
	}
	return l
}

// row reads screen row y as a string of primary runes.
func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCameraClampsToMap(t *testing.T) {
	c := NewCamera(20, 10)
	c.Center(2, 2, 100, 50)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Errorf("near the origin offset = (%d,%d); want (0,0)", c.OffsetX, c.OffsetY)
	}
	c.Center(99, 49, 100, 50)
	if c.OffsetX != 80 || c.OffsetY != 40 {
		t.Errorf("at the far corner offset = (%d,%d); want (80,40)", c.OffsetX, c.OffsetY)
	}
	c.Center(50, 25, 100, 50)
	if sx, sy, ok := c.WorldToScreen(50, 25); !ok || sx != 10 || sy != 5 {
		t.Errorf("focus maps to (%d,%d,%v); want screen centre", sx, sy, ok)
	}
	if wx, wy := c.ScreenToWorld(10, 5); wx != 50 || wy != 25 {
		t.Errorf("ScreenToWorld = (%d,%d)", wx, wy)
	}
	c.Center(5, 5, 8, 8)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Error("a map smaller than the view should not scroll")
	}
}

func TestDrawFrameVisibleExploredAndHidden(t *testing.T) {
	ss := newTestScreen(t, 40, 15)
	r := NewRenderer(ss)
	level := openLevel(30, 6)
	level.Set(4, 2, gamemap.TileStairsDown)
	vis := system.NewVisibility(level)
	vis.UpdateFOV(level, spatial.Point{X: 22, Y: 2}, 3)
	vis.UpdateFOV(level, spatial.Point{X: 2, Y: 2}, 3)

	r.DrawFrame(Scene{
		Level: level,
		Vis:   vis,
		Entities: []Entity{
			{Point: spatial.Point{X: 3, Y: 2}, Glyph: assets.GlyphItem, FG: assets.ColorItem},
			{Point: spatial.Point{X: 2, Y: 2}, Glyph: assets.GlyphPlayer, FG: assets.ColorPlayer},
			{Point: spatial.Point{X: 22, Y: 2}, Glyph: assets.GlyphBrute, FG: assets.ColorBrute},
		},
		Focus: spatial.Point{X: 2, Y: 2},
	})
	ss.Show()

	if got, _, _, _ := ss.GetContent(2, 2); got != '@' {
		t.Errorf("player cell shows %q", got)
	}
	if got, _, _, _ := ss.GetContent(3, 2); got != '!' {
		t.Errorf("item cell shows %q", got)
	}
	if got, _, _, _ := ss.GetContent(4, 2); got != '>' {
		t.Errorf("stairs cell shows %q", got)
	}
	if got, _, _, _ := ss.GetContent(12, 2); got != ' ' {
		t.Errorf("unexplored cell shows %q", got)
	}
	got, _, style, _ := ss.GetContent(22, 2)
	if got != '.' {
		t.Errorf("explored cell out of view should show terrain only, got %q", got)
	}
	if fg, _, _ := style.Decompose(); fg != assets.ColorExplored {
		t.Errorf("explored cell colour = %v; want the explored colour", fg)
	}
}

func TestDrawHUD(t *testing.T) {
	ss := newTestScreen(t, 80, 20)
	r := NewRenderer(ss)
	r.DrawHUD(Status{
		HP: 12, MaxHP: 30, MP: 4, MaxMP: 12, Attack: 6, Defense: 3, Level: 2,
		Floor: 3, MaxFloors: 8, Turn: 57,
		Keys:     []string{"Key-3"},
		Messages: []string{"one", "two", "three", "four"},
	})
	status := row(ss, 16)
	for _, want := range []string{"HP:12/30", "Floor 3/8", "Turn 57", "Key-3"} {
		if !strings.Contains(status, want) {
			t.Errorf("status row %q lacks %q", status, want)
		}
	}
	if !strings.HasPrefix(row(ss, 17), "two") || !strings.HasPrefix(row(ss, 19), "four") {
		t.Errorf("message rows should hold the last three lines, got %q / %q", row(ss, 17), row(ss, 19))
	}
	if r0, _, _, _ := ss.GetContent(0, 15); r0 != '─' {
		t.Errorf("separator row starts with %q", r0)
	}
}

func TestDrawTextClipsToWidth(t *testing.T) {
	ss := newTestScreen(t, 10, 8)
	r := NewRenderer(ss)
	r.drawText(0, 0, "a very long line indeed", tcell.StyleDefault)
	ss.Show()
	if got := row(ss, 0); got != "a very lo…" {
		t.Errorf("clipped row = %q", got)
	}
}

func TestStatusLineMarksCoreAndStatuses(t *testing.T) {
	line := Status{Core: true, Statuses: []string{"burn", "slow"}}.StatusLine()
	if !strings.Contains(line, "[Core]") || !strings.Contains(line, "(burn slow)") {
		t.Errorf("status line = %q", line)
	}
}

func TestDrawPanelListsLines(t *testing.T) {
	ss := newTestScreen(t, 40, 12)
	r := NewRenderer(ss)
	r.DrawPanel("Inventory", []string{"1. Iron Sword", "2. Potion of Healing x2"})
	found := false
	for y := 0; y < 12; y++ {
		if strings.Contains(row(ss, y), "Potion of Healing x2") {
			found = true
		}
	}
	if !found {
		t.Error("panel line not drawn")
	}
}
