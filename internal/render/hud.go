package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the player summary shown in the HUD.
type Status struct {
	HP, MaxHP int
	MP, MaxMP int
	Attack    int
	Defense   int
	Level     int
	XP        int
	Floor     int
	MaxFloors int
	Turn      int
	Keys      []string
	Core      bool
	Statuses  []string
	Messages  []string
}

// StatusLine formats the one-line player summary.
func (st Status) StatusLine() string {
	line := fmt.Sprintf("HP:%d/%d MP:%d/%d ATK:%d DEF:%d LV:%d XP:%d  Floor %d/%d  Turn %d",
		st.HP, st.MaxHP, st.MP, st.MaxMP, st.Attack, st.Defense, st.Level, st.XP,
		st.Floor, st.MaxFloors, st.Turn)
	if len(st.Keys) > 0 {
		line += "  " + strings.Join(st.Keys, ",")
	}
	if st.Core {
		line += "  [Core]"
	}
	if len(st.Statuses) > 0 {
		line += "  (" + strings.Join(st.Statuses, " ") + ")"
	}
	return line
}

// DrawHUD renders the status bar and the last messages at the bottom of
// the screen, then shows the frame.
func (r *Renderer) DrawHUD(st Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, st.StatusLine(), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	msgs := st.Messages
	if n := hudRows - 2; len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	for i, msg := range msgs {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

// DrawPanel draws a boxed list over the map, used for the inventory and
// equipment views, then shows the frame.
func (r *Renderer) DrawPanel(title string, lines []string) {
	w, h := r.screen.Size()
	width := runewidth.StringWidth(title)
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	width = min(width+4, w)
	x0 := max(0, (w-width)/2)
	y0 := 1
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

	for y := y0; y < min(h, y0+len(lines)+3); y++ {
		for x := x0; x < x0+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	r.drawText(x0+2, y0, title, style.Foreground(tcell.ColorYellow))
	for i, l := range lines {
		r.drawText(x0+2, y0+2+i, l, style)
	}
	r.screen.Show()
}

// DrawEndScreen replaces the frame with the run summary.
func (r *Renderer) DrawEndScreen(won bool, lines []string) {
	r.screen.Clear()
	title, color := "THE CAVERNS CLAIM YOU", tcell.ColorRed
	if won {
		title, color = "YOU ESCAPE WITH THE AETHER CORE", tcell.ColorGreen
	}
	r.drawText(2, 1, title, tcell.StyleDefault.Foreground(color))
	for i, l := range lines {
		r.drawText(2, 3+i, l, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	_, h := r.screen.Size()
	r.drawText(2, h-2, "Press any key.", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, clipped to the screen width. Wide
// runes advance two columns.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range runewidth.Truncate(text, max(0, w-x), "…") {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
