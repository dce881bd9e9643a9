package game

import (
	"fmt"
	"sort"

	"aether-roguelike/internal/component"
	"aether-roguelike/internal/ecs"
	"aether-roguelike/internal/render"
	"aether-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Run drives the game on screen until the run ends or the player quits.
// It returns true when the player quit with the run still in progress.
func (g *Game) Run(screen tcell.Screen) bool {
	r := render.NewRenderer(screen)
	var panel Intent // open view, if any

	for !g.Over() {
		g.draw(r, panel)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return true
		case *tcell.EventResize:
			screen.Sync()
			r.Resize()
		case *tcell.EventKey:
			if panel != nil {
				_, inventory := panel.(ViewInventory)
				if in := panelKey(ev, inventory); in != nil {
					g.Step(in)
				}
				panel = nil
				continue
			}
			in := keyToIntent(ev)
			switch in.(type) {
			case nil:
				continue
			case quit:
				return true
			case ViewInventory, ViewEquipment:
				panel = in
				continue
			}
			g.Step(in)
		}
	}

	r.DrawEndScreen(g.Won(), g.summaryLines())
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return false
		}
	}
}

func (g *Game) draw(r *render.Renderer, panel Intent) {
	drawables := g.Drawables()
	entities := make([]render.Entity, 0, len(drawables))
	for _, d := range drawables {
		entities = append(entities, render.Entity{Point: d.Point, Glyph: d.Renderable.Glyph, FG: d.Renderable.FGColor})
	}
	r.DrawFrame(render.Scene{
		Level:    g.level,
		Vis:      g.vis,
		Entities: entities,
		Focus:    g.PlayerPosition(),
	})
	r.DrawHUD(g.hudStatus())
	switch panel.(type) {
	case ViewInventory:
		r.DrawPanel(tr("Inventory (1-9 equip, other keys close)"), g.InventoryLines())
	case ViewEquipment:
		r.DrawPanel(tr("Equipment (w/a/r/c remove, other keys close)"), g.EquipmentLines())
	}
}

func (g *Game) hudStatus() render.Status {
	stats := g.playerStats()
	eq, _ := ecs.TryGet[*component.Equipment](g.world, g.player)
	atk, def := system.EquipmentBonuses(eq)
	st := render.Status{
		HP: stats.HP, MaxHP: stats.MaxHP,
		MP: stats.MP, MaxMP: stats.MaxMP,
		Attack:    stats.Attack + atk,
		Defense:   stats.Defense + def,
		Level:     stats.Level,
		XP:        stats.XP,
		Floor:     g.floor,
		MaxFloors: g.opts.MaxFloors,
		Turn:      g.turn,
		Keys:      g.Keyring(),
		Core:      g.hasCore,
		Messages:  g.Messages(),
	}
	if tracker, ok := ecs.TryGet[*component.StatusTracker](g.world, g.player); ok {
		for _, e := range tracker.Effects {
			st.Statuses = append(st.Statuses, e.Name)
		}
	}
	return st
}

// summaryLines formats the run log for the end screen.
func (g *Game) summaryLines() []string {
	rl := g.runLog
	lines := []string{
		fmt.Sprintf("Seed:            %d (%s)", rl.Seed, rl.Mode),
		fmt.Sprintf("Floor reached:   %d", rl.FloorsReached),
		fmt.Sprintf("Turns survived:  %d", rl.TurnsPlayed),
		fmt.Sprintf("Damage dealt:    %d", rl.DamageDealt),
		fmt.Sprintf("Damage taken:    %d", rl.DamageTaken),
	}
	names := make([]string, 0, len(rl.Kills))
	for name := range rl.Kills {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %-12s x%d", name, rl.Kills[name]))
	}
	if !rl.Victory && rl.CauseOfDeath != "" {
		lines = append(lines, fmt.Sprintf("Killed by:       %s", rl.CauseOfDeath))
	}
	return lines
}
