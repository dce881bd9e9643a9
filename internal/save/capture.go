package save

import (
	"fmt"
	"strings"

	"aether-roguelike/internal/component"
	"aether-roguelike/internal/ecs"
	"aether-roguelike/internal/game"
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/spatial"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Capture snapshots g into a document. The game is not modified.
func Capture(g *game.Game) (*Document, error) {
	state, err := g.Rand().State()
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	opts := g.Options()
	doc := &Document{
		Schema:      SchemaName,
		Version:     Version,
		Floor:       g.Floor(),
		Seed:        opts.Seed,
		Mode:        opts.Mode.String(),
		Turn:        g.Turn(),
		RNG:         state,
		VictoryItem: g.HasCore(),
		Keyring:     g.Keyring(),
		Map:         captureMap(g.Level()),
		Explored:    maskRows(g.Visibility().Explored),
		Log:         append([]string(nil), g.Messages()...),
	}
	w := g.World()
	for _, id := range w.Entities() {
		kind := kindOf(w, id)
		if kind == "" {
			continue
		}
		doc.Actors = append(doc.Actors, captureActor(w, id, kind))
	}
	log.WithFields(logrus.Fields{"floor": doc.Floor, "turn": doc.Turn, "actors": len(doc.Actors)}).Debug("captured game")
	return doc, nil
}

func kindOf(w *ecs.World, id ecs.EntityID) string {
	for _, tag := range []string{component.TagPlayer, component.TagMonster, component.TagItem, component.TagTrap} {
		if w.HasTag(id, tag) {
			return tag
		}
	}
	return ""
}

func captureMap(l *gamemap.Level) Map {
	rows := make([]string, l.Height)
	var b strings.Builder
	for y := range l.Height {
		b.Reset()
		for x := range l.Width {
			b.WriteByte('0' + byte(l.At(x, y)))
		}
		rows[y] = b.String()
	}
	m := Map{
		Width:        l.Width,
		Height:       l.Height,
		Tiles:        rows,
		Start:        fromPoint(l.Start),
		StairsUp:     fromPoint(l.StairsUp),
		StairsDown:   fromPoint(l.StairsDown),
		LockedDoors:  fromPoints(l.LockedDoors),
		KeyPositions: fromPoints(l.KeyPositions),
		Hazards:      fromPoints(l.Hazards),
		TrapHints:    fromPoints(l.TrapHints),
	}
	doors := mapset.New[spatial.Point]()
	for door := range l.DoorKeys {
		doors.Put(door)
	}
	for _, door := range gamemap.Points(doors) {
		m.DoorKeys = append(m.DoorKeys, DoorKey{Door: fromPoint(door), Key: fromPoint(l.DoorKeys[door])})
	}
	return m
}

func maskRows(m *spatial.Mask) []string {
	rows := make([]string, m.Height)
	var b strings.Builder
	for y := range m.Height {
		b.Reset()
		for x := range m.Width {
			if m.At(x, y) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func captureActor(w *ecs.World, id ecs.EntityID, kind string) Actor {
	a := Actor{ID: uint64(id), Kind: kind}
	if pos, ok := ecs.TryGet[*component.Position](w, id); ok {
		a.Position = Position{X: pos.X, Y: pos.Y, Floor: pos.Floor}
	}
	if r, ok := ecs.TryGet[*component.Renderable](w, id); ok {
		a.Renderable = &Renderable{Glyph: r.Glyph, FG: colorHex(r.FGColor), BG: colorHex(r.BGColor), Order: r.Order}
	}
	if s, ok := ecs.TryGet[*component.Stats](w, id); ok {
		a.Stats = captureStats(s)
	}
	if e, ok := ecs.TryGet[*component.Energy](w, id); ok {
		a.Energy = &Energy{Current: e.Current, Recovery: e.Recovery}
	}
	if ai, ok := ecs.TryGet[*component.AI](w, id); ok {
		a.AI = &AI{Archetype: ai.Archetype.String(), Cooldown: ai.Cooldown}
		if len(ai.Memory) > 0 {
			a.AI.Memory = make(map[string]int, len(ai.Memory))
			for k, v := range ai.Memory {
				a.AI.Memory[k] = v
			}
		}
	}
	if r, ok := ecs.TryGet[*component.ExperienceReward](w, id); ok {
		a.Reward = r.Amount
	}
	if it, ok := ecs.TryGet[*component.Item](w, id); ok {
		a.Item = captureItem(it)
	}
	if inv, ok := ecs.TryGet[*component.Inventory](w, id); ok {
		a.Inventory = &Inventory{Width: inv.Width, Height: inv.Height, Items: make([]Item, 0, len(inv.Items))}
		for _, it := range inv.Items {
			a.Inventory.Items = append(a.Inventory.Items, *captureItem(it))
		}
	}
	if eq, ok := ecs.TryGet[*component.Equipment](w, id); ok {
		a.Equipment = &Equipment{
			Weapon:    captureItem(eq.Weapon),
			Armor:     captureItem(eq.Armor),
			RingLeft:  captureItem(eq.RingLeft),
			RingRight: captureItem(eq.RingRight),
			Charm:     captureItem(eq.Charm),
		}
	}
	if tr, ok := ecs.TryGet[*component.StatusTracker](w, id); ok {
		for _, e := range tr.Effects {
			a.Statuses = append(a.Statuses, Status{Name: e.Name, Duration: e.Duration, Potency: e.Potency, Element: string(e.Element)})
		}
	}
	return a
}

func captureStats(s *component.Stats) *Stats {
	out := &Stats{
		MaxHP: s.MaxHP, HP: s.HP,
		MaxMP: s.MaxMP, MP: s.MP,
		Attack:      s.Attack,
		Defense:     s.Defense,
		Evasion:     s.Evasion,
		Speed:       s.Speed,
		XP:          s.XP,
		Level:       s.Level,
		Resistances: make(map[string]float64, len(s.Resistances)),
	}
	for e, r := range s.Resistances {
		out.Resistances[string(e)] = r
	}
	return out
}

func captureItem(it *component.Item) *Item {
	if it == nil {
		return nil
	}
	out := &Item{
		Name:        it.Name,
		Slot:        string(it.Slot),
		Stackable:   it.Stackable,
		Quantity:    it.Quantity,
		Identified:  it.Identified,
		Cursed:      it.Cursed,
		Power:       it.Power,
		Element:     string(it.Element),
		Description: it.Description,
	}
	if it.Durability != nil {
		d := *it.Durability
		out.Durability = &d
	}
	return out
}

func colorHex(c tcell.Color) int32 {
	if c == tcell.ColorDefault || !c.Valid() {
		return -1
	}
	return c.Hex()
}
