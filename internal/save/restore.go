package save

import (
	"fmt"

	"aether-roguelike/internal/component"
	"aether-roguelike/internal/ecs"
	"aether-roguelike/internal/game"
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/generate"
	"aether-roguelike/internal/logger"
	"aether-roguelike/internal/rng"
	"aether-roguelike/internal/spatial"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var log = logger.For("save")

// Check reports whether doc carries a schema name and version this build
// understands.
func Check(doc *Document) error {
	if doc.Schema != SchemaName {
		return fmt.Errorf("%w: schema %q", ErrSchemaMismatch, doc.Schema)
	}
	if doc.Version != Version {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrSchemaMismatch, doc.Version, Version)
	}
	return nil
}

// Restore builds a new game from doc. The seed and generator mode come
// from the document; the remaining options come from opts. Nothing is
// shared with any running game, so a failed restore leaves the caller's
// game untouched.
func Restore(doc *Document, opts game.Options) (*game.Game, error) {
	if err := Check(doc); err != nil {
		log.WithError(err).Warn("rejected save")
		return nil, err
	}
	mode, err := generate.ParseMode(doc.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	opts.Seed, opts.Mode = doc.Seed, mode

	level, err := restoreMap(doc.Map)
	if err != nil {
		return nil, err
	}
	explored, err := restoreMask(doc.Explored, level.Width, level.Height)
	if err != nil {
		return nil, err
	}
	stream := rng.New(doc.Seed)
	if err := stream.Restore(doc.RNG); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	world := ecs.NewWorld()
	player := ecs.NilEntity
	for i, a := range doc.Actors {
		id, err := restoreActor(world, a)
		if err != nil {
			return nil, fmt.Errorf("%w: actor %d: %v", ErrCorrupt, i, err)
		}
		if a.Kind == KindPlayer {
			if player != ecs.NilEntity {
				return nil, fmt.Errorf("%w: more than one player", ErrCorrupt)
			}
			player = id
		}
	}
	if player == ecs.NilEntity {
		return nil, fmt.Errorf("%w: no player", ErrCorrupt)
	}
	world.Add(player, &component.MessageLog{Entries: append([]string(nil), doc.Log...)})

	g, err := game.FromResume(opts, game.Resume{
		World:    world,
		Player:   player,
		Level:    level,
		Explored: explored,
		Floor:    doc.Floor,
		Turn:     doc.Turn,
		Rand:     stream,
		Keyring:  doc.Keyring,
		HasCore:  doc.VictoryItem,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	log.WithFields(logrus.Fields{"floor": doc.Floor, "turn": doc.Turn}).Info("game restored")
	return g, nil
}

func restoreMap(m Map) (*gamemap.Level, error) {
	if m.Width < 1 || m.Height < 1 || len(m.Tiles) != m.Height {
		return nil, fmt.Errorf("%w: map %dx%d with %d rows", ErrCorrupt, m.Width, m.Height, len(m.Tiles))
	}
	l := gamemap.New(m.Width, m.Height)
	for y, row := range m.Tiles {
		if len(row) != m.Width {
			return nil, fmt.Errorf("%w: tile row %d has %d cells", ErrCorrupt, y, len(row))
		}
		for x := range len(row) {
			k := gamemap.TileKind(row[x] - '0')
			if row[x] < '0' || k.String() == "unknown" {
				return nil, fmt.Errorf("%w: bad tile %q at (%d,%d)", ErrCorrupt, row[x], x, y)
			}
			l.Set(x, y, k)
		}
	}
	l.Start = m.Start.point()
	l.StairsUp = m.StairsUp.point()
	l.StairsDown = m.StairsDown.point()
	l.LockedDoors = toPoints(m.LockedDoors)
	l.KeyPositions = toPoints(m.KeyPositions)
	l.Hazards = toPoints(m.Hazards)
	l.TrapHints = toPoints(m.TrapHints)
	for _, dk := range m.DoorKeys {
		l.DoorKeys[dk.Door.point()] = dk.Key.point()
	}
	for _, p := range []spatial.Point{l.Start, l.StairsUp, l.StairsDown} {
		if !l.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: feature %v outside the map", ErrCorrupt, p)
		}
	}
	return l, nil
}

// restoreMask decodes explored rows. A document without rows restores an
// unexplored floor.
func restoreMask(rows []string, w, h int) (*spatial.Mask, error) {
	m := spatial.NewMask(w, h)
	if len(rows) == 0 {
		return m, nil
	}
	if len(rows) != h {
		return nil, fmt.Errorf("%w: %d explored rows for height %d", ErrCorrupt, len(rows), h)
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: explored row %d has %d cells", ErrCorrupt, y, len(row))
		}
		for x := range len(row) {
			m.Set(x, y, row[x] == '1')
		}
	}
	return m, nil
}

func restoreActor(w *ecs.World, a Actor) (ecs.EntityID, error) {
	switch a.Kind {
	case KindPlayer, KindMonster, KindItem, KindTrap:
	default:
		return ecs.NilEntity, fmt.Errorf("unknown kind %q", a.Kind)
	}
	comps := []ecs.Component{&component.Position{X: a.Position.X, Y: a.Position.Y, Floor: a.Position.Floor}}
	if r := a.Renderable; r != nil {
		comps = append(comps, &component.Renderable{Glyph: r.Glyph, FGColor: hexColor(r.FG), BGColor: hexColor(r.BG), Order: r.Order})
	}
	if a.Stats != nil {
		comps = append(comps, restoreStats(a.Stats))
	}
	if a.Energy != nil {
		comps = append(comps, &component.Energy{Current: a.Energy.Current, Recovery: a.Energy.Recovery})
	}
	if a.AI != nil {
		arch, ok := component.ParseArchetype(a.AI.Archetype)
		if !ok {
			return ecs.NilEntity, fmt.Errorf("unknown archetype %q", a.AI.Archetype)
		}
		ai := component.NewAI(arch)
		ai.Cooldown = a.AI.Cooldown
		for k, v := range a.AI.Memory {
			ai.Memory[k] = v
		}
		comps = append(comps, ai)
	}
	if a.Reward > 0 {
		comps = append(comps, &component.ExperienceReward{Amount: a.Reward})
	}
	if a.Item != nil {
		comps = append(comps, restoreItem(a.Item))
	}
	if a.Inventory != nil {
		inv := &component.Inventory{Width: a.Inventory.Width, Height: a.Inventory.Height}
		for i := range a.Inventory.Items {
			inv.Items = append(inv.Items, restoreItem(&a.Inventory.Items[i]))
		}
		comps = append(comps, inv)
	}
	if eq := a.Equipment; eq != nil {
		comps = append(comps, &component.Equipment{
			Weapon:    restoreItem(eq.Weapon),
			Armor:     restoreItem(eq.Armor),
			RingLeft:  restoreItem(eq.RingLeft),
			RingRight: restoreItem(eq.RingRight),
			Charm:     restoreItem(eq.Charm),
		})
	}
	if a.Kind == KindPlayer || a.Kind == KindMonster {
		tracker := &component.StatusTracker{}
		for _, s := range a.Statuses {
			tracker.Effects = append(tracker.Effects, component.StatusEffect{
				Name:     s.Name,
				Duration: s.Duration,
				Potency:  s.Potency,
				Element:  component.Element(s.Element),
			})
		}
		comps = append(comps, tracker)
	}
	return w.Spawn([]string{a.Kind}, comps...), nil
}

func restoreStats(s *Stats) *component.Stats {
	out := component.NewStats(s.MaxHP, s.MaxMP, s.Attack, s.Defense, s.Evasion, s.Speed)
	out.HP, out.MP = s.HP, s.MP
	out.XP, out.Level = s.XP, s.Level
	for e, r := range s.Resistances {
		out.Resistances[component.Element(e)] = r
	}
	return out
}

func restoreItem(it *Item) *component.Item {
	if it == nil {
		return nil
	}
	out := &component.Item{
		Name:        it.Name,
		Slot:        component.Slot(it.Slot),
		Stackable:   it.Stackable,
		Quantity:    it.Quantity,
		Identified:  it.Identified,
		Cursed:      it.Cursed,
		Power:       it.Power,
		Element:     component.Element(it.Element),
		Description: it.Description,
	}
	if it.Durability != nil {
		d := *it.Durability
		out.Durability = &d
	}
	return out
}

func hexColor(v int32) tcell.Color {
	if v < 0 {
		return tcell.ColorDefault
	}
	return tcell.NewHexColor(v)
}
