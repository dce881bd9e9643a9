package factory

import (
	"testing"

	"aether-roguelike/assets"
	"aether-roguelike/internal/component"
	"aether-roguelike/internal/ecs"
	"aether-roguelike/internal/generate"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, 5, 3, 1)

	if !w.Alive(id) || !w.HasTag(id, component.TagPlayer) {
		t.Fatal("player must be alive and tagged")
	}
	pos := ecs.MustGet[*component.Position](w, id)
	if pos.X != 5 || pos.Y != 3 || pos.Floor != 1 {
		t.Errorf("position = %+v; want (5,3) on floor 1", *pos)
	}
	stats := ecs.MustGet[*component.Stats](w, id)
	if stats.HP != PlayerHP || stats.MaxMP != PlayerMP || stats.Attack != 6 || stats.Defense != 3 || stats.Speed != 90 {
		t.Errorf("stats = %+v", *stats)
	}
	if stats.Resistances[component.Physical] != 0.05 {
		t.Errorf("player physical resistance = %v; want 0.05", stats.Resistances[component.Physical])
	}
	if inv := ecs.MustGet[*component.Inventory](w, id); inv.Capacity() != 20 {
		t.Errorf("inventory capacity = %d; want 20", inv.Capacity())
	}
	if r := ecs.MustGet[*component.Renderable](w, id); r.Glyph != assets.GlyphPlayer || r.Order != assets.OrderPlayer {
		t.Errorf("renderable = %+v", *r)
	}
	if e := ecs.MustGet[*component.Energy](w, id); e.Recovery != 90 {
		t.Errorf("energy recovery = %d; want 90", e.Recovery)
	}
	for _, typ := range []ecs.ComponentType{component.CEquipment, component.CStatus, component.CMessageLog} {
		if !w.Has(id, typ) {
			t.Errorf("player missing component %d", typ)
		}
	}
	if w.Has(id, component.CAI) {
		t.Error("player must not have AI")
	}
}

func TestMonsterStatsDeterministic(t *testing.T) {
	a := MonsterStats(component.ArchetypeBrute, 10, 4, 3)
	b := MonsterStats(component.ArchetypeBrute, 10, 4, 3)
	if a.MaxHP != b.MaxHP || a.Attack != b.Attack || a.Defense != b.Defense || a.Evasion != b.Evasion {
		t.Fatalf("same cell and floor rolled %+v and %+v", *a, *b)
	}
}

func TestMonsterStatsRanges(t *testing.T) {
	for floor := 1; floor <= 8; floor++ {
		for x := 1; x < 20; x += 3 {
			s := MonsterStats(component.ArchetypeSkirmisher, x, 7, floor)
			if s.MaxHP < 8+2*floor || s.MaxHP > 18+2*floor {
				t.Errorf("floor %d: hp %d out of range", floor, s.MaxHP)
			}
			if s.Attack < 4+floor || s.Attack > 8+floor {
				t.Errorf("floor %d: atk %d out of range", floor, s.Attack)
			}
			if s.Defense < 1+floor/2 || s.Defense > 5+floor/2 {
				t.Errorf("floor %d: def %d out of range", floor, s.Defense)
			}
			if want := 100 - min(20, 2*floor); s.Speed != want {
				t.Errorf("floor %d: speed %d; want %d", floor, s.Speed, want)
			}
			if s.HP != s.MaxHP || s.Level != 1 {
				t.Errorf("floor %d: monster should start full at level 1", floor)
			}
		}
	}
}

func TestNewMonsterComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewMonster(w, component.ArchetypeSummoner, 4, 6, 2)
	if !w.HasTag(id, component.TagMonster) {
		t.Fatal("monster must be tagged")
	}
	ai := ecs.MustGet[*component.AI](w, id)
	if ai.Archetype != component.ArchetypeSummoner || ai.Memory == nil {
		t.Errorf("ai = %+v", *ai)
	}
	if r := ecs.MustGet[*component.Renderable](w, id); r.Glyph != assets.GlyphSummoner || r.Order != assets.OrderMonster {
		t.Errorf("renderable = %+v", *r)
	}
	if xp := ecs.MustGet[*component.ExperienceReward](w, id); xp.Amount != 9 {
		t.Errorf("xp reward = %d; want 9", xp.Amount)
	}
	stats := ecs.MustGet[*component.Stats](w, id)
	if stats.Resistances[component.Poison] != 0.2 {
		t.Errorf("summoner poison resistance = %v; want 0.2", stats.Resistances[component.Poison])
	}
	if e := ecs.MustGet[*component.Energy](w, id); e.Recovery != stats.Speed {
		t.Errorf("energy recovery %d; want speed %d", e.Recovery, stats.Speed)
	}
}

func TestNewItemGlyphs(t *testing.T) {
	w := ecs.NewWorld()
	key := NewItem(w, assets.KeyItem(3), 1, 1, 3)
	potion := NewItem(w, assets.ItemFromName("Potion of Healing"), 2, 1, 3)

	if r := ecs.MustGet[*component.Renderable](w, key); r.Glyph != assets.GlyphKey {
		t.Errorf("key glyph = %q", r.Glyph)
	}
	if r := ecs.MustGet[*component.Renderable](w, potion); r.Glyph != assets.GlyphItem || r.Order != assets.OrderItem {
		t.Errorf("potion renderable = %+v", *r)
	}
	if got := w.Tagged(component.TagItem); len(got) != 2 {
		t.Errorf("tagged items = %v", got)
	}
}

func TestNewTrap(t *testing.T) {
	w := ecs.NewWorld()
	id := NewTrap(w, 3, 3, 1)
	if !w.HasTag(id, component.TagTrap) || w.Has(id, component.CStats) {
		t.Fatal("trap should be tagged and have no stats")
	}
	if r := ecs.MustGet[*component.Renderable](w, id); r.Order != assets.OrderTrap {
		t.Errorf("trap order = %d", r.Order)
	}
}

func TestPopulateSpawnsEverything(t *testing.T) {
	w := ecs.NewWorld()
	res := generate.PopulateResult{
		Monsters: []generate.MonsterSpawn{
			{Archetype: component.ArchetypeBrute, X: 2, Y: 2},
			{Archetype: component.ArchetypeBoss, X: 5, Y: 2},
		},
		Items: []generate.ItemSpawn{
			{Item: assets.CoreItem(), X: 7, Y: 7},
		},
	}
	monsters := Populate(w, res, 8)
	if len(monsters) != 2 {
		t.Fatalf("spawned %d monsters", len(monsters))
	}
	if ai := ecs.MustGet[*component.AI](w, monsters[1]); ai.Archetype != component.ArchetypeBoss {
		t.Error("spawn order should be kept")
	}
	items := w.Tagged(component.TagItem)
	if len(items) != 1 || ecs.MustGet[*component.Item](w, items[0]).Name != assets.AetherCore {
		t.Errorf("items = %v", items)
	}
}
