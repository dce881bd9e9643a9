package factory

import (
	"aether-roguelike/assets"
	"aether-roguelike/internal/component"
	"aether-roguelike/internal/ecs"
	"aether-roguelike/internal/generate"
	"aether-roguelike/internal/rng"
	"aether-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Player starting numbers.
const (
	PlayerHP      = 30
	PlayerMP      = 12
	playerAttack  = 6
	playerDefense = 3
	playerEvasion = 5
	playerSpeed   = 90
	bagWidth      = 5
	bagHeight     = 4
)

var monsterGlyphs = [component.ArchetypeCount]string{
	component.ArchetypeBrute:      assets.GlyphBrute,
	component.ArchetypeSkirmisher: assets.GlyphSkirmisher,
	component.ArchetypeRanged:     assets.GlyphRanged,
	component.ArchetypeSummoner:   assets.GlyphSummoner,
	component.ArchetypeSapper:     assets.GlyphSapper,
	component.ArchetypeBoss:       assets.GlyphBoss,
}

var monsterColors = [component.ArchetypeCount]tcell.Color{
	component.ArchetypeBrute:      assets.ColorBrute,
	component.ArchetypeSkirmisher: assets.ColorSkirmisher,
	component.ArchetypeRanged:     assets.ColorRanged,
	component.ArchetypeSummoner:   assets.ColorSummoner,
	component.ArchetypeSapper:     assets.ColorSapper,
	component.ArchetypeBoss:       assets.ColorBoss,
}

// NewPlayer creates the player entity at (x, y) on floor.
func NewPlayer(w *ecs.World, x, y, floor int) ecs.EntityID {
	stats := component.NewStats(PlayerHP, PlayerMP, playerAttack, playerDefense, playerEvasion, playerSpeed)
	system.ApplyBaseResistances(stats, component.TagPlayer)
	return w.Spawn([]string{component.TagPlayer},
		&component.Position{X: x, Y: y, Floor: floor},
		&component.Renderable{
			Glyph:   assets.GlyphPlayer,
			FGColor: assets.ColorPlayer,
			BGColor: tcell.ColorDefault,
			Order:   assets.OrderPlayer,
		},
		stats,
		&component.Energy{Recovery: stats.Speed},
		&component.Inventory{Width: bagWidth, Height: bagHeight},
		&component.Equipment{},
		&component.StatusTracker{},
		&component.MessageLog{},
	)
}

// MonsterStats rolls the stats of a monster. The numbers depend only on the
// floor and the spawn cell, so a floor always yields the same monsters.
func MonsterStats(arch component.Archetype, x, y, floor int) *component.Stats {
	src := rng.New(int64(floor*1337 + x*17 + y*31))
	hp := rng.Range(src, 8, 18) + floor*2
	mp := rng.Range(src, 0, 6) + floor
	atk := rng.Range(src, 4, 8) + floor
	def := rng.Range(src, 1, 5) + floor/2
	eva := rng.Range(src, 2, 6) + floor
	speed := 100 - min(20, floor*2)
	stats := component.NewStats(hp, mp, atk, def, eva, speed)
	system.ApplyBaseResistances(stats, arch.String())
	return stats
}

// NewMonster creates a monster of archetype arch at (x, y) on floor.
func NewMonster(w *ecs.World, arch component.Archetype, x, y, floor int) ecs.EntityID {
	stats := MonsterStats(arch, x, y, floor)
	glyph, color := "?", assets.ColorItem
	if arch < component.ArchetypeCount {
		glyph, color = monsterGlyphs[arch], monsterColors[arch]
	}
	return w.Spawn([]string{component.TagMonster},
		&component.Position{X: x, Y: y, Floor: floor},
		&component.Renderable{Glyph: glyph, FGColor: color, BGColor: tcell.ColorDefault, Order: assets.OrderMonster},
		stats,
		&component.Energy{Recovery: stats.Speed},
		component.NewAI(arch),
		&component.StatusTracker{},
		&component.ExperienceReward{Amount: 5 + floor*2},
	)
}

// NewItem places item on the floor at (x, y).
func NewItem(w *ecs.World, item *component.Item, x, y, floor int) ecs.EntityID {
	glyph, color := assets.GlyphItem, assets.ColorItem
	if item.Name == assets.KeyName(floor) {
		glyph, color = assets.GlyphKey, assets.ColorKey
	}
	return w.Spawn([]string{component.TagItem},
		&component.Position{X: x, Y: y, Floor: floor},
		&component.Renderable{Glyph: glyph, FGColor: color, BGColor: tcell.ColorDefault, Order: assets.OrderItem},
		item,
	)
}

// NewTrap creates a trap entity planted during play.
func NewTrap(w *ecs.World, x, y, floor int) ecs.EntityID {
	return w.Spawn([]string{component.TagTrap},
		&component.Position{X: x, Y: y, Floor: floor},
		&component.Renderable{
			Glyph:   assets.GlyphTrap,
			FGColor: assets.ColorHazard,
			BGColor: tcell.ColorDefault,
			Order:   assets.OrderTrap,
		},
	)
}

// Populate creates the entities of a population roll and returns the
// monsters it spawned, in spawn order.
func Populate(w *ecs.World, res generate.PopulateResult, floor int) []ecs.EntityID {
	monsters := make([]ecs.EntityID, 0, len(res.Monsters))
	for _, m := range res.Monsters {
		monsters = append(monsters, NewMonster(w, m.Archetype, m.X, m.Y, floor))
	}
	for _, it := range res.Items {
		NewItem(w, it.Item, it.X, it.Y, floor)
	}
	return monsters
}
