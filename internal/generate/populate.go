package generate

import (
	"aether-roguelike/assets"
	"aether-roguelike/internal/component"
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/rng"
	"aether-roguelike/internal/spatial"
)

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Archetype component.Archetype
	X, Y      int
}

// ItemSpawn describes one floor item to create.
type ItemSpawn struct {
	Item *component.Item
	X, Y int
}

// PopulateResult is returned by Populate with entity spawn data.
type PopulateResult struct {
	Monsters []MonsterSpawn
	Items    []ItemSpawn
}

const (
	spawnChance = 0.03
	lootRolls   = 4
)

// commonArchetypes are drawn for every slot but the last of a floor's budget.
var commonArchetypes = []component.Archetype{
	component.ArchetypeBrute,
	component.ArchetypeSkirmisher,
	component.ArchetypeRanged,
	component.ArchetypeSummoner,
	component.ArchetypeSapper,
}

// Populate plans the monsters and items of a freshly generated level. It
// draws from cfg.Rand, which is the run stream rather than the level stream.
func Populate(level *gamemap.Level, cfg *Config) PopulateResult {
	var result PopulateResult
	src := cfg.Rand
	floor := cfg.FloorNumber
	final := floor >= cfg.MaxFloors

	budget := 6 + floor*2
	last := component.ArchetypeBrute
	if final {
		last = component.ArchetypeBoss
	}
	placed := 0
	for y := range level.Height {
		for x := range level.Width {
			if (spatial.Point{X: x, Y: y}) == level.Start || !level.IsWalkable(x, y) {
				continue
			}
			if !rng.Chance(src, spawnChance) || placed >= budget {
				continue
			}
			arch := last
			if placed < budget-1 {
				arch = rng.Pick(src, commonArchetypes)
			}
			result.Monsters = append(result.Monsters, MonsterSpawn{Archetype: arch, X: x, Y: y})
			placed++
		}
	}

	for _, p := range level.KeyPositions {
		result.Items = append(result.Items, ItemSpawn{Item: assets.KeyItem(floor), X: p.X, Y: p.Y})
	}

	for range lootRolls {
		x := rng.Range(src, 1, level.Width-2)
		y := rng.Range(src, 1, level.Height-2)
		if level.IsWalkable(x, y) {
			result.Items = append(result.Items, ItemSpawn{Item: RollLoot(src, floor), X: x, Y: y})
		}
	}

	if final {
		down := level.StairsDown
		result.Items = append(result.Items, ItemSpawn{Item: assets.CoreItem(), X: down.X, Y: down.Y})
	}
	return result
}
