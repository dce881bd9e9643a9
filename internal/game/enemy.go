package game

import (
	"strings"

	"aether-roguelike/internal/component"
	"aether-roguelike/internal/ecs"
	"aether-roguelike/internal/factory"
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/spatial"
	"aether-roguelike/internal/system"
)

// enemyTurns lets every living AI actor on the floor act once, in World
// order. It stops as soon as the player dies.
func (g *Game) enemyTurns() {
	walk := system.ActorWalkMask(g.level)
	player := g.playerPos().Point()
	for _, row := range g.world.Join(component.CPosition, component.CStats, component.CAI) {
		if !g.world.Alive(row.ID) {
			continue
		}
		pos := row.Components[0].(*component.Position)
		stats := row.Components[1].(*component.Stats)
		ai := row.Components[2].(*component.AI)
		if pos.Floor != g.floor || !stats.Alive() {
			continue
		}
		action := system.Decide(ai.Archetype, system.Situation{
			Actor:  pos.Point(),
			Stats:  stats,
			Level:  g.level,
			Player: player,
			Walk:   walk,
		}, g.rng)
		g.perform(ai, pos, stats, action)
		if !g.playerStats().Alive() {
			return
		}
	}
}

func (g *Game) perform(ai *component.AI, pos *component.Position, stats *component.Stats, action system.Action) {
	name := titleCase(ai.Archetype.String())
	switch action.Kind {
	case system.ActAttack:
		res := g.attackPlayer(stats, component.Physical, ai.Archetype.String())
		g.say("%s hits you for %d.", name, res.Damage)
	case system.ActShockwave:
		res := g.attackPlayer(stats, component.Fire, ai.Archetype.String())
		g.say("%s unleashes a shockwave for %d.", name, res.Damage)
	case system.ActMove:
		if g.canEnter(action.Target) {
			pos.MoveTo(action.Target)
		}
	case system.ActSummon:
		g.summon(ai, pos)
	case system.ActTrap:
		if g.taggedAt(component.TagTrap, pos.Point()) == ecs.NilEntity {
			factory.NewTrap(g.world, pos.X, pos.Y, g.floor)
		}
	case system.ActEnrage:
		if ai.Memory[memEnraged] == 0 {
			ai.Memory[memEnraged] = 1
			stats.Attack += enrageAttack
			g.say("%s flies into a rage!", name)
		}
	}
}

func (g *Game) attackPlayer(attacker *component.Stats, element component.Element, cause string) system.AttackResult {
	opts := system.AttackOptions{Element: element}
	if eq, ok := ecs.TryGet[*component.Equipment](g.world, g.player); ok {
		_, opts.DefenseBonus = system.EquipmentBonuses(eq)
	}
	if tracker, ok := ecs.TryGet[*component.StatusTracker](g.world, g.player); ok {
		opts.DefenderStatus = tracker
	}
	res := system.ResolveAttack(attacker, g.playerStats(), opts, g.rng)
	g.hurt(res.Damage, cause)
	return res
}

// canEnter reports whether an enemy may step onto p.
func (g *Game) canEnter(p spatial.Point) bool {
	if !g.level.IsWalkable(p.X, p.Y) || g.level.At(p.X, p.Y) == gamemap.TileLockedDoor {
		return false
	}
	return g.actorAt(p) == ecs.NilEntity
}

func (g *Game) summon(ai *component.AI, pos *component.Position) {
	if ai.Memory[memSummons] >= maxSummons {
		return
	}
	for _, d := range spatial.Cardinals {
		p := pos.Point().Add(d.X, d.Y)
		if !g.canEnter(p) {
			continue
		}
		factory.NewMonster(g.world, component.ArchetypeBrute, p.X, p.Y, g.floor)
		ai.Memory[memSummons]++
		g.say("The summoner calls forth a brute!")
		return
	}
}

// statusUpkeep deals ongoing status damage and then ages every status, for
// the player and every monster on the floor.
func (g *Game) statusUpkeep() {
	for _, id := range g.world.Query(component.CStats, component.CStatus) {
		stats := ecs.MustGet[*component.Stats](g.world, id)
		tracker := ecs.MustGet[*component.StatusTracker](g.world, id)
		isPlayer := id == g.player
		for _, d := range system.ApplyStatusDamage(stats, tracker) {
			if isPlayer {
				g.hurt(d.Amount, d.Name)
				g.say("You take %d damage from %s.", d.Amount, d.Name)
			}
		}
		for _, e := range system.TickStatuses(tracker) {
			if isPlayer {
				g.say("The %s wears off.", e.Name)
			}
		}
		if !isPlayer && !stats.Alive() {
			g.world.DestroyEntity(id)
		}
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
