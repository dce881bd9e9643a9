package game

import (
	"strings"

	"aether-roguelike/assets"
	"aether-roguelike/internal/component"
	"aether-roguelike/internal/ecs"
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/spatial"
	"aether-roguelike/internal/system"

	"github.com/sirupsen/logrus"
)

// Intent is one player request.
type Intent interface{ intent() }

type (
	// Move steps by (DX, DY), attacking whatever stands there.
	Move struct{ DX, DY int }
	Wait struct{}
	// PickUp takes the first item on the player's cell.
	PickUp  struct{}
	Descend struct{}
	Ascend  struct{}
	// ViewInventory and ViewEquipment list items without using a turn.
	ViewInventory struct{}
	ViewEquipment struct{}
	// Equip wears the inventory item at Index.
	Equip struct{ Index int }
	// Unequip takes off the item in Slot ("weapon", "armor", "ring",
	// "ring_left", "ring_right" or "charm").
	Unequip struct{ Slot string }
)

func (Move) intent()          {}
func (Wait) intent()          {}
func (PickUp) intent()        {}
func (Descend) intent()       {}
func (Ascend) intent()        {}
func (ViewInventory) intent() {}
func (ViewEquipment) intent() {}
func (Equip) intent()         {}
func (Unequip) intent()       {}

// Outcome reports what one Step did.
type Outcome struct {
	// Consumed is true when the intent used up the player's turn.
	Consumed bool
	// State is the orchestrator state after the step.
	State string
	// Lines holds the listing produced by a view intent.
	Lines []string
}

// result is how a player action resolved.
type result uint8

const (
	rejected result = iota
	acted
	changedFloor
	escaped
)

// Step applies one player intent and, when it used the turn, runs every
// enemy and the end-of-turn upkeep. Intents sent after the run ended are
// ignored.
func (g *Game) Step(in Intent) Outcome {
	if g.Over() {
		return Outcome{State: g.State()}
	}
	switch in.(type) {
	case ViewInventory:
		return Outcome{State: g.State(), Lines: g.InventoryLines()}
	case ViewEquipment:
		return Outcome{State: g.State(), Lines: g.EquipmentLines()}
	}

	g.fire(evAct)
	res := g.resolvePlayer(in)
	switch res {
	case rejected:
		g.fire(evReject)
		return Outcome{State: g.State()}
	case escaped:
		g.turn++
		g.fire(evWin)
		return Outcome{Consumed: true, State: g.State()}
	case changedFloor:
		g.turn++
		g.fire(evArrive)
		return Outcome{Consumed: true, State: g.State()}
	}

	if !g.playerStats().Alive() {
		g.turn++
		g.fire(evLose)
		return Outcome{Consumed: true, State: g.State()}
	}
	g.fire(evEnemies)
	g.enemyTurns()
	if g.playerStats().Alive() {
		g.statusUpkeep()
	}
	g.updateFOV()
	g.turn++
	if !g.playerStats().Alive() {
		g.fire(evLose)
	} else {
		g.fire(evEndTurn)
	}
	return Outcome{Consumed: true, State: g.State()}
}

func (g *Game) resolvePlayer(in Intent) result {
	switch in := in.(type) {
	case Move:
		return g.movePlayer(in.DX, in.DY)
	case Wait:
		return acted
	case PickUp:
		return g.pickUp()
	case Descend:
		return g.useStairs(true)
	case Ascend:
		return g.useStairs(false)
	case Equip:
		return g.equip(in.Index)
	case Unequip:
		return g.unequip(in.Slot)
	}
	return rejected
}

func (g *Game) movePlayer(dx, dy int) result {
	pos := g.playerPos()
	to := pos.Point().Add(dx, dy)
	if !g.level.InBounds(to.X, to.Y) {
		return rejected
	}
	tile := g.level.At(to.X, to.Y)
	switch tile {
	case gamemap.TileWall:
		return rejected
	case gamemap.TileLockedDoor:
		if !g.hasKey() {
			g.say("The door is locked.")
			return rejected
		}
		g.level.Unlock(to)
		g.say("You unlock the door.")
		log.WithField("door", to).Debug("door unlocked")
	}
	if target := g.actorAt(to); target != ecs.NilEntity && target != g.player {
		g.melee(target)
		return acted
	}
	pos.MoveTo(to)
	g.enterCell(to, tile)
	return acted
}

// enterCell applies hazard tiles and planted traps under the player.
func (g *Game) enterCell(p spatial.Point, tile gamemap.TileKind) {
	stats := g.playerStats()
	switch tile {
	case gamemap.TileAcid:
		taken := stats.TakeDamage(max(1, stats.MaxHP/acidDivisor), component.Poison)
		g.hurt(taken, "acid")
		g.say("Acid burns you for %d damage!", taken)
	case gamemap.TileLava:
		taken := stats.TakeDamage(max(2, stats.MaxHP/lavaDivisor), component.Fire)
		g.hurt(taken, "lava")
		g.say("Lava sears you for %d damage!", taken)
	case gamemap.TileTrap:
		g.hurt(stats.TakeDamage(trapDamage, component.Physical), "trap")
		g.say("A trap triggers underfoot!")
	}
	if trap := g.taggedAt(component.TagTrap, p); trap != ecs.NilEntity {
		g.world.DestroyEntity(trap)
		g.hurt(stats.TakeDamage(trapDamage, component.Physical), "trap")
		g.say("A trap triggers underfoot!")
	}
}

func (g *Game) hurt(amount int, cause string) {
	if amount <= 0 {
		return
	}
	g.runLog.DamageTaken += amount
	g.runLog.CauseOfDeath = cause
}

func (g *Game) melee(target ecs.EntityID) {
	attacker := g.playerStats()
	defender := ecs.MustGet[*component.Stats](g.world, target)
	eq, _ := ecs.TryGet[*component.Equipment](g.world, g.player)
	atkBonus, _ := system.EquipmentBonuses(eq)
	opts := system.AttackOptions{AttackBonus: atkBonus}
	if eq != nil && eq.Weapon != nil {
		opts.Element = eq.Weapon.Element
	}
	if tracker, ok := ecs.TryGet[*component.StatusTracker](g.world, target); ok {
		opts.DefenderStatus = tracker
	}
	if targetEq, ok := ecs.TryGet[*component.Equipment](g.world, target); ok {
		_, opts.DefenseBonus = system.EquipmentBonuses(targetEq)
	}

	res := system.ResolveAttack(attacker, defender, opts, g.rng)
	g.runLog.DamageDealt += res.Damage
	if res.Critical {
		g.say("You crit hit for %d %s damage.", res.Damage, res.Element)
	} else {
		g.say("You hit for %d %s damage.", res.Damage, res.Element)
	}
	if defender.Alive() {
		return
	}
	if reward, ok := ecs.TryGet[*component.ExperienceReward](g.world, target); ok {
		leveled := system.GainXP(attacker, reward.Amount)
		g.say("You slay the foe and gain %d XP.", reward.Amount)
		if leveled {
			g.say("You feel stronger.")
			log.WithField("level", attacker.Level).Debug("player leveled up")
		}
	}
	if ai, ok := ecs.TryGet[*component.AI](g.world, target); ok {
		g.runLog.Kills[ai.Archetype.String()]++
	}
	g.world.DestroyEntity(target)
}

func (g *Game) pickUp() result {
	p := g.playerPos().Point()
	id := g.taggedAt(component.TagItem, p)
	if id == ecs.NilEntity {
		g.say("There is nothing here to pick up.")
		return rejected
	}
	item := ecs.MustGet[*component.Item](g.world, id)
	inv := ecs.MustGet[*component.Inventory](g.world, g.player)
	if !inv.Add(item) {
		g.say("Inventory full.")
		return rejected
	}
	if strings.HasPrefix(item.Name, assets.KeyPrefix) {
		g.keyring.Put(item.Name)
	}
	if item.Name == assets.AetherCore {
		g.hasCore = true
		log.Info("aether core retrieved")
	}
	g.world.DestroyEntity(id)
	g.say("Picked up %s.", item.Name)
	return acted
}

func (g *Game) useStairs(descend bool) result {
	p := g.playerPos().Point()
	target := g.level.StairsUp
	if descend {
		target = g.level.StairsDown
	}
	if p != target {
		g.say("You are not on the stairs.")
		return rejected
	}
	next := g.floor - 1
	switch {
	case descend && g.floor >= g.opts.MaxFloors:
		g.say("The caverns end here.")
		return rejected
	case descend:
		next = g.floor + 1
	case g.floor == 1 && g.hasCore:
		g.say("You escape with the Aether Core. You Win!")
		return escaped
	case g.floor == 1:
		g.say("You cannot leave without the Aether Core.")
		return rejected
	}

	level, err := g.generateFloor(next)
	if err != nil {
		// Floors are a pure function of seed and index, so a failing one
		// fails every time; stay put.
		log.WithError(err).Error("floor generation failed")
		g.say("The way is blocked.")
		return rejected
	}
	g.fire(evStairs)
	log.WithFields(logrus.Fields{"from": g.floor, "to": next}).Info("floor transition")
	g.enterFloor(next, level)
	g.say("Entering floor %d (seed %d).", next, g.opts.Seed)
	return changedFloor
}
