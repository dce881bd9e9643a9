package system

import (
	"aether-roguelike/internal/component"
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/rng"
	"aether-roguelike/internal/spatial"
)

// ActionKind is the kind of move an actor decided on.
type ActionKind uint8

const (
	ActWait ActionKind = iota
	ActMove
	ActAttack
	ActSummon
	ActTrap
	ActEnrage
	ActShockwave
)

var actionNames = [...]string{"wait", "move", "attack", "summon", "trap", "enrage", "shockwave"}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "unknown"
}

// Action is one decision. Target is meaningful for every kind but wait and enrage.
type Action struct {
	Kind   ActionKind
	Target spatial.Point
}

// Situation is what an actor sees when deciding.
type Situation struct {
	Actor  spatial.Point
	Stats  *component.Stats
	Level  *gamemap.Level
	Player spatial.Point
	// Walk is the movement mask shared by every actor this turn. Locked
	// doors are closed in it. Built from Level when nil.
	Walk *spatial.Mask
}

func (s *Situation) walk() *spatial.Mask {
	if s.Walk == nil {
		s.Walk = ActorWalkMask(s.Level)
	}
	return s.Walk
}

func (s *Situation) distance() int { return s.Actor.Manhattan(s.Player) }

// pathStep returns the first step toward the player, if any.
func (s *Situation) pathStep() (spatial.Point, bool) {
	path := spatial.FindPath(s.walk(), s.Actor, s.Player)
	if len(path) <= 1 {
		return spatial.Point{}, false
	}
	return path[1], true
}

// ActorWalkMask is the grid actors path over: walkable tiles with every
// locked door closed.
func ActorWalkMask(level *gamemap.Level) *spatial.Mask {
	return level.WalkMask(level.LockedDoors...)
}

type policy func(s *Situation, src rng.Source) Action

// policies has one entry per archetype.
var policies = [component.ArchetypeCount]policy{
	component.ArchetypeBrute:      brutePolicy,
	component.ArchetypeSkirmisher: skirmisherPolicy,
	component.ArchetypeRanged:     rangedPolicy,
	component.ArchetypeSummoner:   summonerPolicy,
	component.ArchetypeSapper:     sapperPolicy,
	component.ArchetypeBoss:       bossPolicy,
}

// Decide returns the action of an actor with archetype a. src is only drawn
// from by policies with a random branch.
func Decide(a component.Archetype, s Situation, src rng.Source) Action {
	if a >= component.ArchetypeCount || policies[a] == nil {
		return Action{Kind: ActWait}
	}
	return policies[a](&s, src)
}

func wait() Action { return Action{Kind: ActWait} }

func moveToward(s *Situation) Action {
	if step, ok := s.pathStep(); ok {
		return Action{Kind: ActMove, Target: step}
	}
	return wait()
}

func brutePolicy(s *Situation, _ rng.Source) Action {
	if s.distance() <= 1 {
		return Action{Kind: ActAttack, Target: s.Player}
	}
	return moveToward(s)
}

func skirmisherPolicy(s *Situation, _ rng.Source) Action {
	d := s.distance()
	switch {
	case d >= 2 && d <= 3:
		return Action{Kind: ActAttack, Target: s.Player}
	case d < 2:
		// one diagonal step away; when aligned on an axis the step still
		// moves off that axis
		dx, dy := s.Actor.X-s.Player.X, s.Actor.Y-s.Player.Y
		step := spatial.Point{X: s.Actor.X + away(dx), Y: s.Actor.Y + away(dy)}
		return Action{Kind: ActMove, Target: step}
	}
	return moveToward(s)
}

// away is the retreat direction along one axis given actor-minus-player.
// Sharing the axis retreats toward +1.
func away(d int) int {
	if d < 0 {
		return -1
	}
	return 1
}

func rangedPolicy(s *Situation, _ rng.Source) Action {
	if s.distance() >= 4 {
		return Action{Kind: ActAttack, Target: s.Player}
	}
	path := spatial.FindPath(s.walk(), s.Actor, s.Player)
	if len(path) <= 1 {
		return wait()
	}
	// stop short of the player: the second-to-last cell, or the goal when
	// the path is a single step
	step := path[len(path)-min(2, len(path)-1)]
	return Action{Kind: ActMove, Target: step}
}

func summonerPolicy(s *Situation, _ rng.Source) Action {
	d := s.distance()
	if d > 4 {
		return Action{Kind: ActSummon, Target: s.Player}
	}
	if d > 1 {
		return moveToward(s)
	}
	return wait()
}

// sapperNeighbours is the order the sapper compares neighbours in.
var sapperNeighbours = [4]spatial.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

func sapperPolicy(s *Situation, _ rng.Source) Action {
	field := spatial.FlowField(s.walk(), s.Player)
	best := s.Actor
	bestCost := field.At(s.Actor.X, s.Actor.Y)
	for _, d := range sapperNeighbours {
		n := s.Actor.Add(d.X, d.Y)
		if c := field.At(n.X, n.Y); c < bestCost {
			best, bestCost = n, c
		}
	}
	if best != s.Actor {
		return Action{Kind: ActMove, Target: best}
	}
	return Action{Kind: ActTrap, Target: s.Actor}
}

const enrageChance = 0.3

func bossPolicy(s *Situation, src rng.Source) Action {
	if s.Stats.HP <= s.Stats.MaxHP/2 && rng.Chance(src, enrageChance) {
		return Action{Kind: ActEnrage}
	}
	if s.distance() <= 2 {
		return Action{Kind: ActShockwave, Target: s.Player}
	}
	return moveToward(s)
}
