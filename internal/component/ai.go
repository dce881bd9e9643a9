package component

import "aether-roguelike/internal/ecs"

const CAI ecs.ComponentType = 5

// Archetype selects the decision policy of a non-player actor.
type Archetype uint8

const (
	ArchetypeBrute Archetype = iota
	ArchetypeSkirmisher
	ArchetypeRanged
	ArchetypeSummoner
	ArchetypeSapper
	ArchetypeBoss
	ArchetypeCount
)

var archetypeNames = [ArchetypeCount]string{
	ArchetypeBrute:      "brute",
	ArchetypeSkirmisher: "skirmisher",
	ArchetypeRanged:     "ranged",
	ArchetypeSummoner:   "summoner",
	ArchetypeSapper:     "sapper",
	ArchetypeBoss:       "boss",
}

func (a Archetype) String() string {
	if a < ArchetypeCount {
		return archetypeNames[a]
	}
	return "unknown"
}

// ParseArchetype maps a name back to its archetype.
func ParseArchetype(name string) (Archetype, bool) {
	for i, n := range archetypeNames {
		if n == name {
			return Archetype(i), true
		}
	}
	return 0, false
}

// AI carries an actor's archetype plus per-archetype memory across turns.
type AI struct {
	Archetype Archetype
	Cooldown  int
	Memory    map[string]int
}

func (*AI) Type() ecs.ComponentType { return CAI }

func NewAI(a Archetype) *AI {
	return &AI{Archetype: a, Memory: make(map[string]int)}
}
