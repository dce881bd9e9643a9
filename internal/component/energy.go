package component

import "aether-roguelike/internal/ecs"

const CEnergy ecs.ComponentType = 4

// Energy converts speed into turn order. The turn loop is round-robin, so
// the counters are carried and saved but not spent.
type Energy struct {
	Current  int
	Recovery int
}

func (*Energy) Type() ecs.ComponentType { return CEnergy }
