package component

import "aether-roguelike/internal/ecs"

const CReward ecs.ComponentType = 10

// ExperienceReward is the XP granted to whoever kills the entity.
type ExperienceReward struct {
	Amount int
}

func (*ExperienceReward) Type() ecs.ComponentType { return CReward }
