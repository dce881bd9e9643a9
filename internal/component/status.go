package component

import (
	"slices"

	"aether-roguelike/internal/ecs"
)

const CStatus ecs.ComponentType = 9

// DefaultStatusDuration is used when a status is applied without a duration.
const DefaultStatusDuration = 6

// StatusEffect is one timed condition on an actor.
type StatusEffect struct {
	Name     string
	Duration int
	Potency  int
	Element  Element
}

// StatusTracker keeps at most one effect per name, in application order.
type StatusTracker struct {
	Effects []StatusEffect
}

func (*StatusTracker) Type() ecs.ComponentType { return CStatus }

// Add merges effect into an existing one of the same name, keeping the
// larger duration and potency, or appends it.
func (t *StatusTracker) Add(effect StatusEffect) {
	for i := range t.Effects {
		cur := &t.Effects[i]
		if cur.Name == effect.Name {
			cur.Duration = max(cur.Duration, effect.Duration)
			cur.Potency = max(cur.Potency, effect.Potency)
			return
		}
	}
	t.Effects = append(t.Effects, effect)
}

// Tick decrements every duration and returns the effects that ran out.
func (t *StatusTracker) Tick() []StatusEffect {
	var expired []StatusEffect
	kept := t.Effects[:0]
	for _, e := range t.Effects {
		e.Duration--
		if e.Duration <= 0 {
			expired = append(expired, e)
			continue
		}
		kept = append(kept, e)
	}
	t.Effects = kept
	return expired
}

// Has reports whether a status with name is active.
func (t *StatusTracker) Has(name string) bool {
	return slices.ContainsFunc(t.Effects, func(e StatusEffect) bool { return e.Name == name })
}
