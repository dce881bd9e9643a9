package system

import (
	"aether-roguelike/internal/component"
	"aether-roguelike/internal/rng"
)

// DefaultCritChance is used when AttackOptions.CritChance is zero.
const DefaultCritChance = 0.1

// StatusChance is the chance that a hit inflicts the named status.
type StatusChance struct {
	Name   string
	Chance float64
}

// AttackOptions tunes one attack roll. The zero value is a plain physical
// hit with the default crit chance.
type AttackOptions struct {
	// DefenderStatus receives a status from StatusChances. Nil skips those rolls.
	DefenderStatus *component.StatusTracker
	Element        component.Element
	// BaseDamage overrides the attacker-derived [atk/2, atk] range when set.
	BaseDamage [2]int
	// CritChance of zero means DefaultCritChance; negative disables crits.
	CritChance float64
	// StatusChances are rolled in order; the first success is applied.
	StatusChances []StatusChance
	AttackBonus   int
	DefenseBonus  int
}

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage   int
	Element  component.Element
	Critical bool
	Status   string
}

// ResolveAttack rolls one attack of attacker against defender and applies
// the damage. Damage is the amount actually taken off the defender's HP.
func ResolveAttack(attacker, defender *component.Stats, opts AttackOptions, src rng.Source) AttackResult {
	element := opts.Element
	if element == "" {
		element = component.Physical
	}
	atk := attacker.Attack + opts.AttackBonus
	lo, hi := atk/2, atk
	if opts.BaseDamage != [2]int{} {
		lo, hi = opts.BaseDamage[0], opts.BaseDamage[1]
	}

	raw := rng.Range(src, max(1, lo), max(lo, hi))
	damage := int(float64(raw) * rng.Uniform(src, 0.85, 1.15))
	mitigated := max(0, damage-(defender.Defense+opts.DefenseBonus))

	crit := opts.CritChance
	if crit == 0 {
		crit = DefaultCritChance
	}
	critical := crit > 0 && rng.Chance(src, crit)
	if critical {
		mitigated = int(float64(mitigated)*1.5 + float64(attacker.Attack)*0.25)
	}

	res := AttackResult{
		Damage:   defender.TakeDamage(mitigated, element),
		Element:  element,
		Critical: critical,
	}
	if opts.DefenderStatus != nil {
		for _, sc := range opts.StatusChances {
			if !rng.Chance(src, sc.Chance) {
				continue
			}
			if ApplyStatus(opts.DefenderStatus, sc.Name) {
				res.Status = sc.Name
			}
			break
		}
	}
	return res
}

// StatusDamage is the damage one ongoing status dealt this turn.
type StatusDamage struct {
	Name   string
	Amount int
}

// damagingStatuses deal their potency every turn.
var damagingStatuses = map[string]bool{"bleed": true, "burn": true, "poison": true}

// ApplyStatusDamage applies one turn of damage for every active bleed, burn
// and poison, in tracker order. Durations are left alone; see TickStatuses.
func ApplyStatusDamage(stats *component.Stats, tracker *component.StatusTracker) []StatusDamage {
	var out []StatusDamage
	for _, e := range tracker.Effects {
		if !damagingStatuses[e.Name] {
			continue
		}
		out = append(out, StatusDamage{Name: e.Name, Amount: stats.TakeDamage(e.Potency, e.Element)})
	}
	return out
}

// XPThreshold is the XP needed to leave level.
func XPThreshold(level int) int { return 10 + level*5 }

// GainXP adds reward and performs at most one level-up. Leveling grows the
// maxima, restores HP and MP, and carries the leftover XP.
func GainXP(stats *component.Stats, reward int) bool {
	stats.XP += reward
	threshold := XPThreshold(stats.Level)
	if stats.XP < threshold {
		return false
	}
	stats.XP -= threshold
	stats.Level++
	stats.MaxHP += 4
	stats.MaxMP += 2
	stats.Attack++
	stats.Defense++
	stats.Restore()
	return true
}
