package component

import (
	"math"

	"aether-roguelike/internal/ecs"
)

const CStats ecs.ComponentType = 3

// Element is the damage type carried by attacks, hazards and statuses.
type Element string

const (
	Physical Element = "physical"
	Fire     Element = "fire"
	Ice      Element = "ice"
	Poison   Element = "poison"
	Shock    Element = "shock"
)

// Elements lists every element in a fixed order.
var Elements = []Element{Physical, Fire, Ice, Poison, Shock}

// maxResistance is the largest float below 1, so no resistance grants full
// immunity.
var maxResistance = math.Nextafter(1, 0)

// Stats holds the combat numbers of an actor. HP and MP only change through
// TakeDamage, Heal and Restore so they stay within [0, max].
type Stats struct {
	MaxHP, HP   int
	MaxMP, MP   int
	Attack      int
	Defense     int
	Evasion     int
	Speed       int
	XP          int
	Level       int
	Resistances map[Element]float64
}

func (*Stats) Type() ecs.ComponentType { return CStats }

// NewStats returns level 1 stats at full health with zero resistances.
func NewStats(hp, mp, atk, def, eva, speed int) *Stats {
	s := &Stats{
		MaxHP: hp, HP: hp,
		MaxMP: mp, MP: mp,
		Attack:      atk,
		Defense:     def,
		Evasion:     eva,
		Speed:       speed,
		Level:       1,
		Resistances: make(map[Element]float64, len(Elements)),
	}
	for _, e := range Elements {
		s.Resistances[e] = 0
	}
	return s
}

// Resistance returns the clamped resistance fraction for e.
func (s *Stats) Resistance(e Element) float64 {
	r := s.Resistances[e]
	switch {
	case r < 0:
		return 0
	case r > maxResistance:
		return maxResistance
	}
	return r
}

// TakeDamage reduces the amount by the resistance for element, subtracts
// it from HP and returns the reduced amount.
func (s *Stats) TakeDamage(amount int, element Element) int {
	if amount <= 0 {
		return 0
	}
	dealt := int(math.Floor(float64(amount) * (1 - s.Resistance(element))))
	s.HP = max(0, s.HP-dealt)
	return dealt
}

// Heal restores up to amount HP and returns how much was restored.
func (s *Stats) Heal(amount int) int {
	before := s.HP
	s.HP = min(s.MaxHP, s.HP+max(0, amount))
	return s.HP - before
}

// Restore refills HP and MP.
func (s *Stats) Restore() {
	s.HP = s.MaxHP
	s.MP = s.MaxMP
}

func (s *Stats) Alive() bool { return s.HP > 0 }
