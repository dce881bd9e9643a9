package system

import "aether-roguelike/internal/component"

type statusTemplate struct {
	element component.Element
	potency int
}

var statusTemplates = map[string]statusTemplate{
	"bleed":  {component.Physical, 2},
	"burn":   {component.Fire, 3},
	"freeze": {component.Ice, 2},
	"poison": {component.Poison, 2},
	"shock":  {component.Shock, 2},
	"slow":   {component.Physical, 0},
	"haste":  {component.Physical, 0},
}

// KnownStatus reports whether name has a template.
func KnownStatus(name string) bool {
	_, ok := statusTemplates[name]
	return ok
}

// ApplyStatus adds the named status with its template potency and the
// default duration. Unknown names are ignored.
func ApplyStatus(tracker *component.StatusTracker, name string) bool {
	tpl, ok := statusTemplates[name]
	if !ok {
		return false
	}
	tracker.Add(component.StatusEffect{
		Name:     name,
		Duration: component.DefaultStatusDuration,
		Potency:  tpl.potency,
		Element:  tpl.element,
	})
	return true
}

// TickStatuses advances every status by one turn and returns those that
// expired. It never deals damage.
func TickStatuses(tracker *component.StatusTracker) []component.StatusEffect {
	return tracker.Tick()
}

var baseResistances = map[string]map[component.Element]float64{
	"player":     {component.Physical: 0.05},
	"brute":      {component.Physical: 0.1},
	"skirmisher": {component.Shock: 0.1},
	"ranged":     {component.Fire: 0.05},
	"summoner":   {component.Poison: 0.2},
	"sapper":     {component.Physical: 0.05, component.Poison: 0.1},
	"boss":       {component.Fire: 0.15, component.Ice: 0.15, component.Poison: 0.15},
}

// ApplyBaseResistances copies the resistances of kind ("player" or an
// archetype name) into stats.
func ApplyBaseResistances(stats *component.Stats, kind string) {
	for e, r := range baseResistances[kind] {
		stats.Resistances[e] = r
	}
}
