package system

import (
	"testing"

	"aether-roguelike/internal/component"
)

func TestApplyStatusUsesTemplate(t *testing.T) {
	tr := &component.StatusTracker{}
	if !ApplyStatus(tr, "burn") {
		t.Fatal("burn should be known")
	}
	e := tr.Effects[0]
	if e.Element != component.Fire || e.Potency != 3 || e.Duration != component.DefaultStatusDuration {
		t.Errorf("burn = %+v", e)
	}
	if ApplyStatus(tr, "petrify") {
		t.Error("unknown status should be rejected")
	}
}

func TestApplyStatusTwiceMerges(t *testing.T) {
	tr := &component.StatusTracker{}
	ApplyStatus(tr, "poison")
	TickStatuses(tr)
	ApplyStatus(tr, "poison")
	if len(tr.Effects) != 1 {
		t.Fatalf("got %d poison entries", len(tr.Effects))
	}
	if tr.Effects[0].Duration != component.DefaultStatusDuration {
		t.Errorf("duration %d, want refreshed to %d", tr.Effects[0].Duration, component.DefaultStatusDuration)
	}
}

func TestTickStatusesDealsNoDamage(t *testing.T) {
	tr := &component.StatusTracker{}
	tr.Add(component.StatusEffect{Name: "burn", Duration: 2, Potency: 3, Element: component.Fire})
	if exp := TickStatuses(tr); len(exp) != 0 {
		t.Fatalf("expired early: %v", exp)
	}
	exp := TickStatuses(tr)
	if len(exp) != 1 || exp[0].Name != "burn" || len(tr.Effects) != 0 {
		t.Fatalf("burn should expire on the second tick, got %v", exp)
	}
}

func TestApplyBaseResistances(t *testing.T) {
	s := component.NewStats(10, 0, 1, 0, 0, 100)
	ApplyBaseResistances(s, "boss")
	for _, e := range []component.Element{component.Fire, component.Ice, component.Poison} {
		if s.Resistances[e] != 0.15 {
			t.Errorf("%s resistance = %v, want 0.15", e, s.Resistances[e])
		}
	}
	if s.Resistances[component.Physical] != 0 {
		t.Error("boss has no physical resistance")
	}
	for a := component.Archetype(0); a < component.ArchetypeCount; a++ {
		if _, ok := baseResistances[a.String()]; !ok {
			t.Errorf("no base resistances for %v", a)
		}
	}
}
