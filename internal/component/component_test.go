package component

import "testing"

func TestTakeDamageAppliesResistance(t *testing.T) {
	cases := []struct {
		name   string
		resist float64
		amount int
		want   int
	}{
		{"no resistance", 0, 10, 10},
		{"quarter", 0.25, 10, 7},
		{"half rounds down", 0.5, 7, 3},
		{"negative clamps to zero", -0.5, 10, 10},
		{"high", 0.97, 100, 3},
		{"full immunity still leaks below one", 1.5, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStats(50, 0, 1, 0, 0, 100)
			s.Resistances[Fire] = tc.resist
			got := s.TakeDamage(tc.amount, Fire)
			if got != tc.want {
				t.Fatalf("TakeDamage(%d) = %d, want %d", tc.amount, got, tc.want)
			}
			if s.HP != 50-tc.want {
				t.Errorf("HP = %d, want %d", s.HP, 50-tc.want)
			}
		})
	}
}

func TestTakeDamageFloorsAtZero(t *testing.T) {
	s := NewStats(5, 0, 1, 0, 0, 100)
	s.TakeDamage(100, Physical)
	if s.HP != 0 || s.Alive() {
		t.Fatalf("HP = %d, want 0 and dead", s.HP)
	}
}

func TestHealCapsAtMax(t *testing.T) {
	s := NewStats(20, 0, 1, 0, 0, 100)
	s.TakeDamage(5, Physical)
	if got := s.Heal(50); got != 5 {
		t.Errorf("Heal returned %d, want 5", got)
	}
	if s.HP != 20 {
		t.Errorf("HP = %d, want 20", s.HP)
	}
}

func TestInventoryStacksAndCapacity(t *testing.T) {
	inv := &Inventory{Width: 1, Height: 2}
	potion := &Item{Name: "Potion", Stackable: true, Quantity: 1}
	if !inv.Add(potion) {
		t.Fatal("first add should succeed")
	}
	if !inv.Add(&Item{Name: "Potion", Stackable: true, Quantity: 2}) {
		t.Fatal("stacking add should succeed")
	}
	if len(inv.Items) != 1 || potion.Quantity != 3 {
		t.Fatalf("expected one stack of 3, got %d entries, qty %d", len(inv.Items), potion.Quantity)
	}
	// different identified flag does not merge
	if !inv.Add(&Item{Name: "Potion", Stackable: true, Quantity: 1, Identified: true}) {
		t.Fatal("second entry should fit")
	}
	if inv.Add(&Item{Name: "Sword"}) {
		t.Fatal("add beyond capacity should fail")
	}
	inv.Remove(potion)
	if potion.Quantity != 2 || len(inv.Items) != 2 {
		t.Fatalf("remove should decrement the stack, got qty %d", potion.Quantity)
	}
	inv.Remove(inv.Items[1])
	if len(inv.Items) != 1 {
		t.Fatalf("remove of a single item should delete it, %d left", len(inv.Items))
	}
}

func TestStatusMergeKeepsMax(t *testing.T) {
	var tr StatusTracker
	tr.Add(StatusEffect{Name: "burn", Duration: 3, Potency: 5, Element: Fire})
	tr.Add(StatusEffect{Name: "burn", Duration: 6, Potency: 2, Element: Fire})
	if len(tr.Effects) != 1 {
		t.Fatalf("expected one burn entry, got %d", len(tr.Effects))
	}
	if e := tr.Effects[0]; e.Duration != 6 || e.Potency != 5 {
		t.Errorf("merged effect = %+v, want duration 6 potency 5", e)
	}
}

func TestStatusTickExpiry(t *testing.T) {
	var tr StatusTracker
	tr.Add(StatusEffect{Name: "slow", Duration: 2})
	if expired := tr.Tick(); len(expired) != 0 {
		t.Fatalf("first tick expired %v", expired)
	}
	expired := tr.Tick()
	if len(expired) != 1 || expired[0].Name != "slow" {
		t.Fatalf("second tick should expire slow, got %v", expired)
	}
	if tr.Has("slow") {
		t.Error("expired status still tracked")
	}
}

func TestMessageLogBounded(t *testing.T) {
	var log MessageLog
	for i := 0; i < MessageLogSize+10; i++ {
		log.Add(string(rune('a' + i%26)))
	}
	if len(log.Entries) != MessageLogSize {
		t.Fatalf("log holds %d entries, want %d", len(log.Entries), MessageLogSize)
	}
	if got := log.Last(3); len(got) != 3 {
		t.Errorf("Last(3) returned %d entries", len(got))
	}
}

func TestEquipmentSlotLookup(t *testing.T) {
	var eq Equipment
	for _, name := range SlotNames {
		if eq.Slot(name) == nil {
			t.Errorf("slot %q should resolve", name)
		}
	}
	if eq.Slot("boots") != nil {
		t.Error("unknown slot should be nil")
	}
	ring := &Item{Name: "Ring", Slot: SlotRing}
	*eq.Slot("ring_left") = ring
	if eq.RingLeft != ring {
		t.Error("writing through Slot should set the field")
	}
}

func TestParseArchetype(t *testing.T) {
	for a := Archetype(0); a < ArchetypeCount; a++ {
		got, ok := ParseArchetype(a.String())
		if !ok || got != a {
			t.Errorf("round trip of %v failed", a)
		}
	}
	if _, ok := ParseArchetype("dragon"); ok {
		t.Error("unknown archetype should not parse")
	}
}
