package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(1234), New(1234)
	for i := range 100 {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := New(1), New(2)
	same := 0
	for range 50 {
		if a.IntN(1<<20) == b.IntN(1<<20) {
			same++
		}
	}
	if same == 50 {
		t.Fatal("different seeds produced the same sequence")
	}
}

func TestStateRestoreContinuesSequence(t *testing.T) {
	s := New(99)
	for range 17 {
		s.Float64()
	}
	state, err := s.State()
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	want := make([]int, 10)
	for i := range want {
		want[i] = s.IntN(500)
	}

	r := New(0)
	if err := r.Restore(state); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	for i := range want {
		if got := r.IntN(500); got != want[i] {
			t.Fatalf("draw %d after restore: got %d, want %d", i, got, want[i])
		}
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	if err := New(0).Restore("not base64!"); err == nil {
		t.Fatal("expected an error for malformed state")
	}
}

func TestRangeInclusive(t *testing.T) {
	s := New(7)
	seenLo, seenHi := false, false
	for range 500 {
		v := Range(s, 3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("Range(3,5) returned %d", v)
		}
		seenLo = seenLo || v == 3
		seenHi = seenHi || v == 5
	}
	if !seenLo || !seenHi {
		t.Error("Range should reach both bounds")
	}
	if Range(s, 4, 2) != 4 {
		t.Error("inverted range should return lo")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	s := New(5)
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Shuffle(s, len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	seen := make(map[int]bool)
	for _, x := range xs {
		seen[x] = true
	}
	if len(seen) != 8 {
		t.Fatalf("shuffle lost elements: %v", xs)
	}
}
