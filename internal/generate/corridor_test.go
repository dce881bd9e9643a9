package generate

import (
	"testing"

	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/rng"
	"aether-roguelike/internal/spatial"
)

// allFloorRow checks that every tile at y between x1 and x2 (inclusive) is walkable.
func allFloorRow(level *gamemap.Level, x1, x2, y int) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if !level.IsWalkable(x, y) {
			return false
		}
	}
	return true
}

// allFloorCol checks that every tile at x between y1 and y2 (inclusive) is walkable.
func allFloorCol(level *gamemap.Level, y1, y2, x int) bool {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if !level.IsWalkable(x, y) {
			return false
		}
	}
	return true
}

func TestCarveH(t *testing.T) {
	level := gamemap.New(20, 20)
	carveH(level, 3, 8, 5)

	if !allFloorRow(level, 3, 8, 5) {
		t.Error("carveH(3,8,5) should carve floor tiles from x=3 to x=8 at y=5")
	}
	if level.IsWalkable(2, 5) || level.IsWalkable(9, 5) {
		t.Error("tiles outside the segment should remain wall")
	}
}

func TestCarveHReversedArgs(t *testing.T) {
	level := gamemap.New(20, 20)
	carveH(level, 8, 3, 5) // reversed
	if !allFloorRow(level, 3, 8, 5) {
		t.Error("carveH with reversed x args should still carve x=3..8")
	}
}

func TestCarveV(t *testing.T) {
	level := gamemap.New(20, 20)
	carveV(level, 7, 2, 4)

	if !allFloorCol(level, 2, 7, 4) {
		t.Error("carveV(7,2,4) should carve floor tiles from y=2 to y=7 at x=4")
	}
	if level.IsWalkable(4, 1) || level.IsWalkable(4, 8) {
		t.Error("tiles outside the segment should remain wall")
	}
}

func TestCarveCorridorConnects(t *testing.T) {
	// Both bend orders must join the endpoints; several seeds hit both.
	for seed := range 10 {
		level := gamemap.New(20, 20)
		a, b := spatial.Point{X: 2, Y: 2}, spatial.Point{X: 10, Y: 8}
		carveCorridor(level, a, b, rng.New(int64(seed)))
		if !level.Reachable(a).Has(b) {
			t.Errorf("seed %d: corridor does not join %v and %v", seed, a, b)
		}
		if got := level.Reachable(a).Size(); got != a.Manhattan(b)+1 {
			t.Errorf("seed %d: corridor has %d cells, want %d", seed, got, a.Manhattan(b)+1)
		}
	}
}

func TestTraceBackDiagonal(t *testing.T) {
	path := traceBack(spatial.Point{X: 5, Y: 1}, spatial.Point{X: 1, Y: 3})
	want := []spatial.Point{{X: 5, Y: 1}, {X: 4, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}}
	if len(path) != len(want) {
		t.Fatalf("got %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("step %d: got %v, want %v", i, path[i], want[i])
		}
	}
}
