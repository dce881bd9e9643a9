package spatial

import (
	"errors"
	"testing"
)

// openMask returns a mask with every cell set.
func openMask(width, height int) *Mask {
	m := NewMask(width, height)
	for i := range m.Cells {
		m.Cells[i] = true
	}
	return m
}

func expectOutOfBounds(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds panic, got %v", r)
		}
	}()
	fn()
}

func TestFindPathOpenGridIsManhattan(t *testing.T) {
	m := openMask(20, 15)
	cases := []struct{ from, to Point }{
		{Point{0, 0}, Point{19, 14}},
		{Point{5, 5}, Point{5, 12}},
		{Point{3, 9}, Point{17, 2}},
	}
	for _, c := range cases {
		path := FindPath(m, c.from, c.to)
		if got, want := len(path)-1, c.from.Manhattan(c.to); got != want {
			t.Errorf("%v→%v: %d steps, want %d", c.from, c.to, got, want)
		}
		if path[0] != c.from || path[len(path)-1] != c.to {
			t.Errorf("%v→%v: path endpoints %v..%v", c.from, c.to, path[0], path[len(path)-1])
		}
		for i := 1; i < len(path); i++ {
			if path[i-1].Manhattan(path[i]) != 1 {
				t.Fatalf("non-cardinal step %v→%v", path[i-1], path[i])
			}
		}
	}
}

func TestFindPathNoPathReturnsStart(t *testing.T) {
	m := openMask(10, 10)
	for y := range 10 {
		m.Set(5, y, false)
	}
	path := FindPath(m, Point{1, 1}, Point{8, 8})
	if len(path) != 1 || path[0] != (Point{1, 1}) {
		t.Fatalf("expected [start], got %v", path)
	}
}

func TestFindPathRoutesAroundWall(t *testing.T) {
	m := openMask(7, 7)
	for y := 0; y < 6; y++ {
		m.Set(3, y, false)
	}
	path := FindPath(m, Point{1, 1}, Point{5, 1})
	if len(path)-1 != 14 {
		t.Fatalf("expected the 14-step detour under the wall, got %d steps: %v", len(path)-1, path)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	m := openMask(30, 30)
	a := FindPath(m, Point{2, 3}, Point{25, 27})
	b := FindPath(m, Point{2, 3}, Point{25, 27})
	if len(a) != len(b) {
		t.Fatal("path lengths differ between runs")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("paths diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFindPathOutOfBoundsPanics(t *testing.T) {
	m := openMask(5, 5)
	expectOutOfBounds(t, func() { FindPath(m, Point{-1, 0}, Point{2, 2}) })
	expectOutOfBounds(t, func() { FindPath(m, Point{0, 0}, Point{5, 2}) })
}

func TestFlowFieldMultipleGoals(t *testing.T) {
	m := openMask(11, 1)
	f := FlowField(m, Point{0, 0}, Point{10, 0})
	want := []int{0, 1, 2, 3, 4, 5, 4, 3, 2, 1, 0}
	for x, w := range want {
		if got := f.At(x, 0); got != w {
			t.Errorf("x=%d: got %d, want %d", x, got, w)
		}
	}
}

func TestFlowFieldUnreachable(t *testing.T) {
	m := openMask(6, 3)
	for y := range 3 {
		m.Set(3, y, false)
	}
	f := FlowField(m, Point{0, 1})
	if f.At(5, 1) != Unreachable {
		t.Errorf("cell behind the wall should be Unreachable, got %d", f.At(5, 1))
	}
	if f.At(3, 1) != Unreachable {
		t.Error("wall cells should stay Unreachable")
	}
	if f.At(2, 2) != 3 {
		t.Errorf("expected distance 3 at (2,2), got %d", f.At(2, 2))
	}
	if f.At(-1, 0) != Unreachable {
		t.Error("outside the grid reads as Unreachable")
	}
}

func TestFlowFieldOutOfBoundsGoalPanics(t *testing.T) {
	expectOutOfBounds(t, func() { FlowField(openMask(3, 3), Point{3, 0}) })
}

func TestFOVOriginAlwaysVisible(t *testing.T) {
	vis := ComputeFOV(openMask(20, 20), Point{5, 5}, 5)
	if !vis.At(5, 5) {
		t.Error("origin must always be visible")
	}
}

func TestFOVNearbyTilesVisible(t *testing.T) {
	vis := ComputeFOV(openMask(20, 20), Point{10, 10}, 5)
	for _, p := range []Point{{10, 7}, {10, 13}, {7, 10}, {13, 10}} {
		if !vis.At(p.X, p.Y) {
			t.Errorf("cell %v at distance 3 should be visible (radius=5)", p)
		}
	}
}

func TestFOVStraightCorridorReachesRadius(t *testing.T) {
	m := NewMask(20, 3)
	for x := range 20 {
		m.Set(x, 1, true)
	}
	vis := ComputeFOV(m, Point{2, 1}, 8)
	for x := 2; x <= 10; x++ {
		if !vis.At(x, 1) {
			t.Errorf("corridor cell x=%d should be visible", x)
		}
	}
	if vis.At(11, 1) {
		t.Error("corridor cell beyond the radius should not be visible")
	}
}

func TestFOVRadiusLimitsVisibility(t *testing.T) {
	vis := ComputeFOV(openMask(20, 20), Point{10, 10}, 4)
	for _, p := range []Point{{10, 15}, {10, 5}, {15, 10}, {5, 10}} {
		if vis.At(p.X, p.Y) {
			t.Errorf("cell %v at distance 5 should not be visible with radius=4", p)
		}
	}
}

func TestFOVWallBlocksLight(t *testing.T) {
	m := openMask(20, 20)
	m.Set(10, 8, false)
	vis := ComputeFOV(m, Point{10, 10}, 8)

	if !vis.At(10, 8) {
		t.Error("the wall cell itself should be lit")
	}
	if vis.At(10, 7) {
		t.Error("cell directly behind the wall should not be visible")
	}
	// The mirrored cell on the open side stays visible.
	if !vis.At(10, 13) {
		t.Error("symmetric open cell should be visible")
	}
}

func TestFOVOutOfBoundsOriginPanics(t *testing.T) {
	expectOutOfBounds(t, func() { ComputeFOV(openMask(4, 4), Point{4, 4}, 3) })
}
