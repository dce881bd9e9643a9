package gamemap

import (
	"errors"
	"testing"

	"aether-roguelike/internal/spatial"
)

// openLevel returns a level whose interior is floor and whose border is wall.
func openLevel(w, h int) *Level {
	l := New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			l.Set(x, y, TileFloor)
		}
	}
	return l
}

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5)
	// all walls initially
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	for _, k := range []TileKind{TileFloor, TileDoor, TileLockedDoor, TileStairsUp, TileStairsDown, TileAcid, TileLava, TileTrap} {
		m.Set(2, 2, k)
		if !m.IsWalkable(2, 2) {
			t.Errorf("%s tile should be walkable", k)
		}
	}
	// out of bounds
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(3, 4, 5, 6)
	if c := r.Center(); c != (spatial.Point{X: 5, Y: 7}) {
		t.Errorf("expected center (5,7), got %v", c)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	b := NewRect(3, 3, 4, 4)
	c := NewRect(4, 0, 4, 4) // shares the x=4 edge line only
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("touching half-open rectangles should not intersect")
	}
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	m := New(3, 3)
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, spatial.ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds panic, got %v", err)
		}
	}()
	m.At(3, 0)
}

func TestIsTransparent(t *testing.T) {
	cases := []struct {
		name string
		tile TileKind
		x, y int
		want bool
	}{
		{"wall is opaque", TileWall, 2, 2, false},
		{"floor is transparent", TileFloor, 2, 2, true},
		{"locked door is transparent", TileLockedDoor, 2, 2, true},
		{"out-of-bounds x=-1", TileWall, -1, 0, false},
		{"out-of-bounds beyond width", TileWall, 10, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(5, 5)
			if m.InBounds(tc.x, tc.y) {
				m.Set(tc.x, tc.y, tc.tile)
			}
			if got := m.IsTransparent(tc.x, tc.y); got != tc.want {
				t.Errorf("IsTransparent(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestReachableRespectsBlocked(t *testing.T) {
	// Two chambers joined by a single door cell at (5,2).
	l := New(11, 5)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 9; x++ {
			if x != 5 {
				l.Set(x, y, TileFloor)
			}
		}
	}
	door := spatial.Point{X: 5, Y: 2}
	l.Set(door.X, door.Y, TileLockedDoor)

	all := l.Reachable(spatial.Point{X: 1, Y: 1})
	if !all.Has(spatial.Point{X: 9, Y: 3}) {
		t.Fatal("far chamber should be reachable through the door")
	}
	gated := l.Reachable(spatial.Point{X: 1, Y: 1}, door)
	if gated.Has(spatial.Point{X: 9, Y: 3}) || gated.Has(door) {
		t.Fatal("blocking the door should cut off the far chamber")
	}
	if gated.Size() != 12 {
		t.Errorf("expected 12 cells in the near chamber, got %d", gated.Size())
	}
	if l.Reachable(door, door).Size() != 0 {
		t.Error("a blocked start should yield an empty set")
	}
}

func TestPointsRowMajor(t *testing.T) {
	l := openLevel(4, 4)
	pts := Points(l.Reachable(spatial.Point{X: 1, Y: 1}))
	want := []spatial.Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	if len(pts) != len(want) {
		t.Fatalf("got %v", pts)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestUnlock(t *testing.T) {
	l := openLevel(6, 6)
	p := spatial.Point{X: 2, Y: 2}
	l.Set(p.X, p.Y, TileLockedDoor)
	l.LockedDoors = []spatial.Point{p}

	if !l.Unlock(p) {
		t.Fatal("Unlock should succeed on a locked door")
	}
	if l.At(p.X, p.Y) != TileDoor || len(l.LockedDoors) != 0 {
		t.Fatal("unlocked door should become a plain door and leave LockedDoors")
	}
	if l.Unlock(p) {
		t.Fatal("unlocking twice should report false")
	}
}

func TestCloneIsDeep(t *testing.T) {
	l := openLevel(5, 5)
	l.Hazards = []spatial.Point{{1, 1}}
	c := l.Clone()
	c.Set(2, 2, TileWall)
	c.Hazards[0] = spatial.Point{X: 3, Y: 3}
	if l.At(2, 2) != TileFloor || l.Hazards[0] != (spatial.Point{X: 1, Y: 1}) {
		t.Fatal("mutating the clone changed the original")
	}
}
