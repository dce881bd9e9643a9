package gamemap

import (
	"fmt"
	"slices"

	"aether-roguelike/internal/spatial"

	"github.com/zyedidia/generic/mapset"
)

// Rect is an axis-aligned half-open rectangle used for rooms: it covers
// X1 <= x < X2 and Y1 <= y < Y2.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from an origin and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() spatial.Point {
	return spatial.Point{X: r.X1 + (r.X2-r.X1)/2, Y: r.Y1 + (r.Y2-r.Y1)/2}
}

// Intersects reports whether r overlaps other. Rooms sharing an edge line
// do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 < other.X2 && r.X2 > other.X1 &&
		r.Y1 < other.Y2 && r.Y2 > other.Y1
}

// Level is the tile grid and feature lists for one dungeon floor. It is
// built once by the generator and replaced wholesale on floor change;
// Unlock is the only mutation made during play.
type Level struct {
	Width, Height int
	Tiles         []TileKind

	Start        spatial.Point
	StairsUp     spatial.Point
	StairsDown   spatial.Point
	LockedDoors  []spatial.Point
	KeyPositions []spatial.Point
	DoorKeys     map[spatial.Point]spatial.Point
	Hazards      []spatial.Point
	TrapHints    []spatial.Point
}

// New creates a Level filled with walls.
func New(width, height int) *Level {
	return &Level{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileKind, width*height),
		DoorKeys: make(map[spatial.Point]spatial.Point),
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// At returns the tile at (x, y). Panics if out of bounds.
func (l *Level) At(x, y int) TileKind {
	return l.Tiles[l.index(x, y)]
}

// Set replaces the tile at (x, y).
func (l *Level) Set(x, y int, k TileKind) {
	l.Tiles[l.index(x, y)] = k
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (l *Level) IsWalkable(x, y int) bool {
	return l.InBounds(x, y) && l.At(x, y).Walkable()
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (l *Level) IsTransparent(x, y int) bool {
	return l.InBounds(x, y) && l.At(x, y).Transparent()
}

// Unlock turns a locked door into an ordinary door.
func (l *Level) Unlock(p spatial.Point) bool {
	if !l.InBounds(p.X, p.Y) || l.At(p.X, p.Y) != TileLockedDoor {
		return false
	}
	l.Set(p.X, p.Y, TileDoor)
	l.LockedDoors = slices.DeleteFunc(l.LockedDoors, func(q spatial.Point) bool { return q == p })
	return true
}

// WalkMask returns the walkability grid with the given cells forced closed.
func (l *Level) WalkMask(blocked ...spatial.Point) *spatial.Mask {
	m := spatial.NewMask(l.Width, l.Height)
	for i, k := range l.Tiles {
		m.Cells[i] = k.Walkable()
	}
	for _, p := range blocked {
		if l.InBounds(p.X, p.Y) {
			m.Cells[l.index(p.X, p.Y)] = false
		}
	}
	return m
}

// TransparencyMask returns the per-cell transparency grid for FOV.
func (l *Level) TransparencyMask() *spatial.Mask {
	m := spatial.NewMask(l.Width, l.Height)
	for i, k := range l.Tiles {
		m.Cells[i] = k.Transparent()
	}
	return m
}

// Reachable flood-fills from start over walkable cells, never entering a
// blocked cell. A blocked or unwalkable start yields an empty set.
func (l *Level) Reachable(start spatial.Point, blocked ...spatial.Point) mapset.Set[spatial.Point] {
	avoid := mapset.New[spatial.Point]()
	for _, p := range blocked {
		avoid.Put(p)
	}
	reachable := mapset.New[spatial.Point]()
	if !l.IsWalkable(start.X, start.Y) || avoid.Has(start) {
		return reachable
	}
	queue := []spatial.Point{start}
	reachable.Put(start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range spatial.Cardinals {
			n := cur.Add(d.X, d.Y)
			if reachable.Has(n) || avoid.Has(n) || !l.IsWalkable(n.X, n.Y) {
				continue
			}
			reachable.Put(n)
			queue = append(queue, n)
		}
	}
	return reachable
}

// Points returns the members of a point set in row-major order so callers
// can consume them deterministically.
func Points(set mapset.Set[spatial.Point]) []spatial.Point {
	out := make([]spatial.Point, 0, set.Size())
	set.Each(func(p spatial.Point) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b spatial.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	c := *l
	c.Tiles = slices.Clone(l.Tiles)
	c.LockedDoors = slices.Clone(l.LockedDoors)
	c.KeyPositions = slices.Clone(l.KeyPositions)
	c.Hazards = slices.Clone(l.Hazards)
	c.TrapHints = slices.Clone(l.TrapHints)
	c.DoorKeys = make(map[spatial.Point]spatial.Point, len(l.DoorKeys))
	for k, v := range l.DoorKeys {
		c.DoorKeys[k] = v
	}
	return &c
}

// NonWallFraction returns the share of cells that are not walls.
func (l *Level) NonWallFraction() float64 {
	if len(l.Tiles) == 0 {
		return 0
	}
	n := 0
	for _, k := range l.Tiles {
		if k != TileWall {
			n++
		}
	}
	return float64(n) / float64(len(l.Tiles))
}

func (l *Level) index(x, y int) int {
	if !l.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) outside %dx%d", spatial.ErrOutOfBounds, x, y, l.Width, l.Height))
	}
	return y*l.Width + x
}
