// Package spatial holds the grid search primitives shared by map generation
// and AI: shortest path, multi-source flow fields and shadowcasting FOV.
// It knows nothing about tiles or entities; callers hand it boolean masks.
package spatial

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is wrapped by the panic raised when a caller passes a
// coordinate outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{p.X + dx, p.Y + dy} }

// Manhattan returns the 4-directional distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Cardinals lists the 4-directional neighbour offsets in expansion order.
// Searches walk them in this order so ties break the same way every run.
var Cardinals = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Ring lists the 8 surrounding offsets, row-major.
var Ring = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Mask is a flat row-major boolean grid.
type Mask struct {
	Width, Height int
	Cells         []bool
}

// NewMask returns an all-false mask.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Cells: make([]bool, width*height)}
}

// InBounds reports whether (x, y) lies inside the mask.
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the cell value; out-of-bounds cells read as false.
func (m *Mask) At(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Cells[y*m.Width+x]
}

// Set writes the cell value. Panics when out of bounds.
func (m *Mask) Set(x, y int, v bool) {
	m.mustContain(Point{x, y})
	m.Cells[y*m.Width+x] = v
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, c := range m.Cells {
		if c {
			n++
		}
	}
	return n
}

func (m *Mask) index(p Point) int { return p.Y*m.Width + p.X }

func (m *Mask) mustContain(p Point) {
	if !m.InBounds(p.X, p.Y) {
		panic(fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, p.X, p.Y, m.Width, m.Height))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
