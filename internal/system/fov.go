package system

import (
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/spatial"
)

// Visibility tracks what the player sees now and has seen on this floor.
type Visibility struct {
	Visible  *spatial.Mask
	Explored *spatial.Mask
}

// NewVisibility returns empty masks sized for level.
func NewVisibility(level *gamemap.Level) *Visibility {
	return &Visibility{
		Visible:  spatial.NewMask(level.Width, level.Height),
		Explored: spatial.NewMask(level.Width, level.Height),
	}
}

// UpdateFOV recomputes the visible set from origin and folds it into the
// explored set.
func (v *Visibility) UpdateFOV(level *gamemap.Level, origin spatial.Point, radius int) {
	v.Visible = spatial.ComputeFOV(level.TransparencyMask(), origin, radius)
	for i, seen := range v.Visible.Cells {
		if seen {
			v.Explored.Cells[i] = true
		}
	}
}
