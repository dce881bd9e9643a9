package generate

import (
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/rng"
	"aether-roguelike/internal/spatial"
)

// carveCorridor digs an L-shaped tunnel between a and b. The bend axis is
// drawn from the floor's stream.
func carveCorridor(level *gamemap.Level, a, b spatial.Point, src rng.Source) {
	if src.Float64() < 0.5 {
		carveH(level, a.X, b.X, a.Y)
		carveV(level, a.Y, b.Y, b.X)
	} else {
		carveV(level, a.Y, b.Y, a.X)
		carveH(level, a.X, b.X, b.Y)
	}
}

func carveH(level *gamemap.Level, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if level.InBounds(x, y) {
			level.Set(x, y, gamemap.TileFloor)
		}
	}
}

func carveV(level *gamemap.Level, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if level.InBounds(x, y) {
			level.Set(x, y, gamemap.TileFloor)
		}
	}
}

// carveRoom fills the half-open rectangle with floor.
func carveRoom(level *gamemap.Level, r gamemap.Rect) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			level.Set(x, y, gamemap.TileFloor)
		}
	}
}
