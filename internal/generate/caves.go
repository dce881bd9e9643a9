package generate

import (
	"fmt"

	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/spatial"
)

// generateCaves fills the interior with noise, smooths it with a majority
// rule, then keeps only the region around a random start cell.
func generateCaves(cfg *Config) (*gamemap.Level, error) {
	level := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	src := cfg.Rand

	for y := 1; y < level.Height-1; y++ {
		for x := 1; x < level.Width-1; x++ {
			if src.Float64() > caveFill {
				level.Set(x, y, gamemap.TileFloor)
			}
		}
	}
	for range caveSmoothing {
		level = smooth(level)
	}

	floors := floorCells(level)
	if len(floors) == 0 {
		return nil, fmt.Errorf("%w: cave has no floor cells", ErrStructural)
	}
	start := floors[src.IntN(len(floors))]
	keep := level.Reachable(start)
	for y := range level.Height {
		for x := range level.Width {
			if !keep.Has(spatial.Point{X: x, Y: y}) {
				level.Set(x, y, gamemap.TileWall)
			}
		}
	}

	// the down stairs never share the start cell
	floors = floorCells(level)
	candidates := floors[:0]
	for _, p := range floors {
		if p != start {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: cave region around %v has a single cell", ErrStructural, start)
	}
	down := candidates[src.IntN(len(candidates))]
	placeStairs(level, start, down)
	return level, nil
}

// smooth runs one automaton pass: more than four walls among the eight
// neighbours makes a wall, fewer makes floor, exactly four keeps the cell.
func smooth(level *gamemap.Level) *gamemap.Level {
	next := level.Clone()
	for y := 1; y < level.Height-1; y++ {
		for x := 1; x < level.Width-1; x++ {
			switch n := countAdjacentWalls(level, x, y); {
			case n > 4:
				next.Set(x, y, gamemap.TileWall)
			case n < 4:
				next.Set(x, y, gamemap.TileFloor)
			}
		}
	}
	return next
}

func countAdjacentWalls(level *gamemap.Level, x, y int) int {
	n := 0
	for _, d := range spatial.Ring {
		if level.At(x+d.X, y+d.Y) == gamemap.TileWall {
			n++
		}
	}
	return n
}

// floorCells lists plain floor cells in row-major order.
func floorCells(level *gamemap.Level) []spatial.Point {
	var out []spatial.Point
	for y := range level.Height {
		for x := range level.Width {
			if level.At(x, y) == gamemap.TileFloor {
				out = append(out, spatial.Point{X: x, Y: y})
			}
		}
	}
	return out
}

func placeStairs(level *gamemap.Level, start, down spatial.Point) {
	level.Start = start
	level.StairsUp = start
	level.StairsDown = down
	level.Set(start.X, start.Y, gamemap.TileStairsUp)
	level.Set(down.X, down.Y, gamemap.TileStairsDown)
}
