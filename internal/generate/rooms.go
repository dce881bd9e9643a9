package generate

import (
	"fmt"

	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/rng"
	"aether-roguelike/internal/spatial"
)

// generateRooms places non-overlapping rooms by rejection sampling and joins
// consecutive rooms with L-shaped corridors. The first room holds the start
// and up stairs; the room farthest from it holds the down stairs.
func generateRooms(cfg *Config) (*gamemap.Level, error) {
	level := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	src := cfg.Rand

	var rooms []gamemap.Rect
	failures := 0
	for len(rooms) < maxRooms && failures < maxRoomFailures {
		w := rng.Range(src, minRoomSize, maxRoomSize)
		h := rng.Range(src, minRoomSize, maxRoomSize)
		if w+2 > cfg.MapWidth || h+2 > cfg.MapHeight {
			failures++
			continue
		}
		x := rng.Range(src, 1, cfg.MapWidth-w-1)
		y := rng.Range(src, 1, cfg.MapHeight-h-1)
		room := gamemap.NewRect(x, y, w, h)
		if overlapsAny(room, rooms) {
			failures++
			continue
		}
		rooms = append(rooms, room)
		carveRoom(level, room)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: no room placed after %d attempts", ErrStructural, failures)
	}

	for i := 1; i < len(rooms); i++ {
		carveCorridor(level, rooms[i-1].Center(), rooms[i].Center(), src)
	}

	start := rooms[0].Center()
	down := start
	best := -1
	for _, r := range rooms {
		if d := r.Center().Manhattan(start); d > best {
			best, down = d, r.Center()
		}
	}
	if down == start {
		// a lone room keeps its down stairs in the far corner
		down = spatial.Point{X: rooms[0].X2 - 1, Y: rooms[0].Y2 - 1}
	}
	placeStairs(level, start, down)
	return level, nil
}

func overlapsAny(room gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, r := range rooms {
		if room.Intersects(r) {
			return true
		}
	}
	return false
}
