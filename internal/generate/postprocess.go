package generate

import (
	"aether-roguelike/internal/gamemap"
	"aether-roguelike/internal/rng"
	"aether-roguelike/internal/spatial"

	"github.com/zyedidia/generic/mapset"
)

// postProcess runs the mode-independent feature pass. The order matters for
// determinism: hazards, traps, doors, the lock and its key, then repair.
func postProcess(level *gamemap.Level, cfg *Config) {
	src := cfg.Rand
	cells := walkableCells(level)
	rng.Shuffle(src, len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	placeHazards(level, cells, src)
	placeTraps(level, cells)
	doors := placeDoors(level)
	lockDoor(level, doors, src)
	ensureStairsReachable(level, cfg.FloorNumber)
}

func walkableCells(level *gamemap.Level) []spatial.Point {
	var out []spatial.Point
	for y := range level.Height {
		for x := range level.Width {
			if level.IsWalkable(x, y) {
				out = append(out, spatial.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// placeHazards turns the first max(3, n/40) shuffled cells into acid or lava
// when they are still plain floor.
func placeHazards(level *gamemap.Level, cells []spatial.Point, src rng.Source) {
	n := min(len(cells), max(3, len(cells)/40))
	for _, p := range cells[:n] {
		if level.At(p.X, p.Y) != gamemap.TileFloor {
			continue
		}
		kind := gamemap.TileLava
		if rng.Chance(src, 0.5) {
			kind = gamemap.TileAcid
		}
		level.Set(p.X, p.Y, kind)
		level.Hazards = append(level.Hazards, p)
	}
}

// placeTraps converts count/30+1 of the remaining floor cells into traps and
// records the cells around each as hints.
func placeTraps(level *gamemap.Level, cells []spatial.Point) {
	var candidates []spatial.Point
	for _, p := range cells {
		if level.At(p.X, p.Y) == gamemap.TileFloor {
			candidates = append(candidates, p)
		}
	}
	n := min(len(candidates), len(candidates)/30+1)
	for _, p := range candidates[:n] {
		level.Set(p.X, p.Y, gamemap.TileTrap)
		for _, d := range spatial.Ring {
			h := p.Add(d.X, d.Y)
			if level.InBounds(h.X, h.Y) {
				level.TrapHints = append(level.TrapHints, h)
			}
		}
	}
}

// doorNeighbours is the order chokepoint detection inspects neighbours in.
var doorNeighbours = [4]spatial.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// placeDoors scans the interior row-major and turns chokepoints into doors.
// A chokepoint is a floor cell with at least two wall and two floor cardinal
// neighbours. Doors placed earlier in the scan no longer count as floor.
func placeDoors(level *gamemap.Level) []spatial.Point {
	var doors []spatial.Point
	for y := 1; y < level.Height-1; y++ {
		for x := 1; x < level.Width-1; x++ {
			if level.At(x, y) != gamemap.TileFloor {
				continue
			}
			walls, floors := 0, 0
			for _, d := range doorNeighbours {
				switch level.At(x+d.X, y+d.Y) {
				case gamemap.TileWall:
					walls++
				case gamemap.TileFloor:
					floors++
				}
			}
			if walls >= 2 && floors >= 2 {
				level.Set(x, y, gamemap.TileDoor)
				doors = append(doors, spatial.Point{X: x, Y: y})
			}
		}
	}
	return doors
}

// lockDoor locks one random door and drops its key somewhere reachable
// without passing through it. When no such cell exists the door stays open.
func lockDoor(level *gamemap.Level, doors []spatial.Point, src rng.Source) {
	if len(doors) == 0 {
		return
	}
	door := rng.Pick(src, doors)
	level.Set(door.X, door.Y, gamemap.TileLockedDoor)
	level.LockedDoors = append(level.LockedDoors, door)

	key, ok := pickKeyPosition(level, level.Reachable(level.Start, door), src)
	if !ok {
		level.Unlock(door)
		return
	}
	level.KeyPositions = append(level.KeyPositions, key)
	level.DoorKeys[door] = key
}

func pickKeyPosition(level *gamemap.Level, reachable mapset.Set[spatial.Point], src rng.Source) (spatial.Point, bool) {
	cells := gamemap.Points(reachable)
	rng.Shuffle(src, len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	for _, p := range cells {
		if p != level.Start && p != level.StairsDown {
			return p, true
		}
	}
	return spatial.Point{}, false
}

// ensureStairsReachable makes the down stairs reachable from the start with
// every locked door closed. It first carves the straight walk from the
// nearest reachable cell back toward the start; if that is not enough it
// tunnels the shortest cardinal route around the locked doors.
func ensureStairsReachable(level *gamemap.Level, floor int) {
	reach := level.Reachable(level.Start, level.LockedDoors...)
	if reach.Has(level.StairsDown) {
		return
	}
	if from, ok := nearestReachable(level, reach); ok {
		carved := carveWalls(level, traceBack(from, level.Start))
		log.WithField("floor", floor).WithField("carved", carved).Info("repaired stairs with a straight walk")
		reach = level.Reachable(level.Start, level.LockedDoors...)
		if reach.Has(level.StairsDown) {
			return
		}
	}

	mask := spatial.NewMask(level.Width, level.Height)
	for y := 1; y < level.Height-1; y++ {
		for x := 1; x < level.Width-1; x++ {
			mask.Set(x, y, level.At(x, y) != gamemap.TileLockedDoor)
		}
	}
	path := spatial.FindPath(mask, level.StairsDown, level.Start)
	if len(path) <= 1 {
		log.WithField("floor", floor).Error("no tunnel joins the down stairs to the start")
		return
	}
	carved := carveWalls(level, path)
	log.WithField("floor", floor).WithField("carved", carved).Info("repaired stairs with a tunnel")
}

// nearestReachable walks outward from the down stairs over non-wall cells
// and returns the first cell already in reach.
func nearestReachable(level *gamemap.Level, reach mapset.Set[spatial.Point]) (spatial.Point, bool) {
	visited := mapset.New[spatial.Point]()
	queue := []spatial.Point{level.StairsDown}
	visited.Put(level.StairsDown)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if reach.Has(cur) {
			return cur, true
		}
		for _, d := range doorNeighbours {
			n := cur.Add(d.X, d.Y)
			if !level.InBounds(n.X, n.Y) || visited.Has(n) || level.At(n.X, n.Y) == gamemap.TileWall {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return spatial.Point{}, false
}

// traceBack returns the cells of a straight or diagonal walk from start
// toward goal, excluding goal.
func traceBack(start, goal spatial.Point) []spatial.Point {
	var path []spatial.Point
	cur := start
	for cur != goal {
		path = append(path, cur)
		cur.X += sign(goal.X - cur.X)
		cur.Y += sign(goal.Y - cur.Y)
	}
	return path
}

func carveWalls(level *gamemap.Level, path []spatial.Point) int {
	n := 0
	for _, p := range path {
		if level.At(p.X, p.Y) == gamemap.TileWall {
			level.Set(p.X, p.Y, gamemap.TileFloor)
			n++
		}
	}
	return n
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
