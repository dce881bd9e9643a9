package spatial

// Unreachable marks flow field cells no goal can reach.
const Unreachable = 1<<30 - 1

// Field holds the step distance from every cell to its nearest goal.
type Field struct {
	Width, Height int
	Dist          []int
}

// At returns the distance at (x, y), or Unreachable outside the grid.
func (f *Field) At(x, y int) int {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Unreachable
	}
	return f.Dist[y*f.Width+x]
}

// FlowField computes the minimum number of cardinal steps from each
// walkable cell to any of goals in one pass. Goals are seeded at zero even
// when they are not walkable themselves.
func FlowField(walkable *Mask, goals ...Point) *Field {
	f := &Field{Width: walkable.Width, Height: walkable.Height, Dist: make([]int, len(walkable.Cells))}
	for i := range f.Dist {
		f.Dist[i] = Unreachable
	}

	// Uniform edge weights make breadth-first order a valid Dijkstra order.
	queue := make([]Point, 0, len(goals))
	for _, g := range goals {
		walkable.mustContain(g)
		idx := walkable.index(g)
		if f.Dist[idx] == 0 {
			continue
		}
		f.Dist[idx] = 0
		queue = append(queue, g)
	}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		base := f.Dist[walkable.index(cur)]
		for _, d := range Cardinals {
			next := cur.Add(d.X, d.Y)
			if !walkable.At(next.X, next.Y) {
				continue
			}
			idx := walkable.index(next)
			if f.Dist[idx] <= base+1 {
				continue
			}
			f.Dist[idx] = base + 1
			queue = append(queue, next)
		}
	}
	return f
}
