package spatial

import "container/heap"

// Edge weights. Only cardinal steps are expanded; the diagonal weight is
// kept so costs stay comparable with weighted fields.
const (
	costCardinal = 2
	costDiagonal = 3
)

type pathNode struct {
	point  Point
	g, h   int
	seq    int
	index  int
	parent *pathNode
}

type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }

// Less orders by f, then by h, then by push order, so equal-cost
// frontiers expand identically on every run.
func (pq pathQueue) Less(i, j int) bool {
	fi, fj := pq[i].g+pq[i].h, pq[j].g+pq[j].h
	if fi != fj {
		return fi < fj
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x any) {
	n := len(*pq)
	item := x.(*pathNode)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// FindPath returns the cells from start to goal inclusive using cardinal
// moves over walkable cells. When goal cannot be reached the result holds
// only start. Out-of-bounds endpoints panic with ErrOutOfBounds.
func FindPath(walkable *Mask, start, goal Point) []Point {
	walkable.mustContain(start)
	walkable.mustContain(goal)
	if start == goal {
		return []Point{start}
	}

	heuristic := func(p Point) int { return p.Manhattan(goal) * costCardinal }
	open := &pathQueue{}
	heap.Init(open)
	seq := 0
	heap.Push(open, &pathNode{point: start, h: heuristic(start)})
	gScore := map[int]int{walkable.index(start): 0}
	closed := make(map[int]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		currIdx := walkable.index(current.point)
		if _, seen := closed[currIdx]; seen {
			continue
		}
		closed[currIdx] = struct{}{}
		if current.point == goal {
			return reconstructPath(current)
		}

		for _, d := range Cardinals {
			next := current.point.Add(d.X, d.Y)
			if !walkable.At(next.X, next.Y) {
				continue
			}
			idx := walkable.index(next)
			if _, seen := closed[idx]; seen {
				continue
			}
			tentative := current.g + costCardinal
			if prev, ok := gScore[idx]; ok && tentative >= prev {
				continue
			}
			gScore[idx] = tentative
			seq++
			heap.Push(open, &pathNode{
				point:  next,
				g:      tentative,
				h:      heuristic(next),
				seq:    seq,
				parent: current,
			})
		}
	}
	return []Point{start}
}

func reconstructPath(end *pathNode) []Point {
	var path []Point
	for node := end; node != nil; node = node.parent {
		path = append(path, node.point)
	}
	for i := 0; i < len(path)/2; i++ {
		j := len(path) - 1 - i
		path[i], path[j] = path[j], path[i]
	}
	return path
}
