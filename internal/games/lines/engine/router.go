package engine

// unreached marks cells the search never visited.
const unreached = -1

// DistanceMap holds shortest orthogonal hop counts from a start cell.
// The start has distance 0; occupied and unvisited cells have no entry.
type DistanceMap struct {
	size  int
	start Cell
	dist  []int
}

func newDistanceMap(size int, start Cell) DistanceMap {
	dist := make([]int, size*size)
	for i := range dist {
		dist[i] = unreached
	}
	return DistanceMap{size: size, start: start, dist: dist}
}

// Distance returns the hop count to c, or false if c was not reached.
func (m DistanceMap) Distance(c Cell) (int, bool) {
	if !c.Valid(m.size) {
		return 0, false
	}
	d := m.dist[c.Row*m.size+c.Col]
	if d == unreached {
		return 0, false
	}
	return d, true
}

// Reachable reports whether c has a finite distance.
func (m DistanceMap) Reachable(c Cell) bool {
	_, ok := m.Distance(c)
	return ok
}

// Cells returns every reached cell except the start, in row-major order.
func (m DistanceMap) Cells() []Cell {
	var out []Cell
	for i, d := range m.dist {
		if d > 0 {
			out = append(out, At(i/m.size, i%m.size))
		}
	}
	return out
}

// Path returns a shortest route from the start to end, both included.
// Returns nil when end was not reached.
func (m DistanceMap) Path(end Cell) []Cell {
	d, ok := m.Distance(end)
	if !ok {
		return nil
	}

	path := make([]Cell, d+1)
	path[d] = end
	cur := end
	for step := d - 1; step >= 0; step-- {
		for _, n := range neighbors {
			prev := cur.Add(n[0], n[1])
			if pd, ok := m.Distance(prev); ok && pd == step {
				cur = prev
				break
			}
		}
		path[step] = cur
	}
	return path
}

// FindReachable validates a move from start to end and returns the distance
// map from start. The move is legal iff the map reaches end; when it does not,
// the map is still returned together with a ReasonUnreachable MoveError.
func FindReachable(b *Board, start, end Cell) (DistanceMap, error) {
	if !b.InBounds(start) || !b.InBounds(end) {
		return DistanceMap{}, moveError(ReasonOutOfBounds, start, end)
	}
	if _, ok := b.At(start); !ok {
		return DistanceMap{}, moveError(ReasonNoPieceAtStart, start, end)
	}
	if _, ok := b.At(end); ok {
		return DistanceMap{}, moveError(ReasonOccupiedDestination, start, end)
	}

	m := search(b, start)
	if !m.Reachable(end) {
		return m, moveError(ReasonUnreachable, start, end)
	}
	return m, nil
}

// DistancesFrom maps every empty cell reachable from an occupied start.
func DistancesFrom(b *Board, start Cell) (DistanceMap, error) {
	if !b.InBounds(start) {
		return DistanceMap{}, ErrOutOfBounds
	}
	if _, ok := b.At(start); !ok {
		return DistanceMap{}, ErrEmptyCell
	}
	return search(b, start), nil
}

// search is a breadth-first flood over empty cells. Each cell is enqueued at
// most once, on first discovery, so distances are shortest hop counts.
func search(b *Board, start Cell) DistanceMap {
	m := newDistanceMap(b.Size(), start)
	m.dist[start.Row*m.size+start.Col] = 0

	queue := make([]Cell, 0, b.FreeSlots()+1)
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		next := m.dist[cur.Row*m.size+cur.Col] + 1

		for _, n := range neighbors {
			c := cur.Add(n[0], n[1])
			if !b.IsEmpty(c) {
				continue
			}
			i := c.Row*m.size + c.Col
			if m.dist[i] != unreached {
				continue
			}
			m.dist[i] = next
			queue = append(queue, c)
		}
	}

	return m
}
