package fleury

import (
	"fmt"
)

// CheckEulerian reports whether the live edges admit an Eulerian trail:
// at most two vertices of odd degree and all edges in one connected
// component. Isolated vertices are ignored. A graph with no edges passes.
//
// Errors:
//   - ErrTooManyOddVertices
//   - ErrDisconnected
//
// Complexity: O(V+E).
func (g *Graph) CheckEulerian() error {
	// 1. Parity
	odd := g.OddVertices()
	if len(odd) > 2 {
		return fmt.Errorf("CheckEulerian: %d odd vertices %v: %w", len(odd), odd, ErrTooManyOddVertices)
	}

	// 2. Connectivity from the first vertex that carries an edge
	root := -1
	for v := 0; v < g.n; v++ {
		if g.Degree(v) > 0 {
			root = v
			break
		}
	}
	if root < 0 {
		return nil
	}

	visited := make([]bool, g.n)
	g.DFSCount(root, visited)
	for v := 0; v < g.n; v++ {
		if !visited[v] && g.Degree(v) > 0 {
			return fmt.Errorf("CheckEulerian: vertex %d unreachable from %d: %w", v, root, ErrDisconnected)
		}
	}

	return nil
}

// ValidateTrail checks that steps form one Eulerian trail of g: every step
// starts where the previous one ended, and every live edge of g is used
// exactly once. g is not modified; pass a snapshot taken before Tour.
//
// Complexity: O(V+E).
func ValidateTrail(g *Graph, steps []Step) error {
	remaining := make(map[[2]int]int, g.live)
	for _, e := range g.Edges() {
		remaining[edgeKey(e[0], e[1])]++
	}

	var (
		i int
		s Step
		k [2]int
	)
	for i, s = range steps {
		if !g.inRange(s.From) || !g.inRange(s.To) {
			return fmt.Errorf("ValidateTrail: step %d (%s): %w", i, s, ErrInvalidTrail)
		}
		if i > 0 && steps[i-1].To != s.From {
			return fmt.Errorf("ValidateTrail: step %d (%s) does not continue from %d: %w",
				i, s, steps[i-1].To, ErrInvalidTrail)
		}
		k = edgeKey(s.From, s.To)
		if remaining[k] == 0 {
			return fmt.Errorf("ValidateTrail: step %d (%s) uses a missing or spent edge: %w", i, s, ErrInvalidTrail)
		}
		remaining[k]--
	}

	for k, n := range remaining {
		if n > 0 {
			return fmt.Errorf("ValidateTrail: edge %d-%d not used: %w", k[0], k[1], ErrInvalidTrail)
		}
	}

	return nil
}

// edgeKey normalizes an undirected edge to {min, max}.
func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
