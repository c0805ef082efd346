package fleury

// DFSCount returns the number of vertices reachable from v over live edges,
// v included, marking each of them in visited. visited is indexed by vertex
// id and must have length >= V; vertices already marked are neither counted
// nor expanded (except v itself, which always counts as 1).
// Returns 0 if v is out of range or visited is too short.
//
// The traversal uses an explicit stack, so its depth is not bounded by the
// goroutine stack.
//
// Complexity: O(V+E) time, O(V) extra space.
func (g *Graph) DFSCount(v int, visited []bool) int {
	if !g.inRange(v) || len(visited) < g.n {
		return 0
	}

	visited[v] = true
	count := 1
	stack := []int{v}

	var (
		x int
		e entry
	)
	for len(stack) > 0 {
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e = range g.adj[x] {
			if !g.edges[e.edge].live || visited[e.to] {
				continue
			}
			visited[e.to] = true
			count++
			stack = append(stack, e.to)
		}
	}

	return count
}
