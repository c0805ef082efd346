package fleury

import (
	"fmt"
)

// entry is one slot of an adjacency sequence: the neighbor id and the index
// of the shared edge record.
type entry struct {
	to   int
	edge int
}

// edgeRec is the single record behind both adjacency entries of an edge.
// Clearing live removes the edge from u's and v's sequences at once.
type edgeRec struct {
	u, v int
	live bool
}

// Graph is an undirected graph over vertices 0..V-1 with ordered adjacency
// sequences. Removed edges keep their slots, so iteration order is stable.
//
// Invariant: adj[u] holds a live entry for v exactly as many times as adj[v]
// holds a live entry for u.
type Graph struct {
	n       int       // vertex count, fixed
	adj     [][]entry // per-vertex sequences in insertion order
	edges   []edgeRec // edge records, indexed by entry.edge
	live    int       // number of live edge records
	restore RestorePolicy
}

// NewGraph allocates an empty graph with vertices 0..v-1.
// Returns ErrInvalidVertexCount if v <= 0.
//
// Complexity: O(V).
func NewGraph(v int, opts ...GraphOption) (*Graph, error) {
	if v <= 0 {
		return nil, fmt.Errorf("NewGraph: v=%d: %w", v, ErrInvalidVertexCount)
	}

	g := &Graph{
		n:       v,
		adj:     make([][]entry, v),
		restore: RestoreAppend,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return g.live }

// RestorePolicy reports how the bridge probe restores edges.
func (g *Graph) RestorePolicy() RestorePolicy { return g.restore }

func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < g.n
}

// AddEdge appends v to u's sequence and u to v's sequence.
// Out-of-range ids return ErrVertexOutOfRange; u == v returns ErrSelfLoop.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("AddEdge(%d,%d): V=%d: %w", u, v, g.n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	g.addEdge(u, v)

	return nil
}

// addEdge records a new live edge and appends its two entries.
// Callers have already validated u and v.
func (g *Graph) addEdge(u, v int) int {
	id := len(g.edges)
	g.edges = append(g.edges, edgeRec{u: u, v: v, live: true})
	g.adj[u] = append(g.adj[u], entry{to: v, edge: id})
	g.adj[v] = append(g.adj[v], entry{to: u, edge: id})
	g.live++

	return id
}

// findLive returns the edge id of the first live entry for v in u's
// sequence, or -1.
func (g *Graph) findLive(u, v int) int {
	var e entry
	for _, e = range g.adj[u] {
		if e.to == v && g.edges[e.edge].live {
			return e.edge
		}
	}

	return -1
}

// RemoveEdge marks the first live u-v edge found in u's sequence as removed.
// Both entries keep their slots. It is a no-op returning false when no live
// u-v edge exists.
//
// Complexity: O(deg(u)).
func (g *Graph) RemoveEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	id := g.findLive(u, v)
	if id < 0 {
		return false
	}
	g.kill(id)

	return true
}

func (g *Graph) kill(id int) {
	g.edges[id].live = false
	g.live--
}

func (g *Graph) revive(id int) {
	g.edges[id].live = true
	g.live++
}

// HasEdge reports whether a live u-v edge exists.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	return g.findLive(u, v) >= 0
}

// Degree returns the number of live entries in v's sequence, or 0 when v is
// out of range.
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}
	d := 0
	for _, e := range g.adj[v] {
		if g.edges[e.edge].live {
			d++
		}
	}

	return d
}

// Neighbors returns the live neighbors of v in stored order.
func (g *Graph) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}
	out := make([]int, 0, len(g.adj[v]))
	for _, e := range g.adj[v] {
		if g.edges[e.edge].live {
			out = append(out, e.to)
		}
	}

	return out
}

// Edges returns the live edges as {u, v} pairs in insertion order.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.live)
	for _, r := range g.edges {
		if r.live {
			out = append(out, [2]int{r.u, r.v})
		}
	}

	return out
}

// OddVertices returns, in ascending order, the vertices with odd live degree.
func (g *Graph) OddVertices() []int {
	var odd []int
	for v := 0; v < g.n; v++ {
		if g.Degree(v)&1 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

// Clone returns an independent deep copy, including removed slots and the
// restore policy.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:       g.n,
		adj:     make([][]entry, g.n),
		edges:   append([]edgeRec(nil), g.edges...),
		live:    g.live,
		restore: g.restore,
	}
	for v := range g.adj {
		c.adj[v] = append([]entry(nil), g.adj[v]...)
	}

	return c
}
