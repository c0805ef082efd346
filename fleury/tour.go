// tour.go - the bridge-aware edge test, start vertex selection and the
// edge-consuming walk.
//
// The walk keeps one frame per vertex on an explicit stack instead of
// recursing, so its depth is bounded by E and not by the goroutine stack.
// On graphs that have an Eulerian trail, visit order is identical to the
// recursive formulation: a frame resumes its scan at the slot after the edge
// it descended through.

package fleury

import (
	"fmt"
	"io"
)

// IsValidNextEdge reports whether walking u->v next obeys Fleury's rule:
//
//  1. v is u's only live neighbor entry, or
//  2. removing u-v does not shrink the set of vertices reachable from u.
//
// For case 2 the edge is removed, reachability is recounted and the edge is
// put back according to the graph's RestorePolicy. The live-edge set is the
// same on return; with RestoreAppend the edge moves to the end of both
// adjacency sequences.
// Out-of-range ids or a missing live u-v edge return false.
//
// Complexity: O(V+E).
func (g *Graph) IsValidNextEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	id := g.findLive(u, v)
	if id < 0 {
		return false
	}

	// 1) no choice left at u
	if g.Degree(u) == 1 {
		return true
	}

	// 2) bridge test: count, remove, recount, restore
	visited := make([]bool, g.n)
	count1 := g.DFSCount(u, visited)

	g.kill(id)
	clear(visited)
	count2 := g.DFSCount(u, visited)
	g.restoreEdge(id)

	return count1 <= count2
}

// restoreEdge undoes kill(id) for the bridge probe.
func (g *Graph) restoreEdge(id int) {
	if g.restore == RestoreInPlace {
		g.revive(id)
		return
	}
	r := g.edges[id]
	g.addEdge(r.u, r.v)
}

// StartVertex returns the first vertex with odd live degree, or 0 when all
// degrees are even.
//
// Complexity: O(V+E).
func (g *Graph) StartVertex() int {
	for v := 0; v < g.n; v++ {
		if g.Degree(v)&1 == 1 {
			return v
		}
	}

	return 0
}

// firstWithEdge returns the lowest vertex with a live edge, or fallback.
func (g *Graph) firstWithEdge(fallback int) int {
	for v := 0; v < g.n; v++ {
		if g.Degree(v) > 0 {
			return v
		}
	}

	return fallback
}

// frame is one pending vertex of the walk and the next slot to scan.
type frame struct {
	u    int
	next int
}

// walker encapsulates state during Tour.
type walker struct {
	graph *Graph
	opts  TourOptions
	res   *Result
}

// Tour walks the graph from StartVertex with Fleury's rule, consuming every
// edge it takes, and returns the trail.
//
// Without WithStrict the graph is not checked: on a graph with no Eulerian
// trail the result is partial and Result.Complete is false. An even-degree
// graph whose vertex 0 is isolated also yields an empty trail, since the walk
// starts at 0. WithStrict rejects graphs without a trail and starts such
// graphs at the lowest vertex that has an edge.
// On a hook error or a cancelled context the partial result is returned
// together with the error.
//
// Complexity: O(E·(V+E)).
func (g *Graph) Tour(opts ...Option) (*Result, error) {
	// 1. Apply options
	topts := DefaultOptions()
	for _, fn := range opts {
		fn(&topts)
	}

	// 2. Optional precondition check
	if topts.Strict {
		if err := g.CheckEulerian(); err != nil {
			return nil, fmt.Errorf("Tour: %w", err)
		}
	}

	// 3. Pick the start and walk
	start := g.StartVertex()
	if topts.Strict && g.Degree(start) == 0 {
		start = g.firstWithEdge(start)
	}
	total := g.live
	res := &Result{
		Start: start,
		Steps: make([]Step, 0, total),
	}
	w := &walker{graph: g, opts: topts, res: res}
	if err := w.walk(res.Start); err != nil {
		return res, err
	}

	// 4. Summarize
	res.Complete = len(res.Steps) == total
	res.Circuit = len(res.Steps) > 0 && res.End() == res.Start

	return res, nil
}

// walk runs the edge-consuming traversal from start.
func (w *walker) walk(start int) error {
	g := w.graph
	stack := []frame{{u: start}}

	var (
		top  *frame
		e    entry
		step Step
		took bool
		end  int
	)
	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return fmt.Errorf("Tour: %w", w.opts.Ctx.Err())
		default:
		}

		top = &stack[len(stack)-1]
		took = false

		// Slots appended before this scan (by earlier probes or deeper
		// frames) are visited; slots appended by this scan's own failed
		// probes are not, otherwise a vertex whose live edges are all
		// bridges would re-probe them forever.
		end = len(g.adj[top.u])
		for top.next < end {
			e = g.adj[top.u][top.next]
			top.next++

			if !g.edges[e.edge].live {
				continue
			}
			if !g.IsValidNextEdge(top.u, e.to) {
				w.res.Deferred++
				if w.opts.OnDefer != nil {
					w.opts.OnDefer(top.u, e.to)
				}
				continue
			}

			// the hook sees the edge while it is still live; a rejected
			// step is neither consumed nor recorded
			step = Step{From: top.u, To: e.to}
			if w.opts.OnStep != nil {
				if err := w.opts.OnStep(step); err != nil {
					return fmt.Errorf("Tour: OnStep hook for %s: %w", step, err)
				}
			}
			g.RemoveEdge(step.From, step.To)
			w.res.Steps = append(w.res.Steps, step)
			took = true

			break
		}

		if took {
			// top is invalid once the stack grows
			stack = append(stack, frame{u: step.To})
			continue
		}
		stack = stack[:len(stack)-1]
	}

	return nil
}

// WriteTour runs Tour and writes the trail to out as space-separated "u-v"
// tokens followed by a newline. Nothing is written if Tour fails.
func (g *Graph) WriteTour(out io.Writer, opts ...Option) (*Result, error) {
	res, err := g.Tour(opts...)
	if err != nil {
		return res, err
	}
	if _, err = io.WriteString(out, res.String()+"\n"); err != nil {
		return res, fmt.Errorf("WriteTour: %w", err)
	}

	return res, nil
}
