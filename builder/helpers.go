// Package builder provides internal helper functions used by Constructor
// implementations.
//
// Design principles:
//   - Single Responsibility: constructors compute pairs, emitEdges adds them.
//   - Error Context: wrap errors with the method name for uniform reporting.
package builder

import (
	"fmt"

	"github.com/katalvlaran/eulertrail/fleury"
)

// emitEdges adds pairs to g in order (or in a cfg.rng permutation when
// cfg.shuffle is set), shifting every endpoint by cfg.offset.
// span is the number of vertex indices the constructor uses; the graph must
// have at least cfg.offset+span vertices.
//
// Complexity: O(len(pairs)) time, O(len(pairs)) extra space when shuffling.
func emitEdges(g *fleury.Graph, cfg builderConfig, method string, span int, pairs [][2]int) error {
	// 1. Capacity check before any mutation
	if need := cfg.offset + span; need > g.VertexCount() {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w",
			method, need, g.VertexCount(), ErrGraphTooSmall)
	}

	// 2. Optional permutation
	if cfg.shuffle {
		if cfg.rng == nil {
			return fmt.Errorf("%s: shuffle: %w", method, ErrNeedRandSource)
		}
		shuffled := append([][2]int(nil), pairs...)
		cfg.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		pairs = shuffled
	}

	// 3. Emit
	var (
		p    [2]int
		u, v int
	)
	for _, p = range pairs {
		u, v = p[0]+cfg.offset, p[1]+cfg.offset
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
		}
	}

	return nil
}
