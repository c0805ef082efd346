// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, lexicographic by (i,j).
//   • K_n is Eulerian (circuit) iff n is odd; K_2 is a single open trail.
//
// Complexity:
//   • Time: O(n²) edges emission.

package builder

import (
	"github.com/katalvlaran/eulertrail/fleury"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *fleury.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		pairs := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}

		return emitEdges(g, cfg, MethodComplete, n, pairs)
	}
}
