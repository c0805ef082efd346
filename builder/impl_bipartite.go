// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side is 0..n1-1, right side is n1..n1+n2-1.
//   • Emits edges left-major: for each i, for each j, i - (n1+j).
//   • Left vertices have degree n2 and right vertices degree n1, so
//     K_{n1,n2} has a circuit iff both are even.

package builder

import (
	"github.com/katalvlaran/eulertrail/fleury"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *fleury.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}

		pairs := make([][2]int, 0, n1*n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				pairs = append(pairs, [2]int{i, n1 + j})
			}
		}

		return emitEdges(g, cfg, MethodCompleteBipartite, n1+n2, pairs)
	}
}
