// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex 0 is the center; leaves are 1..n-1.
//   • Emits edges 0 - i for i = 1..n-1 in ascending order.
//   • Only S_2 (a single edge) and S_3 (a path) have an Eulerian trail.

package builder

import (
	"github.com/katalvlaran/eulertrail/fleury"
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *fleury.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		pairs := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			pairs = append(pairs, [2]int{0, i})
		}

		return emitEdges(g, cfg, MethodStar, n, pairs)
	}
}
