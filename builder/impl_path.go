// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges (i-1) - i for i=1..n-1 in increasing order.
//   • Endpoints 0 and n-1 are the only odd vertices: an open Eulerian trail.

package builder

import (
	"github.com/katalvlaran/eulertrail/fleury"
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *fleury.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		pairs := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			pairs = append(pairs, [2]int{i - 1, i})
		}

		return emitEdges(g, cfg, MethodPath, n, pairs)
	}
}
