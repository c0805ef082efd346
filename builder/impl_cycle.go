// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i - (i+1)%n for i=0..n-1.
//   • Every vertex has degree 2, so C_n always has an Eulerian circuit.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the pair list.

package builder

import (
	"github.com/katalvlaran/eulertrail/fleury"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *fleury.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		pairs := make([][2]int, 0, n)
		for i := 0; i < n; i++ {
			// for i==n-1, connect back to 0 to close the ring
			pairs = append(pairs, [2]int{i, (i + 1) % n})
		}

		return emitEdges(g, cfg, MethodCycle, n, pairs)
	}
}
