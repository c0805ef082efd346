// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is vertex r*cols + c (row-major).
//   • For each cell in row-major order, emit Right then Bottom if present.
//   • Border cells of grids larger than 2×2 have degree 3, so most grids are
//     not Eulerian; 1×n grids are paths and the 2×2 grid is a 4-cycle.
//
// Complexity:
//   • Time: O(rows*cols).

package builder

import (
	"github.com/katalvlaran/eulertrail/fleury"
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *fleury.Graph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		pairs := make([][2]int, 0, 2*rows*cols)
		var r, c, id int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id = r*cols + c
				if c+1 < cols {
					pairs = append(pairs, [2]int{id, id + 1})
				}
				if r+1 < rows {
					pairs = append(pairs, [2]int{id, id + cols})
				}
			}
		}

		return emitEdges(g, cfg, MethodGrid, rows*cols, pairs)
	}
}
