// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// impl_edges.go - implementation of Edges(pairs...) constructor.
//
// Contract:
//   • Emits the given pairs verbatim, in order (shifted by cfg.offset).
//   • Negative endpoints or self-loops surface as ErrConstructFailed wrapping
//     the fleury error text.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulertrail/fleury"
)

// Edges returns a Constructor that adds an explicit edge list.
func Edges(pairs ...[2]int) Constructor {
	// copy so later mutation of the caller's slice has no effect
	own := append([][2]int(nil), pairs...)

	return func(g *fleury.Graph, cfg builderConfig) error {
		span := 0
		for _, p := range own {
			if p[0] < 0 || p[1] < 0 {
				return fmt.Errorf("%s: negative endpoint in %v: %w", MethodEdges, p, ErrConstructFailed)
			}
			span = max(span, p[0]+1, p[1]+1)
		}

		return emitEdges(g, cfg, MethodEdges, span, own)
	}
}
