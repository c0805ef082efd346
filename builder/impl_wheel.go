// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim is the cycle 0..n-2 (emitted first, as Cycle(n-1) does);
//     hub is vertex n-1, spokes emitted as (n-1) - i for i = 0..n-2.
//   • Rim vertices have degree 3, so a wheel has no Eulerian trail for n ≥ 4.
//     It is the canonical negative fixture.

package builder

import (
	"github.com/katalvlaran/eulertrail/fleury"
)

// Wheel returns a Constructor that builds the wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *fleury.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		rim := n - 1
		hub := n - 1
		pairs := make([][2]int, 0, 2*rim)
		for i := 0; i < rim; i++ {
			pairs = append(pairs, [2]int{i, (i + 1) % rim})
		}
		for i := 0; i < rim; i++ {
			pairs = append(pairs, [2]int{hub, i})
		}

		return emitEdges(g, cfg, MethodWheel, n, pairs)
	}
}
