// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over unordered pairs {i,j}, i<j: include each
//     pair independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i). Fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulertrail/fleury"
)

// RandomSparse returns a Constructor that samples a random simple graph over
// n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *fleury.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Bernoulli trials in stable order.
		var pairs [][2]int
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				switch {
				case p == MaxProbability:
					pairs = append(pairs, [2]int{i, j})
				case p == MinProbability:
				default:
					if cfg.rng.Float64() < p {
						pairs = append(pairs, [2]int{i, j})
					}
				}
			}
		}

		return emitEdges(g, cfg, MethodRandomSparse, n, pairs)
	}
}
