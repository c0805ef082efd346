// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil   (pure/deterministic unless seeded)
//   • shuffle = false (constructors emit edges in their documented order)
//   • offset  = 0     (vertex ids start at 0; see Shift)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors, so Shift can adjust offset locally.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// shuffle randomizes the emission order of each constructor's edges.
	shuffle bool
	// offset is added to every vertex index a constructor emits.
	offset int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		shuffle: false,
		offset:  0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
