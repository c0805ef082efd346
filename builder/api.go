// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulertrail/fleury"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order (unless cfg.shuffle).
//   - Add cfg.offset to every vertex index.
type Constructor func(g *fleury.Graph, cfg builderConfig) error

// BuildGraph creates a fleury.Graph with n vertices and graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any error is wrapped as "BuildGraph: %w" and returned
// immediately; no partial graph is returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(n int, gopts []fleury.GraphOption, bopts []BuilderOption, cons ...Constructor) (*fleury.Graph, error) {
	g, err := fleury.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph with freshly resolved
// options. It is the non-allocating counterpart of BuildGraph.
func Apply(g *fleury.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// Shift returns a Constructor that runs c with every vertex index moved by
// offset. Shift(2, Cycle(3)) builds the triangle 2-3-4. Offsets accumulate
// when Shift is nested.
func Shift(offset int, c Constructor) Constructor {
	return func(g *fleury.Graph, cfg builderConfig) error {
		if offset < 0 {
			return fmt.Errorf("%s: offset=%d < 0: %w", MethodShift, offset, ErrConstructFailed)
		}
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", MethodShift, ErrConstructFailed)
		}
		cfg.offset += offset

		return c(g, cfg)
	}
}
