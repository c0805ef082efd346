// SPDX-License-Identifier: MIT
// Package: eulertrail/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition
// size) is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrGraphTooSmall indicates that a constructor needs more vertices than the
// target graph has (taking Shift offsets into account).
var ErrGraphTooSmall = errors.New("builder: graph has too few vertices")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or WithShuffle
// ran without an RNG (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as
// a nil constructor or a rejected edge.
var ErrConstructFailed = errors.New("builder: construction failed")
