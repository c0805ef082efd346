// Package builder provides deterministic, functional-options style
// constructors that populate a fleury.Graph with common topologies. It keeps
// tests, benchmarks and examples free of hand-written edge lists.
//
// The package offers the following key components:
//
//   - BuildGraph: allocate a graph of n vertices and apply Constructors in order.
//   - Constructors: Cycle, Path, Star, Wheel, Complete, CompleteBipartite,
//     Grid, Edges, RandomSparse, plus Shift to relocate any of them.
//   - Options: WithSeed / WithRand (RNG for stochastic constructors) and
//     WithShuffle (randomized edge emission order).
//
// Edge emission order matters: Fleury's walk takes the first valid neighbor in
// insertion order, so every constructor documents a stable order and
// WithShuffle is the only way to perturb it.
//
// Guarantees:
//
//   - Deterministic output for equal inputs, options and seed.
//   - Structured runtime errors wrapping sentinels (ErrTooFewVertices, ...),
//     matched with errors.Is.
//   - Option constructors panic on nil arguments; constructors never panic.
package builder
