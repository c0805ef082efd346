// Package eulertrail finds Eulerian paths and circuits in small undirected
// graphs with Fleury's algorithm.
//
// What is inside?
//
//	fleury/           - Graph with ordered adjacency, the bridge test, the tour
//	builder/          - deterministic topologies (cycles, grids, K_n, K_{n,m}, random)
//	cmd/fleury/       - console program: read V, E and the edges, print the trail
//	internal/console/ - prompting and re-prompting input reader
//	internal/config/  - defaults, TOML file and flag overrides
//	internal/logging/ - zerolog console logger for the binary
//	examples/         - runnable scenarios (domino ring, street sweeping)
//
// Quick start:
//
//	g, _ := fleury.NewGraph(3)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 0)
//	res, _ := g.Tour()
//	fmt.Println(res) // 0-1 1-2 2-0
//
// A graph has an Eulerian trail when at most two vertices have odd degree
// and all edges are connected. Tour does not check this unless asked to
// with fleury.WithStrict.
package eulertrail
