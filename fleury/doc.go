// Package fleury computes an Eulerian path or circuit of a small undirected
// graph using Fleury's algorithm.
//
// What:
//
//   - Graph: a fixed set of vertices 0..V-1 with ordered adjacency sequences.
//     Edges are consumed during traversal by clearing a per-edge live flag, so
//     removed entries keep their position and scan order is stable.
//   - IsValidNextEdge: Fleury's rule. An edge may be taken if it is the only
//     live edge at u, or if removing it does not shrink the set of vertices
//     reachable from u (i.e. it is not a bridge right now).
//   - Tour: picks the first odd-degree vertex (or 0) and walks the graph,
//     taking the first valid live edge in stored order at every step.
//   - CheckEulerian: optional precondition check (at most two odd vertices,
//     live edges in one component).
//
// Why:
//   - Route planning that must use every street/link exactly once
//   - Teaching reference for bridge-aware greedy traversal
//
// Complexity:
//
//   - DFSCount:        Time O(V+E), Memory O(V)
//   - IsValidNextEdge: Time O(V+E), two reachability passes
//   - Tour:            Time O(E·(V+E)), Memory O(V+E)
//
// Errors:
//
//   - ErrInvalidVertexCount  NewGraph called with v <= 0
//   - ErrVertexOutOfRange    vertex id outside 0..V-1
//   - ErrSelfLoop            AddEdge(u, u)
//   - ErrTooManyOddVertices  more than two vertices of odd degree (strict mode)
//   - ErrDisconnected        live edges span several components (strict mode)
//   - ErrInvalidTrail        ValidateTrail found a broken or incomplete trail
//   - hook errors            propagated from OnStep
//   - context.Canceled       if the WithContext context is done
//
// Known limitation: without WithStrict, Tour does not verify that an Eulerian
// trail exists and silently returns a partial trail when it does not
// (Result.Complete reports this).
//
// A Graph is not safe for concurrent use. Tour consumes the edges it walks;
// call Clone first to keep the original.
package fleury
