// Package graph provides a small adjacency-set graph over integer vertex ids
// and a randomized spanning-tree builder used to carve mazes.
//
// What:
//
//   - Graph: a fixed set of vertices 0..n-1, Directed or Undirected,
//     with ordered neighbor sets.
//   - SpanningTree: a randomized variant of Prim's algorithm. Instead of
//     edge weights each frontier edge receives a random priority when it is
//     queued; the highest priority is expanded next.
//
// Why:
//
//   - A spanning tree of a grid graph is a perfect maze: every cell is
//     reachable and there is exactly one path between any two cells.
//   - Ascending neighbor order keeps every traversal over the tree
//     reproducible, while the tree shape itself stays random.
//
// Complexity:
//
//   - AddEdge:      O(log d)
//   - Neighbors:    O(d)
//   - SpanningTree: O(E log E) time, O(V + E) memory
//
// Options:
//
//   - WithSeed(seed): deterministic spanning trees (tests, replays).
//   - WithRand(r):    share a caller-owned *rand.Rand.
//
// Errors:
//
//   - ErrInvalidVertex:        vertex id outside [0, VertexCount()).
//   - ErrUnsupportedOperation: SpanningTree on a Directed graph.
//
// Errors are wrapped with the offending operands; match them with errors.Is.
package graph
