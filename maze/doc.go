// Package maze generates a rectangular maze from a random spanning tree of
// its grid graph and answers two path queries on that tree.
//
// What:
//
//   - New lays out height×width cells with ids row*width+col.
//   - Generate builds the full grid graph, takes its random spanning tree
//     from the top-left cell, draws every cell and carves one wall per
//     tree edge.
//   - Solve returns the unique path from the top-left to the bottom-right
//     cell.
//   - LongestPath returns a diameter of the tree, found with two BFS passes.
//
// Every drawing event goes to a Renderer. The computed tree and paths do
// not depend on the renderer, so NopRenderer is enough for tests.
//
// Solved state:
//
//	Unsolved → ShortestPathShown → Unsolved → LongestPathShown → ...
//
// Before Solve or LongestPath runs, any shown path is cleared, so at most
// one path is drawn at a time.
//
// Complexity (V = Size()):
//
//   - Generate:    O(V log V)
//   - Solve:       O(V)
//   - LongestPath: O(V)
//
// Options:
//
//   - WithRenderer(r): receive DrawCell, EraseWall, MarkCell and ClearCell.
//   - WithLogger(l):   logr sink; debug lines are emitted at V(1).
//   - WithSeed(seed):  reproducible mazes.
//   - WithRand(r):     caller-owned random source.
//
// Errors:
//
//   - ErrInvalidDimensions: height or width is not positive.
//   - ErrNotGenerated:      Solve or LongestPath before Generate.
//   - ErrDisconnectedTree:  the spanning tree does not reach every cell.
package maze
