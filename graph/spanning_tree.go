package graph

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/pkg/errors"
)

// candidate is a frontier edge from → to, tagged with a random priority at
// the moment it enters the queue.
type candidate struct {
	from, to int
	priority uint64
}

// byPriorityDesc orders candidates so that the heap root holds the highest
// priority (a max-heap over a min-heap comparator).
func byPriorityDesc(a, b interface{}) int {
	pa, pb := a.(candidate).priority, b.(candidate).priority
	switch {
	case pa > pb:
		return -1
	case pa < pb:
		return 1
	default:
		return 0
	}
}

// SpanningTree grows a randomized spanning tree of g from source.
//
// It is Prim's algorithm without real weights: every candidate edge gets a
// random priority when it is pushed, and the queue always yields the highest
// one. Popping a candidate whose target is already in the tree discards it.
// Each run over a seeded graph (WithSeed) is reproducible; unseeded graphs
// produce a different layout on every call.
//
// The distribution over spanning trees is not uniform: edges that enter the
// frontier early compete in more draws and are favored.
//
// Error Conditions:
//   - ErrUnsupportedOperation : if g is Directed.
//   - ErrInvalidVertex        : if source is out of range.
//
// Steps:
//  1. Validate kind and source.
//  2. Mark source visited; push (source, n) for each neighbor n.
//  3. Pop the highest-priority candidate. Skip it if its target is visited.
//     Otherwise mark the target, add the edge to the tree, and push the
//     target's unvisited neighbors.
//  4. Stop when the queue is empty.
//
// The tree has VertexCount() vertices and, when g is connected,
// VertexCount()-1 edges. On a disconnected graph unreached vertices stay
// isolated in the result.
//
// Complexity: O(E log E) time, O(V + E) memory.
func (g *Graph) SpanningTree(source int) (*Graph, error) {
	// 1. Validate.
	if g.kind == Directed {
		return nil, errors.Wrap(ErrUnsupportedOperation, "spanning tree of a directed graph")
	}
	if !g.valid(source) {
		return nil, errors.Wrapf(ErrInvalidVertex, "spanning tree source %d (vertex count %d)", source, g.n)
	}

	tree := New(g.n, Undirected, WithRand(g.rnd))
	visited := make([]bool, g.n)
	pq := binaryheap.NewWith(byPriorityDesc)

	push := func(from int) {
		for _, to := range g.neighbors(from) {
			if !visited[to] {
				pq.Push(candidate{from: from, to: to, priority: g.rnd.Uint64()})
			}
		}
	}

	// 2. Seed the frontier.
	visited[source] = true
	push(source)

	// 3. Expand until the frontier is exhausted.
	for !pq.Empty() {
		top, _ := pq.Pop()
		c := top.(candidate)
		if visited[c.to] {
			// stale entry
			continue
		}
		visited[c.to] = true
		tree.link(c.from, c.to)
		push(c.to)
	}

	return tree, nil
}
