package maze

import (
	"github.com/pkg/errors"
)

// unvisited marks a vertex not yet reached by a BFS pass.
const unvisited = -1

// LongestPath finds a longest path between any two cells (the diameter of
// the spanning tree), renders it, and returns it from the second BFS source
// to the farthest cell. Any previously shown path is cleared first.
//
// Steps:
//  1. BFS from vertex 0; the farthest vertex a is one end of a diameter.
//  2. BFS from a; the farthest vertex b is the other end.
//  3. Walk the parents of the second pass from b back to a and reverse.
//
// Ties between equally distant vertices go to the lowest id.
//
// Returns ErrNotGenerated if Generate has not run, or ErrDisconnectedTree if
// a pass leaves a cell unreached.
// Complexity: O(V) time and memory.
func (m *Maze) LongestPath() ([]int, error) {
	if m.tree == nil {
		return nil, ErrNotGenerated
	}
	m.prime()

	// 1. First endpoint. Only distances matter here; parents come from pass 2.
	dist, _ := m.bfs(0)
	a, err := farthest(dist)
	if err != nil {
		return nil, errors.Wrap(err, "maze: longest path from 0")
	}

	// 2. Second endpoint.
	dist, parent := m.bfs(a)
	b, err := farthest(dist)
	if err != nil {
		return nil, errors.Wrapf(err, "maze: longest path from %d", a)
	}

	// 3. Reconstruct a → b.
	path := make([]int, 0, dist[b]+1)
	for v := b; v != a; v = parent[v] {
		path = append(path, v)
	}
	path = append(path, a)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	m.show(LongestPathShown, path)
	m.log.V(1).Info("found longest path",
		"generation", m.generation.String(),
		"from", a,
		"to", b,
		"pathLength", len(path))

	return clonePath(path), nil
}

// bfs returns the distance of every cell from source over the spanning tree
// and its BFS parent. Unreached cells keep distance -1.
func (m *Maze) bfs(source int) (dist, parent []int) {
	n := len(m.cells)
	dist = make([]int, n)
	parent = make([]int, n)
	for i := range dist {
		dist[i] = unvisited
		parent[i] = unvisited
	}

	queue := make([]int, 0, n)
	dist[source] = 0
	queue = append(queue, source)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range m.treeNeighbors(u) {
			if dist[w] != unvisited {
				continue
			}
			dist[w] = dist[u] + 1
			parent[w] = u
			queue = append(queue, w)
		}
	}

	return dist, parent
}

// farthest returns the first vertex with the greatest distance. Any vertex
// still at -1 means the tree is disconnected.
func farthest(dist []int) (int, error) {
	best := 0
	for v, d := range dist {
		if d == unvisited {
			return 0, errors.Wrapf(ErrDisconnectedTree, "cell %d unreached", v)
		}
		if d > dist[best] {
			best = v
		}
	}

	return best, nil
}
