package maze

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// frame is one level of an explicit-stack DFS: the vertex being expanded
// and the index of the next neighbor to try.
type frame struct {
	v    int
	nbrs []int
	next int
}

// treeNeighbors returns the ascending tree neighbors of v. Every id handed
// in comes from the maze's own cell range, so the lookup cannot fail.
func (m *Maze) treeNeighbors(v int) []int {
	nbrs, err := m.tree.Neighbors(v)
	if err != nil {
		panic(err)
	}

	return nbrs
}

// carve walks the spanning tree depth-first from vertex 0 and erases the
// wall between every parent and child, seen from the parent's side.
//
// Steps:
//  1. Push vertex 0 and mark it visited.
//  2. Take the next untried neighbor of the top frame, lowest id first.
//  3. If it is unvisited, erase the wall toward it and push it.
//  4. Pop the frame once its neighbors are exhausted.
//
// Exactly Size()-1 walls are erased, one per tree edge.
// Complexity: O(V) time and O(V) stack.
func (m *Maze) carve() {
	visited := make([]bool, len(m.cells))
	stack := arraystack.New()

	// 1. Root.
	visited[0] = true
	stack.Push(&frame{v: 0, nbrs: m.treeNeighbors(0)})

	erased := 0
	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)

		// 4. Exhausted.
		if f.next == len(f.nbrs) {
			stack.Pop()
			continue
		}

		// 2. Next neighbor in ascending order.
		w := f.nbrs[f.next]
		f.next++
		if visited[w] {
			continue
		}

		// 3. Descend.
		visited[w] = true
		from, to := m.cells[f.v], m.cells[w]
		m.renderer.EraseWall(from, DirectionBetween(from, to))
		erased++
		stack.Push(&frame{v: w, nbrs: m.treeNeighbors(w)})
	}

	m.log.V(1).Info("carved maze", "generation", m.generation.String(), "walls", erased)
}
