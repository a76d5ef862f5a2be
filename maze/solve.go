package maze

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Solve finds the path from the top-left cell (0) to the bottom-right cell
// (Size()-1), renders it, and returns it. Any previously shown path is
// cleared first. A 1×1 maze yields [0].
//
// The spanning tree has exactly one simple path between two cells, so a
// depth-first search with backtracking finds it; the search stops as soon
// as the target is pushed.
//
// Returns ErrNotGenerated if Generate has not run.
// Complexity: O(V) time and memory.
func (m *Maze) Solve() ([]int, error) {
	if m.tree == nil {
		return nil, ErrNotGenerated
	}
	m.prime()

	path := m.searchPath(0, len(m.cells)-1)
	m.show(ShortestPathShown, path)
	m.log.V(1).Info("solved maze",
		"generation", m.generation.String(),
		"pathLength", len(path))

	return clonePath(path), nil
}

// searchPath runs the backtracking DFS from source to target over the tree.
//
// Steps:
//  1. Push source onto both the frame stack and the path.
//  2. If the top vertex is target, the path is complete.
//  3. Otherwise descend into the next unvisited neighbor, lowest id first.
//  4. When a vertex has no neighbors left, pop it from the path and mark it
//     unvisited again.
func (m *Maze) searchPath(source, target int) []int {
	visited := make([]bool, len(m.cells))
	path := make([]int, 0, len(m.cells))
	stack := arraystack.New()

	enter := func(v int) {
		visited[v] = true
		path = append(path, v)
		stack.Push(&frame{v: v, nbrs: m.treeNeighbors(v)})
	}

	// 1. Source.
	enter(source)
	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)

		// 2. Found.
		if f.v == target {
			return path
		}

		// 3. Descend.
		if f.next < len(f.nbrs) {
			w := f.nbrs[f.next]
			f.next++
			if !visited[w] {
				enter(w)
			}
			continue
		}

		// 4. Dead end.
		stack.Pop()
		visited[f.v] = false
		path = path[:len(path)-1]
	}

	// unreachable on a spanning tree
	return nil
}
