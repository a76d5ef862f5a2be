package maze_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	dgraph "github.com/dominikbraun/graph"
	"github.com/go-logr/logr/funcr"
	"github.com/google/uuid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generate builds and generates an h×w maze with a recorder attached.
func generate(t *testing.T, h, w int, seed uint64) (*maze.Maze, *recorder) {
	t.Helper()
	rec := newRecorder()
	m, err := maze.New(h, w, maze.WithSeed(seed), maze.WithRenderer(rec))
	require.NoError(t, err)
	require.NoError(t, m.Generate())

	return m, rec
}

// neighborID returns the id of the cell next to c in direction d.
func neighborID(m *maze.Maze, c maze.Cell, d maze.Direction) int {
	switch d {
	case maze.North:
		return c.ID - m.Width()
	case maze.South:
		return c.ID + m.Width()
	case maze.East:
		return c.ID + 1
	default:
		return c.ID - 1
	}
}

// requireTreePath checks that every consecutive pair of path is a tree edge
// and that no cell repeats.
func requireTreePath(t *testing.T, m *maze.Maze, path []int) {
	t.Helper()
	tree := m.SpanningTree()
	seen := make(map[int]bool, len(path))
	for i, v := range path {
		require.False(t, seen[v], "cell %d repeated in %v", v, path)
		seen[v] = true
		if i > 0 {
			require.True(t, tree.HasEdge(path[i-1], v), "%d-%d is not a tree edge", path[i-1], v)
		}
	}
}

// diameter returns the edge count of a longest tree path, by BFS from every
// cell.
func diameter(t *testing.T, m *maze.Maze) int {
	t.Helper()
	tree := m.SpanningTree()
	best := 0
	for s := 0; s < m.Size(); s++ {
		dist := map[int]int{s: 0}
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			nbrs, err := tree.Neighbors(u)
			require.NoError(t, err)
			for _, w := range nbrs {
				if _, ok := dist[w]; !ok {
					dist[w] = dist[u] + 1
					queue = append(queue, w)
				}
			}
		}
		for _, d := range dist {
			if d > best {
				best = d
			}
		}
	}

	return best
}

func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 3},
		{"zero width", 3, 0},
		{"negative height", -1, 3},
		{"negative width", 2, -4},
		{"both zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.New(tc.height, tc.width)
			require.ErrorIs(t, err, maze.ErrInvalidDimensions)
			assert.Nil(t, m)
		})
	}
}

func TestNew_CellGeometry(t *testing.T) {
	m, err := maze.New(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 6, m.Size())

	cases := []struct {
		id   int
		want maze.Cell
	}{
		{0, maze.Cell{ID: 0, Row: 0, Col: 0, Location: maze.Point{Line: 2, Column: 3}}},
		{2, maze.Cell{ID: 2, Row: 0, Col: 2, Location: maze.Point{Line: 2, Column: 11}}},
		{4, maze.Cell{ID: 4, Row: 1, Col: 1, Location: maze.Point{Line: 4, Column: 7}}},
		{5, maze.Cell{ID: 5, Row: 1, Col: 2, Location: maze.Point{Line: 4, Column: 11}}},
	}
	for _, tc := range cases {
		got, ok := m.Cell(tc.id)
		require.True(t, ok)
		assert.Equal(t, tc.want, got)
	}

	_, ok := m.Cell(6)
	assert.False(t, ok)
	_, ok = m.Cell(-1)
	assert.False(t, ok)
}

func TestMaze_NotGenerated(t *testing.T) {
	m, err := maze.New(3, 3)
	require.NoError(t, err)
	assert.Nil(t, m.SpanningTree())
	assert.Equal(t, uuid.Nil, m.Generation())

	_, err = m.Solve()
	assert.ErrorIs(t, err, maze.ErrNotGenerated)
	_, err = m.LongestPath()
	assert.ErrorIs(t, err, maze.ErrNotGenerated)
	assert.Equal(t, maze.Unsolved, m.State().Kind)
}

// TestGenerate_Events checks that every cell is drawn before carving starts
// and that each tree edge opens exactly one wall.
func TestGenerate_Events(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 6}, {4, 1}, {3, 3}, {6, 9}} {
		h, w := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", h, w), func(t *testing.T) {
			m, rec := generate(t, h, w, 7)
			n := h * w

			require.Equal(t, n, rec.count(opDraw))
			require.Equal(t, n-1, rec.count(opErase))
			require.Equal(t, n-1, m.SpanningTree().EdgeCount())

			opened := make(map[[2]int]bool)
			for i, e := range rec.events {
				if i < n {
					require.Equal(t, opDraw, e.Op)
					require.Equal(t, i, e.Cell)
					continue
				}
				require.Equal(t, opErase, e.Op)
				c, ok := m.Cell(e.Cell)
				require.True(t, ok)
				nbr := neighborID(m, c, e.Dir)
				require.True(t, m.SpanningTree().HasEdge(c.ID, nbr), "erased %v wall of %d", e.Dir, c.ID)
				key := [2]int{min(c.ID, nbr), max(c.ID, nbr)}
				require.False(t, opened[key], "wall %v erased twice", key)
				opened[key] = true
			}
		})
	}
}

// TestGenerate_CarveOrder pins the depth-first, lowest-id-first carving of a
// chain, where the tree is forced.
func TestGenerate_CarveOrder(t *testing.T) {
	_, rec := generate(t, 1, 4, 1)
	var got []event
	for _, e := range rec.events {
		if e.Op == opErase {
			got = append(got, e)
		}
	}
	want := []event{
		{Op: opErase, Cell: 0, Dir: maze.East},
		{Op: opErase, Cell: 1, Dir: maze.East},
		{Op: opErase, Cell: 2, Dir: maze.East},
	}
	assert.Equal(t, want, got)
}

func TestSolve_SingleCell(t *testing.T) {
	m, rec := generate(t, 1, 1, 1)
	rec.reset()

	path, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
	assert.Equal(t, []maze.Symbol{maze.SymbolSource}, rec.marks())

	longest, err := m.LongestPath()
	require.NoError(t, err)
	assert.Equal(t, []int{0}, longest)
	assert.Equal(t, map[int]maze.Symbol{0: maze.SymbolSource}, rec.marked)
}

func TestSolve_TwoCells(t *testing.T) {
	m, rec := generate(t, 1, 2, 1)
	rec.reset()

	path, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, path)
	assert.Equal(t, []maze.Symbol{maze.SymbolSource, maze.SymbolTarget}, rec.marks())
}

// TestChain covers a 1×5 maze: the grid is a chain, so the tree is the chain
// and both queries walk its full length.
func TestChain(t *testing.T) {
	m, rec := generate(t, 1, 5, 3)
	rec.reset()

	path, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)
	assert.Equal(t, []maze.Symbol{'s', '>', '>', '>', 't'}, rec.marks())

	rec.reset()
	longest, err := m.LongestPath()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, longest)
	assert.Equal(t, 5, rec.count(opClear))
	assert.Equal(t, []maze.Symbol{'s', '<', '<', '<', 't'}, rec.marks())
	assert.ElementsMatch(t, path, longest)
}

// TestColumn covers a 4×1 maze, which is also a chain but vertical.
func TestColumn(t *testing.T) {
	m, rec := generate(t, 4, 1, 3)
	rec.reset()

	path, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
	assert.Equal(t, []maze.Symbol{'s', 'v', 'v', 't'}, rec.marks())
}

// TestSolve_TwoByTwo: one of the four grid edges is dropped. Cells 0 and 3
// are opposite corners of the cycle, so the corner path always has two
// edges and runs through cell 1 or cell 2 depending on the dropped edge.
func TestSolve_TwoByTwo(t *testing.T) {
	via := make(map[int]bool)
	for seed := uint64(0); seed < 32; seed++ {
		m, _ := generate(t, 2, 2, seed)
		require.Equal(t, 3, m.SpanningTree().EdgeCount())

		path, err := m.Solve()
		require.NoError(t, err)
		require.Len(t, path, 3)
		require.Equal(t, 0, path[0])
		require.Equal(t, 3, path[2])
		requireTreePath(t, m, path)
		via[path[1]] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, via, "both routes reached across seeds")
}

// TestPaths_Properties checks both queries over many sizes and seeds, with
// an independent graph library as the oracle for the corner path.
func TestPaths_Properties(t *testing.T) {
	for _, dims := range [][2]int{{2, 3}, {3, 3}, {5, 4}, {8, 8}, {10, 15}} {
		h, w := dims[0], dims[1]
		for seed := uint64(1); seed <= 5; seed++ {
			t.Run(fmt.Sprintf("%dx%d/seed=%d", h, w, seed), func(t *testing.T) {
				m, _ := generate(t, h, w, seed)
				n := m.Size()

				oracle := dgraph.New(dgraph.IntHash)
				for v := 0; v < n; v++ {
					require.NoError(t, oracle.AddVertex(v))
				}
				for _, e := range m.SpanningTree().Edges() {
					require.NoError(t, oracle.AddEdge(e.From, e.To))
				}
				want, err := dgraph.ShortestPath(oracle, 0, n-1)
				require.NoError(t, err)

				path, err := m.Solve()
				require.NoError(t, err)
				assert.Equal(t, want, path)
				requireTreePath(t, m, path)

				longest, err := m.LongestPath()
				require.NoError(t, err)
				requireTreePath(t, m, longest)
				assert.GreaterOrEqual(t, len(longest), len(path))
				assert.Equal(t, diameter(t, m), len(longest)-1)
			})
		}
	}
}

// TestStateMachine checks that at most one path is ever marked on screen.
func TestStateMachine(t *testing.T) {
	m, rec := generate(t, 6, 7, 11)

	requireShown := func(kind maze.StateKind, path []int) {
		t.Helper()
		st := m.State()
		require.Equal(t, kind, st.Kind)
		require.True(t, st.Shown())
		require.Equal(t, path, st.Path)
		require.Len(t, rec.marked, len(path))
		for _, id := range path {
			require.Contains(t, rec.marked, id)
		}
	}

	assert.Equal(t, maze.Unsolved, m.State().Kind)
	assert.False(t, m.State().Shown())

	solved, err := m.Solve()
	require.NoError(t, err)
	requireShown(maze.ShortestPathShown, solved)

	longest, err := m.LongestPath()
	require.NoError(t, err)
	requireShown(maze.LongestPathShown, longest)

	again, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, solved, again)
	requireShown(maze.ShortestPathShown, again)

	// the returned path is a copy
	again[0] = -1
	assert.Equal(t, 0, m.State().Path[0])
	st := m.State()
	st.Path[0] = -1
	assert.Equal(t, 0, m.State().Path[0])
}

// TestStateMachine_ClearBeforeMark checks the event order of a re-solve:
// every cell of the old path is cleared before the new one is marked.
func TestStateMachine_ClearBeforeMark(t *testing.T) {
	m, rec := generate(t, 5, 5, 2)
	solved, err := m.Solve()
	require.NoError(t, err)

	rec.reset()
	_, err = m.LongestPath()
	require.NoError(t, err)

	for i, e := range rec.events {
		if i < len(solved) {
			require.Equal(t, opClear, e.Op)
			require.Equal(t, solved[i], e.Cell)
			continue
		}
		require.Equal(t, opMark, e.Op)
	}
}

// TestGenerate_Regenerate checks that a second Generate clears the shown
// path from the screen before the new maze is drawn.
func TestGenerate_Regenerate(t *testing.T) {
	m, rec := generate(t, 6, 6, 5)
	first := m.Generation()
	require.NotEqual(t, uuid.Nil, first)

	solved, err := m.Solve()
	require.NoError(t, err)
	require.True(t, m.State().Shown())
	require.Len(t, rec.marked, len(solved))

	rec.reset()
	require.NoError(t, m.Generate())
	assert.NotEqual(t, first, m.Generation())
	assert.Equal(t, maze.Unsolved, m.State().Kind)
	assert.Nil(t, m.State().Path)
	assert.Empty(t, rec.marked)
	assert.Equal(t, len(solved), rec.count(opClear))
	for i := range solved {
		require.Equal(t, opClear, rec.events[i].Op, "clears come before the new walls")
	}

	longest, err := m.LongestPath()
	require.NoError(t, err)
	assert.Len(t, rec.marked, len(longest))
	for _, id := range longest {
		assert.Contains(t, rec.marked, id)
	}
}

func TestNew_TooLarge(t *testing.T) {
	m, err := maze.New(math.MaxInt/2, 3)
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)
	assert.Nil(t, m)

	m, err = maze.New(math.MaxInt, math.MaxInt)
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)
	assert.Nil(t, m)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := generate(t, 9, 12, 42)
	b, _ := generate(t, 9, 12, 42)
	assert.Equal(t, a.SpanningTree().Edges(), b.SpanningTree().Edges())

	pa, err := a.LongestPath()
	require.NoError(t, err)
	pb, err := b.LongestPath()
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

func TestMaze_Logging(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	m, err := maze.New(3, 3, maze.WithSeed(1), maze.WithLogger(log))
	require.NoError(t, err)
	require.NoError(t, m.Generate())
	_, err = m.Solve()
	require.NoError(t, err)
	_, err = m.LongestPath()
	require.NoError(t, err)

	all := strings.Join(lines, "\n")
	assert.Contains(t, all, `"generated maze"`)
	assert.Contains(t, all, `"solved maze"`)
	assert.Contains(t, all, `"cleared path"`)
	assert.Contains(t, all, `"found longest path"`)
	assert.Contains(t, all, m.Generation().String())
	assert.Contains(t, all, `"pathLength"`)
}

func TestDirectionBetween(t *testing.T) {
	m, err := maze.New(3, 3)
	require.NoError(t, err)
	cell := func(id int) maze.Cell {
		c, ok := m.Cell(id)
		require.True(t, ok)
		return c
	}

	cases := []struct {
		from, to int
		dir      maze.Direction
		arrow    maze.Symbol
		name     string
	}{
		{4, 1, maze.North, '^', "North"},
		{4, 7, maze.South, 'v', "South"},
		{4, 5, maze.East, '>', "East"},
		{4, 3, maze.West, '<', "West"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := maze.DirectionBetween(cell(tc.from), cell(tc.to))
			assert.Equal(t, tc.dir, d)
			assert.Equal(t, tc.arrow, d.Arrow())
			assert.Equal(t, tc.name, d.String())
		})
	}
	assert.Equal(t, "Direction(9)", maze.Direction(9).String())
}

func TestStateKind_String(t *testing.T) {
	assert.Equal(t, "unsolved", maze.Unsolved.String())
	assert.Equal(t, "shortest-path-shown", maze.ShortestPathShown.String())
	assert.Equal(t, "longest-path-shown", maze.LongestPathShown.String())
	assert.Equal(t, "unknown", maze.StateKind(7).String())
}
