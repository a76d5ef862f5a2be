package maze

import (
	"math"
	"math/rand/v2"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/katalvlaran/lvmaze/graph"
	"github.com/pkg/errors"
)

// Maze is a height×width grid whose walls are carved along a random
// spanning tree of the grid graph.
//
// A Maze owns its cells, the spanning tree, and the solved state; all of
// them are mutated only through its methods. It is not safe for concurrent
// use.
type Maze struct {
	height, width int
	cells         []Cell

	tree       *graph.Graph
	state      SolvedState
	generation uuid.UUID

	renderer Renderer
	log      logr.Logger
	rnd      *rand.Rand
}

// Option configures a Maze at construction time.
type Option func(*Maze)

// WithRenderer sends drawing events to r. A nil r is ignored.
func WithRenderer(r Renderer) Option {
	return func(m *Maze) {
		if r != nil {
			m.renderer = r
		}
	}
}

// WithLogger sets the structured logger. Debug lines are emitted at V(1).
func WithLogger(l logr.Logger) Option {
	return func(m *Maze) { m.log = l }
}

// WithSeed makes every Generate call on this maze reproducible.
func WithSeed(seed uint64) Option {
	return func(m *Maze) {
		m.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand draws spanning-tree priorities from r. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(m *Maze) {
		if r != nil {
			m.rnd = r
		}
	}
}

// New lays out a height×width grid of cells. No walls are carved until
// Generate is called.
// Returns ErrInvalidDimensions if height or width is not positive, or if
// height·width does not fit in an int.
// Complexity: O(height·width).
func New(height, width int, opts ...Option) (*Maze, error) {
	if height < 1 || width < 1 || height > math.MaxInt/width {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", height, width)
	}

	m := &Maze{
		height:   height,
		width:    width,
		cells:    make([]Cell, 0, height*width),
		renderer: NopRenderer{},
		log:      logr.Discard(),
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			m.cells = append(m.cells, newCell(row, col, width))
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rnd == nil {
		m.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return m, nil
}

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Size returns the number of cells.
func (m *Maze) Size() int { return len(m.cells) }

// Cell returns the cell with the given id.
func (m *Maze) Cell(id int) (Cell, bool) {
	if id < 0 || id >= len(m.cells) {
		return Cell{}, false
	}

	return m.cells[id], true
}

// SpanningTree returns the tree carved by the last Generate, or nil.
// The returned graph must not be modified.
func (m *Maze) SpanningTree() *graph.Graph { return m.tree }

// Generation identifies the last Generate call; it is the zero UUID before
// the first one.
func (m *Maze) Generation() uuid.UUID { return m.generation }

// State returns the solved state. The path is a copy.
func (m *Maze) State() SolvedState {
	return SolvedState{Kind: m.state.Kind, Path: clonePath(m.state.Path)}
}

// Generate builds the full grid graph, computes its random spanning tree
// from the top-left cell, draws every cell and then carves the tree.
// Calling it again clears any shown path and discards the previous tree;
// a failed call leaves both in place.
//
// Steps:
//  1. Build the grid graph: horizontal edges first, then vertical ones.
//  2. Compute the spanning tree from vertex 0.
//  3. Draw all cells with their four walls.
//  4. Carve: erase one wall per tree edge.
//
// Complexity: O(V log V) for the tree, O(V) for drawing and carving.
func (m *Maze) Generate() error {
	n := len(m.cells)

	// 1. Full grid adjacency.
	full, err := graph.NewGrid(m.height, m.width, graph.WithRand(m.rnd))
	if err != nil {
		return errors.Wrap(err, "maze: grid")
	}

	// 2. Random spanning tree from the top-left corner.
	tree, err := full.SpanningTree(0)
	if err != nil {
		return errors.Wrap(err, "maze: spanning tree")
	}
	if tree.EdgeCount() != n-1 {
		return errors.Wrapf(ErrDisconnectedTree, "%d edges for %d cells", tree.EdgeCount(), n)
	}

	m.prime()
	m.tree = tree
	m.state = SolvedState{Kind: Unsolved}
	m.generation = uuid.New()
	m.log.V(1).Info("generated maze",
		"generation", m.generation.String(),
		"height", m.height,
		"width", m.width,
		"edges", tree.EdgeCount())

	// 3. Walls.
	for _, c := range m.cells {
		m.renderer.DrawCell(c)
	}

	// 4. Passages.
	m.carve()

	return nil
}

func clonePath(path []int) []int {
	if path == nil {
		return nil
	}
	out := make([]int, len(path))
	copy(out, path)

	return out
}
