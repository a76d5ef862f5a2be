package graph

import (
	"github.com/pkg/errors"
)

// NewGrid returns the undirected 4-connected grid graph of height rows and
// width columns. The cell at (row, col) is vertex row*width+col.
//
// Horizontal edges are added first, row by row, then vertical edges.
// Returns ErrEmptyGrid if height or width is not positive.
// Complexity: O(H·W·log 4) time, O(H·W) memory.
func NewGrid(height, width int, opts ...Option) (*Graph, error) {
	if height < 1 || width < 1 {
		return nil, errors.Wrapf(ErrEmptyGrid, "%dx%d", height, width)
	}

	g := New(height*width, Undirected, opts...)
	for row := 0; row < height; row++ {
		for col := 0; col+1 < width; col++ {
			id := row*width + col
			g.link(id, id+1)
		}
	}
	for row := 0; row+1 < height; row++ {
		for col := 0; col < width; col++ {
			id := row*width + col
			g.link(id, id+width)
		}
	}

	return g, nil
}

// link adds the undirected edge u-v without range checks.
func (g *Graph) link(u, v int) {
	g.adj[u].Add(v)
	g.adj[v].Add(u)
}
