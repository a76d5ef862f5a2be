// Package graph defines the vertex/edge container types, options, and
// sentinel errors used by the maze generator.
package graph

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Sentinel errors for graph operations.
var (
	// ErrInvalidVertex indicates a vertex index outside [0, VertexCount()).
	ErrInvalidVertex = errors.New("graph: invalid vertex")

	// ErrUnsupportedOperation indicates an operation that is not defined for
	// the graph's kind, e.g. a spanning tree of a directed graph.
	ErrUnsupportedOperation = errors.New("graph: unsupported operation")

	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("graph: grid must have at least one row and one column")
)

// Kind selects whether edges are one-way (Directed) or symmetric (Undirected).
type Kind int

const (
	// Undirected stores every edge in both directions.
	Undirected Kind = iota
	// Directed stores an edge only from its source to its target.
	Directed
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Undirected:
		return "undirected"
	case Directed:
		return "directed"
	default:
		return "unknown"
	}
}

// Edge is a pair of vertex ids. For undirected graphs Edges() reports each
// edge once with From < To.
type Edge struct {
	From int
	To   int
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithRand sets the random source consumed by SpanningTree.
// A nil source is ignored and the default is kept.
func WithRand(r *rand.Rand) Option {
	return func(g *Graph) {
		if r != nil {
			g.rnd = r
		}
	}
}

// WithSeed makes SpanningTree deterministic by drawing priorities from a
// PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(g *Graph) {
		g.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}
