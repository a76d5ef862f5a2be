package graph

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
)

// Graph is an adjacency-set graph over the dense vertex range [0, n).
//
// Each vertex owns an ordered set of neighbor ids, so Neighbors always
// reports ascending ids without an extra sort. Vertices are fixed at
// construction; only edges can be added. A Graph is not safe for
// concurrent mutation.
type Graph struct {
	n    int
	kind Kind
	adj  []*treeset.Set
	rnd  *rand.Rand
}

// New creates a graph with n isolated vertices numbered 0..n-1.
// It panics if n is negative, the same contract as make.
// Complexity: O(n).
func New(n int, kind Kind, opts ...Option) *Graph {
	if n < 0 {
		panic(fmt.Sprintf("graph: negative vertex count %d", n))
	}

	g := &Graph{
		n:    n,
		kind: kind,
		adj:  make([]*treeset.Set, n),
	}
	for v := range g.adj {
		g.adj[v] = treeset.NewWithIntComparator()
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return g
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// Kind reports whether the graph is Directed or Undirected.
func (g *Graph) Kind() Kind { return g.kind }

// valid reports whether v is a vertex of g.
func (g *Graph) valid(v int) bool { return v >= 0 && v < g.n }

// AddEdge inserts u→v, and v→u as well when the graph is undirected.
// Adding an existing edge is a no-op. Returns ErrInvalidVertex if either
// endpoint is out of range; the graph is left untouched in that case.
// Complexity: O(log d) where d is the degree of the endpoints.
func (g *Graph) AddEdge(u, v int) error {
	if !g.valid(u) || !g.valid(v) {
		return errors.Wrapf(ErrInvalidVertex, "add edge %d-%d (vertex count %d)", u, v, g.n)
	}

	g.adj[u].Add(v)
	if g.kind == Undirected {
		g.adj[v].Add(u)
	}

	return nil
}

// HasEdge reports whether u→v is present. Out-of-range ids yield false.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}

	return g.adj[u].Contains(v)
}

// Neighbors returns the vertices adjacent to v in ascending order.
// Returns ErrInvalidVertex if v is out of range.
// Complexity: O(d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.valid(v) {
		return nil, errors.Wrapf(ErrInvalidVertex, "neighbors of %d (vertex count %d)", v, g.n)
	}

	return g.neighbors(v), nil
}

// neighbors is Neighbors without the range check, for callers that have
// already validated v.
func (g *Graph) neighbors(v int) []int {
	values := g.adj[v].Values()
	out := make([]int, len(values))
	for i, x := range values {
		out[i] = x.(int)
	}

	return out
}

// EdgeCount returns the number of edges. Undirected edges count once.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, set := range g.adj {
		total += set.Size()
	}
	if g.kind == Undirected {
		// every undirected edge is stored twice
		total /= 2
	}

	return total
}

// Edges lists every edge in ascending (From, To) order. Undirected edges
// appear once, with From < To.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for u := 0; u < g.n; u++ {
		for _, v := range g.neighbors(u) {
			if g.kind == Undirected && v < u {
				continue
			}
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}

// String renders one line per vertex in the form "v : n1 n2 ...".
func (g *Graph) String() string {
	var sb strings.Builder
	for v := 0; v < g.n; v++ {
		fmt.Fprintf(&sb, "%d :", v)
		for _, nbr := range g.neighbors(v) {
			fmt.Fprintf(&sb, " %d", nbr)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
