package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/exwalk/core"
)

// Sentinel errors for gonum conversions.
var (
	// ErrGraphNil is returned when either conversion receives nil.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrNonDenseIDs is returned by FromGonum when node ids are not
	// exactly 0..n−1.
	ErrNonDenseIDs = errors.New("converters: node ids are not dense")
)

// ToGonum exports g as a simple.UndirectedGraph with node ids equal to
// vertex ids. Every vertex is added explicitly, so isolated vertices
// survive the round trip.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.VertexCount(); v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	return ug, nil
}

// FromGonum imports an undirected gonum graph as a core.Graph. Node ids
// must be exactly 0..n−1; edges are sorted into canonical (U<V, then
// ascending) order first, so the resulting adjacency is deterministic
// regardless of gonum's map iteration order.
// Complexity: O(V + E log E).
func FromGonum(src *simple.UndirectedGraph) (*core.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}

	nodes := src.Nodes()
	n := nodes.Len()
	for nodes.Next() {
		id := nodes.Node().ID()
		if id < 0 || id >= int64(n) {
			return nil, fmt.Errorf("%w: id %d with %d nodes", ErrNonDenseIDs, id, n)
		}
	}

	var edges []core.Edge
	it := src.Edges()
	for it.Next() {
		e := it.Edge()
		u, v := int(e.From().ID()), int(e.To().ID())
		if u > v {
			u, v = v, u
		}
		edges = append(edges, core.Edge{U: u, V: v})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})

	return core.NewGraph(n, edges)
}
