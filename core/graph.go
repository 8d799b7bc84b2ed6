package core

import "fmt"

// NewGraph builds an immutable Graph over vertexCount vertices from the
// given edge list.
//
// Returns ErrBadVertexCount for a negative vertexCount, and ErrInvalidEdge
// if any endpoint lies outside [0, vertexCount) or an edge is a self-loop.
// Validation happens before any adjacency is materialized, so a Graph is
// never partially constructed.
//
// Duplicate edges collapse: the adjacency records each unordered pair at
// most once, at the position of its first occurrence. This keeps the
// neighbor order deterministic for identical input.
//
// Complexity: O(vertexCount + len(edges)) time and space.
func NewGraph(vertexCount int, edges []Edge) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, vertexCount)
	}

	// Validate the full edge list up front; fail fast, build nothing.
	for i, e := range edges {
		if e.U < 0 || e.U >= vertexCount || e.V < 0 || e.V >= vertexCount {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) endpoint outside [0,%d)",
				ErrInvalidEdge, i, e.U, e.V, vertexCount)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("%w: edge #%d is a self-loop on %d",
				ErrInvalidEdge, i, e.U)
		}
	}

	g := &Graph{
		n:       vertexCount,
		adj:     make([][]int, vertexCount),
		edgeSet: make(map[uint64]struct{}, len(edges)),
	}

	for _, e := range edges {
		key := packEdge(e.U, e.V)
		if _, dup := g.edgeSet[key]; dup {
			continue
		}
		g.edgeSet[key] = struct{}{}
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
	}

	return g, nil
}

// VertexCount returns the number of vertices n; valid ids are [0, n).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edgeSet) }

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Degree returns the number of neighbors of v, or 0 for an invalid id.
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns the adjacency of v in first-insertion order.
// The returned slice is owned by the Graph and must not be modified;
// it is nil for an invalid id or an isolated vertex.
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}

// HasEdge reports whether the undirected edge {u,v} exists. O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	_, ok := g.edgeSet[packEdge(u, v)]

	return ok
}

// Edges returns all distinct edges with U < V, grouped by the lower
// endpoint in ascending order. Intended for export and diagnostics,
// not for hot paths.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeSet))
	for u := 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}
