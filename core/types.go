// Package core declares the Edge and Graph types, sentinel errors,
// and the NewGraph constructor for exwalk's immutable graph store.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrBadVertexCount indicates a negative vertex count passed to NewGraph.
	ErrBadVertexCount = errors.New("core: vertex count is negative")

	// ErrInvalidEdge indicates an edge whose endpoint lies outside
	// [0, vertexCount), or a self-loop (u == v), at construction time.
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Edge is an unordered pair of vertex identifiers.
//
// The graph is undirected: Edge{2, 5} and Edge{5, 2} denote the same edge.
type Edge struct {
	// U is one endpoint.
	U int

	// V is the other endpoint.
	V int
}

// Graph is an immutable, undirected, simple graph over the dense vertex
// set [0, n). All fields are fixed by NewGraph; no method mutates it,
// so a Graph may be shared freely across goroutines and search calls.
type Graph struct {
	n int // vertex count

	// adj[v] lists the neighbors of v in first-insertion order.
	adj [][]int

	// edgeSet holds one packed key per undirected edge (min,max).
	edgeSet map[uint64]struct{}
}

// packEdge folds an unordered pair into a single map key.
// Endpoints must already be validated to fit in 32 bits.
func packEdge(u, v int) uint64 {
	if u > v {
		u, v = v, u
	}

	return uint64(u)<<32 | uint64(v)
}
