// Package core defines the central Graph and Edge types for exwalk:
// an immutable, undirected, simple graph over integer vertices.
//
// What
//
//   - Vertices are dense integer identifiers in [0, VertexCount).
//   - Edges are unordered vertex pairs; loops and duplicates collapse
//     into the simple-graph invariant (no self-loops, one edge per pair).
//   - Adjacency is exposed per vertex as a slice in first-insertion
//     order — stable across runs for identical input, otherwise
//     unspecified.
//   - HasEdge answers membership in O(1) via a packed edge set.
//
// Why
//
//   - The fixed-length walk search (frontier, walk packages) performs
//     two full frontier sweeps per query; O(1) neighbor access and a
//     read-only contract keep those sweeps at O(V+E) with zero
//     synchronization.
//   - Immutability after NewGraph makes every search call reentrant:
//     concurrent queries over the same Graph need no locks.
//
// Complexity (V = VertexCount, E = EdgeCount)
//
//   - NewGraph: O(V + E) time and space.
//   - Neighbors, Degree, HasEdge, HasVertex: O(1).
//
// Errors
//
//   - ErrBadVertexCount  if NewGraph receives a negative vertex count.
//   - ErrInvalidEdge     if any edge endpoint is outside [0, VertexCount)
//     or the edge is a self-loop; the graph is never partially built.
package core
