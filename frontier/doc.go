// Package frontier computes parity-collapsed BFS reachability from a
// root vertex of a core.Graph: for every vertex and each parity class
// (even/odd step count), the minimal number of edges of a walk from the
// root reaching it, plus one predecessor witness per class.
//
// What
//
//   - Build expands the frontier hop by hop, maintaining exactly two
//     growing sets — one per parity — instead of one layer per depth.
//   - A vertex entering a parity class stays reachable at every larger
//     step count of the same parity, provided it has a neighbor to
//     bounce on (step to the neighbor and back adds two edges without
//     moving). Degree-0 vertices are the only exception: they are
//     reachable at exactly one depth, their first.
//   - The result answers UsableAt(v, k): can v terminate a walk of
//     exactly k edges from the root? And WalkTo(v, k) materializes one
//     such walk, witness chain plus bounce padding.
//
// Why
//
//   - A literal layer-by-layer BFS up to depth d costs O(d·(V+E)).
//     Collapsing layers into two persistent parity sets makes the whole
//     build O(V+E), independent of d — the property the fixed-length
//     walk search in package walk is built on. Reimplementations must
//     preserve this collapse.
//
// Determinism
//
//	Expansion visits frontier vertices in discovery order and neighbors
//	in core.Graph adjacency order, so first depths, witnesses, and
//	WalkTo output are fully reproducible for a fixed graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)  — each vertex enters each parity class at most once.
//   - Memory: O(V)      — two depth arrays, two witness arrays, one queue.
//
// Usage
//
//	f, err := frontier.Build(g, root)
//	if err != nil { ... }
//	if f.UsableAt(v, k) {
//	    walk, _ := f.WalkTo(v, k) // k+1 vertices, root ... v
//	}
//
// Options
//
//   - WithContext(ctx):  cancellation between expansion rounds.
//   - WithMaxSteps(d):   stop after d rounds; depths beyond d are not
//     needed when the caller only queries UsableAt(·, k) for k ≤ d.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrRootOutOfRange  if the root is not a vertex of the graph.
//   - ErrOptionViolation if an invalid Option is supplied.
//   - ErrNotUsable       from WalkTo when UsableAt(v, k) is false.
package frontier
