// Package walk finds a walk of an exact, caller-specified number of
// edges between two vertices of a core.Graph, using a meet-in-the-middle
// split over parity-collapsed frontiers.
//
// What
//
//   - FixedLength(g, source, target, L) returns one walk of exactly L
//     edges from source to target, or nil when none exists. Vertices may
//     repeat (walk semantics, not simple paths).
//   - The length is split into ceil(L/2) from the source and floor(L/2)
//     from the target; both halves are frontier builds (for an
//     undirected graph the backward frontier is an ordinary forward
//     one). A meeting vertex usable at both exact half depths is chosen
//     by ascending vertex id; the two witnessed, bounce-padded halves
//     are concatenated there.
//   - Validate asserts the acceptance contract for any produced walk:
//     exact length, correct endpoints, every consecutive pair an edge.
//
// Why
//
//   - Enumerating walks of length L is exponential, and a layered BFS to
//     depth L costs O(L·(V+E)). Two parity-collapsed frontier builds
//     plus one linear intersection scan cost O(V+E) total, independent
//     of L.
//
// Determinism
//
//	For a fixed graph and arguments the returned walk is byte-identical
//	across calls: the meeting vertex is the smallest usable id and both
//	frontier builds are deterministic.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per call — two frontier builds and one scan.
//   - Memory: O(V + L) — frontier state plus the output walk.
//
// Usage
//
//	w, err := walk.FixedLength(g, src, dst, 11)
//	if err != nil { ... }          // invalid input
//	if w == nil { ... }            // no walk of that exact length
//	fmt.Println(w.Vertices())      // src ... dst, w.Len() == 11
//
// Errors
//
//   - ErrGraphNil      if the graph pointer is nil.
//   - ErrInvalidVertex if source or target lies outside [0, VertexCount).
//   - ErrInvalidLength if the requested length is negative.
//   - Absence of a walk is NOT an error: FixedLength returns (nil, nil),
//     since most (source, target, length) triples legitimately have no
//     answer.
package walk
