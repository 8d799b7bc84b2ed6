// Package exwalk answers one question fast: does a walk of *exactly* L
// edges exist between two vertices of an undirected graph — and if so,
// which one?
//
// 🚀 What is exwalk?
//
//	A small, deterministic, in-memory library built around a
//	meet-in-the-middle search over parity-collapsed BFS frontiers:
//		• core/       — immutable integer-vertex graph with O(1) edge lookup
//		• frontier/   — parity-indexed reachability layers + walk witnesses
//		• walk/       — the fixed-length search, reconstruction & validation
//		• builder/    — deterministic graph generators (random sparse, cycle, …)
//		• converters/ — adapters to and from gonum graph types
//
// ✨ Why choose exwalk?
//
//   - O(V+E) per query, independent of the requested length L
//   - Walk semantics: vertices may repeat, padding by neighbor bounces
//   - Fully deterministic — fixed graph and arguments give a fixed answer
//   - Pure Go core — no cgo, per-call state only, reentrant by construction
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	On this 4-cycle, a walk of length 2 from 0 to 2 exists (0,1,2);
//	a walk of length 1 does not (parity mismatch); a closed walk of
//	length 4 from 0 back to 0 exists (0,1,0,1,0).
//
// Dive into the package docs of core, frontier and walk for the
// algorithmic details, invariants and complexity notes.
//
//	go get github.com/katalvlaran/exwalk
package exwalk
