// Package converters provides two-way adapters between core.Graph and
// gonum's graph types (gonum.org/v1/gonum/graph/simple).
//
// Use converters to hand an exwalk graph to gonum's algorithm suite, or
// to run the fixed-length walk search on a graph assembled with gonum.
//
// ToGonum emits one simple.Node per vertex id and one undirected edge
// per distinct pair. FromGonum requires dense node ids 0..n−1 — the
// representation core.Graph is built around — and sorts edges into a
// canonical order so the resulting adjacency is deterministic even
// though gonum iterates its internal maps in random order.
package converters
