// SPDX-License-Identifier: MIT
// Package: exwalk/builder
//
// Package builder produces deterministic core.Graph fixtures for tests,
// benchmarks, and the CLI harness: Erdős–Rényi random sparse graphs and
// a handful of named topologies (cycle, path, complete, grid).
//
// Design contract (strict):
//   - One orchestrator: Build(con, opts...). Resolves options into an
//     immutable builderConfig, runs the constructor, hands the emitted
//     edge list to core.NewGraph.
//   - Constructors emit vertices implicitly (dense [0,n)) and edges in a
//     stable, documented order; determinism per (parameters, seed).
//   - Constructors validate early and return sentinel errors; they never
//     panic at runtime. Option constructors (WithX...) validate and
//     panic on meaningless input — programmer errors surface at the
//     call site, not mid-build.
//
// Usage:
//
//	g, err := builder.Build(builder.RandomSparse(10000, 0.1), builder.WithSeed(42))
//	g, err = builder.Build(builder.Cycle(4))
//
// Errors:
//
//   - ErrNilConstructor    — Build received a nil Constructor.
//   - ErrTooFewVertices    — a size parameter below the topology minimum.
//   - ErrInvalidProbability — p outside [0,1].
//   - ErrNeedRandSource    — stochastic constructor without an RNG.
package builder
