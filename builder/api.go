// SPDX-License-Identifier: MIT
// Package: exwalk/builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(con, opts...). Resolves cfg, runs con,
//     feeds the emitted edge list into core.NewGraph.
//   - All public factories are declared in impl_*.go files.
//   - Determinism: same constructor, parameters and seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/exwalk/core"
)

// Constructor emits a vertex count and edge list for one topology,
// using the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order.
//   - Preserve determinism for the same config.
type Constructor func(cfg builderConfig) (n int, edges []core.Edge, err error)

// Build resolves the builder configuration from opts, runs con, and
// constructs the immutable graph. Constructor errors and core.NewGraph
// errors are wrapped with the context "Build: %w".
// Complexity: O(len(opts)) + the constructor's cost + O(V+E) graph build.
func Build(con Constructor, opts ...Option) (*core.Graph, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilConstructor)
	}

	cfg := newBuilderConfig(opts...)

	n, edges, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	g, err := core.NewGraph(n, edges)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}
