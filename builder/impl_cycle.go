// SPDX-License-Identifier: MIT
// Package: exwalk/builder
//
// impl_cycle.go — implementation of Cycle(n) and Path(n).
//
// Contract:
//   - Cycle: n ≥ 3 (a shorter "cycle" would need loops or multi-edges,
//     which the simple core graph forbids).
//   - Path: n ≥ 2.
//   - Edge emission order: ascending lower endpoint; the cycle's closing
//     edge {n−1, 0} comes last.

package builder

import (
	"fmt"

	"github.com/katalvlaran/exwalk/core"
)

const (
	minCycleVertices = 3
	minPathVertices  = 2
)

// Cycle builds the n-vertex simple cycle C_n: edges {i, i+1} for
// i < n−1, closed by {n−1, 0}.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(builderConfig) (int, []core.Edge, error) {
		if n < minCycleVertices {
			return 0, nil, fmt.Errorf("Cycle: n=%d < min=%d: %w",
				n, minCycleVertices, ErrTooFewVertices)
		}

		edges := make([]core.Edge, 0, n)
		for i := 0; i < n-1; i++ {
			edges = append(edges, core.Edge{U: i, V: i + 1})
		}
		edges = append(edges, core.Edge{U: n - 1, V: 0})

		return n, edges, nil
	}
}

// Path builds the simple path P_n: edges {i, i+1} for i < n−1.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(builderConfig) (int, []core.Edge, error) {
		if n < minPathVertices {
			return 0, nil, fmt.Errorf("Path: n=%d < min=%d: %w",
				n, minPathVertices, ErrTooFewVertices)
		}

		edges := make([]core.Edge, 0, n-1)
		for i := 0; i < n-1; i++ {
			edges = append(edges, core.Edge{U: i, V: i + 1})
		}

		return n, edges, nil
	}
}
