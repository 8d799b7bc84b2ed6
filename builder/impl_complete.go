// SPDX-License-Identifier: MIT
// Package: exwalk/builder
//
// impl_complete.go — implementation of Complete(n).
//
// Contract:
//   - n ≥ 1; K_1 is a single isolated vertex.
//   - Edge emission order: i ascending, then j ascending with j > i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/exwalk/core"
)

const minCompleteVertices = 1

// Complete builds the complete simple graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(builderConfig) (int, []core.Edge, error) {
		if n < minCompleteVertices {
			return 0, nil, fmt.Errorf("Complete: n=%d < min=%d: %w",
				n, minCompleteVertices, ErrTooFewVertices)
		}

		edges := make([]core.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, core.Edge{U: i, V: j})
			}
		}

		return n, edges, nil
	}
}
