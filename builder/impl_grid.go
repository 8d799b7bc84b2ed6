// SPDX-License-Identifier: MIT
// Package: exwalk/builder
//
// impl_grid.go — implementation of Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1.
//   - Vertex ids are row-major: id(r,c) = r·cols + c.
//   - Edge emission order: row-major sweep, right neighbor before down
//     neighbor at every cell.

package builder

import (
	"fmt"

	"github.com/katalvlaran/exwalk/core"
)

const minGridSide = 1

// Grid builds a rows×cols 4-neighborhood grid graph.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(builderConfig) (int, []core.Edge, error) {
		if rows < minGridSide || cols < minGridSide {
			return 0, nil, fmt.Errorf("Grid: %dx%d below min side %d: %w",
				rows, cols, minGridSide, ErrTooFewVertices)
		}

		n := rows * cols
		edges := make([]core.Edge, 0, 2*n)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					edges = append(edges, core.Edge{U: id, V: id + 1})
				}
				if r+1 < rows {
					edges = append(edges, core.Edge{U: id, V: id + cols})
				}
			}
		}

		return n, edges, nil
	}
}
