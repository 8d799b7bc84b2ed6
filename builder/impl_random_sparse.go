// SPDX-License-Identifier: MIT
// Package: exwalk/builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j},
//     i < j, independently with probability p. The core graph is
//     undirected and simple; there are no self-loop or duplicate trials.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng non-nil for 0 < p < 1 (else ErrNeedRandSource); the
//     degenerate p ∈ {0,1} cases are deterministic and need no RNG.
//
// Determinism:
//   - Stable trial order: i ascending, then j ascending with j > i.
//   - Fixed seed ⇒ identical edge set.
//
// Complexity:
//   - O(n²) Bernoulli trials; emitted edges ≈ p·n·(n−1)/2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/exwalk/core"
)

const (
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like
// graph over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (int, []core.Edge, error) {
		if n < minRandomSparseVertices {
			return 0, nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w",
				n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return 0, nil, fmt.Errorf("RandomSparse: p=%.6f not in [%.1f,%.1f]: %w",
				p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return 0, nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		// p == 0: the edgeless graph, no trials at all.
		if p == probMin {
			return n, nil, nil
		}

		// Pre-size to the expected edge count to avoid regrowth churn.
		expected := int(p * float64(n) * float64(n-1) / 2)
		edges := make([]core.Edge, 0, expected)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax || cfg.rng.Float64() < p {
					edges = append(edges, core.Edge{U: i, V: j})
				}
			}
		}

		return n, edges, nil
	}
}
