// SPDX-License-Identifier: MIT
// Package: exwalk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); never match strings.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX).

package builder

import "errors"

// ErrNilConstructor indicates Build was handed a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below
// the minimum the requested topology needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was run without
// an RNG in the resolved config (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
