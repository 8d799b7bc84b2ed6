// SPDX-License-Identifier: MIT
// Package: exwalk/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness allowed".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
