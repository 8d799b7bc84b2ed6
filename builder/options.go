// SPDX-License-Identifier: MIT
// Package: exwalk/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type Option func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic at runtime.
//   - Determinism is explicit: seeding happens via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a Build call by mutating the builderConfig before
// construction begins.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed, locking every
// stochastic outcome to the seed. Use this in tests and benchmarks.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
