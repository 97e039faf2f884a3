// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption mutates builderConfig before any constructor runs.
// Option constructors panic on nil or meaningless arguments.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → vertex ID function.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for every stochastic choice.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed uses a fresh rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight source.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPartitionPrefix labels the CompleteBipartite sides. Empty strings
// fall back to "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
