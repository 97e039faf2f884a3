// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is the resolved, immutable view of all BuilderOptions.
type builderConfig struct {
	idFn     IDFn       // index → vertex ID
	rng      *rand.Rand // nil unless WithSeed/WithRand
	weightFn WeightFn   // edge weight source

	leftPrefix  string // bipartite left label
	rightPrefix string // bipartite right label
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults: decimal IDs, no RNG,
// constant DefaultEdgeWeight.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
