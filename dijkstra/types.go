// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or
	// NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// less, which would turn every edge into a wall.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	ReturnPath       bool    // return the predecessor map
	MaxDistance      float64 // vertices farther than this are not finalized
	InfEdgeThreshold float64 // edges with weight ≥ this are skipped
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables the predecessor map in the result.
// If not set, the returned prev map is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration: once the nearest unfinalized vertex is
// farther than max, the search stops. Panics on a negative or NaN max.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Panics unless threshold > 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no predecessor map, no distance cap and
// no impassable edges.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
