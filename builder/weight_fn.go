// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
// It equals core.DefaultWeight, the cost of a plain neighbor entry.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight. rng is nil when the caller configured
// no random source; distributions then fall back to DefaultEdgeWeight.
// Every WeightFn returns a finite value ≥ 0.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value is negative or
// not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws from U[min,max]. Panics unless 0 ≤ min ≤ max < +Inf.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min || math.IsInf(max, 1) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn draws an integer uniformly from [min,max]. Integer weights
// keep MST and path totals exact. Panics unless 0 ≤ min ≤ max.
func IntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn draws from N(mean,stddev), rounds, and clips below at 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 || math.IsInf(stddev, 1) || math.IsNaN(mean) || math.IsInf(mean, 0) {
		panic(fmt.Sprintf("NormalWeightFn: require finite mean and 0 ≤ stddev, got mean=%f, stddev=%f", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		sample := math.Round(rng.NormFloat64()*stddev + mean)
		if sample < 0 {
			return 0
		}

		return sample
	}
}

// ExponentialWeightFn draws from Exp(rate) and rounds.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeight is WithWeightFn(IntWeightFn(min, max)).
func WithIntWeight(min, max int) BuilderOption {
	return WithWeightFn(IntWeightFn(min, max))
}

// WithNormalWeight is WithWeightFn(NormalWeightFn(mean, stddev)).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight is WithWeightFn(ExponentialWeightFn(rate)).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
