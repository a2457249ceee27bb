// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// weight_fn.go - edge-weight distributions for graph constructors.
//
// Contract:
//   • A WeightFn must be deterministic for a given RNG state.
//   • Constructors of WeightFn panic on meaningless parameters with an error
//     wrapping ErrBadWeightRange.
//   • A nil RNG always yields a deterministic fallback.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Errorf("ConstantWeightFn: value=%d < 0: %w", value, ErrBadWeightRange))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min. With a nil rng it yields min, so unseeded
// builds stay reproducible.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Errorf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d: %w",
			min, max, ErrBadWeightRange))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		switch {
		case rng == nil || span == 1:
			return min
		case span <= 0:
			// [0, MaxInt64]: max-min+1 wraps, Int63 covers it exactly.
			return rng.Int63()
		}

		return min + rng.Int63n(span)
	}
}

// From1To100WeightFn returns a random weight uniformly in [1,100].
func From1To100WeightFn(rng *rand.Rand) int64 {
	if rng == nil {
		return 1
	}

	return 1 + rng.Int63n(100)
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(min, max)).
// Combine with WithSeed to draw distinct weights.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
