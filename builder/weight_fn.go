// Package: algoviz/builder
//
// weight_fn.go: edge-weight generators.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned when no WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// IntWeightFn returns whole weights uniform in [min, max]; whole numbers keep
// the distance annotations short. Panics if min < 0 or max < min.
// If rng is nil, yields min.
func IntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// SequenceWeightFn cycles through weights in order, ignoring rng. It keeps a
// cursor, so build a fresh one per BuildGraph call.
// Panics on an empty list or a negative weight.
func SequenceWeightFn(weights ...float64) WeightFn {
	if len(weights) == 0 {
		panic("SequenceWeightFn: no weights")
	}
	for _, w := range weights {
		if w < 0 {
			panic(fmt.Sprintf("SequenceWeightFn: weight must be ≥ 0, got %g", w))
		}
	}
	i := 0

	return func(_ *rand.Rand) float64 {
		w := weights[i%len(weights)]
		i++

		return w
	}
}
