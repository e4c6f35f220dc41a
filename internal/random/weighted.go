package random

import (
	"errors"
	"math/rand"
)

// ErrNoWeights indicates an empty or all-zero weight slice.
var ErrNoWeights = errors.New("at least one positive weight is required")

// WeightedIndex draws an index from weights, where the probability of index i
// is weights[i] divided by the sum of all weights. Negative weights count as
// zero.
func WeightedIndex(rng *rand.Rand, weights []int) (int, error) {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0, ErrNoWeights
	}

	n := rng.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if n < w {
			return i, nil
		}
		n -= w
	}
	// Unreachable: the loop consumes the full weight total.
	return 0, ErrNoWeights
}

// WeightedChoice draws one item from items using the parallel weights slice.
func WeightedChoice[T any](rng *rand.Rand, items []T, weights []int) (T, error) {
	var zero T
	if len(items) != len(weights) {
		return zero, errors.New("items and weights must have equal length")
	}
	i, err := WeightedIndex(rng, weights)
	if err != nil {
		return zero, err
	}
	return items[i], nil
}
