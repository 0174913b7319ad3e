package game

import (
	rand "math/rand/v2"
)

// RandSource yields uniformly distributed floats in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

func sourceOrDefault(rng RandSource) RandSource {
	if rng == nil {
		return globalSource{}
	}
	return rng
}

// randomIndex returns floor(rng() * n), kept inside [0, n)
func randomIndex(rng RandSource, n int) int {
	i := int(rng.Float64() * float64(n))
	return min(max(i, 0), n-1)
}

// PickOne returns a uniformly chosen element of items
func PickOne[T any](items []T, rng RandSource) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyInput
	}
	return items[randomIndex(sourceOrDefault(rng), len(items))], nil
}

// Shuffle returns a Fisher-Yates shuffled copy of items. The input is not modified.
func Shuffle[T any](items []T, rng RandSource) []T {
	rng = sourceOrDefault(rng)
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := randomIndex(rng, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// PickUnique returns count distinct elements of items in shuffle order.
// A count of zero or less yields an empty slice; a count at or above
// len(items) yields a full shuffle.
func PickUnique[T any](items []T, count int, rng RandSource) []T {
	if count <= 0 {
		return []T{}
	}
	shuffled := Shuffle(items, rng)
	if count >= len(shuffled) {
		return shuffled
	}
	return shuffled[:count]
}
