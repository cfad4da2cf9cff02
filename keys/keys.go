package keys

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrLength is returned when a key vector does not have one key per node.
	ErrLength = errors.New("keys: length mismatch")

	// ErrNaNKey is returned for NaN or ±Inf keys, which admit no total order.
	ErrNaNKey = errors.New("keys: NaN or Inf key")
)

// Validate checks that k holds exactly n finite keys.
// Complexity: O(n).
func Validate(k []float64, n int) error {
	if len(k) != n {
		return fmt.Errorf("%w: got %d keys for %d nodes", ErrLength, len(k), n)
	}
	for i, v := range k {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w at %d", ErrNaNKey, i)
		}
	}
	return nil
}

// Order returns the indices 0..len(k)-1 sorted ascending by key.
// Equal keys are ordered by index; callers must not rely on that.
// Complexity: O(n log n) time, O(n) space.
func Order(k []float64) []int {
	return OrderInto(make([]int, len(k)), k)
}

// OrderInto is Order writing into dst, which must have len(dst) ≥ len(k).
// It returns dst[:len(k)]. Useful for drivers that recycle buffers.
func OrderInto(dst []int, k []float64) []int {
	dst = dst[:len(k)]
	for i := range dst {
		dst[i] = i
	}
	slices.SortFunc(dst, func(a, b int) int {
		switch {
		case k[a] < k[b]:
			return -1
		case k[a] > k[b]:
			return 1
		default:
			return a - b
		}
	})
	return dst
}

// IsPermutation reports whether p holds each of 0..len(p)-1 exactly once.
// Complexity: O(n) time and space.
func IsPermutation(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
