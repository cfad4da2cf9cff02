// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Min-max statistics (Extent, MinMax) and linear rescaling to [0,1]
//     (NormalizeMinMax, Rescale).
//
// Degenerate policy:
//   - When hi ≤ lo the range is degenerate and rescaling is a no-op, so no
//     division by zero can occur.
//
// Idempotence:
//   - Normalizing an already normalized matrix with its own extent (0,1)
//     leaves every value unchanged.

package matrix

import "math"

const (
	opExtent          = "Extent"
	opMinMax          = "MinMax"
	opNormalizeMinMax = "NormalizeMinMax"
)

// Extent returns the minimum and maximum over every entry of m, including
// the diagonal.
//
// Errors: ErrNilMatrix for a nil receiver.
// Complexity: O(r*c).
func Extent(m *Dense) (lo, hi float64, err error) {
	if m == nil {
		return 0, 0, matrixErrorf(opExtent, ErrNilMatrix)
	}

	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range m.data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, nil
}

// MinMax returns the minimum and maximum of values.
//
// Errors: ErrEmpty when values is empty.
// Complexity: O(n).
func MinMax(values []float64) (lo, hi float64, err error) {
	if len(values) == 0 {
		return 0, 0, matrixErrorf(opMinMax, ErrEmpty)
	}

	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi, nil
}

// Rescale maps v from [lo,hi] into [0,1]. It returns v unchanged when the
// range is degenerate (hi ≤ lo).
// Complexity: O(1).
func Rescale(v, lo, hi float64) float64 {
	if hi <= lo {
		return v
	}

	return (v - lo) / (hi - lo)
}

// NormalizeMinMax returns a copy of m with every entry rescaled by
// (v-lo)/(hi-lo). When hi ≤ lo the copy is returned unchanged.
// The input matrix is never modified.
//
// Errors: ErrNilMatrix for a nil receiver, ErrNaNInf for non-finite bounds.
// Complexity: O(r*c) time and memory.
func NormalizeMinMax(m *Dense, lo, hi float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opNormalizeMinMax, ErrNilMatrix)
	}
	if !isFinite(lo) || !isFinite(hi) {
		return nil, matrixErrorf(opNormalizeMinMax, ErrNaNInf)
	}

	out := m.Clone()
	if hi <= lo {
		return out, nil
	}

	span := hi - lo
	for k, v := range out.data {
		out.data[k] = (v - lo) / span // division keeps the extremes exact
	}

	return out, nil
}
