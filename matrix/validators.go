// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical structural checks for distance matrices.
//   - Return wrapped sentinels so callers can match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks that m is square and |a_ij − a_ji| ≤ eps for all i<j.
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > eps {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateFinite checks that no entry of m is NaN or ±Inf.
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	for _, v := range m.data {
		if !isFinite(v) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateDistance checks that m is square with |a_ii| ≤ eps on the
// diagonal and a_ij ≥ 0 everywhere else. Run ValidateFinite first when NaN
// must be reported as such.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonZeroDiagonal, ErrNegativeWeight.
// Complexity: O(n²).
func ValidateDistance(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		if math.Abs(m.data[i*n+i]) > eps {
			return validatorErrorf("ValidateDistance", fmt.Errorf("%w: a[%d][%d]=%v", ErrNonZeroDiagonal, i, i, m.data[i*n+i]))
		}
		for j = 0; j < n; j++ {
			if i != j && m.data[i*n+j] < 0 {
				return validatorErrorf("ValidateDistance", fmt.Errorf("%w: a[%d][%d]=%v", ErrNegativeWeight, i, j, m.data[i*n+j]))
			}
		}
	}

	return nil
}
