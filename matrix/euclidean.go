// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Build the symmetric planar distance matrix consumed by the decoder.
//
// Determinism & Performance:
//   - Only the upper triangle (i ≤ j) is computed; each value is mirrored into
//     [j][i], so the result is exactly symmetric (bitwise), not merely within eps.
//   - Direct writes into the flat buffer; no At/Set overhead.

package matrix

import "math"

const opEuclidean = "Euclidean"

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

// Euclidean returns the n×n matrix of Euclidean distances between points.
// Diagonal entries are 0.
//
// Errors:
//   - ErrEmpty when len(points) == 0.
//   - ErrNaNInf when a coordinate is NaN or ±Inf.
//
// Complexity: O(n²) time and memory.
func Euclidean(points []Point) (*Dense, error) {
	n := len(points)
	if n == 0 {
		return nil, matrixErrorf(opEuclidean, ErrEmpty)
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(points[i].X) || !isFinite(points[i].Y) {
			return nil, matrixErrorf(opEuclidean, ErrNaNInf)
		}
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opEuclidean, err)
	}

	var dx, dy, v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			dx = points[j].X - points[i].X
			dy = points[j].Y - points[i].Y
			v = math.Sqrt(dx*dx + dy*dy)
			d.data[i*n+j] = v
			d.data[j*n+i] = v // mirror
		}
	}

	return d, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
