// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance matrix used by the routing
// decoder together with the numeric kernels that build and rescale it.
//
// The package offers:
//
//   - Dense: a row-major n×m float64 matrix with bounds-checked At/Set,
//     deep Clone and read-only row views for hot loops.
//   - Euclidean: an n×n symmetric matrix of planar distances, computed on the
//     upper triangle and mirrored.
//   - Extent / MinMax / NormalizeMinMax / Rescale: min-max statistics and
//     linear rescaling to [0,1], a no-op when the range is degenerate.
//   - ValidateSquare / ValidateSymmetric / ValidateFinite: structural checks
//     returning the sentinels from errors.go.
//
// Matrices built here are written once and then only read; nothing in the
// package mutates a matrix it did not allocate.
package matrix
