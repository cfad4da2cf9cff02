package matrix_test

import (
	"math"
	"testing"

	"github.com/AntonioDantas/RKO/matrix"
	"github.com/stretchr/testify/require"
)

// TestEuclidean_345 checks distances on the classic 3-4-5 triangle.
func TestEuclidean_345(t *testing.T) {
	pts := []matrix.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}

	d, err := matrix.Euclidean(pts)
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 3, d.Cols())

	want := [][]float64{
		{0, 3, 5},
		{3, 0, 4},
		{5, 4, 0},
	}
	for i := range want {
		require.InDeltaSlice(t, want[i], d.Row(i), 1e-12)
	}
	require.NoError(t, matrix.ValidateSymmetric(d, 0))
}

// TestEuclidean_Single yields a 1×1 zero matrix.
func TestEuclidean_Single(t *testing.T) {
	d, err := matrix.Euclidean([]matrix.Point{{X: 7, Y: -2}})
	require.NoError(t, err)
	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}

// TestEuclidean_BadInput covers empty and non-finite inputs.
func TestEuclidean_BadInput(t *testing.T) {
	_, err := matrix.Euclidean(nil)
	require.ErrorIs(t, err, matrix.ErrEmpty)

	_, err = matrix.Euclidean([]matrix.Point{{X: math.NaN()}, {X: 1}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Euclidean([]matrix.Point{{Y: math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
