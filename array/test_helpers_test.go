// SPDX-License-Identifier: MIT
// Package array_test: shared helpers for the array test suite.
package array_test

import (
	"testing"

	"github.com/katalvlaran/numa/array"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a matrix from nested rows or fails the test.
func mustMatrix(t *testing.T, rows [][]float64) *array.Matrix {
	t.Helper()
	m, err := array.NewMatrix(rows)
	require.NoError(t, err)
	return m
}

// requireMatrixEq asserts cell-by-cell equality within delta.
func requireMatrixEq(t *testing.T, want [][]float64, got *array.Matrix, delta float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "row count")
	if len(want) == 0 {
		return
	}
	require.Equal(t, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, delta, "cell (%d,%d)", i, j)
		}
	}
}

// requireVectorEq asserts element-by-element equality within delta.
func requireVectorEq(t *testing.T, want []float64, got array.Vector, delta float64) {
	t.Helper()
	require.Equal(t, len(want), len(got), "length")
	for i := range want {
		require.InDelta(t, want[i], got[i], delta, "element %d", i)
	}
}

// requireValueEq asserts rank-wise equality of two values.
func requireValueEq(t *testing.T, want, got array.Value) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want.Rank(), got.Rank(), "rank")
	switch w := want.(type) {
	case array.Scalar:
		require.Equal(t, w, got)
	case array.Vector:
		requireVectorEq(t, w, got.(array.Vector), 0)
	case *array.Matrix:
		gm := got.(*array.Matrix)
		require.True(t, w.Shape().Equal(gm.Shape()), "shape %v vs %v", w.Shape(), gm.Shape())
		for i := 0; i < w.Rows(); i++ {
			for j := 0; j < w.Cols(); j++ {
				wv, err := w.At(i, j)
				require.NoError(t, err)
				gv, err := gm.At(i, j)
				require.NoError(t, err)
				require.Equal(t, wv, gv, "cell (%d,%d)", i, j)
			}
		}
	}
}

// requireDegenerate asserts v is the canonical 1x0 matrix form ("[[]]").
func requireDegenerate(t *testing.T, v array.Value) {
	t.Helper()
	require.NotNil(t, v)
	m, ok := v.(*array.Matrix)
	require.True(t, ok, "degenerate form must be a matrix, got rank %d", v.Rank())
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 0, m.Cols())
}
