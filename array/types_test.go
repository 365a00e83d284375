// SPDX-License-Identifier: MIT
// Package array_test contains unit tests for the rank-tagged value model.
package array_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/numa/array"
	"github.com/stretchr/testify/require"
)

// TestShapeOf covers rank inference across all three ranks.
func TestShapeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    array.Value
		want array.Shape
	}{
		{"scalar", array.Scalar(3.5), array.Shape{}},
		{"vector", array.Vector{1, 2, 3}, array.Shape{3}},
		{"matrix", mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), array.Shape{2, 3}},
		{"nil", nil, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := array.ShapeOf(tc.v)
			require.True(t, got.Equal(tc.want) || (got == nil && tc.want == nil),
				"ShapeOf = %v, want %v", got, tc.want)
		})
	}
}

// TestRank verifies the rank tags carried by the concrete types.
func TestRank(t *testing.T) {
	t.Parallel()

	require.Equal(t, array.RankScalar, array.Scalar(1).Rank())
	require.Equal(t, array.RankVector, array.Vector{1}.Rank())
	require.Equal(t, array.RankMatrix, mustMatrix(t, [][]float64{{1}}).Rank())
}

// TestNewMatrixJagged ensures rectangularity is validated at construction.
func TestNewMatrixJagged(t *testing.T) {
	t.Parallel()

	_, err := array.NewMatrix([][]float64{{1, 2}, {3}})
	require.Error(t, err)
	require.True(t, errors.Is(err, array.ErrJagged))
}

// TestMatrixAtSetBounds covers the 0-based indexer and its range sentinel.
func TestMatrixAtSetBounds(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		require.True(t, errors.Is(err, array.ErrOutOfRange), "At(%d,%d)", idx[0], idx[1])
		err = m.Set(idx[0], idx[1], 0)
		require.True(t, errors.Is(err, array.ErrOutOfRange), "Set(%d,%d)", idx[0], idx[1])
	}
}

// TestCloneIndependence ensures Clone yields deep, independent copies.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone().(*array.Matrix)
	require.NoError(t, c.Set(0, 0, 99))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig, "clone mutation must not reach the original")

	v := array.Vector{1, 2}
	cv := v.Clone().(array.Vector)
	cv[0] = 99
	require.Equal(t, 1.0, v[0])
}

// TestNAMarker covers the NA marker and its detection.
func TestNAMarker(t *testing.T) {
	t.Parallel()

	require.True(t, array.IsNA(array.NA()))
	require.False(t, array.IsNA(0.0))
	require.False(t, array.IsNA(1e-300))
	// NA propagates through arithmetic like NaN.
	require.True(t, array.IsNA(array.NA()+1.0))
}

// TestMatrixString pins the debug representation.
func TestMatrixString(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
