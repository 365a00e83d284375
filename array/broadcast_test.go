// SPDX-License-Identifier: MIT
// Package array_test contains unit tests for the broadcast engine and the
// elementwise arithmetic facades.
package array_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/numa/array"
	"github.com/stretchr/testify/require"
)

// TestApply1Ranks covers the unary kernel across all three ranks.
func TestApply1Ranks(t *testing.T) {
	t.Parallel()

	double := func(x float64) float64 { return 2 * x }

	s, err := array.Apply1(array.Scalar(3), double)
	require.NoError(t, err)
	require.Equal(t, array.Scalar(6), s)

	v, err := array.Apply1(array.Vector{1, 2, 3}, double)
	require.NoError(t, err)
	requireVectorEq(t, []float64{2, 4, 6}, v.(array.Vector), 0)

	m, err := array.Apply1(mustMatrix(t, [][]float64{{1, 2}, {3, 4}}), double)
	require.NoError(t, err)
	requireMatrixEq(t, [][]float64{{2, 4}, {6, 8}}, m.(*array.Matrix), 0)

	_, err = array.Apply1(nil, double)
	require.True(t, errors.Is(err, array.ErrNilValue))
}

// TestApply2Dispatch walks the full rank-combination table through Add.
func TestApply2Dispatch(t *testing.T) {
	t.Parallel()

	mat := [][]float64{{1, 2}, {3, 4}}

	tests := []struct {
		name string
		a, b array.Value
		want array.Value
	}{
		{"scalar+scalar", array.Scalar(2), array.Scalar(3), array.Scalar(5)},
		{"scalar+vector", array.Scalar(10), array.Vector{1, 2}, array.Vector{11, 12}},
		{"vector+scalar", array.Vector{1, 2}, array.Scalar(10), array.Vector{11, 12}},
		{"vector+vector", array.Vector{1, 2}, array.Vector{10, 20}, array.Vector{11, 22}},
		{"scalar+matrix", array.Scalar(1), mustMatrix(t, mat), mustMatrix(t, [][]float64{{2, 3}, {4, 5}})},
		{"matrix+scalar", mustMatrix(t, mat), array.Scalar(1), mustMatrix(t, [][]float64{{2, 3}, {4, 5}})},
		{"matrix+matrix", mustMatrix(t, mat), mustMatrix(t, mat), mustMatrix(t, [][]float64{{2, 4}, {6, 8}})},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := array.Add(tc.a, tc.b)
			require.NoError(t, err)
			requireValueEq(t, tc.want, got)
		})
	}
}

// TestApply2StrictMismatch: positional pairing requires identical shapes.
func TestApply2StrictMismatch(t *testing.T) {
	t.Parallel()

	_, err := array.Add(array.Vector{1, 2, 3}, array.Vector{1, 2})
	require.True(t, errors.Is(err, array.ErrDimensionMismatch))

	_, err = array.Add(
		mustMatrix(t, [][]float64{{1, 2}, {3, 4}}),
		mustMatrix(t, [][]float64{{1, 2}}),
	)
	require.True(t, errors.Is(err, array.ErrDimensionMismatch))

	// Vector/Matrix combinations are outside the dispatch table.
	_, err = array.Add(array.Vector{1, 2}, mustMatrix(t, [][]float64{{1, 2}}))
	require.True(t, errors.Is(err, array.ErrDimensionMismatch))
}

// TestApply2Truncate: the legacy policy pairs to the shorter operand.
func TestApply2Truncate(t *testing.T) {
	t.Parallel()

	v, err := array.Add(array.Vector{1, 2, 3}, array.Vector{10, 20}, array.WithTruncate())
	require.NoError(t, err)
	requireVectorEq(t, []float64{11, 22}, v.(array.Vector), 0)

	m, err := array.Add(
		mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}),
		mustMatrix(t, [][]float64{{10, 20}, {30, 40}}),
		array.WithTruncate(),
	)
	require.NoError(t, err)
	requireMatrixEq(t, [][]float64{{11, 22}, {34, 45}}, m.(*array.Matrix), 0)
}

// TestArithmeticFacades spot-checks Sub/Mul/Pow semantics.
func TestArithmeticFacades(t *testing.T) {
	t.Parallel()

	v, err := array.Sub(array.Vector{5, 7}, array.Vector{1, 2})
	require.NoError(t, err)
	requireVectorEq(t, []float64{4, 5}, v.(array.Vector), 0)

	v, err = array.Mul(array.Vector{2, 3}, array.Vector{4, 5})
	require.NoError(t, err)
	requireVectorEq(t, []float64{8, 15}, v.(array.Vector), 0)

	v, err = array.Pow(array.Vector{2, 3}, array.Scalar(2))
	require.NoError(t, err)
	requireVectorEq(t, []float64{4, 9}, v.(array.Vector), 0)
}

// TestDivideNA: zero denominators yield the NA marker, never an error.
func TestDivideNA(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0, 1, -3.5, 1e12} {
		got, err := array.Divide(array.Scalar(x), array.Scalar(0))
		require.NoError(t, err, "Divide(%v, 0) must not fail", x)
		require.True(t, array.IsNA(float64(got.(array.Scalar))), "Divide(%v, 0) must be NA", x)
	}

	// Partial results survive: only the zero-denominator cell is NA.
	v, err := array.Divide(array.Vector{6, 3}, array.Vector{2, 0})
	require.NoError(t, err)
	out := v.(array.Vector)
	require.Equal(t, 3.0, out[0])
	require.True(t, array.IsNA(out[1]))

	// A denominator within the noise floor counts as zero.
	got, err := array.Divide(array.Scalar(1), array.Scalar(1e-300))
	require.NoError(t, err)
	require.True(t, array.IsNA(float64(got.(array.Scalar))))

	// A widened noise floor pulls small denominators into the NA band.
	got, err = array.Divide(array.Scalar(1), array.Scalar(0.5), array.WithEpsilon(1.0))
	require.NoError(t, err)
	require.True(t, array.IsNA(float64(got.(array.Scalar))))
}

// TestUnaryFacades covers Exp/Log/Sqrt and the epsilon clamp.
func TestUnaryFacades(t *testing.T) {
	t.Parallel()

	e, err := array.Exp(array.Scalar(1))
	require.NoError(t, err)
	require.InDelta(t, math.E, float64(e.(array.Scalar)), 1e-12)

	l, err := array.Log(array.Vector{1, math.E})
	require.NoError(t, err)
	requireVectorEq(t, []float64{0, 1}, l.(array.Vector), 1e-12)

	s, err := array.Sqrt(mustMatrix(t, [][]float64{{4, 9}, {16, 25}}))
	require.NoError(t, err)
	requireMatrixEq(t, [][]float64{{2, 3}, {4, 5}}, s.(*array.Matrix), 1e-12)

	c, err := array.EpsilonClamp(array.Vector{1e-13, 0.5, -1e-14})
	require.NoError(t, err)
	requireVectorEq(t, []float64{0, 0.5, 0}, c.(array.Vector), 0)

	// Custom noise floor.
	c, err = array.EpsilonClamp(array.Vector{0.1, 0.5}, array.WithEpsilon(0.2))
	require.NoError(t, err)
	requireVectorEq(t, []float64{0, 0.5}, c.(array.Vector), 0)
}

// TestOptionPanics: nonsensical option parameters are programmer errors.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { array.WithEpsilon(-1) })
	require.Panics(t, func() { array.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { array.WithMaxLaplace(0) })
	require.Panics(t, func() { array.WithUniform(nil) })
}
