// SPDX-License-Identifier: MIT
// Package decomp_test contains unit tests for LU and the triangular solver.
package decomp_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/numa/decomp"
	"github.com/stretchr/testify/require"
)

// TestLU pins the Doolittle factors for a classic 2x2 and verifies the
// structural invariants on a larger system.
func TestLU(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{4, 3}, {6, 3}})
	l, u, err := decomp.LU(m)
	require.NoError(t, err)

	requireProductEq(t, m, l, u)

	l10, err := l.At(1, 0)
	require.NoError(t, err)
	require.InDelta(t, 1.5, l10, 1e-12)
	u11, err := u.At(1, 1)
	require.NoError(t, err)
	require.InDelta(t, -1.5, u11, 1e-12)
}

// TestLUStructure: unit lower and upper triangular shape for a 3x3 input.
func TestLUStructure(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{2, -1, -2}, {-4, 6, 3}, {-4, -2, 8}})
	l, u, err := decomp.LU(m)
	require.NoError(t, err)

	requireProductEq(t, m, l, u)

	n := m.Rows()
	for i := 0; i < n; i++ {
		d, err := l.At(i, i)
		require.NoError(t, err)
		require.Equal(t, 1.0, d, "diag(L) must be unit")
		for j := i + 1; j < n; j++ {
			x, err := l.At(i, j)
			require.NoError(t, err)
			require.Zero(t, x, "L above diagonal")
			x, err = u.At(j, i)
			require.NoError(t, err)
			require.Zero(t, x, "U below diagonal")
		}
	}
}

// TestLUZeroPivot: the non-pivoting scheme rejects a zero pivot explicitly.
func TestLUZeroPivot(t *testing.T) {
	t.Parallel()

	_, _, err := decomp.LU(mustMatrix(t, [][]float64{{0, 1}, {1, 0}}))
	require.True(t, errors.Is(err, decomp.ErrSingular))

	// A genuinely singular system also surfaces through the pivot guard.
	_, _, err = decomp.LU(mustMatrix(t, [][]float64{{1, 2}, {2, 4}}))
	require.True(t, errors.Is(err, decomp.ErrSingular))
}

// TestLUErrors: structural failures fail fast.
func TestLUErrors(t *testing.T) {
	t.Parallel()

	_, _, err := decomp.LU(nil)
	require.True(t, errors.Is(err, decomp.ErrNilMatrix))

	_, _, err = decomp.LU(mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.True(t, errors.Is(err, decomp.ErrNonSquare))
}

// TestSolveLU solves single and multiple right-hand sides.
func TestSolveLU(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{2, 1}, {1, 3}})
	b := mustMatrix(t, [][]float64{{3}, {5}})
	x, err := decomp.SolveLU(m, b)
	require.NoError(t, err)

	x0, err := x.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.8, x0, 1e-12)
	x1, err := x.At(1, 0)
	require.NoError(t, err)
	require.InDelta(t, 1.4, x1, 1e-12)

	// Residual check: m * x reconstructs b.
	requireProductEq(t, b, m, x)

	// Two right-hand sides in one call.
	b2 := mustMatrix(t, [][]float64{{3, 2}, {5, 1}})
	x2, err := decomp.SolveLU(m, b2)
	require.NoError(t, err)
	requireProductEq(t, b2, m, x2)
}

// TestSolveLUErrors covers nil operands, shape mismatch and singular systems.
func TestSolveLUErrors(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{2, 1}, {1, 3}})

	_, err := decomp.SolveLU(m, nil)
	require.True(t, errors.Is(err, decomp.ErrNilMatrix))

	_, err = decomp.SolveLU(nil, mustMatrix(t, [][]float64{{1}, {2}}))
	require.True(t, errors.Is(err, decomp.ErrNilMatrix))

	_, err = decomp.SolveLU(m, mustMatrix(t, [][]float64{{1, 2, 3}}))
	require.True(t, errors.Is(err, decomp.ErrDimensionMismatch))

	_, err = decomp.SolveLU(mustMatrix(t, [][]float64{{1, 2}, {2, 4}}), mustMatrix(t, [][]float64{{1}, {2}}))
	require.True(t, errors.Is(err, decomp.ErrSingular))
}
