// SPDX-License-Identifier: MIT
// Package decomp_test contains unit tests for the SVD kernel.
package decomp_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/numa/array"
	"github.com/katalvlaran/numa/decomp"
	"github.com/stretchr/testify/require"
)

// TestSVDReconstruction: U * S * V' approximates the input and the singular
// values come out non-negative in descending order.
func TestSVDReconstruction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    [][]float64
	}{
		{"2x2", [][]float64{{3, 0}, {4, 5}}},
		{"3x3", [][]float64{{2, 0, 1}, {0, 3, 0}, {1, 0, 2}}},
		{"symmetric", [][]float64{{4, 1}, {1, 3}}},
		{"rank deficient", [][]float64{{1, 2}, {2, 4}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustMatrix(t, tc.m)
			u, s, v, err := decomp.SVD(m)
			require.NoError(t, err)

			vt, err := array.Transpose(v)
			require.NoError(t, err)
			requireProductEq(t, m, u, s, vt)

			// S is diagonal, non-negative and sorted descending.
			n := s.Rows()
			prev := 0.0
			for k := 0; k < n; k++ {
				sk, err := s.At(k, k)
				require.NoError(t, err)
				require.GreaterOrEqual(t, sk, 0.0)
				if k > 0 {
					require.LessOrEqual(t, sk, prev, "singular values must descend")
				}
				prev = sk
				for j := 0; j < n; j++ {
					if j == k {
						continue
					}
					off, err := s.At(k, j)
					require.NoError(t, err)
					require.Zero(t, off, "off-diagonal of S")
				}
			}
		})
	}
}

// TestSVDKnownValues pins the singular values of a diagonal-friendly input.
func TestSVDKnownValues(t *testing.T) {
	t.Parallel()

	// Singular values of [[3, 0], [4, 5]] are sqrt(45) and sqrt(5).
	m := mustMatrix(t, [][]float64{{3, 0}, {4, 5}})
	_, s, _, err := decomp.SVD(m)
	require.NoError(t, err)

	s0, err := s.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 6.708203932499369, s0, 1e-9)
	s1, err := s.At(1, 1)
	require.NoError(t, err)
	require.InDelta(t, 2.23606797749979, s1, 1e-9)
}

// TestSVDOrthogonality: V is always orthogonal; U is orthogonal on the
// columns carried by nonzero singular values (full rank input here).
func TestSVDOrthogonality(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float64{{2, 0, 1}, {0, 3, 0}, {1, 0, 2}})
	u, _, v, err := decomp.SVD(m)
	require.NoError(t, err)

	requireOrthogonal(t, v)
	requireOrthogonal(t, u)
}

// TestSVDErrors: structural failures fail fast.
func TestSVDErrors(t *testing.T) {
	t.Parallel()

	_, _, _, err := decomp.SVD(nil)
	require.True(t, errors.Is(err, decomp.ErrNilMatrix))

	_, _, _, err = decomp.SVD(mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.True(t, errors.Is(err, decomp.ErrNonSquare))
}
