// SPDX-License-Identifier: MIT
// Package array: determinant and the cofactor engine.
//
// Purpose:
//   - Det computes the determinant by recursive Laplace expansion along the
//     first row, with closed forms for the 1x1 and 2x2 bases.
//   - Minors builds the full matrix of first-minor determinants; Cofactors
//     builds the purely positional (-1)^(i+j) sign matrix. Together with the
//     broadcast engine they assemble the adjugate used by Inv.
//
// Cost model:
//   - Laplace expansion is exponential in the matrix size: there is no
//     memoization and no pivoting. The configured ceiling (WithMaxLaplace,
//     default 10) fails fast with ErrTooLarge instead of letting a large
//     input silently exhaust time and stack. O(n^3) factorizations live in
//     the decomp package for callers that outgrow this kernel.

package array

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opDet       = "Det"
	opMinors    = "Minors"
	opCofactors = "Cofactors"
)

// Det computes the determinant of a square matrix.
// Stage 1 (Validate): non-nil, square, size within the Laplace ceiling.
// Stage 2 (Execute): 1x1 and 2x2 closed forms; otherwise expansion along the
// first row: sum over columns J of (-1)^J * m[0][J] * Det(minor(0, J)),
// where the minor drops the first row and column J via WithoutRow/WithoutColumn.
// Errors: ErrNilValue, ErrDimensionMismatch (non-square), ErrBadShape (empty),
// ErrTooLarge (above the ceiling).
// Complexity: O(n!) time; acceptable for small matrices only.
func Det(m *Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opDet, err)
	}
	if m.r < 1 {
		return 0, fmt.Errorf("%s: %w", opDet, ErrBadShape)
	}
	o := gatherOptions(opts...)
	if m.r > o.maxLaplace {
		return 0, fmt.Errorf("%s: size %d exceeds ceiling %d: %w", opDet, m.r, o.maxLaplace, ErrTooLarge)
	}
	return det(m, opts)
}

// det is the recursive core shared by Det and Minors.
// Invariant: m is square, non-empty and within the ceiling (checked by callers).
func det(m *Matrix, opts []Option) (float64, error) {
	n := m.r
	switch n {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	// Drop the first row once; each term then drops one column of the rest.
	base, err := WithoutRow(m, 0)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDet, err)
	}
	acc := ZeroSum
	sign := 1.0
	var j int
	for j = 0; j < n; j++ {
		x := m.data[j] // first-row header value for column j
		if x != 0 {    // skip zero headers: their terms vanish
			minor, errM := WithoutColumn(base, j)
			if errM != nil {
				return 0, fmt.Errorf("%s: %w", opDet, errM)
			}
			d, errD := det(minor, opts)
			if errD != nil {
				return 0, errD
			}
			acc += sign * x * d
		}
		sign = -sign // alternate (-1)^J along the expansion row
	}
	return acc, nil
}

// Minors returns the matrix whose (i, j) entry is the determinant of m with
// row i and column j removed. The full minors matrix feeds the adjugate in Inv.
// Errors: as Det, plus ErrBadShape for matrices below 2x2 (a 1x1 matrix has
// no well-defined first minor).
// Complexity: n^2 determinant evaluations of size n-1.
func Minors(m *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opMinors, err)
	}
	if m.r < 2 {
		return nil, fmt.Errorf("%s: %w", opMinors, ErrBadShape)
	}
	o := gatherOptions(opts...)
	if m.r > o.maxLaplace {
		return nil, fmt.Errorf("%s: size %d exceeds ceiling %d: %w", opMinors, m.r, o.maxLaplace, ErrTooLarge)
	}

	n := m.r
	out := newMatrix(n, n)
	var i, j int // deterministic i->j order
	for i = 0; i < n; i++ {
		rows, err := WithoutRow(m, i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opMinors, err)
		}
		for j = 0; j < n; j++ {
			minor, err := WithoutColumn(rows, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opMinors, err)
			}
			d, err := det(minor, opts)
			if err != nil {
				return nil, err
			}
			out.data[i*n+j] = d
		}
	}
	return out, nil
}

// Cofactors returns the n x n positional sign matrix with (i, j) entry
// (-1)^(i+j) for 0-based indices. It depends only on the position, never on
// matrix values.
// Errors: ErrBadShape when n < 1.
// Complexity: O(n^2).
func Cofactors(n int) (*Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: %w", opCofactors, ErrBadShape)
	}
	out := newMatrix(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if (i+j)%2 == 0 {
				out.data[i*n+j] = 1.0
			} else {
				out.data[i*n+j] = -1.0
			}
		}
	}
	return out, nil
}
