// SPDX-License-Identifier: MIT
// Package decomp: Doolittle LU factorization and triangular solves.

package decomp

import "github.com/katalvlaran/numa/array"

// Operation name constants for unified error wrapping.
const (
	opLU      = "LU"
	opSolveLU = "SolveLU"
)

// LU computes the Doolittle factorization A = L * U with unit diagonal on L
// and no pivoting (deterministic by construction).
// Stage 1 (Validate): non-nil, square; allocate L and U, set diag(L) = 1.
// Stage 2 (Execute): for i = 0..n-1 build row i of U, guard the pivot, then
// build column i of L, all in fixed order.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular on a zero pivot. Numerical
// stability requires pivoting upstream; this kernel trades stability for
// reproducibility, so avoid ill-conditioned inputs or scale them first.
// Complexity: O(n^3) time, O(n^2) space.
func LU(m *array.Matrix) (l, u *array.Matrix, err error) {
	if err = validateSquare(m); err != nil {
		return nil, nil, decompErrorf(opLU, err)
	}
	n := m.Rows()
	if l, err = array.ZerosMatrix(n, n); err != nil {
		return nil, nil, decompErrorf(opLU, err)
	}
	if u, err = array.ZerosMatrix(n, n); err != nil {
		return nil, nil, decompErrorf(opLU, err)
	}
	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		set(l, i, i, 1.0) // unit lower triangular
	}
	for i = 0; i < n; i++ {
		// Row i of U for j >= i.
		for j = i; j < n; j++ {
			sum = 0.0
			for k = 0; k < i; k++ {
				sum += at(l, i, k) * at(u, k, j)
			}
			set(u, i, j, at(m, i, j)-sum)
		}
		// Zero-pivot guard (deterministic singularity detection).
		pivot = at(u, i, i)
		if pivot == 0.0 {
			return nil, nil, decompErrorf(opLU, ErrSingular)
		}
		// Column i of L for j > i.
		for j = i + 1; j < n; j++ {
			sum = 0.0
			for k = 0; k < i; k++ {
				sum += at(l, j, k) * at(u, k, i)
			}
			set(l, j, i, (at(m, j, i)-sum)/pivot)
		}
	}
	return l, u, nil
}

// SolveLU solves A * X = B through one LU factorization followed by forward
// and backward substitution per right-hand-side column. This is the O(n^3)
// alternative to array.Solve, which always materializes an inverse.
// Errors: everything LU returns, plus ErrDimensionMismatch when
// rows(B) != rows(A).
// Complexity: O(n^3 + n^2 * cols(B)).
func SolveLU(m, b *array.Matrix) (*array.Matrix, error) {
	if b == nil {
		return nil, decompErrorf(opSolveLU, ErrNilMatrix)
	}
	l, u, err := LU(m)
	if err != nil {
		return nil, decompErrorf(opSolveLU, err)
	}
	n := m.Rows()
	if b.Rows() != n {
		return nil, decompErrorf(opSolveLU, ErrDimensionMismatch)
	}
	cols := b.Cols()
	x, err := array.ZerosMatrix(n, cols)
	if err != nil {
		return nil, decompErrorf(opSolveLU, err)
	}

	y := make([]float64, n) // forward substitution workspace
	z := make([]float64, n) // backward substitution workspace
	var col, i, k int
	var sum float64
	for col = 0; col < cols; col++ {
		// Forward: L*y = b[:, col] (unit diagonal, top-down).
		for i = 0; i < n; i++ {
			sum = 0.0
			for k = 0; k < i; k++ {
				sum += at(l, i, k) * y[k]
			}
			y[i] = at(b, i, col) - sum
		}
		// Backward: U*z = y (bottom-up; pivots verified nonzero by LU).
		for i = n - 1; i >= 0; i-- {
			sum = 0.0
			for k = i + 1; k < n; k++ {
				sum += at(u, i, k) * z[k]
			}
			z[i] = (y[i] - sum) / at(u, i, i)
		}
		// Write the solved column into X.
		for i = 0; i < n; i++ {
			set(x, i, col, z[i])
		}
	}
	return x, nil
}
