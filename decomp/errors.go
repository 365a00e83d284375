// SPDX-License-Identifier: MIT
// Package decomp: sentinel error set.
// All factorizations MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package decomp

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed to a factorization.
	ErrNilMatrix = errors.New("decomp: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't. The factorizations here are defined for square inputs only.
	ErrNonSquare = errors.New("decomp: matrix is not square")

	// ErrDimensionMismatch indicates an incompatible right-hand side in
	// SolveLU (rows(rhs) must equal the system dimension).
	ErrDimensionMismatch = errors.New("decomp: dimension mismatch")

	// ErrSingular is returned when a zero pivot is encountered during the
	// non-pivoting LU scheme.
	ErrSingular = errors.New("decomp: singular matrix")

	// ErrNoConvergence is returned when the Jacobi sweeps behind SVD fail to
	// push the off-diagonal mass below tolerance within the iteration cap.
	ErrNoConvergence = errors.New("decomp: iteration did not converge")
)
