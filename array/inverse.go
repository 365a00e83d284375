// SPDX-License-Identifier: MIT
// Package array: adjugate-based inversion and linear solve.

package array

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opInv   = "Inv"
	opSolve = "Solve"
)

// Inv computes the inverse of a square matrix via the adjugate.
// Stage 1 (Validate): non-nil, square, non-empty; singularity is a near-zero
// test on the determinant against the configured noise floor (WithEpsilon,
// default 1e-12), never an exact float comparison.
// Stage 2 (Execute):
//   - 1x1: reciprocal of the single element.
//   - 2x2: closed form [[D, -B], [-C, A]] / det.
//   - general: Transpose(Minors(m) * Cofactors(n)) elementwise-divided by
//     det(m) through the broadcast engine (adjugate construction).
//
// Errors: ErrNilValue, ErrDimensionMismatch, ErrBadShape, ErrSingular,
// ErrTooLarge (inherited from the Laplace ceiling).
// Complexity: dominated by the cofactor expansion; small matrices only.
func Inv(m *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opInv, err)
	}
	if m.r < 1 {
		return nil, fmt.Errorf("%s: %w", opInv, ErrBadShape)
	}
	o := gatherOptions(opts...)

	switch m.r {
	case 1:
		a := m.data[0]
		if math.Abs(a) <= o.epsilon {
			return nil, fmt.Errorf("%s: %w", opInv, ErrSingular)
		}
		out := newMatrix(1, 1)
		out.data[0] = 1.0 / a
		return out, nil
	case 2:
		a, b, c, d := m.data[0], m.data[1], m.data[2], m.data[3]
		dt := a*d - b*c
		if math.Abs(dt) <= o.epsilon {
			return nil, fmt.Errorf("%s: %w", opInv, ErrSingular)
		}
		out := newMatrix(2, 2)
		out.data[0] = d / dt
		out.data[1] = -b / dt
		out.data[2] = -c / dt
		out.data[3] = a / dt
		return out, nil
	}

	// General case: adjugate / determinant.
	dt, err := Det(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInv, err)
	}
	if math.Abs(dt) <= o.epsilon {
		return nil, fmt.Errorf("%s: %w", opInv, ErrSingular)
	}
	minors, err := Minors(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInv, err)
	}
	signs, err := Cofactors(m.r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInv, err)
	}
	signed, err := Mul(minors, signs) // cofactor matrix = minors (.) signs
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInv, err)
	}
	adj, err := Transpose(signed.(*Matrix)) // adjugate = transpose of cofactors
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInv, err)
	}
	// Elementwise scalar division through the broadcast engine. The
	// determinant already passed the noise-floor check, so no NA appears.
	res, err := Divide(adj, Scalar(dt), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInv, err)
	}
	return res.(*Matrix), nil
}

// Solve solves X * A = B for A as MatMul(Inv(X), B): the inversion is always
// materialized, there is no decomposition-based path here (see decomp.SolveLU
// for the O(n^3) alternative).
// Errors: everything Inv can return, plus ErrDimensionMismatch when
// rows(B) != rows(X).
func Solve(x, b *Matrix, opts ...Option) (*Matrix, error) {
	inv, err := Inv(x, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	res, err := MatMul(inv, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	return res, nil
}
