// SPDX-License-Identifier: MIT
// Package array: reductions.
//
// Purpose:
//   - Sum flattens any rank and accumulates; Norm is the Euclidean norm for
//     vectors and the Frobenius norm for matrices; Dot/Inner/Outer are the
//     row-level building blocks MatMul is assembled from.
//
// Determinism & Performance:
//   - Fixed ascending accumulation order; no allocations except Outer's result.

package array

import (
	"fmt"
	"math"
)

// ZeroSum is the additive identity used to seed accumulators.
const ZeroSum = 0.0

// Sum recursively flattens v and returns the sum of all scalars.
// The empty vector and the degenerate 1x0 matrix both sum to 0.
// Stage 1 (Validate): v non-nil.
// Stage 2 (Execute): rank dispatch, fixed ascending accumulation.
// Complexity: O(size).
func Sum(v Value) (float64, error) {
	if err := ValidateValue(v); err != nil {
		return 0, fmt.Errorf("Sum: %w", err)
	}
	acc := ZeroSum
	switch t := v.(type) {
	case Scalar:
		return float64(t), nil
	case Vector:
		for _, x := range t {
			acc += x
		}
		return acc, nil
	case *Matrix:
		for _, x := range t.data { // flat pass over row-major storage
			acc += x
		}
		return acc, nil
	default:
		return 0, fmt.Errorf("Sum: %w", ErrUnsupportedRank)
	}
}

// Norm returns the scalar itself for rank 0, the Euclidean norm for a vector
// and the Frobenius norm (the norm of the fully flattened element list) for
// a matrix.
// Complexity: O(size).
func Norm(v Value) (float64, error) {
	if err := ValidateValue(v); err != nil {
		return 0, fmt.Errorf("Norm: %w", err)
	}
	if s, ok := v.(Scalar); ok {
		return float64(s), nil // identity on scalars
	}
	// sqrt(sum(pow(x, 2))) over the flattened elements.
	sq, err := Pow(v, Scalar(2))
	if err != nil {
		return 0, fmt.Errorf("Norm: %w", err)
	}
	total, err := Sum(sq)
	if err != nil {
		return 0, fmt.Errorf("Norm: %w", err)
	}
	return math.Sqrt(total), nil
}

// Dot returns the sum of elementwise products of two equal-length vectors.
// Length mismatch is an explicit ErrDimensionMismatch: dot-product correctness
// depends on full-length pairing, so the broadcast engine's truncation policy
// is deliberately not available here.
// Complexity: O(n).
func Dot(u, v Vector) (float64, error) {
	if err := ValidateVectorLen(u, len(u)); err != nil {
		return 0, fmt.Errorf("Dot: %w", err)
	}
	if err := ValidateVectorLen(v, len(u)); err != nil {
		return 0, fmt.Errorf("Dot: %w", err)
	}
	acc := ZeroSum
	for i, x := range u { // fixed ascending order; every term accumulates
		// A zero term still multiplies: 0 * NA must stay NA, so no
		// zero-skip shortcut is admissible here.
		acc += x * v[i]
	}
	return acc, nil
}

// Inner is an alias for Dot.
func Inner(u, v Vector) (float64, error) { return Dot(u, v) }

// Outer computes the dot product of one row against every column, producing
// one output row. cols holds the columns as rows (i.e. an already transposed
// right-hand side), so Outer(row, Transpose(B)) is one row of row x B.
// Errors: ErrNilValue, ErrDimensionMismatch when len(row) != cols.Cols().
// Complexity: O(rows(cols) * len(row)).
func Outer(row Vector, cols *Matrix) (Vector, error) {
	if err := ValidateMatrix(cols); err != nil {
		return nil, fmt.Errorf("Outer: %w", err)
	}
	if err := ValidateVectorLen(row, cols.c); err != nil {
		return nil, fmt.Errorf("Outer: %w", err)
	}
	out := make(Vector, cols.r)
	var k int
	for k = 0; k < cols.r; k++ { // one dot product per stored column
		// View the stored column as a vector without copying; Dot never mutates.
		col := Vector(cols.data[k*cols.c : (k+1)*cols.c])
		d, err := Dot(row, col)
		if err != nil {
			return nil, fmt.Errorf("Outer: %w", err)
		}
		out[k] = d
	}
	return out, nil
}
