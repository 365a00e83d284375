// SPDX-License-Identifier: MIT
// Package array: matrix multiplication.

package array

import "fmt"

// opMatMul tags errors produced by the multiplication kernel.
const opMatMul = "MatMul"

// MatMul performs standard matrix multiplication C = A x B.
// Stage 1 (Validate): both non-nil and cols(A) == rows(B), else
// ErrDimensionMismatch (an explicit error, never a crash).
// Stage 2 (Execute): transpose B once, then compute each output row as the
// dot products of the corresponding row of A against every original column
// of B (each a row of the transposed matrix) via Outer.
// Complexity: O(r*n*c) time, O(n*c) extra for the transpose.
func MatMul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMatMul, err)
	}

	// Transpose once so every original column of B is one contiguous row.
	bt, err := Transpose(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMatMul, err)
	}

	out := newMatrix(a.r, b.c)
	var i int
	for i = 0; i < a.r; i++ { // one output row per input row, fixed order
		row := Vector(a.data[i*a.c : (i+1)*a.c]) // zero-copy view; Outer never mutates
		prod, err := Outer(row, bt)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opMatMul, i, err)
		}
		copy(out.data[i*out.c:(i+1)*out.c], prod)
	}
	return out, nil
}
