// SPDX-License-Identifier: MIT
// Package array: structural transforms.
//
// Purpose:
//   - Transpose, and the row/column/cell access family.
//   - WithoutRow/WithoutColumn are the primary deletion operations (0-based,
//     non-negative indices). Row/Col keep the historical 1-based signed
//     convention as a thin compatibility layer: a positive index selects,
//     a negative index means "all rows/columns except", and zero is an
//     explicit ErrOutOfRange instead of undefined behavior.
//
// Determinism & Performance:
//   - Fixed traversal orders; one allocation per result; operands untouched.

package array

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opRow       = "Row"
	opCol       = "Col"
	opCell      = "Cell"
)

// Transpose returns a new matrix with rows and columns swapped.
// Degenerate shapes follow the canonical convention: the 1x0 matrix ("[[]]")
// transposes to the 0x1 empty matrix ("[]") and vice versa.
// Stage 1 (Validate): m non-nil.
// Stage 2 (Execute): flat copy data[i*c+j] -> out.data[j*r+i].
// Complexity: O(r*c) time and memory.
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, err)
	}
	out := newMatrix(m.c, m.r) // dims flipped
	var i, j int               // loop iterators
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}
	return out, nil
}

// WithoutRow returns m with 0-based row i deleted, all other rows in order.
// Complexity: O(r*c).
func WithoutRow(m *Matrix, i int) (*Matrix, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, fmt.Errorf("WithoutRow: %w", err)
	}
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("WithoutRow(%d): %w", i, ErrOutOfRange)
	}
	out := newMatrix(m.r-1, m.c)
	copy(out.data, m.data[:i*m.c])             // rows above i
	copy(out.data[i*m.c:], m.data[(i+1)*m.c:]) // rows below i, shifted up
	return out, nil
}

// WithoutColumn returns m with 0-based column j deleted, order preserved.
// Complexity: O(r*c).
func WithoutColumn(m *Matrix, j int) (*Matrix, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, fmt.Errorf("WithoutColumn: %w", err)
	}
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("WithoutColumn(%d): %w", j, ErrOutOfRange)
	}
	out := newMatrix(m.r, m.c-1)
	var i, k, w int // source row, source column, write cursor
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for k = 0; k < m.c; k++ {
			if k == j {
				continue // skip the deleted column
			}
			out.data[w] = m.data[base+k]
			w++
		}
	}
	return out, nil
}

// Row is the 1-based signed accessor:
//   - i > 0: the single row at index i, wrapped as a one-row matrix.
//   - i < 0: m with row -i deleted ("all rows except"), order preserved.
//   - i == 0: ErrOutOfRange (undefined in the signed convention).
//
// Complexity: O(c) for selection, O(r*c) for deletion.
func Row(i int, m *Matrix) (*Matrix, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opRow, err)
	}
	switch {
	case i > 0:
		if i > m.r {
			return nil, fmt.Errorf("%s(%d): %w", opRow, i, ErrOutOfRange)
		}
		out := newMatrix(1, m.c)
		copy(out.data, m.data[(i-1)*m.c:i*m.c])
		return out, nil
	case i < 0:
		res, err := WithoutRow(m, -i-1)
		if err != nil {
			return nil, fmt.Errorf("%s(%d): %w", opRow, i, err)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%s(0): %w", opRow, ErrOutOfRange)
	}
}

// Col is the 1-based signed accessor for columns, defined by composition as
// Transpose(Row(j, Transpose(m))): a positive j yields the single column as a
// c x 1 matrix, a negative j deletes column -j.
// Complexity: O(r*c) due to the two transposes.
func Col(j int, m *Matrix) (*Matrix, error) {
	t, err := Transpose(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCol, err)
	}
	picked, err := Row(j, t)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opCol, j, err)
	}
	out, err := Transpose(picked)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCol, err)
	}
	return out, nil
}

// Cell returns the single scalar at 1-based (i, j).
// Only positive indices are meaningful here; anything else is ErrOutOfRange.
// Complexity: O(1).
func Cell(i, j int, m *Matrix) (float64, error) {
	if err := ValidateMatrix(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opCell, err)
	}
	if i < 1 || j < 1 {
		return 0, fmt.Errorf("%s(%d,%d): %w", opCell, i, j, ErrOutOfRange)
	}
	v, err := m.At(i-1, j-1)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCell, err)
	}
	return v, nil
}
