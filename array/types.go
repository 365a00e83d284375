// SPDX-License-Identifier: MIT

// Package array: core value model.
// This file intentionally contains ONLY the rank-tagged value types
// (Scalar, Vector, Matrix), the derived Shape descriptor and the NA marker.
// Errors and options live in dedicated files (errors.go, options.go) per the
// package conventions.
package array

import (
	"fmt"
	"math"
)

// Rank is the structural classification of a value:
// 0 for Scalar, 1 for Vector, 2 for Matrix. Rank is never stored on data;
// it is carried by the concrete type and re-derived at every call site.
type Rank int

// Rank constants, ordered by dimensionality.
const (
	RankScalar Rank = iota // single real number
	RankVector             // ordered sequence of scalars
	RankMatrix             // ordered sequence of equal-length rows
)

// Shape is the derived dimension descriptor of a value:
// empty for Scalar, {n} for Vector, {rows, cols} for Matrix.
// Shapes are computed on demand and never cached.
type Shape []int

// Equal reports whether two shapes have identical rank and dimensions.
// Complexity: O(rank), rank <= 2.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Value is the rank-polymorphic operand of every kernel in this package.
// Exactly three implementations exist: Scalar, Vector and *Matrix.
// All implementations are immutable from the kernels' point of view:
// every operation allocates a fresh result and never mutates its operands.
type Value interface {
	// Rank returns the structural rank (0, 1 or 2). Complexity: O(1).
	Rank() Rank

	// Shape returns the derived dimension descriptor. Complexity: O(1).
	Shape() Shape

	// Clone returns a deep, independent copy. Complexity: O(size).
	Clone() Value
}

// ShapeOf returns the derived shape of v, or nil for a nil value.
// It is the package's single shape-inference entry point.
func ShapeOf(v Value) Shape {
	if v == nil {
		return nil
	}
	return v.Shape()
}

// NA returns the "not available" marker produced by Divide for denominators
// within the noise floor of zero. NA propagates transparently through further
// arithmetic, exactly like IEEE NaN (which it is); callers that must not
// carry undefined results forward check elements with IsNA.
func NA() float64 { return math.NaN() }

// IsNA reports whether x is the NA marker.
func IsNA(x float64) bool { return math.IsNaN(x) }

// ---------- Scalar (rank 0) ----------

// Scalar is a single real number.
type Scalar float64

// Rank returns RankScalar. Complexity: O(1).
func (Scalar) Rank() Rank { return RankScalar }

// Shape returns the empty shape. Complexity: O(1).
func (Scalar) Shape() Shape { return Shape{} }

// Clone returns the scalar itself (value semantics). Complexity: O(1).
func (s Scalar) Clone() Value { return s }

// ---------- Vector (rank 1) ----------

// Vector is an ordered sequence of scalars; index equals position.
type Vector []float64

// Rank returns RankVector. Complexity: O(1).
func (Vector) Rank() Rank { return RankVector }

// Shape returns {len}. Complexity: O(1).
func (v Vector) Shape() Shape { return Shape{len(v)} }

// Clone returns an independent copy of the vector. Complexity: O(n).
func (v Vector) Clone() Value {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// ---------- Matrix (rank 2) ----------

// Matrix is a row-major rank-2 array of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Unlike generator output, r or c may legitimately be zero: the canonical
// degenerate form for dimension-0 inputs is the 1x0 matrix ("[[]]") and its
// transpose is the 0x1 empty matrix ("[]").
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewMatrix builds a Matrix from nested rows.
// Stage 1 (Validate): all rows must share the length of the first row;
// jagged input fails fast with ErrJagged so no kernel ever observes it.
// Stage 2 (Prepare): allocate flat backing slice and copy rows.
// Complexity: O(r*c) time and memory.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{r: 0, c: 0, data: nil}, nil
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewMatrix: row %d: %w", i, ErrJagged)
		}
	}
	m := newMatrix(len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// newMatrix allocates a zero r x c matrix. Internal constructor: callers
// guarantee r >= 0 and c >= 0, so degenerate shapes are representable.
func newMatrix(r, c int) *Matrix {
	return &Matrix{r: r, c: c, data: make([]float64, r*c)}
}

// Rank returns RankMatrix. Complexity: O(1).
func (*Matrix) Rank() Rank { return RankMatrix }

// Shape returns {rows, cols}. Column count is carried by the constructor's
// rectangularity validation, never re-measured per row. Complexity: O(1).
func (m *Matrix) Shape() Shape { return Shape{m.r, m.c} }

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at 0-based (row, col).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at 0-based (row, col). Set exists for construction and
// tests; kernels never mutate operands through it.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// RowCopy returns an independent copy of 0-based row i as a Vector.
// Complexity: O(c).
func (m *Matrix) RowCopy(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Matrix.RowCopy(%d): %w", i, ErrOutOfRange)
	}
	out := make(Vector, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
func (m *Matrix) Clone() Value {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Matrix{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "[" // open row
		for j = 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}
	return s
}
