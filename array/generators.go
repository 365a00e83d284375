// SPDX-License-Identifier: MIT
// Package array: value generators.
//
// Purpose:
//   - Produce vectors and matrices with canonical fills: zeros, ones,
//     ascending sequences and uniform random draws.
//   - Provide the diagonal family: Identity, Eye and the bidirectional Diag.
//
// Degenerate convention:
//   - A dimension of zero yields the canonical 1x0 matrix ("[[]]"), never an
//     empty vector or an empty outer sequence. Both the vector-form and the
//     matrix-form generators honor this convention.

package array

import "fmt"

// genVector builds a length-n vector with fill(i) per 1-based position i,
// or the degenerate 1x0 matrix when n == 0.
// Stage 1 (Validate): n must be non-negative.
// Stage 2 (Execute): fixed ascending fill order.
// Complexity: O(n).
func genVector(tag string, n int, fill func(i int) float64) (Value, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: %w", tag, ErrBadShape)
	}
	if n == 0 {
		return newMatrix(1, 0), nil // canonical [[]] form
	}
	out := make(Vector, n)
	for i := 0; i < n; i++ {
		out[i] = fill(i + 1)
	}
	return out, nil
}

// genMatrix builds an r x c matrix with fill(row, col) per 1-based indices,
// or the degenerate 1x0 matrix when either dimension is zero.
// Complexity: O(r*c).
func genMatrix(tag string, r, c int, fill func(row, col int) float64) (*Matrix, error) {
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("%s: %w", tag, ErrBadShape)
	}
	if r == 0 || c == 0 {
		return newMatrix(1, 0), nil // canonical [[]] form
	}
	m := newMatrix(r, c)
	var i, j int // loop iterators (deterministic row-major order)
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			m.data[base+j] = fill(i+1, j+1)
		}
	}
	return m, nil
}

// Zeros returns a length-n zero vector (n = 0 yields the 1x0 matrix).
func Zeros(n int) (Value, error) {
	return genVector("Zeros", n, func(int) float64 { return 0.0 })
}

// Ones returns a length-n vector of ones (n = 0 yields the 1x0 matrix).
func Ones(n int) (Value, error) {
	return genVector("Ones", n, func(int) float64 { return 1.0 })
}

// Sequential returns the vector 1..n ascending (n = 0 yields the 1x0 matrix).
func Sequential(n int) (Value, error) {
	return genVector("Sequential", n, func(i int) float64 { return float64(i) })
}

// Random returns a length-n vector of draws from the configured uniform
// [0,1) source (WithUniform; math/rand by default). The source is opaque:
// reproducibility is exactly the reproducibility of the injected source.
func Random(n int, opts ...Option) (Value, error) {
	o := gatherOptions(opts...)
	return genVector("Random", n, func(int) float64 { return o.uniform() })
}

// ZerosMatrix returns an r x c zero matrix.
// A zero dimension yields the canonical 1x0 degenerate matrix.
func ZerosMatrix(r, c int) (*Matrix, error) {
	return genMatrix("ZerosMatrix", r, c, func(int, int) float64 { return 0.0 })
}

// OnesMatrix returns an r x c matrix of ones.
func OnesMatrix(r, c int) (*Matrix, error) {
	return genMatrix("OnesMatrix", r, c, func(int, int) float64 { return 1.0 })
}

// SequentialMatrix returns an r x c matrix of row-major ascending values,
// cell (row, col) holding (row-1)*c + col as a float64.
func SequentialMatrix(r, c int) (*Matrix, error) {
	return genMatrix("SequentialMatrix", r, c, func(row, col int) float64 {
		return float64((row-1)*c + col)
	})
}

// RandomMatrix returns an r x c matrix of draws from the configured uniform
// [0,1) source. Fill order is row-major, so a seeded source is reproducible.
func RandomMatrix(r, c int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	return genMatrix("RandomMatrix", r, c, func(int, int) float64 { return o.uniform() })
}

// Identity returns the n x n identity matrix, defined as Diag(Ones(n)).
// Errors: ErrBadShape when n < 1.
// Complexity: O(n^2).
func Identity(n int) (*Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("Identity: %w", ErrBadShape)
	}
	ones, err := Ones(n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	d, err := Diag(ones)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	return d.(*Matrix), nil // Diag of a Vector always yields *Matrix
}

// Eye returns an n x n (or n x m) matrix with 1.0 on the main diagonal where
// the row index equals the column index, 0.0 elsewhere. For square inputs Eye
// is identical to Identity; for rectangular inputs the min(n,m) leading
// diagonal cells are filled and everything else stays zero.
// Errors: ErrBadShape for non-positive dimensions or more than one m.
func Eye(n int, m ...int) (*Matrix, error) {
	if len(m) > 1 {
		return nil, fmt.Errorf("Eye: %w", ErrBadShape)
	}
	cols := n
	if len(m) == 1 {
		cols = m[0]
	}
	if n < 1 || cols < 1 {
		return nil, fmt.Errorf("Eye: %w", ErrBadShape)
	}
	out := newMatrix(n, cols)
	for i := 0; i < n && i < cols; i++ { // fill diagonal within bounds
		out.data[i*cols+i] = 1.0
	}
	return out, nil
}

// Diag is bidirectional, dispatching on the rank of its single argument:
//   - Vector: returns the n x n matrix with the vector on the diagonal.
//   - Matrix: extracts the main diagonal (length min(r,c)) as a Vector.
//
// Errors: ErrNilValue on nil input, ErrUnsupportedRank for scalars.
// Complexity: O(n^2) for the vector direction, O(min(r,c)) for extraction.
func Diag(v Value) (Value, error) {
	if err := ValidateValue(v); err != nil {
		return nil, fmt.Errorf("Diag: %w", err)
	}
	switch t := v.(type) {
	case Vector:
		n := len(t)
		out := newMatrix(n, n)
		for i := 0; i < n; i++ {
			out.data[i*n+i] = t[i]
		}
		return out, nil
	case *Matrix:
		n := t.r
		if t.c < n {
			n = t.c
		}
		out := make(Vector, n)
		for i := 0; i < n; i++ {
			out[i] = t.data[i*t.c+i]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("Diag: %w", ErrUnsupportedRank)
	}
}
