// SPDX-License-Identifier: MIT
// Package array: the rank-polymorphic broadcast engine.
//
// Purpose:
//   - Provide the two generic elementwise entry points, Apply1 and Apply2,
//     that dispatch explicitly on the rank tags of their operands.
//   - Derive the public arithmetic surface (Add/Sub/Mul/Divide/Pow and
//     Exp/Log/Sqrt/EpsilonClamp) as thin wrappers over the two kernels.
//
// Broadcasting policy:
//   - A Scalar paired with any rank replicates against every element.
//   - Vector/Vector and Matrix/Matrix pair by position and REQUIRE identical
//     shapes; mismatches fail with ErrDimensionMismatch. The legacy policy of
//     silently pairing to the shorter operand is available only through the
//     explicit WithTruncate option.
//   - Vector/Matrix combinations are not defined by the dispatch table.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 or i->j); one allocation per result.

package array

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opApply1 = "Apply1"
	opApply2 = "Apply2"
)

// Apply1 applies f to every element of v, preserving rank and shape.
// Stage 1 (Validate): v must be non-nil.
// Stage 2 (Execute): Scalar -> f(v); Vector -> per-element map;
// Matrix -> single flat pass over the row-major backing slice.
// Complexity: O(size), one allocation for the result.
func Apply1(v Value, f func(float64) float64) (Value, error) {
	if err := ValidateValue(v); err != nil {
		return nil, fmt.Errorf("%s: %w", opApply1, err)
	}
	switch t := v.(type) {
	case Scalar:
		return Scalar(f(float64(t))), nil
	case Vector:
		out := make(Vector, len(t))
		for i, x := range t { // fixed ascending order
			out[i] = f(x)
		}
		return out, nil
	case *Matrix:
		out := newMatrix(t.r, t.c)
		for i, x := range t.data { // flat 0..n-1 pass
			out.data[i] = f(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: %w", opApply1, ErrUnsupportedRank)
	}
}

// Apply2 applies f elementwise across every supported rank combination of
// a and b, broadcasting the lower-rank operand when ranks differ.
//
// Dispatch table:
//   - Scalar x Scalar -> f(a, b).
//   - Scalar x Vector / Vector x Scalar -> scalar against every element.
//   - Scalar x Matrix / Matrix x Scalar -> scalar against every cell.
//   - Vector x Vector -> positional pairing, equal length required.
//   - Matrix x Matrix -> positional pairing, equal shape required.
//   - Vector x Matrix (either order) -> ErrDimensionMismatch.
//
// With WithTruncate, the two positional cases pair up to the shorter length
// and row/column counts instead of failing.
// Complexity: O(result size), one allocation.
func Apply2(a, b Value, f func(x, y float64) float64, opts ...Option) (Value, error) {
	if err := ValidateBinaryValues(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opApply2, err)
	}
	o := gatherOptions(opts...)

	switch x := a.(type) {
	case Scalar:
		switch y := b.(type) {
		case Scalar:
			return Scalar(f(float64(x), float64(y))), nil
		case Vector:
			return mapVector(y, func(v float64) float64 { return f(float64(x), v) }), nil
		case *Matrix:
			return mapMatrix(y, func(v float64) float64 { return f(float64(x), v) }), nil
		}
	case Vector:
		switch y := b.(type) {
		case Scalar:
			return mapVector(x, func(v float64) float64 { return f(v, float64(y)) }), nil
		case Vector:
			return pairVectors(x, y, f, o)
		case *Matrix:
			return nil, fmt.Errorf("%s: vector with matrix: %w", opApply2, ErrDimensionMismatch)
		}
	case *Matrix:
		switch y := b.(type) {
		case Scalar:
			return mapMatrix(x, func(v float64) float64 { return f(v, float64(y)) }), nil
		case Vector:
			return nil, fmt.Errorf("%s: matrix with vector: %w", opApply2, ErrDimensionMismatch)
		case *Matrix:
			return pairMatrices(x, y, f, o)
		}
	}
	return nil, fmt.Errorf("%s: %w", opApply2, ErrUnsupportedRank)
}

// mapVector maps f over v into a fresh vector. Complexity: O(n).
func mapVector(v Vector, f func(float64) float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = f(x)
	}
	return out
}

// mapMatrix maps f over every cell of m into a fresh matrix.
// Single flat pass over the row-major buffer. Complexity: O(r*c).
func mapMatrix(m *Matrix, f func(float64) float64) *Matrix {
	out := newMatrix(m.r, m.c)
	for i, x := range m.data {
		out.data[i] = f(x)
	}
	return out
}

// pairVectors pairs u and v by position.
// Strict mode requires equal lengths; truncate mode pairs to the shorter.
// Complexity: O(min(len)).
func pairVectors(u, v Vector, f func(x, y float64) float64, o Options) (Value, error) {
	n := len(u)
	if len(v) != n {
		if !o.truncate {
			return nil, fmt.Errorf("%s: vectors %d vs %d: %w", opApply2, len(u), len(v), ErrDimensionMismatch)
		}
		if len(v) < n {
			n = len(v)
		}
	}
	out := make(Vector, n)
	for i := 0; i < n; i++ { // fixed ascending order
		out[i] = f(u[i], v[i])
	}
	return out, nil
}

// pairMatrices pairs a and b cell by cell.
// Strict mode requires identical shapes; truncate mode reduces each row pair
// to the Vector/Vector case, clipping both the row count and the row length.
// Complexity: O(result size).
func pairMatrices(a, b *Matrix, f func(x, y float64) float64, o Options) (Value, error) {
	if !o.truncate {
		if err := ValidateSameShape(a, b); err != nil {
			return nil, fmt.Errorf("%s: %w", opApply2, err)
		}
		out := newMatrix(a.r, a.c)
		for i := range a.data { // flat 0..n-1 pass
			out.data[i] = f(a.data[i], b.data[i])
		}
		return out, nil
	}

	// Truncating path: clip rows and columns to the shorter operand.
	rows, cols := a.r, a.c
	if b.r < rows {
		rows = b.r
	}
	if b.c < cols {
		cols = b.c
	}
	out := newMatrix(rows, cols)
	var i, j int // loop iterators (deterministic i->j order)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = f(a.data[i*a.c+j], b.data[i*b.c+j])
		}
	}
	return out, nil
}

// ---------- Binary arithmetic facades (rank-polymorphic) ----------

// Add computes the elementwise sum a + b under the broadcasting policy.
func Add(a, b Value, opts ...Option) (Value, error) {
	return Apply2(a, b, func(x, y float64) float64 { return x + y }, opts...)
}

// Sub computes the elementwise difference a - b.
func Sub(a, b Value, opts ...Option) (Value, error) {
	return Apply2(a, b, func(x, y float64) float64 { return x - y }, opts...)
}

// Mul computes the elementwise (Hadamard) product a * b.
// This is NOT matrix multiplication; see MatMul for A x B.
func Mul(a, b Value, opts ...Option) (Value, error) {
	return Apply2(a, b, func(x, y float64) float64 { return x * y }, opts...)
}

// Pow computes the elementwise power a ** b.
func Pow(a, b Value, opts ...Option) (Value, error) {
	return Apply2(a, b, math.Pow, opts...)
}

// Divide computes the elementwise quotient a / b. A denominator within the
// configured noise floor of zero (WithEpsilon, default 1e-12) yields the NA
// marker for that element instead of an error, so partial results survive in
// elementwise contexts. Check elements with IsNA before reuse if the NaN-like
// propagation is not wanted.
func Divide(a, b Value, opts ...Option) (Value, error) {
	eps := gatherOptions(opts...).epsilon
	return Apply2(a, b, func(x, y float64) float64 {
		if math.Abs(y) <= eps {
			return NA()
		}
		return x / y
	}, opts...)
}

// ---------- Unary facades ----------

// Exp applies e**x elementwise.
func Exp(v Value) (Value, error) { return Apply1(v, math.Exp) }

// Log applies the natural logarithm elementwise.
func Log(v Value) (Value, error) { return Apply1(v, math.Log) }

// Sqrt applies the square root elementwise.
func Sqrt(v Value) (Value, error) { return Apply1(v, math.Sqrt) }

// EpsilonClamp zeroes every element whose magnitude lies below the configured
// noise floor (WithEpsilon, default 1e-12), suppressing floating-point
// rounding artifacts after chains of arithmetic.
func EpsilonClamp(v Value, opts ...Option) (Value, error) {
	eps := gatherOptions(opts...).epsilon
	return Apply1(v, func(x float64) float64 {
		if math.Abs(x) < eps {
			return 0.0
		}
		return x
	})
}
