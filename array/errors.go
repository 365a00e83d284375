// SPDX-License-Identifier: MIT
// Package array: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the array
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package array

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "array: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the kernel boundary so callers can still match with errors.Is.

var (
	// ErrNilValue indicates that a nil Value or nil *Matrix was passed
	// where an operand is required.
	ErrNilValue = errors.New("array: nil value")

	// ErrOutOfRange indicates that a row, column or cell index is outside
	// valid bounds. Public indexers (At/Set/Row/Col/Cell) MUST return this,
	// not panic. Row(0, m) and Col(0, m) also return this sentinel because
	// the 1-based signed index convention leaves zero undefined.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands:
	// Vector/Vector or Matrix/Matrix broadcasting with unequal shapes in
	// strict mode, Dot on unequal lengths, or MatMul with cols(A) != rows(B).
	ErrDimensionMismatch = errors.New("array: dimension mismatch")

	// ErrJagged signals that nested rows of unequal length were supplied to
	// a Matrix constructor. Rectangularity is validated at construction so
	// every kernel may assume it afterwards.
	ErrJagged = errors.New("array: jagged rows")

	// ErrBadShape is returned when requested generator dimensions are
	// negative, or when a dimension list has an unsupported arity
	// (only rank 1 and rank 2 are representable).
	ErrBadShape = errors.New("array: invalid shape")

	// ErrSingular is returned by Inv/Solve when the determinant lies within
	// the configured noise floor of zero and no inverse exists.
	ErrSingular = errors.New("array: singular matrix")

	// ErrTooLarge guards the recursive cofactor expansion: Det/Minors/Inv
	// refuse matrices above the configured Laplace ceiling instead of
	// silently exhausting time and stack (the expansion is exponential).
	ErrTooLarge = errors.New("array: matrix too large for cofactor expansion")

	// ErrUnsupportedRank marks an operation applied to a rank it does not
	// define, e.g. Diag on a Scalar or a Value outside {Scalar,Vector,*Matrix}.
	ErrUnsupportedRank = errors.New("array: unsupported rank")
)
