// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil -> Shape).

package array

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateValue ensures the rank-polymorphic operand is non-nil.
// A typed-nil *Matrix inside the interface is rejected as well.
// Complexity: O(1).
func ValidateValue(v Value) error {
	if v == nil {
		return validatorErrorf("ValidateValue", ErrNilValue)
	}
	if m, ok := v.(*Matrix); ok && m == nil {
		return validatorErrorf("ValidateValue", ErrNilValue)
	}
	return nil
}

// ValidateMatrix ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateMatrix(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateMatrix", ErrNilValue)
	}
	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilValue, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if err := ValidateMatrix(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}
	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are non-nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}
	return nil
}

// ValidateVectorLen ensures the vector is non-nil and has exactly length n.
// Complexity: O(1).
func ValidateVectorLen(x Vector, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVectorLen", ErrNilValue)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVectorLen", ErrDimensionMismatch)
	}
	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilValue, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateMatrix(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateMatrix(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}
	return nil
}

// ValidateBinaryValues is a composite: NotNil(a) -> NotNil(b).
// Shape compatibility is rank-combination specific and lives in Apply2.
// Complexity: O(1).
func ValidateBinaryValues(a, b Value) error {
	if err := ValidateValue(a); err != nil {
		return validatorErrorf("ValidateBinaryValues", err)
	}
	if err := ValidateValue(b); err != nil {
		return validatorErrorf("ValidateBinaryValues", err)
	}
	return nil
}
