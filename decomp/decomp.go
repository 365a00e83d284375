// SPDX-License-Identifier: MIT

// Package decomp provides O(n^3) matrix factorizations over array.Matrix
// values: Householder QR, Jacobi-based SVD and Doolittle LU with a linear
// solver. These cover the workloads that outgrow the array package's
// exponential cofactor kernels (Det/Inv there are adjugate-based).
//
// All factorizations are pure: inputs are never mutated and every factor is
// freshly allocated. Loop orders are fixed, so identical inputs produce
// identical factors across runs.
package decomp

import (
	"fmt"

	"github.com/katalvlaran/numa/array"
)

// decompErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can still match sentinels with errors.Is.
func decompErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSquare guards every factorization: non-nil and square, at least 1x1.
// Complexity: O(1).
func validateSquare(m *array.Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}
	if m.Rows() < 1 {
		return ErrNonSquare
	}
	return nil
}

// at reads m[i][j]. Bounds are guaranteed by upfront shape validation, so
// the indexer error is not expected and intentionally discarded.
func at(m *array.Matrix, i, j int) float64 {
	v, _ := m.At(i, j)
	return v
}

// set writes m[i][j] = v under the same validated-bounds contract as at.
func set(m *array.Matrix, i, j int, v float64) {
	_ = m.Set(i, j, v)
}
