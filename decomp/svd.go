// SPDX-License-Identifier: MIT
// Package decomp: singular value decomposition via Jacobi eigen-sweeps.

package decomp

import (
	"math"
	"sort"

	"github.com/katalvlaran/numa/array"
)

// opSVD tags errors produced by the SVD kernel.
const opSVD = "SVD"

// Convergence policy for the Jacobi sweeps behind SVD.
const (
	// DefaultTol is the off-diagonal mass threshold for convergence.
	DefaultTol = 1e-10

	// DefaultMaxIter caps the number of Jacobi rotations.
	DefaultMaxIter = 300
)

// SVD computes the singular value decomposition A = U * S * V' of a square
// matrix A.
// Stage 1 (Validate): non-nil, square.
// Stage 2 (Execute): Jacobi eigen-decomposition of the symmetric matrix A'A
// yields eigenpairs (lambda_k, v_k); singular values are sqrt(max(lambda, 0))
// sorted descending, V collects the reordered eigenvectors, S is the diagonal
// of singular values, and U columns are A*v_k / sigma_k (zero columns where
// sigma_k vanishes within tolerance).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNoConvergence.
// Complexity: O(maxIter * n^3) time, O(n^2) space.
func SVD(m *array.Matrix) (u, s, v *array.Matrix, err error) {
	if err = validateSquare(m); err != nil {
		return nil, nil, nil, decompErrorf(opSVD, err)
	}
	n := m.Rows()

	// A'A is symmetric positive semi-definite by construction.
	mt, err := array.Transpose(m)
	if err != nil {
		return nil, nil, nil, decompErrorf(opSVD, err)
	}
	ata, err := array.MatMul(mt, m)
	if err != nil {
		return nil, nil, nil, decompErrorf(opSVD, err)
	}

	eigs, vecs, err := jacobiEigen(ata, DefaultTol, DefaultMaxIter)
	if err != nil {
		return nil, nil, nil, decompErrorf(opSVD, err)
	}

	// Order eigenpairs by descending eigenvalue for the conventional layout.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(a, b int) bool { return eigs[perm[a]] > eigs[perm[b]] })

	sigma := make([]float64, n)
	for k := 0; k < n; k++ {
		lambda := eigs[perm[k]]
		if lambda < 0 {
			lambda = 0 // clamp rounding noise below zero
		}
		sigma[k] = math.Sqrt(lambda)
	}

	// V: reordered eigenvector columns. S: diagonal of singular values.
	v, err = array.ZerosMatrix(n, n)
	if err != nil {
		return nil, nil, nil, decompErrorf(opSVD, err)
	}
	s, err = array.ZerosMatrix(n, n)
	if err != nil {
		return nil, nil, nil, decompErrorf(opSVD, err)
	}
	var i, k int
	for k = 0; k < n; k++ {
		set(s, k, k, sigma[k])
		for i = 0; i < n; i++ {
			set(v, i, k, at(vecs, i, perm[k]))
		}
	}

	// U columns: A*v_k scaled by 1/sigma_k; zero where sigma_k ~ 0.
	av, err := array.MatMul(m, v)
	if err != nil {
		return nil, nil, nil, decompErrorf(opSVD, err)
	}
	u, err = array.ZerosMatrix(n, n)
	if err != nil {
		return nil, nil, nil, decompErrorf(opSVD, err)
	}
	for k = 0; k < n; k++ {
		if sigma[k] <= DefaultTol {
			continue // rank-deficient direction: leave the column zero
		}
		for i = 0; i < n; i++ {
			set(u, i, k, at(av, i, k)/sigma[k])
		}
	}
	return u, s, v, nil
}

// jacobiEigen computes eigenvalues and eigenvectors of a symmetric matrix
// via classical Jacobi rotations, picking the largest off-diagonal pivot in
// fixed i -> j order each sweep.
// Invariant: m is square and symmetric (guaranteed by the A'A construction).
// Returns the diagonal as eigenvalues and the accumulated rotation matrix Q
// whose columns are eigenvectors; ErrNoConvergence if the off-diagonal mass
// stays above tol after maxIter rotations.
// Complexity: O(maxIter * n^2) pivot scans plus O(n) updates per rotation.
func jacobiEigen(m *array.Matrix, tol float64, maxIter int) ([]float64, *array.Matrix, error) {
	n := m.Rows()
	a := m.Clone().(*array.Matrix) // working copy; input stays untouched
	q, err := array.Identity(n)
	if err != nil {
		return nil, nil, err
	}

	var (
		iter, i, j, p, pq int     // iteration counter, indices, pivot pair
		maxOff, off       float64 // pivot scan state
		app, aqq, apq     float64 // pivot-block entries
		theta, t, c, sn   float64 // rotation parameters
		aip, aiq          float64 // row temporaries
		qip, qiq          float64 // accumulator temporaries
	)
	for iter = 0; iter < maxIter; iter++ {
		// Pivot scan: largest |a[p][q]| over the strict upper triangle.
		maxOff = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(at(a, i, j))
				if off > maxOff {
					maxOff, p, pq = off, i, j
				}
			}
		}
		if maxOff < tol {
			break // converged: matrix is numerically diagonal
		}

		app = at(a, p, p)
		aqq = at(a, pq, pq)
		apq = at(a, p, pq) // |apq| == maxOff >= tol past the break above

		// Rotation angle: theta = (aqq - app) / (2 apq), t = sign/(|.|+hypot).
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		sn = t * c

		// Apply the rotation symmetrically to rows/columns p and pq.
		for i = 0; i < n; i++ {
			if i == p || i == pq {
				continue
			}
			aip = at(a, i, p)
			aiq = at(a, i, pq)
			set(a, i, p, c*aip-sn*aiq)
			set(a, p, i, c*aip-sn*aiq)
			set(a, i, pq, sn*aip+c*aiq)
			set(a, pq, i, sn*aip+c*aiq)
		}
		set(a, p, p, c*c*app-2*c*sn*apq+sn*sn*aqq)
		set(a, pq, pq, sn*sn*app+2*c*sn*apq+c*c*aqq)
		set(a, p, pq, 0)
		set(a, pq, p, 0)

		// Accumulate the rotation into the eigenvector matrix.
		for i = 0; i < n; i++ {
			qip = at(q, i, p)
			qiq = at(q, i, pq)
			set(q, i, p, c*qip-sn*qiq)
			set(q, i, pq, sn*qip+c*qiq)
		}
	}

	// Final convergence check after the iteration budget.
	maxOff = 0.0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(at(a, i, j))
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, ErrNoConvergence
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = at(a, i, i)
	}
	return eigs, q, nil
}
