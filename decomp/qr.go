// SPDX-License-Identifier: MIT
// Package decomp: Householder QR factorization.

package decomp

import (
	"math"

	"github.com/katalvlaran/numa/array"
)

// opQR tags errors produced by the QR kernel.
const opQR = "QR"

// QR computes the factorization A = Q * R for a square matrix A, with Q
// orthogonal and R upper triangular, via Householder reflections.
// Stage 1 (Validate): non-nil, square. Clone A into the future R; init Q = I.
// Stage 2 (Execute): for each column k build the reflector v from R[k:,k],
// apply H = I - tau*v*v' to R from the left and accumulate Q = Q*H.
// Stage 3 (Finalize): canonicalize signs so diag(R) >= 0 (negate row i of R
// and column i of Q together; the product is unchanged).
//
// Determinism: fixed k -> {i, j} visitation; zero columns are skipped via a
// no-op reflection, which keeps results stable and avoids numerical blow-ups.
// Complexity: O(n^3) time, O(n^2) space.
func QR(m *array.Matrix) (q, r *array.Matrix, err error) {
	if err = validateSquare(m); err != nil {
		return nil, nil, decompErrorf(opQR, err)
	}
	n := m.Rows()

	r = m.Clone().(*array.Matrix) // working copy becomes R
	q, err = array.Identity(n)    // orthogonal accumulator
	if err != nil {
		return nil, nil, decompErrorf(opQR, err)
	}

	v := make([]float64, n) // Householder vector workspace
	var (
		i, j, k     int     // loop indices
		norm, beta  float64 // column norm and v'v
		alpha, tau  float64 // reflection scalar and 2/beta factor
		sum         float64 // accumulator for projections
	)
	for k = 0; k < n; k++ {
		// Norm of the trailing column R[k:n, k].
		norm = 0.0
		for i = k; i < n; i++ {
			x := at(r, i, k)
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if norm == 0.0 {
			continue // zero column: nothing to reflect
		}

		// alpha = -sign(R[k,k]) * norm avoids cancellation in v[k].
		alpha = -math.Copysign(norm, at(r, k, k))

		// Build v = R[k:n, k] - alpha*e_k (zeros above k).
		for i = 0; i < k; i++ {
			v[i] = 0.0
		}
		for i = k; i < n; i++ {
			v[i] = at(r, i, k)
		}
		v[k] -= alpha

		// beta = v'v; a degenerate reflector is skipped for safety.
		beta = 0.0
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0.0 {
			continue
		}
		tau = 2.0 / beta

		// R <- H*R: update trailing columns only (leading ones are zero).
		for j = k; j < n; j++ {
			sum = 0.0
			for i = k; i < n; i++ {
				sum += v[i] * at(r, i, j)
			}
			for i = k; i < n; i++ {
				set(r, i, j, at(r, i, j)-tau*v[i]*sum)
			}
		}

		// Q <- Q*H: every row of Q projects onto v.
		for i = 0; i < n; i++ {
			sum = 0.0
			for j = k; j < n; j++ {
				sum += at(q, i, j) * v[j]
			}
			for j = k; j < n; j++ {
				set(q, i, j, at(q, i, j)-tau*sum*v[j])
			}
		}
	}

	// Sign canonicalization: force diag(R) >= 0 without changing Q*R.
	for i = 0; i < n; i++ {
		if at(r, i, i) < 0 {
			for j = 0; j < n; j++ {
				set(r, i, j, -at(r, i, j)) // negate row i of R
				set(q, j, i, -at(q, j, i)) // negate column i of Q
			}
		}
	}
	return q, r, nil
}
