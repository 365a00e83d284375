// SPDX-License-Identifier: MIT

// Package poly finds real roots of polynomials with real coefficients.
// It is the root-finding collaborator of the array kernel: the input and
// output are plain array.Vector values, coefficients ordered ascending by
// power (coeffs[k] multiplies x^k).
package poly

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/numa/array"
)

// Convergence policy defaults for the Durand-Kerner iteration.
const (
	// DefaultMaxIterations caps the simultaneous-iteration sweeps.
	DefaultMaxIterations = 500

	// DefaultEpsilon is the step-size threshold for convergence and the
	// band used to trim vanishing leading coefficients.
	DefaultEpsilon = 1e-10

	// imagTol is the residual imaginary magnitude below which a converged
	// root is accepted as real.
	imagTol = 1e-8
)

// Initial-guess generator for the simultaneous iteration: powers of a
// complex seed that is neither real nor a root of unity, the standard
// Durand-Kerner starting configuration.
var seed = complex(0.4, 0.9)

var (
	// ErrNoCoefficients indicates a nil or empty coefficient vector.
	ErrNoCoefficients = errors.New("poly: no coefficients")

	// ErrDegenerate indicates that every coefficient vanishes within the
	// noise floor; the zero polynomial has no meaningful root set.
	ErrDegenerate = errors.New("poly: zero polynomial")

	// ErrComplexRoots is returned when a root keeps a residual imaginary
	// part above tolerance; this package reports real roots only.
	ErrComplexRoots = errors.New("poly: complex roots")

	// ErrNoConvergence is returned when the iteration budget is exhausted
	// before every root update falls below the epsilon threshold.
	ErrNoConvergence = errors.New("poly: iteration did not converge")
)

// Roots returns the real roots of c0 + c1*x + ... + cn*x^n, ascending.
// Stage 1 (Validate): non-empty coefficients; trim leading (highest-power)
// coefficients within the noise floor (WithEpsilon, default 1e-10) to find
// the effective degree.
// Stage 2 (Execute): degree 0 has no roots (empty vector); degree 1 and 2
// are solved in closed form; higher degrees run the Durand-Kerner
// simultaneous iteration on the monic polynomial over complex128, capped by
// WithMaxIterations (default 500).
// Stage 3 (Finalize): residual imaginary parts above tolerance fail with
// ErrComplexRoots; otherwise real parts are sorted ascending.
//
// Errors: ErrNoCoefficients, ErrDegenerate, ErrNoConvergence, ErrComplexRoots.
// Complexity: O(maxIterations * degree^2).
func Roots(coeffs array.Vector, opts ...Option) (array.Vector, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("Roots: %w", ErrNoCoefficients)
	}
	o := gatherOptions(opts...)

	// Effective degree: drop vanishing leading coefficients.
	deg := len(coeffs) - 1
	for deg > 0 && math.Abs(coeffs[deg]) <= o.epsilon {
		deg--
	}
	switch deg {
	case 0:
		if math.Abs(coeffs[0]) <= o.epsilon {
			return nil, fmt.Errorf("Roots: %w", ErrDegenerate)
		}
		return array.Vector{}, nil // nonzero constant: no roots
	case 1:
		return array.Vector{-coeffs[0] / coeffs[1]}, nil
	case 2:
		return quadratic(coeffs[0], coeffs[1], coeffs[2], o.epsilon)
	}

	// Normalize to a monic polynomial over complex128.
	monic := make([]complex128, deg+1)
	lead := coeffs[deg]
	for k := 0; k <= deg; k++ {
		monic[k] = complex(coeffs[k]/lead, 0)
	}

	// Durand-Kerner: start from powers of the seed, iterate all roots
	// simultaneously until the largest step drops below epsilon.
	z := make([]complex128, deg)
	z[0] = seed
	for k := 1; k < deg; k++ {
		z[k] = z[k-1] * seed
	}
	converged := false
	var iter, k, j int
	for iter = 0; iter < o.maxIterations; iter++ {
		maxStep := 0.0
		for k = 0; k < deg; k++ {
			den := complex(1, 0)
			for j = 0; j < deg; j++ {
				if j != k {
					den *= z[k] - z[j]
				}
			}
			step := eval(monic, z[k]) / den
			z[k] -= step
			if s := cmplx.Abs(step); s > maxStep {
				maxStep = s
			}
		}
		if maxStep < o.epsilon {
			converged = true
			break
		}
	}
	if !converged {
		return nil, fmt.Errorf("Roots: %w", ErrNoConvergence)
	}

	// Accept only real roots; sort ascending for a stable contract.
	out := make(array.Vector, deg)
	for k = 0; k < deg; k++ {
		if math.Abs(imag(z[k])) > imagTol {
			return nil, fmt.Errorf("Roots: %w", ErrComplexRoots)
		}
		out[k] = real(z[k])
	}
	sort.Float64s([]float64(out))
	return out, nil
}

// quadratic solves c + b*x + a*x^2 = 0 in closed form.
// A discriminant within the noise floor of zero collapses to a double root;
// a genuinely negative discriminant fails with ErrComplexRoots.
func quadratic(c, b, a, eps float64) (array.Vector, error) {
	disc := b*b - 4*a*c
	if math.Abs(disc) <= eps {
		r := -b / (2 * a)
		return array.Vector{r, r}, nil
	}
	if disc < 0 {
		return nil, fmt.Errorf("Roots: %w", ErrComplexRoots)
	}
	sq := math.Sqrt(disc)
	r1 := (-b - sq) / (2 * a)
	r2 := (-b + sq) / (2 * a)
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return array.Vector{r1, r2}, nil
}

// eval computes the monic polynomial at z by Horner's rule.
// Complexity: O(degree).
func eval(monic []complex128, z complex128) complex128 {
	acc := monic[len(monic)-1]
	for k := len(monic) - 2; k >= 0; k-- {
		acc = acc*z + monic[k]
	}
	return acc
}
