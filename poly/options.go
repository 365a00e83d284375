// SPDX-License-Identifier: MIT

// Package poly: functional configuration for the root-finding iteration.
package poly

import "math"

// Internal panic messages (no magic strings).
const (
	panicEpsilonInvalid    = "poly: WithEpsilon: eps must be finite, positive"
	panicIterationsInvalid = "poly: WithMaxIterations: budget must be >= 1"
)

// Options carries the convergence policy consumed by Roots.
// Zero value is never used directly; defaultOptions is the source of truth.
type Options struct {
	epsilon       float64 // step threshold and leading-coefficient noise floor
	maxIterations int     // Durand-Kerner sweep budget
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// defaultOptions returns the documented default policy.
func defaultOptions() Options {
	return Options{
		epsilon:       DefaultEpsilon,
		maxIterations: DefaultMaxIterations,
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithEpsilon sets the convergence threshold and the noise floor used to
// trim vanishing coefficients. Panics on NaN, Inf or non-positive eps
// (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.epsilon = eps }
}

// WithMaxIterations sets the iteration budget for the simultaneous sweeps.
// Panics when n < 1 (programmer error).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}
	return func(o *Options) { o.maxIterations = n }
}
