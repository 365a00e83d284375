// SPDX-License-Identifier: MIT

// Package array: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state beyond the default random source.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package array

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the numeric noise floor: values within this band of
	// zero are treated as zero by Divide (NA detection), by the singularity
	// checks in Det/Inv, and by EpsilonClamp. Tunable per call via WithEpsilon.
	DefaultEpsilon = 1e-12

	// DefaultMaxLaplace caps the matrix size accepted by the recursive
	// cofactor expansion (Det/Minors/Inv). Expansion along the first row is
	// O(n!), so anything beyond small matrices must fail fast with ErrTooLarge
	// rather than silently consume time and stack.
	DefaultMaxLaplace = 10

	// DefaultTruncate controls Vector/Vector and Matrix/Matrix broadcasting on
	// shape mismatch. The strict default fails with ErrDimensionMismatch;
	// WithTruncate restores the legacy pair-to-the-shorter policy for callers
	// that depend on it.
	DefaultTruncate = false
)

// Internal panic messages (no magic strings).
const (
	panicEpsilonInvalid = "array: WithEpsilon: eps must be finite, non-negative"
	panicLaplaceInvalid = "array: WithMaxLaplace: ceiling must be >= 1"
	panicUniformNil     = "array: WithUniform: source must be non-nil"
)

// Options carries the numeric policy consumed by kernels.
// Zero value is never used directly; defaultOptions is the source of truth.
type Options struct {
	epsilon    float64        // near-zero band for NA/singularity/clamp
	truncate   bool           // broadcast mismatch policy (opt-in legacy mode)
	maxLaplace int            // cofactor-expansion size ceiling
	uniform    func() float64 // opaque uniform [0,1) source for Random
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// defaultOptions returns the documented default policy.
func defaultOptions() Options {
	return Options{
		epsilon:    DefaultEpsilon,
		truncate:   DefaultTruncate,
		maxLaplace: DefaultMaxLaplace,
		uniform:    rand.Float64,
	}
}

// gatherOptions folds opts over the defaults. Internal; every public kernel
// that takes ...Option calls this exactly once at its top.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithEpsilon sets the noise floor used for near-zero tests.
// Panics on NaN, Inf or negative eps (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.epsilon = eps }
}

// WithTruncate enables the legacy broadcast policy: Vector/Vector and
// Matrix/Matrix operands of unequal shape are paired up to the shorter
// length instead of failing. Off by default; opt in explicitly.
func WithTruncate() Option {
	return func(o *Options) { o.truncate = true }
}

// WithMaxLaplace sets the size ceiling for cofactor expansion.
// Panics when n < 1 (programmer error).
func WithMaxLaplace(n int) Option {
	if n < 1 {
		panic(panicLaplaceInvalid)
	}
	return func(o *Options) { o.maxLaplace = n }
}

// WithUniform injects the uniform [0,1) source consumed by Random.
// The source is treated as opaque; determinism of Random is exactly the
// determinism of the injected source. Panics on nil (programmer error).
func WithUniform(u func() float64) Option {
	if u == nil {
		panic(panicUniformNil)
	}
	return func(o *Options) { o.uniform = u }
}
