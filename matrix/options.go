// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) used by every kernel.
//
// Design goals:
//   - No global mutable state: the tolerance is a constant, overridable per call.
//   - Every kernel resolves its options once, at entry, so a single call never
//     observes two different tolerances.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// Epsilon is the process-wide tolerance below which a value is treated as zero
// for pivot selection, convergence testing and cleanup.
const Epsilon = 1e-10

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance kernels use when no WithEpsilon is given.
	DefaultEpsilon = Epsilon

	// DefaultMaxIterations caps the QR eigenvalue iteration.
	DefaultMaxIterations = 1000
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid = "matrix: WithMaxIterations: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	maxIter int     // > 0; DefaultMaxIterations
}

// WithEpsilon sets the tolerance used for pivoting, convergence and cleanup.
// Panics if eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - Tests that exercise tolerance edges should pass WithEpsilon per call instead
//     of relying on the package constant.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations sets the iteration cap of the QR eigenvalue iteration.
// Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Exposed so callers (and tests) can inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxIterations returns the resolved eigen iteration cap.
func (o Options) MaxIterations() int { return o.maxIter }

// gatherOptions applies user setters on top of defaults, in order.
// This is the canonical internal entry used by every kernel.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		maxIter: DefaultMaxIterations,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
