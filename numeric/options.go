// SPDX-License-Identifier: MIT

// Package numeric: functional configuration for approximate comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Comparisons themselves never panic.
package numeric

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAbsTolerance is the absolute floor used by IsClose. Zero keeps
	// the comparison purely relative, which is the classic epsilon test.
	DefaultAbsTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid      = "numeric: WithEpsilon: eps must be finite, non-negative"
	panicAbsToleranceInvalid = "numeric: WithAbsTolerance: tol must be finite, non-negative"
)

// Option mutates comparison options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective comparison policy after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	eps    float64 // relative tolerance; <0 means "machine epsilon of the operand type"
	absTol float64 // absolute tolerance floor; DefaultAbsTolerance
}

// WithEpsilon overrides the relative tolerance. By default IsClose uses the
// machine epsilon of the narrower operand type.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithAbsTolerance sets an absolute tolerance floor. Relative comparison
// degenerates near zero (ε·max(|a|,|b|) → 0), so comparing a computed value
// against an exact 0 needs an absolute bound.
// Panics when tol is NaN, ±Inf or negative.
func WithAbsTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicAbsToleranceInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: -1, absTol: DefaultAbsTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
