// SPDX-License-Identifier: MIT

// Package convert: functional configuration for matrix-source conversions.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package convert

import "github.com/katalvlaran/euclid/numeric"

// DefaultChecked makes matrix-source conversions validate their input.
const DefaultChecked = true

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "convert: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps     float64 // >= 0; numeric.DefaultEpsilon
	checked bool    // DefaultChecked
}

// WithEpsilon sets the tolerance of the rotation-matrix validity check.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - Loosen (e.g. 1e-5) for matrices read from single-precision sources.
func WithEpsilon(eps float64) Option {
	if numeric.IsNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithUnchecked selects the fast path: the matrix is trusted to be a rotation.
// Feeding a non-rotation produces meaningless (but finite) angles.
func WithUnchecked() Option {
	return func(o *Options) { o.checked = false }
}

// WithChecked restores validation (the default).
func WithChecked() Option {
	return func(o *Options) { o.checked = true }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{eps: numeric.DefaultEpsilon, checked: DefaultChecked}
}

// gatherOptions applies opts over the defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
