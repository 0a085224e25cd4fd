// SPDX-License-Identifier: MIT

// Package numeric - tolerance constants and clamping helpers.
//
// Purpose:
//   - Keep every epsilon used by the classifier and the conversion engine in one place.
//   - Protect inverse-trigonometric calls from arguments marginally outside [-1, 1].
//
// Determinism & Performance:
//   - Pure, branch-light helpers; no allocations.
//   - NaN is never "fixed": it passes through Clamp unchanged so that
//     NaN-poisoned inputs stay poisoned downstream.
//
// AI-Hints:
//   - Use ClampUnit before math.Acos/math.Asin on any dot product or trace-derived cosine.
//   - Use NearZeroEpsilon to decide whether an axis can be normalised.

package numeric

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by matrix validity checks
	// (orthonormality of the columns and unit determinant).
	DefaultEpsilon = 1e-7

	// NearZeroEpsilon is the threshold under which a norm or an angle is
	// treated as zero: axes are not normalised and rotations collapse to identity.
	NearZeroEpsilon = 1e-12

	// SingularityEpsilon is the looser round-trip tolerance guaranteed inside
	// the neighbourhood of a singular configuration (pitch ≈ ±π/2, angle ≈ π,
	// angle ≈ 0). Away from those neighbourhoods conversions cycle within 1e-9.
	SingularityEpsilon = 1e-6

	// GimbalLockThreshold is the |pitch| from which yaw and roll are no longer
	// separable and the deterministic gimbal-lock convention applies.
	GimbalLockThreshold = math.Pi/2 - 1e-7
)

// Clamp restricts v to [lo, hi]. NaN is returned unchanged.
// Complexity: O(1).
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// ClampUnit restricts a cosine/sine argument to [-1, 1] before an inverse
// trigonometric call. NaN is returned unchanged.
func ClampUnit(v float64) float64 { return Clamp(v, -1.0, 1.0) }

// IsNearZero reports whether |v| <= eps. NaN is never near zero.
func IsNearZero(v, eps float64) bool { return math.Abs(v) <= eps }

// EpsilonEquals reports whether |a-b| <= eps. NaN compares unequal to everything.
func EpsilonEquals(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

// ShiftAngle wraps angle into (-π, π].
//
// Implementation:
//   - Stage 1: reduce with math.Remainder into [-π, π].
//   - Stage 2: move the -π endpoint to +π so the interval is half-open.
//
// Notes:
//   - Infinite and NaN inputs yield NaN.
func ShiftAngle(angle float64) float64 {
	a := math.Remainder(angle, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}

	return a
}

// ContainsNaN reports whether any of the values is NaN.
func ContainsNaN(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// IsNonFinite reports whether v is NaN or ±Inf.
func IsNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Norm3 returns sqrt(x²+y²+z²) without intermediate overflow for ordinary inputs.
func Norm3(x, y, z float64) float64 { return math.Sqrt(x*x + y*y + z*z) }
