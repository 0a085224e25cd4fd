// SPDX-License-Identifier: MIT
// Package convert_test contains test helpers
//
// Purpose:
//   • Draw random orientations of every representation through gofuzz.
//   • Measure the angle between two rotations independently of the engine.

package convert_test

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/euclid/matrix"
	"github.com/katalvlaran/euclid/rotation"
)

// Samples is the number of random orientations per round-trip property.
const Samples = 10000

// RegularTolerance is the round-trip tolerance away from singular configurations.
const RegularTolerance = 1e-9

// singularMargin is the distance (rad) to a singular configuration under which
// a sample is considered inside its neighbourhood.
const singularMargin = 1e-3

// newFuzzer RETURNS a deterministic gofuzz.Fuzzer drawing valid orientations.
// Implementation:
//   - Quaternions: four Gaussian components, normalised (uniform over SO(3)).
//   - Axis-angles: unit Gaussian axis, angle uniform in [0, π].
//   - Yaw-pitch-roll: yaw, roll uniform in (-π, π), pitch uniform in (-π/2, π/2).
//   - Rotation vectors: unit Gaussian direction scaled by an angle in [0, π).
func newFuzzer(t *testing.T) *fuzz.Fuzzer {
	t.Helper()

	return fuzz.NewWithSeed(20260418).NilChance(0).Funcs(
		func(q *rotation.Quaternion, c fuzz.Continue) {
			q.Set(c.NormFloat64(), c.NormFloat64(), c.NormFloat64(), c.NormFloat64())
			q.Normalize()
		},
		func(a *rotation.AxisAngle, c fuzz.Continue) {
			u := r3.Vector{X: c.NormFloat64(), Y: c.NormFloat64(), Z: c.NormFloat64()}.Normalize()
			a.Set(u.X, u.Y, u.Z, c.Float64()*math.Pi)
		},
		func(y *rotation.YawPitchRoll, c fuzz.Continue) {
			y.Set((2*c.Float64()-1)*math.Pi, (2*c.Float64()-1)*math.Pi/2, (2*c.Float64()-1)*math.Pi)
		},
		func(v *r3.Vector, c fuzz.Continue) {
			u := r3.Vector{X: c.NormFloat64(), Y: c.NormFloat64(), Z: c.NormFloat64()}.Normalize()
			*v = u.Mul(c.Float64() * math.Pi)
		},
	)
}

// RotationAngleBetween RETURNS the angle (rad) of aᵀ·b, i.e. the geodesic distance.
// Implementation:
//   - atan2(|skew(aᵀb)|/2, (trace(aᵀb)-1)/2): accurate over [0, π].
func RotationAngleBetween(a, b *matrix.Matrix3D) float64 {
	d := *a
	d.MultiplyTransposeThis(b)
	skew := r3.Vector{X: d.M21 - d.M12, Y: d.M02 - d.M20, Z: d.M10 - d.M01}

	return math.Atan2(0.5*skew.Norm(), 0.5*(d.Trace()-1))
}

// AllNaN4 REPORTS whether all four values are NaN.
func AllNaN4(a, b, c, d float64) bool {
	return math.IsNaN(a) && math.IsNaN(b) && math.IsNaN(c) && math.IsNaN(d)
}

// AllNaNMatrix REPORTS whether every entry of m is NaN.
func AllNaNMatrix(m *matrix.Matrix3D) bool {
	for _, v := range m.Entries() {
		if !math.IsNaN(v) {
			return false
		}
	}

	return true
}

// NearPi REPORTS whether an angle lies in the angle ≈ π neighbourhood.
func NearPi(angle float64) bool { return math.Pi-math.Abs(angle) < singularMargin }

// NearZeroAngle REPORTS whether an angle lies in the angle ≈ 0 neighbourhood.
func NearZeroAngle(angle float64) bool { return math.Abs(angle) < singularMargin }

// NearGimbalLock REPORTS whether a pitch lies in the |pitch| ≈ π/2 neighbourhood.
func NearGimbalLock(pitch float64) bool { return math.Pi/2-math.Abs(pitch) < singularMargin }
