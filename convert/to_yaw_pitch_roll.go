// SPDX-License-Identifier: MIT

// Package convert - conversions whose destination is yaw-pitch-roll.
//
// Purpose:
//   - Recover intrinsic Z-Y-X angles with pitch in [-π/2, π/2], yaw and roll in (-π, π].
//
// Gimbal lock:
//   - When |pitch| >= numeric.GimbalLockThreshold only yaw-roll (pitch up) or
//     yaw+roll (pitch down) is observable. The convention is roll = 0 and the
//     whole coupled angle goes to yaw = atan2(-m01, m11). Any (yaw, roll) pair
//     sharing that combination is the same rotation, so the choice is lossless.

package convert

import (
	"log/slog"
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/euclid/matrix"
	"github.com/katalvlaran/euclid/numeric"
	"github.com/katalvlaran/euclid/rotation"
)

// MatrixToYawPitchRoll writes the yaw-pitch-roll of the rotation matrix src into dst.
//
// Implementation:
//   - Stage 1: NaN / validity handling (see prepareMatrixSource).
//   - Stage 2: pitch = atan2(-m20, hypot(m00, m10)), accurate up to ±π/2
//     where asin(-m20) would lose half the digits.
//   - Stage 3: regular: yaw = atan2(m10, m00), roll = atan2(m21, m22);
//     gimbal lock: yaw = atan2(-m01, m11), roll = 0.
//
// Errors:
//   - wraps *matrix.NotARotationMatrixError in checked mode; dst untouched.
func MatrixToYawPitchRoll(src *matrix.Matrix3D, dst *rotation.YawPitchRoll, opts ...Option) error {
	poisoned, err := prepareMatrixSource(opMatrixToYawPitchRoll, src, opts)
	if err != nil {
		return err
	}
	if poisoned {
		dst.SetToNaN()
		return nil
	}
	yawPitchRollFromMatrixTerms(src.M00, src.M01, src.M10, src.M11, src.M20, src.M21, src.M22, dst)

	return nil
}

// yawPitchRollFromMatrixTerms holds the angle extraction shared by the matrix
// and quaternion sources; only seven of the nine entries are needed.
// hypot(m00, m10) = |cos(pitch)| for a rotation, so pitch lands in [-π/2, π/2].
func yawPitchRollFromMatrixTerms(m00, m01, m10, m11, m20, m21, m22 float64, dst *rotation.YawPitchRoll) {
	pitch := math.Atan2(-m20, math.Hypot(m00, m10))
	if math.Abs(pitch) >= numeric.GimbalLockThreshold {
		if debugEnabled() {
			Logger().Debug("gimbal lock: roll set to 0", slog.Float64("pitch", pitch))
		}
		dst.Set(math.Atan2(-m01, m11), pitch, 0)
		return
	}
	dst.Set(math.Atan2(m10, m00), pitch, math.Atan2(m21, m22))
}

// QuaternionToYawPitchRoll writes the yaw-pitch-roll of the quaternion src into dst.
func QuaternionToYawPitchRoll(src *rotation.Quaternion, dst *rotation.YawPitchRoll) {
	QuaternionToYawPitchRollFrom(src.X, src.Y, src.Z, src.S, dst)
}

// QuaternionToYawPitchRollFrom writes the yaw-pitch-roll of (x, y, z, s) into dst.
//
// Implementation:
//   - Stage 1: normalise (a zero quaternion encodes nothing ⇒ NaN).
//   - Stage 2: evaluate only the seven matrix entries the extraction reads,
//     then share the gimbal-lock logic with the matrix source.
func QuaternionToYawPitchRollFrom(x, y, z, s float64, dst *rotation.YawPitchRoll) {
	q := rotation.Quaternion{X: x, Y: y, Z: z, S: s}
	q.Normalize()
	if q.ContainsNaN() {
		dst.SetToNaN()
		return
	}
	x, y, z, s = q.X, q.Y, q.Z, q.S

	m00 := 1.0 - 2.0*(y*y+z*z)
	m01 := 2.0 * (x*y - s*z)
	m10 := 2.0 * (x*y + s*z)
	m11 := 1.0 - 2.0*(x*x+z*z)
	m20 := 2.0 * (x*z - s*y)
	m21 := 2.0 * (y*z + s*x)
	m22 := 1.0 - 2.0*(x*x+y*y)
	yawPitchRollFromMatrixTerms(m00, m01, m10, m11, m20, m21, m22, dst)
}

// AxisAngleToYawPitchRoll writes the yaw-pitch-roll of src into dst (through a quaternion).
func AxisAngleToYawPitchRoll(src *rotation.AxisAngle, dst *rotation.YawPitchRoll) {
	var q rotation.Quaternion
	AxisAngleToQuaternion(src, &q)
	QuaternionToYawPitchRoll(&q, dst)
}

// RotationVectorToYawPitchRoll writes the yaw-pitch-roll of src into dst (through a quaternion).
func RotationVectorToYawPitchRoll(src r3.Vector, dst *rotation.YawPitchRoll) {
	var q rotation.Quaternion
	RotationVectorToQuaternion(src, &q)
	QuaternionToYawPitchRoll(&q, dst)
}
