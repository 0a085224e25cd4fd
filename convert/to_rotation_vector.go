// SPDX-License-Identifier: MIT

// Package convert - conversions whose destination is a rotation vector.
//
// Purpose:
//   - Repack axis·angle into a single r3.Vector.
//
// Determinism:
//   - angle ≈ 0 yields the zero vector exactly; an undefined axis never leaks NaN.

package convert

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/euclid/matrix"
	"github.com/katalvlaran/euclid/numeric"
	"github.com/katalvlaran/euclid/rotation"
)

// nanVector is the poisoned rotation vector.
func nanVector() r3.Vector {
	nan := math.NaN()
	return r3.Vector{X: nan, Y: nan, Z: nan}
}

// MatrixToRotationVector writes the rotation vector of the rotation matrix src into dst.
//
// Errors:
//   - wraps *matrix.NotARotationMatrixError in checked mode; dst untouched.
func MatrixToRotationVector(src *matrix.Matrix3D, dst *r3.Vector, opts ...Option) error {
	poisoned, err := prepareMatrixSource(opMatrixToRotationVector, src, opts)
	if err != nil {
		return err
	}
	if poisoned {
		*dst = nanVector()
		return nil
	}
	var aa rotation.AxisAngle
	matrixToAxisAngle(src, &aa)
	AxisAngleToRotationVector(&aa, dst)

	return nil
}

// AxisAngleToRotationVector writes axis·angle into dst, with the axis normalised.
//
// Implementation:
//   - |angle| <= NearZeroEpsilon or |axis| <= NearZeroEpsilon ⇒ zero vector.
func AxisAngleToRotationVector(src *rotation.AxisAngle, dst *r3.Vector) {
	AxisAngleToRotationVectorFrom(src.X, src.Y, src.Z, src.Angle, dst)
}

// AxisAngleToRotationVectorFrom is AxisAngleToRotationVector on components.
func AxisAngleToRotationVectorFrom(ux, uy, uz, angle float64, dst *r3.Vector) {
	if numeric.ContainsNaN(ux, uy, uz, angle) {
		*dst = nanVector()
		return
	}
	n := numeric.Norm3(ux, uy, uz)
	if numeric.IsNearZero(angle, numeric.NearZeroEpsilon) || n <= numeric.NearZeroEpsilon {
		*dst = r3.Vector{}
		return
	}
	k := angle / n
	*dst = r3.Vector{X: ux * k, Y: uy * k, Z: uz * k}
}

// QuaternionToRotationVector writes the rotation vector of the quaternion src into dst.
func QuaternionToRotationVector(src *rotation.Quaternion, dst *r3.Vector) {
	QuaternionToRotationVectorFrom(src.X, src.Y, src.Z, src.S, dst)
}

// QuaternionToRotationVectorFrom writes the rotation vector of (x, y, z, s) into dst.
//
// Implementation:
//   - Stage 1: |q|² <= NearZeroEpsilon encodes no rotation ⇒ NaN; flip the
//     sign when s < 0 so that the angle is in [0, π].
//   - Stage 2: |v| <= NearZeroEpsilon ⇒ zero vector; else v·(2·atan2(|v|, s)/|v|).
func QuaternionToRotationVectorFrom(x, y, z, s float64, dst *r3.Vector) {
	if numeric.ContainsNaN(x, y, z, s) {
		*dst = nanVector()
		return
	}
	if x*x+y*y+z*z+s*s <= numeric.NearZeroEpsilon {
		*dst = nanVector()
		return
	}
	if s < 0 {
		x, y, z, s = -x, -y, -z, -s
	}
	n := numeric.Norm3(x, y, z)
	if n <= numeric.NearZeroEpsilon {
		*dst = r3.Vector{}
		return
	}
	k := 2.0 * math.Atan2(n, s) / n
	*dst = r3.Vector{X: x * k, Y: y * k, Z: z * k}
}

// YawPitchRollToRotationVector writes the rotation vector of src into dst (through a quaternion).
func YawPitchRollToRotationVector(src *rotation.YawPitchRoll, dst *r3.Vector) {
	var q rotation.Quaternion
	YawPitchRollToQuaternion(src, &q)
	QuaternionToRotationVector(&q, dst)
}
