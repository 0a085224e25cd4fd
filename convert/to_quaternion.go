// SPDX-License-Identifier: MIT

// Package convert - conversions whose destination is a unit quaternion.
//
// Purpose:
//   - Half-angle constructions from axis-angle, yaw-pitch-roll and rotation vectors.
//   - Pivot-selecting construction from a rotation matrix.
//
// Notes:
//   - Only MatrixToQuaternion canonicalises the sign (S >= 0). The other sources
//     keep the sign that the half-angle formulas give, e.g. an axis-angle of
//     angle 3π/2 yields S < 0.

package convert

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/euclid/matrix"
	"github.com/katalvlaran/euclid/numeric"
	"github.com/katalvlaran/euclid/rotation"
)

// MatrixToQuaternion writes the quaternion of the rotation matrix src into dst.
//
// Implementation:
//   - Stage 1: NaN / validity handling (see prepareMatrixSource).
//   - Stage 2: pick the largest of {trace, m00, m11, m22} as pivot:
//     trace → S = ½·√(1+trace), the vector part from the skew part;
//     m00   → X = ½·√(1+m00-m11-m22), the rest from sums and differences;
//     m11   → Y likewise;
//     m22   → Z likewise.
//     Dividing by the largest root keeps every quotient well conditioned.
//   - Stage 3: normalise and flip the sign so that S >= 0.
//
// Errors:
//   - wraps *matrix.NotARotationMatrixError in checked mode; dst untouched.
func MatrixToQuaternion(src *matrix.Matrix3D, dst *rotation.Quaternion, opts ...Option) error {
	poisoned, err := prepareMatrixSource(opMatrixToQuaternion, src, opts)
	if err != nil {
		return err
	}
	if poisoned {
		dst.SetToNaN()
		return nil
	}
	matrixToQuaternion(src, dst)

	return nil
}

// matrixToQuaternion is the unchecked pivot-selecting kernel.
func matrixToQuaternion(m *matrix.Matrix3D, dst *rotation.Quaternion) {
	var x, y, z, s float64
	trace := m.Trace()

	if trace > m.M00 && trace > m.M11 && trace > m.M22 {
		r := math.Sqrt(1.0 + trace)
		k := 0.5 / r
		s = 0.5 * r
		x = (m.M21 - m.M12) * k
		y = (m.M02 - m.M20) * k
		z = (m.M10 - m.M01) * k
	} else if m.M00 > m.M11 && m.M00 > m.M22 {
		r := math.Sqrt(1.0 + m.M00 - m.M11 - m.M22)
		k := 0.5 / r
		x = 0.5 * r
		y = (m.M01 + m.M10) * k
		z = (m.M02 + m.M20) * k
		s = (m.M21 - m.M12) * k
	} else if m.M11 > m.M22 {
		r := math.Sqrt(1.0 + m.M11 - m.M00 - m.M22)
		k := 0.5 / r
		y = 0.5 * r
		x = (m.M01 + m.M10) * k
		z = (m.M12 + m.M21) * k
		s = (m.M02 - m.M20) * k
	} else {
		r := math.Sqrt(1.0 + m.M22 - m.M00 - m.M11)
		k := 0.5 / r
		z = 0.5 * r
		x = (m.M02 + m.M20) * k
		y = (m.M12 + m.M21) * k
		s = (m.M10 - m.M01) * k
	}

	dst.Set(x, y, z, s)
	dst.NormalizeAndLimitToPi()
}

// AxisAngleToQuaternion writes the quaternion of src into dst.
func AxisAngleToQuaternion(src *rotation.AxisAngle, dst *rotation.Quaternion) {
	AxisAngleToQuaternionFrom(src.X, src.Y, src.Z, src.Angle, dst)
}

// AxisAngleToQuaternionFrom writes (u·sin(angle/2), cos(angle/2)) into dst, u = axis/|axis|.
// An axis shorter than NearZeroEpsilon encodes no rotation ⇒ identity.
func AxisAngleToQuaternionFrom(ux, uy, uz, angle float64, dst *rotation.Quaternion) {
	if numeric.ContainsNaN(ux, uy, uz, angle) {
		dst.SetToNaN()
		return
	}
	n := numeric.Norm3(ux, uy, uz)
	if n <= numeric.NearZeroEpsilon {
		dst.SetToZero()
		return
	}
	sh, ch := math.Sincos(0.5 * angle)
	k := sh / n
	dst.Set(ux*k, uy*k, uz*k, ch)
}

// YawPitchRollToQuaternion writes qz(yaw)·qy(pitch)·qx(roll) into dst.
func YawPitchRollToQuaternion(src *rotation.YawPitchRoll, dst *rotation.Quaternion) {
	YawPitchRollToQuaternionFrom(src.Yaw, src.Pitch, src.Roll, dst)
}

// YawPitchRollToQuaternionFrom writes qz(yaw)·qy(pitch)·qx(roll) into dst,
// expanded with half-angle sines and cosines. NaN propagates through the trigonometry.
func YawPitchRollToQuaternionFrom(yaw, pitch, roll float64, dst *rotation.Quaternion) {
	sy, cy := math.Sincos(0.5 * yaw)
	sp, cp := math.Sincos(0.5 * pitch)
	sr, cr := math.Sincos(0.5 * roll)

	dst.S = cy*cp*cr + sy*sp*sr
	dst.X = cy*cp*sr - sy*sp*cr
	dst.Y = cy*sp*cr + sy*cp*sr
	dst.Z = sy*cp*cr - cy*sp*sr
}

// RotationVectorToQuaternion writes the quaternion of the rotation vector src into dst.
func RotationVectorToQuaternion(src r3.Vector, dst *rotation.Quaternion) {
	RotationVectorToQuaternionFrom(src.X, src.Y, src.Z, dst)
}

// RotationVectorToQuaternionFrom writes the quaternion of (rx, ry, rz) into dst.
//
// Implementation:
//   - |r| <= NearZeroEpsilon ⇒ (r/2, 1) normalised (first order, exactly identity at 0).
//   - otherwise (r·sin(|r|/2)/|r|, cos(|r|/2)).
func RotationVectorToQuaternionFrom(rx, ry, rz float64, dst *rotation.Quaternion) {
	if numeric.ContainsNaN(rx, ry, rz) {
		dst.SetToNaN()
		return
	}
	angle := numeric.Norm3(rx, ry, rz)
	if angle <= numeric.NearZeroEpsilon {
		dst.Set(0.5*rx, 0.5*ry, 0.5*rz, 1.0)
		dst.Normalize()
		return
	}
	sh, ch := math.Sincos(0.5 * angle)
	k := sh / angle
	dst.Set(rx*k, ry*k, rz*k, ch)
}
