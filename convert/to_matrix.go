// SPDX-License-Identifier: MIT

// Package convert - conversions whose destination is a rotation matrix.
//
// Purpose:
//   - Closed-form Rodrigues-type constructions from every other representation.
//
// Determinism:
//   - Identity sources produce exactly I (all off-diagonal terms are products with 0).
//   - Well-formed sources produce matrices passing matrix.IsRotationMatrix(DefaultEpsilon).

package convert

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/euclid/matrix"
	"github.com/katalvlaran/euclid/numeric"
	"github.com/katalvlaran/euclid/rotation"
)

// AxisAngleToMatrix writes the rotation of src into dst.
func AxisAngleToMatrix(src *rotation.AxisAngle, dst *matrix.Matrix3D) {
	AxisAngleToMatrixFrom(src.X, src.Y, src.Z, src.Angle, dst)
}

// AxisAngleToMatrixFrom writes the rotation of angle radians about (ux, uy, uz) into dst.
//
// Implementation:
//   - Stage 1: NaN ⇒ NaN matrix.
//   - Stage 2: normalise the axis; an axis shorter than NearZeroEpsilon is no rotation ⇒ I.
//   - Stage 3: R = cos·I + sin·[u]× + (1 - cos)·u·uᵀ.
func AxisAngleToMatrixFrom(ux, uy, uz, angle float64, dst *matrix.Matrix3D) {
	if numeric.ContainsNaN(ux, uy, uz, angle) {
		dst.SetToNaN()
		return
	}
	n := numeric.Norm3(ux, uy, uz)
	if n <= numeric.NearZeroEpsilon {
		dst.SetIdentity()
		return
	}
	ux, uy, uz = ux/n, uy/n, uz/n

	s, c := math.Sincos(angle)
	t := 1.0 - c

	dst.M00 = t*ux*ux + c
	dst.M01 = t*ux*uy - s*uz
	dst.M02 = t*ux*uz + s*uy
	dst.M10 = t*ux*uy + s*uz
	dst.M11 = t*uy*uy + c
	dst.M12 = t*uy*uz - s*ux
	dst.M20 = t*ux*uz - s*uy
	dst.M21 = t*uy*uz + s*ux
	dst.M22 = t*uz*uz + c
}

// QuaternionToMatrix writes the rotation of src into dst.
func QuaternionToMatrix(src *rotation.Quaternion, dst *matrix.Matrix3D) {
	QuaternionToMatrixFrom(src.X, src.Y, src.Z, src.S, dst)
}

// QuaternionToMatrixFrom writes the rotation of the quaternion (x, y, z, s) into dst.
//
// Implementation:
//   - The factor 2/|q|² makes the result independent of the quaternion's norm,
//     so slightly denormalised inputs still produce a rotation.
//   - |q|² <= NearZeroEpsilon encodes no rotation ⇒ NaN matrix.
func QuaternionToMatrixFrom(x, y, z, s float64, dst *matrix.Matrix3D) {
	if numeric.ContainsNaN(x, y, z, s) {
		dst.SetToNaN()
		return
	}
	n2 := x*x + y*y + z*z + s*s
	if n2 <= numeric.NearZeroEpsilon {
		dst.SetToNaN()
		return
	}
	k := 2.0 / n2

	xx, yy, zz := k*x*x, k*y*y, k*z*z
	xy, xz, yz := k*x*y, k*x*z, k*y*z
	sx, sy, sz := k*s*x, k*s*y, k*s*z

	dst.M00 = 1.0 - (yy + zz)
	dst.M01 = xy - sz
	dst.M02 = xz + sy
	dst.M10 = xy + sz
	dst.M11 = 1.0 - (xx + zz)
	dst.M12 = yz - sx
	dst.M20 = xz - sy
	dst.M21 = yz + sx
	dst.M22 = 1.0 - (xx + yy)
}

// YawPitchRollToMatrix writes Rz(yaw)·Ry(pitch)·Rx(roll) into dst.
func YawPitchRollToMatrix(src *rotation.YawPitchRoll, dst *matrix.Matrix3D) {
	YawPitchRollToMatrixFrom(src.Yaw, src.Pitch, src.Roll, dst)
}

// YawPitchRollToMatrixFrom writes Rz(yaw)·Ry(pitch)·Rx(roll) into dst.
// NaN angles propagate through the trigonometry without a special case.
func YawPitchRollToMatrixFrom(yaw, pitch, roll float64, dst *matrix.Matrix3D) {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	sr, cr := math.Sincos(roll)

	dst.M00 = cy * cp
	dst.M01 = cy*sp*sr - sy*cr
	dst.M02 = cy*sp*cr + sy*sr
	dst.M10 = sy * cp
	dst.M11 = sy*sp*sr + cy*cr
	dst.M12 = sy*sp*cr - cy*sr
	dst.M20 = -sp
	dst.M21 = cp * sr
	dst.M22 = cp * cr
}

// RotationVectorToMatrix writes the rotation of the rotation vector src into dst.
func RotationVectorToMatrix(src r3.Vector, dst *matrix.Matrix3D) {
	RotationVectorToMatrixFrom(src.X, src.Y, src.Z, dst)
}

// RotationVectorToMatrixFrom writes the rotation of (rx, ry, rz) into dst.
//
// Implementation:
//   - |r| <= NearZeroEpsilon ⇒ first-order I + [r]× (exactly I for the zero vector).
//   - otherwise Rodrigues with axis r/|r| and angle |r|.
func RotationVectorToMatrixFrom(rx, ry, rz float64, dst *matrix.Matrix3D) {
	if numeric.ContainsNaN(rx, ry, rz) {
		dst.SetToNaN()
		return
	}
	angle := numeric.Norm3(rx, ry, rz)
	if angle <= numeric.NearZeroEpsilon {
		dst.SetEntries(
			1, -rz, ry,
			rz, 1, -rx,
			-ry, rx, 1,
		)
		return
	}
	AxisAngleToMatrixFrom(rx/angle, ry/angle, rz/angle, angle, dst)
}
