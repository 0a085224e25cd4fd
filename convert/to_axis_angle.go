// SPDX-License-Identifier: MIT

// Package convert - conversions whose destination is an axis-angle.
//
// Purpose:
//   - Produce a unit axis and an angle in [0, π] from every other representation.
//
// Determinism:
//   - angle ≈ 0 ⇒ (0, 0, 1, 0): the axis is undefined and defaults to +z.
//   - angle ≈ π (matrix source) ⇒ axis from the symmetric part, sign from the skew part.

package convert

import (
	"log/slog"
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/euclid/matrix"
	"github.com/katalvlaran/euclid/numeric"
	"github.com/katalvlaran/euclid/rotation"
)

// nearPiSine is the sin(angle) under which, for angles past π/2, the axis is
// recovered from the symmetric part of the matrix: there the skew part
// 2·sin(angle)·u carries too few significant digits.
const nearPiSine = 1e-3

// MatrixToAxisAngle writes the axis-angle of the rotation matrix src into dst.
//
// Implementation:
//   - Stage 1: NaN / validity handling (see prepareMatrixSource).
//   - Stage 2: cos = (trace - 1)/2, skew = (m21 - m12, m02 - m20, m10 - m01) = 2·sin·u.
//   - Stage 3: angle = atan2(|skew|/2, cos); equal to acos(ClampUnit(cos)) for a
//     rotation, and well conditioned near 0 and π.
//   - Stage 4: pick the axis:
//     regular         → skew/|skew|;
//     |skew| ≈ 0, cos>0 → identity, axis (0, 0, 1);
//     near π          → axisFromSymmetricPart.
//
// Errors:
//   - wraps *matrix.NotARotationMatrixError in checked mode; dst untouched.
func MatrixToAxisAngle(src *matrix.Matrix3D, dst *rotation.AxisAngle, opts ...Option) error {
	poisoned, err := prepareMatrixSource(opMatrixToAxisAngle, src, opts)
	if err != nil {
		return err
	}
	if poisoned {
		dst.SetToNaN()
		return nil
	}
	matrixToAxisAngle(src, dst)

	return nil
}

// matrixToAxisAngle is the unchecked kernel shared with MatrixToRotationVector.
func matrixToAxisAngle(m *matrix.Matrix3D, dst *rotation.AxisAngle) {
	cos := 0.5 * (m.Trace() - 1.0)
	skew := r3.Vector{X: m.M21 - m.M12, Y: m.M02 - m.M20, Z: m.M10 - m.M01}
	n := skew.Norm()
	sin := 0.5 * n
	angle := math.Atan2(sin, cos)

	switch {
	case cos < 0 && sin < nearPiSine:
		u := axisFromSymmetricPart(m, cos)
		if u.Dot(skew) < 0 {
			u = u.Mul(-1)
		}
		if debugEnabled() {
			Logger().Debug("axis recovered from symmetric part", slog.Float64("angle", angle))
		}
		dst.Set(u.X, u.Y, u.Z, angle)
	case n <= numeric.NearZeroEpsilon:
		dst.SetToZero()
	default:
		dst.Set(skew.X/n, skew.Y/n, skew.Z/n, angle)
	}
}

// axisFromSymmetricPart recovers the unit axis of a rotation with angle near π.
//
// Implementation:
//   - The symmetric part of R is cos·I + (1 - cos)·u·uᵀ, hence
//     u·uᵀ = (sym(R) - cos·I)/(1 - cos); at cos = -1 this is (R + I)/2.
//   - The largest diagonal entry of u·uᵀ is the pivot: its square root is one
//     component, the pivot row divided by it gives the other two.
//   - The overall sign is arbitrary here; the caller aligns it with the skew part.
func axisFromSymmetricPart(m *matrix.Matrix3D, cos float64) r3.Vector {
	k := 1.0 / (1.0 - cos)
	xx := (m.M00 - cos) * k
	yy := (m.M11 - cos) * k
	zz := (m.M22 - cos) * k
	xy := 0.5 * (m.M01 + m.M10) * k
	xz := 0.5 * (m.M02 + m.M20) * k
	yz := 0.5 * (m.M12 + m.M21) * k

	var u r3.Vector
	switch {
	case xx >= yy && xx >= zz:
		u.X = math.Sqrt(math.Max(xx, 0))
		u.Y = xy / u.X
		u.Z = xz / u.X
	case yy >= zz:
		u.Y = math.Sqrt(math.Max(yy, 0))
		u.X = xy / u.Y
		u.Z = yz / u.Y
	default:
		u.Z = math.Sqrt(math.Max(zz, 0))
		u.X = xz / u.Z
		u.Y = yz / u.Z
	}

	return u.Normalize()
}

// QuaternionToAxisAngle writes the axis-angle of the quaternion src into dst.
func QuaternionToAxisAngle(src *rotation.Quaternion, dst *rotation.AxisAngle) {
	QuaternionToAxisAngleFrom(src.X, src.Y, src.Z, src.S, dst)
}

// QuaternionToAxisAngleFrom writes the axis-angle of (x, y, z, s) into dst.
//
// Implementation:
//   - Stage 1: |q|² <= NearZeroEpsilon encodes no rotation ⇒ NaN; flip the sign
//     of the whole quaternion when s < 0, so the angle is in [0, π].
//   - Stage 2: angle = 2·atan2(|v|, s), the well-conditioned form of 2·acos(ClampUnit(s/|q|)).
//   - Stage 3: |v| <= NearZeroEpsilon ⇒ identity with axis (0, 0, 1); else axis = v/|v|.
//
// Behavior highlights:
//   - The quaternion need not be normalised: both atan2 arguments scale alike.
func QuaternionToAxisAngleFrom(x, y, z, s float64, dst *rotation.AxisAngle) {
	if numeric.ContainsNaN(x, y, z, s) {
		dst.SetToNaN()
		return
	}
	if x*x+y*y+z*z+s*s <= numeric.NearZeroEpsilon {
		dst.SetToNaN()
		return
	}
	if s < 0 {
		x, y, z, s = -x, -y, -z, -s
	}
	n := numeric.Norm3(x, y, z)
	if n <= numeric.NearZeroEpsilon {
		dst.SetToZero()
		return
	}
	dst.Set(x/n, y/n, z/n, 2.0*math.Atan2(n, s))
}

// YawPitchRollToAxisAngle writes the axis-angle of src into dst (through a quaternion).
func YawPitchRollToAxisAngle(src *rotation.YawPitchRoll, dst *rotation.AxisAngle) {
	var q rotation.Quaternion
	YawPitchRollToQuaternion(src, &q)
	QuaternionToAxisAngle(&q, dst)
}

// RotationVectorToAxisAngle writes the axis-angle of the rotation vector src into dst.
// A vector with norm <= NearZeroEpsilon maps to the identity (0, 0, 1, 0).
func RotationVectorToAxisAngle(src r3.Vector, dst *rotation.AxisAngle) {
	RotationVectorToAxisAngleFrom(src.X, src.Y, src.Z, dst)
}

// RotationVectorToAxisAngleFrom is RotationVectorToAxisAngle on components.
func RotationVectorToAxisAngleFrom(rx, ry, rz float64, dst *rotation.AxisAngle) {
	if numeric.ContainsNaN(rx, ry, rz) {
		dst.SetToNaN()
		return
	}
	angle := numeric.Norm3(rx, ry, rz)
	if angle <= numeric.NearZeroEpsilon {
		dst.SetToZero()
		return
	}
	dst.Set(rx/angle, ry/angle, rz/angle, angle)
}
