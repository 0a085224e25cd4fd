// SPDX-License-Identifier: MIT

package orientation

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/euclid/convert"
	"github.com/katalvlaran/euclid/matrix"
	"github.com/katalvlaran/euclid/numeric"
	"github.com/katalvlaran/euclid/rotation"
)

// Operation tags for uniform error wrapping.
const (
	opFromMatrix           = "FromMatrix"
	opCheckIfOrientation2D = "CheckIfOrientation2D"
)

const panicInvalidKind = "orientation: invalid Kind"

// orientationErrorf wraps err with an operation tag, preserving it via %w.
func orientationErrorf(tag string, err error) error {
	return fmt.Errorf("orientation.%s: %w", tag, err)
}

// mustKind panics on a Kind outside the union (programmer error).
func mustKind(k Kind) {
	if !k.Valid() {
		panic(panicInvalidKind)
	}
}

// Orientation is one 3D orientation stored in the representation named by
// its Kind. The zero value is the matrix-backed zero matrix, which is not a
// rotation: build values with NewIdentity or the From* constructors.
type Orientation struct {
	kind Kind
	m    matrix.Matrix3D
	aa   rotation.AxisAngle
	q    rotation.Quaternion
	ypr  rotation.YawPitchRoll
}

// NewIdentity returns the identity orientation stored as kind.
// Panics if kind is not valid.
func NewIdentity(kind Kind) Orientation {
	mustKind(kind)
	o := Orientation{kind: kind}
	o.SetToZero()

	return o
}

// FromMatrix returns a matrix-backed Orientation.
//
// Errors:
//   - wraps *matrix.NotARotationMatrixError when m is not a rotation within
//     numeric.DefaultEpsilon. A matrix containing NaN is accepted as a
//     poisoned orientation.
func FromMatrix(m *matrix.Matrix3D) (Orientation, error) {
	if !m.ContainsNaN() {
		if err := matrix.CheckIfRotationMatrix(m, numeric.DefaultEpsilon); err != nil {
			return Orientation{}, orientationErrorf(opFromMatrix, err)
		}
	}

	return Orientation{kind: KindMatrix, m: *m}, nil
}

// FromAxisAngle returns an axis-angle-backed Orientation.
func FromAxisAngle(aa rotation.AxisAngle) Orientation {
	return Orientation{kind: KindAxisAngle, aa: aa}
}

// FromQuaternion returns a quaternion-backed Orientation. q is stored as
// given; conversions and Transform are insensitive to its norm.
func FromQuaternion(q rotation.Quaternion) Orientation {
	return Orientation{kind: KindQuaternion, q: q}
}

// FromYawPitchRoll returns a yaw-pitch-roll-backed Orientation.
func FromYawPitchRoll(ypr rotation.YawPitchRoll) Orientation {
	return Orientation{kind: KindYawPitchRoll, ypr: ypr}
}

// FromRotationVector returns the orientation of the rotation vector v stored as kind.
// Panics if kind is not valid.
func FromRotationVector(kind Kind, v r3.Vector) Orientation {
	mustKind(kind)
	o := Orientation{kind: kind}
	switch kind {
	case KindMatrix:
		convert.RotationVectorToMatrix(v, &o.m)
	case KindAxisAngle:
		convert.RotationVectorToAxisAngle(v, &o.aa)
	case KindQuaternion:
		convert.RotationVectorToQuaternion(v, &o.q)
	case KindYawPitchRoll:
		convert.RotationVectorToYawPitchRoll(v, &o.ypr)
	}

	return o
}

// Kind returns the stored representation.
func (o *Orientation) Kind() Kind { return o.kind }

// Set copies src into o, converting to o's Kind.
func (o *Orientation) Set(src *Orientation) {
	converters[src.kind][o.kind](src, o)
}

// As returns a copy of o stored as kind.
// Panics if kind is not valid.
func (o *Orientation) As(kind Kind) Orientation {
	mustKind(kind)

	return o.materialize(kind)
}

// GetMatrix writes the rotation matrix of o into dst.
func (o *Orientation) GetMatrix(dst *matrix.Matrix3D) {
	tmp := o.materialize(KindMatrix)
	*dst = tmp.m
}

// GetAxisAngle writes the axis-angle of o into dst.
func (o *Orientation) GetAxisAngle(dst *rotation.AxisAngle) {
	tmp := o.materialize(KindAxisAngle)
	*dst = tmp.aa
}

// GetQuaternion writes the quaternion of o into dst.
func (o *Orientation) GetQuaternion(dst *rotation.Quaternion) {
	tmp := o.materialize(KindQuaternion)
	*dst = tmp.q
}

// GetYawPitchRoll writes the yaw-pitch-roll of o into dst.
func (o *Orientation) GetYawPitchRoll(dst *rotation.YawPitchRoll) {
	tmp := o.materialize(KindYawPitchRoll)
	*dst = tmp.ypr
}

// RotationVector returns the rotation vector of o.
func (o *Orientation) RotationVector() r3.Vector {
	var v r3.Vector
	switch o.kind {
	case KindMatrix:
		_ = convert.MatrixToRotationVector(&o.m, &v, trusted) // nil under trusted
	case KindAxisAngle:
		convert.AxisAngleToRotationVector(&o.aa, &v)
	case KindQuaternion:
		convert.QuaternionToRotationVector(&o.q, &v)
	case KindYawPitchRoll:
		convert.YawPitchRollToRotationVector(&o.ypr, &v)
	}

	return v
}

// yawPitchRoll returns the Euler triple of o without a copy for the YPR kind.
func (o *Orientation) yawPitchRoll() rotation.YawPitchRoll {
	if o.kind == KindYawPitchRoll {
		return o.ypr
	}
	var ypr rotation.YawPitchRoll
	o.GetYawPitchRoll(&ypr)

	return ypr
}

// Yaw returns the Z-Y-X yaw of o.
func (o *Orientation) Yaw() float64 { return o.yawPitchRoll().Yaw }

// Pitch returns the Z-Y-X pitch of o.
func (o *Orientation) Pitch() float64 { return o.yawPitchRoll().Pitch }

// Roll returns the Z-Y-X roll of o (0 at gimbal lock).
func (o *Orientation) Roll() float64 { return o.yawPitchRoll().Roll }

// quaternion returns the quaternion of o without a copy for the quaternion kind.
func (o *Orientation) quaternion() rotation.Quaternion {
	if o.kind == KindQuaternion {
		return o.q
	}
	var q rotation.Quaternion
	o.GetQuaternion(&q)

	return q
}

// Multiply sets o = o·other: other is applied first, then o. o keeps its Kind.
//
// Implementation:
//   - matrix-backed: 3×3 product.
//   - otherwise: quaternion product, converted back when o is not
//     quaternion-backed. A quaternion-backed result keeps its sign.
func (o *Orientation) Multiply(other *Orientation) {
	if o.kind == KindMatrix {
		var m matrix.Matrix3D
		other.GetMatrix(&m)
		o.m.Multiply(&m)
		return
	}
	q, p := o.quaternion(), other.quaternion()
	q.Multiply(&p)
	o.Set(&Orientation{kind: KindQuaternion, q: q})
}

// PreMultiply sets o = other·o: o is applied first, then other.
func (o *Orientation) PreMultiply(other *Orientation) {
	if o.kind == KindMatrix {
		var m matrix.Matrix3D
		other.GetMatrix(&m)
		o.m.PreMultiply(&m)
		return
	}
	q, p := o.quaternion(), other.quaternion()
	q.PreMultiply(&p)
	o.Set(&Orientation{kind: KindQuaternion, q: q})
}

// Invert sets o = o⁻¹.
func (o *Orientation) Invert() {
	switch o.kind {
	case KindMatrix:
		o.m.Transpose()
	case KindAxisAngle:
		o.aa.Invert()
	case KindQuaternion:
		o.q.Conjugate()
	case KindYawPitchRoll:
		q := o.quaternion()
		q.Conjugate()
		convert.QuaternionToYawPitchRoll(&q, &o.ypr)
	}
}

// Inverse returns o⁻¹ with the same Kind.
func (o *Orientation) Inverse() Orientation {
	inv := *o
	inv.Invert()

	return inv
}

// Transform rotates v by o.
func (o *Orientation) Transform(v r3.Vector) r3.Vector {
	if o.kind == KindMatrix {
		return o.m.Transform(v)
	}
	q := o.quaternion()
	q.Normalize()

	return q.Transform(v)
}

// InverseTransform rotates v by o⁻¹.
func (o *Orientation) InverseTransform(v r3.Vector) r3.Vector {
	if o.kind == KindMatrix {
		return o.m.InverseTransform(v)
	}
	q := o.quaternion()
	q.Normalize()
	q.Conjugate()

	return q.Transform(v)
}

// Angle returns the magnitude of o in [0, π].
func (o *Orientation) Angle() float64 {
	q := o.quaternion()
	q.Normalize()

	return q.Angle()
}

// Distance returns the angle in [0, π] of the relative rotation o⁻¹·other.
//
// Implementation:
//   - Stage 1: unit quaternions a, b of o and other; b flipped when a·b < 0.
//   - Stage 2: θ = 4·atan2(|a - b|, |a + b|): the chord form of 2·acos(|a·b|),
//     accurate near 0 and π and exactly symmetric in its arguments.
//
// Behavior highlights:
//   - NaN in either orientation yields NaN.
func (o *Orientation) Distance(other *Orientation) float64 {
	a, b := o.quaternion(), other.quaternion()
	a.Normalize()
	b.Normalize()
	if a.Dot(&b) < 0 {
		b.Negate()
	}
	diff := rotation.Quaternion{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, S: a.S - b.S}
	sum := rotation.Quaternion{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, S: a.S + b.S}

	return 4 * math.Atan2(diff.Norm(), sum.Norm())
}

// GeometricallyEquals reports whether the angle of o⁻¹·other is at most eps.
// It is reflexive, symmetric and monotone in eps; NaN never equals anything.
func (o *Orientation) GeometricallyEquals(other *Orientation, eps float64) bool {
	return o.Distance(other) <= eps
}

// SetToZero sets o to the identity, keeping its Kind.
func (o *Orientation) SetToZero() {
	switch o.kind {
	case KindMatrix:
		o.m.SetIdentity()
	case KindAxisAngle:
		o.aa.SetToZero()
	case KindQuaternion:
		o.q.SetToZero()
	case KindYawPitchRoll:
		o.ypr.SetToZero()
	}
}

// SetToNaN poisons o, keeping its Kind.
func (o *Orientation) SetToNaN() {
	switch o.kind {
	case KindMatrix:
		o.m.SetToNaN()
	case KindAxisAngle:
		o.aa.SetToNaN()
	case KindQuaternion:
		o.q.SetToNaN()
	case KindYawPitchRoll:
		o.ypr.SetToNaN()
	}
}

// ContainsNaN reports whether the stored representation holds a NaN.
func (o *Orientation) ContainsNaN() bool {
	switch o.kind {
	case KindMatrix:
		return o.m.ContainsNaN()
	case KindAxisAngle:
		return o.aa.ContainsNaN()
	case KindQuaternion:
		return o.q.ContainsNaN()
	default:
		return o.ypr.ContainsNaN()
	}
}

// Interpolate returns the spherical interpolation from a (alpha = 0) to
// b (alpha = 1) along the shortest arc, stored with a's Kind.
func Interpolate(a, b *Orientation, alpha float64) Orientation {
	qa, qb := a.quaternion(), b.quaternion()
	var q rotation.Quaternion
	convert.QuaternionSlerp(&qa, &qb, alpha, &q)

	out := Orientation{kind: a.kind}
	out.Set(&Orientation{kind: KindQuaternion, q: q})

	return out
}

// CheckIfOrientation2D returns an error unless o is a rotation about z only.
//
// Errors:
//   - wraps *matrix.NotAMatrix2DError carrying the rotation matrix of o.
func (o *Orientation) CheckIfOrientation2D(eps float64) error {
	var m matrix.Matrix3D
	o.GetMatrix(&m)
	if err := matrix.CheckIfMatrix2D(&m, eps); err != nil {
		return orientationErrorf(opCheckIfOrientation2D, err)
	}

	return nil
}

func (o Orientation) String() string {
	switch o.kind {
	case KindMatrix:
		return "matrix:\n" + o.m.String()
	case KindAxisAngle:
		return "axis-angle: " + o.aa.String()
	case KindQuaternion:
		return "quaternion: " + o.q.String()
	case KindYawPitchRoll:
		return o.ypr.String()
	default:
		return o.kind.String()
	}
}
