// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/euclid/numeric"
)

// Quaternion is a unit quaternion with vector part (X, Y, Z) and scalar part S.
// q and -q describe the same rotation (double cover); the products below keep
// whichever sign the operands carry.
type Quaternion struct {
	X, Y, Z float64 // vector part
	S       float64 // scalar part
}

// NewQuaternion returns the identity (0, 0, 0, 1).
func NewQuaternion() Quaternion { return Quaternion{S: 1} }

// QuaternionFromNumber converts a gonum quaternion (Real, Imag, Jmag, Kmag).
func QuaternionFromNumber(n quat.Number) Quaternion {
	return Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, S: n.Real}
}

// Number returns q as a gonum quaternion.
func (q *Quaternion) Number() quat.Number {
	return quat.Number{Real: q.S, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// Set assigns all four components.
func (q *Quaternion) Set(x, y, z, s float64) { q.X, q.Y, q.Z, q.S = x, y, z, s }

// SetToZero resets to the identity.
func (q *Quaternion) SetToZero() { *q = NewQuaternion() }

// SetToNaN poisons every component.
func (q *Quaternion) SetToNaN() {
	nan := math.NaN()
	q.Set(nan, nan, nan, nan)
}

// ContainsNaN reports whether any component is NaN.
func (q *Quaternion) ContainsNaN() bool { return numeric.ContainsNaN(q.X, q.Y, q.Z, q.S) }

// Vector returns the vector part.
func (q *Quaternion) Vector() r3.Vector { return r3.Vector{X: q.X, Y: q.Y, Z: q.Z} }

// Norm returns |q|.
func (q *Quaternion) Norm() float64 { return quat.Abs(q.Number()) }

// Normalize rescales q to unit norm. |q|² <= NearZeroEpsilon resets q to NaN:
// such a quaternion does not encode any rotation. The cutoff is the one every
// quaternion-source conversion applies.
func (q *Quaternion) Normalize() {
	if q.ContainsNaN() {
		return
	}
	n := q.Norm()
	if n*n <= numeric.NearZeroEpsilon {
		q.SetToNaN()
		return
	}
	*q = QuaternionFromNumber(quat.Scale(1/n, q.Number()))
}

// Negate flips the sign of every component; the rotation is unchanged.
func (q *Quaternion) Negate() { q.X, q.Y, q.Z, q.S = -q.X, -q.Y, -q.Z, -q.S }

// NormalizeAndLimitToPi normalises q and flips its sign when S < 0 so that
// the encoded angle lies in [0, π].
func (q *Quaternion) NormalizeAndLimitToPi() {
	q.Normalize()
	if q.S < 0 {
		q.Negate()
	}
}

// Conjugate sets q = q*, the inverse of a unit quaternion.
func (q *Quaternion) Conjugate() { *q = QuaternionFromNumber(quat.Conj(q.Number())) }

// Multiply sets q = q·other (apply other first, then q).
func (q *Quaternion) Multiply(other *Quaternion) {
	*q = QuaternionFromNumber(quat.Mul(q.Number(), other.Number()))
}

// PreMultiply sets q = other·q.
func (q *Quaternion) PreMultiply(other *Quaternion) {
	*q = QuaternionFromNumber(quat.Mul(other.Number(), q.Number()))
}

// MultiplyConjugateThis sets q = q*·other, the rotation taking q to other.
func (q *Quaternion) MultiplyConjugateThis(other *Quaternion) {
	*q = QuaternionFromNumber(quat.Mul(quat.Conj(q.Number()), other.Number()))
}

// Dot returns the 4D dot product of q and other.
func (q *Quaternion) Dot(other *Quaternion) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.S*other.S
}

// Angle returns the rotation angle in [0, π] encoded by the unit quaternion q.
//
// Implementation:
//   - 2·atan2(|v|, |s|) is well conditioned near both 0 and π, unlike 2·acos(|s|).
func (q *Quaternion) Angle() float64 {
	return 2 * math.Atan2(numeric.Norm3(q.X, q.Y, q.Z), math.Abs(q.S))
}

// Transform rotates v by q: q·(0, v)·q*.
func (q *Quaternion) Transform(v r3.Vector) r3.Vector {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	n := q.Number()
	r := quat.Mul(quat.Mul(n, p), quat.Conj(n))

	return r3.Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// EpsilonEquals compares component-wise, without identifying q with -q.
func (q *Quaternion) EpsilonEquals(other *Quaternion, eps float64) bool {
	return numeric.EpsilonEquals(q.X, other.X, eps) &&
		numeric.EpsilonEquals(q.Y, other.Y, eps) &&
		numeric.EpsilonEquals(q.Z, other.Z, eps) &&
		numeric.EpsilonEquals(q.S, other.S, eps)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%+.6f, %+.6f, %+.6f, %+.6f)", q.X, q.Y, q.Z, q.S)
}
