// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/euclid/numeric"
)

// AxisAngle is a rotation of Angle radians about the unit axis (X, Y, Z).
// The zero value is not a valid rotation; use NewAxisAngle or SetToZero.
type AxisAngle struct {
	X, Y, Z float64 // axis, unit length unless Angle ≈ 0
	Angle   float64 // radians
}

// NewAxisAngle returns the identity axis-angle: angle 0 about +z.
func NewAxisAngle() AxisAngle { return AxisAngle{Z: 1} }

// NewAxisAngleFrom returns angle radians about axis. The axis is stored as given.
func NewAxisAngleFrom(axis r3.Vector, angle float64) AxisAngle {
	return AxisAngle{X: axis.X, Y: axis.Y, Z: axis.Z, Angle: angle}
}

// Axis returns the axis as a vector.
func (a *AxisAngle) Axis() r3.Vector { return r3.Vector{X: a.X, Y: a.Y, Z: a.Z} }

// Set assigns all four components.
func (a *AxisAngle) Set(x, y, z, angle float64) {
	a.X, a.Y, a.Z, a.Angle = x, y, z, angle
}

// SetToZero resets to the identity: angle 0 about +z.
func (a *AxisAngle) SetToZero() { *a = NewAxisAngle() }

// SetToNaN poisons every component.
func (a *AxisAngle) SetToNaN() {
	nan := math.NaN()
	a.Set(nan, nan, nan, nan)
}

// ContainsNaN reports whether any component is NaN.
func (a *AxisAngle) ContainsNaN() bool { return numeric.ContainsNaN(a.X, a.Y, a.Z, a.Angle) }

// IsZeroOrientation reports whether the rotation angle is within eps of 0 (mod 2π).
func (a *AxisAngle) IsZeroOrientation(eps float64) bool {
	return math.Abs(numeric.ShiftAngle(a.Angle)) <= eps
}

// Normalize rescales the axis to unit length. An axis shorter than
// NearZeroEpsilon cannot be normalised and leaves the value untouched.
func (a *AxisAngle) Normalize() {
	if a.ContainsNaN() {
		return
	}
	n := numeric.Norm3(a.X, a.Y, a.Z)
	if n <= numeric.NearZeroEpsilon {
		return
	}
	a.X, a.Y, a.Z = a.X/n, a.Y/n, a.Z/n
}

// Invert negates the angle, keeping the axis.
func (a *AxisAngle) Invert() { a.Angle = -a.Angle }

// EpsilonEquals compares component-wise. Prefer orientation.GeometricallyEquals
// for rotation equality: θ about a and -θ about -a are component-wise different.
func (a *AxisAngle) EpsilonEquals(other *AxisAngle, eps float64) bool {
	return numeric.EpsilonEquals(a.X, other.X, eps) &&
		numeric.EpsilonEquals(a.Y, other.Y, eps) &&
		numeric.EpsilonEquals(a.Z, other.Z, eps) &&
		numeric.EpsilonEquals(a.Angle, other.Angle, eps)
}

func (a AxisAngle) String() string {
	return fmt.Sprintf("(%+.6f, %+.6f, %+.6f, %+.6f)", a.X, a.Y, a.Z, a.Angle)
}
