// SPDX-License-Identifier: MIT

// Package rotation defines the plain value types of the non-matrix
// orientation representations: AxisAngle, Quaternion and YawPitchRoll.
// A rotation vector is an r3.Vector whose direction is the axis and whose
// norm is the angle; it needs no dedicated type.
//
// Every type is a small mutable value owned by its caller. None keeps a
// reference to another value. SetToNaN poisons a value; ContainsNaN detects
// the poison. Conversions between representations live in package convert.
//
// Conventions:
//
//	AxisAngle    - unit axis (X, Y, Z) and Angle in radians. θ about a ≡ -θ about -a.
//	Quaternion   - vector part (X, Y, Z) and scalar S; q and -q are the same rotation.
//	YawPitchRoll - intrinsic Z-Y-X Euler angles: R = Rz(Yaw)·Ry(Pitch)·Rx(Roll).
package rotation
