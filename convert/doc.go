// SPDX-License-Identifier: MIT

// Package convert is the conversion engine between the five orientation
// representations: rotation matrix (matrix.Matrix3D), axis-angle
// (rotation.AxisAngle), unit quaternion (rotation.Quaternion), yaw-pitch-roll
// (rotation.YawPitchRoll) and rotation vector (r3.Vector).
//
// What & Why:
//
//	One function per ordered pair, named <Src>To<Dst>, grouped in files by
//	destination. Every function writes into a caller-owned destination and
//	never retains its input. Sources that are naturally primitive also have
//	a ...From variant taking plain float64 components.
//
// Numeric policy:
//   - Identity maps to the canonical identity of every representation, exactly.
//   - Any NaN component in the source yields an all-NaN destination; no error.
//   - Matrix sources are validated with matrix.CheckIfRotationMatrix unless
//     WithUnchecked is given; a rejected input leaves dst untouched and
//     returns an error unwrapping to matrix.ErrNotARotationMatrix.
//   - Singular configurations follow fixed conventions:
//     angle ≈ 0      → axis (0, 0, 1), rotation vector exactly zero;
//     angle ≈ π      → axis recovered from the symmetric part of the matrix;
//     |pitch| ≈ π/2  → roll = 0 and the coupled angle is assigned to yaw.
//   - Matrix → quaternion returns a non-negative scalar part. Composition in
//     other packages never re-canonicalises the sign.
//
// Round-trip accuracy:
//
//	A → B → A reproduces the original rotation within 1e-9 rad away from the
//	singular configurations above and within numeric.SingularityEpsilon inside
//	their neighbourhoods.
//
// Concurrency:
//
//	All conversions are pure. The only package state is the logger, stored atomically.
package convert
