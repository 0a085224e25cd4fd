// SPDX-License-Identifier: MIT

// Package euclid is an in-memory toolkit for 3D orientation: the competing
// representations of a rotation, numerically robust conversions between
// them, and predicates that classify general 3×3 matrices.
//
// What is inside?
//
//	• Representations: rotation matrix, axis-angle, unit quaternion,
//	  yaw-pitch-roll (intrinsic Z-Y-X) and rotation vector
//	• Conversions: every ordered pair, with gimbal-lock, angle ≈ 0 and
//	  angle ≈ π handling and a checked or trusted matrix source
//	• Matrix features: rotation test, rotation-scale decomposition,
//	  XY-plane (2D) test, singularity detection with typed errors
//	• Orientation: one tagged value that converts to any representation,
//	  composes, inverts and compares geometrically
//
// Everything is organized under five subpackages:
//
//	numeric/     — tolerance constants and float helpers
//	matrix/      — Matrix3D and the feature classifier
//	rotation/    — AxisAngle, Quaternion and YawPitchRoll value types
//	convert/     — the conversion engine, options and diagnostics logger
//	orientation/ — the Orientation tagged union and its dispatch table
//
// Quick example:
//
//	o := orientation.FromYawPitchRoll(rotation.YawPitchRoll{Yaw: 0.3, Pitch: 0.1})
//	var q rotation.Quaternion
//	o.GetQuaternion(&q)
//
//	go get github.com/katalvlaran/euclid
package euclid
