// SPDX-License-Identifier: MIT

// Package orientation provides Orientation, a closed tagged union over the
// four stored 3D orientation representations: rotation matrix, axis-angle,
// quaternion and yaw-pitch-roll.
//
// Purpose:
//   - Hold one orientation in the representation the caller chose (its Kind)
//     and materialise it as any other representation on demand.
//   - Compose, invert and apply orientations regardless of their Kind.
//   - Compare orientations geometrically: the angle of this⁻¹·other, never
//     component-wise (q and -q, or two gimbal-locked Euler triples, are equal).
//
// Dispatch:
//   - A single table converters[src][dst] of conversion functions indexed by
//     Kind replaces per-representation methods. Every entry delegates to
//     package convert.
//
// Invariants:
//   - A matrix-backed Orientation holds a rotation matrix: FromMatrix rejects
//     anything else, so internal conversions run unchecked.
//   - Quaternion-backed composition keeps the sign its operands produce.
//
// Determinism:
//   - Pure value semantics. Orientation is safe to copy; methods never share
//     state between values.
//
// AI-Hints:
//   - Prefer GeometricallyEquals over comparing Get* outputs field by field.
//   - Pick KindQuaternion for long composition chains: it is cheapest and
//     cannot drift out of SO(3) beyond a renormalisation.
package orientation
