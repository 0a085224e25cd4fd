// SPDX-License-Identifier: MIT

// Package matrix provides the 3×3 matrix value type used by every
// orientation representation and the feature classifier that decides
// whether such a matrix is a proper rotation, a rotation-scale matrix,
// a planar (2D) rotation, or singular.
//
// What & Why:
//
//	Conversions from a matrix to angles are only meaningful when the matrix
//	is a rotation. The classifier answers that question with pure predicates
//	(IsRotationMatrix, IsRotationScaleMatrix, IsMatrix2D, IsSingular) that
//	never fail, and with assert-style CheckIf* wrappers that return typed
//	errors carrying a snapshot of the offending matrix. Callers choose the
//	checked or unchecked path; the predicates themselves stay side-effect free.
//
// Layout:
//
//	Matrix3D is row-major: M<row><col>. The zero value is the zero matrix;
//	Identity() returns I.
//
// Scale sign policy:
//
//	ExtractScale returns the column norms. When det(m) < 0 the z scale is
//	negated, so that m·diag(1/s) is always a proper rotation. At most one
//	scale is ever negative. IsRotationScaleMatrix is strict and reports false
//	for such mirrored matrices.
//
// Complexity:
//
//	Every function in this package is O(1): a fixed number of flops on nine values.
package matrix
