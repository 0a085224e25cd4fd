// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for 3×3 structural checks.
//   - Keep conversions minimal by delegating rotation/rotation-scale/2D/singular checks here.
//   - Predicates (Is*) never fail; assertions (CheckIf*) return structured errors.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - NaN entries make every Is* predicate false (comparisons with NaN fail).
//
// AI-Hints:
//   - Use IsRotationMatrix before deriving angles from a matrix; use CheckIfRotationMatrix
//     at API boundaries that must reject malformed input.
//   - Use DecomposeRotationScale to split m = R·diag(s) losslessly.

package matrix

import (
	"math"

	"github.com/golang/geo/r3"
)

// Operation tags for uniform error wrapping.
const (
	opCheckRotation      = "CheckIfRotationMatrix"
	opCheckRotationScale = "CheckIfRotationScaleMatrix"
	opCheckMatrix2D      = "CheckIfMatrix2D"
	opCheckNotSingular   = "CheckIfNotSingular"
	opDecompose          = "DecomposeRotationScale"
)

// IsRotationMatrix reports whether mᵀm ≈ I and det(m) ≈ +1, both within eps.
//
// Implementation:
//   - Stage 1: the three column norms squared must be 1 within eps.
//   - Stage 2: the three pairwise column dot products must be 0 within eps.
//   - Stage 3: det(m) must be +1 within eps (rejects reflections).
//
// Behavior highlights:
//   - Reflections (det = -1), shears and scaled rows/columns are rejected.
//   - NaN entries yield false.
//
// Complexity: O(1).
func IsRotationMatrix(m *Matrix3D, eps float64) bool {
	c0, c1, c2 := m.Column(0), m.Column(1), m.Column(2)

	// Stage 1: unit columns (diagonal of mᵀm).
	if !(math.Abs(c0.Norm2()-1) <= eps && math.Abs(c1.Norm2()-1) <= eps && math.Abs(c2.Norm2()-1) <= eps) {
		return false
	}
	// Stage 2: mutually orthogonal columns (off-diagonal of mᵀm).
	if !(math.Abs(c0.Dot(c1)) <= eps && math.Abs(c0.Dot(c2)) <= eps && math.Abs(c1.Dot(c2)) <= eps) {
		return false
	}

	// Stage 3: proper rotation.
	return math.Abs(m.Determinant()-1) <= eps
}

// IsRotationScaleMatrix reports whether m = R·diag(s) with R a proper rotation
// and every scale strictly positive (greater than eps).
//
// Implementation:
//   - Stage 1: column norms are the candidate scales; any <= eps rejects.
//   - Stage 2: normalise the columns and run IsRotationMatrix on the result.
//
// Behavior highlights:
//   - A negative scale (mirror) makes det(R) = -1 and therefore yields false.
//   - A matrix with non-orthogonal columns (shear) yields false regardless of scale.
func IsRotationScaleMatrix(m *Matrix3D, eps float64) bool {
	c0, c1, c2 := m.Column(0), m.Column(1), m.Column(2)
	n0, n1, n2 := c0.Norm(), c1.Norm(), c2.Norm()
	if !(n0 > eps && n1 > eps && n2 > eps) {
		return false
	}
	r := NewFromColumns(c0.Mul(1/n0), c1.Mul(1/n1), c2.Mul(1/n2))

	return IsRotationMatrix(&r, eps)
}

// ExtractScale returns the column norms of m, signed so that m·diag(1/s)
// keeps det = +1.
//
// Sign policy:
//   - All three scales are magnitudes when det(m) >= 0.
//   - When det(m) < 0 exactly one scale is negated: the z scale. The x and y
//     scales are always non-negative.
//
// Behavior highlights:
//   - NaN entries propagate to NaN scales.
//   - No validation: callers wanting a guarantee use DecomposeRotationScale.
func ExtractScale(m *Matrix3D) r3.Vector {
	s := r3.Vector{X: m.Column(0).Norm(), Y: m.Column(1).Norm(), Z: m.Column(2).Norm()}
	if m.Determinant() < 0 {
		s.Z = -s.Z
	}

	return s
}

// DecomposeRotationScale splits m into a proper rotation R and a scale s with
// m = R·diag(s), following the ExtractScale sign policy.
//
// Implementation:
//   - Stage 1: s = ExtractScale(m); a scale with |s_i| <= eps is singular.
//   - Stage 2: R = m·diag(1/s); R must pass IsRotationMatrix(eps).
//
// Errors:
//   - *SingularMatrixError when a scale vanishes.
//   - *NotARotationScaleMatrixError when the columns are not orthogonal.
func DecomposeRotationScale(m *Matrix3D, eps float64) (Matrix3D, r3.Vector, error) {
	s := ExtractScale(m)
	if math.Abs(s.X) <= eps || math.Abs(s.Y) <= eps || math.Abs(s.Z) <= eps {
		return Matrix3D{}, r3.Vector{}, matrixErrorf(opDecompose, &SingularMatrixError{Matrix: *m, Determinant: m.Determinant()})
	}
	r := *m
	r.ScaleColumns(r3.Vector{X: 1 / s.X, Y: 1 / s.Y, Z: 1 / s.Z})
	if !IsRotationMatrix(&r, eps) {
		return Matrix3D{}, r3.Vector{}, matrixErrorf(opDecompose, &NotARotationScaleMatrixError{Matrix: *m})
	}

	return r, s, nil
}

// IsMatrix2D reports whether m only acts on the XY-plane:
// m02, m12, m20, m21 ≈ 0 and m22 ≈ 1, within eps.
func IsMatrix2D(m *Matrix3D, eps float64) bool {
	return math.Abs(m.M02) <= eps && math.Abs(m.M12) <= eps &&
		math.Abs(m.M20) <= eps && math.Abs(m.M21) <= eps &&
		math.Abs(m.M22-1) <= eps
}

// IsSingular reports whether |det(m)| <= eps. NaN entries yield false.
func IsSingular(m *Matrix3D, eps float64) bool {
	return math.Abs(m.Determinant()) <= eps
}

// CheckIfRotationMatrix returns nil when IsRotationMatrix(m, eps) holds.
// Errors: *NotARotationMatrixError (unwraps to ErrNotARotationMatrix).
func CheckIfRotationMatrix(m *Matrix3D, eps float64) error {
	if IsRotationMatrix(m, eps) {
		return nil
	}

	return matrixErrorf(opCheckRotation, &NotARotationMatrixError{Matrix: *m})
}

// CheckIfRotationScaleMatrix returns nil when IsRotationScaleMatrix(m, eps) holds.
// Errors: *NotARotationScaleMatrixError (unwraps to ErrNotARotationScaleMatrix).
func CheckIfRotationScaleMatrix(m *Matrix3D, eps float64) error {
	if IsRotationScaleMatrix(m, eps) {
		return nil
	}

	return matrixErrorf(opCheckRotationScale, &NotARotationScaleMatrixError{Matrix: *m})
}

// CheckIfMatrix2D returns nil when IsMatrix2D(m, eps) holds.
// Errors: *NotAMatrix2DError (unwraps to ErrNotAMatrix2D).
func CheckIfMatrix2D(m *Matrix3D, eps float64) error {
	if IsMatrix2D(m, eps) {
		return nil
	}

	return matrixErrorf(opCheckMatrix2D, &NotAMatrix2DError{Matrix: *m})
}

// CheckIfNotSingular returns nil when |det(m)| > eps.
// Errors: *SingularMatrixError (unwraps to ErrSingularMatrix).
func CheckIfNotSingular(m *Matrix3D, eps float64) error {
	if !IsSingular(m, eps) {
		return nil
	}

	return matrixErrorf(opCheckNotSingular, &SingularMatrixError{Matrix: *m, Determinant: m.Determinant()})
}
