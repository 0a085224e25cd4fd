// SPDX-License-Identifier: MIT

// Package matrix - Matrix3D value type (row-major) & in-place kernels.
//
// Purpose:
//   - Provide a fixed-size 3×3 value type with explicit row-major fields.
//   - Keep every kernel allocation-free: results are written into the receiver.
//   - Keep accessors safe: At/Set return ErrOutOfRange-style errors instead of panicking.
//
// AI-Hints:
//   - Prefer pointer receivers on hot paths; Matrix3D is 72 bytes.
//   - A rotation's inverse is its transpose: use Transpose, not Invert, when m is known to be a rotation.
//
// Complexity quicksheet:
//   - All operations are O(1).

package matrix

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/euclid/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxInvert = "Invert"
)

// ErrOutOfRange indicates that a row or column index is outside [0, 2].
var ErrOutOfRange = errors.New("matrix: index out of range")

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "/"
	_fmtRowMid   = "|"
	_fmtRowLast  = "\\"
	_fmtRowClose = "\n"
	_fmtSep      = ", "
	_fmtCell     = "%+.3E"
)

// Matrix3D is a 3×3 matrix of float64 stored row-major.
// The zero value is the zero matrix.
type Matrix3D struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix3D)(nil)

// New returns a matrix from its nine entries given row by row.
func New(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Matrix3D {
	return Matrix3D{
		M00: m00, M01: m01, M02: m02,
		M10: m10, M11: m11, M12: m12,
		M20: m20, M21: m21, M22: m22,
	}
}

// Identity returns I₃.
func Identity() Matrix3D {
	return Matrix3D{M00: 1, M11: 1, M22: 1}
}

// NewFromColumns builds a matrix whose columns are c0, c1, c2.
func NewFromColumns(c0, c1, c2 r3.Vector) Matrix3D {
	return New(
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	)
}

// Diagonal returns diag(x, y, z).
func Diagonal(x, y, z float64) Matrix3D {
	return Matrix3D{M00: x, M11: y, M22: z}
}

// Set copies other into m.
func (m *Matrix3D) Set(other *Matrix3D) { *m = *other }

// SetEntries assigns all nine entries, row by row.
func (m *Matrix3D) SetEntries(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) {
	*m = New(m00, m01, m02, m10, m11, m12, m20, m21, m22)
}

// SetIdentity resets m to I₃.
func (m *Matrix3D) SetIdentity() { *m = Identity() }

// SetToZero resets every entry to 0.
func (m *Matrix3D) SetToZero() { *m = Matrix3D{} }

// SetToNaN poisons every entry with NaN.
func (m *Matrix3D) SetToNaN() {
	nan := math.NaN()
	m.SetEntries(nan, nan, nan, nan, nan, nan, nan, nan, nan)
}

// ContainsNaN reports whether any entry is NaN.
func (m *Matrix3D) ContainsNaN() bool {
	return numeric.ContainsNaN(
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
	)
}

// Entries returns the nine entries in row-major order.
func (m *Matrix3D) Entries() [9]float64 {
	return [9]float64{
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
	}
}

// cell returns a pointer to entry (row, col) or nil when out of range.
func (m *Matrix3D) cell(row, col int) *float64 {
	switch row*3 + col {
	case 0:
		return &m.M00
	case 1:
		return &m.M01
	case 2:
		return &m.M02
	case 3:
		return &m.M10
	case 4:
		return &m.M11
	case 5:
		return &m.M12
	case 6:
		return &m.M20
	case 7:
		return &m.M21
	case 8:
		return &m.M22
	}

	return nil
}

// At returns entry (row, col).
// Errors: ErrOutOfRange when row or col is outside [0, 2].
func (m *Matrix3D) At(row, col int) (float64, error) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, fmt.Errorf("Matrix3D.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return *m.cell(row, col), nil
}

// SetAt assigns entry (row, col).
// Errors: ErrOutOfRange when row or col is outside [0, 2].
func (m *Matrix3D) SetAt(row, col int, v float64) error {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return fmt.Errorf("Matrix3D.%s(%d,%d): %w", ctxSet, row, col, ErrOutOfRange)
	}
	*m.cell(row, col) = v

	return nil
}

// Row returns row i as a vector; out-of-range yields NaNs.
func (m *Matrix3D) Row(i int) r3.Vector {
	switch i {
	case 0:
		return r3.Vector{X: m.M00, Y: m.M01, Z: m.M02}
	case 1:
		return r3.Vector{X: m.M10, Y: m.M11, Z: m.M12}
	case 2:
		return r3.Vector{X: m.M20, Y: m.M21, Z: m.M22}
	}

	return r3.Vector{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
}

// Column returns column j as a vector; out-of-range yields NaNs.
func (m *Matrix3D) Column(j int) r3.Vector {
	switch j {
	case 0:
		return r3.Vector{X: m.M00, Y: m.M10, Z: m.M20}
	case 1:
		return r3.Vector{X: m.M01, Y: m.M11, Z: m.M21}
	case 2:
		return r3.Vector{X: m.M02, Y: m.M12, Z: m.M22}
	}

	return r3.Vector{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
}

// Trace returns m00 + m11 + m22.
func (m *Matrix3D) Trace() float64 { return m.M00 + m.M11 + m.M22 }

// Determinant returns det(m) by cofactor expansion along the first row.
func (m *Matrix3D) Determinant() float64 {
	return m.M00*(m.M11*m.M22-m.M12*m.M21) -
		m.M01*(m.M10*m.M22-m.M12*m.M20) +
		m.M02*(m.M10*m.M21-m.M11*m.M20)
}

// Transpose sets m = mᵀ.
func (m *Matrix3D) Transpose() {
	m.M01, m.M10 = m.M10, m.M01
	m.M02, m.M20 = m.M20, m.M02
	m.M12, m.M21 = m.M21, m.M12
}

// Multiply sets m = m·other.
func (m *Matrix3D) Multiply(other *Matrix3D) { *m = product(m, other) }

// PreMultiply sets m = other·m.
func (m *Matrix3D) PreMultiply(other *Matrix3D) { *m = product(other, m) }

// MultiplyTransposeOther sets m = m·otherᵀ.
func (m *Matrix3D) MultiplyTransposeOther(other *Matrix3D) {
	t := *other
	t.Transpose()
	*m = product(m, &t)
}

// MultiplyTransposeThis sets m = mᵀ·other.
func (m *Matrix3D) MultiplyTransposeThis(other *Matrix3D) {
	t := *m
	t.Transpose()
	*m = product(&t, other)
}

// product returns a·b. Both operands are read before anything is written,
// so aliasing between a, b and the destination is harmless.
func product(a, b *Matrix3D) Matrix3D {
	return Matrix3D{
		M00: a.M00*b.M00 + a.M01*b.M10 + a.M02*b.M20,
		M01: a.M00*b.M01 + a.M01*b.M11 + a.M02*b.M21,
		M02: a.M00*b.M02 + a.M01*b.M12 + a.M02*b.M22,
		M10: a.M10*b.M00 + a.M11*b.M10 + a.M12*b.M20,
		M11: a.M10*b.M01 + a.M11*b.M11 + a.M12*b.M21,
		M12: a.M10*b.M02 + a.M11*b.M12 + a.M12*b.M22,
		M20: a.M20*b.M00 + a.M21*b.M10 + a.M22*b.M20,
		M21: a.M20*b.M01 + a.M21*b.M11 + a.M22*b.M21,
		M22: a.M20*b.M02 + a.M21*b.M12 + a.M22*b.M22,
	}
}

// Scale multiplies every entry by alpha.
func (m *Matrix3D) Scale(alpha float64) {
	m.M00 *= alpha
	m.M01 *= alpha
	m.M02 *= alpha
	m.M10 *= alpha
	m.M11 *= alpha
	m.M12 *= alpha
	m.M20 *= alpha
	m.M21 *= alpha
	m.M22 *= alpha
}

// ScaleColumns sets m = m·diag(s.X, s.Y, s.Z).
func (m *Matrix3D) ScaleColumns(s r3.Vector) {
	m.M00 *= s.X
	m.M10 *= s.X
	m.M20 *= s.X
	m.M01 *= s.Y
	m.M11 *= s.Y
	m.M21 *= s.Y
	m.M02 *= s.Z
	m.M12 *= s.Z
	m.M22 *= s.Z
}

// Invert sets m = m⁻¹ using the adjugate.
//
// Implementation:
//   - Stage 1: compute the determinant; reject |det| <= NearZeroEpsilon.
//   - Stage 2: write adj(m)/det into m.
//
// Errors:
//   - *SingularMatrixError (unwraps to ErrSingularMatrix); m is left untouched.
func (m *Matrix3D) Invert() error {
	det := m.Determinant()
	if numeric.IsNearZero(det, numeric.NearZeroEpsilon) {
		return matrixErrorf(ctxInvert, &SingularMatrixError{Matrix: *m, Determinant: det})
	}
	inv := 1.0 / det
	a := *m
	m.M00 = (a.M11*a.M22 - a.M12*a.M21) * inv
	m.M01 = (a.M02*a.M21 - a.M01*a.M22) * inv
	m.M02 = (a.M01*a.M12 - a.M02*a.M11) * inv
	m.M10 = (a.M12*a.M20 - a.M10*a.M22) * inv
	m.M11 = (a.M00*a.M22 - a.M02*a.M20) * inv
	m.M12 = (a.M02*a.M10 - a.M00*a.M12) * inv
	m.M20 = (a.M10*a.M21 - a.M11*a.M20) * inv
	m.M21 = (a.M01*a.M20 - a.M00*a.M21) * inv
	m.M22 = (a.M00*a.M11 - a.M01*a.M10) * inv

	return nil
}

// Transform returns m·v.
func (m *Matrix3D) Transform(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		Y: m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		Z: m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}

// InverseTransform returns mᵀ·v, which equals m⁻¹·v when m is a rotation.
func (m *Matrix3D) InverseTransform(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m.M00*v.X + m.M10*v.Y + m.M20*v.Z,
		Y: m.M01*v.X + m.M11*v.Y + m.M21*v.Z,
		Z: m.M02*v.X + m.M12*v.Y + m.M22*v.Z,
	}
}

// Normalize re-orthonormalises m in place (Gram–Schmidt on the first two
// columns, third column = c0 × c1). Use it to remove drift accumulated by
// repeated products of rotations; the result is always a proper rotation
// when the first two columns are independent.
func (m *Matrix3D) Normalize() {
	c0 := m.Column(0).Normalize()
	c1 := m.Column(1)
	c1 = c1.Sub(c0.Mul(c0.Dot(c1))).Normalize()
	c2 := c0.Cross(c1)
	*m = NewFromColumns(c0, c1, c2)
}

// EpsilonEquals reports entry-wise |m - other| <= eps.
func (m *Matrix3D) EpsilonEquals(other *Matrix3D, eps float64) bool {
	a, b := m.Entries(), other.Entries()
	for i := range a {
		if !numeric.EpsilonEquals(a[i], b[i], eps) {
			return false
		}
	}

	return true
}

// String renders the matrix over three lines.
func (m *Matrix3D) String() string {
	var sb strings.Builder
	opens := [3]string{_fmtRowOpen, _fmtRowMid, _fmtRowLast}
	closes := [3]string{_fmtRowLast, _fmtRowMid, _fmtRowOpen}
	for i := 0; i < 3; i++ {
		r := m.Row(i)
		sb.WriteString(opens[i])
		sb.WriteString(fmt.Sprintf(_fmtCell, r.X))
		sb.WriteString(_fmtSep)
		sb.WriteString(fmt.Sprintf(_fmtCell, r.Y))
		sb.WriteString(_fmtSep)
		sb.WriteString(fmt.Sprintf(_fmtCell, r.Z))
		sb.WriteString(closes[i])
		if i < 2 {
			sb.WriteString(_fmtRowClose)
		}
	}

	return sb.String()
}
