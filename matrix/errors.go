// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors and structured validation failures.
// Every validation failure returned by this package is one of the structured
// error types below; each unwraps to its package-level sentinel so callers can
// match with errors.Is and inspect the matrix snapshot with errors.As.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with a tag via fmt.Errorf("%s: %w")
// so that errors.Is / errors.As still reach the structured value.

var (
	// ErrNotARotationMatrix signals that mᵀm ≉ I or det(m) ≉ +1 within eps.
	ErrNotARotationMatrix = errors.New("matrix: not a rotation matrix")

	// ErrNotARotationScaleMatrix signals that m is not R·diag(s) with R a
	// proper rotation and s strictly positive.
	ErrNotARotationScaleMatrix = errors.New("matrix: not a rotation-scale matrix")

	// ErrNotAMatrix2D signals out-of-plane components in a matrix required to
	// act on the XY-plane only.
	ErrNotAMatrix2D = errors.New("matrix: not a 2D matrix")

	// ErrSingularMatrix signals a (near-)zero determinant where a non-zero one is required.
	ErrSingularMatrix = errors.New("matrix: singular matrix")
)

// NotARotationMatrixError carries the matrix that failed IsRotationMatrix.
type NotARotationMatrixError struct {
	Matrix Matrix3D // snapshot of the rejected input
}

func (e *NotARotationMatrixError) Error() string {
	return fmt.Sprintf("%v:\n%s", ErrNotARotationMatrix, e.Matrix.String())
}

// Unwrap exposes ErrNotARotationMatrix to errors.Is.
func (e *NotARotationMatrixError) Unwrap() error { return ErrNotARotationMatrix }

// NotARotationScaleMatrixError carries the matrix that failed IsRotationScaleMatrix.
type NotARotationScaleMatrixError struct {
	Matrix Matrix3D
}

func (e *NotARotationScaleMatrixError) Error() string {
	return fmt.Sprintf("%v:\n%s", ErrNotARotationScaleMatrix, e.Matrix.String())
}

// Unwrap exposes ErrNotARotationScaleMatrix to errors.Is.
func (e *NotARotationScaleMatrixError) Unwrap() error { return ErrNotARotationScaleMatrix }

// NotAMatrix2DError carries the matrix that failed IsMatrix2D.
type NotAMatrix2DError struct {
	Matrix Matrix3D
}

func (e *NotAMatrix2DError) Error() string {
	return fmt.Sprintf("%v:\n%s", ErrNotAMatrix2D, e.Matrix.String())
}

// Unwrap exposes ErrNotAMatrix2D to errors.Is.
func (e *NotAMatrix2DError) Unwrap() error { return ErrNotAMatrix2D }

// SingularMatrixError carries the matrix whose determinant vanished.
type SingularMatrixError struct {
	Matrix      Matrix3D
	Determinant float64
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("%v (det=%g):\n%s", ErrSingularMatrix, e.Determinant, e.Matrix.String())
}

// Unwrap exposes ErrSingularMatrix to errors.Is.
func (e *SingularMatrixError) Unwrap() error { return ErrSingularMatrix }

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
