// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (random rotations, reflections, shears).
//   • Build rotations independently of the conversion engine, through mgl64.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/euclid/matrix"
)

// fromMgl converts a column-major mgl64.Mat3 into a row-major Matrix3D.
func fromMgl(m mgl64.Mat3) matrix.Matrix3D {
	return matrix.New(
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2),
	)
}

// RandomRotation RETURNS Rz(yaw)·Ry(pitch)·Rx(roll) for uniformly drawn angles.
// Notes:
//   - Deterministic for a given *rand.Rand seed.
func RandomRotation(rng *rand.Rand) matrix.Matrix3D {
	yaw := (rng.Float64()*2 - 1) * math.Pi
	pitch := (rng.Float64()*2 - 1) * math.Pi / 2
	roll := (rng.Float64()*2 - 1) * math.Pi
	m := mgl64.Rotate3DZ(yaw).Mul3(mgl64.Rotate3DY(pitch)).Mul3(mgl64.Rotate3DX(roll))

	return fromMgl(m)
}

// Reflection RETURNS diag(1, 1, -1): orthonormal with det = -1.
func Reflection() matrix.Matrix3D { return matrix.Diagonal(1, 1, -1) }

// Shear RETURNS a unit-determinant shear in the XY-plane.
func Shear() matrix.Matrix3D { return matrix.New(1, 0.5, 0, 0, 1, 0, 0, 0, 1) }

// newRNG RETURNS a seeded generator so failures are reproducible.
func newRNG(t *testing.T) *rand.Rand {
	t.Helper()

	return rand.New(rand.NewSource(20260418))
}
