// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Matrix3D kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/euclid/matrix"
	"github.com/katalvlaran/euclid/numeric"
)

// TestAtSetAt covers in-range access and ErrOutOfRange on both accessors.
func TestAtSetAt(t *testing.T) {
	t.Parallel()

	m := matrix.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			v, err := m.At(row, col)
			require.NoError(t, err)
			require.Equal(t, float64(row*3+col+1), v)
		}
	}

	_, err := m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetAt(0, -1, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.SetAt(2, 1, -8))
	require.Equal(t, -8.0, m.M21)
}

// TestDeterminantAndTrace uses a fixed matrix with known invariants.
func TestDeterminantAndTrace(t *testing.T) {
	t.Parallel()

	m := matrix.New(2, -3, 1, 2, 0, -1, 1, 4, 5)
	require.InDelta(t, 49.0, m.Determinant(), 1e-12)
	require.Equal(t, 7.0, m.Trace())

	id := matrix.Identity()
	require.Equal(t, 1.0, id.Determinant())
}

// TestInvert checks m·m⁻¹ = I and the singular failure.
func TestInvert(t *testing.T) {
	t.Parallel()

	m := matrix.New(2, -3, 1, 2, 0, -1, 1, 4, 5)
	inv := m
	require.NoError(t, inv.Invert())
	prod := m
	prod.Multiply(&inv)
	id := matrix.Identity()
	require.True(t, prod.EpsilonEquals(&id, 1e-12), prod.String())

	singular := matrix.New(1, 2, 3, 2, 4, 6, 0, 1, 1)
	before := singular
	err := singular.Invert()
	require.ErrorIs(t, err, matrix.ErrSingularMatrix)
	require.Equal(t, before, singular, "receiver must be untouched on failure")

	var typed *matrix.SingularMatrixError
	require.ErrorAs(t, err, &typed)
	require.Equal(t, before, typed.Matrix)
}

// TestMultiplyVariants checks the transpose-aware products against explicit ones.
func TestMultiplyVariants(t *testing.T) {
	t.Parallel()

	rng := newRNG(t)
	a, b := RandomRotation(rng), RandomRotation(rng)

	bt := b
	bt.Transpose()
	want := a
	want.Multiply(&bt)
	got := a
	got.MultiplyTransposeOther(&b)
	require.True(t, got.EpsilonEquals(&want, 1e-15))

	at := a
	at.Transpose()
	want = at
	want.Multiply(&b)
	got = a
	got.MultiplyTransposeThis(&b)
	require.True(t, got.EpsilonEquals(&want, 1e-15))

	pre := a
	pre.PreMultiply(&b)
	post := b
	post.Multiply(&a)
	require.Equal(t, post, pre)

	// A rotation times its transpose is the identity.
	rrt := a
	rrt.MultiplyTransposeOther(&a)
	id := matrix.Identity()
	require.True(t, rrt.EpsilonEquals(&id, 1e-12))
}

// TestTransform checks m·v and mᵀ·v on a quarter turn about z.
func TestTransform(t *testing.T) {
	t.Parallel()

	m := matrix.New(0, -1, 0, 1, 0, 0, 0, 0, 1)
	v := m.Transform(r3.Vector{X: 1, Y: 0, Z: 0})
	require.InDelta(t, 0.0, v.X, 1e-15)
	require.InDelta(t, 1.0, v.Y, 1e-15)

	back := m.InverseTransform(v)
	require.InDelta(t, 1.0, back.X, 1e-15)
	require.InDelta(t, 0.0, back.Y, 1e-15)
}

// TestNormalize removes drift from a perturbed rotation.
func TestNormalize(t *testing.T) {
	t.Parallel()

	rng := newRNG(t)
	m := RandomRotation(rng)
	m.M01 += 1e-4
	m.M22 -= 1e-4
	require.False(t, matrix.IsRotationMatrix(&m, numeric.DefaultEpsilon))

	c0 := m.Column(0).Normalize()
	m.Normalize()
	require.True(t, matrix.IsRotationMatrix(&m, 1e-12))

	// Columns are orthonormalised: column 0 keeps its direction, row 0 does not.
	require.InDelta(t, 0.0, m.Column(0).Sub(c0).Norm(), 1e-15)

	skewed := matrix.New(1, 1, 0, 0, 1, 0, 0, 0, 1)
	skewed.Normalize()
	want := matrix.Identity()
	require.True(t, skewed.EpsilonEquals(&want, 1e-15), skewed.String())
}

// TestNaNHelpers covers SetToNaN/ContainsNaN and String on a NaN matrix.
func TestNaNHelpers(t *testing.T) {
	t.Parallel()

	var m matrix.Matrix3D
	require.False(t, m.ContainsNaN())
	m.SetToNaN()
	require.True(t, m.ContainsNaN())
	require.True(t, math.IsNaN(m.Trace()))
	require.Contains(t, m.String(), "NaN")

	m.SetIdentity()
	require.False(t, m.ContainsNaN())
	require.Equal(t, matrix.Identity(), m)

	require.True(t, math.IsNaN(m.Row(5).X))
	require.True(t, math.IsNaN(m.Column(-1).Z))
}
