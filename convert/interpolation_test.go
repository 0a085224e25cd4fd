// SPDX-License-Identifier: MIT
package convert_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/euclid/convert"
	"github.com/katalvlaran/euclid/rotation"
)

// TestQuaternionSlerp_Endpoints checks alpha = 0 and alpha = 1 return the inputs.
func TestQuaternionSlerp_Endpoints(t *testing.T) {
	t.Parallel()

	f := newFuzzer(t)
	for i := 0; i < 500; i++ {
		var q0, q1, got rotation.Quaternion
		f.Fuzz(&q0)
		f.Fuzz(&q1)
		if q0.Dot(&q1) < 0 {
			q1.Negate()
		}

		convert.QuaternionSlerp(&q0, &q1, 0, &got)
		require.True(t, got.EpsilonEquals(&q0, 1e-12), "want %v got %v", q0, got)
		convert.QuaternionSlerp(&q0, &q1, 1, &got)
		require.True(t, got.EpsilonEquals(&q1, 1e-12), "want %v got %v", q1, got)
	}
}

// TestQuaternionSlerp_ConstantSpeed checks the angle grows linearly with alpha.
func TestQuaternionSlerp_ConstantSpeed(t *testing.T) {
	t.Parallel()

	q0 := rotation.NewQuaternion()
	var q1 rotation.Quaternion
	convert.AxisAngleToQuaternionFrom(0, 1, 0, 2.0, &q1)

	for _, alpha := range []float64{0.1, 0.25, 0.5, 0.9} {
		var got rotation.Quaternion
		convert.QuaternionSlerp(&q0, &q1, alpha, &got)
		require.InDelta(t, 2.0*alpha, got.Angle(), 1e-12)
		require.InDelta(t, 1.0, got.Norm(), 1e-12)
	}
}

// TestQuaternionSlerp_ShortestArc interpolates towards -q1 when that is closer.
func TestQuaternionSlerp_ShortestArc(t *testing.T) {
	t.Parallel()

	q0 := rotation.NewQuaternion()
	var q1 rotation.Quaternion
	convert.AxisAngleToQuaternionFrom(1, 0, 0, 0.5, &q1)
	q1.Negate()

	var got rotation.Quaternion
	convert.QuaternionSlerp(&q0, &q1, 0.5, &got)
	require.InDelta(t, 0.25, got.Angle(), 1e-12)
}

// TestQuaternionSlerp_NearlyParallelAndNaN covers the linear fallback and NaN input.
func TestQuaternionSlerp_NearlyParallelAndNaN(t *testing.T) {
	t.Parallel()

	q0 := rotation.NewQuaternion()
	var q1, got rotation.Quaternion
	convert.AxisAngleToQuaternionFrom(0, 0, 1, 1e-10, &q1)
	convert.QuaternionSlerp(&q0, &q1, 0.5, &got)
	require.False(t, got.ContainsNaN())
	require.InDelta(t, 1.0, got.Norm(), 1e-15)

	convert.QuaternionSlerp(&q0, &q1, math.NaN(), &got)
	require.True(t, got.ContainsNaN())
}
