// SPDX-License-Identifier: MIT

package convert

import (
	"math"

	"github.com/katalvlaran/euclid/numeric"
	"github.com/katalvlaran/euclid/rotation"
)

// slerpLinearThreshold is the cosine above which slerp degrades to a
// normalised linear interpolation: sin(θ) is too small to divide by.
const slerpLinearThreshold = 1.0 - 1e-9

// QuaternionSlerp writes the spherical linear interpolation between q0
// (alpha = 0) and q1 (alpha = 1) into dst, along the shortest arc.
//
// Implementation:
//   - Stage 1: if q0·q1 < 0 use -q1 (same rotation, shorter arc).
//   - Stage 2: nearly parallel inputs ⇒ normalised lerp; else the slerp weights
//     sin((1-α)θ)/sinθ and sin(αθ)/sinθ with θ = acos(ClampUnit(q0·q1)).
//
// Behavior highlights:
//   - alpha outside [0, 1] extrapolates.
//   - NaN in either input or alpha yields NaN.
func QuaternionSlerp(q0, q1 *rotation.Quaternion, alpha float64, dst *rotation.Quaternion) {
	if q0.ContainsNaN() || q1.ContainsNaN() || math.IsNaN(alpha) {
		dst.SetToNaN()
		return
	}
	a, b := *q0, *q1
	a.Normalize()
	b.Normalize()

	cos := a.Dot(&b)
	if cos < 0 {
		b.Negate()
		cos = -cos
	}

	var w0, w1 float64
	if cos > slerpLinearThreshold {
		w0, w1 = 1.0-alpha, alpha
	} else {
		theta := math.Acos(numeric.ClampUnit(cos))
		sin := math.Sin(theta)
		w0 = math.Sin((1.0-alpha)*theta) / sin
		w1 = math.Sin(alpha*theta) / sin
	}

	dst.Set(
		w0*a.X+w1*b.X,
		w0*a.Y+w1*b.Y,
		w0*a.Z+w1*b.Z,
		w0*a.S+w1*b.S,
	)
	dst.Normalize()
}
