// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/euclid/numeric"
)

// YawPitchRoll holds intrinsic Z-Y-X Euler angles in radians:
// first Yaw about z, then Pitch about the new y, then Roll about the new x.
//
// At |Pitch| = π/2 (gimbal lock) only Yaw-Roll (pitch up) or Yaw+Roll
// (pitch down) is observable; many (Yaw, Roll) pairs give the same rotation.
type YawPitchRoll struct {
	Yaw, Pitch, Roll float64
}

// Set assigns the three angles.
func (y *YawPitchRoll) Set(yaw, pitch, roll float64) { y.Yaw, y.Pitch, y.Roll = yaw, pitch, roll }

// SetToZero resets to the identity (0, 0, 0).
func (y *YawPitchRoll) SetToZero() { *y = YawPitchRoll{} }

// SetToNaN poisons every angle.
func (y *YawPitchRoll) SetToNaN() {
	nan := math.NaN()
	y.Set(nan, nan, nan)
}

// ContainsNaN reports whether any angle is NaN.
func (y *YawPitchRoll) ContainsNaN() bool { return numeric.ContainsNaN(y.Yaw, y.Pitch, y.Roll) }

// IsGimbalLocked reports whether |Pitch| is at or past GimbalLockThreshold.
func (y *YawPitchRoll) IsGimbalLocked() bool {
	return math.Abs(y.Pitch) >= numeric.GimbalLockThreshold
}

// ShiftAngles wraps every angle into (-π, π].
func (y *YawPitchRoll) ShiftAngles() {
	y.Yaw = numeric.ShiftAngle(y.Yaw)
	y.Pitch = numeric.ShiftAngle(y.Pitch)
	y.Roll = numeric.ShiftAngle(y.Roll)
}

// EpsilonEquals compares angle-wise. Prefer orientation.GeometricallyEquals:
// two gimbal-locked triples can differ here while being the same rotation.
func (y *YawPitchRoll) EpsilonEquals(other *YawPitchRoll, eps float64) bool {
	return numeric.EpsilonEquals(y.Yaw, other.Yaw, eps) &&
		numeric.EpsilonEquals(y.Pitch, other.Pitch, eps) &&
		numeric.EpsilonEquals(y.Roll, other.Roll, eps)
}

func (y YawPitchRoll) String() string {
	return fmt.Sprintf("yaw-pitch-roll: (%+.6f, %+.6f, %+.6f)", y.Yaw, y.Pitch, y.Roll)
}
