// SPDX-License-Identifier: MIT

package orientation

import "fmt"

// Kind tags the representation an Orientation stores.
type Kind uint8

// Kinds of Orientation. The rotation vector is not a Kind: it is derived on
// demand through RotationVector and accepted by FromRotationVector.
const (
	KindMatrix Kind = iota
	KindAxisAngle
	KindQuaternion
	KindYawPitchRoll

	kindCount
)

var kindNames = [kindCount]string{
	KindMatrix:       "matrix",
	KindAxisAngle:    "axis-angle",
	KindQuaternion:   "quaternion",
	KindYawPitchRoll: "yaw-pitch-roll",
}

// Valid reports whether k names one of the four representations.
func (k Kind) Valid() bool { return k < kindCount }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindMatrix, KindAxisAngle, KindQuaternion, KindYawPitchRoll}
}
