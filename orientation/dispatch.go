// SPDX-License-Identifier: MIT

package orientation

import (
	"github.com/katalvlaran/euclid/convert"
)

// trusted skips the rotation-matrix check: a matrix-backed Orientation is a
// rotation by construction. Matrix sources never return an error under it,
// which is why the table and RotationVector discard their error results.
var trusted = convert.WithUnchecked()

// converter writes the orientation stored in src into the slot of dst named
// by the table column. It never changes dst.kind.
type converter func(src, dst *Orientation)

// converters is the dispatch table indexed by (source Kind, destination Kind).
var converters = [kindCount][kindCount]converter{
	// error is always nil under trusted
	KindMatrix: {
		KindMatrix:       func(s, d *Orientation) { d.m = s.m },
		KindAxisAngle:    func(s, d *Orientation) { _ = convert.MatrixToAxisAngle(&s.m, &d.aa, trusted) },
		KindQuaternion:   func(s, d *Orientation) { _ = convert.MatrixToQuaternion(&s.m, &d.q, trusted) },
		KindYawPitchRoll: func(s, d *Orientation) { _ = convert.MatrixToYawPitchRoll(&s.m, &d.ypr, trusted) },
	},
	KindAxisAngle: {
		KindMatrix:       func(s, d *Orientation) { convert.AxisAngleToMatrix(&s.aa, &d.m) },
		KindAxisAngle:    func(s, d *Orientation) { d.aa = s.aa },
		KindQuaternion:   func(s, d *Orientation) { convert.AxisAngleToQuaternion(&s.aa, &d.q) },
		KindYawPitchRoll: func(s, d *Orientation) { convert.AxisAngleToYawPitchRoll(&s.aa, &d.ypr) },
	},
	KindQuaternion: {
		KindMatrix:       func(s, d *Orientation) { convert.QuaternionToMatrix(&s.q, &d.m) },
		KindAxisAngle:    func(s, d *Orientation) { convert.QuaternionToAxisAngle(&s.q, &d.aa) },
		KindQuaternion:   func(s, d *Orientation) { d.q = s.q },
		KindYawPitchRoll: func(s, d *Orientation) { convert.QuaternionToYawPitchRoll(&s.q, &d.ypr) },
	},
	KindYawPitchRoll: {
		KindMatrix:       func(s, d *Orientation) { convert.YawPitchRollToMatrix(&s.ypr, &d.m) },
		KindAxisAngle:    func(s, d *Orientation) { convert.YawPitchRollToAxisAngle(&s.ypr, &d.aa) },
		KindQuaternion:   func(s, d *Orientation) { convert.YawPitchRollToQuaternion(&s.ypr, &d.q) },
		KindYawPitchRoll: func(s, d *Orientation) { d.ypr = s.ypr },
	},
}

// materialize fills the dst slot of a scratch Orientation from o.
func (o *Orientation) materialize(dst Kind) Orientation {
	var tmp Orientation
	converters[o.kind][dst](o, &tmp)
	tmp.kind = dst

	return tmp
}
