// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/euclid/matrix"
)

// Operation tags for uniform error wrapping.
const (
	opMatrixToAxisAngle      = "MatrixToAxisAngle"
	opMatrixToQuaternion     = "MatrixToQuaternion"
	opMatrixToYawPitchRoll   = "MatrixToYawPitchRoll"
	opMatrixToRotationVector = "MatrixToRotationVector"
)

// convertErrorf wraps err with an operation tag, preserving it via %w.
func convertErrorf(tag string, err error) error {
	return fmt.Errorf("convert.%s: %w", tag, err)
}

// prepareMatrixSource decides how a matrix-source conversion proceeds.
//
// Implementation:
//   - Stage 1: NaN anywhere ⇒ poisoned=true (caller writes NaN, no error).
//   - Stage 2: checked mode ⇒ matrix.CheckIfRotationMatrix with o.eps.
//
// Returns:
//   - poisoned: the destination must be set to NaN.
//   - err: validation failure, already tagged with op.
func prepareMatrixSource(op string, m *matrix.Matrix3D, opts []Option) (poisoned bool, err error) {
	if m.ContainsNaN() {
		return true, nil
	}
	o := gatherOptions(opts...)
	if !o.checked {
		return false, nil
	}
	if err = matrix.CheckIfRotationMatrix(m, o.eps); err != nil {
		if debugEnabled() {
			Logger().Debug("rejected rotation matrix",
				slog.String("op", op),
				slog.Float64("det", m.Determinant()),
				slog.Float64("eps", o.eps))
		}

		return false, convertErrorf(op, err)
	}

	return false, nil
}
