// SPDX-License-Identifier: MIT
package convert_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/euclid/convert"
	"github.com/katalvlaran/euclid/matrix"
	"github.com/katalvlaran/euclid/rotation"
)

// TestLogger_SilentByDefault checks the default logger drops debug records.
// Not parallel: the logger is process-wide.
func TestLogger_SilentByDefault(t *testing.T) {
	require.NotNil(t, convert.Logger())
	require.False(t, convert.Logger().Enabled(context.Background(), slog.LevelError))
}

// TestLogger_SingularBranches captures the debug records of the singular branches.
func TestLogger_SingularBranches(t *testing.T) {
	var buf bytes.Buffer
	convert.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { convert.SetLogger(nil) })

	locked := rotation.YawPitchRoll{Yaw: 0.3, Pitch: math.Pi / 2, Roll: 0.1}
	var m matrix.Matrix3D
	convert.YawPitchRollToMatrix(&locked, &m)
	var ypr rotation.YawPitchRoll
	require.NoError(t, convert.MatrixToYawPitchRoll(&m, &ypr))
	require.Contains(t, buf.String(), "gimbal lock")

	buf.Reset()
	half := rotation.AxisAngle{X: 1, Angle: math.Pi}
	convert.AxisAngleToMatrix(&half, &m)
	var aa rotation.AxisAngle
	require.NoError(t, convert.MatrixToAxisAngle(&m, &aa))
	require.Contains(t, buf.String(), "symmetric part")

	buf.Reset()
	bad := matrix.Diagonal(2, 2, 2)
	require.Error(t, convert.MatrixToAxisAngle(&bad, &aa))
	require.Contains(t, buf.String(), "rejected rotation matrix")
	require.Contains(t, buf.String(), "op=MatrixToAxisAngle")

	// nil restores the silent default.
	convert.SetLogger(nil)
	buf.Reset()
	require.NoError(t, convert.MatrixToYawPitchRoll(&m, &ypr))
	require.Empty(t, buf.String())
}
