// SPDX-License-Identifier: MIT
// Package convert_test provides benchmarks for the hot conversions.
package convert_test

import (
	"testing"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/euclid/convert"
	"github.com/katalvlaran/euclid/matrix"
	"github.com/katalvlaran/euclid/rotation"
)

// sinks to defeat dead-code elimination
var (
	sinkM   matrix.Matrix3D
	sinkQ   rotation.Quaternion
	sinkYPR rotation.YawPitchRoll
	sinkRV  r3.Vector
)

func BenchmarkQuaternionToMatrix(b *testing.B) {
	b.ReportAllocs()
	q := rotation.Quaternion{X: 0.1, Y: -0.2, Z: 0.3, S: 0.9}
	for i := 0; i < b.N; i++ {
		convert.QuaternionToMatrix(&q, &sinkM)
	}
}

func BenchmarkMatrixToQuaternion(b *testing.B) {
	b.ReportAllocs()
	ypr := rotation.YawPitchRoll{Yaw: 0.4, Pitch: -0.2, Roll: 1.1}
	var m matrix.Matrix3D
	convert.YawPitchRollToMatrix(&ypr, &m)
	for _, tc := range []struct {
		name string
		opts []convert.Option
	}{
		{"checked", nil},
		{"unchecked", []convert.Option{convert.WithUnchecked()}},
	} {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := convert.MatrixToQuaternion(&m, &sinkQ, tc.opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkQuaternionToYawPitchRoll(b *testing.B) {
	b.ReportAllocs()
	q := rotation.Quaternion{X: 0.1, Y: -0.2, Z: 0.3, S: 0.9}
	for i := 0; i < b.N; i++ {
		convert.QuaternionToYawPitchRoll(&q, &sinkYPR)
	}
}

func BenchmarkMatrixToRotationVector(b *testing.B) {
	b.ReportAllocs()
	m := matrix.Identity()
	for i := 0; i < b.N; i++ {
		if err := convert.MatrixToRotationVector(&m, &sinkRV); err != nil {
			b.Fatal(err)
		}
	}
}
