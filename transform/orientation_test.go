package transform_test

import (
	"math"
	"testing"

	"deedles.dev/xyz"
	"deedles.dev/xyz/transform"
	"github.com/stretchr/testify/require"
)

func TestOrientation(t *testing.T) {
	tests := map[string]transform.Orientation[float64]{
		"Zero":  {},
		"Roll":  {Roll: 0.3},
		"Pitch": {Pitch: -0.4},
		"Yaw":   {Yaw: 2.5},
		"All":   {Roll: -1.2, Pitch: 0.5, Yaw: 0.8},
	}

	for name, o := range tests {
		t.Run(name, func(t *testing.T) {
			m := o.Matrix()
			expected := transform.Linear(transform.RotateZ(o.Yaw).Mul(transform.RotateY(o.Pitch)).Mul(transform.RotateX(o.Roll)))
			require.True(t, xyz.ApproxEqualMatrix(expected, m, margin))
			require.InDelta(t, 1, xyz.Determinant(m), margin)

			r := transform.OrientationFromMatrix(m)
			require.InDelta(t, o.Roll, r.Roll, 1e-9)
			require.InDelta(t, o.Pitch, r.Pitch, 1e-9)
			require.InDelta(t, o.Yaw, r.Yaw, 1e-9)
		})
	}
}

func TestOrientationGimbalLock(t *testing.T) {
	o := transform.Orientation[float64]{Roll: 0.3, Pitch: math.Pi / 2, Yaw: 0.1}
	r := transform.OrientationFromMatrix(o.Matrix())
	require.Equal(t, 0.0, r.Yaw)
	require.InDelta(t, math.Pi/2, r.Pitch, 1e-6)
	require.True(t, xyz.ApproxEqualMatrix(o.Matrix(), r.Matrix(), 1e-6))
}

func TestQuaternion(t *testing.T) {
	axis := xyz.Vec3(1.0, -2, 0.5)
	q := transform.QuaternionFromAxisAngle(axis, 1.1)
	require.InDelta(t, 1, q.Norm(), margin)

	m := transform.Linear(transform.RotateAxis(1.1, axis))
	require.True(t, xyz.ApproxEqualMatrix(m, q.Matrix(), margin))

	v := xyz.Vec3(3.0, 1, -4)
	requireVec(t, m.MulVec(v), q.Rotate(v))
	requireVec(t, v, q.Conjugate().Rotate(q.Rotate(v)))

	// Composition applies the right quaternion first.
	a := transform.QuaternionFromAxisAngle(xyz.Vec3(0.0, 0, 1), math.Pi/2)
	b := transform.QuaternionFromAxisAngle(xyz.Vec3(1.0, 0, 0), math.Pi/2)
	requireVec(t, a.Rotate(b.Rotate(v)), a.Mul(b).Rotate(v))
	requireVec(t, xyz.Vec3(0.0, 0, 1), a.Mul(b).Rotate(xyz.Vec3(0.0, 1, 0)))

	id := transform.IdentityQuaternion[float64]()
	requireVec(t, v, id.Rotate(v))

	u := transform.Quaternion[float64]{V: xyz.Vec3(0.0, 3, 0), R: 4}.Unit()
	require.InDelta(t, 1, u.Norm(), margin)
	require.InDelta(t, 0.8, u.R, margin)
}
