package transform

import (
	"deedles.dev/xyz"
	"deedles.dev/xyz/internal/fmath"
)

// Orientation is a rotation in 3D space given as three successive
// rotations around fixed axes: Roll around x, then Pitch around y, then
// Yaw around z. All angles are in radians.
type Orientation[T xyz.Float] struct {
	Roll, Pitch, Yaw T
}

// Matrix returns the 3×3 rotation matrix of o, which is
// RotateZ(Yaw)·RotateY(Pitch)·RotateX(Roll) without the homogeneous
// row and column.
func (o Orientation[T]) Matrix() xyz.Matrix[T] {
	return rotateZ(o.Yaw).Mul(rotateY(o.Pitch)).Mul(rotateX(o.Roll))
}

// OrientationFromMatrix returns the orientation of the 3×3 rotation
// matrix m. Pitch is in [-π/2, π/2]. At those extremes, roll and yaw
// rotate around the same axis and yaw is reported as zero.
func OrientationFromMatrix[T xyz.Float](m xyz.Matrix[T]) Orientation[T] {
	sp := -m.At(2, 0)
	if fmath.Abs(sp) >= 1-xyz.DefaultMargin[T]() {
		return Orientation[T]{
			Roll:  fmath.Atan2(-m.At(1, 2), m.At(1, 1)),
			Pitch: fmath.Asin(sp),
		}
	}

	return Orientation[T]{
		Roll:  fmath.Atan2(m.At(2, 1), m.At(2, 2)),
		Pitch: fmath.Asin(sp),
		Yaw:   fmath.Atan2(m.At(1, 0), m.At(0, 0)),
	}
}
