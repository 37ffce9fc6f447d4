package transform

import (
	"fmt"

	"deedles.dev/xyz"
	"deedles.dev/xyz/internal/fmath"
)

// Quaternion is a quaternion with the 3D vector part V and the real
// part R. Unit quaternions represent rotations.
type Quaternion[T xyz.Float] struct {
	V xyz.Vector[T]
	R T
}

// IdentityQuaternion returns the quaternion of no rotation.
func IdentityQuaternion[T xyz.Float]() Quaternion[T] {
	return Quaternion[T]{V: xyz.Zero[T](3), R: 1}
}

// QuaternionFromAxisAngle returns the unit quaternion that rotates by
// angle radians around axis.
func QuaternionFromAxisAngle[T xyz.Float](axis xyz.Vector[T], angle T) Quaternion[T] {
	s, c := fmath.Sin(angle/2), fmath.Cos(angle/2)
	return Quaternion[T]{V: xyz.Unit(axis).Mul(s), R: c}
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%v, %v)", q.V, q.R)
}

// Mul returns q·r, which rotates by r first and then by q.
func (q Quaternion[T]) Mul(r Quaternion[T]) Quaternion[T] {
	v := r.V.Mul(q.R)
	v.AddAssign(q.V.Mul(r.R))
	v.AddAssign(xyz.Cross(q.V, r.V))
	return Quaternion[T]{
		V: v,
		R: q.R*r.R - xyz.Dot(q.V, r.V),
	}
}

// Conjugate returns q with its vector part negated. For a unit
// quaternion, this is the inverse rotation.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{V: q.V.Neg(), R: q.R}
}

// Norm returns the length of q.
func (q Quaternion[T]) Norm() T {
	return fmath.Sqrt(xyz.Dot(q.V, q.V) + q.R*q.R)
}

// Unit returns q scaled to length 1.
func (q Quaternion[T]) Unit() Quaternion[T] {
	n := q.Norm()
	return Quaternion[T]{V: q.V.Div(n), R: q.R / n}
}

// Rotate returns the 3D vector v rotated by the unit quaternion q.
func (q Quaternion[T]) Rotate(v xyz.Vector[T]) xyz.Vector[T] {
	p := Quaternion[T]{V: v, R: 0}
	return q.Mul(p).Mul(q.Conjugate()).V
}

// Matrix returns the 3×3 rotation matrix of the unit quaternion q.
func (q Quaternion[T]) Matrix() xyz.Matrix[T] {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	return xyz.Mat(3, 3,
		1-2*(y*y+z*z), 2*(x*y-z*w), 2*(x*z+y*w),
		2*(x*y+z*w), 1-2*(x*x+z*z), 2*(y*z-x*w),
		2*(x*z-y*w), 2*(y*z+x*w), 1-2*(x*x+y*y),
	)
}
