// Package transform builds the matrices of common linear and affine
// transformations.
//
// All matrices act on column vectors, so a transformation m is applied
// to a point p as m·p and the matrix m·n applies n first. Builders
// whose names end in 2 return 3×3 homogeneous matrices for 2D space.
// The others return 4×4 homogeneous matrices for 3D space.
package transform

import (
	"fmt"

	"deedles.dev/xyz"
	"deedles.dev/xyz/internal/fmath"
)

// Scale2 returns a 2D scaling matrix.
func Scale2[T xyz.Scalar](sx, sy T) xyz.Matrix[T] {
	return xyz.Mat(3, 3,
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	)
}

// Scale3 returns a 3D scaling matrix.
func Scale3[T xyz.Scalar](sx, sy, sz T) xyz.Matrix[T] {
	return xyz.Mat(4, 4,
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	)
}

// Translate2 returns a 2D translation matrix.
func Translate2[T xyz.Scalar](tx, ty T) xyz.Matrix[T] {
	return xyz.Mat(3, 3,
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	)
}

// Translate3 returns a 3D translation matrix.
func Translate3[T xyz.Scalar](tx, ty, tz T) xyz.Matrix[T] {
	return xyz.Mat(4, 4,
		1, 0, 0, tx,
		0, 1, 0, ty,
		0, 0, 1, tz,
		0, 0, 0, 1,
	)
}

// Rotate2 returns a matrix that rotates 2D points counterclockwise by
// angle radians around the origin.
func Rotate2[T xyz.Float](angle T) xyz.Matrix[T] {
	c, s := fmath.Cos(angle), fmath.Sin(angle)
	return xyz.Mat(3, 3,
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// RotateX returns a matrix that rotates by angle radians around the x
// axis. Positive angles turn y towards z.
func RotateX[T xyz.Float](angle T) xyz.Matrix[T] {
	return Affine(rotateX(angle))
}

// RotateY returns a matrix that rotates by angle radians around the y
// axis. Positive angles turn z towards x.
func RotateY[T xyz.Float](angle T) xyz.Matrix[T] {
	return Affine(rotateY(angle))
}

// RotateZ returns a matrix that rotates by angle radians around the z
// axis. Positive angles turn x towards y.
func RotateZ[T xyz.Float](angle T) xyz.Matrix[T] {
	return Affine(rotateZ(angle))
}

func rotateX[T xyz.Float](angle T) xyz.Matrix[T] {
	c, s := fmath.Cos(angle), fmath.Sin(angle)
	return xyz.Mat(3, 3,
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

func rotateY[T xyz.Float](angle T) xyz.Matrix[T] {
	c, s := fmath.Cos(angle), fmath.Sin(angle)
	return xyz.Mat(3, 3,
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

func rotateZ[T xyz.Float](angle T) xyz.Matrix[T] {
	c, s := fmath.Cos(angle), fmath.Sin(angle)
	return xyz.Mat(3, 3,
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// RotateAxis returns a matrix that rotates by angle radians around
// axis, counterclockwise when looking against the direction of axis.
// axis need not be a unit vector.
func RotateAxis[T xyz.Float](angle T, axis xyz.Vector[T]) xyz.Matrix[T] {
	a := xyz.Unit(axis)
	x, y, z := a.X(), a.Y(), a.Z()
	c, s := fmath.Cos(angle), fmath.Sin(angle)
	t := 1 - c

	return Affine(xyz.Mat(3, 3,
		t*x*x+c, t*x*y-s*z, t*x*z+s*y,
		t*x*y+s*z, t*y*y+c, t*y*z-s*x,
		t*x*z-s*y, t*y*z+s*x, t*z*z+c,
	))
}

// Affine returns the homogeneous matrix that applies the linear
// transformation m, one size larger than m.
func Affine[T xyz.Scalar](m xyz.Matrix[T]) xyz.Matrix[T] {
	r := xyz.Identity[T](m.Rows() + 1)
	r.SetSubmatrix(0, 0, m)
	return r
}

// Linear returns the linear part of the homogeneous matrix m, without
// its last row and column.
func Linear[T xyz.Scalar](m xyz.Matrix[T]) xyz.Matrix[T] {
	return m.Submatrix(0, 0, m.Rows()-1, m.Cols()-1)
}

// TransformPoint applies the homogeneous matrix m to the point p,
// dividing the result by its w component. m must be one size larger
// than the dimension of p.
func TransformPoint[T xyz.Float](m xyz.Matrix[T], p xyz.Vector[T]) xyz.Vector[T] {
	h := m.MulVec(homogeneous(m, p, 1))
	n := len(p)
	return h[:n].Div(h[n])
}

// TransformVector applies the homogeneous matrix m to the direction v,
// which is unaffected by translation.
func TransformVector[T xyz.Scalar](m xyz.Matrix[T], v xyz.Vector[T]) xyz.Vector[T] {
	h := m.MulVec(homogeneous(m, v, 0))
	return h[:len(v)]
}

func homogeneous[T xyz.Scalar](m xyz.Matrix[T], v xyz.Vector[T], w T) xyz.Vector[T] {
	if m.Cols() != len(v)+1 {
		panic(fmt.Errorf("cannot apply %vx%v transformation to %vD vector", m.Rows(), m.Cols(), len(v)))
	}
	return append(v.Clone(), w)
}
