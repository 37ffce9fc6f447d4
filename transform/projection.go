package transform

import (
	"deedles.dev/xyz"
	"deedles.dev/xyz/internal/fmath"
)

// LookAt returns a view matrix for a camera at eye looking towards
// center. up gives the upward direction of the view and must not be
// parallel to center-eye. The camera looks down its negative z axis.
func LookAt[T xyz.Float](eye, center, up xyz.Vector[T]) xyz.Matrix[T] {
	f := xyz.Unit(center.Sub(eye))
	s := xyz.Unit(xyz.Cross(f, up))
	u := xyz.Cross(s, f)

	return xyz.Mat(4, 4,
		s[0], s[1], s[2], -xyz.Dot(s, eye),
		u[0], u[1], u[2], -xyz.Dot(u, eye),
		-f[0], -f[1], -f[2], xyz.Dot(f, eye),
		0, 0, 0, 1,
	)
}

// Frustum returns a perspective projection matrix for the view volume
// whose near plane spans from (left, bottom) to (right, top) at
// distance near and which ends at distance far. The volume is mapped
// to the cube from (-1, -1, -1) to (1, 1, 1).
func Frustum[T xyz.Float](left, right, bottom, top, near, far T) xyz.Matrix[T] {
	rl, tb, fn := right-left, top-bottom, far-near
	return xyz.Mat(4, 4,
		2*near/rl, 0, (right+left)/rl, 0,
		0, 2*near/tb, (top+bottom)/tb, 0,
		0, 0, -(far+near)/fn, -2*far*near/fn,
		0, 0, -1, 0,
	)
}

// Perspective returns a symmetric perspective projection matrix with
// the vertical field of view fovy in radians.
func Perspective[T xyz.Float](fovy, aspect, near, far T) xyz.Matrix[T] {
	f := 1 / fmath.Tan(fovy/2)
	nf := near - far
	return xyz.Mat(4, 4,
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far+near)/nf, 2*far*near/nf,
		0, 0, -1, 0,
	)
}

// Orthographic returns a parallel projection matrix that maps the box
// from (left, bottom, -near) to (right, top, -far) to the cube from
// (-1, -1, -1) to (1, 1, 1).
func Orthographic[T xyz.Float](left, right, bottom, top, near, far T) xyz.Matrix[T] {
	rl, tb, fn := right-left, top-bottom, far-near
	return xyz.Mat(4, 4,
		2/rl, 0, 0, -(right+left)/rl,
		0, 2/tb, 0, -(top+bottom)/tb,
		0, 0, -2/fn, -(far+near)/fn,
		0, 0, 0, 1,
	)
}
