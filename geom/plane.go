package geom

import (
	"fmt"

	"deedles.dev/xyz"
	"deedles.dev/xyz/internal/fmath"
)

// Plane is a plane in 3D space through Origin and perpendicular to
// Normal. Normal need not be a unit vector, but it must not be zero.
type Plane[T xyz.Float] struct {
	Origin xyz.Vector[T]
	Normal xyz.Vector[T]
}

func must3D[T xyz.Scalar](vs ...xyz.Vector[T]) {
	for _, v := range vs {
		if len(v) != 3 {
			panic(fmt.Errorf("plane with %vD vector", len(v)))
		}
	}
}

// NewPlane returns the plane through origin with the given normal. It
// returns ErrInvalidPlane if normal is zero.
func NewPlane[T xyz.Float](origin, normal xyz.Vector[T]) (Plane[T], error) {
	must3D(origin, normal)
	if xyz.LengthSquared(normal) == 0 {
		tracer().Debugf("zero normal for plane through %v", origin)
		return Plane[T]{}, fmt.Errorf("plane through %v: zero normal: %w", origin, ErrInvalidPlane)
	}
	return Plane[T]{Origin: origin.Clone(), Normal: normal.Clone()}, nil
}

// PlaneFromPoints returns the plane through a, b and c. The normal
// points towards the side from which a, b, c appear counterclockwise.
// It returns ErrInvalidPlane if the points are colinear.
func PlaneFromPoints[T xyz.Float](a, b, c xyz.Vector[T]) (Plane[T], error) {
	must3D(a, b, c)
	n := xyz.Cross(b.Sub(a), c.Sub(a))
	if xyz.LengthSquared(n) == 0 {
		tracer().Debugf("colinear points %v, %v, %v", a, b, c)
		return Plane[T]{}, fmt.Errorf("plane through %v, %v, %v: colinear points: %w", a, b, c, ErrInvalidPlane)
	}
	return Plane[T]{Origin: a.Clone(), Normal: n}, nil
}

// PlaneFromAxes returns the plane through origin spanned by the axes u
// and v, which must be non-zero and orthogonal to each other within
// margin. The normal is u×v.
func PlaneFromAxes[T xyz.Float](origin, u, v xyz.Vector[T], margin T) (Plane[T], error) {
	must3D(origin, u, v)
	if xyz.LengthSquared(u) == 0 || xyz.LengthSquared(v) == 0 {
		return Plane[T]{}, fmt.Errorf("plane with axes %v and %v: zero axis: %w", u, v, ErrInvalidPlane)
	}
	if d := xyz.Dot(xyz.Unit(u), xyz.Unit(v)); !xyz.IsZero(d, margin) {
		tracer().Debugf("axes %v and %v are not orthogonal: dot %v", u, v, d)
		return Plane[T]{}, fmt.Errorf("plane with axes %v and %v: axes not orthogonal: %w", u, v, ErrInvalidPlane)
	}
	return Plane[T]{Origin: origin.Clone(), Normal: xyz.Cross(u, v)}, nil
}

func (p Plane[T]) String() string {
	return fmt.Sprintf("plane(%v, %v)", p.Origin, p.Normal)
}

// Distance returns the signed distance from p to the point q. It is
// positive on the side that the normal points to.
func (p Plane[T]) Distance(q xyz.Vector[T]) T {
	return xyz.Dot(q.Sub(p.Origin), p.Normal) / xyz.Length(p.Normal)
}

// Project returns the point on p closest to q.
func (p Plane[T]) Project(q xyz.Vector[T]) xyz.Vector[T] {
	return q.Sub(xyz.Unit(p.Normal).Mul(p.Distance(q)))
}

// Contains reports whether q is within margin of p.
func (p Plane[T]) Contains(q xyz.Vector[T], margin T) bool {
	return fmath.Abs(p.Distance(q)) <= margin
}
