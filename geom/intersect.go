package geom

import (
	"fmt"

	"deedles.dev/xyz"
	"deedles.dev/xyz/internal/fmath"
)

// LineRelationship classifies how two 2D lines or segments relate.
type LineRelationship int

const (
	// NonIntersecting lines are parallel and distinct. Segments are
	// also NonIntersecting if their lines cross outside of either
	// segment.
	NonIntersecting LineRelationship = iota

	// Intersecting lines cross at a single point.
	Intersecting

	// Overlapping infinite lines are the same line.
	Overlapping

	// Colinear segments lie on the same line. Whether they overlap is
	// determined by OverlapSegments.
	Colinear
)

func (r LineRelationship) String() string {
	switch r {
	case NonIntersecting:
		return "NonIntersecting"
	case Intersecting:
		return "Intersecting"
	case Overlapping:
		return "Overlapping"
	case Colinear:
		return "Colinear"
	default:
		return fmt.Sprintf("LineRelationship(%d)", int(r))
	}
}

// IntersectLines finds the intersection of the 2D lines a and b. If
// they are Intersecting, ta and tb are the parameters of the
// intersection point along a and b respectively. Lines are considered
// parallel if the 2D cross product of their vectors is within margin
// of zero.
func IntersectLines[T xyz.Float](a, b Line[T], margin T) (rel LineRelationship, ta, tb T) {
	normalB := xyz.Normal(b.Vector)
	denom := xyz.Dot(a.Vector, normalB)
	if xyz.IsZero(denom, margin) {
		if xyz.IsZero(xyz.Dot(normalB, a.Point.Sub(b.Point)), margin) {
			return Overlapping, 0, 0
		}
		return NonIntersecting, 0, 0
	}

	ab := b.Point.Sub(a.Point)
	normalA := xyz.Normal(a.Vector)
	ta = xyz.Dot(ab, normalB) / denom
	tb = xyz.Dot(ab, normalA) / denom
	return Intersecting, ta, tb
}

// IntersectSegments finds the intersection of the 2D segments a and
// b. Segments on the same line are Colinear. Otherwise they are
// Intersecting only if the parameters of the intersection point on
// both segments are in [0, 1]. Parameters within margin outside of
// that range are clamped into it.
func IntersectSegments[T xyz.Float](a, b LineSegment[T], margin T) (rel LineRelationship, ta, tb T) {
	rel, ta, tb = IntersectLines(a.Line(), b.Line(), margin)
	switch rel {
	case Overlapping:
		return Colinear, 0, 0
	case Intersecting:
		var ok bool
		if ta, ok = clampUnit(ta, margin); !ok {
			return NonIntersecting, 0, 0
		}
		if tb, ok = clampUnit(tb, margin); !ok {
			return NonIntersecting, 0, 0
		}
		return Intersecting, ta, tb
	default:
		return rel, 0, 0
	}
}

func clampUnit[T xyz.Float](t, margin T) (T, bool) {
	if t < -margin || t > 1+margin {
		return t, false
	}
	return max(0, min(t, 1)), true
}

// OverlapSegments determines how much of a and b overlap by projecting
// each onto the other. The endpoints of b are projected onto a and the
// resulting parameters are clamped to [0, 1], giving onA, and
// likewise for onB. The segments overlap only if both ranges are
// longer than margin.
//
// The result is only meaningful for segments that lie on the same
// line, such as those that IntersectSegments reports as Colinear.
func OverlapSegments[T xyz.Float](a, b LineSegment[T], margin T) (onA, onB Extent[T], ok bool) {
	onA = project(a, b)
	onB = project(b, a)
	ok = onA.Len() > margin && onB.Len() > margin
	return onA, onB, ok
}

// project returns the clamped range of parameters of the projections
// of the endpoints of s onto onto.
func project[T xyz.Float](onto, s LineSegment[T]) Extent[T] {
	v := onto.Vector()
	l2 := xyz.LengthSquared(v)
	if l2 == 0 {
		return Extent[T]{}
	}

	t0 := xyz.Dot(s.Start.Sub(onto.Start), v) / l2
	t1 := xyz.Dot(s.End.Sub(onto.Start), v) / l2
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return Extent[T]{
		Start: max(0, min(t0, 1)),
		End:   max(0, min(t1, 1)),
	}
}

// IntersectPlanes returns the line along which the planes a and b
// intersect. The direction of the line is the cross product of the
// normals of a and b. If the length of that cross product is within
// margin of zero, the planes are parallel and ok is false.
func IntersectPlanes[T xyz.Float](a, b Plane[T], margin T) (line Line[T], ok bool) {
	dir := xyz.Cross(a.Normal, b.Normal)
	if xyz.Length(dir) <= margin {
		tracer().Debugf("planes with normals %v and %v are parallel", a.Normal, b.Normal)
		return Line[T]{}, false
	}

	// Setting the coordinate in which the direction is largest to zero
	// leaves a 2×2 system whose determinant is that coordinate of the
	// direction.
	i := 0
	for j := 1; j < 3; j++ {
		if fmath.Abs(dir[j]) > fmath.Abs(dir[i]) {
			i = j
		}
	}
	j, k := (i+1)%3, (i+2)%3

	na, nb := a.Normal, b.Normal
	da, db := xyz.Dot(na, a.Origin), xyz.Dot(nb, b.Origin)
	det := dir[i]

	p := xyz.Zero[T](3)
	p[j] = (da*nb[k] - db*na[k]) / det
	p[k] = (na[j]*db - nb[j]*da) / det

	return Line[T]{Point: p, Vector: dir}, true
}

// IntersectLinePlane returns the parameter along l at which it crosses
// p. If l is parallel to p within margin, ok is false.
func IntersectLinePlane[T xyz.Float](l Line[T], p Plane[T], margin T) (t T, ok bool) {
	denom := xyz.Dot(p.Normal, l.Vector)
	if xyz.IsZero(denom, margin) {
		return 0, false
	}
	return xyz.Dot(p.Normal, p.Origin.Sub(l.Point)) / denom, true
}

// IntersectLineTriangle returns the parameter along l at which it
// passes through the 3D triangle tri. If l misses tri or is parallel
// to it within margin, ok is false.
func IntersectLineTriangle[T xyz.Float](l Line[T], tri Triangle[T], margin T) (t T, ok bool) {
	e1 := tri.B.Sub(tri.A)
	e2 := tri.C.Sub(tri.A)

	p := xyz.Cross(l.Vector, e2)
	det := xyz.Dot(e1, p)
	if xyz.IsZero(det, margin) {
		return 0, false
	}
	inv := 1 / det

	s := l.Point.Sub(tri.A)
	u := xyz.Dot(s, p) * inv
	if u < -margin || u > 1+margin {
		return 0, false
	}

	q := xyz.Cross(s, e1)
	v := xyz.Dot(l.Vector, q) * inv
	if v < -margin || u+v > 1+margin {
		return 0, false
	}

	return xyz.Dot(e2, q) * inv, true
}
