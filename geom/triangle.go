package geom

import (
	"fmt"

	"deedles.dev/xyz"
	"deedles.dev/xyz/internal/fmath"
)

// Triangle is a triangle with vertices A, B and C, in either 2D or
// 3D.
type Triangle[T xyz.Float] struct {
	A, B, C xyz.Vector[T]
}

// Tri returns the triangle with vertices a, b and c.
func Tri[T xyz.Float](a, b, c xyz.Vector[T]) Triangle[T] {
	return Triangle[T]{A: a, B: b, C: c}
}

func (t Triangle[T]) String() string {
	return fmt.Sprintf("tri(%v, %v, %v)", t.A, t.B, t.C)
}

// Area returns the area of t.
func (t Triangle[T]) Area() T {
	ab, ac := t.B.Sub(t.A), t.C.Sub(t.A)
	if len(ab) == 2 {
		return fmath.Abs(xyz.Cross2(ab, ac)) / 2
	}
	return xyz.Length(xyz.Cross(ab, ac)) / 2
}

// Normal returns the normal of the 3D triangle t, which is (B-A)×(C-A).
// Its length is twice the area of t.
func (t Triangle[T]) Normal() xyz.Vector[T] {
	return xyz.Cross(t.B.Sub(t.A), t.C.Sub(t.A))
}

// Centroid returns the average of the vertices of t.
func (t Triangle[T]) Centroid() xyz.Vector[T] {
	return t.A.Add(t.B).Add(t.C).Div(3)
}

// Barycentric returns the barycentric coordinates of the 2D point p
// relative to t, such that p = u·A + v·B + w·C. If t is degenerate,
// all three are NaN or infinite.
func (t Triangle[T]) Barycentric(p xyz.Vector[T]) (u, v, w T) {
	ab, ac, ap := t.B.Sub(t.A), t.C.Sub(t.A), p.Sub(t.A)
	d := xyz.Cross2(ab, ac)
	v = xyz.Cross2(ap, ac) / d
	w = xyz.Cross2(ab, ap) / d
	return 1 - v - w, v, w
}

// Contains reports whether the 2D point p is inside t or within
// margin of its edges, measured in barycentric coordinates.
func (t Triangle[T]) Contains(p xyz.Vector[T], margin T) bool {
	u, v, w := t.Barycentric(p)
	return u >= -margin && v >= -margin && w >= -margin
}
