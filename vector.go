package xyz

import (
	"fmt"

	"deedles.dev/xyz/internal/fmath"
)

// Vector is an ordered tuple of numbers. Its dimension is its length,
// which is fixed when the vector is created.
//
// Methods that return a Vector always return a new one. The Assign
// methods modify the receiver's elements instead.
type Vector[T Scalar] []T

// Vec returns a vector containing a copy of values.
func Vec[T Scalar](values ...T) Vector[T] {
	v := make(Vector[T], len(values))
	copy(v, values)
	return v
}

// Vec2 is shorthand for Vec(x, y).
func Vec2[T Scalar](x, y T) Vector[T] { return Vector[T]{x, y} }

// Vec3 is shorthand for Vec(x, y, z).
func Vec3[T Scalar](x, y, z T) Vector[T] { return Vector[T]{x, y, z} }

// Vec4 is shorthand for Vec(x, y, z, w).
func Vec4[T Scalar](x, y, z, w T) Vector[T] { return Vector[T]{x, y, z, w} }

// Zero returns the zero vector of dimension n.
func Zero[T Scalar](n int) Vector[T] {
	return make(Vector[T], n)
}

// NewVector returns a vector of dimension n. If values are given,
// there must be exactly n of them, otherwise ErrIncorrectArgumentCount
// is returned.
func NewVector[T Scalar](n int, values ...T) (Vector[T], error) {
	if len(values) != 0 && len(values) != n {
		return nil, fmt.Errorf("vector of dimension %v from %v values: %w", n, len(values), ErrIncorrectArgumentCount)
	}

	v := make(Vector[T], n)
	copy(v, values)
	return v, nil
}

// ConvertVector converts the elements of v to type U.
func ConvertVector[U, T Scalar](v Vector[T]) Vector[U] {
	r := make(Vector[U], len(v))
	for i, c := range v {
		r[i] = U(c)
	}
	return r
}

func mustMatch[T Scalar](v, w Vector[T]) {
	if len(v) != len(w) {
		panic(fmt.Errorf("vector dimension mismatch: %v != %v", len(v), len(w)))
	}
}

// Dim returns the dimension of v.
func (v Vector[T]) Dim() int { return len(v) }

func (v Vector[T]) X() T { return v[0] }
func (v Vector[T]) Y() T { return v[1] }
func (v Vector[T]) Z() T { return v[2] }
func (v Vector[T]) W() T { return v[3] }

// Clone returns a copy of v that does not share its elements.
func (v Vector[T]) Clone() Vector[T] { return Vec(v...) }

// Equal reports whether v and w have the same dimension and exactly
// the same elements.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

// Add returns v+w.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	mustMatch(v, w)
	r := make(Vector[T], len(v))
	for i := range v {
		r[i] = v[i] + w[i]
	}
	return r
}

// Sub returns v-w.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	mustMatch(v, w)
	r := make(Vector[T], len(v))
	for i := range v {
		r[i] = v[i] - w[i]
	}
	return r
}

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] {
	r := make(Vector[T], len(v))
	for i := range v {
		r[i] = -v[i]
	}
	return r
}

// Mul returns v scaled by k.
func (v Vector[T]) Mul(k T) Vector[T] {
	r := make(Vector[T], len(v))
	for i := range v {
		r[i] = v[i] * k
	}
	return r
}

// Div returns v divided by k.
func (v Vector[T]) Div(k T) Vector[T] {
	r := make(Vector[T], len(v))
	for i := range v {
		r[i] = v[i] / k
	}
	return r
}

// MulElem returns the component-wise product of v and w.
func (v Vector[T]) MulElem(w Vector[T]) Vector[T] {
	mustMatch(v, w)
	r := make(Vector[T], len(v))
	for i := range v {
		r[i] = v[i] * w[i]
	}
	return r
}

// DivElem returns the component-wise quotient of v and w.
func (v Vector[T]) DivElem(w Vector[T]) Vector[T] {
	mustMatch(v, w)
	r := make(Vector[T], len(v))
	for i := range v {
		r[i] = v[i] / w[i]
	}
	return r
}

// AddAssign adds w to v in place.
func (v Vector[T]) AddAssign(w Vector[T]) {
	mustMatch(v, w)
	for i := range v {
		v[i] += w[i]
	}
}

// SubAssign subtracts w from v in place.
func (v Vector[T]) SubAssign(w Vector[T]) {
	mustMatch(v, w)
	for i := range v {
		v[i] -= w[i]
	}
}

// MulAssign scales v by k in place.
func (v Vector[T]) MulAssign(k T) {
	for i := range v {
		v[i] *= k
	}
}

// DivAssign divides v by k in place.
func (v Vector[T]) DivAssign(k T) {
	for i := range v {
		v[i] /= k
	}
}

// Dot returns the dot product of v and w.
func Dot[T Scalar](v, w Vector[T]) (d T) {
	mustMatch(v, w)
	for i := range v {
		d += v[i] * w[i]
	}
	return d
}

// Cross returns the cross product of the 3D vectors v and w.
func Cross[T Scalar](v, w Vector[T]) Vector[T] {
	if len(v) != 3 || len(w) != 3 {
		panic(fmt.Errorf("cross product of %vD and %vD vectors", len(v), len(w)))
	}

	return Vector[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Cross2 returns the z component of the cross product of the 2D
// vectors v and w, which is positive when w is counterclockwise from
// v.
func Cross2[T Scalar](v, w Vector[T]) T {
	if len(v) != 2 || len(w) != 2 {
		panic(fmt.Errorf("2D cross product of %vD and %vD vectors", len(v), len(w)))
	}
	return v[0]*w[1] - v[1]*w[0]
}

// Normal returns the 2D vector v rotated 90 degrees counterclockwise.
func Normal[T Scalar](v Vector[T]) Vector[T] {
	return Vector[T]{-v[1], v[0]}
}

// LengthSquared returns the square of the length of v.
func LengthSquared[T Scalar](v Vector[T]) T {
	return Dot(v, v)
}

// Length returns the length of v.
func Length[T Float](v Vector[T]) T {
	return fmath.Sqrt(Dot(v, v))
}

// Unit returns v scaled to length 1. The unit vector of a zero vector
// is all NaN.
func Unit[T Float](v Vector[T]) Vector[T] {
	return v.Div(Length(v))
}

// IsNull reports whether every element of v is within margin of zero.
func IsNull[T Float](v Vector[T], margin T) bool {
	for _, c := range v {
		if !IsZero(c, margin) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether v and w have the same dimension and each
// pair of elements is within margin of each other.
func ApproxEqual[T Float](v, w Vector[T], margin T) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !AreEqual(v[i], w[i], margin) {
			return false
		}
	}
	return true
}

// Angle returns the smallest angle between v and w in radians. The
// result is in [0, π].
func Angle[T Float](v, w Vector[T]) T {
	return fmath.Acos(Dot(v, w) / (Length(v) * Length(w)))
}

// CCWAngle returns the counterclockwise angle from the 2D vector v to
// w in radians. The result is in [0, 2π).
func CCWAngle[T Float](v, w Vector[T]) T {
	a := fmath.Atan2(Cross2(v, w), Dot(v, w))
	if a < 0 {
		a += 2 * Pi[T]()
	}
	return a
}

// CWAngle returns the clockwise angle from the 2D vector v to w in
// radians. The result is in [0, 2π).
func CWAngle[T Float](v, w Vector[T]) T {
	return CCWAngle(w, v)
}

// Clamp returns a copy of v with every element clamped to [lo, hi].
func Clamp[T Scalar](v Vector[T], lo, hi T) Vector[T] {
	r := make(Vector[T], len(v))
	for i, c := range v {
		r[i] = max(lo, min(c, hi))
	}
	return r
}

// ClampVec returns a copy of v with each element clamped to the range
// given by the corresponding elements of lo and hi.
func ClampVec[T Scalar](v, lo, hi Vector[T]) Vector[T] {
	mustMatch(v, lo)
	mustMatch(v, hi)
	r := make(Vector[T], len(v))
	for i, c := range v {
		r[i] = max(lo[i], min(c, hi[i]))
	}
	return r
}

// Reflect returns v reflected about the plane or line with the given
// unit normal.
func Reflect[T Float](v, normal Vector[T]) Vector[T] {
	return v.Sub(normal.Mul(2 * Dot(v, normal)))
}

// Rotate returns the 2D vector v rotated counterclockwise by angle
// radians.
func Rotate[T Float](v Vector[T], angle T) Vector[T] {
	c, s := fmath.Cos(angle), fmath.Sin(angle)
	return Vector[T]{
		v[0]*c - v[1]*s,
		v[0]*s + v[1]*c,
	}
}
