package xyz

import "deedles.dev/xyz/internal/fmath"

// DefaultMargin returns the margin used for approximate comparisons
// of T when the caller has no better idea.
func DefaultMargin[T Float]() T {
	var x T
	if _, ok := any(x).(float32); ok {
		return T(1e-5)
	}
	return T(1e-12)
}

// Approx is a value that compares equal to anything within Margin of
// it.
type Approx[T Float] struct {
	Value  T
	Margin T
}

// Near returns an Approx of v with the given margin.
func Near[T Float](v, margin T) Approx[T] {
	return Approx[T]{Value: v, Margin: margin}
}

func (a Approx[T]) Eq(v T) bool { return fmath.Abs(a.Value-v) <= a.Margin }
func (a Approx[T]) Ne(v T) bool { return !a.Eq(v) }

// Lt reports whether a is less than v by more than the margin.
func (a Approx[T]) Lt(v T) bool { return a.Value+a.Margin < v }
func (a Approx[T]) Le(v T) bool { return a.Value-a.Margin <= v }
func (a Approx[T]) Gt(v T) bool { return a.Value-a.Margin > v }
func (a Approx[T]) Ge(v T) bool { return a.Value+a.Margin >= v }

// IsZero reports whether v is within margin of zero.
func IsZero[T Float](v, margin T) bool {
	return fmath.Abs(v) <= margin
}

// AreEqual reports whether a and b are within margin of each other.
func AreEqual[T Float](a, b, margin T) bool {
	return fmath.Abs(a-b) <= margin
}
