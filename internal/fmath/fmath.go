// Package fmath provides generic versions of the math functions used
// throughout xyz. float32 arguments are handled by math32 so that
// they are not needlessly widened to float64.
package fmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

func Sqrt[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

func Abs[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Abs(v))
	}
	return T(math.Abs(float64(x)))
}

func Sin[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

func Cos[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

func Tan[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Tan(v))
	}
	return T(math.Tan(float64(x)))
}

// Acos returns the arccosine of x. x is clamped to [-1, 1] first, as
// dot products of unit vectors regularly end up just outside of it.
func Acos[T constraints.Float](x T) T {
	x = max(-1, min(x, 1))
	if v, ok := any(x).(float32); ok {
		return T(math32.Acos(v))
	}
	return T(math.Acos(float64(x)))
}

func Asin[T constraints.Float](x T) T {
	x = max(-1, min(x, 1))
	if v, ok := any(x).(float32); ok {
		return T(math32.Asin(v))
	}
	return T(math.Asin(float64(x)))
}

func Atan2[T constraints.Float](y, x T) T {
	if v, ok := any(y).(float32); ok {
		return T(math32.Atan2(v, float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

func Floor[T constraints.Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Floor(v))
	}
	return T(math.Floor(float64(x)))
}

// Mod returns x modulo y with the sign of y, unlike math.Mod.
func Mod[T constraints.Float](x, y T) T {
	var r T
	if v, ok := any(x).(float32); ok {
		r = T(math32.Mod(v, float32(y)))
	} else {
		r = T(math.Mod(float64(x), float64(y)))
	}
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T constraints.Float]() T {
	var x T
	if _, ok := any(x).(float32); ok {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}
