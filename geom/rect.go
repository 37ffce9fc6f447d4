package geom

import (
	"fmt"

	"deedles.dev/xyz"
)

// Rect is an axis-aligned 2D rectangle. It contains the points p with
// Min.X <= p.X <= Max.X and Min.Y <= p.Y <= Max.Y. A well-formed Rect
// has Min <= Max componentwise. Canon returns a well-formed copy.
type Rect[T xyz.Scalar] struct {
	Min, Max xyz.Vector[T]
}

// Rt is shorthand for Rect{Min: Vec2(x0, y0), Max: Vec2(x1, y1)}.
func Rt[T xyz.Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: xyz.Vec2(x0, y0), Max: xyz.Vec2(x1, y1)}
}

// UnitRect returns the rectangle from (0, 0) to (1, 1).
func UnitRect[T xyz.Scalar]() Rect[T] {
	return Rt[T](0, 0, 1, 1)
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("(%v,%v)-(%v,%v)", r.Min.X(), r.Min.Y(), r.Max.X(), r.Max.Y())
}

// Dx returns the width of r.
func (r Rect[T]) Dx() T { return r.Max.X() - r.Min.X() }

// Dy returns the height of r.
func (r Rect[T]) Dy() T { return r.Max.Y() - r.Min.Y() }

// Size returns the width and height of r as a vector.
func (r Rect[T]) Size() xyz.Vector[T] { return r.Max.Sub(r.Min) }

// Canon returns a copy of r with Min and Max swapped as necessary to
// make it well-formed.
func (r Rect[T]) Canon() Rect[T] {
	return Rt(
		min(r.Min.X(), r.Max.X()),
		min(r.Min.Y(), r.Max.Y()),
		max(r.Min.X(), r.Max.X()),
		max(r.Min.Y(), r.Max.Y()),
	)
}

// Add returns r translated by v.
func (r Rect[T]) Add(v xyz.Vector[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Resize returns a rectangle with the same Min as r and the given
// size.
func (r Rect[T]) Resize(size xyz.Vector[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Clone(), Max: r.Min.Add(size)}
}

// Center returns the point in the middle of r.
func (r Rect[T]) Center() xyz.Vector[T] {
	return r.Min.Add(r.Max).Div(2)
}

// CenterAt returns r moved so that its center is at p.
func (r Rect[T]) CenterAt(p xyz.Vector[T]) Rect[T] {
	return r.Add(p.Sub(r.Center()))
}

// Empty reports whether r contains no area.
func (r Rect[T]) Empty() bool {
	return r.Min.X() >= r.Max.X() || r.Min.Y() >= r.Max.Y()
}

// Contains reports whether p is inside r or on its boundary.
func (r Rect[T]) Contains(p xyz.Vector[T]) bool {
	return r.Outcode(p) == EdgeNone
}

// Outcode returns the edges of r that p lies beyond. It is EdgeNone if
// p is inside r or on its boundary.
func (r Rect[T]) Outcode(p xyz.Vector[T]) (code Edges) {
	switch {
	case p.X() < r.Min.X():
		code |= EdgeLeft
	case p.X() > r.Max.X():
		code |= EdgeRight
	}
	switch {
	case p.Y() < r.Min.Y():
		code |= EdgeBottom
	case p.Y() > r.Max.Y():
		code |= EdgeTop
	}
	return code
}
