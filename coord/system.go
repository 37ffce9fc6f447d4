package coord

import (
	"fmt"

	"deedles.dev/xyz"
)

// CoordinateSystem is a 3D coordinate system given by its origin and
// axes in world coordinates. The axes need not be orthogonal or of
// unit length, but they must be linearly independent.
type CoordinateSystem[T xyz.Float] struct {
	origin  xyz.Vector[T]
	toWorld xyz.Matrix[T]
	toLocal xyz.Matrix[T]
}

// NewCoordinateSystem returns the coordinate system with the given
// origin and axes. If the axes are linearly dependent, it returns an
// error wrapping xyz.ErrSingularMatrix.
func NewCoordinateSystem[T xyz.Float](origin, x, y, z xyz.Vector[T]) (*CoordinateSystem[T], error) {
	toWorld, err := xyz.MatrixFromCols(x, y, z)
	if err != nil {
		return nil, fmt.Errorf("coordinate system axes: %w", err)
	}
	if toWorld.Rows() != 3 || len(origin) != 3 {
		return nil, fmt.Errorf("coordinate system of %vD axes with %vD origin: %w", toWorld.Rows(), len(origin), xyz.ErrIncorrectArgumentCount)
	}

	toLocal, err := xyz.Invert(toWorld)
	if err != nil {
		return nil, fmt.Errorf("coordinate system axes %v, %v, %v: %w", x, y, z, err)
	}

	return &CoordinateSystem[T]{
		origin:  origin.Clone(),
		toWorld: toWorld,
		toLocal: toLocal,
	}, nil
}

// Origin returns the origin of cs in world coordinates.
func (cs *CoordinateSystem[T]) Origin() xyz.Vector[T] { return cs.origin.Clone() }

// Axis returns axis i of cs in world coordinates.
func (cs *CoordinateSystem[T]) Axis(i int) xyz.Vector[T] { return cs.toWorld.Col(i) }

// ToWorld converts p from cs's coordinates to world coordinates.
func (cs *CoordinateSystem[T]) ToWorld(p xyz.Vector[T]) xyz.Vector[T] {
	return cs.toWorld.MulVec(p).Add(cs.origin)
}

// FromWorld converts p from world coordinates to cs's coordinates.
func (cs *CoordinateSystem[T]) FromWorld(p xyz.Vector[T]) xyz.Vector[T] {
	return cs.toLocal.MulVec(p.Sub(cs.origin))
}

// Matrix returns the 4×4 homogeneous matrix that converts from cs's
// coordinates to world coordinates.
func (cs *CoordinateSystem[T]) Matrix() xyz.Matrix[T] {
	m := xyz.Identity[T](4)
	m.SetSubmatrix(0, 0, cs.toWorld)
	for i, v := range cs.origin {
		m.Set(i, 3, v)
	}
	return m
}
