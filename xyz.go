// Package xyz provides vectors and matrices for geometry code along
// with the usual linear algebra on top of them: determinants,
// inversion and LU decomposition.
//
// Go has no way to parameterize a type by a number, so the dimension
// of a Vector or Matrix is chosen when it is created rather than at
// compile time. It never changes afterwards. Combining values of
// different dimensions is a programmer error and panics, just like
// indexing a slice out of range.
package xyz

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the element types of vectors and
// matrices.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is a constraint for the element types that operations which
// need division, square roots or trigonometry can handle.
type Float interface {
	constraints.Float
}

func tracer() tracing.Trace {
	return tracing.Select("xyz")
}
