package xyz

import "errors"

var (
	// ErrIncorrectArgumentCount is returned when a vector or matrix is
	// constructed from a number of values that does not match its
	// dimensions.
	ErrIncorrectArgumentCount = errors.New("incorrect argument count")

	// ErrSingularMatrix is returned when a matrix that has no inverse
	// is inverted or decomposed.
	ErrSingularMatrix = errors.New("singular matrix")
)
