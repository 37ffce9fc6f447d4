// Package geom provides lines, planes, triangles and rectangles built
// on the vectors of package xyz, along with the intersection and
// clipping routines that operate on them.
//
// Rectangles use a y-up convention: the top edge of a Rect is at
// Max.Y.
package geom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace { return tracing.Select("xyz.geom") }

// ErrInvalidPlane is returned when a plane would have a zero normal or
// its axes are not orthogonal.
var ErrInvalidPlane = errors.New("invalid plane")

// Edges is a bitmask representing zero or more edges of a rectangle.
// It doubles as the outcode of a point relative to a rectangle, with a
// bit set for each edge that the point is beyond.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf []byte
	for _, edge := range []struct {
		bit  Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e&edge.bit == 0 {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, edge.name...)
	}
	return string(buf)
}
