package geom

import (
	"fmt"

	"deedles.dev/xyz"
)

// Line is an infinite line through Point in the direction of Vector.
// The point at parameter t is Point + t·Vector.
type Line[T xyz.Float] struct {
	Point  xyz.Vector[T]
	Vector xyz.Vector[T]
}

// At returns the point on l at parameter t.
func (l Line[T]) At(t T) xyz.Vector[T] {
	return l.Point.Add(l.Vector.Mul(t))
}

func (l Line[T]) String() string {
	return fmt.Sprintf("%v+t%v", l.Point, l.Vector)
}

// LineSegment is the part of a line between Start and End. The point
// at parameter t in [0, 1] is Start + t·(End - Start).
type LineSegment[T xyz.Float] struct {
	Start xyz.Vector[T]
	End   xyz.Vector[T]
}

// Seg returns the segment from start to end.
func Seg[T xyz.Float](start, end xyz.Vector[T]) LineSegment[T] {
	return LineSegment[T]{Start: start, End: end}
}

func (s LineSegment[T]) String() string {
	return fmt.Sprintf("%v->%v", s.Start, s.End)
}

// Vector returns End - Start.
func (s LineSegment[T]) Vector() xyz.Vector[T] { return s.End.Sub(s.Start) }

// Length returns the distance between Start and End.
func (s LineSegment[T]) Length() T { return xyz.Length(s.Vector()) }

// Direction returns the unit vector pointing from Start to End.
func (s LineSegment[T]) Direction() xyz.Vector[T] { return xyz.Unit(s.Vector()) }

// At returns the point at parameter t.
func (s LineSegment[T]) At(t T) xyz.Vector[T] {
	return s.Start.Add(s.Vector().Mul(t))
}

// Line returns the infinite line that s lies on, parametrized so that
// the parameters of s and the line agree.
func (s LineSegment[T]) Line() Line[T] {
	return Line[T]{Point: s.Start, Vector: s.Vector()}
}

// Reverse returns the segment from End to Start.
func (s LineSegment[T]) Reverse() LineSegment[T] {
	return LineSegment[T]{Start: s.End, End: s.Start}
}

// Sub returns the part of s between parameters t0 and t1.
func (s LineSegment[T]) Sub(t0, t1 T) LineSegment[T] {
	return LineSegment[T]{Start: s.At(t0), End: s.At(t1)}
}

// Extent is a range of parameters along a segment.
type Extent[T xyz.Float] struct {
	Start, End T
}

// Len returns the length of the range.
func (e Extent[T]) Len() T { return e.End - e.Start }
