package geom

import "deedles.dev/xyz"

// ClipSegment clips the 2D segment s to r using the Cohen–Sutherland
// algorithm. It returns the parameters along s of the start and end of
// the part of s that lies inside r. If no part of s is inside r, ok is
// false.
//
// Clipping s.Reverse() yields 1-t1 and 1-t0.
func ClipSegment[T xyz.Float](s LineSegment[T], r Rect[T]) (t0, t1 T, ok bool) {
	d := s.Vector()
	p0, p1 := s.Start.Clone(), s.End.Clone()
	t0, t1 = 0, 1
	c0, c1 := r.Outcode(p0), r.Outcode(p1)

	// Each endpoint crosses at most one horizontal and one vertical
	// edge, so after four clips both endpoints are on r up to rounding.
	for range 5 {
		if c0|c1 == EdgeNone {
			return t0, t1, true
		}
		if c0&c1 != EdgeNone {
			return 0, 0, false
		}

		if c0 != EdgeNone {
			t0 = clipParam(s.Start, d, r, c0)
			p0 = clipPoint(s.Start, d, r, c0, t0)
			c0 = r.Outcode(p0)
			continue
		}

		t1 = clipParam(s.Start, d, r, c1)
		p1 = clipPoint(s.Start, d, r, c1, t1)
		c1 = r.Outcode(p1)
	}

	return t0, t1, t0 <= t1
}

// ClipSegmentUnit clips s to the unit square from (0, 0) to (1, 1).
func ClipSegmentUnit[T xyz.Float](s LineSegment[T]) (t0, t1 T, ok bool) {
	return ClipSegment(s, UnitRect[T]())
}

// clipParam returns the parameter at which the line start+t·d crosses
// the first edge of r named in code, checking the top and bottom
// edges before the left and right ones.
func clipParam[T xyz.Float](start, d xyz.Vector[T], r Rect[T], code Edges) T {
	switch {
	case code&EdgeTop != 0:
		return (r.Max.Y() - start.Y()) / d.Y()
	case code&EdgeBottom != 0:
		return (r.Min.Y() - start.Y()) / d.Y()
	case code&EdgeRight != 0:
		return (r.Max.X() - start.X()) / d.X()
	default:
		return (r.Min.X() - start.X()) / d.X()
	}
}

// clipPoint returns the point at parameter t, snapped exactly onto the
// edge selected by code so that its new outcode no longer includes
// that edge.
func clipPoint[T xyz.Float](start, d xyz.Vector[T], r Rect[T], code Edges, t T) xyz.Vector[T] {
	p := start.Add(d.Mul(t))
	switch {
	case code&EdgeTop != 0:
		p[1] = r.Max.Y()
	case code&EdgeBottom != 0:
		p[1] = r.Min.Y()
	case code&EdgeRight != 0:
		p[0] = r.Max.X()
	default:
		p[0] = r.Min.X()
	}
	return p
}
