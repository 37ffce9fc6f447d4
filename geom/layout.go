package geom

import (
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/xyz"
)

// hsplit splits a rectangle into two rectangles side by side, the
// first of which is w wide.
func hsplit[T xyz.Scalar](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(xyz.Vec2(w, r.Dy()))
	right = r.Resize(xyz.Vec2(r.Dx()-w, r.Dy())).Add(xyz.Vec2(w, 0))
	return left, right
}

// vsplit splits a rectangle into two rectangles stacked vertically,
// the first of which is h high and shares r's Min.
func vsplit[T xyz.Scalar](r Rect[T], h T) (bottom, top Rect[T]) {
	bottom = r.Resize(xyz.Vec2(r.Dx(), h))
	top = r.Resize(xyz.Vec2(r.Dx(), r.Dy()-h)).Add(xyz.Vec2(0, h))
	return bottom, top
}

// TiledEvenVertically yields numtiles rectangles of equal height that
// together cover r, starting at r.Min and moving up.
func TiledEvenVertically[T xyz.Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		h := r.Dy() / T(numtiles)
		c, rest := vsplit(r, h)
		for i := range numtiles {
			if i == numtiles-1 {
				// Absorb rounding in the last tile so that the tiles
				// reach r.Max exactly.
				c = Rect[T]{Min: c.Min, Max: xyz.Vec2(c.Max.X(), r.Max.Y())}
			}
			if !yield(c) {
				return
			}
			c, rest = vsplit(rest, h)
		}
	}
}

// TiledEvenHorizontally yields numtiles rectangles of equal width
// that together cover r, from left to right.
func TiledEvenHorizontally[T xyz.Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		w := r.Dx() / T(numtiles)
		c, rest := hsplit(r, w)
		for i := range numtiles {
			if i == numtiles-1 {
				c = Rect[T]{Min: c.Min, Max: xyz.Vec2(r.Max.X(), c.Max.Y())}
			}
			if !yield(c) {
				return
			}
			c, rest = hsplit(rest, w)
		}
	}
}

// Grid yields the cells of r divided into cols columns and rows rows.
// Cells are yielded row by row starting from the bottom, each row from
// left to right, so cell i is in column i%cols and row i/cols.
func Grid[T xyz.Scalar](r Rect[T], cols, rows int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		for row := range TiledEvenVertically(rows, r) {
			for cell := range TiledEvenHorizontally(cols, row) {
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// TileGrid fills tiles with the cells of r as produced by Grid. The
// final row is only partially filled if len(tiles) is not a multiple
// of cols.
func TileGrid[T xyz.Scalar](tiles []Rect[T], r Rect[T], cols int) {
	rows := len(tiles) / cols
	if len(tiles)%cols != 0 {
		rows++
	}
	insertTilesFromSeq(tiles, Grid(r, cols, rows))
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Unspecified axes are
// centered.
func Align[T xyz.Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	minX, minY := inner.Min.X(), inner.Min.Y()
	maxX, maxY := inner.Max.X(), inner.Max.Y()

	switch {
	case edges&EdgeTop != 0:
		minY, maxY = outer.Max.Y()-inner.Dy(), outer.Max.Y()
		if edges&EdgeBottom != 0 {
			minY = outer.Min.Y()
		}
	case edges&EdgeBottom != 0:
		minY, maxY = outer.Min.Y(), outer.Min.Y()+inner.Dy()
	}
	switch {
	case edges&EdgeLeft != 0:
		minX, maxX = outer.Min.X(), outer.Min.X()+inner.Dx()
		if edges&EdgeRight != 0 {
			maxX = outer.Max.X()
		}
	case edges&EdgeRight != 0:
		minX, maxX = outer.Max.X()-inner.Dx(), outer.Max.X()
	}

	return Rt(minX, minY, maxX, maxY)
}

func insertTilesFromSeq[T xyz.Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		if i >= len(tiles) {
			return
		}
		tiles[i] = t
	}
}
