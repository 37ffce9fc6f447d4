package mesh

import (
	"fmt"

	"deedles.dev/xyz"
	"deedles.dev/xyz/coord"
	"deedles.dev/xyz/geom"
)

// Rectangle returns a 2D mesh covering r with a grid of cols×rows
// cells, each split into two triangles. Vertices are numbered row by
// row from r.Min.
func Rectangle[T xyz.Float](r geom.Rect[T], cols, rows int) (*TriangleMesh[T], error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("rectangle with %vx%v cells: %w", cols, rows, ErrInvalidShape)
	}

	m := TriangleMesh[T]{
		Vertices: make([]xyz.Vector[T], (cols+1)*(rows+1)),
		Faces:    make([][3]int, 0, 2*cols*rows),
	}
	vertex := func(col, row int) int { return row*(cols+1) + col }

	i := 0
	for cell := range geom.Grid(r, cols, rows) {
		col, row := i%cols, i/cols
		i++

		m.Vertices[vertex(col, row)] = cell.Min
		m.Vertices[vertex(col+1, row)] = xyz.Vec2(cell.Max.X(), cell.Min.Y())
		m.Vertices[vertex(col, row+1)] = xyz.Vec2(cell.Min.X(), cell.Max.Y())
		m.Vertices[vertex(col+1, row+1)] = cell.Max

		bl, br := vertex(col, row), vertex(col+1, row)
		tl, tr := vertex(col, row+1), vertex(col+1, row+1)
		m.Faces = append(m.Faces, [3]int{bl, br, tr}, [3]int{bl, tr, tl})
	}

	return &m, nil
}

// Star returns a 2D mesh of a star centered at the origin with the
// given number of points. The tips of the points are at distance outer
// from the center, with the first pointing up, and the notches between
// them are at distance inner.
func Star[T xyz.Float](points int, inner, outer T) (*TriangleMesh[T], error) {
	if points < 2 {
		return nil, fmt.Errorf("star with %v points: %w", points, ErrInvalidShape)
	}

	var m TriangleMesh[T]
	center := m.AddVertex(xyz.Zero[T](2))

	n := 2 * points
	step := 2 * xyz.Pi[T]() / T(n)
	for i := range n {
		radius := outer
		if i%2 != 0 {
			radius = inner
		}
		p := coord.PolarPoint[T]{Radius: radius, Angle: xyz.Pi[T]()/2 + T(i)*step}
		m.AddVertex(p.ToCartesian())
	}
	for i := range n {
		m.Faces = append(m.Faces, [3]int{center, 1 + i, 1 + (i+1)%n})
	}

	return &m, nil
}

// HollowPolygon returns a 2D mesh of a regular polygon with the given
// number of sides centered at the origin and with a polygonal hole in
// the middle. inner and outer are the distances from the center to the
// corners of the hole and of the outside.
func HollowPolygon[T xyz.Float](sides int, inner, outer T) (*TriangleMesh[T], error) {
	if sides < 3 {
		return nil, fmt.Errorf("polygon with %v sides: %w", sides, ErrInvalidShape)
	}
	if inner >= outer {
		return nil, fmt.Errorf("polygon with inner radius %v and outer radius %v: %w", inner, outer, ErrInvalidShape)
	}

	var m TriangleMesh[T]
	step := 2 * xyz.Pi[T]() / T(sides)
	for i := range sides {
		a := T(i) * step
		m.AddVertex(coord.PolarPoint[T]{Radius: outer, Angle: a}.ToCartesian())
		m.AddVertex(coord.PolarPoint[T]{Radius: inner, Angle: a}.ToCartesian())
	}

	n := 2 * sides
	for i := 0; i < n; i += 2 {
		o0, i0 := i, i+1
		o1, i1 := (i+2)%n, (i+3)%n
		m.Faces = append(m.Faces, [3]int{o0, o1, i1}, [3]int{o0, i1, i0})
	}

	return &m, nil
}
