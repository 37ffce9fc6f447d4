// Package mesh provides triangle meshes and builders for a few common
// shapes.
package mesh

import (
	"errors"
	"fmt"

	"deedles.dev/xyz"
	"deedles.dev/xyz/format"
	"deedles.dev/xyz/geom"
	"deedles.dev/xyz/transform"
)

var (
	// ErrInvalidFace is returned when a face refers to a vertex that
	// is not in the mesh.
	ErrInvalidFace = errors.New("invalid face")

	// ErrInvalidShape is returned by the builders when the requested
	// shape can not be built, such as a polygon with two sides.
	ErrInvalidShape = errors.New("invalid shape")
)

// TriangleMesh is a set of vertices and the triangular faces between
// them. Each face lists the indices of its three vertices in
// counterclockwise order. All vertices have the same dimension.
type TriangleMesh[T xyz.Float] struct {
	Vertices []xyz.Vector[T]
	Faces    [][3]int
}

// AddVertex adds v to m and returns its index.
func (m *TriangleMesh[T]) AddVertex(v xyz.Vector[T]) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace adds the face with vertices a, b and c to m.
func (m *TriangleMesh[T]) AddFace(a, b, c int) error {
	for _, i := range [...]int{a, b, c} {
		if i < 0 || i >= len(m.Vertices) {
			return fmt.Errorf("face (%v, %v, %v) with %v vertices: %w", a, b, c, len(m.Vertices), ErrInvalidFace)
		}
	}
	m.Faces = append(m.Faces, [3]int{a, b, c})
	return nil
}

// Triangle returns face i as a triangle.
func (m *TriangleMesh[T]) Triangle(i int) geom.Triangle[T] {
	f := m.Faces[i]
	return geom.Tri(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
}

// Area returns the total area of the faces of m.
func (m *TriangleMesh[T]) Area() (area T) {
	for i := range m.Faces {
		area += m.Triangle(i).Area()
	}
	return area
}

// FaceNormals returns the unit normal of each face of a 3D mesh.
func (m *TriangleMesh[T]) FaceNormals() []xyz.Vector[T] {
	normals := make([]xyz.Vector[T], len(m.Faces))
	for i := range m.Faces {
		normals[i] = xyz.Unit(m.Triangle(i).Normal())
	}
	return normals
}

// Transform returns a copy of m with the homogeneous transformation
// matrix t applied to every vertex.
func (m *TriangleMesh[T]) Transform(t xyz.Matrix[T]) *TriangleMesh[T] {
	r := TriangleMesh[T]{
		Vertices: make([]xyz.Vector[T], len(m.Vertices)),
		Faces:    make([][3]int, len(m.Faces)),
	}
	for i, v := range m.Vertices {
		r.Vertices[i] = transform.TransformPoint(t, v)
	}
	copy(r.Faces, m.Faces)
	return &r
}

// Bounds returns the smallest rectangle containing the x and y
// coordinates of the vertices of m.
func (m *TriangleMesh[T]) Bounds() geom.Rect[T] {
	if len(m.Vertices) == 0 {
		return geom.Rect[T]{}
	}

	v := m.Vertices[0]
	r := geom.Rt(v.X(), v.Y(), v.X(), v.Y())
	for _, v := range m.Vertices[1:] {
		r.Min[0], r.Min[1] = min(r.Min[0], v.X()), min(r.Min[1], v.Y())
		r.Max[0], r.Max[1] = max(r.Max[0], v.X()), max(r.Max[1], v.Y())
	}
	return r
}

// Align returns a copy of the 2D mesh m moved so that the given edges
// of its bounds line up with the same edges of outer, as geom.Align
// does. Opposite edges scale the mesh along that axis to fit.
func (m *TriangleMesh[T]) Align(outer geom.Rect[T], edges geom.Edges) *TriangleMesh[T] {
	b := m.Bounds()
	a := geom.Align(outer, b, edges)

	sx, sy := T(1), T(1)
	if b.Dx() != 0 {
		sx = a.Dx() / b.Dx()
	}
	if b.Dy() != 0 {
		sy = a.Dy() / b.Dy()
	}

	t := transform.Translate2(a.Min.X(), a.Min.Y()).
		Mul(transform.Scale2(sx, sy)).
		Mul(transform.Translate2(-b.Min.X(), -b.Min.Y()))
	return m.Transform(t)
}

// Pack converts the vertices of m into f and returns them with the
// vertex indices of the faces, three per face. The dimension of the
// mesh must match the number of components of f.
func (m *TriangleMesh[T]) Pack(f format.Format) (*format.Array, []uint32, error) {
	a := format.NewArray(f, len(m.Vertices))
	for i, v := range m.Vertices {
		if len(v) != f.Components() {
			return nil, nil, fmt.Errorf("pack %vD vertex %v as %v: %w", len(v), i, f, xyz.ErrIncorrectArgumentCount)
		}
		a.Append(xyz.ConvertVector[float64](v))
	}

	indices := make([]uint32, 0, 3*len(m.Faces))
	for _, face := range m.Faces {
		indices = append(indices, uint32(face[0]), uint32(face[1]), uint32(face[2]))
	}
	return a, indices, nil
}
