package mesh_test

import (
	"errors"
	"math"
	"testing"

	"deedles.dev/xyz"
	"deedles.dev/xyz/format"
	"deedles.dev/xyz/geom"
	"deedles.dev/xyz/mesh"
	"deedles.dev/xyz/transform"
	"github.com/stretchr/testify/require"
)

const margin = 1e-12

func TestTriangleMesh(t *testing.T) {
	var m mesh.TriangleMesh[float64]
	a := m.AddVertex(xyz.Vec3(0.0, 0, 0))
	b := m.AddVertex(xyz.Vec3(2.0, 0, 0))
	c := m.AddVertex(xyz.Vec3(0.0, 2, 0))
	d := m.AddVertex(xyz.Vec3(0.0, 0, 2))
	require.NoError(t, m.AddFace(a, b, c))
	require.NoError(t, m.AddFace(a, d, b))

	err := m.AddFace(a, b, 4)
	require.True(t, errors.Is(err, mesh.ErrInvalidFace))
	require.Len(t, m.Faces, 2)

	require.InDelta(t, 4, m.Area(), margin)
	require.Equal(t, []xyz.Vector[float64]{
		xyz.Vec3(0.0, 0, 1),
		xyz.Vec3(0.0, 1, 0),
	}, m.FaceNormals())

	moved := m.Transform(transform.Translate3(1.0, 1, 1))
	require.Equal(t, xyz.Vec3(3.0, 1, 1), moved.Vertices[b])
	require.Equal(t, xyz.Vec3(2.0, 0, 0), m.Vertices[b])
	require.Equal(t, m.Faces, moved.Faces)
}

func TestRectangle(t *testing.T) {
	m, err := mesh.Rectangle(geom.Rt(0.0, 0, 3, 2), 3, 2)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 12)
	require.Len(t, m.Faces, 12)
	require.InDelta(t, 6, m.Area(), margin)

	require.Equal(t, xyz.Vec2(0.0, 0), m.Vertices[0])
	require.Equal(t, xyz.Vec2(3.0, 0), m.Vertices[3])
	require.Equal(t, xyz.Vec2(1.0, 1), m.Vertices[5])
	require.Equal(t, xyz.Vec2(3.0, 2), m.Vertices[11])
	require.Equal(t, geom.Rt(0.0, 0, 3, 2), m.Bounds())

	for i := range m.Faces {
		tri := m.Triangle(i)
		require.Greater(t, xyz.Cross2(tri.B.Sub(tri.A), tri.C.Sub(tri.A)), 0.0, "face %v is clockwise", i)
	}

	_, err = mesh.Rectangle(geom.Rt(0.0, 0, 1, 1), 0, 2)
	require.True(t, errors.Is(err, mesh.ErrInvalidShape))
}

func TestStar(t *testing.T) {
	m, err := mesh.Star(5, 1.0, 2)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 11)
	require.Len(t, m.Faces, 10)
	require.True(t, xyz.ApproxEqual(xyz.Vec2(0.0, 2), m.Vertices[1], margin))

	for i, v := range m.Vertices[1:] {
		expected := 2.0
		if i%2 != 0 {
			expected = 1
		}
		require.InDelta(t, expected, xyz.Length(v), margin)
	}

	// Each face has the center, a tip and a notch, with the 36°
	// between tip and notch.
	require.InDelta(t, 10*0.5*2*math.Sin(math.Pi/5), m.Area(), 1e-9)

	_, err = mesh.Star(1, 1.0, 2)
	require.True(t, errors.Is(err, mesh.ErrInvalidShape))
}

func TestHollowPolygon(t *testing.T) {
	m, err := mesh.HollowPolygon(4, 1.0, 2)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 8)
	require.Len(t, m.Faces, 8)

	// A square with corners at distance 2 has area 8, its hole area 2.
	require.InDelta(t, 6, m.Area(), 1e-9)

	for i := range m.Faces {
		tri := m.Triangle(i)
		require.Greater(t, xyz.Cross2(tri.B.Sub(tri.A), tri.C.Sub(tri.A)), 0.0)
	}

	_, err = mesh.HollowPolygon(2, 1.0, 2)
	require.True(t, errors.Is(err, mesh.ErrInvalidShape))
	_, err = mesh.HollowPolygon(6, 2.0, 1)
	require.True(t, errors.Is(err, mesh.ErrInvalidShape))
}

func TestAlign(t *testing.T) {
	m, err := mesh.Rectangle(geom.Rt(-1.0, -1, 1, 1), 1, 1)
	require.NoError(t, err)

	a := m.Align(geom.Rt(0.0, 0, 10, 10), geom.EdgeTop|geom.EdgeRight)
	require.True(t, xyz.ApproxEqual(xyz.Vec2(8.0, 8), a.Bounds().Min, margin))
	require.True(t, xyz.ApproxEqual(xyz.Vec2(10.0, 10), a.Bounds().Max, margin))

	a = m.Align(geom.Rt(0.0, 0, 10, 10), geom.EdgeLeft|geom.EdgeRight|geom.EdgeBottom)
	require.True(t, xyz.ApproxEqual(xyz.Vec2(0.0, 0), a.Bounds().Min, margin))
	require.True(t, xyz.ApproxEqual(xyz.Vec2(10.0, 2), a.Bounds().Max, margin))
}

func TestPack(t *testing.T) {
	m, err := mesh.Rectangle(geom.Rt(0.0, 0, 1, 1), 1, 1)
	require.NoError(t, err)

	a, indices, err := m.Pack(format.XYFloat32)
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())
	require.Equal(t, []uint32{0, 1, 3, 0, 3, 2}, indices)
	require.Equal(t, xyz.Vec2(1.0, 1), a.At(3))

	_, _, err = m.Pack(format.XYZFloat32)
	require.True(t, errors.Is(err, xyz.ErrIncorrectArgumentCount))
}
