package geom_test

import (
	"testing"

	"deedles.dev/xyz"
	"deedles.dev/xyz/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const margin = 1e-12

func seg(x0, y0, x1, y1 float64) geom.LineSegment[float64] {
	return geom.Seg(xyz.Vec2(x0, y0), xyz.Vec2(x1, y1))
}

func TestIntersectSegments(t *testing.T) {
	tests := []struct {
		name   string
		a, b   geom.LineSegment[float64]
		rel    geom.LineRelationship
		ta, tb float64
	}{
		{"Crossing", seg(-4, -2, 4, 2), seg(3, -9, -1, 3), geom.Intersecting, 0.5, 0.75},
		{"Touching", seg(0, 0, 1, 0), seg(1, -1, 1, 1), geom.Intersecting, 1, 0.5},
		{"Perpendicular", seg(0, 0, 2, 2), seg(0, 2, 2, 0), geom.Intersecting, 0.5, 0.5},
		{"Short", seg(0, 0, 1, 0), seg(2, -1, 2, 1), geom.NonIntersecting, 0, 0},
		{"Parallel", seg(0, 0, 1, 0), seg(0, 1, 1, 1), geom.NonIntersecting, 0, 0},
		{"Colinear", seg(0, 0, 1, 0), seg(2, 0, 3, 0), geom.Colinear, 0, 0},
		{"ColinearReversed", seg(0, 0, 1, 1), seg(3, 3, -1, -1), geom.Colinear, 0, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rel, ta, tb := geom.IntersectSegments(test.a, test.b, margin)
			require.Equal(t, test.rel, rel, "%v", rel)
			require.InDelta(t, test.ta, ta, margin)
			require.InDelta(t, test.tb, tb, margin)
		})
	}
}

func TestIntersectSegmentsMargin(t *testing.T) {
	a := seg(0, 0, 1, 0)
	b := seg(1+1e-9, -1, 1+1e-9, 1)

	rel, _, _ := geom.IntersectSegments(a, b, 1e-12)
	require.Equal(t, geom.NonIntersecting, rel)

	rel, ta, tb := geom.IntersectSegments(a, b, 1e-6)
	require.Equal(t, geom.Intersecting, rel)
	require.Equal(t, 1.0, ta)
	require.InDelta(t, 0.5, tb, 1e-9)
}

func TestIntersectLines(t *testing.T) {
	a := seg(-4, -2, 4, 2).Line()
	b := seg(3, -9, -1, 3).Line()
	rel, ta, tb := geom.IntersectLines(a, b, margin)
	require.Equal(t, geom.Intersecting, rel)
	require.True(t, xyz.ApproxEqual(a.At(ta), b.At(tb), margin))
	require.True(t, xyz.ApproxEqual(xyz.Vec2(0.0, 0), a.At(ta), margin))

	// Lines extend past the ends of their segments.
	rel, ta, tb = geom.IntersectLines(seg(0, 0, 1, 0).Line(), seg(3, 1, 3, 2).Line(), margin)
	require.Equal(t, geom.Intersecting, rel)
	require.InDelta(t, 3, ta, margin)
	require.InDelta(t, -1, tb, margin)

	rel, _, _ = geom.IntersectLines(seg(0, 0, 1, 1).Line(), seg(5, 5, 6, 6).Line(), margin)
	require.Equal(t, geom.Overlapping, rel)

	rel, _, _ = geom.IntersectLines(seg(0, 0, 1, 1).Line(), seg(5, 6, 6, 7).Line(), margin)
	require.Equal(t, geom.NonIntersecting, rel)
}

func TestOverlapSegments(t *testing.T) {
	tests := []struct {
		name     string
		a, b     geom.LineSegment[float64]
		onA, onB geom.Extent[float64]
		ok       bool
	}{
		{"Partial", seg(0, 0, 4, 0), seg(2, 0, 6, 0), geom.Extent[float64]{0.5, 1}, geom.Extent[float64]{0, 0.5}, true},
		{"Reversed", seg(0, 0, 4, 0), seg(6, 0, 2, 0), geom.Extent[float64]{0.5, 1}, geom.Extent[float64]{0.5, 1}, true},
		{"Contained", seg(0, 0, 4, 4), seg(1, 1, 2, 2), geom.Extent[float64]{0.25, 0.5}, geom.Extent[float64]{0, 1}, true},
		{"Disjoint", seg(0, 0, 1, 0), seg(2, 0, 3, 0), geom.Extent[float64]{1, 1}, geom.Extent[float64]{0, 0}, false},
		{"Touching", seg(0, 0, 1, 0), seg(1, 0, 2, 0), geom.Extent[float64]{1, 1}, geom.Extent[float64]{0, 0}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			onA, onB, ok := geom.OverlapSegments(test.a, test.b, margin)
			require.Equal(t, test.ok, ok)
			assert.InDelta(t, test.onA.Start, onA.Start, margin)
			assert.InDelta(t, test.onA.End, onA.End, margin)
			assert.InDelta(t, test.onB.Start, onB.Start, margin)
			assert.InDelta(t, test.onB.End, onB.End, margin)
		})
	}
}

func TestLineRelationshipString(t *testing.T) {
	require.Equal(t, "Colinear", geom.Colinear.String())
	require.Equal(t, "LineRelationship(12)", geom.LineRelationship(12).String())
}

func TestIntersectPlanes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyz.geom")
	defer teardown()

	plane := func(o, n xyz.Vector[float64]) geom.Plane[float64] {
		p, err := geom.NewPlane(o, n)
		require.NoError(t, err)
		return p
	}

	t.Run("Parallel", func(t *testing.T) {
		a := plane(xyz.Vec3(0.0, 0, 0), xyz.Vec3(0.0, 0, 1))
		b := plane(xyz.Vec3(0.0, 0, 5), xyz.Vec3(0.0, 0, 2))
		_, ok := geom.IntersectPlanes(a, b, margin)
		require.False(t, ok)
	})

	t.Run("Antiparallel", func(t *testing.T) {
		a := plane(xyz.Vec3(0.0, 0, 0), xyz.Vec3(1.0, 1, 0))
		b := plane(xyz.Vec3(1.0, 0, 0), xyz.Vec3(-1.0, -1, 0))
		_, ok := geom.IntersectPlanes(a, b, margin)
		require.False(t, ok)
	})

	tests := []struct {
		name string
		a, b geom.Plane[float64]
	}{
		{
			"Simple",
			plane(xyz.Vec3(2.0, 0, 0), xyz.Vec3(1.0, 0, 0)),
			plane(xyz.Vec3(0.0, 3, 0), xyz.Vec3(0.0, 1, 1)),
		},
		{
			"Origin",
			plane(xyz.Vec3(0.0, 0, 0), xyz.Vec3(1.0, 0, 0)),
			plane(xyz.Vec3(0.0, 0, 0), xyz.Vec3(0.0, 1, 1)),
		},
		{
			"ZMajor",
			plane(xyz.Vec3(1.0, 2, 3), xyz.Vec3(1.0, 0, 0)),
			plane(xyz.Vec3(-4.0, 5, 1), xyz.Vec3(0.0, 1, 0)),
		},
		{
			"Oblique",
			plane(xyz.Vec3(1.0, -2, 7), xyz.Vec3(3.0, -1, 2)),
			plane(xyz.Vec3(0.5, 4, -3), xyz.Vec3(-2.0, 5, 1)),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			line, ok := geom.IntersectPlanes(test.a, test.b, margin)
			require.True(t, ok)
			require.Equal(t, xyz.Cross(test.a.Normal, test.b.Normal), line.Vector)
			for _, tt := range []float64{0, 1, -2.5} {
				p := line.At(tt)
				require.True(t, test.a.Contains(p, 1e-9), "%v: %v", p, test.a.Distance(p))
				require.True(t, test.b.Contains(p, 1e-9), "%v: %v", p, test.b.Distance(p))
			}
		})
	}
}

func TestIntersectLinePlane(t *testing.T) {
	p, err := geom.NewPlane(xyz.Vec3(0.0, 0, 2), xyz.Vec3(0.0, 0, 1))
	require.NoError(t, err)

	l := geom.Line[float64]{Point: xyz.Vec3(1.0, 1, 0), Vector: xyz.Vec3(0.0, 1, 4)}
	tt, ok := geom.IntersectLinePlane(l, p, margin)
	require.True(t, ok)
	require.InDelta(t, 0.5, tt, margin)
	require.True(t, p.Contains(l.At(tt), margin))

	l.Vector = xyz.Vec3(1.0, 1, 0)
	_, ok = geom.IntersectLinePlane(l, p, margin)
	require.False(t, ok)
}

func TestIntersectLineTriangle(t *testing.T) {
	tri := geom.Tri(xyz.Vec3(0.0, 0, 0), xyz.Vec3(2.0, 0, 0), xyz.Vec3(0.0, 2, 0))

	down := geom.Line[float64]{Point: xyz.Vec3(0.5, 0.5, 3), Vector: xyz.Vec3(0.0, 0, -1)}
	tt, ok := geom.IntersectLineTriangle(down, tri, margin)
	require.True(t, ok)
	require.InDelta(t, 3, tt, margin)

	miss := geom.Line[float64]{Point: xyz.Vec3(1.5, 1.5, 3), Vector: xyz.Vec3(0.0, 0, -1)}
	_, ok = geom.IntersectLineTriangle(miss, tri, margin)
	require.False(t, ok)

	parallel := geom.Line[float64]{Point: xyz.Vec3(0.5, 0.5, 3), Vector: xyz.Vec3(1.0, 0, 0)}
	_, ok = geom.IntersectLineTriangle(parallel, tri, margin)
	require.False(t, ok)
}
