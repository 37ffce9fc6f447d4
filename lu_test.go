package xyz_test

import (
	"errors"
	"testing"

	"deedles.dev/xyz"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestLUDecomposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyz")
	defer teardown()

	m := xyz.Mat(3, 3,
		1.0, 2, 3,
		4, 5, 6,
		7, 8, 10,
	)
	lu, err := xyz.NewLUDecomposition(m)
	require.NoError(t, err)
	require.Equal(t, 3, lu.Size())

	l, u := lu.L(), lu.U()
	for i := 0; i < 3; i++ {
		require.Equal(t, 1.0, l.At(i, i))
		for j := i + 1; j < 3; j++ {
			require.Equal(t, 0.0, l.At(i, j))
			require.Equal(t, 0.0, u.At(j, i))
		}
	}
	require.True(t, xyz.ApproxEqualMatrix(lu.Permute(m), l.Mul(u), 1e-12))

	// The largest scaled pivot in the first column is 7 in the last
	// row.
	require.Equal(t, 2, lu.Pivot()[0])
	require.InDelta(t, -3.0, lu.Determinant(), 1e-12)
}

func TestLUSolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyz")
	defer teardown()

	for name, m := range invertible {
		t.Run(name, func(t *testing.T) {
			lu, err := xyz.NewLUDecomposition(m)
			require.NoError(t, err)

			b := xyz.Zero[float64](m.Rows())
			for i := range b {
				b[i] = float64(i*i) - 3
			}
			x := lu.Solve(b)
			require.True(t, xyz.ApproxEqual(b, m.MulVec(x), 1e-9), "%v", m.MulVec(x))

			require.InDelta(t, xyz.Determinant(m), lu.Determinant(), 1e-9)

			inv := lu.Inverse()
			require.True(t, xyz.ApproxEqualMatrix(xyz.Identity[float64](m.Rows()), m.Mul(inv), 1e-9))
		})
	}
}

func TestLUSolveMatrix(t *testing.T) {
	m := invertible["4x4"]
	lu, err := xyz.NewLUDecomposition(m)
	require.NoError(t, err)

	b := xyz.Mat(4, 2,
		1.0, 0,
		2, 1,
		3, 0,
		4, 1,
	)
	x := lu.SolveMatrix(b)
	require.True(t, xyz.ApproxEqualMatrix(b, m.Mul(x), 1e-9))
	require.Panics(t, func() { lu.Solve(xyz.Vec3(1.0, 2, 3)) })
}

func TestLUZeroPivot(t *testing.T) {
	// Singular, but without a zero row, so the decomposition succeeds
	// with a tiny pivot and a determinant of practically zero.
	m := xyz.Mat(3, 3,
		1.0, 2, 3,
		2, 4, 6,
		1, 0, 1,
	)
	lu, err := xyz.NewLUDecomposition(m)
	require.NoError(t, err)
	require.InDelta(t, 0, lu.Determinant(), 1e-12)
}

func TestLUSingular(t *testing.T) {
	m := xyz.Mat(3, 3,
		1.0, 2, 3,
		0, 0, 0,
		7, 8, 9,
	)
	_, err := xyz.NewLUDecomposition(m)
	require.True(t, errors.Is(err, xyz.ErrSingularMatrix))
}

func BenchmarkInvert(b *testing.B) {
	m4 := invertible["4x4"]
	m6 := invertible["6x6"]
	b.Run("4x4", func(b *testing.B) {
		for b.Loop() {
			xyz.Invert(m4)
		}
	})
	b.Run("6x6", func(b *testing.B) {
		for b.Loop() {
			xyz.Invert(m6)
		}
	})
}
