package xyz_test

import (
	"errors"
	"testing"

	"deedles.dev/xyz"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	m, err := xyz.NewMatrix(2, 3, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6, m.At(1, 2))
	require.Equal(t, xyz.Vec3(4, 5, 6), m.Row(1))
	require.Equal(t, xyz.Vec2(2, 5), m.Col(1))

	_, err = xyz.NewMatrix(2, 2, 1, 2, 3)
	require.True(t, errors.Is(err, xyz.ErrIncorrectArgumentCount))
	require.Panics(t, func() { xyz.Mat(3, 3, 1.0) })

	_, err = xyz.MatrixFromRows(xyz.Vec2(1, 2), xyz.Vec3(1, 2, 3))
	require.True(t, errors.Is(err, xyz.ErrIncorrectArgumentCount))

	m, err = xyz.MatrixFromCols(xyz.Vec2(1, 2), xyz.Vec2(3, 4))
	require.NoError(t, err)
	require.Equal(t, xyz.Mat(2, 2, 1, 3, 2, 4), m)
}

func TestMatrixAccess(t *testing.T) {
	m := xyz.Mat[int](3, 3)
	m.Set(0, 2, 7)
	m.SetRow(1, xyz.Vec3(1, 2, 3))
	m.SetCol(0, xyz.Vec3(9, 8, 7))
	require.Equal(t, xyz.Mat(3, 3,
		9, 0, 7,
		8, 2, 3,
		7, 0, 0,
	), m)

	require.Panics(t, func() { m.At(3, 0) })
	require.Panics(t, func() { m.Set(0, -1, 1) })
	require.Panics(t, func() { m.SetRow(0, xyz.Vec2(1, 2)) })

	c := m.Clone()
	c.Set(0, 0, 0)
	require.Equal(t, 9, m.At(0, 0))
}

func TestMatrixArithmetic(t *testing.T) {
	m := xyz.Mat(2, 2, 1, 2, 3, 4)
	n := xyz.Mat(2, 2, 5, 6, 7, 8)

	require.Equal(t, xyz.Mat(2, 2, 6, 8, 10, 12), m.Add(n))
	require.Equal(t, xyz.Mat(2, 2, -4, -4, -4, -4), m.Sub(n))
	require.Equal(t, xyz.Mat(2, 2, -1, -2, -3, -4), m.Neg())
	require.Equal(t, xyz.Mat(2, 2, 3, 6, 9, 12), m.Scale(3))
	require.Equal(t, xyz.Mat(2, 2, 2, 3, 3, 4), n.Div(2))
	require.Equal(t, xyz.Mat(2, 2, 19, 22, 43, 50), m.Mul(n))
	require.Equal(t, xyz.Mat(2, 2, 23, 34, 31, 46), n.Mul(m))

	c := m.Clone()
	c.AddAssign(n)
	c.SubAssign(m)
	require.Equal(t, n, c)
	c.ScaleAssign(2)
	require.Equal(t, n.Scale(2), c)

	require.Panics(t, func() { m.Add(xyz.Mat[int](2, 3)) })
	require.Panics(t, func() { m.Mul(xyz.Mat[int](3, 2)) })
}

func TestMatrixVector(t *testing.T) {
	m := xyz.Mat(3, 3,
		2, 1, 4,
		0, 3, 2,
		1, 2, 3,
	)
	v := xyz.Vec3(-1, 0, 1)

	require.Equal(t, xyz.Vec3(2, 2, 2), m.MulVec(v))
	require.Equal(t, xyz.Vec3(-1, 1, -1), xyz.VecMul(v, m))
	require.Equal(t, v, xyz.Identity[int](3).MulVec(v))

	r := xyz.Mat(2, 3, 1, 2, 3, 4, 5, 6)
	require.Equal(t, xyz.Vec2(14, 32), r.MulVec(xyz.Vec3(1, 2, 3)))
	require.Panics(t, func() { r.MulVec(xyz.Vec2(1, 2)) })
}

func TestTranspose(t *testing.T) {
	m := xyz.Mat(2, 3, 1, 2, 3, 4, 5, 6)
	mt := m.Transpose()
	require.Equal(t, xyz.Mat(3, 2, 1, 4, 2, 5, 3, 6), mt)
	require.Equal(t, m, mt.Transpose())

	s := xyz.Mat(3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	orig := s.Clone()
	s.TransposeInPlace()
	require.Equal(t, xyz.Mat(3, 3, 1, 4, 7, 2, 5, 8, 3, 6, 9), s)
	s.TransposeInPlace()
	require.True(t, orig.Equal(s))

	require.Panics(t, func() { m.TransposeInPlace() })
}

func TestSubmatrix(t *testing.T) {
	m := xyz.Mat(3, 4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	)

	require.Equal(t, xyz.Mat(2, 2, 6, 7, 10, 11), m.Submatrix(1, 1, 2, 2))
	require.Equal(t, xyz.Mat(2, 3, 1, 3, 4, 9, 11, 12), m.Minor(1, 1))
	require.Panics(t, func() { m.Submatrix(2, 2, 2, 2) })

	m.SetSubmatrix(0, 2, xyz.Mat(2, 2, 0, 0, 0, 0))
	require.Equal(t, xyz.Mat(3, 4,
		1, 2, 0, 0,
		5, 6, 0, 0,
		9, 10, 11, 12,
	), m)
}

func TestMatrixString(t *testing.T) {
	require.Equal(t, "[1 2; 3 4]", xyz.Mat(2, 2, 1, 2, 3, 4).String())
	require.Equal(t, "[]", xyz.Matrix[int]{}.String())
}

func TestApproxEqualMatrix(t *testing.T) {
	m := xyz.Mat(2, 2, 1.0, 2.0, 3.0, 4.0)
	n := xyz.Mat(2, 2, 1.0, 2.0, 3.0, 4.0+1e-10)
	require.False(t, m.Equal(n))
	require.True(t, xyz.ApproxEqualMatrix(m, n, 1e-9))
	require.False(t, xyz.ApproxEqualMatrix(m, n, 1e-11))
	require.False(t, xyz.ApproxEqualMatrix(m, xyz.Mat[float64](1, 4, 1, 2, 3, 4), 1))
}

func TestConvertMatrix(t *testing.T) {
	m := xyz.ConvertMatrix[float64](xyz.Mat(1, 2, 1, 2))
	require.Equal(t, xyz.Mat(1, 2, 1.0, 2.0), m)
}
