package xyz

import "fmt"

// Invert returns the inverse of the square matrix m.
//
// Matrices up to 4×4 are inverted through their adjugate, which is
// computed in closed form. ErrSingularMatrix is returned only if the
// determinant is exactly zero, so a nearly singular matrix produces a
// poorly conditioned inverse instead of an error. Larger matrices are
// inverted through an LUDecomposition.
//
// Integer matrices can be inverted after converting them with
// ConvertMatrix.
func Invert[T Float](m Matrix[T]) (Matrix[T], error) {
	m.mustBeSquare()

	var adj Matrix[T]
	switch m.rows {
	case 0:
		return m.Clone(), nil
	case 1:
		adj = Mat[T](1, 1, 1)
	case 2:
		adj = adjugate2(m.values)
	case 3:
		adj = adjugate3(m.values)
	case 4:
		adj = adjugate4(m.values)
	default:
		lu, err := NewLUDecomposition(m)
		if err != nil {
			return Matrix[T]{}, fmt.Errorf("invert %vx%v matrix: %w", m.rows, m.cols, err)
		}
		return lu.Inverse(), nil
	}

	// Expanding along the first row of m gives its determinant.
	det := Dot(m.Row(0), adj.Col(0))
	if det == 0 {
		tracer().Debugf("determinant of %vx%v matrix is zero", m.rows, m.cols)
		return Matrix[T]{}, fmt.Errorf("invert %vx%v matrix: %w", m.rows, m.cols, ErrSingularMatrix)
	}

	adj.ScaleAssign(1 / det)
	return adj, nil
}

func adjugate2[T Scalar](a []T) Matrix[T] {
	return Mat(2, 2,
		a[3], -a[1],
		-a[2], a[0],
	)
}

func adjugate3[T Scalar](a []T) Matrix[T] {
	return Mat(3, 3,
		a[4]*a[8]-a[5]*a[7], a[2]*a[7]-a[1]*a[8], a[1]*a[5]-a[2]*a[4],
		a[5]*a[6]-a[3]*a[8], a[0]*a[8]-a[2]*a[6], a[2]*a[3]-a[0]*a[5],
		a[3]*a[7]-a[4]*a[6], a[1]*a[6]-a[0]*a[7], a[0]*a[4]-a[1]*a[3],
	)
}

func adjugate4[T Scalar](a []T) Matrix[T] {
	// 2×2 determinants of the top two rows (s) and the bottom two rows
	// (c).
	s0 := a[0]*a[5] - a[4]*a[1]
	s1 := a[0]*a[6] - a[4]*a[2]
	s2 := a[0]*a[7] - a[4]*a[3]
	s3 := a[1]*a[6] - a[5]*a[2]
	s4 := a[1]*a[7] - a[5]*a[3]
	s5 := a[2]*a[7] - a[6]*a[3]

	c0 := a[8]*a[13] - a[12]*a[9]
	c1 := a[8]*a[14] - a[12]*a[10]
	c2 := a[8]*a[15] - a[12]*a[11]
	c3 := a[9]*a[14] - a[13]*a[10]
	c4 := a[9]*a[15] - a[13]*a[11]
	c5 := a[10]*a[15] - a[14]*a[11]

	return Mat(4, 4,
		a[5]*c5-a[6]*c4+a[7]*c3,
		-a[1]*c5+a[2]*c4-a[3]*c3,
		a[13]*s5-a[14]*s4+a[15]*s3,
		-a[9]*s5+a[10]*s4-a[11]*s3,

		-a[4]*c5+a[6]*c2-a[7]*c1,
		a[0]*c5-a[2]*c2+a[3]*c1,
		-a[12]*s5+a[14]*s2-a[15]*s1,
		a[8]*s5-a[10]*s2+a[11]*s1,

		a[4]*c4-a[5]*c2+a[7]*c0,
		-a[0]*c4+a[1]*c2-a[3]*c0,
		a[12]*s4-a[13]*s2+a[15]*s0,
		-a[8]*s4+a[9]*s2-a[11]*s0,

		-a[4]*c3+a[5]*c1-a[6]*c0,
		a[0]*c3-a[1]*c1+a[2]*c0,
		-a[12]*s3+a[13]*s1-a[14]*s0,
		a[8]*s3-a[9]*s1+a[10]*s0,
	)
}
