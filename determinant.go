package xyz

// Determinant returns the determinant of the square matrix m. Small
// matrices use closed-form expressions. Larger ones are expanded
// along their first row by minors, recursively.
//
// Determinant panics if m is not square. The determinant of a 0×0
// matrix is 1.
func Determinant[T Scalar](m Matrix[T]) T {
	m.mustBeSquare()

	v := m.values
	switch m.rows {
	case 0:
		return 1
	case 1:
		return v[0]
	case 2:
		return v[0]*v[3] - v[1]*v[2]
	case 3:
		return v[0]*(v[4]*v[8]-v[5]*v[7]) +
			v[1]*(v[5]*v[6]-v[3]*v[8]) +
			v[2]*(v[3]*v[7]-v[4]*v[6])
	}

	cols := make([]int, m.cols)
	for i := range cols {
		cols[i] = i
	}
	return minorDeterminant(m, 0, cols)
}

// minorDeterminant returns the determinant of the submatrix of m made
// up of the rows from row and down and the columns listed in cols.
// The last two levels are computed directly.
func minorDeterminant[T Scalar](m Matrix[T], row int, cols []int) T {
	if len(cols) == 2 {
		a := m.values[row*m.cols:]
		b := m.values[(row+1)*m.cols:]
		return a[cols[0]]*b[cols[1]] - a[cols[1]]*b[cols[0]]
	}

	rest := make([]int, len(cols)-1)
	copy(rest, cols[1:])

	var det T
	for i, c := range cols {
		if i > 0 {
			// Put the previously excluded column back in place of c,
			// keeping rest in ascending order.
			rest[i-1] = cols[i-1]
		}

		x := m.values[row*m.cols+c]
		if x == 0 {
			continue
		}

		d := x * minorDeterminant(m, row+1, rest)
		if i%2 == 0 {
			det += d
		} else {
			det -= d
		}
	}
	return det
}

// Cofactors returns the cofactor matrix of the square matrix m, the
// matrix whose element (i, j) is the signed determinant of m without
// row i and column j.
func Cofactors[T Scalar](m Matrix[T]) Matrix[T] {
	m.mustBeSquare()

	c := Mat[T](m.rows, m.cols)
	if m.rows == 1 {
		c.values[0] = 1
		return c
	}

	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			d := Determinant(m.Minor(i, j))
			if (i+j)%2 != 0 {
				d = -d
			}
			c.values[i*c.cols+j] = d
		}
	}
	return c
}

// Adjugate returns the transpose of the cofactor matrix of m.
func Adjugate[T Scalar](m Matrix[T]) Matrix[T] {
	return Cofactors(m).Transpose()
}
