package xyz

import (
	"fmt"

	"deedles.dev/xyz/internal/fmath"
)

// tinyPivot replaces exactly zero pivots during decomposition so that
// a singular matrix still yields a usable, if meaningless,
// factorization.
const tinyPivot = 1e-20

// LUDecomposition is the LU factorization of a square matrix with
// scaled partial pivoting. Both factors are stored in a single
// matrix: U on and above the diagonal and L, whose diagonal is
// implicitly all ones, below it.
//
// An LUDecomposition is immutable once created.
type LUDecomposition[T Float] struct {
	lu    Matrix[T]
	pivot []int
	sign  T
}

// NewLUDecomposition factors the square matrix m. The rows of m are
// scaled by their largest absolute value when choosing pivots. If any
// row is entirely zero, ErrSingularMatrix is returned.
func NewLUDecomposition[T Float](m Matrix[T]) (*LUDecomposition[T], error) {
	m.mustBeSquare()

	n := m.rows
	lu := m.Clone()
	a := lu.values
	pivot := make([]int, n)
	sign := T(1)

	scale := make([]T, n)
	for i := 0; i < n; i++ {
		var big T
		for _, v := range a[i*n : (i+1)*n] {
			big = max(big, fmath.Abs(v))
		}
		if big == 0 {
			tracer().Debugf("row %v of %vx%v matrix is zero", i, n, n)
			return nil, fmt.Errorf("LU decomposition: row %v is zero: %w", i, ErrSingularMatrix)
		}
		scale[i] = 1 / big
	}

	for k := 0; k < n; k++ {
		imax := k
		var big T
		for i := k; i < n; i++ {
			v := scale[i] * fmath.Abs(a[i*n+k])
			if v > big {
				big, imax = v, i
			}
		}

		if imax != k {
			swapRows(a, n, imax, k)
			scale[imax] = scale[k]
			sign = -sign
		}
		pivot[k] = imax

		if a[k*n+k] == 0 {
			tracer().Debugf("zero pivot in column %v replaced by %v", k, tinyPivot)
			a[k*n+k] = tinyPivot
		}

		p := a[k*n+k]
		for i := k + 1; i < n; i++ {
			f := a[i*n+k] / p
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return &LUDecomposition[T]{
		lu:    lu,
		pivot: pivot,
		sign:  sign,
	}, nil
}

func swapRows[T Scalar](a []T, n, r1, r2 int) {
	row1 := a[r1*n : (r1+1)*n]
	row2 := a[r2*n : (r2+1)*n]
	for j := range row1 {
		row1[j], row2[j] = row2[j], row1[j]
	}
}

// Size returns the number of rows and columns of the decomposed
// matrix.
func (d *LUDecomposition[T]) Size() int { return d.lu.rows }

// Pivot returns the row swaps performed during decomposition. During
// elimination of column k, row k was swapped with row Pivot()[k].
func (d *LUDecomposition[T]) Pivot() []int {
	p := make([]int, len(d.pivot))
	copy(p, d.pivot)
	return p
}

// L returns the unit lower triangular factor.
func (d *LUDecomposition[T]) L() Matrix[T] {
	n := d.lu.rows
	l := Identity[T](n)
	for i := 1; i < n; i++ {
		copy(l.values[i*n:i*n+i], d.lu.values[i*n:i*n+i])
	}
	return l
}

// U returns the upper triangular factor.
func (d *LUDecomposition[T]) U() Matrix[T] {
	n := d.lu.rows
	u := Mat[T](n, n)
	for i := 0; i < n; i++ {
		copy(u.values[i*n+i:(i+1)*n], d.lu.values[i*n+i:(i+1)*n])
	}
	return u
}

// Permute applies the row swaps of the decomposition to a copy of m,
// so that d.L().Mul(d.U()) equals d.Permute(original).
func (d *LUDecomposition[T]) Permute(m Matrix[T]) Matrix[T] {
	if m.rows != d.lu.rows {
		panic(fmt.Errorf("cannot permute %vx%v matrix with %v pivots", m.rows, m.cols, len(d.pivot)))
	}

	r := m.Clone()
	for k, p := range d.pivot {
		if p != k {
			swapRows(r.values, r.cols, k, p)
		}
	}
	return r
}

// Determinant returns the determinant of the decomposed matrix.
func (d *LUDecomposition[T]) Determinant() T {
	det := d.sign
	n := d.lu.rows
	for i := 0; i < n; i++ {
		det *= d.lu.values[i*n+i]
	}
	return det
}

// Solve returns x such that m·x = b, where m is the decomposed matrix.
func (d *LUDecomposition[T]) Solve(b Vector[T]) Vector[T] {
	n := d.lu.rows
	if len(b) != n {
		panic(fmt.Errorf("cannot solve %vx%v system for %vD vector", n, n, len(b)))
	}

	a := d.lu.values
	x := b.Clone()

	// Forward substitution, unscrambling the permutation as it goes.
	// first is the index of the first non-zero element of x, which
	// lets leading zeros be skipped.
	first := -1
	for i := 0; i < n; i++ {
		p := d.pivot[i]
		sum := x[p]
		x[p] = x[i]
		if first >= 0 {
			for j := first; j < i; j++ {
				sum -= a[i*n+j] * x[j]
			}
		} else if sum != 0 {
			first = i
		}
		x[i] = sum
	}

	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i*n+j] * x[j]
		}
		x[i] = sum / a[i*n+i]
	}

	return x
}

// SolveMatrix returns X such that m·X = b, where m is the decomposed
// matrix, by solving for each column of b in turn.
func (d *LUDecomposition[T]) SolveMatrix(b Matrix[T]) Matrix[T] {
	if b.rows != d.lu.rows {
		panic(fmt.Errorf("cannot solve %vx%v system for %vx%v matrix", d.lu.rows, d.lu.rows, b.rows, b.cols))
	}

	x := Mat[T](b.rows, b.cols)
	for c := 0; c < b.cols; c++ {
		x.SetCol(c, d.Solve(b.Col(c)))
	}
	return x
}

// Inverse returns the inverse of the decomposed matrix.
func (d *LUDecomposition[T]) Inverse() Matrix[T] {
	return d.SolveMatrix(Identity[T](d.lu.rows))
}
