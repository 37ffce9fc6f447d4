package xyz

import (
	"fmt"
	"strings"
)

// Matrix is a rows×cols grid of numbers stored in row-major order.
// The zero Matrix has no rows or columns. Like Vector, the shape of a
// matrix never changes after it is created.
type Matrix[T Scalar] struct {
	rows, cols int
	values     []T
}

// NewMatrix returns a rows×cols matrix. If values are given, there
// must be exactly rows*cols of them, listed row by row. Otherwise
// ErrIncorrectArgumentCount is returned.
func NewMatrix[T Scalar](rows, cols int, values ...T) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		panic(fmt.Errorf("invalid matrix shape %vx%v", rows, cols))
	}
	if len(values) != 0 && len(values) != rows*cols {
		return Matrix[T]{}, fmt.Errorf("%vx%v matrix from %v values: %w", rows, cols, len(values), ErrIncorrectArgumentCount)
	}

	m := Matrix[T]{rows: rows, cols: cols, values: make([]T, rows*cols)}
	copy(m.values, values)
	return m, nil
}

// Mat is like NewMatrix but panics if the number of values is wrong.
// It is intended for matrix literals.
func Mat[T Scalar](rows, cols int, values ...T) Matrix[T] {
	m, err := NewMatrix(rows, cols, values...)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity[T Scalar](n int) Matrix[T] {
	m := Mat[T](n, n)
	for i := 0; i < n; i++ {
		m.values[i*n+i] = 1
	}
	return m
}

// MatrixFromRows returns a matrix whose rows are copies of rows. All
// of the rows must have the same dimension.
func MatrixFromRows[T Scalar](rows ...Vector[T]) (Matrix[T], error) {
	if len(rows) == 0 {
		return Matrix[T]{}, nil
	}

	m := Mat[T](len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.cols {
			return Matrix[T]{}, fmt.Errorf("row %v has %v values, expected %v: %w", r, len(row), m.cols, ErrIncorrectArgumentCount)
		}
		copy(m.values[r*m.cols:], row)
	}
	return m, nil
}

// MatrixFromCols returns a matrix whose columns are copies of cols.
// All of the columns must have the same dimension.
func MatrixFromCols[T Scalar](cols ...Vector[T]) (Matrix[T], error) {
	m, err := MatrixFromRows(cols...)
	if err != nil {
		return m, err
	}
	return m.Transpose(), nil
}

// ConvertMatrix converts the elements of m to type U.
func ConvertMatrix[U, T Scalar](m Matrix[T]) Matrix[U] {
	r := Mat[U](m.rows, m.cols)
	for i, v := range m.values {
		r.values[i] = U(v)
	}
	return r
}

func (m Matrix[T]) mustMatch(n Matrix[T]) {
	if m.rows != n.rows || m.cols != n.cols {
		panic(fmt.Errorf("matrix shape mismatch: %vx%v != %vx%v", m.rows, m.cols, n.rows, n.cols))
	}
}

func (m Matrix[T]) mustBeSquare() {
	if m.rows != m.cols {
		panic(fmt.Errorf("%vx%v matrix is not square", m.rows, m.cols))
	}
}

func (m Matrix[T]) index(r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Errorf("index (%v, %v) out of range for %vx%v matrix", r, c, m.rows, m.cols))
	}
	return r*m.cols + c
}

func (m Matrix[T]) Rows() int { return m.rows }
func (m Matrix[T]) Cols() int { return m.cols }

// IsSquare reports whether m has as many rows as columns.
func (m Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// At returns the element at row r and column c.
func (m Matrix[T]) At(r, c int) T { return m.values[m.index(r, c)] }

// Set sets the element at row r and column c to v.
func (m Matrix[T]) Set(r, c int, v T) { m.values[m.index(r, c)] = v }

// Values returns a copy of the elements of m in row-major order.
func (m Matrix[T]) Values() []T {
	v := make([]T, len(m.values))
	copy(v, m.values)
	return v
}

// Clone returns a copy of m that does not share its storage.
func (m Matrix[T]) Clone() Matrix[T] {
	return Matrix[T]{rows: m.rows, cols: m.cols, values: m.Values()}
}

// Row returns a copy of row r.
func (m Matrix[T]) Row(r int) Vector[T] {
	start := m.index(r, 0)
	return Vec(m.values[start : start+m.cols]...)
}

// Col returns a copy of column c.
func (m Matrix[T]) Col(c int) Vector[T] {
	v := make(Vector[T], m.rows)
	for r := range v {
		v[r] = m.values[m.index(r, c)]
	}
	return v
}

// SetRow replaces row r with v.
func (m Matrix[T]) SetRow(r int, v Vector[T]) {
	if len(v) != m.cols {
		panic(fmt.Errorf("row of %v values in %vx%v matrix", len(v), m.rows, m.cols))
	}
	copy(m.values[m.index(r, 0):], v)
}

// SetCol replaces column c with v.
func (m Matrix[T]) SetCol(c int, v Vector[T]) {
	if len(v) != m.rows {
		panic(fmt.Errorf("column of %v values in %vx%v matrix", len(v), m.rows, m.cols))
	}
	for r, x := range v {
		m.values[m.index(r, c)] = x
	}
}

// Equal reports whether m and n have the same shape and exactly the
// same elements.
func (m Matrix[T]) Equal(n Matrix[T]) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	return Vector[T](m.values).Equal(n.values)
}

// ApproxEqualMatrix reports whether m and n have the same shape and
// each pair of elements is within margin of each other.
func ApproxEqualMatrix[T Float](m, n Matrix[T], margin T) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	return ApproxEqual(Vector[T](m.values), n.values, margin)
}

// Add returns m+n.
func (m Matrix[T]) Add(n Matrix[T]) Matrix[T] {
	m.mustMatch(n)
	return Matrix[T]{rows: m.rows, cols: m.cols, values: Vector[T](m.values).Add(n.values)}
}

// Sub returns m-n.
func (m Matrix[T]) Sub(n Matrix[T]) Matrix[T] {
	m.mustMatch(n)
	return Matrix[T]{rows: m.rows, cols: m.cols, values: Vector[T](m.values).Sub(n.values)}
}

// Neg returns -m.
func (m Matrix[T]) Neg() Matrix[T] {
	return Matrix[T]{rows: m.rows, cols: m.cols, values: Vector[T](m.values).Neg()}
}

// Scale returns m with every element multiplied by k.
func (m Matrix[T]) Scale(k T) Matrix[T] {
	return Matrix[T]{rows: m.rows, cols: m.cols, values: Vector[T](m.values).Mul(k)}
}

// Div returns m with every element divided by k.
func (m Matrix[T]) Div(k T) Matrix[T] {
	return Matrix[T]{rows: m.rows, cols: m.cols, values: Vector[T](m.values).Div(k)}
}

// AddAssign adds n to m in place.
func (m Matrix[T]) AddAssign(n Matrix[T]) {
	m.mustMatch(n)
	Vector[T](m.values).AddAssign(n.values)
}

// SubAssign subtracts n from m in place.
func (m Matrix[T]) SubAssign(n Matrix[T]) {
	m.mustMatch(n)
	Vector[T](m.values).SubAssign(n.values)
}

// ScaleAssign multiplies every element of m by k in place.
func (m Matrix[T]) ScaleAssign(k T) {
	Vector[T](m.values).MulAssign(k)
}

// Mul returns the matrix product m·n. m must have as many columns as
// n has rows.
func (m Matrix[T]) Mul(n Matrix[T]) Matrix[T] {
	if m.cols != n.rows {
		panic(fmt.Errorf("cannot multiply %vx%v matrix by %vx%v matrix", m.rows, m.cols, n.rows, n.cols))
	}

	r := Mat[T](m.rows, n.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < n.cols; j++ {
			var sum T
			for k := 0; k < m.cols; k++ {
				sum += m.values[i*m.cols+k] * n.values[k*n.cols+j]
			}
			r.values[i*r.cols+j] = sum
		}
	}
	return r
}

// MulVec returns the column vector m·v.
func (m Matrix[T]) MulVec(v Vector[T]) Vector[T] {
	if len(v) != m.cols {
		panic(fmt.Errorf("cannot multiply %vx%v matrix by %vD vector", m.rows, m.cols, len(v)))
	}

	r := make(Vector[T], m.rows)
	for i := range r {
		r[i] = Dot(Vector[T](m.values[i*m.cols:(i+1)*m.cols]), v)
	}
	return r
}

// VecMul returns the row vector v·m.
func VecMul[T Scalar](v Vector[T], m Matrix[T]) Vector[T] {
	if len(v) != m.rows {
		panic(fmt.Errorf("cannot multiply %vD vector by %vx%v matrix", len(v), m.rows, m.cols))
	}

	r := make(Vector[T], m.cols)
	for i, x := range v {
		for j := range r {
			r[j] += x * m.values[i*m.cols+j]
		}
	}
	return r
}

// Transpose returns the transpose of m.
func (m Matrix[T]) Transpose() Matrix[T] {
	r := Mat[T](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.values[j*r.cols+i] = m.values[i*m.cols+j]
		}
	}
	return r
}

// TransposeInPlace transposes the square matrix m in place.
func (m Matrix[T]) TransposeInPlace() {
	m.mustBeSquare()
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			a, b := i*m.cols+j, j*m.cols+i
			m.values[a], m.values[b] = m.values[b], m.values[a]
		}
	}
}

// Submatrix returns a copy of the rows×cols block of m whose top-left
// corner is at (r, c).
func (m Matrix[T]) Submatrix(r, c, rows, cols int) Matrix[T] {
	s := Mat[T](rows, cols)
	for i := 0; i < rows; i++ {
		start := m.index(r+i, c)
		m.index(r+i, c+cols-1)
		copy(s.values[i*cols:(i+1)*cols], m.values[start:start+cols])
	}
	return s
}

// SetSubmatrix copies n into m with n's top-left corner at (r, c).
func (m Matrix[T]) SetSubmatrix(r, c int, n Matrix[T]) {
	for i := 0; i < n.rows; i++ {
		start := m.index(r+i, c)
		m.index(r+i, c+n.cols-1)
		copy(m.values[start:start+n.cols], n.values[i*n.cols:(i+1)*n.cols])
	}
}

// Minor returns a copy of m without row r and column c.
func (m Matrix[T]) Minor(r, c int) Matrix[T] {
	m.index(r, c)
	s := Mat[T](m.rows-1, m.cols-1)
	k := 0
	for i := 0; i < m.rows; i++ {
		if i == r {
			continue
		}
		for j := 0; j < m.cols; j++ {
			if j == c {
				continue
			}
			s.values[k] = m.values[i*m.cols+j]
			k++
		}
	}
	return s
}

func (m Matrix[T]) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			buf.WriteString("; ")
		}
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprint(&buf, m.values[r*m.cols+c])
		}
	}
	buf.WriteByte(']')
	return buf.String()
}
