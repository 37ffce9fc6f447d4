// Package noise implements simplex noise.
package noise

import (
	"deedles.dev/xyz"
	"deedles.dev/xyz/internal/fmath"
	"deedles.dev/xyz/random"
)

var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Skewing and unskewing factors.
const (
	f2 = 0.36602540378443864676 // (√3-1)/2
	g2 = 0.21132486540518711775 // (3-√3)/6
	f3 = 1.0 / 3
	g3 = 1.0 / 6
)

// Simplex generates simplex noise. The noise is determined entirely by
// the permutation table, which is drawn from a random.Engine.
type Simplex[T xyz.Float] struct {
	perm [512]uint8
}

// NewSimplex returns a Simplex whose permutation table is drawn from
// e.
func NewSimplex[T xyz.Float](e *random.Engine) *Simplex[T] {
	var s Simplex[T]
	for i, p := range e.Perm(256) {
		s.perm[i] = uint8(p)
		s.perm[i+256] = uint8(p)
	}
	return &s
}

func (s *Simplex[T]) hash(i int) int { return int(s.perm[i&511]) }

func (s *Simplex[T]) gradIndex(i, j int) int {
	return s.hash(i+s.hash(j)) % 12
}

func (s *Simplex[T]) gradIndex3(i, j, k int) int {
	return s.hash(i+s.hash(j+s.hash(k))) % 12
}

func corner2(gi int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := grad3[gi]
	return t * t * (g[0]*x + g[1]*y)
}

func corner3(gi int, x, y, z float64) float64 {
	t := 0.6 - x*x - y*y - z*z
	if t < 0 {
		return 0
	}
	t *= t
	g := grad3[gi]
	return t * t * (g[0]*x + g[1]*y + g[2]*z)
}

// Noise2 returns the noise value at (x, y). It is in [-1, 1].
func (s *Simplex[T]) Noise2(x, y T) T {
	xf, yf := float64(x), float64(y)

	sk := (xf + yf) * f2
	i := int(fmath.Floor(xf + sk))
	j := int(fmath.Floor(yf + sk))

	t := float64(i+j) * g2
	x0 := xf - (float64(i) - t)
	y0 := yf - (float64(j) - t)

	// The point is in the lower or upper triangle of the skewed cell.
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1, y1 := x0-float64(i1)+g2, y0-float64(j1)+g2
	x2, y2 := x0-1+2*g2, y0-1+2*g2

	ii, jj := i&255, j&255
	n := corner2(s.gradIndex(ii, jj), x0, y0) +
		corner2(s.gradIndex(ii+i1, jj+j1), x1, y1) +
		corner2(s.gradIndex(ii+1, jj+1), x2, y2)

	return T(max(-1, min(70*n, 1)))
}

// Noise3 returns the noise value at (x, y, z). It is in [-1, 1].
func (s *Simplex[T]) Noise3(x, y, z T) T {
	xf, yf, zf := float64(x), float64(y), float64(z)

	sk := (xf + yf + zf) * f3
	i := int(fmath.Floor(xf + sk))
	j := int(fmath.Floor(yf + sk))
	k := int(fmath.Floor(zf + sk))

	t := float64(i+j+k) * g3
	x0 := xf - (float64(i) - t)
	y0 := yf - (float64(j) - t)
	z0 := zf - (float64(k) - t)

	var i1, j1, k1, i2, j2, k2 int
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
	case x0 >= y0 && x0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
	case x0 >= y0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
	case y0 < z0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
	case x0 < z0:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
	default:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
	}

	x1, y1, z1 := x0-float64(i1)+g3, y0-float64(j1)+g3, z0-float64(k1)+g3
	x2, y2, z2 := x0-float64(i2)+2*g3, y0-float64(j2)+2*g3, z0-float64(k2)+2*g3
	x3, y3, z3 := x0-1+3*g3, y0-1+3*g3, z0-1+3*g3

	ii, jj, kk := i&255, j&255, k&255
	n := corner3(s.gradIndex3(ii, jj, kk), x0, y0, z0) +
		corner3(s.gradIndex3(ii+i1, jj+j1, kk+k1), x1, y1, z1) +
		corner3(s.gradIndex3(ii+i2, jj+j2, kk+k2), x2, y2, z2) +
		corner3(s.gradIndex3(ii+1, jj+1, kk+1), x3, y3, z3)

	return T(max(-1, min(32*n, 1)))
}

// Fractal2 sums octaves of Noise2 at doubling frequencies, scaling the
// amplitude of each octave by persistence. The result is normalized to
// [-1, 1].
func (s *Simplex[T]) Fractal2(x, y T, octaves int, persistence T) T {
	var sum, total T
	freq, amp := T(1), T(1)
	for range octaves {
		sum += amp * s.Noise2(x*freq, y*freq)
		total += amp
		freq *= 2
		amp *= persistence
	}
	if total == 0 {
		return 0
	}
	return sum / total
}
