// Package random generates random numbers, vectors and points.
//
// There is no package-level generator. Every function takes the Engine
// to draw from, so that results are reproducible from a seed.
package random

import (
	"fmt"
	"math"

	"deedles.dev/xyz"
	"deedles.dev/xyz/geom"
	"github.com/MichaelTJones/pcg"
)

// sequence selects the PCG stream. Any odd constant works; engines
// differ only by seed.
const sequence = 0xda3e39cb94b95bdb

// Engine is a source of random numbers. It is not safe for concurrent
// use.
type Engine struct {
	r *pcg.PCG32
}

// NewEngine returns an Engine seeded with seed.
func NewEngine(seed uint64) *Engine {
	r := pcg.NewPCG32()
	r.Seed(seed, sequence)
	return &Engine{r: r}
}

// Uint32 returns a uniformly distributed uint32.
func (e *Engine) Uint32() uint32 { return e.r.Random() }

// Intn returns a uniformly distributed int in [0, n). It panics if n
// is not in (0, 1<<32).
func (e *Engine) Intn(n int) int {
	if n <= 0 || uint64(n) > math.MaxUint32 {
		panic(fmt.Errorf("invalid bound %v", n))
	}
	return int(e.r.Bounded(uint32(n)))
}

// Float64 returns a uniformly distributed float64 in [0, 1).
func (e *Engine) Float64() float64 {
	a, b := e.r.Random()>>5, e.r.Random()>>6
	return (float64(a)*(1<<26) + float64(b)) / (1 << 53)
}

// NormFloat64 returns a normally distributed float64 with mean 0 and
// standard deviation 1.
func (e *Engine) NormFloat64() float64 {
	// Box–Muller. 1-Float64 is in (0, 1], keeping the log finite.
	u := 1 - e.Float64()
	v := e.Float64()
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// Perm returns a random permutation of [0, n).
func (e *Engine) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := e.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// IntGenerator generates uniformly distributed ints in [Min, Max].
type IntGenerator struct {
	Min, Max int
}

// Generate returns a random int from e in [g.Min, g.Max].
func (g IntGenerator) Generate(e *Engine) int {
	if g.Max < g.Min {
		panic(fmt.Errorf("empty range [%v, %v]", g.Min, g.Max))
	}
	return g.Min + e.Intn(g.Max-g.Min+1)
}

// RealGenerator generates uniformly distributed floats in [Min, Max).
type RealGenerator[T xyz.Float] struct {
	Min, Max T
}

// Generate returns a random float from e in [g.Min, g.Max).
func (g RealGenerator[T]) Generate(e *Engine) T {
	return g.Min + (g.Max-g.Min)*T(e.Float64())
}

// UnitVector returns a random vector of length 1 with dimension dim.
// Its direction is uniformly distributed.
func UnitVector[T xyz.Float](e *Engine, dim int) xyz.Vector[T] {
	v := make(xyz.Vector[T], dim)
	for {
		for i := range v {
			v[i] = T(e.NormFloat64())
		}
		if xyz.LengthSquared(v) > 0 {
			return xyz.Unit(v)
		}
	}
}

// PointIn returns a uniformly distributed point in r.
func PointIn[T xyz.Float](e *Engine, r geom.Rect[T]) xyz.Vector[T] {
	x := RealGenerator[T]{Min: r.Min.X(), Max: r.Max.X()}
	y := RealGenerator[T]{Min: r.Min.Y(), Max: r.Max.Y()}
	return xyz.Vec2(x.Generate(e), y.Generate(e))
}
