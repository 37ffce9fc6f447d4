package format

import (
	"fmt"

	"deedles.dev/xyz"
)

// Array is a packed sequence of vertices in the format defined by
// Format.
type Array struct {
	Format Format
	Data   []byte
}

// NewArray returns an empty Array with room for n vertices.
func NewArray(f Format, n int) *Array {
	return &Array{Format: f, Data: make([]byte, 0, n*f.Size())}
}

// Stride returns the number of bytes between the starts of
// consecutive vertices.
func (a *Array) Stride() int { return a.Format.Size() }

// Len returns the number of vertices in a.
func (a *Array) Len() int { return len(a.Data) / a.Stride() }

// Offset returns the index in Data of the first byte of vertex i.
func (a *Array) Offset(i int) int {
	return a.offset(i, a.Stride())
}

func (a *Array) offset(i, size int) int {
	if i < 0 || i >= len(a.Data)/size {
		panic(fmt.Errorf("vertex %v out of range [0, %v)", i, len(a.Data)/size))
	}
	return i * size
}

// At returns vertex i.
func (a *Array) At(i int) xyz.Vector[float64] {
	size := a.Stride()
	o := a.offset(i, size)
	return a.Format.Read(a.Data[o : o+size : o+size])
}

// Set replaces vertex i with v.
func (a *Array) Set(i int, v xyz.Vector[float64]) {
	size := a.Stride()
	o := a.offset(i, size)
	a.Format.Write(a.Data[o:o+size:o+size], v)
}

// Append adds vertices to the end of a.
func (a *Array) Append(vs ...xyz.Vector[float64]) {
	size := a.Stride()
	for _, v := range vs {
		o := len(a.Data)
		a.Data = append(a.Data, make([]byte, size)...)
		a.Format.Write(a.Data[o:o+size:o+size], v)
	}
}
