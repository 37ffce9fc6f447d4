// Package format packs vertices into byte buffers suitable for
// uploading to a graphics API or writing to a file.
package format

import (
	"encoding/binary"
	"fmt"
	"math"

	"deedles.dev/xyz"
)

// Format is a vertex format for an Array. This package contains
// several predefined formats, such as [XYZFloat32].
type Format interface {
	// Size returns the number of bytes per vertex.
	Size() int

	// Components returns the number of coordinates per vertex.
	Components() int

	// Read reads raw vertex data and converts it to a vector.
	Read([]byte) xyz.Vector[float64]

	// Write writes the coordinates of v into buf. v must have
	// Components elements.
	Write(buf []byte, v xyz.Vector[float64])
}

// Various predefined Formats. All of them are little endian.
var (
	XYFloat32  = float32Format{components: 2, name: "XYFloat32"}
	XYZFloat32 = float32Format{components: 3, name: "XYZFloat32"}
	XYZFloat64 = float64Format{components: 3, name: "XYZFloat64"}
)

func mustComponents(f Format, v xyz.Vector[float64]) {
	if len(v) != f.Components() {
		panic(fmt.Errorf("%vD vector in %v", len(v), f))
	}
}

type float32Format struct {
	components int
	name       string
}

func (f float32Format) String() string { return f.name }

func (f float32Format) Size() int { return 4 * f.components }

func (f float32Format) Components() int { return f.components }

func (f float32Format) Read(data []byte) xyz.Vector[float64] {
	v := make(xyz.Vector[float64], f.components)
	for i := range v {
		v[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:])))
	}
	return v
}

func (f float32Format) Write(buf []byte, v xyz.Vector[float64]) {
	mustComponents(f, v)
	for i, c := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(float32(c)))
	}
}

type float64Format struct {
	components int
	name       string
}

func (f float64Format) String() string { return f.name }

func (f float64Format) Size() int { return 8 * f.components }

func (f float64Format) Components() int { return f.components }

func (f float64Format) Read(data []byte) xyz.Vector[float64] {
	v := make(xyz.Vector[float64], f.components)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
	}
	return v
}

func (f float64Format) Write(buf []byte, v xyz.Vector[float64]) {
	mustComponents(f, v)
	for i, c := range v {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(c))
	}
}
