// Package mesh describes flat float32 vertex data and how it maps onto shader
// attribute locations.
package mesh

import (
	"errors"
	"fmt"
)

// Mode is the primitive type used to draw a mesh.
type Mode uint8

const (
	Triangles Mode = iota
	TriangleStrip
)

// Attribute binds Size consecutive floats of every vertex to a shader location.
type Attribute struct {
	Location uint32
	Size     int32
}

// Buffer is one vertex buffer. Attributes are interleaved in declaration order.
type Buffer struct {
	Data       []float32
	Attributes []Attribute
}

// Stride is the number of floats per vertex.
func (b Buffer) Stride() int {
	stride := 0
	for _, a := range b.Attributes {
		stride += int(a.Size)
	}
	return stride
}

// Offset is the float offset of the attribute at index i within a vertex.
func (b Buffer) Offset(i int) int {
	offset := 0
	for _, a := range b.Attributes[:i] {
		offset += int(a.Size)
	}
	return offset
}

func (b Buffer) VertexCount() int {
	stride := b.Stride()
	if stride == 0 {
		return 0
	}
	return len(b.Data) / stride
}

type Mesh struct {
	Buffers []Buffer
	Mode    Mode
}

// VertexCount is the vertex count shared by all buffers.
func (m Mesh) VertexCount() int {
	if len(m.Buffers) == 0 {
		return 0
	}
	return m.Buffers[0].VertexCount()
}

func (m Mesh) Validate() error {
	if len(m.Buffers) == 0 {
		return errors.New("mesh has no buffers")
	}
	seen := make(map[uint32]struct{})
	count := -1
	for i, b := range m.Buffers {
		if len(b.Attributes) == 0 {
			return fmt.Errorf("buffer %d has no attributes", i)
		}
		for _, a := range b.Attributes {
			if a.Size < 1 || a.Size > 4 {
				return fmt.Errorf("buffer %d: attribute %d size %d out of range 1..4", i, a.Location, a.Size)
			}
			if _, dup := seen[a.Location]; dup {
				return fmt.Errorf("buffer %d: attribute location %d bound twice", i, a.Location)
			}
			seen[a.Location] = struct{}{}
		}
		stride := b.Stride()
		if len(b.Data)%stride != 0 {
			return fmt.Errorf("buffer %d: %d floats is not a multiple of stride %d", i, len(b.Data), stride)
		}
		n := len(b.Data) / stride
		if count >= 0 && n != count {
			return fmt.Errorf("buffer %d: %d vertices, expected %d", i, n, count)
		}
		count = n
	}
	if count == 0 {
		return errors.New("mesh has no vertices")
	}
	return nil
}
