//go:build !js

package renderer

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/gldemo/pkg/mesh"
)

const floatSize = 4

type meshState struct {
	vao   uint32
	vbos  []uint32
	count int32
	mode  uint32
}

func uploadMesh(m mesh.Mesh) (*meshState, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	state := &meshState{
		count: int32(m.VertexCount()),
		mode:  glMode(m.Mode),
		vbos:  make([]uint32, len(m.Buffers)),
	}

	gl.GenVertexArrays(1, &state.vao)
	gl.BindVertexArray(state.vao)
	gl.GenBuffers(int32(len(state.vbos)), &state.vbos[0])

	for i, buf := range m.Buffers {
		gl.BindBuffer(gl.ARRAY_BUFFER, state.vbos[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(buf.Data)*floatSize, gl.Ptr(buf.Data), gl.STATIC_DRAW)

		stride := int32(buf.Stride() * floatSize)
		for j, attr := range buf.Attributes {
			gl.EnableVertexAttribArray(attr.Location)
			gl.VertexAttribPointer(attr.Location, attr.Size, gl.FLOAT, false, stride, gl.PtrOffset(buf.Offset(j)*floatSize))
		}
	}
	gl.BindVertexArray(0)
	return state, nil
}

func (m *meshState) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.mode, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *meshState) delete() {
	if len(m.vbos) > 0 {
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	m.vbos = nil
	m.vao = 0
}

func glMode(mode mesh.Mode) uint32 {
	switch mode {
	case mesh.TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}
