package gfx

import (
	"github.com/faiface/glhf"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Offsets returns the byte offset of every attribute in an interleaved
// vertex. The stride is format.Size().
func Offsets(format glhf.AttrFormat) []int {
	offsets := make([]int, len(format))
	offset := 0
	for i, attr := range format {
		offsets[i] = offset
		offset += attr.Type.Size()
	}
	return offsets
}

func components(t glhf.AttrType) int32 {
	switch t {
	case glhf.Float:
		return 1
	case glhf.Vec2:
		return 2
	case glhf.Vec3:
		return 3
	case glhf.Vec4:
		return 4
	}
	return 0
}

// Mesh owns a VAO with its vertex buffer and, when indexed, its element
// buffer. Attribute i of the format is bound to location i.
type Mesh struct {
	vao, vbo, ebo uint32
	format        glhf.AttrFormat
	nvertex       int
	nindex        int
}

// VertexCount returns the number of whole vertices in data for format.
func VertexCount(format glhf.AttrFormat, data []float32) int {
	n := format.Size() / 4
	if n == 0 {
		return 0
	}
	return len(data) / n
}

func NewMesh(format glhf.AttrFormat, vertices []float32, indices []uint32) *Mesh {
	m := &Mesh{
		format:  format,
		nvertex: VertexCount(format, vertices),
		nindex:  len(indices),
	}
	if m.nvertex == 0 {
		return m
	}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	stride := int32(format.Size())
	for i, offset := range Offsets(format) {
		loc := uint32(i)
		gl.VertexAttribPointer(loc, components(format[i].Type), gl.FLOAT, false, stride, gl.PtrOffset(offset))
		gl.EnableVertexAttribArray(loc)
	}

	// the element buffer binding is part of the VAO state, unbind the VAO first
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *Mesh) Indexed() bool {
	return m.nindex > 0
}

func (m *Mesh) Draw(mode uint32) {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	if m.Indexed() {
		gl.DrawElements(mode, int32(m.nindex), gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(mode, 0, int32(m.nvertex))
	}
	gl.BindVertexArray(0)
}

func (m *Mesh) Release() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		m.vao = 0
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
