// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// VertexArray is a vertex array object together with the vertex
// buffer and optional element (index) buffer it was configured with.
type VertexArray struct {
	VAO uint32
	VBO uint32

	// EBO is 0 for non-indexed vertex arrays.
	EBO uint32

	Layout Layout

	nverts int
	nidxs  int
}

// NewVertexArray generates a VAO, VBO and, if indices is non-empty, an
// EBO, uploads the data as static draw data and configures and enables
// each attribute of the layout. The array buffer is unbound afterwards;
// the element buffer stays recorded in the VAO.
func NewVertexArray(layout Layout, vertices []float32, indices []uint32) (*VertexArray, error) {
	n, err := layout.countVertices(vertices, indices)
	if err != nil {
		return nil, err
	}
	va := &VertexArray{Layout: layout, nverts: n, nidxs: len(indices)}

	gl.GenVertexArrays(1, &va.VAO)
	gl.GenBuffers(1, &va.VBO)
	if va.nidxs > 0 {
		gl.GenBuffers(1, &va.EBO)
	}

	gl.BindVertexArray(va.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, va.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	if va.nidxs > 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	stride := layout.Stride()
	for i, a := range layout {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, uintptr(layout.Offset(i)))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return va, nil
}

// NumVertices returns the number of vertices in the vertex buffer.
func (va *VertexArray) NumVertices() int {
	return va.nverts
}

// NumIndices returns the number of indices, 0 if not indexed.
func (va *VertexArray) NumIndices() int {
	return va.nidxs
}

// Indexed returns whether the vertex array has an element buffer.
func (va *VertexArray) Indexed() bool {
	return va.nidxs > 0
}

// Activate binds the vertex array.
func (va *VertexArray) Activate() {
	gl.BindVertexArray(va.VAO)
}

// Draw binds the vertex array and draws it as triangles, using the
// element buffer if there is one.
func (va *VertexArray) Draw() {
	va.Activate()
	if va.Indexed() {
		gl.DrawElements(gl.TRIANGLES, int32(va.NumIndices()), gl.UNSIGNED_INT, nil)
		return
	}
	gl.DrawArrays(gl.TRIANGLES, 0, int32(va.NumVertices()))
}

// Delete deletes the GL objects.
func (va *VertexArray) Delete() {
	if va.VAO == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &va.VAO)
	gl.DeleteBuffers(1, &va.VBO)
	if va.EBO != 0 {
		gl.DeleteBuffers(1, &va.EBO)
	}
	va.VAO, va.VBO, va.EBO = 0, 0, 0
}
