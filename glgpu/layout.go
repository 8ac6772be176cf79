// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"cogentcore.org/learngl/base/errors"
)

// floatSize is the size in bytes of a float32 vertex component.
const floatSize = 4

// Attrib is one float32 vertex attribute in an interleaved vertex buffer.
type Attrib struct {
	// Name of the shader input, for documentation and errors.
	Name string

	// Location is the layout location of the shader input.
	Location uint32

	// Size is the number of float32 components, 1 to 4.
	Size int32
}

// Layout is the ordered list of attributes making up one vertex.
type Layout []Attrib

// Common layouts used by the lessons.
var (
	// Positions is a single vec3 position at location 0.
	Positions = Layout{{"aPos", 0, 3}}

	// PositionsColorsTexCoords is a vec3 position, vec3 color and
	// vec2 texture coordinate at locations 0, 1 and 2.
	PositionsColorsTexCoords = Layout{{"aPos", 0, 3}, {"aColor", 1, 3}, {"aTexCoord", 2, 2}}

	// PositionsTexCoords is a vec3 position and vec2 texture
	// coordinate at locations 0 and 1.
	PositionsTexCoords = Layout{{"aPos", 0, 3}, {"aTexCoord", 1, 2}}
)

// Floats returns the number of float32 values in one vertex.
func (l Layout) Floats() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Stride returns the size in bytes of one vertex.
func (l Layout) Stride() int32 {
	return int32(l.Floats() * floatSize)
}

// Offset returns the byte offset of attribute i within a vertex.
func (l Layout) Offset(i int) int {
	off := 0
	for _, a := range l[:i] {
		off += int(a.Size)
	}
	return off * floatSize
}

// Validate returns an error if the layout can not describe a vertex.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return errors.New("glgpu: empty vertex layout")
	}
	locs := make(map[uint32]string, len(l))
	for _, a := range l {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("glgpu: attribute %q has size %d, must be 1 to 4", a.Name, a.Size)
		}
		if other, has := locs[a.Location]; has {
			return fmt.Errorf("glgpu: attributes %q and %q both use location %d", other, a.Name, a.Location)
		}
		locs[a.Location] = a.Name
	}
	return nil
}

// countVertices checks the given vertex and index data against the
// layout and returns the number of vertices.
func (l Layout) countVertices(vertices []float32, indices []uint32) (int, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	nf := l.Floats()
	if len(vertices) == 0 || len(vertices)%nf != 0 {
		return 0, fmt.Errorf("glgpu: %d vertex values is not a positive multiple of %d", len(vertices), nf)
	}
	n := len(vertices) / nf
	for i, idx := range indices {
		if int(idx) >= n {
			return 0, fmt.Errorf("glgpu: index %d at %d is out of range for %d vertices", idx, i, n)
		}
	}
	return n, nil
}
