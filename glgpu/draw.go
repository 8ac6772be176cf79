// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image/color"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// SetClearColor sets the color Clear fills the color buffer with.
func SetClearColor(c color.Color) {
	f := colorFloats(c)
	gl.ClearColor(f[0], f[1], f[2], f[3])
}

// Clear clears the color buffer.
func Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Wireframe turns on or off drawing polygons as outlines.
func Wireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Viewport sets the viewport to the given framebuffer size.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// colorFloats returns the non-premultiplied components of c in [0, 1].
func colorFloats(c color.Color) [4]float32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]float32{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}
