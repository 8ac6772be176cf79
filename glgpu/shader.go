// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ShaderTypes are the stages a [Shader] can run in.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderTypes(%d)", int32(st))
}

// GLType returns the GL enum for this shader type.
func (st ShaderTypes) GLType() uint32 {
	return glShaders[st]
}

var glShaders = map[ShaderTypes]uint32{
	VertexShader:   gl.VERTEX_SHADER,
	FragmentShader: gl.FRAGMENT_SHADER,
}

// Shader is a single shader stage.
type Shader struct {
	Type ShaderTypes

	// Name is used in log and error messages only
	Name string

	// Source is the GLSL source code, without a null terminator.
	Source string

	// Handle is the GL shader object, valid after Compile
	// (also when compilation failed).
	Handle uint32

	compiled bool
}

// NewShader returns a new uncompiled shader of the given type.
func NewShader(typ ShaderTypes, name, src string) *Shader {
	return &Shader{Type: typ, Name: name, Source: GoString(src)}
}

// Compile compiles the shader source. If compilation fails, the
// driver info log is logged and returned in the error, and the
// handle is kept so that the shader can still be attached to a
// program, as a lesson that ignores the error would do.
// Compile does nothing if the shader is already compiled.
func (sh *Shader) Compile() error {
	if sh.compiled {
		return nil
	}
	if sh.Handle == 0 {
		sh.Handle = gl.CreateShader(sh.Type.GLType())
	}

	csources, free := gl.Strs(CString(sh.Source))
	gl.ShaderSource(sh.Handle, 1, csources, nil)
	free()
	gl.CompileShader(sh.Handle)

	var status int32
	gl.GetShaderiv(sh.Handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh.Handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh.Handle, logLength, nil, gl.Str(msg))

		err := compileError(sh, infoLog(msg))
		slog.Error(err.Error())
		return err
	}
	sh.compiled = true
	return nil
}

// Compiled returns whether the last Compile succeeded.
func (sh *Shader) Compiled() bool {
	return sh.compiled
}

// Delete flags the GL shader object for deletion. Programs it is
// attached to keep working.
func (sh *Shader) Delete() {
	if sh.Handle == 0 {
		return
	}
	gl.DeleteShader(sh.Handle)
	sh.Handle = 0
	sh.compiled = false
}

func compileError(sh *Shader, log string) error {
	return fmt.Errorf("glgpu: error compiling %s shader %q:\n%s", sh.Type, sh.Name, log)
}
