// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/learngl/base/errors"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked set of shaders.
type Program struct {
	Name string

	// Handle is the GL program object.
	Handle uint32

	linked bool
	unis   map[string]int32
}

// NewProgram compiles any of the given shaders that are not yet
// compiled, attaches them all to a new program and links it.
// Compile and link failures are logged and returned joined in the
// error, but the program is always returned: using a program that
// failed to link draws nothing, which is how the lessons carry on.
// The shaders are not deleted, so that one compiled shader can be
// linked into several programs; call [Shader.Delete] once done.
func NewProgram(name string, shaders ...*Shader) (*Program, error) {
	pr := &Program{Name: name, Handle: gl.CreateProgram()}
	var errs []error
	for _, sh := range shaders {
		errs = append(errs, sh.Compile())
		gl.AttachShader(pr.Handle, sh.Handle)
	}
	errs = append(errs, pr.link())
	for _, sh := range shaders {
		gl.DetachShader(pr.Handle, sh.Handle)
	}
	return pr, errors.Join(errs...)
}

func (pr *Program) link() error {
	gl.LinkProgram(pr.Handle)

	var status int32
	gl.GetProgramiv(pr.Handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(pr.Handle, gl.INFO_LOG_LENGTH, &lgLength)

		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(pr.Handle, lgLength, nil, gl.Str(lg))

		err := linkError(pr.Name, infoLog(lg))
		slog.Error(err.Error())
		return err
	}
	pr.linked = true
	pr.unis = nil
	return nil
}

// Linked returns whether the program linked successfully.
func (pr *Program) Linked() bool {
	return pr.linked
}

// Activate makes this the current program.
func (pr *Program) Activate() {
	gl.UseProgram(pr.Handle)
}

// UniformLocation returns the location of the named uniform, or -1 if
// the program has no active uniform of that name. Locations are cached
// per program, and a missing uniform is only reported once.
func (pr *Program) UniformLocation(name string) int32 {
	if loc, ok := pr.unis[name]; ok {
		return loc
	}
	if pr.unis == nil {
		pr.unis = make(map[string]int32)
	}
	loc := gl.GetUniformLocation(pr.Handle, gl.Str(CString(name)))
	if loc < 0 && pr.linked {
		slog.Warn("glgpu: uniform not found", "program", pr.Name, "uniform", name)
	}
	pr.unis[name] = loc
	return loc
}

// The Set methods set a uniform of the program, which must be active.

// SetVec4 sets the named vec4 uniform.
func (pr *Program) SetVec4(name string, x, y, z, w float32) {
	gl.Uniform4f(pr.UniformLocation(name), x, y, z, w)
}

// SetFloat sets the named float uniform.
func (pr *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(pr.UniformLocation(name), v)
}

// SetInt sets the named int uniform, which includes sampler units.
func (pr *Program) SetInt(name string, v int32) {
	gl.Uniform1i(pr.UniformLocation(name), v)
}

// SetMatrix4 sets the named mat4 uniform.
func (pr *Program) SetMatrix4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(pr.UniformLocation(name), 1, false, &m[0])
}

// Delete deletes the GL program object.
func (pr *Program) Delete() {
	if pr.Handle == 0 {
		return
	}
	gl.DeleteProgram(pr.Handle)
	pr.Handle = 0
	pr.linked = false
	pr.unis = nil
}

func linkError(name, log string) error {
	return fmt.Errorf("glgpu: error linking program %q:\n%s", name, log)
}
