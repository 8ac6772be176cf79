// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Info describes the current GL implementation.
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

func (in Info) String() string {
	return fmt.Sprintf("vendor: %s\nrenderer: %s\nversion: %s\nglsl: %s", in.Vendor, in.Renderer, in.Version, in.GLSL)
}

// GLVersion returns the numeric GL version at the start of
// [Info.Version], such as 4.6.0 for "4.6.0 NVIDIA 535.54".
func (in Info) GLVersion() (*semver.Version, error) {
	for _, f := range strings.Fields(in.Version) {
		if v, err := semver.NewVersion(f); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("glgpu: no version number in %q", in.Version)
}

// Supports returns whether the GL version is at least major.minor.
func (in Info) Supports(major, minor uint64) bool {
	v, err := in.GLVersion()
	if err != nil {
		return false
	}
	return !v.LessThan(semver.New(major, minor, 0, "", ""))
}

// Init loads the GL function pointers for the current context.
// It must be called after a context has been made current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("glgpu: failed to initialize OpenGL: %w", err)
	}
	in := CurrentInfo()
	slog.Debug("glgpu: initialized", "version", in.Version, "renderer", in.Renderer)
	if !in.Supports(3, 3) {
		slog.Warn("glgpu: OpenGL 3.3 or later is required", "version", in.Version)
	}
	return nil
}

// CurrentInfo returns the [Info] of the current context.
func CurrentInfo() Info {
	return Info{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}
