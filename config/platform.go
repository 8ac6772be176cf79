// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"runtime"
)

// ContextVersion is an OpenGL context version.
type ContextVersion struct {
	Major int
	Minor int
}

// String returns the version in the form "major.minor"
func (v ContextVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// GLVersion is the OpenGL core profile version all of the lessons target.
var GLVersion = ContextVersion{3, 3}

// ContextHints are the per-platform options for creating the GL context.
type ContextHints struct {
	Version ContextVersion

	// request a core profile context
	Core bool

	// request a forward-compatible context, which removes all
	// deprecated functionality; macOS only provides core
	// profiles in this mode
	ForwardCompat bool
}

// HintsFor returns the context hints to use on the given operating system.
func HintsFor(goos string) ContextHints {
	return ContextHints{
		Version:       GLVersion,
		Core:          true,
		ForwardCompat: goos == "darwin",
	}
}

// Hints returns the context hints for the current platform.
func Hints() ContextHints {
	return HintsFor(runtime.GOOS)
}
