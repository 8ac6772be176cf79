// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command learngl lists the lessons, reports on the local OpenGL
// implementation and checks that GLSL shaders compile and link.
package main

import (
	"os"
	"runtime"

	"cogentcore.org/learngl/cmd/learngl/cmd"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	if err := cmd.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
