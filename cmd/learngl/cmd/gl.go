// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/learngl/base/errors"
	"cogentcore.org/learngl/base/logx"
	"cogentcore.org/learngl/config"
	"cogentcore.org/learngl/glgpu"
	"cogentcore.org/learngl/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// withContext runs fn with the GL context of a hidden window current.
func withContext(c *config.Config, fn func() error) error {
	if err := window.Init(); err != nil {
		return err
	}
	defer window.Terminate()
	glfw.WindowHint(glfw.Visible, glfw.False)
	win, err := window.New(c)
	if err != nil {
		return err
	}
	defer win.Destroy()
	return fn()
}

// Info prints the vendor, renderer and versions of the GL implementation.
func Info(c *config.Config, w io.Writer) error {
	return withContext(c, func() error {
		_, err := fmt.Fprintln(w, glgpu.CurrentInfo())
		return err
	})
}

// Check compiles the given vertex and fragment shader files, links them
// into a program and reports the result to w. It returns an error
// containing the driver info logs if either step fails.
func Check(c *config.Config, w io.Writer, vertFile, fragFile string) error {
	vsrc, err := readSource(vertFile)
	if err != nil {
		return err
	}
	fsrc, err := readSource(fragFile)
	if err != nil {
		return err
	}
	logx.PrintlnDebug(vertFile + ":\n" + vsrc)
	logx.PrintlnDebug(fragFile + ":\n" + fsrc)
	return withContext(c, func() error {
		vert := glgpu.NewShader(glgpu.VertexShader, filepath.Base(vertFile), vsrc)
		frag := glgpu.NewShader(glgpu.FragmentShader, filepath.Base(fragFile), fsrc)
		defer vert.Delete()
		defer frag.Delete()
		pr, err := glgpu.NewProgram("check", vert, frag)
		defer pr.Delete()
		if err != nil {
			fmt.Fprintln(w, "FAIL")
			return err
		}
		_, err = fmt.Fprintf(w, "ok  %s + %s\n", vertFile, fragFile)
		return err
	})
}

func readSource(fn string) (string, error) {
	b, err := os.ReadFile(fn)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("check: no shader file %s", fn)
	}
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("check: empty shader file " + fn)
	}
	return string(b), nil
}
