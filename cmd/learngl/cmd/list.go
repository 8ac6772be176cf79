// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Lesson describes one of the lesson programs.
type Lesson struct {
	// Name is the directory of the lesson under examples.
	Name string

	Desc string
}

// Lessons are the lessons in the order they are meant to be followed.
var Lessons = []Lesson{
	{"hellotriangle", "one triangle from a vertex buffer"},
	{"shaders", "indexed quad with a pulsing uniform color, and a second program"},
	{"textures", "quad with vertex colors and two mixed textures"},
	{"transform", "textured quads moved by a transform matrix uniform"},
}

// List writes the lessons and their descriptions to w.
func List(w io.Writer) error {
	out := termenv.NewOutput(w)
	for i, l := range Lessons {
		name := out.String(fmt.Sprintf("%-14s", l.Name)).Bold()
		if _, err := fmt.Fprintf(w, "%d. %s %s\n", i+1, name, l.Desc); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "\nrun a lesson with: go run ./examples/<name>")
	return err
}
