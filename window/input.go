// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import "github.com/go-gl/glfw/v3.3/glfw"

// KeyWindow is the part of a window that input processing needs.
// It is implemented by *glfw.Window and [Window].
type KeyWindow interface {
	GetKey(key glfw.Key) glfw.Action
	SetShouldClose(value bool)
}

// ProcessInput asks the window to close when Escape is pressed.
func ProcessInput(w KeyWindow) {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}
