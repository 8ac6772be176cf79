// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"runtime"
	"testing"

	"cogentcore.org/learngl/config"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeys struct {
	pressed map[glfw.Key]bool
	close   bool
}

func (fk *fakeKeys) GetKey(key glfw.Key) glfw.Action {
	if fk.pressed[key] {
		return glfw.Press
	}
	return glfw.Release
}

func (fk *fakeKeys) SetShouldClose(value bool) {
	fk.close = value
}

func TestProcessInput(t *testing.T) {
	fk := &fakeKeys{pressed: map[glfw.Key]bool{glfw.KeySpace: true}}
	ProcessInput(fk)
	assert.False(t, fk.close)

	fk.pressed[glfw.KeyEscape] = true
	ProcessInput(fk)
	assert.True(t, fk.close)
}

func TestFPSCounter(t *testing.T) {
	fc := newFPSCounter(1, 10)
	for i := 1; i < 60; i++ {
		_, ok := fc.tick(10 + float64(i)/60)
		assert.False(t, ok)
	}
	fps, ok := fc.tick(11)
	assert.True(t, ok)
	assert.InDelta(t, 60, fps, 1e-9)
	_, ok = fc.tick(11.5)
	assert.False(t, ok)
}

func TestFPSCounterDisabled(t *testing.T) {
	fc := newFPSCounter(0, 0)
	_, ok := fc.tick(100)
	assert.False(t, ok)
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := config.New()
	cfg.Height = -1
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := Init(); err != nil {
		t.Skip("Need a display for a GLFW window:", err)
	}
	defer Terminate()

	cfg := config.New()
	cfg.Width, cfg.Height = 64, 48
	glfw.WindowHint(glfw.Visible, glfw.False)
	w, err := New(cfg)
	if err != nil {
		t.Skip("Need OpenGL 3.3 core support:", err)
	}
	defer w.Destroy()

	frames := 0
	w.Run(func(t float64) {
		frames++
		if frames == 3 {
			w.SetShouldClose(true)
		}
	})
	require.Equal(t, 3, frames)
	assert.False(t, w.KeyDown(glfw.KeyEscape))
}
