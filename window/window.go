// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens the GLFW window and GL context a lesson draws
// into and runs its render loop.
//
// GLFW and the GL context must only be used from the main thread,
// so lessons call runtime.LockOSThread in an init function.
package window

import (
	"fmt"
	"log/slog"

	"cogentcore.org/learngl/base/errors"
	"cogentcore.org/learngl/config"
	"cogentcore.org/learngl/glgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes GLFW. It must be called on the main thread
// before [New], and matched by a call to [Terminate].
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("window: failed to initialize glfw: %w", err)
	}
	return nil
}

// Terminate destroys any remaining windows and shuts down GLFW.
// It must be called on the main thread as the last thing before quitting.
func Terminate() {
	glfw.Terminate()
}

// Window is a GLFW window with a current OpenGL 3.3 core context.
type Window struct {
	*glfw.Window

	Config *config.Config
}

// New creates a window for the given config, makes its context current,
// loads the GL functions and installs a framebuffer size callback that
// keeps the viewport matched to the window. The clear color and polygon
// mode are set from the config.
func New(cfg *config.Config) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	applyHints(config.Hints(), cfg)
	gw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("window: failed to create GLFW window: %w", err)
	}
	gw.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if err := glgpu.Init(); err != nil {
		gw.Destroy()
		return nil, err
	}

	w := &Window{Window: gw, Config: cfg}
	gw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		glgpu.Viewport(width, height)
	})
	glgpu.Viewport(gw.GetFramebufferSize())

	glgpu.SetClearColor(errors.Log1(cfg.ClearRGBA()))
	glgpu.Wireframe(cfg.Wireframe)
	slog.Debug("window: created", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return w, nil
}

func applyHints(h config.ContextHints, cfg *config.Config) {
	glfw.WindowHint(glfw.ContextVersionMajor, h.Version.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, h.Version.Minor)
	if h.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if h.ForwardCompat {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
}

// Time returns the number of seconds since GLFW was initialized.
func Time() float64 {
	return glfw.GetTime()
}

// Run runs the render loop until the window is asked to close. Each
// frame it processes input, clears the color buffer, calls render with
// the current [Time], swaps the buffers and polls for events.
func (w *Window) Run(render func(t float64)) {
	fps := newFPSCounter(w.Config.FPSInterval, Time())
	for !w.ShouldClose() {
		ProcessInput(w)
		glgpu.Clear()
		render(Time())
		w.SwapBuffers()
		glfw.PollEvents()
		if rate, ok := fps.tick(Time()); ok {
			slog.Info("fps", "title", w.Config.Title, "rate", fmt.Sprintf("%.0f", rate))
		}
	}
}

// KeyDown returns whether the given key is currently pressed.
func (w *Window) KeyDown(key glfw.Key) bool {
	return w.GetKey(key) == glfw.Press
}
