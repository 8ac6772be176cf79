// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim computes the time-varying uniform values of the lessons.
package anim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pulse returns sin(t)/2 + 0.5, which oscillates smoothly
// between 0 and 1 with a period of 2π seconds.
func Pulse(t float64) float32 {
	return math32.Sin(float32(t))/2 + 0.5
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}

// Step moves v by delta, keeping it within [0, 1].
func Step(v, delta float32) float32 {
	return Clamp01(v + delta)
}

// RotateTranslate returns the transform that rotates by angle
// radians around the z axis and then translates by (x, y, 0).
func RotateTranslate(angle float32, x, y float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, 0).Mul4(mgl32.HomogRotate3DZ(angle))
}

// ScaleTranslate returns the transform that scales uniformly by s
// and then translates by (x, y, 0).
func ScaleTranslate(s float32, x, y float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, 0).Mul4(mgl32.Scale3D(s, s, s))
}
