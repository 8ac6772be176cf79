// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu provides thin helpers over the OpenGL 3.3 core
// profile for the lessons: shader compilation and linking,
// vertex array setup, texture upload and a few drawing calls.
//
// Each helper issues the same short sequence of gl calls a
// lesson would otherwise write inline, and all GL object handles
// are exported so that raw gl calls can be mixed in freely.
// All functions must be called on the thread that owns the
// current GL context, after [Init].
package glgpu
