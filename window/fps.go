// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

// fpsCounter counts frames and reports the frame rate
// once every interval seconds.
type fpsCounter struct {
	interval float64
	frames   int
	start    float64
}

func newFPSCounter(interval, now float64) *fpsCounter {
	return &fpsCounter{interval: interval, start: now}
}

// tick records a frame finished at time now, and returns the frame
// rate over the last interval once the interval has passed.
func (fc *fpsCounter) tick(now float64) (float64, bool) {
	if fc.interval <= 0 {
		return 0, false
	}
	fc.frames++
	dur := now - fc.start
	if dur < fc.interval {
		return 0, false
	}
	fps := float64(fc.frames) / dur
	fc.frames = 0
	fc.start = now
	return fps, true
}
