// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoRows returns a 2x2 image with a red top row and a blue bottom row.
func twoRows(r image.Rectangle) *image.RGBA {
	img := image.NewRGBA(r)
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, color.RGBA{255, 0, 0, 255})
		img.Set(x, r.Min.Y+1, color.RGBA{0, 0, 255, 255})
	}
	return img
}

func TestImageToNRGBA(t *testing.T) {
	src := twoRows(image.Rect(3, 5, 5, 7))

	dst := ImageToNRGBA(src, false)
	assert.Equal(t, image.Rect(0, 0, 2, 2), dst.Bounds())
	assert.Equal(t, 8, dst.Stride)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, dst.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, dst.NRGBAAt(1, 1))

	flipped := ImageToNRGBA(src, true)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, flipped.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, flipped.NRGBAAt(1, 1))
}

func TestFlipRowsOdd(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetNRGBA(0, y, color.NRGBA{uint8(y), 0, 0, 255})
	}
	flipRows(img)
	assert.Equal(t, uint8(2), img.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(1), img.NRGBAAt(0, 1).R)
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 2).R)
}

func TestOpenImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, twoRows(image.Rect(0, 0, 2, 2))))
	fsys := fstest.MapFS{
		"rows.png": {Data: buf.Bytes()},
		"bad.png":  {Data: []byte("not a png")},
		"cut.png":  {Data: buf.Bytes()[:40]},
	}
	img, err := OpenImage(fsys, "rows.png")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(2, 2), img.Bounds().Size())

	_, err = OpenImage(fsys, "bad.png")
	assert.ErrorContains(t, err, "not an image")
	_, err = OpenImage(fsys, "cut.png")
	assert.ErrorContains(t, err, "decoding")
	_, err = OpenImage(fsys, "none.png")
	assert.ErrorContains(t, err, "opening")
}

func TestColorFloats(t *testing.T) {
	f := colorFloats(color.NRGBA{51, 77, 77, 255})
	assert.InDelta(t, 0.2, f[0], 1e-6)
	assert.InDelta(t, 0.302, f[1], 1e-3)
	assert.Equal(t, float32(1), f[3])

	f = colorFloats(color.RGBA{0, 0, 128, 128})
	assert.InDelta(t, 1, f[2], 1e-2)
	assert.InDelta(t, 0.5, f[3], 1e-2)
}

func TestDefaultTextureOptions(t *testing.T) {
	opts := DefaultTextureOptions()
	assert.True(t, opts.FlipY)
	assert.True(t, opts.Mipmaps)
	assert.NotZero(t, opts.Wrap)
}
