// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// OpenImage decodes the image file with the given name from fsys.
// PNG, JPEG, BMP and WebP files are supported.
func OpenImage(fsys fs.FS, name string) (image.Image, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("glgpu: opening image: %w", err)
	}
	if !filetype.IsImage(b) {
		kind, _ := filetype.Match(b)
		return nil, fmt.Errorf("glgpu: %s is not an image file (detected type: %s)", name, kind.Extension)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("glgpu: decoding image %s: %w", name, err)
	}
	return img, nil
}

// ImageToNRGBA returns the pixels of img as a tightly packed
// *image.NRGBA with its origin at (0, 0). If flipY is set, the rows
// are reversed so that the first row is the bottom of the image, which
// is where GL texture coordinates start.
func ImageToNRGBA(img image.Image, flipY bool) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	if flipY {
		flipRows(dst)
	}
	return dst
}

func flipRows(img *image.NRGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}
