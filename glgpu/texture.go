// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"
	"io/fs"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// TextureOptions are the sampling parameters of a [Texture].
type TextureOptions struct {
	// FlipY flips the image vertically on upload.
	FlipY bool

	// Wrap is the wrap mode for both s and t, e.g. gl.REPEAT.
	Wrap int32

	MinFilter int32
	MagFilter int32

	// Mipmaps generates the mipmap chain after upload.
	Mipmaps bool
}

// DefaultTextureOptions returns repeating, trilinear filtered,
// mipmapped options that flip images on upload.
func DefaultTextureOptions() TextureOptions {
	return TextureOptions{
		FlipY:     true,
		Wrap:      gl.REPEAT,
		MinFilter: gl.LINEAR_MIPMAP_LINEAR,
		MagFilter: gl.LINEAR,
		Mipmaps:   true,
	}
}

// Texture is a 2D RGBA texture.
type Texture struct {
	Handle uint32
	Size   image.Point
}

// NewTexture uploads img into a new 2D texture with the given options.
// The texture is left bound to the active texture unit.
func NewTexture(img image.Image, opts TextureOptions) *Texture {
	rgba := ImageToNRGBA(img, opts.FlipY)
	tx := &Texture{Size: rgba.Rect.Size()}

	gl.GenTextures(1, &tx.Handle)
	gl.BindTexture(gl.TEXTURE_2D, tx.Handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.Wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, opts.MinFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, opts.MagFilter)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(tx.Size.X), int32(tx.Size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	return tx
}

// OpenTexture decodes the named image file from fsys
// (see [OpenImage]) and uploads it with [NewTexture].
func OpenTexture(fsys fs.FS, name string, opts TextureOptions) (*Texture, error) {
	img, err := OpenImage(fsys, name)
	if err != nil {
		return nil, err
	}
	return NewTexture(img, opts), nil
}

// Bind binds the texture to the given texture unit, counting from 0.
func (tx *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tx.Handle)
}

// Delete deletes the GL texture object.
func (tx *Texture) Delete() {
	if tx.Handle == 0 {
		return
	}
	gl.DeleteTextures(1, &tx.Handle)
	tx.Handle = 0
}
