// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Show writes the given shader file to w with GLSL syntax highlighting
// in the given chroma style. The formatter is one of the chroma formatter
// names, such as terminal256 or noop for plain text.
func Show(w io.Writer, file, style, formatter string) error {
	src, err := readSource(file)
	if err != nil {
		return err
	}
	return highlight(w, src, style, formatter)
}

func highlight(w io.Writer, src, style, formatter string) error {
	lexer := lexers.Get("glsl")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	// Get falls back to a default for unknown names, so look them up directly.
	f, ok := formatters.Registry[formatter]
	if !ok {
		return fmt.Errorf("show: unknown formatter %q", formatter)
	}
	st, ok := styles.Registry[style]
	if !ok {
		return fmt.Errorf("show: unknown style %q", style)
	}
	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return err
	}
	return f.Format(w, st, it)
}
