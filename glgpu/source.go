// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"io/fs"
	"strings"
)

// CString returns the given source with a null terminator
// appended, as required by gl.Strs, if it does not already end in one.
func CString(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

// GoString returns the given source without its null terminator(s).
func GoString(src string) string {
	return strings.TrimRight(src, "\x00")
}

// OpenShader reads the source of the shader file with the given name from fsys.
func OpenShader(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("glgpu: reading shader: %w", err)
	}
	return string(b), nil
}

// infoLog cleans up a raw shader or program info log buffer.
func infoLog(raw string) string {
	return strings.TrimSpace(GoString(raw))
}
