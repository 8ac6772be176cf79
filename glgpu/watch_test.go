// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "shader.vert")
	require.NoError(t, os.WriteFile(vert, []byte("a"), 0o644))

	w, err := NewWatcher(dir, "shader.vert", "shader.frag")
	require.NoError(t, err)
	defer w.Close()
	w.SetDebounce(20 * time.Millisecond)
	assert.Nil(t, w.Poll())

	require.NoError(t, os.WriteFile(vert, []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("c"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shader.frag"), []byte("d"), 0o644))

	var got []string
	assert.Eventually(t, func() bool {
		for _, n := range w.Poll() {
			if !contains(got, n) {
				got = append(got, n)
			}
		}
		return len(got) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"shader.vert", "shader.frag"}, got)
}

func TestWatcherDebounce(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "shader.vert")
	require.NoError(t, os.WriteFile(vert, []byte("a"), 0o644))

	w, err := NewWatcher(dir, "shader.vert", "shader.frag")
	require.NoError(t, err)
	defer w.Close()
	w.SetDebounce(200 * time.Millisecond)

	for _, src := range []string{"b", "c", "d"} {
		require.NoError(t, os.WriteFile(vert, []byte(src), 0o644))
		time.Sleep(10 * time.Millisecond)
	}
	var reports [][]string
	assert.Eventually(t, func() bool {
		if names := w.Poll(); names != nil {
			reports = append(reports, names)
		}
		return len(reports) > 0
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Nil(t, w.Poll())
	assert.Equal(t, [][]string{{"shader.vert"}}, reports)

	// editors often save by writing a temporary file and renaming it
	tmp := filepath.Join(dir, "shader.frag.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("e"), 0o644))
	require.NoError(t, os.Rename(tmp, filepath.Join(dir, "shader.frag")))
	assert.Eventually(t, func() bool {
		return contains(w.Poll(), "shader.frag")
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), "shader.vert")
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NotPanics(t, func() { assert.NoError(t, w.Close()) })
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), "shader.vert")
	assert.Error(t, err)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
