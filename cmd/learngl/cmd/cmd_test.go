// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/learngl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, List(&buf))
	out := buf.String()
	for i, l := range Lessons {
		assert.Contains(t, out, l.Name)
		assert.Contains(t, out, l.Desc)
		_, err := os.Stat(filepath.Join("..", "..", "..", "examples", l.Name))
		assert.NoError(t, err, "lesson %d", i)
	}
	assert.True(t, strings.HasPrefix(out, "1. hellotriangle"))
}

func TestListCommand(t *testing.T) {
	t.Setenv(config.EnvFile, "")
	var buf bytes.Buffer
	root := Root()
	root.SetOut(&buf)
	root.SetArgs([]string{"list", "--log-level", "warn"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "transform")
}

func TestBadFlags(t *testing.T) {
	t.Setenv(config.EnvFile, "")
	for _, args := range [][]string{
		{"list", "--log-level", "loud"},
		{"list", "--config", filepath.Join(t.TempDir(), "none.toml")},
		{"check", "only-one.vert"},
	} {
		root := Root()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(args)
		assert.Error(t, root.Execute(), args)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(config.EnvFile, "")
	fn := filepath.Join(t.TempDir(), "learngl.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("log_level: debug\nwidth: 320\n"), 0o644))
	cfg, err := loadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, "learngl", cfg.Title)
}

func TestLoadConfigOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, "env.toml")
	require.NoError(t, os.WriteFile(env, []byte("height = 0\n"), 0o644))
	t.Setenv(config.EnvFile, env)
	_, err := loadConfig("")
	assert.ErrorContains(t, err, "window size must be positive")

	fix := filepath.Join(dir, "fix.yaml")
	require.NoError(t, os.WriteFile(fix, []byte("height: 480\n"), 0o644))
	cfg, err := loadConfig(fix)
	require.NoError(t, err)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 800, cfg.Width)
}

func TestCheckMissingFiles(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.frag")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	var buf bytes.Buffer
	assert.ErrorContains(t, Check(config.New(), &buf, filepath.Join(dir, "none.vert"), empty), "no shader file")

	vert := filepath.Join(dir, "a.vert")
	require.NoError(t, os.WriteFile(vert, []byte("#version 330 core\n"), 0o644))
	assert.ErrorContains(t, Check(config.New(), &buf, vert, empty), "empty shader file")
}

func TestShow(t *testing.T) {
	fn := filepath.Join("..", "..", "..", "examples", "shaders", "shaders", "shader.vert")
	var buf bytes.Buffer
	require.NoError(t, Show(&buf, fn, "monokai", "noop"))
	src, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, string(src), buf.String())

	buf.Reset()
	require.NoError(t, Show(&buf, fn, "monokai", "terminal256"))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "aPos")

	buf.Reset()
	assert.ErrorContains(t, Show(&buf, fn, "monokai", "nope"), "unknown formatter")
	assert.ErrorContains(t, Show(&buf, fn, "nope", "noop"), "unknown style")
	assert.Empty(t, buf.String())
	assert.Error(t, Show(&buf, "none.vert", "monokai", "noop"))
}
