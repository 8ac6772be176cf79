// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct shared by the lessons and the learngl tool.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/learngl/base/errors"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvFile is the environment variable naming an optional
// config file that [Load] reads on top of the defaults.
const EnvFile = "LEARNGL_CONFIG"

// Config is the main config struct that contains
// the window and rendering options for a lesson.
type Config struct {

	// the title of the window
	Title string `default:"LearnOpenGL" toml:"title" yaml:"title"`

	// the initial width of the window in screen coordinates
	Width int `default:"800" toml:"width" yaml:"width"`

	// the initial height of the window in screen coordinates
	Height int `default:"600" toml:"height" yaml:"height"`

	// the color the frame is cleared to, as a hex string
	ClearColor string `default:"#334d4d" toml:"clear_color" yaml:"clear_color"`

	// draw polygons as lines instead of filled
	Wireframe bool `toml:"wireframe" yaml:"wireframe"`

	// wait for the vertical refresh before swapping buffers
	VSync bool `default:"true" toml:"vsync" yaml:"vsync"`

	// number of multisample buffer samples; 0 disables multisampling
	Samples int `toml:"samples" yaml:"samples"`

	// if set, shader sources are read from this directory
	// instead of the embedded copies and reloaded on change
	ShaderDir string `toml:"shader_dir" yaml:"shader_dir"`

	// image files to use instead of the embedded textures, in texture unit order
	Textures []string `toml:"textures" yaml:"textures"`

	// seconds between frames-per-second reports; 0 disables them
	FPSInterval float64 `toml:"fps_interval" yaml:"fps_interval"`

	// the log level: debug, info, warn or error
	LogLevel string `default:"info" toml:"log_level" yaml:"log_level"`
}

// New returns a new [Config] with all default values set.
func New() *Config {
	cfg := &Config{}
	errors.Log(setFromDefaultTags(cfg))
	return cfg
}

// Load returns a new [Config] with default values, updated from the file
// named by the [EnvFile] environment variable if it is set, and then from
// the given files in order; empty names are skipped. The given title
// replaces the default title, unless a file sets one. The result is
// validated once, after all files are applied.
func Load(title string, files ...string) (*Config, error) {
	cfg := New()
	if title != "" {
		cfg.Title = title
	}
	files = append([]string{os.Getenv(EnvFile)}, files...)
	for _, fn := range files {
		if fn == "" {
			continue
		}
		if err := Open(cfg, fn); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ExpandPaths(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Open reads the given TOML or YAML file into cfg, determined by
// the file extension. Fields not present in the file are unchanged.
func Open(cfg *Config, filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("config: unsupported config file type %q", filename)
	}
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", filename, err)
	}
	return nil
}

// ExpandPaths replaces a leading ~ in [Config.ShaderDir]
// and [Config.Textures] with the home directory.
func (cfg *Config) ExpandPaths() error {
	var err error
	if cfg.ShaderDir, err = homedir.Expand(cfg.ShaderDir); err != nil {
		return fmt.Errorf("config: shader dir: %w", err)
	}
	for i, fn := range cfg.Textures {
		if cfg.Textures[i], err = homedir.Expand(fn); err != nil {
			return fmt.Errorf("config: texture %d: %w", i, err)
		}
	}
	return nil
}

// Validate returns an error if the config can not be used to open a window.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window size must be positive, got %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.Samples < 0 {
		errs = append(errs, fmt.Errorf("config: samples must not be negative, got %d", cfg.Samples))
	}
	if _, err := cfg.ClearRGBA(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ClearRGBA returns [Config.ClearColor] as an opaque color.
func (cfg *Config) ClearRGBA() (color.NRGBA, error) {
	c, err := colorful.Hex(cfg.ClearColor)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: invalid clear color %q: %w", cfg.ClearColor, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, 255}, nil
}
