// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the level handling and colored
// slog handler used by the lessons and the learngl tool.
package logx

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It is LevelInfo by
// default, LevelDebug with the debug build tag and LevelWarn with the
// release build tag.
var UserLevel = new(slog.LevelVar)

func init() {
	UserLevel.Set(defaultUserLevel)
}

// ParseLevel returns the [slog.Level] named by s, which is
// one of debug, info, warn or error (case insensitive).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logx: unknown log level %q", s)
}

// SetLevel parses s and sets [UserLevel] to it.
func SetLevel(s string) error {
	lvl, err := ParseLevel(s)
	if err != nil {
		return err
	}
	UserLevel.Set(lvl)
	return nil
}

// SetDefault installs a new colored [Handler] writing to
// standard error as the default slog logger.
func SetDefault() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// PrintlnDebug is equivalent to fmt.Println but only prints
// if [UserLevel] is at or below LevelDebug.
func PrintlnDebug(v ...any) {
	if UserLevel.Level() <= slog.LevelDebug {
		fmt.Println(v...)
	}
}
