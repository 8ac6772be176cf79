// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions
// for the learngl tool.
package cmd

import (
	"cogentcore.org/learngl/base/logx"
	"cogentcore.org/learngl/config"
	"github.com/spf13/cobra"
)

// Root returns the root learngl command with all subcommands added.
func Root() *cobra.Command {
	var (
		cfgFile  string
		logLevel string
		cfg      = config.New()
	)
	root := &cobra.Command{
		Use:          "learngl",
		Short:        "Tools for the LearnOpenGL lessons",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.SetDefault()
			loaded, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			*cfg = *loaded
			if logLevel == "" {
				logLevel = cfg.LogLevel
			}
			return logx.SetLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML or YAML config `file` (default $"+config.EnvFile+")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	var style, format string
	show := &cobra.Command{
		Use:   "show <shader>",
		Short: "Print a shader file with syntax highlighting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Show(cmd.OutOrStdout(), args[0], style, format)
		},
	}
	show.Flags().StringVar(&style, "style", "monokai", "chroma highlighting style")
	show.Flags().StringVar(&format, "format", "terminal256", "chroma output format: terminal, terminal256, terminal16m or noop")

	root.AddCommand(
		show,
		&cobra.Command{
			Use:   "list",
			Short: "List the lessons",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return List(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "info",
			Short: "Print the OpenGL vendor, renderer and versions",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return Info(cfg, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "check <vertex shader> <fragment shader>",
			Short: "Compile and link a vertex and fragment shader and print any errors",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return Check(cfg, cmd.OutOrStdout(), args[0], args[1])
			},
		},
	)
	return root
}

// loadConfig returns the default config updated from the
// environment and then from the given file, if any.
func loadConfig(file string) (*config.Config, error) {
	return config.Load("learngl", file)
}
