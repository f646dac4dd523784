// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/brink-lang/brinkc/internal/config"
)

// errFailed is returned by commands whose input had errors. Those errors are
// reported as diagnostics, so the error itself is not printed.
var errFailed = errors.New("compilation failed")

// options holds the values of command-line flags.
type options struct {
	config     string
	indent     string
	color      string
	format     string
	recover    bool
	blankLines bool
	jobs       int
	maxErrors  int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:   "brinkc [flags] <file>...",
		Short: "brinkc - compiler for the Brink language",
		Long: `brinkc compiles Brink source files.

Brink is an indentation-sensitive language. Each file's indentation style is
detected from its contents, unless one is given with --indent or in a
brinkc.yaml configuration file in the working directory.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, opts, args)
		},
	}

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.config, "config", "", "Path to a configuration file (default: ./"+config.FileName+" if present)")
	persistent.StringVar(&opts.indent, "indent", "", "Indentation style: auto, tab, spaces, or spaces:N")
	persistent.StringVar(&opts.color, "color", "", "Color output: auto, always, or never")
	persistent.BoolVar(&opts.blankLines, "blank-lines", false, "Skip blank lines between items instead of rejecting them")
	persistent.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	flags := cmd.Flags()
	flags.StringVar(&opts.format, "format", "", "Diagnostic output format: text or json")
	flags.BoolVar(&opts.recover, "recover", false, "Keep parsing after a syntax error")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "Number of files to compile in parallel (0 means one per CPU)")
	flags.IntVar(&opts.maxErrors, "max-errors", 0, "Stop showing diagnostics after this many errors (0 means no limit)")

	cmd.AddCommand(newTokensCmd(opts))
	cmd.AddCommand(newASTCmd(opts))
	cmd.AddCommand(newNodeCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// settings resolves the configuration for cmd: the configuration file, with
// any flags that were set on the command line layered on top.
func (o *options) settings(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	path := o.config
	if path == "" {
		path = config.Find(".")
	}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("indent") {
		cfg.Indent = o.indent
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("recover") {
		cfg.Recover = o.recover
	}
	if flags.Changed("blank-lines") {
		cfg.BlankLines = o.blankLines
	}
	if flags.Changed("jobs") {
		cfg.Jobs = o.jobs
	}
	if flags.Changed("max-errors") {
		cfg.MaxErrors = o.maxErrors
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// logger returns the logger for cmd. Only warnings are logged, unless
// --verbose was given.
func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
