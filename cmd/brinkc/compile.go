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
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/brink-lang/brinkc"
	"github.com/brink-lang/brinkc/report"
)

func runCompile(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := opts.settings(cmd)
	if err != nil {
		return err
	}
	indent, err := cfg.Indentation()
	if err != nil {
		return err
	}
	logger := opts.logger(cmd)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	style := newStyles(colorEnabled(cfg.Color, stderr))

	start := time.Now()
	if cfg.Format == "text" {
		style.banner.Fprintf(stdout, "brink compiler v%s\n\n", version)
	}

	compiler := brinkc.Compiler{
		Indent:          indent,
		Recover:         cfg.Recover,
		AllowBlankLines: cfg.BlankLines,
		MaxParallelism:  cfg.Jobs,
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := compiler.Compile(ctx, args...)
	if err != nil {
		return err
	}

	all := report.New(nil)
	for _, res := range results {
		logger.Debug("compiled file",
			"path", res.Path,
			"indent", res.File.Indent().String(),
			"tokens", len(res.Tokens),
			"errors", res.Report.Errors(),
			"elapsed", res.Elapsed,
		)
		all.Append(res.Report)
	}
	errors, warnings := all.Errors(), all.Warnings()
	shown := truncate(all, cfg.MaxErrors)

	if cfg.Format == "json" {
		data, err := all.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
	} else {
		writeDiagnostics(stderr, all, style)
		if shown < errors {
			fmt.Fprintf(stderr, "too many errors; %d more not shown\n\n", errors-shown)
		}
		style.summary(errors, warnings).Fprintln(stderr, report.Summary(errors, warnings))
		style.timing.Fprintf(stdout, "compilation finished in %.6fs\n", time.Since(start).Seconds())
	}

	if errors > 0 {
		return errFailed
	}
	return nil
}

// writeDiagnostics renders every diagnostic in r to w, each followed by a
// blank line.
func writeDiagnostics(w io.Writer, r *report.Report, style *styles) {
	for i := range r.Diagnostics {
		fmt.Fprint(w, r.Diagnostics[i].Render(style.diagnostics), "\n\n")
	}
}

// truncate drops every diagnostic after the limit-th error in r, and returns
// how many errors remain. A limit of zero keeps everything.
func truncate(r *report.Report, limit int) int {
	if limit <= 0 {
		return r.Errors()
	}
	var seen int
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Level > report.Error {
			continue
		}
		seen++
		if seen == limit {
			r.Diagnostics = r.Diagnostics[:i+1]
			break
		}
	}
	return seen
}
