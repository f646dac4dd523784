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
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/brink-lang/brinkc/report"
)

// styles holds the color formatters for the compiler's own output.
type styles struct {
	banner  *color.Color
	timing  *color.Color
	failed  *color.Color
	warned  *color.Color
	success *color.Color

	// The style to render diagnostics with.
	diagnostics report.Style
}

// newStyles creates color formatters. If enabled is false, they print plain
// text.
func newStyles(enabled bool) *styles {
	s := &styles{
		banner:  color.New(color.Bold),
		timing:  color.New(color.FgHiBlack),
		failed:  color.New(color.Bold, color.FgRed),
		warned:  color.New(color.Bold, color.FgYellow),
		success: color.New(color.Bold, color.FgGreen),

		diagnostics: report.Monochrome,
	}

	for _, c := range []*color.Color{s.banner, s.timing, s.failed, s.warned, s.success} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if enabled {
		s.diagnostics = report.Colored
	}
	return s
}

// summary returns the style for a summary of the given counts.
func (s *styles) summary(errors, warnings int) *color.Color {
	switch {
	case errors > 0:
		return s.failed
	case warnings > 0:
		return s.warned
	default:
		return s.success
	}
}

// colorEnabled decides whether to print colors to w, given the value of the
// color setting.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	// auto: only color terminals, and respect NO_COLOR.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
