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

package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brink-lang/brinkc/ast"
	"github.com/brink-lang/brinkc/internal/golden"
	"github.com/brink-lang/brinkc/parser"
	"github.com/brink-lang/brinkc/report"
	"github.com/brink-lang/brinkc/source"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:       "testdata",
		Refresh:    "BRINKC_REFRESH",
		Extensions: []string{"brk"},
		Outputs: []golden.Output{
			{Extension: "ast.txt"},
			{Extension: "stderr.txt"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		file := source.NewFile(path, text)
		r := report.New(file)
		opts := parser.Options{Recover: strings.HasPrefix(path, "recover/")}

		prog, _ := parser.ParseFile(file, r, opts)
		if prog != nil {
			var out strings.Builder
			require.NoError(t, ast.Dump(&out, file, prog))
			outputs[0] = out.String()
		}
		outputs[1] = r.Render(report.Simple)
	})
}
