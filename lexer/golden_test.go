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

package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brink-lang/brinkc/internal/golden"
	"github.com/brink-lang/brinkc/lexer"
	"github.com/brink-lang/brinkc/report"
	"github.com/brink-lang/brinkc/source"
	"github.com/brink-lang/brinkc/token"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:       "testdata",
		Refresh:    "BRINKC_REFRESH",
		Extensions: []string{"brk"},
		Outputs: []golden.Output{
			{Extension: "tokens.tsv"},
			{Extension: "stderr.txt"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		file := source.NewFile(path, text)
		tokens := lexer.Lex(file)

		var tsv strings.Builder
		require.NoError(t, token.Dump(&tsv, file, tokens))
		outputs[0] = tsv.String()

		r := report.New(file)
		lexer.Check(file, tokens, r)
		outputs[1] = r.Render(report.Simple)
	})
}
