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

package token

import (
	"bufio"
	"fmt"
	"io"

	"github.com/brink-lang/brinkc/source"
)

// Dump writes a listing of tokens to w, one token per line, as tab-separated
// columns: index, kind, byte span, line:column of the token's start, and the
// quoted text it covers.
//
// The first line is a header naming the columns.
func Dump(w io.Writer, file *source.File, tokens []Token) error {
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, "#\tkind\tspan\tloc\ttext")
	for i, tok := range tokens {
		fmt.Fprintf(out, "%d\t%v\t%v\t%v\t%q\n",
			i, tok.Kind, tok.Span, file.Location(tok.Start), tok.Text(file))
	}
	return out.Flush()
}
