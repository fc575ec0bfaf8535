// This file is part of bfjit.
//
// Copyright 2026 The bfjit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes a plain, uncolored indented dump of seq to w, one node per
// line. package debug produces the ANSI-colored CLI dump with its own
// recursion over the same tree; this method is the bare structural text
// form, used for the CLI's -o output file and by tests.
func (seq Sequence) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	seq.write(&sb, 0)
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func (seq Sequence) write(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range seq {
		sb.WriteString(indent)
		switch n.Kind {
		case Loop:
			sb.WriteString("Loop\n")
			n.Children.write(sb, depth+1)
		case Incr, Decr, Right, Left, Add:
			fmt.Fprintf(sb, "%s(%d)\n", n.Kind, n.N)
		default:
			fmt.Fprintf(sb, "%s\n", n.Kind)
		}
	}
}

// String returns seq's plain-text tree dump.
func (seq Sequence) String() string {
	var sb strings.Builder
	seq.write(&sb, 0)
	return sb.String()
}
