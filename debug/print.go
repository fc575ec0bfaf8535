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

// Package debug renders an ir.Sequence as an ANSI-colored tree for the
// "-dump" CLI flag, the same shape lang/retro's VM dump uses for its
// stack trace: one io.Writer sink, one node per line, color carrying the
// kind rather than decorating the whole line.
package debug

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/go-bf/bfjit/ir"
)

var (
	arith    = color.New(color.FgCyan)
	ioColor  = color.New(color.FgYellow)
	loop     = color.New(color.FgMagenta, color.Bold)
	special  = color.New(color.FgGreen)
	bad      = color.New(color.FgRed, color.Bold)
)

func colorFor(k ir.Kind) *color.Color {
	switch k {
	case ir.Incr, ir.Decr, ir.Right, ir.Left:
		return arith
	case ir.Output, ir.Input:
		return ioColor
	case ir.Loop:
		return loop
	case ir.Zero, ir.Add:
		return special
	default:
		return bad
	}
}

// Print writes prog to w as an indented, color-coded tree: one line per
// node, two spaces of indent per nesting level, Loop nodes opening a new
// level for their Children.
func Print(w io.Writer, prog ir.Sequence) {
	printSeq(w, prog, 0)
}

func printSeq(w io.Writer, seq ir.Sequence, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range seq {
		fmt.Fprint(w, indent)
		c := colorFor(n.Kind)
		switch n.Kind {
		case ir.Loop:
			c.Fprintln(w, "Loop")
			printSeq(w, n.Children, depth+1)
		case ir.Incr, ir.Decr, ir.Right, ir.Left, ir.Add:
			c.Fprintf(w, "%s(%d)\n", n.Kind, n.N)
		default:
			c.Fprintf(w, "%s\n", n.Kind)
		}
	}
}
