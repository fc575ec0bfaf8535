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

package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-bf/bfjit/interp"
	"github.com/go-bf/bfjit/ir"
	"github.com/go-bf/bfjit/lexer"
	"github.com/go-bf/bfjit/optimize"
	"github.com/go-bf/bfjit/parser"
)

func mustParse(t *testing.T, src string) ir.Sequence {
	t.Helper()
	seq, err := parser.Parse(lexer.NewByteLexer([]byte(src)))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return seq
}

func runProgram(t *testing.T, seq ir.Sequence, input string) string {
	t.Helper()
	var out bytes.Buffer
	m := interp.New(interp.DefaultTapeSize, strings.NewReader(input), &out)
	if err := m.Run(seq); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestInterpPrintsA(t *testing.T) {
	seq := mustParse(t, "++++++++[>++++++++<-]>+.")
	got := runProgram(t, seq, "")
	if got != "A" {
		t.Fatalf("got %q, want %q", got, "A")
	}
}

func TestInterpEchoesInput(t *testing.T) {
	seq := mustParse(t, ",.")
	got := runProgram(t, seq, "x")
	if got != "x" {
		t.Fatalf("got %q, want %q", got, "x")
	}
}

func TestInterpWrapsCellArithmetic(t *testing.T) {
	// 256 '+' wraps to 0, then one more '+' yields cell value 1.
	src := strings.Repeat("+", 257) + "."
	seq := mustParse(t, src)
	got := runProgram(t, seq, "")
	if got != string([]byte{1}) {
		t.Fatalf("got %v, want [1]", []byte(got))
	}
}

func TestInterpAgreesWithOptimizedTree(t *testing.T) {
	for _, src := range []string{
		"++++++++[>++++++++<-]>+.",
		"+++++[>+++++<-]>++.", // a multiply loop, output as a raw byte
		"[-]+.",
		",>,.<.", // reads two cells, prints them swapped; no EOF-sensitive loop
		"+++>++>+<<.>.>.",
	} {
		seq := mustParse(t, src)
		unopt := runProgram(t, seq, "ab")
		opt, _ := optimize.Optimize(seq.Clone(), optimize.DefaultOptions())
		got := runProgram(t, opt, "ab")
		if got != unopt {
			t.Fatalf("src %q: optimized output %q != unoptimized %q", src, got, unopt)
		}
	}
}

func TestInterpLoopSkippedWhenCellZero(t *testing.T) {
	seq := mustParse(t, "[+++++++++++++++++++++++++++++++++++++++++++++++++]")
	got := runProgram(t, seq, "")
	if got != "" {
		t.Fatalf("expected no output, got %q", got)
	}
}

func TestInterpRejectsErrorNode(t *testing.T) {
	m := interp.New(16, strings.NewReader(""), &bytes.Buffer{})
	if err := m.Run(ir.Sequence{ir.MakeError()}); err == nil {
		t.Fatal("expected an error running an ir.Error node")
	}
}
