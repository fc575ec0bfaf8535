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

package parser_test

import (
	"testing"

	"github.com/go-bf/bfjit/ir"
	"github.com/go-bf/bfjit/lexer"
	"github.com/go-bf/bfjit/parser"
)

func parseString(t *testing.T, src string) ir.Sequence {
	t.Helper()
	seq, err := parser.Parse(lexer.NewByteLexer([]byte(src)))
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return seq
}

func TestParseEmpty(t *testing.T) {
	seq := parseString(t, "")
	if len(seq) != 0 {
		t.Fatalf("expected empty program, got %v", seq)
	}
}

func TestParseArithmeticAndIO(t *testing.T) {
	seq := parseString(t, "+++.")
	want := ir.Sequence{ir.MakeIncr(1), ir.MakeIncr(1), ir.MakeIncr(1), ir.MakeOutput()}
	if !seq.Equal(want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}

func TestParseNoFoldingAtParseTime(t *testing.T) {
	// The parser must not coalesce adjacent nodes; that's the optimizer's job.
	seq := parseString(t, "+>+<-")
	want := ir.Sequence{
		ir.MakeIncr(1), ir.MakeRight(1), ir.MakeIncr(1), ir.MakeLeft(1), ir.MakeDecr(1),
	}
	if !seq.Equal(want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}

func TestParseLoop(t *testing.T) {
	seq := parseString(t, "[-]")
	want := ir.Sequence{ir.MakeLoop(ir.Sequence{ir.MakeDecr(1)})}
	if !seq.Equal(want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}

func TestParseNestedEmptyLoops(t *testing.T) {
	seq := parseString(t, "[[[]]]")
	want := ir.Sequence{
		ir.MakeLoop(ir.Sequence{ir.MakeLoop(ir.Sequence{ir.MakeLoop(nil)})}),
	}
	if !seq.Equal(want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}

func TestParseUnterminatedLoop(t *testing.T) {
	seq, err := parser.Parse(lexer.NewByteLexer([]byte("+[-")))
	if err == nil {
		t.Fatalf("expected an error for an unterminated loop")
	}
	want := ir.Sequence{ir.MakeIncr(1), ir.MakeError()}
	if !seq.Equal(want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}

func TestParseUnterminatedLoopContinuesParent(t *testing.T) {
	// The unterminated loop becomes a single Error node, but the parent
	// sequence still parses whatever follows — except there's nothing
	// left to parse, since running off EOF ends the whole program. This
	// test instead checks that siblings *before* the broken loop survive.
	seq, err := parser.Parse(lexer.NewByteLexer([]byte("++[")))
	if err == nil {
		t.Fatalf("expected an error")
	}
	want := ir.Sequence{ir.MakeIncr(1), ir.MakeIncr(1), ir.MakeError()}
	if !seq.Equal(want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}

func TestParseStrayCloseBracket(t *testing.T) {
	seq, err := parser.Parse(lexer.NewByteLexer([]byte("+]+")))
	if err == nil {
		t.Fatalf("expected an error for a stray ']'")
	}
	want := ir.Sequence{ir.MakeIncr(1), ir.MakeError(), ir.MakeIncr(1)}
	if !seq.Equal(want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
}

func TestParsePrintAPattern(t *testing.T) {
	seq := parseString(t, "++++++++[>++++++++<-]>+.")
	if seq.HasError() {
		t.Fatalf("unexpected error node in %v", seq)
	}
	if len(seq) != 12 {
		t.Fatalf("unexpected node count: %d", len(seq))
	}
}
