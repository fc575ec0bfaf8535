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

package lexer_test

import (
	"strings"
	"testing"

	"github.com/go-bf/bfjit/lexer"
)

func collect(l lexer.Lexer) []lexer.Token {
	var toks []lexer.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok == lexer.EOF {
			break
		}
	}
	return toks
}

func TestByteLexerSkipsComments(t *testing.T) {
	l := lexer.NewByteLexer([]byte("+ this is a comment -\n[.]"))
	got := collect(l)
	want := []lexer.Token{lexer.Plus, lexer.Minus, lexer.LBracket, lexer.Dot, lexer.RBracket, lexer.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if !l.Done() {
		t.Fatalf("expected Done() after exhausting input")
	}
}

func TestByteLexerEmpty(t *testing.T) {
	l := lexer.NewByteLexer(nil)
	if !l.Done() {
		t.Fatalf("empty lexer should already be done")
	}
	if tok := l.Next(); tok != lexer.EOF {
		t.Fatalf("Next() on empty input = %v, want EOF", tok)
	}
}

func TestStreamLexerMatchesByteLexer(t *testing.T) {
	src := "++>[-]<,."
	sl := lexer.NewStreamLexer(strings.NewReader(src))
	bl := lexer.NewByteLexer([]byte(src))

	sgot := collect(sl)
	bgot := collect(bl)
	if len(sgot) != len(bgot) {
		t.Fatalf("stream and byte lexers disagree on length: %v vs %v", sgot, bgot)
	}
	for i := range sgot {
		if sgot[i] != bgot[i] {
			t.Fatalf("token %d: stream=%v byte=%v", i, sgot[i], bgot[i])
		}
	}
	if !sl.Done() {
		t.Fatalf("expected stream lexer Done() after EOF")
	}
}

func TestTokenString(t *testing.T) {
	if got, want := lexer.LBracket.String(), "LBracket"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
