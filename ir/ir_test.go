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

package ir_test

import (
	"strings"
	"testing"

	"github.com/go-bf/bfjit/ir"
)

func TestSequenceEqual(t *testing.T) {
	a := ir.Sequence{ir.MakeIncr(3), ir.MakeLoop(ir.Sequence{ir.MakeDecr(1)})}
	b := ir.Sequence{ir.MakeIncr(3), ir.MakeLoop(ir.Sequence{ir.MakeDecr(1)})}
	c := ir.Sequence{ir.MakeIncr(3), ir.MakeLoop(ir.Sequence{ir.MakeDecr(2)})}

	if !a.Equal(b) {
		t.Fatalf("expected a == b")
	}
	if a.Equal(c) {
		t.Fatalf("expected a != c")
	}
	if a.Equal(a[:1]) {
		t.Fatalf("expected different lengths to differ")
	}
}

func TestSequenceClone(t *testing.T) {
	a := ir.Sequence{ir.MakeLoop(ir.Sequence{ir.MakeIncr(1)})}
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatalf("clone not equal to original")
	}
	b[0].Children[0].N = 9
	if a[0].Children[0].N == 9 {
		t.Fatalf("clone aliases original's loop body")
	}
}

func TestSequenceHasError(t *testing.T) {
	clean := ir.Sequence{ir.MakeIncr(1), ir.MakeLoop(ir.Sequence{ir.MakeOutput()})}
	if clean.HasError() {
		t.Fatalf("well-formed sequence reported an error")
	}
	dirty := ir.Sequence{ir.MakeLoop(ir.Sequence{ir.MakeError()})}
	if !dirty.HasError() {
		t.Fatalf("nested error node not detected")
	}
}

func TestSequenceCount(t *testing.T) {
	seq := ir.Sequence{ir.MakeIncr(1), ir.MakeLoop(ir.Sequence{ir.MakeDecr(1), ir.MakeOutput()})}
	if got, want := seq.Count(), 4; got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
}

func TestSequenceString(t *testing.T) {
	seq := ir.Sequence{ir.MakeIncr(2), ir.MakeLoop(ir.Sequence{ir.MakeOutput()})}
	s := seq.String()
	if !strings.Contains(s, "Incr(2)") || !strings.Contains(s, "Loop") || !strings.Contains(s, "Output") {
		t.Fatalf("unexpected dump: %q", s)
	}
}

func TestKindString(t *testing.T) {
	if got, want := ir.Incr.String(), "Incr"; got != want {
		t.Fatalf("Kind.String() = %q, want %q", got, want)
	}
	if !ir.Incr.Arith() || !ir.Left.Arith() {
		t.Fatalf("Arith() misclassified Incr/Left")
	}
	if ir.Output.Arith() {
		t.Fatalf("Output misclassified as arithmetic")
	}
}
