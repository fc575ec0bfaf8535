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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-bf/bfjit/ir"
)

func TestOpenSourceStdinFallback(t *testing.T) {
	rc, err := openSource("")
	if err != nil {
		t.Fatalf("openSource: %v", err)
	}
	defer rc.Close()
	rc2, err := openSource("-")
	if err != nil {
		t.Fatalf("openSource: %v", err)
	}
	defer rc2.Close()
}

func TestOpenSourceMissingFile(t *testing.T) {
	_, err := openSource("/nonexistent/path/to/a/source/file.bf")
	if err == nil {
		t.Fatal("expected an error for a missing source file")
	}
	if !strings.Contains(err.Error(), "open source") {
		t.Fatalf("expected wrapped error mentioning open source, got %v", err)
	}
}

func TestCompileToFileWritesText(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.txt")
	seq := ir.Sequence{ir.MakeIncr(3), ir.MakeLoop(ir.Sequence{ir.MakeDecr(1)})}
	if err := compileToFile(seq, name); err != nil {
		t.Fatalf("compileToFile: %v", err)
	}
	got, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := seq.String()
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
