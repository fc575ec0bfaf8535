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

// Package jit turns emitted machine code into an executable in-process
// function: it maps writable pages, copies the code in, flips them to
// read+exec, and hands back a Program whose Run method calls straight into
// it with the tape's base address in rdi.
package jit

import (
	"io"
	"os"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/go-bf/bfjit/emit"
	"github.com/go-bf/bfjit/ir"
)

// DefaultTapeSize is the standard 30,000-cell tape.
const DefaultTapeSize = 30000

// Option configures a Program; Compile applies the options before it
// emits any code.
type Option func(*Program) error

// TapeSize overrides the number of zero-initialized tape cells.
func TapeSize(n int) Option {
	return func(p *Program) error {
		if n <= 0 {
			return errors.Errorf("jit: invalid tape size %d", n)
		}
		p.tapeSize = n
		return nil
	}
}

// Stdout overrides the stream backing the Output node's host callback.
func Stdout(w io.Writer) Option {
	return func(p *Program) error { p.stdout = w; return nil }
}

// Stdin overrides the stream backing the Input node's host callback.
func Stdin(r io.Reader) Option {
	return func(p *Program) error { p.stdin = r; return nil }
}

// Program owns a compiled function's executable pages and the tape it runs
// against. The zero value is not usable; construct with Compile.
type Program struct {
	tapeSize int
	stdout   io.Writer
	stdin    io.Reader

	code []byte // read+exec mapped machine code, owned by allocExec/freeExec
	tape []byte // zero-initialized cell array, passed as the function's first argument
	host *hostIO
	fn   func(uintptr)
}

// Compile lowers seq with emit.Compile and maps the result into executable
// memory. The returned Program must be closed with Close once the caller
// is done running it, to release its mmap'd pages.
func Compile(seq ir.Sequence, opts ...Option) (p *Program, err error) {
	p = &Program{tapeSize: DefaultTapeSize, stdout: os.Stdout, stdin: os.Stdin}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.host = newHostIO(p.stdout, p.stdin)
	code, err := emit.Compile(seq, emit.HostAddrs{
		PutChar: addrOf(p.host.putChar),
		GetChar: addrOf(p.host.getChar),
	})
	if err != nil {
		return nil, errors.Wrap(err, "jit")
	}
	mem, err := allocExec(code)
	if err != nil {
		return nil, errors.Wrap(err, "jit")
	}
	p.code = mem
	p.tape = make([]byte, p.tapeSize)
	p.fn = makeCallable(mem)
	return p, nil
}

// Run invokes the compiled function once against a freshly reset tape and
// flushes any buffered output, even if the call panics on the Go side
// (it never should, since the generated code never returns into Go except
// via ret).
func (p *Program) Run() (err error) {
	for i := range p.tape {
		p.tape[i] = 0
	}
	defer func() {
		if ferr := p.host.flush(); err == nil {
			err = ferr
		}
	}()
	p.fn(uintptr(unsafe.Pointer(&p.tape[0])))
	return nil
}

// Close releases the executable pages. A Program must not be used after
// Close returns.
func (p *Program) Close() error {
	err := freeExec(p.code)
	p.code = nil
	p.fn = nil
	return err
}
