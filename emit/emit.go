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

// Package emit lowers an optimized ir.Sequence to System-V AMD64 machine
// code.
//
// Register contract: rbx holds the tape pointer for the lifetime of the
// generated function; rax/edi are scratch; the tape base arrives in rdi
// (the first System-V integer argument). Host I/O callbacks are invoked by
// materializing their absolute addresses with movabs and calling through
// rax.
package emit

import (
	"fmt"

	"github.com/go-bf/bfjit/ir"
)

// HostAddrs carries the absolute addresses of the two host callbacks the
// generated code calls directly: putChar(uint8_t) and getChar() uint8_t.
type HostAddrs struct {
	PutChar uint64
	GetChar uint64
}

// EmitError reports a fatal compiler bug: an ir.Error node or a bare Loop
// reaching a dispatch path that doesn't expect one. Neither is recoverable
// — seeing one means an earlier stage (parser, optimizer) produced a tree
// the emitter was never meant to receive.
type EmitError struct {
	Kind ir.Kind
	Msg  string
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit: %s: %s", e.Kind, e.Msg)
}

// Emitter lowers IR to bytes. Two pieces of state are carried across
// emissions to drive two micro-optimizations:
//
//	cmpFlagsSet：true immediately after emitting Incr, Decr or Zero — the
//	  only variants whose last write to [rbx] the loop epilogue is allowed
//	  to treat as already reflecting the new cell value, letting it skip a
//	  redundant "cmp byte [rbx], 0".
//	raxContainsCopy: true while rax still holds the zero-extended copy of
//	  [rbx] loaded for an Add, so a run of consecutive Add nodes reloads it
//	  only once.
//
// Every non-Add emission clears raxContainsCopy; every emission clears
// cmpFlagsSet at entry and sets it only for Incr/Decr/Zero.
type Emitter struct {
	buf             []byte
	cmpFlagsSet     bool
	raxContainsCopy bool
	hosts           HostAddrs
}

// NewEmitter returns an Emitter ready to compile a program against the
// given host callback addresses.
func NewEmitter(hosts HostAddrs) *Emitter {
	return &Emitter{buf: make([]byte, 0, 4096), hosts: hosts}
}

// Compile is a one-shot convenience wrapper around NewEmitter(hosts).Compile
// for callers that don't need to reuse an Emitter across programs.
func Compile(seq ir.Sequence, hosts HostAddrs) ([]byte, error) {
	return NewEmitter(hosts).Compile(seq)
}

// Compile lowers seq (which must already be optimize.Optimize's output, or
// at least free of ir.Error nodes) to a complete, self-contained function
// body: prologue, the lowered program, epilogue. It returns an EmitError
// if seq contains anything the emitter refuses to lower.
func (e *Emitter) Compile(seq ir.Sequence) (code []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*EmitError); ok {
				err = ee
				return
			}
			panic(r)
		}
	}()
	if len(e.buf) > 0 {
		// A previous Compile's code was handed out; start a fresh buffer.
		e.buf = make([]byte, 0, cap(e.buf))
	}
	e.emitPrologue()
	e.emitSeq(seq)
	e.emitEpilogue()
	return e.buf, nil
}

func (e *Emitter) emitSeq(seq ir.Sequence) {
	for _, n := range seq {
		e.emitNode(n)
	}
}

func (e *Emitter) emitNode(n ir.Node) {
	switch n.Kind {
	case ir.Incr:
		e.emitIncr(n.N)
	case ir.Decr:
		e.emitDecr(n.N)
	case ir.Right:
		e.emitRight(n.N)
	case ir.Left:
		e.emitLeft(n.N)
	case ir.Output:
		e.emitOutput()
	case ir.Input:
		e.emitInput()
	case ir.Zero:
		e.emitZero()
	case ir.Add:
		e.emitAdd(n.N)
	case ir.Loop:
		e.emitLoop(n.Children)
	case ir.Error:
		panic(&EmitError{Kind: ir.Error, Msg: "parse error reached the emitter"})
	default:
		panic(&EmitError{Kind: n.Kind, Msg: "unexpected node kind"})
	}
}

// emitLoop records the body's start offset, emits the body, emits a cmp
// unless the body's last instruction already leaves the flags correctly
// set, then a backward-patched jne.
func (e *Emitter) emitLoop(body ir.Sequence) {
	start := len(e.buf)
	e.emitSeq(body)
	if !e.cmpFlagsSet {
		e.emitCmpZero()
	}
	e.emitJne(start)
	// A loop's exit state never carries information about the cell value
	// (either branch of the jne can be reached next), so neither flag
	// survives across the loop boundary.
	e.cmpFlagsSet = false
	e.raxContainsCopy = false
}
