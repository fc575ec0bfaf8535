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

// Package interp is a tree-walking reference implementation of the same
// semantics package emit compiles to machine code. It exists for two
// reasons: the "-interp" CLI mode that runs without mapping executable
// memory at all, and as the independent oracle that this package's and
// package jit's tests check optimized trees and JIT output against for
// behavioral equivalence.
package interp

import (
	"io"

	"github.com/pkg/errors"

	"github.com/go-bf/bfjit/ir"
)

// DefaultTapeSize matches jit.DefaultTapeSize; kept independent so this
// package has no dependency on jit.
const DefaultTapeSize = 30000

// Machine is the interpreter's mutable state: a byte tape and a pointer
// into it, mirroring the tape jit.Program allocates and the rbx register
// emit's generated code keeps it in.
type Machine struct {
	Tape    []byte
	Pointer int
	Out     io.Writer
	In      io.Reader
}

// New returns a Machine with a zero-initialized tape of size n, reading
// from r and writing to w.
func New(n int, r io.Reader, w io.Writer) *Machine {
	return &Machine{Tape: make([]byte, n), Out: w, In: r}
}

// Run executes prog to completion. It returns an error only for conditions
// the emitted code cannot hit in practice but a hand-built tree might: an
// ir.Error node, or the pointer (or an Add target) running off either end
// of the tape. A failed write to Out is also returned.
func (m *Machine) Run(prog ir.Sequence) error {
	return m.run(prog)
}

func (m *Machine) run(seq ir.Sequence) error {
	for _, n := range seq {
		if err := m.step(n); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) step(n ir.Node) error {
	switch n.Kind {
	case ir.Incr:
		m.Tape[m.Pointer] += byte(n.N)
	case ir.Decr:
		m.Tape[m.Pointer] -= byte(n.N)
	case ir.Right:
		if m.Pointer+n.N >= len(m.Tape) {
			return errors.Errorf("interp: tape overrun at +%d", n.N)
		}
		m.Pointer += n.N
	case ir.Left:
		if m.Pointer-n.N < 0 {
			return errors.Errorf("interp: tape underrun at -%d", n.N)
		}
		m.Pointer -= n.N
	case ir.Output:
		if _, err := m.Out.Write(m.Tape[m.Pointer : m.Pointer+1]); err != nil {
			return errors.Wrap(err, "interp: output")
		}
	case ir.Input:
		var b [1]byte
		if _, err := io.ReadFull(m.In, b[:]); err != nil {
			// fgetc's EOF (-1) cast to uint8_t is 0xFF; match that sentinel
			// rather than 0 so an exhausted stream is distinguishable from
			// a genuine null byte.
			m.Tape[m.Pointer] = 0xFF
			return nil
		}
		m.Tape[m.Pointer] = b[0]
	case ir.Zero:
		m.Tape[m.Pointer] = 0
	case ir.Add:
		target := m.Pointer + n.N
		if target < 0 || target >= len(m.Tape) {
			return errors.Errorf("interp: Add offset %d out of range", n.N)
		}
		m.Tape[target] += m.Tape[m.Pointer]
	case ir.Loop:
		for m.Tape[m.Pointer] != 0 {
			if err := m.run(n.Children); err != nil {
				return err
			}
		}
	case ir.Error:
		return errors.New("interp: parse error reached the interpreter")
	default:
		return errors.Errorf("interp: unhandled node kind %s", n.Kind)
	}
	return nil
}
