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

package emit

// This file holds the byte-level instruction encodings for the register
// contract documented in emit.go. Every function here appends to e.buf
// and updates the per-instruction cmpFlagsSet/raxContainsCopy state; node
// dispatch and the loop-level flag reset live in emit.go.

func (e *Emitter) byte1(b byte) {
	e.buf = append(e.buf, b)
}

func (e *Emitter) bytes(bs ...byte) {
	e.buf = append(e.buf, bs...)
}

// le32 appends the little-endian 4-byte encoding of a signed 32-bit value.
func (e *Emitter) le32(v int32) {
	u := uint32(v)
	e.buf = append(e.buf, byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
}

// le64 appends the little-endian 8-byte encoding of an unsigned 64-bit value.
func (e *Emitter) le64(v uint64) {
	e.buf = append(e.buf,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

// small reports whether n fits a signed 8-bit immediate or displacement:
// [-128, 127].
func small(n int) bool {
	return n >= -128 && n <= 127
}

// emitPrologue emits the fixed entry sequence: push rbp; mov rbp, rsp;
// push rbx; mov rbx, rdi — establishing rbx as the tape pointer for the
// remainder of the function.
func (e *Emitter) emitPrologue() {
	e.bytes(0x55)                   // push rbp
	e.bytes(0x48, 0x89, 0xe5)       // mov rbp, rsp
	e.bytes(0x53)                   // push rbx
	e.bytes(0x48, 0x89, 0xfb)       // mov rbx, rdi
	e.cmpFlagsSet = false
	e.raxContainsCopy = false
}

// emitEpilogue emits the fixed exit sequence: pop rbx; pop rbp; ret.
func (e *Emitter) emitEpilogue() {
	e.bytes(0x5b) // pop rbx
	e.bytes(0x5d) // pop rbp
	e.bytes(0xc3) // ret
}

// emitIncr emits "add byte [rbx], n" (80 03 nn). Payload is always a
// single byte: eliminate-overflow guarantees n is in [0, 255] by the time
// the tree reaches the emitter.
func (e *Emitter) emitIncr(n int) {
	e.bytes(0x80, 0x03, byte(n))
	e.cmpFlagsSet = true
	e.raxContainsCopy = false
}

// emitDecr emits "sub byte [rbx], n" (80 2b nn).
func (e *Emitter) emitDecr(n int) {
	e.bytes(0x80, 0x2b, byte(n))
	e.cmpFlagsSet = true
	e.raxContainsCopy = false
}

// emitLeft emits "sub rbx, n" — short form (48 83 eb nn) when n fits a
// signed 8-bit immediate, else long form (48 81 eb nn nn nn nn).
func (e *Emitter) emitLeft(n int) {
	if small(n) {
		e.bytes(0x48, 0x83, 0xeb, byte(n))
	} else {
		e.bytes(0x48, 0x81, 0xeb)
		e.le32(int32(n))
	}
	e.cmpFlagsSet = false
	e.raxContainsCopy = false
}

// emitRight emits "add rbx, n" — short form (48 83 c3 nn) when n fits a
// signed 8-bit immediate, else long form (48 81 c3 nn nn nn nn).
func (e *Emitter) emitRight(n int) {
	if small(n) {
		e.bytes(0x48, 0x83, 0xc3, byte(n))
	} else {
		e.bytes(0x48, 0x81, 0xc3)
		e.le32(int32(n))
	}
	e.cmpFlagsSet = false
	e.raxContainsCopy = false
}

// emitOutput emits the putChar(*rbx) call sequence: movzx edi, byte [rbx];
// movabs rax, &putChar; call rax.
func (e *Emitter) emitOutput() {
	e.bytes(0x0f, 0xb6, 0x3b) // movzx edi, byte [rbx]
	e.bytes(0x48, 0xb8)       // movabs rax, imm64
	e.le64(e.hosts.PutChar)
	e.bytes(0xff, 0xd0) // call rax
	e.cmpFlagsSet = false
	e.raxContainsCopy = false
}

// emitInput emits the getChar() call sequence: movabs rax, &getChar; call
// rax; mov [rbx], al. mov doesn't touch flags, so cmpFlagsSet stays clear
// even though the cell just changed.
func (e *Emitter) emitInput() {
	e.bytes(0x48, 0xb8) // movabs rax, imm64
	e.le64(e.hosts.GetChar)
	e.bytes(0xff, 0xd0)       // call rax
	e.bytes(0x88, 0x03)       // mov [rbx], al
	e.cmpFlagsSet = false
	e.raxContainsCopy = false
}

// emitZero emits "mov byte [rbx], 0" (c6 03 00).
func (e *Emitter) emitZero() {
	e.bytes(0xc6, 0x03, 0x00)
	e.cmpFlagsSet = true
	e.raxContainsCopy = false
}

// emitAdd emits the current-cell-to-offset-cell accumulate for a
// replace-copying-loops result: a one-time "movzx rax, byte [rbx]"
// (48 0f b6 03) reused across a run of consecutive Add nodes via
// raxContainsCopy, followed by "add byte [rbx+offset], al" in its short
// (00 43 oo) or long (00 83 oo oo oo oo) displacement form.
func (e *Emitter) emitAdd(offset int) {
	if !e.raxContainsCopy {
		e.bytes(0x48, 0x0f, 0xb6, 0x03)
		e.raxContainsCopy = true
	}
	if small(offset) {
		e.bytes(0x00, 0x43, byte(offset))
	} else {
		e.bytes(0x00, 0x83)
		e.le32(int32(offset))
	}
	e.cmpFlagsSet = false
	// raxContainsCopy intentionally left true: rax is untouched by this
	// store, so a following Add at a different offset can skip the reload.
}

// emitCmpZero emits "cmp byte [rbx], 0" (80 3b 00).
func (e *Emitter) emitCmpZero() {
	e.bytes(0x80, 0x3b, 0x00)
}

// emitJne backward-patches a jne to start, choosing the rel8 form (75 <d>)
// when the backward displacement fits, else the rel32 form (0f 85 <d32>).
// rel is computed from the cursor immediately before the jump instruction
// is appended; the -2 / -6 corrections account for the jump instruction's
// own length, since x86 relative branches are relative to the address of
// the NEXT instruction.
func (e *Emitter) emitJne(start int) {
	rel := start - len(e.buf)
	if rel >= -127 {
		e.bytes(0x75, byte(int8(rel-2)))
	} else {
		e.bytes(0x0f, 0x85)
		e.le32(int32(rel - 6))
	}
}
