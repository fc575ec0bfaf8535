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

package jit

import (
	"bufio"
	"io"
	"reflect"
)

// hostIO bundles the two callbacks the generated code calls directly, plus
// the buffered streams backing them. Program owns one of these for its
// whole lifetime; Run flushes its output when the generated code returns.
type hostIO struct {
	out *bufio.Writer
	in  *bufio.Reader
}

func newHostIO(w io.Writer, r io.Reader) *hostIO {
	return &hostIO{out: bufio.NewWriter(w), in: bufio.NewReader(r)}
}

// putChar is the address-of-function the emitter loads into rax for every
// Output node. Its argument arrives in the low byte of whichever register
// the generated call site leaves it in.
func (h *hostIO) putChar(c uint8) {
	_ = h.out.WriteByte(c)
}

// getChar backs every Input node. End of input yields 0xFF, matching
// fgetc's EOF (-1) cast to uint8_t.
func (h *hostIO) getChar() uint8 {
	b, err := h.in.ReadByte()
	if err != nil {
		return 0xFF
	}
	return b
}

func (h *hostIO) flush() error {
	return h.out.Flush()
}

// addrOf resolves the absolute entry address of a host callback bound to a
// *hostIO receiver, for materializing into the generated code's movabs.
func addrOf(fn interface{}) uint64 {
	return uint64(reflect.ValueOf(fn).Pointer())
}
