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

//go:build amd64

package jit

import "unsafe"

// makeCallable turns a mapped, executable byte slice into a directly
// callable Go func value. A Go func value is itself a pointer to a small
// struct whose first word is the entry address; codePtr plays the role of
// that struct, holding the address of the mapped code, and funcPtr is
// reinterpreted from *uintptr to the desired func type so calling it jumps
// straight to mem[0].
func makeCallable(mem []byte) func(uintptr) {
	codePtr := uintptr(unsafe.Pointer(&mem[0]))
	var fn func(uintptr)
	funcPtr := (*uintptr)(unsafe.Pointer(&fn))
	*funcPtr = uintptr(unsafe.Pointer(&codePtr))
	return fn
}
