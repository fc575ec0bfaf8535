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

package optimize

import "github.com/go-bf/bfjit/ir"

// isOddStep reports whether body is exactly one Incr or Decr node with an
// odd payload — the shape of "[+]" / "[-]" and their folded equivalents.
//
// The odd-payload requirement is the correctness condition, not an
// arbitrary restriction: on an unsigned 8-bit cell, repeatedly adding n
// reaches 0 from every starting value iff gcd(n, 256) = 1, and since 256
// is a power of two that holds exactly when n is odd. An even step (e.g.
// "[++]", step 2) can cycle forever on an odd starting value without ever
// hitting zero, so this rule must not fire for it.
func isOddStep(body ir.Sequence) bool {
	if len(body) != 1 {
		return false
	}
	n := body[0]
	if n.Kind != ir.Incr && n.Kind != ir.Decr {
		return false
	}
	return n.N%2 == 1
}

// replaceZeroingLoops replaces any Loop whose body is isOddStep with a
// single Zero node; other loops are recursed into unchanged.
func replaceZeroingLoops(seq ir.Sequence) ir.Sequence {
	if seq == nil {
		return nil
	}
	out := make(ir.Sequence, len(seq))
	for i, n := range seq {
		if n.Kind != ir.Loop {
			out[i] = n
			continue
		}
		if isOddStep(n.Children) {
			out[i] = ir.MakeZero()
			continue
		}
		out[i] = ir.MakeLoop(replaceZeroingLoops(n.Children))
	}
	return out
}
