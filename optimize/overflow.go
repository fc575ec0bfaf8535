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

// eliminateOverflow reduces any arithmetic payload greater than 255 to
// n mod 256, in place of the copied node; payloads already in [0, 255]
// (including 0, which fold-adjacent and eliminate-negation never produce
// in normal operation but which is accepted verbatim) pass through
// unchanged.
func eliminateOverflow(seq ir.Sequence) ir.Sequence {
	if seq == nil {
		return nil
	}
	out := make(ir.Sequence, len(seq))
	for i, n := range seq {
		switch {
		case n.Kind == ir.Loop:
			n.Children = eliminateOverflow(n.Children)
		case n.Kind.Arith() && n.N > 255:
			n.N %= 256
		}
		out[i] = n
	}
	return out
}
