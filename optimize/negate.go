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

// opposes reports whether a and b form one of the cancelling pairs:
// (Incr,Decr), (Decr,Incr), (Left,Right), (Right,Left).
func opposes(a, b ir.Kind) bool {
	switch {
	case a == ir.Incr && b == ir.Decr, a == ir.Decr && b == ir.Incr:
		return true
	case a == ir.Left && b == ir.Right, a == ir.Right && b == ir.Left:
		return true
	default:
		return false
	}
}

// eliminateNegation cancels opposing arithmetic pairs:
//
//	n1 == n2 -> []
//	n1 >  n2 -> [A(n1-n2)]
//	n1 <  n2 -> [B(n2-n1)]
//
// It compares each node only with the last emitted node (not a full
// re-scan). After a cancellation that is the node before the pair, so an
// alternating run collapses in one sweep; a cancellation can still leave
// two same-variant nodes adjacent (e.g. "+<>+"), which the driver's next
// fold-adjacent merges.
func eliminateNegation(seq ir.Sequence) ir.Sequence {
	if seq == nil {
		return nil
	}
	out := make(ir.Sequence, 0, len(seq))
	for _, n := range seq {
		if n.Kind == ir.Loop {
			out = append(out, ir.MakeLoop(eliminateNegation(n.Children)))
			continue
		}
		if l := len(out); l > 0 && opposes(out[l-1].Kind, n.Kind) {
			last := &out[l-1]
			switch {
			case last.N == n.N:
				out = out[:l-1]
			case last.N > n.N:
				last.N -= n.N
			default:
				last.Kind = n.Kind
				last.N = n.N - last.N
			}
			continue
		}
		out = append(out, n)
	}
	return out
}
