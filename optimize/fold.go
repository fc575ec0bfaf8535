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

// foldAdjacent coalesces consecutive same-variant arithmetic nodes:
//
//	[..., A(n1), A(n2), ...] -> [..., A(n1+n2), ...]   for A in {Incr, Decr, Left, Right}
//
// It recurses into Loop bodies; nodes outside the arithmetic set are
// copied through unchanged.
func foldAdjacent(seq ir.Sequence) ir.Sequence {
	if seq == nil {
		return nil
	}
	out := make(ir.Sequence, 0, len(seq))
	var pending *ir.Node
	flush := func() {
		if pending != nil {
			out = append(out, *pending)
			pending = nil
		}
	}
	for _, n := range seq {
		if n.Kind == ir.Loop {
			flush()
			out = append(out, ir.MakeLoop(foldAdjacent(n.Children)))
			continue
		}
		if !n.Kind.Arith() {
			flush()
			out = append(out, n)
			continue
		}
		if pending != nil && pending.Kind == n.Kind {
			pending.N += n.N
			continue
		}
		flush()
		cp := n
		pending = &cp
	}
	flush()
	return out
}
