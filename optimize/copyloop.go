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

// copyLoopOffset recognizes the two shapes the optional replace-copying-
// loops pass names:
//
//	Loop[ Right(n) Incr(1) Left(n) Decr(1) ]  -> offset +n
//	Loop[ Left(n)  Incr(1) Right(n) Decr(1) ] -> offset -n
//
// and returns (offset, true) if body matches either, else (0, false).
func copyLoopOffset(body ir.Sequence) (int, bool) {
	if len(body) != 4 {
		return 0, false
	}
	a, b, c, d := body[0], body[1], body[2], body[3]
	if b.Kind != ir.Incr || b.N != 1 || d.Kind != ir.Decr || d.N != 1 {
		return 0, false
	}
	switch {
	case a.Kind == ir.Right && c.Kind == ir.Left && a.N == c.N && a.N > 0:
		return a.N, true
	case a.Kind == ir.Left && c.Kind == ir.Right && a.N == c.N && a.N > 0:
		return -a.N, true
	default:
		return 0, false
	}
}

// replaceCopyingLoops lowers single-offset copy-and-clear loops to
// Add(offset) followed by Zero. It is an optional extension since emit
// must then support Add. Other loops are recursed into unchanged.
func replaceCopyingLoops(seq ir.Sequence) ir.Sequence {
	if seq == nil {
		return nil
	}
	out := make(ir.Sequence, 0, len(seq))
	for _, n := range seq {
		if n.Kind != ir.Loop {
			out = append(out, n)
			continue
		}
		if offset, ok := copyLoopOffset(n.Children); ok {
			out = append(out, ir.MakeAdd(offset), ir.MakeZero())
			continue
		}
		out = append(out, ir.MakeLoop(replaceCopyingLoops(n.Children)))
	}
	return out
}
