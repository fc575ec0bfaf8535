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

// Package optimize rewrites an IR tree to a fixed point using a fixed
// suite of peephole passes, applied in a fixed order:
//
//	pass            effect
//	fold-adjacent          coalesce consecutive same-variant arithmetic nodes
//	eliminate-negation     cancel opposing +/- and </> pairs
//	eliminate-overflow     reduce payloads to [0, 255]
//	replace-zeroing-loops  turn "[+]"/"[-]" (odd step) into Zero
//	replace-copying-loops  turn single-offset copy loops into Add+Zero (optional)
//
// Every pass is a pure function Sequence -> Sequence; Optimize composes
// them and iterates until a full pass over all of them leaves the tree
// unchanged.
package optimize

import "github.com/go-bf/bfjit/ir"

// Options controls which optional passes Optimize runs. The four
// mandatory passes always run; Options only gates the optional
// extensions.
type Options struct {
	// CopyLoops enables replace-copying-loops, lowering
	// Loop[ Right(n) Incr(1) Left(n) Decr(1) ] (and its mirror image) to
	// Add(+-n) Zero. When false, such loops are left for the emitter to
	// lower the slow way, one iteration at a time.
	CopyLoops bool
}

// DefaultOptions enables every optional pass; this is what the CLI uses
// unless -no-copy-loops is given.
func DefaultOptions() Options {
	return Options{CopyLoops: true}
}

// Stats reports how much work the fixed-point driver did, surfaced by the
// CLI's -stats flag the same way cmd/retro/main.go's -stats reports
// instructions executed.
type Stats struct {
	Iterations  int
	NodesBefore int
	NodesAfter  int
}

// Optimize repeatedly applies the pass suite to seq until a full iteration
// changes nothing, and returns the rewritten tree along with Stats
// describing the run. seq is never mutated in place; each pass returns a
// freshly built Sequence (see ir.Sequence.Clone), so the caller's input
// tree remains valid but should be considered logically consumed — the
// optimizer becomes sole owner of the chain of intermediate trees it
// produces internally.
func Optimize(seq ir.Sequence, opts Options) (ir.Sequence, Stats) {
	stats := Stats{NodesBefore: seq.Count()}
	cur := seq
	for {
		next := foldAdjacent(cur)
		next = eliminateNegation(next)
		next = eliminateOverflow(next)
		next = replaceZeroingLoops(next)
		if opts.CopyLoops {
			next = replaceCopyingLoops(next)
		}
		stats.Iterations++
		if cur.Equal(next) {
			stats.NodesAfter = next.Count()
			return next, stats
		}
		cur = next
	}
}
