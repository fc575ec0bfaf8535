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

// Package ir defines the tree-shaped intermediate representation shared by
// the parser, optimizer and emitter.
//
// A program is a Sequence of Node values. Arithmetic nodes (Incr, Decr,
// Left, Right) carry an accumulated count; Loop nodes own their body
// inline as a nested Sequence. Zero and Add are never produced by the
// parser — they exist only after optimize.Optimize has run.
package ir

// Kind identifies the variant of a Node.
type Kind uint8

// Node variants.
const (
	// Error marks a parse failure; it must never reach the emitter.
	Error Kind = iota
	// Incr adds N to the current cell, modulo 256.
	Incr
	// Decr subtracts N from the current cell, modulo 256.
	Decr
	// Right moves the tape pointer right by N.
	Right
	// Left moves the tape pointer left by N.
	Left
	// Output emits the current cell as a byte.
	Output
	// Input reads one byte into the current cell.
	Input
	// Loop executes Children while the current cell is non-zero.
	Loop
	// Zero unconditionally stores 0 into the current cell.
	// Introduced only by optimize.ReplaceZeroingLoops.
	Zero
	// Add adds the current cell into the cell at the signed offset N.
	// Introduced only by optimize.ReplaceCopyingLoops.
	Add
)

var kindNames = [...]string{
	Error:  "Error",
	Incr:   "Incr",
	Decr:   "Decr",
	Right:  "Right",
	Left:   "Left",
	Output: "Output",
	Input:  "Input",
	Loop:   "Loop",
	Zero:   "Zero",
	Add:    "Add",
}

// String returns the variant's name, e.g. "Incr".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Arith reports whether k is one of {Incr, Decr, Left, Right}, the set
// fold-adjacent and eliminate-negation operate on.
func (k Kind) Arith() bool {
	switch k {
	case Incr, Decr, Left, Right:
		return true
	default:
		return false
	}
}

// Node is a single element of the IR tree. N carries the payload for
// arithmetic nodes (always >= 0 once eliminate-overflow has run) and the
// signed cell offset for Add. Children holds the body of a Loop node and
// is nil for every other variant.
type Node struct {
	Kind     Kind
	N        int
	Children Sequence
}

// Sequence is an ordered, growable list of sibling nodes: a plain slice,
// grown with append.
type Sequence []Node

// MakeIncr, MakeDecr, MakeRight and MakeLeft build arithmetic nodes.
func MakeIncr(n int) Node { return Node{Kind: Incr, N: n} }
func MakeDecr(n int) Node { return Node{Kind: Decr, N: n} }
func MakeRight(n int) Node { return Node{Kind: Right, N: n} }
func MakeLeft(n int) Node  { return Node{Kind: Left, N: n} }

// MakeOutput and MakeInput build the two I/O leaves.
func MakeOutput() Node { return Node{Kind: Output} }
func MakeInput() Node  { return Node{Kind: Input} }

// MakeLoop builds a Loop node owning the given body.
func MakeLoop(body Sequence) Node { return Node{Kind: Loop, Children: body} }

// MakeError builds a parse-failure sentinel.
func MakeError() Node { return Node{Kind: Error} }

// MakeZero builds an optimizer-introduced cell-clear node.
func MakeZero() Node { return Node{Kind: Zero} }

// MakeAdd builds an optimizer-introduced cell-accumulate node targeting the
// cell at the given signed offset from the current pointer.
func MakeAdd(offset int) Node { return Node{Kind: Add, N: offset} }

// HasError reports whether seq contains an Error node at any depth. A
// well-formed, successfully parsed program never does.
func (seq Sequence) HasError() bool {
	for _, n := range seq {
		if n.Kind == Error {
			return true
		}
		if n.Kind == Loop && n.Children.HasError() {
			return true
		}
	}
	return false
}

// Equal reports whether a and b are structurally identical: same length,
// same Kind/N at each position, and recursively equal Children for Loop
// nodes. This is the equality relation the optimizer's fixed-point driver
// uses to detect that a pass made no further progress.
func (a Sequence) Equal(b Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}

func (n Node) equal(o Node) bool {
	if n.Kind != o.Kind || n.N != o.N {
		return false
	}
	if n.Kind == Loop {
		return n.Children.Equal(o.Children)
	}
	return true
}

// Clone returns a deep copy of seq, sharing no Loop body with it. Callers
// use it to keep a tree intact while handing a copy to another stage.
func (seq Sequence) Clone() Sequence {
	if seq == nil {
		return nil
	}
	out := make(Sequence, len(seq))
	for i, n := range seq {
		out[i] = n
		if n.Kind == Loop {
			out[i].Children = n.Children.Clone()
		}
	}
	return out
}

// Count returns the total number of nodes in seq, counting nested Loop
// bodies. Used by the optimizer driver's Stats to report the node count
// before and after the whole run.
func (seq Sequence) Count() int {
	n := 0
	for _, node := range seq {
		n++
		if node.Kind == Loop {
			n += node.Children.Count()
		}
	}
	return n
}
