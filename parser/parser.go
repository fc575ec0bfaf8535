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

// Package parser implements a recursive-descent parser over the
// eight-command grammar:
//
//	program ::= expr*
//	expr    ::= '+' | '-' | '<' | '>' | '.' | ',' | loop
//	loop    ::= '[' expr* ']'
//
// The parser never aborts: it fails only by embedding ir.Error sentinel
// nodes where a construct could not be parsed, accumulating positional
// diagnostics instead of panicking on the first bad token.
package parser

import (
	"fmt"
	"strings"

	"github.com/go-bf/bfjit/ir"
	"github.com/go-bf/bfjit/lexer"
)

// Position is the 1-based index of a token among the tokens read so far
// (comment bytes don't advance it); it is not a byte offset. It is shaped
// like text/scanner.Position's Offset field, without pulling in
// text/scanner itself — see DESIGN.md.
type Position int

// ErrEntry is one parse diagnostic: a position and a human-readable
// message.
type ErrEntry struct {
	Pos Position
	Msg string
}

// ErrorList collects every diagnostic produced during a parse. A non-empty
// ErrorList always corresponds to at least one ir.Error node in the
// returned tree.
type ErrorList []ErrEntry

// Error implements the error interface, joining all diagnostics with
// newlines.
func (e ErrorList) Error() string {
	lines := make([]string, len(e))
	for i, entry := range e {
		lines[i] = fmt.Sprintf("offset %d: %s", entry.Pos, entry.Msg)
	}
	return strings.Join(lines, "\n")
}

// parser holds the mutable state of one parse. It is not exported: Parse
// is the only entry point.
type parser struct {
	lex  lexer.Lexer
	pos  Position
	tok  lexer.Token
	errs ErrorList
}

func newParser(lex lexer.Lexer) *parser {
	p := &parser{lex: lex}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.lex.Next()
	p.pos++
}

func (p *parser) error(msg string) {
	p.errs = append(p.errs, ErrEntry{Pos: p.pos, Msg: msg})
}

// Parse consumes lex to end of input and returns the resulting IR
// sequence. The returned error is nil unless at least one diagnostic was
// recorded; the IR sequence itself is always usable (it carries ir.Error
// nodes in place of whatever failed to parse).
func Parse(lex lexer.Lexer) (ir.Sequence, error) {
	p := newParser(lex)
	seq, _ := p.parseExprs(false)
	if len(p.errs) == 0 {
		return seq, nil
	}
	return seq, p.errs
}

// parseExprs parses expr* up to EOF, or, when inLoop is true, up to (and
// consuming) a matching ']'. ok is false only when inLoop is true and the
// input ran off EOF before a closing ']' was found; at the top level EOF
// always ends the program successfully, so ok is always true there.
func (p *parser) parseExprs(inLoop bool) (seq ir.Sequence, ok bool) {
	for {
		switch p.tok {
		case lexer.EOF:
			return seq, !inLoop
		case lexer.RBracket:
			if inLoop {
				p.advance() // consume the ']'
				return seq, true
			}
			p.error("unmatched ']'")
			p.advance()
			seq = append(seq, ir.MakeError())
		case lexer.Plus:
			p.advance()
			seq = append(seq, ir.MakeIncr(1))
		case lexer.Minus:
			p.advance()
			seq = append(seq, ir.MakeDecr(1))
		case lexer.LT:
			p.advance()
			seq = append(seq, ir.MakeLeft(1))
		case lexer.GT:
			p.advance()
			seq = append(seq, ir.MakeRight(1))
		case lexer.Dot:
			p.advance()
			seq = append(seq, ir.MakeOutput())
		case lexer.Comma:
			p.advance()
			seq = append(seq, ir.MakeInput())
		case lexer.LBracket:
			seq = append(seq, p.parseLoop())
		default:
			p.error(fmt.Sprintf("unexpected token %v", p.tok))
			p.advance()
			seq = append(seq, ir.MakeError())
		}
	}
}

// parseLoop parses a loop ::= '[' expr* ']', assuming p.tok == LBracket.
// If the loop runs off EOF without a matching ']', it reports the error
// and returns a single ir.Error node in place of the loop; the children
// collected so far inside the unterminated loop are discarded, though
// siblings collected before it in the surrounding sequence are kept.
func (p *parser) parseLoop() ir.Node {
	start := p.pos
	p.advance() // consume '['
	body, ok := p.parseExprs(true)
	if !ok {
		p.error(fmt.Sprintf("unterminated loop starting at offset %d", start))
		return ir.MakeError()
	}
	return ir.MakeLoop(body)
}
