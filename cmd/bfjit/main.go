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

// Command bfjit compiles a tape-machine source file to x86-64 machine code
// and either runs it immediately or writes the optimized program tree to
// disk as text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/go-bf/bfjit/debug"
	"github.com/go-bf/bfjit/interp"
	"github.com/go-bf/bfjit/ir"
	"github.com/go-bf/bfjit/jit"
	"github.com/go-bf/bfjit/lexer"
	"github.com/go-bf/bfjit/optimize"
	"github.com/go-bf/bfjit/parser"
)

var (
	debugMode   bool
	dumpMode    bool
	noOptimize  bool
	noCopyLoops bool
	execStats   bool
	interpMode  bool
	outFileName string
	tapeSize    int
)

func atExit(err error) {
	if err == nil {
		return
	}
	if !debugMode {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	}
	os.Exit(1)
}

func openSource(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open source")
	}
	return f, nil
}

func main() {
	var err error

	defer func() { atExit(err) }()

	flag.BoolVar(&debugMode, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&dumpMode, "dump", false, "print the optimized program tree instead of running it")
	flag.BoolVar(&noOptimize, "no-optimize", false, "disable the optimizer entirely")
	flag.BoolVar(&noCopyLoops, "no-copy-loops", false, "disable the replace-copying-loops pass")
	flag.BoolVar(&execStats, "stats", false, "print optimizer statistics upon exit")
	flag.BoolVar(&interpMode, "interp", false, "run with the tree-walking interpreter instead of the JIT")
	flag.StringVar(&outFileName, "o", "", "write the optimized program tree as text to `filename` instead of running it")
	flag.IntVar(&tapeSize, "tape", jit.DefaultTapeSize, "tape size in cells")
	flag.Parse()

	src, err := openSource(flag.Arg(0))
	if err != nil {
		return
	}
	defer src.Close()

	prog, err := parser.Parse(lexer.NewStreamLexer(src))
	if err != nil {
		return
	}

	opts := optimize.DefaultOptions()
	opts.CopyLoops = !noCopyLoops
	var stats optimize.Stats
	if !noOptimize {
		prog, stats = optimize.Optimize(prog, opts)
	}
	if execStats {
		fmt.Fprintf(os.Stderr, "optimize: %d -> %d nodes in %d iterations\n",
			stats.NodesBefore, stats.NodesAfter, stats.Iterations)
	}

	if dumpMode {
		debug.Print(os.Stdout, prog)
		return
	}

	if outFileName != "" {
		err = compileToFile(prog, outFileName)
		return
	}

	if interpMode {
		m := interp.New(tapeSize, os.Stdin, bufio.NewWriter(os.Stdout))
		err = m.Run(prog)
		if w, ok := m.Out.(*bufio.Writer); ok {
			if ferr := w.Flush(); err == nil {
				err = ferr
			}
		}
		return
	}

	start := time.Now()
	var p *jit.Program
	p, err = jit.Compile(prog, jit.TapeSize(tapeSize))
	if err != nil {
		return
	}
	defer p.Close()
	err = p.Run()
	if execStats {
		fmt.Fprintf(os.Stderr, "ran in %v\n", time.Since(start))
	}
}

func compileToFile(prog ir.Sequence, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer f.Close()
	if _, err := prog.WriteTo(f); err != nil {
		return errors.Wrap(err, "write output file")
	}
	return nil
}
