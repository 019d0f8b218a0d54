// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"github.com/wdamron/stella"
	"github.com/wdamron/stella/ast"
	"github.com/wdamron/stella/ext"
	"github.com/wdamron/stella/internal/astyaml"
)

type options struct {
	registry *ext.Registry
	logger   *slog.Logger
	dump     bool
	color    bool
}

type result struct {
	path string
	prog *ast.Program
	err  error
}

const (
	red   = "\x1b[31m"
	green = "\x1b[32m"
	reset = "\x1b[0m"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Check one file with its own checker.
func checkFile(path string, opts options) result {
	prog, err := astyaml.DecodeFile(path)
	if err != nil {
		return result{path: path, err: err}
	}
	c := stella.NewChecker()
	c.SetRegistry(opts.registry)
	c.SetLogger(opts.logger.With("file", path))
	return result{path: path, prog: prog, err: c.Check(prog)}
}

// Check files concurrently. Results are in the order of paths.
func checkFiles(ctx context.Context, paths []string, opts options) ([]result, error) {
	results := make([]result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Print results and return the number of failures.
func report(w io.Writer, results []result, opts options) int {
	failed := 0
	for _, r := range results {
		if opts.dump && r.prog != nil {
			dumpConfig.Fdump(w, r.prog)
		}
		if r.err == nil {
			fmt.Fprintf(w, "%s %s\n", paint(opts, green, "ok  "), r.path)
			continue
		}
		failed++
		fmt.Fprintf(w, "%s %s: %v\n", paint(opts, red, "FAIL"), r.path, r.err)
	}
	return failed
}

func paint(opts options, color, s string) string {
	if !opts.color {
		return s
	}
	return color + s + reset
}
