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

// Command stellacheck type checks Stella programs written as YAML syntax trees.
//
//	stellacheck [-profile extensions.yaml] [-watch] [-dump] [-v] file.yaml...
//
// Files are checked concurrently. The exit status is 1 if any file fails to check and 2 for
// usage or configuration errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/wdamron/stella/ext"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stellacheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	profile := fs.String("profile", "", "YAML `file` with default extensions and extension aliases")
	watchFiles := fs.Bool("watch", false, "re-check files when they change")
	dump := fs.Bool("dump", false, "dump the decoded syntax tree of each file")
	verbose := fs.Bool("v", false, "log checker phases and solved constraints")
	noColor := fs.Bool("no-color", false, "disable coloured output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: stellacheck [flags] file.yaml...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	opts := options{
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		dump:   *dump,
		color:  !*noColor && colorEnabled(stdout),
	}
	if *profile != "" {
		r, err := ext.LoadRegistry(*profile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		opts.registry = r
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := checkFiles(ctx, paths, opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	failed := report(stdout, results, opts)

	if *watchFiles {
		if err := watch(ctx, paths, opts, stdout); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, err)
			return 2
		}
		return 0
	}
	if failed != 0 {
		return 1
	}
	return 0
}

func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
