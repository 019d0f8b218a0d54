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
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-set/v3"
)

// Re-check files as they change until ctx is done. Directories are watched rather than files,
// since editors often replace a file instead of writing it.
func watch(ctx context.Context, paths []string, opts options, out io.Writer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	files := set.New[string](len(paths))
	dirs := set.New[string](len(paths))
	for _, path := range paths {
		files.Insert(filepath.Clean(path))
		dir := filepath.Dir(path)
		if dirs.Insert(dir) {
			if err := w.Add(dir); err != nil {
				return err
			}
		}
	}
	opts.logger.Debug("watching", "files", files.Size(), "dirs", dirs.Size())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(ev.Name)
			if !files.Contains(path) || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			report(out, []result{checkFile(path, opts)}, opts)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			opts.logger.Warn("watch error", "err", err)
		}
	}
}
