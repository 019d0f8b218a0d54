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
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testdata = filepath.Join("..", "..", "testdata")

func TestRunWellTyped(t *testing.T) {
	var out, errs bytes.Buffer
	path := filepath.Join(testdata, "ok", "sum_match.yaml")
	code := run([]string{"-no-color", path}, &out, &errs)
	assert.Equal(t, 0, code, errs.String())
	assert.Equal(t, "ok   "+path+"\n", out.String())
}

func TestRunIllTyped(t *testing.T) {
	var out, errs bytes.Buffer
	ok := filepath.Join(testdata, "ok", "natrec.yaml")
	bad := filepath.Join(testdata, "bad", "ERROR_MISSING_MAIN", "no_main.yaml")
	code := run([]string{"-no-color", ok, bad}, &out, &errs)
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "ok   "+ok)
	assert.Contains(t, out.String(), "FAIL "+bad+": ERROR_MISSING_MAIN")
}

func TestRunDump(t *testing.T) {
	var out, errs bytes.Buffer
	path := filepath.Join(testdata, "ok", "natrec.yaml")
	require.Equal(t, 0, run([]string{"-no-color", "-dump", path}, &out, &errs))
	assert.Contains(t, out.String(), "ast.DeclFun")
	assert.Contains(t, out.String(), "ast.NatRec")
}

func TestRunUsage(t *testing.T) {
	var out, errs bytes.Buffer
	assert.Equal(t, 2, run(nil, &out, &errs))
	assert.Contains(t, errs.String(), "usage: stellacheck")

	errs.Reset()
	assert.Equal(t, 2, run([]string{"-profile", "no-such-profile.yaml", "x.yaml"}, &out, &errs))
	assert.Contains(t, errs.String(), "no-such-profile.yaml")
}

func TestCheckFilesKeepsOrder(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join(testdata, "ok", "*.yaml"))
	require.NoError(t, err)
	opts := options{logger: slog.Default()}
	results, err := checkFiles(context.Background(), paths, opts)
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.path)
		assert.NoError(t, r.err, r.path)
	}
}

func TestColor(t *testing.T) {
	var out bytes.Buffer
	assert.False(t, colorEnabled(&out))
	assert.Equal(t, red+"FAIL"+reset, paint(options{color: true}, red, "FAIL"))
	assert.Equal(t, "FAIL", paint(options{}, red, "FAIL"))
}
