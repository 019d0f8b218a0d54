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

package stella_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/stella"
	"github.com/wdamron/stella/internal/astyaml"
	"github.com/wdamron/stella/types"
)

func TestCorpusWellTyped(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "ok", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	c := stella.NewChecker()
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			prog, err := astyaml.DecodeFile(path)
			require.NoError(t, err)
			assert.NoError(t, c.Check(prog))
		})
	}
}

func TestCorpusIllTyped(t *testing.T) {
	dirs, err := os.ReadDir(filepath.Join("testdata", "bad"))
	require.NoError(t, err)
	require.NotEmpty(t, dirs)

	c := stella.NewChecker()
	for _, dir := range dirs {
		code, ok := types.ParseErrorCode(dir.Name())
		require.True(t, ok, "unknown error code %s", dir.Name())

		paths, err := filepath.Glob(filepath.Join("testdata", "bad", dir.Name(), "*.yaml"))
		require.NoError(t, err)
		for _, path := range paths {
			t.Run(dir.Name()+"/"+filepath.Base(path), func(t *testing.T) {
				prog, err := astyaml.DecodeFile(path)
				require.NoError(t, err)
				err = c.Check(prog)
				require.Error(t, err)
				assert.Equal(t, code, types.CodeOf(err), "error: %v", err)

				var te *types.TypeError
				require.ErrorAs(t, err, &te)
				if te.Pos.IsValid() {
					t.Logf("%s: %v", path, te.Pos)
				}
			})
		}
	}
}
