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

package ext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/stella/types"
)

func TestParseSpellings(t *testing.T) {
	tests := []struct {
		name string
		want Extension
	}{
		{"#natural-literals", NaturalLiterals},
		{"natural-literals", NaturalLiterals},
		{"#fixpoint-combinator", FixpointCombinator},
		{"#fix-point-combinator", FixpointCombinator},
		{"#comparison-operators", ComparisonOperations},
		{"#structural-subtyping", StructuralSubtyping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, ok := Parse(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, x)
		})
	}

	_, ok := Parse("#no-such-extension")
	assert.False(t, ok)
}

func TestCanonicalNamesRoundTrip(t *testing.T) {
	for _, x := range All() {
		y, ok := Parse("#" + x.String())
		require.True(t, ok, "extension %d has no canonical spelling", int(x))
		assert.Equal(t, x, y)
		assert.NotEmpty(t, x.Spellings())
	}
}

func TestResolveIncludesDefaults(t *testing.T) {
	r := NewRegistry()
	enabled, err := r.Resolve([]string{"#unit-type", "#records"})
	require.NoError(t, err)
	for _, x := range []Extension{SumTypes, LetBindings, UnitType, Records} {
		assert.True(t, enabled.Contains(x), "missing %s", x)
	}
	assert.False(t, enabled.Contains(Lists))
	assert.Equal(t, 4, enabled.Size())
}

func TestResolveUnknownExtension(t *testing.T) {
	_, err := NewRegistry().Resolve([]string{"#unit-type", "#teleportation"})
	require.Error(t, err)
	assert.Equal(t, types.ErrUnknownExtension, types.CodeOf(err))
}

func TestParseRegistryProfile(t *testing.T) {
	profile := []byte(`
defaults:
  - natural-literals
  - "#unit-type"
aliases:
  fix: fixpoint-combinator
`)
	r, err := ParseRegistry(profile, "profile.yaml")
	require.NoError(t, err)
	assert.True(t, r.IsDefault(NaturalLiterals))
	assert.True(t, r.IsDefault(UnitType))
	assert.True(t, r.IsDefault(SumTypes))

	enabled, err := r.Resolve([]string{"#fix"})
	require.NoError(t, err)
	assert.True(t, enabled.Contains(FixpointCombinator))
	assert.True(t, enabled.Contains(NaturalLiterals))
}

func TestParseRegistryRejectsBadProfiles(t *testing.T) {
	tests := []struct {
		name    string
		profile string
	}{
		{"unknown default", "defaults: [warp-drive]\n"},
		{"unknown alias target", "aliases: {fix: warp-drive}\n"},
		{"shadowing alias", "aliases: {lists: records}\n"},
		{"malformed yaml", "defaults: {\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRegistry([]byte(tt.profile), "bad.yaml")
			assert.Error(t, err)
		})
	}
}
