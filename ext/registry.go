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
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/stella/types"
)

// DefaultExtensions are enabled for every program.
var DefaultExtensions = []Extension{SumTypes, LetBindings}

// Registry resolves extension pragmas into the set of extensions enabled for a program.
type Registry struct {
	aliases  map[string]Extension
	defaults []Extension
}

// Create a registry with the built-in spellings and default extensions.
func NewRegistry() *Registry {
	return &Registry{defaults: append([]Extension(nil), DefaultExtensions...)}
}

// Add extensions which are enabled for every program.
func (r *Registry) AddDefaults(xs ...Extension) {
	for _, x := range xs {
		if !r.IsDefault(x) {
			r.defaults = append(r.defaults, x)
		}
	}
}

// Check if an extension is enabled for every program.
func (r *Registry) IsDefault(x Extension) bool {
	for _, d := range r.defaults {
		if d == x {
			return true
		}
	}
	return false
}

// Add an alternative spelling for an extension.
func (r *Registry) AddAlias(alias string, x Extension) {
	if r.aliases == nil {
		r.aliases = make(map[string]Extension)
	}
	r.aliases[trimPragma(alias)] = x
}

// Lookup an extension by any accepted spelling, with or without the leading '#'.
func (r *Registry) Lookup(name string) (Extension, bool) {
	if x, ok := Parse(name); ok {
		return x, true
	}
	x, ok := r.aliases[trimPragma(name)]
	return x, ok
}

// Resolve the extensions enabled by a program's pragmas, including the default extensions.
func (r *Registry) Resolve(pragmas []string) (*set.Set[Extension], error) {
	enabled := set.From(r.defaults)
	for _, name := range pragmas {
		x, ok := r.Lookup(name)
		if !ok {
			return nil, types.NewError(types.ErrUnknownExtension, "unknown extension "+name)
		}
		enabled.Insert(x)
	}
	return enabled, nil
}

func trimPragma(name string) string {
	if len(name) > 0 && name[0] == '#' {
		return name[1:]
	}
	return name
}
