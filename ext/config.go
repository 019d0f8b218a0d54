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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is the YAML configuration of a Registry:
//
//	defaults:
//	  - natural-literals
//	  - unit-type
//	aliases:
//	  fixpoint: fixpoint-combinator
type Profile struct {
	// Defaults lists extensions enabled for every program, in addition to DefaultExtensions.
	Defaults []string `yaml:"defaults,omitempty"`
	// Aliases maps alternative spellings to extension names.
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// LoadRegistry reads a profile from path and builds a registry from it.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading extension profile %s: %w", path, err)
	}
	return ParseRegistry(data, path)
}

// ParseRegistry builds a registry from a YAML profile. The path is used in error messages.
func ParseRegistry(data []byte, path string) (*Registry, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p.Registry(path)
}

// Registry builds a registry from the profile. The path is used in error messages.
func (p *Profile) Registry(path string) (*Registry, error) {
	r := NewRegistry()
	for alias, name := range p.Aliases {
		x, ok := Parse(name)
		if !ok {
			return nil, fmt.Errorf("%s: aliases[%s]: unknown extension %q", path, alias, name)
		}
		if _, ok := Parse(alias); ok {
			return nil, fmt.Errorf("%s: aliases[%s]: alias shadows a built-in extension", path, alias)
		}
		r.AddAlias(alias, x)
	}
	for i, name := range p.Defaults {
		x, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%s: defaults[%d]: unknown extension %q", path, i, name)
		}
		r.AddDefaults(x)
	}
	return r, nil
}
