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

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

// TypeMap contains immutable mappings from labels to types. Nullary variant labels
// map to a nil type.
type TypeMap struct {
	m *immutable.SortedMap
}

func indexFields(fields []Field) TypeMap {
	b := NewTypeMapBuilder()
	for _, f := range fields {
		b.Set(f.Label, f.Type)
	}
	return b.Build()
}

// Get the number of entries in the map.
func (m TypeMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the type for a label.
func (m TypeMap) Get(label string) (Type, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(label)
	if !ok {
		return nil, false
	}
	if t == nil {
		return nil, true
	}
	return t.(Type), true
}

// Check if the map contains a label.
func (m TypeMap) Has(label string) bool {
	_, ok := m.Get(label)
	return ok
}

// TypeMapBuilder enables in-place updates of a map before finalization.
type TypeMapBuilder struct {
	m *immutable.SortedMapBuilder
}

// Create a new builder.
func NewTypeMapBuilder() TypeMapBuilder {
	return TypeMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Set the type for a label.
func (b TypeMapBuilder) Set(label string, t Type) { b.m.Set(label, t) }

// Finalize the map. The builder must not be used after the map is built.
func (b TypeMapBuilder) Build() TypeMap { return TypeMap{b.m.Map()} }
