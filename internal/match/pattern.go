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

// Package match models patterns for conformance checking, variable binding and
// exhaustiveness analysis.
package match

import (
	"github.com/wdamron/stella/types"
)

// Env is the checking environment patterns are resolved in.
type Env interface {
	// Allocate a fresh placeholder.
	Fresh() *types.Auto
	// Require a and b to be equal.
	Constrain(a, b types.Type)
	// Report whether structural subtyping is enabled.
	Subtyping() bool
}

// Binding is a variable introduced by a pattern.
type Binding struct {
	Name string
	Type types.Type
}

// Pattern is the base for all pattern models.
type Pattern interface {
	// Conforms checks that the pattern can match values of type t.
	Conforms(env Env, t types.Type) error
	// Bindings checks that the pattern can match values of type t and returns the
	// variables it binds.
	Bindings(env Env, t types.Type) ([]Binding, error)
}

var (
	_ Pattern = (*Bind)(nil)
	_ Pattern = (*Bool)(nil)
	_ Pattern = (*Nat)(nil)
	_ Pattern = (*Unit)(nil)
	_ Pattern = (*Succ)(nil)
	_ Pattern = (*Asc)(nil)
	_ Pattern = (*Cast)(nil)
	_ Pattern = (*List)(nil)
	_ Pattern = (*Record)(nil)
	_ Pattern = (*Tuple)(nil)
	_ Pattern = (*Sum)(nil)
	_ Pattern = (*Variant)(nil)
)

// Variable pattern: `x`
type Bind struct {
	Name string
}

// `true` or `false`
type Bool struct {
	Value bool
}

// Natural literal: `0`
type Nat struct {
	Value int
}

// `unit`
type Unit struct{}

// `succ(p)`
type Succ struct {
	Inner Pattern
}

// Ascription: `p as T`
type Asc struct {
	Inner Pattern
	Type  types.Type
}

// Narrowing cast: `p cast as T`
type Cast struct {
	Inner Pattern
	Type  types.Type
}

// List pattern with a fixed prefix and an optional tail.
//
// `[p1, p2]` has no tail; `cons(h, t)` has the prefix [h] and the tail t.
type List struct {
	Prefix []Pattern
	Tail   Pattern
}

// RecordField is a labelled member of a record pattern.
type RecordField struct {
	Label   string
	Pattern Pattern
}

// `{a = p1, b = p2}`
type Record struct {
	Fields []RecordField
}

// `{p1, p2}`
type Tuple struct {
	Items []Pattern
}

// `inl(p)` or `inr(p)`
type Sum struct {
	Inner Pattern
	Left  bool
}

// `<| a = p |>`. Inner is nil for nullary labels.
type Variant struct {
	Label string
	Inner Pattern
}

// Get the pattern of a record field.
func (p *Record) Field(label string) (Pattern, bool) {
	for _, f := range p.Fields {
		if f.Label == label {
			return f.Pattern, true
		}
	}
	return nil, false
}

// Unwrap removes ascriptions around a pattern.
func Unwrap(p Pattern) Pattern {
	for {
		asc, ok := p.(*Asc)
		if !ok {
			return p
		}
		p = asc.Inner
	}
}

// Irrefutable reports whether a pattern matches every value of its type.
func Irrefutable(p Pattern) bool {
	_, ok := Unwrap(p).(*Bind)
	return ok
}
