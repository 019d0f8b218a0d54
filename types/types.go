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

// Type is the base interface for all types.
//
// The set of types is closed: every Type is one of Nat, Bool, Unit, Top, Bottom,
// *Record, *Tuple, *List, *Ref, *Sum, *Variant, *Fun, *ForAll, *Var or *Auto.
// Composite types must be created with their constructors (NewRecord, NewTuple, ...).
type Type interface {
	TypeName() string
	// HasPlaceholder reports whether the type contains an Auto placeholder.
	HasPlaceholder() bool
}

func (t Nat) TypeName() string      { return "Nat" }
func (t Bool) TypeName() string     { return "Bool" }
func (t Unit) TypeName() string     { return "Unit" }
func (t Top) TypeName() string      { return "Top" }
func (t Bottom) TypeName() string   { return "Bottom" }
func (t *Record) TypeName() string  { return "Record" }
func (t *Tuple) TypeName() string   { return "Tuple" }
func (t *List) TypeName() string    { return "List" }
func (t *Ref) TypeName() string     { return "Ref" }
func (t *Sum) TypeName() string     { return "Sum" }
func (t *Variant) TypeName() string { return "Variant" }
func (t *Fun) TypeName() string     { return "Fun" }
func (t *ForAll) TypeName() string  { return "ForAll" }
func (t *Var) TypeName() string     { return "Var" }
func (t *Auto) TypeName() string    { return "Auto" }

func (t Nat) HasPlaceholder() bool      { return false }
func (t Bool) HasPlaceholder() bool     { return false }
func (t Unit) HasPlaceholder() bool     { return false }
func (t Top) HasPlaceholder() bool      { return false }
func (t Bottom) HasPlaceholder() bool   { return false }
func (t *Record) HasPlaceholder() bool  { return t.auto }
func (t *Tuple) HasPlaceholder() bool   { return t.auto }
func (t *List) HasPlaceholder() bool    { return t.Elem.HasPlaceholder() }
func (t *Ref) HasPlaceholder() bool     { return t.Elem.HasPlaceholder() }
func (t *Sum) HasPlaceholder() bool     { return t.auto }
func (t *Variant) HasPlaceholder() bool { return t.auto }
func (t *Fun) HasPlaceholder() bool     { return t.auto }
func (t *ForAll) HasPlaceholder() bool  { return t.Body.HasPlaceholder() }
func (t *Var) HasPlaceholder() bool     { return false }
func (t *Auto) HasPlaceholder() bool    { return true }

// Natural numbers: `Nat`
type Nat struct{}

// Booleans: `Bool`
type Bool struct{}

// The unit type: `Unit`
type Unit struct{}

// The top type: `Top`
type Top struct{}

// The bottom type: `Bot`
type Bottom struct{}

// Field is a labelled member of a record or variant. Type is nil for nullary variant labels.
type Field struct {
	Label string
	Type  Type
}

// Record type: `{a : Nat, b : Bool}`
type Record struct {
	Fields []Field
	index  TypeMap
	auto   bool
}

// Tuple type: `{Nat, Bool}`
type Tuple struct {
	Items []Type
	auto  bool
}

// List type: `[Nat]`
type List struct {
	Elem Type
}

// Reference type: `&Nat`
type Ref struct {
	Elem Type
}

// Sum type: `Nat + Bool`
type Sum struct {
	Left, Right Type
	auto        bool
}

// Variant type: `<| a : Nat, b |>`
type Variant struct {
	Fields []Field
	index  TypeMap
	auto   bool
}

// Function type: `fn(Nat, Bool) -> Nat`
type Fun struct {
	Params []Type
	Return Type
	auto   bool
}

// Universal type: `forall X, Y. X -> Y`
//
// Variables bound by the quantifier are referenced by De Bruijn index: Names[i] has
// index i within Body, and indices of variables bound further out are offset by len(Names).
type ForAll struct {
	Names []string
	Body  Type
}

// Type variable bound by a universal type or a generic function.
//
// Scope identifies the type-variable scope which introduced the variable, and Index
// is the De Bruijn index of the variable relative to the innermost enclosing scope.
type Var struct {
	Name  string
	Scope int
	Index int
}

// Placeholder for a type to be reconstructed by unification.
type Auto struct {
	Id int
}

func NewRecord(fields []Field) *Record {
	r := &Record{Fields: fields, index: indexFields(fields)}
	for _, f := range fields {
		r.auto = r.auto || f.Type.HasPlaceholder()
	}
	return r
}

func NewTuple(items []Type) *Tuple {
	t := &Tuple{Items: items}
	for _, it := range items {
		t.auto = t.auto || it.HasPlaceholder()
	}
	return t
}

func NewList(elem Type) *List { return &List{Elem: elem} }

func NewRef(elem Type) *Ref { return &Ref{Elem: elem} }

func NewSum(left, right Type) *Sum {
	return &Sum{Left: left, Right: right, auto: left.HasPlaceholder() || right.HasPlaceholder()}
}

func NewVariant(fields []Field) *Variant {
	v := &Variant{Fields: fields, index: indexFields(fields)}
	for _, f := range fields {
		v.auto = v.auto || (f.Type != nil && f.Type.HasPlaceholder())
	}
	return v
}

func NewFun(params []Type, ret Type) *Fun {
	f := &Fun{Params: params, Return: ret, auto: ret.HasPlaceholder()}
	for _, p := range params {
		f.auto = f.auto || p.HasPlaceholder()
	}
	return f
}

func NewForAll(names []string, body Type) *ForAll { return &ForAll{Names: names, Body: body} }

func NewVar(name string, scope, index int) *Var { return &Var{Name: name, Scope: scope, Index: index} }

// Get the type of a record field.
func (t *Record) Field(label string) (Type, bool) { return t.index.Get(label) }

// Check if a record contains a field.
func (t *Record) Has(label string) bool { return t.index.Has(label) }

// Get the payload of a variant label. The payload is nil for nullary labels.
func (t *Variant) Field(label string) (Type, bool) { return t.index.Get(label) }

// Check if a variant contains a label.
func (t *Variant) Has(label string) bool { return t.index.Has(label) }

// Get the labels of a record, in declaration order.
func (t *Record) Labels() []string { return labels(t.Fields) }

func labels(fields []Field) []string {
	ls := make([]string, len(fields))
	for i, f := range fields {
		ls[i] = f.Label
	}
	return ls
}

// Check if two records or two variants have the same set of labels.
func sameLabels(a []Field, index TypeMap) bool {
	if len(a) != index.Len() {
		return false
	}
	for _, f := range a {
		if !index.Has(f.Label) {
			return false
		}
	}
	return true
}

// SameLabels reports whether two records have identical label sets.
func (t *Record) SameLabels(other *Record) bool { return sameLabels(t.Fields, other.index) }

// SameLabels reports whether two variants have identical label sets.
func (t *Variant) SameLabels(other *Variant) bool {
	return sameLabels(t.Fields, other.index)
}
