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
	"strconv"
)

// Substitution resolves placeholders to their current solutions.
type Substitution interface {
	Lookup(id int) (Type, bool)
}

// Transform rebuilds t in pre-order. f is called for each visited type with the number
// of universal binders enclosing it within t; if f returns a non-nil type, that type
// replaces the visited type and its children are not visited.
//
// Types which are unchanged by the transformation are returned as-is.
func Transform(t Type, f func(t Type, depth int) Type) Type { return transform(t, 0, f) }

func transform(t Type, depth int, f func(Type, int) Type) Type {
	if r := f(t, depth); r != nil {
		return r
	}
	switch t := t.(type) {
	case *Record:
		fields, changed := transformFields(t.Fields, depth, f)
		if !changed {
			return t
		}
		return NewRecord(fields)
	case *Variant:
		fields, changed := transformFields(t.Fields, depth, f)
		if !changed {
			return t
		}
		return NewVariant(fields)
	case *Tuple:
		items, changed := transformSlice(t.Items, depth, f)
		if !changed {
			return t
		}
		return NewTuple(items)
	case *List:
		elem := transform(t.Elem, depth, f)
		if elem == t.Elem {
			return t
		}
		return NewList(elem)
	case *Ref:
		elem := transform(t.Elem, depth, f)
		if elem == t.Elem {
			return t
		}
		return NewRef(elem)
	case *Sum:
		left, right := transform(t.Left, depth, f), transform(t.Right, depth, f)
		if left == t.Left && right == t.Right {
			return t
		}
		return NewSum(left, right)
	case *Fun:
		params, changed := transformSlice(t.Params, depth, f)
		ret := transform(t.Return, depth, f)
		if !changed && ret == t.Return {
			return t
		}
		return NewFun(params, ret)
	case *ForAll:
		body := transform(t.Body, depth+len(t.Names), f)
		if body == t.Body {
			return t
		}
		return NewForAll(t.Names, body)
	}
	return t
}

func transformSlice(ts []Type, depth int, f func(Type, int) Type) ([]Type, bool) {
	var out []Type
	for i, t := range ts {
		r := transform(t, depth, f)
		if r != t && out == nil {
			out = make([]Type, len(ts))
			copy(out, ts[:i])
		}
		if out != nil {
			out[i] = r
		}
	}
	if out == nil {
		return ts, false
	}
	return out, true
}

func transformFields(fs []Field, depth int, f func(Type, int) Type) ([]Field, bool) {
	var out []Field
	for i, fld := range fs {
		r := fld.Type
		if r != nil {
			r = transform(r, depth, f)
		}
		if r != fld.Type && out == nil {
			out = make([]Field, len(fs))
			copy(out, fs[:i])
		}
		if out != nil {
			out[i] = Field{Label: fld.Label, Type: r}
		}
	}
	if out == nil {
		return fs, false
	}
	return out, true
}

// Visit calls f for t and each type nested within t, in pre-order.
// If f returns false, children of the visited type are skipped.
func Visit(t Type, f func(Type) bool) {
	if !f(t) {
		return
	}
	switch t := t.(type) {
	case *Record:
		for _, fld := range t.Fields {
			Visit(fld.Type, f)
		}
	case *Variant:
		for _, fld := range t.Fields {
			if fld.Type != nil {
				Visit(fld.Type, f)
			}
		}
	case *Tuple:
		for _, it := range t.Items {
			Visit(it, f)
		}
	case *List:
		Visit(t.Elem, f)
	case *Ref:
		Visit(t.Elem, f)
	case *Sum:
		Visit(t.Left, f)
		Visit(t.Right, f)
	case *Fun:
		for _, p := range t.Params {
			Visit(p, f)
		}
		Visit(t.Return, f)
	case *ForAll:
		Visit(t.Body, f)
	}
}

// Substitute replaces every placeholder in t with its solution in s. Solutions are
// resolved transitively, so s must not contain cyclic solutions.
func Substitute(t Type, s Substitution) Type {
	if !t.HasPlaceholder() {
		return t
	}
	return Transform(t, func(t Type, _ int) Type {
		if !t.HasPlaceholder() {
			return t
		}
		a, ok := t.(*Auto)
		if !ok {
			return nil
		}
		if sol, ok := s.Lookup(a.Id); ok {
			return Substitute(sol, s)
		}
		return a
	})
}

// Contains reports whether candidate occurs within t.
func Contains(t, candidate Type) bool {
	found := false
	Visit(t, func(t Type) bool {
		if found {
			return false
		}
		if Equal(t, candidate) {
			found = true
		}
		return !found
	})
	return found
}

// Shift adds by to the index of every type variable in t which is free at the root of t.
func Shift(t Type, by int) Type {
	if by == 0 {
		return t
	}
	return Transform(t, func(t Type, depth int) Type {
		if v, ok := t.(*Var); ok {
			if v.Index < depth {
				return v
			}
			return NewVar(v.Name, v.Scope, v.Index+by)
		}
		return nil
	})
}

// Concretize replaces type variables free at the root of t by index. The mapping must
// contain the indices 0 through len(mapping)-1; remaining free variables are shifted
// down past the replaced indices.
func Concretize(t Type, mapping map[int]Type) Type {
	n := len(mapping)
	return Transform(t, func(t Type, depth int) Type {
		v, ok := t.(*Var)
		if !ok {
			return nil
		}
		switch {
		case v.Index < depth:
			return v
		case v.Index-depth < n:
			return Shift(mapping[v.Index-depth], depth)
		default:
			return NewVar(v.Name, v.Scope, v.Index-n)
		}
	})
}

// Reify instantiates a universal type with type arguments.
func (t *ForAll) Reify(args []Type) (Type, error) {
	if len(args) != len(t.Names) {
		return nil, &TypeError{
			Code:   ErrIncorrectNumberOfTypeArguments,
			Actual: t,
			Detail: "expected " + strconv.Itoa(len(t.Names)) + " type arguments, got " + strconv.Itoa(len(args)),
		}
	}
	mapping := make(map[int]Type, len(args))
	for i, arg := range args {
		mapping[i] = arg
	}
	return Concretize(t.Body, mapping), nil
}
