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

// Equal reports whether two types are structurally equivalent.
//
// Record fields and variant labels are compared as sets. Type variables are compared by
// De Bruijn index and placeholders by id.
func Equal(a, b Type) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case Nat:
		_, ok := b.(Nat)
		return ok
	case Bool:
		_, ok := b.(Bool)
		return ok
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Top:
		_, ok := b.(Top)
		return ok
	case Bottom:
		_, ok := b.(Bottom)
		return ok
	case *Record:
		b, ok := b.(*Record)
		if !ok || !a.SameLabels(b) {
			return false
		}
		for _, f := range a.Fields {
			bt, _ := b.Field(f.Label)
			if !Equal(f.Type, bt) {
				return false
			}
		}
		return true
	case *Variant:
		b, ok := b.(*Variant)
		if !ok || !a.SameLabels(b) {
			return false
		}
		for _, f := range a.Fields {
			bt, _ := b.Field(f.Label)
			if !equalPayload(f.Type, bt) {
				return false
			}
		}
		return true
	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && equalSlices(a.Items, b.Items)
	case *List:
		b, ok := b.(*List)
		return ok && Equal(a.Elem, b.Elem)
	case *Ref:
		b, ok := b.(*Ref)
		return ok && Equal(a.Elem, b.Elem)
	case *Sum:
		b, ok := b.(*Sum)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Fun:
		b, ok := b.(*Fun)
		return ok && equalSlices(a.Params, b.Params) && Equal(a.Return, b.Return)
	case *ForAll:
		b, ok := b.(*ForAll)
		return ok && len(a.Names) == len(b.Names) && Equal(a.Body, b.Body)
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Index == b.Index
	case *Auto:
		b, ok := b.(*Auto)
		return ok && a.Id == b.Id
	}
	return false
}

func equalSlices(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalPayload(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}
