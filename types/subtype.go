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

// IsSubtype reports whether sub may be used where super is expected.
func IsSubtype(sub, super Type) bool { return AssignableFrom(super, sub) }

// AssignableFrom reports whether a value of type sub may be used where super is expected,
// under structural subtyping.
//
// Top is a supertype of every type and Bottom is a subtype of every type. Records
// allow width and depth subtyping; tuples allow the subtype to be longer than the
// supertype; lists and sums are covariant; functions are contravariant in their
// parameters and covariant in their return type; variants allow the subtype to carry
// fewer labels. References are invariant.
func AssignableFrom(super, sub Type) bool {
	if _, ok := super.(Top); ok {
		return true
	}
	if _, ok := sub.(Bottom); ok {
		return true
	}
	switch super := super.(type) {
	case *Record:
		sub, ok := sub.(*Record)
		if !ok {
			return false
		}
		for _, f := range super.Fields {
			st, ok := sub.Field(f.Label)
			if !ok || !AssignableFrom(f.Type, st) {
				return false
			}
		}
		return true
	case *Tuple:
		sub, ok := sub.(*Tuple)
		if !ok || len(sub.Items) < len(super.Items) {
			return false
		}
		for i, t := range super.Items {
			if !AssignableFrom(t, sub.Items[i]) {
				return false
			}
		}
		return true
	case *List:
		sub, ok := sub.(*List)
		return ok && AssignableFrom(super.Elem, sub.Elem)
	case *Ref:
		sub, ok := sub.(*Ref)
		return ok && AssignableFrom(super.Elem, sub.Elem) && AssignableFrom(sub.Elem, super.Elem)
	case *Sum:
		sub, ok := sub.(*Sum)
		return ok && AssignableFrom(super.Left, sub.Left) && AssignableFrom(super.Right, sub.Right)
	case *Fun:
		sub, ok := sub.(*Fun)
		if !ok || len(sub.Params) != len(super.Params) {
			return false
		}
		for i, p := range super.Params {
			if !AssignableFrom(sub.Params[i], p) {
				return false
			}
		}
		return AssignableFrom(super.Return, sub.Return)
	case *Variant:
		sub, ok := sub.(*Variant)
		if !ok || len(sub.Fields) > len(super.Fields) {
			return false
		}
		for _, f := range sub.Fields {
			pt, ok := super.Field(f.Label)
			if !ok || (pt == nil) != (f.Type == nil) {
				return false
			}
			if pt != nil && !AssignableFrom(pt, f.Type) {
				return false
			}
		}
		return true
	}
	return Equal(super, sub)
}
