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

package match

import (
	"github.com/wdamron/stella/types"
)

func (p *Bind) Conforms(env Env, t types.Type) error    { return nil }
func (p *Bool) Conforms(env Env, t types.Type) error    { return expect(env, types.Bool{}, t) }
func (p *Nat) Conforms(env Env, t types.Type) error     { return expect(env, types.Nat{}, t) }
func (p *Unit) Conforms(env Env, t types.Type) error    { return expect(env, types.Unit{}, t) }
func (p *Succ) Conforms(env Env, t types.Type) error    { return conforms(p, env, t) }
func (p *Asc) Conforms(env Env, t types.Type) error     { return conforms(p, env, t) }
func (p *Cast) Conforms(env Env, t types.Type) error    { return conforms(p, env, t) }
func (p *List) Conforms(env Env, t types.Type) error    { return conforms(p, env, t) }
func (p *Record) Conforms(env Env, t types.Type) error  { return conforms(p, env, t) }
func (p *Tuple) Conforms(env Env, t types.Type) error   { return conforms(p, env, t) }
func (p *Sum) Conforms(env Env, t types.Type) error     { return conforms(p, env, t) }
func (p *Variant) Conforms(env Env, t types.Type) error { return conforms(p, env, t) }

func conforms(p Pattern, env Env, t types.Type) error {
	_, err := p.Bindings(env, t)
	return err
}

func unexpected(t types.Type, detail string) error {
	err := types.Mismatch(types.ErrUnexpectedPatternForType, nil, t)
	err.Detail = detail
	return err
}

// Require t to be want; placeholders are constrained instead.
func expect(env Env, want, t types.Type) error {
	if types.Equal(want, t) {
		return nil
	}
	if t.HasPlaceholder() {
		env.Constrain(t, want)
		return nil
	}
	// a Bot scrutinee has no values
	if _, ok := t.(types.Bottom); ok {
		return nil
	}
	if env.Subtyping() && types.AssignableFrom(want, t) {
		return nil
	}
	err := types.Mismatch(types.ErrUnexpectedPatternForType, want, t)
	err.Detail = "pattern does not match the type of the scrutinee"
	return err
}

func (p *Bind) Bindings(env Env, t types.Type) ([]Binding, error) {
	return []Binding{{Name: p.Name, Type: t}}, nil
}

func (p *Bool) Bindings(env Env, t types.Type) ([]Binding, error) {
	return nil, p.Conforms(env, t)
}

func (p *Nat) Bindings(env Env, t types.Type) ([]Binding, error) {
	return nil, p.Conforms(env, t)
}

func (p *Unit) Bindings(env Env, t types.Type) ([]Binding, error) {
	return nil, p.Conforms(env, t)
}

func (p *Succ) Bindings(env Env, t types.Type) ([]Binding, error) {
	if err := expect(env, types.Nat{}, t); err != nil {
		return nil, err
	}
	return p.Inner.Bindings(env, types.Nat{})
}

func (p *Asc) Bindings(env Env, t types.Type) ([]Binding, error) {
	switch {
	case types.Equal(p.Type, t):
	case t.HasPlaceholder() || p.Type.HasPlaceholder():
		env.Constrain(t, p.Type)
	case env.Subtyping() && types.AssignableFrom(p.Type, t):
	default:
		err := types.Mismatch(types.ErrUnexpectedPatternForType, p.Type, t)
		err.Detail = "ascribed pattern type does not match the scrutinee"
		return nil, err
	}
	return p.Inner.Bindings(env, p.Type)
}

func (p *Cast) Bindings(env Env, t types.Type) ([]Binding, error) {
	if !t.HasPlaceholder() && !types.AssignableFrom(t, p.Type) {
		err := types.Mismatch(types.ErrUnexpectedPatternForType, t, p.Type)
		err.Detail = "cast pattern type is not a subtype of the scrutinee"
		return nil, err
	}
	return p.Inner.Bindings(env, p.Type)
}

func (p *List) Bindings(env Env, t types.Type) ([]Binding, error) {
	var list *types.List
	switch tt := t.(type) {
	case *types.List:
		list = tt
	case *types.Auto:
		list = types.NewList(env.Fresh())
		env.Constrain(t, list)
	default:
		return nil, unexpected(t, "list pattern for a non-list type")
	}
	var bindings []Binding
	for _, item := range p.Prefix {
		bs, err := item.Bindings(env, list.Elem)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, bs...)
	}
	if p.Tail != nil {
		bs, err := p.Tail.Bindings(env, list)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, bs...)
	}
	return bindings, nil
}

func (p *Record) Bindings(env Env, t types.Type) ([]Binding, error) {
	var rec *types.Record
	switch tt := t.(type) {
	case *types.Record:
		rec = tt
	case *types.Auto:
		fields := make([]types.Field, len(p.Fields))
		for i, f := range p.Fields {
			fields[i] = types.Field{Label: f.Label, Type: env.Fresh()}
		}
		rec = types.NewRecord(fields)
		env.Constrain(t, rec)
	default:
		return nil, unexpected(t, "record pattern for a non-record type")
	}
	var bindings []Binding
	for _, f := range p.Fields {
		ft, ok := rec.Field(f.Label)
		if !ok {
			return nil, unexpected(t, "record pattern field "+f.Label+" is not a field of the scrutinee")
		}
		bs, err := f.Pattern.Bindings(env, ft)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, bs...)
	}
	return bindings, nil
}

func (p *Tuple) Bindings(env Env, t types.Type) ([]Binding, error) {
	var tup *types.Tuple
	switch tt := t.(type) {
	case *types.Tuple:
		tup = tt
	case *types.Auto:
		items := make([]types.Type, len(p.Items))
		for i := range items {
			items[i] = env.Fresh()
		}
		tup = types.NewTuple(items)
		env.Constrain(t, tup)
	default:
		return nil, unexpected(t, "tuple pattern for a non-tuple type")
	}
	if len(tup.Items) != len(p.Items) {
		err := types.Mismatch(types.ErrUnexpectedTupleLength, nil, t)
		err.Detail = "tuple pattern length does not match the scrutinee"
		return nil, err
	}
	var bindings []Binding
	for i, item := range p.Items {
		bs, err := item.Bindings(env, tup.Items[i])
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, bs...)
	}
	return bindings, nil
}

func (p *Sum) Bindings(env Env, t types.Type) ([]Binding, error) {
	var sum *types.Sum
	switch tt := t.(type) {
	case *types.Sum:
		sum = tt
	case *types.Auto:
		sum = types.NewSum(env.Fresh(), env.Fresh())
		env.Constrain(t, sum)
	default:
		return nil, unexpected(t, "injection pattern for a non-sum type")
	}
	if p.Left {
		return p.Inner.Bindings(env, sum.Left)
	}
	return p.Inner.Bindings(env, sum.Right)
}

func (p *Variant) Bindings(env Env, t types.Type) ([]Binding, error) {
	var v *types.Variant
	switch tt := t.(type) {
	case *types.Variant:
		v = tt
	case *types.Auto:
		return nil, types.NewError(types.ErrAmbiguousPatternType, "cannot infer the variant type of pattern <| "+p.Label+" |>")
	default:
		return nil, unexpected(t, "variant pattern for a non-variant type")
	}
	payload, ok := v.Field(p.Label)
	switch {
	case !ok:
		err := types.Mismatch(types.ErrUnexpectedVariantLabel, nil, t)
		err.Detail = "label " + p.Label + " is not a label of the scrutinee"
		return nil, err
	case payload == nil && p.Inner != nil:
		err := types.Mismatch(types.ErrUnexpectedNonNullaryVariantPattern, nil, t)
		err.Detail = "label " + p.Label + " carries no data"
		return nil, err
	case payload != nil && p.Inner == nil:
		err := types.Mismatch(types.ErrUnexpectedNullaryVariantPattern, nil, t)
		err.Detail = "label " + p.Label + " carries data"
		return nil, err
	case payload == nil:
		return nil, nil
	}
	return p.Inner.Bindings(env, payload)
}
