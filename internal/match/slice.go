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
	"github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"

	"github.com/wdamron/stella/types"
)

// Slice is the ordered list of patterns of the cases of one match expression.
type Slice []Pattern

// Exhaustive reports whether the patterns of the slice cover every value of type t.
// Each pattern must conform to t.
//
// Tuples and records are covered position by position rather than by combinations of
// positions, so a slice may be judged exhaustive although some combination of field
// values is unmatched.
func (s Slice) Exhaustive(env Env, t types.Type) (bool, error) {
	if len(s) == 0 {
		return false, nil
	}
	for _, p := range s {
		if err := p.Conforms(env, t); err != nil {
			return false, err
		}
	}
	items := lo.Map(s, func(p Pattern, _ int) Pattern { return Unwrap(p) })
	if lo.SomeBy(items, Irrefutable) {
		return true, nil
	}

	switch t := t.(type) {
	case types.Bottom:
		return true, nil
	case types.Bool:
		return lo.SomeBy(items, isBool(true)) && lo.SomeBy(items, isBool(false)), nil
	case types.Unit:
		return lo.SomeBy(items, func(p Pattern) bool {
			_, ok := p.(*Unit)
			return ok
		}), nil
	case types.Nat:
		return naturalsCovered(items), nil
	case *types.List:
		return listsCovered(items), nil
	case *types.Sum:
		return sumsCovered(env, items, t)
	case *types.Tuple:
		return tuplesCovered(env, items, t)
	case *types.Record:
		return recordsCovered(env, items, t)
	case *types.Variant:
		return variantsCovered(env, items, t)
	}
	// Top, functions, references, type variables and unresolved placeholders are
	// never covered by refutable patterns.
	return false, nil
}

func isBool(value bool) func(Pattern) bool {
	return func(p Pattern) bool {
		b, ok := p.(*Bool)
		return ok && b.Value == value
	}
}

// Every value below lowest must be one of the constants.
func rangeCovered(lowest int, constants *set.Set[int]) bool {
	for i := 0; i < lowest; i++ {
		if !constants.Contains(i) {
			return false
		}
	}
	return true
}

func naturalsCovered(items []Pattern) bool {
	lowers := lo.FilterMap(items, func(p Pattern, _ int) (int, bool) {
		succ, ok := p.(*Succ)
		if !ok {
			return 0, false
		}
		return succ.lower()
	})
	if len(lowers) == 0 {
		return false
	}
	constants := set.New[int](len(items))
	for _, p := range items {
		switch p := p.(type) {
		case *Nat:
			constants.Insert(p.Value)
		case *Succ:
			if c, ok := p.constant(); ok {
				constants.Insert(c)
			}
		}
	}
	return rangeCovered(lo.Min(lowers), constants)
}

// Get the least value matched by every deeper succ chain ending in a catch-all.
func (p *Succ) lower() (int, bool) {
	switch inner := Unwrap(p.Inner).(type) {
	case *Bind:
		return 1, true
	case *Succ:
		n, ok := inner.lower()
		return n + 1, ok
	}
	return 0, false
}

// Get the single value matched by a succ chain ending in a literal.
func (p *Succ) constant() (int, bool) {
	switch inner := Unwrap(p.Inner).(type) {
	case *Nat:
		return inner.Value + 1, true
	case *Succ:
		n, ok := inner.constant()
		return n + 1, ok
	}
	return 0, false
}

func listsCovered(items []Pattern) bool {
	lists := lo.FilterMap(items, func(p Pattern, _ int) (*List, bool) {
		l, ok := p.(*List)
		return l, ok
	})
	lowers := lo.FilterMap(lists, func(l *List, _ int) (int, bool) { return l.lower() })
	if len(lowers) == 0 {
		return false
	}
	constants := set.New[int](len(lists))
	for _, l := range lists {
		if c, ok := l.constant(); ok {
			constants.Insert(c)
		}
	}
	return rangeCovered(lo.Min(lowers), constants)
}

// Get the least length matched by a list pattern whose elements and tail are catch-alls.
func (p *List) lower() (int, bool) {
	if p.Tail == nil || !lo.EveryBy(p.Prefix, Irrefutable) {
		return 0, false
	}
	switch tail := Unwrap(p.Tail).(type) {
	case *Bind:
		return len(p.Prefix), true
	case *List:
		n, ok := tail.lower()
		return n + len(p.Prefix), ok
	}
	return 0, false
}

// Get the single length matched by a list pattern whose elements are catch-alls.
func (p *List) constant() (int, bool) {
	if !lo.EveryBy(p.Prefix, Irrefutable) {
		return 0, false
	}
	if p.Tail == nil {
		return len(p.Prefix), true
	}
	if tail, ok := Unwrap(p.Tail).(*List); ok {
		n, ok := tail.constant()
		return n + len(p.Prefix), ok
	}
	return 0, false
}

func sumsCovered(env Env, items []Pattern, t *types.Sum) (bool, error) {
	side := func(left bool) Slice {
		return lo.FilterMap(items, func(p Pattern, _ int) (Pattern, bool) {
			s, ok := p.(*Sum)
			if !ok || s.Left != left {
				return nil, false
			}
			return s.Inner, true
		})
	}
	left, right := side(true), side(false)
	if len(left) == 0 || len(right) == 0 {
		return false, nil
	}
	if ok, err := left.Exhaustive(env, t.Left); !ok || err != nil {
		return false, err
	}
	return right.Exhaustive(env, t.Right)
}

func tuplesCovered(env Env, items []Pattern, t *types.Tuple) (bool, error) {
	tuples := lo.FilterMap(items, func(p Pattern, _ int) (*Tuple, bool) {
		tp, ok := p.(*Tuple)
		return tp, ok && len(tp.Items) == len(t.Items)
	})
	if len(tuples) == 0 {
		return false, nil
	}
	for i, it := range t.Items {
		column := Slice(lo.Map(tuples, func(tp *Tuple, _ int) Pattern { return tp.Items[i] }))
		if ok, err := column.Exhaustive(env, it); !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

func recordsCovered(env Env, items []Pattern, t *types.Record) (bool, error) {
	records := lo.FilterMap(items, func(p Pattern, _ int) (*Record, bool) {
		r, ok := p.(*Record)
		return r, ok
	})
	if len(records) == 0 {
		return false, nil
	}
	for _, f := range t.Fields {
		column := Slice(lo.FilterMap(records, func(r *Record, _ int) (Pattern, bool) { return r.Field(f.Label) }))
		if len(column) == 0 {
			return false, nil
		}
		if ok, err := column.Exhaustive(env, f.Type); !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

func variantsCovered(env Env, items []Pattern, t *types.Variant) (bool, error) {
	variants := lo.FilterMap(items, func(p Pattern, _ int) (*Variant, bool) {
		v, ok := p.(*Variant)
		return v, ok
	})
	for _, f := range t.Fields {
		matching := lo.Filter(variants, func(v *Variant, _ int) bool { return v.Label == f.Label })
		if len(matching) == 0 {
			return false, nil
		}
		if f.Type == nil {
			continue
		}
		payloads := Slice(lo.FilterMap(matching, func(v *Variant, _ int) (Pattern, bool) { return v.Inner, v.Inner != nil }))
		if ok, err := payloads.Exhaustive(env, f.Type); !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}
