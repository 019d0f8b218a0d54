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

package stella

import (
	"strings"

	"github.com/samber/lo"

	"github.com/wdamron/stella/ast"
	"github.com/wdamron/stella/ext"
	"github.com/wdamron/stella/internal/match"
	"github.com/wdamron/stella/types"
)

// Convert a pattern into its model, resolving ascribed types within ctx.
func (c *Checker) convertPattern(ctx Context, p ast.Pattern) (match.Pattern, error) {
	switch p := p.(type) {
	case *ast.PatternVar:
		return &match.Bind{Name: p.Name}, nil

	case *ast.PatternTrue:
		return &match.Bool{Value: true}, nil

	case *ast.PatternFalse:
		return &match.Bool{Value: false}, nil

	case *ast.PatternUnit:
		return &match.Unit{}, nil

	case *ast.PatternInt:
		return &match.Nat{Value: p.Value}, nil

	case *ast.PatternSucc:
		inner, err := c.convertPattern(ctx, p.Pattern)
		if err != nil {
			return nil, err
		}
		return &match.Succ{Inner: inner}, nil

	case *ast.PatternAsc:
		if err := ctx.CheckExtension(ext.PatternAscriptions); err != nil {
			return nil, c.fail(p, err)
		}
		return c.convertAscription(ctx, p)

	case *ast.PatternCastAs:
		if err := ctx.CheckExtension(ext.TypeCastPatterns); err != nil {
			return nil, c.fail(p, err)
		}
		inner, err := c.convertPattern(ctx, p.Pattern)
		if err != nil {
			return nil, err
		}
		t, err := c.resolveType(ctx, p.Type)
		if err != nil {
			return nil, err
		}
		return &match.Cast{Inner: inner, Type: t}, nil

	case *ast.PatternList:
		if err := ctx.CheckExtension(ext.Lists); err != nil {
			return nil, c.fail(p, err)
		}
		items, err := c.convertPatterns(ctx, p.Items)
		if err != nil {
			return nil, err
		}
		return &match.List{Prefix: items}, nil

	case *ast.PatternCons:
		if err := ctx.CheckExtension(ext.Lists); err != nil {
			return nil, c.fail(p, err)
		}
		head, err := c.convertPattern(ctx, p.Head)
		if err != nil {
			return nil, err
		}
		tail, err := c.convertPattern(ctx, p.Tail)
		if err != nil {
			return nil, err
		}
		return &match.List{Prefix: []match.Pattern{head}, Tail: tail}, nil

	case *ast.PatternRecord:
		if err := ctx.CheckExtension(ext.Records); err != nil {
			return nil, c.fail(p, err)
		}
		labels := lo.Map(p.Fields, func(f ast.LabelledPattern, _ int) string { return f.Label })
		if dups := lo.FindDuplicates(labels); len(dups) != 0 {
			return nil, c.fail(p, types.NewError(types.ErrDuplicateRecordPatternFields, "duplicate record pattern fields "+strings.Join(dups, ", ")))
		}
		fields := make([]match.RecordField, len(p.Fields))
		for i, f := range p.Fields {
			inner, err := c.convertPattern(ctx, f.Pattern)
			if err != nil {
				return nil, err
			}
			fields[i] = match.RecordField{Label: f.Label, Pattern: inner}
		}
		return &match.Record{Fields: fields}, nil

	case *ast.PatternTuple:
		if err := ctx.CheckAnyExtension(ext.Tuples, ext.Pairs); err != nil {
			return nil, c.fail(p, err)
		}
		items, err := c.convertPatterns(ctx, p.Items)
		if err != nil {
			return nil, err
		}
		return &match.Tuple{Items: items}, nil

	case *ast.PatternInl:
		inner, err := c.convertPattern(ctx, p.Pattern)
		if err != nil {
			return nil, err
		}
		return &match.Sum{Inner: inner, Left: true}, nil

	case *ast.PatternInr:
		inner, err := c.convertPattern(ctx, p.Pattern)
		if err != nil {
			return nil, err
		}
		return &match.Sum{Inner: inner}, nil

	case *ast.PatternVariant:
		if err := ctx.CheckExtension(ext.Variants); err != nil {
			return nil, c.fail(p, err)
		}
		if p.Pattern == nil {
			return &match.Variant{Label: p.Label}, nil
		}
		inner, err := c.convertPattern(ctx, p.Pattern)
		if err != nil {
			return nil, err
		}
		return &match.Variant{Label: p.Label, Inner: inner}, nil
	}
	return nil, types.NewError(types.ErrUnknown, "unhandled pattern")
}

func (c *Checker) convertPatterns(ctx Context, ps []ast.Pattern) ([]match.Pattern, error) {
	converted := make([]match.Pattern, len(ps))
	for i, p := range ps {
		m, err := c.convertPattern(ctx, p)
		if err != nil {
			return nil, err
		}
		converted[i] = m
	}
	return converted, nil
}

func (c *Checker) convertAscription(ctx Context, p *ast.PatternAsc) (*match.Asc, error) {
	inner, err := c.convertPattern(ctx, p.Pattern)
	if err != nil {
		return nil, err
	}
	t, err := c.resolveType(ctx, p.Type)
	if err != nil {
		return nil, err
	}
	return &match.Asc{Inner: inner, Type: t}, nil
}

// Check that a pattern can match values of type t and return its model and the variables it binds.
func (c *Checker) bindPattern(ctx Context, p ast.Pattern, t types.Type) (match.Pattern, []match.Binding, error) {
	m, err := c.convertPattern(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	bindings, err := m.Bindings(ctx, t)
	if err != nil {
		return nil, nil, c.fail(p, err)
	}
	return m, bindings, nil
}

// Get the variables bound by a letrec pattern before its value is checked. The pattern must be
// ascribed with the type of the value.
func (c *Checker) bindLetrecPattern(ctx Context, p ast.Pattern) (types.Type, []match.Binding, error) {
	asc, ok := p.(*ast.PatternAsc)
	if !ok {
		return nil, nil, c.fail(p, types.NewError(types.ErrAmbiguousPatternType, "letrec patterns must be ascribed"))
	}
	m, err := c.convertAscription(ctx, asc)
	if err != nil {
		return nil, nil, err
	}
	bindings, err := m.Inner.Bindings(ctx, m.Type)
	if err != nil {
		return nil, nil, c.fail(p, err)
	}
	return m.Type, bindings, nil
}
