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
	"github.com/wdamron/stella/types"
)

// Resolve a type expression within the type-variable scopes of ctx.
func (c *Checker) resolveType(ctx Context, t ast.TypeExpr) (types.Type, error) {
	switch t := t.(type) {
	case *ast.TypeNat:
		return types.Nat{}, nil

	case *ast.TypeBool:
		return types.Bool{}, nil

	case *ast.TypeUnit:
		return types.Unit{}, nil

	case *ast.TypeTop:
		if err := ctx.CheckExtension(ext.TopType); err != nil {
			return nil, c.fail(t, err)
		}
		return types.Top{}, nil

	case *ast.TypeBottom:
		if err := ctx.CheckExtension(ext.BottomType); err != nil {
			return nil, c.fail(t, err)
		}
		return types.Bottom{}, nil

	case *ast.TypeAuto:
		if err := ctx.CheckExtension(ext.TypeReconstruction); err != nil {
			return nil, c.fail(t, err)
		}
		return ctx.state.Engine.PlaceholderFor(t), nil

	case *ast.TypeVar:
		if v, err := ctx.CreateMapping(t.Name); err == nil {
			if err := ctx.CheckExtension(ext.UniversalTypes); err != nil {
				return nil, c.fail(t, err)
			}
			return v, nil
		}
		if alias, ok := ctx.state.aliases[t.Name]; ok {
			return alias, nil
		}
		if ctx.HasExtension(ext.UniversalTypes) {
			return nil, c.fail(t, types.NewError(types.ErrUndefinedTypeVariable, "undefined type variable "+t.Name))
		}
		return nil, c.fail(t, types.NewError(types.ErrUndefinedTypeAlias, "undefined type "+t.Name))

	case *ast.TypeForAll:
		if err := ctx.CheckExtension(ext.UniversalTypes); err != nil {
			return nil, c.fail(t, err)
		}
		body, err := c.resolveType(ctx.WithTypeVariables(t.Names, t), t.Type)
		if err != nil {
			return nil, err
		}
		return types.NewForAll(t.Names, body), nil

	case *ast.TypeFun:
		params, err := c.resolveTypes(ctx, t.Params)
		if err != nil {
			return nil, err
		}
		ret, err := c.resolveType(ctx, t.Return)
		if err != nil {
			return nil, err
		}
		return types.NewFun(params, ret), nil

	case *ast.TypeTuple:
		items, err := c.resolveTypes(ctx, t.Items)
		if err != nil {
			return nil, err
		}
		return types.NewTuple(items), nil

	case *ast.TypeRecord:
		if dups := duplicateLabels(t.Fields); len(dups) != 0 {
			return nil, c.fail(t, types.NewError(types.ErrDuplicateRecordTypeFields, "duplicate record type fields "+strings.Join(dups, ", ")))
		}
		fields, err := c.resolveFields(ctx, t.Fields)
		if err != nil {
			return nil, err
		}
		return types.NewRecord(fields), nil

	case *ast.TypeVariant:
		if dups := duplicateLabels(t.Fields); len(dups) != 0 {
			return nil, c.fail(t, types.NewError(types.ErrDuplicateVariantTypeFields, "duplicate variant type fields "+strings.Join(dups, ", ")))
		}
		fields, err := c.resolveFields(ctx, t.Fields)
		if err != nil {
			return nil, err
		}
		return types.NewVariant(fields), nil

	case *ast.TypeList:
		elem, err := c.resolveType(ctx, t.Elem)
		if err != nil {
			return nil, err
		}
		return types.NewList(elem), nil

	case *ast.TypeSum:
		left, err := c.resolveType(ctx, t.Left)
		if err != nil {
			return nil, err
		}
		right, err := c.resolveType(ctx, t.Right)
		if err != nil {
			return nil, err
		}
		return types.NewSum(left, right), nil

	case *ast.TypeRef:
		elem, err := c.resolveType(ctx, t.Elem)
		if err != nil {
			return nil, err
		}
		return types.NewRef(elem), nil
	}
	return nil, types.NewError(types.ErrUnknown, "unhandled type expression")
}

func (c *Checker) resolveTypes(ctx Context, ts []ast.TypeExpr) ([]types.Type, error) {
	resolved := make([]types.Type, len(ts))
	for i, t := range ts {
		r, err := c.resolveType(ctx, t)
		if err != nil {
			return nil, err
		}
		resolved[i] = r
	}
	return resolved, nil
}

// Nil field types resolve to nil payloads.
func (c *Checker) resolveFields(ctx Context, fs []ast.FieldType) ([]types.Field, error) {
	fields := make([]types.Field, len(fs))
	for i, f := range fs {
		fields[i].Label = f.Label
		if f.Type == nil {
			continue
		}
		t, err := c.resolveType(ctx, f.Type)
		if err != nil {
			return nil, err
		}
		fields[i].Type = t
	}
	return fields, nil
}

func duplicateLabels(fs []ast.FieldType) []string {
	return lo.FindDuplicates(lo.Map(fs, func(f ast.FieldType, _ int) string { return f.Label }))
}
