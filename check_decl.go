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
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/stella/ast"
	"github.com/wdamron/stella/ext"
	"github.com/wdamron/stella/internal/match"
	"github.com/wdamron/stella/types"
)

func (c *Checker) checkProgram(ctx Context, prog *ast.Program) error {
	st := ctx.state
	st.logger.Debug("checking program", "extensions", st.Extensions.Size(), "decls", len(prog.Decls))

	for _, d := range prog.Decls {
		if d, ok := d.(*ast.DeclTypeAlias); ok {
			if err := c.declareAlias(ctx, d); err != nil {
				return err
			}
		}
	}
	if err := c.declareExceptionType(ctx, prog.Decls); err != nil {
		return err
	}

	// Phase 1: signatures are visible to every body, in any order.
	for _, d := range prog.Decls {
		d, ok := d.(*ast.DeclFun)
		if !ok {
			continue
		}
		if _, exists := st.functions[d.Name]; exists {
			return c.fail(d, types.NewError(types.ErrDuplicateFunctionDeclaration, "duplicate function "+d.Name))
		}
		t, err := c.signature(ctx, d)
		if err != nil {
			return err
		}
		st.functions[d.Name] = t
		ctx = ctx.WithVariable(d.Name, t)
	}

	main := prog.Func("main")
	if main == nil {
		return c.fail(nil, types.NewError(types.ErrMissingMain, "main function is not declared"))
	}
	if len(main.Params) != 1 {
		return c.fail(main, types.NewError(types.ErrIncorrectArityOfMain, "main must have exactly one parameter"))
	}

	// Phase 2
	for _, d := range prog.Decls {
		if d, ok := d.(*ast.DeclFun); ok {
			if err := c.checkFunction(ctx, d); err != nil {
				return err
			}
		}
	}

	return c.solve(ctx)
}

func (c *Checker) declareAlias(ctx Context, d *ast.DeclTypeAlias) error {
	if err := ctx.CheckExtension(ext.TypeAliases); err != nil {
		return c.fail(d, err)
	}
	t, err := c.resolveType(ctx, d.Type)
	if err != nil {
		return err
	}
	ctx.state.aliases[d.Name] = t
	return nil
}

// A declared exception type takes precedence over open variant declarations, which
// accumulate into one variant type.
func (c *Checker) declareExceptionType(ctx Context, decls []ast.Decl) error {
	var specific types.Type
	var variants []types.Field
	labels := set.New[string](0)
	for _, d := range decls {
		switch d := d.(type) {
		case *ast.DeclExceptionType:
			if err := ctx.CheckExtension(ext.ExceptionTypeDeclaration); err != nil {
				return c.fail(d, err)
			}
			t, err := c.resolveType(ctx, d.Type)
			if err != nil {
				return err
			}
			specific = t

		case *ast.DeclExceptionVariant:
			if err := ctx.CheckExtension(ext.OpenVariantExceptions); err != nil {
				return c.fail(d, err)
			}
			if !labels.Insert(d.Label) {
				return c.fail(d, types.NewError(types.ErrDuplicateVariantTypeFields, "duplicate exception variant "+d.Label))
			}
			t, err := c.resolveType(ctx, d.Type)
			if err != nil {
				return err
			}
			variants = append(variants, types.Field{Label: d.Label, Type: t})
		}
	}
	switch {
	case specific != nil:
		ctx.state.ExceptionType = specific
	case len(variants) != 0:
		ctx.state.ExceptionType = types.NewVariant(variants)
	}
	return nil
}

// Resolve the declared type of a function. Generic functions have universal types.
func (c *Checker) signature(ctx Context, d *ast.DeclFun) (types.Type, error) {
	if d.Generic {
		if err := ctx.CheckExtension(ext.UniversalTypes); err != nil {
			return nil, c.fail(d, err)
		}
		ctx = ctx.WithTypeVariables(d.TypeParams, d)
	}
	params := make([]types.Type, len(d.Params))
	for i, p := range d.Params {
		t, err := c.resolveType(ctx, p.Type)
		if err != nil {
			return nil, err
		}
		params[i] = t
	}
	var ret types.Type = types.Unit{}
	if d.Return != nil {
		t, err := c.resolveType(ctx, d.Return)
		if err != nil {
			return nil, err
		}
		ret = t
	}
	fn := types.NewFun(params, ret)
	if d.Generic {
		return types.NewForAll(d.TypeParams, fn), nil
	}
	return fn, nil
}

func (c *Checker) checkFunction(ctx Context, d *ast.DeclFun) error {
	if err := c.checkArity(ctx, d, len(d.Params)); err != nil {
		return err
	}
	t := ctx.state.functions[d.Name]
	if d.Generic {
		ctx = ctx.WithTypeVariables(d.TypeParams, d)
		t = t.(*types.ForAll).Body
	}
	fn := t.(*types.Fun)
	params := make([]match.Binding, len(d.Params))
	for i, p := range d.Params {
		params[i] = match.Binding{Name: p.Name, Type: fn.Params[i]}
	}
	body, err := c.checkExpr(ctx.EnterFunction(params, fn.Return), d.Body)
	if err != nil {
		return err
	}
	if err := ctx.CompareOrConstrain(fn.Return, body); err != nil {
		return c.fail(d.Body, err)
	}
	return nil
}

// Functions without parameters or with several parameters are extensions.
func (c *Checker) checkArity(ctx Context, node ast.Syntax, n int) error {
	var err error
	switch {
	case n == 0:
		err = ctx.CheckExtension(ext.NullaryFunctions)
	case n > 1:
		err = ctx.CheckExtension(ext.MultiparameterFunctions)
	}
	if err != nil {
		return c.fail(node, err)
	}
	return nil
}

// Solve the constraints of the pass, then check the exhaustiveness of every match against
// the solved type of its scrutinee.
func (c *Checker) solve(ctx Context) error {
	engine := ctx.state.Engine
	if err := engine.Solve(); err != nil {
		return c.fail(nil, err)
	}
	for _, pm := range ctx.state.postponed {
		t := engine.Substitute(pm.typ)
		ctx.state.logger.Debug("checking exhaustiveness", "type", types.TypeString(t), "cases", len(pm.slice))
		ok, err := pm.slice.Exhaustive(ctx, t)
		if err != nil {
			return c.fail(pm.node, err)
		}
		if !ok {
			err := types.Mismatch(types.ErrNonexhaustiveMatchPatterns, nil, t)
			err.Detail = "match patterns are not exhaustive"
			return c.fail(pm.node, err)
		}
	}
	if engine.Pending() != 0 {
		if err := engine.Solve(); err != nil {
			return c.fail(nil, err)
		}
	}
	return nil
}
