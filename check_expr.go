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
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/wdamron/stella/ast"
	"github.com/wdamron/stella/ext"
	"github.com/wdamron/stella/internal/match"
	"github.com/wdamron/stella/types"
)

var (
	tNat  types.Type = types.Nat{}
	tBool types.Type = types.Bool{}
	tUnit types.Type = types.Unit{}
)

// Check e with an expected type, which may be nil.
func (c *Checker) check(ctx Context, e ast.Expr, expected types.Type) (types.Type, error) {
	return c.checkExpr(ctx.WithExpectedType(expected), e)
}

// Check e and require its type to be usable where want is required.
func (c *Checker) checkAgainst(ctx Context, e ast.Expr, want types.Type) (types.Type, error) {
	t, err := c.check(ctx, e, want)
	if err != nil {
		return nil, err
	}
	if err := ctx.CompareOrConstrain(want, t); err != nil {
		return nil, c.fail(e, err)
	}
	return t, nil
}

// Require an extension for e.
func (c *Checker) gate(ctx Context, e ast.Syntax, x ext.Extension) error {
	if err := ctx.CheckExtension(x); err != nil {
		return c.fail(e, err)
	}
	return nil
}

// Get a type for an expression whose type cannot be synthesized: Bot if ambiguous types are
// taken as Bot, a fresh placeholder if types are reconstructed, or else an error.
func (c *Checker) ambiguous(ctx Context, e ast.Expr, code types.ErrorCode, detail string) (types.Type, error) {
	switch {
	case ctx.HasExtension(ext.AmbiguousTypeAsBottom):
		return types.Bottom{}, nil
	case ctx.HasExtension(ext.TypeReconstruction):
		return ctx.Fresh(), nil
	}
	return nil, c.fail(e, types.NewError(code, detail))
}

// Synthesize the type of e, using the expected type of ctx as a hint.
func (c *Checker) checkExpr(ctx Context, e ast.Expr) (types.Type, error) {
	expected := ctx.Expected()

	switch e := e.(type) {
	case *ast.ConstTrue, *ast.ConstFalse:
		return tBool, nil

	case *ast.ConstInt:
		return tNat, nil

	case *ast.ConstUnit:
		if err := c.gate(ctx, e, ext.UnitType); err != nil {
			return nil, err
		}
		return tUnit, nil

	case *ast.ConstMemory:
		if err := c.gate(ctx, e, ext.References); err != nil {
			return nil, err
		}
		switch expected.(type) {
		case *types.Ref:
			return expected, nil
		case nil:
			return nil, c.fail(e, types.NewError(types.ErrAmbiguousReferenceType, "cannot infer the type of memory address "+e.Address))
		}
		return nil, c.fail(e, types.Mismatch(types.ErrUnexpectedMemoryAddress, expected, nil))

	case *ast.Var:
		t, ok := ctx.Lookup(e.Name)
		if !ok {
			return nil, c.fail(e, types.NewError(types.ErrUndefinedVariable, "undefined variable "+e.Name))
		}
		return ctx.Reshift(t), nil

	case *ast.If:
		if _, err := c.checkAgainst(ctx, e.Cond, tBool); err != nil {
			return nil, err
		}
		if expected != nil {
			if _, err := c.checkAgainst(ctx, e.Then, expected); err != nil {
				return nil, err
			}
			if _, err := c.checkAgainst(ctx, e.Else, expected); err != nil {
				return nil, err
			}
			return expected, nil
		}
		t, err := c.check(ctx, e.Then, nil)
		if err != nil {
			return nil, err
		}
		if _, err := c.checkAgainst(ctx, e.Else, t); err != nil {
			return nil, err
		}
		return t, nil

	case *ast.Sequence:
		if err := c.gate(ctx, e, ext.Sequencing); err != nil {
			return nil, err
		}
		if _, err := c.checkAgainst(ctx, e.First, tUnit); err != nil {
			return nil, err
		}
		return c.checkExpr(ctx, e.Second)

	case *ast.Let:
		return c.checkLet(ctx, e)

	case *ast.LetRec:
		return c.checkLetRec(ctx, e)

	case *ast.TypeAbstraction:
		if err := c.gate(ctx, e, ext.UniversalTypes); err != nil {
			return nil, err
		}
		var hint types.Type
		if all, ok := expected.(*types.ForAll); ok && len(all.Names) == len(e.TypeParams) {
			hint = all.Body
		}
		body, err := c.check(ctx.WithTypeVariables(e.TypeParams, e), e.Body, hint)
		if err != nil {
			return nil, err
		}
		return types.NewForAll(e.TypeParams, body), nil

	case *ast.TypeApplication:
		if err := c.gate(ctx, e, ext.UniversalTypes); err != nil {
			return nil, err
		}
		t, err := c.check(ctx, e.Func, nil)
		if err != nil {
			return nil, err
		}
		all, ok := t.(*types.ForAll)
		if !ok {
			return nil, c.fail(e, types.Mismatch(types.ErrNotAGenericFunction, nil, t))
		}
		args, err := c.resolveTypes(ctx, e.TypeArgs)
		if err != nil {
			return nil, err
		}
		reified, err := all.Reify(args)
		if err != nil {
			return nil, c.fail(e, err)
		}
		return reified, nil

	case *ast.Binary:
		return c.checkBinary(ctx, e)

	case *ast.Unary:
		return c.checkUnary(ctx, e)

	case *ast.TypeAsc:
		if err := c.gate(ctx, e, ext.TypeAscriptions); err != nil {
			return nil, err
		}
		asc, err := c.resolveType(ctx, e.Type)
		if err != nil {
			return nil, err
		}
		if _, err := c.checkAgainst(ctx, e.Expr, asc); err != nil {
			return nil, err
		}
		return asc, nil

	case *ast.TypeCast:
		if err := c.gate(ctx, e, ext.TypeCast); err != nil {
			return nil, err
		}
		if _, err := c.check(ctx, e.Expr, nil); err != nil {
			return nil, err
		}
		return c.resolveType(ctx, e.Type)

	case *ast.Abstraction:
		return c.checkAbstraction(ctx, e)

	case *ast.Variant:
		return c.checkVariant(ctx, e)

	case *ast.Match:
		return c.checkMatch(ctx, e)

	case *ast.List:
		return c.checkList(ctx, e)

	case *ast.ConsList:
		if err := c.gate(ctx, e, ext.Lists); err != nil {
			return nil, err
		}
		var elem types.Type
		if list, ok := expected.(*types.List); ok {
			elem = list.Elem
		}
		head, err := c.check(ctx, e.Head, elem)
		if err != nil {
			return nil, err
		}
		if elem == nil {
			elem = head
		} else if err := ctx.CompareOrConstrain(elem, head); err != nil {
			return nil, c.fail(e.Head, err)
		}
		list := types.NewList(elem)
		if _, err := c.checkAgainst(ctx, e.Tail, list); err != nil {
			return nil, err
		}
		return list, nil

	case *ast.Application:
		return c.checkApplication(ctx, e)

	case *ast.DotRecord:
		if err := c.gate(ctx, e, ext.Records); err != nil {
			return nil, err
		}
		t, err := c.check(ctx, e.Expr, nil)
		if err != nil {
			return nil, err
		}
		rec, ok := t.(*types.Record)
		if !ok {
			return nil, c.fail(e, types.Mismatch(types.ErrNotARecord, nil, t))
		}
		field, ok := rec.Field(e.Label)
		if !ok {
			err := types.Mismatch(types.ErrUnexpectedFieldAccess, nil, t)
			err.Detail = "record has no field " + e.Label
			return nil, c.fail(e, err)
		}
		return field, nil

	case *ast.DotTuple:
		if err := ctx.CheckAnyExtension(ext.Tuples, ext.Pairs); err != nil {
			return nil, c.fail(e, err)
		}
		t, err := c.check(ctx, e.Expr, nil)
		if err != nil {
			return nil, err
		}
		var tup *types.Tuple
		switch tt := t.(type) {
		case *types.Tuple:
			tup = tt
		case *types.Auto:
			if ctx.HasExtension(ext.Tuples) {
				return nil, c.fail(e, types.NewError(types.ErrAmbiguousPatternType, "cannot infer the length of a tuple"))
			}
			tup = types.NewTuple([]types.Type{ctx.Fresh(), ctx.Fresh()})
			ctx.Constrain(t, tup)
		default:
			return nil, c.fail(e, types.Mismatch(types.ErrNotATuple, nil, t))
		}
		if e.Index < 1 || e.Index > len(tup.Items) {
			err := types.Mismatch(types.ErrTupleIndexOutOfBounds, nil, t)
			err.Detail = "no component " + strconv.Itoa(e.Index)
			return nil, c.fail(e, err)
		}
		return tup.Items[e.Index-1], nil

	case *ast.Tuple:
		return c.checkTuple(ctx, e)

	case *ast.Record:
		return c.checkRecord(ctx, e)

	case *ast.Inl:
		return c.checkInjection(ctx, e, e.Expr, true)

	case *ast.Inr:
		return c.checkInjection(ctx, e, e.Expr, false)

	case *ast.Fix:
		if err := c.gate(ctx, e, ext.FixpointCombinator); err != nil {
			return nil, err
		}
		var hint types.Type
		if expected != nil {
			hint = types.NewFun([]types.Type{expected}, expected)
		}
		t, err := c.check(ctx, e.Expr, hint)
		if err != nil {
			return nil, err
		}
		switch fn := t.(type) {
		case *types.Fun:
			if len(fn.Params) != 1 {
				return nil, c.fail(e, types.Mismatch(types.ErrIncorrectNumberOfArguments, nil, fn))
			}
			if err := ctx.CompareOrConstrain(fn.Params[0], fn.Return); err != nil {
				return nil, c.fail(e, err)
			}
			return fn.Return, nil
		case *types.Auto:
			a := ctx.Fresh()
			ctx.Constrain(fn, types.NewFun([]types.Type{a}, a))
			return a, nil
		}
		return nil, c.fail(e, types.Mismatch(types.ErrNotAFunction, nil, t))

	case *ast.NatRec:
		if _, err := c.checkAgainst(ctx, e.N, tNat); err != nil {
			return nil, err
		}
		t, err := c.check(ctx, e.Initial, expected)
		if err != nil {
			return nil, err
		}
		step := types.NewFun([]types.Type{tNat}, types.NewFun([]types.Type{t}, t))
		if _, err := c.checkAgainst(ctx, e.Step, step); err != nil {
			return nil, err
		}
		return t, nil

	case *ast.Ref:
		if err := c.gate(ctx, e, ext.References); err != nil {
			return nil, err
		}
		if ref, ok := expected.(*types.Ref); ok {
			if _, err := c.checkAgainst(ctx, e.Expr, ref.Elem); err != nil {
				return nil, err
			}
			return ref, nil
		}
		t, err := c.check(ctx, e.Expr, nil)
		if err != nil {
			return nil, err
		}
		return types.NewRef(t), nil

	case *ast.Deref:
		if err := c.gate(ctx, e, ext.References); err != nil {
			return nil, err
		}
		var hint types.Type
		if expected != nil {
			hint = types.NewRef(expected)
		}
		t, err := c.check(ctx, e.Expr, hint)
		if err != nil {
			return nil, err
		}
		ref, err := c.refOf(ctx, e, t)
		if err != nil {
			return nil, err
		}
		return ref.Elem, nil

	case *ast.Assign:
		return c.checkAssign(ctx, e)

	case *ast.Panic:
		if err := c.gate(ctx, e, ext.Panic); err != nil {
			return nil, err
		}
		if expected != nil {
			return expected, nil
		}
		return c.ambiguous(ctx, e, types.ErrAmbiguousPanicType, "cannot infer the type of panic")

	case *ast.Throw:
		if err := c.gate(ctx, e, ext.Exceptions); err != nil {
			return nil, err
		}
		exc, err := c.exceptionType(ctx, e)
		if err != nil {
			return nil, err
		}
		if _, err := c.checkAgainst(ctx, e.Expr, exc); err != nil {
			return nil, err
		}
		if expected != nil {
			return expected, nil
		}
		return c.ambiguous(ctx, e, types.ErrAmbiguousThrowType, "cannot infer the type of throw")

	case *ast.TryWith:
		if err := c.gate(ctx, e, ext.Exceptions); err != nil {
			return nil, err
		}
		t, err := c.checkResult(ctx, e.Try)
		if err != nil {
			return nil, err
		}
		if _, err := c.checkAgainst(ctx, e.Fallback, t); err != nil {
			return nil, err
		}
		return t, nil

	case *ast.TryCatch:
		if err := c.gate(ctx, e, ext.Exceptions); err != nil {
			return nil, err
		}
		exc, err := c.exceptionType(ctx, e)
		if err != nil {
			return nil, err
		}
		t, err := c.checkResult(ctx, e.Try)
		if err != nil {
			return nil, err
		}
		_, bindings, err := c.bindPattern(ctx, e.Pattern, exc)
		if err != nil {
			return nil, err
		}
		if _, err := c.checkAgainst(ctx.WithVariables(bindings), e.Catch, t); err != nil {
			return nil, err
		}
		return t, nil

	case *ast.TryCastAs:
		if err := c.gate(ctx, e, ext.TryCastAs); err != nil {
			return nil, err
		}
		target, err := c.resolveType(ctx, e.Type)
		if err != nil {
			return nil, err
		}
		if _, err := c.check(ctx, e.Expr, nil); err != nil {
			return nil, err
		}
		_, bindings, err := c.bindPattern(ctx, e.Pattern, target)
		if err != nil {
			return nil, err
		}
		t, err := c.checkResult(ctx.WithVariables(bindings), e.Body)
		if err != nil {
			return nil, err
		}
		if _, err := c.checkAgainst(ctx, e.Fallback, t); err != nil {
			return nil, err
		}
		return t, nil
	}

	return nil, c.fail(e, types.NewError(types.ErrUnknown, "unhandled expression"))
}

// Check e against the expected type of ctx if there is one. The result is the expected type,
// or else the synthesized type of e.
func (c *Checker) checkResult(ctx Context, e ast.Expr) (types.Type, error) {
	expected := ctx.Expected()
	if expected == nil {
		return c.checkExpr(ctx, e)
	}
	if _, err := c.checkAgainst(ctx, e, expected); err != nil {
		return nil, err
	}
	return expected, nil
}

func (c *Checker) exceptionType(ctx Context, e ast.Expr) (types.Type, error) {
	if ctx.state.ExceptionType == nil {
		return nil, c.fail(e, types.NewError(types.ErrExceptionTypeNotDeclared, "exception type is not declared"))
	}
	return ctx.state.ExceptionType, nil
}

func (c *Checker) checkLet(ctx Context, e *ast.Let) (types.Type, error) {
	if err := c.gate(ctx, e, ext.LetBindings); err != nil {
		return nil, err
	}
	var bindings []match.Binding
	for _, b := range e.Bindings {
		if _, ok := b.Pattern.(*ast.PatternVar); !ok {
			if err := c.gate(ctx, b.Pattern, ext.LetPatterns); err != nil {
				return nil, err
			}
		}
		t, err := c.check(ctx, b.Value, nil)
		if err != nil {
			return nil, err
		}
		_, bs, err := c.bindPattern(ctx, b.Pattern, t)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, bs...)
	}
	return c.checkExpr(ctx.WithVariables(bindings), e.Body)
}

// Every letrec binding is visible to every value, so values may be mutually recursive.
func (c *Checker) checkLetRec(ctx Context, e *ast.LetRec) (types.Type, error) {
	if err := c.gate(ctx, e, ext.LetrecBindings); err != nil {
		return nil, err
	}
	declared := make([]types.Type, len(e.Bindings))
	inner := ctx
	for i, b := range e.Bindings {
		t, bs, err := c.bindLetrecPattern(ctx, b.Pattern)
		if err != nil {
			return nil, err
		}
		declared[i] = t
		inner = inner.WithVariables(bs)
	}
	for i, b := range e.Bindings {
		if _, err := c.checkAgainst(inner, b.Value, declared[i]); err != nil {
			return nil, err
		}
	}
	return c.checkExpr(inner, e.Body)
}

func (c *Checker) checkBinary(ctx Context, e *ast.Binary) (types.Type, error) {
	var operand, result types.Type
	switch {
	case e.Op.IsArithmetic():
		if err := c.gate(ctx, e, ext.ArithmeticOperators); err != nil {
			return nil, err
		}
		operand, result = tNat, tNat
	case e.Op.IsComparison():
		if err := c.gate(ctx, e, ext.ComparisonOperations); err != nil {
			return nil, err
		}
		operand, result = tNat, tBool
	case e.Op == ast.OpEqual || e.Op == ast.OpNotEqual:
		if err := c.gate(ctx, e, ext.ComparisonOperations); err != nil {
			return nil, err
		}
		left, err := c.check(ctx, e.Left, nil)
		if err != nil {
			return nil, err
		}
		if _, err := c.checkAgainst(ctx, e.Right, left); err != nil {
			return nil, err
		}
		return tBool, nil
	default:
		operand, result = tBool, tBool
	}
	if _, err := c.checkAgainst(ctx, e.Left, operand); err != nil {
		return nil, err
	}
	if _, err := c.checkAgainst(ctx, e.Right, operand); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Checker) checkUnary(ctx Context, e *ast.Unary) (types.Type, error) {
	switch e.Op {
	case ast.OpSucc, ast.OpPred:
		if _, err := c.checkAgainst(ctx, e.Arg, tNat); err != nil {
			return nil, err
		}
		return tNat, nil

	case ast.OpIsZero:
		if _, err := c.checkAgainst(ctx, e.Arg, tNat); err != nil {
			return nil, err
		}
		return tBool, nil

	case ast.OpNot:
		if _, err := c.checkAgainst(ctx, e.Arg, tBool); err != nil {
			return nil, err
		}
		return tBool, nil
	}

	if err := c.gate(ctx, e, ext.Lists); err != nil {
		return nil, err
	}
	var hint types.Type
	switch e.Op {
	case ast.OpHead:
		if expected := ctx.Expected(); expected != nil {
			hint = types.NewList(expected)
		}
	case ast.OpTail:
		hint = ctx.Expected()
	}
	t, err := c.check(ctx, e.Arg, hint)
	if err != nil {
		return nil, err
	}
	list, err := c.listOf(ctx, e, t)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case ast.OpHead:
		return list.Elem, nil
	case ast.OpTail:
		return list, nil
	}
	return tBool, nil
}

// Require t to be a list type. A placeholder is constrained to a list of a fresh element type.
func (c *Checker) listOf(ctx Context, e ast.Expr, t types.Type) (*types.List, error) {
	switch tt := t.(type) {
	case *types.List:
		return tt, nil
	case *types.Auto:
		list := types.NewList(ctx.Fresh())
		ctx.Constrain(t, list)
		return list, nil
	}
	return nil, c.fail(e, types.Mismatch(types.ErrNotAList, nil, t))
}

// Require t to be a reference type. A placeholder is constrained to a reference to a fresh type.
func (c *Checker) refOf(ctx Context, e ast.Expr, t types.Type) (*types.Ref, error) {
	switch tt := t.(type) {
	case *types.Ref:
		return tt, nil
	case *types.Auto:
		ref := types.NewRef(ctx.Fresh())
		ctx.Constrain(t, ref)
		return ref, nil
	}
	return nil, c.fail(e, types.Mismatch(types.ErrNotAReference, nil, t))
}

func (c *Checker) checkAbstraction(ctx Context, e *ast.Abstraction) (types.Type, error) {
	if err := c.checkArity(ctx, e, len(e.Params)); err != nil {
		return nil, err
	}
	params := make([]match.Binding, len(e.Params))
	paramTypes := make([]types.Type, len(e.Params))
	for i, p := range e.Params {
		t, err := c.resolveType(ctx, p.Type)
		if err != nil {
			return nil, err
		}
		params[i], paramTypes[i] = match.Binding{Name: p.Name, Type: t}, t
	}

	var ret types.Type
	if fn, ok := ctx.Expected().(*types.Fun); ok {
		if len(fn.Params) != len(params) {
			err := types.Mismatch(types.ErrUnexpectedNumberOfParametersInLambda, fn, nil)
			err.Detail = "expected " + strconv.Itoa(len(fn.Params)) + " parameters"
			return nil, c.fail(e, err)
		}
		for i, declared := range paramTypes {
			want := fn.Params[i]
			switch {
			case types.Equal(want, declared):
			case want.HasPlaceholder() || declared.HasPlaceholder():
				ctx.Constrain(declared, want)
			case ctx.Subtyping() && types.AssignableFrom(declared, want):
			default:
				err := types.Mismatch(types.ErrUnexpectedTypeForParameter, want, declared)
				err.Detail = "parameter " + params[i].Name
				return nil, c.fail(e, err)
			}
		}
		ret = fn.Return
	}

	body, err := c.checkExpr(ctx.EnterFunction(params, ret), e.Body)
	if err != nil {
		return nil, err
	}
	if ret != nil {
		if err := ctx.CompareOrConstrain(ret, body); err != nil {
			return nil, c.fail(e.Body, err)
		}
	}
	return types.NewFun(paramTypes, body), nil
}

func (c *Checker) checkApplication(ctx Context, e *ast.Application) (types.Type, error) {
	t, err := c.check(ctx, e.Func, nil)
	if err != nil {
		return nil, err
	}
	switch fn := t.(type) {
	case *types.Fun:
		if len(fn.Params) != len(e.Args) {
			err := types.Mismatch(types.ErrIncorrectNumberOfArguments, fn, nil)
			err.Detail = "expected " + strconv.Itoa(len(fn.Params)) + " arguments"
			return nil, c.fail(e, err)
		}
		for i, arg := range e.Args {
			if _, err := c.checkAgainst(ctx, arg, fn.Params[i]); err != nil {
				return nil, err
			}
		}
		return fn.Return, nil

	case *types.Auto:
		args := make([]types.Type, len(e.Args))
		for i, arg := range e.Args {
			a, err := c.check(ctx, arg, nil)
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		ret := ctx.Fresh()
		ctx.Constrain(fn, types.NewFun(args, ret))
		return ret, nil
	}
	return nil, c.fail(e, types.Mismatch(types.ErrNotAFunction, nil, t))
}

func (c *Checker) checkVariant(ctx Context, e *ast.Variant) (types.Type, error) {
	if err := c.gate(ctx, e, ext.Variants); err != nil {
		return nil, err
	}
	expected := ctx.Expected()
	v, ok := expected.(*types.Variant)
	if !ok {
		switch {
		case expected != nil && expected.HasPlaceholder():
			return nil, c.fail(e, types.NewError(types.ErrAmbiguousVariantType, "cannot infer the variant type of label "+e.Label))
		case ctx.Subtyping():
			// the smallest variant type containing the label
			var payload types.Type
			if e.Value != nil {
				t, err := c.check(ctx, e.Value, nil)
				if err != nil {
					return nil, err
				}
				payload = t
			}
			return types.NewVariant([]types.Field{{Label: e.Label, Type: payload}}), nil
		case expected == nil:
			return nil, c.fail(e, types.NewError(types.ErrAmbiguousVariantType, "cannot infer the variant type of label "+e.Label))
		}
		return nil, c.fail(e, types.Mismatch(types.ErrUnexpectedVariant, expected, nil))
	}

	payload, ok := v.Field(e.Label)
	switch {
	case !ok:
		err := types.Mismatch(types.ErrUnexpectedVariantLabel, v, nil)
		err.Detail = "unexpected label " + e.Label
		return nil, c.fail(e, err)
	case payload == nil && e.Value != nil:
		err := types.Mismatch(types.ErrUnexpectedDataForNullaryLabel, v, nil)
		err.Detail = "label " + e.Label + " carries no data"
		return nil, c.fail(e, err)
	case payload != nil && e.Value == nil:
		err := types.Mismatch(types.ErrMissingDataForLabel, v, nil)
		err.Detail = "label " + e.Label + " carries data"
		return nil, c.fail(e, err)
	case payload != nil:
		if _, err := c.checkAgainst(ctx, e.Value, payload); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (c *Checker) checkMatch(ctx Context, e *ast.Match) (types.Type, error) {
	if len(e.Cases) == 0 {
		return nil, c.fail(e, types.NewError(types.ErrIllegalEmptyMatching, "match has no cases"))
	}
	scrutinee, err := c.check(ctx, e.Scrutinee, nil)
	if err != nil {
		return nil, err
	}
	result := ctx.Expected()
	slice := make(match.Slice, len(e.Cases))
	for i, mc := range e.Cases {
		p, bindings, err := c.bindPattern(ctx, mc.Pattern, scrutinee)
		if err != nil {
			return nil, err
		}
		slice[i] = p
		caseCtx := ctx.WithVariables(bindings)
		if result == nil {
			t, err := c.check(caseCtx, mc.Body, nil)
			if err != nil {
				return nil, err
			}
			result = t
			continue
		}
		if _, err := c.checkAgainst(caseCtx, mc.Body, result); err != nil {
			return nil, err
		}
	}
	ctx.state.postpone(e, scrutinee, slice)
	return result, nil
}

func (c *Checker) checkList(ctx Context, e *ast.List) (types.Type, error) {
	if err := c.gate(ctx, e, ext.Lists); err != nil {
		return nil, err
	}
	expected := ctx.Expected()
	var elem types.Type
	if list, ok := expected.(*types.List); ok {
		elem = list.Elem
	}

	if len(e.Items) == 0 {
		switch {
		case elem != nil:
			return expected, nil
		case expected == nil || (ctx.Subtyping() && expected == types.Type(types.Top{})):
			t, err := c.ambiguous(ctx, e, types.ErrAmbiguousList, "cannot infer the type of an empty list")
			if err != nil {
				return nil, err
			}
			return types.NewList(t), nil
		case expected.HasPlaceholder():
			return types.NewList(ctx.Fresh()), nil
		}
		return nil, c.fail(e, types.Mismatch(types.ErrUnexpectedList, expected, nil))
	}

	rest := e.Items
	if elem == nil {
		t, err := c.check(ctx, e.Items[0], nil)
		if err != nil {
			return nil, err
		}
		elem, rest = t, e.Items[1:]
	}
	for _, item := range rest {
		if _, err := c.checkAgainst(ctx, item, elem); err != nil {
			return nil, err
		}
	}
	return types.NewList(elem), nil
}

func (c *Checker) checkTuple(ctx Context, e *ast.Tuple) (types.Type, error) {
	if len(e.Items) == 2 {
		if err := ctx.CheckAnyExtension(ext.Tuples, ext.Pairs); err != nil {
			return nil, c.fail(e, err)
		}
	} else if err := c.gate(ctx, e, ext.Tuples); err != nil {
		return nil, err
	}
	var hints []types.Type
	if tup, ok := ctx.Expected().(*types.Tuple); ok {
		n := len(tup.Items)
		if len(e.Items) < n || (len(e.Items) > n && !ctx.Subtyping()) {
			err := types.Mismatch(types.ErrUnexpectedTupleLength, tup, nil)
			err.Detail = "expected " + strconv.Itoa(n) + " components"
			return nil, c.fail(e, err)
		}
		hints = tup.Items
	}
	items := make([]types.Type, len(e.Items))
	for i, item := range e.Items {
		var t types.Type
		var err error
		if i < len(hints) {
			t, err = c.checkAgainst(ctx, item, hints[i])
		} else {
			t, err = c.check(ctx, item, nil)
		}
		if err != nil {
			return nil, err
		}
		items[i] = t
	}
	return types.NewTuple(items), nil
}

func (c *Checker) checkRecord(ctx Context, e *ast.Record) (types.Type, error) {
	if err := c.gate(ctx, e, ext.Records); err != nil {
		return nil, err
	}
	labels := lo.Map(e.Bindings, func(b ast.Binding, _ int) string { return b.Name })
	if dups := lo.FindDuplicates(labels); len(dups) != 0 {
		return nil, c.fail(e, types.NewError(types.ErrDuplicateRecordFields, "duplicate record fields "+strings.Join(dups, ", ")))
	}
	rec, _ := ctx.Expected().(*types.Record)
	if rec != nil {
		missing := lo.Filter(rec.Labels(), func(l string, _ int) bool { return !lo.Contains(labels, l) })
		if len(missing) != 0 {
			err := types.Mismatch(types.ErrMissingRecordFields, rec, nil)
			err.Detail = "missing fields " + strings.Join(missing, ", ")
			return nil, c.fail(e, err)
		}
		if !ctx.Subtyping() {
			extra := lo.Filter(labels, func(l string, _ int) bool { return !rec.Has(l) })
			if len(extra) != 0 {
				err := types.Mismatch(types.ErrUnexpectedRecordFields, rec, nil)
				err.Detail = "unexpected fields " + strings.Join(extra, ", ")
				return nil, c.fail(e, err)
			}
		}
	}
	fields := make([]types.Field, len(e.Bindings))
	for i, b := range e.Bindings {
		var want, t types.Type
		var err error
		if rec != nil {
			want, _ = rec.Field(b.Name)
		}
		if want != nil {
			t, err = c.checkAgainst(ctx, b.Value, want)
		} else {
			t, err = c.check(ctx, b.Value, nil)
		}
		if err != nil {
			return nil, err
		}
		fields[i] = types.Field{Label: b.Name, Type: t}
	}
	return types.NewRecord(fields), nil
}

func (c *Checker) checkInjection(ctx Context, e, inner ast.Expr, left bool) (types.Type, error) {
	if err := c.gate(ctx, e, ext.SumTypes); err != nil {
		return nil, err
	}
	expected := ctx.Expected()
	if sum, ok := expected.(*types.Sum); ok {
		side := sum.Right
		if left {
			side = sum.Left
		}
		if _, err := c.checkAgainst(ctx, inner, side); err != nil {
			return nil, err
		}
		return sum, nil
	}

	var other types.Type
	switch {
	case expected != nil && expected.HasPlaceholder():
		other = ctx.Fresh()
	case expected == nil || (ctx.Subtyping() && expected == types.Type(types.Top{})):
		t, err := c.ambiguous(ctx, e, types.ErrAmbiguousSumType, "cannot infer the type of an injection")
		if err != nil {
			return nil, err
		}
		other = t
	default:
		return nil, c.fail(e, types.Mismatch(types.ErrUnexpectedInjection, expected, nil))
	}
	t, err := c.check(ctx, inner, nil)
	if err != nil {
		return nil, err
	}
	if left {
		return types.NewSum(t, other), nil
	}
	return types.NewSum(other, t), nil
}

// A memory address gets its type from the value assigned to it.
func (c *Checker) checkAssign(ctx Context, e *ast.Assign) (types.Type, error) {
	if err := c.gate(ctx, e, ext.References); err != nil {
		return nil, err
	}
	if _, ok := e.Target.(*ast.ConstMemory); ok {
		v, err := c.check(ctx, e.Value, nil)
		if err != nil {
			return nil, err
		}
		if _, err := c.check(ctx, e.Target, types.NewRef(v)); err != nil {
			return nil, err
		}
		return tUnit, nil
	}
	t, err := c.check(ctx, e.Target, nil)
	if err != nil {
		return nil, err
	}
	ref, err := c.refOf(ctx, e.Target, t)
	if err != nil {
		return nil, err
	}
	if _, err := c.checkAgainst(ctx, e.Value, ref.Elem); err != nil {
		return nil, err
	}
	return tUnit, nil
}
