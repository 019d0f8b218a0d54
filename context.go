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
	"log/slog"

	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/stella/ast"
	"github.com/wdamron/stella/ext"
	"github.com/wdamron/stella/internal/match"
	"github.com/wdamron/stella/internal/typeutil"
	"github.com/wdamron/stella/types"
)

var emptyVars = immutable.NewMap(nil)

// PersistentState is shared by every Context derived during one checking pass.
type PersistentState struct {
	// Type of exception values, or nil if the program declares none.
	ExceptionType types.Type
	Extensions    *set.Set[ext.Extension]
	Engine        *typeutil.Engine

	aliases   map[string]types.Type
	functions map[string]types.Type
	postponed []postponedMatch
	scopeIds  map[interface{}]int
	nextScope int
	logger    *slog.Logger
}

// Exhaustiveness of a match is checked after constraints are solved.
type postponedMatch struct {
	node  *ast.Match
	typ   types.Type
	slice match.Slice
}

func newPersistentState(extensions *set.Set[ext.Extension], logger *slog.Logger) *PersistentState {
	engine := typeutil.NewEngine()
	engine.Logger = logger
	return &PersistentState{
		Extensions: extensions,
		Engine:     engine,
		aliases:    make(map[string]types.Type),
		functions:  make(map[string]types.Type),
		scopeIds:   make(map[interface{}]int),
		logger:     logger,
	}
}

// Get the scope id for the owner of a type-variable scope, allocating it on first use.
// Owners are compared by identity.
func (s *PersistentState) scopeFor(owner interface{}) int {
	if id, ok := s.scopeIds[owner]; ok {
		return id
	}
	s.nextScope++
	s.scopeIds[owner] = s.nextScope
	return s.nextScope
}

func (s *PersistentState) postpone(node *ast.Match, t types.Type, slice match.Slice) {
	s.postponed = append(s.postponed, postponedMatch{node, t, slice})
}

// Type-variable scope introduced by a generic function, a type abstraction or a universal type.
type typeScope struct {
	id     int
	names  []string
	parent *typeScope
}

// Context is the lexical checking context of an expression.
//
// Contexts are values: deriving a context never modifies the original. All contexts derived
// during one checking pass share a PersistentState.
type Context struct {
	vars     *immutable.Map
	expected types.Type
	scope    *typeScope
	state    *PersistentState
}

func newContext(state *PersistentState) Context {
	return Context{vars: emptyVars, state: state}
}

// Get the state shared by all contexts of the checking pass.
func (ctx Context) State() *PersistentState { return ctx.state }

// Get the type expected of the current expression, or nil.
func (ctx Context) Expected() types.Type { return ctx.expected }

// Lookup the type of a variable.
func (ctx Context) Lookup(name string) (types.Type, bool) {
	t, ok := ctx.vars.Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

// Derive a context with the expected type replaced. The expected type may be nil.
func (ctx Context) WithExpectedType(t types.Type) Context {
	ctx.expected = t
	return ctx
}

// Derive a context with a variable added, shadowing any variable of the same name.
func (ctx Context) WithVariable(name string, t types.Type) Context {
	ctx.vars = ctx.vars.Set(name, t)
	return ctx
}

// Derive a context with variables added, shadowing any variables of the same names.
func (ctx Context) WithVariables(bindings []match.Binding) Context {
	vars := ctx.vars
	for _, b := range bindings {
		vars = vars.Set(b.Name, b.Type)
	}
	ctx.vars = vars
	return ctx
}

// Derive the context of a function body with its parameters in scope. The return type
// becomes the expected type.
func (ctx Context) EnterFunction(params []match.Binding, ret types.Type) Context {
	return ctx.WithVariables(params).WithExpectedType(ret)
}

// Derive a context with a scope of type variables. The scope id is memoized per owner, so
// entering the scope of the same owner again resolves names to the same variables.
func (ctx Context) WithTypeVariables(names []string, owner interface{}) Context {
	ctx.scope = &typeScope{id: ctx.state.scopeFor(owner), names: names, parent: ctx.scope}
	return ctx
}

// CreateMapping resolves a type-variable name to a variable indexed relative to the
// innermost scope.
func (ctx Context) CreateMapping(name string) (*types.Var, error) {
	offset := 0
	for s := ctx.scope; s != nil; s = s.parent {
		for i := len(s.names) - 1; i >= 0; i-- {
			if s.names[i] == name {
				return types.NewVar(name, s.id, offset+i), nil
			}
		}
		offset += len(s.names)
	}
	return nil, types.NewError(types.ErrUndefinedTypeVariable, "undefined type variable "+name)
}

// CheckMapping recomputes the index of a variable relative to the innermost scope, using
// the id of the scope which introduced it. It returns false if the scope is not in context.
func (ctx Context) CheckMapping(v *types.Var) (*types.Var, bool) {
	offset := 0
	for s := ctx.scope; s != nil; s = s.parent {
		if s.id == v.Scope {
			for i, name := range s.names {
				if name == v.Name {
					return types.NewVar(v.Name, s.id, offset+i), true
				}
			}
			return nil, false
		}
		offset += len(s.names)
	}
	return nil, false
}

// Reshift re-indexes the free type variables of t relative to the current scopes. Variables
// bound by universal types within t are unchanged.
func (ctx Context) Reshift(t types.Type) types.Type {
	if ctx.scope == nil {
		return t
	}
	return types.Transform(t, func(t types.Type, depth int) types.Type {
		v, ok := t.(*types.Var)
		if !ok {
			return nil
		}
		if v.Index < depth {
			return v
		}
		if m, ok := ctx.CheckMapping(v); ok {
			if m.Index+depth == v.Index {
				return v
			}
			return types.NewVar(v.Name, v.Scope, m.Index+depth)
		}
		return v
	})
}

// Check if an extension is enabled.
func (ctx Context) HasExtension(x ext.Extension) bool { return ctx.state.Extensions.Contains(x) }

// Require an extension to be enabled.
func (ctx Context) CheckExtension(x ext.Extension) error {
	if ctx.HasExtension(x) {
		return nil
	}
	return types.NewError(types.ErrExtensionIsDisabled, "extension #"+x.String()+" is disabled")
}

// Require at least one of the extensions to be enabled.
func (ctx Context) CheckAnyExtension(xs ...ext.Extension) error {
	for _, x := range xs {
		if ctx.HasExtension(x) {
			return nil
		}
	}
	return ctx.CheckExtension(xs[0])
}

// Allocate a fresh placeholder.
func (ctx Context) Fresh() *types.Auto { return ctx.state.Engine.Fresh() }

// Require a and b to be equal once placeholders are solved.
func (ctx Context) Constrain(a, b types.Type) { ctx.state.Engine.AddConstraint(a, b) }

// Check if structural subtyping is enabled.
func (ctx Context) Subtyping() bool { return ctx.HasExtension(ext.StructuralSubtyping) }

// CompareOrConstrain requires a value of type actual to be usable where expected is
// required. Types containing placeholders are constrained to be equal instead of compared.
// A nil expected type accepts any type.
func (ctx Context) CompareOrConstrain(expected, actual types.Type) error {
	if expected == nil || types.Equal(expected, actual) {
		return nil
	}
	if expected.HasPlaceholder() || actual.HasPlaceholder() {
		ctx.Constrain(actual, expected)
		return nil
	}
	if ctx.Subtyping() {
		if types.AssignableFrom(expected, actual) {
			return nil
		}
		return types.Mismatch(types.ErrUnexpectedSubtype, expected, actual)
	}
	return mismatch(expected, actual)
}

// Report a mismatch, naming the shape of the actual type if it differs from the expected shape.
func mismatch(expected, actual types.Type) error {
	code := types.ErrUnexpectedTypeForExpression
	if expected.TypeName() != actual.TypeName() {
		switch actual.(type) {
		case *types.Fun:
			code = types.ErrUnexpectedLambda
		case *types.Tuple:
			code = types.ErrUnexpectedTuple
		case *types.Record:
			code = types.ErrUnexpectedRecord
		case *types.List:
			code = types.ErrUnexpectedList
		case *types.Sum:
			code = types.ErrUnexpectedInjection
		case *types.Variant:
			code = types.ErrUnexpectedVariant
		case *types.Ref:
			code = types.ErrUnexpectedReference
		}
	}
	return types.Mismatch(code, expected, actual)
}

var _ match.Env = Context{}
