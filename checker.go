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
	"errors"
	"log/slog"

	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/stella/ast"
	"github.com/wdamron/stella/ext"
	"github.com/wdamron/stella/types"
)

// Checker is a reusable context for type checking programs.
//
// A checker cannot be used concurrently.
type Checker struct {
	registry   *ext.Registry
	logger     *slog.Logger
	needsReset bool

	state *PersistentState

	err     error
	invalid ast.Syntax
}

// Create a new checker. A checker may be reused for checking.
func NewChecker() *Checker { return &Checker{} }

// Check the program with a new checker.
func CheckProgram(prog *ast.Program) error { return NewChecker().Check(prog) }

// Set the registry used to resolve extension pragmas. The built-in registry is used by default.
func (c *Checker) SetRegistry(r *ext.Registry) { c.registry = r }

// Set the logger for debug output. The default logger is used if none is set.
func (c *Checker) SetLogger(l *slog.Logger) { c.logger = l }

func (c *Checker) reset() {
	c.state, c.err, c.invalid, c.needsReset = nil, nil, nil, false
}

// Reset the state of the checker. The checker will be reset automatically before checking.
func (c *Checker) Reset() {
	if !c.needsReset {
		return
	}
	c.reset()
}

// Get the error which caused checking to fail.
func (c *Checker) Error() error { return c.err }

// Get the node which caused checking to fail.
func (c *Checker) InvalidNode() ast.Syntax { return c.invalid }

// Get the extensions enabled for the last checked program.
func (c *Checker) Extensions() *set.Set[ext.Extension] {
	if c.state == nil {
		return nil
	}
	return c.state.Extensions
}

// Get the type of a function declared by the last checked program, with all solved
// placeholders substituted.
func (c *Checker) FuncType(name string) (types.Type, bool) {
	if c.state == nil {
		return nil, false
	}
	t, ok := c.state.functions[name]
	if !ok {
		return nil, false
	}
	return c.state.Engine.Substitute(t), true
}

// Check the program. The returned error is a *types.TypeError unless the program is nil.
func (c *Checker) Check(prog *ast.Program) error {
	if prog == nil {
		return errors.New("Empty program")
	}
	if c.needsReset {
		c.reset()
	}
	c.needsReset = true
	registry := c.registry
	if registry == nil {
		registry = ext.NewRegistry()
	}
	enabled, err := registry.Resolve(prog.Extensions)
	if err != nil {
		return c.fail(nil, err)
	}
	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}
	c.state = newPersistentState(enabled, logger)
	return c.checkProgram(newContext(c.state), prog)
}

// Record the first error of the pass and the node it was raised for.
func (c *Checker) fail(node ast.Syntax, err error) error {
	var te *types.TypeError
	if node != nil && errors.As(err, &te) && te.Node == "" {
		te.Node = nodeString(node)
		if !te.Pos.IsValid() {
			te.Pos = node.Position()
		}
	}
	if c.err == nil {
		c.err, c.invalid = err, node
	}
	return err
}

func nodeString(node ast.Syntax) string {
	switch node := node.(type) {
	case ast.Expr:
		return ast.ExprString(node)
	case ast.Pattern:
		return ast.PatternString(node)
	case ast.TypeExpr:
		return ast.TypeExprString(node)
	case *ast.DeclFun:
		return "fn " + node.Name
	case *ast.DeclTypeAlias:
		return "type " + node.Name
	case *ast.DeclExceptionType:
		return "exception type"
	case *ast.DeclExceptionVariant:
		return "exception variant " + node.Label
	}
	return ""
}
