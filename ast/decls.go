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

package ast

// Decl is the base for all top-level declarations.
type Decl interface {
	DeclName() string
	Position() Pos
}

var (
	_ Decl = (*DeclFun)(nil)
	_ Decl = (*DeclTypeAlias)(nil)
	_ Decl = (*DeclExceptionType)(nil)
	_ Decl = (*DeclExceptionVariant)(nil)
)

// Function declaration: `fn f(x : Nat) -> Nat { return e }`
//
// Generic functions declare type parameters: `generic fn f[X](x : X) -> X { return x }`
type DeclFun struct {
	Node
	Name       string
	Generic    bool
	TypeParams []string
	Params     []Param
	// Return is nil when the declaration omits the return type, which defaults to Unit.
	Return TypeExpr
	Body   Expr
}

// `type Name = T`
type DeclTypeAlias struct {
	Node
	Name string
	Type TypeExpr
}

// `exception type = T`
type DeclExceptionType struct {
	Node
	Type TypeExpr
}

// `exception variant label : T`
type DeclExceptionVariant struct {
	Node
	Label string
	Type  TypeExpr
}

func (d *DeclFun) DeclName() string              { return "DeclFun" }
func (d *DeclTypeAlias) DeclName() string        { return "DeclTypeAlias" }
func (d *DeclExceptionType) DeclName() string    { return "DeclExceptionType" }
func (d *DeclExceptionVariant) DeclName() string { return "DeclExceptionVariant" }

// Program is a parsed Stella program: extension pragmas followed by declarations.
type Program struct {
	Extensions []string
	Decls      []Decl
}

// Get the function declaration named name, if any.
func (p *Program) Func(name string) *DeclFun {
	for _, d := range p.Decls {
		if f, ok := d.(*DeclFun); ok && f.Name == name {
			return f
		}
	}
	return nil
}
