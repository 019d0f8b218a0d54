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

import (
	"github.com/wdamron/stella/types"
)

// Pos is a 1-based line and column within the source program.
type Pos = types.Pos

// Node carries the source position of a syntax node.
type Node struct {
	Pos Pos
}

// Get the source position of the node.
func (n Node) Position() Pos { return n.Pos }

// Syntax is implemented by every expression, pattern, type and declaration node.
type Syntax interface {
	Position() Pos
}

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	Position() Pos
}

var (
	_ Expr = (*ConstTrue)(nil)
	_ Expr = (*ConstFalse)(nil)
	_ Expr = (*ConstUnit)(nil)
	_ Expr = (*ConstInt)(nil)
	_ Expr = (*ConstMemory)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Sequence)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*TypeAbstraction)(nil)
	_ Expr = (*TypeApplication)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Unary)(nil)
	_ Expr = (*TypeAsc)(nil)
	_ Expr = (*TypeCast)(nil)
	_ Expr = (*Abstraction)(nil)
	_ Expr = (*Variant)(nil)
	_ Expr = (*Match)(nil)
	_ Expr = (*List)(nil)
	_ Expr = (*ConsList)(nil)
	_ Expr = (*Application)(nil)
	_ Expr = (*DotRecord)(nil)
	_ Expr = (*DotTuple)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*Record)(nil)
	_ Expr = (*Inl)(nil)
	_ Expr = (*Inr)(nil)
	_ Expr = (*Fix)(nil)
	_ Expr = (*NatRec)(nil)
	_ Expr = (*Ref)(nil)
	_ Expr = (*Deref)(nil)
	_ Expr = (*Assign)(nil)
	_ Expr = (*Panic)(nil)
	_ Expr = (*Throw)(nil)
	_ Expr = (*TryWith)(nil)
	_ Expr = (*TryCatch)(nil)
	_ Expr = (*TryCastAs)(nil)
)

// `true`
type ConstTrue struct{ Node }

// `false`
type ConstFalse struct{ Node }

// `unit`
type ConstUnit struct{ Node }

// Natural literal: `0`, `42`
type ConstInt struct {
	Node
	Value int
}

// Memory address literal: `<0x01>`
type ConstMemory struct {
	Node
	Address string
}

// Variable
type Var struct {
	Node
	Name string
}

// `if c then a else b`
type If struct {
	Node
	Cond, Then, Else Expr
}

// Sequencing: `a; b`
type Sequence struct {
	Node
	First, Second Expr
}

// PatternBinding binds the value of an expression to a pattern: `p = e`
type PatternBinding struct {
	Pattern Pattern
	Value   Expr
}

// `let p1 = e1, p2 = e2 in body`
type Let struct {
	Node
	Bindings []PatternBinding
	Body     Expr
}

// `letrec p1 = e1 in body`
type LetRec struct {
	Node
	Bindings []PatternBinding
	Body     Expr
}

// `generic [X, Y] e`
type TypeAbstraction struct {
	Node
	TypeParams []string
	Body       Expr
}

// `f[Nat, Bool]`
type TypeApplication struct {
	Node
	Func     Expr
	TypeArgs []TypeExpr
}

// BinaryOp is a binary operator.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpLessThan
	OpLessThanOrEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpEqual
	OpNotEqual
	OpAnd
	OpOr
)

var binaryOpNames = [...]string{
	OpAdd:                "+",
	OpSubtract:           "-",
	OpMultiply:           "*",
	OpDivide:             "/",
	OpLessThan:           "<",
	OpLessThanOrEqual:    "<=",
	OpGreaterThan:        ">",
	OpGreaterThanOrEqual: ">=",
	OpEqual:              "==",
	OpNotEqual:           "!=",
	OpAnd:                "and",
	OpOr:                 "or",
}

func (op BinaryOp) String() string { return binaryOpNames[op] }

// ParseBinaryOp returns the operator spelled s.
func ParseBinaryOp(s string) (BinaryOp, bool) {
	for op, name := range binaryOpNames {
		if name == s {
			return BinaryOp(op), true
		}
	}
	return 0, false
}

// IsArithmetic reports whether op is an arithmetic operator over Nat.
func (op BinaryOp) IsArithmetic() bool { return op <= OpDivide }

// IsComparison reports whether op is an ordering comparison over Nat.
func (op BinaryOp) IsComparison() bool { return op >= OpLessThan && op <= OpGreaterThanOrEqual }

// `a + b`, `a < b`, `a == b`, `a and b`
type Binary struct {
	Node
	Op          BinaryOp
	Left, Right Expr
}

// UnaryOp is a builtin unary form.
type UnaryOp int

const (
	OpSucc UnaryOp = iota
	OpPred
	OpIsZero
	OpNot
	OpHead
	OpTail
	OpIsEmpty
)

var unaryOpNames = [...]string{
	OpSucc:    "succ",
	OpPred:    "Nat::pred",
	OpIsZero:  "Nat::iszero",
	OpNot:     "not",
	OpHead:    "List::head",
	OpTail:    "List::tail",
	OpIsEmpty: "List::isempty",
}

func (op UnaryOp) String() string { return unaryOpNames[op] }

// `succ(e)`, `List::head(e)`
type Unary struct {
	Node
	Op  UnaryOp
	Arg Expr
}

// Type ascription: `e as T`
type TypeAsc struct {
	Node
	Expr Expr
	Type TypeExpr
}

// Type cast: `e cast as T`
type TypeCast struct {
	Node
	Expr Expr
	Type TypeExpr
}

// Param is a named and typed function parameter.
type Param struct {
	Name string
	Type TypeExpr
}

// Abstraction: `fn(x : Nat) { return x }`
type Abstraction struct {
	Node
	Params []Param
	Body   Expr
}

// Variant: `<| a = e |>`. Value is nil for nullary labels.
type Variant struct {
	Node
	Label string
	Value Expr
}

// MatchCase is a pattern paired with the expression it selects.
type MatchCase struct {
	Pattern Pattern
	Body    Expr
}

// `match e { p1 => e1 | p2 => e2 }`
type Match struct {
	Node
	Scrutinee Expr
	Cases     []MatchCase
}

// `[a, b, c]`
type List struct {
	Node
	Items []Expr
}

// `cons(h, t)`
type ConsList struct {
	Node
	Head, Tail Expr
}

// Application: `f(x, y)`
type Application struct {
	Node
	Func Expr
	Args []Expr
}

// Record projection: `r.a`
type DotRecord struct {
	Node
	Expr  Expr
	Label string
}

// Tuple projection: `t.1`. Index is 1-based.
type DotTuple struct {
	Node
	Expr  Expr
	Index int
}

// `{a, b}`
type Tuple struct {
	Node
	Items []Expr
}

// Binding is a labelled record member: `a = e`
type Binding struct {
	Name  string
	Value Expr
}

// `{a = e1, b = e2}`
type Record struct {
	Node
	Bindings []Binding
}

// `inl(e)`
type Inl struct {
	Node
	Expr Expr
}

// `inr(e)`
type Inr struct {
	Node
	Expr Expr
}

// `fix(f)`
type Fix struct {
	Node
	Expr Expr
}

// `Nat::rec(n, z, s)`
type NatRec struct {
	Node
	N, Initial, Step Expr
}

// `new(e)`
type Ref struct {
	Node
	Expr Expr
}

// `*e`
type Deref struct {
	Node
	Expr Expr
}

// `r := e`
type Assign struct {
	Node
	Target, Value Expr
}

// `panic!`
type Panic struct{ Node }

// `throw(e)`
type Throw struct {
	Node
	Expr Expr
}

// `try { a } with { b }`
type TryWith struct {
	Node
	Try, Fallback Expr
}

// `try { a } catch { p => b }`
type TryCatch struct {
	Node
	Try     Expr
	Pattern Pattern
	Catch   Expr
}

// `try { e } cast as T { p => a } with { b }`
type TryCastAs struct {
	Node
	Expr     Expr
	Type     TypeExpr
	Pattern  Pattern
	Body     Expr
	Fallback Expr
}

func (e *ConstTrue) ExprName() string       { return "ConstTrue" }
func (e *ConstFalse) ExprName() string      { return "ConstFalse" }
func (e *ConstUnit) ExprName() string       { return "ConstUnit" }
func (e *ConstInt) ExprName() string        { return "ConstInt" }
func (e *ConstMemory) ExprName() string     { return "ConstMemory" }
func (e *Var) ExprName() string             { return "Var" }
func (e *If) ExprName() string              { return "If" }
func (e *Sequence) ExprName() string        { return "Sequence" }
func (e *Let) ExprName() string             { return "Let" }
func (e *LetRec) ExprName() string          { return "LetRec" }
func (e *TypeAbstraction) ExprName() string { return "TypeAbstraction" }
func (e *TypeApplication) ExprName() string { return "TypeApplication" }
func (e *Binary) ExprName() string          { return "Binary" }
func (e *Unary) ExprName() string           { return "Unary" }
func (e *TypeAsc) ExprName() string         { return "TypeAsc" }
func (e *TypeCast) ExprName() string        { return "TypeCast" }
func (e *Abstraction) ExprName() string     { return "Abstraction" }
func (e *Variant) ExprName() string         { return "Variant" }
func (e *Match) ExprName() string           { return "Match" }
func (e *List) ExprName() string            { return "List" }
func (e *ConsList) ExprName() string        { return "ConsList" }
func (e *Application) ExprName() string     { return "Application" }
func (e *DotRecord) ExprName() string       { return "DotRecord" }
func (e *DotTuple) ExprName() string        { return "DotTuple" }
func (e *Tuple) ExprName() string           { return "Tuple" }
func (e *Record) ExprName() string          { return "Record" }
func (e *Inl) ExprName() string             { return "Inl" }
func (e *Inr) ExprName() string             { return "Inr" }
func (e *Fix) ExprName() string             { return "Fix" }
func (e *NatRec) ExprName() string          { return "NatRec" }
func (e *Ref) ExprName() string             { return "Ref" }
func (e *Deref) ExprName() string           { return "Deref" }
func (e *Assign) ExprName() string          { return "Assign" }
func (e *Panic) ExprName() string           { return "Panic" }
func (e *Throw) ExprName() string           { return "Throw" }
func (e *TryWith) ExprName() string         { return "TryWith" }
func (e *TryCatch) ExprName() string        { return "TryCatch" }
func (e *TryCastAs) ExprName() string       { return "TryCastAs" }
