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

// Package construct provides shorthand constructors for types and syntax trees.
package construct

import (
	"github.com/wdamron/stella/ast"
	"github.com/wdamron/stella/types"
)

// Types

var (
	TNat  types.Type = types.Nat{}
	TBool types.Type = types.Bool{}
	TUnit types.Type = types.Unit{}
	TTop  types.Type = types.Top{}
	TBot  types.Type = types.Bottom{}
)

// Function type: `fn(Nat, Nat) -> Nat`
func TFun(params []types.Type, ret types.Type) *types.Fun {
	return types.NewFun(params, ret)
}

// Function type: `fn(Nat) -> Nat`
func TFun1(param types.Type, ret types.Type) *types.Fun {
	return types.NewFun([]types.Type{param}, ret)
}

// Tuple type: `{Nat, Bool}`
func TTuple(items ...types.Type) *types.Tuple {
	return types.NewTuple(items)
}

// Paired label and type. The type is nil for nullary variant labels.
func TField(label string, t types.Type) types.Field {
	return types.Field{Label: label, Type: t}
}

// Record type: `{a : Nat, b : Bool}`
func TRecord(fields ...types.Field) *types.Record {
	return types.NewRecord(fields)
}

// Variant type: `<| a : Nat, b |>`
func TVariant(fields ...types.Field) *types.Variant {
	return types.NewVariant(fields)
}

// List type: `[Nat]`
func TList(elem types.Type) *types.List {
	return types.NewList(elem)
}

// Reference type: `&Nat`
func TRef(elem types.Type) *types.Ref {
	return types.NewRef(elem)
}

// Sum type: `Nat + Bool`
func TSum(left, right types.Type) *types.Sum {
	return types.NewSum(left, right)
}

// Type variable with a De Bruijn index.
func TVar(name string, index int) *types.Var {
	return types.NewVar(name, 0, index)
}

// Universal type: `forall X. T`
func TForAll(names []string, body types.Type) *types.ForAll {
	return types.NewForAll(names, body)
}

// Type expressions:

func Nat() *ast.TypeNat { return &ast.TypeNat{} }

func Bool() *ast.TypeBool { return &ast.TypeBool{} }

func Unit() *ast.TypeUnit { return &ast.TypeUnit{} }

func Top() *ast.TypeTop { return &ast.TypeTop{} }

func Bot() *ast.TypeBottom { return &ast.TypeBottom{} }

// Placeholder type: `auto`
func Auto() *ast.TypeAuto { return &ast.TypeAuto{} }

// Type variable or alias: `X`
func TypeName(name string) *ast.TypeVar { return &ast.TypeVar{Name: name} }

// `forall X, Y. T`
func ForAll(names []string, t ast.TypeExpr) *ast.TypeForAll {
	return &ast.TypeForAll{Names: names, Type: t}
}

// `fn(T1, T2) -> R`
func Fn(params []ast.TypeExpr, ret ast.TypeExpr) *ast.TypeFun {
	return &ast.TypeFun{Params: params, Return: ret}
}

// `fn(T) -> R`
func Fn1(param ast.TypeExpr, ret ast.TypeExpr) *ast.TypeFun {
	return &ast.TypeFun{Params: []ast.TypeExpr{param}, Return: ret}
}

// `{T1, T2}`
func TupleOf(items ...ast.TypeExpr) *ast.TypeTuple {
	return &ast.TypeTuple{Items: items}
}

// Paired label and type expression. The type is nil for nullary variant labels.
func FieldOf(label string, t ast.TypeExpr) ast.FieldType {
	return ast.FieldType{Label: label, Type: t}
}

// `{a : T1, b : T2}`
func RecordOf(fields ...ast.FieldType) *ast.TypeRecord {
	return &ast.TypeRecord{Fields: fields}
}

// `<| a : T1, b |>`
func VariantOf(fields ...ast.FieldType) *ast.TypeVariant {
	return &ast.TypeVariant{Fields: fields}
}

// `[T]`
func ListOf(elem ast.TypeExpr) *ast.TypeList { return &ast.TypeList{Elem: elem} }

// `&T`
func RefOf(elem ast.TypeExpr) *ast.TypeRef { return &ast.TypeRef{Elem: elem} }

// `T1 + T2`
func SumOf(left, right ast.TypeExpr) *ast.TypeSum {
	return &ast.TypeSum{Left: left, Right: right}
}

// Expressions:

func True() *ast.ConstTrue { return &ast.ConstTrue{} }

func False() *ast.ConstFalse { return &ast.ConstFalse{} }

func UnitValue() *ast.ConstUnit { return &ast.ConstUnit{} }

// Natural literal
func Int(n int) *ast.ConstInt { return &ast.ConstInt{Value: n} }

// Memory address: `<0x01>`
func Memory(address string) *ast.ConstMemory { return &ast.ConstMemory{Address: address} }

// Variable
func Var(name string) *ast.Var { return &ast.Var{Name: name} }

// `if c then a else b`
func If(cond, then, els ast.Expr) *ast.If { return &ast.If{Cond: cond, Then: then, Else: els} }

// `a; b`
func Seq(first, second ast.Expr) *ast.Sequence { return &ast.Sequence{First: first, Second: second} }

// Paired pattern and value
func Bind(p ast.Pattern, value ast.Expr) ast.PatternBinding {
	return ast.PatternBinding{Pattern: p, Value: value}
}

// Let-binding of a variable: `let a = e in body`
func Let(name string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Bindings: []ast.PatternBinding{Bind(PVar(name), value)}, Body: body}
}

// Let-bindings of patterns: `let p1 = e1, p2 = e2 in body`
func LetPatterns(bindings []ast.PatternBinding, body ast.Expr) *ast.Let {
	return &ast.Let{Bindings: bindings, Body: body}
}

// `letrec p1 = e1 in body`
func LetRec(bindings []ast.PatternBinding, body ast.Expr) *ast.LetRec {
	return &ast.LetRec{Bindings: bindings, Body: body}
}

// `generic [X] e`
func Generic(params []string, body ast.Expr) *ast.TypeAbstraction {
	return &ast.TypeAbstraction{TypeParams: params, Body: body}
}

// `f[T1, T2]`
func Inst(f ast.Expr, args ...ast.TypeExpr) *ast.TypeApplication {
	return &ast.TypeApplication{Func: f, TypeArgs: args}
}

// Binary operation: `a + b`
func Op(op ast.BinaryOp, left, right ast.Expr) *ast.Binary {
	return &ast.Binary{Op: op, Left: left, Right: right}
}

// Builtin unary form: `succ(e)`
func Unary(op ast.UnaryOp, arg ast.Expr) *ast.Unary { return &ast.Unary{Op: op, Arg: arg} }

func Succ(arg ast.Expr) *ast.Unary { return Unary(ast.OpSucc, arg) }

// `e as T`
func Asc(e ast.Expr, t ast.TypeExpr) *ast.TypeAsc { return &ast.TypeAsc{Expr: e, Type: t} }

// `e cast as T`
func Cast(e ast.Expr, t ast.TypeExpr) *ast.TypeCast { return &ast.TypeCast{Expr: e, Type: t} }

// Named and typed parameter
func Param(name string, t ast.TypeExpr) ast.Param { return ast.Param{Name: name, Type: t} }

// Abstraction: `fn(x : Nat, y : Nat) { return e }`
func Lambda(params []ast.Param, body ast.Expr) *ast.Abstraction {
	return &ast.Abstraction{Params: params, Body: body}
}

// Abstraction: `fn(x : Nat) { return e }`
func Lambda1(name string, t ast.TypeExpr, body ast.Expr) *ast.Abstraction {
	return &ast.Abstraction{Params: []ast.Param{Param(name, t)}, Body: body}
}

// Variant: `<| a = e |>`. The value is nil for nullary labels.
func Variant(label string, value ast.Expr) *ast.Variant {
	return &ast.Variant{Label: label, Value: value}
}

// Case within Match: `p => e`
func Case(p ast.Pattern, body ast.Expr) ast.MatchCase { return ast.MatchCase{Pattern: p, Body: body} }

// Pattern-matching:
//
//  match e {
//      p1 => e1
//    | p2 => e2
//  }
func Match(scrutinee ast.Expr, cases ...ast.MatchCase) *ast.Match {
	return &ast.Match{Scrutinee: scrutinee, Cases: cases}
}

// `[a, b, c]`
func List(items ...ast.Expr) *ast.List { return &ast.List{Items: items} }

// `cons(h, t)`
func Cons(head, tail ast.Expr) *ast.ConsList { return &ast.ConsList{Head: head, Tail: tail} }

// Application: `f(x, y)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Application {
	return &ast.Application{Func: f, Args: args}
}

// `r.a`
func Dot(record ast.Expr, label string) *ast.DotRecord {
	return &ast.DotRecord{Expr: record, Label: label}
}

// `t.1`
func Nth(tuple ast.Expr, index int) *ast.DotTuple { return &ast.DotTuple{Expr: tuple, Index: index} }

// `{a, b}`
func Tuple(items ...ast.Expr) *ast.Tuple { return &ast.Tuple{Items: items} }

// Paired label and value
func Field(label string, value ast.Expr) ast.Binding { return ast.Binding{Name: label, Value: value} }

// `{a = e1, b = e2}`
func Record(fields ...ast.Binding) *ast.Record { return &ast.Record{Bindings: fields} }

func Inl(e ast.Expr) *ast.Inl { return &ast.Inl{Expr: e} }

func Inr(e ast.Expr) *ast.Inr { return &ast.Inr{Expr: e} }

func Fix(e ast.Expr) *ast.Fix { return &ast.Fix{Expr: e} }

// `Nat::rec(n, z, s)`
func NatRec(n, initial, step ast.Expr) *ast.NatRec {
	return &ast.NatRec{N: n, Initial: initial, Step: step}
}

// `new(e)`
func New(e ast.Expr) *ast.Ref { return &ast.Ref{Expr: e} }

// `*e`
func Deref(e ast.Expr) *ast.Deref { return &ast.Deref{Expr: e} }

// `r := e`
func Assign(target, value ast.Expr) *ast.Assign { return &ast.Assign{Target: target, Value: value} }

func Panic() *ast.Panic { return &ast.Panic{} }

func Throw(e ast.Expr) *ast.Throw { return &ast.Throw{Expr: e} }

// `try { a } with { b }`
func TryWith(try, fallback ast.Expr) *ast.TryWith { return &ast.TryWith{Try: try, Fallback: fallback} }

// `try { a } catch { p => b }`
func TryCatch(try ast.Expr, p ast.Pattern, catch ast.Expr) *ast.TryCatch {
	return &ast.TryCatch{Try: try, Pattern: p, Catch: catch}
}

// `try { e } cast as T { p => a } with { b }`
func TryCastAs(e ast.Expr, t ast.TypeExpr, p ast.Pattern, body, fallback ast.Expr) *ast.TryCastAs {
	return &ast.TryCastAs{Expr: e, Type: t, Pattern: p, Body: body, Fallback: fallback}
}

// Patterns:

func PVar(name string) *ast.PatternVar { return &ast.PatternVar{Name: name} }

func PTrue() *ast.PatternTrue { return &ast.PatternTrue{} }

func PFalse() *ast.PatternFalse { return &ast.PatternFalse{} }

func PUnit() *ast.PatternUnit { return &ast.PatternUnit{} }

func PInt(n int) *ast.PatternInt { return &ast.PatternInt{Value: n} }

func PSucc(p ast.Pattern) *ast.PatternSucc { return &ast.PatternSucc{Pattern: p} }

// `p as T`
func PAsc(p ast.Pattern, t ast.TypeExpr) *ast.PatternAsc { return &ast.PatternAsc{Pattern: p, Type: t} }

// `p cast as T`
func PCast(p ast.Pattern, t ast.TypeExpr) *ast.PatternCastAs {
	return &ast.PatternCastAs{Pattern: p, Type: t}
}

func PList(items ...ast.Pattern) *ast.PatternList { return &ast.PatternList{Items: items} }

func PCons(head, tail ast.Pattern) *ast.PatternCons { return &ast.PatternCons{Head: head, Tail: tail} }

// Paired label and pattern
func PField(label string, p ast.Pattern) ast.LabelledPattern {
	return ast.LabelledPattern{Label: label, Pattern: p}
}

func PRecord(fields ...ast.LabelledPattern) *ast.PatternRecord {
	return &ast.PatternRecord{Fields: fields}
}

func PTuple(items ...ast.Pattern) *ast.PatternTuple { return &ast.PatternTuple{Items: items} }

func PInl(p ast.Pattern) *ast.PatternInl { return &ast.PatternInl{Pattern: p} }

func PInr(p ast.Pattern) *ast.PatternInr { return &ast.PatternInr{Pattern: p} }

// `<| a = p |>`. The pattern is nil for nullary labels.
func PVariant(label string, p ast.Pattern) *ast.PatternVariant {
	return &ast.PatternVariant{Label: label, Pattern: p}
}

// Declarations:

// Function declaration: `fn name(params) -> ret { return body }`
func Fun(name string, params []ast.Param, ret ast.TypeExpr, body ast.Expr) *ast.DeclFun {
	return &ast.DeclFun{Name: name, Params: params, Return: ret, Body: body}
}

// Function declaration with one parameter.
func Fun1(name, param string, t ast.TypeExpr, ret ast.TypeExpr, body ast.Expr) *ast.DeclFun {
	return Fun(name, []ast.Param{Param(param, t)}, ret, body)
}

// Generic function declaration: `generic fn name[X](params) -> ret { return body }`
func GenericFun(name string, typeParams []string, params []ast.Param, ret ast.TypeExpr, body ast.Expr) *ast.DeclFun {
	return &ast.DeclFun{Name: name, Generic: true, TypeParams: typeParams, Params: params, Return: ret, Body: body}
}

// `type Name = T`
func Alias(name string, t ast.TypeExpr) *ast.DeclTypeAlias {
	return &ast.DeclTypeAlias{Name: name, Type: t}
}

// `exception type = T`
func ExceptionType(t ast.TypeExpr) *ast.DeclExceptionType {
	return &ast.DeclExceptionType{Type: t}
}

// `exception variant label : T`
func ExceptionVariant(label string, t ast.TypeExpr) *ast.DeclExceptionVariant {
	return &ast.DeclExceptionVariant{Label: label, Type: t}
}

// Program with extension pragmas, which may be spelled with or without the leading '#'.
func Program(extensions []string, decls ...ast.Decl) *ast.Program {
	return &ast.Program{Extensions: extensions, Decls: decls}
}
