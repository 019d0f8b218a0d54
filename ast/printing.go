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
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(expr Expr) string {
	var sb strings.Builder
	exprString(&sb, false, expr)
	return sb.String()
}

// PatternString returns a string representation of a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, p)
	return sb.String()
}

// TypeExprString returns a string representation of type syntax.
func TypeExprString(t TypeExpr) string {
	var sb strings.Builder
	typeExprString(&sb, false, t)
	return sb.String()
}

func exprList(sb *strings.Builder, exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			sb.WriteString(", ")
		}
		exprString(sb, false, e)
	}
}

func exprString(sb *strings.Builder, simple bool, expr Expr) {
	switch et := expr.(type) {
	case nil:
		sb.WriteString("<nil>")

	case *ConstTrue:
		sb.WriteString("true")
	case *ConstFalse:
		sb.WriteString("false")
	case *ConstUnit:
		sb.WriteString("unit")
	case *ConstInt:
		sb.WriteString(strconv.Itoa(et.Value))
	case *ConstMemory:
		sb.WriteString("<" + et.Address + ">")
	case *Var:
		sb.WriteString(et.Name)
	case *Panic:
		sb.WriteString("panic!")

	case *If:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		exprString(sb, false, et.Cond)
		sb.WriteString(" then ")
		exprString(sb, false, et.Then)
		sb.WriteString(" else ")
		exprString(sb, false, et.Else)
		if simple {
			sb.WriteByte(')')
		}

	case *Sequence:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.First)
		sb.WriteString("; ")
		exprString(sb, true, et.Second)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		letString(sb, simple, "let ", et.Bindings, et.Body)
	case *LetRec:
		letString(sb, simple, "letrec ", et.Bindings, et.Body)

	case *TypeAbstraction:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("generic [")
		sb.WriteString(strings.Join(et.TypeParams, ", "))
		sb.WriteString("] ")
		exprString(sb, true, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *TypeApplication:
		exprString(sb, true, et.Func)
		sb.WriteByte('[')
		for i, t := range et.TypeArgs {
			if i > 0 {
				sb.WriteString(", ")
			}
			typeExprString(sb, false, t)
		}
		sb.WriteByte(']')

	case *Binary:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(et.Op.String())
		sb.WriteByte(' ')
		exprString(sb, true, et.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *Unary:
		sb.WriteString(et.Op.String())
		sb.WriteByte('(')
		exprString(sb, false, et.Arg)
		sb.WriteByte(')')

	case *TypeAsc:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Expr)
		sb.WriteString(" as ")
		typeExprString(sb, false, et.Type)
		if simple {
			sb.WriteByte(')')
		}

	case *TypeCast:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Expr)
		sb.WriteString(" cast as ")
		typeExprString(sb, false, et.Type)
		if simple {
			sb.WriteByte(')')
		}

	case *Abstraction:
		sb.WriteString("fn(")
		for i, p := range et.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Name)
			sb.WriteString(" : ")
			typeExprString(sb, false, p.Type)
		}
		sb.WriteString(") { return ")
		exprString(sb, false, et.Body)
		sb.WriteString(" }")

	case *Variant:
		sb.WriteString("<| ")
		sb.WriteString(et.Label)
		if et.Value != nil {
			sb.WriteString(" = ")
			exprString(sb, false, et.Value)
		}
		sb.WriteString(" |>")

	case *Match:
		sb.WriteString("match ")
		exprString(sb, true, et.Scrutinee)
		sb.WriteString(" { ")
		for i, c := range et.Cases {
			if i > 0 {
				sb.WriteString(" | ")
			}
			patternString(sb, c.Pattern)
			sb.WriteString(" => ")
			exprString(sb, false, c.Body)
		}
		sb.WriteString(" }")

	case *List:
		sb.WriteByte('[')
		exprList(sb, et.Items)
		sb.WriteByte(']')

	case *ConsList:
		sb.WriteString("cons(")
		exprString(sb, false, et.Head)
		sb.WriteString(", ")
		exprString(sb, false, et.Tail)
		sb.WriteByte(')')

	case *Application:
		exprString(sb, true, et.Func)
		sb.WriteByte('(')
		exprList(sb, et.Args)
		sb.WriteByte(')')

	case *DotRecord:
		exprString(sb, true, et.Expr)
		sb.WriteByte('.')
		sb.WriteString(et.Label)

	case *DotTuple:
		exprString(sb, true, et.Expr)
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(et.Index))

	case *Tuple:
		sb.WriteByte('{')
		exprList(sb, et.Items)
		sb.WriteByte('}')

	case *Record:
		sb.WriteByte('{')
		for i, b := range et.Bindings {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(b.Name)
			sb.WriteString(" = ")
			exprString(sb, false, b.Value)
		}
		sb.WriteByte('}')

	case *Inl:
		call(sb, "inl", et.Expr)
	case *Inr:
		call(sb, "inr", et.Expr)
	case *Fix:
		call(sb, "fix", et.Expr)
	case *Ref:
		call(sb, "new", et.Expr)
	case *Throw:
		call(sb, "throw", et.Expr)

	case *NatRec:
		sb.WriteString("Nat::rec(")
		exprList(sb, []Expr{et.N, et.Initial, et.Step})
		sb.WriteByte(')')

	case *Deref:
		sb.WriteByte('*')
		exprString(sb, true, et.Expr)

	case *Assign:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Target)
		sb.WriteString(" := ")
		exprString(sb, true, et.Value)
		if simple {
			sb.WriteByte(')')
		}

	case *TryWith:
		sb.WriteString("try { ")
		exprString(sb, false, et.Try)
		sb.WriteString(" } with { ")
		exprString(sb, false, et.Fallback)
		sb.WriteString(" }")

	case *TryCatch:
		sb.WriteString("try { ")
		exprString(sb, false, et.Try)
		sb.WriteString(" } catch { ")
		patternString(sb, et.Pattern)
		sb.WriteString(" => ")
		exprString(sb, false, et.Catch)
		sb.WriteString(" }")

	case *TryCastAs:
		sb.WriteString("try { ")
		exprString(sb, false, et.Expr)
		sb.WriteString(" } cast as ")
		typeExprString(sb, false, et.Type)
		sb.WriteString(" { ")
		patternString(sb, et.Pattern)
		sb.WriteString(" => ")
		exprString(sb, false, et.Body)
		sb.WriteString(" } with { ")
		exprString(sb, false, et.Fallback)
		sb.WriteString(" }")

	default:
		sb.WriteString("<" + expr.ExprName() + ">")
	}
}

func call(sb *strings.Builder, name string, arg Expr) {
	sb.WriteString(name)
	sb.WriteByte('(')
	exprString(sb, false, arg)
	sb.WriteByte(')')
}

func letString(sb *strings.Builder, simple bool, keyword string, bindings []PatternBinding, body Expr) {
	if simple {
		sb.WriteByte('(')
	}
	sb.WriteString(keyword)
	for i, b := range bindings {
		if i > 0 {
			sb.WriteString(", ")
		}
		patternString(sb, b.Pattern)
		sb.WriteString(" = ")
		exprString(sb, false, b.Value)
	}
	sb.WriteString(" in ")
	exprString(sb, false, body)
	if simple {
		sb.WriteByte(')')
	}
}

func patternList(sb *strings.Builder, ps []Pattern) {
	for i, p := range ps {
		if i > 0 {
			sb.WriteString(", ")
		}
		patternString(sb, p)
	}
}

func patternString(sb *strings.Builder, p Pattern) {
	switch pt := p.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *PatternVar:
		sb.WriteString(pt.Name)
	case *PatternTrue:
		sb.WriteString("true")
	case *PatternFalse:
		sb.WriteString("false")
	case *PatternUnit:
		sb.WriteString("unit")
	case *PatternInt:
		sb.WriteString(strconv.Itoa(pt.Value))
	case *PatternSucc:
		sb.WriteString("succ(")
		patternString(sb, pt.Pattern)
		sb.WriteByte(')')
	case *PatternAsc:
		patternString(sb, pt.Pattern)
		sb.WriteString(" as ")
		typeExprString(sb, false, pt.Type)
	case *PatternCastAs:
		patternString(sb, pt.Pattern)
		sb.WriteString(" cast as ")
		typeExprString(sb, false, pt.Type)
	case *PatternList:
		sb.WriteByte('[')
		patternList(sb, pt.Items)
		sb.WriteByte(']')
	case *PatternCons:
		sb.WriteString("cons(")
		patternList(sb, []Pattern{pt.Head, pt.Tail})
		sb.WriteByte(')')
	case *PatternRecord:
		sb.WriteByte('{')
		for i, f := range pt.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Label)
			sb.WriteString(" = ")
			patternString(sb, f.Pattern)
		}
		sb.WriteByte('}')
	case *PatternTuple:
		sb.WriteByte('{')
		patternList(sb, pt.Items)
		sb.WriteByte('}')
	case *PatternInl:
		sb.WriteString("inl(")
		patternString(sb, pt.Pattern)
		sb.WriteByte(')')
	case *PatternInr:
		sb.WriteString("inr(")
		patternString(sb, pt.Pattern)
		sb.WriteByte(')')
	case *PatternVariant:
		sb.WriteString("<| ")
		sb.WriteString(pt.Label)
		if pt.Pattern != nil {
			sb.WriteString(" = ")
			patternString(sb, pt.Pattern)
		}
		sb.WriteString(" |>")
	default:
		sb.WriteString("<" + p.PatternName() + ">")
	}
}

func typeExprString(sb *strings.Builder, simple bool, t TypeExpr) {
	switch tt := t.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *TypeNat:
		sb.WriteString("Nat")
	case *TypeBool:
		sb.WriteString("Bool")
	case *TypeUnit:
		sb.WriteString("Unit")
	case *TypeTop:
		sb.WriteString("Top")
	case *TypeBottom:
		sb.WriteString("Bot")
	case *TypeAuto:
		sb.WriteString("auto")
	case *TypeVar:
		sb.WriteString(tt.Name)
	case *TypeForAll:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("forall ")
		sb.WriteString(strings.Join(tt.Names, ", "))
		sb.WriteString(". ")
		typeExprString(sb, false, tt.Type)
		if simple {
			sb.WriteByte(')')
		}
	case *TypeFun:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fn(")
		for i, p := range tt.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			typeExprString(sb, false, p)
		}
		sb.WriteString(") -> ")
		typeExprString(sb, false, tt.Return)
		if simple {
			sb.WriteByte(')')
		}
	case *TypeTuple:
		sb.WriteByte('{')
		for i, it := range tt.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			typeExprString(sb, false, it)
		}
		sb.WriteByte('}')
	case *TypeRecord:
		sb.WriteByte('{')
		fieldTypesString(sb, tt.Fields)
		sb.WriteByte('}')
	case *TypeVariant:
		sb.WriteString("<| ")
		fieldTypesString(sb, tt.Fields)
		sb.WriteString(" |>")
	case *TypeList:
		sb.WriteByte('[')
		typeExprString(sb, false, tt.Elem)
		sb.WriteByte(']')
	case *TypeSum:
		if simple {
			sb.WriteByte('(')
		}
		typeExprString(sb, true, tt.Left)
		sb.WriteString(" + ")
		typeExprString(sb, true, tt.Right)
		if simple {
			sb.WriteByte(')')
		}
	case *TypeRef:
		sb.WriteByte('&')
		typeExprString(sb, true, tt.Elem)
	default:
		sb.WriteString("<" + t.TypeExprName() + ">")
	}
}

func fieldTypesString(sb *strings.Builder, fields []FieldType) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Label)
		if f.Type != nil {
			sb.WriteString(" : ")
			typeExprString(sb, false, f.Type)
		}
	}
}
