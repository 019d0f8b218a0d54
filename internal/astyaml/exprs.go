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

package astyaml

import (
	"gopkg.in/yaml.v3"

	"github.com/wdamron/stella/ast"
)

var unaryOps = map[string]ast.UnaryOp{
	"succ":    ast.OpSucc,
	"pred":    ast.OpPred,
	"iszero":  ast.OpIsZero,
	"not":     ast.OpNot,
	"head":    ast.OpHead,
	"tail":    ast.OpTail,
	"isempty": ast.OpIsEmpty,
}

// Scalars are literals, unit, panic! or variable names.
func decodeAtom(n *yaml.Node) (ast.Expr, error) {
	node := pos(n)
	switch n.ShortTag() {
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, errorf(n, "%v", err)
		}
		if b {
			return &ast.ConstTrue{Node: node}, nil
		}
		return &ast.ConstFalse{Node: node}, nil
	case "!!int":
		v, err := natural(n, "literal")
		if err != nil {
			return nil, err
		}
		return &ast.ConstInt{Node: node, Value: v}, nil
	case "!!null":
		return nil, errorf(n, "missing expression")
	}
	switch n.Value {
	case "unit":
		return &ast.ConstUnit{Node: node}, nil
	case "panic!":
		return &ast.Panic{Node: node}, nil
	}
	return &ast.Var{Node: node, Name: n.Value}, nil
}

func decodeExpr(n *yaml.Node) (ast.Expr, error) {
	if n.Kind == yaml.ScalarNode {
		return decodeAtom(n)
	}
	key, v, err := single(n, "expression")
	if err != nil {
		return nil, err
	}
	node := pos(n)

	if op, ok := ast.ParseBinaryOp(key); ok {
		operands, err := decodeExprs(v, key, 2)
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Node: node, Op: op, Left: operands[0], Right: operands[1]}, nil
	}
	if op, ok := unaryOps[key]; ok {
		arg, err := decodeExpr(v)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Node: node, Op: op, Arg: arg}, nil
	}

	switch key {
	case "memory":
		address, err := scalar(v, "memory address")
		if err != nil {
			return nil, err
		}
		return &ast.ConstMemory{Node: node, Address: address}, nil

	case "panic":
		return &ast.Panic{Node: node}, nil

	case "if":
		parts, err := decodeExprs(v, "if", 3)
		if err != nil {
			return nil, err
		}
		return &ast.If{Node: node, Cond: parts[0], Then: parts[1], Else: parts[2]}, nil

	case "seq":
		parts, err := decodeExprs(v, "sequence", 2)
		if err != nil {
			return nil, err
		}
		return &ast.Sequence{Node: node, First: parts[0], Second: parts[1]}, nil

	case "let", "letrec":
		bindings, body, err := decodeLet(v, key)
		if err != nil {
			return nil, err
		}
		if key == "letrec" {
			return &ast.LetRec{Node: node, Bindings: bindings, Body: body}, nil
		}
		return &ast.Let{Node: node, Bindings: bindings, Body: body}, nil

	case "generic":
		items, err := sequence(v, "type abstraction", 2)
		if err != nil {
			return nil, err
		}
		params, err := names(items[0], "type parameters")
		if err != nil {
			return nil, err
		}
		body, err := decodeExpr(items[1])
		if err != nil {
			return nil, err
		}
		return &ast.TypeAbstraction{Node: node, TypeParams: params, Body: body}, nil

	case "inst":
		items, err := sequence(v, "type application", -1)
		if err != nil {
			return nil, err
		}
		if len(items) < 2 {
			return nil, errorf(v, "type application needs a function and type arguments")
		}
		fn, err := decodeExpr(items[0])
		if err != nil {
			return nil, err
		}
		args, err := decodeTypes(items[1:])
		if err != nil {
			return nil, err
		}
		return &ast.TypeApplication{Node: node, Func: fn, TypeArgs: args}, nil

	case "as", "cast":
		items, err := sequence(v, key, 2)
		if err != nil {
			return nil, err
		}
		e, err := decodeExpr(items[0])
		if err != nil {
			return nil, err
		}
		t, err := decodeType(items[1])
		if err != nil {
			return nil, err
		}
		if key == "cast" {
			return &ast.TypeCast{Node: node, Expr: e, Type: t}, nil
		}
		return &ast.TypeAsc{Node: node, Expr: e, Type: t}, nil

	case "fn":
		items, err := sequence(v, "abstraction", 2)
		if err != nil {
			return nil, err
		}
		params, err := decodeParams(items[0])
		if err != nil {
			return nil, err
		}
		body, err := decodeExpr(items[1])
		if err != nil {
			return nil, err
		}
		return &ast.Abstraction{Node: node, Params: params, Body: body}, nil

	case "variant":
		label, payload, err := single(v, "variant")
		if err != nil {
			return nil, err
		}
		e := &ast.Variant{Node: node, Label: label}
		if !isNull(payload) {
			if e.Value, err = decodeExpr(payload); err != nil {
				return nil, err
			}
		}
		return e, nil

	case "match":
		items, err := sequence(v, "match", -1)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, errorf(v, "match needs a scrutinee")
		}
		scrutinee, err := decodeExpr(items[0])
		if err != nil {
			return nil, err
		}
		e := &ast.Match{Node: node, Scrutinee: scrutinee}
		for _, item := range items[1:] {
			p, body, err := decodeArm(item, "match case")
			if err != nil {
				return nil, err
			}
			e.Cases = append(e.Cases, ast.MatchCase{Pattern: p, Body: body})
		}
		return e, nil

	case "list":
		items, err := decodeExprs(v, "list", -1)
		if err != nil {
			return nil, err
		}
		return &ast.List{Node: node, Items: items}, nil

	case "cons":
		parts, err := decodeExprs(v, "cons", 2)
		if err != nil {
			return nil, err
		}
		return &ast.ConsList{Node: node, Head: parts[0], Tail: parts[1]}, nil

	case "call":
		parts, err := decodeExprs(v, "application", -1)
		if err != nil {
			return nil, err
		}
		if len(parts) == 0 {
			return nil, errorf(v, "application needs a function")
		}
		return &ast.Application{Node: node, Func: parts[0], Args: parts[1:]}, nil

	case "dot":
		items, err := sequence(v, "field access", 2)
		if err != nil {
			return nil, err
		}
		e, err := decodeExpr(items[0])
		if err != nil {
			return nil, err
		}
		label, err := scalar(items[1], "field label")
		if err != nil {
			return nil, err
		}
		return &ast.DotRecord{Node: node, Expr: e, Label: label}, nil

	case "nth":
		items, err := sequence(v, "tuple projection", 2)
		if err != nil {
			return nil, err
		}
		e, err := decodeExpr(items[0])
		if err != nil {
			return nil, err
		}
		index, err := natural(items[1], "tuple index")
		if err != nil {
			return nil, err
		}
		return &ast.DotTuple{Node: node, Expr: e, Index: index}, nil

	case "tuple":
		items, err := decodeExprs(v, "tuple", -1)
		if err != nil {
			return nil, err
		}
		return &ast.Tuple{Node: node, Items: items}, nil

	case "record":
		content, err := mapping(v, "record")
		if err != nil {
			return nil, err
		}
		e := &ast.Record{Node: node}
		for i := 0; i < len(content); i += 2 {
			value, err := decodeExpr(content[i+1])
			if err != nil {
				return nil, err
			}
			e.Bindings = append(e.Bindings, ast.Binding{Name: content[i].Value, Value: value})
		}
		return e, nil

	case "inl", "inr", "fix", "new", "deref", "throw":
		inner, err := decodeExpr(v)
		if err != nil {
			return nil, err
		}
		switch key {
		case "inl":
			return &ast.Inl{Node: node, Expr: inner}, nil
		case "inr":
			return &ast.Inr{Node: node, Expr: inner}, nil
		case "fix":
			return &ast.Fix{Node: node, Expr: inner}, nil
		case "new":
			return &ast.Ref{Node: node, Expr: inner}, nil
		case "deref":
			return &ast.Deref{Node: node, Expr: inner}, nil
		}
		return &ast.Throw{Node: node, Expr: inner}, nil

	case "natrec":
		parts, err := decodeExprs(v, "Nat::rec", 3)
		if err != nil {
			return nil, err
		}
		return &ast.NatRec{Node: node, N: parts[0], Initial: parts[1], Step: parts[2]}, nil

	case "assign":
		parts, err := decodeExprs(v, "assignment", 2)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Node: node, Target: parts[0], Value: parts[1]}, nil

	case "try-with":
		parts, err := decodeExprs(v, "try-with", 2)
		if err != nil {
			return nil, err
		}
		return &ast.TryWith{Node: node, Try: parts[0], Fallback: parts[1]}, nil

	case "try-catch":
		items, err := sequence(v, "try-catch", 2)
		if err != nil {
			return nil, err
		}
		try, err := decodeExpr(items[0])
		if err != nil {
			return nil, err
		}
		p, catch, err := decodeArm(items[1], "catch")
		if err != nil {
			return nil, err
		}
		return &ast.TryCatch{Node: node, Try: try, Pattern: p, Catch: catch}, nil

	case "try-cast":
		items, err := sequence(v, "try-cast", 4)
		if err != nil {
			return nil, err
		}
		e, err := decodeExpr(items[0])
		if err != nil {
			return nil, err
		}
		t, err := decodeType(items[1])
		if err != nil {
			return nil, err
		}
		p, body, err := decodeArm(items[2], "try-cast case")
		if err != nil {
			return nil, err
		}
		fallback, err := decodeExpr(items[3])
		if err != nil {
			return nil, err
		}
		return &ast.TryCastAs{Node: node, Expr: e, Type: t, Pattern: p, Body: body, Fallback: fallback}, nil
	}
	return nil, errorf(n, "unknown expression %q", key)
}

func decodeExprs(n *yaml.Node, what string, length int) ([]ast.Expr, error) {
	items, err := sequence(n, what, length)
	if err != nil {
		return nil, err
	}
	es := make([]ast.Expr, len(items))
	for i, item := range items {
		e, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		es[i] = e
	}
	return es, nil
}

// Decode a [pattern, expression] pair.
func decodeArm(n *yaml.Node, what string) (ast.Pattern, ast.Expr, error) {
	items, err := sequence(n, what, 2)
	if err != nil {
		return nil, nil, err
	}
	p, err := decodePattern(items[0])
	if err != nil {
		return nil, nil, err
	}
	e, err := decodeExpr(items[1])
	if err != nil {
		return nil, nil, err
	}
	return p, e, nil
}

// {bind: [[pattern, value], ...], in: body}
func decodeLet(n *yaml.Node, what string) ([]ast.PatternBinding, ast.Expr, error) {
	content, err := mapping(n, what)
	if err != nil {
		return nil, nil, err
	}
	var bindings []ast.PatternBinding
	var body ast.Expr
	for i := 0; i < len(content); i += 2 {
		k, v := content[i], content[i+1]
		switch k.Value {
		case "bind":
			items, err := sequence(v, "bindings", -1)
			if err != nil {
				return nil, nil, err
			}
			for _, item := range items {
				p, value, err := decodeArm(item, "binding")
				if err != nil {
					return nil, nil, err
				}
				bindings = append(bindings, ast.PatternBinding{Pattern: p, Value: value})
			}
		case "in":
			if body, err = decodeExpr(v); err != nil {
				return nil, nil, err
			}
		default:
			return nil, nil, errorf(k, "unknown %s key %q", what, k.Value)
		}
	}
	if len(bindings) == 0 || body == nil {
		return nil, nil, errorf(n, "%s needs bindings and a body", what)
	}
	return bindings, body, nil
}
