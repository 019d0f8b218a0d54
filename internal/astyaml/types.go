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

func decodeType(n *yaml.Node) (ast.TypeExpr, error) {
	node := pos(n)
	if n.Kind == yaml.ScalarNode {
		switch n.Value {
		case "Nat":
			return &ast.TypeNat{Node: node}, nil
		case "Bool":
			return &ast.TypeBool{Node: node}, nil
		case "Unit":
			return &ast.TypeUnit{Node: node}, nil
		case "Top":
			return &ast.TypeTop{Node: node}, nil
		case "Bot":
			return &ast.TypeBottom{Node: node}, nil
		case "auto":
			return &ast.TypeAuto{Node: node}, nil
		case "":
			return nil, errorf(n, "missing type")
		}
		return &ast.TypeVar{Node: node, Name: n.Value}, nil
	}

	key, v, err := single(n, "type")
	if err != nil {
		return nil, err
	}
	switch key {
	case "fn":
		items, err := sequence(v, "function type", 2)
		if err != nil {
			return nil, err
		}
		params, err := decodeTypeList(items[0], "parameter types")
		if err != nil {
			return nil, err
		}
		ret, err := decodeType(items[1])
		if err != nil {
			return nil, err
		}
		return &ast.TypeFun{Node: node, Params: params, Return: ret}, nil

	case "forall":
		items, err := sequence(v, "universal type", 2)
		if err != nil {
			return nil, err
		}
		vars, err := names(items[0], "type variables")
		if err != nil {
			return nil, err
		}
		body, err := decodeType(items[1])
		if err != nil {
			return nil, err
		}
		return &ast.TypeForAll{Node: node, Names: vars, Type: body}, nil

	case "tuple":
		items, err := decodeTypeList(v, "tuple type")
		if err != nil {
			return nil, err
		}
		return &ast.TypeTuple{Node: node, Items: items}, nil

	case "record":
		fields, err := decodeFieldTypes(v, "record type", false)
		if err != nil {
			return nil, err
		}
		return &ast.TypeRecord{Node: node, Fields: fields}, nil

	case "variant":
		fields, err := decodeFieldTypes(v, "variant type", true)
		if err != nil {
			return nil, err
		}
		return &ast.TypeVariant{Node: node, Fields: fields}, nil

	case "list":
		elem, err := decodeType(v)
		if err != nil {
			return nil, err
		}
		return &ast.TypeList{Node: node, Elem: elem}, nil

	case "ref":
		elem, err := decodeType(v)
		if err != nil {
			return nil, err
		}
		return &ast.TypeRef{Node: node, Elem: elem}, nil

	case "sum":
		items, err := sequence(v, "sum type", 2)
		if err != nil {
			return nil, err
		}
		sides, err := decodeTypes(items)
		if err != nil {
			return nil, err
		}
		return &ast.TypeSum{Node: node, Left: sides[0], Right: sides[1]}, nil
	}
	return nil, errorf(n, "unknown type %q", key)
}

func decodeTypeList(n *yaml.Node, what string) ([]ast.TypeExpr, error) {
	items, err := sequence(n, what, -1)
	if err != nil {
		return nil, err
	}
	return decodeTypes(items)
}

func decodeTypes(items []*yaml.Node) ([]ast.TypeExpr, error) {
	ts := make([]ast.TypeExpr, len(items))
	for i, item := range items {
		t, err := decodeType(item)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	return ts, nil
}

// Decode labelled types in mapping order. Null types are allowed for nullary variant labels.
func decodeFieldTypes(n *yaml.Node, what string, nullary bool) ([]ast.FieldType, error) {
	content, err := mapping(n, what)
	if err != nil {
		return nil, err
	}
	fields := make([]ast.FieldType, 0, len(content)/2)
	for i := 0; i < len(content); i += 2 {
		f := ast.FieldType{Label: content[i].Value}
		if v := content[i+1]; !nullary || !isNull(v) {
			if f.Type, err = decodeType(v); err != nil {
				return nil, err
			}
		}
		fields = append(fields, f)
	}
	return fields, nil
}
