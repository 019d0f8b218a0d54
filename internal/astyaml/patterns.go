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

func decodePattern(n *yaml.Node) (ast.Pattern, error) {
	node := pos(n)
	if n.Kind == yaml.ScalarNode {
		switch n.ShortTag() {
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, errorf(n, "%v", err)
			}
			if b {
				return &ast.PatternTrue{Node: node}, nil
			}
			return &ast.PatternFalse{Node: node}, nil
		case "!!int":
			v, err := natural(n, "pattern")
			if err != nil {
				return nil, err
			}
			return &ast.PatternInt{Node: node, Value: v}, nil
		case "!!null":
			return nil, errorf(n, "missing pattern")
		}
		if n.Value == "unit" {
			return &ast.PatternUnit{Node: node}, nil
		}
		return &ast.PatternVar{Node: node, Name: n.Value}, nil
	}

	key, v, err := single(n, "pattern")
	if err != nil {
		return nil, err
	}
	switch key {
	case "succ", "inl", "inr":
		inner, err := decodePattern(v)
		if err != nil {
			return nil, err
		}
		switch key {
		case "succ":
			return &ast.PatternSucc{Node: node, Pattern: inner}, nil
		case "inl":
			return &ast.PatternInl{Node: node, Pattern: inner}, nil
		}
		return &ast.PatternInr{Node: node, Pattern: inner}, nil

	case "as", "cast":
		items, err := sequence(v, key+" pattern", 2)
		if err != nil {
			return nil, err
		}
		inner, err := decodePattern(items[0])
		if err != nil {
			return nil, err
		}
		t, err := decodeType(items[1])
		if err != nil {
			return nil, err
		}
		if key == "cast" {
			return &ast.PatternCastAs{Node: node, Pattern: inner, Type: t}, nil
		}
		return &ast.PatternAsc{Node: node, Pattern: inner, Type: t}, nil

	case "list", "tuple":
		items, err := decodePatterns(v, key+" pattern", -1)
		if err != nil {
			return nil, err
		}
		if key == "tuple" {
			return &ast.PatternTuple{Node: node, Items: items}, nil
		}
		return &ast.PatternList{Node: node, Items: items}, nil

	case "cons":
		parts, err := decodePatterns(v, "cons pattern", 2)
		if err != nil {
			return nil, err
		}
		return &ast.PatternCons{Node: node, Head: parts[0], Tail: parts[1]}, nil

	case "record":
		content, err := mapping(v, "record pattern")
		if err != nil {
			return nil, err
		}
		p := &ast.PatternRecord{Node: node}
		for i := 0; i < len(content); i += 2 {
			inner, err := decodePattern(content[i+1])
			if err != nil {
				return nil, err
			}
			p.Fields = append(p.Fields, ast.LabelledPattern{Label: content[i].Value, Pattern: inner})
		}
		return p, nil

	case "variant":
		label, payload, err := single(v, "variant pattern")
		if err != nil {
			return nil, err
		}
		p := &ast.PatternVariant{Node: node, Label: label}
		if !isNull(payload) {
			if p.Pattern, err = decodePattern(payload); err != nil {
				return nil, err
			}
		}
		return p, nil
	}
	return nil, errorf(n, "unknown pattern %q", key)
}

func decodePatterns(n *yaml.Node, what string, length int) ([]ast.Pattern, error) {
	items, err := sequence(n, what, length)
	if err != nil {
		return nil, err
	}
	ps := make([]ast.Pattern, len(items))
	for i, item := range items {
		p, err := decodePattern(item)
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	return ps, nil
}
