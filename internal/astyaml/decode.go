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

// Package astyaml decodes Stella programs written as YAML syntax trees. It is used for test
// fixtures and by the command-line checker.
//
// A program is a mapping with the keys extensions and decls:
//
//	extensions: ["#unit-type", "#records"]
//	decls:
//	  - fn: main
//	    params: {n: Nat}
//	    returns: Nat
//	    body: {succ: n}
//
// Compound nodes are single-key mappings naming the form, e.g. {if: [c, a, b]},
// {fn: [{x: Nat}, body]}, {match: [e, [pattern, body], ...]} or {"+": [a, b]}. Scalars are
// literals or variable names. Every node keeps the line and column of its YAML node.
package astyaml

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/stella/ast"
)

// Decode a program from YAML.
func Decode(data []byte) (*ast.Program, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("Empty document")
	}
	return decodeProgram(doc.Content[0])
}

// Read and decode a program. Errors are prefixed with the path.
func DecodeFile(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	prog, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", path, err)
	}
	return prog, nil
}

func pos(n *yaml.Node) ast.Node { return ast.Node{Pos: ast.Pos{Line: n.Line, Column: n.Column}} }

func errorf(n *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("%d:%d: %s", n.Line, n.Column, fmt.Sprintf(format, args...))
}

// Get the alternating keys and values of a mapping.
func mapping(n *yaml.Node, what string) ([]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "%s must be a mapping", what)
	}
	return n.Content, nil
}

// Get the items of a sequence. A non-negative length is required exactly.
func sequence(n *yaml.Node, what string, length int) ([]*yaml.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, "%s must be a sequence", what)
	}
	if length >= 0 && len(n.Content) != length {
		return nil, errorf(n, "%s must have %d items", what, length)
	}
	return n.Content, nil
}

// Get the key and value of a single-key mapping.
func single(n *yaml.Node, what string) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, errorf(n, "%s must be a single-key mapping", what)
	}
	return n.Content[0].Value, n.Content[1], nil
}

func isNull(n *yaml.Node) bool { return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" }

func scalar(n *yaml.Node, what string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", errorf(n, "%s must be a scalar", what)
	}
	return n.Value, nil
}

func natural(n *yaml.Node, what string) (int, error) {
	var v int
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return 0, errorf(n, "%s must be an integer", what)
	}
	if err := n.Decode(&v); err != nil {
		return 0, errorf(n, "%s: %v", what, err)
	}
	if v < 0 {
		return 0, errorf(n, "%s must not be negative", what)
	}
	return v, nil
}

func names(n *yaml.Node, what string) ([]string, error) {
	var out []string
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, "%s must be a sequence", what)
	}
	if err := n.Decode(&out); err != nil {
		return nil, errorf(n, "%s: %v", what, err)
	}
	return out, nil
}

func decodeProgram(n *yaml.Node) (*ast.Program, error) {
	content, err := mapping(n, "program")
	if err != nil {
		return nil, err
	}
	prog := &ast.Program{}
	for i := 0; i < len(content); i += 2 {
		k, v := content[i], content[i+1]
		switch k.Value {
		case "extensions":
			if prog.Extensions, err = names(v, "extensions"); err != nil {
				return nil, err
			}
		case "decls":
			items, err := sequence(v, "decls", -1)
			if err != nil {
				return nil, err
			}
			for _, item := range items {
				d, err := decodeDecl(item)
				if err != nil {
					return nil, err
				}
				prog.Decls = append(prog.Decls, d)
			}
		default:
			return nil, errorf(k, "unknown program key %q", k.Value)
		}
	}
	return prog, nil
}

func decodeDecl(n *yaml.Node) (ast.Decl, error) {
	content, err := mapping(n, "declaration")
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, errorf(n, "empty declaration")
	}
	switch content[0].Value {
	case "fn":
		return decodeFun(n, content)

	case "alias":
		if len(content) != 4 || content[2].Value != "type" {
			return nil, errorf(n, "alias must have a name and a type")
		}
		name, err := scalar(content[1], "alias name")
		if err != nil {
			return nil, err
		}
		t, err := decodeType(content[3])
		if err != nil {
			return nil, err
		}
		return &ast.DeclTypeAlias{Node: pos(n), Name: name, Type: t}, nil

	case "exception-type":
		if len(content) != 2 {
			return nil, errorf(n, "exception type must have only a type")
		}
		t, err := decodeType(content[1])
		if err != nil {
			return nil, err
		}
		return &ast.DeclExceptionType{Node: pos(n), Type: t}, nil

	case "exception-variant":
		if len(content) != 2 {
			return nil, errorf(n, "exception variant must have only a label")
		}
		label, v, err := single(content[1], "exception variant")
		if err != nil {
			return nil, err
		}
		t, err := decodeType(v)
		if err != nil {
			return nil, err
		}
		return &ast.DeclExceptionVariant{Node: pos(n), Label: label, Type: t}, nil
	}
	return nil, errorf(content[0], "unknown declaration %q", content[0].Value)
}

func decodeFun(n *yaml.Node, content []*yaml.Node) (*ast.DeclFun, error) {
	name, err := scalar(content[1], "function name")
	if err != nil {
		return nil, err
	}
	d := &ast.DeclFun{Node: pos(n), Name: name}
	for i := 2; i < len(content); i += 2 {
		k, v := content[i], content[i+1]
		switch k.Value {
		case "generic":
			d.Generic = true
			d.TypeParams, err = names(v, "type parameters")
		case "params":
			d.Params, err = decodeParams(v)
		case "returns":
			d.Return, err = decodeType(v)
		case "body":
			d.Body, err = decodeExpr(v)
		default:
			err = errorf(k, "unknown function key %q", k.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	if d.Body == nil {
		return nil, errorf(n, "function %s has no body", name)
	}
	return d, nil
}

func decodeParams(n *yaml.Node) ([]ast.Param, error) {
	content, err := mapping(n, "parameters")
	if err != nil {
		return nil, err
	}
	params := make([]ast.Param, 0, len(content)/2)
	for i := 0; i < len(content); i += 2 {
		t, err := decodeType(content[i+1])
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: content[i].Value, Type: t})
	}
	return params, nil
}
