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

package astyaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/stella"
	"github.com/wdamron/stella/ast"
	"github.com/wdamron/stella/internal/astyaml"
	"github.com/wdamron/stella/types"
)

const sumProgram = `extensions: ["#natural-literals", "#arithmetic-operators"]
decls:
  - fn: inc
    params: {x: Nat}
    returns: Nat
    body: {"+": [x, 1]}
  - fn: main
    params: {s: {sum: [Nat, Bool]}}
    returns: Nat
    body:
      match:
        - s
        - [{inl: n}, {call: [inc, n]}]
        - [{inr: b}, {if: [b, 1, 0]}]
`

func TestDecodeProgram(t *testing.T) {
	prog, err := astyaml.Decode([]byte(sumProgram))
	require.NoError(t, err)
	assert.Equal(t, []string{"#natural-literals", "#arithmetic-operators"}, prog.Extensions)
	require.Len(t, prog.Decls, 2)

	inc := prog.Func("inc")
	require.NotNil(t, inc)
	assert.Equal(t, "x + 1", ast.ExprString(inc.Body))
	assert.Equal(t, types.Pos{Line: 3, Column: 5}, inc.Position())
	assert.Equal(t, types.Pos{Line: 6, Column: 11}, inc.Body.Position())
	assert.Equal(t, types.Pos{Line: 6, Column: 18}, inc.Body.(*ast.Binary).Left.Position())

	main := prog.Func("main")
	require.NotNil(t, main)
	assert.Equal(t, "match s { inl(n) => inc(n) | inr(b) => if b then 1 else 0 }", ast.ExprString(main.Body))
	assert.Equal(t, "Nat + Bool", ast.TypeExprString(main.Params[0].Type))

	require.NoError(t, stella.CheckProgram(prog))
}

func TestDecodeForms(t *testing.T) {
	cases := []struct{ yaml, expr string }{
		{`{let: {bind: [[x, 1]], in: {succ: x}}}`, "let x = 1 in succ(x)"},
		{`{fn: [{x: Nat}, x]}`, "fn(x : Nat) { return x }"},
		{`{record: {a: 1, b: true}}`, "{a = 1, b = true}"},
		{`{tuple: [1, unit]}`, "{1, unit}"},
		{`{nth: [t, 2]}`, "t.2"},
		{`{dot: [r, a]}`, "r.a"},
		{`{list: [1, 2]}`, "[1, 2]"},
		{`{variant: {none: null}}`, "<| none |>"},
		{`{memory: "0x01"}`, "<0x01>"},
		{`panic!`, "panic!"},
	}
	for _, tc := range cases {
		doc := "decls:\n  - fn: main\n    params: {n: Nat}\n    body: " + tc.yaml + "\n"
		prog, err := astyaml.Decode([]byte(doc))
		require.NoError(t, err, tc.yaml)
		assert.Equal(t, tc.expr, ast.ExprString(prog.Func("main").Body), tc.yaml)
	}
}

func TestDecodeTypes(t *testing.T) {
	doc := `decls:
  - alias: Pair
    type: {tuple: [Nat, {list: Bool}]}
  - exception-variant: {failure: Nat}
  - fn: main
    generic: [X]
    params: {f: {fn: [[X], {ref: X}]}, v: {variant: {a: Nat, b: null}}}
    returns: {forall: [[Y], {record: {y: Y}}]}
    body: f
`
	prog, err := astyaml.Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, prog.Decls, 3)

	alias := prog.Decls[0].(*ast.DeclTypeAlias)
	assert.Equal(t, "Pair", alias.Name)
	assert.Equal(t, "{Nat, [Bool]}", ast.TypeExprString(alias.Type))

	exc := prog.Decls[1].(*ast.DeclExceptionVariant)
	assert.Equal(t, "failure", exc.Label)

	main := prog.Func("main")
	assert.True(t, main.Generic)
	assert.Equal(t, []string{"X"}, main.TypeParams)
	assert.Equal(t, "fn(X) -> &X", ast.TypeExprString(main.Params[0].Type))
	assert.Equal(t, "<| a : Nat, b |>", ast.TypeExprString(main.Params[1].Type))
	assert.Equal(t, "forall Y. {y : Y}", ast.TypeExprString(main.Return))
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct{ doc, msg string }{
		{"decls:\n  - fn: main\n    body: {frob: 1}\n", "3:11: unknown expression \"frob\""},
		{"decls:\n  - fn: main\n    body: {if: [a, b]}\n", "if must have 3 items"},
		{"decls:\n  - fn: main\n    params: {n: Nat}\n", "function main has no body"},
		{"decls:\n  - fn: main\n    body: -1\n", "literal must not be negative"},
		{"decls:\n  - frob: main\n", "unknown declaration \"frob\""},
		{"frob: 1\n", "unknown program key \"frob\""},
		{"", "Empty document"},
	}
	for _, tc := range cases {
		_, err := astyaml.Decode([]byte(tc.doc))
		require.Error(t, err, tc.doc)
		assert.Contains(t, err.Error(), tc.msg)
	}
}
