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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type substitution map[int]Type

func (s substitution) Lookup(id int) (Type, bool) {
	t, ok := s[id]
	return t, ok
}

func TestSubstitute(t *testing.T) {
	a, b := &Auto{Id: 1}, &Auto{Id: 2}
	s := substitution{1: NewList(b), 2: tNat}
	got := Substitute(NewTuple([]Type{a, b, &Auto{Id: 3}}), s)
	assert.Equal(t, "{[Nat], Nat, ?3}", TypeString(got))

	unchanged := fn(tNat, tBool)
	assert.Same(t, unchanged, Substitute(unchanged, s))
}

func TestReify(t *testing.T) {
	// forall X, Y. fn(X) -> Y
	f := NewForAll([]string{"X", "Y"}, fn(NewVar("Y", 1, 1), NewVar("X", 1, 0)))
	got, err := f.Reify([]Type{tNat, tBool})
	require.NoError(t, err)
	assert.Equal(t, "fn(Nat) -> Bool", TypeString(got))

	_, err = f.Reify([]Type{tNat})
	assert.Equal(t, ErrIncorrectNumberOfTypeArguments, CodeOf(err))
}

func TestReifyNestedForAll(t *testing.T) {
	// forall X. forall Y. fn(X) -> Y, where X has index 1 under the inner binder
	inner := NewForAll([]string{"Y"}, fn(NewVar("Y", 2, 0), NewVar("X", 1, 1)))
	outer := NewForAll([]string{"X"}, inner)

	got, err := outer.Reify([]Type{tNat})
	require.NoError(t, err)
	assert.Equal(t, "forall Y. fn(Nat) -> Y", TypeString(got))

	again, err := got.(*ForAll).Reify([]Type{tBool})
	require.NoError(t, err)
	assert.Equal(t, "fn(Nat) -> Bool", TypeString(again))
}

func TestReifyShiftsArguments(t *testing.T) {
	// forall X. forall Y. fn(X) -> Y, instantiated with a free variable Z (index 0)
	inner := NewForAll([]string{"Y"}, fn(NewVar("Y", 2, 0), NewVar("X", 1, 1)))
	outer := NewForAll([]string{"X"}, inner)
	z := NewVar("Z", 7, 0)

	got, err := outer.Reify([]Type{z})
	require.NoError(t, err)
	body := got.(*ForAll).Body.(*Fun)
	param := body.Params[0].(*Var)
	assert.Equal(t, "Z", param.Name)
	assert.Equal(t, 1, param.Index, "free argument is shifted under the inner binder")
}

func TestConcretizeShiftsOuterVariablesDown(t *testing.T) {
	// X refers to the binder being instantiated and W to an enclosing scope
	body := NewTuple([]Type{NewVar("X", 1, 0), NewVar("W", 9, 1)})
	got := Concretize(body, map[int]Type{0: tNat})
	tup := got.(*Tuple)
	assert.Equal(t, "Nat", TypeString(tup.Items[0]))
	assert.Equal(t, 0, tup.Items[1].(*Var).Index)
}

func TestContains(t *testing.T) {
	a := &Auto{Id: 4}
	assert.True(t, Contains(NewList(NewSum(tNat, a)), a))
	assert.False(t, Contains(NewList(NewSum(tNat, tBool)), a))
	assert.True(t, Contains(NewVariant([]Field{{Label: "none"}, {Label: "x", Type: a}}), &Auto{Id: 4}))
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{fn(NewSum(tNat, tBool), NewRef(tNat)), "fn(&Nat) -> Nat + Bool"},
		{NewRef(NewSum(tNat, tUnit)), "&(Nat + Unit)"},
		{NewVariant([]Field{{Label: "none"}, {Label: "some", Type: tNat}}), "<| none, some : Nat |>"},
		{record(Field{"a", NewList(tBool)}), "{a : [Bool]}"},
		{NewForAll([]string{"X"}, fn(NewVar("X", 1, 0), NewVar("X", 1, 0))), "forall X. fn(X) -> X"},
		{Bottom{}, "Bot"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeString(tt.typ))
	}
}

func TestTypeError(t *testing.T) {
	err := Mismatch(ErrUnexpectedTypeForExpression, tBool, tNat)
	err.Pos = Pos{Line: 3, Column: 7}
	assert.Contains(t, err.Error(), "ERROR_UNEXPECTED_TYPE_FOR_EXPRESSION at 3:7")
	assert.Contains(t, err.Error(), "expected: Bool")
	assert.Contains(t, err.Error(), "actual: Nat")

	code, ok := ParseErrorCode("ERROR_MISSING_MAIN")
	assert.True(t, ok)
	assert.Equal(t, ErrMissingMain, code)
	assert.Equal(t, "ERROR_MISSING_MAIN", ErrMissingMain.String())
}
