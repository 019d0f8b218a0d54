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

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/stella/construct"
	"github.com/wdamron/stella/types"
)

type testEnv struct {
	next        int
	subtyping   bool
	constraints [][2]types.Type
}

func (e *testEnv) Fresh() *types.Auto {
	e.next++
	return &types.Auto{Id: e.next}
}

func (e *testEnv) Constrain(a, b types.Type) { e.constraints = append(e.constraints, [2]types.Type{a, b}) }

func (e *testEnv) Subtyping() bool { return e.subtyping }

var (
	tNat  = types.Nat{}
	tBool = types.Bool{}
)

func succ(p Pattern) Pattern { return &Succ{Inner: p} }

func bind(name string) Pattern { return &Bind{Name: name} }

func TestExhaustiveness(t *testing.T) {
	natList := construct.TList(tNat)
	sum := construct.TSum(tNat, tBool)
	option := construct.TVariant(construct.TField("none", nil), construct.TField("some", tNat))
	pair := construct.TTuple(tBool, tNat)
	point := construct.TRecord(construct.TField("x", tBool), construct.TField("y", tNat))

	tests := []struct {
		name       string
		typ        types.Type
		patterns   Slice
		exhaustive bool
	}{
		{"empty slice", tBool, Slice{}, false},
		{"binding", tNat, Slice{bind("x")}, true},
		{"ascribed binding", tNat, Slice{&Asc{Inner: bind("x"), Type: tNat}}, true},
		{"true and false", tBool, Slice{&Bool{true}, &Bool{false}}, true},
		{"true only", tBool, Slice{&Bool{true}}, false},
		{"unit", construct.TUnit, Slice{&Unit{}}, true},
		{"zero and succ", tNat, Slice{&Nat{0}, succ(bind("n"))}, true},
		{"zero one and succ succ", tNat, Slice{&Nat{0}, &Nat{1}, succ(succ(bind("n")))}, true},
		{"zero one as succ zero and succ succ", tNat, Slice{&Nat{0}, succ(&Nat{0}), succ(succ(bind("n")))}, true},
		{"zero and succ succ", tNat, Slice{&Nat{0}, succ(succ(bind("n")))}, false},
		{"literals only", tNat, Slice{&Nat{0}, &Nat{1}, &Nat{2}}, false},
		{"succ only", tNat, Slice{succ(bind("n"))}, false},
		{"empty and cons", natList, Slice{&List{}, &List{Prefix: []Pattern{bind("h")}, Tail: bind("t")}}, true},
		{"cons only", natList, Slice{&List{Prefix: []Pattern{bind("h")}, Tail: bind("t")}}, false},
		{"literal element", natList, Slice{&List{}, &List{Prefix: []Pattern{&Nat{0}}, Tail: bind("t")}}, false},
		{"empty single and long", natList, Slice{
			&List{},
			&List{Prefix: []Pattern{bind("a")}},
			&List{Prefix: []Pattern{bind("a"), bind("b")}, Tail: bind("t")},
		}, true},
		{"inl and inr", sum, Slice{&Sum{Inner: bind("a"), Left: true}, &Sum{Inner: bind("b")}}, true},
		{"inl only", sum, Slice{&Sum{Inner: bind("a"), Left: true}}, false},
		{"inr with partial bool", sum, Slice{&Sum{Inner: bind("a"), Left: true}, &Sum{Inner: &Bool{true}}}, false},
		{"all variant labels", option, Slice{&Variant{Label: "none"}, &Variant{Label: "some", Inner: bind("n")}}, true},
		{"missing variant label", option, Slice{&Variant{Label: "some", Inner: bind("n")}}, false},
		{"partial variant payload", option, Slice{&Variant{Label: "none"}, &Variant{Label: "some", Inner: &Nat{0}}}, false},
		{"tuple per position", pair, Slice{
			&Tuple{Items: []Pattern{&Bool{true}, bind("n")}},
			&Tuple{Items: []Pattern{&Bool{false}, &Nat{0}}},
		}, true},
		{"tuple missing bool", pair, Slice{&Tuple{Items: []Pattern{&Bool{true}, bind("n")}}}, false},
		{"record fields", point, Slice{
			&Record{Fields: []RecordField{{"x", &Bool{true}}, {"y", bind("y")}}},
			&Record{Fields: []RecordField{{"x", &Bool{false}}, {"y", bind("y")}}},
		}, true},
		{"record missing field", point, Slice{&Record{Fields: []RecordField{{"y", bind("y")}}}}, false},
		{"bottom", construct.TBot, Slice{&Bool{true}}, true},
		{"function", construct.TFun1(tNat, tNat), Slice{&Cast{Inner: bind("f"), Type: construct.TFun1(tNat, tNat)}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := tt.patterns.Exhaustive(&testEnv{}, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.exhaustive, ok)
		})
	}
}

func TestExhaustivenessChecksConformance(t *testing.T) {
	_, err := Slice{&Bool{true}, &Nat{0}}.Exhaustive(&testEnv{}, tBool)
	require.Error(t, err)
	assert.Equal(t, types.ErrUnexpectedPatternForType, types.CodeOf(err))
}

func TestBindings(t *testing.T) {
	env := &testEnv{}
	p := &Tuple{Items: []Pattern{
		&Sum{Inner: bind("a"), Left: true},
		&List{Prefix: []Pattern{bind("h")}, Tail: bind("t")},
	}}
	typ := construct.TTuple(construct.TSum(tNat, tBool), construct.TList(tBool))
	bs, err := p.Bindings(env, typ)
	require.NoError(t, err)
	require.Len(t, bs, 3)
	assert.Equal(t, "a", bs[0].Name)
	assert.Equal(t, "Nat", types.TypeString(bs[0].Type))
	assert.Equal(t, "Bool", types.TypeString(bs[1].Type))
	assert.Equal(t, "[Bool]", types.TypeString(bs[2].Type))
	assert.Empty(t, env.constraints)
}

func TestBindingsInventShapesForPlaceholders(t *testing.T) {
	env := &testEnv{next: 100}
	scrutinee := &types.Auto{Id: 1}
	p := &List{Prefix: []Pattern{&Sum{Inner: bind("x"), Left: true}}, Tail: bind("rest")}
	bs, err := p.Bindings(env, scrutinee)
	require.NoError(t, err)
	require.Len(t, bs, 2)
	require.Len(t, env.constraints, 2)
	assert.Equal(t, "?1", types.TypeString(env.constraints[0][0]))
	assert.Equal(t, "[?101]", types.TypeString(env.constraints[0][1]))
	assert.Equal(t, "?101", types.TypeString(env.constraints[1][0]))
	assert.Equal(t, "?102 + ?103", types.TypeString(env.constraints[1][1]))
	assert.Equal(t, "?102", types.TypeString(bs[0].Type))
}

func TestVariantPatternErrors(t *testing.T) {
	option := construct.TVariant(construct.TField("none", nil), construct.TField("some", tNat))
	tests := []struct {
		name    string
		pattern Pattern
		typ     types.Type
		code    types.ErrorCode
	}{
		{"unknown label", &Variant{Label: "other"}, option, types.ErrUnexpectedVariantLabel},
		{"data for nullary label", &Variant{Label: "none", Inner: bind("x")}, option, types.ErrUnexpectedNonNullaryVariantPattern},
		{"missing data", &Variant{Label: "some"}, option, types.ErrUnexpectedNullaryVariantPattern},
		{"placeholder scrutinee", &Variant{Label: "some", Inner: bind("x")}, &types.Auto{Id: 1}, types.ErrAmbiguousPatternType},
		{"not a variant", &Variant{Label: "some"}, tNat, types.ErrUnexpectedPatternForType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pattern.Conforms(&testEnv{}, tt.typ)
			assert.Equal(t, tt.code, types.CodeOf(err))
		})
	}
}

func TestAscriptionSubtyping(t *testing.T) {
	wide := construct.TRecord(construct.TField("x", tNat), construct.TField("y", tNat))
	narrow := construct.TRecord(construct.TField("x", tNat))
	p := &Asc{Inner: bind("r"), Type: narrow}

	err := p.Conforms(&testEnv{}, wide)
	assert.Equal(t, types.ErrUnexpectedPatternForType, types.CodeOf(err))

	bs, err := p.Bindings(&testEnv{subtyping: true}, wide)
	require.NoError(t, err)
	assert.Equal(t, "{x : Nat}", types.TypeString(bs[0].Type))
}

func TestCastBindsTargetType(t *testing.T) {
	p := &Cast{Inner: bind("n"), Type: tNat}
	bs, err := p.Bindings(&testEnv{}, construct.TTop)
	require.NoError(t, err)
	require.Len(t, bs, 1)
	assert.Equal(t, "Nat", types.TypeString(bs[0].Type))

	_, err = (&Cast{Inner: bind("b"), Type: tBool}).Bindings(&testEnv{}, tNat)
	assert.Equal(t, types.ErrUnexpectedPatternForType, types.CodeOf(err))
}
