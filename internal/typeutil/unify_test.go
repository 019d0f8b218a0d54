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
package typeutil

import (
	"testing"

	. "github.com/wdamron/stella/construct"
	"github.com/wdamron/stella/types"
)

func TestSolveBindsPlaceholders(t *testing.T) {
	e := NewEngine()
	a, b := e.Fresh(), e.Fresh()
	e.AddConstraint(TFun1(a, b), TFun1(TNat, TList(a)))
	if err := e.Solve(); err != nil {
		t.Fatal(err)
	}
	got := types.TypeString(e.Substitute(TTuple(a, b)))
	if got != "{Nat, [Nat]}" {
		t.Fatalf("expected {Nat, [Nat]}, got %s", got)
	}
}

func TestSolveEmptyQueueIsNoop(t *testing.T) {
	e := NewEngine()
	if err := e.Solve(); err != nil {
		t.Fatal(err)
	}
	a := e.Fresh()
	e.AddConstraint(a, TNat)
	if err := e.Solve(); err != nil {
		t.Fatal(err)
	}
	if err := e.Solve(); err != nil {
		t.Fatal(err)
	}
	if got, ok := e.Lookup(a.Id); !ok || !types.Equal(got, TNat) {
		t.Fatalf("expected ?%d = Nat, got %v", a.Id, got)
	}
}

func TestSolveConflictingSolutions(t *testing.T) {
	e := NewEngine()
	a := e.Fresh()
	e.AddConstraint(a, TNat)
	e.AddConstraint(a, TBool)
	err := e.Solve()
	if types.CodeOf(err) != types.ErrCannotSatisfyConstraint {
		t.Fatalf("expected ERROR_CANNOT_SATISFY_CONSTRAINT, got %v", err)
	}
}

func TestSolveDecomposesSumsAndRefs(t *testing.T) {
	e := NewEngine()
	a, b := e.Fresh(), e.Fresh()
	e.AddConstraint(TRef(TSum(a, TBool)), TRef(TSum(TNat, b)))
	if err := e.Solve(); err != nil {
		t.Fatal(err)
	}
	if got := types.TypeString(e.Substitute(TFun([]types.Type{a}, b))); got != "fn(Nat) -> Bool" {
		t.Fatalf("expected fn(Nat) -> Bool, got %s", got)
	}

	e.Reset()
	e.AddConstraint(TRef(TNat), TList(TNat))
	if err := e.Solve(); types.CodeOf(err) != types.ErrCannotSatisfyConstraint {
		t.Fatalf("expected ERROR_CANNOT_SATISFY_CONSTRAINT, got %v", err)
	}
}

func TestOccursCheck(t *testing.T) {
	e := NewEngine()
	a := e.Fresh()
	e.AddConstraint(a, TList(a))
	err := e.Solve()
	if types.CodeOf(err) != types.ErrOccursCheckInfiniteType {
		t.Fatalf("expected ERROR_OCCURS_CHECK_INFINITE_TYPE, got %v", err)
	}
}

func TestOccursCheckThroughChains(t *testing.T) {
	e := NewEngine()
	a, b := e.Fresh(), e.Fresh()
	e.AddConstraint(a, TList(b))
	e.AddConstraint(b, TTuple(TNat, a))
	err := e.Solve()
	if types.CodeOf(err) != types.ErrOccursCheckInfiniteType {
		t.Fatalf("expected ERROR_OCCURS_CHECK_INFINITE_TYPE, got %v", err)
	}
}

func TestRecordsRequireSameLabels(t *testing.T) {
	e := NewEngine()
	a := e.Fresh()
	r1 := TRecord(TField("x", a))
	r2 := TRecord(TField("x", TNat), TField("y", TNat))
	e.AddConstraint(r1, r2)
	if err := e.Solve(); types.CodeOf(err) != types.ErrCannotSatisfyConstraint {
		t.Fatalf("expected ERROR_CANNOT_SATISFY_CONSTRAINT, got %v", err)
	}

	e.Reset()
	a = e.Fresh()
	r1 = TRecord(TField("y", TBool), TField("x", a))
	r2 = TRecord(TField("x", TNat), TField("y", TBool))
	e.AddConstraint(r1, r2)
	if err := e.Solve(); err != nil {
		t.Fatal(err)
	}
	if got := types.TypeString(e.Substitute(a)); got != "Nat" {
		t.Fatalf("expected Nat, got %s", got)
	}
}

func TestTuplesRequireSameLength(t *testing.T) {
	e := NewEngine()
	a := e.Fresh()
	e.AddConstraint(TTuple(a), TTuple(TNat, TNat))
	if err := e.Solve(); types.CodeOf(err) != types.ErrCannotSatisfyConstraint {
		t.Fatalf("expected ERROR_CANNOT_SATISFY_CONSTRAINT, got %v", err)
	}
}

func TestVariantsRequireSamePayloads(t *testing.T) {
	e := NewEngine()
	v1 := TVariant(TField("none", nil), TField("some", e.Fresh()))
	v2 := TVariant(TField("none", TNat), TField("some", TNat))
	e.AddConstraint(v1, v2)
	if err := e.Solve(); types.CodeOf(err) != types.ErrCannotSatisfyConstraint {
		t.Fatalf("expected ERROR_CANNOT_SATISFY_CONSTRAINT, got %v", err)
	}
}

func TestForAllArity(t *testing.T) {
	e := NewEngine()
	e.AddConstraint(TForAll([]string{"X"}, TFun1(TVar("X", 0), TVar("X", 0))), TForAll([]string{"X", "Y"}, TFun1(TVar("X", 0), TVar("Y", 1))))
	if err := e.Solve(); types.CodeOf(err) != types.ErrCannotSatisfyConstraint {
		t.Fatalf("expected ERROR_CANNOT_SATISFY_CONSTRAINT, got %v", err)
	}
}

func TestPlaceholderForMarker(t *testing.T) {
	e := NewEngine()
	type marker struct{ int }
	m1, m2 := &marker{1}, &marker{1}
	a := e.PlaceholderFor(m1)
	if e.PlaceholderFor(m1) != a {
		t.Fatal("expected the same placeholder for the same marker")
	}
	if e.PlaceholderFor(m2) == a {
		t.Fatal("expected distinct placeholders for distinct markers")
	}
	if e.VarTracker.Count() != 2 {
		t.Fatalf("expected 2 placeholders, got %d", e.VarTracker.Count())
	}
}
