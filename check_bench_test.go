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

package stella_test

import (
	"testing"

	. "github.com/wdamron/stella"
	. "github.com/wdamron/stella/construct"

	"github.com/wdamron/stella/ast"
)

func BenchmarkMutuallyRecursiveLetRec(b *testing.B) {
	c := NewChecker()
	isEven := Fn1(Nat(), Bool())

	prog := Program([]string{"#letrec-bindings", "#pattern-ascriptions", "#records"},
		Fun1("main", "n", Nat(), RecordOf(FieldOf("even", Bool()), FieldOf("odd", Bool())),
			LetRec(
				[]ast.PatternBinding{
					Bind(PAsc(PVar("even"), isEven), Lambda1("x", Nat(),
						Match(Var("x"),
							Case(PInt(0), True()),
							Case(PSucc(PVar("m")), Call(Var("odd"), Var("m")))))),
					Bind(PAsc(PVar("odd"), isEven), Lambda1("x", Nat(),
						Match(Var("x"),
							Case(PInt(0), False()),
							Case(PSucc(PVar("m")), Call(Var("even"), Var("m")))))),
				},
				Record(
					Field("even", Call(Var("even"), Var("n"))),
					Field("odd", Call(Var("odd"), Var("n"))))),
		))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if err := c.Check(prog); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTypeReconstruction(b *testing.B) {
	c := NewChecker()

	prog := Program([]string{"#type-reconstruction"},
		Fun1("twice", "f", Auto(), Auto(),
			Lambda1("x", Auto(), Call(Var("f"), Call(Var("f"), Var("x"))))),
		Fun1("main", "n", Auto(), Auto(),
			Call(Call(Var("twice"), Lambda1("m", Nat(), Succ(Var("m")))), Var("n"))),
	)

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if err := c.Check(prog); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenericInstantiation(b *testing.B) {
	c := NewChecker()
	X := TypeName("X")

	prog := Program([]string{"#universal-types", "#lists", "#unit-type"},
		GenericFun("head", []string{"X"}, []ast.Param{Param("xs", ListOf(X))}, SumOf(X, Unit()),
			Match(Var("xs"),
				Case(PList(), Inr(UnitValue())),
				Case(PCons(PVar("x"), PVar("rest")), Inl(Var("x"))))),
		Fun1("main", "n", Nat(), SumOf(Nat(), Unit()),
			Call(Inst(Var("head"), Nat()), List(Var("n"), Succ(Var("n"))))),
	)

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if err := c.Check(prog); err != nil {
			b.Fatal(err)
		}
	}
}
