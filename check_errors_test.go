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

package stella

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdamron/stella/ast"
	. "github.com/wdamron/stella/construct"
	"github.com/wdamron/stella/types"
)

func mainFn(ret ast.TypeExpr, body ast.Expr) *ast.DeclFun { return Fun1("main", "n", Nat(), ret, body) }

func exts(names ...string) []string { return names }

var applyNat = Fun1("apply", "f", Fn1(Nat(), Nat()), Nat(), Call(Var("f"), Int(0)))

var errorCases = []struct {
	name string
	prog *ast.Program
	code types.ErrorCode
}{
	// declarations
	{"missing main", Program(nil, Fun1("f", "n", Nat(), Nat(), Var("n"))), types.ErrMissingMain},
	{"main arity", Program(exts("#nullary-functions"), Fun("main", nil, Nat(), Int(0))), types.ErrIncorrectArityOfMain},
	{"unknown extension", Program(exts("#teleportation"), mainFn(Nat(), Var("n"))), types.ErrUnknownExtension},
	{"disabled extension", Program(nil, mainFn(Unit(), UnitValue())), types.ErrExtensionIsDisabled},
	{"duplicate function", Program(nil, mainFn(Nat(), Var("n")), mainFn(Nat(), Var("n"))), types.ErrDuplicateFunctionDeclaration},

	// variables and types
	{"undefined variable", Program(nil, mainFn(Nat(), Var("x"))), types.ErrUndefinedVariable},
	{"unexpected type", Program(nil, mainFn(Nat(), True())), types.ErrUnexpectedTypeForExpression},
	{"undefined type variable", Program(exts("#universal-types"), mainFn(TypeName("X"), Var("n"))), types.ErrUndefinedTypeVariable},
	{"undefined type alias", Program(nil, mainFn(TypeName("Money"), Var("n"))), types.ErrUndefinedTypeAlias},
	{"duplicate record type fields", Program(exts("#records"),
		Fun1("main", "r", RecordOf(FieldOf("a", Nat()), FieldOf("a", Bool())), Nat(), Int(0))),
		types.ErrDuplicateRecordTypeFields},
	{"duplicate variant type fields", Program(exts("#variants"),
		Fun1("main", "v", VariantOf(FieldOf("a", Nat()), FieldOf("a", Bool())), Nat(), Int(0))),
		types.ErrDuplicateVariantTypeFields},
	{"unexpected memory address", Program(exts("#references"), mainFn(Nat(), Memory("0x01"))), types.ErrUnexpectedMemoryAddress},
	{"ambiguous reference", Program(exts("#references"), mainFn(Nat(), Let("x", Memory("0x01"), Var("n")))), types.ErrAmbiguousReferenceType},
	{"not a reference", Program(exts("#references"), mainFn(Nat(), Deref(Var("n")))), types.ErrNotAReference},
	{"unexpected reference", Program(exts("#references"), mainFn(Nat(), New(Var("n")))), types.ErrUnexpectedReference},

	// functions
	{"not a function", Program(nil, mainFn(Nat(), Call(Var("n"), Int(0)))), types.ErrNotAFunction},
	{"unexpected lambda", Program(nil, mainFn(Nat(), Lambda1("x", Nat(), Var("x")))), types.ErrUnexpectedLambda},
	{"incorrect number of arguments", Program(exts("#multiparameter-functions"),
		Fun("add", []ast.Param{Param("x", Nat()), Param("y", Nat())}, Nat(), Var("x")),
		mainFn(Nat(), Call(Var("add"), Var("n")))),
		types.ErrIncorrectNumberOfArguments},
	{"unexpected number of lambda parameters", Program(exts("#multiparameter-functions"),
		applyNat,
		mainFn(Nat(), Call(Var("apply"), Lambda([]ast.Param{Param("x", Nat()), Param("y", Nat())}, Var("x"))))),
		types.ErrUnexpectedNumberOfParametersInLambda},
	{"unexpected type for parameter", Program(nil,
		applyNat,
		mainFn(Nat(), Call(Var("apply"), Lambda1("b", Bool(), Int(0))))),
		types.ErrUnexpectedTypeForParameter},
	{"unexpected subtype", Program(exts("#records", "#structural-subtyping"),
		Fun1("widen", "r", RecordOf(FieldOf("a", Nat())), RecordOf(FieldOf("a", Nat()), FieldOf("b", Nat())), Var("r")),
		mainFn(Nat(), Var("n"))),
		types.ErrUnexpectedSubtype},
	{"not a generic function", Program(exts("#universal-types"),
		Fun1("inc", "x", Nat(), Nat(), Succ(Var("x"))),
		mainFn(Nat(), Call(Inst(Var("inc"), Nat()), Var("n")))),
		types.ErrNotAGenericFunction},
	{"incorrect number of type arguments", Program(exts("#universal-types"),
		GenericFun("id", []string{"X"}, []ast.Param{Param("x", TypeName("X"))}, TypeName("X"), Var("x")),
		mainFn(Nat(), Call(Inst(Var("id"), Nat(), Bool()), Var("n")))),
		types.ErrIncorrectNumberOfTypeArguments},

	// lists, tuples and records
	{"ambiguous list", Program(exts("#lists"), mainFn(Nat(), Let("xs", List(), Var("n")))), types.ErrAmbiguousList},
	{"unexpected list", Program(exts("#lists"), mainFn(Nat(), List(Var("n")))), types.ErrUnexpectedList},
	{"not a list", Program(exts("#lists"), mainFn(Nat(), Unary(ast.OpHead, Var("n")))), types.ErrNotAList},
	{"tuple index out of bounds", Program(exts("#tuples"), mainFn(Nat(), Nth(Tuple(Var("n"), Var("n")), 3))), types.ErrTupleIndexOutOfBounds},
	{"unexpected tuple length", Program(exts("#tuples"),
		Fun1("main", "n", Nat(), TupleOf(Nat(), Nat()), Tuple(Var("n")))),
		types.ErrUnexpectedTupleLength},
	{"not a tuple", Program(exts("#tuples"), mainFn(Nat(), Nth(Var("n"), 1))), types.ErrNotATuple},
	{"unexpected tuple", Program(exts("#tuples"), mainFn(Nat(), Tuple(Var("n"), Var("n")))), types.ErrUnexpectedTuple},
	{"missing record fields", Program(exts("#records"),
		Fun1("main", "n", Nat(), RecordOf(FieldOf("a", Nat()), FieldOf("b", Nat())), Record(Field("a", Var("n"))))),
		types.ErrMissingRecordFields},
	{"unexpected record fields", Program(exts("#records"),
		Fun1("main", "n", Nat(), RecordOf(FieldOf("a", Nat())), Record(Field("a", Var("n")), Field("b", Var("n"))))),
		types.ErrUnexpectedRecordFields},
	{"duplicate record fields", Program(exts("#records"),
		Fun1("main", "n", Nat(), RecordOf(FieldOf("a", Nat())), Record(Field("a", Var("n")), Field("a", Var("n"))))),
		types.ErrDuplicateRecordFields},
	{"unexpected field access", Program(exts("#records"), mainFn(Nat(), Dot(Record(Field("a", Var("n"))), "b"))), types.ErrUnexpectedFieldAccess},
	{"not a record", Program(exts("#records"), mainFn(Nat(), Dot(Var("n"), "a"))), types.ErrNotARecord},
	{"unexpected record", Program(exts("#records"), mainFn(Nat(), Record(Field("a", Var("n"))))), types.ErrUnexpectedRecord},

	// sums and variants
	{"ambiguous sum", Program(nil, mainFn(Nat(), Let("s", Inl(Var("n")), Var("n")))), types.ErrAmbiguousSumType},
	{"unexpected injection", Program(nil, mainFn(Nat(), Inl(Var("n")))), types.ErrUnexpectedInjection},
	{"ambiguous variant", Program(exts("#variants"), mainFn(Nat(), Let("v", Variant("a", Var("n")), Var("n")))), types.ErrAmbiguousVariantType},
	{"unexpected variant", Program(exts("#variants"), mainFn(Nat(), Variant("a", Var("n")))), types.ErrUnexpectedVariant},
	{"unexpected variant label", Program(exts("#variants"),
		Fun1("main", "n", Nat(), VariantOf(FieldOf("a", Nat())), Variant("b", Var("n")))),
		types.ErrUnexpectedVariantLabel},
	{"missing data for label", Program(exts("#variants"),
		Fun1("main", "n", Nat(), VariantOf(FieldOf("a", Nat())), Variant("a", nil))),
		types.ErrMissingDataForLabel},
	{"unexpected data for nullary label", Program(exts("#variants", "#nullary-variant-labels"),
		Fun1("main", "n", Nat(), VariantOf(FieldOf("a", nil)), Variant("a", Var("n")))),
		types.ErrUnexpectedDataForNullaryLabel},

	// patterns
	{"nonexhaustive match", Program(nil,
		Fun1("main", "b", Bool(), Nat(), Match(Var("b"), Case(PTrue(), Int(1))))),
		types.ErrNonexhaustiveMatchPatterns},
	{"empty match", Program(nil, mainFn(Nat(), Match(Var("n")))), types.ErrIllegalEmptyMatching},
	{"unexpected pattern for type", Program(nil, mainFn(Nat(), Match(Var("n"), Case(PTrue(), Int(0))))), types.ErrUnexpectedPatternForType},
	{"duplicate record pattern fields", Program(exts("#records"),
		Fun1("main", "r", RecordOf(FieldOf("a", Nat())), Nat(),
			Match(Var("r"), Case(PRecord(PField("a", PVar("x")), PField("a", PVar("y"))), Var("x"))))),
		types.ErrDuplicateRecordPatternFields},
	{"ambiguous letrec pattern", Program(exts("#letrec-bindings"),
		mainFn(Nat(), LetRec([]ast.PatternBinding{Bind(PVar("f"), Var("n"))}, Var("n")))),
		types.ErrAmbiguousPatternType},
	{"unexpected nullary variant pattern", Program(exts("#variants"),
		Fun1("main", "v", VariantOf(FieldOf("a", Nat())), Nat(), Match(Var("v"), Case(PVariant("a", nil), Int(0))))),
		types.ErrUnexpectedNullaryVariantPattern},
	{"unexpected non-nullary variant pattern", Program(exts("#variants", "#nullary-variant-labels"),
		Fun1("main", "v", VariantOf(FieldOf("a", nil)), Nat(), Match(Var("v"), Case(PVariant("a", PVar("x")), Int(0))))),
		types.ErrUnexpectedNonNullaryVariantPattern},

	// exceptions
	{"exception type not declared", Program(exts("#exceptions"), mainFn(Nat(), Throw(Var("n")))), types.ErrExceptionTypeNotDeclared},
	{"ambiguous throw", Program(exts("#exceptions", "#exception-type-declaration"),
		ExceptionType(Nat()),
		mainFn(Nat(), Let("x", Throw(Var("n")), Var("n")))),
		types.ErrAmbiguousThrowType},
	{"ambiguous panic", Program(exts("#panic"), mainFn(Nat(), Let("x", Panic(), Var("n")))), types.ErrAmbiguousPanicType},

	// operators and builtins
	{"arithmetic disabled", Program(nil, mainFn(Nat(), Op(ast.OpAdd, Var("n"), Int(1)))), types.ErrExtensionIsDisabled},
	{"equality operands", Program(exts("#comparison-operations"),
		Fun1("main", "n", Nat(), Bool(), Op(ast.OpEqual, Var("n"), True()))),
		types.ErrUnexpectedTypeForExpression},
	{"logic operands", Program(nil, Fun1("main", "n", Nat(), Bool(), Op(ast.OpAnd, Var("n"), True()))), types.ErrUnexpectedTypeForExpression},
	{"comparison result", Program(exts("#comparison-operations"), mainFn(Nat(), Op(ast.OpLessThan, Var("n"), Int(1)))), types.ErrUnexpectedTypeForExpression},
	{"list head type", Program(exts("#lists"),
		Fun1("main", "xs", ListOf(Nat()), Bool(), Unary(ast.OpHead, Var("xs")))),
		types.ErrUnexpectedTypeForExpression},
	{"cons element", Program(exts("#lists"),
		Fun1("main", "xs", ListOf(Nat()), ListOf(Nat()), Cons(True(), Var("xs")))),
		types.ErrUnexpectedTypeForExpression},
	{"ambiguous empty list for top", Program(exts("#lists", "#top-type", "#structural-subtyping"),
		Fun1("main", "n", Nat(), Top(), List())),
		types.ErrAmbiguousList},
	{"fix of a binary function", Program(exts("#fixpoint-combinator", "#multiparameter-functions"),
		Fun1("apply2", "f", Fn([]ast.TypeExpr{Nat(), Nat()}, Nat()), Nat(), Fix(Var("f"))),
		mainFn(Nat(), Var("n"))),
		types.ErrIncorrectNumberOfArguments},
	{"fix of a non-function", Program(exts("#fixpoint-combinator"), mainFn(Nat(), Fix(Var("n")))), types.ErrNotAFunction},
	{"fix of a non-endofunction", Program(exts("#fixpoint-combinator"),
		mainFn(Nat(), Let("g", Fix(Lambda1("b", Bool(), Var("n"))), Var("n")))),
		types.ErrUnexpectedTypeForExpression},
	{"fix disabled", Program(nil, mainFn(Nat(), Fix(Var("n")))), types.ErrExtensionIsDisabled},
	{"try with fallback", Program(exts("#exceptions"), mainFn(Nat(), TryWith(Var("n"), True()))), types.ErrUnexpectedTypeForExpression},
	{"try cast pattern", Program(exts("#try-cast-as", "#top-type"),
		Fun1("main", "t", Top(), Nat(), TryCastAs(Var("t"), Nat(), PTrue(), Int(1), Int(0)))),
		types.ErrUnexpectedPatternForType},
	{"type cast result", Program(exts("#type-cast"), mainFn(Nat(), Cast(Var("n"), Bool()))), types.ErrUnexpectedTypeForExpression},
	{"cast pattern outside scrutinee type", Program(exts("#type-cast-patterns"),
		mainFn(Nat(), Match(Var("n"), Case(PCast(PVar("b"), Bool()), Int(0)), Case(PVar("m"), Var("m"))))),
		types.ErrUnexpectedPatternForType},

	// reconstruction
	{"occurs check", Program(exts("#type-reconstruction"),
		Fun1("main", "f", Auto(), Nat(), Call(Var("f"), Var("f")))),
		types.ErrOccursCheckInfiniteType},
	{"cannot satisfy constraint", Program(exts("#type-reconstruction"),
		Fun1("main", "x", Auto(), Nat(), If(Var("x"), Succ(Var("x")), Int(0)))),
		types.ErrCannotSatisfyConstraint},
}

func TestErrorCodes(t *testing.T) {
	c := NewChecker()
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.Check(tc.prog)
			require.Error(t, err)
			require.Equal(t, tc.code, types.CodeOf(err), "error: %v", err)
			require.Equal(t, err, c.Error())
		})
	}
}

func TestAmbiguousTypeAsBottom(t *testing.T) {
	for _, body := range []ast.Expr{
		Let("x", Panic(), Var("n")),
		Let("xs", List(), Var("n")),
		Let("s", Inl(Var("n")), Var("n")),
	} {
		prog := Program(exts("#panic", "#lists", "#ambiguous-type-as-bottom"), mainFn(Nat(), body))
		require.NoError(t, CheckProgram(prog), ast.ExprString(body))
	}
}

func TestAmbiguousTypeReconstructed(t *testing.T) {
	prog := Program(exts("#panic", "#type-reconstruction"), mainFn(Nat(), Let("x", Panic(), Var("n"))))
	require.NoError(t, CheckProgram(prog))
}

func TestMismatchNamesTypes(t *testing.T) {
	err := CheckProgram(Program(nil, Fun1("main", "n", Nat(), Bool(), Var("n"))))
	var te *types.TypeError
	require.ErrorAs(t, err, &te)
	require.Equal(t, types.ErrUnexpectedTypeForExpression, te.Code)
	require.Equal(t, "Bool", types.TypeString(te.Expected))
	require.Equal(t, "Nat", types.TypeString(te.Actual))
}

func TestEmptyListForTop(t *testing.T) {
	prog := Program(exts("#lists", "#top-type", "#structural-subtyping", "#ambiguous-type-as-bottom"),
		Fun1("main", "n", Nat(), Top(), List()))
	require.NoError(t, CheckProgram(prog))

	prog.Extensions = exts("#lists", "#top-type")
	require.Equal(t, types.ErrUnexpectedList, types.CodeOf(CheckProgram(prog)))
}
