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

// Package ext enumerates the language extensions a program may enable with pragmas.
package ext

import (
	"strings"
)

// Extension is an optional language capability.
type Extension int

const (
	UnitType Extension = iota
	NaturalLiterals
	Pairs
	Tuples
	Records
	LetBindings
	LetrecBindings
	LetPatterns
	TypeAscriptions
	TypeAliases
	SumTypes
	Lists
	Variants
	NullaryVariantLabels
	FixpointCombinator
	StructuralPatterns
	PatternAscriptions
	NullaryFunctions
	MultiparameterFunctions
	ArithmeticOperators
	ComparisonOperations
	Sequencing
	References
	Panic
	Exceptions
	ExceptionTypeDeclaration
	OpenVariantExceptions
	StructuralSubtyping
	AmbiguousTypeAsBottom
	TypeCast
	TryCastAs
	TypeCastPatterns
	TypeReconstruction
	UniversalTypes
	TopType
	BottomType

	numExtensions
)

// Accepted spellings of each extension. The first spelling is canonical.
var spellings = [numExtensions][]string{
	UnitType:                 {"unit-type"},
	NaturalLiterals:          {"natural-literals"},
	Pairs:                    {"pairs"},
	Tuples:                   {"tuples"},
	Records:                  {"records"},
	LetBindings:              {"let-bindings"},
	LetrecBindings:           {"letrec-bindings"},
	LetPatterns:              {"let-patterns"},
	TypeAscriptions:          {"type-ascriptions"},
	TypeAliases:              {"type-aliases"},
	SumTypes:                 {"sum-types"},
	Lists:                    {"lists"},
	Variants:                 {"variants"},
	NullaryVariantLabels:     {"nullary-variant-labels"},
	FixpointCombinator:       {"fixpoint-combinator", "fix-point-combinator"},
	StructuralPatterns:       {"structural-patterns"},
	PatternAscriptions:       {"pattern-ascriptions"},
	NullaryFunctions:         {"nullary-functions"},
	MultiparameterFunctions:  {"multiparameter-functions"},
	ArithmeticOperators:      {"arithmetic-operators"},
	ComparisonOperations:     {"comparison-operations", "comparison-operators"},
	Sequencing:               {"sequencing"},
	References:               {"references"},
	Panic:                    {"panic"},
	Exceptions:               {"exceptions"},
	ExceptionTypeDeclaration: {"exception-type-declaration"},
	OpenVariantExceptions:    {"open-variant-exceptions"},
	StructuralSubtyping:      {"structural-subtyping"},
	AmbiguousTypeAsBottom:    {"ambiguous-type-as-bottom"},
	TypeCast:                 {"type-cast"},
	TryCastAs:                {"try-cast-as"},
	TypeCastPatterns:         {"type-cast-patterns"},
	TypeReconstruction:       {"type-reconstruction"},
	UniversalTypes:           {"universal-types"},
	TopType:                  {"top-type"},
	BottomType:               {"bottom-type"},
}

var byName = func() map[string]Extension {
	m := make(map[string]Extension, len(spellings)*2)
	for x, names := range spellings {
		for _, name := range names {
			m[name] = Extension(x)
		}
	}
	return m
}()

// Canonical name of the extension, without the leading '#'.
func (x Extension) String() string {
	if x < 0 || x >= numExtensions {
		return "unknown-extension"
	}
	return spellings[x][0]
}

// Spellings returns every accepted name of the extension.
func (x Extension) Spellings() []string {
	if x < 0 || x >= numExtensions {
		return nil
	}
	return append([]string(nil), spellings[x]...)
}

// Parse an extension name, with or without the leading '#'.
func Parse(name string) (Extension, bool) {
	x, ok := byName[strings.TrimPrefix(name, "#")]
	return x, ok
}

// All returns every known extension.
func All() []Extension {
	xs := make([]Extension, numExtensions)
	for i := range xs {
		xs[i] = Extension(i)
	}
	return xs
}
