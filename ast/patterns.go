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

package ast

// Pattern is the base for all patterns.
type Pattern interface {
	PatternName() string
	Position() Pos
}

var (
	_ Pattern = (*PatternVar)(nil)
	_ Pattern = (*PatternTrue)(nil)
	_ Pattern = (*PatternFalse)(nil)
	_ Pattern = (*PatternUnit)(nil)
	_ Pattern = (*PatternInt)(nil)
	_ Pattern = (*PatternSucc)(nil)
	_ Pattern = (*PatternAsc)(nil)
	_ Pattern = (*PatternCastAs)(nil)
	_ Pattern = (*PatternList)(nil)
	_ Pattern = (*PatternCons)(nil)
	_ Pattern = (*PatternRecord)(nil)
	_ Pattern = (*PatternTuple)(nil)
	_ Pattern = (*PatternInl)(nil)
	_ Pattern = (*PatternInr)(nil)
	_ Pattern = (*PatternVariant)(nil)
)

// Variable pattern: `x`
type PatternVar struct {
	Node
	Name string
}

type PatternTrue struct{ Node }

type PatternFalse struct{ Node }

type PatternUnit struct{ Node }

// Natural literal pattern: `0`
type PatternInt struct {
	Node
	Value int
}

// `succ(p)`
type PatternSucc struct {
	Node
	Pattern Pattern
}

// Ascribed pattern: `p as T`
type PatternAsc struct {
	Node
	Pattern Pattern
	Type    TypeExpr
}

// Narrowing cast pattern: `p cast as T`
type PatternCastAs struct {
	Node
	Pattern Pattern
	Type    TypeExpr
}

// `[p1, p2]`
type PatternList struct {
	Node
	Items []Pattern
}

// `cons(h, t)`
type PatternCons struct {
	Node
	Head, Tail Pattern
}

// LabelledPattern is a record pattern member: `a = p`
type LabelledPattern struct {
	Label   string
	Pattern Pattern
}

// `{a = p1, b = p2}`
type PatternRecord struct {
	Node
	Fields []LabelledPattern
}

// `{p1, p2}`
type PatternTuple struct {
	Node
	Items []Pattern
}

// `inl(p)`
type PatternInl struct {
	Node
	Pattern Pattern
}

// `inr(p)`
type PatternInr struct {
	Node
	Pattern Pattern
}

// `<| a = p |>`. Pattern is nil for nullary labels.
type PatternVariant struct {
	Node
	Label   string
	Pattern Pattern
}

func (p *PatternVar) PatternName() string     { return "PatternVar" }
func (p *PatternTrue) PatternName() string    { return "PatternTrue" }
func (p *PatternFalse) PatternName() string   { return "PatternFalse" }
func (p *PatternUnit) PatternName() string    { return "PatternUnit" }
func (p *PatternInt) PatternName() string     { return "PatternInt" }
func (p *PatternSucc) PatternName() string    { return "PatternSucc" }
func (p *PatternAsc) PatternName() string     { return "PatternAsc" }
func (p *PatternCastAs) PatternName() string  { return "PatternCastAs" }
func (p *PatternList) PatternName() string    { return "PatternList" }
func (p *PatternCons) PatternName() string    { return "PatternCons" }
func (p *PatternRecord) PatternName() string  { return "PatternRecord" }
func (p *PatternTuple) PatternName() string   { return "PatternTuple" }
func (p *PatternInl) PatternName() string     { return "PatternInl" }
func (p *PatternInr) PatternName() string     { return "PatternInr" }
func (p *PatternVariant) PatternName() string { return "PatternVariant" }
