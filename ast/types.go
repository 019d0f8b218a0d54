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

// TypeExpr is the base for all type syntax.
type TypeExpr interface {
	TypeExprName() string
	Position() Pos
}

var (
	_ TypeExpr = (*TypeNat)(nil)
	_ TypeExpr = (*TypeBool)(nil)
	_ TypeExpr = (*TypeUnit)(nil)
	_ TypeExpr = (*TypeTop)(nil)
	_ TypeExpr = (*TypeBottom)(nil)
	_ TypeExpr = (*TypeAuto)(nil)
	_ TypeExpr = (*TypeVar)(nil)
	_ TypeExpr = (*TypeForAll)(nil)
	_ TypeExpr = (*TypeFun)(nil)
	_ TypeExpr = (*TypeTuple)(nil)
	_ TypeExpr = (*TypeRecord)(nil)
	_ TypeExpr = (*TypeVariant)(nil)
	_ TypeExpr = (*TypeList)(nil)
	_ TypeExpr = (*TypeSum)(nil)
	_ TypeExpr = (*TypeRef)(nil)
)

type TypeNat struct{ Node }

type TypeBool struct{ Node }

type TypeUnit struct{ Node }

type TypeTop struct{ Node }

type TypeBottom struct{ Node }

// `auto`: a type to be reconstructed. Each occurrence denotes a distinct placeholder,
// identified by the address of the node.
type TypeAuto struct{ Node }

// Type variable or type alias: `X`
type TypeVar struct {
	Node
	Name string
}

// `forall X, Y. T`
type TypeForAll struct {
	Node
	Names []string
	Type  TypeExpr
}

// `fn(T1, T2) -> R`
type TypeFun struct {
	Node
	Params []TypeExpr
	Return TypeExpr
}

// `{T1, T2}`
type TypeTuple struct {
	Node
	Items []TypeExpr
}

// FieldType is a labelled member of a record or variant type. Type is nil for nullary
// variant labels.
type FieldType struct {
	Label string
	Type  TypeExpr
}

// `{a : T1, b : T2}`
type TypeRecord struct {
	Node
	Fields []FieldType
}

// `<| a : T1, b |>`
type TypeVariant struct {
	Node
	Fields []FieldType
}

// `[T]`
type TypeList struct {
	Node
	Elem TypeExpr
}

// `T1 + T2`
type TypeSum struct {
	Node
	Left, Right TypeExpr
}

// `&T`
type TypeRef struct {
	Node
	Elem TypeExpr
}

func (t *TypeNat) TypeExprName() string     { return "TypeNat" }
func (t *TypeBool) TypeExprName() string    { return "TypeBool" }
func (t *TypeUnit) TypeExprName() string    { return "TypeUnit" }
func (t *TypeTop) TypeExprName() string     { return "TypeTop" }
func (t *TypeBottom) TypeExprName() string  { return "TypeBottom" }
func (t *TypeAuto) TypeExprName() string    { return "TypeAuto" }
func (t *TypeVar) TypeExprName() string     { return "TypeVar" }
func (t *TypeForAll) TypeExprName() string  { return "TypeForAll" }
func (t *TypeFun) TypeExprName() string     { return "TypeFun" }
func (t *TypeTuple) TypeExprName() string   { return "TypeTuple" }
func (t *TypeRecord) TypeExprName() string  { return "TypeRecord" }
func (t *TypeVariant) TypeExprName() string { return "TypeVariant" }
func (t *TypeList) TypeExprName() string    { return "TypeList" }
func (t *TypeSum) TypeExprName() string     { return "TypeSum" }
func (t *TypeRef) TypeExprName() string     { return "TypeRef" }
