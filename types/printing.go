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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	sb strings.Builder
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

func typeString(p *typePrinter, simple bool, t Type) {
	if t == nil {
		p.sb.WriteString("<nil>")
		return
	}
	switch t := t.(type) {
	case Nat:
		p.sb.WriteString("Nat")
	case Bool:
		p.sb.WriteString("Bool")
	case Unit:
		p.sb.WriteString("Unit")
	case Top:
		p.sb.WriteString("Top")
	case Bottom:
		p.sb.WriteString("Bot")
	case *Var:
		p.sb.WriteString(t.Name)
	case *Auto:
		p.sb.WriteByte('?')
		p.sb.WriteString(strconv.Itoa(t.Id))
	case *List:
		p.sb.WriteByte('[')
		typeString(p, false, t.Elem)
		p.sb.WriteByte(']')
	case *Ref:
		p.sb.WriteByte('&')
		typeString(p, true, t.Elem)
	case *Tuple:
		p.sb.WriteByte('{')
		for i, it := range t.Items {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, false, it)
		}
		p.sb.WriteByte('}')
	case *Record:
		p.sb.WriteByte('{')
		fieldsString(p, t.Fields)
		p.sb.WriteByte('}')
	case *Variant:
		p.sb.WriteString("<|")
		if len(t.Fields) > 0 {
			p.sb.WriteByte(' ')
			fieldsString(p, t.Fields)
			p.sb.WriteByte(' ')
		}
		p.sb.WriteString("|>")
	case *Sum:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Left)
		p.sb.WriteString(" + ")
		typeString(p, true, t.Right)
		if simple {
			p.sb.WriteByte(')')
		}
	case *Fun:
		if simple {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString("fn(")
		for i, param := range t.Params {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			typeString(p, false, param)
		}
		p.sb.WriteString(") -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}
	case *ForAll:
		if simple {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString("forall ")
		p.sb.WriteString(strings.Join(t.Names, ", "))
		p.sb.WriteString(". ")
		typeString(p, false, t.Body)
		if simple {
			p.sb.WriteByte(')')
		}
	default:
		p.sb.WriteString("<" + t.TypeName() + ">")
	}
}

func fieldsString(p *typePrinter, fields []Field) {
	for i, f := range fields {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(f.Label)
		if f.Type != nil {
			p.sb.WriteString(" : ")
			typeString(p, false, f.Type)
		}
	}
}
