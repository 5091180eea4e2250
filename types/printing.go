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
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.quantified, p.raw = nil, false
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	idNames    map[int]string
	quantified *Scheme
	raw        bool
	sb         strings.Builder
}

// TypeString returns a string representation of a Type. Type-variables are named
// 'a, 'b, ... in order of first appearance.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// TypeStrings returns string representations of several types, with type-variables named
// consistently across all of them.
func TypeStrings(ts ...Type) []string {
	p := newTypePrinter()
	out := make([]string, len(ts))
	for i, t := range ts {
		typeString(p, false, t)
		out[i] = p.sb.String()
		p.sb.Reset()
	}
	p.Release()
	return out
}

// SchemeString returns a string representation of a Scheme. Quantified type-variables are
// named 'a, 'b, ... in order of first appearance; free type-variables are printed as '_<id>.
func SchemeString(sc *Scheme) string {
	p := newTypePrinter()
	p.quantified = sc
	typeString(p, false, sc.Type)
	s := p.sb.String()
	p.Release()
	return s
}

// canonicalString prints t with type-variable ids, so that distinct variables never print alike.
func canonicalString(t Type) string {
	p := newTypePrinter()
	p.raw = true
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

func getVarName(i int) string {
	if i >= 26 {
		return "'" + string(byte(97+i%26)) + strconv.Itoa(i/26)
	}
	return "'" + string(byte(97+i%26))
}

func (p *typePrinter) varName(tv *Var) string {
	if name, ok := p.idNames[tv.Id]; ok {
		return name
	}
	var name string
	switch {
	case p.raw, p.quantified != nil && !p.quantified.Quantifies(tv.Id):
		name = "'_" + strconv.Itoa(tv.Id)
	default:
		n := 0
		for _, existing := range p.idNames {
			if !strings.HasPrefix(existing, "'_") {
				n++
			}
		}
		name = getVarName(n)
	}
	p.idNames[tv.Id] = name
	return name
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case nil:
		p.sb.WriteString("<nil>")

	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		p.sb.WriteString(p.varName(t))

	case *Never:
		p.sb.WriteString("Never")

	case *Literal:
		p.sb.WriteString(t.Value)

	case *App:
		typeString(p, true, t.Con)
		if len(t.Args) == 0 {
			return
		}
		p.sb.WriteByte('<')
		typeList(p, t.Args)
		p.sb.WriteByte('>')

	case *Ref:
		p.sb.WriteString("Ref<")
		typeString(p, false, t.Elem)
		p.sb.WriteByte('>')

	case *Fun:
		if simple {
			p.sb.WriteByte('(')
		}
		if len(t.Params) == 1 {
			if _, isTuple := t.Params[0].(*Tuple); isTuple {
				p.sb.WriteByte('(')
				typeString(p, false, t.Params[0])
				p.sb.WriteByte(')')
			} else {
				typeString(p, true, t.Params[0])
			}
		} else {
			p.sb.WriteByte('(')
			typeList(p, t.Params)
			p.sb.WriteByte(')')
		}
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case *Tuple:
		p.sb.WriteByte('(')
		typeList(p, t.Elems)
		p.sb.WriteByte(')')

	case *Union:
		if simple {
			p.sb.WriteByte('(')
		}
		for i, m := range t.Types {
			if i > 0 {
				p.sb.WriteString(" | ")
			}
			typeString(p, true, m)
		}
		if simple {
			p.sb.WriteByte(')')
		}

	case *Record:
		if t.Fields.Len() == 0 {
			p.sb.WriteString("{}")
			return
		}
		p.sb.WriteString("{ ")
		i := 0
		t.Fields.Range(func(label string, ft Type) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(label)
			p.sb.WriteString(": ")
			typeString(p, false, ft)
			i++
			return true
		})
		p.sb.WriteString(" }")

	case *Variant:
		p.sb.WriteString(t.Name)
		p.sb.WriteByte('[')
		i := 0
		t.Ctors.Range(func(label string, args TypeList) bool {
			if i > 0 {
				p.sb.WriteString(" | ")
			}
			p.sb.WriteString(label)
			if args.Len() > 0 {
				p.sb.WriteByte('(')
				typeList(p, args.Types())
				p.sb.WriteByte(')')
			}
			i++
			return true
		})
		p.sb.WriteByte(']')

	default:
		p.sb.WriteString("<" + t.TypeName() + ">")
	}
}

func typeList(p *typePrinter, ts []Type) {
	for i, t := range ts {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		typeString(p, false, t)
	}
}
