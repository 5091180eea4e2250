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

// WalkExpr calls f for e and every sub-expression of e, in pre-order. Guards and
// bodies of match arms are visited; patterns and type expressions are not.
func WalkExpr(e Expr, f func(Expr)) {
	if e == nil {
		return
	}
	f(e)
	switch e := e.(type) {
	case *IntLit, *FloatLit, *StringLit, *BoolLit, *UnitLit, *Var:

	case *Lambda:
		WalkExpr(e.Body, f)

	case *App:
		WalkExpr(e.Func, f)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *Let:
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)

	case *LetRec:
		for _, b := range e.Bindings {
			WalkExpr(b.Value, f)
		}
		WalkExpr(e.Body, f)

	case *Match:
		WalkExpr(e.Value, f)
		for _, arm := range e.Arms {
			WalkExpr(arm.Guard, f)
			WalkExpr(arm.Body, f)
		}

	case *RecordLit:
		for _, field := range e.Fields {
			WalkExpr(field.Value, f)
		}

	case *RecordAccess:
		WalkExpr(e.Record, f)

	case *RecordUpdate:
		WalkExpr(e.Record, f)
		for _, field := range e.Fields {
			WalkExpr(field.Value, f)
		}

	case *Construct:
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *Tuple:
		for _, elem := range e.Elems {
			WalkExpr(elem, f)
		}

	case *BinOp:
		WalkExpr(e.Left, f)
		WalkExpr(e.Right, f)

	case *UnaryOp:
		WalkExpr(e.Operand, f)

	case *Annotate:
		WalkExpr(e.Value, f)
	}
}

// WalkDecl calls WalkExpr for each expression held by d.
func WalkDecl(d Decl, f func(Expr)) {
	switch d := d.(type) {
	case *LetDecl:
		WalkExpr(d.Value, f)
	case *LetRecDecl:
		for _, b := range d.Bindings {
			WalkExpr(b.Value, f)
		}
	}
}

// WalkPattern calls f for p and every sub-pattern of p, in pre-order.
func WalkPattern(p Pattern, f func(Pattern)) {
	if p == nil {
		return
	}
	f(p)
	switch p := p.(type) {
	case *ConstructorPat:
		for _, arg := range p.Args {
			WalkPattern(arg, f)
		}
	case *RecordPat:
		for _, field := range p.Fields {
			WalkPattern(field.Pattern, f)
		}
	case *TuplePat:
		for _, elem := range p.Elems {
			WalkPattern(elem, f)
		}
	case *OrPat:
		for _, alt := range p.Alts {
			WalkPattern(alt, f)
		}
	case *AnnotatedPat:
		WalkPattern(p.Pattern, f)
	}
}
