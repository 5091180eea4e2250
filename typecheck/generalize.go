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

package typecheck

import (
	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// Generalize quantifies the unbound type-variables of t which were created above the
// current level, i.e. within the right-hand side of the binding being generalized.
func (ctx *Context) Generalize(t types.Type, s types.Subst) *types.Scheme {
	t = s.Apply(t)
	var ids []int
	for _, tv := range types.FreeVars(t).Vars() {
		if tv.Level > ctx.level {
			ids = append(ids, tv.Id)
		}
	}
	return &types.Scheme{Vars: ids, Type: t}
}

// Restrict returns a monomorphic scheme for a binding which may not be generalized.
// Type-variables created above the current level are lowered to it, so that an enclosing
// binding cannot generalize them either.
func (ctx *Context) Restrict(t types.Type, s types.Subst) (*types.Scheme, types.Subst) {
	t = s.Apply(t)
	lowered := false
	for _, tv := range types.FreeVars(t).Vars() {
		if tv.Level > ctx.level {
			s = s.Extend(tv.Id, ctx.NewVar())
			lowered = true
		}
	}
	if lowered {
		t = s.Apply(t)
	}
	return types.Monomorphic(t), s
}

// Bind generalizes t when the bound expression is a syntactic value, and restricts it otherwise.
func (ctx *Context) bindScheme(value ast.Expr, t types.Type, s types.Subst) (*types.Scheme, types.Subst) {
	if IsSyntacticValue(value) {
		return ctx.Generalize(t, s), s
	}
	return ctx.Restrict(t, s)
}

// IsSyntacticValue reports whether e may have its type generalized: a variable, literal,
// lambda, or a constructor, tuple or record built from such values.
func IsSyntacticValue(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.Var, *ast.IntLit, *ast.FloatLit, *ast.StringLit, *ast.BoolLit, *ast.UnitLit, *ast.Lambda:
		return true
	case *ast.Construct:
		return allValues(e.Args)
	case *ast.Tuple:
		return allValues(e.Elems)
	case *ast.RecordLit:
		for _, f := range e.Fields {
			if !IsSyntacticValue(f.Value) {
				return false
			}
		}
		return true
	case *ast.Annotate:
		return IsSyntacticValue(e.Value)
	}
	return false
}

func allValues(es []ast.Expr) bool {
	for _, e := range es {
		if !IsSyntacticValue(e) {
			return false
		}
	}
	return true
}
