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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	c "github.com/mbcrawfo/vibefun-sub014/construct"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

var zeroLoc ast.Location

func newTestChecker(opts Options) *Checker {
	ch := NewChecker(opts, nil)

	ch.env = ch.env.AddValue("add", &Value{Scheme: types.Monomorphic(
		c.TFun2(types.Int, types.Int, types.Int),
	)})
	ch.env = ch.env.AddValue("newbool", &Value{Scheme: types.Monomorphic(
		c.TFun(nil, types.Bool),
	)})
	// if: forall a. (Bool, a, a) -> a
	a := ch.ctx.newVarAt(1)
	ch.env = ch.env.AddValue("if", &Value{Scheme: &types.Scheme{
		Vars: []int{a.Id},
		Type: c.TFun([]types.Type{types.Bool, a, a}, a),
	}})
	return ch
}

// Infer e and return its printed type.
func inferString(t *testing.T, ch *Checker, e ast.Expr) string {
	t.Helper()
	ty, err := ch.InferExpr(e)
	require.NoError(t, err, "expr: %s", ast.ExprString(e))
	return types.TypeString(ty)
}

// Infer e, which must fail, and return the diagnostic.
func inferError(t *testing.T, ch *Checker, e ast.Expr) *diagnostics.Diagnostic {
	t.Helper()
	_, err := ch.InferExpr(e)
	require.Error(t, err, "expr: %s", ast.ExprString(e))
	var d *diagnostics.Diagnostic
	require.ErrorAs(t, err, &d)
	return d
}

func checkModule(t *testing.T, decls ...ast.Decl) *Result {
	t.Helper()
	return Check(c.Module("test", decls...), nil, DefaultOptions())
}

func scheme(t *testing.T, r *Result, name string) string {
	t.Helper()
	sc, ok := r.Schemes[name]
	require.True(t, ok, "no scheme for %s", name)
	return types.SchemeString(sc)
}

func codes(ds []*diagnostics.Diagnostic) []diagnostics.Code {
	out := make([]diagnostics.Code, len(ds))
	for i, d := range ds {
		out[i] = d.Code
	}
	return out
}
