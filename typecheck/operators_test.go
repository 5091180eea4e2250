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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	c "github.com/mbcrawfo/vibefun-sub014/construct"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/internal/consteval"
)

func TestDivideSpecialization(t *testing.T) {
	ch := newTestChecker(DefaultOptions())

	fold := func(t *testing.T, e ast.Expr) ast.Expr {
		t.Helper()
		v, err := consteval.Fold(e)
		require.NoError(t, err)
		require.NotNil(t, v)
		return v
	}

	t.Run("integer operands", func(t *testing.T) {
		e := c.Div(c.Int(10), c.Int(3))
		assert.Equal(t, "Int", inferString(t, ch, e))
		assert.Equal(t, ast.IntDivide, e.Op)
		assert.Equal(t, int64(3), fold(t, e).(*ast.IntLit).Value)
	})

	t.Run("truncation toward zero", func(t *testing.T) {
		e := c.Div(c.UnOp(ast.Negate, c.Int(7)), c.Int(2))
		assert.Equal(t, "Int", inferString(t, ch, e))
		assert.Equal(t, ast.IntDivide, e.Op)
		assert.Equal(t, int64(-3), fold(t, e).(*ast.IntLit).Value)
	})

	t.Run("float operand", func(t *testing.T) {
		e := c.Div(c.Int(5), c.Float(2.0))
		assert.Equal(t, "Float", inferString(t, ch, e))
		assert.Equal(t, ast.FloatDivide, e.Op)
		assert.Equal(t, 2.5, fold(t, e).(*ast.FloatLit).Value)
	})

	t.Run("unresolved operand is a float", func(t *testing.T) {
		e := c.Div(c.Var("x"), c.Int(2))
		assert.Equal(t, "Float -> Float", inferString(t, ch, c.Func1("x", e)))
		assert.Equal(t, ast.FloatDivide, e.Op)

		e = c.Div(c.Var("x"), c.Float(2))
		assert.Equal(t, "Float -> Float", inferString(t, ch, c.Func1("x", e)))
		assert.Equal(t, ast.FloatDivide, e.Op)

		e = c.Div(c.Var("x"), c.Int(2))
		half := c.Let("half", c.Func1("x", e), c.Call(c.Var("half"), c.Float(3.0)))
		assert.Equal(t, "Float", inferString(t, ch, half))
		assert.Equal(t, ast.FloatDivide, e.Op)
	})

	t.Run("literal-typed operands", func(t *testing.T) {
		e := c.Div(c.Annotate(c.Int(6), c.TLit(c.Int(6))), c.Int(3))
		assert.Equal(t, "Int", inferString(t, ch, e))
		assert.Equal(t, ast.IntDivide, e.Op)
	})

	t.Run("unresolved operands", func(t *testing.T) {
		e := c.Div(c.Var("x"), c.Var("y"))
		assert.Equal(t, "Float -> Float -> Float", inferString(t, ch, c.Func([]string{"x", "y"}, e)))
		assert.Equal(t, ast.FloatDivide, e.Op)
	})

	t.Run("nested", func(t *testing.T) {
		inner := c.Div(c.Int(10), c.Int(4))
		outer := c.Div(inner, c.Float(2))
		assert.Equal(t, "Float", inferString(t, ch, outer))
		assert.Equal(t, ast.IntDivide, inner.Op)
		assert.Equal(t, ast.FloatDivide, outer.Op)
		assert.Equal(t, 1.0, fold(t, outer).(*ast.FloatLit).Value)
	})

	t.Run("non-numeric operand", func(t *testing.T) {
		e := c.Div(c.Str("a"), c.Int(2))
		assert.Equal(t, diagnostics.ErrNonNumericOperand, inferError(t, ch, e).Code)
		assert.Equal(t, ast.Divide, e.Op)
	})

	t.Run("specialized in a module", func(t *testing.T) {
		e := c.Div(c.Int(10), c.Int(3))
		r := checkModule(t, c.LetDecl("x", e))
		require.False(t, r.HasErrors())
		assert.Equal(t, "Int", scheme(t, r, "x"))
		assert.Equal(t, ast.IntDivide, r.Module.Decls[0].(*ast.LetDecl).Value.(*ast.BinOp).Op)
	})

	t.Run("specialized operators", func(t *testing.T) {
		assert.Equal(t, "Int", inferString(t, ch, c.BinOp(ast.IntDivide, c.Int(1), c.Int(2))))
		assert.Equal(t, diagnostics.ErrCannotUnify,
			inferError(t, ch, c.BinOp(ast.FloatDivide, c.Int(1), c.Float(2))).Code)
	})
}

func TestArithmetic(t *testing.T) {
	ch := newTestChecker(DefaultOptions())

	for _, tt := range []struct {
		expr ast.Expr
		want string
	}{
		{c.BinOp(ast.Add, c.Int(1), c.Int(2)), "Int"},
		{c.BinOp(ast.Multiply, c.Float(1), c.Float(2)), "Float"},
		{c.Func1("x", c.BinOp(ast.Add, c.Var("x"), c.Int(1))), "Int -> Int"},
		{c.Func1("x", c.BinOp(ast.Subtract, c.Var("x"), c.Float(1))), "Float -> Float"},
		{c.Func([]string{"x", "y"}, c.BinOp(ast.Modulo, c.Var("x"), c.Var("y"))), "Int -> Int -> Int"},
		{c.Func1("x", c.UnOp(ast.Negate, c.Var("x"))), "Int -> Int"},
		{c.UnOp(ast.Negate, c.Float(1)), "Float"},
		{c.BinOp(ast.Less, c.Str("a"), c.Str("b")), "Bool"},
		{c.BinOp(ast.Equal, c.Ctor("None"), c.Ctor("Some", c.Int(1))), "Bool"},
		{c.BinOp(ast.And, c.Bool(true), c.UnOp(ast.Not, c.Bool(false))), "Bool"},
		{c.BinOp(ast.Concat, c.Str("a"), c.Str("b")), "String"},
	} {
		t.Run(ast.ExprString(tt.expr), func(t *testing.T) {
			assert.Equal(t, tt.want, inferString(t, ch, tt.expr))
		})
	}

	for _, tt := range []struct {
		expr ast.Expr
		code diagnostics.Code
	}{
		{c.BinOp(ast.Add, c.Int(1), c.Float(2)), diagnostics.ErrCannotUnify},
		{c.BinOp(ast.Add, c.Str("a"), c.Str("b")), diagnostics.ErrNonNumericOperand},
		{c.BinOp(ast.Less, c.Bool(true), c.Bool(false)), diagnostics.ErrNonComparableOperand},
		{c.BinOp(ast.Equal, c.Int(1), c.Str("a")), diagnostics.ErrCannotUnify},
		{c.BinOp(ast.Or, c.Int(1), c.Bool(true)), diagnostics.ErrCannotUnify},
		{c.UnOp(ast.Negate, c.Str("a")), diagnostics.ErrNonNumericOperand},
	} {
		t.Run(ast.ExprString(tt.expr), func(t *testing.T) {
			assert.Equal(t, tt.code, inferError(t, ch, tt.expr).Code)
		})
	}
}

func TestReferences(t *testing.T) {
	ch := newTestChecker(DefaultOptions())
	r := c.Var("r")

	expr := c.Let("r", c.Call(c.Var("ref"), c.Int(1)), c.Assign(r, c.Int(2)))
	assert.Equal(t, "Unit", inferString(t, ch, expr))

	expr = c.Let("r", c.Call(c.Var("ref"), c.Int(1)), c.Deref(r))
	assert.Equal(t, "Int", inferString(t, ch, expr))

	assert.Equal(t, "Ref<'a> -> 'a", inferString(t, ch, c.Func1("r", c.Deref(r))))

	assert.Equal(t, diagnostics.ErrNotARef, inferError(t, ch, c.Deref(c.Int(1))).Code)
	assert.Equal(t, diagnostics.ErrNotARef, inferError(t, ch, c.Assign(c.Int(1), c.Int(2))).Code)

	expr = c.Let("r", c.Call(c.Var("ref"), c.Int(1)), c.Assign(r, c.Str("a")))
	assert.Equal(t, diagnostics.ErrRefAssignmentMismatch, inferError(t, ch, expr).Code)
}
