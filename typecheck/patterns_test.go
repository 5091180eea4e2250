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
)

func optionOf(t ast.TypeExpr) ast.TypeExpr { return c.TName("Option", t) }

func TestVariantMatch(t *testing.T) {
	ch := newTestChecker(DefaultOptions())
	o := c.Var("o")

	t.Run("exhaustive", func(t *testing.T) {
		expr := c.Func1("o", c.Match(o,
			c.Arm(c.PCtor("Some", c.PVar("x")), c.BinOp(ast.Add, c.Var("x"), c.Int(1))),
			c.Arm(c.PCtor("None"), c.Int(0)),
		))
		assert.Equal(t, "Option<Int> -> Int", inferString(t, ch, expr))
	})

	t.Run("missing constructor", func(t *testing.T) {
		expr := c.FuncT("o", optionOf(c.TName("Int")), c.Match(o,
			c.Arm(c.PCtor("Some", c.PVar("x")), c.Var("x")),
		))
		d := inferError(t, ch, expr)
		assert.Equal(t, diagnostics.ErrNonExhaustiveMatch, d.Code)
		assert.Equal(t, "Non-exhaustive match, missing case(s): None", d.Message)
		assert.NotEmpty(t, d.Hint)
	})

	t.Run("missing nested constructor", func(t *testing.T) {
		expr := c.FuncT("o", optionOf(optionOf(c.TName("Int"))), c.Match(o,
			c.Arm(c.PCtor("Some", c.PCtor("Some", c.PVar("x"))), c.Var("x")),
			c.Arm(c.PCtor("None"), c.Int(0)),
		))
		d := inferError(t, ch, expr)
		assert.Equal(t, diagnostics.ErrNonExhaustiveMatch, d.Code)
		assert.Equal(t, []string{"Some(None)"}, d.Notes)
	})

	t.Run("wildcard covers the rest", func(t *testing.T) {
		expr := c.FuncT("o", optionOf(c.TName("Int")), c.Match(o,
			c.Arm(c.PCtor("Some", c.PLit(c.Int(1))), c.Int(1)),
			c.Arm(c.PWild(), c.Int(0)),
		))
		assert.Equal(t, "Option<Int> -> Int", inferString(t, ch, expr))
	})

	t.Run("guarded arms do not cover", func(t *testing.T) {
		expr := c.FuncT("o", optionOf(c.TName("Int")), c.Match(o,
			c.Guarded(c.PCtor("Some", c.PVar("x")), c.BinOp(ast.Greater, c.Var("x"), c.Int(0)), c.Var("x")),
			c.Arm(c.PCtor("None"), c.Int(0)),
		))
		d := inferError(t, ch, expr)
		assert.Equal(t, diagnostics.ErrNonExhaustiveMatch, d.Code)
		assert.Contains(t, d.Message, "Some(_)")
	})

	t.Run("undefined constructor", func(t *testing.T) {
		expr := c.Func1("o", c.Match(o, c.Arm(c.PCtor("Nope"), c.Int(0))))
		assert.Equal(t, diagnostics.ErrUndefinedConstructor, inferError(t, ch, expr).Code)
	})

	t.Run("constructor arity", func(t *testing.T) {
		expr := c.Func1("o", c.Match(o, c.Arm(c.PCtor("Some"), c.Int(0))))
		assert.Equal(t, diagnostics.ErrConstructorArityMismatch, inferError(t, ch, expr).Code)
	})
}

func TestLiteralMatch(t *testing.T) {
	ch := newTestChecker(DefaultOptions())
	status := c.Var("status")

	statusType := func() ast.TypeExpr {
		return c.TUnionExpr(c.TLit(c.Str("pending")), c.TLit(c.Str("loading")), c.TLit(c.Str("done")))
	}

	t.Run("or-pattern of literals", func(t *testing.T) {
		expr := c.FuncT("status", statusType(), c.Match(status,
			c.Arm(c.POr(c.PLit(c.Str("pending")), c.PLit(c.Str("loading"))), c.Int(1)),
			c.Arm(c.PLit(c.Str("done")), c.Int(2)),
		))
		assert.Equal(t, `("done" | "loading" | "pending") -> Int`, inferString(t, ch, expr))
	})

	t.Run("missing literal of a literal union", func(t *testing.T) {
		expr := c.FuncT("status", statusType(), c.Match(status,
			c.Arm(c.POr(c.PLit(c.Str("pending")), c.PLit(c.Str("loading"))), c.Int(1)),
		))
		d := inferError(t, ch, expr)
		assert.Equal(t, diagnostics.ErrNonExhaustiveMatch, d.Code)
		assert.Equal(t, []string{`"done"`}, d.Notes)
	})

	t.Run("literal outside the union", func(t *testing.T) {
		expr := c.FuncT("status", statusType(), c.Match(status,
			c.Arm(c.PLit(c.Str("failed")), c.Int(1)),
			c.Arm(c.PWild(), c.Int(0)),
		))
		assert.Equal(t, diagnostics.ErrCannotUnify, inferError(t, ch, expr).Code)
	})

	t.Run("open domains need a catch-all", func(t *testing.T) {
		for _, expr := range []ast.Expr{
			c.FuncT("n", c.TName("Int"), c.Match(c.Var("n"), c.Arm(c.PLit(c.Int(1)), c.Str("one")))),
			c.Func1("status", c.Match(status,
				c.Arm(c.POr(c.PLit(c.Str("pending")), c.PLit(c.Str("loading"))), c.Int(1)),
				c.Arm(c.PLit(c.Str("done")), c.Int(2)),
			)),
		} {
			d := inferError(t, ch, expr)
			assert.Equal(t, diagnostics.ErrNonExhaustiveMatch, d.Code)
			assert.Equal(t, []string{"_"}, d.Notes)
		}

		expr := c.FuncT("n", c.TName("Int"), c.Match(c.Var("n"),
			c.Arm(c.PLit(c.Int(1)), c.Str("one")),
			c.Arm(c.PWild(), c.Str("many")),
		))
		assert.Equal(t, "Int -> String", inferString(t, ch, expr))
	})

	t.Run("or-pattern binding mismatch", func(t *testing.T) {
		expr := c.FuncT("o", optionOf(c.TName("Int")), c.Match(c.Var("o"),
			c.Arm(c.POr(c.PCtor("Some", c.PVar("x")), c.PCtor("None")), c.Int(1)),
		))
		d := inferError(t, ch, expr)
		assert.Equal(t, diagnostics.ErrOrPatternBindingMismatch, d.Code)
		assert.NotEmpty(t, d.Hint)
	})

	t.Run("or-pattern type mismatch", func(t *testing.T) {
		expr := c.FuncT("p", c.TTupleExpr(c.TName("Int"), c.TName("String")), c.Match(c.Var("p"),
			c.Arm(c.POr(c.PTuple(c.PVar("x"), c.PWild()), c.PTuple(c.PWild(), c.PVar("x"))), c.Int(1)),
		))
		assert.Equal(t, diagnostics.ErrOrPatternBindingMismatch, inferError(t, ch, expr).Code)
	})

	t.Run("literal type mismatch", func(t *testing.T) {
		expr := c.Func1("status", c.Match(status,
			c.Arm(c.PLit(c.Str("done")), c.Int(1)),
			c.Arm(c.PLit(c.Int(2)), c.Int(2)),
		))
		assert.Equal(t, diagnostics.ErrCannotUnify, inferError(t, ch, expr).Code)
	})
}

func TestBoolAndProductMatch(t *testing.T) {
	b := c.Var("b")

	t.Run("missing bool case", func(t *testing.T) {
		ch := newTestChecker(DefaultOptions())
		expr := c.Func1("b", c.Match(b,
			c.Guarded(c.PLit(c.Bool(true)), b, c.Int(1)),
			c.Arm(c.PLit(c.Bool(false)), c.Int(0)),
		))
		d := inferError(t, ch, expr)
		assert.Equal(t, diagnostics.ErrNonExhaustiveMatch, d.Code)
		assert.Equal(t, []string{"true"}, d.Notes)
	})

	t.Run("bool exhaustiveness disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.CheckBoolExhaustiveness = false
		ch := newTestChecker(opts)
		expr := c.Func1("b", c.Match(b, c.Arm(c.PLit(c.Bool(true)), c.Int(1))))
		assert.Equal(t, "Bool -> Int", inferString(t, ch, expr))
	})

	t.Run("tuple", func(t *testing.T) {
		ch := newTestChecker(DefaultOptions())
		expr := c.Func([]string{"x", "y"}, c.Match(c.Tuple(c.Var("x"), c.Var("y")),
			c.Arm(c.PTuple(c.PLit(c.Bool(true)), c.PWild()), c.Int(1)),
			c.Arm(c.PTuple(c.PLit(c.Bool(false)), c.PLit(c.Bool(true))), c.Int(2)),
		))
		d := inferError(t, ch, expr)
		assert.Equal(t, diagnostics.ErrNonExhaustiveMatch, d.Code)
		assert.Equal(t, []string{"(false, false)"}, d.Notes)
	})

	t.Run("record", func(t *testing.T) {
		ch := newTestChecker(DefaultOptions())
		person := c.Record(c.Field("name", c.Str("a")), c.Field("age", c.Int(1)))
		expr := c.Match(person, c.Arm(c.PRecord(c.PField("name", c.PVar("n"))), c.Var("n")))
		assert.Equal(t, "String", inferString(t, ch, expr))

		expr = c.Match(person, c.Arm(c.PRecord(c.PField("email", c.PVar("e"))), c.Var("e")))
		assert.Equal(t, diagnostics.ErrUndefinedField, inferError(t, ch, expr).Code)
	})

	t.Run("unit", func(t *testing.T) {
		ch := newTestChecker(DefaultOptions())
		expr := c.Match(c.Unit(), c.Arm(c.PLit(c.Unit()), c.Int(1)))
		assert.Equal(t, "Int", inferString(t, ch, expr))
	})
}

func TestMatchErrors(t *testing.T) {
	ch := newTestChecker(DefaultOptions())
	x := c.Var("x")

	for _, tt := range []struct {
		name string
		expr ast.Expr
		code diagnostics.Code
	}{
		{"empty match", c.Match(c.Int(1)), diagnostics.ErrEmptyMatch},
		{"guard type", c.Match(c.Int(1), c.Guarded(c.PVar("n"), c.Int(1), c.Int(0))), diagnostics.ErrGuardTypeMismatch},
		{"branch types", c.Match(c.Int(1),
			c.Arm(c.PLit(c.Int(1)), c.Int(1)),
			c.Arm(c.PWild(), c.Str("a"))), diagnostics.ErrBranchTypeMismatch},
		{"duplicate binding", c.Match(c.Tuple(c.Int(1), c.Int(2)),
			c.Arm(c.PTuple(c.PVar("x"), c.PVar("x")), x)), diagnostics.ErrDuplicateBinding},
		{"annotated pattern", c.Match(c.Int(1),
			c.Arm(c.PAnnot(c.PVar("x"), c.TName("String")), x)), diagnostics.ErrCannotUnify},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, inferError(t, ch, tt.expr).Code)
		})
	}
}

func TestUnreachablePattern(t *testing.T) {
	expr := func() ast.Expr {
		return c.Match(c.Int(1),
			c.Arm(c.PWild(), c.Int(1)),
			c.Arm(c.PLit(c.Int(2)), c.Int(3)),
		)
	}

	t.Run("warning", func(t *testing.T) {
		ch := newTestChecker(DefaultOptions())
		assert.Equal(t, "Int", inferString(t, ch, expr()))
		ds := ch.Diagnostics()
		require.Len(t, ds, 1)
		assert.Equal(t, diagnostics.WarnUnreachablePattern, ds[0].Code)
		assert.Equal(t, diagnostics.Warning, ds[0].Severity)
	})

	t.Run("as error", func(t *testing.T) {
		opts := DefaultOptions()
		opts.UnreachableAsError = true
		ch := newTestChecker(opts)
		inferString(t, ch, expr())
		ds := ch.Diagnostics()
		require.Len(t, ds, 1)
		assert.Equal(t, diagnostics.WarnUnreachablePattern, ds[0].Code)
		assert.True(t, ds[0].IsError())
	})

	t.Run("constructor covered by earlier arms", func(t *testing.T) {
		ch := newTestChecker(DefaultOptions())
		e := c.FuncT("o", optionOf(c.TName("Int")), c.Match(c.Var("o"),
			c.Arm(c.PCtor("Some", c.PWild()), c.Int(1)),
			c.Arm(c.PCtor("None"), c.Int(0)),
			c.Arm(c.PCtor("Some", c.PLit(c.Int(1))), c.Int(2)),
		))
		inferString(t, ch, e)
		assert.Equal(t, []diagnostics.Code{diagnostics.WarnUnreachablePattern}, codes(ch.Diagnostics()))
	})
}
