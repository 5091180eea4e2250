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

func logDecl(params ...string) *ast.ExternalDecl {
	ps := make([]ast.TypeExpr, len(params))
	for i, p := range params {
		ps[i] = c.TName(p)
	}
	return c.External("log", c.TFunExpr(ps, c.TName("Unit")), "console.log")
}

func TestOverloadResolution(t *testing.T) {
	r := checkModule(t,
		logDecl("String"),
		logDecl("String", "Int"),
		c.LetDecl("one", c.Call(c.Var("log"), c.Str("a"))),
		c.LetDecl("two", c.Call(c.Var("log"), c.Str("a"), c.Int(1))),
		c.LetDecl("three", c.Call(c.Var("log"), c.Str("a"), c.Int(1), c.Int(2))),
		c.LetDecl("wrongType", c.Call(c.Var("log"), c.Int(1))),
		c.LetDecl("value", c.Var("log")),
	)

	assert.Equal(t, "Unit", scheme(t, r, "one"))
	assert.Equal(t, "Unit", scheme(t, r, "two"))
	assert.Equal(t, []diagnostics.Code{
		diagnostics.ErrNoMatchingOverload,
		diagnostics.ErrCannotUnify,
		diagnostics.ErrFFIOverloadNotSupported,
	}, codes(r.Errors()))

	b, ok := r.Env.LookupValue("log")
	require.True(t, ok)
	require.True(t, IsOverloaded(b))
	require.True(t, IsExternal(b))
	overload := b.(*ExternalOverload)
	assert.Len(t, overload.Signatures, 2)
	assert.Equal(t, "console.log", overload.ForeignName)
	_, ok = r.Schemes["log"]
	assert.False(t, ok)

	t.Run("deterministic", func(t *testing.T) {
		first := ResolveOverload(overload, 2)
		require.Len(t, first, 1)
		for i := 0; i < 10; i++ {
			assert.Same(t, first[0], ResolveOverload(overload, 2)[0])
		}
		assert.Empty(t, ResolveOverload(overload, 0))
	})

	t.Run("no matching overload lists arities", func(t *testing.T) {
		d := r.Errors()[0]
		assert.Equal(t, []string{"available arities: 1, 2"}, d.Notes)
	})
}

func TestOverloadDeclarations(t *testing.T) {
	for _, tt := range []struct {
		name  string
		decls []ast.Decl
		code  diagnostics.Code
	}{
		{"inconsistent foreign name", []ast.Decl{
			logDecl("String"),
			c.External("log", c.TFunExpr([]ast.TypeExpr{c.TName("String"), c.TName("Int")}, c.TName("Unit")), "console.warn"),
		}, diagnostics.ErrFFIInconsistentName},
		{"arity clash", []ast.Decl{
			logDecl("String"),
			logDecl("Int"),
		}, diagnostics.ErrFFIOverloadArityClash},
		{"not a function", []ast.Decl{
			c.External("log", c.TName("Int"), "console.log"),
			logDecl("String"),
		}, diagnostics.ErrFFIOverloadNotFunction},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r := checkModule(t, tt.decls...)
			assert.Equal(t, []diagnostics.Code{tt.code}, codes(r.Errors()))
		})
	}

	t.Run("single external is an ordinary value", func(t *testing.T) {
		r := checkModule(t,
			c.External("identity", c.TFunExpr([]ast.TypeExpr{c.TParam("a")}, c.TParam("a")), "identity"),
			c.LetDecl("f", c.Var("identity")),
			c.LetDecl("x", c.Call(c.Var("identity"), c.Int(1))),
		)
		require.Empty(t, r.Diagnostics)
		assert.Equal(t, "'a -> 'a", scheme(t, r, "identity"))
		assert.Equal(t, "'a -> 'a", scheme(t, r, "f"))
		assert.Equal(t, "Int", scheme(t, r, "x"))
	})

	t.Run("different module", func(t *testing.T) {
		first := logDecl("String")
		second := logDecl("String", "Int")
		second.Module = "console"
		r := checkModule(t, first, second)
		assert.Equal(t, []diagnostics.Code{diagnostics.ErrFFIInconsistentName}, codes(r.Errors()))
	})
}
