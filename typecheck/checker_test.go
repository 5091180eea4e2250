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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	c "github.com/mbcrawfo/vibefun-sub014/construct"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

func TestTopLevelDeclarations(t *testing.T) {
	n := c.Var("n")
	r := checkModule(t,
		c.LetDecl("id", c.Func1("x", c.Var("x"))),
		c.LetDecl("pair", c.Tuple(c.Call(c.Var("id"), c.Int(1)), c.Call(c.Var("id"), c.Str("a")))),
		c.LetRecursiveDecl("fact", c.Func1("n", c.Match(c.BinOp(ast.Equal, n, c.Int(0)),
			c.Arm(c.PLit(c.Bool(true)), c.Int(1)),
			c.Arm(c.PLit(c.Bool(false)), c.BinOp(ast.Multiply, n, c.Call(c.Var("fact"), c.BinOp(ast.Subtract, n, c.Int(1))))),
		))),
		c.LetRecDecl(
			c.Binding("ping", c.Func1("n", c.Call(c.Var("pong"), n))),
			c.Binding("pong", c.Func1("n", c.Call(c.Var("ping"), n))),
		),
		c.LetDecl("none", c.Ctor("None")),
	)
	require.Empty(t, r.Diagnostics)

	assert.Equal(t, "'a -> 'a", scheme(t, r, "id"))
	assert.True(t, r.Schemes["id"].IsPolymorphic())
	assert.Equal(t, "(Int, String)", scheme(t, r, "pair"))
	assert.Equal(t, "Int -> Int", scheme(t, r, "fact"))
	assert.Equal(t, "'a -> 'b", scheme(t, r, "ping"))
	assert.Equal(t, "'a -> 'b", scheme(t, r, "pong"))
	assert.Equal(t, "Option<'a>", scheme(t, r, "none"))

	mi := r.Interface()
	assert.Equal(t, "test", mi.Name)
	assert.Contains(t, mi.Values, "fact")
	assert.NotContains(t, mi.Values, "ref")
	assert.NotContains(t, mi.Types, "Option")
}

func TestTopLevelValueRestriction(t *testing.T) {
	r := checkModule(t,
		c.LetDecl("cell", c.Call(c.Var("ref"), c.Ctor("None"))),
		c.LetDecl("counter", c.Call(c.Var("ref"), c.Int(0))),
	)
	assert.Equal(t, []diagnostics.Code{diagnostics.ErrValueRestriction}, codes(r.Errors()))
	assert.Equal(t, "Ref<Int>", scheme(t, r, "counter"))
	assert.False(t, r.Schemes["counter"].IsPolymorphic())
}

func TestTypeDeclarations(t *testing.T) {
	s := c.Var("s")
	r := checkModule(t,
		// Declared after use; type declarations are bound first.
		c.LetDecl("area", c.Func1("s", c.Match(s,
			c.Arm(c.PCtor("Circle", c.PVar("r")), c.BinOp(ast.Multiply, c.Var("r"), c.Var("r"))),
			c.Arm(c.PCtor("Square", c.PVar("w")), c.BinOp(ast.Multiply, c.Var("w"), c.Var("w"))),
		))),
		c.VariantDecl("Shape", nil,
			c.CtorDecl("Circle", c.TName("Float")),
			c.CtorDecl("Square", c.TName("Float"))),
		c.VariantDecl("Tree", []string{"T"},
			c.CtorDecl("Leaf"),
			c.CtorDecl("Node", c.TName("Tree", c.TParam("T")), c.TParam("T"), c.TName("Tree", c.TParam("T")))),
		c.AliasDecl("Point", nil, c.TTupleExpr(c.TName("Int"), c.TName("Int"))),
		c.RecordDecl("Person", nil, c.TField("name", c.TName("String")), c.TField("home", c.TName("Point"))),
		c.AliasDecl("Pair", []string{"A", "B"}, c.TTupleExpr(c.TParam("A"), c.TParam("B"))),
		c.ExternalType("Element"),
		c.External("document", c.TName("Element"), "document"),

		c.LetDecl("leaf", c.Ctor("Leaf")),
		c.LetDecl("tree", c.Ctor("Node", c.Ctor("Leaf"), c.Int(1), c.Ctor("Leaf"))),
		c.LetDecl("origin", c.Annotate(c.Tuple(c.Int(0), c.Int(0)), c.TName("Point"))),
		c.LetDecl("name", c.FuncT("p", c.TName("Person"), c.Select(c.Var("p"), "name"))),
		c.LetDecl("swap", c.FuncT("p", c.TName("Pair", c.TName("Int"), c.TName("String")),
			c.Match(c.Var("p"), c.Arm(c.PTuple(c.PVar("a"), c.PVar("b")), c.Tuple(c.Var("b"), c.Var("a")))))),
		c.LetDecl("doc", c.Var("document")),
	)
	require.Empty(t, r.Diagnostics)

	assert.Equal(t, "Shape -> Float", scheme(t, r, "area"))
	assert.Equal(t, "Tree<'a>", scheme(t, r, "leaf"))
	assert.Equal(t, "Tree<Int>", scheme(t, r, "tree"))
	assert.Equal(t, "(Int, Int)", scheme(t, r, "origin"))
	assert.Equal(t, "{ home: (Int, Int), name: String } -> String", scheme(t, r, "name"))
	assert.Equal(t, "((Int, String)) -> (String, Int)", scheme(t, r, "swap"))
	assert.Equal(t, "Element", scheme(t, r, "doc"))

	b, ok := r.Env.LookupType("Shape")
	require.True(t, ok)
	assert.Equal(t, 0, b.Arity())
	ctor, ok := r.Env.LookupValue("Node")
	require.True(t, ok)
	assert.Equal(t, &CtorInfo{Variant: "Tree", Arity: 3}, ctor.(*Value).Ctor)
	assert.Contains(t, r.Interface().Types, "Tree")
}

func TestTypeDeclarationErrors(t *testing.T) {
	for _, tt := range []struct {
		name  string
		decls []ast.Decl
		codes []diagnostics.Code
	}{
		{"recursive alias", []ast.Decl{
			c.AliasDecl("A", nil, c.TName("B")),
			c.AliasDecl("B", nil, c.TName("List", c.TName("A"))),
		}, []diagnostics.Code{diagnostics.ErrRecursiveTypeAlias}},
		{"self-referential record", []ast.Decl{
			c.RecordDecl("Node", nil, c.TField("next", c.TName("Node"))),
		}, []diagnostics.Code{diagnostics.ErrRecursiveTypeAlias}},
		{"duplicate type", []ast.Decl{
			c.AliasDecl("A", nil, c.TName("Int")),
			c.AliasDecl("A", nil, c.TName("String")),
		}, []diagnostics.Code{diagnostics.ErrDuplicateDefinition}},
		{"undefined type", []ast.Decl{
			c.AliasDecl("A", nil, c.TName("Nope")),
		}, []diagnostics.Code{diagnostics.ErrUndefinedType}},
		{"unknown parameter", []ast.Decl{
			c.VariantDecl("Box", nil, c.CtorDecl("Box", c.TParam("T"))),
		}, []diagnostics.Code{diagnostics.ErrUndefinedType}},
		{"type argument count", []ast.Decl{
			c.AliasDecl("A", nil, c.TName("Option", c.TName("Int"), c.TName("Int"))),
		}, []diagnostics.Code{diagnostics.ErrTypeArgumentCountMismatch}},
		{"duplicate constructor", []ast.Decl{
			c.VariantDecl("V", nil, c.CtorDecl("X"), c.CtorDecl("X")),
		}, []diagnostics.Code{diagnostics.ErrDuplicateDefinition}},
		{"duplicate in recursive group", []ast.Decl{
			c.LetRecDecl(c.Binding("f", c.Int(1)), c.Binding("f", c.Int(2))),
		}, []diagnostics.Code{diagnostics.ErrDuplicateDefinition}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r := checkModule(t, tt.decls...)
			assert.Equal(t, tt.codes, codes(r.Errors()))
		})
	}
}

func TestContinueAfterErrors(t *testing.T) {
	r := checkModule(t,
		c.LetDecl("a", c.Var("nope")),
		c.LetDecl("b", c.Call(c.Var("a"), c.Int(1))),
		c.LetDecl("c", c.BinOp(ast.Add, c.Int(1), c.Str("x"))),
		c.LetDecl("d", c.Int(1)),
	)
	errs := r.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, diagnostics.ErrUndefinedVariable, errs[0].Code)
	assert.Equal(t, diagnostics.ErrCannotUnify, errs[1].Code)
	assert.True(t, r.HasErrors())
	assert.Equal(t, "Int", scheme(t, r, "d"))
	_, ok := r.Schemes["a"]
	assert.False(t, ok)
}

func TestMaxErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxErrors = 1
	r := Check(c.Module("test",
		c.LetDecl("a", c.Var("x")),
		c.LetDecl("b", c.Var("y")),
		c.LetDecl("c", c.Int(1)),
	), nil, opts)
	assert.Len(t, r.Errors(), 1)
	_, ok := r.Schemes["c"]
	assert.False(t, ok)
}

func TestImports(t *testing.T) {
	lib := checkModule(t,
		c.VariantDecl("Maybe", []string{"T"},
			c.CtorDecl("Just", c.TParam("T")),
			c.CtorDecl("Nothing")),
		c.LetDecl("id", c.Func1("x", c.Var("x"))),
		c.LetDecl("mk", c.Func1("x", c.Ctor("Just", c.Var("x")))),
	)
	require.Empty(t, lib.Diagnostics)
	imports := map[string]*ModuleInterface{"lib": lib.Interface()}

	t.Run("values, types and constructors", func(t *testing.T) {
		m := c.Module("main",
			c.Import("lib", "id", "Maybe"),
			c.LetDecl("x", c.Ctor("Just", c.Call(c.Var("id"), c.Int(1)))),
			c.LetDecl("get", c.Func1("m", c.Match(c.Var("m"),
				c.Arm(c.PCtor("Just", c.PVar("v")), c.Var("v")),
				c.Arm(c.PCtor("Nothing"), c.Int(0)),
			))),
		)
		r := Check(m, imports, DefaultOptions())
		require.Empty(t, r.Diagnostics)
		assert.Equal(t, "Maybe<Int>", scheme(t, r, "x"))
		assert.Equal(t, "Maybe<Int> -> Int", scheme(t, r, "get"))
		assert.NotContains(t, r.Interface().Values, "id")
	})

	t.Run("alias", func(t *testing.T) {
		imp := c.Import("lib")
		imp.Names = []ast.ImportName{{Name: "id", Alias: "identity"}}
		r := Check(c.Module("main", imp, c.LetDecl("x", c.Call(c.Var("identity"), c.Str("a")))), imports, DefaultOptions())
		require.Empty(t, r.Diagnostics)
		assert.Equal(t, "String", scheme(t, r, "x"))
	})

	t.Run("polymorphic values at several types", func(t *testing.T) {
		// Local type-variables are allocated from the same ids the library used.
		r := Check(c.Module("main",
			c.Import("lib", "id", "mk"),
			c.LetDecl("twice", c.Func1("f", c.Func1("x", c.Call(c.Var("f"), c.Call(c.Var("f"), c.Var("x")))))),
			c.LetDecl("x", c.Tuple(
				c.Call(c.Var("id"), c.Int(1)),
				c.Call(c.Var("id"), c.Str("a")),
				c.Call(c.Var("mk"), c.Str("b")),
				c.Call(c.Call(c.Var("twice"), c.Var("id")), c.Bool(true)),
			)),
		), imports, DefaultOptions())
		require.Empty(t, r.Diagnostics)
		assert.Equal(t, "(Int, String, Maybe<String>, Bool)", scheme(t, r, "x"))
		b, ok := r.Env.LookupValue("mk")
		require.True(t, ok)
		assert.Equal(t, "'a -> Maybe<'a>", types.SchemeString(b.(*Value).Scheme))
	})

	t.Run("constructor without its type", func(t *testing.T) {
		r := Check(c.Module("main",
			c.Import("lib", "Just"),
			c.LetDecl("x", c.Ctor("Just", c.Str("a"))),
		), imports, DefaultOptions())
		require.Empty(t, r.Diagnostics)
		assert.Equal(t, "Maybe<String>", scheme(t, r, "x"))
	})

	t.Run("aliased variant exhaustiveness", func(t *testing.T) {
		imp := c.Import("lib")
		imp.Names = []ast.ImportName{{Name: "Maybe", Alias: "M"}}
		r := Check(c.Module("main", imp,
			c.LetDecl("get", c.Func1("m", c.Match(c.Var("m"),
				c.Arm(c.PCtor("Just", c.PVar("v")), c.Var("v")),
			))),
		), imports, DefaultOptions())
		require.Len(t, r.Errors(), 1)
		assert.Equal(t, diagnostics.ErrNonExhaustiveMatch, r.Errors()[0].Code)
		assert.Equal(t, []string{"Nothing"}, r.Errors()[0].Notes)
	})

	t.Run("variant value from an imported function", func(t *testing.T) {
		r := Check(c.Module("main",
			c.Import("lib", "mk", "Just"),
			c.LetDecl("get", c.Match(c.Call(c.Var("mk"), c.Int(1)),
				c.Arm(c.PCtor("Just", c.PVar("v")), c.Var("v")),
			)),
		), imports, DefaultOptions())
		require.Len(t, r.Errors(), 1)
		assert.Equal(t, diagnostics.ErrNonExhaustiveMatch, r.Errors()[0].Code)
		assert.Equal(t, []string{"Nothing"}, r.Errors()[0].Notes)
	})

	t.Run("variants re-exported transitively", func(t *testing.T) {
		mid := Check(c.Module("mid",
			c.Import("lib", "mk"),
			c.LetDecl("wrap", c.Func1("x", c.Call(c.Var("mk"), c.Var("x")))),
		), imports, DefaultOptions())
		require.Empty(t, mid.Diagnostics)
		require.Contains(t, mid.Interface().Variants, "Maybe")

		r := Check(c.Module("main",
			c.Import("mid", "wrap"),
			c.LetDecl("get", c.Func1("n", c.Match(c.Call(c.Var("wrap"), c.Var("n")),
				c.Arm(c.PWild(), c.Int(0)),
			))),
		), map[string]*ModuleInterface{"mid": mid.Interface()}, DefaultOptions())
		require.Empty(t, r.Diagnostics)
		assert.Equal(t, "'a -> Int", scheme(t, r, "get"))
	})

	t.Run("missing module", func(t *testing.T) {
		r := Check(c.Module("main",
			c.Import("nope", "id"),
			c.LetDecl("x", c.Call(c.Var("id"), c.Int(1))),
		), imports, DefaultOptions())
		assert.Equal(t, []diagnostics.Code{diagnostics.ErrImportNotFound}, codes(r.Errors()))
	})

	t.Run("missing name", func(t *testing.T) {
		r := Check(c.Module("main", c.Import("lib", "nope")), imports, DefaultOptions())
		assert.Equal(t, []diagnostics.Code{diagnostics.ErrImportNotFound}, codes(r.Errors()))
	})
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Check(c.Module("test",
		c.LetDecl("x", c.Div(c.Int(1), c.Int(2))),
		c.LetDecl("y", c.Var("nope")),
	), nil, opts)

	out := buf.String()
	assert.Contains(t, out, "operator specialized")
	assert.Contains(t, out, "declaration checked")
	assert.Contains(t, out, "declaration failed")
	assert.Contains(t, out, string(diagnostics.ErrUndefinedVariable))
}
