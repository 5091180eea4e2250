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
	c "github.com/mbcrawfo/vibefun-sub014/construct"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

var primitives = map[string]types.Type{
	types.IntName:    types.Int,
	types.FloatName:  types.Float,
	types.StringName: types.String,
	types.BoolName:   types.Bool,
	types.UnitName:   types.Unit,
}

var (
	neverTypeBinding = &ExternalType{Name: "Never"}
	refTypeBinding   = &ExternalType{Name: "Ref", Params: 1}
)

// Variant types available to every module.
var prelude = []ast.Decl{
	c.VariantDecl("Option", []string{"T"},
		c.CtorDecl("Some", c.TParam("T")),
		c.CtorDecl("None")),
	c.VariantDecl("Result", []string{"T", "E"},
		c.CtorDecl("Ok", c.TParam("T")),
		c.CtorDecl("Err", c.TParam("E"))),
	c.VariantDecl("List", []string{"T"},
		c.CtorDecl("Cons", c.TParam("T"), c.TName("List", c.TParam("T"))),
		c.CtorDecl("Nil")),
}

func (ch *Checker) declareBuiltins() {
	env := NewTypeEnv()
	for name := range primitives {
		env = env.AddType(name, &ExternalType{Name: name})
	}
	ch.env = env.AddType("Never", neverTypeBinding).AddType("Ref", refTypeBinding)
	ch.declareTypes(prelude)

	// ref: forall a. (a) -> Ref<a>
	a := ch.ctx.newVarAt(1)
	ch.env = ch.env.AddValue("ref", &Value{Scheme: &types.Scheme{
		Vars: []int{a.Id},
		Type: &types.Fun{Params: []types.Type{a}, Return: &types.Ref{Elem: a}},
	}})
	// panic: (String) -> Never
	ch.env = ch.env.AddValue("panic", &Value{Scheme: types.Monomorphic(
		&types.Fun{Params: []types.Type{types.String}, Return: types.NeverType},
	)})
}
