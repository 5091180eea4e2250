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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprString(t *testing.T) {
	x := &Var{Name: "x"}
	for _, tt := range []struct {
		e    Expr
		want string
	}{
		{&FloatLit{Value: 2}, "2.0"},
		{&StringLit{Value: "a\"b"}, `"a\"b"`},
		{&Lambda{Param: "x", Body: x}, "(x) => x"},
		{&App{Func: &Lambda{Param: "x", Body: x}, Args: []Expr{&IntLit{Value: 1}}}, "((x) => x)(1)"},
		{&Let{Name: "y", Value: &IntLit{Value: 1}, Body: x}, "let y = 1 in x"},
		{&BinOp{Op: Divide, Left: x, Right: &IntLit{Value: 2}}, "x / 2"},
		{&BinOp{Op: IntDivide, Left: x, Right: &IntLit{Value: 2}}, "x /int 2"},
		{&Match{Value: x, Arms: []MatchArm{
			{Pattern: &ConstructorPat{Name: "Some", Args: []Pattern{&VarPat{Name: "y"}}}, Guard: &BoolLit{Value: true}, Body: x},
			{Pattern: &WildcardPat{}, Body: &UnitLit{}},
		}}, "match x { | Some(y) when true => x | _ => () }"},
	} {
		assert.Equal(t, tt.want, ExprString(tt.e))
	}
}

func TestPatternString(t *testing.T) {
	p := &OrPat{Alts: []Pattern{
		&LiteralPat{Value: &StringLit{Value: "pending"}},
		&TuplePat{Elems: []Pattern{&WildcardPat{}, &VarPat{Name: "x"}}},
	}}
	assert.Equal(t, `"pending" | (_, x)`, PatternString(p))
	assert.Equal(t, "{ a: _ }", PatternString(&RecordPat{Fields: []FieldPat{{Label: "a", Pattern: &WildcardPat{}}}}))
}

func TestTypeExprString(t *testing.T) {
	te := &FunTypeExpr{
		Params: []TypeExpr{&TypeNameExpr{Name: "List", Args: []TypeExpr{&TypeVarExpr{Name: "a"}}}},
		Return: &TypeNameExpr{Name: "Int"},
	}
	assert.Equal(t, "(List<'a>) -> Int", TypeExprString(te))
}

func TestWalkExpr(t *testing.T) {
	e := &Match{Value: &Var{Name: "x"}, Arms: []MatchArm{
		{Pattern: &WildcardPat{}, Guard: &Var{Name: "g"}, Body: &BinOp{Op: Add, Left: &Var{Name: "a"}, Right: &Var{Name: "b"}}},
	}}
	var names []string
	WalkExpr(e, func(e Expr) {
		if v, ok := e.(*Var); ok {
			names = append(names, v.Name)
		}
	})
	assert.Equal(t, []string{"x", "g", "a", "b"}, names)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "<input>:1:2", Location{Line: 1, Column: 2}.String())
	assert.Equal(t, "main.vf:3:4", Location{File: "main.vf", Line: 3, Column: 4}.String())
}
