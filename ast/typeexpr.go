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

// TypeExpr is a type as written in annotations and declarations.
type TypeExpr interface {
	Node
	TypeExprName() string
}

var (
	_ TypeExpr = (*TypeVarExpr)(nil)
	_ TypeExpr = (*TypeNameExpr)(nil)
	_ TypeExpr = (*FunTypeExpr)(nil)
	_ TypeExpr = (*RecordTypeExpr)(nil)
	_ TypeExpr = (*TupleTypeExpr)(nil)
	_ TypeExpr = (*UnionTypeExpr)(nil)
	_ TypeExpr = (*LiteralTypeExpr)(nil)
)

// Type parameter reference: `'a`
type TypeVarExpr struct {
	Name string
	At   Location
}

// Named type, optionally applied: `Int`, `List<Int>`, `Ref<a>`
type TypeNameExpr struct {
	Name string
	Args []TypeExpr
	At   Location
}

// Function type: `(Int, Int) -> Int`
type FunTypeExpr struct {
	Params []TypeExpr
	Return TypeExpr
	At     Location
}

// Record type: `{ name: String }`
type RecordTypeExpr struct {
	Fields []FieldTypeExpr
	At     Location
}

// Paired label and type
type FieldTypeExpr struct {
	Label string
	Type  TypeExpr
	At    Location
}

// Tuple type: `(Int, String)`
type TupleTypeExpr struct {
	Elems []TypeExpr
	At    Location
}

// Union type: `Int | String`, `"a" | "b"`
type UnionTypeExpr struct {
	Types []TypeExpr
	At    Location
}

// Literal type: `"pending"`, `1`. Value is a StringLit or IntLit.
type LiteralTypeExpr struct {
	Value Expr
	At    Location
}

func (t *TypeVarExpr) Loc() Location     { return t.At }
func (t *TypeNameExpr) Loc() Location    { return t.At }
func (t *FunTypeExpr) Loc() Location     { return t.At }
func (t *RecordTypeExpr) Loc() Location  { return t.At }
func (t *TupleTypeExpr) Loc() Location   { return t.At }
func (t *UnionTypeExpr) Loc() Location   { return t.At }
func (t *LiteralTypeExpr) Loc() Location { return t.At }

func (t *TypeVarExpr) TypeExprName() string     { return "TypeVarExpr" }
func (t *TypeNameExpr) TypeExprName() string    { return "TypeNameExpr" }
func (t *FunTypeExpr) TypeExprName() string     { return "FunTypeExpr" }
func (t *RecordTypeExpr) TypeExprName() string  { return "RecordTypeExpr" }
func (t *TupleTypeExpr) TypeExprName() string   { return "TupleTypeExpr" }
func (t *UnionTypeExpr) TypeExprName() string   { return "UnionTypeExpr" }
func (t *LiteralTypeExpr) TypeExprName() string { return "LiteralTypeExpr" }
