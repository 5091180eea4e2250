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
	"strconv"
)

// Location identifies a position in a source file.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	file := l.File
	if file == "" {
		file = "<input>"
	}
	return file + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// Node is implemented by every element of the core representation.
type Node interface {
	// Loc returns the source location of the node.
	Loc() Location
}

// Expr is the base for all core expressions.
type Expr interface {
	Node
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*FloatLit)(nil)
	_ Expr = (*StringLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*UnitLit)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*Match)(nil)
	_ Expr = (*RecordLit)(nil)
	_ Expr = (*RecordAccess)(nil)
	_ Expr = (*RecordUpdate)(nil)
	_ Expr = (*Construct)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*BinOp)(nil)
	_ Expr = (*UnaryOp)(nil)
	_ Expr = (*Annotate)(nil)
)

// Integer literal: `42`
type IntLit struct {
	Value int64
	At    Location
}

// Float literal: `4.2`
type FloatLit struct {
	Value float64
	At    Location
}

// String literal: `"hello"`
type StringLit struct {
	Value string
	At    Location
}

// Boolean literal: `true`
type BoolLit struct {
	Value bool
	At    Location
}

// Unit literal: `()`
type UnitLit struct {
	At Location
}

// Variable reference: `x`
type Var struct {
	Name string
	At   Location
}

// Single-parameter abstraction: `(x) => x`. ParamType is an optional annotation.
type Lambda struct {
	Param     string
	ParamType TypeExpr
	Body      Expr
	At        Location
}

// Application: `f(x, y)`
type App struct {
	Func Expr
	Args []Expr
	At   Location
}

// Let-binding: `let a = 1 in e`. A recursive binding may refer to itself within Value.
type Let struct {
	Name      string
	Value     Expr
	Body      Expr
	Recursive bool
	At        Location
}

// Grouped recursive let-bindings: `let rec a = ... and b = ... in e`
type LetRec struct {
	Bindings []Binding
	Body     Expr
	At       Location
}

// Paired identifier and value within a recursive group.
type Binding struct {
	Name  string
	Value Expr
	At    Location
}

// Pattern-matching expression:
//
//	match e {
//	  | Some(x) when x > 0 => x
//	  | _ => 0
//	}
type Match struct {
	Value Expr
	Arms  []MatchArm
	At    Location
}

// Arm within Match. Guard is optional.
type MatchArm struct {
	Pattern Pattern
	Guard   Expr
	Body    Expr
	At      Location
}

// Record construction: `{ name: "a", age: 1 }`
type RecordLit struct {
	Fields []Field
	At     Location
}

// Paired label and value
type Field struct {
	Label string
	Value Expr
	At    Location
}

// Selecting value of label: `r.a`
type RecordAccess struct {
	Record Expr
	Label  string
	At     Location
}

// Non-destructive record update: `{ ...r, a: 1 }`
type RecordUpdate struct {
	Record Expr
	Fields []Field
	At     Location
}

// Variant constructor application: `Some(x)` or `None`
type Construct struct {
	Name string
	Args []Expr
	At   Location
}

// Tuple: `(a, b)`
type Tuple struct {
	Elems []Expr
	At    Location
}

// Binary operation: `a + b`. Op may be narrowed in place during inference.
type BinOp struct {
	Op    Op
	Left  Expr
	Right Expr
	At    Location
}

// Unary operation: `-a`, `!r` (dereference) or `not a`
type UnaryOp struct {
	Op      UnOp
	Operand Expr
	At      Location
}

// Type annotation: `(e : T)`
type Annotate struct {
	Value Expr
	Type  TypeExpr
	At    Location
}

func (e *IntLit) Loc() Location       { return e.At }
func (e *FloatLit) Loc() Location     { return e.At }
func (e *StringLit) Loc() Location    { return e.At }
func (e *BoolLit) Loc() Location      { return e.At }
func (e *UnitLit) Loc() Location      { return e.At }
func (e *Var) Loc() Location          { return e.At }
func (e *Lambda) Loc() Location       { return e.At }
func (e *App) Loc() Location          { return e.At }
func (e *Let) Loc() Location          { return e.At }
func (e *LetRec) Loc() Location       { return e.At }
func (e *Match) Loc() Location        { return e.At }
func (e *RecordLit) Loc() Location    { return e.At }
func (e *RecordAccess) Loc() Location { return e.At }
func (e *RecordUpdate) Loc() Location { return e.At }
func (e *Construct) Loc() Location    { return e.At }
func (e *Tuple) Loc() Location        { return e.At }
func (e *BinOp) Loc() Location        { return e.At }
func (e *UnaryOp) Loc() Location      { return e.At }
func (e *Annotate) Loc() Location     { return e.At }

func (e *IntLit) ExprName() string       { return "IntLit" }
func (e *FloatLit) ExprName() string     { return "FloatLit" }
func (e *StringLit) ExprName() string    { return "StringLit" }
func (e *BoolLit) ExprName() string      { return "BoolLit" }
func (e *UnitLit) ExprName() string      { return "UnitLit" }
func (e *Var) ExprName() string          { return "Var" }
func (e *Lambda) ExprName() string       { return "Lambda" }
func (e *App) ExprName() string          { return "App" }
func (e *Let) ExprName() string          { return "Let" }
func (e *LetRec) ExprName() string       { return "LetRec" }
func (e *Match) ExprName() string        { return "Match" }
func (e *RecordLit) ExprName() string    { return "RecordLit" }
func (e *RecordAccess) ExprName() string { return "RecordAccess" }
func (e *RecordUpdate) ExprName() string { return "RecordUpdate" }
func (e *Construct) ExprName() string    { return "Construct" }
func (e *Tuple) ExprName() string        { return "Tuple" }
func (e *BinOp) ExprName() string        { return "BinOp" }
func (e *UnaryOp) ExprName() string      { return "UnaryOp" }
func (e *Annotate) ExprName() string     { return "Annotate" }
