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

// Pattern is the base for all match and binding patterns.
type Pattern interface {
	Node
	// Name of the syntax-type of the pattern.
	PatternName() string
}

var (
	_ Pattern = (*WildcardPat)(nil)
	_ Pattern = (*VarPat)(nil)
	_ Pattern = (*LiteralPat)(nil)
	_ Pattern = (*ConstructorPat)(nil)
	_ Pattern = (*RecordPat)(nil)
	_ Pattern = (*TuplePat)(nil)
	_ Pattern = (*OrPat)(nil)
	_ Pattern = (*AnnotatedPat)(nil)
)

// Wildcard pattern: `_`
type WildcardPat struct {
	At Location
}

// Variable pattern: `x`
type VarPat struct {
	Name string
	At   Location
}

// Literal pattern: `1`, `"done"`, `true`. Value is one of IntLit, FloatLit, StringLit, BoolLit or UnitLit.
type LiteralPat struct {
	Value Expr
	At    Location
}

// Constructor pattern: `Some(x)`, `None`
type ConstructorPat struct {
	Name string
	Args []Pattern
	At   Location
}

// Record pattern matching a subset of fields: `{ name: n, age: _ }`
type RecordPat struct {
	Fields []FieldPat
	At     Location
}

// Paired label and pattern
type FieldPat struct {
	Label   string
	Pattern Pattern
	At      Location
}

// Tuple pattern: `(a, b)`
type TuplePat struct {
	Elems []Pattern
	At    Location
}

// Or-pattern: `"pending" | "loading"`
type OrPat struct {
	Alts []Pattern
	At   Location
}

// Annotated pattern: `(x : Int)`
type AnnotatedPat struct {
	Pattern Pattern
	Type    TypeExpr
	At      Location
}

func (p *WildcardPat) Loc() Location    { return p.At }
func (p *VarPat) Loc() Location         { return p.At }
func (p *LiteralPat) Loc() Location     { return p.At }
func (p *ConstructorPat) Loc() Location { return p.At }
func (p *RecordPat) Loc() Location      { return p.At }
func (p *TuplePat) Loc() Location       { return p.At }
func (p *OrPat) Loc() Location          { return p.At }
func (p *AnnotatedPat) Loc() Location   { return p.At }

func (p *WildcardPat) PatternName() string    { return "WildcardPat" }
func (p *VarPat) PatternName() string         { return "VarPat" }
func (p *LiteralPat) PatternName() string     { return "LiteralPat" }
func (p *ConstructorPat) PatternName() string { return "ConstructorPat" }
func (p *RecordPat) PatternName() string      { return "RecordPat" }
func (p *TuplePat) PatternName() string       { return "TuplePat" }
func (p *OrPat) PatternName() string          { return "OrPat" }
func (p *AnnotatedPat) PatternName() string   { return "AnnotatedPat" }
