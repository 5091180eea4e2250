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

// Op is a binary operator tag.
type Op int

const (
	Add Op = iota
	Subtract
	Multiply
	// Generic division, produced by the desugarer. Inference narrows it to IntDivide or FloatDivide.
	Divide
	IntDivide
	FloatDivide
	Modulo
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	And
	Or
	Concat
	// Reference assignment: `r := v`
	Assign
)

var opNames = [...]string{
	Add:          "+",
	Subtract:     "-",
	Multiply:     "*",
	Divide:       "/",
	IntDivide:    "/int",
	FloatDivide:  "/float",
	Modulo:       "%",
	Equal:        "==",
	NotEqual:     "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	And:          "&&",
	Or:           "||",
	Concat:       "&",
	Assign:       ":=",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "<op>"
	}
	return opNames[op]
}

// IsGeneric reports whether op must still be specialized by inference.
func (op Op) IsGeneric() bool { return op == Divide }

// UnOp is a unary operator tag.
type UnOp int

const (
	Negate UnOp = iota
	Not
	// Reference dereference: `!r`
	Deref
)

func (op UnOp) String() string {
	switch op {
	case Negate:
		return "-"
	case Not:
		return "not "
	case Deref:
		return "!"
	}
	return "<unop>"
}
