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

// Package consteval evaluates arithmetic on constant operands with the semantics assigned
// to specialized operators.
package consteval

import (
	"math"

	"github.com/pkg/errors"

	"github.com/mbcrawfo/vibefun-sub014/ast"
)

// ErrDivisionByZero is returned when an integer operation divides by zero.
var ErrDivisionByZero = errors.New("integer division by zero")

// Int evaluates an integer operator. Division truncates toward zero, and the remainder
// takes the sign of the dividend.
func Int(op ast.Op, a, b int64) (int64, error) {
	switch op {
	case ast.Add:
		return a + b, nil
	case ast.Subtract:
		return a - b, nil
	case ast.Multiply:
		return a * b, nil
	case ast.IntDivide, ast.Modulo:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		if op == ast.Modulo {
			return a % b, nil
		}
		return a / b, nil
	}
	return 0, errors.Errorf("operator %s cannot be evaluated on Int", op)
}

// Float evaluates a float operator with IEEE 754 semantics; division by zero yields an
// infinity or NaN.
func Float(op ast.Op, a, b float64) (float64, error) {
	switch op {
	case ast.Add:
		return a + b, nil
	case ast.Subtract:
		return a - b, nil
	case ast.Multiply:
		return a * b, nil
	case ast.FloatDivide:
		return a / b, nil
	case ast.Modulo:
		return math.Mod(a, b), nil
	}
	return 0, errors.Errorf("operator %s cannot be evaluated on Float", op)
}

// Fold evaluates e when it is a specialized arithmetic operator applied to literals,
// folding nested operations first. It returns nil when e is not constant.
func Fold(e ast.Expr) (ast.Expr, error) {
	switch e := e.(type) {
	case *ast.IntLit, *ast.FloatLit:
		return e, nil
	case *ast.UnaryOp:
		if e.Op != ast.Negate {
			return nil, nil
		}
		v, err := Fold(e.Operand)
		if v == nil || err != nil {
			return nil, err
		}
		switch v := v.(type) {
		case *ast.IntLit:
			return &ast.IntLit{Value: -v.Value, At: e.At}, nil
		case *ast.FloatLit:
			return &ast.FloatLit{Value: -v.Value, At: e.At}, nil
		}
		return nil, nil
	case *ast.BinOp:
		if e.Op.IsGeneric() {
			return nil, errors.Errorf("%s: operator %s was not specialized", e.At, e.Op)
		}
		l, err := Fold(e.Left)
		if l == nil || err != nil {
			return nil, err
		}
		r, err := Fold(e.Right)
		if r == nil || err != nil {
			return nil, err
		}
		if a, ok := l.(*ast.IntLit); ok {
			if b, ok := r.(*ast.IntLit); ok && e.Op != ast.FloatDivide {
				v, err := Int(e.Op, a.Value, b.Value)
				if err != nil {
					return nil, errors.Wrapf(err, "%s", e.At)
				}
				return &ast.IntLit{Value: v, At: e.At}, nil
			}
		}
		v, err := Float(e.Op, toFloat(l), toFloat(r))
		if err != nil {
			return nil, errors.Wrapf(err, "%s", e.At)
		}
		return &ast.FloatLit{Value: v, At: e.At}, nil
	}
	return nil, nil
}

func toFloat(e ast.Expr) float64 {
	switch e := e.(type) {
	case *ast.IntLit:
		return float64(e.Value)
	case *ast.FloatLit:
		return e.Value
	}
	return math.NaN()
}
