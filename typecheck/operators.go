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
	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

func (ctx *Context) inferBinOp(env *TypeEnv, e *ast.BinOp, s types.Subst) (types.Type, types.Subst, error) {
	lt, s, err := ctx.Infer(env, e.Left, s)
	if err != nil {
		return nil, s, err
	}
	rt, s, err := ctx.Infer(env, e.Right, s)
	if err != nil {
		return nil, s, err
	}

	switch e.Op {
	case ast.Add, ast.Subtract, ast.Multiply, ast.Modulo,
		ast.Less, ast.LessEqual, ast.Greater, ast.GreaterEqual, ast.Equal, ast.NotEqual:
		// Literal-typed operands take part as their primitive.
		lt, rt = types.Widen(s.Apply(lt)), types.Widen(s.Apply(rt))
	}

	switch e.Op {
	case ast.Add, ast.Subtract, ast.Multiply, ast.Modulo:
		if s, err = ctx.Unify(lt, rt, s); err != nil {
			return nil, s, locate(err, e.Right.Loc())
		}
		return ctx.expectNumeric(e.Op, lt, s, e.At)

	case ast.Divide:
		return ctx.specializeDivide(e, lt, rt, s)

	case ast.IntDivide:
		return ctx.expectOperands(types.Int, types.Int, e, lt, rt, s)

	case ast.FloatDivide:
		return ctx.expectOperands(types.Float, types.Float, e, lt, rt, s)

	case ast.Less, ast.LessEqual, ast.Greater, ast.GreaterEqual:
		if s, err = ctx.Unify(lt, rt, s); err != nil {
			return nil, s, locate(err, e.Right.Loc())
		}
		switch t := s.Resolve(lt).(type) {
		case *types.Var:
			if s, err = ctx.Unify(t, types.Int, s); err != nil {
				return nil, s, locate(err, e.At)
			}
		case *types.Const:
			if t.Name != types.IntName && t.Name != types.FloatName && t.Name != types.StringName {
				return nil, s, nonComparable(e.Op, t, e.At)
			}
		case *types.Never:
		default:
			return nil, s, nonComparable(e.Op, s.Apply(t), e.At)
		}
		return types.Bool, s, nil

	case ast.Equal, ast.NotEqual:
		if s, err = ctx.Unify(lt, rt, s); err != nil {
			return nil, s, locate(err, e.Right.Loc())
		}
		return types.Bool, s, nil

	case ast.And, ast.Or:
		return ctx.expectOperands(types.Bool, types.Bool, e, lt, rt, s)

	case ast.Concat:
		return ctx.expectOperands(types.String, types.String, e, lt, rt, s)

	case ast.Assign:
		elem, s, err := ctx.expectRef(lt, s, e.Left.Loc())
		if err != nil {
			return nil, s, err
		}
		if s, err = ctx.Unify(elem, rt, s); err != nil {
			return nil, s, recode(err, diagnostics.ErrRefAssignmentMismatch, e.Right.Loc(),
				"Cannot assign a value of type %s to a reference of type %s",
				types.TypeString(s.Apply(rt)), types.TypeString(s.Apply(&types.Ref{Elem: elem})))
		}
		return types.Unit, s, nil
	}
	return nil, s, internalError("unexpected binary operator %d", int(e.Op))
}

// Narrow a generic division to integer or float division, once both operand types are known.
func (ctx *Context) specializeDivide(e *ast.BinOp, lt, rt types.Type, s types.Subst) (types.Type, types.Subst, error) {
	for _, operand := range []struct {
		t  types.Type
		at ast.Location
	}{{lt, e.Left.Loc()}, {rt, e.Right.Loc()}} {
		switch t := types.Widen(s.Resolve(operand.t)).(type) {
		case *types.Var, *types.Never:
		case *types.Const:
			if t.Name != types.IntName && t.Name != types.FloatName {
				return nil, s, nonNumeric(e.Op, t, operand.at)
			}
		default:
			return nil, s, nonNumeric(e.Op, s.Apply(t), operand.at)
		}
	}

	// Integer division only when both operands are known to be Int; an unresolved
	// operand makes the division a float division.
	if types.IsConst(types.Widen(s.Resolve(lt)), types.IntName) && types.IsConst(types.Widen(s.Resolve(rt)), types.IntName) {
		e.Op = ast.IntDivide
		ctx.log.Debug("operator specialized", "op", e.Op.String(), "at", e.At.String())
		return types.Int, s, nil
	}
	for _, t := range []types.Type{lt, rt} {
		if tv, ok := s.Resolve(t).(*types.Var); ok {
			s = s.Extend(tv.Id, types.Float)
		}
	}
	e.Op = ast.FloatDivide
	ctx.log.Debug("operator specialized", "op", e.Op.String(), "at", e.At.String())
	return types.Float, s, nil
}

func (ctx *Context) expectOperands(want, result types.Type, e *ast.BinOp, lt, rt types.Type, s types.Subst) (types.Type, types.Subst, error) {
	s, err := ctx.Unify(want, lt, s)
	if err != nil {
		return nil, s, locate(err, e.Left.Loc())
	}
	if s, err = ctx.Unify(want, rt, s); err != nil {
		return nil, s, locate(err, e.Right.Loc())
	}
	return result, s, nil
}

// Arithmetic operands must be Int or Float; unresolved operands default to Int.
func (ctx *Context) expectNumeric(op ast.Op, t types.Type, s types.Subst, at ast.Location) (types.Type, types.Subst, error) {
	switch rt := s.Resolve(t).(type) {
	case *types.Var:
		return types.Int, s.Extend(rt.Id, types.Int), nil
	case *types.Const:
		if rt.Name == types.IntName || rt.Name == types.FloatName {
			return rt, s, nil
		}
		return nil, s, nonNumeric(op, rt, at)
	case *types.Never:
		return rt, s, nil
	default:
		return nil, s, nonNumeric(op, s.Apply(rt), at)
	}
}

// Resolve the element type of a reference. An operand whose type is not yet known is
// taken to be a reference.
func (ctx *Context) expectRef(t types.Type, s types.Subst, at ast.Location) (types.Type, types.Subst, error) {
	switch rt := s.Resolve(t).(type) {
	case *types.Ref:
		return rt.Elem, s, nil
	case *types.Var:
		elem := ctx.NewVar()
		s, err := ctx.Unify(rt, &types.Ref{Elem: elem}, s)
		return elem, s, locate(err, at)
	case *types.Never:
		return ctx.NewVar(), s, nil
	default:
		return nil, s, fail(diagnostics.ErrNotARef, at, "Type %s is not a reference", types.TypeString(s.Apply(rt)))
	}
}

func (ctx *Context) inferUnaryOp(env *TypeEnv, e *ast.UnaryOp, s types.Subst) (types.Type, types.Subst, error) {
	t, s, err := ctx.Infer(env, e.Operand, s)
	if err != nil {
		return nil, s, err
	}
	switch e.Op {
	case ast.Negate:
		switch rt := types.Widen(s.Resolve(t)).(type) {
		case *types.Var:
			return types.Int, s.Extend(rt.Id, types.Int), nil
		case *types.Const:
			if rt.Name == types.IntName || rt.Name == types.FloatName {
				return rt, s, nil
			}
		case *types.Never:
			return rt, s, nil
		}
		return nil, s, fail(diagnostics.ErrNonNumericOperand, e.Operand.Loc(),
			"Operator - expects a numeric operand, found %s", types.TypeString(s.Apply(t)))

	case ast.Not:
		if s, err = ctx.Unify(types.Bool, t, s); err != nil {
			return nil, s, locate(err, e.Operand.Loc())
		}
		return types.Bool, s, nil

	case ast.Deref:
		return ctx.expectRef(t, s, e.Operand.Loc())
	}
	return nil, s, internalError("unexpected unary operator %d", int(e.Op))
}

func nonNumeric(op ast.Op, t types.Type, at ast.Location) error {
	return fail(diagnostics.ErrNonNumericOperand, at, "Operator %s expects numeric operands, found %s", op, types.TypeString(t))
}

func nonComparable(op ast.Op, t types.Type, at ast.Location) error {
	return fail(diagnostics.ErrNonComparableOperand, at, "Operator %s expects Int, Float or String operands, found %s", op, types.TypeString(t))
}
