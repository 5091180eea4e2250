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
	"github.com/hashicorp/go-set/v3"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// Infer the type of e under env, threading the substitution s.
//
// The returned type may contain type-variables bound in the returned substitution.
// Errors are *diagnostics.Diagnostic values located at the failing sub-expression, or
// internal errors for unrecognized node shapes. Generic division operators within e
// are specialized in place.
func (ctx *Context) Infer(env *TypeEnv, e ast.Expr, s types.Subst) (types.Type, types.Subst, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		return types.Int, s, nil

	case *ast.FloatLit:
		return types.Float, s, nil

	case *ast.StringLit:
		return types.String, s, nil

	case *ast.BoolLit:
		return types.Bool, s, nil

	case *ast.UnitLit:
		return types.Unit, s, nil

	case *ast.Var:
		b, ok := env.LookupValue(e.Name)
		if !ok {
			return nil, s, fail(diagnostics.ErrUndefinedVariable, e.At, "Undefined variable %s", e.Name)
		}
		switch b := b.(type) {
		case *Value:
			return ctx.Instantiate(b.Scheme), s, nil
		case *External:
			return ctx.Instantiate(b.Scheme), s, nil
		case *ExternalOverload:
			return nil, s, fail(diagnostics.ErrFFIOverloadNotSupported, e.At,
				"Overloaded external %s cannot be used as a value", e.Name).
				WithHint("call it directly with the arguments of one of its signatures")
		}
		return nil, s, internalError("unexpected binding %T for %s", b, e.Name)

	case *ast.Lambda:
		var param types.Type
		if e.ParamType != nil {
			t, err := ctx.ResolveTypeExpr(env, e.ParamType, nil)
			if err != nil {
				return nil, s, err
			}
			param = t
		} else {
			param = ctx.NewVar()
		}
		body, s, err := ctx.Infer(env.addMono(e.Param, param, e.At), e.Body, s)
		if err != nil {
			return nil, s, err
		}
		return &types.Fun{Params: []types.Type{param}, Return: body}, s, nil

	case *ast.App:
		if callee, ok := e.Func.(*ast.Var); ok {
			if b, ok := env.LookupValue(callee.Name); ok {
				if overload, ok := b.(*ExternalOverload); ok {
					return ctx.inferOverloadedCall(env, callee.Name, overload, e, s)
				}
			}
		}
		ft, s, err := ctx.Infer(env, e.Func, s)
		if err != nil {
			return nil, s, err
		}
		return ctx.applyArgs(env, ft, e, e.Args, s)

	case *ast.Let:
		ctx.enterLevel()
		var (
			t   types.Type
			err error
		)
		if e.Recursive {
			tv := ctx.NewVar()
			t, s, err = ctx.Infer(env.addMono(e.Name, tv, e.At), e.Value, s)
			if err == nil {
				s, err = ctx.Unify(tv, t, s)
				err = locate(err, e.Value.Loc())
			}
		} else {
			t, s, err = ctx.Infer(env, e.Value, s)
		}
		ctx.leaveLevel()
		if err != nil {
			return nil, s, err
		}
		var sc *types.Scheme
		sc, s = ctx.bindScheme(e.Value, t, s)
		return ctx.Infer(env.AddValue(e.Name, &Value{Scheme: sc, At: e.At}), e.Body, s)

	case *ast.LetRec:
		bodyEnv, s, _, err := ctx.inferGroup(env, e.Bindings, s)
		if err != nil {
			return nil, s, err
		}
		return ctx.Infer(bodyEnv, e.Body, s)

	case *ast.Match:
		return ctx.inferMatch(env, e, s)

	case *ast.RecordLit:
		seen := set.New[string](len(e.Fields))
		fields := make(map[string]types.Type, len(e.Fields))
		for _, f := range e.Fields {
			if !seen.Insert(f.Label) {
				return nil, s, fail(diagnostics.ErrDuplicateField, f.At, "Duplicate field %s in record", f.Label)
			}
			t, s2, err := ctx.Infer(env, f.Value, s)
			if err != nil {
				return nil, s2, err
			}
			fields[f.Label], s = t, s2
		}
		return types.NewRecord(fields), s, nil

	case *ast.RecordAccess:
		rt, s, err := ctx.Infer(env, e.Record, s)
		if err != nil {
			return nil, s, err
		}
		record, err := ctx.expectRecord(rt, s, e.Record.Loc())
		if err != nil {
			return nil, s, err
		}
		if record == nil {
			return ctx.NewVar(), s, nil
		}
		ft, ok := record.Fields.Get(e.Label)
		if !ok {
			return nil, s, fail(diagnostics.ErrUndefinedField, e.At, "Record %s has no field %s",
				types.TypeString(s.Apply(record)), e.Label)
		}
		return ft, s, nil

	case *ast.RecordUpdate:
		rt, s, err := ctx.Infer(env, e.Record, s)
		if err != nil {
			return nil, s, err
		}
		record, err := ctx.expectRecord(rt, s, e.Record.Loc())
		if err != nil || record == nil {
			return rt, s, err
		}
		seen := set.New[string](len(e.Fields))
		for _, f := range e.Fields {
			if !seen.Insert(f.Label) {
				return nil, s, fail(diagnostics.ErrDuplicateField, f.At, "Duplicate field %s in record update", f.Label)
			}
			ft, ok := record.Fields.Get(f.Label)
			if !ok {
				return nil, s, fail(diagnostics.ErrUndefinedField, f.At, "Record %s has no field %s",
					types.TypeString(s.Apply(record)), f.Label)
			}
			vt, s2, err := ctx.Infer(env, f.Value, s)
			if err != nil {
				return nil, s2, err
			}
			if s, err = ctx.Unify(ft, vt, s2); err != nil {
				return nil, s, locate(err, f.Value.Loc())
			}
		}
		return record, s, nil

	case *ast.Construct:
		return ctx.inferConstruct(env, e, s)

	case *ast.Tuple:
		elems := make([]types.Type, len(e.Elems))
		for i, elem := range e.Elems {
			t, s2, err := ctx.Infer(env, elem, s)
			if err != nil {
				return nil, s2, err
			}
			elems[i], s = t, s2
		}
		return &types.Tuple{Elems: elems}, s, nil

	case *ast.BinOp:
		return ctx.inferBinOp(env, e, s)

	case *ast.UnaryOp:
		return ctx.inferUnaryOp(env, e, s)

	case *ast.Annotate:
		want, err := ctx.ResolveTypeExpr(env, e.Type, nil)
		if err != nil {
			return nil, s, err
		}
		t, s, err := ctx.Infer(env, e.Value, s)
		if err != nil {
			return nil, s, err
		}
		if s, err = ctx.Unify(want, t, s); err != nil {
			return nil, s, locate(err, e.Value.Loc())
		}
		if lt, err := literalType(e.Value); err == nil && isLiteralOf(want, lt) && !hasLiteral(want, e.Value) {
			return nil, s, fail(diagnostics.ErrCannotUnify, e.Value.Loc(), "Cannot unify: %s is not a value of %s",
				ast.ExprString(e.Value), types.TypeString(want))
		}
		return want, s, nil
	}
	return nil, s, internalError("unexpected expression %T", e)
}

// Apply a function of type ft to args. Extra arguments are applied to the returned function.
func (ctx *Context) applyArgs(env *TypeEnv, ft types.Type, call *ast.App, args []ast.Expr, s types.Subst) (types.Type, types.Subst, error) {
	var fn *types.Fun
	switch t := s.Resolve(ft).(type) {
	case *types.Fun:
		fn = t
	case *types.Var:
		// The callee is not yet known to be a function:
		params := make([]types.Type, len(args))
		for i := range params {
			params[i] = ctx.NewVar()
		}
		fn = &types.Fun{Params: params, Return: ctx.NewVar()}
		var err error
		if s, err = ctx.Unify(t, fn, s); err != nil {
			return nil, s, locate(err, call.Func.Loc())
		}
	case *types.Never:
		for _, arg := range args {
			var err error
			if _, s, err = ctx.Infer(env, arg, s); err != nil {
				return nil, s, err
			}
		}
		return types.NeverType, s, nil
	default:
		return nil, s, fail(diagnostics.ErrNotAFunction, call.Func.Loc(),
			"Cannot call a value of type %s", types.TypeString(s.Apply(t)))
	}

	if len(args) < len(fn.Params) {
		return nil, s, fail(diagnostics.ErrWrongArgumentCount, call.At,
			"Function of type %s expects %d argument(s), but was given %d",
			types.TypeString(s.Apply(fn)), len(fn.Params), len(args)).
			WithHint("partial application must be written as a lambda")
	}
	s, err := ctx.unifyArgs(env, fn.Params, args[:len(fn.Params)], s)
	if err != nil {
		return nil, s, err
	}
	if rest := args[len(fn.Params):]; len(rest) > 0 {
		return ctx.applyArgs(env, fn.Return, call, rest, s)
	}
	return fn.Return, s, nil
}

// Infer each argument, left-to-right, and unify it with its parameter type.
func (ctx *Context) unifyArgs(env *TypeEnv, params []types.Type, args []ast.Expr, s types.Subst) (types.Subst, error) {
	for i, arg := range args {
		at, s2, err := ctx.Infer(env, arg, s)
		if err != nil {
			return s2, err
		}
		if s, err = ctx.Unify(params[i], at, s2); err != nil {
			return s, locate(err, arg.Loc())
		}
	}
	return s, nil
}

// Resolve the operand type of a record access or update. A nil record is returned for
// operands of type Never.
func (ctx *Context) expectRecord(t types.Type, s types.Subst, at ast.Location) (*types.Record, error) {
	switch t := s.Resolve(t).(type) {
	case *types.Record:
		return t, nil
	case *types.Never:
		return nil, nil
	case *types.Var:
		return nil, fail(diagnostics.ErrNotARecord, at, "Cannot access fields of a value whose type is not yet known").
			WithHint("add a type annotation with the record type")
	default:
		return nil, fail(diagnostics.ErrNotARecord, at, "Type %s is not a record", types.TypeString(s.Apply(t)))
	}
}

func (ctx *Context) inferConstruct(env *TypeEnv, e *ast.Construct, s types.Subst) (types.Type, types.Subst, error) {
	b, ok := env.LookupValue(e.Name)
	v, isValue := b.(*Value)
	if !ok || !isValue || v.Ctor == nil {
		return nil, s, fail(diagnostics.ErrUndefinedConstructor, e.At, "Undefined constructor %s", e.Name)
	}
	if len(e.Args) != v.Ctor.Arity {
		return nil, s, fail(diagnostics.ErrConstructorArityMismatch, e.At,
			"Constructor %s expects %d argument(s), but was given %d", e.Name, v.Ctor.Arity, len(e.Args))
	}
	t := ctx.Instantiate(v.Scheme)
	fn, ok := t.(*types.Fun)
	if !ok {
		return t, s, nil
	}
	s, err := ctx.unifyArgs(env, fn.Params, e.Args, s)
	if err != nil {
		return nil, s, err
	}
	return fn.Return, s, nil
}

// Infer a group of mutually recursive bindings. All names are bound to fresh type-variables
// before any value is inferred, and generalized together afterwards.
func (ctx *Context) inferGroup(env *TypeEnv, bindings []ast.Binding, s types.Subst) (*TypeEnv, types.Subst, []*types.Scheme, error) {
	names := set.New[string](len(bindings))
	for _, b := range bindings {
		if !names.Insert(b.Name) {
			return env, s, nil, fail(diagnostics.ErrDuplicateDefinition, b.At, "%s is bound more than once in a recursive group", b.Name)
		}
	}

	ctx.enterLevel()
	vars := make([]*types.Var, len(bindings))
	groupEnv := env
	for i, b := range bindings {
		vars[i] = ctx.NewVar()
		groupEnv = groupEnv.addMono(b.Name, vars[i], b.At)
	}
	for i, b := range bindings {
		t, s2, err := ctx.Infer(groupEnv, b.Value, s)
		if err != nil {
			ctx.leaveLevel()
			return env, s2, nil, err
		}
		if s, err = ctx.Unify(vars[i], t, s2); err != nil {
			ctx.leaveLevel()
			return env, s, nil, locate(err, b.Value.Loc())
		}
	}
	ctx.leaveLevel()

	values := true
	for _, b := range bindings {
		values = values && IsSyntacticValue(b.Value)
	}
	schemes := make([]*types.Scheme, len(bindings))
	for i, b := range bindings {
		if values {
			schemes[i] = ctx.Generalize(vars[i], s)
		} else {
			schemes[i], s = ctx.Restrict(vars[i], s)
		}
		env = env.AddValue(b.Name, &Value{Scheme: schemes[i], At: b.At})
	}
	return env, s, schemes, nil
}
