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

// ResolveTypeExpr converts a type expression into a type.
//
// When params is nil, type parameters are flexible: each distinct name denotes one fresh
// type-variable for the declaration being checked. Otherwise only names in params may be used.
func (ctx *Context) ResolveTypeExpr(env *TypeEnv, te ast.TypeExpr, params map[string]*types.Var) (types.Type, error) {
	switch te := te.(type) {
	case *ast.TypeVarExpr:
		if params != nil {
			if tv, ok := params[te.Name]; ok {
				return tv, nil
			}
			return nil, fail(diagnostics.ErrUndefinedType, te.At, "Undefined type parameter '%s", te.Name)
		}
		if tv, ok := ctx.annotVars[te.Name]; ok {
			return tv, nil
		}
		tv := ctx.NewVar()
		ctx.annotVars[te.Name] = tv
		return tv, nil

	case *ast.TypeNameExpr:
		args := make([]types.Type, len(te.Args))
		for i, arg := range te.Args {
			t, err := ctx.ResolveTypeExpr(env, arg, params)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		if tv, ok := params[te.Name]; ok && len(args) == 0 {
			return tv, nil
		}
		b, ok := env.LookupType(te.Name)
		if !ok {
			return nil, fail(diagnostics.ErrUndefinedType, te.At, "Undefined type %s", te.Name)
		}
		if b.Arity() != len(args) {
			return nil, fail(diagnostics.ErrTypeArgumentCountMismatch, te.At,
				"Type %s expects %d type argument(s), but was given %d", te.Name, b.Arity(), len(args))
		}
		return applyTypeBinding(te.Name, b, args), nil

	case *ast.FunTypeExpr:
		ps := make([]types.Type, len(te.Params))
		for i, p := range te.Params {
			t, err := ctx.ResolveTypeExpr(env, p, params)
			if err != nil {
				return nil, err
			}
			ps[i] = t
		}
		ret, err := ctx.ResolveTypeExpr(env, te.Return, params)
		if err != nil {
			return nil, err
		}
		return &types.Fun{Params: ps, Return: ret}, nil

	case *ast.RecordTypeExpr:
		fields, err := ctx.resolveFields(env, te, params)
		if err != nil {
			return nil, err
		}
		return &types.Record{Fields: fields}, nil

	case *ast.TupleTypeExpr:
		elems := make([]types.Type, len(te.Elems))
		for i, elem := range te.Elems {
			t, err := ctx.ResolveTypeExpr(env, elem, params)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return &types.Tuple{Elems: elems}, nil

	case *ast.UnionTypeExpr:
		members := make([]types.Type, len(te.Types))
		for i, m := range te.Types {
			t, err := ctx.ResolveTypeExpr(env, m, params)
			if err != nil {
				return nil, err
			}
			members[i] = t
		}
		return types.NewUnion(members...), nil

	case *ast.LiteralTypeExpr:
		base, err := literalType(te.Value)
		if err != nil {
			return nil, err
		}
		if c, ok := base.(*types.Const); ok && c != types.Unit {
			return &types.Literal{Base: c, Value: ast.ExprString(te.Value)}, nil
		}
		return base, nil
	}
	return nil, internalError("unexpected type expression %T", te)
}

func (ctx *Context) resolveFields(env *TypeEnv, te *ast.RecordTypeExpr, params map[string]*types.Var) (types.FieldMap, error) {
	seen := set.New[string](len(te.Fields))
	fields := make(map[string]types.Type, len(te.Fields))
	for _, f := range te.Fields {
		if !seen.Insert(f.Label) {
			return types.FieldMap{}, fail(diagnostics.ErrDuplicateField, f.At, "Duplicate field %s in record type", f.Label)
		}
		t, err := ctx.ResolveTypeExpr(env, f.Type, params)
		if err != nil {
			return types.FieldMap{}, err
		}
		fields[f.Label] = t
	}
	return types.NewFieldMap(fields), nil
}

// Expand a type binding applied to args. The argument count must already be checked.
func applyTypeBinding(name string, b TypeBinding, args []types.Type) types.Type {
	switch b := b.(type) {
	case *Alias:
		return instantiateParams(b.Params, args, b.Type)
	case *RecordType:
		return instantiateParams(b.Params, args, &types.Record{Fields: b.Fields})
	case *VariantType:
		return nominal(b.Name, args)
	case *ExternalType:
		switch {
		case b == neverTypeBinding:
			return types.NeverType
		case b == refTypeBinding:
			return &types.Ref{Elem: args[0]}
		}
		if len(args) == 0 {
			if prim, ok := primitives[b.Name]; ok {
				return prim
			}
		}
		return nominal(b.Name, args)
	}
	return nominal(name, args)
}

// Reference to a named type: `T` or `T<args>`
func nominal(name string, args []types.Type) types.Type {
	if len(args) == 0 {
		return &types.Const{Name: name}
	}
	return &types.App{Con: &types.Const{Name: name}, Args: args}
}

// Name of the type constructor of a nominal type.
func nominalName(t types.Type) (string, []types.Type, bool) {
	switch t := t.(type) {
	case *types.Const:
		return t.Name, nil, true
	case *types.App:
		if c, ok := t.Con.(*types.Const); ok {
			return c.Name, t.Args, true
		}
	}
	return "", nil, false
}

func literalType(e ast.Expr) (types.Type, error) {
	switch e.(type) {
	case *ast.IntLit:
		return types.Int, nil
	case *ast.FloatLit:
		return types.Float, nil
	case *ast.StringLit:
		return types.String, nil
	case *ast.BoolLit:
		return types.Bool, nil
	case *ast.UnitLit:
		return types.Unit, nil
	}
	return nil, internalError("unexpected literal %T", e)
}
