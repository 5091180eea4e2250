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
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// Variables bound by a pattern, in binding order.
type patternBindings struct {
	names *set.Set[string]
	order []string
	types map[string]types.Type
	locs  map[string]ast.Location
}

func newPatternBindings() *patternBindings {
	return &patternBindings{
		names: set.New[string](4),
		types: make(map[string]types.Type, 4),
		locs:  make(map[string]ast.Location, 4),
	}
}

func (pb *patternBindings) add(name string, t types.Type, at ast.Location) error {
	if !pb.names.Insert(name) {
		return fail(diagnostics.ErrDuplicateBinding, at, "Variable %s is bound more than once in the same pattern", name)
	}
	pb.order = append(pb.order, name)
	pb.types[name], pb.locs[name] = t, at
	return nil
}

func (pb *patternBindings) String() string {
	names := pb.names.Slice()
	sort.Strings(names)
	return "{" + strings.Join(names, ", ") + "}"
}

// InferPattern unifies the pattern p with the expected type and returns env extended with
// every variable p binds.
func (ctx *Context) InferPattern(env *TypeEnv, p ast.Pattern, expected types.Type, s types.Subst) (*TypeEnv, types.Subst, error) {
	pb := newPatternBindings()
	s, err := ctx.bindPattern(env, p, expected, s, pb)
	if err != nil {
		return env, s, err
	}
	for _, name := range pb.order {
		env = env.addMono(name, pb.types[name], pb.locs[name])
	}
	return env, s, nil
}

func (ctx *Context) bindPattern(env *TypeEnv, p ast.Pattern, expected types.Type, s types.Subst, pb *patternBindings) (types.Subst, error) {
	switch p := p.(type) {
	case *ast.WildcardPat:
		return s, nil

	case *ast.VarPat:
		return s, pb.add(p.Name, expected, p.At)

	case *ast.LiteralPat:
		lt, err := literalType(p.Value)
		if err != nil {
			return s, err
		}
		if want := s.Apply(expected); isLiteralOf(want, lt) {
			if !hasLiteral(want, p.Value) {
				return s, fail(diagnostics.ErrCannotUnify, p.At, "Cannot unify: %s is not a value of %s",
					ast.ExprString(p.Value), types.TypeString(want))
			}
			return s, nil
		}
		s, err = ctx.Unify(expected, lt, s)
		return s, locate(err, p.At)

	case *ast.ConstructorPat:
		b, ok := env.LookupValue(p.Name)
		v, isValue := b.(*Value)
		if !ok || !isValue || v.Ctor == nil {
			return s, fail(diagnostics.ErrUndefinedConstructor, p.At, "Undefined constructor %s", p.Name)
		}
		if len(p.Args) != v.Ctor.Arity {
			return s, fail(diagnostics.ErrConstructorArityMismatch, p.At,
				"Constructor %s expects %d argument(s), but the pattern has %d", p.Name, v.Ctor.Arity, len(p.Args))
		}
		t := ctx.Instantiate(v.Scheme)
		fn, ok := t.(*types.Fun)
		if !ok {
			s, err := ctx.Unify(expected, t, s)
			return s, locate(err, p.At)
		}
		s, err := ctx.Unify(expected, fn.Return, s)
		if err != nil {
			return s, locate(err, p.At)
		}
		for i, arg := range p.Args {
			if s, err = ctx.bindPattern(env, arg, fn.Params[i], s, pb); err != nil {
				return s, err
			}
		}
		return s, nil

	case *ast.RecordPat:
		record, err := ctx.expectRecord(expected, s, p.At)
		if err != nil {
			return s, err
		}
		seen := set.New[string](len(p.Fields))
		for _, f := range p.Fields {
			if !seen.Insert(f.Label) {
				return s, fail(diagnostics.ErrDuplicateField, f.At, "Duplicate field %s in record pattern", f.Label)
			}
			var ft types.Type = ctx.NewVar()
			if record != nil {
				var ok bool
				if ft, ok = record.Fields.Get(f.Label); !ok {
					return s, fail(diagnostics.ErrUndefinedField, f.At, "Record %s has no field %s",
						types.TypeString(s.Apply(record)), f.Label)
				}
			}
			if s, err = ctx.bindPattern(env, f.Pattern, ft, s, pb); err != nil {
				return s, err
			}
		}
		return s, nil

	case *ast.TuplePat:
		elems := make([]types.Type, len(p.Elems))
		for i := range elems {
			elems[i] = ctx.NewVar()
		}
		s, err := ctx.Unify(expected, &types.Tuple{Elems: elems}, s)
		if err != nil {
			return s, locate(err, p.At)
		}
		for i, elem := range p.Elems {
			if s, err = ctx.bindPattern(env, elem, elems[i], s, pb); err != nil {
				return s, err
			}
		}
		return s, nil

	case *ast.OrPat:
		return ctx.bindOrPattern(env, p, expected, s, pb)

	case *ast.AnnotatedPat:
		want, err := ctx.ResolveTypeExpr(env, p.Type, nil)
		if err != nil {
			return s, err
		}
		if s, err = ctx.Unify(want, expected, s); err != nil {
			return s, locate(err, p.At)
		}
		return ctx.bindPattern(env, p.Pattern, want, s, pb)
	}
	return s, internalError("unexpected pattern %T", p)
}

// Every alternative of an or-pattern must bind the same names at the same types.
func (ctx *Context) bindOrPattern(env *TypeEnv, p *ast.OrPat, expected types.Type, s types.Subst, pb *patternBindings) (types.Subst, error) {
	if len(p.Alts) == 0 {
		return s, internalError("empty or-pattern")
	}
	alts := make([]*patternBindings, len(p.Alts))
	for i, alt := range p.Alts {
		alts[i] = newPatternBindings()
		var err error
		if s, err = ctx.bindPattern(env, alt, expected, s, alts[i]); err != nil {
			return s, err
		}
	}
	first := alts[0]
	for i, alt := range alts[1:] {
		if !first.names.Equal(alt.names) {
			return s, fail(diagnostics.ErrOrPatternBindingMismatch, p.Alts[i+1].Loc(),
				"Alternatives of an or-pattern must bind the same variables: %s and %s", first, alt).
				WithHint("bind the same names in every alternative, or use _")
		}
		for _, name := range first.order {
			var err error
			if s, err = ctx.Unify(first.types[name], alt.types[name], s); err != nil {
				return s, recode(err, diagnostics.ErrOrPatternBindingMismatch, alt.locs[name],
					"Variable %s has different types in alternatives of an or-pattern", name)
			}
		}
	}
	for _, name := range first.order {
		if err := pb.add(name, first.types[name], first.locs[name]); err != nil {
			return s, err
		}
	}
	return s, nil
}

func (ctx *Context) inferMatch(env *TypeEnv, m *ast.Match, s types.Subst) (types.Type, types.Subst, error) {
	if len(m.Arms) == 0 {
		return nil, s, fail(diagnostics.ErrEmptyMatch, m.At, "Match expression has no arms")
	}
	scrutinee, s, err := ctx.Infer(env, m.Value, s)
	if err != nil {
		return nil, s, err
	}
	result := ctx.NewVar()
	for _, arm := range m.Arms {
		armEnv, s2, err := ctx.InferPattern(env, arm.Pattern, scrutinee, s)
		if err != nil {
			return nil, s2, err
		}
		s = s2
		if arm.Guard != nil {
			gt, s2, err := ctx.Infer(armEnv, arm.Guard, s)
			if err != nil {
				return nil, s2, err
			}
			if s, err = ctx.Unify(types.Bool, gt, s2); err != nil {
				return nil, s, recode(err, diagnostics.ErrGuardTypeMismatch, arm.Guard.Loc(),
					"Match guard must have type Bool, found %s", types.TypeString(s.Apply(gt)))
			}
		}
		bt, s2, err := ctx.Infer(armEnv, arm.Body, s)
		if err != nil {
			return nil, s2, err
		}
		if s, err = ctx.Unify(result, bt, s2); err != nil {
			names := types.TypeStrings(s.Apply(bt), s.Apply(result))
			return nil, s, recode(err, diagnostics.ErrBranchTypeMismatch, arm.Body.Loc(),
				"Match arm has type %s, but earlier arms have type %s", names[0], names[1])
		}
	}
	if err := ctx.checkMatch(m, scrutinee, s); err != nil {
		return nil, s, err
	}
	return result, s, nil
}

// Reports whether t is a literal domain over the primitive base.
func isLiteralOf(t, base types.Type) bool {
	b, ok := types.IsLiteralDomain(t)
	c, isConst := base.(*types.Const)
	return ok && isConst && b.Name == c.Name
}

func hasLiteral(domain types.Type, value ast.Expr) bool {
	v := ast.ExprString(value)
	for _, lit := range types.Literals(domain) {
		if lit.Value == v {
			return true
		}
	}
	return false
}
