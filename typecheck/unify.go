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
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// Unify a and b under s, returning s extended so that both resolve to the same type.
// The receiver's substitution is never modified; on failure the returned error is a *UnifyError.
func (ctx *Context) Unify(a, b types.Type, s types.Subst) (types.Subst, error) {
	a, b = s.Resolve(a), s.Resolve(b)
	if a == b {
		return s, nil
	}
	if _, ok := a.(*types.Never); ok {
		return s, nil
	}
	if _, ok := b.(*types.Never); ok {
		return s, nil
	}

	if av, ok := a.(*types.Var); ok {
		if bv, ok := b.(*types.Var); ok {
			switch {
			case av.Id == bv.Id:
				return s, nil
			case av.Level < bv.Level:
				return s.Extend(bv.Id, av), nil
			default:
				return s.Extend(av.Id, bv), nil
			}
		}
		return ctx.bindVar(av, b, s)
	}
	if bv, ok := b.(*types.Var); ok {
		return ctx.bindVar(bv, a, s)
	}
	if ok, err := unifyLiterals(a, b); ok || err != nil {
		return s, err
	}
	if isUnion(a) || isUnion(b) {
		return ctx.unifyUnions(a, b, s)
	}

	switch a := a.(type) {
	case *types.Const:
		if b, ok := b.(*types.Const); ok {
			if a.Name == b.Name {
				return s, nil
			}
			return s, mismatch(diagnostics.ErrCannotUnify, "Cannot unify", a, b)
		}

	case *types.Fun:
		if b, ok := b.(*types.Fun); ok {
			if len(a.Params) != len(b.Params) {
				return s, mismatch(diagnostics.ErrFunctionArityMismatch, "Cannot unify functions with differing arity", s.Apply(a), s.Apply(b))
			}
			var err error
			for i := range a.Params {
				if s, err = ctx.Unify(a.Params[i], b.Params[i], s); err != nil {
					return s, err
				}
			}
			return ctx.Unify(a.Return, b.Return, s)
		}

	case *types.App:
		if b, ok := b.(*types.App); ok {
			if len(a.Args) != len(b.Args) {
				return s, mismatch(diagnostics.ErrTypeApplicationArityMismatch, "Cannot unify type applications with differing arity", s.Apply(a), s.Apply(b))
			}
			var err error
			if s, err = ctx.Unify(a.Con, b.Con, s); err != nil {
				return s, err
			}
			return ctx.unifyLists(a.Args, b.Args, s)
		}

	case *types.Tuple:
		if b, ok := b.(*types.Tuple); ok {
			if len(a.Elems) != len(b.Elems) {
				return s, mismatch(diagnostics.ErrTupleArityMismatch, "Cannot unify tuples with differing length", s.Apply(a), s.Apply(b))
			}
			return ctx.unifyLists(a.Elems, b.Elems, s)
		}

	case *types.Ref:
		if b, ok := b.(*types.Ref); ok {
			return ctx.Unify(a.Elem, b.Elem, s)
		}

	case *types.Record:
		if b, ok := b.(*types.Record); ok {
			return ctx.unifyRecords(a, b, s)
		}

	case *types.Variant:
		if b, ok := b.(*types.Variant); ok {
			return ctx.unifyVariants(a, b, s)
		}
	}

	return s, mismatch(diagnostics.ErrIncompatibleTypes, "Incompatible types", s.Apply(a), s.Apply(b))
}

func (ctx *Context) unifyLists(as, bs []types.Type, s types.Subst) (types.Subst, error) {
	var err error
	for i := range as {
		if s, err = ctx.Unify(as[i], bs[i], s); err != nil {
			return s, err
		}
	}
	return s, nil
}

func isUnion(t types.Type) bool {
	_, ok := t.(*types.Union)
	return ok
}

// Members are matched after applying s, since a bound member may reorder the union or
// merge with another member. Members present on both sides unify trivially; the remaining
// members unify in canonical order.
func (ctx *Context) unifyUnions(a, b types.Type, s types.Subst) (types.Subst, error) {
	at, bt := s.Apply(a), s.Apply(b)
	au, aok := at.(*types.Union)
	bu, bok := bt.(*types.Union)
	if aok && bok {
		as, bs := withoutCommon(au.Types, bu.Types)
		if len(as) != len(bs) {
			return s, mismatch(diagnostics.ErrUnionArityMismatch, "Cannot unify unions with differing member count", au, bu)
		}
		return ctx.unifyLists(as, bs, s)
	}
	if (isUnion(a) && !aok) || (isUnion(b) && !bok) {
		// A union collapsed to a single member.
		return ctx.Unify(at, bt, s)
	}
	return s, mismatch(diagnostics.ErrIncompatibleTypes, "Incompatible types", at, bt)
}

func withoutCommon(as, bs []types.Type) ([]types.Type, []types.Type) {
	used := make([]bool, len(bs))
	var restA []types.Type
next:
	for _, a := range as {
		for j, b := range bs {
			if !used[j] && types.Equal(a, b) {
				used[j] = true
				continue next
			}
		}
		restA = append(restA, a)
	}
	var restB []types.Type
	for j, b := range bs {
		if !used[j] {
			restB = append(restB, b)
		}
	}
	return restA, restB
}

// Literal types unify with an equal literal type. A literal domain also unifies with
// its base primitive, in either direction, so a literal-typed value may be used where
// the primitive is expected and a primitive value may be passed for a literal domain.
func unifyLiterals(a, b types.Type) (bool, error) {
	abase, aok := types.IsLiteralDomain(a)
	bbase, bok := types.IsLiteralDomain(b)
	switch {
	case aok && bok:
		_, alit := a.(*types.Literal)
		_, blit := b.(*types.Literal)
		if !alit && !blit {
			return false, nil
		}
		if types.Equal(a, b) {
			return true, nil
		}
	case aok:
		if c, ok := b.(*types.Const); ok && c.Name == abase.Name {
			return true, nil
		}
	case bok:
		if c, ok := a.(*types.Const); ok && c.Name == bbase.Name {
			return true, nil
		}
	}
	_, alit := a.(*types.Literal)
	_, blit := b.(*types.Literal)
	if alit || blit {
		return false, mismatch(diagnostics.ErrCannotUnify, "Cannot unify", a, b)
	}
	return false, nil
}

func (ctx *Context) unifyRecords(a, b *types.Record, s types.Subst) (types.Subst, error) {
	if !sameLabels(a.Fields.Labels(), b.Fields.Labels()) {
		return s, mismatch(diagnostics.ErrRecordFieldMismatch, "Cannot unify records with differing fields", s.Apply(a), s.Apply(b))
	}
	var err error
	a.Fields.Range(func(label string, at types.Type) bool {
		bt, _ := b.Fields.Get(label)
		s, err = ctx.Unify(at, bt, s)
		return err == nil
	})
	return s, err
}

func (ctx *Context) unifyVariants(a, b *types.Variant, s types.Subst) (types.Subst, error) {
	if !sameLabels(a.Ctors.Labels(), b.Ctors.Labels()) {
		return s, mismatch(diagnostics.ErrVariantUnificationError, "Cannot unify variants with differing constructors", s.Apply(a), s.Apply(b))
	}
	var err error
	a.Ctors.Range(func(label string, as types.TypeList) bool {
		bs, _ := b.Ctors.Get(label)
		if as.Len() != bs.Len() {
			err = mismatch(diagnostics.ErrVariantUnificationError, "Cannot unify constructor "+label+" with differing arity", s.Apply(a), s.Apply(b))
			return false
		}
		s, err = ctx.unifyLists(as.Types(), bs.Types(), s)
		return err == nil
	})
	return s, err
}

// Labels are in sorted order.
func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// See "Efficient Generalization with Levels" (Oleg Kiselyov) -- http://okmij.org/ftp/ML/generalization.html#levels
//
// Binding tv to t lowers every unbound type-variable in t to the level of tv. Types are
// immutable, so a type-variable is lowered by binding it to a fresh type-variable at the
// lower level.
func (ctx *Context) bindVar(tv *types.Var, t types.Type, s types.Subst) (types.Subst, error) {
	t = s.Apply(t)
	if types.Occurs(tv.Id, t) {
		names := types.TypeStrings(tv, t)
		return s, unifyError(diagnostics.ErrInfiniteType, "Infinite type: %s occurs in %s", names[0], names[1])
	}
	for _, u := range types.FreeVars(t).Vars() {
		if u.Level > tv.Level {
			s = s.Extend(u.Id, ctx.newVarAt(tv.Level))
		}
	}
	return s.Extend(tv.Id, t), nil
}
