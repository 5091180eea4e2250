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

import "github.com/mbcrawfo/vibefun-sub014/types"

// importRenamer gives the type-variables of one imported module ids allocated by the
// importing context. Ids restart for each checker, so an imported scheme could otherwise
// share ids with local type-variables.
//
// Every binding from one module is renamed through the same mapping, so a variant type
// and its constructors keep referring to the same parameters.
type importRenamer struct {
	ctx      *Context
	ids      map[int]types.Type
	values   map[Binding]Binding
	typeDefs map[TypeBinding]TypeBinding
}

func newImportRenamer(ctx *Context) *importRenamer {
	return &importRenamer{
		ctx:      ctx,
		ids:      make(map[int]types.Type),
		values:   make(map[Binding]Binding),
		typeDefs: make(map[TypeBinding]TypeBinding),
	}
}

func (r *importRenamer) fresh(id, level int) {
	if _, ok := r.ids[id]; !ok {
		r.ids[id] = r.ctx.newVarAt(level)
	}
}

func (r *importRenamer) typ(t types.Type) types.Type {
	for _, tv := range types.FreeVars(t).Vars() {
		r.fresh(tv.Id, tv.Level)
	}
	return types.Rename(t, r.ids)
}

func (r *importRenamer) scheme(sc *types.Scheme) *types.Scheme {
	if sc == nil {
		return nil
	}
	for _, id := range sc.Vars {
		r.fresh(id, 1)
	}
	t := r.typ(sc.Type)
	vars := make([]int, len(sc.Vars))
	for i, id := range sc.Vars {
		vars[i] = r.ids[id].(*types.Var).Id
	}
	return &types.Scheme{Vars: vars, Type: t}
}

func (r *importRenamer) params(ps []*types.Var) []*types.Var {
	out := make([]*types.Var, len(ps))
	for i, p := range ps {
		r.fresh(p.Id, p.Level)
		out[i] = r.ids[p.Id].(*types.Var)
	}
	return out
}

func (r *importRenamer) value(b Binding) Binding {
	if out, ok := r.values[b]; ok {
		return out
	}
	var out Binding
	switch b := b.(type) {
	case *Value:
		out = &Value{Scheme: r.scheme(b.Scheme), Ctor: b.Ctor, At: b.At}
	case *External:
		out = &External{Scheme: r.scheme(b.Scheme), ForeignName: b.ForeignName, Module: b.Module, At: b.At}
	case *ExternalOverload:
		sigs := make([]*types.Scheme, len(b.Signatures))
		for i, sig := range b.Signatures {
			sigs[i] = r.scheme(sig)
		}
		out = &ExternalOverload{Signatures: sigs, ForeignName: b.ForeignName, Module: b.Module, At: b.At}
	default:
		out = b
	}
	r.values[b] = out
	return out
}

func (r *importRenamer) typeBinding(b TypeBinding) TypeBinding {
	if out, ok := r.typeDefs[b]; ok {
		return out
	}
	var out TypeBinding
	switch b := b.(type) {
	case *Alias:
		params := r.params(b.Params)
		out = &Alias{Params: params, Type: r.typ(b.Type), At: b.At}
	case *RecordType:
		params := r.params(b.Params)
		out = &RecordType{Params: params, Fields: b.Fields.Map(r.typ), At: b.At}
	case *VariantType:
		vt := &VariantType{Name: b.Name, Params: r.params(b.Params), At: b.At}
		if b.Def != nil {
			vt.Def = r.typ(b.Def).(*types.Variant)
		}
		out = vt
	default:
		out = b
	}
	r.typeDefs[b] = out
	return out
}

// Rename the imported variant definitions of mi, and register those not yet known.
// Registering them lets a match over an imported variant find its constructors by
// nominal name, whether or not the type itself was imported.
func (ch *Checker) registerVariants(mi *ModuleInterface, r *importRenamer) {
	for name, vt := range mi.Variants {
		if _, ok := ch.ctx.variants[name]; ok {
			continue
		}
		renamed := r.typeBinding(vt).(*VariantType)
		ch.ctx.variants[name] = renamed
		ch.exports.Variants[name] = renamed
	}
}
