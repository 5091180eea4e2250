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
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/internal/util"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// declareTypes binds every type declared in decls. Types are declared before any value,
// so declarations may refer to types declared later in the module.
//
// Variant types are nominal, so they may be recursive. Aliases and record types are
// expanded on use; a cycle among them is reported as a recursive type alias.
func (ch *Checker) declareTypes(decls []ast.Decl) {
	var structural, variants []*ast.TypeDecl
	declared := set.New[string](len(decls))
	for _, d := range decls {
		switch d := d.(type) {
		case *ast.TypeDecl:
			if !declared.Insert(d.Name) {
				ch.report(fail(diagnostics.ErrDuplicateDefinition, d.At, "Type %s is already declared", d.Name), d.At)
				continue
			}
			if d.IsVariant() {
				variants = append(variants, d)
				ch.bindType(d.Name, &VariantType{Name: d.Name, Params: ch.typeParams(d.Params), At: d.At})
			} else {
				structural = append(structural, d)
			}
		case *ast.ExternalTypeDecl:
			if !declared.Insert(d.Name) {
				ch.report(fail(diagnostics.ErrDuplicateDefinition, d.At, "Type %s is already declared", d.Name), d.At)
				continue
			}
			ch.bindType(d.Name, &ExternalType{Name: d.Name, Params: len(d.Params), At: d.At})
		}
	}

	index := make(map[string]int, len(structural))
	for i, d := range structural {
		index[d.Name] = i
	}
	g := util.NewGraph(len(structural))
	for i, d := range structural {
		for _, ref := range referencedTypes(d) {
			if j, ok := index[ref]; ok {
				g.AddEdge(i, j)
			}
		}
	}
	for _, component := range g.SCC() {
		if g.Cyclic(component) {
			names := make([]string, len(component))
			for i, v := range component {
				names[i] = structural[v].Name
			}
			first := structural[component[len(component)-1]]
			ch.report(fail(diagnostics.ErrRecursiveTypeAlias, first.At,
				"Recursive type alias: %s", strings.Join(names, ", ")).
				WithHint("recursive types must be declared as variants"), first.At)
			for _, v := range component {
				d := structural[v]
				ch.bindType(d.Name, &ExternalType{Name: d.Name, Params: len(d.Params), At: d.At})
			}
			continue
		}
		ch.declareStructural(structural[component[0]])
	}

	for _, d := range variants {
		ch.declareVariant(d)
	}
}

func (ch *Checker) typeParams(names []string) []*types.Var {
	vars := make([]*types.Var, len(names))
	for i := range names {
		vars[i] = ch.ctx.newVarAt(1)
	}
	return vars
}

func paramScope(names []string, vars []*types.Var) map[string]*types.Var {
	scope := make(map[string]*types.Var, len(names))
	for i, name := range names {
		scope[name] = vars[i]
	}
	return scope
}

// Names of types referenced by an alias or record declaration, excluding its parameters.
func referencedTypes(d *ast.TypeDecl) []string {
	params := set.From(d.Params)
	var refs []string
	var visit func(te ast.TypeExpr)
	visit = func(te ast.TypeExpr) {
		switch te := te.(type) {
		case *ast.TypeNameExpr:
			if !params.Contains(te.Name) {
				refs = append(refs, te.Name)
			}
			for _, arg := range te.Args {
				visit(arg)
			}
		case *ast.FunTypeExpr:
			for _, p := range te.Params {
				visit(p)
			}
			visit(te.Return)
		case *ast.RecordTypeExpr:
			for _, f := range te.Fields {
				visit(f.Type)
			}
		case *ast.TupleTypeExpr:
			for _, elem := range te.Elems {
				visit(elem)
			}
		case *ast.UnionTypeExpr:
			for _, m := range te.Types {
				visit(m)
			}
		}
	}
	if d.Record != nil {
		visit(d.Record)
	} else {
		visit(d.Alias)
	}
	return refs
}

func (ch *Checker) declareStructural(d *ast.TypeDecl) {
	params := ch.typeParams(d.Params)
	scope := paramScope(d.Params, params)
	if d.Record != nil {
		fields, err := ch.ctx.resolveFields(ch.env, d.Record, scope)
		if err != nil {
			ch.report(err, d.At)
			ch.bindType(d.Name, &ExternalType{Name: d.Name, Params: len(d.Params), At: d.At})
			return
		}
		ch.bindType(d.Name, &RecordType{Params: params, Fields: fields, At: d.At})
		return
	}
	if d.Alias == nil {
		ch.report(internalError("type declaration %s has no body", d.Name), d.At)
		return
	}
	t, err := ch.ctx.ResolveTypeExpr(ch.env, d.Alias, scope)
	if err != nil {
		ch.report(err, d.At)
		ch.bindType(d.Name, &ExternalType{Name: d.Name, Params: len(d.Params), At: d.At})
		return
	}
	ch.bindType(d.Name, &Alias{Params: params, Type: t, At: d.At})
}

// Bind the variant type and each of its constructors. Constructors are values with scheme
// forall params. (args) -> T<params>, or forall params. T<params> when nullary.
func (ch *Checker) declareVariant(d *ast.TypeDecl) {
	b, _ := ch.env.LookupType(d.Name)
	header, ok := b.(*VariantType)
	if !ok {
		ch.report(internalError("variant %s was not predeclared", d.Name), d.At)
		return
	}
	scope := paramScope(d.Params, header.Params)
	ids := make([]int, len(header.Params))
	args := make([]types.Type, len(header.Params))
	for i, p := range header.Params {
		ids[i], args[i] = p.Id, p
	}
	result := nominal(d.Name, args)

	ctors := make(map[string][]types.Type, len(d.Ctors))
	var bound []string
	for _, c := range d.Ctors {
		if _, dup := ctors[c.Name]; dup {
			ch.report(fail(diagnostics.ErrDuplicateDefinition, c.At, "Constructor %s is already declared in %s", c.Name, d.Name), c.At)
			continue
		}
		argTypes := make([]types.Type, len(c.Args))
		var err error
		for i, arg := range c.Args {
			if argTypes[i], err = ch.ctx.ResolveTypeExpr(ch.env, arg, scope); err != nil {
				break
			}
		}
		if err != nil {
			ch.report(err, c.At)
			continue
		}
		ctors[c.Name] = argTypes
		bound = append(bound, c.Name)

		var t types.Type = result
		if len(argTypes) > 0 {
			t = &types.Fun{Params: argTypes, Return: result}
		}
		ch.bindValue(c.Name, &Value{
			Scheme: &types.Scheme{Vars: ids, Type: t},
			Ctor:   &CtorInfo{Variant: d.Name, Arity: len(argTypes)},
			At:     c.At,
		})
	}
	ch.bindVariant(&VariantType{Name: d.Name, Params: header.Params, Def: types.NewVariant(d.Name, ctors), At: d.At})
	ch.log.Debug("variant declared", "name", d.Name, "constructors", bound)
}

// Declare a foreign value. Repeated declarations of one name within a module form an
// overload set.
func (ch *Checker) declareExternal(d *ast.ExternalDecl) error {
	ch.ctx.resetAnnotationVars()
	ch.ctx.enterLevel()
	t, err := ch.ctx.ResolveTypeExpr(ch.env, d.Type, nil)
	ch.ctx.leaveLevel()
	if err != nil {
		return err
	}
	sig := ch.ctx.Generalize(t, types.EmptySubst())

	prev, ok := ch.externals[d.Name]
	if !ok {
		b := &External{Scheme: sig, ForeignName: d.ForeignName, Module: d.Module, At: d.At}
		ch.externals[d.Name] = b
		ch.bindValue(d.Name, b)
		ch.schemes[d.Name] = sig
		return nil
	}
	merged, err := mergeOverload(prev, d, sig)
	if err != nil {
		return err
	}
	ch.externals[d.Name] = merged
	ch.bindValue(d.Name, merged)
	delete(ch.schemes, d.Name)
	return nil
}

// Bind imported names from a module interface supplied by the caller. Importing a
// variant type also imports its constructors. Imported types are renamed into fresh
// type-variables of this checker.
func (ch *Checker) declareImport(d *ast.ImportDecl) {
	mi, ok := ch.imports[d.Module]
	if !ok {
		ch.report(fail(diagnostics.ErrImportNotFound, d.At, "Module %q not found", d.Module), d.At)
		for _, n := range d.Names {
			ch.poison(n, d.At)
		}
		return
	}
	r, ok := ch.renamers[d.Module]
	if !ok {
		r = newImportRenamer(ch.ctx)
		ch.renamers[d.Module] = r
		ch.registerVariants(mi, r)
	}
	for _, n := range d.Names {
		found := false
		if !n.TypeOnly {
			if b, ok := mi.Values[n.Name]; ok {
				ch.env = ch.env.AddValue(n.Local(), r.value(b))
				found = true
			}
		}
		if tb, ok := mi.Types[n.Name]; ok {
			tb = r.typeBinding(tb)
			ch.env = ch.env.AddType(n.Local(), tb)
			found = true
			if vt, ok := tb.(*VariantType); ok && vt.Def != nil {
				if _, known := ch.ctx.variants[vt.Name]; !known {
					ch.ctx.variants[vt.Name] = vt
					ch.exports.Variants[vt.Name] = vt
				}
				for _, ctor := range vt.Def.Ctors.Labels() {
					if b, ok := mi.Values[ctor]; ok {
						ch.env = ch.env.AddValue(ctor, r.value(b))
					}
				}
			}
		}
		if !found {
			ch.report(fail(diagnostics.ErrImportNotFound, d.At, "Module %q does not export %s", d.Module, n.Name), d.At)
			ch.poison(n, d.At)
		}
	}
}

func (ch *Checker) poison(n ast.ImportName, at ast.Location) {
	if n.TypeOnly {
		ch.env = ch.env.AddType(n.Local(), &ExternalType{Name: n.Local(), At: at})
		return
	}
	ch.env = ch.env.AddValue(n.Local(), &Value{Scheme: ch.ctx.poisonScheme(), At: at})
	ch.poisoned.Insert(n.Local())
}
