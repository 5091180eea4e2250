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
	"log/slog"

	"github.com/hashicorp/go-set/v3"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// ModuleInterface is the set of names a checked module exports to its importers.
type ModuleInterface struct {
	Name   string
	Values map[string]Binding
	Types  map[string]TypeBinding
	// Variant definitions reachable from the exported names, by nominal name. This
	// includes variants the module itself imported.
	Variants map[string]*VariantType
}

// Result of checking one module.
type Result struct {
	// The checked module. Generic operators within it have been specialized in place.
	Module *ast.Module
	// Top-level environment after the last declaration, including built-ins and imports.
	Env *TypeEnv
	// Resolved schemes of top-level values, by name. Overload sets are absent.
	Schemes     map[string]*types.Scheme
	Diagnostics []*diagnostics.Diagnostic

	exports *ModuleInterface
}

// HasErrors reports whether any error diagnostic was recorded.
func (r *Result) HasErrors() bool { return len(r.Errors()) > 0 }

func (r *Result) Errors() []*diagnostics.Diagnostic   { return r.filter(diagnostics.Error) }
func (r *Result) Warnings() []*diagnostics.Diagnostic { return r.filter(diagnostics.Warning) }

func (r *Result) filter(sev diagnostics.Severity) []*diagnostics.Diagnostic {
	var out []*diagnostics.Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Interface returns the names declared by the module, for use by importing modules.
func (r *Result) Interface() *ModuleInterface { return r.exports }

// Checker type checks one module. A Checker is not safe for concurrent use.
type Checker struct {
	ctx       *Context
	env       *TypeEnv
	bag       *diagnostics.Bag
	log       *slog.Logger
	imports   map[string]*ModuleInterface
	schemes   map[string]*types.Scheme
	externals map[string]Binding
	exports   *ModuleInterface
	renamers  map[string]*importRenamer
	// Names bound to the poison scheme after their declaration failed
	poisoned *set.Set[string]
	// Set while the built-in declarations are bound, which are not exported.
	builtin bool
}

// NewChecker creates a checker whose imports are resolved against the given interfaces,
// keyed by module name.
func NewChecker(opts Options, imports map[string]*ModuleInterface) *Checker {
	ch := &Checker{
		ctx:       NewContext(opts),
		bag:       diagnostics.NewBag(opts.MaxErrors),
		log:       opts.logger(),
		imports:   imports,
		schemes:   make(map[string]*types.Scheme),
		externals: make(map[string]Binding),
		renamers:  make(map[string]*importRenamer),
		poisoned:  set.New[string](0),
		builtin:   true,
	}
	ch.declareBuiltins()
	ch.builtin = false
	return ch
}

// Check type checks mod with a new checker.
func Check(mod *ast.Module, imports map[string]*ModuleInterface, opts Options) *Result {
	return NewChecker(opts, imports).Check(mod)
}

// Check processes the declarations of mod in source order. Type declarations are bound
// first. A failing declaration is reported and checking continues with the next one.
func (ch *Checker) Check(mod *ast.Module) *Result {
	ch.exports = &ModuleInterface{
		Name:     mod.Name,
		Values:   make(map[string]Binding),
		Types:    make(map[string]TypeBinding),
		Variants: make(map[string]*VariantType),
	}
	for _, d := range mod.Decls {
		if d, ok := d.(*ast.ImportDecl); ok {
			ch.declareImport(d)
		}
	}
	ch.declareTypes(mod.Decls)

	for _, d := range mod.Decls {
		if ch.bag.Full() {
			ch.log.Debug("error limit reached", "max_errors", ch.ctx.opts.MaxErrors)
			break
		}
		switch d := d.(type) {
		case *ast.LetDecl:
			ch.checkLet(d)
		case *ast.LetRecDecl:
			ch.checkLetRec(d)
		case *ast.ExternalDecl:
			if err := ch.declareExternal(d); err != nil {
				ch.report(err, d.At)
				if _, ok := ch.externals[d.Name]; !ok {
					ch.bindValue(d.Name, &Value{Scheme: ch.ctx.poisonScheme(), At: d.At})
					ch.poisoned.Insert(d.Name)
				}
			}
		case *ast.TypeDecl, *ast.ExternalTypeDecl, *ast.ImportDecl:
		default:
			ch.report(internalError("unhandled declaration %s", d.DeclName()), d.Loc())
		}
		ch.flushWarnings()
	}

	return &Result{
		Module:      mod,
		Env:         ch.env,
		Schemes:     ch.schemes,
		Diagnostics: ch.bag.Diagnostics(),
		exports:     ch.exports,
	}
}

// InferExpr infers the type of a standalone expression in the checker's top-level
// environment. The returned type has the substitution applied.
func (ch *Checker) InferExpr(e ast.Expr) (types.Type, error) {
	ch.ctx.resetAnnotationVars()
	t, s, err := ch.ctx.Infer(ch.env, e, types.EmptySubst())
	ch.flushWarnings()
	if err != nil {
		return nil, toDiagnostic(err, e.Loc())
	}
	if err := checkSpecialized(e); err != nil {
		return nil, toDiagnostic(err, e.Loc())
	}
	return s.Apply(t), nil
}

// Env returns the checker's current top-level environment.
func (ch *Checker) Env() *TypeEnv { return ch.env }

// Diagnostics returns the diagnostics recorded so far.
func (ch *Checker) Diagnostics() []*diagnostics.Diagnostic { return ch.bag.Diagnostics() }

func (ch *Checker) checkLet(d *ast.LetDecl) {
	ch.ctx.resetAnnotationVars()
	e := d.Value
	if d.Recursive {
		// A recursive top-level binding checks as a group of one.
		ch.checkGroup([]ast.Binding{{Name: d.Name, Value: d.Value, At: d.At}}, d.At)
		return
	}

	s := types.EmptySubst()
	ch.ctx.enterLevel()
	t, s, err := ch.ctx.Infer(ch.env, e, s)
	ch.ctx.leaveLevel()
	if err == nil {
		err = checkSpecialized(e)
	}
	if err != nil {
		ch.failed(err, d.At, d.Name)
		return
	}
	sc, s := ch.ctx.bindScheme(e, t, s)
	if err := ch.valueRestriction(d.Name, e, sc, d.At); err != nil {
		ch.failed(err, d.At, d.Name)
		return
	}
	ch.declared(d.Name, sc, d.At)
}

func (ch *Checker) checkLetRec(d *ast.LetRecDecl) {
	ch.ctx.resetAnnotationVars()
	ch.checkGroup(d.Bindings, d.At)
}

func (ch *Checker) checkGroup(bindings []ast.Binding, at ast.Location) {
	names := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.Name
	}
	_, _, schemes, err := ch.ctx.inferGroup(ch.env, bindings, types.EmptySubst())
	if err == nil {
		for _, b := range bindings {
			if err = checkSpecialized(b.Value); err != nil {
				break
			}
		}
	}
	if err == nil {
		for i, b := range bindings {
			if err = ch.valueRestriction(b.Name, b.Value, schemes[i], b.At); err != nil {
				break
			}
		}
	}
	if err != nil {
		ch.failed(err, at, names...)
		return
	}
	for i, b := range bindings {
		ch.declared(b.Name, schemes[i], b.At)
	}
}

// A top-level binding which is not a syntactic value cannot be generalized. Any
// type-variable left in its type could never be resolved by later declarations.
func (ch *Checker) valueRestriction(name string, value ast.Expr, sc *types.Scheme, at ast.Location) error {
	if IsSyntacticValue(value) || types.FreeVars(sc.Type).Len() == 0 || ch.mentionsPoisoned(value) {
		return nil
	}
	return fail(diagnostics.ErrValueRestriction, at,
		"Cannot generalize %s: %s, its value is not a syntactic value", name, types.SchemeString(sc)).
		WithHint("add a type annotation to " + name)
}

// Uses of a failed declaration have no meaningful type, and are not reported again.
func (ch *Checker) mentionsPoisoned(e ast.Expr) bool {
	found := false
	ast.WalkExpr(e, func(e ast.Expr) {
		if v, ok := e.(*ast.Var); ok && ch.poisoned.Contains(v.Name) {
			found = true
		}
	})
	return found
}

func (ch *Checker) declared(name string, sc *types.Scheme, at ast.Location) {
	ch.poisoned.Remove(name)
	ch.bindValue(name, &Value{Scheme: sc, At: at})
	ch.schemes[name] = sc
	ch.log.Debug("declaration checked", "name", name, "scheme", types.SchemeString(sc))
}

// Report a failed declaration and bind its names to the poison scheme.
func (ch *Checker) failed(err error, at ast.Location, names ...string) {
	d := ch.report(err, at)
	for _, name := range names {
		ch.bindValue(name, &Value{Scheme: ch.ctx.poisonScheme(), At: at})
		ch.poisoned.Insert(name)
	}
	if d != nil {
		ch.log.Debug("declaration failed", "names", names, "code", string(d.Code))
	}
}

func (ch *Checker) report(err error, at ast.Location) *diagnostics.Diagnostic {
	if err == nil {
		return nil
	}
	d := toDiagnostic(err, at)
	ch.bag.Add(d)
	return d
}

func (ch *Checker) flushWarnings() {
	for _, w := range ch.ctx.TakeWarnings() {
		ch.bag.Add(w)
	}
}

func (ch *Checker) bindValue(name string, b Binding) {
	ch.env = ch.env.AddValue(name, b)
	if !ch.builtin {
		ch.exports.Values[name] = b
	}
}

func (ch *Checker) bindType(name string, b TypeBinding) {
	ch.env = ch.env.AddType(name, b)
	if !ch.builtin {
		ch.exports.Types[name] = b
	}
}

// Register a fully declared variant under its nominal name.
func (ch *Checker) bindVariant(vt *VariantType) {
	ch.bindType(vt.Name, vt)
	ch.ctx.variants[vt.Name] = vt
	if !ch.builtin {
		ch.exports.Variants[vt.Name] = vt
	}
}

// Every generic operator must have been specialized once its declaration checks.
func checkSpecialized(e ast.Expr) error {
	var err error
	ast.WalkExpr(e, func(e ast.Expr) {
		if op, ok := e.(*ast.BinOp); ok && op.Op.IsGeneric() && err == nil {
			err = diagnostics.NewInternal(op.At, "operator "+op.Op.String()+" was not specialized")
		}
	})
	return err
}
