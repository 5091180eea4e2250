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

	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/diagnostics"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// Coverage analysis follows "Warnings for pattern matching" (Luc Maranget), computing
// usefulness over a matrix of simplified patterns.

type patKind uint8

const (
	wildPat patKind = iota
	ctorPat
	orPat
)

// Simplified pattern: a wildcard, a constructor applied to sub-patterns, or alternatives.
// Literals are nullary constructors; tuples, records and unit are single-constructor products.
type pat struct {
	kind patKind
	name string
	args []*pat
	alts []*pat
}

var wildcard = &pat{kind: wildPat}

// Constructor of a type's domain.
type ctorSig struct {
	name   string
	args   []types.Type
	labels []string // record field labels, for product records
	shape  sigShape
}

type sigShape uint8

const (
	variantShape sigShape = iota
	boolShape
	unitShape
	tupleShape
	recordShape
	literalShape
)

// Domain of a column type. Open domains have unboundedly many constructors.
type signature struct {
	ctors []ctorSig
	open  bool
	// Coverage of the domain is not checked.
	unchecked bool
}

const (
	tupleCtor  = "(,)"
	recordCtor = "{}"
	unitCtor   = "()"
	maxMissing = 8
)

type coverage struct {
	ctx *Context
	s   types.Subst
}

// checkMatch reports a non-exhaustive match as an error, and unreachable arms as warnings.
func (ctx *Context) checkMatch(m *ast.Match, scrutinee types.Type, s types.Subst) error {
	cv := &coverage{ctx: ctx, s: s}
	t := s.Apply(scrutinee)
	col := []types.Type{t}

	var rows [][]*pat
	for _, arm := range m.Arms {
		row := []*pat{cv.lower(arm.Pattern, t)}
		if !cv.useful(rows, row, col) {
			d := diagnostics.NewWarning(diagnostics.WarnUnreachablePattern, arm.Pattern.Loc(),
				"Unreachable pattern: "+ast.PatternString(arm.Pattern)+" is covered by earlier arms")
			if ctx.opts.UnreachableAsError {
				d.AsError()
			}
			ctx.warn(d)
		}
		// A guard may reject at runtime, so guarded arms never cover their patterns:
		if arm.Guard == nil {
			rows = append(rows, row)
		}
	}

	missing := cv.missing(rows, col)
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, w := range missing {
		names[i] = ast.PatternString(w[0])
	}
	d := fail(diagnostics.ErrNonExhaustiveMatch, m.At, "Non-exhaustive match, missing case(s): %s", strings.Join(names, ", ")).
		WithHint("add an arm for each missing case, or a wildcard arm")
	for _, name := range names {
		d.WithNote(name)
	}
	return d
}

// Lower a typed pattern into the simplified form.
func (cv *coverage) lower(p ast.Pattern, t types.Type) *pat {
	switch p := p.(type) {
	case *ast.WildcardPat, *ast.VarPat:
		return wildcard

	case *ast.AnnotatedPat:
		return cv.lower(p.Pattern, t)

	case *ast.OrPat:
		alts := make([]*pat, len(p.Alts))
		for i, alt := range p.Alts {
			alts[i] = cv.lower(alt, t)
		}
		return &pat{kind: orPat, alts: alts}

	case *ast.LiteralPat:
		if _, ok := p.Value.(*ast.UnitLit); ok {
			return &pat{kind: ctorPat, name: unitCtor}
		}
		return &pat{kind: ctorPat, name: ast.ExprString(p.Value)}

	case *ast.ConstructorPat:
		var argTypes []types.Type
		for _, c := range cv.signature(t).ctors {
			if c.name == p.Name {
				argTypes = c.args
			}
		}
		args := make([]*pat, len(p.Args))
		for i, arg := range p.Args {
			args[i] = cv.lower(arg, typeAt(argTypes, i))
		}
		return &pat{kind: ctorPat, name: p.Name, args: args}

	case *ast.TuplePat:
		var elemTypes []types.Type
		if tt, ok := t.(*types.Tuple); ok {
			elemTypes = tt.Elems
		}
		args := make([]*pat, len(p.Elems))
		for i, elem := range p.Elems {
			args[i] = cv.lower(elem, typeAt(elemTypes, i))
		}
		return &pat{kind: ctorPat, name: tupleCtor, args: args}

	case *ast.RecordPat:
		rt, ok := t.(*types.Record)
		if !ok {
			return wildcard
		}
		byLabel := make(map[string]ast.Pattern, len(p.Fields))
		for _, f := range p.Fields {
			byLabel[f.Label] = f.Pattern
		}
		labels := rt.Fields.Labels()
		args := make([]*pat, len(labels))
		for i, label := range labels {
			ft, _ := rt.Fields.Get(label)
			if fp, ok := byLabel[label]; ok {
				args[i] = cv.lower(fp, ft)
			} else {
				args[i] = wildcard
			}
		}
		return &pat{kind: ctorPat, name: recordCtor, args: args}
	}
	return wildcard
}

func typeAt(ts []types.Type, i int) types.Type {
	if i < len(ts) {
		return ts[i]
	}
	return nil
}

// Determine the constructor domain of a (resolved) column type.
func (cv *coverage) signature(t types.Type) signature {
	switch t := t.(type) {
	case *types.Tuple:
		return signature{ctors: []ctorSig{{name: tupleCtor, args: t.Elems, shape: tupleShape}}}

	case *types.Record:
		labels := t.Fields.Labels()
		args := make([]types.Type, len(labels))
		for i, label := range labels {
			args[i], _ = t.Fields.Get(label)
		}
		return signature{ctors: []ctorSig{{name: recordCtor, args: args, labels: labels, shape: recordShape}}}

	case *types.Variant:
		return variantSignature(t, nil, nil)
	}

	if _, ok := types.IsLiteralDomain(t); ok {
		var sig signature
		for _, lit := range types.Literals(t) {
			sig.ctors = append(sig.ctors, ctorSig{name: lit.Value, shape: literalShape})
		}
		return sig
	}

	name, args, ok := nominalName(t)
	if !ok {
		return signature{open: true}
	}
	switch {
	case name == types.UnitName && len(args) == 0:
		return signature{ctors: []ctorSig{{name: unitCtor, shape: unitShape}}}
	case name == types.BoolName && len(args) == 0:
		if !cv.ctx.opts.CheckBoolExhaustiveness {
			return signature{open: true, unchecked: true}
		}
		return signature{ctors: []ctorSig{{name: "true", shape: boolShape}, {name: "false", shape: boolShape}}}
	}
	if vt, ok := cv.ctx.variants[name]; ok && vt.Def != nil && len(vt.Params) == len(args) {
		return variantSignature(vt.Def, vt.Params, args)
	}
	return signature{open: true}
}

func variantSignature(def *types.Variant, params []*types.Var, args []types.Type) signature {
	var sig signature
	def.Ctors.Range(func(name string, ts types.TypeList) bool {
		argTypes := ts.Types()
		for i, at := range argTypes {
			argTypes[i] = instantiateParams(params, args, at)
		}
		sig.ctors = append(sig.ctors, ctorSig{name: name, args: argTypes, shape: variantShape})
		return true
	})
	return sig
}

// Constructor names at the head of the first column, in first-seen order.
func headCtors(rows [][]*pat) []string {
	var names []string
	seen := make(map[string]bool)
	var visit func(p *pat)
	visit = func(p *pat) {
		switch p.kind {
		case ctorPat:
			if !seen[p.name] {
				seen[p.name] = true
				names = append(names, p.name)
			}
		case orPat:
			for _, alt := range p.alts {
				visit(alt)
			}
		}
	}
	for _, row := range rows {
		visit(row[0])
	}
	return names
}

// Expand or-patterns at the head of a row into one row per alternative.
func expandRow(row []*pat) [][]*pat {
	if row[0].kind != orPat {
		return [][]*pat{row}
	}
	var out [][]*pat
	for _, alt := range row[0].alts {
		expanded := append([]*pat{alt}, row[1:]...)
		out = append(out, expandRow(expanded)...)
	}
	return out
}

// Rows whose head matches constructor name, with the head replaced by its arity sub-patterns.
func specialize(rows [][]*pat, name string, arity int) [][]*pat {
	var out [][]*pat
	for _, row := range rows {
		for _, r := range expandRow(row) {
			head := r[0]
			switch {
			case head.kind == wildPat:
				next := make([]*pat, 0, arity+len(r)-1)
				for i := 0; i < arity; i++ {
					next = append(next, wildcard)
				}
				out = append(out, append(next, r[1:]...))
			case head.name == name:
				next := make([]*pat, 0, arity+len(r)-1)
				next = append(next, head.args...)
				for i := len(head.args); i < arity; i++ {
					next = append(next, wildcard)
				}
				out = append(out, append(next, r[1:]...))
			}
		}
	}
	return out
}

// Rows whose head is a wildcard, with the head removed.
func defaultRows(rows [][]*pat) [][]*pat {
	var out [][]*pat
	for _, row := range rows {
		for _, r := range expandRow(row) {
			if r[0].kind == wildPat {
				out = append(out, r[1:])
			}
		}
	}
	return out
}

func complete(sig signature, heads []string) bool {
	if sig.open {
		return false
	}
	present := make(map[string]bool, len(heads))
	for _, h := range heads {
		present[h] = true
	}
	for _, c := range sig.ctors {
		if !present[c.name] {
			return false
		}
	}
	return true
}

func arityOf(sig signature, name string, rows [][]*pat, q []*pat) int {
	for _, c := range sig.ctors {
		if c.name == name {
			return len(c.args)
		}
	}
	// Open domains: take the arity from the patterns themselves.
	find := func(p *pat) int {
		var n = -1
		var visit func(p *pat)
		visit = func(p *pat) {
			switch p.kind {
			case ctorPat:
				if p.name == name && n < 0 {
					n = len(p.args)
				}
			case orPat:
				for _, alt := range p.alts {
					visit(alt)
				}
			}
		}
		visit(p)
		return n
	}
	for _, row := range rows {
		if n := find(row[0]); n >= 0 {
			return n
		}
	}
	if q != nil {
		if n := find(q[0]); n >= 0 {
			return n
		}
	}
	return 0
}

func (cv *coverage) argTypes(sig signature, name string, arity int) []types.Type {
	for _, c := range sig.ctors {
		if c.name == name {
			return c.args
		}
	}
	return make([]types.Type, arity)
}

func (cv *coverage) resolve(t types.Type) types.Type {
	if t == nil {
		return nil
	}
	return cv.s.Apply(t)
}

// useful reports whether the pattern vector q matches some value not matched by any row.
func (cv *coverage) useful(rows [][]*pat, q []*pat, cols []types.Type) bool {
	if len(q) == 0 {
		return len(rows) == 0
	}
	head := q[0]
	switch head.kind {
	case orPat:
		for _, alt := range head.alts {
			if cv.useful(rows, append([]*pat{alt}, q[1:]...), cols) {
				return true
			}
		}
		return false

	case ctorPat:
		sig := cv.signature(cv.resolve(cols[0]))
		arity := arityOf(sig, head.name, rows, q)
		next := specialize([][]*pat{q}, head.name, arity)[0]
		return cv.useful(specialize(rows, head.name, arity), next,
			append(cv.argTypes(sig, head.name, arity), cols[1:]...))
	}

	sig := cv.signature(cv.resolve(cols[0]))
	heads := headCtors(rows)
	if complete(sig, heads) {
		for _, c := range sig.ctors {
			next := specialize([][]*pat{q}, c.name, len(c.args))[0]
			if cv.useful(specialize(rows, c.name, len(c.args)), next, append(append([]types.Type(nil), c.args...), cols[1:]...)) {
				return true
			}
		}
		return false
	}
	return cv.useful(defaultRows(rows), q[1:], cols[1:])
}

// missing returns witness patterns for values not matched by any row, as pattern vectors.
//
// An open domain such as Int or String is never covered by literals alone; the values
// no row matches are reported as _.
func (cv *coverage) missing(rows [][]*pat, cols []types.Type) [][]ast.Pattern {
	if len(cols) == 0 {
		if len(rows) == 0 {
			return [][]ast.Pattern{{}}
		}
		return nil
	}

	sig := cv.signature(cv.resolve(cols[0]))
	heads := headCtors(rows)
	rest := cols[1:]

	var out [][]ast.Pattern
	add := func(ws [][]ast.Pattern) bool {
		out = append(out, ws...)
		return len(out) < maxMissing
	}

	if complete(sig, heads) || (sig.open && len(heads) > 0) {
		ctors := sig.ctors
		if sig.open {
			ctors = nil
			for _, h := range heads {
				ctors = append(ctors, ctorSig{name: h, shape: literalShape})
			}
		}
		for _, c := range ctors {
			arity := len(c.args)
			argTypes := c.args
			if sig.open {
				arity = arityOf(sig, c.name, rows, nil)
				argTypes = make([]types.Type, arity)
			}
			ws := cv.missing(specialize(rows, c.name, arity), append(append([]types.Type(nil), argTypes...), rest...))
			for i, w := range ws {
				ws[i] = append([]ast.Pattern{witness(c, w[:arity])}, w[arity:]...)
			}
			if !add(ws) {
				return out
			}
		}
		if sig.open && !sig.unchecked {
			// Values of the domain other than the listed literals:
			ws := cv.missing(defaultRows(rows), rest)
			for i, w := range ws {
				ws[i] = append([]ast.Pattern{&ast.WildcardPat{}}, w...)
			}
			add(ws)
		}
		return out
	}

	ws := cv.missing(defaultRows(rows), rest)
	if len(ws) == 0 {
		return nil
	}
	if len(heads) == 0 || sig.open {
		for i, w := range ws {
			ws[i] = append([]ast.Pattern{&ast.WildcardPat{}}, w...)
		}
		return ws
	}
	present := make(map[string]bool, len(heads))
	for _, h := range heads {
		present[h] = true
	}
	for _, c := range sig.ctors {
		if present[c.name] {
			continue
		}
		wilds := make([]ast.Pattern, len(c.args))
		for i := range wilds {
			wilds[i] = &ast.WildcardPat{}
		}
		head := witness(c, wilds)
		for _, w := range ws {
			if !add([][]ast.Pattern{append([]ast.Pattern{head}, w...)}) {
				return out
			}
		}
	}
	return out
}

// Build a witness pattern for constructor c applied to args.
func witness(c ctorSig, args []ast.Pattern) ast.Pattern {
	switch c.shape {
	case boolShape:
		return &ast.LiteralPat{Value: &ast.BoolLit{Value: c.name == "true"}}
	case unitShape:
		return &ast.LiteralPat{Value: &ast.UnitLit{}}
	case tupleShape:
		return &ast.TuplePat{Elems: args}
	case recordShape:
		fields := make([]ast.FieldPat, len(args))
		for i, arg := range args {
			fields[i] = ast.FieldPat{Label: c.labels[i], Pattern: arg}
		}
		return &ast.RecordPat{Fields: fields}
	case literalShape:
		return &ast.VarPat{Name: c.name}
	}
	return &ast.ConstructorPat{Name: c.name, Args: args}
}
