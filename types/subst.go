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

package types

import (
	"github.com/benbjohnson/immutable"
)

var emptySubst = immutable.NewSortedMap(nil)

// Subst is an immutable mapping from type-variable ids to types.
//
// Extending a substitution never mutates the receiver, so a substitution may be
// threaded through inference and discarded when a branch fails.
type Subst struct {
	m *immutable.SortedMap
}

// EmptySubst returns a substitution with no bindings.
func EmptySubst() Subst { return Subst{emptySubst} }

// Get the number of bound type-variables.
func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Lookup the type bound to a type-variable id.
func (s Subst) Lookup(id int) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	t, ok := s.m.Get(id)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Extend returns a substitution with id bound to t.
func (s Subst) Extend(id int, t Type) Subst {
	m := s.m
	if m == nil {
		m = emptySubst
	}
	return Subst{m.Set(id, t)}
}

// Iterate over bindings in ascending id order.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(int, Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(int), v.(Type)) {
			return
		}
	}
}

// Resolve follows bindings for a type-variable until an unbound variable or a
// non-variable type is reached. Only the outermost shape is resolved.
func (s Subst) Resolve(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		bound, ok := s.Lookup(tv.Id)
		if !ok {
			return t
		}
		t = bound
	}
}

// Apply resolves all bound type-variables in t, recursively.
func (s Subst) Apply(t Type) Type {
	if s.Len() == 0 {
		return t
	}
	switch t := t.(type) {
	case *Var:
		bound, ok := s.Lookup(t.Id)
		if !ok {
			return t
		}
		return s.Apply(bound)
	case *Fun:
		return &Fun{Params: s.applyList(t.Params), Return: s.Apply(t.Return)}
	case *App:
		return &App{Con: s.Apply(t.Con), Args: s.applyList(t.Args)}
	case *Tuple:
		return &Tuple{Elems: s.applyList(t.Elems)}
	case *Union:
		return NewUnion(s.applyList(t.Types)...)
	case *Ref:
		return &Ref{Elem: s.Apply(t.Elem)}
	case *Record:
		return &Record{Fields: t.Fields.Map(s.Apply)}
	case *Variant:
		return &Variant{Name: t.Name, Ctors: t.Ctors.Map(s.Apply)}
	}
	return t
}

func (s Subst) applyList(ts []Type) []Type {
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = s.Apply(t)
	}
	return out
}

// ApplyScheme applies s to the body of sc. Quantified variables are never bound
// by an inference substitution, since schemes are instantiated before use.
func (s Subst) ApplyScheme(sc *Scheme) *Scheme {
	if s.Len() == 0 {
		return sc
	}
	return &Scheme{Vars: sc.Vars, Type: s.Apply(sc.Type)}
}

// Rename replaces type-variables by id in a single pass. Replacement types are not
// rewritten again, so a type-variable may be mapped onto one whose id is also renamed.
func Rename(t Type, m map[int]Type) Type {
	if len(m) == 0 {
		return t
	}
	switch t := t.(type) {
	case *Var:
		if r, ok := m[t.Id]; ok {
			return r
		}
		return t
	case *Fun:
		return &Fun{Params: renameList(t.Params, m), Return: Rename(t.Return, m)}
	case *App:
		return &App{Con: Rename(t.Con, m), Args: renameList(t.Args, m)}
	case *Tuple:
		return &Tuple{Elems: renameList(t.Elems, m)}
	case *Union:
		return NewUnion(renameList(t.Types, m)...)
	case *Ref:
		return &Ref{Elem: Rename(t.Elem, m)}
	case *Record:
		return &Record{Fields: t.Fields.Map(func(ft Type) Type { return Rename(ft, m) })}
	case *Variant:
		return &Variant{Name: t.Name, Ctors: t.Ctors.Map(func(at Type) Type { return Rename(at, m) })}
	}
	return t
}

func renameList(ts []Type, m map[int]Type) []Type {
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = Rename(t, m)
	}
	return out
}
