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
	"cmp"

	"github.com/hashicorp/go-set/v3"
)

// Scheme is a type together with its universally quantified type-variable ids.
// A scheme is the type of a name, not of an expression.
type Scheme struct {
	Vars []int
	Type Type
}

// Monomorphic wraps t in a scheme without quantified variables.
func Monomorphic(t Type) *Scheme { return &Scheme{Type: t} }

// IsPolymorphic reports whether the scheme quantifies any type-variables.
func (sc *Scheme) IsPolymorphic() bool { return len(sc.Vars) > 0 }

// Quantifies reports whether id is one of the scheme's quantified variables.
func (sc *Scheme) Quantifies(id int) bool {
	for _, v := range sc.Vars {
		if v == id {
			return true
		}
	}
	return false
}

// VarSet is an ordered set of type-variables, keyed by id.
type VarSet struct {
	ids  *set.TreeSet[int]
	vars map[int]*Var
}

func NewVarSet() *VarSet {
	return &VarSet{ids: set.NewTreeSet[int](cmp.Compare[int]), vars: make(map[int]*Var)}
}

func (vs *VarSet) Add(tv *Var) {
	if vs.ids.Insert(tv.Id) {
		vs.vars[tv.Id] = tv
	}
}

func (vs *VarSet) Contains(id int) bool { return vs.ids.Contains(id) }
func (vs *VarSet) Len() int             { return vs.ids.Size() }

// Vars returns the set's type-variables in ascending id order.
func (vs *VarSet) Vars() []*Var {
	ids := vs.ids.Slice()
	out := make([]*Var, len(ids))
	for i, id := range ids {
		out[i] = vs.vars[id]
	}
	return out
}

// FreeVars collects the type-variables occurring in t. The substitution is not consulted;
// apply it first when t may contain bound variables.
func FreeVars(t Type) *VarSet {
	vs := NewVarSet()
	collectVars(vs, t)
	return vs
}

// Occurs reports whether the type-variable id occurs in t.
func Occurs(id int, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Id == id
	case *Fun:
		return occursList(id, t.Params) || Occurs(id, t.Return)
	case *App:
		return Occurs(id, t.Con) || occursList(id, t.Args)
	case *Tuple:
		return occursList(id, t.Elems)
	case *Union:
		return occursList(id, t.Types)
	case *Ref:
		return Occurs(id, t.Elem)
	case *Record:
		found := false
		t.Fields.Range(func(_ string, ft Type) bool {
			found = Occurs(id, ft)
			return !found
		})
		return found
	case *Variant:
		found := false
		t.Ctors.Range(func(_ string, ts TypeList) bool {
			found = occursList(id, ts.Types())
			return !found
		})
		return found
	}
	return false
}

func occursList(id int, ts []Type) bool {
	for _, t := range ts {
		if Occurs(id, t) {
			return true
		}
	}
	return false
}

func collectVars(vs *VarSet, t Type) {
	switch t := t.(type) {
	case *Var:
		vs.Add(t)
	case *Fun:
		for _, p := range t.Params {
			collectVars(vs, p)
		}
		collectVars(vs, t.Return)
	case *App:
		collectVars(vs, t.Con)
		for _, arg := range t.Args {
			collectVars(vs, arg)
		}
	case *Tuple:
		for _, e := range t.Elems {
			collectVars(vs, e)
		}
	case *Union:
		for _, m := range t.Types {
			collectVars(vs, m)
		}
	case *Ref:
		collectVars(vs, t.Elem)
	case *Record:
		t.Fields.Range(func(_ string, ft Type) bool {
			collectVars(vs, ft)
			return true
		})
	case *Variant:
		t.Ctors.Range(func(_ string, ts TypeList) bool {
			ts.Range(func(_ int, at Type) bool {
				collectVars(vs, at)
				return true
			})
			return true
		})
	}
}
