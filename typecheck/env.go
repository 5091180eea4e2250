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
	"github.com/benbjohnson/immutable"

	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// Binding is an entry in the value namespace: *Value, *External or *ExternalOverload.
type Binding interface {
	Loc() ast.Location
	isBinding()
}

// TypeBinding is an entry in the type namespace: *Alias, *RecordType, *VariantType or *ExternalType.
type TypeBinding interface {
	Loc() ast.Location
	// Number of type parameters
	Arity() int
	isTypeBinding()
}

// Value is an ordinary binding. Constructors of variant types are values with Ctor set.
type Value struct {
	Scheme *types.Scheme
	Ctor   *CtorInfo
	At     ast.Location
}

// CtorInfo describes a variant constructor bound in the value namespace.
type CtorInfo struct {
	// Name of the variant type declaring the constructor
	Variant string
	Arity   int
}

// External is a foreign binding with a single signature.
type External struct {
	Scheme      *types.Scheme
	ForeignName string
	Module      string
	At          ast.Location
}

// ExternalOverload is a foreign binding with several signatures of pairwise-distinct arity.
// Each signature is a scheme whose type is a *types.Fun.
type ExternalOverload struct {
	Signatures  []*types.Scheme
	ForeignName string
	Module      string
	At          ast.Location
}

// Alias is a type synonym, expanded structurally on use.
type Alias struct {
	Params []*types.Var
	Type   types.Type
	At     ast.Location
}

// RecordType is a declared record type, expanded structurally on use.
type RecordType struct {
	Params []*types.Var
	Fields types.FieldMap
	At     ast.Location
}

// VariantType is a declared variant type. References to it are nominal; Def holds
// the constructor signatures over Params.
type VariantType struct {
	Name   string
	Params []*types.Var
	Def    *types.Variant
	At     ast.Location
}

// ExternalType is an opaque type, either foreign or primitive.
type ExternalType struct {
	Name   string
	Params int
	At     ast.Location
}

func (b *Value) Loc() ast.Location            { return b.At }
func (b *External) Loc() ast.Location         { return b.At }
func (b *ExternalOverload) Loc() ast.Location { return b.At }
func (b *Alias) Loc() ast.Location            { return b.At }
func (b *RecordType) Loc() ast.Location       { return b.At }
func (b *VariantType) Loc() ast.Location      { return b.At }
func (b *ExternalType) Loc() ast.Location     { return b.At }

func (*Value) isBinding()            {}
func (*External) isBinding()         {}
func (*ExternalOverload) isBinding() {}

func (*Alias) isTypeBinding()        {}
func (*RecordType) isTypeBinding()   {}
func (*VariantType) isTypeBinding()  {}
func (*ExternalType) isTypeBinding() {}

func (b *Alias) Arity() int        { return len(b.Params) }
func (b *RecordType) Arity() int   { return len(b.Params) }
func (b *VariantType) Arity() int  { return len(b.Params) }
func (b *ExternalType) Arity() int { return b.Params }

// IsOverloaded reports whether b is an overloaded foreign binding.
func IsOverloaded(b Binding) bool {
	_, ok := b.(*ExternalOverload)
	return ok
}

// IsExternal reports whether b is a foreign binding, overloaded or not.
func IsExternal(b Binding) bool {
	switch b.(type) {
	case *External, *ExternalOverload:
		return true
	}
	return false
}

// TypeEnv is a type-environment with separate value and type namespaces.
//
// A TypeEnv is persistent: adding a binding returns a new environment and leaves the
// receiver unchanged, so a child scope is created by adding to its parent.
type TypeEnv struct {
	values *immutable.SortedMap
	types  *immutable.SortedMap
}

var emptyNamespace = immutable.NewSortedMap(nil)

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv {
	return &TypeEnv{values: emptyNamespace, types: emptyNamespace}
}

// Lookup the binding for a value identifier.
func (e *TypeEnv) LookupValue(name string) (Binding, bool) {
	b, ok := e.values.Get(name)
	if !ok {
		return nil, false
	}
	return b.(Binding), true
}

// Lookup the binding for a type identifier.
func (e *TypeEnv) LookupType(name string) (TypeBinding, bool) {
	b, ok := e.types.Get(name)
	if !ok {
		return nil, false
	}
	return b.(TypeBinding), true
}

// AddValue returns an environment with name bound to b in the value namespace.
func (e *TypeEnv) AddValue(name string, b Binding) *TypeEnv {
	return &TypeEnv{values: e.values.Set(name, b), types: e.types}
}

// AddType returns an environment with name bound to b in the type namespace.
func (e *TypeEnv) AddType(name string, b TypeBinding) *TypeEnv {
	return &TypeEnv{values: e.values, types: e.types.Set(name, b)}
}

// Bind a monomorphic value. Used for lambda parameters and pattern variables.
func (e *TypeEnv) addMono(name string, t types.Type, at ast.Location) *TypeEnv {
	return e.AddValue(name, &Value{Scheme: types.Monomorphic(t), At: at})
}

// Iterate over value bindings in name order.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) RangeValues(f func(string, Binding) bool) {
	iter := e.values.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Binding)) {
			return
		}
	}
}

// Iterate over type bindings in name order.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) RangeTypes(f func(string, TypeBinding) bool) {
	iter := e.types.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(TypeBinding)) {
			return
		}
	}
}

// Number of value bindings
func (e *TypeEnv) NumValues() int { return e.values.Len() }

// Number of type bindings
func (e *TypeEnv) NumTypes() int { return e.types.Len() }
