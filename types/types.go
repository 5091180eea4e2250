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

// Primitive type names.
const (
	IntName    = "Int"
	FloatName  = "Float"
	StringName = "String"
	BoolName   = "Bool"
	UnitName   = "Unit"
)

var (
	Int    = &Const{Name: IntName}
	Float  = &Const{Name: FloatName}
	String = &Const{Name: StringName}
	Bool   = &Const{Name: BoolName}
	Unit   = &Const{Name: UnitName}
)

// Type is the base interface for all types.
//
// Types are immutable once constructed; the type of a term changes only by
// extending a substitution.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Const)(nil)
	_ Type = (*Fun)(nil)
	_ Type = (*App)(nil)
	_ Type = (*Record)(nil)
	_ Type = (*Variant)(nil)
	_ Type = (*Union)(nil)
	_ Type = (*Tuple)(nil)
	_ Type = (*Ref)(nil)
	_ Type = (*Never)(nil)
	_ Type = (*Literal)(nil)
)

func (t *Var) TypeName() string     { return "Var" }
func (t *Const) TypeName() string   { return "Const" }
func (t *Fun) TypeName() string     { return "Fun" }
func (t *App) TypeName() string     { return "App" }
func (t *Record) TypeName() string  { return "Record" }
func (t *Variant) TypeName() string { return "Variant" }
func (t *Union) TypeName() string   { return "Union" }
func (t *Tuple) TypeName() string   { return "Tuple" }
func (t *Ref) TypeName() string     { return "Ref" }
func (t *Never) TypeName() string   { return "Never" }
func (t *Literal) TypeName() string { return "Literal" }

// Type-variable. The level is the let-nesting depth active when the variable was created.
type Var struct {
	Id    int
	Level int
}

// Create a new type-variable with the given id and binding-level.
func NewVar(id, level int) *Var { return &Var{Id: id, Level: level} }

// Type constant: `Int` or `Bool`
type Const struct {
	Name string
}

// Function type: `(Int, Int) -> Int`
type Fun struct {
	Params []Type
	Return Type
}

// Type application: `List<Int>`
type App struct {
	Con  Type
	Args []Type
}

// Record type: `{ name: String, age: Int }`
type Record struct {
	Fields FieldMap
}

// Variant type: `Option = Some('a) | None`
type Variant struct {
	Name  string
	Ctors TypeMap
}

// Union type: `Int | String`. Members are kept in canonical order, see NewUnion.
type Union struct {
	Types []Type
}

// Tuple type: `(Int, String)`
type Tuple struct {
	Elems []Type
}

// Mutable reference type: `Ref<Int>`
type Ref struct {
	Elem Type
}

// Bottom type, inhabited by no value.
type Never struct{}

// NeverType is the shared instance of Never.
var NeverType = &Never{}

// Literal type: `"pending"` or `1`. Value holds the literal as written in source,
// with strings quoted. A literal type is a member of its base primitive.
type Literal struct {
	Base  *Const
	Value string
}

// IsLiteralDomain reports whether t is a literal type or a union of literal types over
// one base primitive, and returns that base.
func IsLiteralDomain(t Type) (*Const, bool) {
	switch t := t.(type) {
	case *Literal:
		return t.Base, true
	case *Union:
		var base *Const
		for _, m := range t.Types {
			lit, ok := m.(*Literal)
			if !ok || (base != nil && base.Name != lit.Base.Name) {
				return nil, false
			}
			base = lit.Base
		}
		return base, base != nil
	}
	return nil, false
}

// Literals returns the literal members of a literal domain, in canonical order.
func Literals(t Type) []*Literal {
	switch t := t.(type) {
	case *Literal:
		return []*Literal{t}
	case *Union:
		out := make([]*Literal, 0, len(t.Types))
		for _, m := range t.Types {
			if lit, ok := m.(*Literal); ok {
				out = append(out, lit)
			}
		}
		return out
	}
	return nil
}

// Widen returns the base primitive of a literal domain, or t itself.
func Widen(t Type) Type {
	if base, ok := IsLiteralDomain(t); ok {
		return base
	}
	return t
}

// Create a record type from unscoped field labels.
func NewRecord(fields map[string]Type) *Record {
	return &Record{Fields: NewFieldMap(fields)}
}

// Create a variant type. Constructors without arguments map to an empty list.
func NewVariant(name string, ctors map[string][]Type) *Variant {
	b := NewTypeMapBuilder()
	for label, args := range ctors {
		lb := NewTypeListBuilder()
		for _, arg := range args {
			lb.Append(arg)
		}
		b.Set(label, lb.Build())
	}
	return &Variant{Name: name, Ctors: b.Build()}
}

// IsConst reports whether t is the type-constant with the given name.
func IsConst(t Type, name string) bool {
	c, ok := t.(*Const)
	return ok && c.Name == name
}

// Equal reports whether a and b are structurally identical. Type-variables are compared by id.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Id == b.Id
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name
	case *Fun:
		b, ok := b.(*Fun)
		return ok && equalLists(a.Params, b.Params) && Equal(a.Return, b.Return)
	case *App:
		b, ok := b.(*App)
		return ok && Equal(a.Con, b.Con) && equalLists(a.Args, b.Args)
	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && equalLists(a.Elems, b.Elems)
	case *Union:
		b, ok := b.(*Union)
		return ok && equalLists(a.Types, b.Types)
	case *Ref:
		b, ok := b.(*Ref)
		return ok && Equal(a.Elem, b.Elem)
	case *Never:
		_, ok := b.(*Never)
		return ok
	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.Base.Name == b.Base.Name && a.Value == b.Value
	case *Record:
		b, ok := b.(*Record)
		if !ok || a.Fields.Len() != b.Fields.Len() {
			return false
		}
		equal := true
		a.Fields.Range(func(label string, t Type) bool {
			bt, ok := b.Fields.Get(label)
			equal = ok && Equal(t, bt)
			return equal
		})
		return equal
	case *Variant:
		b, ok := b.(*Variant)
		if !ok || a.Name != b.Name || a.Ctors.Len() != b.Ctors.Len() {
			return false
		}
		equal := true
		a.Ctors.Range(func(label string, ts TypeList) bool {
			bts, ok := b.Ctors.Get(label)
			equal = ok && equalLists(ts.Types(), bts.Types())
			return equal
		})
		return equal
	}
	return false
}

func equalLists(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
