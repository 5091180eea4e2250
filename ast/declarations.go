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

package ast

// Module is an ordered list of top-level declarations. Every top-level name is exported.
type Module struct {
	Name  string
	Decls []Decl
}

// Decl is the base for all top-level declarations.
type Decl interface {
	Node
	DeclName() string
}

var (
	_ Decl = (*LetDecl)(nil)
	_ Decl = (*LetRecDecl)(nil)
	_ Decl = (*TypeDecl)(nil)
	_ Decl = (*ExternalDecl)(nil)
	_ Decl = (*ExternalTypeDecl)(nil)
	_ Decl = (*ImportDecl)(nil)
)

// Top-level binding: `let x = e`
type LetDecl struct {
	Name      string
	Value     Expr
	Recursive bool
	At        Location
}

// Top-level recursive group: `let rec f = ... and g = ...`
type LetRecDecl struct {
	Bindings []Binding
	At       Location
}

// Type declaration. Exactly one of Alias, Record or Ctors is set.
//
//	type Id = Int
//	type Person = { name: String }
//	type Shape = Circle(Float) | Square(Float)
type TypeDecl struct {
	Name   string
	Params []string
	Alias  TypeExpr
	Record *RecordTypeExpr
	Ctors  []CtorDecl
	At     Location
}

// Constructor within a variant declaration.
type CtorDecl struct {
	Name string
	Args []TypeExpr
	At   Location
}

// Foreign value: `external log: (String) -> Unit = "console.log"`.
// Declarations sharing a name form one overload set.
type ExternalDecl struct {
	Name        string
	Type        TypeExpr
	ForeignName string
	Module      string
	At          Location
}

// Opaque foreign type: `external type Element`
type ExternalTypeDecl struct {
	Name   string
	Params []string
	At     Location
}

// Import of names from another module: `import { a, b } from "mod"`
type ImportDecl struct {
	Module string
	Names  []ImportName
	At     Location
}

// Imported name with an optional local alias. TypeOnly imports from the type namespace.
type ImportName struct {
	Name     string
	Alias    string
	TypeOnly bool
}

// Local name bound by the import.
func (n ImportName) Local() string {
	if n.Alias != "" {
		return n.Alias
	}
	return n.Name
}

// IsVariant reports whether the declaration defines a variant type.
func (d *TypeDecl) IsVariant() bool { return len(d.Ctors) > 0 }

func (d *LetDecl) Loc() Location          { return d.At }
func (d *LetRecDecl) Loc() Location       { return d.At }
func (d *TypeDecl) Loc() Location         { return d.At }
func (d *ExternalDecl) Loc() Location     { return d.At }
func (d *ExternalTypeDecl) Loc() Location { return d.At }
func (d *ImportDecl) Loc() Location       { return d.At }

func (d *LetDecl) DeclName() string          { return "LetDecl" }
func (d *LetRecDecl) DeclName() string       { return "LetRecDecl" }
func (d *TypeDecl) DeclName() string         { return "TypeDecl" }
func (d *ExternalDecl) DeclName() string     { return "ExternalDecl" }
func (d *ExternalTypeDecl) DeclName() string { return "ExternalTypeDecl" }
func (d *ImportDecl) DeclName() string       { return "ImportDecl" }
