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

package construct

import (
	"github.com/mbcrawfo/vibefun-sub014/ast"
	"github.com/mbcrawfo/vibefun-sub014/types"
)

// Types

// Create a new type-variable with the given id and binding-level.
func TVar(id, level int) *types.Var {
	return types.NewVar(id, level)
}

// Type constant: `Int`, `Bool`, etc
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Type application: `List<Int>`
func TApp(constructor types.Type, args ...types.Type) *types.App {
	return &types.App{Con: constructor, Args: args}
}

// Mutable reference: `Ref<Int>`
func TRef(elem types.Type) *types.Ref {
	return &types.Ref{Elem: elem}
}

// Function type: `(Int, Int) -> Int`
func TFun(params []types.Type, ret types.Type) *types.Fun {
	return &types.Fun{Params: params, Return: ret}
}

// Function type: `Int -> Int`
func TFun1(param types.Type, ret types.Type) *types.Fun {
	return &types.Fun{Params: []types.Type{param}, Return: ret}
}

// Function type: `(Int, Int) -> Int`
func TFun2(param1, param2 types.Type, ret types.Type) *types.Fun {
	return &types.Fun{Params: []types.Type{param1, param2}, Return: ret}
}

// Record type: `{ a: Int }`
func TRecord(fields map[string]types.Type) *types.Record {
	return types.NewRecord(fields)
}

// Tuple type: `(Int, String)`
func TTuple(elems ...types.Type) *types.Tuple {
	return &types.Tuple{Elems: elems}
}

// Union type, in canonical form: `Int | String`
func TUnion(members ...types.Type) types.Type {
	return types.NewUnion(members...)
}

// Structural variant type: `Option[None | Some(Int)]`
func TVariant(name string, ctors map[string][]types.Type) *types.Variant {
	return types.NewVariant(name, ctors)
}

// Expressions:

// Integer literal
func Int(v int64) *ast.IntLit { return &ast.IntLit{Value: v} }

// Float literal
func Float(v float64) *ast.FloatLit { return &ast.FloatLit{Value: v} }

// String literal
func Str(v string) *ast.StringLit { return &ast.StringLit{Value: v} }

// Boolean literal
func Bool(v bool) *ast.BoolLit { return &ast.BoolLit{Value: v} }

// Unit literal: `()`
func Unit() *ast.UnitLit { return &ast.UnitLit{} }

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Application: `f(x, y)`
func Call(f ast.Expr, args ...ast.Expr) *ast.App {
	return &ast.App{Func: f, Args: args}
}

// Abstraction: `(x) => x`
func Func1(param string, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Param: param, Body: body}
}

// Curried abstraction: `(x) => (y) => x`
func Func(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Lambda{Param: params[i], Body: body}
	}
	return body
}

// Annotated abstraction: `(x: Int) => x`
func FuncT(param string, paramType ast.TypeExpr, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Param: param, ParamType: paramType, Body: body}
}

// Let-binding: `let a = 1 in e`
func Let(name string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Name: name, Value: value, Body: body}
}

// Recursive let-binding: `let rec f = ... in e`
func LetRecursive(name string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Name: name, Value: value, Body: body, Recursive: true}
}

// Grouped recursive let-bindings: `let rec a = ... and b = ... in e`
func LetRec(bindings []ast.Binding, body ast.Expr) *ast.LetRec {
	return &ast.LetRec{Bindings: bindings, Body: body}
}

// Paired identifier and value
func Binding(name string, value ast.Expr) ast.Binding {
	return ast.Binding{Name: name, Value: value}
}

// Pattern-matching expression
func Match(value ast.Expr, arms ...ast.MatchArm) *ast.Match {
	return &ast.Match{Value: value, Arms: arms}
}

// Match arm: `| p => e`
func Arm(p ast.Pattern, body ast.Expr) ast.MatchArm {
	return ast.MatchArm{Pattern: p, Body: body}
}

// Guarded match arm: `| p when g => e`
func Guarded(p ast.Pattern, guard ast.Expr, body ast.Expr) ast.MatchArm {
	return ast.MatchArm{Pattern: p, Guard: guard, Body: body}
}

// Record construction: `{ a: 1, b: 2 }`
func Record(fields ...ast.Field) *ast.RecordLit {
	return &ast.RecordLit{Fields: fields}
}

// Paired label and value
func Field(label string, value ast.Expr) ast.Field {
	return ast.Field{Label: label, Value: value}
}

// Selecting value of label: `r.a`
func Select(record ast.Expr, label string) *ast.RecordAccess {
	return &ast.RecordAccess{Record: record, Label: label}
}

// Record update: `{ ...r, a: 1 }`
func Update(record ast.Expr, fields ...ast.Field) *ast.RecordUpdate {
	return &ast.RecordUpdate{Record: record, Fields: fields}
}

// Constructor application: `Some(x)`
func Ctor(name string, args ...ast.Expr) *ast.Construct {
	return &ast.Construct{Name: name, Args: args}
}

// Tuple: `(a, b)`
func Tuple(elems ...ast.Expr) *ast.Tuple {
	return &ast.Tuple{Elems: elems}
}

// Binary operation
func BinOp(op ast.Op, left, right ast.Expr) *ast.BinOp {
	return &ast.BinOp{Op: op, Left: left, Right: right}
}

// Generic division: `a / b`
func Div(left, right ast.Expr) *ast.BinOp {
	return &ast.BinOp{Op: ast.Divide, Left: left, Right: right}
}

// Unary operation
func UnOp(op ast.UnOp, operand ast.Expr) *ast.UnaryOp {
	return &ast.UnaryOp{Op: op, Operand: operand}
}

// Dereference: `!r`
func Deref(ref ast.Expr) *ast.UnaryOp {
	return &ast.UnaryOp{Op: ast.Deref, Operand: ref}
}

// Reference assignment: `r := v`
func Assign(ref, value ast.Expr) *ast.BinOp {
	return &ast.BinOp{Op: ast.Assign, Left: ref, Right: value}
}

// Type annotation: `(e : T)`
func Annotate(value ast.Expr, t ast.TypeExpr) *ast.Annotate {
	return &ast.Annotate{Value: value, Type: t}
}

// Patterns:

// Wildcard: `_`
func PWild() *ast.WildcardPat { return &ast.WildcardPat{} }

// Variable pattern: `x`
func PVar(name string) *ast.VarPat { return &ast.VarPat{Name: name} }

// Literal pattern: `"done"`
func PLit(value ast.Expr) *ast.LiteralPat { return &ast.LiteralPat{Value: value} }

// Constructor pattern: `Some(x)`
func PCtor(name string, args ...ast.Pattern) *ast.ConstructorPat {
	return &ast.ConstructorPat{Name: name, Args: args}
}

// Record pattern: `{ a: x }`
func PRecord(fields ...ast.FieldPat) *ast.RecordPat {
	return &ast.RecordPat{Fields: fields}
}

// Paired label and pattern
func PField(label string, p ast.Pattern) ast.FieldPat {
	return ast.FieldPat{Label: label, Pattern: p}
}

// Tuple pattern: `(a, b)`
func PTuple(elems ...ast.Pattern) *ast.TuplePat {
	return &ast.TuplePat{Elems: elems}
}

// Or-pattern: `p1 | p2`
func POr(alts ...ast.Pattern) *ast.OrPat {
	return &ast.OrPat{Alts: alts}
}

// Annotated pattern: `(p : T)`
func PAnnot(p ast.Pattern, t ast.TypeExpr) *ast.AnnotatedPat {
	return &ast.AnnotatedPat{Pattern: p, Type: t}
}

// Type expressions:

// Named type: `List<Int>`
func TName(name string, args ...ast.TypeExpr) *ast.TypeNameExpr {
	return &ast.TypeNameExpr{Name: name, Args: args}
}

// Type parameter: `'a`
func TParam(name string) *ast.TypeVarExpr { return &ast.TypeVarExpr{Name: name} }

// Function type: `(Int, Int) -> Int`
func TFunExpr(params []ast.TypeExpr, ret ast.TypeExpr) *ast.FunTypeExpr {
	return &ast.FunTypeExpr{Params: params, Return: ret}
}

// Record type: `{ a: Int }`
func TRecordExpr(fields ...ast.FieldTypeExpr) *ast.RecordTypeExpr {
	return &ast.RecordTypeExpr{Fields: fields}
}

// Paired label and type
func TField(label string, t ast.TypeExpr) ast.FieldTypeExpr {
	return ast.FieldTypeExpr{Label: label, Type: t}
}

// Tuple type: `(Int, String)`
func TTupleExpr(elems ...ast.TypeExpr) *ast.TupleTypeExpr {
	return &ast.TupleTypeExpr{Elems: elems}
}

// Union type: `"a" | "b"`
func TUnionExpr(members ...ast.TypeExpr) *ast.UnionTypeExpr {
	return &ast.UnionTypeExpr{Types: members}
}

// Literal type: `"a"`
func TLit(value ast.Expr) *ast.LiteralTypeExpr {
	return &ast.LiteralTypeExpr{Value: value}
}

// Declarations:

// Module
func Module(name string, decls ...ast.Decl) *ast.Module {
	return &ast.Module{Name: name, Decls: decls}
}

// Top-level binding: `let x = e`
func LetDecl(name string, value ast.Expr) *ast.LetDecl {
	return &ast.LetDecl{Name: name, Value: value}
}

// Top-level recursive binding: `let rec f = e`
func LetRecursiveDecl(name string, value ast.Expr) *ast.LetDecl {
	return &ast.LetDecl{Name: name, Value: value, Recursive: true}
}

// Top-level recursive group: `let rec f = ... and g = ...`
func LetRecDecl(bindings ...ast.Binding) *ast.LetRecDecl {
	return &ast.LetRecDecl{Bindings: bindings}
}

// Type alias: `type Id = Int`
func AliasDecl(name string, params []string, t ast.TypeExpr) *ast.TypeDecl {
	return &ast.TypeDecl{Name: name, Params: params, Alias: t}
}

// Record type declaration: `type Person = { name: String }`
func RecordDecl(name string, params []string, fields ...ast.FieldTypeExpr) *ast.TypeDecl {
	return &ast.TypeDecl{Name: name, Params: params, Record: &ast.RecordTypeExpr{Fields: fields}}
}

// Variant type declaration: `type Option<T> = Some(T) | None`
func VariantDecl(name string, params []string, ctors ...ast.CtorDecl) *ast.TypeDecl {
	return &ast.TypeDecl{Name: name, Params: params, Ctors: ctors}
}

// Constructor within a variant declaration
func CtorDecl(name string, args ...ast.TypeExpr) ast.CtorDecl {
	return ast.CtorDecl{Name: name, Args: args}
}

// Foreign value: `external name: T = "foreign"`
func External(name string, t ast.TypeExpr, foreignName string) *ast.ExternalDecl {
	return &ast.ExternalDecl{Name: name, Type: t, ForeignName: foreignName}
}

// Opaque foreign type: `external type T`
func ExternalType(name string, params ...string) *ast.ExternalTypeDecl {
	return &ast.ExternalTypeDecl{Name: name, Params: params}
}

// Import: `import { a, b } from "mod"`
func Import(module string, names ...string) *ast.ImportDecl {
	d := &ast.ImportDecl{Module: module}
	for _, name := range names {
		d.Names = append(d.Names, ast.ImportName{Name: name})
	}
	return d
}
