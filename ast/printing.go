package ast

import (
	"strconv"
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// PatternString returns a string representation of a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, false, p)
	return sb.String()
}

// TypeExprString returns a string representation of a type expression.
func TypeExprString(t TypeExpr) string {
	var sb strings.Builder
	typeExprString(&sb, t)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case nil:
		sb.WriteString("<nil>")

	case *IntLit:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *FloatLit:
		s := strconv.FormatFloat(et.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnI") {
			s += ".0"
		}
		sb.WriteString(s)

	case *StringLit:
		sb.WriteString(strconv.Quote(et.Value))

	case *BoolLit:
		sb.WriteString(strconv.FormatBool(et.Value))

	case *UnitLit:
		sb.WriteString("()")

	case *Var:
		sb.WriteString(et.Name)

	case *App:
		exprString(sb, true, et.Func)
		sb.WriteByte('(')
		exprList(sb, et.Args)
		sb.WriteByte(')')

	case *Lambda:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteByte('(')
		sb.WriteString(et.Param)
		if et.ParamType != nil {
			sb.WriteString(": ")
			typeExprString(sb, et.ParamType)
		}
		sb.WriteString(") => ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Let:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let ")
		if et.Recursive {
			sb.WriteString("rec ")
		}
		sb.WriteString(et.Name)
		sb.WriteString(" = ")
		exprString(sb, false, et.Value)
		sb.WriteString(" in ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *LetRec:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("let rec ")
		for i, b := range et.Bindings {
			if i > 0 {
				sb.WriteString(" and ")
			}
			sb.WriteString(b.Name)
			sb.WriteString(" = ")
			exprString(sb, false, b.Value)
		}
		sb.WriteString(" in ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Match:
		sb.WriteString("match ")
		exprString(sb, false, et.Value)
		sb.WriteString(" {")
		for _, arm := range et.Arms {
			sb.WriteString(" | ")
			patternString(sb, false, arm.Pattern)
			if arm.Guard != nil {
				sb.WriteString(" when ")
				exprString(sb, false, arm.Guard)
			}
			sb.WriteString(" => ")
			exprString(sb, false, arm.Body)
		}
		sb.WriteString(" }")

	case *RecordLit:
		if len(et.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		fieldList(sb, et.Fields)
		sb.WriteString(" }")

	case *RecordAccess:
		exprString(sb, true, et.Record)
		sb.WriteByte('.')
		sb.WriteString(et.Label)

	case *RecordUpdate:
		sb.WriteString("{ ...")
		exprString(sb, true, et.Record)
		if len(et.Fields) > 0 {
			sb.WriteString(", ")
			fieldList(sb, et.Fields)
		}
		sb.WriteString(" }")

	case *Construct:
		sb.WriteString(et.Name)
		if len(et.Args) > 0 {
			sb.WriteByte('(')
			exprList(sb, et.Args)
			sb.WriteByte(')')
		}

	case *Tuple:
		sb.WriteByte('(')
		exprList(sb, et.Elems)
		sb.WriteByte(')')

	case *BinOp:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(et.Op.String())
		sb.WriteByte(' ')
		exprString(sb, true, et.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *UnaryOp:
		sb.WriteString(et.Op.String())
		exprString(sb, true, et.Operand)

	case *Annotate:
		sb.WriteByte('(')
		exprString(sb, false, et.Value)
		sb.WriteString(" : ")
		typeExprString(sb, et.Type)
		sb.WriteByte(')')

	default:
		sb.WriteString("<" + e.ExprName() + ">")
	}
}

func exprList(sb *strings.Builder, es []Expr) {
	for i, e := range es {
		if i > 0 {
			sb.WriteString(", ")
		}
		exprString(sb, false, e)
	}
}

func fieldList(sb *strings.Builder, fields []Field) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Label)
		sb.WriteString(": ")
		exprString(sb, false, f.Value)
	}
}

func patternString(sb *strings.Builder, simple bool, p Pattern) {
	switch pt := p.(type) {
	case nil:
		sb.WriteString("<nil>")

	case *WildcardPat:
		sb.WriteByte('_')

	case *VarPat:
		sb.WriteString(pt.Name)

	case *LiteralPat:
		exprString(sb, false, pt.Value)

	case *ConstructorPat:
		sb.WriteString(pt.Name)
		if len(pt.Args) > 0 {
			sb.WriteByte('(')
			patternList(sb, pt.Args)
			sb.WriteByte(')')
		}

	case *RecordPat:
		if len(pt.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		for i, f := range pt.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Label)
			sb.WriteString(": ")
			patternString(sb, false, f.Pattern)
		}
		sb.WriteString(" }")

	case *TuplePat:
		sb.WriteByte('(')
		patternList(sb, pt.Elems)
		sb.WriteByte(')')

	case *OrPat:
		if simple {
			sb.WriteByte('(')
		}
		for i, alt := range pt.Alts {
			if i > 0 {
				sb.WriteString(" | ")
			}
			patternString(sb, true, alt)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *AnnotatedPat:
		sb.WriteByte('(')
		patternString(sb, false, pt.Pattern)
		sb.WriteString(" : ")
		typeExprString(sb, pt.Type)
		sb.WriteByte(')')

	default:
		sb.WriteString("<" + p.PatternName() + ">")
	}
}

func patternList(sb *strings.Builder, ps []Pattern) {
	for i, p := range ps {
		if i > 0 {
			sb.WriteString(", ")
		}
		patternString(sb, true, p)
	}
}

func typeExprString(sb *strings.Builder, t TypeExpr) {
	switch tt := t.(type) {
	case nil:
		sb.WriteString("<nil>")

	case *TypeVarExpr:
		sb.WriteByte('\'')
		sb.WriteString(strings.TrimPrefix(tt.Name, "'"))

	case *TypeNameExpr:
		sb.WriteString(tt.Name)
		if len(tt.Args) > 0 {
			sb.WriteByte('<')
			typeExprList(sb, tt.Args)
			sb.WriteByte('>')
		}

	case *FunTypeExpr:
		sb.WriteByte('(')
		typeExprList(sb, tt.Params)
		sb.WriteString(") -> ")
		typeExprString(sb, tt.Return)

	case *RecordTypeExpr:
		sb.WriteString("{ ")
		for i, f := range tt.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Label)
			sb.WriteString(": ")
			typeExprString(sb, f.Type)
		}
		sb.WriteString(" }")

	case *TupleTypeExpr:
		sb.WriteByte('(')
		typeExprList(sb, tt.Elems)
		sb.WriteByte(')')

	case *UnionTypeExpr:
		for i, m := range tt.Types {
			if i > 0 {
				sb.WriteString(" | ")
			}
			typeExprString(sb, m)
		}

	case *LiteralTypeExpr:
		exprString(sb, false, tt.Value)

	default:
		sb.WriteString("<" + t.TypeExprName() + ">")
	}
}

func typeExprList(sb *strings.Builder, ts []TypeExpr) {
	for i, t := range ts {
		if i > 0 {
			sb.WriteString(", ")
		}
		typeExprString(sb, t)
	}
}
