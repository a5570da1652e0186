package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders expr as an s-expression. It is meant for debugging and tests
// and does not produce source text.
func Sprint(expr *Expr) string {
	printer := &Printer{}
	return printer.Print(expr)
}

// Printer renders the tree as s-expressions.
//
//	(tuple a b)            (scope (def f ...) x)   (scope discard x)
//	(fn x (-> T) $ body)   (case c t f)            (for _ c _ body)
//	(:: e T)  (+ a b)  (- a)  (val x)  (apply f a)  \tag  "str"  1.5
type Printer struct{}

func (printer *Printer) Print(expr *Expr) string {
	if expr == nil {
		return "_"
	}
	s, _ := expr.Accept(printer)
	return s.(string)
}

func (printer *Printer) PrintDef(def *Def) string {
	return fmt.Sprintf("(%s %s %s)", def.Kind, def.Name, printer.Print(def.Value))
}

func (printer *Printer) VisitTupleExpr(expr *TupleExpr) (interface{}, error) {
	return printer.parenthesize("tuple", expr.Items...), nil
}

func (printer *Printer) VisitScopeExpr(expr *ScopeExpr) (interface{}, error) {
	var b strings.Builder
	b.WriteString("(scope")
	if expr.Discard {
		b.WriteString(" discard")
	}
	for _, def := range expr.Defs {
		b.WriteString(" ")
		b.WriteString(printer.PrintDef(def))
	}
	for _, e := range expr.Exprs {
		b.WriteString(" ")
		b.WriteString(printer.Print(e))
	}
	b.WriteString(")")
	return b.String(), nil
}

func (printer *Printer) VisitAbstractExpr(expr *AbstractExpr) (interface{}, error) {
	var b strings.Builder
	b.WriteString("(fn ")
	b.WriteString(printer.Print(expr.Arg))
	if expr.Ty != nil {
		fmt.Fprintf(&b, " (-> %s)", printer.Print(expr.Ty))
	}
	if expr.Spec {
		b.WriteString(" $")
	}
	b.WriteString(" ")
	b.WriteString(printer.Print(expr.Body))
	b.WriteString(")")
	return b.String(), nil
}

func (printer *Printer) VisitCaseExpr(expr *CaseExpr) (interface{}, error) {
	if expr.OnFalse == nil {
		return printer.parenthesize("case", expr.Cond, expr.OnTrue), nil
	}
	return printer.parenthesize("case", expr.Cond, expr.OnTrue, expr.OnFalse), nil
}

func (printer *Printer) VisitForExpr(expr *ForExpr) (interface{}, error) {
	return printer.parenthesize("for", expr.Init, expr.Cond, expr.Afterthought, expr.Body), nil
}

func (printer *Printer) VisitAssertExpr(expr *AssertExpr) (interface{}, error) {
	return printer.parenthesize("::", expr.Expr, expr.Ty), nil
}

func (printer *Printer) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.String(), expr.Lhs, expr.Rhs), nil
}

func (printer *Printer) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.String(), expr.Operand), nil
}

func (printer *Printer) VisitSolveExpr(expr *SolveExpr) (interface{}, error) {
	return fmt.Sprintf("(%s %s)", expr.Marker, expr.Name), nil
}

func (printer *Printer) VisitApplyExpr(expr *ApplyExpr) (interface{}, error) {
	return printer.parenthesize("apply", expr.Callee, expr.Arg), nil
}

func (printer *Printer) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return stringify(expr.Value), nil
}

func (printer *Printer) VisitNameExpr(expr *NameExpr) (interface{}, error) {
	return expr.Name, nil
}

func (printer *Printer) parenthesize(name string, exprs ...*Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(printer.Print(e))
	}
	b.WriteString(")")
	return b.String()
}

func stringify(v interface{}) string {
	switch v := v.(type) {
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return strconv.Quote(v)
	case Variant:
		return `\` + string(v)
	default:
		return fmt.Sprint(v)
	}
}
