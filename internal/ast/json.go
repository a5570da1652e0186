package ast

import (
	"encoding/json"
	"io"
)

// JSONEncoder writes the tree as indented JSON.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(expr *Expr) error {
	text, err := MarshalJSON(expr)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

// MarshalJSON renders expr as indented JSON.
func MarshalJSON(expr *Expr) ([]byte, error) {
	return json.MarshalIndent(exprToJSON(expr), "", "  ")
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Role     string      `json:"role,omitempty"`
	Span     [2]int      `json:"span"`
	Name     string      `json:"name,omitempty"`
	Op       string      `json:"op,omitempty"`
	Value    interface{} `json:"value,omitempty"`
	Flags    []string    `json:"flags,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

// jsonBuilder is a Visitor filling in the kind specific parts of a node.
type jsonBuilder struct {
	node *jsonNode
}

func exprToJSON(expr *Expr) *jsonNode {
	node := &jsonNode{Span: [2]int{expr.Span.Start, expr.Span.End}}
	_, _ = expr.Accept(&jsonBuilder{node})
	return node
}

func defToJSON(def *Def) *jsonNode {
	return &jsonNode{
		Kind:     def.Kind.String(),
		Span:     [2]int{def.Span.Start, def.Span.End},
		Name:     def.Name,
		Children: []*jsonNode{withRole(exprToJSON(def.Value), "value")},
	}
}

func withRole(node *jsonNode, role string) *jsonNode {
	node.Role = role
	return node
}

func (b *jsonBuilder) child(expr *Expr, role string) {
	if expr != nil {
		b.node.Children = append(b.node.Children, withRole(exprToJSON(expr), role))
	}
}

func (b *jsonBuilder) flag(set bool, name string) {
	if set {
		b.node.Flags = append(b.node.Flags, name)
	}
}

func (b *jsonBuilder) VisitTupleExpr(expr *TupleExpr) (interface{}, error) {
	b.node.Kind = "tuple"
	for _, item := range expr.Items {
		b.child(item, "item")
	}
	return nil, nil
}

func (b *jsonBuilder) VisitScopeExpr(expr *ScopeExpr) (interface{}, error) {
	b.node.Kind = "scope"
	b.flag(expr.Discard, "discard")
	for _, def := range expr.Defs {
		b.node.Children = append(b.node.Children, withRole(defToJSON(def), "def"))
	}
	for _, e := range expr.Exprs {
		b.child(e, "expr")
	}
	return nil, nil
}

func (b *jsonBuilder) VisitAbstractExpr(expr *AbstractExpr) (interface{}, error) {
	b.node.Kind = "abstract"
	b.flag(expr.Spec, "spec")
	b.child(expr.Arg, "arg")
	b.child(expr.Ty, "type")
	b.child(expr.Body, "body")
	return nil, nil
}

func (b *jsonBuilder) VisitCaseExpr(expr *CaseExpr) (interface{}, error) {
	b.node.Kind = "case"
	b.child(expr.Cond, "cond")
	b.child(expr.OnTrue, "on_true")
	b.child(expr.OnFalse, "on_false")
	return nil, nil
}

func (b *jsonBuilder) VisitForExpr(expr *ForExpr) (interface{}, error) {
	b.node.Kind = "for"
	b.child(expr.Init, "init")
	b.child(expr.Cond, "cond")
	b.child(expr.Afterthought, "afterthought")
	b.child(expr.Body, "body")
	return nil, nil
}

func (b *jsonBuilder) VisitAssertExpr(expr *AssertExpr) (interface{}, error) {
	b.node.Kind = "assert"
	b.child(expr.Expr, "expr")
	b.child(expr.Ty, "type")
	return nil, nil
}

func (b *jsonBuilder) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	b.node.Kind = "binary"
	b.node.Op = expr.Op.String()
	b.child(expr.Lhs, "lhs")
	b.child(expr.Rhs, "rhs")
	return nil, nil
}

func (b *jsonBuilder) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	b.node.Kind = "unary"
	b.node.Op = expr.Op.String()
	b.child(expr.Operand, "operand")
	return nil, nil
}

func (b *jsonBuilder) VisitSolveExpr(expr *SolveExpr) (interface{}, error) {
	b.node.Kind = "solve"
	b.node.Op = expr.Marker.String()
	b.node.Name = expr.Name
	return nil, nil
}

func (b *jsonBuilder) VisitApplyExpr(expr *ApplyExpr) (interface{}, error) {
	b.node.Kind = "apply"
	b.child(expr.Callee, "callee")
	b.child(expr.Arg, "arg")
	return nil, nil
}

func (b *jsonBuilder) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	switch v := expr.Value.(type) {
	case float64:
		b.node.Kind = "float"
	case int64:
		b.node.Kind = "integer"
	case string:
		b.node.Kind = "string"
	case Variant:
		b.node.Kind = "variant"
		b.node.Name = string(v)
		return nil, nil
	}
	b.node.Value = expr.Value
	return nil, nil
}

func (b *jsonBuilder) VisitNameExpr(expr *NameExpr) (interface{}, error) {
	b.node.Kind = "name"
	b.node.Name = expr.Name
	return nil, nil
}
