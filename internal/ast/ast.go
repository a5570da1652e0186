// Package ast defines the syntax tree produced by the parser.
//
// Every node is an Expr: a span plus one of the generated kinds in kinds.go.
// Kinds implement the visitor pattern through ExprKind.Accept.
package ast

//go:generate go run ../cmd/astgen .

import "github.com/ltungv/sol/internal/token"

// Expr is a node of the syntax tree.
type Expr struct {
	Span token.Span
	Kind ExprKind
}

// NewExpr creates a node spanning span.
func NewExpr(span token.Span, kind ExprKind) *Expr {
	return &Expr{span, kind}
}

// Accept dispatches the node's kind to visitor.
func (expr *Expr) Accept(visitor Visitor) (interface{}, error) {
	return expr.Kind.Accept(visitor)
}

// DefKind records which keyword introduced a declaration.
type DefKind int

const (
	// DefValue is a declaration introduced by "def".
	DefValue DefKind = iota
	// DefType is a declaration introduced by "type".
	DefType
)

func (kind DefKind) String() string {
	if kind == DefType {
		return "type"
	}
	return "def"
}

// Def is a named declaration inside a scope.
type Def struct {
	Span  token.Span
	Kind  DefKind
	Name  string
	Value *Expr
}

// NewDef creates a new declaration
func NewDef(span token.Span, kind DefKind, name string, value *Expr) *Def {
	return &Def{span, kind, name, value}
}

// BinOp is a binary operator.
type BinOp int

const (
	And BinOp = iota
	Or
	Eq
	Neq
	Gt
	Geq
	Lt
	Leq
	Add
	Sub
	Mul
	Div
	Mod
)

var binOpSymbols = [...]string{
	And: "&&",
	Or:  "||",
	Eq:  "==",
	Neq: "!=",
	Gt:  ">",
	Geq: ">=",
	Lt:  "<",
	Leq: "<=",
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Mod: "%",
}

func (op BinOp) String() string {
	return binOpSymbols[op]
}

// UnOp is a prefix operator.
type UnOp int

const (
	Not UnOp = iota
	Neg
)

func (op UnOp) String() string {
	if op == Not {
		return "!"
	}
	return "-"
}

// SolveMarker tags a name occurrence for the resolution pass. Val and Var
// introduce a binding, Set refers to an existing one.
type SolveMarker int

const (
	Val SolveMarker = iota
	Var
	Set
)

func (marker SolveMarker) String() string {
	switch marker {
	case Val:
		return "val"
	case Var:
		return "var"
	default:
		return "set"
	}
}

// Variant is the value of a variant literal such as \some.
type Variant string
