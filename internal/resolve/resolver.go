// Package resolve binds the names introduced by declarations and by the val,
// var and set markers to lexical scopes.
package resolve

import (
	"fmt"

	"github.com/ltungv/sol/internal/ast"
	"github.com/ltungv/sol/internal/report"
	"github.com/ltungv/sol/internal/token"
	"github.com/tliron/commonlog"
)

// Resolver performs name resolution on a syntax tree. Scopes open at scope
// nodes, abstractions, case branches and loops. Bare names are not checked.
type Resolver struct {
	reporter  report.Reporter
	log       commonlog.Logger
	scope     *scope
	table     *Table
	span      token.Span
	shadowing bool
	err       error
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithShadowing allows a name to be declared twice in the same scope, the
// later declaration hiding the earlier one.
func WithShadowing(allow bool) Option {
	return func(r *Resolver) {
		r.shadowing = allow
	}
}

func NewResolver(reporter report.Reporter, opts ...Option) *Resolver {
	r := &Resolver{
		reporter: reporter,
		log:      commonlog.GetLogger("sol.resolve"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve resolves expr with a new Resolver.
func Resolve(expr *ast.Expr, reporter report.Reporter, opts ...Option) (*Table, error) {
	return NewResolver(reporter, opts...).Resolve(expr)
}

// Resolve walks the whole tree. Every error is sent to the reporter, the
// first one is returned.
func (r *Resolver) Resolve(expr *ast.Expr) (*Table, error) {
	r.table = newTable()
	r.scope = newScope(nil)
	r.err = nil
	r.resolveExpr(expr)
	if r.err != nil {
		r.log.Debugf("resolve failed: %s", r.err)
		return nil, r.err
	}
	return r.table, nil
}

func (r *Resolver) VisitTupleExpr(expr *ast.TupleExpr) (interface{}, error) {
	for _, item := range expr.Items {
		r.resolveExpr(item)
	}
	return nil, nil
}

// Declarations are bound before any of their values is resolved so that they
// may refer to each other.
func (r *Resolver) VisitScopeExpr(expr *ast.ScopeExpr) (interface{}, error) {
	r.beginScope()
	for _, def := range expr.Defs {
		binding := BindDef
		if def.Kind == ast.DefType {
			binding = BindType
		}
		r.declare(def.Name, binding, def.Span)
	}
	for _, def := range expr.Defs {
		r.resolveExpr(def.Value)
	}
	for _, e := range expr.Exprs {
		r.resolveExpr(e)
	}
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitAbstractExpr(expr *ast.AbstractExpr) (interface{}, error) {
	r.beginScope()
	r.resolveExpr(expr.Arg)
	r.resolveExpr(expr.Ty)
	r.resolveExpr(expr.Body)
	r.endScope()
	return nil, nil
}

// Bindings made by the condition are visible in the branch taken when it
// holds, not in the other one.
func (r *Resolver) VisitCaseExpr(expr *ast.CaseExpr) (interface{}, error) {
	r.beginScope()
	r.resolveExpr(expr.Cond)
	r.resolveExpr(expr.OnTrue)
	r.endScope()
	if expr.OnFalse != nil {
		r.beginScope()
		r.resolveExpr(expr.OnFalse)
		r.endScope()
	}
	return nil, nil
}

func (r *Resolver) VisitForExpr(expr *ast.ForExpr) (interface{}, error) {
	r.beginScope()
	r.resolveExpr(expr.Init)
	r.resolveExpr(expr.Cond)
	r.resolveExpr(expr.Afterthought)
	r.resolveExpr(expr.Body)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitAssertExpr(expr *ast.AssertExpr) (interface{}, error) {
	r.resolveExpr(expr.Expr)
	r.resolveExpr(expr.Ty)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(expr *ast.BinaryExpr) (interface{}, error) {
	r.resolveExpr(expr.Lhs)
	r.resolveExpr(expr.Rhs)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(expr *ast.UnaryExpr) (interface{}, error) {
	r.resolveExpr(expr.Operand)
	return nil, nil
}

func (r *Resolver) VisitSolveExpr(expr *ast.SolveExpr) (interface{}, error) {
	switch expr.Marker {
	case ast.Set:
		sym, steps := r.scope.lookup(expr.Name)
		if sym == nil {
			r.report(newError(r.span, expr.Name,
				fmt.Sprintf("Undefined variable '%s'.", expr.Name)))
			return nil, nil
		}
		if sym.Binding != BindVar {
			r.report(newError(r.span, expr.Name,
				fmt.Sprintf("Can't set '%s', it is bound by %s.", expr.Name, sym.Binding)))
		}
		r.table.bind(expr, sym, steps)
	case ast.Val:
		r.table.bind(expr, r.declare(expr.Name, BindVal, r.span), 0)
	case ast.Var:
		r.table.bind(expr, r.declare(expr.Name, BindVar, r.span), 0)
	}
	return nil, nil
}

func (r *Resolver) VisitApplyExpr(expr *ast.ApplyExpr) (interface{}, error) {
	r.resolveExpr(expr.Callee)
	r.resolveExpr(expr.Arg)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(expr *ast.LiteralExpr) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitNameExpr(expr *ast.NameExpr) (interface{}, error) {
	return nil, nil
}

// The span of the node being visited is kept in r.span, kinds carry none.
func (r *Resolver) resolveExpr(expr *ast.Expr) {
	if expr == nil {
		return
	}
	r.span = expr.Span
	expr.Accept(r)
}

// called when resolver enters a new scope
func (r *Resolver) beginScope() {
	r.scope = newScope(r.scope)
}

// called when resolver exits a scope
func (r *Resolver) endScope() {
	r.scope = r.scope.enclosing
}

func (r *Resolver) declare(name string, binding Binding, span token.Span) *Symbol {
	if !r.shadowing && r.scope.declared(name) {
		r.report(newError(span, name,
			"Already has a variable with this name in this scope."))
	}
	sym := &Symbol{name, binding, span}
	r.scope.define(sym)
	r.table.symbols = append(r.table.symbols, sym)
	return sym
}

func (r *Resolver) report(err error) {
	if r.err == nil {
		r.err = err
	}
	if r.reporter != nil {
		r.reporter.Report(err)
	}
}
