package resolve

import (
	"github.com/ltungv/sol/internal/ast"
	"github.com/ltungv/sol/internal/token"
)

// Binding is the form that introduced a symbol.
type Binding int

const (
	BindDef Binding = iota
	BindType
	BindVal
	BindVar
)

func (binding Binding) String() string {
	switch binding {
	case BindDef:
		return "def"
	case BindType:
		return "type"
	case BindVal:
		return "val"
	default:
		return "var"
	}
}

// Symbol is a name bound in a lexical scope. Span is the span of the node
// that introduced it.
type Symbol struct {
	Name    string
	Binding Binding
	Span    token.Span
}

// Each scope maps the names declared directly in it. Lookups walk outwards
// through the enclosing scopes.
type scope struct {
	enclosing *scope
	symbols   map[string]*Symbol
}

func newScope(enclosing *scope) *scope {
	return &scope{enclosing, make(map[string]*Symbol)}
}

func (s *scope) declared(name string) bool {
	_, ok := s.symbols[name]
	return ok
}

func (s *scope) define(sym *Symbol) {
	s.symbols[sym.Name] = sym
}

// lookup returns the symbol bound to name and the number of scopes between
// this one and the one declaring it.
func (s *scope) lookup(name string) (*Symbol, int) {
	if sym, ok := s.symbols[name]; ok {
		return sym, 0
	}
	if s.enclosing != nil {
		if sym, steps := s.enclosing.lookup(name); sym != nil {
			return sym, steps + 1
		}
	}
	return nil, -1
}

type ref struct {
	symbol *Symbol
	steps  int
}

// Table is the result of resolving a tree: every symbol that was declared and
// the symbol each val, var and set node refers to.
type Table struct {
	symbols []*Symbol
	refs    map[*ast.SolveExpr]ref
}

func newTable() *Table {
	return &Table{make([]*Symbol, 0), make(map[*ast.SolveExpr]ref)}
}

// Lookup returns the symbol expr refers to, or nil if expr was not resolved.
func (table *Table) Lookup(expr *ast.SolveExpr) *Symbol {
	return table.refs[expr].symbol
}

// Steps returns how many scopes out from expr its symbol was declared, or -1
// if expr was not resolved.
func (table *Table) Steps(expr *ast.SolveExpr) int {
	r, ok := table.refs[expr]
	if !ok {
		return -1
	}
	return r.steps
}

// Symbols lists the declared symbols in the order they were declared.
func (table *Table) Symbols() []*Symbol {
	return table.symbols
}

func (table *Table) bind(expr *ast.SolveExpr, sym *Symbol, steps int) {
	table.refs[expr] = ref{sym, steps}
}
