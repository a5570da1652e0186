package parser

import (
	"github.com/ltungv/sol/internal/ast"
	"github.com/ltungv/sol/internal/token"
)

// pred classifies a token type without consuming anything.
type pred func(typ token.Type) bool

func is(types ...token.Type) pred {
	return func(typ token.Type) bool {
		for _, t := range types {
			if t == typ {
				return true
			}
		}
		return false
	}
}

func either(a, b pred) pred {
	return func(typ token.Type) bool {
		return a(typ) || b(typ)
	}
}

func in[V any](table map[token.Type]V) pred {
	return func(typ token.Type) bool {
		_, ok := table[typ]
		return ok
	}
}

var (
	nothing  pred = func(token.Type) bool { return false }
	anything pred = func(token.Type) bool { return true }
)

// production is the statement form selected by the token that starts it.
type production int

const (
	prodEnd production = iota
	prodDef
	prodType
	prodCase
	prodFor
	prodStatement
)

func (prod production) String() string {
	switch prod {
	case prodEnd:
		return "end"
	case prodDef:
		return "def"
	case prodType:
		return "type"
	case prodCase:
		return "case"
	case prodFor:
		return "for"
	default:
		return "statement"
	}
}

// classify decides which production a scope statement starting with tok
// belongs to. A nil token is the end of input.
func classify(tok *token.Token) production {
	if tok == nil {
		return prodEnd
	}
	switch tok.Typ {
	case token.DEF:
		return prodDef
	case token.TYPE:
		return prodType
	case token.CASE:
		return prodCase
	case token.FOR:
		return prodFor
	default:
		return prodStatement
	}
}

var (
	// opensAbstraction is the set of tokens that begin an abstraction tail.
	opensAbstraction = is(token.DOLLAR, token.THIN_ARROW, token.FAT_ARROW, token.L_BRACE)
	// opensBody is the set of tokens that begin a body.
	opensBody = is(token.FAT_ARROW, token.L_BRACE)
	// startsAtom is the set of tokens that begin an atom.
	startsAtom = is(token.L_PAREN, token.BACKSLASH, token.FLOAT, token.INTEGER, token.STRING, token.IDENT)
)

var logicalOps = map[token.Type]ast.BinOp{
	token.AMP_AMP:   ast.And,
	token.PIPE_PIPE: ast.Or,
}

var comparisonOps = map[token.Type]ast.BinOp{
	token.EQUAL_EQUAL:   ast.Eq,
	token.BANG_EQUAL:    ast.Neq,
	token.GREATER:       ast.Gt,
	token.GREATER_EQUAL: ast.Geq,
	token.LESS:          ast.Lt,
	token.LESS_EQUAL:    ast.Leq,
}

var additiveOps = map[token.Type]ast.BinOp{
	token.PLUS:  ast.Add,
	token.MINUS: ast.Sub,
}

var multiplicativeOps = map[token.Type]ast.BinOp{
	token.STAR:    ast.Mul,
	token.SLASH:   ast.Div,
	token.PERCENT: ast.Mod,
}

var prefixOps = map[token.Type]ast.UnOp{
	token.BANG:  ast.Not,
	token.MINUS: ast.Neg,
}

var solveMarkers = map[token.Type]ast.SolveMarker{
	token.VAL: ast.Val,
	token.VAR: ast.Var,
	token.SET: ast.Set,
}

// peek returns the next token if it satisfies p, without consuming it.
func (parser *Parser) peek(p pred) (*token.Token, error) {
	tok, err := parser.tokens.Peek()
	if err != nil {
		return nil, newTokenizationError(err)
	}
	if tok == nil || !p(tok.Typ) {
		return nil, nil
	}
	return tok, nil
}

// hasPeek reports whether the next token satisfies p. It is false at the end
// of input.
func (parser *Parser) hasPeek(p pred) (bool, error) {
	tok, err := parser.peek(p)
	return tok != nil, err
}

// atEnd reports whether the input is exhausted or the next token satisfies
// end.
func (parser *Parser) atEnd(end pred) (bool, error) {
	tok, err := parser.peek(anything)
	if err != nil {
		return false, err
	}
	return tok == nil || end(tok.Typ), nil
}

// eat consumes the next token if it satisfies p. It never fails on a
// mismatch.
func (parser *Parser) eat(p pred) (*token.Token, error) {
	tok, err := parser.peek(p)
	if tok == nil || err != nil {
		return nil, err
	}
	return parser.advance()
}

// require consumes the next token, which must exist and satisfy p.
func (parser *Parser) require(p pred) (*token.Token, error) {
	tok, err := parser.maybeRequire(p)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, newUnexpected(nil)
	}
	return tok, nil
}

// maybeRequire is require that accepts the end of input, returning no token
// and no error.
func (parser *Parser) maybeRequire(p pred) (*token.Token, error) {
	tok, err := parser.peek(anything)
	if tok == nil || err != nil {
		return nil, err
	}
	if !p(tok.Typ) {
		return nil, newUnexpected(tok)
	}
	return parser.advance()
}

func (parser *Parser) advance() (*token.Token, error) {
	tok, err := parser.tokens.Next()
	if err != nil {
		return nil, newTokenizationError(err)
	}
	if tok != nil {
		parser.last = tok.Span.End
	}
	return tok, nil
}
