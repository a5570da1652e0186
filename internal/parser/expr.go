package parser

import (
	"github.com/ltungv/sol/internal/ast"
	"github.com/ltungv/sol/internal/token"
)

// Creates a left-associative nested tree of binary operator nodes. Operands
// are parsed with next, operators are the keys of ops.
func (parser *Parser) binary(
	next func() (*ast.Expr, error),
	ops map[token.Type]ast.BinOp,
) (*ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, err := parser.eat(in(ops))
		if err != nil {
			return nil, err
		}
		if op == nil {
			return expr, nil
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		span := token.Span{Start: expr.Span.Start, End: right.Span.End}
		expr = ast.NewExpr(span, ast.NewBinaryExpr(ops[op.Typ], expr, right))
	}
}

// logical --> comparison ( ( "&&" | "||" ) comparison )* ;
func (parser *Parser) logical() (*ast.Expr, error) {
	return parser.binary(parser.comparison, logicalOps)
}

// comparison --> assertion ( ( "==" | "!=" | ">" | ">=" | "<" | "<=" ) assertion )* ;
func (parser *Parser) comparison() (*ast.Expr, error) {
	return parser.binary(parser.assertion, comparisonOps)
}

// assertion --> additive ( "::" additive )? ;
func (parser *Parser) assertion() (*ast.Expr, error) {
	expr, err := parser.additive()
	if err != nil {
		return nil, err
	}
	colons, err := parser.eat(is(token.COLON_COLON))
	if colons == nil || err != nil {
		return expr, err
	}
	ty, err := parser.additive()
	if err != nil {
		return nil, err
	}
	span := token.Span{Start: expr.Span.Start, End: ty.Span.End}
	return ast.NewExpr(span, ast.NewAssertExpr(expr, ty)), nil
}

// additive --> multiplicative ( ( "+" | "-" ) multiplicative )* ;
func (parser *Parser) additive() (*ast.Expr, error) {
	return parser.binary(parser.multiplicative, additiveOps)
}

// multiplicative --> prefix ( ( "*" | "/" | "%" ) prefix )* ;
func (parser *Parser) multiplicative() (*ast.Expr, error) {
	return parser.binary(parser.prefix, multiplicativeOps)
}

// prefix --> ( "!" | "-" ) prefix | ( "val" | "var" | "set" ) IDENT | suffix ;
func (parser *Parser) prefix() (*ast.Expr, error) {
	op, err := parser.eat(in(prefixOps))
	if err != nil {
		return nil, err
	}
	if op != nil {
		if err := parser.enter(); err != nil {
			return nil, err
		}
		defer parser.leave()

		operand, err := parser.prefix()
		if err != nil {
			return nil, err
		}
		span := token.Span{Start: op.Span.Start, End: operand.Span.End}
		return ast.NewExpr(span, ast.NewUnaryExpr(prefixOps[op.Typ], operand)), nil
	}

	marker, err := parser.eat(in(solveMarkers))
	if err != nil {
		return nil, err
	}
	if marker != nil {
		name, err := parser.require(is(token.IDENT))
		if err != nil {
			return nil, err
		}
		span := token.Span{Start: marker.Span.Start, End: name.Span.End}
		return ast.NewExpr(span, ast.NewSolveExpr(solveMarkers[marker.Typ], name.Lexeme)), nil
	}

	return parser.suffix()
}

// Application by juxtaposition: "f a b" is "(f a) b".
//
// suffix --> atom atom* ;
func (parser *Parser) suffix() (*ast.Expr, error) {
	expr, err := parser.atom()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		tok, err := parser.peek(anything)
		if err != nil {
			return nil, err
		}
		return nil, newUnexpected(tok)
	}
	for {
		arg, err := parser.atom()
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return expr, nil
		}
		span := token.Span{Start: expr.Span.Start, End: arg.Span.End}
		expr = ast.NewExpr(span, ast.NewApplyExpr(expr, arg))
	}
}

// atom returns a nil expression without an error when the next token
// cannot start an atom.
//
// atom --> "(" scope ")" | "\" IDENT | FLOAT | INTEGER | STRING | IDENT ;
func (parser *Parser) atom() (*ast.Expr, error) {
	tok, err := parser.eat(startsAtom)
	if tok == nil || err != nil {
		return nil, err
	}
	switch tok.Typ {
	case token.L_PAREN:
		scope, err := parser.scope(is(token.R_PAREN))
		if err != nil {
			return nil, err
		}
		closing, err := parser.require(is(token.R_PAREN))
		if err != nil {
			return nil, err
		}
		span := token.Span{Start: tok.Span.Start, End: closing.Span.End}
		return ast.NewExpr(span, scope.Kind), nil
	case token.BACKSLASH:
		name, err := parser.require(is(token.IDENT))
		if err != nil {
			return nil, err
		}
		span := token.Span{Start: tok.Span.Start, End: name.Span.End}
		return ast.NewExpr(span, ast.NewLiteralExpr(ast.Variant(name.Lexeme))), nil
	case token.IDENT:
		return ast.NewExpr(tok.Span, ast.NewNameExpr(tok.Lexeme)), nil
	default:
		return ast.NewExpr(tok.Span, ast.NewLiteralExpr(tok.Literal)), nil
	}
}
