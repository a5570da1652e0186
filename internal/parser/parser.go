package parser

import (
	"github.com/ltungv/sol/internal/ast"
	"github.com/ltungv/sol/internal/report"
	"github.com/ltungv/sol/internal/token"
	"github.com/tliron/commonlog"
)

// DefaultMaxDepth bounds how deeply constructs may nest.
const DefaultMaxDepth = 256

// TokenSource is a pull-based token stream with one token of lookahead.
// Both methods return a nil token at the end of input.
type TokenSource interface {
	Peek() (*token.Token, error)
	Next() (*token.Token, error)
}

// Parser composes the syntax tree of a sol program from a token stream. The
// grammar is documented on the package. Parsing is fail-fast: the first
// error aborts the parse.
type Parser struct {
	tokens   TokenSource
	reporter report.Reporter
	log      commonlog.Logger
	// end offset of the last consumed token
	last int
	// closing token of the innermost scope
	close    pred
	depth    int
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the nesting limit.
func WithMaxDepth(depth int) Option {
	return func(parser *Parser) {
		parser.maxDepth = depth
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log commonlog.Logger) Option {
	return func(parser *Parser) {
		parser.log = log
	}
}

// NewParser creates a new parser for the sol language
func NewParser(tokens TokenSource, reporter report.Reporter, opts ...Option) *Parser {
	parser := &Parser{
		tokens:   tokens,
		reporter: reporter,
		log:      commonlog.GetLogger("sol.parser"),
		close:    nothing,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Parse reads a whole program from tokens. On failure the error is sent to
// reporter and returned; no partial tree is produced.
func Parse(tokens TokenSource, reporter report.Reporter, opts ...Option) (*ast.Expr, error) {
	return NewParser(tokens, reporter, opts...).Parse()
}

func (parser *Parser) Parse() (*ast.Expr, error) {
	expr, err := parser.program()
	if err != nil {
		parser.log.Debugf("parse failed: %s", err)
		if parser.reporter != nil {
			parser.reporter.Report(err)
		}
		return nil, err
	}
	return expr, nil
}

// program --> scope EOF ;
func (parser *Parser) program() (*ast.Expr, error) {
	expr, err := parser.scope(nothing)
	if err != nil {
		return nil, err
	}
	if _, err := parser.maybeRequire(nothing); err != nil {
		return nil, err
	}
	return expr, nil
}

// Parses statements until the input ends or the next token satisfies end.
// Declarations, cases and loops always allow another statement to follow;
// an ordinary statement only when it is terminated by ";". A single
// unterminated expression is the value of the scope and is returned as is.
//
// scope --> ( def | typedef | case | for | tuple ";"? )* ;
func (parser *Parser) scope(end pred) (*ast.Expr, error) {
	if err := parser.enter(); err != nil {
		return nil, err
	}
	defer parser.leave()

	enclosing := parser.close
	parser.close = end
	defer func() { parser.close = enclosing }()

	var (
		span    token.Span
		first   = true
		defs    = make([]*ast.Def, 0)
		exprs   = make([]*ast.Expr, 0, 1)
		discard bool
	)
	for {
		tok, err := parser.peek(anything)
		if err != nil {
			return nil, err
		}
		if tok == nil || end(tok.Typ) {
			break
		}

		var stmt token.Span
		switch classify(tok) {
		case prodDef, prodType:
			var def *ast.Def
			if classify(tok) == prodDef {
				def, err = parser.def()
			} else {
				def, err = parser.typedef()
			}
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)
			stmt = def.Span
			discard = true
		case prodCase, prodFor:
			var expr *ast.Expr
			if classify(tok) == prodCase {
				expr, err = parser.termcase()
			} else {
				expr, err = parser.termfor()
			}
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
			stmt = expr.Span
			discard = true
		default:
			expr, err := parser.tuple(either(is(token.SEMICOLON), end))
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
			stmt = expr.Span
			semi, err := parser.eat(is(token.SEMICOLON))
			if err != nil {
				return nil, err
			}
			discard = semi != nil
			if semi != nil {
				stmt.End = semi.Span.End
			}
		}

		if first {
			span = stmt
			first = false
		} else {
			span.End = stmt.End
		}
		if !discard {
			break
		}
	}

	if len(defs) == 0 && len(exprs) == 1 && !discard {
		return exprs[0], nil
	}
	if len(defs) == 0 && len(exprs) == 0 {
		return parser.empty(), nil
	}
	return ast.NewExpr(span, ast.NewScopeExpr(defs, exprs, discard)), nil
}

// def --> "def" IDENT termexpr ;
func (parser *Parser) def() (*ast.Def, error) {
	return parser.declaration(token.DEF, ast.DefValue)
}

// typedef --> "type" IDENT termexpr ;
func (parser *Parser) typedef() (*ast.Def, error) {
	return parser.declaration(token.TYPE, ast.DefType)
}

func (parser *Parser) declaration(keyword token.Type, kind ast.DefKind) (*ast.Def, error) {
	kw, err := parser.require(is(keyword))
	if err != nil {
		return nil, err
	}
	name, err := parser.require(is(token.IDENT))
	if err != nil {
		return nil, err
	}
	value, err := parser.termexpr(nothing)
	if err != nil {
		return nil, err
	}
	span := token.Span{Start: kw.Span.Start, End: parser.last}
	return ast.NewDef(span, kind, name.Lexeme, value), nil
}

// A statement-level expression: an abstraction, or a plain logical
// expression ended by ";". The ";" may be left out at the end of input,
// before the token closing the enclosing scope, or when the next token
// satisfies follow.
//
// termexpr --> abstraction | logical ( abstraction | ";" ) ;
func (parser *Parser) termexpr(follow pred) (*ast.Expr, error) {
	if err := parser.enter(); err != nil {
		return nil, err
	}
	defer parser.leave()

	tok, err := parser.peek(opensAbstraction)
	if err != nil {
		return nil, err
	}
	termbody := func() (*ast.Expr, error) {
		return parser.termbody(follow)
	}
	if tok != nil {
		return parser.abstraction(nil, tok.Span.Start, termbody)
	}

	logical, err := parser.logical()
	if err != nil {
		return nil, err
	}
	if opens, err := parser.hasPeek(opensAbstraction); err != nil {
		return nil, err
	} else if opens {
		return parser.abstraction(logical, logical.Span.Start, termbody)
	}
	if followed, err := parser.hasPeek(either(follow, parser.close)); err != nil {
		return nil, err
	} else if followed {
		return logical, nil
	}
	if _, err := parser.maybeRequire(is(token.SEMICOLON)); err != nil {
		return nil, err
	}
	return logical, nil
}

// termbody --> "=>" termexpr | block ;
func (parser *Parser) termbody(follow pred) (*ast.Expr, error) {
	arrow, err := parser.eat(is(token.FAT_ARROW))
	if err != nil {
		return nil, err
	}
	if arrow != nil {
		return parser.termexpr(follow)
	}
	return parser.block()
}

// expr --> logical abstraction? ;
func (parser *Parser) expr() (*ast.Expr, error) {
	logical, err := parser.logical()
	if err != nil {
		return nil, err
	}
	if opens, err := parser.hasPeek(opensAbstraction); err != nil {
		return nil, err
	} else if opens {
		return parser.abstraction(logical, logical.Span.Start, parser.body)
	}
	return logical, nil
}

// body --> "=>" logical | block ;
func (parser *Parser) body() (*ast.Expr, error) {
	arrow, err := parser.eat(is(token.FAT_ARROW))
	if err != nil {
		return nil, err
	}
	if arrow != nil {
		return parser.logical()
	}
	return parser.block()
}

// The tail of an abstraction whose parameter, if any, was already parsed.
// start is where the abstraction begins in the source.
//
// abstraction --> ( "->" logical )? "$"? body ;
func (parser *Parser) abstraction(
	arg *ast.Expr,
	start int,
	body func() (*ast.Expr, error),
) (*ast.Expr, error) {
	var ty *ast.Expr
	arrow, err := parser.eat(is(token.THIN_ARROW))
	if err != nil {
		return nil, err
	}
	if arrow != nil {
		if ty, err = parser.logical(); err != nil {
			return nil, err
		}
	}
	dollar, err := parser.eat(is(token.DOLLAR))
	if err != nil {
		return nil, err
	}
	b, err := body()
	if err != nil {
		return nil, err
	}
	span := token.Span{Start: start, End: b.Span.End}
	return ast.NewExpr(span, ast.NewAbstractExpr(arg, dollar != nil, ty, b)), nil
}

// block --> "{" scope "}" ;
func (parser *Parser) block() (*ast.Expr, error) {
	open, err := parser.require(is(token.L_BRACE))
	if err != nil {
		return nil, err
	}
	scope, err := parser.scope(is(token.R_BRACE))
	if err != nil {
		return nil, err
	}
	closing, err := parser.require(is(token.R_BRACE))
	if err != nil {
		return nil, err
	}
	span := token.Span{Start: open.Span.Start, End: closing.Span.End}
	return ast.NewExpr(span, scope.Kind), nil
}

// case --> "case" logical termbody else? ;
func (parser *Parser) termcase() (*ast.Expr, error) {
	kw, err := parser.require(is(token.CASE))
	if err != nil {
		return nil, err
	}
	return parser.conditional(kw.Span.Start)
}

func (parser *Parser) conditional(start int) (*ast.Expr, error) {
	cond, err := parser.logical()
	if err != nil {
		return nil, err
	}
	onTrue, err := parser.termbody(is(token.ELSE))
	if err != nil {
		return nil, err
	}
	onFalse, err := parser.termelse()
	if err != nil {
		return nil, err
	}
	span := token.Span{Start: start, End: onTrue.Span.End}
	if onFalse != nil {
		span.End = onFalse.Span.End
	}
	return ast.NewExpr(span, ast.NewCaseExpr(cond, onTrue, onFalse)), nil
}

// A body directly after "else" is taken unconditionally, anything else is
// the condition of an else-if.
//
// else --> "else" ( termbody | "case"? logical termbody else? ) ;
func (parser *Parser) termelse() (*ast.Expr, error) {
	kw, err := parser.eat(is(token.ELSE))
	if kw == nil || err != nil {
		return nil, err
	}
	if err := parser.enter(); err != nil {
		return nil, err
	}
	defer parser.leave()

	if opens, err := parser.hasPeek(opensBody); err != nil {
		return nil, err
	} else if opens {
		return parser.termbody(nothing)
	}
	if _, err := parser.eat(is(token.CASE)); err != nil {
		return nil, err
	}
	return parser.conditional(kw.Span.Start)
}

// for --> "for" logical ( ";" logical ( ";" logical )? )? termbody ;
func (parser *Parser) termfor() (*ast.Expr, error) {
	kw, err := parser.require(is(token.FOR))
	if err != nil {
		return nil, err
	}
	clauses := make([]*ast.Expr, 0, 3)
	for len(clauses) < 3 {
		clause, err := parser.logical()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
		if len(clauses) == 3 {
			break
		}
		semi, err := parser.eat(is(token.SEMICOLON))
		if err != nil {
			return nil, err
		}
		if semi == nil {
			break
		}
	}
	body, err := parser.termbody(nothing)
	if err != nil {
		return nil, err
	}

	var init, cond, afterthought *ast.Expr
	switch len(clauses) {
	case 1:
		cond = clauses[0]
	case 2:
		init, cond = clauses[0], clauses[1]
	default:
		init, cond, afterthought = clauses[0], clauses[1], clauses[2]
	}
	span := token.Span{Start: kw.Span.Start, End: body.Span.End}
	return ast.NewExpr(span, ast.NewForExpr(init, cond, afterthought, body)), nil
}

// A single expression without a comma is returned as is, never as a tuple
// of one.
//
// tuple --> ( expr ( "," expr )* ","? )? ;
func (parser *Parser) tuple(end pred) (*ast.Expr, error) {
	if done, err := parser.atEnd(end); err != nil || done {
		if err != nil {
			return nil, err
		}
		return parser.empty(), nil
	}
	first, err := parser.expr()
	if err != nil {
		return nil, err
	}
	comma, err := parser.eat(is(token.COMMA))
	if comma == nil || err != nil {
		return first, err
	}

	items := []*ast.Expr{first}
	span := token.Span{Start: first.Span.Start, End: comma.Span.End}
	for {
		if done, err := parser.atEnd(end); err != nil {
			return nil, err
		} else if done {
			break
		}
		item, err := parser.expr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		span.End = item.Span.End
		comma, err := parser.eat(is(token.COMMA))
		if err != nil {
			return nil, err
		}
		if comma == nil {
			break
		}
		span.End = comma.Span.End
	}
	return ast.NewExpr(span, ast.NewTupleExpr(items)), nil
}

// empty is the unit tuple, placed right after the last consumed token.
func (parser *Parser) empty() *ast.Expr {
	span := token.Span{Start: parser.last, End: parser.last}
	return ast.NewExpr(span, ast.NewTupleExpr(make([]*ast.Expr, 0)))
}

func (parser *Parser) enter() error {
	if parser.depth >= parser.maxDepth {
		tok, err := parser.peek(anything)
		if err != nil {
			return err
		}
		return newParseError(TooDeep, tok)
	}
	parser.depth++
	return nil
}

func (parser *Parser) leave() {
	parser.depth--
}
