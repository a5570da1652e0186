package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/ltungv/sol/internal/ast"
	"github.com/ltungv/sol/internal/report"
	"github.com/ltungv/sol/internal/scanner"
	"github.com/ltungv/sol/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(src string, opts ...Option) (*ast.Expr, error) {
	return Parse(scanner.NewTokens(src), report.NewCollector(), opts...)
}

type parseCase struct {
	src  string
	want string
}

func runParseCases(t *testing.T, testCases []parseCase) {
	t.Helper()
	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := parse(tc.src)
		if assert.NoError(err, tc.src) {
			assert.Equal(tc.want, ast.Sprint(expr), tc.src)
		}
	}
}

func TestParseAtom(t *testing.T) {
	runParseCases(t, []parseCase{
		{"1", "1"},
		{"1.5", "1.5"},
		{"2.0", "2.0"},
		{`"hi"`, `"hi"`},
		{`\some`, `\some`},
		{"x", "x"},
		{"(x)", "x"},
		{"((x))", "x"},
	})
}

func TestParseApplication(t *testing.T) {
	runParseCases(t, []parseCase{
		{"f a", "(apply f a)"},
		{"f a b c", "(apply (apply (apply f a) b) c)"},
		{"f (g a)", "(apply f (apply g a))"},
		{`f \none 1 "s"`, `(apply (apply (apply f \none) 1) "s")`},
		{"f a + g b", "(+ (apply f a) (apply g b))"},
		{"f () ()", "(apply (apply f (tuple)) (tuple))"},
	})
}

func TestParseBinary(t *testing.T) {
	runParseCases(t, []parseCase{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"a / b % c", "(% (/ a b) c)"},
		{"a && b || c", "(|| (&& a b) c)"},
		{"a == b + 1", "(== a (+ b 1))"},
		{"a < b == c", "(== (< a b) c)"},
		{"a != b && c >= d", "(&& (!= a b) (>= c d))"},
		{"a > b || c <= d", "(|| (> a b) (<= c d))"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
	})
}

func TestParseAssertion(t *testing.T) {
	runParseCases(t, []parseCase{
		{"x :: T", "(:: x T)"},
		{"a + b :: T + U", "(:: (+ a b) (+ T U))"},
		{"x :: T == y", "(== (:: x T) y)"},
		{"f x :: List a", "(:: (apply f x) (apply List a))"},
	})
}

func TestParseUnary(t *testing.T) {
	runParseCases(t, []parseCase{
		{"-x", "(- x)"},
		{"!x", "(! x)"},
		{"!!x", "(! (! x))"},
		{"- - 1", "(- (- 1))"},
		{"-f x", "(- (apply f x))"},
		{"a - b", "(- a b)"},
		{"a * -b", "(* a (- b))"},
	})
}

func TestParseSolve(t *testing.T) {
	runParseCases(t, []parseCase{
		{"val x", "(val x)"},
		{"var y", "(var y)"},
		{"set z", "(set z)"},
		{"val x + 1", "(+ (val x) 1)"},
		{"-set x", "(- (set x))"},
		{"f (val x)", "(apply f (val x))"},
	})
}

func TestParseTuple(t *testing.T) {
	runParseCases(t, []parseCase{
		{"()", "(tuple)"},
		{"(a, b)", "(tuple a b)"},
		{"(a,)", "(tuple a)"},
		{"(a, b,)", "(tuple a b)"},
		{"a, b, c", "(tuple a b c)"},
		{"a, b,", "(tuple a b)"},
		{"(a, (b, c))", "(tuple a (tuple b c))"},
	})
}

func TestParseScope(t *testing.T) {
	runParseCases(t, []parseCase{
		{"", "(tuple)"},
		{"x", "x"},
		{"x;", "(scope discard x)"},
		{"x; y", "(scope x y)"},
		{"x; y;", "(scope discard x y)"},
		{";", "(scope discard (tuple))"},
		{"(x; y)", "(scope x y)"},
		{"(x;)", "(scope discard x)"},
		{"(def a 1; a)", "(scope (def a 1) a)"},
		{"a, b; c", "(scope (tuple a b) c)"},
	})
}

func TestParseAbstraction(t *testing.T) {
	runParseCases(t, []parseCase{
		{"x => x + 1", "(fn x (+ x 1))"},
		{"x -> Int => x", "(fn x (-> Int) x)"},
		{"x $ => x", "(fn x $ x)"},
		{"x -> T $ { y }", "(fn x (-> T) $ y)"},
		{"x { a; b }", "(fn x (scope a b))"},
		{"x { a; b; }", "(fn x (scope discard a b))"},
		{"x {}", "(fn x (tuple))"},
		{"(val a, val b) => a", "(fn (tuple (val a) (val b)) a)"},
		{"(x => x, y)", "(tuple (fn x x) y)"},
		{"f (x => x) 1", "(apply (apply f (fn x x)) 1)"},
	})
}

func TestParseDeclaration(t *testing.T) {
	runParseCases(t, []parseCase{
		{"def x 5", "(scope discard (def x 5))"},
		{"def x 5; x", "(scope (def x 5) x)"},
		{"def f x => x;", "(scope discard (def f (fn x x)))"},
		{"def f => 1", "(scope discard (def f (fn _ 1)))"},
		{"def f { 1 }", "(scope discard (def f (fn _ 1)))"},
		{"def f -> Int => 1;", "(scope discard (def f (fn _ (-> Int) 1)))"},
		{"def f $ { 1 }", "(scope discard (def f (fn _ $ 1)))"},
		{"def add a => b => a + b;", "(scope discard (def add (fn a (fn b (+ a b)))))"},
		{"type T Int; def f => 1", "(scope discard (type T Int) (def f (fn _ 1)))"},
		{"def a 1; def b 2; a + b", "(scope (def a 1) (def b 2) (+ a b))"},
		{"(def x 1;)", "(scope discard (def x 1))"},
		{"(def x 1)", "(scope discard (def x 1))"},
		{"(def f x => x)", "(scope discard (def f (fn x x)))"},
		{"x { def y 1 }", "(fn x (scope discard (def y 1)))"},
	})
}

func TestParseCase(t *testing.T) {
	runParseCases(t, []parseCase{
		{"case c => 1", "(scope discard (case c 1))"},
		{"case c => 1; x", "(scope (case c 1) x)"},
		{"case c1 => t1 else case c2 => t2 else => t3", "(scope discard (case c1 t1 (case c2 t2 t3)))"},
		{"case a => 1 else b => 2 else => 3", "(scope discard (case a 1 (case b 2 3)))"},
		{"case c { a } else { b }", "(scope discard (case c a b))"},
		{"case c { a } else case d { b }", "(scope discard (case c a (case d b)))"},
		{"case x == 0 => \\zero else => \\other;", `(scope discard (case (== x 0) \zero \other))`},
		{"case c { case d { 1 } }", "(scope discard (case c (scope discard (case d 1))))"},
		{"x { case c => 1 }", "(fn x (scope discard (case c 1)))"},
		{"(case c => 1 else => 2)", "(scope discard (case c 1 2))"},
	})
}

func TestParseFor(t *testing.T) {
	runParseCases(t, []parseCase{
		{"for c => b", "(scope discard (for _ c _ b))"},
		{"for i; c; s => b", "(scope discard (for i c s b))"},
		{"for i; c => b", "(scope discard (for i c _ b))"},
		{"for val i; i < 10; set i { f i }", "(scope discard (for (val i) (< i 10) (set i) (apply f i)))"},
		{"for c { a; b; }; x", "(scope (for _ c _ (scope discard a b)) (tuple) x)"},
		{"for c { a } x", "(scope (for _ c _ a) x)"},
	})
}

func TestParseScopeStructure(t *testing.T) {
	assert := assert.New(t)

	expr, err := parse("def a 1; a; b")
	require.NoError(t, err)
	scope, ok := expr.Kind.(*ast.ScopeExpr)
	require.True(t, ok)
	assert.False(scope.Discard)
	assert.Len(scope.Defs, 1)
	assert.Equal(ast.DefValue, scope.Defs[0].Kind)
	assert.Equal("a", scope.Defs[0].Name)
	assert.Len(scope.Exprs, 2)

	expr, err = parse("type T Int;")
	require.NoError(t, err)
	scope, ok = expr.Kind.(*ast.ScopeExpr)
	require.True(t, ok)
	assert.True(scope.Discard)
	assert.Equal(ast.DefType, scope.Defs[0].Kind)
	assert.NotNil(scope.Exprs)
	assert.Empty(scope.Exprs)

	expr, err = parse("x; y;")
	require.NoError(t, err)
	scope, ok = expr.Kind.(*ast.ScopeExpr)
	require.True(t, ok)
	assert.NotNil(scope.Defs)
	assert.Empty(scope.Defs)
}

func TestParseSpans(t *testing.T) {
	assert := assert.New(t)
	testCases := []struct {
		src  string
		want token.Span
	}{
		{"", token.Span{Start: 0, End: 0}},
		{"x", token.Span{Start: 0, End: 1}},
		{"f a b", token.Span{Start: 0, End: 5}},
		{"a + b", token.Span{Start: 0, End: 5}},
		{"a + b * c", token.Span{Start: 0, End: 9}},
		{"x :: T", token.Span{Start: 0, End: 6}},
		{"-x", token.Span{Start: 0, End: 2}},
		{"val x", token.Span{Start: 0, End: 5}},
		{`\tag`, token.Span{Start: 0, End: 4}},
		{"x;", token.Span{Start: 0, End: 2}},
		{"(a)", token.Span{Start: 0, End: 3}},
		{"()", token.Span{Start: 0, End: 2}},
		{"a, b,", token.Span{Start: 0, End: 5}},
		{"x => y", token.Span{Start: 0, End: 6}},
		{"x { y }", token.Span{Start: 0, End: 7}},
		{"def f 1;", token.Span{Start: 0, End: 8}},
		{"case c => 1 else => 2", token.Span{Start: 0, End: 21}},
		{"for c { b }", token.Span{Start: 0, End: 11}},
	}
	for _, tc := range testCases {
		expr, err := parse(tc.src)
		if assert.NoError(err, tc.src) {
			assert.Equal(tc.want, expr.Span, tc.src)
		}
	}
}

func TestParseDefSpan(t *testing.T) {
	assert := assert.New(t)

	expr, err := parse("def f => 1; def g 2")
	require.NoError(t, err)
	scope := expr.Kind.(*ast.ScopeExpr)
	require.Len(t, scope.Defs, 2)
	assert.Equal(token.Span{Start: 0, End: 11}, scope.Defs[0].Span)
	assert.Equal(token.Span{Start: 6, End: 10}, scope.Defs[0].Value.Span)
	assert.Equal(token.Span{Start: 12, End: 19}, scope.Defs[1].Span)
	assert.Equal(token.Span{Start: 0, End: 19}, expr.Span)
}

// children lists the direct sub-expressions of expr, declarations included.
func children(expr *ast.Expr) []*ast.Expr {
	var out []*ast.Expr
	add := func(exprs ...*ast.Expr) {
		for _, e := range exprs {
			if e != nil {
				out = append(out, e)
			}
		}
	}
	switch kind := expr.Kind.(type) {
	case *ast.TupleExpr:
		add(kind.Items...)
	case *ast.ScopeExpr:
		for _, def := range kind.Defs {
			add(def.Value)
		}
		add(kind.Exprs...)
	case *ast.AbstractExpr:
		add(kind.Arg, kind.Ty, kind.Body)
	case *ast.CaseExpr:
		add(kind.Cond, kind.OnTrue, kind.OnFalse)
	case *ast.ForExpr:
		add(kind.Init, kind.Cond, kind.Afterthought, kind.Body)
	case *ast.AssertExpr:
		add(kind.Expr, kind.Ty)
	case *ast.BinaryExpr:
		add(kind.Lhs, kind.Rhs)
	case *ast.UnaryExpr:
		add(kind.Operand)
	case *ast.ApplyExpr:
		add(kind.Callee, kind.Arg)
	}
	return out
}

func TestParseSpansNest(t *testing.T) {
	sources := []string{
		"def f x -> Int $ { val y; set y; y + x :: Int }; f 1",
		"case a && b => \\yes else case c { -d } else => (e, f,)",
		"for var i; i < 10; set i { g i; }; ()",
		"type Pair (a, b) => (a, b); def p Pair 1 2; p :: Pair",
		"x; ; y",
		"; x",
	}
	for _, src := range sources {
		expr, err := parse(src)
		require.NoError(t, err, src)

		var walk func(parent *ast.Expr)
		walk = func(parent *ast.Expr) {
			assert.LessOrEqual(t, parent.Span.Start, parent.Span.End, src)
			assert.LessOrEqual(t, parent.Span.End, len(src), src)
			for _, child := range children(parent) {
				assert.True(
					t,
					parent.Span.Contains(child.Span),
					"%s: %s does not contain %s",
					src, parent.Span, child.Span,
				)
				walk(child)
			}
		}
		walk(expr)
	}
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)
	testCases := []struct {
		src    string
		kind   ErrorKind
		lexeme string
		eof    bool
	}{
		// a statement cannot start with a block, so the brace itself is
		// unexpected rather than the end of input
		{"{", Unexpected, "{", false},
		{"f )", Unexpected, ")", false},
		{"val 1", Unexpected, "1", false},
		{"def 1", Unexpected, "1", false},
		{"def x 1 )", Unexpected, ")", false},
		{"x -> => y", Unexpected, "=>", false},
		{"for a; b; c; d => e", Unexpected, ";", false},
		{"else => 1", Unexpected, "else", false},
		{"f {", Unexpected, "", true},
		{"(a", Unexpected, "", true},
		{"1 +", Unexpected, "", true},
		{"case c", Unexpected, "", true},
		{"def", Unexpected, "", true},
		{"\\", Unexpected, "", true},
	}
	for _, tc := range testCases {
		collector := report.NewCollector()
		expr, err := Parse(scanner.NewTokens(tc.src), collector)
		assert.Nil(expr, tc.src)

		var parseErr *ParseError
		if !assert.ErrorAs(err, &parseErr, tc.src) {
			continue
		}
		assert.Equal(tc.kind, parseErr.Kind, tc.src)
		if tc.eof {
			assert.Nil(parseErr.Token, tc.src)
			assert.Nil(parseErr.Span, tc.src)
		} else if assert.NotNil(parseErr.Token, tc.src) {
			assert.Equal(tc.lexeme, parseErr.Token.Lexeme, tc.src)
			assert.Equal(&parseErr.Token.Span, parseErr.Span, tc.src)
		}
		assert.Equal(tc.eof, IsIncomplete(err), tc.src)
		assert.Equal([]error{err}, collector.Errors(), tc.src)
	}
}

func TestParseErrorMessage(t *testing.T) {
	assert := assert.New(t)

	_, err := parse("f )")
	assert.EqualError(err, "[offset 2] Error at ')': Unexpected token.")

	_, err = parse("1 +")
	assert.EqualError(err, "[end] Error at end: Unexpected end of input.")

	_, err = parse("(((a)))", WithMaxDepth(2))
	assert.EqualError(err, "[offset 2] Error at '(': Expression nests too deeply.")
}

func TestParseTokenizationError(t *testing.T) {
	assert := assert.New(t)

	_, err := parse("a @")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(TokenizationError, parseErr.Kind)
	assert.Equal(&token.Span{Start: 2, End: 3}, parseErr.Span)
	assert.False(IsIncomplete(err))

	var scanErr *scanner.Error
	require.ErrorAs(t, err, &scanErr)
	assert.EqualError(err, scanErr.Error())

	_, err = parse(`f "abc`)
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(TokenizationError, parseErr.Kind)
	assert.False(IsIncomplete(err))
}

func TestParseMaxDepth(t *testing.T) {
	assert := assert.New(t)

	_, err := parse("((a))", WithMaxDepth(3))
	assert.NoError(err)

	_, err = parse("(((a)))", WithMaxDepth(3))
	var parseErr *ParseError
	if assert.ErrorAs(err, &parseErr) {
		assert.Equal(TooDeep, parseErr.Kind)
		assert.NotNil(parseErr.Token)
	}

	sources := []string{
		strings.Repeat("(", 1000) + "a" + strings.Repeat(")", 1000),
		strings.Repeat("-", 1000) + "a",
		"def f " + strings.Repeat("x => ", 1000) + "x",
		strings.Repeat("case c { ", 1000) + "1" + strings.Repeat(" }", 1000),
		"case c => 1" + strings.Repeat(" else c => 1", 1000),
	}
	for _, src := range sources {
		_, err := parse(src)
		if assert.ErrorAs(err, &parseErr) {
			assert.Equal(TooDeep, parseErr.Kind)
		}
	}
}

type sliceSource struct {
	tokens []*token.Token
	err    error
}

func (source *sliceSource) Peek() (*token.Token, error) {
	if len(source.tokens) == 0 {
		return nil, source.err
	}
	return source.tokens[0], nil
}

func (source *sliceSource) Next() (*token.Token, error) {
	tok, err := source.Peek()
	if tok != nil {
		source.tokens = source.tokens[1:]
	}
	return tok, err
}

func TestParseTokenSource(t *testing.T) {
	assert := assert.New(t)

	source := &sliceSource{tokens: []*token.Token{
		token.New(token.IDENT, "f", nil, token.Span{Start: 0, End: 1}),
		token.New(token.INTEGER, "1", int64(1), token.Span{Start: 2, End: 3}),
		token.New(token.SEMICOLON, ";", nil, token.Span{Start: 3, End: 4}),
	}}
	expr, err := Parse(source, nil)
	require.NoError(t, err)
	assert.Equal("(scope discard (apply f 1))", ast.Sprint(expr))
	assert.Equal(token.Span{Start: 0, End: 4}, expr.Span)

	errSource := errors.New("source failed")
	source = &sliceSource{
		tokens: []*token.Token{token.New(token.IDENT, "f", nil, token.Span{Start: 0, End: 1})},
		err:    errSource,
	}
	_, err = Parse(source, nil)
	assert.ErrorIs(err, errSource)
	var parseErr *ParseError
	if assert.ErrorAs(err, &parseErr) {
		assert.Equal(TokenizationError, parseErr.Kind)
		assert.Nil(parseErr.Span)
	}
}

func TestParseReportsOnce(t *testing.T) {
	assert := assert.New(t)

	collector := report.NewCollector()
	_, err := Parse(scanner.NewTokens("x; y"), collector)
	assert.NoError(err)
	assert.False(collector.HadError())

	_, err = Parse(scanner.NewTokens("x ) y )"), collector)
	assert.Error(err)
	assert.Len(collector.Errors(), 1)
}

func TestClassify(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(prodEnd, classify(nil))
	want := map[token.Type]production{
		token.DEF:  prodDef,
		token.TYPE: prodType,
		token.CASE: prodCase,
		token.FOR:  prodFor,
	}
	for _, typ := range token.Types {
		prod, ok := want[typ]
		if !ok {
			prod = prodStatement
		}
		tok := token.New(typ, string(typ), nil, token.Span{})
		assert.Equal(prod, classify(tok), string(typ))
	}
}

func TestTokenSets(t *testing.T) {
	assert := assert.New(t)
	count := func(p pred) int {
		n := 0
		for _, typ := range token.Types {
			if p(typ) {
				n++
			}
		}
		return n
	}
	assert.Equal(4, count(opensAbstraction))
	assert.Equal(2, count(opensBody))
	assert.Equal(6, count(startsAtom))
	assert.Equal(0, count(nothing))
	assert.Equal(len(token.Types), count(anything))
	for _, typ := range token.Types {
		if opensBody(typ) {
			assert.True(opensAbstraction(typ), string(typ))
		}
		assert.False(startsAtom(typ) && opensAbstraction(typ), string(typ))
	}
}

func TestGrammar(t *testing.T) {
	assert := assert.New(t)

	grammar, err := VerifyGrammar()
	require.NoError(t, err)
	for _, name := range []string{
		"Program", "Scope", "Def", "TypeDef", "TermExpr", "Case", "Else",
		"For", "Tuple", "Expr", "Abstraction", "Block", "Logical", "Prefix",
		"Suffix", "Atom",
	} {
		assert.Contains(grammar, name)
	}
}
