package scanner

import (
	"errors"
	"testing"

	"github.com/ltungv/sol/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(typ token.Type, lexeme string, literal interface{}, start int) *token.Token {
	return token.New(typ, lexeme, literal, token.Span{Start: start, End: start + len(lexeme)})
}

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src string
		tok *token.Token
	}{
		// single character token
		{"$", tok(token.DOLLAR, "$", nil, 0)},
		{"{", tok(token.L_BRACE, "{", nil, 0)},
		{"}", tok(token.R_BRACE, "}", nil, 0)},
		{"(", tok(token.L_PAREN, "(", nil, 0)},
		{")", tok(token.R_PAREN, ")", nil, 0)},
		{",", tok(token.COMMA, ",", nil, 0)},
		{";", tok(token.SEMICOLON, ";", nil, 0)},
		{"\\", tok(token.BACKSLASH, "\\", nil, 0)},
		{"-", tok(token.MINUS, "-", nil, 0)},
		{"+", tok(token.PLUS, "+", nil, 0)},
		{"*", tok(token.STAR, "*", nil, 0)},
		{"/", tok(token.SLASH, "/", nil, 0)},
		{"%", tok(token.PERCENT, "%", nil, 0)},
		{"!", tok(token.BANG, "!", nil, 0)},
		{"<", tok(token.LESS, "<", nil, 0)},
		{">", tok(token.GREATER, ">", nil, 0)},
		// double character token
		{"->", tok(token.THIN_ARROW, "->", nil, 0)},
		{"=>", tok(token.FAT_ARROW, "=>", nil, 0)},
		{"::", tok(token.COLON_COLON, "::", nil, 0)},
		{"!=", tok(token.BANG_EQUAL, "!=", nil, 0)},
		{"==", tok(token.EQUAL_EQUAL, "==", nil, 0)},
		{"&&", tok(token.AMP_AMP, "&&", nil, 0)},
		{"||", tok(token.PIPE_PIPE, "||", nil, 0)},
		{">=", tok(token.GREATER_EQUAL, ">=", nil, 0)},
		{"<=", tok(token.LESS_EQUAL, "<=", nil, 0)},
		// literals
		{"a", tok(token.IDENT, "a", nil, 0)},
		{"abc123", tok(token.IDENT, "abc123", nil, 0)},
		{"_123abc", tok(token.IDENT, "_123abc", nil, 0)},
		{"λx", tok(token.IDENT, "λx", nil, 0)},
		{`""`, tok(token.STRING, `""`, "", 0)},
		{`"abc"`, tok(token.STRING, `"abc"`, "abc", 0)},
		{`"a\"b\\c\n"`, tok(token.STRING, `"a\"b\\c\n"`, "a\"b\\c\n", 0)},
		{"10", tok(token.INTEGER, "10", int64(10), 0)},
		{"007", tok(token.INTEGER, "007", int64(7), 0)},
		{"0.5", tok(token.FLOAT, "0.5", 0.5, 0)},
		{"123.456", tok(token.FLOAT, "123.456", 123.456, 0)},
		// keywords
		{"def", tok(token.DEF, "def", nil, 0)},
		{"type", tok(token.TYPE, "type", nil, 0)},
		{"case", tok(token.CASE, "case", nil, 0)},
		{"else", tok(token.ELSE, "else", nil, 0)},
		{"for", tok(token.FOR, "for", nil, 0)},
		{"val", tok(token.VAL, "val", nil, 0)},
		{"var", tok(token.VAR, "var", nil, 0)},
		{"set", tok(token.SET, "set", nil, 0)},
		// surrounded by trivia
		{"  // comment\n  x", tok(token.IDENT, "x", nil, 15)},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, err := Scan(tc.src)
		if assert.NoError(err, tc.src) && assert.Len(toks, 1, tc.src) {
			assert.Equal(tc.tok, toks[0], tc.src)
		}
	}
}

func TestScanSequence(t *testing.T) {
	assert := assert.New(t)

	toks, err := Scan("def f val x => x+1.5;")
	assert.NoError(err)
	assert.Equal([]*token.Token{
		tok(token.DEF, "def", nil, 0),
		tok(token.IDENT, "f", nil, 4),
		tok(token.VAL, "val", nil, 6),
		tok(token.IDENT, "x", nil, 10),
		tok(token.FAT_ARROW, "=>", nil, 12),
		tok(token.IDENT, "x", nil, 15),
		tok(token.PLUS, "+", nil, 16),
		tok(token.FLOAT, "1.5", 1.5, 17),
		tok(token.SEMICOLON, ";", nil, 20),
	}, toks)
}

func TestScanNumberFollowedByDot(t *testing.T) {
	assert := assert.New(t)

	_, err := Scan("1.")
	var scanErr *Error
	assert.True(errors.As(err, &scanErr))
	assert.Equal(&token.Span{Start: 1, End: 2}, scanErr.Span)
}

func TestScanErrors(t *testing.T) {
	testCases := []struct {
		src  string
		span token.Span
		msg  string
	}{
		{"@", token.Span{Start: 0, End: 1}, "Unexpected character '@'."},
		{"a = b", token.Span{Start: 2, End: 3}, "Unexpected character '='."},
		{"a : b", token.Span{Start: 2, End: 3}, "Unexpected character ':'."},
		{"a & b", token.Span{Start: 2, End: 3}, "Unexpected character '&'."},
		{"a | b", token.Span{Start: 2, End: 3}, "Unexpected character '|'."},
		{`"abc`, token.Span{Start: 0, End: 4}, "Unterminated string."},
		{`"a\qb"`, token.Span{Start: 0, End: 4}, `Unknown escape sequence '\q'.`},
		{"99999999999999999999", token.Span{Start: 0, End: 20}, "Integer literal '99999999999999999999' is out of range."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := Scan(tc.src)
		var scanErr *Error
		if assert.True(errors.As(err, &scanErr), tc.src) {
			assert.Equal(&tc.span, scanErr.Span, tc.src)
			assert.Equal(tc.msg, scanErr.Message, tc.src)
		}
	}
}

func TestTokensPeekDoesNotConsume(t *testing.T) {
	require := require.New(t)

	tokens := NewTokens("a b")
	first, err := tokens.Peek()
	require.NoError(err)
	again, err := tokens.Peek()
	require.NoError(err)
	require.Same(first, again)

	next, err := tokens.Next()
	require.NoError(err)
	require.Same(first, next)

	second, err := tokens.Next()
	require.NoError(err)
	require.Equal("b", second.Lexeme)

	end, err := tokens.Peek()
	require.NoError(err)
	require.Nil(end)
	end, err = tokens.Next()
	require.NoError(err)
	require.Nil(end)
}

func TestTokensErrorIsSticky(t *testing.T) {
	require := require.New(t)

	tokens := NewTokens("a @ b")
	tok, err := tokens.Next()
	require.NoError(err)
	require.Equal("a", tok.Lexeme)

	_, err = tokens.Peek()
	require.Error(err)
	_, err2 := tokens.Next()
	require.Same(err, err2)
}
