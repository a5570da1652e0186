// Package scanner turns sol source text into tokens.
package scanner

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ltungv/sol/internal/token"
)

// Scanner reads tokens from the source one at a time. Offsets are byte offsets
// into the source.
type Scanner struct {
	start   int
	current int
	source  string
}

// New creates a new sol token scanner
func New(source string) *Scanner {
	return &Scanner{0, 0, source}
}

// Scan reads the source and collect all the tokens that were found from the
// source. It stops at the first lexical error.
func Scan(source string) ([]*token.Token, error) {
	scanner := New(source)
	tokens := make([]*token.Token, 0)
	for {
		tok, err := scanner.Next()
		if err != nil {
			return tokens, err
		}
		if tok == nil {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next scans the next token. It returns a nil token once the source is
// exhausted.
func (scanner *Scanner) Next() (*token.Token, error) {
	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t', '\n':
		// Single character tokens
		case '$':
			return scanner.token(token.DOLLAR, nil), nil
		case '{':
			return scanner.token(token.L_BRACE, nil), nil
		case '}':
			return scanner.token(token.R_BRACE, nil), nil
		case '(':
			return scanner.token(token.L_PAREN, nil), nil
		case ')':
			return scanner.token(token.R_PAREN, nil), nil
		case ',':
			return scanner.token(token.COMMA, nil), nil
		case ';':
			return scanner.token(token.SEMICOLON, nil), nil
		case '\\':
			return scanner.token(token.BACKSLASH, nil), nil
		case '+':
			return scanner.token(token.PLUS, nil), nil
		case '*':
			return scanner.token(token.STAR, nil), nil
		case '%':
			return scanner.token(token.PERCENT, nil), nil
		// Double character tokens
		case '-':
			if scanner.match('>') {
				return scanner.token(token.THIN_ARROW, nil), nil
			}
			return scanner.token(token.MINUS, nil), nil
		case '=':
			if scanner.match('>') {
				return scanner.token(token.FAT_ARROW, nil), nil
			}
			if scanner.match('=') {
				return scanner.token(token.EQUAL_EQUAL, nil), nil
			}
			return nil, scanner.errorf("Unexpected character '='.")
		case ':':
			if scanner.match(':') {
				return scanner.token(token.COLON_COLON, nil), nil
			}
			return nil, scanner.errorf("Unexpected character ':'.")
		case '!':
			if scanner.match('=') {
				return scanner.token(token.BANG_EQUAL, nil), nil
			}
			return scanner.token(token.BANG, nil), nil
		case '&':
			if scanner.match('&') {
				return scanner.token(token.AMP_AMP, nil), nil
			}
			return nil, scanner.errorf("Unexpected character '&'.")
		case '|':
			if scanner.match('|') {
				return scanner.token(token.PIPE_PIPE, nil), nil
			}
			return nil, scanner.errorf("Unexpected character '|'.")
		case '<':
			if scanner.match('=') {
				return scanner.token(token.LESS_EQUAL, nil), nil
			}
			return scanner.token(token.LESS, nil), nil
		case '>':
			if scanner.match('=') {
				return scanner.token(token.GREATER_EQUAL, nil), nil
			}
			return scanner.token(token.GREATER, nil), nil
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// the comment runs until the end of line
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else {
				return scanner.token(token.SLASH, nil), nil
			}
		// Literals
		case '"':
			return scanner.scanString()
		default:
			if isDigit(r) {
				return scanner.scanNumber()
			}
			if isBeginIdent(r) {
				return scanner.scanIdentifier(), nil
			}
			return nil, scanner.errorf("Unexpected character %q.", r)
		}
	}
	return nil, nil
}

func (scanner *Scanner) scanString() (*token.Token, error) {
	var literal strings.Builder
	for scanner.peek() != '"' && scanner.hasNext() {
		r := scanner.advance()
		if r != '\\' {
			literal.WriteRune(r)
			continue
		}
		if !scanner.hasNext() {
			break
		}
		switch e := scanner.advance(); e {
		case '"', '\\':
			literal.WriteRune(e)
		case 'n':
			literal.WriteByte('\n')
		case 't':
			literal.WriteByte('\t')
		case 'r':
			literal.WriteByte('\r')
		case '0':
			literal.WriteByte(0)
		default:
			return nil, scanner.errorf("Unknown escape sequence '\\%c'.", e)
		}
	}
	if !scanner.hasNext() {
		return nil, scanner.errorf("Unterminated string.")
	}
	// closing '"'
	scanner.advance()
	return scanner.token(token.STRING, literal.String()), nil
}

func (scanner *Scanner) scanNumber() (*token.Token, error) {
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// a '.' only belongs to the number when digits follow it
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
		lexeme := scanner.source[scanner.start:scanner.current]
		literal, err := strconv.ParseFloat(lexeme, 64)
		if err != nil || math.IsInf(literal, 0) {
			return nil, scanner.errorf("Float literal '%s' is out of range.", lexeme)
		}
		return scanner.token(token.FLOAT, literal), nil
	}
	lexeme := scanner.source[scanner.start:scanner.current]
	literal, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, scanner.errorf("Integer literal '%s' is out of range.", lexeme)
	}
	return scanner.token(token.INTEGER, literal), nil
}

func (scanner *Scanner) scanIdentifier() *token.Token {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := scanner.source[scanner.start:scanner.current]
	if typ, isKeyword := token.Keywords[lexeme]; isKeyword {
		return scanner.token(typ, nil)
	}
	return scanner.token(token.IDENT, nil)
}

// token wraps the lexeme from `start` to `current` as a token of the given
// type carrying the given literal
func (scanner *Scanner) token(typ token.Type, literal interface{}) *token.Token {
	lexeme := scanner.source[scanner.start:scanner.current]
	return token.New(typ, lexeme, literal, scanner.span())
}

func (scanner *Scanner) span() token.Span {
	return token.Span{Start: scanner.start, End: scanner.current}
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(scanner.source[scanner.current:])
	scanner.current += size
	return r
}

// match checks if the byte at the current position is equal to the given
// one, if they are equal, consumes it.
func (scanner *Scanner) match(expected byte) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	r, _ := utf8.DecodeRuneInString(scanner.source[scanner.current:])
	return r
}

// peekNext returns the byte after the current position, but does not
// consume anything
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return rune(scanner.source[scanner.current+1])
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
