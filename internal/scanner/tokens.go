package scanner

import "github.com/ltungv/sol/internal/token"

// Tokens is a pull-based token stream with one token of lookahead. A lexical
// error is sticky: once scanning failed, every later call returns it.
type Tokens struct {
	scanner *Scanner
	peeked  *token.Token
	hasPeek bool
	err     error
}

// NewTokens creates a token stream over source.
func NewTokens(source string) *Tokens {
	return &Tokens{scanner: New(source)}
}

// Peek returns the next token without consuming it, or nil at the end of
// input.
func (tokens *Tokens) Peek() (*token.Token, error) {
	if tokens.err != nil {
		return nil, tokens.err
	}
	if !tokens.hasPeek {
		tok, err := tokens.scanner.Next()
		if err != nil {
			tokens.err = err
			return nil, err
		}
		tokens.peeked = tok
		tokens.hasPeek = true
	}
	return tokens.peeked, nil
}

// Next consumes and returns the next token, or nil at the end of input.
func (tokens *Tokens) Next() (*token.Token, error) {
	tok, err := tokens.Peek()
	if err != nil {
		return nil, err
	}
	tokens.hasPeek = false
	tokens.peeked = nil
	return tok, nil
}
