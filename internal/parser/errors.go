package parser

import (
	"errors"
	"fmt"

	"github.com/ltungv/sol/internal/scanner"
	"github.com/ltungv/sol/internal/token"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// Unexpected means the next token did not fit the grammar. Token is nil
	// when the input ended where a token was required.
	Unexpected ErrorKind = iota
	// TokenizationError wraps a failure of the token source.
	TokenizationError
	// TooDeep means the input nests deeper than the parser's limit.
	TooDeep
)

func (kind ErrorKind) String() string {
	switch kind {
	case Unexpected:
		return "unexpected"
	case TokenizationError:
		return "tokenization"
	default:
		return "too deep"
	}
}

// ParseError is returned for the first construct the parser cannot accept.
// Span is nil when the error has no location in the source.
type ParseError struct {
	Kind  ErrorKind
	Token *token.Token
	Err   error
	Span  *token.Span
}

func newUnexpected(tok *token.Token) error {
	return newParseError(Unexpected, tok)
}

func newParseError(kind ErrorKind, tok *token.Token) error {
	err := &ParseError{Kind: kind, Token: tok}
	if tok != nil {
		span := tok.Span
		err.Span = &span
	}
	return err
}

func newTokenizationError(err error) error {
	parseErr := &ParseError{Kind: TokenizationError, Err: err}
	var scanErr *scanner.Error
	if errors.As(err, &scanErr) {
		parseErr.Span = scanErr.Span
	}
	return parseErr
}

func (err *ParseError) Error() string {
	if err.Kind == TokenizationError {
		return err.Err.Error()
	}
	message := "Unexpected token."
	if err.Kind == TooDeep {
		message = "Expression nests too deeply."
	}
	if err.Token == nil {
		if err.Kind == Unexpected {
			message = "Unexpected end of input."
		}
		return fmt.Sprintf("[end] Error at end: %s", message)
	}
	return fmt.Sprintf(
		"[offset %d] Error at '%s': %s",
		err.Token.Span.Start,
		err.Token.Lexeme,
		message,
	)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// IsIncomplete reports whether err means the input ended before the program
// was complete, so that more input could still make it valid.
func IsIncomplete(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr) &&
		parseErr.Kind == Unexpected &&
		parseErr.Token == nil
}
