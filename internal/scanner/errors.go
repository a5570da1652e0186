package scanner

import (
	"fmt"

	"github.com/ltungv/sol/internal/token"
)

// Error is a lexical error. Span is nil when the error has no location in
// the source.
type Error struct {
	Span    *token.Span
	Message string
}

// NewError creates a new lexical error
func NewError(span *token.Span, message string) error {
	return &Error{span, message}
}

func (err *Error) Error() string {
	if err.Span == nil {
		return fmt.Sprintf("Error: %s", err.Message)
	}
	return fmt.Sprintf("[offset %d] Error: %s", err.Span.Start, err.Message)
}

func (scanner *Scanner) errorf(format string, args ...interface{}) error {
	span := scanner.span()
	return NewError(&span, fmt.Sprintf(format, args...))
}
