package resolve

import (
	"fmt"

	"github.com/ltungv/sol/internal/token"
)

// Error is a name that is bound or used incorrectly.
type Error struct {
	Span    token.Span
	Name    string
	Message string
}

func newError(span token.Span, name, message string) error {
	return &Error{span, name, message}
}

func (err *Error) Error() string {
	return fmt.Sprintf(
		"[offset %d] Error at '%s': %s",
		err.Span.Start,
		err.Name,
		err.Message,
	)
}
