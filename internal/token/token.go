package token

import "fmt"

// Span is a half-open range of byte offsets into the source text.
type Span struct {
	Start int
	End   int
}

// Cover returns the smallest span that contains both spans.
func (s Span) Cover(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

// Contains reports whether other lies within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token represents group a characters with additional information that was
// obtained during the scanning phase. Lexeme is a slice of the scanned source,
// Literal carries the decoded value of FLOAT (float64), INTEGER (int64) and
// STRING (string) tokens.
type Token struct {
	Typ     Type
	Lexeme  string
	Literal interface{}
	Span    Span
}

// New creates a new token
func New(typ Type, lexeme string, literal interface{}, span Span) *Token {
	return &Token{typ, lexeme, literal, span}
}

func (t *Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %q %s", t.Typ, t.Lexeme, t.Span)
	}
	return fmt.Sprintf("%s %q %v %s", t.Typ, t.Lexeme, t.Literal, t.Span)
}

// Type is a just a wrapped string used to represent token's type
type Type string

const (
	// Single-character tokens
	DOLLAR    Type = "$"
	L_BRACE   Type = "{"
	R_BRACE   Type = "}"
	L_PAREN   Type = "("
	R_PAREN   Type = ")"
	COMMA     Type = ","
	SEMICOLON Type = ";"
	BACKSLASH Type = "\\"
	MINUS     Type = "-"
	PLUS      Type = "+"
	STAR      Type = "*"
	SLASH     Type = "/"
	PERCENT   Type = "%"

	// One or two chracter tokens
	THIN_ARROW    Type = "->"
	FAT_ARROW     Type = "=>"
	COLON_COLON   Type = "::"
	BANG          Type = "!"
	BANG_EQUAL    Type = "!="
	EQUAL_EQUAL   Type = "=="
	AMP_AMP       Type = "&&"
	PIPE_PIPE     Type = "||"
	GREATER       Type = ">"
	GREATER_EQUAL Type = ">="
	LESS          Type = "<"
	LESS_EQUAL    Type = "<="

	// Literals
	IDENT   Type = "identifier"
	STRING  Type = "string"
	INTEGER Type = "integer"
	FLOAT   Type = "float"

	// Keywords
	DEF  Type = "def"
	TYPE Type = "type"
	CASE Type = "case"
	ELSE Type = "else"
	FOR  Type = "for"
	VAL  Type = "val"
	VAR  Type = "var"
	SET  Type = "set"
)

// Keywords maps reserved words to their token types.
var Keywords = map[string]Type{
	"def":  DEF,
	"type": TYPE,
	"case": CASE,
	"else": ELSE,
	"for":  FOR,
	"val":  VAL,
	"var":  VAR,
	"set":  SET,
}

// Types lists every token type, in declaration order.
var Types = []Type{
	DOLLAR, L_BRACE, R_BRACE, L_PAREN, R_PAREN, COMMA, SEMICOLON, BACKSLASH,
	MINUS, PLUS, STAR, SLASH, PERCENT,
	THIN_ARROW, FAT_ARROW, COLON_COLON, BANG, BANG_EQUAL, EQUAL_EQUAL,
	AMP_AMP, PIPE_PIPE, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL,
	IDENT, STRING, INTEGER, FLOAT,
	DEF, TYPE, CASE, ELSE, FOR, VAL, VAR, SET,
}
