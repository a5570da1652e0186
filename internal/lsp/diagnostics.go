package lsp

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ltungv/sol/internal/parser"
	"github.com/ltungv/sol/internal/report"
	"github.com/ltungv/sol/internal/resolve"
	"github.com/ltungv/sol/internal/scanner"
	"github.com/ltungv/sol/internal/token"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "sol"

// Checker scans, parses and resolves documents.
type Checker struct {
	ParseOptions   []parser.Option
	ResolveOptions []resolve.Option
}

// Diagnose checks src and returns one diagnostic per error. The parser stops
// at its first error, resolution only runs on a tree that parsed.
func (checker *Checker) Diagnose(src string) []protocol.Diagnostic {
	collector := report.NewCollector()
	expr, err := parser.Parse(scanner.NewTokens(src), collector, checker.ParseOptions...)
	if err == nil {
		resolve.Resolve(expr, collector, checker.ResolveOptions...)
	}

	doc := newDocument(src)
	diagnostics := make([]protocol.Diagnostic, 0, len(collector.Errors()))
	for _, err := range collector.Errors() {
		diagnostics = append(diagnostics, doc.diagnostic(err))
	}
	return diagnostics
}

// errorSpan returns the source span of err, or nil if it has none.
func errorSpan(err error) *token.Span {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Span
	}
	var scanErr *scanner.Error
	if errors.As(err, &scanErr) {
		return scanErr.Span
	}
	var resolveErr *resolve.Error
	if errors.As(err, &resolveErr) {
		span := resolveErr.Span
		return &span
	}
	return nil
}

type document struct {
	src   string
	lines *token.Lines
}

func newDocument(src string) *document {
	return &document{src, token.NewLines(src)}
}

// Errors without a span are placed at the end of the document.
func (doc *document) diagnostic(err error) protocol.Diagnostic {
	span := token.Span{Start: len(doc.src), End: len(doc.src)}
	if s := errorSpan(err); s != nil {
		span = *s
	}
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: doc.position(span.Start),
			End:   doc.position(span.End),
		},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}

// position converts a byte offset to a zero-based line and UTF-16 character
// offset.
func (doc *document) position(offset int) protocol.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(doc.src) {
		offset = len(doc.src)
	}
	pos := doc.lines.Position(offset)
	prefix := doc.src[offset-(pos.Column-1) : offset]

	character := 0
	for len(prefix) > 0 {
		r, size := utf8.DecodeRuneInString(prefix)
		prefix = prefix[size:]
		if n := utf16.RuneLen(r); n > 0 {
			character += n
		} else {
			character++
		}
	}
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(character),
	}
}
