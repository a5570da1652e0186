package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: astgen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	// we do it the scripting way, instead of having types support from Go stdlib
	exprTypes := []string{
		// Items has zero or at least two entries, except that a trailing
		// comma keeps a single item as a tuple: "(a,)".
		"Tuple: Items []*Expr",
		// Discard marks a scope whose value is unit rather than its last
		// expression.
		"Scope: Defs []*Def, Exprs []*Expr, Discard bool",
		"Abstract: Arg *Expr, Spec bool, Ty *Expr, Body *Expr",
		"Case: Cond *Expr, OnTrue *Expr, OnFalse *Expr",
		"For: Init *Expr, Cond *Expr, Afterthought *Expr, Body *Expr",
		"Assert: Expr *Expr, Ty *Expr",
		"Binary: Op BinOp, Lhs *Expr, Rhs *Expr",
		"Unary: Op UnOp, Operand *Expr",
		"Solve: Marker SolveMarker, Name string",
		"Apply: Callee *Expr, Arg *Expr",
		"Literal: Value interface{}",
		"Name: Name string",
	}

	if err := defineAst(outputDir, "Expr", exprTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defineAst writes kinds.go into outputDir. Every kind is named after its
// entry with baseName appended and implements the <baseName>Kind interface.
func defineAst(outputDir string, baseName string, types []string) error {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	packageName := filepath.Base(abs)
	fmt.Fprintf(&buf, "// Code generated by astgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	// Interface implemented by every kind of node
	fmt.Fprintf(&buf, "type %sKind interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor Visitor) (interface{}, error)\n")
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)

	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(&buf, baseName, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	return os.WriteFile(filepath.Join(outputDir, "kinds.go"), src, 0644)
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type Visitor interface {\n")
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
	}

	// Struct definition
	fmt.Fprintf(writer, "\ntype %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		fieldList,
		typeName, baseName,
	)
	var fieldNames []string
	for _, field := range fields {
		fieldName := strings.TrimSpace(strings.Split(field, " ")[0])
		fieldNames = append(fieldNames, fieldName)
	}
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor Visitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n")
}
