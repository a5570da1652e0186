package main

import (
	"fmt"

	"github.com/ltungv/sol/internal/ast"
	"github.com/ltungv/sol/internal/parser"
	"github.com/ltungv/sol/internal/scanner"
	"github.com/spf13/cobra"
)

func newParseCmd(flags *globalFlags) *cobra.Command {
	var outputFormat string
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a sol file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat != "sexpr" && outputFormat != "json" {
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			expr, err := parser.Parse(
				scanner.NewTokens(src),
				newReporter(cmd, flags),
				parser.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return exitDataErr
			}

			if outputFormat == "json" {
				if err := ast.NewJSONEncoder(cmd.OutOrStdout()).Encode(expr); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ast.Sprint(expr))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexpr", "output format (sexpr, json)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum nesting depth")

	return cmd
}
