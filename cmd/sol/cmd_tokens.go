package main

import (
	"fmt"

	"github.com/ltungv/sol/internal/scanner"
	"github.com/ltungv/sol/internal/token"
	"github.com/spf13/cobra"
)

func newTokensCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a sol file with their positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			lines := token.NewLines(src)
			tokens := scanner.NewTokens(src)
			out := cmd.OutOrStdout()
			for {
				tok, err := tokens.Next()
				if err != nil {
					newReporter(cmd, flags).Report(err)
					return exitDataErr
				}
				if tok == nil {
					return nil
				}
				pos := lines.Position(tok.Span.Start)
				fmt.Fprintf(out, "%d:%d\t%s\n", pos.Line, pos.Column, tok)
			}
		},
	}
}
