package main

import (
	"fmt"

	"github.com/ltungv/sol/internal/parser"
	"github.com/ltungv/sol/internal/resolve"
	"github.com/ltungv/sol/internal/scanner"
	"github.com/spf13/cobra"
)

func newCheckCmd(flags *globalFlags) *cobra.Command {
	var allowShadowing bool
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a sol file and resolve its names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			reporter := newReporter(cmd, flags)
			expr, err := parser.Parse(scanner.NewTokens(src), reporter, parser.WithMaxDepth(maxDepth))
			if err != nil {
				return exitDataErr
			}
			table, err := resolve.Resolve(expr, reporter, resolve.WithShadowing(allowShadowing))
			if err != nil {
				return exitDataErr
			}
			log.Infof("%s: %d symbols", args[0], len(table.Symbols()))
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowShadowing, "allow-shadowing", false, "allow redeclaring a name in the same scope")
	cmd.Flags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum nesting depth")

	return cmd
}
