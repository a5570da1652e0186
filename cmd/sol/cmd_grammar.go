package main

import (
	"fmt"
	"reflect"

	"github.com/ltungv/sol/internal/parser"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the grammar of sol in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !check {
				fmt.Fprint(cmd.OutOrStdout(), parser.Grammar)
				return nil
			}
			grammar, err := parser.VerifyGrammar()
			if err != nil {
				printErrors(cmd, err)
				return exitDataErr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d productions\n", len(grammar))
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify the grammar instead of printing it")

	return cmd
}

// printErrors prints each error of an ebnf error list on its own line.
func printErrors(cmd *cobra.Command, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(cmd.ErrOrStderr(), v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
}
