package main

import (
	"github.com/ltungv/sol/internal/lsp"
	"github.com/ltungv/sol/internal/parser"
	"github.com/ltungv/sol/internal/resolve"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var allowShadowing bool
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, newChecker(allowShadowing, maxDepth))
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&allowShadowing, "allow-shadowing", false, "allow redeclaring a name in the same scope")
	cmd.Flags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum nesting depth")

	return cmd
}

func newChecker(allowShadowing bool, maxDepth int) *lsp.Checker {
	return &lsp.Checker{
		ParseOptions:   []parser.Option{parser.WithMaxDepth(maxDepth)},
		ResolveOptions: []resolve.Option{resolve.WithShadowing(allowShadowing)},
	}
}
