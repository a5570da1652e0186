package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ltungv/sol/internal/ast"
	"github.com/ltungv/sol/internal/parser"
	"github.com/ltungv/sol/internal/report"
	"github.com/ltungv/sol/internal/scanner"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".sol_history"
	promptMain  = "sol> "
	promptCont  = "...  "
)

func newReplCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read sol programs interactively and print their syntax trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, _ := os.UserHomeDir()
			histPath := filepath.Join(home, historyFile)

			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				if f, err := os.Create(histPath); err == nil {
					_, _ = ln.WriteHistory(f)
					_ = f.Close()
				}
			}()

			out := cmd.OutOrStdout()
			reporter := newReporter(cmd, flags)
			for {
				src, ok := readByParseProbe(ln, promptMain, promptCont)
				if !ok {
					fmt.Fprintln(out)
					return nil
				}
				if strings.TrimSpace(src) == "" {
					continue
				}
				ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
				printTree(out, reporter, src)
			}
		},
	}
}

// printTree parses src and prints its tree, or leaves the error to reporter.
func printTree(out io.Writer, reporter report.Reporter, src string) {
	expr, err := parser.Parse(scanner.NewTokens(src), reporter)
	reporter.Reset()
	if err != nil {
		return
	}
	fmt.Fprintln(out, ast.Sprint(expr))
}

// prompter is the part of liner.State the reading loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// readByParseProbe reads lines until they form a program that either parses
// or fails for a reason other than ending too early.
func readByParseProbe(ln prompter, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := parser.Parse(scanner.NewTokens(src), nil)
		if perr != nil && parser.IsIncomplete(perr) && strings.TrimSpace(line) != "" {
			continue
		}
		return src, true
	}
}
