package main

// This is the command line front end of the sol parser.

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ltungv/sol/internal/report"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
	"github.com/tliron/kutil/util"
)

const version = "0.1.0"

var log = commonlog.GetLogger("sol.cli")

// exitCode is returned by commands whose errors were already reported.
type exitCode int

func (code exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(code))
}

// Exit status for input that failed to parse or resolve.
const exitDataErr exitCode = 65

type globalFlags struct {
	verbose int
	logFile string
}

// main always ends through util.Exit so the log writers registered by
// commonlog are closed.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			util.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, err)
		util.Exit(1)
	}
	util.Exit(0)
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "sol",
		Short:         "Parser front end for the sol language",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if flags.logFile != "" {
				path = &flags.logFile
			}
			configureLog(flags.verbose, path)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&flags.verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd(flags))
	rootCmd.AddCommand(newTokensCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newReplCmd(flags))
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

// configureLog installs an unbuffered simple backend. Messages reach stderr or
// the log file as they are logged.
func configureLog(verbosity int, path *string) {
	backend := simple.NewBackend()
	backend.Buffered = false
	backend.Configure(verbosity, path)
	commonlog.SetBackend(backend)
}

// readSource reads the file at path, or standard input when path is "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

// newReporter prints errors to the command's error stream and, when logs go
// to a file, records them there too.
func newReporter(cmd *cobra.Command, flags *globalFlags) report.Reporter {
	reporter := report.NewSimpleReporter(cmd.ErrOrStderr())
	if flags.logFile == "" {
		return reporter
	}
	return report.Tee(reporter, report.NewLogReporter(log))
}
