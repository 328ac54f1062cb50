// Package cmd implements golox's command-line surface: tokenize, parse,
// evaluate, run, and the interactive REPL, all built on Cobra.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is the golox release version, set by build flags.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "golox is a tree-walking interpreter for the Lox language",
	Long: `golox scans, parses, resolves, and evaluates Lox programs.

Run it with no arguments (or "repl") for an interactive prompt, or give it
one of the tokenize/parse/evaluate/run subcommands and a source file.`,
	Version: Version,
	// With no subcommand and no args, fall straight into the REPL.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
