package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Scan and parse a single Lox expression and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(path string) error {
	source, err := readSourceFile(path)
	if err != nil {
		return err
	}

	tokens, scanErrs := scanSource(source)
	if len(scanErrs) > 0 {
		printStaticErrors(scanErrs)
		os.Exit(exitCompileError)
	}

	expr, parseErrs := parseSingleExpression(tokens)
	if len(parseErrs) > 0 {
		printStaticErrors(parseErrs)
		os.Exit(exitCompileError)
	}

	fmt.Println(ast.Print(expr))
	os.Exit(exitOK)
	return nil
}
