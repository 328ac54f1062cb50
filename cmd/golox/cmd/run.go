package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/spf13/cobra"
)

var runDumpAST bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Scan, parse, resolve, and run a Lox program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgram(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "dump the parsed AST before running (for debugging)")
}

func runProgram(path string) error {
	source, err := readSourceFile(path)
	if err != nil {
		return err
	}

	tokens, scanErrs := scanSource(source)
	if len(scanErrs) > 0 {
		printStaticErrors(scanErrs)
		os.Exit(exitCompileError)
	}

	stmts, parseErrs := parseProgram(tokens)
	if len(parseErrs) > 0 {
		printStaticErrors(parseErrs)
		os.Exit(exitCompileError)
	}

	if runDumpAST {
		fmt.Println("AST:")
		fmt.Println(ast.PrintProgram(stmts))
		fmt.Println()
	}

	interpreter := interp.New(os.Stdout)
	if errs := resolveProgram(interpreter, stmts); len(errs) > 0 {
		printStaticErrors(errs)
		os.Exit(exitCompileError)
	}
	if runErr := interpreter.Interpret(stmts); runErr != nil {
		reportRuntimeError(runErr)
		os.Exit(exitRuntimeError)
	}
	os.Exit(exitOK)
	return nil
}
