package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/loxerror"
	"github.com/spf13/cobra"
)

var evaluateDumpAST bool

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <file>",
	Short: "Scan, parse, resolve, and evaluate a Lox file",
	Long: `evaluate runs the full pipeline on a file.

If the file is a single bare expression with no statement terminator, its
value is evaluated and printed. Otherwise it is treated as a program of
statements, the same as "golox run".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEvaluate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().BoolVar(&evaluateDumpAST, "dump-ast", false, "dump the parsed AST before evaluating (for debugging)")
}

func runEvaluate(path string) error {
	source, err := readSourceFile(path)
	if err != nil {
		return err
	}

	tokens, scanErrs := scanSource(source)
	if len(scanErrs) > 0 {
		printStaticErrors(scanErrs)
		os.Exit(exitCompileError)
	}

	if expr, ok := parseBareExpression(tokens); ok {
		if evaluateDumpAST {
			fmt.Println("AST:")
			fmt.Println(ast.Print(expr))
			fmt.Println()
		}

		interpreter := interp.New(os.Stdout)
		stmts := []ast.Stmt{&ast.ExpressionStmt{Expression: expr}}
		if errs := resolveProgram(interpreter, stmts); len(errs) > 0 {
			printStaticErrors(errs)
			os.Exit(exitCompileError)
		}
		v, runErr := interpreter.EvaluateExpr(expr)
		if runErr != nil {
			reportRuntimeError(runErr)
			os.Exit(exitRuntimeError)
		}
		fmt.Println(v.String())
		os.Exit(exitOK)
		return nil
	}

	stmts, parseErrs := parseProgram(tokens)
	if len(parseErrs) > 0 {
		printStaticErrors(parseErrs)
		os.Exit(exitCompileError)
	}

	if evaluateDumpAST {
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

// reportRuntimeError prints a runtime failure in the "<message>\n[line N]"
// wire format, falling back to err.Error() for anything that isn't the
// loxerror.RuntimeError the evaluator actually raises.
func reportRuntimeError(err error) {
	if rte, ok := err.(*loxerror.RuntimeError); ok {
		fmt.Fprintln(os.Stderr, rte.Format())
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}
