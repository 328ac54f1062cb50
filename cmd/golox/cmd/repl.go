package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lox prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

// runREPL reads one line at a time, parsing it as a full program first
// and only falling back to a bare expression if that fails. That lets a
// line like "2 + 2" print its value without a trailing semicolon, while
// "print x;" and multi-statement lines still run as written. Parse and
// resolve errors are reported but never stop the session; each line gets
// a fresh chance.
func runREPL() error {
	interpreter := interp.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("golox %s\n", Version)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scannerErr(scanner)
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		evalREPLLine(interpreter, line)
	}
}

func evalREPLLine(interpreter *interp.Interpreter, line string) {
	tokens, scanErrs := scanSource(line)
	if len(scanErrs) > 0 {
		printStaticErrors(scanErrs)
		return
	}

	stmts, parseErrs := parseProgram(tokens)
	if len(parseErrs) > 0 {
		if expr, ok := parseBareExpression(tokens); ok {
			evalBareExpr(interpreter, expr)
			return
		}
		printStaticErrors(parseErrs)
		return
	}
	if errs := resolveProgram(interpreter, stmts); len(errs) > 0 {
		printStaticErrors(errs)
		return
	}
	if runErr := interpreter.Interpret(stmts); runErr != nil {
		reportRuntimeError(runErr)
	}
}

func evalBareExpr(interpreter *interp.Interpreter, expr ast.Expr) {
	stmts := []ast.Stmt{&ast.ExpressionStmt{Expression: expr}}
	if errs := resolveProgram(interpreter, stmts); len(errs) > 0 {
		printStaticErrors(errs)
		return
	}
	v, runErr := interpreter.EvaluateExpr(expr)
	if runErr != nil {
		reportRuntimeError(runErr)
		return
	}
	fmt.Println(v.String())
}

func scannerErr(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil && err != io.EOF {
		return err
	}
	fmt.Println()
	return nil
}
