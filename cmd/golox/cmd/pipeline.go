package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/loxerror"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/cwbudde/golox/internal/token"
)

// Exit codes per the CLI's external contract: 0 on success, 65 for any
// compile-time failure (scan, parse, resolve), 70 for a runtime error.
const (
	exitOK           = 0
	exitCompileError = 65
	exitRuntimeError = 70
)

func readSourceFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(content), nil
}

// scanSource tokenizes source, returning the tokens and any scan errors.
func scanSource(source string) ([]token.Token, []*loxerror.StaticError) {
	l := lexer.New(source)
	tokens := l.ScanTokens()
	return tokens, l.Errors()
}

func parseProgram(tokens []token.Token) ([]ast.Stmt, []*loxerror.StaticError) {
	p := parser.New(tokens)
	stmts := p.ParseProgram()
	return stmts, p.Errors()
}

func parseSingleExpression(tokens []token.Token) (ast.Expr, []*loxerror.StaticError) {
	p := parser.New(tokens)
	expr := p.ParseExpression()
	return expr, p.Errors()
}

// parseBareExpression reports whether tokens form exactly one expression
// with nothing left over but EOF: the "single bare expression, no
// statement terminator" case the `evaluate` command treats specially.
func parseBareExpression(tokens []token.Token) (ast.Expr, bool) {
	p := parser.New(tokens)
	expr := p.ParseExpression()
	if expr == nil || len(p.Errors()) > 0 || !p.AtEnd() {
		return nil, false
	}
	return expr, true
}

// resolveProgram runs the static resolve pass, writing resolved depths into
// interp (any type implementing resolver.Interpreter).
func resolveProgram(interp resolver.Interpreter, stmts []ast.Stmt) []*loxerror.StaticError {
	r := resolver.New(interp)
	r.Resolve(stmts)
	return r.Errors()
}

// printStaticErrors writes every collected scan/parse/resolve error to
// stderr in the "[line N] Error...: message" wire format.
func printStaticErrors(errs []*loxerror.StaticError) {
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Format())
	}
}
