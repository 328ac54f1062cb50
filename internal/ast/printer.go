package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/golox/internal/token"
)

// Print renders an expression as a Lisp-like parenthesized form, e.g.
// "(+ 1 (* 2 3))". It is a debugging collaborator, grounded on the original
// implementation's ASTPrinter, and is never consulted by the resolver or
// evaluator.
func Print(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return printLiteral(n.Value)
	case *Grouping:
		return parenthesize("group", n.Expression)
	case *Unary:
		return parenthesize(n.Operator.Lexeme, n.Right)
	case *Binary:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Logical:
		return parenthesize(n.Operator.Lexeme, n.Left, n.Right)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return parenthesize("= "+n.Name.Lexeme, n.Value)
	case *Call:
		args := append([]Expr{n.Callee}, n.Arguments...)
		return parenthesize("call", args...)
	case *Get:
		return parenthesize("."+n.Name.Lexeme, n.Object)
	case *Set:
		return parenthesize("= ."+n.Name.Lexeme, n.Object, n.Value)
	case *This:
		return "this"
	case *Super:
		return "(super." + n.Method.Lexeme + ")"
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

// FormatStmt renders a single statement as a Lisp-like parenthesized form,
// nesting Print for any expressions it contains. Used by the `--dump-ast`
// CLI flag, never by the resolver or evaluator.
func FormatStmt(s Stmt) string {
	switch n := s.(type) {
	case *ExpressionStmt:
		return Print(n.Expression)
	case *PrintStmt:
		return "(print " + Print(n.Expression) + ")"
	case *VarStmt:
		if n.Initializer == nil {
			return "(var " + n.Name.Lexeme + ")"
		}
		return "(var " + n.Name.Lexeme + " " + Print(n.Initializer) + ")"
	case *Block:
		return "(block" + printStmts(n.Statements) + ")"
	case *IfStmt:
		str := "(if " + Print(n.Condition) + " " + FormatStmt(n.Then)
		if n.Else != nil {
			str += " " + FormatStmt(n.Else)
		}
		return str + ")"
	case *WhileStmt:
		return "(while " + Print(n.Condition) + " " + FormatStmt(n.Body) + ")"
	case *FunctionStmt:
		return "(fun " + n.Name.Lexeme + " (" + joinParams(n.Params) + ")" + printStmts(n.Body) + ")"
	case *ReturnStmt:
		if n.Value == nil {
			return "(return)"
		}
		return "(return " + Print(n.Value) + ")"
	case *ClassStmt:
		str := "(class " + n.Name.Lexeme
		if n.Superclass != nil {
			str += " < " + n.Superclass.Name.Lexeme
		}
		for _, m := range n.Methods {
			str += " " + FormatStmt(m)
		}
		return str + ")"
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

// PrintProgram renders a sequence of top-level statements, one per line.
func PrintProgram(stmts []Stmt) string {
	lines := make([]string, len(stmts))
	for i, s := range stmts {
		lines[i] = FormatStmt(s)
	}
	return strings.Join(lines, "\n")
}

func printStmts(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteByte(' ')
		sb.WriteString(FormatStmt(s))
	}
	return sb.String()
}

func joinParams(params []token.Token) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Lexeme
	}
	return strings.Join(names, " ")
}

func printLiteral(v any) string {
	if v == nil {
		return "nil"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(Print(e))
	}
	sb.WriteByte(')')
	return sb.String()
}
