// Package resolver performs the static scope-resolution pass between parsing
// and evaluation: for every variable-use site it computes the exact
// enclosing-scope depth at which the name is defined and records it in the
// evaluator's side table. This is what fixes the classic "closures over a
// shadowed global" bug that naive lexical scoping otherwise introduces.
package resolver

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/loxerror"
	"github.com/cwbudde/golox/internal/token"
)

// Interpreter is the side-table interface the resolver writes through. The
// evaluator implements this; the resolver depends on nothing else from it.
type Interpreter interface {
	Resolve(expr ast.Expr, depth int)
}

type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkMethod
	fkInitializer
)

type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

// scope maps a name to whether its declaration has finished resolving its
// own initializer (declare() inserts false, define() flips it to true).
type scope map[string]bool

// Resolver walks a parsed program annotating the interpreter's side table.
// It performs no evaluation: print statements don't print, loops run their
// body exactly once, and "and"/"or" don't short-circuit, because this is a
// static pass, not execution.
type Resolver struct {
	interp          Interpreter
	scopes          []scope
	errors          []*loxerror.StaticError
	currentFunction functionKind
	currentClass    classKind
}

// New creates a Resolver that reports resolved depths through interp.
func New(interp Interpreter) *Resolver {
	return &Resolver{interp: interp}
}

// Errors returns every resolve error accumulated so far. Resolution does not
// stop at the first error — like the scanner and parser, it keeps going so a
// single run reports everything wrong with the program.
func (r *Resolver) Errors() []*loxerror.StaticError {
	return r.errors
}

// Resolve walks every top-level statement of a program.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fkFunction)
	case *ast.ReturnStmt:
		if r.currentFunction == fkNone {
			r.errorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fkInitializer {
				r.errorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.ClassStmt:
		r.resolveClass(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = ckClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errorAt(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = ckSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := fkMethod
		if method.Name.Lexeme == "init" {
			kind = fkInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no identifiers to resolve
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.errorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.currentClass == ckNone {
			r.errorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")
	case *ast.Super:
		switch r.currentClass {
		case ckNone:
			r.errorAt(e.Keyword, "Can't use 'super' outside of a class.")
		case ckClass:
			r.errorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")
	default:
		panic("resolver: unhandled expression type")
	}
}

// resolveLocal walks outward from the innermost scope looking for name. If
// found at index i (0 = outermost, len(scopes)-1 = innermost), it reports a depth of
// len(scopes)-1-i — the number of enclosing steps from the scope active at
// the call site. Names never found in any tracked scope are left unresolved
// and treated by the evaluator as a global lookup.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.interp.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope as not-yet-defined, so that a
// reference to it inside its own initializer can be caught.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if _, ok := s[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	s[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) errorAt(tok token.Token, message string) {
	r.errors = append(r.errors, loxerror.NewTokenError(tok, message))
}
