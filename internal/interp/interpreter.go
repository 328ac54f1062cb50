// Package interp tree-walks a resolved Lox program, evaluating expressions
// and executing statements against a chain of loxvalue.Environment scopes.
package interp

import (
	"fmt"
	"io"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/loxerror"
	"github.com/cwbudde/golox/internal/loxvalue"
	"github.com/cwbudde/golox/internal/token"
)

// Interpreter evaluates a resolved AST. It implements resolver.Interpreter
// so the resolver can write directly into its side table without either
// package importing the other's concrete type.
type Interpreter struct {
	globals *loxvalue.Environment
	env     *loxvalue.Environment
	locals  map[ast.Expr]int
	out     io.Writer
}

// New creates an Interpreter that writes `print` output to out, with a
// fresh globals environment pre-populated with the native functions.
func New(out io.Writer) *Interpreter {
	globals := loxvalue.Globals()
	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[ast.Expr]int),
		out:     out,
	}
}

// Resolve records the scope depth the resolver computed for expr. Called
// by *resolver.Resolver during the resolve pass, before Interpret runs.
func (i *Interpreter) Resolve(expr ast.Expr, depth int) {
	i.locals[expr] = depth
}

// Interpret executes a resolved program's top-level statements in order.
// It stops and returns the first runtime error encountered; statements
// before it have already taken effect.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateExpr evaluates a single expression outside of any statement,
// for the `evaluate` CLI command's bare-expression form.
func (i *Interpreter) EvaluateExpr(expr ast.Expr) (loxvalue.Value, error) {
	return i.eval(expr)
}

// returnSignal is the non-local exit a `return` statement raises. It is
// deliberately not an error: execute's callers never interpret it as a
// runtime failure, and it is caught nowhere except callFunction.
type returnSignal struct {
	value loxvalue.Value
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.eval(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := i.eval(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, v.String())
		return nil

	case *ast.VarStmt:
		var v loxvalue.Value = loxvalue.Nil{}
		if s.Initializer != nil {
			var err error
			v, err = i.eval(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		return i.executeBlock(s.Statements, loxvalue.NewEnclosedEnvironment(i.env))

	case *ast.IfStmt:
		cond, err := i.eval(s.Condition)
		if err != nil {
			return err
		}
		if loxvalue.IsTruthy(cond) {
			return i.execute(s.Then)
		}
		if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.eval(s.Condition)
			if err != nil {
				return err
			}
			if !loxvalue.IsTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &loxvalue.Function{Decl: s, Closure: i.env}
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var v loxvalue.Value = loxvalue.Nil{}
		if s.Value != nil {
			var err error
			v, err = i.eval(s.Value)
			if err != nil {
				return err
			}
		}
		panic(returnSignal{value: v})

	case *ast.ClassStmt:
		return i.executeClass(s)

	default:
		panic("interp: unhandled statement type")
	}
}

// executeBlock runs stmts against a new scope, restoring the interpreter's
// previous scope on every exit path: normal completion, a runtime error,
// or a return-signal panic unwinding through it.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *loxvalue.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *loxvalue.Class
	if s.Superclass != nil {
		v, err := i.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*loxvalue.Class)
		if !ok {
			return loxerror.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, loxvalue.Nil{})

	env := i.env
	if superclass != nil {
		env = loxvalue.NewEnclosedEnvironment(i.env)
		env.Define("super", superclass)
	}

	methods := make(map[string]*loxvalue.Function, len(s.Methods))
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = &loxvalue.Function{
			Decl:          method,
			Closure:       env,
			IsInitializer: method.Name.Lexeme == "init",
		}
	}

	class := &loxvalue.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}

	if err := i.env.Assign(s.Name, class); err != nil {
		return err
	}
	return nil
}

// callFunction is the loxvalue.CallFn the evaluator hands to every
// Callable: it executes a user function's body in a fresh environment
// enclosing its closure, catching the return-signal panic raised by a
// `return` statement anywhere in that body.
func (i *Interpreter) callFunction(fn *loxvalue.Function, args []loxvalue.Value) (result loxvalue.Value, err error) {
	env := loxvalue.NewEnclosedEnvironment(fn.Closure)
	for idx, param := range fn.Decl.Params {
		env.Define(param.Lexeme, args[idx])
	}

	result = loxvalue.Nil{}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if fn.IsInitializer {
				result = fn.Closure.GetAt(0, "this")
				return
			}
			result = sig.value
		}
	}()

	if execErr := i.executeBlock(fn.Decl.Body, env); execErr != nil {
		return nil, execErr
	}

	if fn.IsInitializer {
		result = fn.Closure.GetAt(0, "this")
	}
	return result, nil
}
