package loxvalue

import "github.com/cwbudde/golox/internal/ast"

// Callable is implemented by every value that can appear as the callee of a
// Lox call expression: user-defined functions/methods, classes (as their
// own constructor), and native functions.
type Callable interface {
	Value
	// Arity reports the number of arguments the callee expects.
	Arity() int
	// Call invokes the callee with already-evaluated arguments. call is the
	// function the evaluator uses to execute a user-defined function or
	// method body against its own closure environment; native callables
	// ignore it.
	Call(call CallFn, args []Value) (Value, error)
}

// CallFn executes a Function's body in a fresh environment enclosed by the
// function's closure, and returns whatever it evaluates to (Nil{} for a body
// that falls off the end without a return). The evaluator supplies this so
// that loxvalue never needs to import the interp package.
type CallFn func(fn *Function, args []Value) (Value, error)

// Function is a user-defined Lox function or method: a declaration plus the
// environment it closed over at definition time.
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (*Function) Type() string { return "function" }

func (f *Function) String() string {
	if f.Decl.Name.Lexeme == "" {
		return "<fn>"
	}
	return "<fn " + f.Decl.Name.Lexeme + ">"
}

func (f *Function) Arity() int { return len(f.Decl.Params) }

func (f *Function) Call(call CallFn, args []Value) (Value, error) {
	return call(f, args)
}

// Bind returns a copy of the method bound to instance: a function whose
// closure is a new scope, nested in the method's original closure, that
// defines "this" as the instance. This is how a method looked up via one
// instance resolves "this" to that instance even though the method body
// itself was only ever resolved once, against the class.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{
		Decl:          f.Decl,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}

// Native is a built-in function implemented in Go, such as clock.
type Native struct {
	Name   string
	ArityN int
	Fn     func(args []Value) (Value, error)
}

func (*Native) Type() string     { return "native function" }
func (n *Native) String() string { return "<native:" + n.Name + ">" }
func (n *Native) Arity() int     { return n.ArityN }

func (n *Native) Call(_ CallFn, args []Value) (Value, error) {
	return n.Fn(args)
}
