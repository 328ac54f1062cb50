package interp

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/loxerror"
	"github.com/cwbudde/golox/internal/loxvalue"
	"github.com/cwbudde/golox/internal/token"
)

func (i *Interpreter) eval(expr ast.Expr) (loxvalue.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return i.eval(e.Expression)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Variable:
		return i.lookupVariable(e.Name, e)

	case *ast.Assign:
		return i.evalAssign(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Get:
		return i.evalGet(e)

	case *ast.Set:
		return i.evalSet(e)

	case *ast.This:
		return i.lookupVariable(e.Keyword, e)

	case *ast.Super:
		return i.evalSuper(e)

	default:
		panic("interp: unhandled expression type")
	}
}

// literalValue converts the scanner/parser's untyped literal (nil, bool,
// float64, or string) into its loxvalue representation.
func literalValue(v any) loxvalue.Value {
	switch x := v.(type) {
	case nil:
		return loxvalue.Nil{}
	case bool:
		return loxvalue.Bool(x)
	case float64:
		return loxvalue.Number(x)
	case string:
		return loxvalue.LoxString(x)
	default:
		panic("interp: literal of unexpected Go type")
	}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (loxvalue.Value, error) {
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.BANG:
		return loxvalue.Bool(!loxvalue.IsTruthy(right)), nil
	case token.MINUS:
		n, ok := right.(loxvalue.Number)
		if !ok {
			return nil, loxerror.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) (loxvalue.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.EQUAL_EQUAL:
		return loxvalue.Bool(loxvalue.Equals(left, right)), nil
	case token.BANG_EQUAL:
		return loxvalue.Bool(!loxvalue.Equals(left, right)), nil

	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(loxvalue.Number)
		rn, rok := right.(loxvalue.Number)
		if !lok || !rok {
			return nil, loxerror.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.GREATER:
			return loxvalue.Bool(ln > rn), nil
		case token.GREATER_EQUAL:
			return loxvalue.Bool(ln >= rn), nil
		case token.LESS:
			return loxvalue.Bool(ln < rn), nil
		default:
			return loxvalue.Bool(ln <= rn), nil
		}

	case token.MINUS, token.STAR, token.SLASH:
		ln, lok := left.(loxvalue.Number)
		rn, rok := right.(loxvalue.Number)
		if !lok || !rok {
			return nil, loxerror.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		default:
			return ln / rn, nil
		}

	case token.PLUS:
		if ln, ok := left.(loxvalue.Number); ok {
			if rn, ok := right.(loxvalue.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(loxvalue.LoxString); ok {
			if rs, ok := right.(loxvalue.LoxString); ok {
				return ls + rs, nil
			}
		}
		return nil, loxerror.NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	default:
		panic("interp: unhandled binary operator")
	}
}

func (i *Interpreter) evalLogical(e *ast.Logical) (loxvalue.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.OR {
		if loxvalue.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !loxvalue.IsTruthy(left) {
			return left, nil
		}
	}
	return i.eval(e.Right)
}

func (i *Interpreter) evalAssign(e *ast.Assign) (loxvalue.Value, error) {
	val, err := i.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.locals[e]; ok {
		i.env.AssignAt(depth, e.Name, val)
		return val, nil
	}
	if err := i.globals.Assign(e.Name, val); err != nil {
		return nil, loxerror.NewRuntimeError(e.Name, "%s", err.Error())
	}
	return val, nil
}

// lookupVariable resolves a name reference (Variable or This) through the
// side table: a recorded depth means an exact-scope lookup, no entry means
// a global — the resolver never records globals, per spec's late-binding
// rule for forward-referenced globals.
func (i *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (loxvalue.Value, error) {
	if depth, ok := i.locals[expr]; ok {
		return i.env.GetAt(depth, name.Lexeme), nil
	}
	v, err := i.globals.Get(name)
	if err != nil {
		return nil, loxerror.NewRuntimeError(name, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (loxvalue.Value, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]loxvalue.Value, len(e.Arguments))
	for idx, arg := range e.Arguments {
		v, err := i.eval(arg)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(loxvalue.Callable)
	if !ok {
		return nil, loxerror.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, loxerror.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	v, err := callable.Call(i.callFunction, args)
	if err != nil {
		if _, ok := err.(*loxerror.RuntimeError); ok {
			return nil, err
		}
		return nil, loxerror.NewRuntimeError(e.Paren, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) evalGet(e *ast.Get) (loxvalue.Value, error) {
	obj, err := i.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*loxvalue.Instance)
	if !ok {
		return nil, loxerror.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	v, err := instance.Get(e.Name.Lexeme)
	if err != nil {
		return nil, loxerror.NewRuntimeError(e.Name, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) evalSet(e *ast.Set) (loxvalue.Value, error) {
	obj, err := i.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*loxvalue.Instance)
	if !ok {
		return nil, loxerror.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	val, err := i.eval(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, val)
	return val, nil
}

func (i *Interpreter) evalSuper(e *ast.Super) (loxvalue.Value, error) {
	depth := i.locals[e]
	superclass := i.env.GetAt(depth, "super").(*loxvalue.Class)
	instance := i.env.GetAt(depth-1, "this").(*loxvalue.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, loxerror.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
