// Package loxvalue holds the runtime value representation the evaluator
// operates on, plus the lexically-scoped Environment that binds names to
// values.
package loxvalue

import (
	"math"
	"strconv"
)

// Value is implemented by every runtime value a Lox expression can produce.
type Value interface {
	// Type returns the value's runtime type name (e.g. "number", "string").
	Type() string
	// String returns the value's canonical textual representation, the one
	// `print` and the REPL display.
	String() string
}

// Nil is Lox's singular nil value.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Bool wraps a Lox boolean.
type Bool bool

func (Bool) Type() string     { return "boolean" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Number wraps Lox's single numeric type, a float64.
type Number float64

func (Number) Type() string { return "number" }

// String renders the program-output convention: whole numbers display with
// no decimal point, everything else as its shortest round-tripping decimal.
// This is deliberately distinct from the scanner's NUMBER literal display
// (token.formatNumberLiteral), which always shows a fractional part.
func (n Number) String() string {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String wraps a Lox string value. Named LoxString to avoid colliding with
// the built-in string type.
type LoxString string

func (LoxString) Type() string     { return "string" }
func (s LoxString) String() string { return string(s) }

// IsTruthy implements Lox's truthiness rule: everything is truthy except
// nil and the boolean false.
func IsTruthy(v Value) bool {
	switch x := v.(type) {
	case Nil:
		return false
	case nil:
		return false
	case Bool:
		return bool(x)
	default:
		return true
	}
}

// Equals implements Lox's `==`/`!=` semantics: no implicit conversions, nil
// only equals nil, and values of differing dynamic type are never equal.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case LoxString:
		bv, ok := b.(LoxString)
		return ok && av == bv
	default:
		return a == b
	}
}
