package loxvalue

import (
	"testing"

	"github.com/cwbudde/golox/internal/token"
)

func name(lexeme string) token.Token {
	return token.New(token.IDENTIFIER, lexeme, 1)
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", Number(1))
	v, err := env.Get(name("a"))
	if err != nil || v != Number(1) {
		t.Fatalf("Get(a) = %v, %v", v, err)
	}
}

func TestEnvironmentGetSearchesOuterScopes(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", Number(1))
	inner := NewEnclosedEnvironment(outer)
	v, err := inner.Get(name("a"))
	if err != nil || v != Number(1) {
		t.Fatalf("Get(a) through outer = %v, %v", v, err)
	}
}

func TestEnvironmentGetUndefinedErrors(t *testing.T) {
	env := NewEnvironment()
	if _, err := env.Get(name("nope")); err == nil {
		t.Fatalf("expected error for undefined variable")
	}
}

func TestEnvironmentAssignRequiresExistingBinding(t *testing.T) {
	env := NewEnvironment()
	if err := env.Assign(name("a"), Number(1)); err == nil {
		t.Fatalf("expected error assigning to undefined variable")
	}
	env.Define("a", Number(1))
	if err := env.Assign(name("a"), Number(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := env.Get(name("a"))
	if v != Number(2) {
		t.Fatalf("Get(a) after assign = %v", v)
	}
}

func TestEnvironmentAssignWritesToOuterScope(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", Number(1))
	inner := NewEnclosedEnvironment(outer)
	if err := inner.Assign(name("a"), Number(9)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := outer.Get(name("a"))
	if v != Number(9) {
		t.Fatalf("outer Get(a) after inner assign = %v", v)
	}
}

func TestEnvironmentGetAtAssignAt(t *testing.T) {
	global := NewEnvironment()
	global.Define("a", Number(1))
	mid := NewEnclosedEnvironment(global)
	inner := NewEnclosedEnvironment(mid)

	if v := inner.GetAt(2, "a"); v != Number(1) {
		t.Fatalf("GetAt(2, a) = %v, want Number(1)", v)
	}

	inner.AssignAt(2, name("a"), Number(5))
	if v := inner.GetAt(2, "a"); v != Number(5) {
		t.Fatalf("GetAt(2, a) after AssignAt = %v, want Number(5)", v)
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", Number(1))
	inner := NewEnclosedEnvironment(outer)
	inner.Define("a", Number(2))

	innerVal, _ := inner.Get(name("a"))
	outerVal, _ := outer.Get(name("a"))
	if innerVal != Number(2) || outerVal != Number(1) {
		t.Fatalf("shadowing broken: inner=%v outer=%v", innerVal, outerVal)
	}
}
