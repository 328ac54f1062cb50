package resolver

import (
	"testing"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
)

// recorder is a fake resolver.Interpreter that records every resolved
// depth in the order the resolver reports them. It does not keep which
// expression each depth belongs to.
type recorder struct {
	depths []int
}

func (r *recorder) Resolve(expr ast.Expr, depth int) {
	r.depths = append(r.depths, depth)
}

func resolveSource(t *testing.T, src string) (*recorder, *Resolver) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l.ScanTokens())
	stmts := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	rec := &recorder{}
	r := New(rec)
	r.Resolve(stmts)
	return rec, r
}

func TestResolveLocalFindsInnermostScope(t *testing.T) {
	rec, r := resolveSource(t, `
		var a = 1;
		{
			var a = 2;
			print a;
		}
	`)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}
	if len(rec.depths) != 1 || rec.depths[0] != 0 {
		t.Fatalf("depths = %v, want [0]", rec.depths)
	}
}

func TestResolveClosureCapturesDefiningScope(t *testing.T) {
	rec, r := resolveSource(t, `
		fun outer() {
			var x = 1;
			fun inner() {
				print x;
			}
			return inner;
		}
	`)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}
	// "x" inside inner is one scope out (depth 1); "inner" in the return
	// statement is in outer's own scope (depth 0).
	if len(rec.depths) != 2 || rec.depths[0] != 1 || rec.depths[1] != 0 {
		t.Fatalf("depths = %v, want [1 0]", rec.depths)
	}
}

func TestReadingOwnInitializerIsAnError(t *testing.T) {
	_, r := resolveSource(t, `
		var a = "outer";
		{
			var a = a;
		}
	`)
	if len(r.Errors()) != 1 {
		t.Fatalf("Errors() = %v, want exactly one error", r.Errors())
	}
	want := "Can't read local variable in its own initializer."
	if r.Errors()[0].Message != want {
		t.Errorf("message = %q, want %q", r.Errors()[0].Message, want)
	}
}

func TestRedeclaringInSameScopeIsAnError(t *testing.T) {
	_, r := resolveSource(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	if len(r.Errors()) != 1 {
		t.Fatalf("Errors() = %v, want exactly one error", r.Errors())
	}
	want := "Already a variable with this name in this scope."
	if r.Errors()[0].Message != want {
		t.Errorf("message = %q, want %q", r.Errors()[0].Message, want)
	}
}

func TestReturnAtTopLevelIsAnError(t *testing.T) {
	_, r := resolveSource(t, `return 1;`)
	if len(r.Errors()) != 1 {
		t.Fatalf("Errors() = %v, want exactly one error", r.Errors())
	}
	want := "Can't return from top-level code."
	if r.Errors()[0].Message != want {
		t.Errorf("message = %q, want %q", r.Errors()[0].Message, want)
	}
}

func TestReturnValueFromInitializerIsAnError(t *testing.T) {
	_, r := resolveSource(t, `
		class Foo {
			init() {
				return 1;
			}
		}
	`)
	if len(r.Errors()) != 1 {
		t.Fatalf("Errors() = %v, want exactly one error", r.Errors())
	}
	want := "Can't return a value from an initializer."
	if r.Errors()[0].Message != want {
		t.Errorf("message = %q, want %q", r.Errors()[0].Message, want)
	}
}

func TestClassInheritingFromItselfIsAnError(t *testing.T) {
	_, r := resolveSource(t, `class Foo < Foo {}`)
	if len(r.Errors()) != 1 {
		t.Fatalf("Errors() = %v, want exactly one error", r.Errors())
	}
	want := "A class can't inherit from itself."
	if r.Errors()[0].Message != want {
		t.Errorf("message = %q, want %q", r.Errors()[0].Message, want)
	}
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	_, r := resolveSource(t, `print this;`)
	if len(r.Errors()) != 1 {
		t.Fatalf("Errors() = %v, want exactly one error", r.Errors())
	}
	want := "Can't use 'this' outside of a class."
	if r.Errors()[0].Message != want {
		t.Errorf("message = %q, want %q", r.Errors()[0].Message, want)
	}
}

func TestSuperInClassWithNoSuperclassIsAnError(t *testing.T) {
	_, r := resolveSource(t, `
		class Foo {
			bar() {
				super.bar();
			}
		}
	`)
	if len(r.Errors()) != 1 {
		t.Fatalf("Errors() = %v, want exactly one error", r.Errors())
	}
	want := "Can't use 'super' in a class with no superclass."
	if r.Errors()[0].Message != want {
		t.Errorf("message = %q, want %q", r.Errors()[0].Message, want)
	}
}

func TestGlobalReferenceIsLeftUnresolved(t *testing.T) {
	rec, r := resolveSource(t, `
		var a = 1;
		print a;
	`)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}
	if len(rec.depths) != 0 {
		t.Fatalf("depths = %v, want none (global names are not resolved to a depth)", rec.depths)
	}
}
