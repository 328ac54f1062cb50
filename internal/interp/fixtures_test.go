package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs every .lox program under testdata/fixtures end to end
// (scan, parse, resolve, evaluate) and checks its stdout. A fixture with a
// matching .out file is checked against that file verbatim; one with a
// matching .err file is expected to fail at runtime with that error message
// (the runtime error's message alone, without its "[line N]" suffix);
// anything else falls back to a go-snaps snapshot.
func TestFixtures(t *testing.T) {
	loxFiles, err := filepath.Glob("../../testdata/fixtures/*.lox")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(loxFiles) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, loxFile := range loxFiles {
		name := strings.TrimSuffix(filepath.Base(loxFile), ".lox")
		t.Run(name, func(t *testing.T) {
			runFixture(t, loxFile, name)
		})
	}
}

func runFixture(t *testing.T, loxFile, name string) {
	t.Helper()

	source, err := os.ReadFile(loxFile)
	if err != nil {
		t.Fatalf("read %s: %v", loxFile, err)
	}

	l := lexer.New(string(source))
	tokens := l.ScanTokens()
	if len(l.Errors()) > 0 {
		t.Fatalf("unexpected scan errors in %s: %v", name, l.Errors())
	}

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors in %s: %v", name, p.Errors())
	}

	var buf bytes.Buffer
	interp := New(&buf)

	r := resolver.New(interp)
	r.Resolve(stmts)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors in %s: %v", name, r.Errors())
	}

	runErr := interp.Interpret(stmts)

	if errFile := strings.TrimSuffix(loxFile, ".lox") + ".err"; fileExists(errFile) {
		if runErr == nil {
			t.Fatalf("expected a runtime error for %s, got none", name)
		}
		want, readErr := os.ReadFile(errFile)
		if readErr != nil {
			t.Fatalf("read %s: %v", errFile, readErr)
		}
		if got := runErr.Error() + "\n"; got != string(want) {
			t.Errorf("runtime error mismatch for %s:\nwant: %q\ngot:  %q", name, want, got)
		}
		return
	}

	if runErr != nil {
		t.Fatalf("unexpected runtime error in %s: %v", name, runErr)
	}

	if outFile := strings.TrimSuffix(loxFile, ".lox") + ".out"; fileExists(outFile) {
		want, readErr := os.ReadFile(outFile)
		if readErr != nil {
			t.Fatalf("read %s: %v", outFile, readErr)
		}
		if buf.String() != string(want) {
			t.Errorf("output mismatch for %s:\nwant:\n%s\ngot:\n%s", name, want, buf.String())
		}
		return
	}

	snaps.MatchSnapshot(t, buf.String())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
