package lexer

import (
	"testing"

	"github.com/cwbudde/golox/internal/token"
)

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	l := New("(){},.-+;*!= == <= >= < > =/")
	toks := l.ScanTokens()

	want := []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LESS, token.GREATER, token.EQUAL, token.SLASH, token.EOF,
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d (%v)", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestScanTokensLineComment(t *testing.T) {
	l := New("var a = 1; // a comment\nvar b = 2;")
	toks := l.ScanTokens()

	lastVarLine := 0
	for _, tk := range toks {
		if tk.Kind == token.VAR {
			lastVarLine = tk.Line
		}
	}
	if lastVarLine != 2 {
		t.Errorf("expected second var on line 2, line tracking is broken (got %d)", lastVarLine)
	}
}

func TestScanTokensStringLiteral(t *testing.T) {
	l := New(`"hello world"`)
	toks := l.ScanTokens()
	if len(toks) != 2 || toks[0].Kind != token.STRING {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
	if toks[0].Literal != "hello world" {
		t.Errorf("literal = %q, want %q", toks[0].Literal, "hello world")
	}
}

func TestScanTokensMultilineString(t *testing.T) {
	l := New("\"a\nb\"")
	toks := l.ScanTokens()
	if toks[0].Literal != "a\nb" {
		t.Errorf("literal = %q", toks[0].Literal)
	}
}

func TestScanTokensUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	toks := l.ScanTokens()
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected only EOF, got %+v", toks)
	}
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Message != "Unterminated string." {
		t.Fatalf("expected unterminated string error, got %+v", errs)
	}
}

func TestScanTokensNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"123", 123},
		{"123.456", 123.456},
	}
	for _, tt := range tests {
		l := New(tt.input)
		toks := l.ScanTokens()
		if toks[0].Kind != token.NUMBER || toks[0].Literal != tt.want {
			t.Errorf("input %q: got %+v", tt.input, toks[0])
		}
	}
}

func TestScanTokensLeadingAndTrailingDotAreNotNumbers(t *testing.T) {
	l := New("123.")
	toks := l.ScanTokens()
	// "123." -> NUMBER(123) DOT EOF: the trailing dot is not part of the number.
	if toks[0].Kind != token.NUMBER || toks[0].Lexeme != "123" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Kind != token.DOT {
		t.Fatalf("expected DOT after trailing-dot number, got %+v", toks[1])
	}
}

func TestScanTokensIdentifiersAndKeywords(t *testing.T) {
	l := New("orchid or and2 class")
	toks := l.ScanTokens()
	want := []token.Kind{token.IDENTIFIER, token.OR, token.IDENTIFIER, token.CLASS, token.EOF}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s (%q)", i, toks[i].Kind, k, toks[i].Lexeme)
		}
	}
}

func TestScanTokensUnexpectedCharacterContinues(t *testing.T) {
	l := New("@#^")
	toks := l.ScanTokens()
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected scanning to continue past illegal chars, got %+v", toks)
	}
	if len(l.Errors()) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d: %+v", len(l.Errors()), l.Errors())
	}
}

func TestScanTokensAlwaysEndsInEOF(t *testing.T) {
	l := New("")
	toks := l.ScanTokens()
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("empty input should scan to a single EOF token, got %+v", toks)
	}
}
