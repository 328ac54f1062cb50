package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LEFT_PAREN, "LEFT_PAREN"},
		{EOF, "EOF"},
		{IDENTIFIER, "IDENTIFIER"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTokenStringFormat(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"punctuation", New(LEFT_PAREN, "(", 1), "LEFT_PAREN ( null"},
		{"eof", New(EOF, "", 1), "EOF  null"},
		{
			"string literal",
			Token{Kind: STRING, Lexeme: `"foo"`, Literal: "foo", Line: 1},
			`STRING "foo" foo`,
		},
		{
			"integer literal",
			Token{Kind: NUMBER, Lexeme: "42", Literal: float64(42), Line: 1},
			"NUMBER 42 42.0",
		},
		{
			"fractional literal",
			Token{Kind: NUMBER, Lexeme: "3.14", Literal: 3.14, Line: 1},
			"NUMBER 3.14 3.14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeywordsCoverSpecSet(t *testing.T) {
	want := []string{
		"and", "class", "else", "false", "fun", "for", "if", "nil", "or",
		"print", "return", "super", "this", "true", "var", "while",
	}
	if len(Keywords) != len(want) {
		t.Fatalf("Keywords has %d entries, want %d", len(Keywords), len(want))
	}
	for _, w := range want {
		if _, ok := Keywords[w]; !ok {
			t.Errorf("Keywords missing %q", w)
		}
	}
}
