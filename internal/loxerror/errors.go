// Package loxerror formats the diagnostics produced by every phase of the
// pipeline into the exact wire formats the CLI and REPL are required to
// print, and carries the two error kinds: StaticError for scan, parse and
// resolve failures, and RuntimeError for the failures the evaluator raises.
package loxerror

import (
	"fmt"

	"github.com/cwbudde/golox/internal/token"
)

// StaticError is a scan, parse, or resolve failure: it is always reported
// (never thrown), and its presence anywhere in a run means evaluation must
// not start.
type StaticError struct {
	Message string
	Line    int
	// Where is appended to the "Error" word, e.g. " at 'foo'" or " at end".
	// Empty for errors with no specific token (e.g. scan errors).
	Where string
}

// Error implements the error interface.
func (e *StaticError) Error() string {
	return e.Format()
}

// Format renders the compile-error wire format: "[line N] Error<where>: <message>".
func (e *StaticError) Format() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// NewScanError builds a StaticError with no token context, as produced by
// the scanner (which has no parser cursor to blame).
func NewScanError(line int, message string) *StaticError {
	return &StaticError{Line: line, Message: message}
}

// NewTokenError builds a StaticError anchored on a specific token, as
// produced by the parser and resolver. EOF tokens report "at end"; every
// other token reports "at '<lexeme>'".
func NewTokenError(tok token.Token, message string) *StaticError {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	return &StaticError{Line: tok.Line, Message: message, Where: where}
}

// RuntimeError is an evaluation failure. It unwinds the interpreter back to
// the top-level driver, which reports it and exits 70. It carries the
// offending token so the driver can print the failing line.
type RuntimeError struct {
	Token   token.Token
	Message string
}

// Error implements the error interface. Error() is the plain message; the
// driver is responsible for appending the "[line N]" suffix via Format, to
// keep the two parts independently testable.
func (e *RuntimeError) Error() string {
	return e.Message
}

// Format renders the runtime-error wire format: "<message>\n[line N]".
func (e *RuntimeError) Format() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// NewRuntimeError builds a RuntimeError anchored on the token responsible
// for the failing operation (e.g. the operator token for a type error).
func NewRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
