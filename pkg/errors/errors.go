// Package errors defines the typed error values the lexer, parser,
// and printer core raise. It mirrors the shape of paserati's
// pkg/errors (a small interface plus concrete kinds implementing it,
// with a DisplayErrors pretty-printer), narrowed to what spec.md §7
// actually names: a syntax error surfaced verbatim from the parser,
// and an internal error for the two programmer-error conditions the
// printer can hit.
package errors

import (
	"fmt"
	"os"
	"strings"

	"luaprint/pkg/token"
)

// Error is the interface implemented by every error this module raises.
type Error interface {
	error
	Location() token.Location
	Kind() string
	Message() string
}

// SyntaxError is raised by the lexer or parser at a specific span.
type SyntaxError struct {
	Loc token.Location
	Msg string
}

func NewSyntaxError(loc token.Location, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error at %s: %s", e.Loc.Begin, e.Msg)
}
func (e *SyntaxError) Location() token.Location { return e.Loc }
func (e *SyntaxError) Kind() string             { return "Syntax" }
func (e *SyntaxError) Message() string          { return e.Msg }

// InternalError represents the two internal-error conditions spec.md
// §7 names: reaching an unrecognized node kind (a programmer error,
// unreachable under a valid parser -- the printer panics for that
// case rather than returning one of these, per spec.md §7) and an
// empty parse tree with no reported errors.
type InternalError struct {
	Msg string
}

func NewInternalError(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}

func (e *InternalError) Error() string           { return e.Msg }
func (e *InternalError) Location() token.Location { return token.Location{} }
func (e *InternalError) Kind() string             { return "Internal" }
func (e *InternalError) Message() string          { return e.Msg }

// ErrEmptyTree is the specific InternalError spec.md §7 requires when
// parsing produced no errors but also no root block.
var ErrEmptyTree = NewInternalError("internal error: parser yielded empty parse tree")

// Display prints a list of errors to stderr in a user-friendly
// format, including the offending source line and a caret marker,
// the way paserati/pkg/errors.DisplayErrors does.
func Display(src string, errs []Error) {
	if len(errs) == 0 {
		return
	}
	lines := strings.Split(src, "\n")
	for _, err := range errs {
		loc := err.Location()
		lineIdx := loc.Begin.Line
		if lineIdx < 0 || lineIdx >= len(lines) {
			fmt.Fprintf(os.Stderr, "%s Error: %s\n", err.Kind(), err.Message())
			continue
		}
		sourceLine := strings.TrimRight(lines[lineIdx], "\r\n\t ")
		fmt.Fprintf(os.Stderr, "%s Error at %d:%d: %s\n", err.Kind(), loc.Begin.Line, loc.Begin.Column, err.Message())
		fmt.Fprintf(os.Stderr, "  %s\n", sourceLine)
		fmt.Fprintf(os.Stderr, "  %s^\n", strings.Repeat(" ", loc.Begin.Column))
		fmt.Fprintln(os.Stderr)
	}
}
