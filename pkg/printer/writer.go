// Package printer implements the position-threaded pretty-printer:
// the traversal that consumes an AST plus its optional CST side-table
// and emits source text, tracking an output cursor and honoring
// recorded lexical positions of every punctuator, keyword, separator,
// bracket, and literal form it finds.
//
// Structurally this generalizes paserati/pkg/parser/jsemitter.go's
// buffer-plus-type-switch emitter shape from one-way JS codegen to a
// cursor-aware writer that can reproduce arbitrary recorded source
// positions, with a second data point on column bookkeeping taken
// from daios-ai-msg/printer.go and spans.go.
package printer

import (
	"strings"

	"luaprint/pkg/cst"
	"luaprint/pkg/escape"
	"luaprint/pkg/token"
)

// Writer is the abstract output sink: a character sink with
// cursor-aware primitives, every one of which keeps the sink's
// virtual (line, column) cursor and last-emitted-character state
// consistent by construction.
type Writer interface {
	// Advance moves the cursor forward to target, emitting newlines
	// then padding spaces as needed. It never rewinds: once the
	// cursor has passed a position, advancing to an earlier one is a
	// no-op.
	Advance(target token.Position)
	Newline()
	Space()
	// MaybeSpace emits one space if the cursor, plus reserve columns
	// of look-ahead, would not otherwise reach target's column --
	// used to guarantee a minimum separator when no exact position
	// is recorded.
	MaybeSpace(target token.Position, reserve int)
	// Write emits s verbatim, updating the cursor from any embedded
	// newlines.
	Write(s string)
	// Identifier writes s, first inserting a space if the
	// last-emitted character would otherwise fuse with it into a
	// single identifier.
	Identifier(s string)
	// Keyword follows the same adjacency rule as Identifier.
	Keyword(s string)
	// Symbol writes s as-is, except that DigitDotSpacing (an Options
	// setting, spec.md §9 open question (a)) may insert a space
	// before a `.` that would otherwise fuse with a preceding digit. A
	// space is always inserted between two adjacent `-`, which would
	// otherwise fuse into a `--` comment starter.
	Symbol(s string, digitDotSpacing bool)
	// Literal writes s, first inserting a space if the last-emitted
	// character is an identifier character and s begins with a digit.
	Literal(s string)
	// QuoteString emits a conventionally escaped short string:
	// single-quoted by default, double-quoted if the payload contains
	// a single quote.
	QuoteString(s string)
	// SourceString emits a string in an exact recorded style.
	SourceString(s string, style cst.QuoteStyle, depth int)
	Cursor() token.Position
	Output() string
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

// StringWriter is the concrete Writer backed by an accumulating text
// buffer.
type StringWriter struct {
	buf     strings.Builder
	cursor  token.Position
	lastCh  byte
	hasLast bool
}

// NewStringWriter creates a StringWriter whose cursor starts at start
// (spec.md §4.7's "initialize the writer cursor to node.location.begin").
func NewStringWriter(start token.Position) *StringWriter {
	return &StringWriter{cursor: start}
}

func (w *StringWriter) Cursor() token.Position { return w.cursor }
func (w *StringWriter) Output() string         { return w.buf.String() }

func (w *StringWriter) Advance(target token.Position) {
	if target.Line > w.cursor.Line {
		for n := target.Line - w.cursor.Line; n > 0; n-- {
			w.rawWrite("\n")
		}
		w.cursor.Line = target.Line
		w.cursor.Column = 0
		w.hasLast = false
	}
	if target.Column > w.cursor.Column {
		w.rawWrite(strings.Repeat(" ", target.Column-w.cursor.Column))
	}
}

func (w *StringWriter) Newline() {
	w.rawWrite("\n")
	w.cursor.Line++
	w.cursor.Column = 0
	w.hasLast = false
}

func (w *StringWriter) Space() {
	w.rawWrite(" ")
}

func (w *StringWriter) MaybeSpace(target token.Position, reserve int) {
	if w.cursor.Line == target.Line && w.cursor.Column+reserve < target.Column {
		w.Space()
	}
}

// rawWrite is the single primitive every other emitter routes
// through, so cursor and last-character bookkeeping lives in one
// place (spec.md §9's "encapsulate last-emitted-character state in
// the Writer").
func (w *StringWriter) rawWrite(s string) {
	if s == "" {
		return
	}
	w.buf.WriteString(s)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			w.cursor.Line++
			w.cursor.Column = 0
		} else {
			w.cursor.Column++
		}
	}
	w.lastCh = s[len(s)-1]
	w.hasLast = true
}

func (w *StringWriter) Write(s string) { w.rawWrite(s) }

func (w *StringWriter) Identifier(s string) {
	if w.hasLast && isIdentByte(w.lastCh) {
		w.Space()
	}
	w.rawWrite(s)
}

func (w *StringWriter) Keyword(s string) { w.Identifier(s) }

func (w *StringWriter) Symbol(s string, digitDotSpacing bool) {
	if digitDotSpacing && len(s) > 0 && s[0] == '.' && w.hasLast && isDigitByte(w.lastCh) {
		w.Space()
	}
	// A `-` immediately following another `-` would fuse into `--`,
	// the line-comment starter, silently swallowing the rest of the
	// line on re-parse -- guard against that regardless of which
	// printer case produced the two adjacent minus signs.
	if len(s) > 0 && s[0] == '-' && w.hasLast && w.lastCh == '-' {
		w.Space()
	}
	w.rawWrite(s)
}

func (w *StringWriter) Literal(s string) {
	if w.hasLast && isIdentByte(w.lastCh) && len(s) > 0 && isDigitByte(s[0]) {
		w.Space()
	}
	w.rawWrite(s)
}

func (w *StringWriter) QuoteString(s string) {
	w.rawWrite(escape.QuoteShortString(s))
}

func (w *StringWriter) SourceString(s string, style cst.QuoteStyle, depth int) {
	switch style {
	case cst.QuoteDouble:
		w.rawWrite(`"` + s + `"`)
	case cst.QuoteBacktick:
		w.rawWrite("`" + s + "`")
	case cst.QuoteLongBracket:
		open, close := escape.LongBracketDelims(depth)
		w.rawWrite(open)
		w.rawWrite(s)
		w.rawWrite(close)
	default:
		w.rawWrite("'" + s + "'")
	}
}
