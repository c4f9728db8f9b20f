// Package escape holds the numeric/string utilities spec.md §1 calls
// out as an external collaborator ("OUT OF SCOPE: the
// numerical/string utilities (escape)"). It is deliberately small:
// the printer core depends on it at the interface described in
// spec.md §4.1/§4.3, but none of its own logic belongs to the core.
package escape

import (
	"math"
	"strconv"
	"strings"
)

// DecodeShortString decodes the backslash-escaped payload of a
// '...' or "..." short string (the lexer leaves escapes intact in
// the raw token text; decoding happens here, once, at parse time) --
// the inverse of QuoteShortString/quoteEscapes below.
func DecodeShortString(raw string) []byte {
	var b []byte
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i+1 >= len(runes) {
			b = append(b, []byte(string(r))...)
			continue
		}
		i++
		esc := runes[i]
		switch esc {
		case 'n':
			b = append(b, '\n')
		case 'r':
			b = append(b, '\r')
		case 't':
			b = append(b, '\t')
		case 'a':
			b = append(b, '\a')
		case 'b':
			b = append(b, '\b')
		case 'f':
			b = append(b, '\f')
		case 'v':
			b = append(b, '\v')
		case '\\', '\'', '"':
			b = append(b, byte(esc))
		case 'z':
			for i+1 < len(runes) && isSpaceRune(runes[i+1]) {
				i++
			}
		case 'x':
			if i+2 < len(runes) {
				if v, err := strconv.ParseUint(string(runes[i+1:i+3]), 16, 8); err == nil {
					b = append(b, byte(v))
					i += 2
				}
			}
		default:
			if esc >= '0' && esc <= '9' {
				j := i
				for j < len(runes) && j < i+3 && runes[j] >= '0' && runes[j] <= '9' {
					j++
				}
				if v, err := strconv.ParseUint(string(runes[i:j]), 10, 32); err == nil {
					b = append(b, byte(v))
				}
				i = j - 1
			} else {
				b = append(b, []byte(string(esc))...)
			}
		}
	}
	return b
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// DecodeInterpFragment decodes one raw fragment of an interpolated
// string -- the inverse of EscapeInterpolated below.
func DecodeInterpFragment(raw string) string {
	var b strings.Builder
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i+1 >= len(runes) {
			b.WriteRune(r)
			continue
		}
		i++
		esc := runes[i]
		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '`', '{', '}', '\\':
			b.WriteRune(esc)
		default:
			b.WriteRune(esc)
		}
	}
	return b.String()
}

// IsIntegerish reports whether d renders as a plain decimal integer
// rather than through the %.17g fallback: d must fit in an int32, the
// round trip through int must reproduce d exactly, and d must not be
// negative zero (spec.md §4.3, §8, §9, GLOSSARY "Integer-ish").
func IsIntegerish(d float64) bool {
	if d == 0 {
		return !math.Signbit(d)
	}
	if d < math.MinInt32 || d > math.MaxInt32 {
		return false
	}
	i := int32(d)
	return float64(i) == d
}

// FormatNumber reconstructs the source spelling of a numeric literal
// that has no CST-recorded raw lexeme, per spec.md §4.3:
//
//	+Inf  -> "1e500"
//	-Inf  -> "-1e500"
//	NaN   -> "0/0"
//	integer-ish -> decimal integer
//	otherwise   -> %.17g
func FormatNumber(d float64) string {
	switch {
	case math.IsInf(d, 1):
		return "1e500"
	case math.IsInf(d, -1):
		return "-1e500"
	case math.IsNaN(d):
		return "0/0"
	case IsIntegerish(d):
		return strconv.FormatInt(int64(int32(d)), 10)
	default:
		return strconv.FormatFloat(d, 'g', 17, 64)
	}
}

// quoteEscapes maps a rune to its short-string escape sequence,
// grounded on paserati/pkg/lexer.go's inverse (string-literal
// scanning) and daios-ai-msg/printer.go's quoteString switch.
func quoteEscapes(r rune) (string, bool) {
	switch r {
	case '\\':
		return `\\`, true
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	case '\a':
		return `\a`, true
	case '\b':
		return `\b`, true
	case '\f':
		return `\f`, true
	case '\v':
		return `\v`, true
	case 0:
		return `\0`, true
	}
	return "", false
}

// QuoteShortString emits a conventionally escaped short string per
// spec.md §4.1 `string(s)`: single-quoted by default, switching to
// double quotes if the payload contains a single quote (and no
// double quote, to avoid escaping both needlessly).
func QuoteShortString(s string) string {
	hasSingle := strings.ContainsRune(s, '\'')
	hasDouble := strings.ContainsRune(s, '"')
	quote := byte('\'')
	if hasSingle && !hasDouble {
		quote = '"'
	}

	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		if esc, ok := quoteEscapes(r); ok {
			b.WriteString(esc)
			continue
		}
		if byte(r) == quote {
			b.WriteByte('\\')
			b.WriteRune(r)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte(quote)
	return b.String()
}

// EscapeInterpolated escapes a fragment of an interpolated string
// per spec.md §4.3: backtick, `{`, `}`, backslash, and control
// characters are escaped; everything else passes through verbatim.
func EscapeInterpolated(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '`', '{', '}', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			if esc, ok := quoteEscapes(r); ok {
				b.WriteString(esc)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LongBracketDelims returns the open/close delimiters for a
// long-bracket string of the given equals-sign depth, per spec.md
// §6: `[` `=`×depth `[` ... `]` `=`×depth `]`.
func LongBracketDelims(depth int) (open, close string) {
	eq := strings.Repeat("=", depth)
	return "[" + eq + "[", "]" + eq + "]"
}

// MinLongBracketDepth computes the smallest equals-sign depth at
// which payload round-trips safely -- i.e. payload contains no
// `]` + eq-run-of-this-depth + `]` substring that would prematurely
// close the bracket. spec.md §8 requires depth 2 to suffice when the
// payload merely contains `]]` (depth-1 sequence); this generalizes
// to arbitrary payloads by scanning upward from a starting depth.
func MinLongBracketDepth(payload string, start int) int {
	depth := start
	for {
		_, close := LongBracketDelims(depth)
		if !strings.Contains(payload, close) {
			return depth
		}
		depth++
	}
}
