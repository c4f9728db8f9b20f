package lexer

import (
	"testing"

	"luaprint/pkg/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `local x = 5 + 10.5
if x >= 10 then
    return x
end -- trailing comment`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LOCAL, "local"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.NUMBER, "5"},
		{token.PLUS, "+"},
		{token.NUMBER, "10.5"},
		{token.IF, "if"},
		{token.IDENT, "x"},
		{token.GE, ">="},
		{token.NUMBER, "10"},
		{token.THEN, "then"},
		{token.RETURN, "return"},
		{token.IDENT, "x"},
		{token.END, "end"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("token %d: type = %v, want %v (literal %q)", i, tok.Type, tt.expectedType, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.expectedLiteral)
		}
	}
}

func TestNextTokenPositionsAreZeroBased(t *testing.T) {
	l := New("x\ny")
	first := l.NextToken()
	if first.Pos.Line != 0 || first.Pos.Column != 0 {
		t.Fatalf("first token pos = %v, want (0,0)", first.Pos)
	}
	second := l.NextToken()
	if second.Pos.Line != 1 || second.Pos.Column != 0 {
		t.Fatalf("second token pos = %v, want (1,0)", second.Pos)
	}
}

func TestNextTokenLongBracketString(t *testing.T) {
	l := New(`[==[hello]] world]==]`)
	tok := l.NextToken()
	if tok.Type != token.LONGSTRING {
		t.Fatalf("type = %v, want LONGSTRING", tok.Type)
	}
	if tok.Literal != "hello]] world" {
		t.Fatalf("literal = %q, want %q", tok.Literal, "hello]] world")
	}
	if tok.Aux != 2 {
		t.Fatalf("Aux (depth) = %v, want 2", tok.Aux)
	}
}

func TestNextTokenCompoundAssignOperators(t *testing.T) {
	tests := []struct {
		src  string
		want token.Type
	}{
		{"+=", token.PLUS_ASSIGN},
		{"-=", token.MINUS_ASSIGN},
		{"*=", token.STAR_ASSIGN},
		{"/=", token.SLASH_ASSIGN},
		{"//=", token.DSLASH_ASSIGN},
		{"%=", token.PERCENT_ASSIGN},
		{"^=", token.CARET_ASSIGN},
		{"..=", token.CONCAT_ASSIGN},
		{"::", token.DCOLON},
		{"->", token.ARROW},
		{"?", token.QUESTION},
	}
	for _, tt := range tests {
		l := New(tt.src)
		tok := l.NextToken()
		if tok.Type != tt.want {
			t.Errorf("NextToken(%q) = %v, want %v", tt.src, tok.Type, tt.want)
		}
	}
}

func TestNextTokenInterpolatedString(t *testing.T) {
	l := New("`a{b}c`")
	begin := l.NextToken()
	if begin.Type != token.INTERP_BEGIN || begin.Literal != "a" {
		t.Fatalf("begin = %+v", begin)
	}
	ident := l.NextToken()
	if ident.Type != token.IDENT || ident.Literal != "b" {
		t.Fatalf("ident = %+v", ident)
	}
	end := l.NextToken()
	if end.Type != token.INTERP_END || end.Literal != "c" {
		t.Fatalf("end = %+v", end)
	}
}

func TestNextTokenSkipsLineComments(t *testing.T) {
	l := New("-- a comment\nlocal")
	tok := l.NextToken()
	if tok.Type != token.LOCAL {
		t.Fatalf("type = %v, want LOCAL", tok.Type)
	}
}
