package ast

import (
	"testing"

	"luaprint/pkg/token"
)

func TestBaseStatSemicolonFlag(t *testing.T) {
	n := &BreakStat{}
	if n.Semicolon() {
		t.Fatalf("expected a fresh statement to default to no trailing semicolon")
	}
	n.SetSemicolon(true)
	if !n.Semicolon() {
		t.Fatalf("expected SetSemicolon(true) to stick")
	}
}

func TestBaseLoc(t *testing.T) {
	loc := token.Location{
		Begin: token.Position{Line: 1, Column: 0},
		End:   token.Position{Line: 1, Column: 5},
	}
	n := &Local{base: base{Location: loc}, Name: "x"}
	if n.Loc() != loc {
		t.Fatalf("got %v, want %v", n.Loc(), loc)
	}
}
