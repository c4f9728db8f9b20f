package token

import "testing"

func TestPositionBeforeAfter(t *testing.T) {
	a := Position{Line: 1, Column: 5}
	b := Position{Line: 1, Column: 10}
	c := Position{Line: 2, Column: 0}

	if !a.Before(b) {
		t.Fatalf("expected %v before %v", a, b)
	}
	if !b.After(a) {
		t.Fatalf("expected %v after %v", b, a)
	}
	if !b.Before(c) {
		t.Fatalf("expected %v before %v (earlier line wins)", b, c)
	}
	if a.Before(a) {
		t.Fatalf("a position is never before itself")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 2, Column: 4}
	if got := p.String(); got != "2,4" {
		t.Fatalf("got %q, want %q", got, "2,4")
	}
}

func TestLocationString(t *testing.T) {
	loc := Location{Begin: Position{Line: 0, Column: 0}, End: Position{Line: 1, Column: 3}}
	if got := loc.String(); got != "0,0-1,3" {
		t.Fatalf("got %q, want %q", got, "0,0-1,3")
	}
}
