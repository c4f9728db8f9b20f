package cst

import (
	"testing"

	"luaprint/pkg/token"
)

type dummyNode struct{}

func TestTableSetGetRoundTrips(t *testing.T) {
	tab := NewTable()
	n := &dummyNode{}
	rec := StatRepeat{UntilPosition: token.Position{Line: 3, Column: 1}}
	tab.Set(n, rec)

	got, ok := Get[StatRepeat](tab, n)
	if !ok {
		t.Fatalf("expected record to be present")
	}
	if got.UntilPosition != rec.UntilPosition {
		t.Fatalf("got %+v, want %+v", got, rec)
	}
}

func TestTableGetMissingNodeReportsFalse(t *testing.T) {
	tab := NewTable()
	_, ok := Get[StatRepeat](tab, &dummyNode{})
	if ok {
		t.Fatalf("expected absent record to report ok == false")
	}
}

func TestTableGetWrongTypeReportsFalse(t *testing.T) {
	tab := NewTable()
	n := &dummyNode{}
	tab.Set(n, StatRepeat{})
	_, ok := Get[StatFunction](tab, n)
	if ok {
		t.Fatalf("expected type-mismatched lookup to report ok == false")
	}
}

func TestNilTableIsAlwaysEmpty(t *testing.T) {
	var tab *Table
	_, ok := Get[StatRepeat](tab, &dummyNode{})
	if ok {
		t.Fatalf("expected nil table to report every lookup as absent")
	}
	// Set on a nil table must not panic.
	tab.Set(&dummyNode{}, StatRepeat{})
}
