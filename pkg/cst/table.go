// Package cst defines the concrete-syntax side-table: optional
// lexical detail (punctuator positions, quote styles, numeric
// lexemes, separator kinds...) keyed by AST node identity, read-only
// from the printer's point of view (spec.md §3.3). The per-kind
// record shapes below are grounded closely on
// other_examples/Heliodex-coputer__cst.go, an independent Go port of
// Luau's own Ast/include/Luau/Cst.h, rewired onto this module's
// pkg/ast node types instead of that port's Lua AST.
package cst

import "luaprint/pkg/token"

// Table is the non-owning association from AST-node identity to an
// optional CST record (spec.md §3.3, §9: "Never embed CST
// back-pointers in AST nodes"). The zero value (nil map) behaves as
// an always-empty table so the printer can tolerate its total
// absence, per spec.md §3.3's "the printer must tolerate their
// absence" requirement.
type Table struct {
	records map[any]any
}

// NewTable creates an empty, ready-to-use side-table.
func NewTable() *Table {
	return &Table{records: make(map[any]any)}
}

// Set records cst for the given AST node pointer. node must be a
// pointer to one of the ast package's node types; rec must be one of
// the record types in this package.
func (t *Table) Set(node any, rec any) {
	if t == nil {
		return
	}
	if t.records == nil {
		t.records = make(map[any]any)
	}
	t.records[node] = rec
}

// Get looks up the CST record for node, type-asserting it to T. It
// is nil-safe: a nil *Table, or a node with no recorded entry, or an
// entry of a different record type, all report ok == false.
func Get[T any](t *Table, node any) (T, bool) {
	var zero T
	if t == nil || t.records == nil {
		return zero, false
	}
	v, ok := t.records[node]
	if !ok {
		return zero, false
	}
	rec, ok := v.(T)
	return rec, ok
}

// PosPtr is a convenience for the many optional-position fields below
// (a position that may simply be absent from the source, e.g. no
// parens around a call).
type PosPtr = *token.Position
