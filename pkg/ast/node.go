// Package ast defines the three tagged-variant node families spec.md
// §3.2 describes -- Expr, Stat, Type (plus TypePack) -- dispatched by
// type switch rather than virtual dispatch, following the "class-index
// RTTI with downcasts" -> "tagged variant + pattern match" translation
// spec.md §9 calls for. Nodes are allocated from an Arena (arena.go);
// a node's own pointer identity is what pkg/cst keys its side-table
// records on, per spec.md §9's "index into the parser's arena, or
// pointer when arenas are stable across the printer's lifetime".
package ast

import "luaprint/pkg/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	Loc() token.Location
	// nodeKind returns a short discriminator used only for panic
	// messages on the unknown-node-kind path (spec.md §7); it plays
	// no role in dispatch, which always uses a type switch.
	nodeKind() string
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stat is any statement node.
type Stat interface {
	Node
	statNode()
	// Semicolon reports whether this statement carried a trailing
	// semicolon in the source (spec.md §4.4).
	Semicolon() bool
	SetSemicolon(bool)
}

// Type is any type-annotation node (typed mode only).
type Type interface {
	Node
	typeNode()
}

// TypePack is any of the three type-pack variants (spec.md §3.2):
// variadic, generic, or explicit.
type TypePack interface {
	Node
	typePackNode()
}

// base carries the fields common to every node: its source span.
type base struct {
	Location token.Location
}

func (b *base) Loc() token.Location { return b.Location }

// baseStat adds the trailing-semicolon flag every statement carries.
type baseStat struct {
	base
	HasSemicolon bool
}

func (b *baseStat) statNode()                {}
func (b *baseStat) Semicolon() bool          { return b.HasSemicolon }
func (b *baseStat) SetSemicolon(v bool)      { b.HasSemicolon = v }

// GenericType is a single entry in a `<T, U = default>` generics list.
type GenericType struct {
	base
	Name    string
	Default Type // nil if no default
}

func (g *GenericType) nodeKind() string { return "GenericType" }

// GenericTypePack is a single entry in a `<T...>` generic-pack list.
type GenericTypePack struct {
	base
	Name    string
	Default TypePack // nil if no default
}

func (g *GenericTypePack) nodeKind() string { return "GenericTypePack" }

// Local is a name optionally annotated with a type, as used in
// local-declaration, numeric-for, generic-for, and function
// parameter lists.
type Local struct {
	base
	Name       string
	Annotation Type // nil unless typed mode supplied one
}

func (l *Local) nodeKind() string { return "Local" }
