package ast

type baseType struct{ base }

func (b *baseType) typeNode() {}

// TypeOrPack holds one entry of a TypeRefType's parameter list, which
// per spec.md §3.2 may mix plain types and type packs.
type TypeOrPack struct {
	Type Type     // set when this parameter is a plain type
	Pack TypePack // set when this parameter is a type pack
}

// TypeRefType is `[prefix.]Name[<params>]`.
type TypeRefType struct {
	baseType
	Prefix *string
	Name   string
	Params []TypeOrPack
}

func (n *TypeRefType) nodeKind() string { return "TypeRefType" }

// FuncArg is one parameter of a FunctionType, optionally named
// (spec.md §4.6 Function-type).
type FuncArg struct {
	Name *string
	Type Type
}

// FunctionTypeType is `<Generics>(args) -> returns`.
type FunctionTypeType struct {
	baseType
	Generics     []*GenericType
	GenericPacks []*GenericTypePack
	Args         []FuncArg
	Vararg       TypePack // nil unless the arg list ends in `...`
	Returns      TypePack
}

func (n *FunctionTypeType) nodeKind() string { return "FunctionTypeType" }

// TableTypeProp is a named property of a TableType.
type TableTypeProp struct {
	Name   string
	Access AccessKind
	Value  Type
	// Separator is the delimiter following this item in source
	// (spec.md §4.6); HasSep is false for a final item without one.
	Separator Separator
	HasSep    bool
}

// TableTypeIndexer is the `[K]: V` indexer signature of a TableType.
type TableTypeIndexer struct {
	Key   Type
	Value Type
}

// TableTypeType is `{ props..., [indexer] }`, or its array shorthand
// `{ T }` when it has exactly one number-keyed indexer and no named
// properties (spec.md §3.2 invariant, §4.6).
type TableTypeType struct {
	baseType
	Props   []TableTypeProp
	Indexer *TableTypeIndexer // nil when absent
}

func (n *TableTypeType) nodeKind() string { return "TableTypeType" }

// IsArrayShorthand reports whether this table type must render as
// `{ T }` rather than the general brace form.
func (n *TableTypeType) IsArrayShorthand() bool {
	if len(n.Props) != 0 || n.Indexer == nil {
		return false
	}
	ref, ok := n.Indexer.Key.(*TypeRefType)
	return ok && ref.Prefix == nil && ref.Name == "number" && len(ref.Params) == 0
}

// TypeofType is `typeof(expr)`.
type TypeofType struct {
	baseType
	Expr Expr
}

func (n *TypeofType) nodeKind() string { return "TypeofType" }

// UnionType is `A | B | ...` (at least two members, spec.md §3.2
// invariant).
type UnionType struct {
	baseType
	Types []Type
}

func (n *UnionType) nodeKind() string { return "UnionType" }

// IntersectionType is `A & B & ...` (at least two members).
type IntersectionType struct {
	baseType
	Types []Type
}

func (n *IntersectionType) nodeKind() string { return "IntersectionType" }

// SingletonBoolType is the type-level literal `true` or `false`.
type SingletonBoolType struct {
	baseType
	Value bool
}

func (n *SingletonBoolType) nodeKind() string { return "SingletonBoolType" }

// SingletonStringType is a type-level string literal.
type SingletonStringType struct {
	baseType
	Value string
}

func (n *SingletonStringType) nodeKind() string { return "SingletonStringType" }

// ErrorType is a parser-recovery placeholder printed as
// `%error-type%` (spec.md §4.6, §9(b)); must never appear for
// cleanly-parsed input.
type ErrorType struct {
	baseType
	Message string
}

func (n *ErrorType) nodeKind() string { return "ErrorType" }

// --- Type packs ---

type baseTypePack struct{ base }

func (b *baseTypePack) typePackNode() {}

// VariadicPack is `T...` used as a function's variadic return/arg pack.
type VariadicPack struct {
	baseTypePack
	Element Type
}

func (n *VariadicPack) nodeKind() string { return "VariadicPack" }

// GenericTypePackRef is a reference to a generic pack parameter,
// e.g. the `A...` in `<A...>(...): A...`.
type GenericTypePackRef struct {
	baseTypePack
	Name string
}

func (n *GenericTypePackRef) nodeKind() string { return "GenericTypePackRef" }

// ExplicitPack is `(T1, T2, ...Tail)`.
type ExplicitPack struct {
	baseTypePack
	Types []Type
	Tail  TypePack // nil when there is no variadic/generic tail
}

func (n *ExplicitPack) nodeKind() string { return "ExplicitPack" }
