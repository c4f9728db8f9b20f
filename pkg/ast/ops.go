package ast

// UnOp enumerates unary operators.
type UnOp int

const (
	UnaryNot UnOp = iota
	UnaryMinus
	UnaryLen
)

// BinOp enumerates binary operators. Keyword-form operators (and, or,
// .., ==, ~=, <=, >=) vs. symbol-form (arithmetic, ordering) are
// distinguished by the printer (spec.md §4.3 Binary), not here.
type BinOp int

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinFloorDiv
	BinMod
	BinPow
	BinConcat
	BinEq
	BinNeq
	BinLt
	BinLe
	BinGt
	BinGe
	BinAnd
	BinOr
)

// CompoundOp enumerates compound-assignment operators.
type CompoundOp int

const (
	CompoundAdd CompoundOp = iota
	CompoundSub
	CompoundMul
	CompoundDiv
	CompoundFloorDiv
	CompoundMod
	CompoundPow
	CompoundConcat
)

// IndexOp distinguishes `.` from `:` in an index-by-name expression.
type IndexOp byte

const (
	IndexDot   IndexOp = '.'
	IndexColon IndexOp = ':'
)

// AccessKind distinguishes read/write/read-write access on a
// table-type property (spec.md §4.6). ReadWrite is the implicit
// default and never prints a keyword.
type AccessKind int

const (
	AccessReadWrite AccessKind = iota
	AccessRead
	AccessWrite
)

// TableItemKind distinguishes the three table-literal item shapes
// (spec.md §3.2 table literal).
type TableItemKind int

const (
	TableItemList TableItemKind = iota
	TableItemRecord
	TableItemGeneral
)

// Separator is the delimiter used between table-literal items.
type Separator byte

const (
	SepComma     Separator = ','
	SepSemicolon Separator = ';'
)
