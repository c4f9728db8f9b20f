package cst

import "luaprint/pkg/token"

// --- Statement records ---

// StatBlock is reserved for future block-level detail (e.g. stray
// semicolon positions between statements); empty today but kept so
// the Table's key shape doesn't need to change when one is added.
type StatBlock struct{}

// StatRepeat carries the `until` keyword position (spec.md §4.4 Repeat).
type StatRepeat struct {
	UntilPosition token.Position
}

// StatNumericFor carries the positions specific to
// `for i = from, to[, step] do`.
type StatNumericFor struct {
	AnnotationColonPosition PosPtr
	EqualsPosition          token.Position
	EndCommaPosition        token.Position
	StepCommaPosition       PosPtr
}

// StatGenericFor carries the positions specific to
// `for a, b in x, y do`.
type StatGenericFor struct {
	VarsAnnotationColonPositions []PosPtr
	VarsCommaPositions           []token.Position
	ValuesCommaPositions         []token.Position
}

// StatFunction carries the `function` keyword position for
// `function name.path() ... end`.
type StatFunction struct {
	FunctionKeywordPosition token.Position
}

// StatLocalFunction carries both keyword positions of
// `local function name() ... end`.
type StatLocalFunction struct {
	LocalKeywordPosition    token.Position
	FunctionKeywordPosition token.Position
}

// StatLocalDecl carries positions for `local a, b: T = v1, v2`.
type StatLocalDecl struct {
	VarsAnnotationColonPositions []PosPtr
	VarsCommaPositions           []token.Position
	ValuesCommaPositions         []token.Position
}

// StatAssign carries positions for `t1, t2 = v1, v2`.
type StatAssign struct {
	VarsCommaPositions   []token.Position
	EqualsPosition       token.Position
	ValuesCommaPositions []token.Position
}

// StatCompoundAssign carries the operator position for `target += value`.
type StatCompoundAssign struct {
	OpPosition token.Position
}

// StatReturn carries comma positions for `return a, b, c`.
type StatReturn struct {
	CommaPositions []token.Position
}

// StatTypeAlias carries positions for
// `[export] type Name<T = D> = Type`.
type StatTypeAlias struct {
	TypeKeywordPosition    token.Position
	GenericsOpenPosition   PosPtr
	GenericsCommaPositions []token.Position
	GenericsClosePosition  PosPtr
	EqualsPosition         token.Position
}

// StatTypeFunction carries both keyword positions of
// `[export] type function name() ... end`.
type StatTypeFunction struct {
	TypeKeywordPosition     token.Position
	FunctionKeywordPosition token.Position
}

// --- Expression records ---

// ExprFunction carries every optional bracket/comma/colon position
// in a function literal's header (spec.md §4.5).
type ExprFunction struct {
	FunctionKeywordPosition       token.Position
	OpenGenericsPosition          PosPtr
	GenericsCommaPositions        []token.Position
	CloseGenericsPosition         PosPtr
	ArgsAnnotationColonPositions  []PosPtr
	ArgsCommaPositions            []token.Position
	VarargAnnotationColonPosition PosPtr
	ReturnSpecifierPosition       PosPtr
}

// ExprTableItem carries per-item detail for a table literal (spec.md
// §4.3 Table literal): which separator followed it and where, and
// (for the `[key] = value` general form) the bracket positions.
type ExprTableItem struct {
	EqualsPosition       PosPtr
	SeparatorPosition    token.Position
	IndexerOpenPosition  PosPtr
	IndexerClosePosition PosPtr
}

// ExprTable carries one ExprTableItem per item of a table literal,
// in order.
type ExprTable struct {
	Items []ExprTableItem
}

// ExprIfElse carries the `then`/`else` (or `elseif`) keyword
// positions for an if-expression (spec.md §4.3 If-expression).
type ExprIfElse struct {
	ThenPosition token.Position
	ElsePosition token.Position
	IsElseIf     bool
}

// ExprInterpString carries the raw source text of each string
// fragment of an interpolated string (escapes undecoded), for
// verbatim round-tripping.
type ExprInterpString struct {
	SourceStrings   []string
	StringPositions []token.Position
}

// QuoteStyle enumerates how a string literal was spelled in source.
type QuoteStyle int

const (
	QuoteSingle QuoteStyle = iota
	QuoteDouble
	QuoteBacktick
	QuoteLongBracket
)

// ExprConstantNumber carries the exact source lexeme of a numeric
// literal, so it round-trips verbatim (hex, binary, digit
// separators, exponents) instead of being reconstructed from its
// decoded double value (spec.md §4.3 Constant number).
type ExprConstantNumber struct {
	SourceString string
}

// ExprConstantString carries the exact source text and quoting style
// of a string literal, so it can be reproduced verbatim rather than
// re-escaped from its decoded value (spec.md §4.3 Constant string).
type ExprConstantString struct {
	SourceString string
	QuoteStyle   QuoteStyle
	BlockDepth   int // number of `=` in a long-bracket string
}

// ExprTypeInstantiation carries the chevron and comma positions of an
// explicit call-site type instantiation `f::<T, U>(...)`
// (SPEC_FULL.md Supplemented Features, grounded on
// original_source/Analysis/src/Transpiler.cpp).
type ExprTypeInstantiation struct {
	LeftArrow1Position  token.Position
	LeftArrow2Position  token.Position
	RightArrow1Position token.Position
	RightArrow2Position token.Position
	CommaPositions      []token.Position
}

// ExprCall carries the paren and comma positions of a function call;
// a nil OpenParens/CloseParens means the source used sugared
// single-argument call syntax (a bare string or table literal
// argument with no parens), per spec.md §4.3 Call.
type ExprCall struct {
	OpenParens     PosPtr
	CloseParens    PosPtr
	CommaPositions []token.Position
	ExplicitTypes  *ExprTypeInstantiation
}

// ExprIndexExpr carries the bracket positions of `obj[key]`.
type ExprIndexExpr struct {
	OpenBracketPosition  token.Position
	CloseBracketPosition token.Position
}

// ExprTypeAssertion carries the `::` position of `expr :: Type`.
type ExprTypeAssertion struct {
	OpPosition token.Position
}

// ExprOp carries the operator position for a unary or binary
// expression, when source-exact spacing around it matters.
type ExprOp struct {
	OpPosition token.Position
}

// --- Type records ---

// TypeTypeof carries the paren positions of `typeof(expr)`.
type TypeTypeof struct {
	OpenPosition  token.Position
	ClosePosition token.Position
}

// TypeRef carries the optional prefix-dot position and, when the
// reference is parameterized, the chevron/comma positions.
type TypeRef struct {
	PrefixPointPosition      PosPtr
	OpenParametersPosition   PosPtr
	ParametersCommaPositions []token.Position
	CloseParametersPosition  PosPtr
}

// TypePackGeneric carries the `...` position of a generic type-pack
// reference `A...`.
type TypePackGeneric struct {
	EllipsisPosition token.Position
}

// TypePackExplicit carries the optional paren and comma positions of
// an explicit type pack `(T1, T2, ...Tail)`.
type TypePackExplicit struct {
	OpenParenthesesPosition  PosPtr
	CloseParenthesesPosition PosPtr
	CommaPositions           []token.Position
}

// TypeFunction carries every bracket/comma/colon/arrow position in a
// function-type annotation (spec.md §4.6).
type TypeFunction struct {
	OpenGenericsPosition       PosPtr
	GenericsCommaPositions     []token.Position
	CloseGenericsPosition      PosPtr
	OpenArgsPosition           token.Position
	ArgumentNameColonPositions []PosPtr
	ArgumentsCommaPositions    []token.Position
	CloseArgsPosition          token.Position
	ReturnArrowPosition        token.Position
}

// TypeUnion carries the leading `|` position (for a union written
// with a leading pipe) and the position of each separating `|`.
type TypeUnion struct {
	LeadingPosition    PosPtr
	SeparatorPositions []token.Position
}

// TypeIntersection is TypeUnion's `&` counterpart.
type TypeIntersection struct {
	LeadingPosition    PosPtr
	SeparatorPositions []token.Position
}

// TableTypeItemKind distinguishes the three table-type item shapes.
type TableTypeItemKind int

const (
	TableTypeProperty TableTypeItemKind = iota
	TableTypeStringProperty
	TableTypeIndexer
)

// TypeTableItem carries per-item detail for a table-type annotation
// (spec.md §4.6), including the string-literal key form promoted by
// SPEC_FULL.md's Supplemented Features.
type TypeTableItem struct {
	Kind                 TableTypeItemKind
	ColonPosition        PosPtr
	SeparatorPosition    PosPtr
	IndexerOpenPosition  PosPtr
	IndexerClosePosition PosPtr
	StringKey            *ExprConstantString
	EqualsPosition       PosPtr
}

// TypeTable carries one TypeTableItem per item of a table-type
// annotation, in order.
type TypeTable struct {
	Items []TypeTableItem
}

// TypeGenericType carries the `= default` equals position of a
// generic parameter declaration.
type TypeGenericType struct {
	DefaultEqualsPosition PosPtr
}

// TypeGenericTypePack carries the `...` and optional `= default`
// equals position of a generic-pack parameter declaration.
type TypeGenericTypePack struct {
	EllipsisPosition      token.Position
	DefaultEqualsPosition PosPtr
}

// TypeSingletonString carries the exact quoting of a type-level
// string singleton, the same way ExprConstantString does for
// expressions.
type TypeSingletonString struct {
	SourceString string
	QuoteStyle   QuoteStyle
	BlockDepth   int
}
