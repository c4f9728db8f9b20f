package ast

// BlockStat is a sequence of statements, used as a function body,
// loop body, if/else branch body, and the program root.
type BlockStat struct {
	baseStat
	Body []Stat
}

func (n *BlockStat) nodeKind() string { return "BlockStat" }

// IfStat is `if cond then ... (elseif ... then ...)* (else ...)? end`.
// ElseBody is either another *IfStat (an elseif chain link), a
// *BlockStat (a terminal else), or nil (no else at all) -- matching
// spec.md §4.4's recursive elseif-chain description.
type IfStat struct {
	baseStat
	Condition Expr
	ThenBody  *BlockStat
	ElseBody  Stat
}

func (n *IfStat) nodeKind() string { return "IfStat" }

// WhileStat is `while cond do ... end`.
type WhileStat struct {
	baseStat
	Condition Expr
	Body      *BlockStat
}

func (n *WhileStat) nodeKind() string { return "WhileStat" }

// RepeatStat is `repeat ... until cond`.
type RepeatStat struct {
	baseStat
	Body      *BlockStat
	Condition Expr
}

func (n *RepeatStat) nodeKind() string { return "RepeatStat" }

// BreakStat is `break`.
type BreakStat struct{ baseStat }

func (n *BreakStat) nodeKind() string { return "BreakStat" }

// ContinueStat is `continue`.
type ContinueStat struct{ baseStat }

func (n *ContinueStat) nodeKind() string { return "ContinueStat" }

// ReturnStat is `return expr, expr, ...`.
type ReturnStat struct {
	baseStat
	Values []Expr
}

func (n *ReturnStat) nodeKind() string { return "ReturnStat" }

// ExpressionStat wraps a bare expression used as a statement (almost
// always a call).
type ExpressionStat struct {
	baseStat
	Expr Expr
}

func (n *ExpressionStat) nodeKind() string { return "ExpressionStat" }

// LocalDeclStat is `local a, b: T = v1, v2`.
type LocalDeclStat struct {
	baseStat
	Vars   []*Local
	Values []Expr
}

func (n *LocalDeclStat) nodeKind() string { return "LocalDeclStat" }

// NumericForStat is `for i = from, to[, step] do ... end`.
type NumericForStat struct {
	baseStat
	Var  *Local
	From Expr
	To   Expr
	Step Expr // nil when omitted
	Body *BlockStat
}

func (n *NumericForStat) nodeKind() string { return "NumericForStat" }

// GenericForStat is `for a, b in it1, it2 do ... end`.
type GenericForStat struct {
	baseStat
	Vars      []*Local
	Iterators []Expr
	Body      *BlockStat
}

func (n *GenericForStat) nodeKind() string { return "GenericForStat" }

// AssignStat is `t1, t2 = v1, v2`.
type AssignStat struct {
	baseStat
	Targets []Expr
	Values  []Expr
}

func (n *AssignStat) nodeKind() string { return "AssignStat" }

// CompoundAssignStat is `target += value` and its siblings.
type CompoundAssignStat struct {
	baseStat
	Target Expr
	Op     CompoundOp
	Value  Expr
}

func (n *CompoundAssignStat) nodeKind() string { return "CompoundAssignStat" }

// FunctionDeclStat is `function name.path:method(...) ... end`. Name
// is the dotted/colon-chained target expression the function is
// assigned to (an IndexNameExpr chain rooted at a LocalRefExpr or
// GlobalRefExpr, or a bare ref for a top-level function).
type FunctionDeclStat struct {
	baseStat
	Name     Expr
	Function *FunctionExpr
}

func (n *FunctionDeclStat) nodeKind() string { return "FunctionDeclStat" }

// LocalFunctionStat is `local function name(...) ... end`.
type LocalFunctionStat struct {
	baseStat
	Name     string
	Function *FunctionExpr
}

func (n *LocalFunctionStat) nodeKind() string { return "LocalFunctionStat" }

// TypeAliasStat is `[export] type Name<T = D> = Type` (typed mode
// only; the printer omits it entirely in untyped mode).
type TypeAliasStat struct {
	baseStat
	Exported     bool
	Name         string
	Generics     []*GenericType
	GenericPacks []*GenericTypePack
	Value        Type
}

func (n *TypeAliasStat) nodeKind() string { return "TypeAliasStat" }

// TypeFunctionStat is `[export] type function name(...) ... end`
// (typed mode only).
type TypeFunctionStat struct {
	baseStat
	Exported bool
	Name     string
	Function *FunctionExpr
}

func (n *TypeFunctionStat) nodeKind() string { return "TypeFunctionStat" }

// ErrorStat is a parser-recovery placeholder (spec.md §4.4, §9(b)).
// It must never appear in the output of a cleanly-parsed program.
type ErrorStat struct {
	baseStat
	Exprs   []Expr
	Stats   []Stat
	Message string
}

func (n *ErrorStat) nodeKind() string { return "ErrorStat" }
