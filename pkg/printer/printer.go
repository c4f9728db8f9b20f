package printer

import (
	"fmt"

	"luaprint/pkg/ast"
	"luaprint/pkg/cst"
	"luaprint/pkg/token"
)

// Printer is the traversal that walks an AST plus its optional CST
// side-table and drives a Writer, generalizing
// paserati/pkg/parser/jsemitter.go's buffer-plus-type-switch emitter
// shape: one family dispatcher per node kind (statement, expression,
// type, type pack), each case advancing the writer to every recorded
// position it finds along the way.
type Printer struct {
	w    Writer
	cst  *cst.Table
	opts Options
}

// New creates a Printer that writes through w, consulting table for
// recorded lexical detail (a nil table is valid: every lookup reports
// absent) under opts.
func New(w Writer, table *cst.Table, opts Options) *Printer {
	return &Printer{w: w, cst: table, opts: opts}
}

// Block prints every statement of body in order, honoring each
// statement's trailing-semicolon flag (spec.md §4.4).
func (p *Printer) Block(body *ast.BlockStat) {
	for _, s := range body.Body {
		p.Stat(s)
		if s.Semicolon() {
			loc := s.Loc()
			pos := loc.End
			if pos.Column >= 1 {
				pos.Column--
			}
			p.w.Advance(pos)
			p.w.Symbol(";", p.opts.DigitDotSpacing)
		}
	}
}

// writeEnd advances to the `end` keyword's recorded start column
// (three characters before the node's recorded end, per spec.md
// §4.4's "writing end" rule) and emits it.
func (p *Printer) writeEnd(loc token.Location) {
	pos := loc.End
	if pos.Column >= 3 {
		pos.Column -= 3
	}
	p.w.Advance(pos)
	p.w.Keyword("end")
}

// Stat dispatches s to its printing case.
func (p *Printer) Stat(s ast.Stat) {
	p.w.Advance(s.Loc().Begin)
	switch n := s.(type) {
	case *ast.BlockStat:
		// A standalone `do ... end` block: the parser returns the
		// inner block directly as the Stat, with Location spanning the
		// do/end keywords (parseDoStat). ThenBody/function bodies never
		// reach this case -- those are plain *ast.BlockStat fields
		// dispatched to directly, not through Stat().
		p.w.Keyword("do")
		p.Block(n)
		p.writeEnd(n.Loc())
	case *ast.IfStat:
		p.printIfStat(n)
	case *ast.WhileStat:
		p.printWhileStat(n)
	case *ast.RepeatStat:
		p.printRepeatStat(n)
	case *ast.BreakStat:
		p.w.Keyword("break")
	case *ast.ContinueStat:
		p.w.Keyword("continue")
	case *ast.ReturnStat:
		p.printReturnStat(n)
	case *ast.ExpressionStat:
		p.Expr(n.Expr)
	case *ast.LocalDeclStat:
		p.printLocalDeclStat(n)
	case *ast.NumericForStat:
		p.printNumericForStat(n)
	case *ast.GenericForStat:
		p.printGenericForStat(n)
	case *ast.AssignStat:
		p.printAssignStat(n)
	case *ast.CompoundAssignStat:
		p.printCompoundAssignStat(n)
	case *ast.FunctionDeclStat:
		p.printFunctionDeclStat(n)
	case *ast.LocalFunctionStat:
		p.printLocalFunctionStat(n)
	case *ast.TypeAliasStat:
		p.printTypeAliasStat(n)
	case *ast.TypeFunctionStat:
		p.printTypeFunctionStat(n)
	case *ast.ErrorStat:
		p.printErrorStat(n)
	default:
		panic(fmt.Sprintf("printer: unhandled statement kind %T", s))
	}
}

// Expr dispatches e to its printing case.
func (p *Printer) Expr(e ast.Expr) {
	p.w.Advance(e.Loc().Begin)
	switch n := e.(type) {
	case *ast.GroupExpr:
		p.printGroupExpr(n)
	case *ast.ConstantNilExpr:
		p.w.Keyword("nil")
	case *ast.ConstantBoolExpr:
		if n.Value {
			p.w.Keyword("true")
		} else {
			p.w.Keyword("false")
		}
	case *ast.ConstantNumberExpr:
		p.printConstantNumberExpr(n)
	case *ast.ConstantStringExpr:
		p.printConstantStringExpr(n)
	case *ast.LocalRefExpr:
		p.w.Identifier(n.Name)
	case *ast.GlobalRefExpr:
		p.w.Identifier(n.Name)
	case *ast.VarargExpr:
		p.w.Symbol("...", p.opts.DigitDotSpacing)
	case *ast.CallExpr:
		p.printCallExpr(n)
	case *ast.IndexNameExpr:
		p.printIndexNameExpr(n)
	case *ast.IndexExprExpr:
		p.printIndexExprExpr(n)
	case *ast.FunctionExpr:
		if rec, ok := cst.Get[cst.ExprFunction](p.cst, n); ok {
			p.w.Advance(rec.FunctionKeywordPosition)
		}
		p.w.Keyword("function")
		p.printFunctionBody(n)
	case *ast.TableExpr:
		p.printTableExpr(n)
	case *ast.UnaryExpr:
		p.printUnaryExpr(n)
	case *ast.BinaryExpr:
		p.printBinaryExpr(n)
	case *ast.TypeAssertionExpr:
		p.printTypeAssertionExpr(n)
	case *ast.IfElseExpr:
		p.printIfElseExpr(n, false)
	case *ast.InterpStringExpr:
		p.printInterpStringExpr(n)
	case *ast.ErrorExpr:
		p.printErrorExpr(n)
	default:
		panic(fmt.Sprintf("printer: unhandled expression kind %T", e))
	}
}

// Type dispatches t to its printing case. Callers must check
// opts.WriteTypes before invoking this in a context where an
// annotation may simply be omitted (spec.md §4.6).
func (p *Printer) Type(t ast.Type) {
	p.w.Advance(t.Loc().Begin)
	switch n := t.(type) {
	case *ast.TypeRefType:
		p.printTypeRefType(n)
	case *ast.FunctionTypeType:
		p.printFunctionTypeType(n)
	case *ast.TableTypeType:
		p.printTableTypeType(n)
	case *ast.TypeofType:
		p.printTypeofType(n)
	case *ast.UnionType:
		p.printUnionType(n)
	case *ast.IntersectionType:
		p.printIntersectionType(n)
	case *ast.SingletonBoolType:
		if n.Value {
			p.w.Keyword("true")
		} else {
			p.w.Keyword("false")
		}
	case *ast.SingletonStringType:
		p.printSingletonStringType(n)
	case *ast.ErrorType:
		p.w.Write("%error-type%")
	default:
		panic(fmt.Sprintf("printer: unhandled type kind %T", t))
	}
}

// TypePack dispatches tp to its printing case.
func (p *Printer) TypePack(tp ast.TypePack) {
	p.w.Advance(tp.Loc().Begin)
	switch n := tp.(type) {
	case *ast.VariadicPack:
		p.w.Symbol("...", p.opts.DigitDotSpacing)
		p.Type(n.Element)
	case *ast.GenericTypePackRef:
		p.w.Identifier(n.Name)
		p.w.Symbol("...", p.opts.DigitDotSpacing)
	case *ast.ExplicitPack:
		p.printExplicitPack(n)
	default:
		panic(fmt.Sprintf("printer: unhandled type pack kind %T", tp))
	}
}
