package printer

import (
	"fmt"

	"luaprint/pkg/ast"
	"luaprint/pkg/cst"
	"luaprint/pkg/escape"
	"luaprint/pkg/token"
)

func (p *Printer) dds() bool { return p.opts.DigitDotSpacing }

func (p *Printer) printGroupExpr(n *ast.GroupExpr) {
	p.w.Symbol("(", p.dds())
	p.Expr(n.Inner)
	end := n.Loc().End
	if end.Column >= 1 {
		end.Column--
	}
	p.w.Advance(end)
	p.w.Symbol(")", p.dds())
}

func (p *Printer) printConstantNumberExpr(n *ast.ConstantNumberExpr) {
	if rec, ok := cst.Get[cst.ExprConstantNumber](p.cst, n); ok {
		p.w.Literal(rec.SourceString)
		return
	}
	p.w.Literal(escape.FormatNumber(n.Value))
}

func (p *Printer) printConstantStringExpr(n *ast.ConstantStringExpr) {
	if rec, ok := cst.Get[cst.ExprConstantString](p.cst, n); ok {
		p.w.SourceString(rec.SourceString, rec.QuoteStyle, rec.BlockDepth)
		return
	}
	p.w.QuoteString(string(n.Value))
}

func (p *Printer) printCallExpr(n *ast.CallExpr) {
	p.Expr(n.Callee)

	callRec, hasCallRec := cst.Get[cst.ExprCall](p.cst, n)

	if p.opts.WriteTypes && len(n.TypeArgs) > 0 {
		var instRec cst.ExprTypeInstantiation
		hasInstRec := false
		if hasCallRec && callRec.ExplicitTypes != nil {
			instRec = *callRec.ExplicitTypes
			hasInstRec = true
		}
		if hasInstRec {
			p.w.Advance(instRec.LeftArrow1Position)
		}
		p.w.Symbol("::", p.dds())
		if hasInstRec {
			p.w.Advance(instRec.LeftArrow2Position)
		}
		p.w.Symbol("<", p.dds())
		var positions []token.Position
		if hasInstRec {
			positions = instRec.CommaPositions
		}
		ci := newCommaInjector(p.w, positions)
		for _, t := range n.TypeArgs {
			ci.next()
			p.Type(t)
		}
		if hasInstRec {
			p.w.Advance(instRec.RightArrow1Position)
		}
		p.w.Symbol(">", p.dds())
	}

	if hasCallRec && callRec.OpenParens == nil {
		if len(n.Args) == 1 {
			p.Expr(n.Args[0])
		}
		return
	}

	if hasCallRec && callRec.OpenParens != nil {
		p.w.Advance(*callRec.OpenParens)
	}
	p.w.Symbol("(", p.dds())
	var positions []token.Position
	if hasCallRec {
		positions = callRec.CommaPositions
	}
	ci := newCommaInjector(p.w, positions)
	for _, a := range n.Args {
		ci.next()
		p.Expr(a)
	}
	if hasCallRec && callRec.CloseParens != nil {
		p.w.Advance(*callRec.CloseParens)
	}
	p.w.Symbol(")", p.dds())
}

func (p *Printer) printIndexNameExpr(n *ast.IndexNameExpr) {
	p.Expr(n.Obj)
	p.w.Advance(n.OpLoc.Begin)
	p.w.Symbol(string(n.Op), p.dds())
	p.w.Advance(n.NameLoc.Begin)
	p.w.Identifier(n.Name)
}

func (p *Printer) printIndexExprExpr(n *ast.IndexExprExpr) {
	p.Expr(n.Obj)
	rec, ok := cst.Get[cst.ExprIndexExpr](p.cst, n)
	if ok {
		p.w.Advance(rec.OpenBracketPosition)
	}
	p.w.Symbol("[", p.dds())
	p.Expr(n.Key)
	if ok {
		p.w.Advance(rec.CloseBracketPosition)
	}
	p.w.Symbol("]", p.dds())
}

func (p *Printer) printTableExpr(n *ast.TableExpr) {
	rec, hasRec := cst.Get[cst.ExprTable](p.cst, n)
	p.w.Symbol("{", p.dds())
	if len(n.Items) > 0 && !hasRec {
		p.w.Space()
	}
	for i, item := range n.Items {
		var itemRec cst.ExprTableItem
		if hasRec && i < len(rec.Items) {
			itemRec = rec.Items[i]
		}
		switch item.Kind {
		case ast.TableItemList:
			p.Expr(item.Value)
		case ast.TableItemRecord:
			p.w.Advance(item.NameLoc.Begin)
			p.w.Identifier(item.Name)
			if itemRec.EqualsPosition != nil {
				p.w.Advance(*itemRec.EqualsPosition)
			} else {
				p.w.Space()
			}
			p.w.Symbol("=", p.dds())
			if itemRec.EqualsPosition == nil {
				p.w.Space()
			}
			p.Expr(item.Value)
		case ast.TableItemGeneral:
			if itemRec.IndexerOpenPosition != nil {
				p.w.Advance(*itemRec.IndexerOpenPosition)
			}
			p.w.Symbol("[", p.dds())
			p.Expr(item.Key)
			if itemRec.IndexerClosePosition != nil {
				p.w.Advance(*itemRec.IndexerClosePosition)
			}
			p.w.Symbol("]", p.dds())
			if itemRec.EqualsPosition != nil {
				p.w.Advance(*itemRec.EqualsPosition)
			} else {
				p.w.Space()
			}
			p.w.Symbol("=", p.dds())
			if itemRec.EqualsPosition == nil {
				p.w.Space()
			}
			p.Expr(item.Value)
		}
		if item.HasSep {
			if hasRec && i < len(rec.Items) {
				p.w.Advance(rec.Items[i].SeparatorPosition)
			}
			p.w.Symbol(string(item.Separator), p.dds())
			if !hasRec {
				p.w.Space()
			}
		} else if i < len(n.Items)-1 {
			p.w.Space()
		}
	}
	end := n.Loc().End
	if end.Column >= 1 {
		end.Column--
	}
	p.w.Advance(end)
	if len(n.Items) > 0 && !hasRec {
		p.w.Space()
	}
	p.w.Symbol("}", p.dds())
}

func unOpSpelling(op ast.UnOp) (string, bool) {
	switch op {
	case ast.UnaryNot:
		return "not", true
	case ast.UnaryMinus:
		return "-", false
	case ast.UnaryLen:
		return "#", false
	}
	return "?", false
}

func (p *Printer) printUnaryExpr(n *ast.UnaryExpr) {
	rec, ok := cst.Get[cst.ExprOp](p.cst, n)
	if ok {
		p.w.Advance(rec.OpPosition)
	}
	spelling, keywordForm := unOpSpelling(n.Op)
	if keywordForm {
		p.w.Keyword(spelling)
	} else {
		p.w.Symbol(spelling, p.dds())
	}
	p.Expr(n.Operand)
}

func binOpSpelling(op ast.BinOp) (string, bool) {
	switch op {
	case ast.BinAdd:
		return "+", false
	case ast.BinSub:
		return "-", false
	case ast.BinMul:
		return "*", false
	case ast.BinDiv:
		return "/", false
	case ast.BinFloorDiv:
		return "//", false
	case ast.BinMod:
		return "%", false
	case ast.BinPow:
		return "^", false
	case ast.BinConcat:
		return "..", true
	case ast.BinEq:
		return "==", true
	case ast.BinNeq:
		return "~=", true
	case ast.BinLt:
		return "<", false
	case ast.BinLe:
		return "<=", true
	case ast.BinGt:
		return ">", false
	case ast.BinGe:
		return ">=", true
	case ast.BinAnd:
		return "and", true
	case ast.BinOr:
		return "or", true
	}
	return "?", false
}

func (p *Printer) printBinaryExpr(n *ast.BinaryExpr) {
	p.Expr(n.Left)
	rec, ok := cst.Get[cst.ExprOp](p.cst, n)
	if ok {
		p.w.Advance(rec.OpPosition)
	} else {
		p.w.Space()
	}
	spelling, keywordForm := binOpSpelling(n.Op)
	if keywordForm {
		p.w.Keyword(spelling)
	} else {
		p.w.Symbol(spelling, p.dds())
	}
	if !ok {
		p.w.Space()
	}
	p.Expr(n.Right)
}

func (p *Printer) printTypeAssertionExpr(n *ast.TypeAssertionExpr) {
	p.Expr(n.Expr)
	if !p.opts.WriteTypes {
		return
	}
	rec, ok := cst.Get[cst.ExprTypeAssertion](p.cst, n)
	if ok {
		p.w.Advance(rec.OpPosition)
	} else {
		p.w.Space()
	}
	p.w.Symbol("::", p.dds())
	p.w.Space()
	p.Type(n.Annotation)
}

func (p *Printer) printIfElseExpr(n *ast.IfElseExpr, isElseif bool) {
	rec, ok := cst.Get[cst.ExprIfElse](p.cst, n)
	if isElseif {
		p.w.Keyword("elseif")
	} else {
		p.w.Keyword("if")
	}
	p.Expr(n.Condition)
	if ok {
		p.w.Advance(rec.ThenPosition)
	} else {
		p.w.Space()
	}
	p.w.Keyword("then")
	p.Expr(n.True)
	if nested, isNested := n.False.(*ast.IfElseExpr); isNested {
		if ok {
			p.w.Advance(rec.ElsePosition)
		} else {
			p.w.Space()
		}
		p.w.Advance(nested.Loc().Begin)
		p.printIfElseExpr(nested, true)
		return
	}
	if ok {
		p.w.Advance(rec.ElsePosition)
	} else {
		p.w.Space()
	}
	p.w.Keyword("else")
	p.Expr(n.False)
}

func (p *Printer) printInterpStringExpr(n *ast.InterpStringExpr) {
	rec, ok := cst.Get[cst.ExprInterpString](p.cst, n)
	p.w.Write("`")
	for i, frag := range n.Strings {
		if ok && i < len(rec.StringPositions) {
			p.w.Advance(rec.StringPositions[i])
		}
		if ok && i < len(rec.SourceStrings) {
			p.w.Write(rec.SourceStrings[i])
		} else {
			p.w.Write(escape.EscapeInterpolated(frag))
		}
		if i < len(n.Expressions) {
			p.w.Symbol("{", p.dds())
			p.Expr(n.Expressions[i])
			p.w.Symbol("}", p.dds())
		}
	}
	p.w.Write("`")
}

func (p *Printer) printErrorExpr(n *ast.ErrorExpr) {
	p.w.Write(fmt.Sprintf("(error-expr: %s)", n.Message))
}
