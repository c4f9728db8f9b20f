package printer

import (
	"fmt"

	"luaprint/pkg/ast"
	"luaprint/pkg/cst"
	"luaprint/pkg/token"
)

func posOrNil(ok bool, positions []token.Position) []token.Position {
	if !ok {
		return nil
	}
	return positions
}

// printIfStat walks an if/elseif/else chain iteratively -- every link
// is its own *ast.IfStat nested in the previous one's ElseBody -- so
// that exactly one `end` is written, at the outermost node's recorded
// end, regardless of how many elseif links the chain has.
func (p *Printer) printIfStat(top *ast.IfStat) {
	cur := top
	first := true
	for {
		rec, ok := cst.Get[cst.ExprIfElse](p.cst, cur)
		if first {
			p.w.Keyword("if")
			first = false
		} else {
			p.w.Advance(cur.Loc().Begin)
			p.w.Keyword("elseif")
		}
		p.Expr(cur.Condition)
		if ok {
			p.w.Advance(rec.ThenPosition)
		} else {
			p.w.Space()
		}
		p.w.Keyword("then")
		p.Block(cur.ThenBody)

		switch eb := cur.ElseBody.(type) {
		case nil:
			p.writeEnd(top.Loc())
			return
		case *ast.IfStat:
			if ok {
				p.w.Advance(rec.ElsePosition)
			} else {
				p.w.Space()
			}
			cur = eb
		case *ast.BlockStat:
			if ok {
				p.w.Advance(rec.ElsePosition)
			} else {
				p.w.Space()
			}
			p.w.Keyword("else")
			p.Block(eb)
			p.writeEnd(top.Loc())
			return
		default:
			panic(fmt.Sprintf("printer: unhandled if-else body kind %T", eb))
		}
	}
}

func (p *Printer) printWhileStat(n *ast.WhileStat) {
	p.w.Keyword("while")
	p.Expr(n.Condition)
	p.w.Space()
	p.w.Keyword("do")
	p.Block(n.Body)
	p.writeEnd(n.Loc())
}

func (p *Printer) printRepeatStat(n *ast.RepeatStat) {
	p.w.Keyword("repeat")
	p.Block(n.Body)
	rec, ok := cst.Get[cst.StatRepeat](p.cst, n)
	if ok {
		p.w.Advance(rec.UntilPosition)
	} else {
		p.w.Space()
	}
	p.w.Keyword("until")
	p.Expr(n.Condition)
}

func (p *Printer) printReturnStat(n *ast.ReturnStat) {
	p.w.Keyword("return")
	rec, ok := cst.Get[cst.StatReturn](p.cst, n)
	ci := newCommaInjector(p.w, posOrNil(ok, rec.CommaPositions))
	for _, v := range n.Values {
		ci.next()
		p.Expr(v)
	}
}

func (p *Printer) printLocalAnnotation(annotation ast.Type, colonPos cst.PosPtr) {
	if colonPos != nil {
		p.w.Advance(*colonPos)
	} else {
		p.w.Space()
	}
	p.w.Symbol(":", p.dds())
	p.w.Space()
	p.Type(annotation)
}

func (p *Printer) printLocalDeclStat(n *ast.LocalDeclStat) {
	p.w.Keyword("local")
	rec, ok := cst.Get[cst.StatLocalDecl](p.cst, n)
	ci := newCommaInjector(p.w, posOrNil(ok, rec.VarsCommaPositions))
	for i, v := range n.Vars {
		ci.next()
		p.w.Advance(v.Loc().Begin)
		p.w.Identifier(v.Name)
		if p.opts.WriteTypes && v.Annotation != nil {
			var colonPos cst.PosPtr
			if ok && i < len(rec.VarsAnnotationColonPositions) {
				colonPos = rec.VarsAnnotationColonPositions[i]
			}
			p.printLocalAnnotation(v.Annotation, colonPos)
		}
	}
	if len(n.Values) > 0 {
		p.w.Space()
		p.w.Symbol("=", p.dds())
		p.w.Space()
		ci2 := newCommaInjector(p.w, posOrNil(ok, rec.ValuesCommaPositions))
		for _, val := range n.Values {
			ci2.next()
			p.Expr(val)
		}
	}
}

func (p *Printer) printNumericForStat(n *ast.NumericForStat) {
	p.w.Keyword("for")
	p.w.Advance(n.Var.Loc().Begin)
	p.w.Identifier(n.Var.Name)
	rec, ok := cst.Get[cst.StatNumericFor](p.cst, n)
	if p.opts.WriteTypes && n.Var.Annotation != nil {
		p.printLocalAnnotation(n.Var.Annotation, rec.AnnotationColonPosition)
	}
	if ok {
		p.w.Advance(rec.EqualsPosition)
	} else {
		p.w.Space()
	}
	p.w.Symbol("=", p.dds())
	p.w.Space()
	p.Expr(n.From)
	if ok {
		p.w.Advance(rec.EndCommaPosition)
	} else {
		p.w.Space()
	}
	p.w.Symbol(",", p.dds())
	p.w.Space()
	p.Expr(n.To)
	if n.Step != nil {
		if ok && rec.StepCommaPosition != nil {
			p.w.Advance(*rec.StepCommaPosition)
		} else {
			p.w.Space()
		}
		p.w.Symbol(",", p.dds())
		p.w.Space()
		p.Expr(n.Step)
	}
	p.w.Space()
	p.w.Keyword("do")
	p.Block(n.Body)
	p.writeEnd(n.Loc())
}

func (p *Printer) printGenericForStat(n *ast.GenericForStat) {
	p.w.Keyword("for")
	rec, ok := cst.Get[cst.StatGenericFor](p.cst, n)
	ci := newCommaInjector(p.w, posOrNil(ok, rec.VarsCommaPositions))
	for i, v := range n.Vars {
		ci.next()
		p.w.Advance(v.Loc().Begin)
		p.w.Identifier(v.Name)
		if p.opts.WriteTypes && v.Annotation != nil {
			var colonPos cst.PosPtr
			if ok && i < len(rec.VarsAnnotationColonPositions) {
				colonPos = rec.VarsAnnotationColonPositions[i]
			}
			p.printLocalAnnotation(v.Annotation, colonPos)
		}
	}
	p.w.Space()
	p.w.Keyword("in")
	ci2 := newCommaInjector(p.w, posOrNil(ok, rec.ValuesCommaPositions))
	for _, it := range n.Iterators {
		ci2.next()
		p.Expr(it)
	}
	p.w.Space()
	p.w.Keyword("do")
	p.Block(n.Body)
	p.writeEnd(n.Loc())
}

func (p *Printer) printAssignStat(n *ast.AssignStat) {
	rec, ok := cst.Get[cst.StatAssign](p.cst, n)
	ci := newCommaInjector(p.w, posOrNil(ok, rec.VarsCommaPositions))
	for _, t := range n.Targets {
		ci.next()
		p.Expr(t)
	}
	if ok {
		p.w.Advance(rec.EqualsPosition)
	} else {
		p.w.Space()
	}
	p.w.Symbol("=", p.dds())
	p.w.Space()
	ci2 := newCommaInjector(p.w, posOrNil(ok, rec.ValuesCommaPositions))
	for _, v := range n.Values {
		ci2.next()
		p.Expr(v)
	}
}

func compoundOpSpelling(op ast.CompoundOp) string {
	switch op {
	case ast.CompoundAdd:
		return "+="
	case ast.CompoundSub:
		return "-="
	case ast.CompoundMul:
		return "*="
	case ast.CompoundDiv:
		return "/="
	case ast.CompoundFloorDiv:
		return "//="
	case ast.CompoundMod:
		return "%="
	case ast.CompoundPow:
		return "^="
	case ast.CompoundConcat:
		return "..="
	}
	return "?="
}

func (p *Printer) printCompoundAssignStat(n *ast.CompoundAssignStat) {
	p.Expr(n.Target)
	rec, ok := cst.Get[cst.StatCompoundAssign](p.cst, n)
	if ok {
		p.w.Advance(rec.OpPosition)
	} else {
		p.w.Space()
	}
	p.w.Symbol(compoundOpSpelling(n.Op), p.dds())
	p.w.Space()
	p.Expr(n.Value)
}

func (p *Printer) printFunctionDeclStat(n *ast.FunctionDeclStat) {
	rec, ok := cst.Get[cst.StatFunction](p.cst, n)
	if ok {
		p.w.Advance(rec.FunctionKeywordPosition)
	}
	p.w.Keyword("function")
	p.Expr(n.Name)
	p.printFunctionBody(n.Function)
}

func (p *Printer) printLocalFunctionStat(n *ast.LocalFunctionStat) {
	rec, ok := cst.Get[cst.StatLocalFunction](p.cst, n)
	if ok {
		p.w.Advance(rec.LocalKeywordPosition)
	}
	p.w.Keyword("local")
	if ok {
		p.w.Advance(rec.FunctionKeywordPosition)
	} else {
		p.w.Space()
	}
	p.w.Keyword("function")
	p.w.Identifier(n.Name)
	p.printFunctionBody(n.Function)
}

func (p *Printer) printGenericType(g *ast.GenericType) {
	p.w.Advance(g.Loc().Begin)
	p.w.Identifier(g.Name)
	if g.Default != nil {
		rec, ok := cst.Get[cst.TypeGenericType](p.cst, g)
		if ok && rec.DefaultEqualsPosition != nil {
			p.w.Advance(*rec.DefaultEqualsPosition)
		} else {
			p.w.Space()
		}
		p.w.Symbol("=", p.dds())
		p.w.Space()
		p.Type(g.Default)
	}
}

func (p *Printer) printGenericTypePack(g *ast.GenericTypePack) {
	p.w.Advance(g.Loc().Begin)
	p.w.Identifier(g.Name)
	rec, ok := cst.Get[cst.TypeGenericTypePack](p.cst, g)
	if ok {
		p.w.Advance(rec.EllipsisPosition)
	}
	p.w.Symbol("...", p.dds())
	if g.Default != nil {
		if ok && rec.DefaultEqualsPosition != nil {
			p.w.Advance(*rec.DefaultEqualsPosition)
		} else {
			p.w.Space()
		}
		p.w.Symbol("=", p.dds())
		p.w.Space()
		p.TypePack(g.Default)
	}
}

func (p *Printer) printTypeAliasStat(n *ast.TypeAliasStat) {
	if !p.opts.WriteTypes {
		return
	}
	rec, ok := cst.Get[cst.StatTypeAlias](p.cst, n)
	if n.Exported {
		p.w.Keyword("export")
		p.w.Space()
	}
	if ok {
		p.w.Advance(rec.TypeKeywordPosition)
	}
	p.w.Keyword("type")
	p.w.Identifier(n.Name)
	if len(n.Generics) > 0 || len(n.GenericPacks) > 0 {
		if ok && rec.GenericsOpenPosition != nil {
			p.w.Advance(*rec.GenericsOpenPosition)
		}
		p.w.Symbol("<", p.dds())
		ci := newCommaInjector(p.w, posOrNil(ok, rec.GenericsCommaPositions))
		for _, g := range n.Generics {
			ci.next()
			p.printGenericType(g)
		}
		for _, gp := range n.GenericPacks {
			ci.next()
			p.printGenericTypePack(gp)
		}
		if ok && rec.GenericsClosePosition != nil {
			p.w.Advance(*rec.GenericsClosePosition)
		}
		p.w.Symbol(">", p.dds())
	}
	if ok {
		p.w.Advance(rec.EqualsPosition)
	} else {
		p.w.Space()
	}
	p.w.Symbol("=", p.dds())
	p.w.Space()
	p.Type(n.Value)
}

func (p *Printer) printTypeFunctionStat(n *ast.TypeFunctionStat) {
	if !p.opts.WriteTypes {
		return
	}
	rec, ok := cst.Get[cst.StatTypeFunction](p.cst, n)
	if n.Exported {
		p.w.Keyword("export")
		p.w.Space()
	}
	if ok {
		p.w.Advance(rec.TypeKeywordPosition)
	}
	p.w.Keyword("type")
	if ok {
		p.w.Advance(rec.FunctionKeywordPosition)
	} else {
		p.w.Space()
	}
	p.w.Keyword("function")
	p.w.Identifier(n.Name)
	p.printFunctionBody(n.Function)
}

func (p *Printer) printErrorStat(n *ast.ErrorStat) {
	p.w.Write(fmt.Sprintf("(error-stat: %s)", n.Message))
}

// printFunctionBody prints the shared tail of every function-valued
// construct -- generics, parameter list, vararg, return annotation,
// body, and closing `end` (spec.md §4.5). The caller is responsible
// for the leading `function` keyword (and, for declarations, the name
// that precedes the parameter list).
func (p *Printer) printFunctionBody(fn *ast.FunctionExpr) {
	rec, ok := cst.Get[cst.ExprFunction](p.cst, fn)
	if len(fn.Generics) > 0 || len(fn.GenericPacks) > 0 {
		if ok && rec.OpenGenericsPosition != nil {
			p.w.Advance(*rec.OpenGenericsPosition)
		}
		p.w.Symbol("<", p.dds())
		ci := newCommaInjector(p.w, posOrNil(ok, rec.GenericsCommaPositions))
		for _, g := range fn.Generics {
			ci.next()
			p.printGenericType(g)
		}
		for _, gp := range fn.GenericPacks {
			ci.next()
			p.printGenericTypePack(gp)
		}
		if ok && rec.CloseGenericsPosition != nil {
			p.w.Advance(*rec.CloseGenericsPosition)
		}
		p.w.Symbol(">", p.dds())
	}

	p.w.Symbol("(", p.dds())
	ci := newCommaInjector(p.w, posOrNil(ok, rec.ArgsCommaPositions))
	for i, a := range fn.Args {
		ci.next()
		p.w.Advance(a.Loc().Begin)
		p.w.Identifier(a.Name)
		if p.opts.WriteTypes && a.Annotation != nil {
			var colonPos cst.PosPtr
			if ok && i < len(rec.ArgsAnnotationColonPositions) {
				colonPos = rec.ArgsAnnotationColonPositions[i]
			}
			p.printLocalAnnotation(a.Annotation, colonPos)
		}
	}
	if fn.Vararg {
		ci.next()
		p.w.Symbol("...", p.dds())
		if p.opts.WriteTypes && fn.VarargType != nil {
			if ok && rec.VarargAnnotationColonPosition != nil {
				p.w.Advance(*rec.VarargAnnotationColonPosition)
			} else {
				p.w.Space()
			}
			p.w.Symbol(":", p.dds())
			p.w.Space()
			p.TypePack(fn.VarargType)
		}
	}
	p.w.Symbol(")", p.dds())

	if p.opts.WriteTypes && fn.ReturnTypes != nil {
		if ok && rec.ReturnSpecifierPosition != nil {
			p.w.Advance(*rec.ReturnSpecifierPosition)
		} else {
			p.w.Space()
		}
		p.w.Symbol(":", p.dds())
		p.w.Space()
		p.TypePack(fn.ReturnTypes)
	}

	if len(fn.Body.Body) > 0 {
		p.w.MaybeSpace(fn.Body.Body[0].Loc().Begin, 0)
	} else {
		endPos := fn.Loc().End
		if endPos.Column >= 3 {
			endPos.Column -= 3
		}
		p.w.MaybeSpace(endPos, 0)
	}
	p.Block(fn.Body)
	p.writeEnd(fn.Loc())
}
