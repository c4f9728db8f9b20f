package printer

import (
	"luaprint/pkg/ast"
	"luaprint/pkg/cst"
)

func (p *Printer) printTypeRefType(n *ast.TypeRefType) {
	rec, ok := cst.Get[cst.TypeRef](p.cst, n)
	if n.Prefix != nil {
		p.w.Identifier(*n.Prefix)
		if ok && rec.PrefixPointPosition != nil {
			p.w.Advance(*rec.PrefixPointPosition)
		}
		p.w.Symbol(".", p.dds())
	}
	p.w.Identifier(n.Name)
	if len(n.Params) > 0 {
		if ok && rec.OpenParametersPosition != nil {
			p.w.Advance(*rec.OpenParametersPosition)
		}
		p.w.Symbol("<", p.dds())
		ci := newCommaInjector(p.w, posOrNil(ok, rec.ParametersCommaPositions))
		for _, param := range n.Params {
			ci.next()
			if param.Type != nil {
				p.Type(param.Type)
			} else {
				p.TypePack(param.Pack)
			}
		}
		if ok && rec.CloseParametersPosition != nil {
			p.w.Advance(*rec.CloseParametersPosition)
		}
		p.w.Symbol(">", p.dds())
	}
}

func (p *Printer) printFunctionTypeType(n *ast.FunctionTypeType) {
	rec, ok := cst.Get[cst.TypeFunction](p.cst, n)
	if len(n.Generics) > 0 || len(n.GenericPacks) > 0 {
		if ok && rec.OpenGenericsPosition != nil {
			p.w.Advance(*rec.OpenGenericsPosition)
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
		if ok && rec.CloseGenericsPosition != nil {
			p.w.Advance(*rec.CloseGenericsPosition)
		}
		p.w.Symbol(">", p.dds())
	}

	if ok {
		p.w.Advance(rec.OpenArgsPosition)
	}
	p.w.Symbol("(", p.dds())
	ci := newCommaInjector(p.w, posOrNil(ok, rec.ArgumentsCommaPositions))
	for i, a := range n.Args {
		ci.next()
		var colonPos cst.PosPtr
		if ok && i < len(rec.ArgumentNameColonPositions) {
			colonPos = rec.ArgumentNameColonPositions[i]
		}
		writeArgName(p.w, a.Name, colonPos)
		p.Type(a.Type)
	}
	if n.Vararg != nil {
		ci.next()
		p.TypePack(n.Vararg)
	}
	if ok {
		p.w.Advance(rec.CloseArgsPosition)
	}
	p.w.Symbol(")", p.dds())

	if ok {
		p.w.Advance(rec.ReturnArrowPosition)
	} else {
		p.w.Space()
	}
	p.w.Symbol("->", p.dds())
	p.w.Space()
	p.TypePack(n.Returns)
}

func (p *Printer) printTableTypeType(n *ast.TableTypeType) {
	if n.IsArrayShorthand() {
		p.w.Symbol("{", p.dds())
		p.w.Space()
		p.Type(n.Indexer.Value)
		p.w.Space()
		p.w.Symbol("}", p.dds())
		return
	}

	rec, ok := cst.Get[cst.TypeTable](p.cst, n)
	p.w.Symbol("{", p.dds())
	if len(n.Props) > 0 || n.Indexer != nil {
		p.w.Space()
	}

	idx := 0
	for _, prop := range n.Props {
		var itemRec cst.TypeTableItem
		if ok && idx < len(rec.Items) {
			itemRec = rec.Items[idx]
		}
		switch prop.Access {
		case ast.AccessRead:
			p.w.Keyword("read")
			p.w.Space()
		case ast.AccessWrite:
			p.w.Keyword("write")
			p.w.Space()
		}
		if itemRec.Kind == cst.TableTypeStringProperty && itemRec.StringKey != nil {
			p.w.SourceString(itemRec.StringKey.SourceString, itemRec.StringKey.QuoteStyle, itemRec.StringKey.BlockDepth)
		} else {
			p.w.Identifier(prop.Name)
		}
		if itemRec.ColonPosition != nil {
			p.w.Advance(*itemRec.ColonPosition)
		} else {
			p.w.Space()
		}
		p.w.Symbol(":", p.dds())
		p.w.Space()
		p.Type(prop.Value)
		if prop.HasSep {
			if itemRec.SeparatorPosition != nil {
				p.w.Advance(*itemRec.SeparatorPosition)
			}
			p.w.Symbol(string(prop.Separator), p.dds())
		}
		p.w.Space()
		idx++
	}

	if n.Indexer != nil {
		var itemRec cst.TypeTableItem
		if ok && idx < len(rec.Items) {
			itemRec = rec.Items[idx]
		}
		if itemRec.IndexerOpenPosition != nil {
			p.w.Advance(*itemRec.IndexerOpenPosition)
		}
		p.w.Symbol("[", p.dds())
		p.Type(n.Indexer.Key)
		if itemRec.IndexerClosePosition != nil {
			p.w.Advance(*itemRec.IndexerClosePosition)
		}
		p.w.Symbol("]", p.dds())
		if itemRec.ColonPosition != nil {
			p.w.Advance(*itemRec.ColonPosition)
		} else {
			p.w.Space()
		}
		p.w.Symbol(":", p.dds())
		p.w.Space()
		p.Type(n.Indexer.Value)
		p.w.Space()
	}

	p.w.Symbol("}", p.dds())
}

func (p *Printer) printTypeofType(n *ast.TypeofType) {
	rec, ok := cst.Get[cst.TypeTypeof](p.cst, n)
	p.w.Keyword("typeof")
	if ok {
		p.w.Advance(rec.OpenPosition)
	}
	p.w.Symbol("(", p.dds())
	p.Expr(n.Expr)
	if ok {
		p.w.Advance(rec.ClosePosition)
	}
	p.w.Symbol(")", p.dds())
}

func isNilRefType(t ast.Type) bool {
	ref, ok := t.(*ast.TypeRefType)
	return ok && ref.Prefix == nil && ref.Name == "nil" && len(ref.Params) == 0
}

// printTypeMaybeParen wraps t in parens when it is itself a union,
// intersection, or function type appearing as a member of an
// enclosing union/intersection, where bare juxtaposition would be
// ambiguous or (for `->`) would swallow the rest of the enclosing
// list (spec.md §4.6's dual-kind parenthesization rule).
func (p *Printer) printTypeMaybeParen(t ast.Type) {
	needsParen := false
	switch t.(type) {
	case *ast.FunctionTypeType, *ast.IntersectionType, *ast.UnionType:
		needsParen = true
	}
	if !needsParen {
		p.Type(t)
		return
	}
	p.w.Advance(t.Loc().Begin)
	p.w.Symbol("(", p.dds())
	p.Type(t)
	p.w.Symbol(")", p.dds())
}

func (p *Printer) printUnionType(n *ast.UnionType) {
	if len(n.Types) == 2 {
		for i, t := range n.Types {
			if isNilRefType(t) {
				p.printTypeMaybeParen(n.Types[1-i])
				p.w.Symbol("?", p.dds())
				return
			}
		}
	}

	rec, ok := cst.Get[cst.TypeUnion](p.cst, n)
	for i, t := range n.Types {
		if i == 0 {
			if ok && rec.LeadingPosition != nil {
				p.w.Advance(*rec.LeadingPosition)
				p.w.Symbol("|", p.dds())
				p.w.Space()
			}
		} else {
			if ok && i-1 < len(rec.SeparatorPositions) {
				p.w.Advance(rec.SeparatorPositions[i-1])
			} else {
				p.w.Space()
			}
			p.w.Symbol("|", p.dds())
			p.w.Space()
		}
		p.printTypeMaybeParen(t)
	}
}

func (p *Printer) printIntersectionType(n *ast.IntersectionType) {
	rec, ok := cst.Get[cst.TypeIntersection](p.cst, n)
	for i, t := range n.Types {
		if i == 0 {
			if ok && rec.LeadingPosition != nil {
				p.w.Advance(*rec.LeadingPosition)
				p.w.Symbol("&", p.dds())
				p.w.Space()
			}
		} else {
			if ok && i-1 < len(rec.SeparatorPositions) {
				p.w.Advance(rec.SeparatorPositions[i-1])
			} else {
				p.w.Space()
			}
			p.w.Symbol("&", p.dds())
			p.w.Space()
		}
		p.printTypeMaybeParen(t)
	}
}

func (p *Printer) printSingletonStringType(n *ast.SingletonStringType) {
	if rec, ok := cst.Get[cst.TypeSingletonString](p.cst, n); ok {
		p.w.SourceString(rec.SourceString, rec.QuoteStyle, rec.BlockDepth)
		return
	}
	p.w.QuoteString(n.Value)
}

func (p *Printer) printExplicitPack(n *ast.ExplicitPack) {
	rec, ok := cst.Get[cst.TypePackExplicit](p.cst, n)
	if len(n.Types) == 1 && n.Tail == nil && (!ok || rec.OpenParenthesesPosition == nil) {
		p.Type(n.Types[0])
		return
	}

	if ok && rec.OpenParenthesesPosition != nil {
		p.w.Advance(*rec.OpenParenthesesPosition)
	}
	p.w.Symbol("(", p.dds())
	ci := newCommaInjector(p.w, posOrNil(ok, rec.CommaPositions))
	for _, t := range n.Types {
		ci.next()
		p.Type(t)
	}
	if n.Tail != nil {
		ci.next()
		p.TypePack(n.Tail)
	}
	if ok && rec.CloseParenthesesPosition != nil {
		p.w.Advance(*rec.CloseParenthesesPosition)
	}
	p.w.Symbol(")", p.dds())
}
