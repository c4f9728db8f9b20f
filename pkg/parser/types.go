package parser

import (
	"luaprint/pkg/ast"
	"luaprint/pkg/cst"
	"luaprint/pkg/escape"
	"luaprint/pkg/token"
)

// Type-annotation precedence, lowest to tightest: union < intersection
// < postfix `?` (spec.md §3.2/§4.6; `T?` is parsed here directly into
// a two-member UnionType with a `nil` TypeRefType member, matching
// how a real Luau-style parser already desugars the sugar at parse
// time rather than carrying a separate optional-type node).
const (
	precTypeLowest = iota
	precTypeUnion
	precTypeIntersection
)

// parseType parses a full type annotation.
func (p *Parser) parseType(minPrec int) ast.Type {
	var leading *token.Position
	if p.cur.Type == token.PIPE {
		pos := p.cur.Pos
		leading = &pos
		p.nextToken()
	}

	left := p.parseIntersectionType()
	if p.cur.Type != token.PIPE && leading == nil {
		return left
	}
	begin := left.Loc().Begin
	types := []ast.Type{left}
	var seps []token.Position
	for p.cur.Type == token.PIPE {
		seps = append(seps, p.cur.Pos)
		p.nextToken()
		types = append(types, p.parseIntersectionType())
	}
	u := p.arena.NewUnionType()
	u.Types = types
	u.Location = loc(begin, p.cur.Pos)
	p.cst.Set(u, cst.TypeUnion{LeadingPosition: leading, SeparatorPositions: seps})
	return u
}

func (p *Parser) parseIntersectionType() ast.Type {
	left := p.parseTypePostfix()
	if p.cur.Type != token.AMP {
		return left
	}
	begin := left.Loc().Begin
	types := []ast.Type{left}
	var seps []token.Position
	for p.cur.Type == token.AMP {
		seps = append(seps, p.cur.Pos)
		p.nextToken()
		types = append(types, p.parseTypePostfix())
	}
	it := p.arena.NewIntersectionType()
	it.Types = types
	it.Location = loc(begin, p.cur.Pos)
	p.cst.Set(it, cst.TypeIntersection{SeparatorPositions: seps})
	return it
}

func (p *Parser) parseTypePostfix() ast.Type {
	t := p.parseTypePrimary()
	for p.cur.Type == token.QUESTION {
		qBegin := p.cur.Pos
		p.nextToken()
		nilRef := p.arena.NewTypeRefType()
		nilRef.Name = "nil"
		nilRef.Location = loc(qBegin, p.cur.Pos)

		u := p.arena.NewUnionType()
		u.Types = []ast.Type{t, nilRef}
		u.Location = loc(t.Loc().Begin, p.cur.Pos)
		t = u
	}
	return t
}

func (p *Parser) parseTypePrimary() ast.Type {
	begin := p.cur.Pos
	switch p.cur.Type {
	case token.LT:
		return p.parseFunctionType(begin, true)
	case token.LPAREN:
		return p.parseFunctionType(begin, false)
	case token.LBRACE:
		return p.parseTableType()
	case token.TYPEOF:
		return p.parseTypeofType()
	case token.TRUE, token.FALSE:
		v := p.cur.Type == token.TRUE
		n := p.arena.NewSingletonBoolType()
		n.Value = v
		n.Location = loc(begin, p.cur.EndPos)
		p.nextToken()
		return n
	case token.STRING:
		raw := p.cur.Literal
		style := p.currentQuoteStyle()
		n := p.arena.NewSingletonStringType()
		n.Value = string(escape.DecodeShortString(raw))
		n.Location = loc(begin, p.cur.EndPos)
		p.cst.Set(n, cst.TypeSingletonString{SourceString: raw, QuoteStyle: style})
		p.nextToken()
		return n
	case token.LONGSTRING:
		raw := p.cur.Literal
		depth := p.cur.Aux
		n := p.arena.NewSingletonStringType()
		n.Value = raw
		n.Location = loc(begin, p.cur.EndPos)
		p.cst.Set(n, cst.TypeSingletonString{SourceString: raw, QuoteStyle: cst.QuoteLongBracket, BlockDepth: depth})
		p.nextToken()
		return n
	case token.IDENT:
		return p.parseTypeRef()
	case token.NIL:
		n := p.arena.NewTypeRefType()
		n.Name = "nil"
		n.Location = loc(begin, p.cur.EndPos)
		p.nextToken()
		return n
	default:
		p.addError("unexpected token %s in type", p.cur.Type)
		e := p.arena.NewErrorType()
		e.Message = "unexpected token in type"
		e.Location = loc(begin, p.cur.EndPos)
		p.nextToken()
		return e
	}
}

// currentQuoteStyle inspects the raw source byte at the current
// token's start to tell a single-quoted string apart from a
// double-quoted one (the lexer discards the quote character itself
// from Literal).
func (p *Parser) currentQuoteStyle() cst.QuoteStyle {
	if p.lex.Source()[p.cur.StartOffset] == '"' {
		return cst.QuoteDouble
	}
	return cst.QuoteSingle
}

func (p *Parser) parseTypeofType() ast.Type {
	begin := p.cur.Pos
	p.nextToken() // typeof
	openPos := p.cur.Pos
	p.expect(token.LPAREN)
	expr := p.parseExpr(precLowest)
	closePos := p.cur.Pos
	p.expect(token.RPAREN)

	n := p.arena.NewTypeofType()
	n.Expr = expr
	n.Location = loc(begin, p.cur.Pos)
	p.cst.Set(n, cst.TypeTypeof{OpenPosition: openPos, ClosePosition: closePos})
	return n
}

func (p *Parser) parseTypeRef() ast.Type {
	begin := p.cur.Pos
	first := p.cur.Literal
	p.nextToken()

	var prefix *string
	var prefixDotPos *token.Position
	name := first
	if p.cur.Type == token.DOT {
		pos := p.cur.Pos
		prefixDotPos = &pos
		p.nextToken()
		prefix = &first
		name = p.cur.Literal
		p.expect(token.IDENT)
	}

	var params []ast.TypeOrPack
	var openPos, closePos *token.Position
	var commas []token.Position
	if p.cur.Type == token.LT {
		pos := p.cur.Pos
		openPos = &pos
		p.nextToken()
		params = append(params, p.parseTypeOrPack())
		for p.cur.Type == token.COMMA {
			commas = append(commas, p.cur.Pos)
			p.nextToken()
			params = append(params, p.parseTypeOrPack())
		}
		cp := p.cur.Pos
		closePos = &cp
		p.expect(token.GT)
	}

	n := p.arena.NewTypeRefType()
	n.Prefix = prefix
	n.Name = name
	n.Params = params
	n.Location = loc(begin, p.cur.Pos)
	p.cst.Set(n, cst.TypeRef{
		PrefixPointPosition: prefixDotPos, OpenParametersPosition: openPos,
		ParametersCommaPositions: commas, CloseParametersPosition: closePos,
	})
	return n
}

// parseTypeOrPack disambiguates a generic-parameter-list entry: a
// bare `Name...` reference is a generic type pack, everything else is
// a plain type. Explicit-pack-literal generic arguments are not
// supported by this simplified grammar.
func (p *Parser) parseTypeOrPack() ast.TypeOrPack {
	if p.cur.Type == token.IDENT && p.peek.Type == token.ELLIPSIS {
		begin := p.cur.Pos
		name := p.cur.Literal
		p.nextToken()
		ellipsisPos := p.cur.Pos
		p.nextToken()
		gp := p.arena.NewGenericTypePackRef()
		gp.Name = name
		gp.Location = loc(begin, p.cur.Pos)
		p.cst.Set(gp, cst.TypePackGeneric{EllipsisPosition: ellipsisPos})
		return ast.TypeOrPack{Pack: gp}
	}
	return ast.TypeOrPack{Type: p.parseType(precTypeLowest)}
}

func (p *Parser) parseFunctionType(begin token.Position, withGenerics bool) ast.Type {
	var generics []*ast.GenericType
	var genericPacks []*ast.GenericTypePack
	var openGenerics, closeGenerics *token.Position
	var genericsCommas []token.Position
	if withGenerics {
		pos := p.cur.Pos
		openGenerics = &pos
		p.nextToken() // <
		generics, genericPacks, genericsCommas = p.parseGenericsList()
		cp := p.cur.Pos
		closeGenerics = &cp
		p.expect(token.GT)
	}

	openArgs := p.cur.Pos
	p.expect(token.LPAREN)

	var args []ast.FuncArg
	var argColons []*token.Position
	var argCommas []token.Position
	var vararg ast.TypePack
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		if p.cur.Type == token.ELLIPSIS {
			p.nextToken()
			var colonPos *token.Position
			if p.cur.Type == token.COLON {
				pos := p.cur.Pos
				colonPos = &pos
				p.nextToken()
			}
			_ = colonPos
			vararg = p.parseTypePack()
			break
		}
		var name *string
		var colonPos *token.Position
		if p.cur.Type == token.IDENT && p.peek.Type == token.COLON {
			n := p.cur.Literal
			name = &n
			p.nextToken()
			pos := p.cur.Pos
			colonPos = &pos
			p.nextToken()
		}
		argType := p.parseType(precTypeLowest)
		args = append(args, ast.FuncArg{Name: name, Type: argType})
		argColons = append(argColons, colonPos)
		if p.cur.Type == token.COMMA {
			argCommas = append(argCommas, p.cur.Pos)
			p.nextToken()
			continue
		}
		break
	}
	closeArgs := p.cur.Pos
	p.expect(token.RPAREN)
	arrowPos := p.cur.Pos
	p.expect(token.ARROW)
	returns := p.parseTypePack()

	n := p.arena.NewFunctionTypeType()
	n.Generics = generics
	n.GenericPacks = genericPacks
	n.Args = args
	n.Vararg = vararg
	n.Returns = returns
	n.Location = loc(begin, p.cur.Pos)
	p.cst.Set(n, cst.TypeFunction{
		OpenGenericsPosition: openGenerics, GenericsCommaPositions: genericsCommas, CloseGenericsPosition: closeGenerics,
		OpenArgsPosition: openArgs, ArgumentNameColonPositions: argColons, ArgumentsCommaPositions: argCommas,
		CloseArgsPosition: closeArgs, ReturnArrowPosition: arrowPos,
	})
	return n
}

// parseTypePack parses a return-type / vararg-type / generic-pack
// position: an explicit parenthesized pack, a bare `Name...` generic
// pack reference, a `...T` variadic pack, or (the common case) a
// single bare type sugared into a one-element ExplicitPack.
func (p *Parser) parseTypePack() ast.TypePack {
	begin := p.cur.Pos

	if p.cur.Type == token.ELLIPSIS {
		p.nextToken()
		elem := p.parseType(precTypeLowest)
		vp := p.arena.NewVariadicPack()
		vp.Element = elem
		vp.Location = loc(begin, p.cur.Pos)
		return vp
	}

	if p.cur.Type == token.IDENT && p.peek.Type == token.ELLIPSIS {
		name := p.cur.Literal
		p.nextToken()
		ellipsisPos := p.cur.Pos
		p.nextToken()
		gp := p.arena.NewGenericTypePackRef()
		gp.Name = name
		gp.Location = loc(begin, p.cur.Pos)
		p.cst.Set(gp, cst.TypePackGeneric{EllipsisPosition: ellipsisPos})
		return gp
	}

	if p.cur.Type == token.LPAREN {
		return p.parseExplicitPack(begin)
	}

	t := p.parseType(precTypeLowest)
	ep := p.arena.NewExplicitPack()
	ep.Types = []ast.Type{t}
	ep.Location = t.Loc()
	return ep
}

func (p *Parser) parseExplicitPack(begin token.Position) ast.TypePack {
	openPos := p.cur.Pos
	p.nextToken() // (

	var types []ast.Type
	var tail ast.TypePack
	var commas []token.Position

	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		if p.cur.Type == token.ELLIPSIS {
			ellipsisBegin := p.cur.Pos
			p.nextToken()
			elem := p.parseType(precTypeLowest)
			vp := p.arena.NewVariadicPack()
			vp.Element = elem
			vp.Location = loc(ellipsisBegin, p.cur.Pos)
			tail = vp
			break
		}
		if p.cur.Type == token.IDENT && p.peek.Type == token.ELLIPSIS {
			nameBegin := p.cur.Pos
			name := p.cur.Literal
			p.nextToken()
			ellipsisPos := p.cur.Pos
			p.nextToken()
			gp := p.arena.NewGenericTypePackRef()
			gp.Name = name
			gp.Location = loc(nameBegin, p.cur.Pos)
			p.cst.Set(gp, cst.TypePackGeneric{EllipsisPosition: ellipsisPos})
			tail = gp
			break
		}
		types = append(types, p.parseType(precTypeLowest))
		if p.cur.Type == token.COMMA {
			commas = append(commas, p.cur.Pos)
			p.nextToken()
			continue
		}
		break
	}
	closePos := p.cur.Pos
	p.expect(token.RPAREN)

	ep := p.arena.NewExplicitPack()
	ep.Types = types
	ep.Tail = tail
	ep.Location = loc(begin, p.cur.Pos)
	p.cst.Set(ep, cst.TypePackExplicit{OpenParenthesesPosition: &openPos, CloseParenthesesPosition: &closePos, CommaPositions: commas})
	return ep
}

// parseTableType parses `{ props..., [indexer] }`, including the
// SUPPLEMENTED-FEATURES string-keyed property form `{ ["k"]: T }`
// and the array shorthand `{ T }` (spec.md §3.2 invariant, §4.6).
func (p *Parser) parseTableType() ast.Type {
	begin := p.cur.Pos
	p.nextToken() // {

	var props []ast.TableTypeProp
	var indexer *ast.TableTypeIndexer
	var itemCst []cst.TypeTableItem

	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		var newProp *ast.TableTypeProp
		var rec cst.TypeTableItem

		switch {
		case p.cur.Type == token.LBRACKET:
			openPos := p.cur.Pos
			p.nextToken()
			if (p.cur.Type == token.STRING || p.cur.Type == token.LONGSTRING) && p.peek.Type == token.RBRACKET {
				raw := p.cur.Literal
				var strLit cst.ExprConstantString
				var value string
				if p.cur.Type == token.LONGSTRING {
					strLit = cst.ExprConstantString{SourceString: raw, QuoteStyle: cst.QuoteLongBracket, BlockDepth: p.cur.Aux}
					value = raw
				} else {
					strLit = cst.ExprConstantString{SourceString: raw, QuoteStyle: p.currentQuoteStyle()}
					value = string(escape.DecodeShortString(raw))
				}
				p.nextToken()
				closePos := p.cur.Pos
				p.expect(token.RBRACKET)
				colonPos := p.cur.Pos
				p.expect(token.COLON)
				valType := p.parseType(precTypeLowest)
				newProp = &ast.TableTypeProp{Name: value, Access: ast.AccessReadWrite, Value: valType}
				rec = cst.TypeTableItem{Kind: cst.TableTypeStringProperty, ColonPosition: &colonPos, IndexerOpenPosition: &openPos, IndexerClosePosition: &closePos, StringKey: &strLit}
			} else {
				keyType := p.parseType(precTypeLowest)
				closePos := p.cur.Pos
				p.expect(token.RBRACKET)
				colonPos := p.cur.Pos
				p.expect(token.COLON)
				valType := p.parseType(precTypeLowest)
				indexer = &ast.TableTypeIndexer{Key: keyType, Value: valType}
				rec = cst.TypeTableItem{Kind: cst.TableTypeIndexer, ColonPosition: &colonPos, IndexerOpenPosition: &openPos, IndexerClosePosition: &closePos}
			}
		case (p.cur.Type == token.READ || p.cur.Type == token.WRITE) && p.peek.Type == token.IDENT:
			access := ast.AccessRead
			if p.cur.Type == token.WRITE {
				access = ast.AccessWrite
			}
			p.nextToken()
			name := p.cur.Literal
			p.expect(token.IDENT)
			colonPos := p.cur.Pos
			p.expect(token.COLON)
			valType := p.parseType(precTypeLowest)
			newProp = &ast.TableTypeProp{Name: name, Access: access, Value: valType}
			rec = cst.TypeTableItem{Kind: cst.TableTypeProperty, ColonPosition: &colonPos}
		case p.cur.Type == token.IDENT && p.peek.Type == token.COLON:
			name := p.cur.Literal
			p.nextToken()
			colonPos := p.cur.Pos
			p.nextToken()
			valType := p.parseType(precTypeLowest)
			newProp = &ast.TableTypeProp{Name: name, Access: ast.AccessReadWrite, Value: valType}
			rec = cst.TypeTableItem{Kind: cst.TableTypeProperty, ColonPosition: &colonPos}
		default:
			elemType := p.parseType(precTypeLowest)
			numRef := p.arena.NewTypeRefType()
			numRef.Name = "number"
			numRef.Location = elemType.Loc()
			indexer = &ast.TableTypeIndexer{Key: numRef, Value: elemType}
			rec = cst.TypeTableItem{Kind: cst.TableTypeIndexer}
		}

		if newProp != nil {
			props = append(props, *newProp)
		}

		if p.cur.Type == token.COMMA || p.cur.Type == token.SEMI {
			sep := ast.SepComma
			if p.cur.Type == token.SEMI {
				sep = ast.SepSemicolon
			}
			if newProp != nil {
				props[len(props)-1].Separator = sep
				props[len(props)-1].HasSep = true
			}
			pos := p.cur.Pos
			rec.SeparatorPosition = &pos
			itemCst = append(itemCst, rec)
			p.nextToken()
			continue
		}
		itemCst = append(itemCst, rec)
		break
	}
	p.expect(token.RBRACE)

	n := p.arena.NewTableTypeType()
	n.Props = props
	n.Indexer = indexer
	n.Location = loc(begin, p.cur.Pos)
	p.cst.Set(n, cst.TypeTable{Items: itemCst})
	return n
}
