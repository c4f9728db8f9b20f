package parser

import (
	"strconv"
	"strings"

	"luaprint/pkg/ast"
	"luaprint/pkg/cst"
	"luaprint/pkg/escape"
	"luaprint/pkg/token"
)

// Value-expression precedence levels, lowest to tightest (spec.md
// §3.2/§4.3's operator set, ordered the way the source language
// itself orders them: or < and < comparisons < concat < +- < */%//
// < unary < ^).
const (
	precLowest = iota
	precOr
	precAnd
	precCompare
	precConcat
	precAdd
	precMul
	precUnary
	precPow
)

type binOpInfo struct {
	op         ast.BinOp
	prec       int
	rightAssoc bool
}

var binOps = map[token.Type]binOpInfo{
	token.OR:      {ast.BinOr, precOr, false},
	token.AND:     {ast.BinAnd, precAnd, false},
	token.LT:      {ast.BinLt, precCompare, false},
	token.LE:      {ast.BinLe, precCompare, false},
	token.GT:      {ast.BinGt, precCompare, false},
	token.GE:      {ast.BinGe, precCompare, false},
	token.EQ:      {ast.BinEq, precCompare, false},
	token.NEQ:     {ast.BinNeq, precCompare, false},
	token.CONCAT:  {ast.BinConcat, precConcat, true},
	token.PLUS:    {ast.BinAdd, precAdd, false},
	token.MINUS:   {ast.BinSub, precAdd, false},
	token.STAR:    {ast.BinMul, precMul, false},
	token.SLASH:   {ast.BinDiv, precMul, false},
	token.DSLASH:  {ast.BinFloorDiv, precMul, false},
	token.PERCENT: {ast.BinMod, precMul, false},
	token.CARET:   {ast.BinPow, precPow, true},
}

var unaryOps = map[token.Type]ast.UnOp{
	token.NOT:   ast.UnaryNot,
	token.MINUS: ast.UnaryMinus,
	token.HASH:  ast.UnaryLen,
}

// parseExpr parses a full expression via precedence climbing, only
// descending into operators whose precedence is >= minPrec.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()
	for {
		info, ok := binOps[p.cur.Type]
		if !ok || info.prec < minPrec {
			return left
		}
		opPos := p.cur.Pos
		p.nextToken()
		nextMin := info.prec + 1
		if info.rightAssoc {
			nextMin = info.prec
		}
		right := p.parseExpr(nextMin)

		bin := p.arena.NewBinaryExpr()
		bin.Left = left
		bin.Op = info.op
		bin.Right = right
		bin.Location = loc(left.Loc().Begin, right.Loc().End)
		p.cst.Set(bin, cst.ExprOp{OpPosition: opPos})
		left = bin
	}
}

func (p *Parser) parseUnary() ast.Expr {
	if op, ok := unaryOps[p.cur.Type]; ok {
		begin := p.cur.Pos
		opPos := p.cur.Pos
		p.nextToken()
		operand := p.parseExpr(precUnary)

		u := p.arena.NewUnaryExpr()
		u.Op = op
		u.Operand = operand
		u.Location = loc(begin, operand.Loc().End)
		p.cst.Set(u, cst.ExprOp{OpPosition: opPos})
		return u
	}
	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix applies index/call/type-assertion/instantiation
// suffixes to expr until none remain.
func (p *Parser) parsePostfix(expr ast.Expr) ast.Expr {
	for {
		switch p.cur.Type {
		case token.DOT:
			expr = p.parseIndexName(expr, ast.IndexDot)
		case token.COLON:
			expr = p.parseMethodCall(expr)
		case token.LBRACKET:
			expr = p.parseIndexExpr(expr)
		case token.LPAREN, token.STRING, token.LONGSTRING, token.LBRACE, token.INTERP_BEGIN:
			expr = p.parseCallArgs(expr, nil, nil, false)
		case token.DCOLON:
			if p.peek.Type == token.LT {
				typeArgs, instCst := p.parseExplicitTypeArgs()
				expr = p.parseCallArgs(expr, typeArgs, &instCst, false)
			} else {
				expr = p.parseTypeAssertion(expr)
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parseIndexName(obj ast.Expr, op ast.IndexOp) ast.Expr {
	opLoc := loc(p.cur.Pos, p.cur.EndPos)
	p.nextToken() // . or :
	nameBegin := p.cur.Pos
	name := p.cur.Literal
	p.expect(token.IDENT)

	idx := p.arena.NewIndexNameExpr()
	idx.Obj = obj
	idx.Op = op
	idx.Name = name
	idx.OpLoc = opLoc
	idx.NameLoc = loc(nameBegin, p.cur.Pos)
	idx.Location = loc(obj.Loc().Begin, p.cur.Pos)
	return idx
}

// parseMethodCall handles `obj:name(...)`, which must be followed
// immediately by a call (spec.md §3.2: `:` index-by-name is only
// meaningful as the callee of a call).
func (p *Parser) parseMethodCall(obj ast.Expr) ast.Expr {
	idx := p.parseIndexName(obj, ast.IndexColon)
	return p.parseCallArgs(idx, nil, nil, true)
}

func (p *Parser) parseIndexExpr(obj ast.Expr) ast.Expr {
	openPos := p.cur.Pos
	p.nextToken() // [
	key := p.parseExpr(precLowest)
	closePos := p.cur.Pos
	p.expect(token.RBRACKET)

	idx := p.arena.NewIndexExprExpr()
	idx.Obj = obj
	idx.Key = key
	idx.Location = loc(obj.Loc().Begin, p.cur.Pos)
	p.cst.Set(idx, cst.ExprIndexExpr{OpenBracketPosition: openPos, CloseBracketPosition: closePos})
	return idx
}

// parseCallArgs parses either parenthesized args, or Lua's sugared
// single-argument call (a bare string or table literal), per
// spec.md §4.3 Call / §9(a). methodCall records whether callee is a
// `:`-form method reference.
func (p *Parser) parseCallArgs(callee ast.Expr, typeArgs []ast.Type, instCst *cst.ExprTypeInstantiation, methodCall bool) ast.Expr {
	var args []ast.Expr
	var openParens, closeParens *token.Position
	var commas []token.Position

	switch p.cur.Type {
	case token.LPAREN:
		pos := p.cur.Pos
		openParens = &pos
		p.nextToken()
		if p.cur.Type != token.RPAREN {
			args = append(args, p.parseExpr(precLowest))
			for p.cur.Type == token.COMMA {
				commas = append(commas, p.cur.Pos)
				p.nextToken()
				args = append(args, p.parseExpr(precLowest))
			}
		}
		closePos := p.cur.Pos
		closeParens = &closePos
		p.expect(token.RPAREN)
	case token.STRING, token.LONGSTRING:
		args = append(args, p.parsePrimary())
	case token.LBRACE:
		args = append(args, p.parsePrimary())
	case token.INTERP_BEGIN:
		args = append(args, p.parsePrimary())
	default:
		p.addError("expected call arguments, got %s", p.cur.Type)
	}

	call := p.arena.NewCallExpr()
	call.Callee = callee
	call.Args = args
	call.TypeArgs = typeArgs
	call.MethodCall = methodCall
	call.Location = loc(callee.Loc().Begin, p.cur.Pos)
	p.cst.Set(call, cst.ExprCall{OpenParens: openParens, CloseParens: closeParens, CommaPositions: commas, ExplicitTypes: instCst})
	return call
}

// parseExplicitTypeArgs parses the SUPPLEMENTED-FEATURES call-site
// generic instantiation `::<T, U>` (SPEC_FULL.md, grounded on
// original_source/Analysis/src/Transpiler.cpp), leaving the parser
// positioned right after the closing `>` so the caller can expect a
// call immediately.
func (p *Parser) parseExplicitTypeArgs() ([]ast.Type, cst.ExprTypeInstantiation) {
	la1 := p.cur.Pos
	p.nextToken() // ::
	la2 := p.cur.Pos
	p.nextToken() // <

	var types []ast.Type
	var commas []token.Position
	types = append(types, p.parseType(precTypeLowest))
	for p.cur.Type == token.COMMA {
		commas = append(commas, p.cur.Pos)
		p.nextToken()
		types = append(types, p.parseType(precTypeLowest))
	}
	ra1 := p.cur.Pos
	p.expect(token.GT)

	return types, cst.ExprTypeInstantiation{
		LeftArrow1Position: la1, LeftArrow2Position: la2,
		RightArrow1Position: ra1, CommaPositions: commas,
	}
}

func (p *Parser) parseTypeAssertion(expr ast.Expr) ast.Expr {
	opPos := p.cur.Pos
	p.nextToken() // ::
	annotation := p.parseType(precTypeLowest)

	ta := p.arena.NewTypeAssertionExpr()
	ta.Expr = expr
	ta.Annotation = annotation
	ta.Location = loc(expr.Loc().Begin, p.cur.Pos)
	p.cst.Set(ta, cst.ExprTypeAssertion{OpPosition: opPos})
	return ta
}

func (p *Parser) parsePrimary() ast.Expr {
	begin := p.cur.Pos
	switch p.cur.Type {
	case token.NIL:
		n := p.arena.NewConstantNilExpr()
		n.Location = loc(begin, p.cur.EndPos)
		p.nextToken()
		return n
	case token.TRUE, token.FALSE:
		v := p.cur.Type == token.TRUE
		n := p.arena.NewConstantBoolExpr()
		n.Value = v
		n.Location = loc(begin, p.cur.EndPos)
		p.nextToken()
		return n
	case token.NUMBER:
		raw := p.cur.Literal
		val := parseNumberLiteral(raw)
		n := p.arena.NewConstantNumberExpr()
		n.Value = val
		n.Location = loc(begin, p.cur.EndPos)
		p.cst.Set(n, cst.ExprConstantNumber{SourceString: raw})
		p.nextToken()
		return n
	case token.STRING:
		return p.parseShortStringExpr()
	case token.LONGSTRING:
		return p.parseLongStringExpr()
	case token.INTERP_BEGIN:
		return p.parseInterpString()
	case token.ELLIPSIS:
		n := p.arena.NewVarargExpr()
		n.Location = loc(begin, p.cur.EndPos)
		p.nextToken()
		return n
	case token.IDENT:
		return p.parseIdentExpr()
	case token.LPAREN:
		return p.parseGroupExpr()
	case token.LBRACE:
		return p.parseTableExpr()
	case token.FUNCTION:
		p.nextToken() // function
		fn := p.parseFunctionBody(false)
		fn.Location.Begin = begin
		return fn
	case token.IF:
		return p.parseIfElseExpr()
	default:
		p.addError("unexpected token %s in expression", p.cur.Type)
		e := p.arena.NewErrorExpr()
		e.Message = "unexpected token in expression"
		e.Location = loc(begin, p.cur.EndPos)
		p.nextToken()
		return e
	}
}

func (p *Parser) parseShortStringExpr() ast.Expr {
	begin := p.cur.Pos
	raw := p.cur.Literal
	quoteByte := p.lex.Source()[p.cur.StartOffset]
	style := cst.QuoteSingle
	if quoteByte == '"' {
		style = cst.QuoteDouble
	}

	n := p.arena.NewConstantStringExpr()
	n.Value = escape.DecodeShortString(raw)
	n.Location = loc(begin, p.cur.EndPos)
	p.cst.Set(n, cst.ExprConstantString{SourceString: raw, QuoteStyle: style})
	p.nextToken()
	return n
}

func (p *Parser) parseLongStringExpr() ast.Expr {
	begin := p.cur.Pos
	raw := p.cur.Literal
	depth := p.cur.Aux

	n := p.arena.NewConstantStringExpr()
	n.Value = []byte(raw)
	n.Location = loc(begin, p.cur.EndPos)
	p.cst.Set(n, cst.ExprConstantString{SourceString: raw, QuoteStyle: cst.QuoteLongBracket, BlockDepth: depth})
	p.nextToken()
	return n
}

// parseInterpString parses a backtick interpolated string, driven by
// the lexer's INTERP_BEGIN/INTERP_MID/INTERP_END protocol: each hole
// is a full expression parsed with the normal precedence climber.
func (p *Parser) parseInterpString() ast.Expr {
	begin := p.cur.Pos
	var strings_ []string
	var raws []string
	var positions []token.Position
	var exprs []ast.Expr

	strings_ = append(strings_, escape.DecodeInterpFragment(p.cur.Literal))
	raws = append(raws, p.cur.Literal)
	positions = append(positions, p.cur.Pos)
	for {
		p.nextToken()
		if p.curIs(token.INTERP_MID) || p.curIs(token.INTERP_END) {
			// no more holes possible here, but loop below handles it
		} else {
			exprs = append(exprs, p.parseExpr(precLowest))
		}
		if p.curIs(token.INTERP_MID) {
			strings_ = append(strings_, escape.DecodeInterpFragment(p.cur.Literal))
			raws = append(raws, p.cur.Literal)
			positions = append(positions, p.cur.Pos)
			continue
		}
		if p.curIs(token.INTERP_END) {
			strings_ = append(strings_, escape.DecodeInterpFragment(p.cur.Literal))
			raws = append(raws, p.cur.Literal)
			positions = append(positions, p.cur.Pos)
			break
		}
		p.addError("unterminated interpolated string")
		break
	}
	end := p.cur.EndPos
	p.nextToken()

	n := p.arena.NewInterpStringExpr()
	n.Strings = strings_
	n.Expressions = exprs
	n.Location = loc(begin, end)
	p.cst.Set(n, cst.ExprInterpString{SourceStrings: raws, StringPositions: positions})
	return n
}

func (p *Parser) parseIdentExpr() ast.Expr {
	begin := p.cur.Pos
	name := p.cur.Literal
	p.nextToken()
	if p.isLocal(name) {
		n := p.arena.NewLocalRefExpr()
		n.Name = name
		n.Location = loc(begin, p.cur.Pos)
		return n
	}
	n := p.arena.NewGlobalRefExpr()
	n.Name = name
	n.Location = loc(begin, p.cur.Pos)
	return n
}

func (p *Parser) parseGroupExpr() ast.Expr {
	begin := p.cur.Pos
	p.nextToken() // (
	inner := p.parseExpr(precLowest)
	end := p.cur.EndPos
	p.expect(token.RPAREN)

	n := p.arena.NewGroupExpr()
	n.Inner = inner
	n.Location = loc(begin, end)
	return n
}

func (p *Parser) parseTableExpr() ast.Expr {
	begin := p.cur.Pos
	p.nextToken() // {

	var items []ast.TableItem
	var itemCst []cst.ExprTableItem

	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		item, rec := p.parseTableItem()
		var sepPos token.Position
		hasSep := false
		if p.cur.Type == token.COMMA || p.cur.Type == token.SEMI {
			sepPos = p.cur.Pos
			hasSep = true
			if p.cur.Type == token.SEMI {
				item.Separator = ast.SepSemicolon
			} else {
				item.Separator = ast.SepComma
			}
			p.nextToken()
		}
		item.HasSep = hasSep
		items = append(items, item)
		rec.SeparatorPosition = sepPos
		itemCst = append(itemCst, rec)
		if !hasSep {
			break
		}
	}
	end := p.cur.EndPos
	p.expect(token.RBRACE)

	n := p.arena.NewTableExpr()
	n.Items = items
	n.Location = loc(begin, end)
	p.cst.Set(n, cst.ExprTable{Items: itemCst})
	return n
}

func (p *Parser) parseTableItem() (ast.TableItem, cst.ExprTableItem) {
	switch {
	case p.cur.Type == token.LBRACKET:
		openPos := p.cur.Pos
		p.nextToken()
		key := p.parseExpr(precLowest)
		closePos := p.cur.Pos
		p.expect(token.RBRACKET)
		eqPos := p.cur.Pos
		p.expect(token.ASSIGN)
		value := p.parseExpr(precLowest)
		return ast.TableItem{Kind: ast.TableItemGeneral, Key: key, Value: value},
			cst.ExprTableItem{EqualsPosition: &eqPos, IndexerOpenPosition: &openPos, IndexerClosePosition: &closePos}
	case p.cur.Type == token.IDENT && p.peek.Type == token.ASSIGN:
		nameBegin := p.cur.Pos
		name := p.cur.Literal
		p.nextToken()
		eqPos := p.cur.Pos
		p.nextToken()
		value := p.parseExpr(precLowest)
		return ast.TableItem{Kind: ast.TableItemRecord, Name: name, NameLoc: loc(nameBegin, eqPos), Value: value},
			cst.ExprTableItem{EqualsPosition: &eqPos}
	default:
		value := p.parseExpr(precLowest)
		return ast.TableItem{Kind: ast.TableItemList, Value: value}, cst.ExprTableItem{}
	}
}

// parseIfElseExpr parses the mandatory-else if-expression (spec.md
// §3.2/§4.3), recursively for an elseif chain the same way parseIfStat
// builds an IfStat chain.
func (p *Parser) parseIfElseExpr() ast.Expr {
	begin := p.cur.Pos
	p.nextToken() // if
	cond := p.parseExpr(precLowest)
	thenPos := p.cur.Pos
	p.expect(token.THEN)
	trueExpr := p.parseExpr(precLowest)

	var falseExpr ast.Expr
	var elsePos token.Position
	isElseIf := false
	switch p.cur.Type {
	case token.ELSEIF:
		elsePos = p.cur.Pos
		isElseIf = true
		falseExpr = p.parseIfElseExprTail()
	case token.ELSE:
		elsePos = p.cur.Pos
		p.nextToken()
		falseExpr = p.parseExpr(precLowest)
	default:
		p.addError("expected 'else' (if-expressions require one), got %s", p.cur.Type)
	}

	n := p.arena.NewIfElseExpr()
	n.Condition = cond
	n.True = trueExpr
	n.False = falseExpr
	n.Location = loc(begin, p.cur.Pos)
	p.cst.Set(n, cst.ExprIfElse{ThenPosition: thenPos, ElsePosition: elsePos, IsElseIf: isElseIf})
	return n
}

// parseIfElseExprTail parses `elseif cond then expr ...` as a nested
// IfElseExpr, reusing the `if` grammar's rule that `elseif` behaves
// exactly like `else if`.
func (p *Parser) parseIfElseExprTail() ast.Expr {
	begin := p.cur.Pos
	p.nextToken() // elseif
	cond := p.parseExpr(precLowest)
	thenPos := p.cur.Pos
	p.expect(token.THEN)
	trueExpr := p.parseExpr(precLowest)

	var falseExpr ast.Expr
	var elsePos token.Position
	isElseIf := false
	switch p.cur.Type {
	case token.ELSEIF:
		elsePos = p.cur.Pos
		isElseIf = true
		falseExpr = p.parseIfElseExprTail()
	case token.ELSE:
		elsePos = p.cur.Pos
		p.nextToken()
		falseExpr = p.parseExpr(precLowest)
	default:
		p.addError("expected 'else' (if-expressions require one), got %s", p.cur.Type)
	}

	n := p.arena.NewIfElseExpr()
	n.Condition = cond
	n.True = trueExpr
	n.False = falseExpr
	n.Location = loc(begin, p.cur.Pos)
	p.cst.Set(n, cst.ExprIfElse{ThenPosition: thenPos, ElsePosition: elsePos, IsElseIf: isElseIf})
	return n
}

// parseFunctionBody parses the common tail of a function
// expression/declaration/local-function/type-function starting right
// after the `function` keyword (and, for a declaration, its dotted
// name): `[<generics>](args) [: returns] block end`.
func (p *Parser) parseFunctionBody(selfParam bool) *ast.FunctionExpr {
	begin := p.cur.Pos
	p.pushScope()
	defer p.popScope()

	var generics []*ast.GenericType
	var genericPacks []*ast.GenericTypePack
	if p.cur.Type == token.LT {
		p.nextToken()
		generics, genericPacks, _ = p.parseGenericsList()
		p.expect(token.GT)
	}

	p.expect(token.LPAREN)
	var args []*ast.Local
	var argColons []cst.PosPtr
	var argCommas []token.Position
	var varargColon, returnColon cst.PosPtr
	vararg := false
	var varargType ast.TypePack
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		if p.cur.Type == token.ELLIPSIS {
			p.nextToken()
			vararg = true
			if p.cur.Type == token.COLON {
				colonPos := p.cur.Pos
				varargColon = &colonPos
				p.nextToken()
				varargType = p.parseTypePack()
			}
			break
		}
		nameBegin := p.cur.Pos
		name := p.cur.Literal
		p.expect(token.IDENT)
		local := p.arena.NewLocal()
		local.Name = name
		var colon cst.PosPtr
		if p.cur.Type == token.COLON {
			colonPos := p.cur.Pos
			colon = &colonPos
			p.nextToken()
			local.Annotation = p.parseType(precTypeLowest)
		}
		argColons = append(argColons, colon)
		local.Location = loc(nameBegin, p.cur.Pos)
		p.declareLocal(name)
		args = append(args, local)
		if p.cur.Type == token.COMMA {
			argCommas = append(argCommas, p.cur.Pos)
			p.nextToken()
			continue
		}
		break
	}
	p.expect(token.RPAREN)

	var returns ast.TypePack
	if p.cur.Type == token.COLON {
		colonPos := p.cur.Pos
		returnColon = &colonPos
		p.nextToken()
		returns = p.parseTypePack()
	}

	body := p.parseBlock(token.END)
	end := p.cur.EndPos
	p.expect(token.END)

	fn := p.arena.NewFunctionExpr()
	fn.Generics = generics
	fn.GenericPacks = genericPacks
	fn.Args = args
	fn.Vararg = vararg
	fn.VarargType = varargType
	fn.ReturnTypes = returns
	fn.Body = body
	fn.SelfParam = selfParam
	fn.Location = loc(begin, end)
	p.cst.Set(fn, cst.ExprFunction{ArgsAnnotationColonPositions: argColons, ArgsCommaPositions: argCommas,
		VarargAnnotationColonPosition: varargColon, ReturnSpecifierPosition: returnColon})
	return fn
}

// parseGenericsList parses the comma-separated contents of a
// `<...>` generics clause, splitting plain generics from
// generic-packs (trailing `...`), shared by function literals, type
// aliases, and function-type annotations.
func (p *Parser) parseGenericsList() ([]*ast.GenericType, []*ast.GenericTypePack, []token.Position) {
	var generics []*ast.GenericType
	var packs []*ast.GenericTypePack
	var commas []token.Position

	parseOne := func() {
		begin := p.cur.Pos
		name := p.cur.Literal
		p.expect(token.IDENT)
		if p.cur.Type == token.ELLIPSIS {
			p.nextToken()
			gp := p.arena.NewGenericTypePack()
			gp.Name = name
			if p.cur.Type == token.ASSIGN {
				p.nextToken()
				gp.Default = p.parseTypePack()
			}
			gp.Location = loc(begin, p.cur.Pos)
			packs = append(packs, gp)
			return
		}
		g := p.arena.NewGenericType()
		g.Name = name
		if p.cur.Type == token.ASSIGN {
			p.nextToken()
			g.Default = p.parseType(precTypeLowest)
		}
		g.Location = loc(begin, p.cur.Pos)
		generics = append(generics, g)
	}

	parseOne()
	for p.cur.Type == token.COMMA {
		commas = append(commas, p.cur.Pos)
		p.nextToken()
		parseOne()
	}
	return generics, packs, commas
}

// parseNumberLiteral decodes a raw numeric lexeme (decimal, hex,
// binary, with optional `_` digit separators) into its float64 value.
func parseNumberLiteral(raw string) float64 {
	clean := strings.ReplaceAll(raw, "_", "")
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		if v, err := strconv.ParseUint(clean[2:], 16, 64); err == nil {
			return float64(v)
		}
		return 0
	}
	if strings.HasPrefix(clean, "0b") || strings.HasPrefix(clean, "0B") {
		if v, err := strconv.ParseUint(clean[2:], 2, 64); err == nil {
			return float64(v)
		}
		return 0
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return v
}
