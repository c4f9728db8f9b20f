package parser

import (
	"luaprint/pkg/ast"
	"luaprint/pkg/cst"
	"luaprint/pkg/token"
)

// parseBlock parses statements until it sees stopAt (normally
// token.EOF, token.END, token.ELSE, token.ELSEIF, or token.UNTIL) and
// returns them wrapped in a fresh lexical scope.
func (p *Parser) parseBlock(stopAt ...token.Type) *ast.BlockStat {
	begin := p.cur.Pos
	p.pushScope()
	defer p.popScope()

	stop := func() bool {
		for _, t := range stopAt {
			if p.cur.Type == t {
				return true
			}
		}
		return p.cur.Type == token.EOF
	}

	var body []ast.Stat
	for !stop() {
		stat := p.parseStatement()
		if stat == nil {
			// parseStatement returns nil, without consuming anything,
			// for a bare semicolon and after recording an error and
			// failing to make forward progress; advance by one token
			// so the loop terminates.
			p.nextToken()
			continue
		}
		body = append(body, stat)
	}

	block := p.arena.NewBlockStat()
	block.Location = loc(begin, p.cur.Pos)
	block.Body = body
	return block
}

func (p *Parser) parseStatement() ast.Stat {
	switch p.cur.Type {
	case token.SEMI:
		// A bare semicolon is not itself a statement; attach it to
		// nothing and leave it for parseBlock to skip.
		return nil
	case token.IF:
		return p.parseIfStat()
	case token.WHILE:
		return p.parseWhileStat()
	case token.REPEAT:
		return p.parseRepeatStat()
	case token.BREAK:
		return p.finishSimple(p.arena.NewBreakStat())
	case token.CONTINUE:
		return p.finishSimple(p.arena.NewContinueStat())
	case token.DO:
		return p.parseDoStat()
	case token.RETURN:
		return p.parseReturnStat()
	case token.FOR:
		return p.parseForStat()
	case token.LOCAL:
		return p.parseLocalStat()
	case token.FUNCTION:
		return p.parseFunctionDeclStat()
	case token.TYPE:
		return p.parseTypeAliasOrFunctionStat(false)
	case token.EXPORT:
		return p.parseExportStat()
	default:
		return p.parseExprOrAssignStat()
	}
}

// finishSimple consumes the keyword token of a no-field statement
// (break/continue), applies its location, and checks for a trailing
// semicolon.
func (p *Parser) finishSimple(s ast.Stat) ast.Stat {
	begin := p.cur.Pos
	end := p.cur.EndPos
	p.nextToken()
	switch n := s.(type) {
	case *ast.BreakStat:
		n.Location = loc(begin, end)
	case *ast.ContinueStat:
		n.Location = loc(begin, end)
	}
	p.consumeOptionalSemicolon(s)
	return s
}

func (p *Parser) consumeOptionalSemicolon(s ast.Stat) {
	if p.cur.Type == token.SEMI {
		s.SetSemicolon(true)
		p.nextToken()
	}
}

// parseDoStat parses `do ... end` as a bare block statement; the
// printer renders any BlockStat that appears directly in a Stat
// position this way, so DoStat has no dedicated AST node.
func (p *Parser) parseDoStat() ast.Stat {
	begin := p.cur.Pos
	p.nextToken() // do
	block := p.parseBlock(token.END)
	block.Location.Begin = begin
	block.Location.End = p.cur.EndPos
	p.expect(token.END)
	p.consumeOptionalSemicolon(block)
	return block
}

func (p *Parser) parseIfStat() ast.Stat {
	begin := p.cur.Pos
	p.nextToken() // if
	cond := p.parseExpr(precLowest)
	thenPos := p.cur.Pos
	p.expect(token.THEN)
	thenBody := p.parseBlock(token.ELSEIF, token.ELSE, token.END)

	stat := p.arena.NewIfStat()
	stat.Condition = cond
	stat.ThenBody = thenBody
	p.cst.Set(stat, cst.ExprIfElse{ThenPosition: thenPos})

	switch p.cur.Type {
	case token.ELSEIF:
		elseifBegin := p.cur.Pos
		rec, _ := cst.Get[cst.ExprIfElse](p.cst, stat)
		rec.ElsePosition = elseifBegin
		p.cst.Set(stat, rec)
		p.nextToken()
		elseifCond := p.parseExpr(precLowest)
		elseifThenPos := p.cur.Pos
		p.expect(token.THEN)
		elseifBody := p.parseBlock(token.ELSEIF, token.ELSE, token.END)
		inner := p.parseElseifChain(elseifBegin, elseifCond, elseifThenPos, elseifBody)
		stat.ElseBody = inner
		stat.Location = loc(begin, p.cur.EndPos)
		p.expect(token.END)
	case token.ELSE:
		elsePos := p.cur.Pos
		rec, _ := cst.Get[cst.ExprIfElse](p.cst, stat)
		rec.ElsePosition = elsePos
		p.cst.Set(stat, rec)
		p.nextToken()
		elseBody := p.parseBlock(token.END)
		stat.ElseBody = elseBody
		stat.Location = loc(begin, p.cur.EndPos)
		p.expect(token.END)
	default:
		stat.Location = loc(begin, p.cur.EndPos)
		p.expect(token.END)
	}
	p.consumeOptionalSemicolon(stat)
	return stat
}

// parseElseifChain builds the remaining elseif links recursively, per
// ast.IfStat's doc comment: ElseBody is either another *IfStat or a
// terminal *BlockStat.
func (p *Parser) parseElseifChain(begin token.Position, cond ast.Expr, thenPos token.Position, body *ast.BlockStat) *ast.IfStat {
	stat := p.arena.NewIfStat()
	stat.Condition = cond
	stat.ThenBody = body
	p.cst.Set(stat, cst.ExprIfElse{ThenPosition: thenPos, IsElseIf: true})

	switch p.cur.Type {
	case token.ELSEIF:
		nextBegin := p.cur.Pos
		rec, _ := cst.Get[cst.ExprIfElse](p.cst, stat)
		rec.ElsePosition = nextBegin
		p.cst.Set(stat, rec)
		p.nextToken()
		nextCond := p.parseExpr(precLowest)
		nextThenPos := p.cur.Pos
		p.expect(token.THEN)
		nextBody := p.parseBlock(token.ELSEIF, token.ELSE, token.END)
		inner := p.parseElseifChain(nextBegin, nextCond, nextThenPos, nextBody)
		stat.ElseBody = inner
		stat.Location = loc(begin, inner.Loc().End)
	case token.ELSE:
		elsePos := p.cur.Pos
		rec, _ := cst.Get[cst.ExprIfElse](p.cst, stat)
		rec.ElsePosition = elsePos
		p.cst.Set(stat, rec)
		p.nextToken()
		elseBody := p.parseBlock(token.END)
		stat.ElseBody = elseBody
		stat.Location = loc(begin, elseBody.Loc().End)
	default:
		stat.Location = loc(begin, body.Loc().End)
	}
	return stat
}

func (p *Parser) parseWhileStat() ast.Stat {
	begin := p.cur.Pos
	p.nextToken() // while
	cond := p.parseExpr(precLowest)
	p.expect(token.DO)
	body := p.parseBlock(token.END)
	end := p.cur.EndPos
	p.expect(token.END)

	stat := p.arena.NewWhileStat()
	stat.Condition = cond
	stat.Body = body
	stat.Location = loc(begin, end)
	p.consumeOptionalSemicolon(stat)
	return stat
}

func (p *Parser) parseRepeatStat() ast.Stat {
	begin := p.cur.Pos
	p.nextToken() // repeat
	body := p.parseBlock(token.UNTIL)
	untilPos := p.cur.Pos
	p.expect(token.UNTIL)
	cond := p.parseExpr(precLowest)

	stat := p.arena.NewRepeatStat()
	stat.Body = body
	stat.Condition = cond
	stat.Location = loc(begin, p.cur.Pos)
	p.cst.Set(stat, cst.StatRepeat{UntilPosition: untilPos})
	p.consumeOptionalSemicolon(stat)
	return stat
}

func (p *Parser) parseReturnStat() ast.Stat {
	begin := p.cur.Pos
	p.nextToken() // return
	var values []ast.Expr
	var commas []token.Position
	if !p.atBlockEnd() {
		values = append(values, p.parseExpr(precLowest))
		for p.cur.Type == token.COMMA {
			commas = append(commas, p.cur.Pos)
			p.nextToken()
			values = append(values, p.parseExpr(precLowest))
		}
	}
	stat := p.arena.NewReturnStat()
	stat.Values = values
	stat.Location = loc(begin, p.cur.Pos)
	p.cst.Set(stat, cst.StatReturn{CommaPositions: commas})
	p.consumeOptionalSemicolon(stat)
	return stat
}

// atBlockEnd reports whether the current token cannot start an
// expression, used by parseReturnStat to detect a bare `return`.
func (p *Parser) atBlockEnd() bool {
	switch p.cur.Type {
	case token.END, token.ELSE, token.ELSEIF, token.UNTIL, token.EOF, token.SEMI:
		return true
	}
	return false
}

func (p *Parser) parseForStat() ast.Stat {
	begin := p.cur.Pos
	p.nextToken() // for
	firstName := p.cur.Literal
	firstBegin := p.cur.Pos
	p.expect(token.IDENT)

	if p.cur.Type == token.ASSIGN {
		return p.parseNumericForStat(begin, firstName, firstBegin)
	}
	return p.parseGenericForStat(begin, firstName, firstBegin)
}

func (p *Parser) parseNumericForStat(begin token.Position, name string, nameBegin token.Position) ast.Stat {
	eqPos := p.cur.Pos
	p.nextToken() // =
	from := p.parseExpr(precLowest)
	endCommaPos := p.cur.Pos
	p.expect(token.COMMA)
	to := p.parseExpr(precLowest)

	var step ast.Expr
	var stepCommaPos *token.Position
	if p.cur.Type == token.COMMA {
		pos := p.cur.Pos
		stepCommaPos = &pos
		p.nextToken()
		step = p.parseExpr(precLowest)
	}
	p.expect(token.DO)

	v := p.arena.NewLocal()
	v.Location = loc(nameBegin, nameBegin)
	v.Name = name
	p.declareLocal(name)

	body := p.parseBlock(token.END)
	end := p.cur.EndPos
	p.expect(token.END)

	stat := p.arena.NewNumericForStat()
	stat.Var = v
	stat.From = from
	stat.To = to
	stat.Step = step
	stat.Body = body
	stat.Location = loc(begin, end)
	p.cst.Set(stat, cst.StatNumericFor{
		EqualsPosition:    eqPos,
		EndCommaPosition:  endCommaPos,
		StepCommaPosition: stepCommaPos,
	})
	p.consumeOptionalSemicolon(stat)
	return stat
}

func (p *Parser) parseGenericForStat(begin token.Position, firstName string, firstBegin token.Position) ast.Stat {
	names := []string{firstName}
	nameBegins := []token.Position{firstBegin}
	var varsCommas []token.Position
	for p.cur.Type == token.COMMA {
		varsCommas = append(varsCommas, p.cur.Pos)
		p.nextToken()
		nameBegins = append(nameBegins, p.cur.Pos)
		names = append(names, p.cur.Literal)
		p.expect(token.IDENT)
	}
	p.expect(token.IN)

	var iterators []ast.Expr
	var valuesCommas []token.Position
	iterators = append(iterators, p.parseExpr(precLowest))
	for p.cur.Type == token.COMMA {
		valuesCommas = append(valuesCommas, p.cur.Pos)
		p.nextToken()
		iterators = append(iterators, p.parseExpr(precLowest))
	}
	p.expect(token.DO)

	vars := make([]*ast.Local, len(names))
	for i, n := range names {
		v := p.arena.NewLocal()
		v.Location = loc(nameBegins[i], nameBegins[i])
		v.Name = n
		p.declareLocal(n)
		vars[i] = v
	}

	body := p.parseBlock(token.END)
	end := p.cur.EndPos
	p.expect(token.END)

	stat := p.arena.NewGenericForStat()
	stat.Vars = vars
	stat.Iterators = iterators
	stat.Body = body
	stat.Location = loc(begin, end)
	p.cst.Set(stat, cst.StatGenericFor{VarsCommaPositions: varsCommas, ValuesCommaPositions: valuesCommas})
	p.consumeOptionalSemicolon(stat)
	return stat
}

func (p *Parser) parseLocalStat() ast.Stat {
	begin := p.cur.Pos
	p.nextToken() // local
	if p.cur.Type == token.FUNCTION {
		return p.parseLocalFunctionStat(begin)
	}

	var vars []*ast.Local
	var varsColons []*token.Position
	var varsCommas []token.Position

	v, colonPos := p.parseLocalWithAnnotation()
	vars = append(vars, v)
	varsColons = append(varsColons, colonPos)
	for p.cur.Type == token.COMMA {
		varsCommas = append(varsCommas, p.cur.Pos)
		p.nextToken()
		v, colonPos := p.parseLocalWithAnnotation()
		vars = append(vars, v)
		varsColons = append(varsColons, colonPos)
	}

	var values []ast.Expr
	var valuesCommas []token.Position
	if p.cur.Type == token.ASSIGN {
		p.nextToken()
		values = append(values, p.parseExpr(precLowest))
		for p.cur.Type == token.COMMA {
			valuesCommas = append(valuesCommas, p.cur.Pos)
			p.nextToken()
			values = append(values, p.parseExpr(precLowest))
		}
	}

	// Locals only become visible to subsequent code after the whole
	// declaration statement, matching source-language scoping.
	for _, v := range vars {
		p.declareLocal(v.Name)
	}

	stat := p.arena.NewLocalDeclStat()
	stat.Vars = vars
	stat.Values = values
	stat.Location = loc(begin, p.cur.Pos)
	p.cst.Set(stat, cst.StatLocalDecl{
		VarsAnnotationColonPositions: varsColons,
		VarsCommaPositions:           varsCommas,
		ValuesCommaPositions:         valuesCommas,
	})
	p.consumeOptionalSemicolon(stat)
	return stat
}

// parseLocalWithAnnotation parses one `name[: Type]` entry of a local
// declaration's variable list.
func (p *Parser) parseLocalWithAnnotation() (*ast.Local, *token.Position) {
	nameBegin := p.cur.Pos
	name := p.cur.Literal
	p.expect(token.IDENT)

	v := p.arena.NewLocal()
	v.Name = name
	var colonPos *token.Position
	if p.cur.Type == token.COLON {
		pos := p.cur.Pos
		colonPos = &pos
		p.nextToken()
		v.Annotation = p.parseType(precTypeLowest)
	}
	v.Location = loc(nameBegin, p.cur.Pos)
	return v, colonPos
}

func (p *Parser) parseLocalFunctionStat(begin token.Position) ast.Stat {
	funcKwPos := p.cur.Pos
	p.nextToken() // function
	name := p.cur.Literal
	p.expect(token.IDENT)

	// A local function's own name is visible inside its body,
	// enabling direct recursion.
	p.declareLocal(name)

	fn := p.parseFunctionBody(false)

	stat := p.arena.NewLocalFunctionStat()
	stat.Name = name
	stat.Function = fn
	stat.Location = loc(begin, fn.Loc().End)
	p.cst.Set(stat, cst.StatLocalFunction{FunctionKeywordPosition: funcKwPos})
	p.consumeOptionalSemicolon(stat)
	return stat
}

func (p *Parser) parseFunctionDeclStat() ast.Stat {
	begin := p.cur.Pos
	funcKwPos := p.cur.Pos
	p.nextToken() // function

	nameBegin := p.cur.Pos
	firstName := p.cur.Literal
	p.expect(token.IDENT)

	var target ast.Expr
	if p.isLocal(firstName) {
		ref := p.arena.NewLocalRefExpr()
		ref.Name = firstName
		ref.Location = loc(nameBegin, p.cur.Pos)
		target = ref
	} else {
		ref := p.arena.NewGlobalRefExpr()
		ref.Name = firstName
		ref.Location = loc(nameBegin, p.cur.Pos)
		target = ref
	}

	selfParam := false
	for p.cur.Type == token.DOT || p.cur.Type == token.COLON {
		op := ast.IndexDot
		if p.cur.Type == token.COLON {
			op = ast.IndexColon
		}
		opLoc := loc(p.cur.Pos, p.cur.EndPos)
		isSelf := op == ast.IndexColon
		p.nextToken()
		segBegin := p.cur.Pos
		name := p.cur.Literal
		p.expect(token.IDENT)

		idx := p.arena.NewIndexNameExpr()
		idx.Obj = target
		idx.Op = op
		idx.Name = name
		idx.OpLoc = opLoc
		idx.NameLoc = loc(segBegin, p.cur.Pos)
		idx.Location = loc(target.Loc().Begin, p.cur.Pos)
		target = idx
		selfParam = isSelf
	}

	fn := p.parseFunctionBody(selfParam)

	stat := p.arena.NewFunctionDeclStat()
	stat.Name = target
	stat.Function = fn
	stat.Function.SelfParam = selfParam
	stat.Location = loc(begin, fn.Loc().End)
	p.cst.Set(stat, cst.StatFunction{FunctionKeywordPosition: funcKwPos})
	p.consumeOptionalSemicolon(stat)
	return stat
}

// parseExportStat handles `export type Name = ...`; there is no
// exported-function form in this grammar.
func (p *Parser) parseExportStat() ast.Stat {
	begin := p.cur.Pos
	p.nextToken() // export
	if p.cur.Type != token.TYPE {
		p.addError("expected 'type' after 'export', got %s", p.cur.Type)
		return p.parseStatement()
	}
	stat := p.parseTypeAliasOrFunctionStat(true)
	switch n := stat.(type) {
	case *ast.TypeAliasStat:
		n.Location.Begin = begin
	case *ast.TypeFunctionStat:
		n.Location.Begin = begin
	}
	return stat
}

func (p *Parser) parseTypeAliasOrFunctionStat(exported bool) ast.Stat {
	begin := p.cur.Pos
	typeKwPos := p.cur.Pos
	p.nextToken() // type

	if p.cur.Type == token.FUNCTION {
		funcKwPos := p.cur.Pos
		p.nextToken()
		name := p.cur.Literal
		p.expect(token.IDENT)
		fn := p.parseFunctionBody(false)

		stat := p.arena.NewTypeFunctionStat()
		stat.Exported = exported
		stat.Name = name
		stat.Function = fn
		stat.Location = loc(begin, fn.Loc().End)
		p.cst.Set(stat, cst.StatTypeFunction{TypeKeywordPosition: typeKwPos, FunctionKeywordPosition: funcKwPos})
		p.consumeOptionalSemicolon(stat)
		return stat
	}

	name := p.cur.Literal
	p.expect(token.IDENT)

	var generics []*ast.GenericType
	var genericPacks []*ast.GenericTypePack
	var openGenerics, closeGenerics *token.Position
	var genericsCommas []token.Position
	if p.cur.Type == token.LT {
		pos := p.cur.Pos
		openGenerics = &pos
		p.nextToken()
		generics, genericPacks, genericsCommas = p.parseGenericsList()
		closePos := p.cur.Pos
		closeGenerics = &closePos
		p.expect(token.GT)
	}

	eqPos := p.cur.Pos
	p.expect(token.ASSIGN)
	value := p.parseType(precTypeLowest)

	stat := p.arena.NewTypeAliasStat()
	stat.Exported = exported
	stat.Name = name
	stat.Generics = generics
	stat.GenericPacks = genericPacks
	stat.Value = value
	stat.Location = loc(begin, p.cur.Pos)
	p.cst.Set(stat, cst.StatTypeAlias{
		TypeKeywordPosition:    typeKwPos,
		GenericsOpenPosition:   openGenerics,
		GenericsCommaPositions: genericsCommas,
		GenericsClosePosition:  closeGenerics,
		EqualsPosition:         eqPos,
	})
	p.consumeOptionalSemicolon(stat)
	return stat
}

// parseExprOrAssignStat parses either a bare call-expression
// statement, a (possibly multi-target) assignment, or a compound
// assignment -- the three statement forms that begin with an
// expression (spec.md §4.4 Assignment / Compound assignment).
func (p *Parser) parseExprOrAssignStat() ast.Stat {
	begin := p.cur.Pos
	first := p.parseExpr(precLowest)

	if compoundOp, ok := compoundOps[p.cur.Type]; ok {
		opPos := p.cur.Pos
		p.nextToken()
		value := p.parseExpr(precLowest)
		stat := p.arena.NewCompoundAssignStat()
		stat.Target = first
		stat.Op = compoundOp
		stat.Value = value
		stat.Location = loc(begin, p.cur.Pos)
		p.cst.Set(stat, cst.StatCompoundAssign{OpPosition: opPos})
		p.consumeOptionalSemicolon(stat)
		return stat
	}

	if p.cur.Type == token.COMMA || p.cur.Type == token.ASSIGN {
		targets := []ast.Expr{first}
		var varsCommas []token.Position
		for p.cur.Type == token.COMMA {
			varsCommas = append(varsCommas, p.cur.Pos)
			p.nextToken()
			targets = append(targets, p.parseExpr(precLowest))
		}
		eqPos := p.cur.Pos
		p.expect(token.ASSIGN)

		var values []ast.Expr
		var valuesCommas []token.Position
		values = append(values, p.parseExpr(precLowest))
		for p.cur.Type == token.COMMA {
			valuesCommas = append(valuesCommas, p.cur.Pos)
			p.nextToken()
			values = append(values, p.parseExpr(precLowest))
		}

		stat := p.arena.NewAssignStat()
		stat.Targets = targets
		stat.Values = values
		stat.Location = loc(begin, p.cur.Pos)
		p.cst.Set(stat, cst.StatAssign{VarsCommaPositions: varsCommas, EqualsPosition: eqPos, ValuesCommaPositions: valuesCommas})
		p.consumeOptionalSemicolon(stat)
		return stat
	}

	stat := p.arena.NewExpressionStat()
	stat.Expr = first
	stat.Location = loc(begin, p.cur.Pos)
	p.consumeOptionalSemicolon(stat)
	return stat
}

var compoundOps = map[token.Type]ast.CompoundOp{
	token.PLUS_ASSIGN:    ast.CompoundAdd,
	token.MINUS_ASSIGN:   ast.CompoundSub,
	token.STAR_ASSIGN:    ast.CompoundMul,
	token.SLASH_ASSIGN:   ast.CompoundDiv,
	token.DSLASH_ASSIGN:  ast.CompoundFloorDiv,
	token.PERCENT_ASSIGN: ast.CompoundMod,
	token.CARET_ASSIGN:   ast.CompoundPow,
	token.CONCAT_ASSIGN:  ast.CompoundConcat,
}
