// Package parser builds an ast.BlockStat (plus its cst.Table side
// table) from source text. Like pkg/lexer, it is explicitly out of
// scope for the printer core (spec.md §1's "OUT OF SCOPE: ... a
// parser/lexer for the source language"), but a complete module needs
// a real one behind that boundary: the printer's input, per spec.md
// §2, is exactly what a parser like this one produces.
//
// Structurally this follows paserati/pkg/parser/parser.go's shape: a
// single Parser struct carrying cur/peek tokens advanced by
// nextToken, statement parsing dispatched by a switch on the leading
// keyword, and expression parsing done by precedence climbing over a
// token-type-to-precedence table -- scaled down from paserati's full
// Pratt registration-table machinery since this grammar's operator
// set is much smaller.
package parser

import (
	"fmt"

	"luaprint/pkg/ast"
	"luaprint/pkg/cst"
	"luaprint/pkg/errors"
	"luaprint/pkg/lexer"
	"luaprint/pkg/token"
)

// Parser turns a token stream into an AST plus its CST side-table.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	arena *ast.Arena
	cst   *cst.Table

	errs []errors.Error

	// scopes is a stack of declared-local-name sets, innermost last;
	// used only to distinguish LocalRefExpr from GlobalRefExpr at
	// parse time (spec.md §3.2 names both as distinct node kinds).
	scopes []map[string]bool
}

// New creates a Parser over src.
func New(src string) *Parser {
	p := &Parser{
		lex:   lexer.New(src),
		arena: ast.NewArena(),
		cst:   cst.NewTable(),
	}
	p.pushScope()
	p.nextToken()
	p.nextToken()
	return p
}

// Parse runs the parser to completion, returning the program block,
// its CST side-table, and any syntax errors encountered. Following
// spec.md §4.7/§7, a caller must not print the block when errs is
// non-empty: ErrorExpr/ErrorStat/ErrorType placeholders may appear in
// it and the printer only has rendering rules for cleanly-parsed
// trees.
func Parse(src string) (*ast.BlockStat, *cst.Table, []errors.Error) {
	p := New(src)
	block := p.parseBlock(token.EOF)
	if p.cur.Type != token.EOF {
		p.addError("unexpected trailing token %s", p.cur.Type)
	}
	return block, p.cst, p.errs
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expect consumes the current token if it has type t, returning its
// position; otherwise it records a syntax error and returns the
// current position without consuming anything, so the caller can
// keep parsing with recovery.
func (p *Parser) expect(t token.Type) token.Position {
	if p.cur.Type != t {
		p.addError("expected %s, got %s", t, p.cur.Type)
		return p.cur.Pos
	}
	pos := p.cur.Pos
	p.nextToken()
	return pos
}

func (p *Parser) addError(format string, args ...interface{}) {
	loc := token.Location{Begin: p.cur.Pos, End: p.cur.EndPos}
	p.errs = append(p.errs, errors.NewSyntaxError(loc, fmt.Sprintf(format, args...)))
}

func (p *Parser) pushScope()         { p.scopes = append(p.scopes, map[string]bool{}) }
func (p *Parser) popScope()          { p.scopes = p.scopes[:len(p.scopes)-1] }
func (p *Parser) declareLocal(n string) {
	p.scopes[len(p.scopes)-1][n] = true
}
func (p *Parser) isLocal(name string) bool {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if p.scopes[i][name] {
			return true
		}
	}
	return false
}

// loc builds a Location from a start position captured by the caller
// to an end position. Wherever the printer reads a node's end (closing
// brackets, `end` keywords, single-token nodes) that is p.cur.EndPos
// captured just before the node's final token is consumed; other call
// sites pass p.cur.Pos after consuming, the start of the next token.
func loc(begin, end token.Position) token.Location {
	return token.Location{Begin: begin, End: end}
}
