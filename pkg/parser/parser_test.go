package parser

import (
	"testing"

	"luaprint/pkg/ast"
)

func TestParseLocalDecl(t *testing.T) {
	block, _, errs := Parse("local x, y = 1, 2\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(block.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(block.Body))
	}
	decl, ok := block.Body[0].(*ast.LocalDeclStat)
	if !ok {
		t.Fatalf("expected *ast.LocalDeclStat, got %T", block.Body[0])
	}
	if len(decl.Vars) != 2 || len(decl.Values) != 2 {
		t.Fatalf("expected 2 vars and 2 values, got %d/%d", len(decl.Vars), len(decl.Values))
	}
}

func TestParseIfElseChain(t *testing.T) {
	src := "if a then\n    return 1\nelseif b then\n    return 2\nelse\n    return 3\nend\n"
	block, _, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(block.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(block.Body))
	}
	ifStat, ok := block.Body[0].(*ast.IfStat)
	if !ok {
		t.Fatalf("expected *ast.IfStat, got %T", block.Body[0])
	}
	elseIf, ok := ifStat.ElseBody.(*ast.IfStat)
	if !ok {
		t.Fatalf("expected elseif body to be *ast.IfStat, got %T", ifStat.ElseBody)
	}
	if _, ok := elseIf.ElseBody.(*ast.BlockStat); !ok {
		t.Fatalf("expected final else body to be *ast.BlockStat, got %T", elseIf.ElseBody)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	block, _, errs := Parse("local x = 1 + 2 * 3\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	decl := block.Body[0].(*ast.LocalDeclStat)
	bin, ok := decl.Values[0].(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected top-level *ast.BinaryExpr, got %T", decl.Values[0])
	}
	if bin.Op != ast.BinAdd {
		t.Fatalf("expected top-level op BinAdd, got %v", bin.Op)
	}
	if _, ok := bin.Right.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected right operand to be a nested *ast.BinaryExpr (higher precedence '*'), got %T", bin.Right)
	}
}

func TestParseSyntaxErrorStillReturnsTree(t *testing.T) {
	block, _, errs := Parse("local x = \n")
	if len(errs) == 0 {
		t.Fatalf("expected parse errors for incomplete declaration")
	}
	if block == nil {
		t.Fatalf("expected a recovered tree even on error")
	}
}

func TestParseStandaloneDoBlock(t *testing.T) {
	block, _, errs := Parse("do\n    local x = 1\nend\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(block.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(block.Body))
	}
	inner, ok := block.Body[0].(*ast.BlockStat)
	if !ok {
		t.Fatalf("expected standalone do-block to parse as *ast.BlockStat, got %T", block.Body[0])
	}
	if len(inner.Body) != 1 {
		t.Fatalf("expected 1 inner statement, got %d", len(inner.Body))
	}
}
