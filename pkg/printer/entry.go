package printer

import (
	"luaprint/pkg/ast"
	"luaprint/pkg/cst"
	"luaprint/pkg/errors"
	"luaprint/pkg/parser"
)

// Result is the outcome of a TranspileSource call: either a printed
// Output, or the Errors that kept the printer from running at all
// (spec.md §4.7, §7 -- the printer is never invoked over a tree that
// parsing flagged as unclean).
type Result struct {
	Output string
	Errors []errors.Error
}

// ToString prints block, consulting table for recorded lexical detail,
// under opts. This is the direct AST-to-text entry point for callers
// that already hold a parsed tree rather than raw source text. After
// the last statement it advances to the block's recorded end, so line
// breaks before that end are reproduced.
func ToString(block *ast.BlockStat, table *cst.Table, opts Options) string {
	w := NewStringWriter(block.Loc().Begin)
	p := New(w, table, opts)
	p.Block(block)
	w.Advance(block.Loc().End)
	return w.Output()
}

// Transpile parses source and prints it back out with type
// annotations stripped.
func Transpile(source string) Result {
	return TranspileSource(source, Options{WriteTypes: false})
}

// TranspileWithTypes parses source and prints it back out with type
// annotations retained.
func TranspileWithTypes(source string) Result {
	return TranspileSource(source, Options{WriteTypes: true})
}

// TranspileSource is the combined parse-then-print entry point: it
// reports the parser's errors instead of printing whenever the parse
// was not clean, since recovery placeholders have no defined
// rendering (spec.md §7).
func TranspileSource(source string, opts Options) Result {
	block, table, errs := parser.Parse(source)
	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	if block == nil {
		return Result{Errors: []errors.Error{errors.ErrEmptyTree}}
	}
	return Result{Output: ToString(block, table, opts)}
}
