package main

import (
	"fmt"
	"os"

	"luaprint/pkg/printer"
)

// FmtCmd prints a source file back out through the printer core.
type FmtCmd struct {
	File  string `arg:"" help:"Source file to print" type:"existingfile"`
	Types bool   `help:"Keep type annotations in the printed output" name:"types"`
}

func (cmd *FmtCmd) Run(ctx *Context) error {
	src, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cmd.File, err)
	}

	opts := printer.Options{WriteTypes: cmd.Types}
	result := printer.TranspileSource(string(src), opts)
	if len(result.Errors) > 0 {
		printDiagnostics(os.Stderr, string(src), result.Errors, ctx.NoColor)
		os.Exit(65)
	}

	fmt.Print(result.Output)
	return nil
}
