// Command luaprint is a small CLI shell around pkg/printer: it prints
// source files back out (optionally stripping or keeping type
// annotations), round-trip checks that printing a parsed file
// reproduces the original bytes, and offers an interactive REPL.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Context carries the flags shared across every subcommand.
type Context struct {
	NoColor bool
}

// CLI is the top-level command tree.
var CLI struct {
	NoColor bool `help:"Disable colored diagnostics" name:"no-color"`

	Fmt   FmtCmd   `cmd:"" help:"Print a source file, optionally with type annotations"`
	Check CheckCmd `cmd:"" help:"Verify that printing a file reproduces its source byte-for-byte"`
	Repl  ReplCmd  `cmd:"" help:"Start an interactive read-parse-print loop"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("luaprint"),
		kong.Description("A lossless source-preserving pretty-printer for a Luau-like language."),
	)

	appCtx := &Context{NoColor: CLI.NoColor}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
