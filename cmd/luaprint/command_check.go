package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	"luaprint/pkg/printer"
)

var errRoundTripMismatch = errors.New("round-trip mismatch")

// CheckCmd verifies the primary invariant this module exists to
// uphold: parsing a file and printing it back out with types retained
// reproduces the original bytes exactly.
type CheckCmd struct {
	File string `arg:"" help:"Source file to check" type:"existingfile"`
	Diff bool   `help:"Show a unified diff of the mismatch" name:"diff"`
}

func (cmd *CheckCmd) Run(ctx *Context) error {
	src, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cmd.File, err)
	}
	source := string(src)

	result := printer.TranspileSource(source, printer.Options{WriteTypes: true})
	if len(result.Errors) > 0 {
		printDiagnostics(os.Stderr, source, result.Errors, ctx.NoColor)
		os.Exit(65)
	}

	if result.Output == source {
		greenf(ctx, "%s: round-trips cleanly\n", cmd.File)
		return nil
	}

	redf(ctx, "%s: round-trip mismatch\n", cmd.File)
	if cmd.Diff {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(source),
			B:        difflib.SplitLines(result.Output),
			FromFile: "original",
			ToFile:   "printed",
			Context:  3,
		}
		text, err := difflib.GetUnifiedDiffString(diff)
		if err != nil {
			return fmt.Errorf("computing diff: %w", err)
		}
		fmt.Print(text)
	}
	os.Exit(1)
	return errRoundTripMismatch
}

func greenf(ctx *Context, format string, args ...interface{}) {
	c := color.New(color.FgGreen)
	c.EnableColor()
	if ctx.NoColor {
		c.DisableColor()
	}
	fmt.Print(c.Sprintf(format, args...))
}

func redf(ctx *Context, format string, args ...interface{}) {
	c := color.New(color.FgRed)
	c.EnableColor()
	if ctx.NoColor {
		c.DisableColor()
	}
	fmt.Print(c.Sprintf(format, args...))
}
