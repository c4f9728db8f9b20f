package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"luaprint/pkg/errors"
)

// printDiagnostics renders parse errors the way errors.Display does,
// with the kind and caret colorized -- duhaifeng-light-lang's REPL
// colorizes its diagnostics the same way, just with hand-rolled ANSI
// codes instead of fatih/color.
func printDiagnostics(w io.Writer, src string, errs []errors.Error, noColor bool) {
	kindColor := color.New(color.FgRed, color.Bold)
	caretColor := color.New(color.FgRed)
	kindColor.EnableColor()
	caretColor.EnableColor()
	if noColor {
		kindColor.DisableColor()
		caretColor.DisableColor()
	}

	lines := strings.Split(src, "\n")
	for _, err := range errs {
		loc := err.Location()
		lineIdx := loc.Begin.Line
		if lineIdx < 0 || lineIdx >= len(lines) {
			fmt.Fprintln(w, kindColor.Sprintf("%s Error: %s", err.Kind(), err.Message()))
			continue
		}
		sourceLine := strings.TrimRight(lines[lineIdx], "\r\n\t ")
		fmt.Fprintln(w, kindColor.Sprintf("%s Error at %d:%d: %s", err.Kind(), loc.Begin.Line, loc.Begin.Column, err.Message()))
		fmt.Fprintf(w, "  %s\n", sourceLine)
		fmt.Fprintln(w, "  "+caretColor.Sprint(strings.Repeat(" ", loc.Begin.Column)+"^"))
	}
}
