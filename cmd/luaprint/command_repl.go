package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"luaprint/pkg/lexer"
	"luaprint/pkg/printer"
	"luaprint/pkg/token"
)

// ReplCmd reads Luau-like blocks interactively and echoes each one
// back out through the printer core.
type ReplCmd struct {
	Types bool `help:"Keep type annotations in the echoed output" name:"types"`
}

func (cmd *ReplCmd) Run(ctx *Context) error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".luaprint_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "luaprint> ",
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), "luaprint REPL (type 'exit' or Ctrl+D to quit)")

	opts := printer.Options{WriteTypes: cmd.Types}
	var accumulated strings.Builder
	depth := 0

	for {
		if depth > 0 {
			rl.SetPrompt("...     ")
		} else {
			rl.SetPrompt("luaprint> ")
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if depth > 0 {
					accumulated.Reset()
					depth = 0
					continue
				}
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		if depth == 0 && strings.TrimSpace(line) == "exit" {
			break
		}

		accumulated.WriteString(line)
		accumulated.WriteString("\n")
		depth = blockDepth(accumulated.String())

		if depth > 0 {
			continue
		}

		source := accumulated.String()
		accumulated.Reset()
		if strings.TrimSpace(source) == "" {
			continue
		}

		result := printer.TranspileSource(source, opts)
		if len(result.Errors) > 0 {
			printDiagnostics(rl.Stderr(), source, result.Errors, ctx.NoColor)
			continue
		}
		fmt.Fprint(rl.Stdout(), result.Output)
	}
	return nil
}

// blockDepth tokenizes the accumulated buffer and returns its
// outstanding block-opener/closer balance: `function`/`if`/`for`/
// `while`/`do`/`repeat` open a block that a matching `end` or
// `until` closes. `for`/`while` headers own the `do` that follows
// them, so that `do` is not counted as a second opener. This mirrors
// light-lang's REPL brace counting, adapted to keyword-delimited
// blocks instead of `{`/`}`.
func blockDepth(source string) int {
	lex := lexer.New(source)
	depth := 0
	pendingDo := false
	for {
		tok := lex.NextToken()
		if tok.Type == token.EOF {
			break
		}
		switch tok.Type {
		case token.FUNCTION, token.IF, token.REPEAT:
			depth++
		case token.FOR, token.WHILE:
			depth++
			pendingDo = true
		case token.DO:
			if pendingDo {
				pendingDo = false
			} else {
				depth++
			}
		case token.END, token.UNTIL:
			depth--
		}
	}
	return depth
}
