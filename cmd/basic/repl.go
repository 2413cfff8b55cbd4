/*
File    : gobasic/cmd/basic/repl.go
Package : main
*/
package main

import (
	"io"
	"strings"

	"github.com/basiclang/gobasic/interp"
	"github.com/chzyer/readline"
)

// runReplLoop drives the interactive session: read a line via readline
// (history + basic editing), run it through the shared Interpreter so
// VAR bindings persist across lines, and print the result or error.
// Mirrors the teacher REPL's Start loop, generalized from a fixed
// evaluator to interp.Interpreter.
func runReplLoop(in io.Reader, out io.Writer, it *interp.Interpreter) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: PROMPT,
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(out, "Good bye!\n")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(out, "Good bye!\n")
			return
		}
		rl.SaveHistory(line)

		result, runErr := it.Run("<stdin>", line)
		printResult(out, result, runErr)
	}
}
