/*
File    : gobasic/cmd/basic/main.go
Package : main
*/

// Command basic is the REPL and file-mode driver for the BASIC
// interpreter: the external collaborator spec.md's core deliberately
// excludes. It mirrors the teacher interpreter's main.go shape (flag
// dispatch, colored diagnostics, a banner'd REPL) but drives gobasic/interp
// instead of go-mix's evaluator, and drops go-mix's `server <port>` mode —
// BASIC's single-threaded, no-concurrency model (spec.md §5) has no use
// for a multi-client TCP listener.
package main

import (
	"io"
	"os"

	"github.com/basiclang/gobasic/builtin"
	"github.com/basiclang/gobasic/errs"
	"github.com/basiclang/gobasic/interp"
	"github.com/basiclang/gobasic/value"
	"github.com/fatih/color"
)

var VERSION = "v1.0.0"
var AUTHOR = "the gobasic project"
var LICENSE = "MIT"
var PROMPT = ">> "

var BANNER = `
 _________  _________  ________  ___  ________
|\___   ___\\___   ___\\   __  \|\  \|\   ____\
\|___ \  \_\|___ \  \_\ \  \|\  \ \  \ \  \___|_
     \ \  \     \ \  \ \ \   __  \ \  \ \_____  \
      \ \  \     \ \  \ \ \  \ \  \ \  \|____|\  \
       \ \__\     \ \__\ \ \__\ \__\ \__\____\_\  \
        \|__|      \|__|  \|__|\|__|\|__|\_________\
                                         \|_________|
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
	blueColor   = color.New(color.FgBlue)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		default:
			runFile(arg)
		}
		return
	}
	runREPL()
}

func showHelp() {
	cyanColor.Println("gobasic - a small dynamically-typed BASIC interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  basic                  Start interactive REPL mode")
	yellowColor.Println("  basic <path-to-file>   Execute a BASIC script")
	yellowColor.Println("  basic --help           Display this help message")
	yellowColor.Println("  basic --version        Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                  Exit the REPL")
}

func showVersion() {
	cyanColor.Printf("gobasic %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// newInterpreter builds an Interpreter whose Host can re-enter the
// interpreter for RUN, closing the loop between builtin.Host and
// interp.Interpreter without either package importing the other.
func newInterpreter(out *os.File, in *os.File) *interp.Interpreter {
	var it *interp.Interpreter
	host := newTermHost(out, in, func(path string) error {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		_, err = it.Run(path, string(src))
		return err
	})
	it = interp.New(builtin.Register(host))
	return it
}

func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		return
	}

	it := newInterpreter(os.Stdout, os.Stdin)
	result, runErr := it.Run(fileName, string(source))
	printResult(os.Stdout, result, runErr)
}

func runREPL() {
	printBanner(os.Stdout)
	it := newInterpreter(os.Stdout, os.Stdin)
	runReplLoop(os.Stdin, os.Stdout, it)
}

func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", LINE)
	greenColor.Fprintf(w, "%s\n", BANNER)
	blueColor.Fprintf(w, "%s\n", LINE)
	yellowColor.Fprintf(w, "Version: %s | Author: %s | License: %s\n", VERSION, AUTHOR, LICENSE)
	blueColor.Fprintf(w, "%s\n", LINE)
	cyanColor.Fprintln(w, "Type BASIC code and press enter. Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", LINE)
}

// printResult renders a run's outcome exactly as spec.md §6 prescribes:
// on success, print the value (unwrapping a singleton List); on failure,
// render the structured error.
func printResult(w io.Writer, result value.Value, err error) {
	if err != nil {
		if e, ok := err.(*errs.Error); ok {
			redColor.Fprintln(w, errs.Render(e))
		} else {
			redColor.Fprintln(w, err.Error())
		}
		return
	}
	if result == nil {
		return
	}
	if list, ok := result.(*value.List); ok && len(list.Elements) == 1 {
		result = list.Elements[0]
	}
	yellowColor.Fprintf(w, "%s\n", result.String())
}
