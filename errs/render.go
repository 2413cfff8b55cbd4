/*
File    : gobasic/errs/render.go
Package : errs
*/
package errs

import (
	"fmt"
	"strings"
)

// Render produces the full diagnostic text for err, matching spec.md's
// stable error rendering format: a traceback block (RuntimeError only),
// the "<Kind>: <details>" line, and a source excerpt with a caret
// underline beneath the offending span.
func Render(err *Error) string {
	var b strings.Builder

	if err.Kind == RuntimeError && err.Context != nil {
		b.WriteString("Traceback (most recent call last):\n")
		b.WriteString(traceback(err))
	}

	b.WriteString(fmt.Sprintf("%s: %s\n\n", err.Kind, err.Details))
	b.WriteString(fmt.Sprintf("File %s, line %d, column %d:%d\n",
		err.PosStart.File, err.PosStart.Line, err.PosStart.Column, err.PosEnd.Column))
	b.WriteString(excerpt(err))

	return b.String()
}

// traceback walks the Context chain from the error's frame up through
// every caller, emitting one "File <fn>, line <L>, in <ctx>" line per
// frame — the generalized form of eval/evaluator.go's inline "[%d:%d] %s"
// formatting, extended to the full call chain via symtable.Context.
func traceback(err *Error) string {
	var b strings.Builder
	ctx := err.Context
	pos := err.PosStart
	for ctx != nil {
		b.WriteString(fmt.Sprintf("  File %s, line %d, in %s\n", pos.File, pos.Line, ctx.DisplayName))
		pos = ctx.ParentEntry
		ctx = ctx.Parent
	}
	return b.String()
}

// excerpt renders the source line the error starts on, with a caret
// underline spanning PosStart.Column to PosEnd.Column (clamped to the
// line's own length when the span runs past end of line).
func excerpt(err *Error) string {
	lines := strings.Split(err.PosStart.Src, "\n")
	lineIdx := err.PosStart.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return ""
	}
	line := lines[lineIdx]

	startCol := err.PosStart.Column
	endCol := err.PosEnd.Column
	if err.PosEnd.Line != err.PosStart.Line || endCol <= startCol {
		endCol = len(line) + 1
	}
	if startCol < 1 {
		startCol = 1
	}
	if endCol > len(line)+1 {
		endCol = len(line) + 1
	}

	underline := strings.Repeat(" ", startCol-1) + strings.Repeat("^", max(1, endCol-startCol))
	return line + "\n" + underline + "\n"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
