/*
File    : gobasic/errs/error.go
Package : errs
*/

// Package errs implements BASIC's structured error taxonomy and the
// traceback/excerpt rendering shown to users. It generalizes the
// teacher's flat objects.Error (a bare message string) into the four
// named error kinds and the Context-chain walk the original interpreter's
// error.as_string() performs, since spec.md requires a stable, richer
// rendering than "some string went wrong".
package errs

import (
	"fmt"

	"github.com/basiclang/gobasic/symtable"
	"github.com/basiclang/gobasic/token"
)

// Kind names one of the four error categories BASIC distinguishes.
type Kind string

const (
	IllegalCharacter Kind = "IllegalCharacter"
	ExpectedCharacter Kind = "ExpectedCharacter"
	InvalidSyntax     Kind = "InvalidSyntax"
	RuntimeError      Kind = "RuntimeError"
)

// Error is the concrete error type produced anywhere in the pipeline. It
// implements Go's error interface while keeping the structured fields
// needed to render a traceback. Context is nil for lexer/parser errors
// (IllegalCharacter, ExpectedCharacter, InvalidSyntax); only RuntimeError
// carries a call-stack Context for traceback assembly.
type Error struct {
	Kind     Kind
	Details  string
	PosStart token.Position
	PosEnd   token.Position
	Context  *symtable.Context
}

func New(kind Kind, details string, start, end token.Position) *Error {
	return &Error{Kind: kind, Details: details, PosStart: start, PosEnd: end}
}

// WithContext attaches the context of the frame that raised a runtime
// error, returning the same error for chaining. It is set once, when the
// error is created; Render reaches the calling frames through the
// Context's Parent chain.
func (e *Error) WithContext(ctx *symtable.Context) *Error {
	e.Context = ctx
	return e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Details)
}
