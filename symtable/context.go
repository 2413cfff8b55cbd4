/*
File    : gobasic/symtable/context.go
Package : symtable
*/
package symtable

import "github.com/basiclang/gobasic/token"

// Context is a call-stack frame used purely for traceback rendering: it
// names the function (or "<module>" for the top level) being executed and
// the position of the call that entered it, chained to the calling
// Context. This generalizes the ad hoc "[%d:%d] %s" formatting done inline
// in eval/evaluator.go's CreateError into a walkable frame chain, the way
// the original interpreter's Context/pos_start pair supports full
// tracebacks across nested function calls.
type Context struct {
	DisplayName string
	Parent      *Context
	ParentEntry token.Position
	Symbols     *SymbolTable
}

// NewContext creates a root context, used for the top-level module frame.
func NewContext(displayName string, symbols *SymbolTable) *Context {
	return &Context{DisplayName: displayName, Symbols: symbols}
}

// Child creates a nested context for a function call: displayName names
// the called function, entry is the position of the call site, and
// symbols is the function's local symbol table.
func (c *Context) Child(displayName string, entry token.Position, symbols *SymbolTable) *Context {
	return &Context{DisplayName: displayName, Parent: c, ParentEntry: entry, Symbols: symbols}
}
