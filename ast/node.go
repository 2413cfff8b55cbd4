/*
File    : gobasic/ast/node.go
Package : ast
*/

// Package ast defines the syntax tree BASIC programs are parsed into. Per
// the interpreter's redesign away from the teacher's name-based Visitor
// (parser/node.go's NodeVisitor with one Visit<Kind> method per type), Node
// here is a sealed sum type: every concrete node lives in this package and
// the interpreter dispatches on a type switch instead of a double-dispatch
// Accept/Visit pair. This keeps node definitions as plain data and moves
// all behavior into the interp package that consumes them.
package ast

import "github.com/basiclang/gobasic/token"

// Node is implemented by every AST node. Start/End delimit the node's
// source span for error reporting, mirroring the pos_start/pos_end pair
// every node carries in the original interpreter.
type Node interface {
	Start() token.Position
	End() token.Position
	node() // unexported marker: only this package may implement Node
}

// base embeds the common position bookkeeping so concrete node structs
// only need to declare `base` plus their own fields.
type base struct {
	start token.Position
	end   token.Position
}

func (b base) Start() token.Position { return b.start }
func (b base) End() token.Position   { return b.end }
func (b base) node()                 {}

func newBase(start, end token.Position) base {
	return base{start: start, end: end}
}
