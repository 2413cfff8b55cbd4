/*
File    : gobasic/ast/expr.go
Package : ast
*/
package ast

import "github.com/basiclang/gobasic/token"

// BinOp is a binary operator application: Left Op Right. Op is the
// token.Kind of the operator token (PLUS, EE, KEYWORD "AND", ...), kept
// verbatim so the interpreter's dispatch table (interp/expr.go) can switch
// on it directly instead of re-deriving it from operator text.
type BinOp struct {
	base
	Left  Node
	Op    token.Kind
	OpLit string
	Right Node
}

func NewBinOp(left Node, op token.Kind, opLit string, right Node, start, end token.Position) *BinOp {
	return &BinOp{base: newBase(start, end), Left: left, Op: op, OpLit: opLit, Right: right}
}

// UnaryOp is a prefix operator application: -x or NOT x.
type UnaryOp struct {
	base
	Op      token.Kind
	OpLit   string
	Operand Node
}

func NewUnaryOp(op token.Kind, opLit string, operand Node, start, end token.Position) *UnaryOp {
	return &UnaryOp{base: newBase(start, end), Op: op, OpLit: opLit, Operand: operand}
}

// Call invokes Callee with Args, covering both named-function and
// immediately-invoked-expression call sites.
type Call struct {
	base
	Callee Node
	Args   []Node
}

func NewCall(callee Node, args []Node, start, end token.Position) *Call {
	return &Call{base: newBase(start, end), Callee: callee, Args: args}
}
