/*
File    : gobasic/ast/func.go
Package : ast
*/
package ast

import "github.com/basiclang/gobasic/token"

// FuncDef declares a function. Name is empty for an anonymous function
// expression (`FUNC (a, b) -> a + b`); AutoReturn marks the single-
// expression arrow-body form whose value is implicitly returned, as
// opposed to a `FUNC ... END`-delimited block body.
type FuncDef struct {
	base
	Name       string
	Params     []string
	Body       Node
	AutoReturn bool
}

func NewFuncDef(name string, params []string, body Node, autoReturn bool, start, end token.Position) *FuncDef {
	return &FuncDef{base: newBase(start, end), Name: name, Params: params, Body: body, AutoReturn: autoReturn}
}

// Block is a sequence of statements executed in order, used both as a
// function's block body and as the body of multiline IF/FOR/WHILE arms.
// Evaluating a Block always yields NULL; its statements' values are
// discarded (a function body's result comes from RETURN instead).
type Block struct {
	base
	Statements []Node
}

func NewBlock(statements []Node, start, end token.Position) *Block {
	return &Block{base: newBase(start, end), Statements: statements}
}

// Program is the root node produced by parsing a whole source file: a flat
// list of top-level statements.
type Program struct {
	base
	Statements []Node
}

func NewProgram(statements []Node, start, end token.Position) *Program {
	return &Program{base: newBase(start, end), Statements: statements}
}
