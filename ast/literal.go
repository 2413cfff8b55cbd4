/*
File    : gobasic/ast/literal.go
Package : ast
*/
package ast

import "github.com/basiclang/gobasic/token"

// NumberLiteral is an integer or floating-point constant, e.g. 42 or 3.14.
// The raw text is kept rather than a pre-parsed number so the interpreter
// owns numeric canonicalization (see value.NewNumber).
type NumberLiteral struct {
	base
	Text    string
	IsFloat bool
}

func NewNumberLiteral(text string, isFloat bool, start, end token.Position) *NumberLiteral {
	return &NumberLiteral{base: newBase(start, end), Text: text, IsFloat: isFloat}
}

// StringLiteral is a double-quoted string constant with escapes already
// resolved by the lexer.
type StringLiteral struct {
	base
	Value string
}

func NewStringLiteral(value string, start, end token.Position) *StringLiteral {
	return &StringLiteral{base: newBase(start, end), Value: value}
}

// ListLiteral is a bracketed, comma-separated sequence of expressions:
// [1, 2, 3].
type ListLiteral struct {
	base
	Elements []Node
}

func NewListLiteral(elements []Node, start, end token.Position) *ListLiteral {
	return &ListLiteral{base: newBase(start, end), Elements: elements}
}
