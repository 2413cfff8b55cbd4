/*
File    : gobasic/ast/control.go
Package : ast
*/
package ast

import "github.com/basiclang/gobasic/token"

// IfCase is one `<cond> THEN <body>` arm of an If node, shared by the
// leading IF and any ELIF arms. Multiline marks a `NEWLINE statements END`
// body as opposed to a single inline expression: per spec, an inline
// branch's value is the expression's value, while a multiline branch's
// value is always NULL regardless of what its statements evaluate to.
type IfCase struct {
	Condition Node
	Body      Node
	Multiline bool
}

// ElseCase is the trailing `ELSE <body>` arm, with the same inline/
// multiline distinction as IfCase.
type ElseCase struct {
	Body      Node
	Multiline bool
}

// If chains zero or more ELIF arms and an optional ELSE body onto the
// leading IF arm, evaluated first-match-wins (mirrors the original
// interpreter's IfNode.cases/else_case).
type If struct {
	base
	Cases []IfCase
	Else  *ElseCase // nil if there is no ELSE branch
}

func NewIf(cases []IfCase, elseCase *ElseCase, start, end token.Position) *If {
	return &If{base: newBase(start, end), Cases: cases, Else: elseCase}
}

// For is a counted loop: FOR <var> = <start> TO <stop> (STEP <step>) THEN
// <body>. Step is nil when the source omits STEP, in which case the
// interpreter defaults it to 1. ShouldReturnNull is true for a multiline
// (NEWLINE statements END) body, mirroring the inline/multiline split on
// If's branches: an inline body's per-iteration values accumulate into the
// loop's result list, a multiline body's do not (the loop always yields
// NULL) even though the body still runs and its control signals still
// propagate.
type For struct {
	base
	VarName          string
	StartValue       Node
	Stop             Node
	Step             Node
	Body             Node
	ShouldReturnNull bool
}

func NewFor(varName string, start, stop, step, body Node, shouldReturnNull bool, spanStart, spanEnd token.Position) *For {
	return &For{base: newBase(spanStart, spanEnd), VarName: varName, StartValue: start, Stop: stop, Step: step, Body: body, ShouldReturnNull: shouldReturnNull}
}

// While re-evaluates Condition before each iteration of Body.
type While struct {
	base
	Condition        Node
	Body             Node
	ShouldReturnNull bool
}

func NewWhile(condition, body Node, shouldReturnNull bool, start, end token.Position) *While {
	return &While{base: newBase(start, end), Condition: condition, Body: body, ShouldReturnNull: shouldReturnNull}
}

// Return exits the enclosing function, optionally carrying a value.
type Return struct {
	base
	Value Node // nil for a bare RETURN
}

func NewReturn(value Node, start, end token.Position) *Return {
	return &Return{base: newBase(start, end), Value: value}
}

// Continue skips to the next iteration of the nearest enclosing loop.
type Continue struct{ base }

func NewContinue(start, end token.Position) *Continue {
	return &Continue{base: newBase(start, end)}
}

// Break exits the nearest enclosing loop immediately.
type Break struct{ base }

func NewBreak(start, end token.Position) *Break {
	return &Break{base: newBase(start, end)}
}
