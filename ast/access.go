/*
File    : gobasic/ast/access.go
Package : ast
*/
package ast

import "github.com/basiclang/gobasic/token"

// VarAccess reads the current value bound to Name.
type VarAccess struct {
	base
	Name string
}

func NewVarAccess(name string, start, end token.Position) *VarAccess {
	return &VarAccess{base: newBase(start, end), Name: name}
}

// VarAssign is the sole binding form in the grammar: `VAR IDENT ('=' expr)?`.
// It always evaluates Value and binds it in the CURRENT symbol table only
// (no walk up the parent chain), whether or not Name was already bound —
// there is no separate bare-assignment syntax. A missing initializer
// parses with Value defaulting to a NumberLiteral "0" node, per the
// grammar's "default value = INT 0" note.
type VarAssign struct {
	base
	Name  string
	Value Node
}

func NewVarAssign(name string, value Node, start, end token.Position) *VarAssign {
	return &VarAssign{base: newBase(start, end), Name: name, Value: value}
}
