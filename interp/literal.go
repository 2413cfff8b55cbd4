/*
File    : gobasic/interp/literal.go
Package : interp
*/
package interp

import (
	"strconv"

	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/symtable"
	"github.com/basiclang/gobasic/value"
)

func (in *Interpreter) evalNumberLiteral(n *ast.NumberLiteral) *Result {
	if n.IsFloat {
		f, err := strconv.ParseFloat(n.Text, 64)
		if err != nil {
			return Failure(runtimeErr(n, "invalid float literal '"+n.Text+"'", nil))
		}
		return Success(value.NewNumber(f))
	}
	i, err := strconv.ParseInt(n.Text, 10, 64)
	if err != nil {
		return Failure(runtimeErr(n, "invalid int literal '"+n.Text+"'", nil))
	}
	return Success(value.NewInt(i))
}

func (in *Interpreter) evalStringLiteral(n *ast.StringLiteral) *Result {
	return Success(value.NewString(n.Value))
}

// evalListLiteral evaluates each element left-to-right, early-exiting on
// any signal the first non-plain element raises.
func (in *Interpreter) evalListLiteral(n *ast.ListLiteral, ctx *symtable.Context) *Result {
	elems := make([]value.Value, 0, len(n.Elements))
	for _, elemNode := range n.Elements {
		res := in.Eval(elemNode, ctx)
		if res.ShouldReturn() {
			return res
		}
		elems = append(elems, res.Value)
	}
	return Success(value.NewList(elems))
}
