/*
File    : gobasic/interp/access.go
Package : interp
*/
package interp

import (
	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/symtable"
)

// evalVarAccess looks up Name through the parent chain; an unbound name is
// a runtime error, not a zero value.
func (in *Interpreter) evalVarAccess(n *ast.VarAccess, ctx *symtable.Context) *Result {
	v, ok := ctx.Symbols.Get(n.Name)
	if !ok {
		return Failure(runtimeErr(n, "'"+n.Name+"' is not defined", ctx))
	}
	return Success(v.Copy())
}

// evalVarAssign evaluates the RHS then binds Name in the CURRENT table
// only — VarAssign is the sole binding form and never walks the parent
// chain, so re-declaring a name already bound in an outer scope shadows it
// locally rather than mutating the outer binding.
func (in *Interpreter) evalVarAssign(n *ast.VarAssign, ctx *symtable.Context) *Result {
	res := in.Eval(n.Value, ctx)
	if res.ShouldReturn() {
		return res
	}
	if ctx.Symbols.IsProtected(n.Name) {
		return Failure(runtimeErr(n, "Invalid identifier - Protected variable", ctx))
	}
	ctx.Symbols.Declare(n.Name, res.Value, false)
	return Success(res.Value)
}
