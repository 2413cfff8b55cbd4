/*
File    : gobasic/interp/func.go
Package : interp
*/
package interp

import (
	"fmt"

	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/symtable"
	"github.com/basiclang/gobasic/value"
)

// evalFuncDef builds a Function closing over the current context's symbol
// table. A named definition also binds itself in that same table, so a
// function can recurse by its own name.
func (in *Interpreter) evalFuncDef(n *ast.FuncDef, ctx *symtable.Context) *Result {
	fn := value.NewFunction(n.Name, n.Params, n.Body, n.AutoReturn, ctx.Symbols)
	if n.Name != "" {
		ctx.Symbols.Declare(n.Name, fn, false)
	}
	return Success(fn)
}

// evalCall evaluates the callee then every argument left-to-right, early
// exiting on the first signal, then dispatches to the matching callable
// kind.
func (in *Interpreter) evalCall(n *ast.Call, ctx *symtable.Context) *Result {
	calleeRes := in.Eval(n.Callee, ctx)
	if calleeRes.ShouldReturn() {
		return calleeRes
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, argNode := range n.Args {
		argRes := in.Eval(argNode, ctx)
		if argRes.ShouldReturn() {
			return argRes
		}
		args = append(args, argRes.Value)
	}

	switch callee := calleeRes.Value.(type) {
	case *value.Function:
		return in.callFunction(n, callee, args, ctx)
	case *value.Builtin:
		v, err := callee.Call(args)
		if err != nil {
			return Failure(runtimeErr(n, err.Error(), ctx))
		}
		return Success(v)
	default:
		return Failure(runtimeErr(n, "value is not callable", ctx))
	}
}

// callFunction checks arity exactly, then evaluates fn's body in a fresh
// symbol table parented on fn's captured (lexical, not call-site) scope —
// the one point BASIC creates a new scope.
func (in *Interpreter) callFunction(n *ast.Call, fn *value.Function, args []value.Value, ctx *symtable.Context) *Result {
	if len(args) != len(fn.Params) {
		diff := len(fn.Params) - len(args)
		name := fn.Name
		if name == "" {
			name = "<anonymous>"
		}
		if diff > 0 {
			return Failure(runtimeErr(n, fmt.Sprintf("%d too few arguments passed to '%s' function", diff, name), ctx))
		}
		return Failure(runtimeErr(n, fmt.Sprintf("%d too many arguments passed to '%s' function", -diff, name), ctx))
	}

	local := symtable.New(fn.Closure.(*symtable.SymbolTable))
	for i, param := range fn.Params {
		local.Declare(param, args[i], false)
	}

	displayName := fn.Name
	if displayName == "" {
		displayName = "<anonymous>"
	}
	callCtx := ctx.Child(displayName, n.Start(), local)

	bodyRes := in.Eval(fn.Body, callCtx)
	if bodyRes.Err != nil {
		return bodyRes
	}

	if fn.AutoReturn {
		return Success(bodyRes.Value)
	}
	if bodyRes.HasReturn {
		return Success(bodyRes.ReturnValue)
	}
	return Success(nullValue())
}

// evalReturn evaluates Value (defaulting to NULL for a bare RETURN) and
// signals HasReturn so enclosing nodes short-circuit up to the call frame.
func (in *Interpreter) evalReturn(n *ast.Return, ctx *symtable.Context) *Result {
	if n.Value == nil {
		return ReturnSignal(nullValue())
	}
	res := in.Eval(n.Value, ctx)
	if res.ShouldReturn() {
		return res
	}
	return ReturnSignal(res.Value)
}
