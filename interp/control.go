/*
File    : gobasic/interp/control.go
Package : interp
*/
package interp

import (
	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/symtable"
	"github.com/basiclang/gobasic/value"
)

// evalIf evaluates each case's condition in order, evaluating and
// returning the first truthy arm's body (or the else body, if present and
// no case matched). No child symbol table is created for any arm — BASIC
// scopes only at function-call boundaries, so If/For/While bodies run
// directly against the caller's ctx.
func (in *Interpreter) evalIf(n *ast.If, ctx *symtable.Context) *Result {
	for _, c := range n.Cases {
		condRes := in.Eval(c.Condition, ctx)
		if condRes.ShouldReturn() {
			return condRes
		}
		if condRes.Value.IsTrue() {
			return in.Eval(c.Body, ctx)
		}
	}
	if n.Else != nil {
		return in.Eval(n.Else.Body, ctx)
	}
	return Success(nullValue())
}

// evalFor binds n.VarName in the current symbol table, stepping it from
// Start to Stop by Step (default 1), accumulating each iteration's body
// value into a List unless the body is multiline (in which case the loop
// result is always NULL). continue skips the append for that iteration;
// break exits the loop immediately without propagating further.
func (in *Interpreter) evalFor(n *ast.For, ctx *symtable.Context) *Result {
	startRes := in.Eval(n.StartValue, ctx)
	if startRes.ShouldReturn() {
		return startRes
	}
	startNum, ok := startRes.Value.(*value.Number)
	if !ok {
		return Failure(runtimeErr(n.StartValue,"for-loop start value must be a number", ctx))
	}

	stopRes := in.Eval(n.Stop, ctx)
	if stopRes.ShouldReturn() {
		return stopRes
	}
	stopNum, ok := stopRes.Value.(*value.Number)
	if !ok {
		return Failure(runtimeErr(n.Stop, "for-loop stop value must be a number", ctx))
	}

	step := 1.0
	if n.Step != nil {
		stepRes := in.Eval(n.Step, ctx)
		if stepRes.ShouldReturn() {
			return stepRes
		}
		stepNum, ok := stepRes.Value.(*value.Number)
		if !ok {
			return Failure(runtimeErr(n.Step, "for-loop step value must be a number", ctx))
		}
		step = stepNum.Val
	}

	i := startNum.Val
	cond := func() bool {
		if step >= 0 {
			return i < stopNum.Val
		}
		return i > stopNum.Val
	}

	elems := make([]value.Value, 0)
	for cond() {
		ctx.Symbols.Declare(n.VarName, value.NewNumber(i), false)

		bodyRes := in.Eval(n.Body, ctx)
		if bodyRes.HasBreak {
			break
		}
		if bodyRes.HasContinue {
			i += step
			continue
		}
		if bodyRes.ShouldReturn() {
			return bodyRes
		}
		if !n.ShouldReturnNull {
			elems = append(elems, bodyRes.Value)
		}

		i += step
	}

	if n.ShouldReturnNull {
		return Success(nullValue())
	}
	return Success(value.NewList(elems))
}

// evalWhile re-evaluates Condition before each iteration, with the same
// accumulate/continue/break/multiline rules as evalFor.
func (in *Interpreter) evalWhile(n *ast.While, ctx *symtable.Context) *Result {
	elems := make([]value.Value, 0)
	for {
		condRes := in.Eval(n.Condition, ctx)
		if condRes.ShouldReturn() {
			return condRes
		}
		if !condRes.Value.IsTrue() {
			break
		}

		bodyRes := in.Eval(n.Body, ctx)
		if bodyRes.HasBreak {
			break
		}
		if bodyRes.HasContinue {
			continue
		}
		if bodyRes.ShouldReturn() {
			return bodyRes
		}
		if !n.ShouldReturnNull {
			elems = append(elems, bodyRes.Value)
		}
	}

	if n.ShouldReturnNull {
		return Success(nullValue())
	}
	return Success(value.NewList(elems))
}
