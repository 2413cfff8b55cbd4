/*
File    : gobasic/interp/expr.go
Package : interp
*/
package interp

import (
	"math"
	"strings"

	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/symtable"
	"github.com/basiclang/gobasic/token"
	"github.com/basiclang/gobasic/value"
)

// evalBinOp dispatches a binary operator over its already-evaluated
// operands with a single switch on (left kind, right kind, operator)
// rather than the original interpreter's added_to/subbed_by/... methods
// scattered across each value type, per the redesign note to collapse
// per-kind operator methods into one table.
func (in *Interpreter) evalBinOp(n *ast.BinOp, ctx *symtable.Context) *Result {
	leftRes := in.Eval(n.Left, ctx)
	if leftRes.ShouldReturn() {
		return leftRes
	}
	rightRes := in.Eval(n.Right, ctx)
	if rightRes.ShouldReturn() {
		return rightRes
	}
	left, right := leftRes.Value, rightRes.Value

	if isAndOr(n.Op, n.OpLit) {
		return Success(value.BoolNumber(evalLogical(n.OpLit, left, right)))
	}

	switch l := left.(type) {
	case *value.Number:
		if r, ok := right.(*value.Number); ok {
			return in.numberBinOp(n, l, r, ctx)
		}
	case *value.String:
		switch r := right.(type) {
		case *value.String:
			if n.Op == token.PLUS {
				return Success(value.NewString(l.Val + r.Val))
			}
		case *value.Number:
			if n.Op == token.MUL {
				return Success(value.NewString(strings.Repeat(l.Val, r.Int())))
			}
		}
	case *value.List:
		return in.listBinOp(n, l, right, ctx)
	}

	return Failure(runtimeErr(n, "Illegal operation", ctx))
}

func isAndOr(op token.Kind, lit string) bool {
	return op == token.KEYWORD && (lit == "AND" || lit == "OR")
}

func evalLogical(op string, left, right value.Value) bool {
	if op == "AND" {
		return left.IsTrue() && right.IsTrue()
	}
	return left.IsTrue() || right.IsTrue()
}

func (in *Interpreter) numberBinOp(n *ast.BinOp, l, r *value.Number, ctx *symtable.Context) *Result {
	switch n.Op {
	case token.PLUS:
		return Success(value.NewNumber(l.Val + r.Val))
	case token.MINUS:
		return Success(value.NewNumber(l.Val - r.Val))
	case token.MUL:
		return Success(value.NewNumber(l.Val * r.Val))
	case token.DIV:
		if r.Val == 0 {
			return Failure(runtimeErr(n.Right, "Division by zero", ctx))
		}
		return Success(value.NewNumber(l.Val / r.Val))
	case token.POW:
		return Success(value.NewNumber(math.Pow(l.Val, r.Val)))
	case token.EE:
		return Success(value.BoolNumber(l.Val == r.Val))
	case token.NE:
		return Success(value.BoolNumber(l.Val != r.Val))
	case token.LT:
		return Success(value.BoolNumber(l.Val < r.Val))
	case token.GT:
		return Success(value.BoolNumber(l.Val > r.Val))
	case token.LTE:
		return Success(value.BoolNumber(l.Val <= r.Val))
	case token.GTE:
		return Success(value.BoolNumber(l.Val >= r.Val))
	}
	return Failure(runtimeErr(n, "Illegal operation", ctx))
}


// listBinOp implements the List operator overloads named in spec.md §4.3:
// + appends (or extends, for list+list), - removes by index, * repeats
// elements, / indexes.
func (in *Interpreter) listBinOp(n *ast.BinOp, l *value.List, right value.Value, ctx *symtable.Context) *Result {
	switch n.Op {
	case token.PLUS:
		result := l.Copy().(*value.List)
		if other, ok := right.(*value.List); ok {
			result.Extend(other)
		} else {
			result.Append(right)
		}
		return Success(result)
	case token.MINUS:
		idx, ok := right.(*value.Number)
		if !ok {
			return Failure(runtimeErr(n, "Illegal operation", ctx))
		}
		result := l.Copy().(*value.List)
		if _, err := result.Pop(idx.Int()); err != nil {
			return Failure(runtimeErr(n.Right, "Index to the list is out of bounds", ctx))
		}
		return Success(result)
	case token.MUL:
		idx, ok := right.(*value.Number)
		if !ok {
			return Failure(runtimeErr(n, "Illegal operation", ctx))
		}
		count := idx.Int()
		if count < 0 {
			count = 0
		}
		elems := make([]value.Value, 0, len(l.Elements)*count)
		for i := 0; i < count; i++ {
			elems = append(elems, l.Elements...)
		}
		return Success(value.NewList(elems))
	case token.DIV:
		idx, ok := right.(*value.Number)
		if !ok {
			return Failure(runtimeErr(n, "Illegal operation", ctx))
		}
		elem, err := l.At(idx.Int())
		if err != nil {
			return Failure(runtimeErr(n.Right, "Index to the list is out of bounds", ctx))
		}
		return Success(elem)
	}
	return Failure(runtimeErr(n, "Illegal operation", ctx))
}

// evalUnaryOp implements the grammar's three prefix operators: MINUS
// (negation, `x * Number(-1)`), PLUS (the number unchanged) and NOT
// (logical negation).
func (in *Interpreter) evalUnaryOp(n *ast.UnaryOp, ctx *symtable.Context) *Result {
	res := in.Eval(n.Operand, ctx)
	if res.ShouldReturn() {
		return res
	}

	if n.Op == token.KEYWORD && n.OpLit == "NOT" {
		return Success(value.BoolNumber(!res.Value.IsTrue()))
	}

	num, ok := res.Value.(*value.Number)
	if !ok {
		return Failure(runtimeErr(n, "Illegal operation", ctx))
	}
	if n.Op == token.MINUS {
		return Success(value.NewNumber(-num.Val))
	}
	return Success(num)
}
