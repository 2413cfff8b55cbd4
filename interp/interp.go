/*
File    : gobasic/interp/interp.go
Package : interp
*/

// Package interp tree-walks the AST, dispatching on node kind with a
// single type switch rather than the teacher's name-based Visitor
// (parser/node.go's NodeVisitor, eval/evaluator.go's per-kind eval_*.go
// files reached through Accept/Visit double dispatch). Control flow
// (Return/Continue/Break) and errors both thread through the Result
// carrier instead of unwinding the host stack, per spec.md's redesign
// note and the original interpreter's RTResult/register() pattern.
package interp

import (
	"fmt"

	"github.com/basiclang/gobasic/ast"
	"github.com/basiclang/gobasic/errs"
	"github.com/basiclang/gobasic/parser"
	"github.com/basiclang/gobasic/symtable"
	"github.com/basiclang/gobasic/value"
)

// Interpreter evaluates a parsed program against a global symbol table.
// Builtins are pre-registered as protected bindings in Globals before the
// first Eval call (see New).
type Interpreter struct {
	Globals *symtable.SymbolTable
}

// New creates an Interpreter with builtins and well-known constants
// (NULL, TRUE, FALSE, PI) declared as protected bindings in the global
// symbol table, matching spec.md §3's list of names that can never be
// rebound.
func New(builtins map[string]*value.Builtin) *Interpreter {
	globals := symtable.New(nil)
	globals.Declare("NULL", value.NewInt(0), true)
	globals.Declare("TRUE", value.True, true)
	globals.Declare("FALSE", value.False, true)
	globals.Declare("PI", value.NewNumber(3.141592653589793), true)
	for name, fn := range builtins {
		globals.Declare(name, fn, true)
	}
	return &Interpreter{Globals: globals}
}

// Run evaluates an entire program parsed from fileName/source. Per
// spec.md §6, the exposed entry point returns a List wrapping every
// top-level statement's value, or nil for empty/whitespace-only source.
func (in *Interpreter) Run(fileName, source string) (value.Value, error) {
	if isBlank(source) {
		return nil, nil
	}

	p, perr := parser.New(fileName, source)
	if perr != nil {
		return nil, perr
	}
	program, perr := p.Parse()
	if perr != nil {
		return nil, perr
	}

	ctx := symtable.NewContext("<module>", in.Globals)
	result := in.evalProgram(program, ctx)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Value, nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// evalProgram evaluates every top-level statement, accumulating their
// values into a List — the "run() always returns a List of statement
// values" contract from spec.md §6.
func (in *Interpreter) evalProgram(prog *ast.Program, ctx *symtable.Context) *Result {
	elems := make([]value.Value, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		res := in.Eval(stmt, ctx)
		if res.ShouldReturn() {
			return res
		}
		elems = append(elems, res.Value)
	}
	return Success(value.NewList(elems))
}

// Eval is the single dispatch point for every AST node kind.
func (in *Interpreter) Eval(node ast.Node, ctx *symtable.Context) *Result {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return in.evalNumberLiteral(n)
	case *ast.StringLiteral:
		return in.evalStringLiteral(n)
	case *ast.ListLiteral:
		return in.evalListLiteral(n, ctx)
	case *ast.VarAccess:
		return in.evalVarAccess(n, ctx)
	case *ast.VarAssign:
		return in.evalVarAssign(n, ctx)
	case *ast.BinOp:
		return in.evalBinOp(n, ctx)
	case *ast.UnaryOp:
		return in.evalUnaryOp(n, ctx)
	case *ast.If:
		return in.evalIf(n, ctx)
	case *ast.For:
		return in.evalFor(n, ctx)
	case *ast.While:
		return in.evalWhile(n, ctx)
	case *ast.FuncDef:
		return in.evalFuncDef(n, ctx)
	case *ast.Call:
		return in.evalCall(n, ctx)
	case *ast.Return:
		return in.evalReturn(n, ctx)
	case *ast.Continue:
		return ContinueSignal()
	case *ast.Break:
		return BreakSignal()
	case *ast.Block:
		return in.evalBlock(n, ctx)
	default:
		return Failure(runtimeErr(node, fmt.Sprintf("no evaluation rule for %T", node), ctx))
	}
}

// evalBlock runs a sequence of statements for side effect, discarding
// their individual values — used for multiline IF/FOR/WHILE bodies, whose
// result is always NULL regardless of what the statements evaluate to.
func (in *Interpreter) evalBlock(block *ast.Block, ctx *symtable.Context) *Result {
	for _, stmt := range block.Statements {
		res := in.Eval(stmt, ctx)
		if res.ShouldReturn() {
			return res
		}
	}
	return Success(nullValue())
}

func nullValue() value.Value { return value.NewInt(0) }

func runtimeErr(node ast.Node, msg string, ctx *symtable.Context) *errs.Error {
	return errs.New(errs.RuntimeError, msg, node.Start(), node.End()).WithContext(ctx)
}
