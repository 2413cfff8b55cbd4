/*
File    : gobasic/interp/result.go
Package : interp
*/
package interp

import "github.com/basiclang/gobasic/value"

// Result is the RuntimeResult carrier named in spec.md: every Eval call
// returns one, threading a value alongside the three control signals
// (Return/Continue/Break) and an error, all through the same channel
// instead of unwinding the host stack or using a typed exception.
type Result struct {
	Value value.Value
	Err   error

	ReturnValue value.Value
	HasReturn   bool
	HasContinue bool
	HasBreak    bool
}

// ShouldReturn reports whether a node evaluating this Result must
// short-circuit the node containing it — on error, on an in-flight
// function return, or on a loop continue/break signal.
func (r *Result) ShouldReturn() bool {
	return r.Err != nil || r.HasReturn || r.HasContinue || r.HasBreak
}

// Success wraps a plain value with no control signal.
func Success(v value.Value) *Result {
	return &Result{Value: v}
}

// Failure wraps an error. err is usually an *errs.Error but any error is
// accepted so builtin/host failures can be lifted in as-is.
func Failure(err error) *Result {
	return &Result{Err: err}
}

// ReturnSignal marks an in-flight RETURN carrying v (NULL if bare).
func ReturnSignal(v value.Value) *Result {
	return &Result{Value: v, ReturnValue: v, HasReturn: true}
}

// ContinueSignal marks an in-flight CONTINUE.
func ContinueSignal() *Result {
	return &Result{HasContinue: true}
}

// BreakSignal marks an in-flight BREAK.
func BreakSignal() *Result {
	return &Result{HasBreak: true}
}
