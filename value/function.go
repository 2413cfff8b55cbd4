/*
File    : gobasic/value/function.go
Package : value
*/
package value

import (
	"fmt"

	"github.com/basiclang/gobasic/ast"
)

// Environment is the view of a symbol table that a closure and the
// interpreter need, satisfied by *symtable.SymbolTable. Declaring it here
// (rather than importing symtable directly) avoids a value<->symtable
// import cycle, since symtable itself stores value.Value.
type Environment interface {
	Get(name string) (Value, bool)
	Declare(name string, v Value, protected bool)
	Set(name string, v Value) error
	Child() Environment
}

// Function is a user-defined function: a name (empty for anonymous
// function expressions), its formal parameters, its body, and the
// environment it closed over at definition time. Grounded on
// function/function.go's Name/Params/Body/Scp shape, generalized to close
// over an Environment instead of a concrete *scope.Scope.
type Function struct {
	Name       string
	Params     []string
	Body       ast.Node
	AutoReturn bool
	Closure    Environment
}

func NewFunction(name string, params []string, body ast.Node, autoReturn bool, closure Environment) *Function {
	return &Function{Name: name, Params: params, Body: body, AutoReturn: autoReturn, Closure: closure}
}

func (f *Function) Type() Kind { return FunctionKind }

func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("<function %s>", name)
}

func (f *Function) Repr() string { return f.String() }

func (f *Function) IsTrue() bool { return true }

// Copy returns f itself: functions are reference values, copying one only
// copies the handle, matching the original interpreter's Function.copy
// (which sets a new position but shares name/body/context).
func (f *Function) Copy() Value { return f }
