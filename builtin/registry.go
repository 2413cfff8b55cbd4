/*
File    : gobasic/builtin/registry.go
Package : builtin
*/
package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/basiclang/gobasic/value"
)

// Register builds the fixed registry of BASIC's 15 builtins, each bound to
// host for its I/O effects. The schema (name + positional parameter list)
// matches the original interpreter's BuildInFunction arg_names exactly;
// Register is the one place that both defines the schema and performs the
// host call-through, since (unlike GoMix's open-ended std.Builtins slice
// accumulated via per-file init()) BASIC's builtin set is closed and fully
// known up front.
func Register(host Host) map[string]*value.Builtin {
	reg := map[string]*value.Builtin{}

	add := func(name string, params []string, fn value.BuiltinFunc) {
		reg[name] = value.NewBuiltin(name, params, fn)
	}

	add("PRINT", []string{"value"}, func(args []value.Value) (value.Value, error) {
		host.Print(args[0].String())
		return noneValue(), nil
	})

	add("PRINT_RET", []string{"value"}, func(args []value.Value) (value.Value, error) {
		host.Print(args[0].String())
		return value.NewString(args[0].String()), nil
	})

	add("INPUT", nil, func(args []value.Value) (value.Value, error) {
		line, err := host.ReadLine()
		if err != nil {
			return nil, err
		}
		return value.NewString(line), nil
	})

	add("INPUT_NUM", nil, func(args []value.Value) (value.Value, error) {
		line, err := host.ReadLine()
		if err != nil {
			return nil, err
		}
		n, convErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if convErr != nil {
			return nil, fmt.Errorf("'%s' is not a number", line)
		}
		return value.NewNumber(n), nil
	})

	add("CLEAR", nil, func(args []value.Value) (value.Value, error) {
		host.Clear()
		return noneValue(), nil
	})

	add("IS_NUM", []string{"value"}, func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(*value.Number)
		return value.BoolNumber(ok), nil
	})

	add("IS_INT", []string{"value"}, func(args []value.Value) (value.Value, error) {
		n, ok := args[0].(*value.Number)
		return value.BoolNumber(ok && n.IsInt), nil
	})

	add("IS_STR", []string{"value"}, func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(*value.String)
		return value.BoolNumber(ok), nil
	})

	add("IS_LIST", []string{"value"}, func(args []value.Value) (value.Value, error) {
		_, ok := args[0].(*value.List)
		return value.BoolNumber(ok), nil
	})

	add("IS_FUNC", []string{"value"}, func(args []value.Value) (value.Value, error) {
		switch args[0].(type) {
		case *value.Function, *value.Builtin:
			return value.BoolNumber(true), nil
		default:
			return value.BoolNumber(false), nil
		}
	})

	add("APPEND", []string{"list", "value"}, func(args []value.Value) (value.Value, error) {
		list, ok := args[0].(*value.List)
		if !ok {
			return nil, fmt.Errorf("first argument of 'APPEND' must be a list")
		}
		list.Append(args[1])
		return noneValue(), nil
	})

	add("POP", []string{"list", "index"}, func(args []value.Value) (value.Value, error) {
		list, ok := args[0].(*value.List)
		if !ok {
			return nil, fmt.Errorf("first argument of 'POP' must be a list")
		}
		idx, ok := args[1].(*value.Number)
		if !ok {
			return nil, fmt.Errorf("second argument of 'POP' must be a number")
		}
		removed, err := list.Pop(idx.Int())
		if err != nil {
			return nil, fmt.Errorf("element at this index could not be removed from list because index is out of bounds")
		}
		return removed, nil
	})

	add("EXTEND", []string{"listA", "listB"}, func(args []value.Value) (value.Value, error) {
		a, ok := args[0].(*value.List)
		if !ok {
			return nil, fmt.Errorf("first argument of 'EXTEND' must be a list")
		}
		b, ok := args[1].(*value.List)
		if !ok {
			return nil, fmt.Errorf("second argument of 'EXTEND' must be a list")
		}
		a.Extend(b)
		return noneValue(), nil
	})

	add("LEN", []string{"list"}, func(args []value.Value) (value.Value, error) {
		list, ok := args[0].(*value.List)
		if !ok {
			return nil, fmt.Errorf("argument of 'LEN' must be a list")
		}
		return value.NewInt(int64(len(list.Elements))), nil
	})

	add("RUN", []string{"filename"}, func(args []value.Value) (value.Value, error) {
		path, ok := args[0].(*value.String)
		if !ok {
			return nil, fmt.Errorf("argument of 'RUN' must be a string")
		}
		if err := host.RunFile(path.Val); err != nil {
			return nil, fmt.Errorf("failed to run script '%s': %v", path.Val, err)
		}
		return noneValue(), nil
	})

	return reg
}

// noneValue is the builtin no-op return: the original interpreter's
// Number.null, represented here as the canonical integer 0 since BASIC has
// no separate nil type.
func noneValue() value.Value {
	return value.NewInt(0)
}
