/*
File    : gomix/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/gomix-lang/objects"

// builtins is the fixed table of functions available to every
// environment when an identifier lookup misses: len, first, last,
// rest, append. None of them mutate their arguments: rest and append
// build a new Array or String, while first and last on an Array return
// the existing element.
var builtins = map[string]*objects.Builtin{
	"len": {Fn: func(args ...objects.Value) objects.Value {
		if len(args) != 1 {
			return objects.Newf("function len expected 1 arguments, got %d", len(args))
		}
		switch arg := args[0].(type) {
		case *objects.String:
			return &objects.Integer{Value: int64(len(arg.Value))}
		case *objects.Array:
			return &objects.Integer{Value: int64(len(arg.Elements))}
		default:
			return objects.Newf("argument to `len` not supported, got %s", args[0].Type())
		}
	}},

	"first": {Fn: func(args ...objects.Value) objects.Value {
		if len(args) != 1 {
			return objects.Newf("function first expected 1 arguments, got %d", len(args))
		}
		switch arg := args[0].(type) {
		case *objects.Array:
			if len(arg.Elements) == 0 {
				return objects.NULL
			}
			return arg.Elements[0]
		case *objects.String:
			if len(arg.Value) == 0 {
				return objects.NULL
			}
			return &objects.String{Value: string(arg.Value[0])}
		default:
			return objects.Newf("argument to `first` not supported, got %s", args[0].Type())
		}
	}},

	"last": {Fn: func(args ...objects.Value) objects.Value {
		if len(args) != 1 {
			return objects.Newf("function last expected 1 arguments, got %d", len(args))
		}
		switch arg := args[0].(type) {
		case *objects.Array:
			n := len(arg.Elements)
			if n == 0 {
				return objects.NULL
			}
			return arg.Elements[n-1]
		case *objects.String:
			n := len(arg.Value)
			if n == 0 {
				return objects.NULL
			}
			return &objects.String{Value: string(arg.Value[n-1])}
		default:
			return objects.Newf("argument to `last` not supported, got %s", args[0].Type())
		}
	}},

	"rest": {Fn: func(args ...objects.Value) objects.Value {
		if len(args) != 1 {
			return objects.Newf("function rest expected 1 arguments, got %d", len(args))
		}
		switch arg := args[0].(type) {
		case *objects.Array:
			n := len(arg.Elements)
			if n == 0 {
				return objects.NULL
			}
			rest := make([]objects.Value, n-1)
			copy(rest, arg.Elements[1:])
			return &objects.Array{Elements: rest}
		case *objects.String:
			if len(arg.Value) == 0 {
				return objects.NULL
			}
			return &objects.String{Value: arg.Value[1:]}
		default:
			return objects.Newf("argument to `rest` not supported, got %s", args[0].Type())
		}
	}},

	"append": {Fn: func(args ...objects.Value) objects.Value {
		if len(args) != 2 {
			return objects.Newf("function append expected 2 arguments, got %d", len(args))
		}
		arr, ok := args[0].(*objects.Array)
		if !ok {
			return objects.Newf("argument to `append` not supported, got %s", args[0].Type())
		}
		n := len(arr.Elements)
		elements := make([]objects.Value, n+1)
		copy(elements, arr.Elements)
		elements[n] = args[1]
		return &objects.Array{Elements: elements}
	}},
}
